package app

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"ulascansenturk/weatherapp/config"
	"ulascansenturk/weatherapp/internal/db/weatherquery"
	"ulascansenturk/weatherapp/internal/inmemorycache"
	"ulascansenturk/weatherapp/internal/location"
	"ulascansenturk/weatherapp/internal/providers"
	"ulascansenturk/weatherapp/internal/service"
	"ulascansenturk/weatherapp/internal/store"
)

// App is the wired object graph shared by the server and the CLI.
type App struct {
	Config     *config.Config
	DB         *gorm.DB
	Repository weatherquery.Repository
	Cache      *inmemorycache.InMemoryCache
	Store      *store.Store
	Provider   providers.ForecastProvider
	Aggregator service.WeatherRequestAggregator
	Service    service.WeatherService
}

func NewLogger(conf *config.Config) zerolog.Logger {
	logLevel, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil || conf.LogLevel == "" {
		logLevel = zerolog.InfoLevel
	}

	return zerolog.New(os.Stdout).
		Level(logLevel).
		With().
		Str("service_name", conf.ServiceName).
		Timestamp().
		Logger()
}

// New builds the service stack. db may be nil, which disables fetch history.
func New(conf *config.Config, db *gorm.DB) (*App, error) {
	if err := conf.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	locations, err := newLocationSource(conf)
	if err != nil {
		return nil, err
	}

	var repository weatherquery.Repository
	if db != nil {
		repository = weatherquery.NewRepository(db)
	}

	var provider providers.ForecastProvider = providers.NewWeatherAPIClient(providers.Options{
		BaseURL: conf.WeatherAPIBaseURL,
		APIKey:  conf.WeatherApiAPIKey,
		AQI:     conf.WeatherAPIAQI,
		Alerts:  conf.WeatherAPIAlerts,
		Timeout: conf.HTTPTimeoutDuration(),
	})
	if conf.RateLimitRPS > 0 {
		provider = providers.NewRateLimitedProvider(provider, conf.RateLimitRPS, conf.RateLimitBurst)
	}

	cache := inmemorycache.NewInMemoryCacheProvider(conf.CacheCleanupInterval)
	st := store.New()

	aggregator := service.NewWeatherRequestAggregator(service.AggregatorConfig{
		Provider:   provider,
		Store:      st,
		Cache:      cache,
		Repository: repository,
		Days:       conf.ForecastDays,
		CacheTTL:   conf.CacheTTL,
	})

	log.Info().
		Str("provider", provider.Name()).
		Int("days", conf.ForecastDays).
		Bool("history", repository != nil).
		Msg("weather service initialized")

	return &App{
		Config:     conf,
		DB:         db,
		Repository: repository,
		Cache:      cache,
		Store:      st,
		Provider:   provider,
		Aggregator: aggregator,
		Service:    service.NewWeatherService(aggregator, st, cache, locations),
	}, nil
}

// Close stops background work and releases the database pool.
func (a *App) Close() {
	a.Aggregator.Shutdown()
	a.Cache.Close()

	if a.DB == nil {
		return
	}
	sqlDB, err := a.DB.DB()
	if err != nil {
		log.Error().Err(err).Msg("failed to get database handle")
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close database")
	}
}

func newLocationSource(conf *config.Config) (location.Source, error) {
	fallback := location.StaticSource{Place: conf.DefaultLocation}
	if fallback.Place == "" {
		fallback.Place = location.DefaultPlace
	}

	device := location.CoordinateSource{}
	if raw := conf.DeviceCoordinates(); raw != "" {
		coords, err := location.ParseCoordinates(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid device location: %w", err)
		}
		device.Coordinates = &coords
	}

	return location.FallbackSource{Primary: device, Fallback: fallback}, nil
}

func InitializeDatabase(conf *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		conf.DBHost, conf.DBPort, conf.DBUser, conf.DBPassword, conf.DBName,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&weatherquery.WeatherQuery{}); err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(3 * time.Minute)

	return db, nil
}
