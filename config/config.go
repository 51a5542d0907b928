package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const (
	minForecastDays = 1
	maxForecastDays = 14
)

var ErrMissingAPIKey = errors.New("WEATHER_API_API_KEY is required")

type Config struct {
	ServiceName   string
	ServerAddress string

	DBName     string
	DBPassword string
	DBUser     string
	DBPort     string
	DBHost     string

	Env         string
	LogLevel    string
	HTTPTimeout int32

	WeatherAPIBaseURL string
	WeatherApiAPIKey  string
	WeatherAPIAQI     bool
	WeatherAPIAlerts  bool
	ForecastDays      int

	DefaultLocation string
	DeviceLatitude  string
	DeviceLongitude string

	RateLimitRPS   float64
	RateLimitBurst int

	CacheTTL             time.Duration
	CacheCleanupInterval time.Duration
}

func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVICE_NAME", "weatherapp")

	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:3000")
	v.SetDefault("DATABASE_PORT", "5432")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HTTP_TIMEOUT", 15)
	v.SetDefault("WEATHER_API_BASE_URL", "https://api.weatherapi.com")
	v.SetDefault("WEATHER_API_AQI", false)
	v.SetDefault("WEATHER_API_ALERTS", false)
	v.SetDefault("FORECAST_DAYS", 7)
	v.SetDefault("DEFAULT_LOCATION", "Halifax")
	v.SetDefault("RATE_LIMIT_RPS", 2.0)
	v.SetDefault("RATE_LIMIT_BURST", 4)
	v.SetDefault("CACHE_TTL", 5*time.Minute)
	v.SetDefault("CACHE_CLEANUP_INTERVAL", time.Minute)

	v.AutomaticEnv()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Warn().Msg("No .env file found, using environment variables only")
		} else {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Info().Str("file", v.ConfigFileUsed()).Msg("Config file loaded")
	}

	config := &Config{
		ServiceName:          v.GetString("SERVICE_NAME"),
		ServerAddress:        v.GetString("SERVER_ADDRESS"),
		DBName:               v.GetString("DATABASE_NAME"),
		DBPassword:           v.GetString("DATABASE_PASSWORD"),
		DBUser:               v.GetString("DATABASE_USER"),
		DBPort:               v.GetString("DATABASE_PORT"),
		DBHost:               v.GetString("DATABASE_HOST"),
		Env:                  v.GetString("ENV"),
		LogLevel:             v.GetString("LOG_LEVEL"),
		HTTPTimeout:          v.GetInt32("HTTP_TIMEOUT"),
		WeatherAPIBaseURL:    v.GetString("WEATHER_API_BASE_URL"),
		WeatherApiAPIKey:     v.GetString("WEATHER_API_API_KEY"),
		WeatherAPIAQI:        v.GetBool("WEATHER_API_AQI"),
		WeatherAPIAlerts:     v.GetBool("WEATHER_API_ALERTS"),
		ForecastDays:         v.GetInt("FORECAST_DAYS"),
		DefaultLocation:      strings.TrimSpace(v.GetString("DEFAULT_LOCATION")),
		DeviceLatitude:       strings.TrimSpace(v.GetString("DEVICE_LATITUDE")),
		DeviceLongitude:      strings.TrimSpace(v.GetString("DEVICE_LONGITUDE")),
		RateLimitRPS:         v.GetFloat64("RATE_LIMIT_RPS"),
		RateLimitBurst:       v.GetInt("RATE_LIMIT_BURST"),
		CacheTTL:             v.GetDuration("CACHE_TTL"),
		CacheCleanupInterval: v.GetDuration("CACHE_CLEANUP_INTERVAL"),
	}

	return config, nil
}

// Validate reports settings the service cannot start without.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.WeatherApiAPIKey) == "" {
		return ErrMissingAPIKey
	}
	if c.ForecastDays < minForecastDays || c.ForecastDays > maxForecastDays {
		return fmt.Errorf("FORECAST_DAYS must be between %d and %d, got %d", minForecastDays, maxForecastDays, c.ForecastDays)
	}
	if c.RateLimitRPS < 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must not be negative, got %v", c.RateLimitRPS)
	}
	if (c.DeviceLatitude == "") != (c.DeviceLongitude == "") {
		return errors.New("DEVICE_LATITUDE and DEVICE_LONGITUDE must be set together")
	}
	return nil
}

func (c *Config) HTTPTimeoutDuration() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}

func (c *Config) HistoryEnabled() bool {
	return c.DBHost != ""
}

// DeviceCoordinates returns the configured "lat,lon" pair, or "" when the
// device location is not configured.
func (c *Config) DeviceCoordinates() string {
	if c.DeviceLatitude == "" || c.DeviceLongitude == "" {
		return ""
	}
	return c.DeviceLatitude + "," + c.DeviceLongitude
}
