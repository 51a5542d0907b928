package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"ulascansenturk/weatherapp/config"
	"ulascansenturk/weatherapp/internal/api/v1/handlers"
	"ulascansenturk/weatherapp/internal/app"
	"ulascansenturk/weatherapp/internal/weather"
)

const initialFetchTimeout = 30 * time.Second

func main() {
	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logger := app.NewLogger(conf)
	log.Logger = logger

	ctx, mainCtxStop := context.WithCancel(context.Background())

	var db *gorm.DB
	if conf.HistoryEnabled() {
		db, err = app.InitializeDatabase(conf)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize database")
		}
	} else {
		logger.Warn().Msg("DATABASE_HOST not set, fetch history disabled")
	}

	weatherApp, err := app.New(conf, db)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build weather service")
	}

	handler := handlers.NewWeatherHandler(weatherApp.Service, weatherApp.Repository, conf.HTTPTimeoutDuration())

	httpServer := &http.Server{
		Addr:              conf.ServerAddress,
		Handler:           handler,
		ReadHeaderTimeout: conf.HTTPTimeoutDuration(),
	}

	go initialFetch(ctx, weatherApp)

	handleSignals(ctx, mainCtxStop, func(shutdownCtx context.Context) {
		if shutdownErr := httpServer.Shutdown(shutdownCtx); shutdownErr != nil {
			log.Error().Err(shutdownErr).Msg("server shutdown failed")
		}
		weatherApp.Close()
	})

	log.Info().Msgf("started server on %s", conf.ServerAddress)

	serverErr := httpServer.ListenAndServe()
	if serverErr != nil && !errors.Is(serverErr, http.ErrServerClosed) {
		log.Err(serverErr).Msg("server stopped")
		mainCtxStop()
	}
	<-ctx.Done()
}

// initialFetch loads the current location once at startup so the first
// request finds a warm store.
func initialFetch(ctx context.Context, weatherApp *app.App) {
	fetchCtx, cancel := context.WithTimeout(ctx, initialFetchTimeout)
	defer cancel()

	result := weatherApp.Service.RefreshCurrent(fetchCtx)
	if result.Err != nil {
		log.Warn().
			Err(result.Err).
			Str("query", result.Query).
			Str("kind", weather.KindOf(result.Err)).
			Msg("initial forecast fetch failed")
		return
	}

	log.Info().
		Str("location", weatherApp.Store.DisplayLocation()).
		Msg("initial forecast loaded")
}

func handleSignals(ctx context.Context, cancelCtx context.CancelFunc, callback func(context.Context)) {
	sig := make(chan os.Signal, 1)

	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	const shutdownDuration = 30 * time.Second

	go func() {
		<-sig

		shutdownCtx, cancel := context.WithTimeout(ctx, shutdownDuration)

		go func() {
			<-shutdownCtx.Done()

			if shutdownCtx.Err() == context.DeadlineExceeded {
				panic("graceful shutdown timed out.. forcing exit.")
			}
		}()

		callback(shutdownCtx)

		cancel()
		cancelCtx()
	}()
}
