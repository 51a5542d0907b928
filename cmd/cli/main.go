package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
	"ulascansenturk/weatherapp/config"
	"ulascansenturk/weatherapp/internal/app"
)

type appKey struct{}

var rootCmd = &cobra.Command{
	Use:   "weatherapp",
	Short: "weatherapp - current conditions and daily forecast",
	Long: `weatherapp fetches the forecast for a place from WeatherAPI and renders
the current conditions or the daily outlook as text.`,
	SilenceUsage: true,
}

func main() {
	os.Exit(run())
}

func run() int {
	conf, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	// keep the terminal for the rendered views
	log.Logger = app.NewLogger(conf).Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.WarnLevel)

	var db *gorm.DB
	if conf.HistoryEnabled() {
		db, err = app.InitializeDatabase(conf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to initialize database: %v\n", err)
			return 1
		}
	}

	weatherApp, err := app.New(conf, db)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize weather service: %v\n", err)
		return 1
	}
	defer weatherApp.Close()

	ctx := context.WithValue(context.Background(), appKey{}, weatherApp)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		return 1
	}
	return 0
}

func appFrom(cmd *cobra.Command) (*app.App, error) {
	weatherApp, ok := cmd.Context().Value(appKey{}).(*app.App)
	if !ok || weatherApp == nil {
		return nil, fmt.Errorf("weather service is not initialized")
	}
	return weatherApp, nil
}
