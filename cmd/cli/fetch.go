package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"ulascansenturk/weatherapp/internal/service"
	"ulascansenturk/weatherapp/internal/weather"
)

func fetch(cmd *cobra.Command) (service.Result, error) {
	weatherApp, err := appFrom(cmd)
	if err != nil {
		return service.Result{}, err
	}

	query, _ := cmd.Flags().GetString("q")
	skipCache, _ := cmd.Flags().GetBool("refresh")

	refresh := weatherApp.Service.Refresh
	if skipCache {
		refresh = weatherApp.Service.ForceRefresh
	}

	result := refresh(cmd.Context(), query)
	if result.Err != nil {
		return result, fmt.Errorf("failed to fetch forecast (%s): %w", weather.KindOf(result.Err), result.Err)
	}
	if result.Snapshot == nil {
		return result, fmt.Errorf("no forecast returned for %q", result.Query)
	}

	return result, nil
}
