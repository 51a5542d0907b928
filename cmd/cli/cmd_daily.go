package main

import (
	"github.com/spf13/cobra"
	"ulascansenturk/weatherapp/internal/presentation"
)

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Show the daily forecast",
	Long:  `Fetch and display one entry per forecast day, in the provider's order.`,
	RunE:  runDaily,
}

func init() {
	rootCmd.AddCommand(dailyCmd)

	dailyCmd.Flags().StringP("q", "q", "", "place name or \"lat,lon\"")
	dailyCmd.Flags().Bool("refresh", false, "skip the forecast cache")
}

func runDaily(cmd *cobra.Command, args []string) error {
	result, err := fetch(cmd)
	if err != nil {
		return err
	}

	return presentation.RenderDaily(cmd.OutOrStdout(), presentation.NewDailyView(*result.Snapshot))
}
