package main

import (
	"github.com/spf13/cobra"
	"ulascansenturk/weatherapp/internal/presentation"
)

var nowCmd = &cobra.Command{
	Use:   "now",
	Short: "Show current conditions",
	Long:  `Fetch and display the current conditions. Without --q the device location or the configured default place is used.`,
	RunE:  runNow,
}

func init() {
	rootCmd.AddCommand(nowCmd)

	nowCmd.Flags().StringP("q", "q", "", "place name or \"lat,lon\"")
	nowCmd.Flags().Bool("refresh", false, "skip the forecast cache")
}

func runNow(cmd *cobra.Command, args []string) error {
	result, err := fetch(cmd)
	if err != nil {
		return err
	}

	return presentation.RenderCurrent(cmd.OutOrStdout(), presentation.NewCurrentView(*result.Snapshot))
}
