package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"ulascansenturk/weatherapp/internal/db/weatherquery"
)

var errHistoryDisabled = errors.New("history is disabled: set DATABASE_HOST to enable it")

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent forecast fetches",
	Long:  `Display the most recent forecast fetches recorded in the database, newest first.`,
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntP("limit", "n", weatherquery.DefaultHistoryLimit, "number of entries to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
	weatherApp, err := appFrom(cmd)
	if err != nil {
		return err
	}
	if weatherApp.Repository == nil {
		return errHistoryDisabled
	}

	limit, _ := cmd.Flags().GetInt("limit")

	queries, err := weatherApp.Repository.RecentQueries(cmd.Context(), limit)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(queries) == 0 {
		fmt.Fprintln(out, "No forecast fetches recorded yet.")
		return nil
	}

	fmt.Fprintf(out, "\n%-20s %-24s %-8s %-10s %s\n", "TIME", "QUERY", "RESULT", "TEMP", "WAITERS")
	fmt.Fprintln(out, strings.Repeat("-", 72))
	for _, q := range queries {
		outcome := "ok"
		temp := fmt.Sprintf("%.1f°C", q.TemperatureC)
		if !q.Success {
			outcome = q.ErrorKind
			temp = "-"
		}
		fmt.Fprintf(out, "%-20s %-24s %-8s %-10s %d\n",
			q.CreatedAt.Local().Format("2006-01-02 15:04:05"), truncate(q.Query, 24), outcome, temp, q.RequestCount)
	}

	return nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
