package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var chartsCmd = &cobra.Command{
	Use:   "charts",
	Short: "List the weekly chart ranges available for your account",
	Long: `List the reporting weeks Last.fm has charts for, oldest first.

The index in the first column can be passed to 'fmnotes weekly --week'.`,
	Args: cobra.NoArgs,
	RunE: runCharts,
}

func init() {
	rootCmd.AddCommand(chartsCmd)

	chartsCmd.Flags().IntP("limit", "l", 10, "Show only the newest N weeks (0 for all)")
}

func runCharts(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")

	_, client, err := newClient()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
	defer cancel()

	weeks, err := client.User().GetWeeklyChartList(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error fetching weekly chart")
		return fmt.Errorf("failed to fetch weekly chart list: %w", err)
	}

	if len(weeks) == 0 {
		fmt.Println("No weekly charts available.")
		return nil
	}

	start := 0
	if limit > 0 && len(weeks) > limit {
		start = len(weeks) - limit
	}

	width := len(fmt.Sprint(len(weeks) - 1))
	for i := start; i < len(weeks); i++ {
		fmt.Printf("%s  %s\n", padToWidth(fmt.Sprint(i), width), weeks[i].Label())
	}

	return nil
}
