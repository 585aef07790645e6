package cmd

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jfmyers9/fmnotes/internal/config"
	"github.com/jfmyers9/fmnotes/internal/note"
	"github.com/jfmyers9/fmnotes/internal/notelog"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List the notes fmnotes has created",
	Long: `List previously created notes, newest first, from the local note
history database.

Use --prune to forget entries older than a duration such as 720h. The
note files themselves are never touched.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntP("limit", "l", 20, "Number of entries to show (0 for all)")
	historyCmd.Flags().Duration("prune", 0, "Remove entries older than this duration")
}

func runHistory(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	prune, _ := cmd.Flags().GetDuration("prune")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	history, err := openHistory(cfg.HistoryDB)
	if err != nil {
		return fmt.Errorf("failed to open note history: %w", err)
	}
	defer history.Close()

	ctx := cmd.Context()

	if prune > 0 {
		deleted, err := history.Cleanup(ctx, prune)
		if err != nil {
			return err
		}
		fmt.Printf("Removed %d %s older than %s\n", deleted, pluralEntries(deleted), prune)
	}

	entries, err := history.List(ctx, limit)
	if err != nil {
		return err
	}

	total, err := history.Count(ctx)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No notes created yet.")
		return nil
	}

	now := time.Now()
	for _, e := range entries {
		fmt.Println(formatEntry(e, now))
	}
	if total > len(entries) {
		fmt.Printf("\n%d of %s notes shown\n", len(entries), humanize.Comma(int64(total)))
	}

	return nil
}

// formatEntry renders one history line: age, operation, span and path
func formatEntry(e notelog.Entry, now time.Time) string {
	what := e.Operation
	if e.Kind != "" && e.Operation != note.OpRecent {
		what += " " + e.Kind
	}
	if e.Span != "" {
		what += " " + e.Span
	}

	return fmt.Sprintf("%s  %s  %s  (%d items)",
		padToWidth(humanize.RelTime(e.CreatedAt, now, "ago", "from now"), 16),
		padToWidth(what, 40),
		e.Path,
		e.Items,
	)
}

func pluralEntries(n int64) string {
	if n == 1 {
		return "entry"
	}
	return "entries"
}
