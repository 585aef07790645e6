package cmd

import (
	"context"

	"github.com/jfmyers9/fmnotes/internal/note"
	"github.com/jfmyers9/fmnotes/pkg/lastfm"
	"github.com/spf13/cobra"
)

var topCmd = &cobra.Command{
	Use:   "top <tracks|artists|albums>",
	Short: "Create a note of your top tracks, artists or albums",
	Long: `Fetch your top tracks, artists or albums over a period and write them
as a note named "LastFM Top <kind> <period> YYYY-MM-DD.md".

Periods: 7day, 1month, 3month, 6month, 12month, overall.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"tracks", "artists", "albums"},
	RunE:      runTop,
}

func init() {
	rootCmd.AddCommand(topCmd)

	topCmd.Flags().StringP("period", "p", string(lastfm.Period7Day), "Time period")
	topCmd.Flags().IntP("limit", "l", 10, "Number of items to include")
	topCmd.Flags().Bool("dry-run", false, "Print the note instead of writing it")
}

func runTop(cmd *cobra.Command, args []string) error {
	kind, err := lastfm.ParseKind(args[0])
	if err != nil {
		return err
	}

	periodFlag, _ := cmd.Flags().GetString("period")
	period, err := lastfm.ParsePeriod(periodFlag)
	if err != nil {
		return err
	}

	limit, _ := cmd.Flags().GetInt("limit")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	cfg, client, err := newClient()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
	defer cancel()

	assembler, closeHistory := newAssembler(cfg, client, printNotifier)
	defer closeHistory()

	var n *note.Note
	if dryRun {
		n, err = assembler.PreviewTopNote(ctx, kind, period, limit)
	} else {
		n, err = assembler.CreateTopNote(ctx, kind, period, limit)
	}
	if err != nil {
		logger.Error().Err(err).Msg("Error creating top note")
		return err
	}

	writeNote(n, dryRun)
	return nil
}
