package cmd

import (
	"context"

	"github.com/jfmyers9/fmnotes/internal/note"
	"github.com/spf13/cobra"
)

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Create a note of your recent scrobbles",
	Long: `Fetch your most recent scrobbles and write them as a note named
"LastFM Recent Scrobbles YYYY-MM-DD.md" in the configured folder.

A track that is playing right now is marked "(Now playing)".`,
	Args: cobra.NoArgs,
	RunE: runRecent,
}

func init() {
	rootCmd.AddCommand(recentCmd)

	recentCmd.Flags().IntP("limit", "l", 10, "Number of scrobbles to include")
	recentCmd.Flags().Bool("dry-run", false, "Print the note instead of writing it")
}

func runRecent(cmd *cobra.Command, args []string) error {
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
		n, err = assembler.PreviewRecentNote(ctx, limit)
	} else {
		n, err = assembler.CreateRecentNote(ctx, limit)
	}
	if err != nil {
		logger.Error().Err(err).Msg("Error creating recent tracks note")
		return err
	}

	writeNote(n, dryRun)
	return nil
}
