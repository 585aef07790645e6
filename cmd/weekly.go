package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jfmyers9/fmnotes/internal/note"
	"github.com/jfmyers9/fmnotes/pkg/lastfm"
	"github.com/spf13/cobra"
)

var weeklyCmd = &cobra.Command{
	Use:   "weekly <tracks|artists|albums>",
	Short: "Create a note of one week's chart",
	Long: `Fetch the weekly track, artist or album chart for one reporting week
and write it as a note named "LastFM Weekly <kind> <from> to <to>.md".

By default the newest week is used. Pick another with --week, using the
index shown by 'fmnotes charts' (negative values count back from the
newest), or give the range directly with --from and --to as unix
timestamps or YYYY-MM-DD dates.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"tracks", "artists", "albums"},
	RunE:      runWeekly,
}

func init() {
	rootCmd.AddCommand(weeklyCmd)

	weeklyCmd.Flags().IntP("week", "w", -1, "Chart list index of the week (-1 is the newest)")
	weeklyCmd.Flags().String("from", "", "Start of the range (unix timestamp or YYYY-MM-DD)")
	weeklyCmd.Flags().String("to", "", "End of the range (unix timestamp or YYYY-MM-DD)")
	weeklyCmd.Flags().Bool("dry-run", false, "Print the note instead of writing it")
	weeklyCmd.MarkFlagsRequiredTogether("from", "to")
	weeklyCmd.MarkFlagsMutuallyExclusive("week", "from")
}

func runWeekly(cmd *cobra.Command, args []string) error {
	kind, err := lastfm.ParseKind(args[0])
	if err != nil {
		return err
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")

	cfg, client, err := newClient()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
	defer cancel()

	rng, err := resolveRange(ctx, cmd, client.User())
	if err != nil {
		logger.Error().Err(err).Msg("Error fetching weekly chart")
		return err
	}

	assembler, closeHistory := newAssembler(cfg, client, printNotifier)
	defer closeHistory()

	var n *note.Note
	if dryRun {
		n, err = assembler.PreviewWeeklyNote(ctx, kind, rng)
	} else {
		n, err = assembler.CreateWeeklyNote(ctx, kind, rng)
	}
	if err != nil {
		logger.Error().Err(err).Msg("Error creating weekly note")
		return err
	}

	writeNote(n, dryRun)
	return nil
}

// resolveRange picks the chart range from --from/--to, or from the chart
// list by --week
func resolveRange(ctx context.Context, cmd *cobra.Command, user *lastfm.UserService) (lastfm.ChartRange, error) {
	fromFlag, _ := cmd.Flags().GetString("from")
	toFlag, _ := cmd.Flags().GetString("to")
	if fromFlag != "" || toFlag != "" {
		from, err := parseBoundary(fromFlag)
		if err != nil {
			return lastfm.ChartRange{}, fmt.Errorf("invalid --from: %w", err)
		}
		to, err := parseBoundary(toFlag)
		if err != nil {
			return lastfm.ChartRange{}, fmt.Errorf("invalid --to: %w", err)
		}
		return lastfm.ChartRange{From: from, To: to}, nil
	}

	weeks, err := user.GetWeeklyChartList(ctx)
	if err != nil {
		return lastfm.ChartRange{}, fmt.Errorf("failed to fetch weekly chart list: %w", err)
	}

	index, _ := cmd.Flags().GetInt("week")
	return selectWeek(weeks, index)
}

// selectWeek returns weeks[index]; a negative index counts from the end
func selectWeek(weeks []lastfm.ChartRange, index int) (lastfm.ChartRange, error) {
	if len(weeks) == 0 {
		return lastfm.ChartRange{}, fmt.Errorf("no weekly charts available")
	}

	i := index
	if i < 0 {
		i += len(weeks)
	}
	if i < 0 || i >= len(weeks) {
		return lastfm.ChartRange{}, fmt.Errorf("week %d out of range (%d weeks available)", index, len(weeks))
	}
	return weeks[i], nil
}

// parseBoundary accepts unix seconds or a YYYY-MM-DD date (UTC midnight)
func parseBoundary(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("empty value")
	}

	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		return s, nil
	}

	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return "", fmt.Errorf("%q is neither a unix timestamp nor a YYYY-MM-DD date", s)
	}
	return strconv.FormatInt(t.Unix(), 10), nil
}
