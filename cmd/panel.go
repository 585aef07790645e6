package cmd

import (
	"fmt"

	"github.com/jfmyers9/fmnotes/internal/tui"
	"github.com/spf13/cobra"
)

var panelCmd = &cobra.Command{
	Use:   "panel",
	Short: "Open the interactive Last.fm panel",
	Long: `Open a terminal panel with four tabs: Recent Scrobbles, Top Tracks,
Top Artists and Top Albums.

Each tab can fetch a preview of the data and create a note from it. Top
tabs query either a period (7day ... overall) or one weekly chart range.
The panel closes once a note has been created.

Keys: 1-4 switch tabs, tab moves between fields, q or esc quits.

Logs are written to stderr, which the panel covers; use --log-file to
keep them.`,
	Args: cobra.NoArgs,
	RunE: runPanel,
}

func init() {
	rootCmd.AddCommand(panelCmd)
}

func runPanel(cmd *cobra.Command, args []string) error {
	cfg, client, err := newClient()
	if err != nil {
		return err
	}

	panel := tui.New(client.User(), logger)

	assembler, closeHistory := newAssembler(cfg, client, panel)
	defer closeHistory()
	panel.SetCreator(assembler)

	if err := panel.Run(cmd.Context()); err != nil {
		return err
	}

	if n, msg := panel.Created(); n != nil {
		if msg != "" {
			fmt.Println(msg)
		}
		fmt.Printf("Wrote %s (%d items)\n", n.Path, n.Items)
	}

	return nil
}
