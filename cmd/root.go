/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Version information (set via ldflags during build)
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

// logger is configured from the persistent flags before any command runs
var logger = zerolog.Nop()

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fmnotes",
	Short: "Turn Last.fm listening history into markdown notes",
	Long: `fmnotes queries the Last.fm API for your listening history and writes
it as markdown notes into a folder of your notes vault.

It can create notes for your recent scrobbles, your top tracks, artists
and albums over a period, or the weekly chart of any past week. The
'panel' command opens an interactive terminal panel to browse the data
before writing a note.

Run 'fmnotes setup' first to configure your API key, username and vault.`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logFile, _ := cmd.Flags().GetString("log-file")
		logLevel, _ := cmd.Flags().GetString("log-level")
		logger = setupLogger(logFile, logLevel)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, errorMessage(err))
		os.Exit(1)
	}
}

// errorMessage converts a command error into the text shown to the user
func errorMessage(err error) string {
	if errors.Is(err, errNotConfigured) {
		return notConfiguredNotice
	}
	return "Error: " + err.Error()
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-file", "", "Log file path (default: stderr)")
}
