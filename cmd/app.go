package cmd

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/jfmyers9/fmnotes/internal/config"
	"github.com/jfmyers9/fmnotes/internal/note"
	"github.com/jfmyers9/fmnotes/internal/notelog"
	"github.com/jfmyers9/fmnotes/pkg/lastfm"
)

// errNotConfigured is returned instead of making a request without credentials
var errNotConfigured = errors.New("last.fm api key or username not configured")

// notConfiguredNotice is printed in place of errNotConfigured
const notConfiguredNotice = "Please configure Last.fm API key and username (run 'fmnotes setup')."

const requestTimeout = 30 * time.Second

// newClient loads the configuration and creates a Last.fm client.
// Missing credentials fail before any request is made.
func newClient() (*config.Config, *lastfm.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, errNotConfigured
	}

	client, err := lastfm.NewClient(lastfm.Config{
		APIKey:     cfg.LastFM.APIKey,
		Username:   cfg.LastFM.Username,
		BaseURL:    cfg.LastFM.BaseURL,
		HTTPClient: &http.Client{Timeout: requestTimeout},
		Logger:     lastfmLogger{logger: logger.With().Str("component", "lastfm").Logger()},
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create Last.fm client: %w", err)
	}

	return cfg, client, nil
}

// newAssembler wires the client, vault and note history together.
// The returned func closes the history database.
func newAssembler(cfg *config.Config, client *lastfm.Client, notifier note.Notifier) (*note.Assembler, func()) {
	opts := note.Options{
		Source:      client.User(),
		Vault:       note.FSVault{Root: cfg.VaultDir, Folder: cfg.NotesFolder()},
		Notifier:    notifier,
		FrontMatter: cfg.FrontMatter,
		User:        client.Username(),
		Logger:      logger,
	}

	history, err := openHistory(cfg.HistoryDB)
	if err != nil {
		// Notes are still written without a history
		logger.Warn().Err(err).Str("path", cfg.HistoryDB).Msg("Note history unavailable")
		return note.New(opts), func() {}
	}

	opts.History = history
	return note.New(opts), func() { history.Close() }
}

// openHistory opens the note history, creating its directory if needed
func openHistory(path string) (*notelog.Log, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return notelog.Open(path)
}

// printNotifier prints success messages to stdout
var printNotifier = note.NotifyFunc(func(msg string) {
	fmt.Println(msg)
})

// writeNote prints a dry-run preview or reports where the note was written
func writeNote(n *note.Note, dryRun bool) {
	if dryRun {
		fmt.Print(n.Content)
		return
	}
	fmt.Printf("Wrote %s (%d items)\n", n.Path, n.Items)
}
