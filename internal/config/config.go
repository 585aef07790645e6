package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// DefaultFolder is the vault folder notes are written to when none is configured.
const DefaultFolder = "LastFM"

// ErrMissingCredentials is returned by Validate when the API key or
// username is empty.
var ErrMissingCredentials = errors.New("Last.fm API key and username are not configured")

// Config holds application configuration
type Config struct {
	// Root of the note vault
	// Default: current directory
	VaultDir string

	// Folder inside the vault that notes are written to
	// Default: "LastFM"
	Folder string

	// Prepend YAML front matter to created notes
	FrontMatter bool

	// Path of the SQLite note history database
	HistoryDB string

	// Last.fm API settings
	LastFM LastFMConfig
}

// LastFMConfig holds Last.fm specific configuration
type LastFMConfig struct {
	APIKey   string
	Username string
	BaseURL  string // Optional API endpoint override, used for testing
}

// Load reads configuration from file and environment
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Config file locations (in order of precedence)
	configDir := getConfigDir()
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")

	// Set defaults
	v.SetDefault("vault_dir", ".")
	v.SetDefault("folder", DefaultFolder)
	v.SetDefault("frontmatter", false)
	v.SetDefault("history_db", filepath.Join(getDataDir(), "notes.db"))
	v.SetDefault("lastfm.api_key", "")
	v.SetDefault("lastfm.username", "")
	v.SetDefault("lastfm.base_url", "")

	// Read config file (optional - don't fail if missing)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Read from environment variables, e.g. FMNOTES_LASTFM_API_KEY
	v.SetEnvPrefix("FMNOTES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Map config to struct
	cfg := &Config{
		VaultDir:    v.GetString("vault_dir"),
		Folder:      v.GetString("folder"),
		FrontMatter: v.GetBool("frontmatter"),
		HistoryDB:   v.GetString("history_db"),
		LastFM: LastFMConfig{
			APIKey:   v.GetString("lastfm.api_key"),
			Username: v.GetString("lastfm.username"),
			BaseURL:  v.GetString("lastfm.base_url"),
		},
	}

	return cfg, nil
}

// Validate checks the settings required before any network call.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.LastFM.APIKey) == "" || strings.TrimSpace(c.LastFM.Username) == "" {
		return ErrMissingCredentials
	}
	return nil
}

// illegalFolderChars are rejected by at least one common filesystem or by
// note-taking apps that sync vaults across platforms.
const illegalFolderChars = `\:*?"<>|#^[]`

// Warnings describes empty or illegal values without rejecting them.
func (c *Config) Warnings() []string {
	var warnings []string

	if strings.TrimSpace(c.LastFM.APIKey) == "" {
		warnings = append(warnings, "API key is empty; get one at https://www.last.fm/api/account/create")
	}
	if strings.TrimSpace(c.LastFM.Username) == "" {
		warnings = append(warnings, "Username is empty")
	}

	folder := strings.TrimSpace(c.Folder)
	switch {
	case folder == "":
		warnings = append(warnings, fmt.Sprintf("Folder is empty; notes will go to %q", DefaultFolder))
	case filepath.IsAbs(folder):
		warnings = append(warnings, "Folder should be relative to the vault, not an absolute path")
	case strings.ContainsAny(folder, illegalFolderChars):
		warnings = append(warnings, fmt.Sprintf("Folder contains characters that are not allowed in note paths: %s", illegalFolderChars))
	}
	for _, part := range strings.Split(filepath.ToSlash(folder), "/") {
		if part == ".." {
			warnings = append(warnings, "Folder must stay inside the vault (no '..')")
			break
		}
	}

	return warnings
}

// NotesFolder returns the configured folder, falling back to DefaultFolder.
func (c *Config) NotesFolder() string {
	if f := strings.TrimSpace(c.Folder); f != "" {
		return f
	}
	return DefaultFolder
}

// getConfigDir returns the configuration directory path
// Creates the directory if it doesn't exist
func getConfigDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	configDir := filepath.Join(homeDir, ".config", "fmnotes")

	// Create config directory if it doesn't exist
	_ = os.MkdirAll(configDir, 0755)

	return configDir
}

// getDataDir returns the directory for local state such as the note history.
func getDataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(homeDir, ".local", "share", "fmnotes")
}

// GetConfigDir returns the configuration directory path (public helper)
func GetConfigDir() string {
	return getConfigDir()
}

// Save writes configuration to file
func (c *Config) Save() error {
	return c.SaveTo(filepath.Join(getConfigDir(), "config.yaml"))
}

// SaveTo writes configuration to the given file
func (c *Config) SaveTo(configFile string) error {
	v := viper.New()

	// Set values in viper
	v.Set("vault_dir", c.VaultDir)
	v.Set("folder", c.Folder)
	v.Set("frontmatter", c.FrontMatter)
	v.Set("history_db", c.HistoryDB)
	v.Set("lastfm.api_key", c.LastFM.APIKey)
	v.Set("lastfm.username", c.LastFM.Username)
	if c.LastFM.BaseURL != "" {
		v.Set("lastfm.base_url", c.LastFM.BaseURL)
	}

	// Write to file
	return v.WriteConfigAs(configFile)
}
