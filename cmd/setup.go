package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jfmyers9/fmnotes/internal/config"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Configure Last.fm credentials and the notes vault",
	Long: `Configure fmnotes interactively.

You will be asked for:
1. Your Last.fm API key
2. Your Last.fm username
3. The vault directory notes are written into
4. The folder inside the vault for Last.fm notes

Press Enter to keep the current value shown in brackets. Values can also
be given as flags, in which case they are not prompted for.

You can get an API key from: https://www.last.fm/api/account/create`,
	Args: cobra.NoArgs,
	RunE: runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)

	setupCmd.Flags().String("api-key", "", "Last.fm API key")
	setupCmd.Flags().String("username", "", "Last.fm username")
	setupCmd.Flags().String("vault", "", "Vault directory")
	setupCmd.Flags().String("folder", "", "Folder inside the vault")
	setupCmd.Flags().Bool("frontmatter", false, "Prepend YAML front matter to notes")
}

func runSetup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Println("fmnotes Setup")
	fmt.Println("=============")
	fmt.Println()
	fmt.Println("You can get an API key from: https://www.last.fm/api/account/create")
	fmt.Println()

	reader := bufio.NewReader(os.Stdin)
	fields := []struct {
		flag   string
		prompt string
		value  *string
	}{
		{"api-key", "Last.fm API Key", &cfg.LastFM.APIKey},
		{"username", "Last.fm Username", &cfg.LastFM.Username},
		{"vault", "Vault directory", &cfg.VaultDir},
		{"folder", "Notes folder", &cfg.Folder},
	}

	for _, f := range fields {
		if cmd.Flags().Changed(f.flag) {
			*f.value, _ = cmd.Flags().GetString(f.flag)
			continue
		}
		value, err := prompt(reader, f.prompt, *f.value)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", strings.ToLower(f.prompt), err)
		}
		*f.value = value
	}

	if cmd.Flags().Changed("frontmatter") {
		cfg.FrontMatter, _ = cmd.Flags().GetBool("frontmatter")
	}

	if warnings := cfg.Warnings(); len(warnings) > 0 {
		fmt.Println()
		for _, w := range warnings {
			fmt.Printf("! %s\n", w)
		}
	}

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Printf("\n✓ Settings saved to %s/config.yaml\n", config.GetConfigDir())
	if cfg.Validate() == nil {
		fmt.Println("\nYou can now use 'fmnotes recent', 'fmnotes top' or 'fmnotes panel'.")
	}

	return nil
}

// prompt asks for a value, keeping current when the answer is empty.
// End of input also keeps current.
func prompt(reader *bufio.Reader, label, current string) (string, error) {
	if current != "" {
		fmt.Printf("%s [%s]: ", label, current)
	} else {
		fmt.Printf("%s: ", label)
	}

	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}

	if answer := strings.TrimSpace(line); answer != "" {
		return answer, nil
	}
	return current, nil
}
