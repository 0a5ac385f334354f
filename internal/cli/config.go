package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dshahbaz/terminalist/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage terminalist configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write an example config file",
	Long: `Write a commented example config file to ~/.config/terminalist/config.toml.

Fails if the file already exists, so an edited config is never clobbered.
`,
	RunE: configInitCommand,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file paths that are consulted",
	Run: func(cmd *cobra.Command, args []string) {
		for _, p := range config.GetConfigPaths() {
			fmt.Fprintln(cmd.OutOrStdout(), p)
		}
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}

func configInitCommand(cmd *cobra.Command, args []string) error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}
	path := filepath.Join(homeDir, ".config", "terminalist", "config.toml")

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}

	if err := config.WriteExample(path); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote example config to %s\n", path)
	return nil
}
