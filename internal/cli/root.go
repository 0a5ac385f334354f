package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/dshahbaz/terminalist/internal/config"
	"github.com/dshahbaz/terminalist/internal/install"
	"github.com/dshahbaz/terminalist/internal/intercept"
	"github.com/dshahbaz/terminalist/internal/registry"
	"github.com/dshahbaz/terminalist/internal/script"
	"github.com/dshahbaz/terminalist/internal/selfupdate"
	"github.com/dshahbaz/terminalist/internal/ui"
)

// Version is the current version of terminalist (injected via ldflags at build time)
var Version = "dev"

// ErrUnknownTool means the requested tool has no registered alternative.
var ErrUnknownTool = errors.New("unknown tool")

var (
	// Management flags (mutually exclusive, exactly one required)
	listInstalled bool
	listAvailable bool
	installTool   string
	removeTool    string
	selfUpdate    bool

	verbose bool

	// Loaded config
	cfg *config.Config

	logger *log.Logger
)

// rootCmd represents the management mode of terminalist: the mode entered
// when the binary is invoked under its own name rather than via an
// interception symlink.
var rootCmd = &cobra.Command{
	Use:   "terminalist",
	Short: "Terminalist Habit Maker - unlearn old CLI tools by intercepting them",
	Long: `terminalist creates symlinks in your $PATH to prevent you from using an old
tool and encourage you to learn a new one. For example, to use fd[1] instead
of find, create an interceptor that reminds you how to run fd:

    terminalist --install find

Executing ` + "`find`" + ` will then run terminalist instead, and it will show how to
translate the find arguments into their fd equivalents.

[1]: https://github.com/sharkdp/fd

Installation:
    Copy terminalist to a *writable* directory in your $PATH, ideally
    $HOME/bin/. Interception symlinks are created next to the binary so
    that they run instead of the tool you're trying to unlearn.

Examples:
  terminalist --list-available   # Tools terminalist knows how to intercept
  terminalist --list-installed   # Currently installed interceptions
  terminalist --install find     # Intercept find
  terminalist --remove find      # Stop intercepting find
  terminalist --self-update      # Replace the binary with the latest release

Brought to you with 🏄 from https://www.terminalist.tips/
`,
	Version:       Version,
	SilenceErrors: true,
	RunE:          rootCommand,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: false,
			Level:           log.WarnLevel,
		})
		if verbose {
			logger.SetLevel(log.DebugLevel)
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
}

// Execute runs the management mode CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().BoolVarP(&listInstalled, "list-installed", "l", false, "List the tools that are being intercepted by terminalist")
	rootCmd.Flags().BoolVarP(&listAvailable, "list-available", "L", false, "List the tools that terminalist knows how to intercept")
	rootCmd.Flags().StringVarP(&installTool, "install", "i", "", "Install terminalist for intercepting the given tool")
	rootCmd.Flags().StringVarP(&removeTool, "remove", "r", "", "Remove an existing interception")
	rootCmd.Flags().BoolVar(&selfUpdate, "self-update", false, "Replace this binary with the latest published version")

	rootCmd.MarkFlagsOneRequired(
		"list-installed", "list-available", "install", "remove", "self-update")
	rootCmd.MarkFlagsMutuallyExclusive(
		"list-installed", "list-available", "install", "remove", "self-update")

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

func rootCommand(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	self, err := script.SelfPath()
	if err != nil {
		return err
	}
	pal := ui.NewPalette(ui.ColorEnabled(os.Getenv, cfg.UI.Color))
	mgr := install.NewManager(self, logger)

	switch {
	case listInstalled:
		tools, err := mgr.Installed()
		if err != nil {
			return err
		}
		for _, tool := range tools {
			fmt.Fprintln(out, tool)
		}

	case listAvailable:
		for _, name := range registry.OldNames() {
			fmt.Fprintln(out, name)
		}

	case installTool != "":
		if _, ok := registry.Lookup(installTool); !ok {
			return fmt.Errorf("%w: %q (see --list-available)", ErrUnknownTool, installTool)
		}
		if err := mgr.Install(installTool); err != nil {
			return err
		}
		fmt.Fprintf(out, "Added interception for %s; try running `%s` now.\n",
			pal.Success(installTool), installTool)

	case removeTool != "":
		if err := mgr.Remove(removeTool); err != nil {
			return err
		}
		fmt.Fprintf(out, "Removed interception of %s\n", removeTool)

	case selfUpdate:
		return selfUpdateCommand(cmd, self)
	}

	return nil
}

// selfUpdateCommand replaces the binary on disk with the published version.
// The release check beforehand is informational only; its failure never
// blocks the update.
func selfUpdateCommand(cmd *cobra.Command, self string) error {
	out := cmd.OutOrStdout()

	if cfg.Update.CheckRelease {
		if res, err := selfupdate.CheckRelease(cfg.Update.GitHubOwner, cfg.Update.GitHubRepo, Version); err == nil {
			if res.Outdated {
				fmt.Fprintf(out, "New version available: %s (you have %s)\n", res.Current, Version)
			} else {
				fmt.Fprintf(out, "Already on the latest release (%s); fetching anyway.\n", Version)
			}
		} else {
			logger.Debug("release check failed", "err", err)
		}
	}

	updater := selfupdate.NewUpdater(self, cfg.Update.SourceURL, logger)
	if err := updater.Update(cmd.Context()); err != nil {
		intercept.UpdateHint(cmd.ErrOrStderr(), self, cfg.Update.SourceURL)
		return err
	}

	fmt.Fprintf(out, "Updated %s; the new version takes effect on the next invocation.\n", self)
	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "terminalist v%s\n", Version)
		fmt.Fprintln(cmd.OutOrStdout(), "https://github.com/dshahbaz/terminalist")
	},
}
