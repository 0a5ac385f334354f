package cli

import (
	"fmt"
	"os"

	"github.com/dshahbaz/terminalist/internal/config"
	"github.com/dshahbaz/terminalist/internal/intercept"
	"github.com/dshahbaz/terminalist/internal/registry"
	"github.com/dshahbaz/terminalist/internal/script"
	"github.com/dshahbaz/terminalist/internal/ui"
)

// Intercept handles an invocation under a symlink name instead of the
// binary's own name. It prints replacement guidance for the intercepted
// tool and returns the process exit code: 0 for a recognized tool (the
// interception is informational), 1 when the invoked name matches no
// registered rule.
func Intercept(invokedName string, args []string) int {
	cfg, err := config.Load()
	if err != nil {
		// A broken config file must not break interceptions.
		cfg = config.GetDefaultConfig()
	}
	pal := ui.NewPalette(ui.ColorEnabled(os.Getenv, cfg.UI.Color))

	self, err := script.SelfPath()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	rule, ok := registry.Lookup(invokedName)
	if !ok {
		// A stray symlink points here under a name this build does not
		// know. Suggest updating rather than failing silently.
		intercept.RenderUnknown(os.Stderr, pal, invokedName, self, cfg.Update.SourceURL)
		return 1
	}

	intercept.NewRenderer(os.Stdout, pal, self).Render(rule, args)
	return 0
}
