// Package intercept renders the guidance shown when terminalist is invoked
// through one of its interception symlinks. It never runs the old tool or
// the replacement; output is the entire effect.
package intercept

import (
	"fmt"
	"io"

	"github.com/dshahbaz/terminalist/internal/registry"
	"github.com/dshahbaz/terminalist/internal/script"
	"github.com/dshahbaz/terminalist/internal/ui"
)

const homepage = "https://www.terminalist.tips/"

// Renderer writes replacement guidance for one intercepted invocation.
type Renderer struct {
	out        io.Writer
	palette    *ui.Palette
	scriptPath string
}

// NewRenderer returns a renderer writing to out. scriptPath is the resolved
// path of the terminalist binary, shown in the footer so users can find the
// file behind the symlink.
func NewRenderer(out io.Writer, palette *ui.Palette, scriptPath string) *Renderer {
	return &Renderer{
		out:        out,
		palette:    palette,
		scriptPath: scriptPath,
	}
}

// Render prints the full guidance for an interception: header, one block
// per argument (translated or explicitly untranslated), the rule's general
// notes, and the footer. Arguments consumed as flag values are skipped so
// they are not reported as unknown flags.
func (r *Renderer) Render(rule *registry.Rule, args []string) {
	r.header(rule)

	for i := 0; i < len(args); {
		arg := args[i]
		alts := rule.Match(arg)
		if len(alts) == 0 {
			fmt.Fprintf(r.out, "%s\n", r.palette.Old(arg))
			fmt.Fprintf(r.out, "\t%s\n", r.palette.Muted("(no known translation)"))
			i++
			continue
		}

		fmt.Fprintf(r.out, "%s\n", r.palette.Old(arg))
		for _, alt := range alts {
			fmt.Fprintf(r.out, "\t%s\n", r.palette.New(alt.NewFlag))
			if alt.Comment != "" {
				fmt.Fprintf(r.out, "\t\t%s\n", r.palette.Muted(alt.Comment))
			}
		}

		// Skip the values the old flag consumed.
		i += 1 + alts[0].ConsumeNext
	}

	r.footer(rule)
}

func (r *Renderer) header(rule *registry.Rule) {
	fmt.Fprintln(r.out, r.palette.Title("Terminalist Habit Maker"))
	fmt.Fprintln(r.out, "Instead of:")
	fmt.Fprintf(r.out, "\t%s\n", r.palette.Old(rule.OldName))
	fmt.Fprintln(r.out, "use:")
	fmt.Fprintf(r.out, "\t%s\n", r.palette.New(rule.NewName))
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, "Suggested argument replacements (may not be exhaustive):")
}

func (r *Renderer) footer(rule *registry.Rule) {
	fmt.Fprintln(r.out)
	if rule.Notes != "" {
		fmt.Fprintf(r.out, "Tip: %s\n", r.palette.Muted(rule.Notes))
	}
	if rule.FurtherReading != "" {
		fmt.Fprintf(r.out, "Further reading: %s\n", rule.FurtherReading)
	}
	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out,
		"You're seeing this because `%s` is configured to show you this alternate tool.\n", script.Name)
	fmt.Fprintf(r.out,
		"To disable this, run `%s --remove %s` (binary located at %s).\n",
		script.Name, rule.OldName, r.scriptPath)
	fmt.Fprintf(r.out, "Brought to you with 🏄 from %s\n", homepage)
}

// RenderUnknown reports an invocation under a symlink name that matches no
// registered tool. This means a stray symlink points at the binary, usually
// because the binary predates the rule it was linked for.
func RenderUnknown(out io.Writer, palette *ui.Palette, name, scriptPath, sourceURL string) {
	fmt.Fprintf(out, "Unknown command: %s. Can't find any alternatives for %s.\n",
		palette.Old(name), palette.Old(name))
	fmt.Fprintln(out, "Expecting to find results? Maybe this binary needs updating.")
	UpdateHint(out, scriptPath, sourceURL)
}

// UpdateHint prints the manual update fallback: the curl command that
// replaces the binary at scriptPath with the published version.
func UpdateHint(out io.Writer, scriptPath, sourceURL string) {
	fmt.Fprintf(out, "To update %s manually, run:\n", script.Name)
	fmt.Fprintf(out, "\tcurl -L -o %s %s\n", scriptPath, sourceURL)
}
