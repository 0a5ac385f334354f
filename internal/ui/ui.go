// Package ui provides the shared color palette for terminalist's output.
package ui

import "github.com/charmbracelet/lipgloss"

// Color palette shared across all output. Chosen for dark terminal
// backgrounds with good contrast.
const (
	// ColorOld is blue - used for the old tool's name and flags.
	ColorOld = lipgloss.Color("#3B82F6")

	// ColorNew is cyan - used for the replacement tool and its flags.
	ColorNew = lipgloss.Color("#06B6D4")

	// ColorTitle is purple - used for headers.
	ColorTitle = lipgloss.Color("#7C3AED")

	// ColorMuted is gray - used for comments and secondary text.
	ColorMuted = lipgloss.Color("#6B7280")

	// ColorSuccess is green - used for positive outcomes.
	ColorSuccess = lipgloss.Color("#10B981")
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorTitle)
	oldStyle     = lipgloss.NewStyle().Foreground(ColorOld)
	newStyle     = lipgloss.NewStyle().Foreground(ColorNew)
	mutedStyle   = lipgloss.NewStyle().Foreground(ColorMuted)
	successStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
)

// ColorEnabled decides whether styled output should be produced. The
// NO_COLOR environment variable (https://no-color.org/) always wins; the
// config value "never" disables color too. getenv is a parameter so tests
// can supply their own environment.
func ColorEnabled(getenv func(string) string, configColor string) bool {
	if getenv("NO_COLOR") != "" {
		return false
	}
	return configColor != "never"
}

// Palette renders strings in the shared color roles. A disabled palette
// returns its input unchanged, which keeps output byte-stable for pipes and
// for NO_COLOR users.
type Palette struct {
	enabled bool
}

// NewPalette returns a palette that styles output only when enabled.
func NewPalette(enabled bool) *Palette {
	return &Palette{enabled: enabled}
}

// Title styles a header line.
func (p *Palette) Title(s string) string { return p.render(titleStyle, s) }

// Old styles the old tool's name or flag.
func (p *Palette) Old(s string) string { return p.render(oldStyle, s) }

// New styles the replacement tool's name or flag.
func (p *Palette) New(s string) string { return p.render(newStyle, s) }

// Muted styles secondary text such as comments.
func (p *Palette) Muted(s string) string { return p.render(mutedStyle, s) }

// Success styles positive outcomes.
func (p *Palette) Success(s string) string { return p.render(successStyle, s) }

func (p *Palette) render(style lipgloss.Style, s string) string {
	if !p.enabled {
		return s
	}
	return style.Render(s)
}
