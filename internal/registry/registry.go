// Package registry holds the static table of tool alternatives: for each
// old tool terminalist knows how to intercept, the modern replacement and a
// best-effort set of flag translations.
package registry

import (
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/dshahbaz/terminalist/internal/script"
)

// MatchMode selects how a FlagMapping's OldFlag is compared against a
// command-line argument.
type MatchMode int

const (
	// MatchExact requires the argument to equal OldFlag.
	MatchExact MatchMode = iota
	// MatchPrefix matches any argument that starts with OldFlag.
	MatchPrefix
	// MatchGlob treats OldFlag as a shell-style glob pattern.
	MatchGlob
)

// FlagMapping describes the translation of one flag from the old tool into
// the replacement tool's syntax.
type FlagMapping struct {
	// OldFlag is the old tool's flag (or pattern, depending on Mode).
	OldFlag string
	// NewFlag is the replacement tool's equivalent.
	NewFlag string
	// Comment adds context about the translation, such as behavioral
	// differences in the replacement.
	Comment string
	// ConsumeNext is how many arguments the old flag consumed after itself.
	// Those values are skipped during translation so they are not
	// misinterpreted as subsequent flags.
	ConsumeNext int
	// Mode selects the matching strategy. The zero value is MatchExact.
	Mode MatchMode
}

// Matches reports whether arg triggers this mapping.
func (m FlagMapping) Matches(arg string) bool {
	switch m.Mode {
	case MatchPrefix:
		return strings.HasPrefix(arg, m.OldFlag)
	case MatchGlob:
		ok, err := path.Match(m.OldFlag, arg)
		return err == nil && ok
	default:
		return arg == m.OldFlag
	}
}

// Rule describes the replacement for one old tool.
type Rule struct {
	// OldName is the old tool's command name, unique across the registry.
	OldName string
	// NewName is the recommended replacement tool.
	NewName string
	// FurtherReading points at the replacement tool's documentation.
	FurtherReading string
	// Notes are general tips shown regardless of the arguments given.
	Notes string
	// FlagMappings are tried in declaration order; an old flag may appear
	// more than once when the replacement offers multiple alternatives.
	FlagMappings []FlagMapping
}

// Match returns every mapping that applies to arg, in declaration order.
// Matching stops at the first mapping whose pattern fits, then collects all
// mappings sharing that mapping's old flag, so a single flag can present
// multiple alternative translations. Returns nil if nothing matches.
func (r *Rule) Match(arg string) []FlagMapping {
	for _, m := range r.FlagMappings {
		if !m.Matches(arg) {
			continue
		}
		var alts []FlagMapping
		for _, alt := range r.FlagMappings {
			if alt.OldFlag == m.OldFlag {
				alts = append(alts, alt)
			}
		}
		return alts
	}
	return nil
}

var rules = make(map[string]*Rule)

// mustRegister adds a rule to the registry. Duplicate old names and rules
// shadowing the program's own filename are build mistakes, caught at init.
func mustRegister(r *Rule) {
	if r.OldName == script.Name {
		panic(fmt.Sprintf("registry: rule %q shadows the program's own name", r.OldName))
	}
	if _, dup := rules[r.OldName]; dup {
		panic(fmt.Sprintf("registry: duplicate rule for %q", r.OldName))
	}
	rules[r.OldName] = r
}

// Lookup returns the rule for oldName, if one is registered.
func Lookup(oldName string) (*Rule, bool) {
	r, ok := rules[oldName]
	return r, ok
}

// OldNames returns every registered old tool name, sorted.
func OldNames() []string {
	names := make([]string, 0, len(rules))
	for name := range rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
