package registry

import (
	"sort"
	"testing"

	"github.com/dshahbaz/terminalist/internal/script"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name     string
		oldName  string
		wantOK   bool
		wantNew  string
	}{
		{
			name:    "find maps to fd",
			oldName: "find",
			wantOK:  true,
			wantNew: "fd",
		},
		{
			name:    "grep maps to rg",
			oldName: "grep",
			wantOK:  true,
			wantNew: "rg",
		},
		{
			name:    "unknown tool",
			oldName: "frobnicate",
			wantOK:  false,
		},
		{
			name:    "own name is never a rule",
			oldName: script.Name,
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, ok := Lookup(tt.oldName)
			if ok != tt.wantOK {
				t.Fatalf("Lookup(%q) ok = %v, want %v", tt.oldName, ok, tt.wantOK)
			}
			if ok && rule.NewName != tt.wantNew {
				t.Errorf("Lookup(%q).NewName = %q, want %q", tt.oldName, rule.NewName, tt.wantNew)
			}
		})
	}
}

func TestOldNames(t *testing.T) {
	names := OldNames()

	if len(names) == 0 {
		t.Fatal("OldNames() returned no entries")
	}

	if !sort.StringsAreSorted(names) {
		t.Errorf("OldNames() is not sorted: %v", names)
	}

	seen := make(map[string]bool)
	for _, name := range names {
		if seen[name] {
			t.Errorf("OldNames() contains duplicate %q", name)
		}
		seen[name] = true

		if name == script.Name {
			t.Errorf("OldNames() contains the program's own name %q", name)
		}

		if _, ok := Lookup(name); !ok {
			t.Errorf("OldNames() entry %q does not resolve via Lookup", name)
		}
	}
}

func TestFlagMappingMatches(t *testing.T) {
	tests := []struct {
		name    string
		mapping FlagMapping
		arg     string
		want    bool
	}{
		{
			name:    "exact match",
			mapping: FlagMapping{OldFlag: "-name"},
			arg:     "-name",
			want:    true,
		},
		{
			name:    "exact mismatch",
			mapping: FlagMapping{OldFlag: "-name"},
			arg:     "-names",
			want:    false,
		},
		{
			name:    "prefix match",
			mapping: FlagMapping{OldFlag: "--include", Mode: MatchPrefix},
			arg:     "--include=*.py",
			want:    true,
		},
		{
			name:    "prefix mismatch",
			mapping: FlagMapping{OldFlag: "--include", Mode: MatchPrefix},
			arg:     "--exclude=*.py",
			want:    false,
		},
		{
			name:    "glob match",
			mapping: FlagMapping{OldFlag: "--max-depth=*", Mode: MatchGlob},
			arg:     "--max-depth=3",
			want:    true,
		},
		{
			name:    "glob requires the literal part",
			mapping: FlagMapping{OldFlag: "--max-depth=*", Mode: MatchGlob},
			arg:     "--max-depth",
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mapping.Matches(tt.arg); got != tt.want {
				t.Errorf("Matches(%q) = %v, want %v", tt.arg, got, tt.want)
			}
		})
	}
}

func TestRuleMatch(t *testing.T) {
	rule, ok := Lookup("find")
	if !ok {
		t.Fatal("expected find rule")
	}

	t.Run("single alternative", func(t *testing.T) {
		alts := rule.Match("-name")
		if len(alts) != 1 {
			t.Fatalf("Match(-name) returned %d alternatives, want 1", len(alts))
		}
		if alts[0].NewFlag != "<name>" {
			t.Errorf("Match(-name) NewFlag = %q, want %q", alts[0].NewFlag, "<name>")
		}
		if alts[0].ConsumeNext != 1 {
			t.Errorf("Match(-name) ConsumeNext = %d, want 1", alts[0].ConsumeNext)
		}
	})

	t.Run("multiple alternatives in declaration order", func(t *testing.T) {
		alts := rule.Match("-ls")
		if len(alts) != 2 {
			t.Fatalf("Match(-ls) returned %d alternatives, want 2", len(alts))
		}
		if alts[0].NewFlag != "-l" {
			t.Errorf("first -ls alternative = %q, want -l", alts[0].NewFlag)
		}
		if alts[1].NewFlag != "-x ls -dgils" {
			t.Errorf("second -ls alternative = %q, want %q", alts[1].NewFlag, "-x ls -dgils")
		}
	})

	t.Run("no match", func(t *testing.T) {
		if alts := rule.Match("-bogus"); alts != nil {
			t.Errorf("Match(-bogus) = %v, want nil", alts)
		}
	})
}

func TestMustRegisterRejectsDuplicates(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()

	mustRegister(&Rule{OldName: "find", NewName: "fd"})
}

func TestMustRegisterRejectsOwnName(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic when a rule shadows the program name")
		}
	}()

	mustRegister(&Rule{OldName: script.Name, NewName: "something"})
}
