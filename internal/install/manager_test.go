package install

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// newTestManager creates a fake terminalist binary in a temp directory and
// returns a manager for it plus the binary's canonical path.
func newTestManager(t *testing.T) (*Manager, string) {
	t.Helper()

	dir := t.TempDir()
	scriptPath := filepath.Join(dir, "terminalist")
	if err := os.WriteFile(scriptPath, []byte("#!/bin/true\n"), 0o755); err != nil {
		t.Fatalf("failed to create fake binary: %v", err)
	}

	resolved, err := filepath.EvalSymlinks(scriptPath)
	if err != nil {
		t.Fatalf("failed to resolve fake binary path: %v", err)
	}

	return NewManager(scriptPath, nil), resolved
}

func TestInstallAndList(t *testing.T) {
	mgr, scriptPath := newTestManager(t)

	if err := mgr.Install("find"); err != nil {
		t.Fatalf("Install(find) failed: %v", err)
	}

	linkPath := mgr.LinkPath("find")
	fi, err := os.Lstat(linkPath)
	if err != nil {
		t.Fatalf("symlink not created: %v", err)
	}
	if fi.Mode()&os.ModeSymlink == 0 {
		t.Fatalf("%s is not a symlink", linkPath)
	}

	resolved, err := filepath.EvalSymlinks(linkPath)
	if err != nil {
		t.Fatalf("failed to resolve symlink: %v", err)
	}
	if resolved != scriptPath {
		t.Errorf("symlink resolves to %s, want %s", resolved, scriptPath)
	}

	installed, err := mgr.Installed()
	if err != nil {
		t.Fatalf("Installed() failed: %v", err)
	}
	if len(installed) != 1 || installed[0] != "find" {
		t.Errorf("Installed() = %v, want [find]", installed)
	}
}

func TestInstallIdempotent(t *testing.T) {
	mgr, _ := newTestManager(t)

	if err := mgr.Install("find"); err != nil {
		t.Fatalf("first Install(find) failed: %v", err)
	}
	if err := mgr.Install("find"); err != nil {
		t.Fatalf("second Install(find) failed: %v", err)
	}

	installed, err := mgr.Installed()
	if err != nil {
		t.Fatalf("Installed() failed: %v", err)
	}
	if len(installed) != 1 {
		t.Errorf("Installed() = %v, want exactly one entry", installed)
	}
}

func TestInstallRefusesToClobber(t *testing.T) {
	mgr, _ := newTestManager(t)

	// A foreign regular file occupies the link path.
	linkPath := mgr.LinkPath("find")
	content := []byte("precious user data\n")
	if err := os.WriteFile(linkPath, content, 0o644); err != nil {
		t.Fatalf("failed to create foreign file: %v", err)
	}

	err := mgr.Install("find")
	if !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("Install(find) error = %v, want ErrAlreadyExists", err)
	}

	got, err := os.ReadFile(linkPath)
	if err != nil {
		t.Fatalf("foreign file unreadable after failed install: %v", err)
	}
	if string(got) != string(content) {
		t.Errorf("foreign file contents changed: %q", got)
	}
}

func TestInstallRemoveRoundTrip(t *testing.T) {
	mgr, _ := newTestManager(t)

	if err := mgr.Install("find"); err != nil {
		t.Fatalf("Install(find) failed: %v", err)
	}
	if err := mgr.Remove("find"); err != nil {
		t.Fatalf("Remove(find) failed: %v", err)
	}

	if _, err := os.Lstat(mgr.LinkPath("find")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("symlink still present after Remove: %v", err)
	}

	installed, err := mgr.Installed()
	if err != nil {
		t.Fatalf("Installed() failed: %v", err)
	}
	if len(installed) != 0 {
		t.Errorf("Installed() = %v, want empty", installed)
	}
}

func TestRemoveErrors(t *testing.T) {
	mgr, _ := newTestManager(t)

	tests := []struct {
		name  string
		setup func(t *testing.T)
		tool  string
	}{
		{
			name:  "absent path",
			setup: func(t *testing.T) {},
			tool:  "find",
		},
		{
			name: "regular file",
			setup: func(t *testing.T) {
				if err := os.WriteFile(mgr.LinkPath("grep"), []byte("x"), 0o644); err != nil {
					t.Fatal(err)
				}
			},
			tool: "grep",
		},
		{
			name: "foreign symlink",
			setup: func(t *testing.T) {
				other := filepath.Join(t.TempDir(), "other")
				if err := os.WriteFile(other, []byte("x"), 0o755); err != nil {
					t.Fatal(err)
				}
				if err := os.Symlink(other, mgr.LinkPath("ls")); err != nil {
					t.Fatal(err)
				}
			},
			tool: "ls",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup(t)
			if err := mgr.Remove(tt.tool); !errors.Is(err, ErrNotManaged) {
				t.Errorf("Remove(%s) error = %v, want ErrNotManaged", tt.tool, err)
			}
		})
	}
}

func TestInstalledIgnoresForeignEntries(t *testing.T) {
	mgr, scriptPath := newTestManager(t)
	dir := filepath.Dir(scriptPath)

	// Managed symlink for a registered tool.
	if err := mgr.Install("find"); err != nil {
		t.Fatalf("Install(find) failed: %v", err)
	}

	// Symlink to the binary under a name the registry does not know.
	if err := os.Symlink(scriptPath, filepath.Join(dir, "notatool")); err != nil {
		t.Fatal(err)
	}

	// Foreign symlink under a registered name.
	other := filepath.Join(t.TempDir(), "other")
	if err := os.WriteFile(other, []byte("x"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(other, filepath.Join(dir, "grep")); err != nil {
		t.Fatal(err)
	}

	// Regular file under a registered name.
	if err := os.WriteFile(filepath.Join(dir, "cat"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	// Dangling symlink under a registered name.
	if err := os.Symlink(filepath.Join(dir, "does-not-exist"), filepath.Join(dir, "du")); err != nil {
		t.Fatal(err)
	}

	installed, err := mgr.Installed()
	if err != nil {
		t.Fatalf("Installed() failed: %v", err)
	}
	if len(installed) != 1 || installed[0] != "find" {
		t.Errorf("Installed() = %v, want [find]", installed)
	}
}
