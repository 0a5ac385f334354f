// Package install manages the interception symlinks that live alongside
// the terminalist binary. A symlink is "managed" only when it resolves to
// the binary's own canonical path; anything else in the directory is
// foreign and never touched.
package install

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/dshahbaz/terminalist/internal/registry"
)

var (
	// ErrAlreadyExists means a foreign file or symlink occupies the link
	// path. Install refuses to clobber it.
	ErrAlreadyExists = errors.New("path already exists and is not a terminalist symlink")

	// ErrNotManaged means the path is absent, not a symlink, or a symlink
	// that does not resolve to the terminalist binary.
	ErrNotManaged = errors.New("not an installed interception")
)

// Manager creates, removes, and enumerates interception symlinks in the
// directory containing the terminalist binary.
type Manager struct {
	scriptPath string
	dir        string
	logger     *log.Logger
}

// NewManager returns a manager for the binary at scriptPath. The path is
// resolved to its canonical form so that managed-symlink comparisons are
// stable no matter how the caller obtained it.
func NewManager(scriptPath string, logger *log.Logger) *Manager {
	if resolved, err := filepath.EvalSymlinks(scriptPath); err == nil {
		scriptPath = resolved
	}
	if logger == nil {
		logger = log.New(os.Stderr)
	}
	return &Manager{
		scriptPath: scriptPath,
		dir:        filepath.Dir(scriptPath),
		logger:     logger,
	}
}

// LinkPath returns the symlink path that would intercept the given tool.
func (m *Manager) LinkPath(tool string) string {
	return filepath.Join(m.dir, tool)
}

// Install creates the interception symlink for tool. It is idempotent when
// the correct symlink already exists, and fails with ErrAlreadyExists when
// anything else occupies the path: a pre-existing file is never replaced.
func (m *Manager) Install(tool string) error {
	linkPath := m.LinkPath(tool)

	if _, err := os.Lstat(linkPath); err == nil {
		managed, mErr := m.isManaged(linkPath)
		if mErr != nil {
			return mErr
		}
		if managed {
			m.logger.Debug("interception already installed", "tool", tool, "link", linkPath)
			return nil
		}
		return fmt.Errorf("%s: %w", linkPath, ErrAlreadyExists)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to inspect %s: %w", linkPath, err)
	}

	if err := os.Symlink(m.scriptPath, linkPath); err != nil {
		return fmt.Errorf("failed to create symlink %s: %w", linkPath, err)
	}

	m.logger.Debug("installed interception", "tool", tool, "link", linkPath, "target", m.scriptPath)
	return nil
}

// Remove deletes the interception symlink for tool. Only symlinks that
// resolve to the terminalist binary are deleted; the target itself is
// never followed or removed.
func (m *Manager) Remove(tool string) error {
	linkPath := m.LinkPath(tool)

	managed, err := m.isManaged(linkPath)
	if err != nil {
		return err
	}
	if !managed {
		return fmt.Errorf("%s: %w", tool, ErrNotManaged)
	}

	if err := os.Remove(linkPath); err != nil {
		return fmt.Errorf("failed to remove symlink %s: %w", linkPath, err)
	}

	m.logger.Debug("removed interception", "tool", tool, "link", linkPath)
	return nil
}

// Installed scans the binary's directory and returns the sorted list of
// installed interceptions: entries that are symlinks, resolve to the
// binary, and match a registered old tool name.
func (m *Manager) Installed() ([]string, error) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", m.dir, err)
	}

	var installed []string
	for _, entry := range entries {
		if entry.Type()&fs.ModeSymlink == 0 {
			continue
		}
		if _, known := registry.Lookup(entry.Name()); !known {
			continue
		}
		managed, err := m.isManaged(filepath.Join(m.dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		if managed {
			installed = append(installed, entry.Name())
		}
	}

	sort.Strings(installed)
	return installed, nil
}

// isManaged reports whether path is a symlink resolving to the terminalist
// binary. Absent paths and dangling symlinks are simply not managed, not
// errors.
func (m *Manager) isManaged(path string) (bool, error) {
	fi, err := os.Lstat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to inspect %s: %w", path, err)
	}
	if fi.Mode()&fs.ModeSymlink == 0 {
		return false, nil
	}

	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		// Dangling symlink.
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	return resolved == m.scriptPath, nil
}
