package script

import (
	"fmt"
	"os"
	"path/filepath"
)

// Name is the canonical filename of the terminalist binary. When the
// program is invoked under any other name, the invocation is treated as
// an interception of that tool.
const Name = "terminalist"

var (
	// Test seam for os.Executable().
	osExecutable = os.Executable

	// Test seam for filepath.EvalSymlinks().
	evalSymlinks = filepath.EvalSymlinks
)

// SelfPath returns the absolute, symlink-resolved path of the running
// binary. Interception symlinks point at this path, so it must resolve the
// same way regardless of whether the program was started via $PATH, a
// relative path, or one of its own symlinks.
func SelfPath() (string, error) {
	p, err := osExecutable()
	if err != nil {
		return "", fmt.Errorf("failed to determine executable path: %w", err)
	}

	resolved, err := evalSymlinks(p)
	if err != nil {
		return "", fmt.Errorf("failed to resolve symlinks for %s: %w", p, err)
	}

	return resolved, nil
}
