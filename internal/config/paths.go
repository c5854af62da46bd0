// Package config resolves where the fragments live and how diagnostics are
// logged.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rshade/responsive-link/internal/patcher"
)

// ExecutableDir returns the directory holding the running binary, with
// symlinks resolved.
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locating executable: %w", err)
	}
	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("resolving executable path %s: %w", exe, err)
	}
	return filepath.Dir(resolved), nil
}

// ResolveTargetDir returns the parts_of_const directory next to baseDir.
// The directory is not checked or created here.
func ResolveTargetDir(baseDir string) string {
	return filepath.Join(baseDir, patcher.TargetDirName)
}
