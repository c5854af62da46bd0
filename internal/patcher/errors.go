package patcher

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the patcher. Compare with errors.Is.
var (
	// ErrTargetDirMissing indicates the parts_of_const directory does not exist.
	ErrTargetDirMissing = errors.New("target directory not found")

	// ErrListFailed indicates the target directory exists but could not be listed.
	ErrListFailed = errors.New("listing target directory failed")

	// ErrReadFailed indicates a candidate file could not be read.
	ErrReadFailed = errors.New("read failed")

	// ErrWriteFailed indicates a patched file could not be written back.
	ErrWriteFailed = errors.New("write failed")
)

// dirMissingError wraps ErrTargetDirMissing with the resolved path.
func dirMissingError(dir string) error {
	return fmt.Errorf("%w: %s", ErrTargetDirMissing, dir)
}
