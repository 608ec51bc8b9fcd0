package errors

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ParseGateID parses a gate id argument. Ids are non-negative decimal
// integers; id 0 is the constant gate.
func ParseGateID(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, New(ErrCodeInvalidGateID, "gate id cannot be empty")
	}
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, New(ErrCodeInvalidGateID, "gate id must be a number: %q", s)
	}
	if id < 0 {
		return 0, New(ErrCodeInvalidGateID, "gate id cannot be negative: %d", id)
	}
	return id, nil
}

// ValidateLevel rejects negative report depths.
func ValidateLevel(level int) error {
	if level < 0 {
		return New(ErrCodeInvalidLevel, "level cannot be negative: %d", level)
	}
	return nil
}

// ValidateOutputPath checks that path can be created: it must be non-empty,
// not a directory, and its parent directory must exist.
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "output path cannot be empty")
	}
	if strings.ContainsRune(path, '\x00') {
		return New(ErrCodeInvalidInput, "output path contains invalid characters")
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return New(ErrCodeInvalidInput, "output path is a directory: %s", path)
	}
	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if err != nil {
		return New(ErrCodeFileNotFound, "output directory does not exist: %s", dir)
	}
	if !info.IsDir() {
		return New(ErrCodeInvalidInput, "output parent is not a directory: %s", dir)
	}
	return nil
}
