package files

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// ExpandPath resolves paths that include a tilde (~) to the user's home directory.
func ExpandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(homeDir, path[2:]), nil
	}
	return path, nil
}

// ValidatePath checks if the given path is a valid file path for reading.
func ValidatePath(fs afero.Fs, path string) error {
	info, err := fs.Stat(path)
	if err != nil {
		return fmt.Errorf("path stat error: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("path %q is a directory, not a file", path)
	}

	if info.Mode()&os.ModeType != 0 {
		return fmt.Errorf("path %q is not a regular file", path)
	}
	return nil
}

// ReadFile validates path and returns its full content.
func ReadFile(fs afero.Fs, path string) ([]byte, error) {
	if err := ValidatePath(fs, path); err != nil {
		return nil, err
	}
	return afero.ReadFile(fs, path)
}

// CreateFile opens path for writing, truncating any existing content.
func CreateFile(fs afero.Fs, path string) (afero.File, error) {
	expanded, err := ExpandPath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to expand path %q: %w", path, err)
	}
	return fs.OpenFile(expanded, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
}
