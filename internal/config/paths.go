package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// scriptPath expands a leading "~/" in a script path to the user's home
// directory, so scripts can be passed the way shells show them.
func scriptPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home dir: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(strings.TrimPrefix(path, "~"), "/")), nil
}
