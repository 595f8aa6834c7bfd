package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const dirName = ".timetrack"

// DefaultDir is ~/.timetrack.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("user home dir: %w", err)
	}
	return filepath.Join(home, dirName), nil
}

func DBPath(dir string) string {
	return filepath.Join(dir, "timetrack.db")
}

func ConfigPath(dir string) string {
	return filepath.Join(dir, "config.toml")
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
