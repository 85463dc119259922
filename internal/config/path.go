// Package config provides configuration utilities for the application.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultDBPath is where the ledger database lives unless overridden by
// the database.path config key.
const DefaultDBPath = "$HOME/.local/share/pocket/pocket.db"

// ExpandPath expands ~ and environment variables in a file path.
// It handles both ~ for home directory and $VAR style environment
// variables.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}

	return os.ExpandEnv(path)
}
