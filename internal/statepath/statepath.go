// Package statepath resolves where deskclock keeps its runtime state
// (the persisted window geometry), separate from the user-edited
// config file.
package statepath

import (
	"fmt"
	"os"
	"path/filepath"
)

// Dir returns the state directory. Priority:
// 1) $XDG_STATE_HOME/deskclock (if XDG_STATE_HOME is set)
// 2) ~/.local/state/deskclock
func Dir() (string, error) {
	if stateDir := os.Getenv("XDG_STATE_HOME"); stateDir != "" {
		return filepath.Join(stateDir, "deskclock"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".local", "state", "deskclock"), nil
}

// GeometryPath returns the persisted window geometry file path.
func GeometryPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "window.json"), nil
}
