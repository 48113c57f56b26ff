package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// HomeDir returns the current user's home directory.
func HomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return home, nil
}

// DefaultDataDir returns the default tdo data directory, which holds
// todo.txt and the notes subdirectory.
func DefaultDataDir() (string, error) {
	home, err := HomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".local", "share", "tdo"), nil
}

// GlobalConfigPath returns the path of the global config file.
func GlobalConfigPath() (string, error) {
	home, err := HomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".config", "tdo", "config.toml"), nil
}

// WorkingDir returns the current working directory.
func WorkingDir() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return dir, nil
}

// ResolveWithDefault returns the override if non-empty, otherwise the
// result of defaultFn.
func ResolveWithDefault(override string, defaultFn func() (string, error)) (string, error) {
	if override != "" {
		return override, nil
	}
	return defaultFn()
}
