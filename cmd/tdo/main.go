// Package main implements the tdo CLI tool.
package main

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tdo-app/tdo/internal/config"
	"github.com/tdo-app/tdo/internal/paths"
	"github.com/tdo-app/tdo/todo"
)

func main() {
	// A .env in the working directory may set TDO_DATA_DIR.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		var exitErr interface{ ExitCode() int }
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "tdo",
	Short:         "tdo - a todo.txt task list with notes",
	SilenceUsage:  true,
	SilenceErrors: false,
}

// loadConfig loads the merged global and working-directory config.
func loadConfig() (*config.Config, error) {
	workDir, err := paths.WorkingDir()
	if err != nil {
		return nil, err
	}
	return config.Load(workDir)
}

// openStore resolves the data directory and opens the todo store.
func openStore() (*todo.Store, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	dataDir, err := cfg.DataDir()
	if err != nil {
		return nil, nil, err
	}

	store, err := todo.Open(dataDir, todo.OpenOptions{})
	if err != nil {
		return nil, nil, err
	}
	return store, cfg, nil
}

// dataDir resolves the data directory without opening the store.
func dataDir() (string, error) {
	cfg, err := loadConfig()
	if err != nil {
		return "", err
	}
	return cfg.DataDir()
}

const defaultOutputWidth = 80

// terminalWidth returns the width of stdout, or a fixed default when
// stdout is not a terminal.
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < 1 {
		return defaultOutputWidth
	}
	return width
}
