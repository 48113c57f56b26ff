package testsupport

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

var (
	buildOnce sync.Once
	tdoPath   string
	buildErr  error
)

// BuildTdo builds the tdo binary once and returns its path.
func BuildTdo(t testing.TB) string {
	t.Helper()

	buildOnce.Do(func() {
		moduleRoot, err := findModuleRoot()
		if err != nil {
			buildErr = err
			return
		}

		binDir, err := os.MkdirTemp("", "tdo-bin-")
		if err != nil {
			buildErr = err
			return
		}

		tdoPath = filepath.Join(binDir, "tdo")
		cmd := exec.Command("go", "build", "-o", tdoPath, "./cmd/tdo")
		cmd.Dir = moduleRoot
		output, err := cmd.CombinedOutput()
		if err != nil {
			buildErr = fmt.Errorf("build tdo: %w: %s", err, strings.TrimSpace(string(output)))
		}
	})

	if buildErr != nil {
		t.Fatalf("%v", buildErr)
	}

	return tdoPath
}

// SetupScriptEnv configures common environment variables for testscript.
// Each script gets a sandboxed HOME with the default data directory so
// runs cannot touch the developer's real files.
func SetupScriptEnv(t testing.TB, env *testscript.Env) error {
	t.Helper()

	env.Setenv("TDO", BuildTdo(t))

	homeDir := filepath.Join(env.WorkDir, "home")
	if err := os.MkdirAll(filepath.Join(homeDir, ".local", "share", "tdo"), 0o755); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Join(homeDir, ".config", "tdo"), 0o755); err != nil {
		return err
	}
	env.Setenv("HOME", homeDir)
	env.Setenv("NO_COLOR", "1")
	return nil
}

// CmdEnvSet stores the trimmed contents of a file in an env var.
func CmdEnvSet(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("envset does not support negation")
	}
	if len(args) != 2 {
		ts.Fatalf("usage: envset VAR FILE")
	}

	value := strings.TrimSpace(ts.ReadFile(args[1]))
	ts.Setenv(args[0], value)
}

func findModuleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find module root (go.mod)")
		}
		dir = parent
	}
}
