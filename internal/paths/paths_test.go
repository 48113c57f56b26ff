package paths

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultDataDirUsesHome(t *testing.T) {
	t.Setenv("HOME", filepath.Join("/tmp", "test-home"))

	dir, err := DefaultDataDir()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	expected := filepath.Join("/tmp", "test-home", ".local", "share", "tdo")
	if dir != expected {
		t.Fatalf("expected %s, got %s", expected, dir)
	}
}

func TestGlobalConfigPathUsesHome(t *testing.T) {
	t.Setenv("HOME", filepath.Join("/tmp", "test-home"))

	path, err := GlobalConfigPath()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	expected := filepath.Join("/tmp", "test-home", ".config", "tdo", "config.toml")
	if path != expected {
		t.Fatalf("expected %s, got %s", expected, path)
	}
}

func TestWorkingDirReturnsCurrentDir(t *testing.T) {
	currentDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	workDir := t.TempDir()
	if err := os.Chdir(workDir); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(currentDir)
	})

	resolved, err := WorkingDir()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resolved != workDir {
		t.Fatalf("expected %s, got %s", workDir, resolved)
	}
}

func TestResolveWithDefault(t *testing.T) {
	t.Run("returns override when provided", func(t *testing.T) {
		result, err := ResolveWithDefault("/custom/path", DefaultDataDir)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if result != "/custom/path" {
			t.Fatalf("expected /custom/path, got %s", result)
		}
	})

	t.Run("calls default function when override is empty", func(t *testing.T) {
		t.Setenv("HOME", filepath.Join("/tmp", "test-home"))

		result, err := ResolveWithDefault("", DefaultDataDir)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		expected := filepath.Join("/tmp", "test-home", ".local", "share", "tdo")
		if result != expected {
			t.Fatalf("expected %s, got %s", expected, result)
		}
	})

	t.Run("propagates error from default function", func(t *testing.T) {
		errorFn := func() (string, error) {
			return "", os.ErrNotExist
		}

		_, err := ResolveWithDefault("", errorFn)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if err != os.ErrNotExist {
			t.Fatalf("expected os.ErrNotExist, got %v", err)
		}
	})
}
