package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("TASKPAD_HOME", "")
	t.Setenv("TASKPAD_STORAGE", "")
	t.Setenv("TASKPAD_FILE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Storage != "file" {
		t.Fatalf("expected file storage, got %q", cfg.Storage)
	}
	if cfg.Home != filepath.Join(home, "taskpad") {
		t.Fatalf("expected home under %s, got %q", home, cfg.Home)
	}
	if cfg.File != filepath.Join(home, "taskpad", "tasks.txt") {
		t.Fatalf("unexpected data file %q", cfg.File)
	}
}

func TestLoadOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TASKPAD_HOME", dir)
	t.Setenv("TASKPAD_STORAGE", "sqlite")
	t.Setenv("TASKPAD_FILE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.File != filepath.Join(dir, "tasks.db") {
		t.Fatalf("expected sqlite file in %s, got %q", dir, cfg.File)
	}

	t.Setenv("TASKPAD_FILE", filepath.Join(dir, "elsewhere.db"))
	cfg, err = Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.File != filepath.Join(dir, "elsewhere.db") {
		t.Fatalf("expected explicit file, got %q", cfg.File)
	}
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	t.Setenv("TASKPAD_HOME", t.TempDir())
	t.Setenv("TASKPAD_STORAGE", "postgres")

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "postgres") {
		t.Fatalf("expected unsupported backend error, got %v", err)
	}
}
