package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DebugInvariants {
		t.Errorf("DebugInvariants = true, want false")
	}
	if !cfg.UseNodePool {
		t.Errorf("UseNodePool = false, want true")
	}
	if cfg.WatchDebounce != 50 {
		t.Errorf("WatchDebounce = %d, want 50", cfg.WatchDebounce)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	contents := "debug_invariants = true\nwatch_debounce_ms = 250\ninspect_theme = \"plasma\"\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.DebugInvariants {
		t.Errorf("DebugInvariants = false, want true")
	}
	if cfg.WatchDebounce != 250 {
		t.Errorf("WatchDebounce = %d, want 250", cfg.WatchDebounce)
	}
	if cfg.InspectTheme != "plasma" {
		t.Errorf("InspectTheme = %q, want plasma", cfg.InspectTheme)
	}
	// File did not touch use_node_pool, so the default survives the merge.
	if !cfg.UseNodePool {
		t.Errorf("UseNodePool = false, want true (default preserved)")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("BOTCTL_DEBUG_INVARIANTS", "true")
	t.Setenv("BOTCTL_WATCH_DEBOUNCE_MS", "10")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.DebugInvariants {
		t.Errorf("DebugInvariants = false, want true (env override)")
	}
	if cfg.WatchDebounce != 10 {
		t.Errorf("WatchDebounce = %d, want 10 (env override)", cfg.WatchDebounce)
	}
}

func TestLoadRejectsNegativeDebounce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("watch_debounce_ms = -5\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("Load with negative debounce succeeded, want error")
	}
}
