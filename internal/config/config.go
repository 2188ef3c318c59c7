package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/dshills/offsettree/internal/config/layer"
	"github.com/dshills/offsettree/internal/config/loader"
)

// Config holds the tunables botctl and other offsettree-based tools read
// before constructing a Tree.
type Config struct {
	// DebugInvariants enables offsettree.WithDebugInvariants on every
	// tree this process constructs.
	DebugInvariants bool

	// UseNodePool enables offsettree.WithPool with a sync.Pool-backed
	// NodePool (botctl creates a fresh pool for each tree it builds).
	UseNodePool bool

	// ScriptPath, if non-empty, is a Lua break-predicate script loaded by
	// internal/script to extract line starts in place of
	// offsettree.ScanLineStarts.
	ScriptPath string

	// WatchDebounce, in milliseconds, sets how often botctl watch polls
	// the watch registry for a re-synced tree (the poll period is
	// WatchDebounce plus 10ms). internal/watch itself re-syncs on every
	// write event.
	WatchDebounce int

	// InspectTheme selects the color ramp internal/inspect uses to paint
	// each node's balance factor.
	InspectTheme string
}

func defaults() *Config {
	return &Config{
		DebugInvariants: false,
		UseNodePool:     true,
		WatchDebounce:   50,
		InspectTheme:    "default",
	}
}

// Load builds a Config by layering built-in defaults, an optional TOML
// file at path (or the user's default config path, if path is empty), and
// BOTCTL_-prefixed environment variable overrides, in ascending priority —
// the same three-tier precedence internal/config/layer was built for.
//
// A missing config file is not an error; absence means "use defaults."
func Load(path string) (*Config, error) {
	cfg := defaults()

	mgr := layer.NewManager()
	mgr.AddLayer(layer.NewLayerWithData("defaults", layer.SourceBuiltin, layer.PriorityBuiltin, toMap(cfg)))

	if path == "" {
		path = defaultUserConfigPath()
	}
	fileData, err := loader.NewTOMLLoader(path).Load()
	if err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}
	if fileData != nil {
		mgr.AddLayer(layer.NewLayerWithData("user", layer.SourceUserGlobal, layer.PriorityUserGlobal, fileData))
	}

	if envData := envOverrides(); len(envData) > 0 {
		mgr.AddLayer(layer.NewLayerWithData("env", layer.SourceEnv, layer.PriorityEnv, envData))
	}

	merged := mgr.Merge()
	if err := applyMerged(cfg, merged); err != nil {
		return nil, err
	}
	if cfg.WatchDebounce < 0 {
		return nil, fmt.Errorf("%w: watch_debounce_ms must be >= 0, got %d", ErrInvalidValue, cfg.WatchDebounce)
	}
	return cfg, nil
}

func defaultUserConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "botctl", "config.toml")
}

func toMap(cfg *Config) map[string]any {
	return map[string]any{
		"debug_invariants": cfg.DebugInvariants,
		"use_node_pool":    cfg.UseNodePool,
		"script_path":      cfg.ScriptPath,
		"watch_debounce_ms": cfg.WatchDebounce,
		"inspect_theme":     cfg.InspectTheme,
	}
}

func applyMerged(cfg *Config, merged map[string]any) error {
	if v, ok := merged["debug_invariants"].(bool); ok {
		cfg.DebugInvariants = v
	}
	if v, ok := merged["use_node_pool"].(bool); ok {
		cfg.UseNodePool = v
	}
	if v, ok := merged["script_path"].(string); ok {
		cfg.ScriptPath = v
	}
	if v, ok := merged["inspect_theme"].(string); ok {
		cfg.InspectTheme = v
	}
	switch v := merged["watch_debounce_ms"].(type) {
	case int64:
		cfg.WatchDebounce = int(v)
	case float64:
		cfg.WatchDebounce = int(v)
	case int:
		cfg.WatchDebounce = v
	}
	return nil
}

func envOverrides() map[string]any {
	out := map[string]any{}
	if v, ok := os.LookupEnv("BOTCTL_DEBUG_INVARIANTS"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			out["debug_invariants"] = b
		}
	}
	if v, ok := os.LookupEnv("BOTCTL_USE_NODE_POOL"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			out["use_node_pool"] = b
		}
	}
	if v, ok := os.LookupEnv("BOTCTL_SCRIPT_PATH"); ok {
		out["script_path"] = v
	}
	if v, ok := os.LookupEnv("BOTCTL_WATCH_DEBOUNCE_MS"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			out["watch_debounce_ms"] = n
		}
	}
	if v, ok := os.LookupEnv("BOTCTL_INSPECT_THEME"); ok {
		out["inspect_theme"] = v
	}
	return out
}
