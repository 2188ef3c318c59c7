// Package config provides the configuration system for offsettree-backed
// tools (see cmd/botctl).
//
// Configuration is organized in layers with higher layers overriding
// lower, merged through internal/config/layer:
//
//	┌─────────────────────────────┐
//	│  3. Environment Variables    │  ← Highest priority
//	├─────────────────────────────┤
//	│  2. User Config File         │  ← ~/.config/botctl/config.toml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults        │  ← Lowest priority
//	└─────────────────────────────┘
//
// # Sub-packages
//
//   - loader: TOML configuration file loading
//   - layer: layer management and priority-based merging
//
// # Basic usage
//
//	cfg, err := config.Load("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if cfg.DebugInvariants {
//	    opts = append(opts, offsettree.WithDebugInvariants())
//	}
package config
