// Package config provides the hierarchical configuration store of the qLib
// foundation.
//
// Package: config
// Title: qLib Configuration Management
// Description: This package implements a thread-safe, hierarchical key/value
//              configuration store with TOML and YAML file support, default
//              value layering, environment variable overrides, rule-based
//              validation and an optional polling file watcher. Its one
//              obligation towards the logging core is the Logging snapshot
//              supplied at startup.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation
//
// Features:
// - TOML and YAML files with extension-based auto-detection
// - Dot-notation access over nested sections ("logging.level")
// - Defaults merged under file values, env overrides on top (QLIB_ prefix)
// - Typed getters with per-call fallback values
// - Save/Reload round-trips and a polling watcher with change handlers
// - Rule-based validation for known keys
//
// Usage:
//
//	store, err := config.Load("configs/qlib.toml")
//	if err != nil { ... }
//
//	if result := store.Validate(config.DefaultRules()); !result.Valid {
//	    for _, msg := range result.Errors { ... }
//	}
//
//	// Hand the logging configuration to the logging core
//	if err := config.ConfigureLogging(store); err != nil { ... }
//
//	sims := store.GetInt("monte_carlo.simulations", 100000)
package config
