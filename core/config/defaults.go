// File: defaults.go
// Title: Application Default Configuration
// Description: Defines the default values for every tunable the host
//              application reads. Files and environment overrides layer on
//              top of these; a missing configuration file is therefore not
//              an error for the application, only for explicit Load calls.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation with quant tunables

package config

// Defaults returns the baseline configuration of the host application.
// The map is freshly built on every call so callers may mutate it.
func Defaults() map[string]any {
	return map[string]any{
		"monte_carlo": map[string]any{
			"simulations":    100000,
			"steps":          252,
			"use_antithetic": true,
			"random_seed":    42,
		},
		"implied_vol": map[string]any{
			"tolerance":      1e-6,
			"max_iterations": 100,
			"initial_guess":  0.2,
		},
		"logging": map[string]any{
			"level":            "INFO",
			"file":             "qlib.log",
			"console":          true,
			"file_output":      true,
			"max_files":        5,
			"max_file_size_mb": 10,
		},
		"performance": map[string]any{
			"enable_logging": true,
		},
		"threading": map[string]any{
			"enable_safety": true,
			"max_threads":   0, // 0 = runtime decides
		},
		"numerical": map[string]any{
			"tolerance":      1e-12,
			"max_iterations": 1000,
		},
	}
}
