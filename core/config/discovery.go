// File: discovery.go
// Title: Configuration File Discovery
// Description: Implements automatic discovery of the qlib configuration
//              file across standard locations and formats, used by the CLI
//              when no explicit --config path is given.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation of file discovery

package config

import (
	"os"
	"path/filepath"
	"strings"

	qerror "github.com/msto63/qLib/core/error"
)

// DiscoveryOptions defines where to look for a configuration file
type DiscoveryOptions struct {
	Paths      []string // Directories to search
	Filenames  []string // Base filenames without extension
	Extensions []string // Extensions to try, in preference order
	Required   bool     // Whether finding a file is required
}

// DefaultDiscoveryOptions returns the standard search locations
func DefaultDiscoveryOptions() DiscoveryOptions {
	return DiscoveryOptions{
		Paths:      []string{".", "./configs", "/etc/qlib"},
		Filenames:  []string{"qlib", "config"},
		Extensions: []string{".toml", ".yaml", ".yml"},
		Required:   false,
	}
}

// Discover searches the configured locations and loads the first match.
// When nothing is found and Required is false, an in-memory store seeded
// with the application defaults is returned, so hosts always start.
func Discover(options DiscoveryOptions) (*Store, error) {
	if len(options.Paths) == 0 {
		options.Paths = []string{"."}
	}
	if len(options.Filenames) == 0 {
		options.Filenames = []string{"qlib"}
	}
	if len(options.Extensions) == 0 {
		options.Extensions = []string{".toml", ".yaml", ".yml"}
	}

	path, found := findFirst(options)
	if found {
		store, err := Load(path)
		if err != nil {
			return nil, qerror.Wrap(err, "found config file but failed to load").
				WithCode(qerror.CodeConfigError).
				WithOperation("config.Discover").
				WithDetail("configPath", path)
		}
		return store, nil
	}

	if options.Required {
		return nil, qerror.Newf("no configuration file found in paths: %s",
			strings.Join(options.Paths, ", ")).
			WithCode(qerror.CodeNotFound).
			WithOperation("config.Discover")
	}

	return New(Defaults()), nil
}

// findFirst returns the first existing candidate path
func findFirst(options DiscoveryOptions) (string, bool) {
	for _, dir := range options.Paths {
		for _, name := range options.Filenames {
			for _, ext := range options.Extensions {
				candidate := filepath.Join(dir, name+ext)
				if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
					return candidate, true
				}
			}
		}
	}
	return "", false
}
