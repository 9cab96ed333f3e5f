// File: logging.go
// Title: Logging Configuration Bridge
// Description: Implements the read-only snapshot of logging configuration
//              the store supplies to the logging core at startup, and the
//              convenience call that applies it. This is the only coupling
//              between the two subsystems.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation of the startup contract

package config

import (
	"github.com/msto63/qLib/core/log"
)

// Logging configuration keys
const (
	KeyLogLevel      = "logging.level"
	KeyLogConsole    = "logging.console"
	KeyLogFileOutput = "logging.file_output"
	KeyLogFile       = "logging.file"
	KeyLogMaxSizeMB  = "logging.max_file_size_mb"
	KeyLogMaxFiles   = "logging.max_files"
)

// LoggingSnapshot is the read-only view of logging configuration handed to
// the logging core. Values already include defaults and env overrides.
type LoggingSnapshot struct {
	Level         string
	Console       bool
	FileOutput    bool
	FilePath      string
	MaxFileSizeMB int
	MaxFiles      int
}

// Logging builds the snapshot from the store's current state
func (s *Store) Logging() LoggingSnapshot {
	return LoggingSnapshot{
		Level:         s.GetString(KeyLogLevel, "INFO"),
		Console:       s.GetBool(KeyLogConsole, true),
		FileOutput:    s.GetBool(KeyLogFileOutput, true),
		FilePath:      s.GetString(KeyLogFile, "qlib.log"),
		MaxFileSizeMB: s.GetInt(KeyLogMaxSizeMB, 10),
		MaxFiles:      s.GetInt(KeyLogMaxFiles, 5),
	}
}

// LogSettings converts the snapshot to the logging core's Settings. An
// unparseable level falls back to the default level; the error is returned
// so the caller can report it, but the settings remain usable.
func (ls LoggingSnapshot) LogSettings() (log.Settings, error) {
	level, err := log.ParseLevel(ls.Level)
	return log.Settings{
		MinLevel:     level,
		Console:      ls.Console,
		FileOutput:   ls.FileOutput,
		FilePath:     ls.FilePath,
		MaxFileBytes: int64(ls.MaxFileSizeMB) * 1024 * 1024,
		MaxBackups:   ls.MaxFiles,
	}, err
}

// ConfigureLogging applies the store's logging configuration to the
// process-wide log sink. Safe to call repeatedly; each call reconfigures.
func ConfigureLogging(s *Store) error {
	settings, err := s.Logging().LogSettings()
	if err != nil {
		// Invalid level degrades to the default; still apply the rest.
		if cfgErr := log.Configure(settings); cfgErr != nil {
			return cfgErr
		}
		return err
	}
	return log.Configure(settings)
}
