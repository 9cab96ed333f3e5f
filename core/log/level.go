// File: level.go
// Title: Log Level Definitions
// Description: Defines the ordered severity levels used for filtering and
//              dispatching log output. Levels are totally ordered from
//              LevelDebug up to LevelCritical.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation with five severity levels

package log

import (
	"strings"
)

// Level represents the severity of a log message
type Level int

const (
	// LevelDebug provides detailed information for debugging purposes
	// Typically disabled in production
	LevelDebug Level = iota

	// LevelInfo represents general informational messages
	// Standard level for normal operation logging
	LevelInfo

	// LevelWarning indicates potentially harmful situations
	// Operations continue but attention may be required
	LevelWarning

	// LevelError represents error conditions that need attention
	// Operations may fail but the system continues
	LevelError

	// LevelCritical represents critical errors that may cause termination
	// of the host application's primary workload
	LevelCritical
)

// String returns the canonical upper-case representation of the level.
// These are the words written to the log file and accepted by the
// configuration store's logging.level key.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	case LevelCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// IsEnabled returns true if a message at this level passes the given
// minimum level filter.
func (l Level) IsEnabled(minLevel Level) bool {
	return l >= minLevel
}

// Valid returns true if the level is one of the five defined severities
func (l Level) Valid() bool {
	return l >= LevelDebug && l <= LevelCritical
}

// ParseLevel parses a string into a log level. Input is case-insensitive
// and common short aliases are accepted. On unknown input the default
// level is returned together with a ParseError.
func ParseLevel(level string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG", "DBG":
		return LevelDebug, nil
	case "INFO", "INF", "INFORMATION":
		return LevelInfo, nil
	case "WARNING", "WARN", "WRN":
		return LevelWarning, nil
	case "ERROR", "ERR":
		return LevelError, nil
	case "CRITICAL", "CRIT", "FATAL":
		return LevelCritical, nil
	default:
		return LevelInfo, &ParseError{
			Input: level,
			Type:  "level",
		}
	}
}

// ParseError represents an error parsing a log configuration value
type ParseError struct {
	Input string
	Type  string
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return "invalid " + e.Type + ": " + e.Input
}

// AllLevels returns all defined log levels in ascending severity order
func AllLevels() []Level {
	return []Level{
		LevelDebug,
		LevelInfo,
		LevelWarning,
		LevelError,
		LevelCritical,
	}
}

// DefaultLevel returns the default minimum level
func DefaultLevel() Level {
	return LevelInfo
}
