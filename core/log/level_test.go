// File: level_test.go
// Title: Log Level Tests
// Description: Tests for level ordering, string conversion and parsing.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation

package log

import (
	"testing"
)

func TestLevelString(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarning, "WARNING"},
		{LevelError, "ERROR"},
		{LevelCritical, "CRITICAL"},
		{Level(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.level.String(); got != tt.expected {
				t.Errorf("Level(%d).String() = %v, want %v", tt.level, got, tt.expected)
			}
		})
	}
}

func TestLevelOrdering(t *testing.T) {
	levels := AllLevels()
	for i := 1; i < len(levels); i++ {
		if levels[i-1] >= levels[i] {
			t.Errorf("levels not strictly increasing: %v >= %v", levels[i-1], levels[i])
		}
	}
}

func TestLevelIsEnabled(t *testing.T) {
	for _, min := range AllLevels() {
		for _, l := range AllLevels() {
			expected := l >= min
			if got := l.IsEnabled(min); got != expected {
				t.Errorf("%v.IsEnabled(%v) = %v, want %v", l, min, got, expected)
			}
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
		wantErr  bool
	}{
		{"DEBUG", LevelDebug, false},
		{"debug", LevelDebug, false},
		{"  info  ", LevelInfo, false},
		{"WARNING", LevelWarning, false},
		{"warn", LevelWarning, false},
		{"error", LevelError, false},
		{"CRITICAL", LevelCritical, false},
		{"crit", LevelCritical, false},
		{"fatal", LevelCritical, false},
		{"nonsense", LevelInfo, true},
		{"", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseLevelRoundTrip(t *testing.T) {
	for _, l := range AllLevels() {
		parsed, err := ParseLevel(l.String())
		if err != nil {
			t.Errorf("ParseLevel(%q) returned error: %v", l.String(), err)
		}
		if parsed != l {
			t.Errorf("round trip for %v yielded %v", l, parsed)
		}
	}
}

func TestLevelValid(t *testing.T) {
	for _, l := range AllLevels() {
		if !l.Valid() {
			t.Errorf("%v should be valid", l)
		}
	}
	if Level(-1).Valid() || Level(5).Valid() {
		t.Error("out-of-range levels should not be valid")
	}
}
