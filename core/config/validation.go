// File: validation.go
// Title: Configuration Validation
// Description: Implements rule-based validation for configuration values:
//              required fields, type checks, numeric bounds and allowed
//              value sets. DefaultRules covers every key the foundation
//              itself interprets.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation of validation rules

package config

import (
	"fmt"
	"math"

	"github.com/msto63/qLib/core/log"
)

// Rule defines validation criteria for a single configuration key
type Rule struct {
	Required bool     // Whether the key must be present
	Type     string   // Expected type: "string", "int", "float", "bool"
	Min      *float64 // Minimum numeric value (inclusive)
	Max      *float64 // Maximum numeric value (inclusive)
	OneOf    []string // Allowed values for string keys
}

// Rules maps configuration keys to their validation rules
type Rules map[string]Rule

// ValidationResult contains the outcome of a validation pass
type ValidationResult struct {
	Valid  bool
	Errors []string
}

// DefaultRules returns the validation rules for the keys the foundation
// interprets itself plus the host application's numeric tunables
func DefaultRules() Rules {
	return Rules{
		KeyLogLevel: {
			Type:  "string",
			OneOf: levelNames(),
		},
		KeyLogConsole:    {Type: "bool"},
		KeyLogFileOutput: {Type: "bool"},
		KeyLogFile:       {Type: "string"},
		KeyLogMaxSizeMB:  {Type: "int", Min: floatPtr(1)},
		KeyLogMaxFiles:   {Type: "int", Min: floatPtr(0)},

		"monte_carlo.simulations":    {Type: "int", Min: floatPtr(1)},
		"monte_carlo.steps":          {Type: "int", Min: floatPtr(1)},
		"implied_vol.tolerance":      {Type: "float", Min: floatPtr(math.SmallestNonzeroFloat64)},
		"implied_vol.max_iterations": {Type: "int", Min: floatPtr(1)},
		"threading.max_threads":      {Type: "int", Min: floatPtr(0), Max: floatPtr(1000)},
		"numerical.tolerance":        {Type: "float", Min: floatPtr(math.SmallestNonzeroFloat64)},
		"numerical.max_iterations":   {Type: "int", Min: floatPtr(1)},
	}
}

func floatPtr(v float64) *float64 {
	return &v
}

func levelNames() []string {
	levels := log.AllLevels()
	names := make([]string, len(levels))
	for i, l := range levels {
		names[i] = l.String()
	}
	return names
}

// Validate checks the store against the given rules
func (s *Store) Validate(rules Rules) *ValidationResult {
	result := &ValidationResult{Valid: true}

	for key, rule := range rules {
		if err := s.validateKey(key, rule); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, err.Error())
		}
	}
	return result
}

// validateKey checks a single key against its rule
func (s *Store) validateKey(key string, rule Rule) error {
	s.mu.RLock()
	value := s.getValue(key)
	s.mu.RUnlock()

	if value == nil {
		if rule.Required {
			return fmt.Errorf("required key '%s' is missing", key)
		}
		return nil
	}

	switch rule.Type {
	case "string":
		str, ok := value.(string)
		if !ok {
			return fmt.Errorf("key '%s' must be a string, got %T", key, value)
		}
		if len(rule.OneOf) > 0 && !contains(rule.OneOf, str) {
			return fmt.Errorf("key '%s' must be one of %v, got '%s'", key, rule.OneOf, str)
		}

	case "bool":
		if _, ok := value.(bool); !ok {
			return fmt.Errorf("key '%s' must be a boolean, got %T", key, value)
		}

	case "int":
		n, ok := asInt(value)
		if !ok {
			return fmt.Errorf("key '%s' must be an integer, got %T", key, value)
		}
		return checkBounds(key, float64(n), rule)

	case "float":
		f, ok := asFloat(value)
		if !ok {
			return fmt.Errorf("key '%s' must be a number, got %T", key, value)
		}
		return checkBounds(key, f, rule)
	}
	return nil
}

func checkBounds(key string, v float64, rule Rule) error {
	if rule.Min != nil && v < *rule.Min {
		return fmt.Errorf("key '%s' below minimum: %v < %v", key, v, *rule.Min)
	}
	if rule.Max != nil && v > *rule.Max {
		return fmt.Errorf("key '%s' above maximum: %v > %v", key, v, *rule.Max)
	}
	return nil
}

func asInt(value any) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int64:
		return v, true
	case float64:
		// YAML/TOML decoders may deliver whole numbers as floats
		if v == math.Trunc(v) {
			return int64(v), true
		}
	}
	return 0, false
}

func asFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
