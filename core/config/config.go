// File: config.go
// Title: Core Configuration Store Implementation
// Description: Implements the thread-safe configuration store: loading and
//              parsing TOML/YAML files, dot-notation key access, environment
//              variable overrides and typed getters with default values.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation with TOML/YAML support

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	qerror "github.com/msto63/qLib/core/error"
	"github.com/msto63/qLib/utils/stringx"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto auto-detects format from file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// DefaultEnvPrefix is the environment variable prefix consulted by typed
// getters: the key "logging.level" maps to QLIB_LOGGING_LEVEL.
const DefaultEnvPrefix = "QLIB"

// ChangeHandler is called when a watched configuration file is reloaded
type ChangeHandler func(oldStore, newStore *Store)

// Options defines options for loading configuration
type Options struct {
	Format    Format         // File format (default: auto-detect)
	EnvPrefix string         // Environment variable prefix (default: QLIB)
	Defaults  map[string]any // Default values merged under file values
	Watch     bool           // Enable polling file watching (default: false)
}

// Store is a mutex-guarded hierarchical key/value configuration store.
// Keys use dot notation ("logging.level") over nested sections. All
// access is safe for concurrent use.
type Store struct {
	mu           sync.RWMutex
	data         map[string]any
	defaults     map[string]any
	filePath     string
	format       Format
	envPrefix    string
	watchers     []ChangeHandler
	watching     bool
	lastModified time.Time
}

// New creates an in-memory store seeded with the given defaults. Used by
// tests and by hosts that run without a configuration file.
func New(defaults map[string]any) *Store {
	data := make(map[string]any)
	if defaults != nil {
		data = deepMerge(make(map[string]any), defaults)
	}
	return &Store{
		data:      data,
		defaults:  defaults,
		format:    FormatTOML,
		envPrefix: DefaultEnvPrefix,
	}
}

// Load loads configuration from a file with default options: auto-detected
// format, QLIB env prefix and the application defaults applied underneath.
func Load(filePath string) (*Store, error) {
	return LoadWithOptions(filePath, Options{
		Format:    FormatAuto,
		EnvPrefix: DefaultEnvPrefix,
		Defaults:  Defaults(),
	})
}

// LoadWithOptions loads configuration from a file with custom options
func LoadWithOptions(filePath string, options Options) (*Store, error) {
	if stringx.IsBlank(filePath) {
		return nil, qerror.New("config file path cannot be empty").
			WithCode(qerror.CodeInvalidInput).
			WithOperation("config.LoadWithOptions")
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, qerror.Newf("config file not found: %s", filePath).
			WithCode(qerror.CodeNotFound).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath)
	}

	format := options.Format
	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, qerror.Wrap(err, "failed to read config file").
			WithCode(qerror.CodeConfigError).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath)
	}

	data, err := parseContent(content, format)
	if err != nil {
		return nil, qerror.Wrap(err, "failed to parse config file").
			WithCode(qerror.CodeInvalidConfig).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath).
			WithDetail("format", format.String())
	}

	if options.Defaults != nil {
		data = deepMerge(deepMerge(make(map[string]any), options.Defaults), data)
	}

	lastModified := time.Time{}
	if fileInfo, statErr := os.Stat(filePath); statErr == nil {
		lastModified = fileInfo.ModTime()
	}

	store := &Store{
		data:         data,
		defaults:     options.Defaults,
		filePath:     filePath,
		format:       format,
		envPrefix:    options.EnvPrefix,
		lastModified: lastModified,
		watching:     options.Watch,
	}

	if options.Watch {
		go store.startWatching()
	}

	return store, nil
}

// LoadFromString loads configuration from a string with the given format
func LoadFromString(content string, format Format) (*Store, error) {
	if format == FormatAuto {
		format = FormatTOML
	}

	data, err := parseContent([]byte(content), format)
	if err != nil {
		return nil, qerror.Wrap(err, "failed to parse config from string").
			WithCode(qerror.CodeInvalidConfig).
			WithOperation("config.LoadFromString").
			WithDetail("format", format.String())
	}

	return &Store{
		data:      data,
		format:    format,
		envPrefix: DefaultEnvPrefix,
	}, nil
}

// detectFormat determines the configuration format from file extension
func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// parseContent parses configuration content based on format
func parseContent(content []byte, format Format) (map[string]any, error) {
	var data map[string]any

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, qerror.Wrap(err, "TOML parse error").
				WithCode(qerror.CodeInvalidConfig).
				WithOperation("config.parseContent")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, qerror.Wrap(err, "YAML parse error").
				WithCode(qerror.CodeInvalidConfig).
				WithOperation("config.parseContent")
		}
	default:
		return nil, qerror.Newf("unsupported format: %s", format).
			WithCode(qerror.CodeInvalidConfig).
			WithOperation("config.parseContent")
	}

	if data == nil {
		data = make(map[string]any)
	}
	return data, nil
}

// deepMerge merges src into dst recursively; src values win over dst on
// conflicts except that two section maps are merged key by key
func deepMerge(dst, src map[string]any) map[string]any {
	for k, v := range src {
		if srcMap, ok := v.(map[string]any); ok {
			if dstMap, ok := dst[k].(map[string]any); ok {
				dst[k] = deepMerge(dstMap, srcMap)
				continue
			}
			dst[k] = deepMerge(make(map[string]any), srcMap)
			continue
		}
		dst[k] = v
	}
	return dst
}

// getValue navigates the nested data by dot-notation key. Caller must
// hold at least a read lock.
func (s *Store) getValue(key string) any {
	parts := strings.Split(key, ".")
	current := any(s.data)
	for _, part := range parts {
		section, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current, ok = section[part]
		if !ok {
			return nil
		}
	}
	return current
}

// setValue stores a value under a dot-notation key, creating intermediate
// sections as needed. Caller must hold the write lock.
func (s *Store) setValue(key string, value any) {
	parts := strings.Split(key, ".")
	current := s.data
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}
	current[parts[len(parts)-1]] = value
}

// getEnvValue returns the environment override for a key, or "" when the
// prefix is unset or the variable is absent
func (s *Store) getEnvValue(key string) string {
	if s.envPrefix == "" {
		return ""
	}
	name := s.envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	return os.Getenv(name)
}

// GetString returns a string configuration value with optional default
func (s *Store) GetString(key string, defaultValue ...string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if envValue := s.getEnvValue(key); envValue != "" {
		return envValue
	}

	value := s.getValue(key)
	if value == nil {
		if len(defaultValue) > 0 {
			return defaultValue[0]
		}
		return ""
	}

	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// GetInt returns an integer configuration value with optional default
func (s *Store) GetInt(key string, defaultValue ...int) int {
	return int(s.GetInt64(key, int64FromVariadic(defaultValue)...))
}

func int64FromVariadic(values []int) []int64 {
	if len(values) == 0 {
		return nil
	}
	return []int64{int64(values[0])}
}

// GetInt64 returns an int64 configuration value with optional default
func (s *Store) GetInt64(key string, defaultValue ...int64) int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if envValue := s.getEnvValue(key); envValue != "" {
		if intVal, err := strconv.ParseInt(envValue, 10, 64); err == nil {
			return intVal
		}
	}

	value := s.getValue(key)
	switch v := value.(type) {
	case int:
		return int64(v)
	case int64:
		return v
	case float64:
		return int64(v)
	case string:
		if intVal, err := strconv.ParseInt(v, 10, 64); err == nil {
			return intVal
		}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return 0
}

// GetFloat returns a float64 configuration value with optional default
func (s *Store) GetFloat(key string, defaultValue ...float64) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if envValue := s.getEnvValue(key); envValue != "" {
		if floatVal, err := strconv.ParseFloat(envValue, 64); err == nil {
			return floatVal
		}
	}

	value := s.getValue(key)
	switch v := value.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		if floatVal, err := strconv.ParseFloat(v, 64); err == nil {
			return floatVal
		}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return 0.0
}

// GetBool returns a boolean configuration value with optional default
func (s *Store) GetBool(key string, defaultValue ...bool) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if envValue := s.getEnvValue(key); envValue != "" {
		if boolVal, err := strconv.ParseBool(envValue); err == nil {
			return boolVal
		}
	}

	value := s.getValue(key)
	switch v := value.(type) {
	case bool:
		return v
	case string:
		if boolVal, err := strconv.ParseBool(v); err == nil {
			return boolVal
		}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return false
}

// GetDuration returns a time.Duration configuration value with optional default
func (s *Store) GetDuration(key string, defaultValue ...time.Duration) time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if envValue := s.getEnvValue(key); envValue != "" {
		if duration, err := time.ParseDuration(envValue); err == nil {
			return duration
		}
	}

	value := s.getValue(key)
	switch v := value.(type) {
	case string:
		if duration, err := time.ParseDuration(v); err == nil {
			return duration
		}
	case time.Duration:
		return v
	case int:
		return time.Duration(v)
	case int64:
		return time.Duration(v)
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return 0
}

// Set stores a configuration value under a dot-notation key
func (s *Store) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setValue(key, value)
}

// Has returns true if a value exists for the key (environment overrides
// are not consulted; only the stored data)
func (s *Store) Has(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.getValue(key) != nil
}

// Keys returns every leaf key in dot notation, sorted
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var keys []string
	collectKeys("", s.data, &keys)
	sort.Strings(keys)
	return keys
}

func collectKeys(prefix string, data map[string]any, out *[]string) {
	for k, v := range data {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if section, ok := v.(map[string]any); ok {
			collectKeys(key, section, out)
			continue
		}
		*out = append(*out, key)
	}
}

// FilePath returns the path the store was loaded from ("" for in-memory)
func (s *Store) FilePath() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filePath
}

// Save writes the current configuration to a file in the store's format.
// An empty path saves back to the originating file.
func (s *Store) Save(path string) error {
	s.mu.RLock()
	if path == "" {
		path = s.filePath
	}
	format := s.format
	data := deepMerge(make(map[string]any), s.data)
	s.mu.RUnlock()

	if stringx.IsBlank(path) {
		return qerror.New("no target path for save").
			WithCode(qerror.CodeInvalidInput).
			WithOperation("config.Save")
	}

	var content []byte
	var err error
	switch format {
	case FormatYAML:
		content, err = yaml.Marshal(data)
	default:
		content, err = tomlMarshal(data)
	}
	if err != nil {
		return qerror.Wrap(err, "failed to encode configuration").
			WithCode(qerror.CodeInternal).
			WithOperation("config.Save").
			WithDetail("format", format.String())
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return qerror.Wrap(err, "failed to write config file").
			WithCode(qerror.CodeIOError).
			WithOperation("config.Save").
			WithDetail("path", path)
	}
	return nil
}

// tomlMarshal encodes a nested map as TOML
func tomlMarshal(data map[string]any) ([]byte, error) {
	var b strings.Builder
	if err := toml.NewEncoder(&b).Encode(data); err != nil {
		return nil, err
	}
	return []byte(b.String()), nil
}

// Reload re-reads the originating file and replaces the stored data,
// notifying registered change handlers
func (s *Store) Reload() error {
	s.mu.RLock()
	path := s.filePath
	s.mu.RUnlock()

	if stringx.IsBlank(path) {
		return qerror.New("store has no originating file").
			WithCode(qerror.CodeInvalidInput).
			WithOperation("config.Reload")
	}
	return s.reload()
}
