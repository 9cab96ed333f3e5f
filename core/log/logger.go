// File: logger.go
// Title: Component Logger Handle
// Description: Implements the lightweight per-component Logger handle and
//              the package-level convenience functions bound to the shared
//              default sink. A Logger carries only its component name; all
//              shared state lives in the State it points at.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation with leveled dispatch

package log

import (
	"github.com/msto63/qLib/utils/stringx"
)

// Logger is a cheap per-component handle. Create one per subsystem and
// share it freely between goroutines; every method is safe for concurrent
// use because all writes funnel through the State's lock.
type Logger struct {
	name  string
	state *State
}

// New creates a logger for the named component, bound to the process-wide
// default sink.
func New(component string) *Logger {
	return NewWithState(defaultState, component)
}

// NewWithState creates a logger bound to an explicitly owned sink.
// Used by tests and by hosts that manage several sinks.
func NewWithState(state *State, component string) *Logger {
	return &Logger{
		name:  stringx.DefaultIfBlank(component, "main"),
		state: state,
	}
}

// Name returns the component name of this handle
func (l *Logger) Name() string {
	return l.name
}

// Debug logs a message at DEBUG level
func (l *Logger) Debug(template string, values ...any) {
	l.state.emit(LevelDebug, l.name, template, values...)
}

// Info logs a message at INFO level
func (l *Logger) Info(template string, values ...any) {
	l.state.emit(LevelInfo, l.name, template, values...)
}

// Warning logs a message at WARNING level
func (l *Logger) Warning(template string, values ...any) {
	l.state.emit(LevelWarning, l.name, template, values...)
}

// Error logs a message at ERROR level
func (l *Logger) Error(template string, values ...any) {
	l.state.emit(LevelError, l.name, template, values...)
}

// Critical logs a message at CRITICAL level
func (l *Logger) Critical(template string, values ...any) {
	l.state.emit(LevelCritical, l.name, template, values...)
}

// IsEnabled reports whether a record at the given level would currently be
// emitted. Callers use this to skip building expensive messages that the
// filter would drop anyway.
func (l *Logger) IsEnabled(level Level) bool {
	return l.state.IsEnabled(level)
}

// StartTimer creates and starts a performance timer that reports through
// this logger.
func (l *Logger) StartTimer(operation string) *Timer {
	return NewTimer(l, operation)
}

// defaultState is the process-wide sink shared by every Logger created
// with New. It starts in console-only form and is reshaped by Configure.
var defaultState = NewState()

// Default returns the process-wide sink
func Default() *State {
	return defaultState
}

// SetDefault replaces the process-wide sink. Loggers created before the
// swap keep their old State; intended for test harnesses.
func SetDefault(state *State) {
	defaultState = state
}

// Configure applies settings to the process-wide sink
func Configure(cfg Settings) error {
	return defaultState.Configure(cfg)
}

// CurrentLevel returns the minimum level of the process-wide sink
func CurrentLevel() Level {
	return defaultState.Level()
}

// IsEnabled reports whether the process-wide sink would emit at the level
func IsEnabled(level Level) bool {
	return defaultState.IsEnabled(level)
}

// Flush flushes the process-wide sink's file buffer
func Flush() error {
	return defaultState.Flush()
}

// Close tears down the process-wide sink's file output. Called at process
// exit; console output keeps working afterwards.
func Close() error {
	return defaultState.Close()
}
