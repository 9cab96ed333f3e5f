// File: state.go
// Title: Shared Log Sink State
// Description: Implements the process-wide log sink: minimum level, console
//              and file destinations, size-based rotation limits and the
//              single mutex that serializes every write. All Logger handles
//              fan into one State.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation with dual sinks and rotation

package log

import (
	"io"
	"os"
	"sync"
	"sync/atomic"

	qerror "github.com/msto63/qLib/core/error"
	"github.com/msto63/qLib/utils/stringx"
)

// Settings holds the complete sink configuration. It is the startup
// contract between the configuration store and the logging core.
type Settings struct {
	MinLevel     Level
	Console      bool
	FileOutput   bool
	FilePath     string
	MaxFileBytes int64
	MaxBackups   int
}

// DefaultSettings returns the configuration used before any explicit
// Configure call and the baseline callers should modify.
func DefaultSettings() Settings {
	return Settings{
		MinLevel:     DefaultLevel(),
		Console:      true,
		FileOutput:   false,
		FilePath:     "qlib.log",
		MaxFileBytes: 10 * 1024 * 1024,
		MaxBackups:   5,
	}
}

// State owns every shared logging resource: the open file handle, the
// running byte count, the enabled flags and the lock that guards them.
// A process normally has exactly one State (see Default), constructed
// explicitly so initialization order is never ambiguous; tests inject
// their own via NewWithState.
type State struct {
	// minLevel is read without the lock on the emission fast path. It is
	// effectively append-only after startup configuration; a stale read
	// costs at most one filtered-or-extra record during a live
	// reconfiguration, never a correctness break.
	minLevel atomic.Int32

	mu             sync.Mutex
	console        io.Writer // record sink when console output is enabled
	warnings       io.Writer // internal warning channel, never record data
	consoleEnabled bool
	fileEnabled    bool
	file           *os.File
	filePath       string
	maxFileBytes   int64
	maxBackups     int
	currentBytes   int64 // always equals the byte length of the open file
	writeFailed    bool  // one warning per write-failure episode
}

// NewState creates a sink in its unconfigured form: minimum level INFO,
// console output enabled, file output disabled. It is usable immediately;
// Configure may be called at any later point.
func NewState() *State {
	s := &State{
		console:        os.Stdout,
		warnings:       os.Stderr,
		consoleEnabled: true,
	}
	s.minLevel.Store(int32(DefaultLevel()))
	return s
}

// Configure applies new settings, closing and reopening the file sink as
// needed. It is idempotent and safe to call concurrently with in-flight
// emissions: the handle swap happens entirely inside the locked section,
// so a racing writer sees either the old or the new target, never a
// half-open one. If the file sink cannot be established the State degrades
// to console-only output and the error is returned to the caller.
func (s *State) Configure(cfg Settings) error {
	if !cfg.MinLevel.Valid() {
		cfg.MinLevel = DefaultLevel()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.minLevel.Store(int32(cfg.MinLevel))
	s.consoleEnabled = cfg.Console
	s.maxFileBytes = cfg.MaxFileBytes
	s.maxBackups = cfg.MaxBackups
	s.writeFailed = false

	if s.file != nil {
		s.file.Sync()
		s.file.Close()
		s.file = nil
	}
	s.currentBytes = 0
	s.filePath = cfg.FilePath
	s.fileEnabled = false

	if !cfg.FileOutput {
		return nil
	}
	if stringx.IsBlank(cfg.FilePath) {
		return qerror.New("log file path cannot be empty").
			WithCode(qerror.CodeInvalidInput).
			WithOperation("log.Configure")
	}

	f, err := os.OpenFile(cfg.FilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return qerror.Wrap(err, "cannot open log file").
			WithCode(qerror.CodeIOError).
			WithOperation("log.Configure").
			WithDetail("path", cfg.FilePath)
	}
	if info, statErr := f.Stat(); statErr == nil {
		s.currentBytes = info.Size()
	}
	s.file = f
	s.fileEnabled = true
	return nil
}

// Level returns the current minimum level without taking the lock
func (s *State) Level() Level {
	return Level(s.minLevel.Load())
}

// IsEnabled reports whether a record at the given level would be emitted
func (s *State) IsEnabled(level Level) bool {
	return level.IsEnabled(s.Level())
}

// SetConsoleWriter redirects console record output. Intended for tests
// and for hosts that own their terminal streams.
func (s *State) SetConsoleWriter(w io.Writer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.console = w
}

// SetWarningWriter redirects the internal warning channel used for
// rotation and write failures (default: stderr).
func (s *State) SetWarningWriter(w io.Writer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.warnings = w
}

// Flush forces buffered file data to stable storage
func (s *State) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.file == nil {
		return nil
	}
	return s.file.Sync()
}

// Close flushes and closes the file sink. The State remains usable for
// console output; a later Configure call reopens the file sink.
func (s *State) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.file == nil {
		return nil
	}
	s.file.Sync()
	err := s.file.Close()
	s.file = nil
	s.fileEnabled = false
	return err
}

// emit is the single write path shared by all Logger handles. The level
// filter and the record rendering happen before the lock is taken, so the
// lock is held only across the raw writes.
func (s *State) emit(level Level, component, template string, values ...any) {
	if !level.IsEnabled(s.Level()) {
		return
	}

	line := NewRecord(level, component, Render(template, values...)).Line() + "\n"

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.consoleEnabled && s.console != nil {
		io.WriteString(s.console, line)
	}
	if s.fileEnabled {
		s.appendLocked(line)
	}
}

// appendLocked writes one rendered line to the file sink, rotating first
// when the pending write would breach the size limit. Must hold s.mu.
func (s *State) appendLocked(line string) {
	pending := int64(len(line))
	if s.file != nil && ShouldRotate(s.currentBytes, pending, s.maxFileBytes) {
		s.rotateLocked()
	}
	if s.file == nil {
		s.warnOnceLocked("log file unavailable, dropping record")
		return
	}

	n, err := s.file.WriteString(line)
	s.currentBytes += int64(n)
	if err != nil {
		s.warnOnceLocked("log file write failed: " + err.Error())
		return
	}
	s.writeFailed = false
}

// warnOnceLocked reports a failure on the warning channel once per
// episode. The sink is diagnostic, not transactional; repeated failures
// are swallowed so a full disk cannot flood the console.
func (s *State) warnOnceLocked(msg string) {
	if s.writeFailed {
		return
	}
	s.writeFailed = true
	s.warnLocked(msg)
}

// warnLocked writes an internal warning line. Must hold s.mu.
func (s *State) warnLocked(msg string) {
	if s.warnings == nil {
		return
	}
	io.WriteString(s.warnings, "qlib/log: "+msg+"\n")
}
