// File: state_test.go
// Title: Log Sink State Tests
// Description: Tests for the shared sink: level filtering, configuration
//              lifecycle, degraded fallback and line integrity under
//              concurrent writers and live reconfiguration.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation

package log

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	qerror "github.com/msto63/qLib/core/error"
)

// newConsoleState returns a console-only sink writing into buf
func newConsoleState(buf *bytes.Buffer) *State {
	s := NewState()
	s.SetConsoleWriter(buf)
	s.SetWarningWriter(io.Discard)
	return s
}

// newFileState returns a file-only sink in a temp dir and its path
func newFileState(t *testing.T, maxBytes int64, maxBackups int) (*State, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.log")
	s := NewState()
	s.SetWarningWriter(io.Discard)
	err := s.Configure(Settings{
		MinLevel:     LevelDebug,
		Console:      false,
		FileOutput:   true,
		FilePath:     path,
		MaxFileBytes: maxBytes,
		MaxBackups:   maxBackups,
	})
	if err != nil {
		t.Fatalf("Configure() failed: %v", err)
	}
	return s, path
}

func countLines(t *testing.T, path string) []string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("cannot read log file: %v", err)
	}
	trimmed := strings.TrimSuffix(string(content), "\n")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\n")
}

func TestStateUnconfiguredDefaults(t *testing.T) {
	s := NewState()

	if s.Level() != LevelInfo {
		t.Errorf("unconfigured level = %v, want %v", s.Level(), LevelInfo)
	}

	// Emitting before any Configure call must work (console-only form)
	var buf bytes.Buffer
	s.SetConsoleWriter(&buf)
	s.emit(LevelInfo, "boot", "starting")
	if !strings.Contains(buf.String(), "starting") {
		t.Error("unconfigured state should emit to console")
	}
}

func TestStateFiltering(t *testing.T) {
	for _, min := range AllLevels() {
		t.Run(min.String(), func(t *testing.T) {
			var buf bytes.Buffer
			s := newConsoleState(&buf)
			if err := s.Configure(Settings{MinLevel: min, Console: true}); err != nil {
				t.Fatalf("Configure() failed: %v", err)
			}

			for _, l := range AllLevels() {
				s.emit(l, "test", "message at {}", l)
			}

			want := 0
			for _, l := range AllLevels() {
				if l >= min {
					want++
				}
			}
			got := len(strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n"))
			if buf.Len() == 0 {
				got = 0
			}
			if got != want {
				t.Errorf("minimum %v: emitted %d lines, want %d", min, got, want)
			}
		})
	}
}

func TestStateEmitBelowMinimumProducesNothing(t *testing.T) {
	var buf bytes.Buffer
	s := newConsoleState(&buf)
	s.Configure(Settings{MinLevel: LevelError, Console: true})

	s.emit(LevelDebug, "test", "dropped")
	s.emit(LevelInfo, "test", "dropped")
	s.emit(LevelWarning, "test", "dropped")

	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestConfigureEmptyPath(t *testing.T) {
	s := NewState()
	s.SetWarningWriter(io.Discard)
	err := s.Configure(Settings{MinLevel: LevelInfo, FileOutput: true, FilePath: "  "})
	if err == nil {
		t.Fatal("Configure() with blank path should fail")
	}
	if qerror.CodeOf(err) != qerror.CodeInvalidInput {
		t.Errorf("error code = %v, want %v", qerror.CodeOf(err), qerror.CodeInvalidInput)
	}
}

func TestConfigureUnwritablePathDegradesToConsole(t *testing.T) {
	var buf bytes.Buffer
	s := newConsoleState(&buf)

	err := s.Configure(Settings{
		MinLevel:   LevelInfo,
		Console:    true,
		FileOutput: true,
		FilePath:   filepath.Join(t.TempDir(), "no", "such", "dir", "test.log"),
	})
	if err == nil {
		t.Fatal("Configure() with unwritable path should fail")
	}
	if qerror.CodeOf(err) != qerror.CodeIOError {
		t.Errorf("error code = %v, want %v", qerror.CodeOf(err), qerror.CodeIOError)
	}

	var qerr *qerror.Error
	if !errors.As(err, &qerr) {
		t.Fatal("Configure() should return a *qerror.Error")
	}

	// Console output must keep working as the degraded fallback
	s.emit(LevelInfo, "test", "still alive")
	if !strings.Contains(buf.String(), "still alive") {
		t.Error("console fallback should remain active after file failure")
	}
}

func TestConfigureInitializesByteCountFromExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")
	existing := "[old] [INFO] [1] [x] previous content\n"
	if err := os.WriteFile(path, []byte(existing), 0644); err != nil {
		t.Fatal(err)
	}

	s := NewState()
	s.SetWarningWriter(io.Discard)
	if err := s.Configure(Settings{
		MinLevel: LevelDebug, FileOutput: true, FilePath: path,
		MaxFileBytes: 1 << 20, MaxBackups: 1,
	}); err != nil {
		t.Fatalf("Configure() failed: %v", err)
	}

	s.mu.Lock()
	got := s.currentBytes
	s.mu.Unlock()
	if got != int64(len(existing)) {
		t.Errorf("currentBytes = %d, want %d", got, len(existing))
	}
}

func TestConfigureReplacesFileTarget(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.log")
	second := filepath.Join(dir, "second.log")

	s := NewState()
	s.SetWarningWriter(io.Discard)
	base := Settings{MinLevel: LevelDebug, FileOutput: true, MaxFileBytes: 1 << 20, MaxBackups: 1}

	cfg := base
	cfg.FilePath = first
	if err := s.Configure(cfg); err != nil {
		t.Fatal(err)
	}
	s.emit(LevelInfo, "test", "to first")

	cfg.FilePath = second
	if err := s.Configure(cfg); err != nil {
		t.Fatal(err)
	}
	s.emit(LevelInfo, "test", "to second")
	s.Close()

	if lines := countLines(t, first); len(lines) != 1 || !strings.Contains(lines[0], "to first") {
		t.Errorf("first file content wrong: %v", lines)
	}
	if lines := countLines(t, second); len(lines) != 1 || !strings.Contains(lines[0], "to second") {
		t.Errorf("second file content wrong: %v", lines)
	}
}

func TestConcurrentEmissionLineIntegrity(t *testing.T) {
	const goroutines = 8
	const messages = 200

	s, path := newFileState(t, 0, 0) // maxBytes 0: rotation disabled

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for m := 0; m < messages; m++ {
				s.emit(LevelInfo, fmt.Sprintf("worker-%d", worker), "message {} from {}", m, worker)
			}
		}(g)
	}
	wg.Wait()
	s.Close()

	lines := countLines(t, path)
	if len(lines) != goroutines*messages {
		t.Fatalf("got %d lines, want %d", len(lines), goroutines*messages)
	}
	for i, line := range lines {
		if !lineFormat.MatchString(line) {
			t.Fatalf("line %d is not a complete record: %q", i, line)
		}
	}
}

func TestReconfigureDuringEmissionKeepsLinesIntact(t *testing.T) {
	dir := t.TempDir()
	pathA := filepath.Join(dir, "a.log")
	pathB := filepath.Join(dir, "b.log")

	s := NewState()
	s.SetWarningWriter(io.Discard)
	base := Settings{MinLevel: LevelDebug, FileOutput: true, MaxFileBytes: 1 << 20, MaxBackups: 1}

	cfg := base
	cfg.FilePath = pathA
	if err := s.Configure(cfg); err != nil {
		t.Fatal(err)
	}

	const goroutines = 4
	const messages = 300
	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for m := 0; m < messages; m++ {
				s.emit(LevelInfo, "stress", "worker {} message {}", worker, m)
			}
		}(g)
	}

	// Flip the target back and forth while writers are running
	for i := 0; i < 20; i++ {
		cfg := base
		if i%2 == 0 {
			cfg.FilePath = pathB
		} else {
			cfg.FilePath = pathA
		}
		if err := s.Configure(cfg); err != nil {
			t.Fatalf("Configure() during stress failed: %v", err)
		}
	}
	wg.Wait()
	s.Close()

	total := 0
	for _, path := range []string{pathA, pathB} {
		for i, line := range countLines(t, path) {
			total++
			if !lineFormat.MatchString(line) {
				t.Fatalf("%s line %d corrupted: %q", path, i, line)
			}
		}
	}
	if total != goroutines*messages {
		t.Errorf("total lines across targets = %d, want %d", total, goroutines*messages)
	}
}

func TestCloseThenConsoleStillWorks(t *testing.T) {
	var buf bytes.Buffer
	s, _ := newFileState(t, 0, 0)
	s.SetConsoleWriter(&buf)
	s.Configure(Settings{MinLevel: LevelDebug, Console: true, FileOutput: false})

	if err := s.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}
	s.emit(LevelInfo, "test", "after close")
	if !strings.Contains(buf.String(), "after close") {
		t.Error("console output should survive Close")
	}
}

func TestWriteFailureWarnsOnce(t *testing.T) {
	var warnings bytes.Buffer
	s, _ := newFileState(t, 0, 0)
	s.SetWarningWriter(&warnings)

	// Sabotage the handle: close the file underneath the sink so writes fail
	s.mu.Lock()
	s.file.Close()
	s.mu.Unlock()

	s.emit(LevelInfo, "test", "first failure")
	s.emit(LevelInfo, "test", "second failure")

	if got := strings.Count(warnings.String(), "write failed"); got != 1 {
		t.Errorf("expected exactly one write-failure warning, got %d: %q", got, warnings.String())
	}
}
