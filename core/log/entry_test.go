// File: entry_test.go
// Title: Log Record Tests
// Description: Tests for record construction and line rendering.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation

package log

import (
	"regexp"
	"strings"
	"testing"
	"time"
)

func TestRecordLine(t *testing.T) {
	r := Record{
		Timestamp: time.Date(2025, 2, 10, 14, 30, 5, 123_000_000, time.UTC),
		Level:     LevelWarning,
		Goroutine: 42,
		Component: "PricingEngine",
		Message:   "spread too wide",
	}

	got := r.Line()
	want := "[2025-02-10 14:30:05.123] [WARNING] [42] [PricingEngine] spread too wide"
	if got != want {
		t.Errorf("Line() = %q, want %q", got, want)
	}
	if strings.HasSuffix(got, "\n") {
		t.Error("Line() must not include the terminator; the sink appends it")
	}
}

var lineFormat = regexp.MustCompile(
	`^\[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\.\d{3}\] \[[A-Z]+\] \[\d+\] \[[^\]]*\] .*$`)

func TestNewRecordFields(t *testing.T) {
	before := time.Now()
	r := NewRecord(LevelInfo, "Test", "hello")
	after := time.Now()

	if r.Timestamp.Before(before) || r.Timestamp.After(after) {
		t.Error("NewRecord timestamp outside call window")
	}
	if r.Goroutine == 0 {
		t.Error("NewRecord should capture the goroutine id")
	}
	if !lineFormat.MatchString(r.Line()) {
		t.Errorf("rendered line %q does not match the record format", r.Line())
	}
}

func TestGoroutineIDDiffersAcrossGoroutines(t *testing.T) {
	main := goroutineID()
	other := make(chan uint64, 1)
	go func() {
		other <- goroutineID()
	}()

	if got := <-other; got == main {
		t.Errorf("expected distinct goroutine ids, both were %d", got)
	}
}
