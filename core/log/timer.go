// File: timer.go
// Title: Performance Timer
// Description: Implements the scoped timing helper built on the logger. A
//              Timer records its start instant at creation and emits one
//              elapsed-time record when stopped. The intended pattern is
//              defer timer.Stop(), which fires on every exit path.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation with deferred stop discipline

package log

import (
	"strconv"
	"time"
)

// Timer measures the duration of a named operation and reports it through
// a Logger. Stop is idempotent, so the elapsed-time record is emitted
// exactly once no matter how many exit paths run it.
type Timer struct {
	logger    *Logger
	operation string
	startTime time.Time
	level     Level
	stopped   bool
}

// NewTimer starts a timer for the given operation. The completion record
// is emitted at DEBUG level unless overridden with WithLevel.
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		startTime: time.Now(),
		level:     LevelDebug,
	}
}

// WithLevel sets the level of the completion record
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// Elapsed returns the time since the timer started without stopping it
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.startTime)
}

// ElapsedMillis returns the elapsed time in fractional milliseconds
// without stopping the timer. Reading it does not mutate state and does
// not emit a record.
func (t *Timer) ElapsedMillis() float64 {
	return float64(t.Elapsed().Nanoseconds()) / 1e6
}

// Stop emits the elapsed-time record and returns the measured duration.
// Subsequent calls are no-ops returning zero, which makes the deferred
// form safe alongside an explicit early Stop.
func (t *Timer) Stop() time.Duration {
	if t.stopped {
		return 0
	}
	t.stopped = true

	elapsed := t.Elapsed()
	if t.logger != nil {
		ms := strconv.FormatFloat(float64(elapsed.Nanoseconds())/1e6, 'f', 3, 64)
		t.logger.state.emit(t.level, t.logger.name,
			"Benchmark/operation '{}' completed in {}ms", t.operation, ms)
	}
	return elapsed
}

// IsRunning reports whether the timer has not yet been stopped
func (t *Timer) IsRunning() bool {
	return !t.stopped
}
