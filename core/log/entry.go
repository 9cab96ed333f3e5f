// File: entry.go
// Title: Log Record Structure
// Description: Defines the ephemeral record built for each log emission.
//              A record is constructed, rendered to a single text line and
//              discarded; it is never retained or persisted as an object.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation with line rendering

package log

import (
	"runtime"
	"strconv"
	"strings"
	"time"
)

// TimestampFormat is the layout used for the leading timestamp field of
// every log line. Millisecond precision matches the write granularity of
// the sink; sub-millisecond ordering is not guaranteed anyway.
const TimestampFormat = "2006-01-02 15:04:05.000"

// Record holds the fields of a single log emission
type Record struct {
	Timestamp time.Time
	Level     Level
	Goroutine uint64
	Component string
	Message   string
}

// NewRecord creates a record for the calling goroutine at the current time
func NewRecord(level Level, component, message string) Record {
	return Record{
		Timestamp: time.Now(),
		Level:     level,
		Goroutine: goroutineID(),
		Component: component,
		Message:   message,
	}
}

// Line renders the record as a single log line without a trailing newline:
//
//	[timestamp] [SEVERITY] [goroutine-id] [component] message
func (r Record) Line() string {
	var b strings.Builder
	b.Grow(len(TimestampFormat) + len(r.Component) + len(r.Message) + 32)
	b.WriteByte('[')
	b.WriteString(r.Timestamp.Format(TimestampFormat))
	b.WriteString("] [")
	b.WriteString(r.Level.String())
	b.WriteString("] [")
	b.WriteString(strconv.FormatUint(r.Goroutine, 10))
	b.WriteString("] [")
	b.WriteString(r.Component)
	b.WriteString("] ")
	b.WriteString(r.Message)
	return b.String()
}

// goroutineID extracts the numeric id of the calling goroutine from the
// first line of its stack trace ("goroutine N [running]:"). The runtime
// deliberately offers no API for this; the id is diagnostic data only and
// is never used for control flow.
func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	header := strings.TrimPrefix(string(buf[:n]), "goroutine ")
	if idx := strings.IndexByte(header, ' '); idx > 0 {
		if id, err := strconv.ParseUint(header[:idx], 10, 64); err == nil {
			return id
		}
	}
	return 0
}
