// Package log provides the shared logging facility of the qLib foundation.
//
// Package: log
// Title: qLib Thread-Safe Logging Core
// Description: This package implements a process-wide, multi-writer log sink
//              with level filtering, dual output destinations (console and
//              file), size-based file rotation with numbered backups, and a
//              scoped performance-timing helper. All Logger handles fan into
//              one State whose single mutex guarantees that concurrent
//              writers never interleave lines.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation
//
// Features:
// - Five ordered severity levels, DEBUG through CRITICAL
// - Positional {} template formatting with best-effort substitution
// - Console and file sinks, individually switchable
// - Size-based rotation to numbered backups path.1 .. path.N
// - Lock-free level filtering on the emission fast path
// - Performance timers with guaranteed single emission via defer
// - Degraded console-only fallback when the file sink fails
//
// Usage:
//
//	import "github.com/msto63/qLib/core/log"
//
//	// Configure the process-wide sink once at startup
//	err := log.Configure(log.Settings{
//	    MinLevel:     log.LevelInfo,
//	    Console:      true,
//	    FileOutput:   true,
//	    FilePath:     "qlib.log",
//	    MaxFileBytes: 10 * 1024 * 1024,
//	    MaxBackups:   5,
//	})
//
//	// One cheap handle per component, shared freely between goroutines
//	logger := log.New("PricingEngine")
//	logger.Info("priced {} instruments in batch {}", count, batch)
//
//	// Scoped timing: the record fires on every exit path
//	timer := logger.StartTimer("monte_carlo_run")
//	defer timer.Stop()
//
// Logging is diagnostic, not transactional: no call in this package ever
// panics, blocks indefinitely or returns an error to a leveled method's
// caller. Failures degrade output, never the host workload.
package log
