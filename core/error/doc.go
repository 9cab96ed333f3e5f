// Package error provides structured error handling for the qLib foundation.
//
// Package: error
// Title: qLib Structured Errors
// Description: This package implements a contextual error type carrying an
//              error code, the failing operation and a detail map, while
//              remaining fully compatible with the standard errors package.
//              It is used by the configuration store and the logging core's
//              configure paths; the logging hot path never produces errors.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation
//
// Usage:
//
//	import qerror "github.com/msto63/qLib/core/error"
//
//	if err := doWork(); err != nil {
//	    return qerror.Wrap(err, "cannot load configuration").
//	        WithCode(qerror.CodeConfigError).
//	        WithOperation("config.Load").
//	        WithDetail("path", path)
//	}
//
// The import alias qerror is the package's conventional name at call sites
// since "error" collides with the builtin type.
package error
