// File: format.go
// Title: Message Template Formatting
// Description: Implements the positional placeholder formatter used by all
//              leveled log methods. Templates contain {} tokens that are
//              substituted left to right with the supplied values.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation with best-effort substitution

package log

import (
	"fmt"
	"strings"
)

// placeholder is the two-character substitution token
const placeholder = "{}"

// Render substitutes {} placeholders in template with the supplied values,
// left to right. The policy is deliberately permissive:
//   - placeholders beyond the value list are left as literal "{}" text
//   - surplus values are silently dropped
//   - a value that fails to render is replaced by an error marker and
//     rendering continues
//
// Render never panics and never returns an error. Logging must not be able
// to crash the caller's business logic.
func Render(template string, values ...any) string {
	if len(values) == 0 || !strings.Contains(template, placeholder) {
		return template
	}

	var b strings.Builder
	b.Grow(len(template) + 16*len(values))

	rest := template
	next := 0
	for next < len(values) {
		idx := strings.Index(rest, placeholder)
		if idx < 0 {
			break
		}
		b.WriteString(rest[:idx])
		b.WriteString(renderValue(values[next]))
		rest = rest[idx+len(placeholder):]
		next++
	}
	b.WriteString(rest)
	return b.String()
}

// renderValue converts a single value to its canonical text form. A panic
// raised by the value's String, Error or reflection path is recovered
// here and replaced with a marker describing the failure. String and
// Error are invoked directly rather than through fmt, so their panics
// surface here instead of as fmt's inline %!v(PANIC=...) notation.
func renderValue(v any) (s string) {
	defer func() {
		if r := recover(); r != nil {
			s = fmt.Sprintf("<format error: %v>", r)
		}
	}()
	switch t := v.(type) {
	case string:
		return t
	case error:
		return t.Error()
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(v)
	}
}
