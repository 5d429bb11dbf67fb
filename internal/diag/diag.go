// Package diag is a thin, nil-safe wrapper around *zap.Logger shared by
// pkg/repair and pkg/orient. spec.md section 7 requires internal
// warnings (link-condition failures, unflippable configurations,
// residual unoriented points) to be "logged behind a debug flag" rather
// than surfaced as errors; this package is that debug flag.
package diag

import "go.uber.org/zap"

// Logger wraps a *zap.Logger that may be nil. A nil Logger logs nothing,
// matching the teacher's habit of every collaborator being usable via
// its zero value (see kernel.Kernel, constructed only through New).
type Logger struct {
	z *zap.Logger
}

// New wraps z. A nil z produces a Logger that discards everything.
func New(z *zap.Logger) Logger {
	return Logger{z: z}
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return Logger{}
}

// Warn logs an internal warning (link-condition failure, unflippable
// cap, residual unoriented point) with structured fields.
func (l Logger) Warn(msg string, fields ...zap.Field) {
	if l.z == nil {
		return
	}
	l.z.Warn(msg, fields...)
}

// Debug logs fixed-point-driver progress (per-iteration needle/cap
// counts, MST sanity checks) with structured fields.
func (l Logger) Debug(msg string, fields ...zap.Field) {
	if l.z == nil {
		return
	}
	l.z.Debug(msg, fields...)
}
