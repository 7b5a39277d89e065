// Package logging wraps github.com/luxfi/log behind a small interface so the
// rest of cryptosuite depends on a handful of printf-style methods rather
// than luxfi/log's concrete logger type. cryptosuite is a library: logging
// is scoped to boundary events only (registry registration problems, suite
// construction/teardown, PRNG read failures), not per-operation
// tracing.
package logging

import golog "github.com/luxfi/log"

// Logger is the subset of luxfi/log's API that cryptosuite calls. luxfi/log
// follows the avalanchego-lineage logging convention shared across
// github.com/luxfi/* modules: leveled, printf-style methods plus a no-op
// implementation for tests and library consumers that don't want crypto
// internals writing to their logs.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}

// NoOp discards every log call. It is the default for package-level loggers
// in family packages so that importing cryptosuite never produces log
// output unless a caller opts in with SetDefault.
type NoOp struct{}

func (NoOp) Debug(string, ...interface{}) {}
func (NoOp) Info(string, ...interface{})  {}
func (NoOp) Warn(string, ...interface{})  {}
func (NoOp) Error(string, ...interface{}) {}

// luxfiAdapter adapts golog.Logger to the local Logger interface.
type luxfiAdapter struct {
	inner golog.Logger
}

func (a luxfiAdapter) Debug(msg string, args ...interface{}) { a.inner.Debug(msg, args...) }
func (a luxfiAdapter) Info(msg string, args ...interface{})  { a.inner.Info(msg, args...) }
func (a luxfiAdapter) Warn(msg string, args ...interface{})  { a.inner.Warn(msg, args...) }
func (a luxfiAdapter) Error(msg string, args ...interface{}) { a.inner.Error(msg, args...) }

// NewLuxfiLogger wraps a luxfi/log logger for use as a cryptosuite Logger.
func NewLuxfiLogger(inner golog.Logger) Logger {
	return luxfiAdapter{inner: inner}
}

var defaultLogger Logger = NoOp{}

// SetDefault replaces the package-wide default logger used by families that
// haven't been given one explicitly (registry, prng, suite).
func SetDefault(l Logger) {
	if l == nil {
		l = NoOp{}
	}
	defaultLogger = l
}

// Default returns the current package-wide default logger.
func Default() Logger { return defaultLogger }
