package xrt

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards all log records.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for xrt and its sub-packages.
// By default xrt produces no log output. Pass nil to restore that.
//
// Log levels used by xrt:
//   - [slog.LevelDebug]: per-call diagnostics (device identity, eye parameters)
//   - [slog.LevelInfo]: lifecycle events (backend selected, device changed)
//   - [slog.LevelWarn]: retryable bring-up failures
//   - [slog.LevelError]: fatal backend failures
//
// Structured trace events are emitted through capitan independently of the
// logger.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by xrt.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
