package keypoint

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that discards all records.
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

// SetLogger configures the logger used by keypoint. By default nothing is
// logged. Pass nil to restore the silent default.
//
// Log levels used:
//   - [slog.LevelDebug]: key names that failed to decode
//   - [slog.LevelWarn]: dropped key events (unknown action)
//   - [slog.LevelError]: key events that could not be encoded or sent
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. Safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
