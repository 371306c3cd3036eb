package abg

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger may be called from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for abg and its sub-packages.
// By default abg produces no log output. Pass nil to restore the silent
// default.
//
// Log levels used by abg:
//   - [slog.LevelDebug]: ring samples dropped or replaced, raster sizes
//   - [slog.LevelInfo]: rendered output written
//   - [slog.LevelWarn]: values outside the slider ranges, inconsistent pH
//
// Example:
//
//	abg.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by abg.
// The chart package and cmd/abgmap share it through this accessor.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
