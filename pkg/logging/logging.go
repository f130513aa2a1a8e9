// Package logging holds the slog logger shared by every geomkit package.
// Nothing is logged until SetLogger installs a real logger.
package logging

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record. Enabled reports false so callers skip
// building attributes.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(slog.New(nopHandler{}))
}

// SetLogger installs l for all packages. Passing nil restores silence.
//
// Levels in use:
//   - Debug: per-evaluation and per-mesh details
//   - Info: CLI lifecycle
//   - Warn: timeouts and recovered panics
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	current.Store(l)
}

// Logger returns the active logger. Safe for concurrent use.
func Logger() *slog.Logger {
	return current.Load()
}

// Enabled reports whether the active logger would emit at level.
func Enabled(level slog.Level) bool {
	return current.Load().Enabled(context.Background(), level)
}
