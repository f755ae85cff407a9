package notation

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// silent drops every record. Enabled is false, so callers never build the
// attributes.
type silent struct{}

func (silent) Enabled(context.Context, slog.Level) bool  { return false }
func (silent) Handle(context.Context, slog.Record) error { return nil }
func (s silent) WithAttrs([]slog.Attr) slog.Handler      { return s }
func (s silent) WithGroup(string) slog.Handler           { return s }

var (
	quiet   = slog.New(silent{})
	current atomic.Pointer[slog.Logger]
)

func init() { current.Store(quiet) }

// SetLogger routes the log output of notation, page and bootstrap to l.
// A nil l turns logging off again, which is also the initial state.
//
// Drawing details (modifier x positions, glyph widths) are logged at
// Debug, renderer creation and ready dispatch at Info, and font family
// fallbacks at Warn. The stave-render command wires this to a
// slog.TextHandler:
//
//	notation.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = quiet
	}
	current.Store(l)
}

// Logger returns the logger set by SetLogger.
func Logger() *slog.Logger { return current.Load() }
