package quartz

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/quartz/raster"
)

// nopHandler drops every record. Enabled reports false, so slog never
// formats the attributes of a dropped record.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func silentLogger() *slog.Logger { return slog.New(nopHandler{}) }

// current holds the package logger; never nil after init.
var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(silentLogger())
}

// SetLogger sets the logger used by quartz, the raster engine and package
// font. Nothing is logged until it is called; a nil logger turns logging
// off again. It may be called while other goroutines draw.
//
// Levels:
//   - [slog.LevelDebug]: internal diagnostics (layers, shadow buffers, groups)
//   - [slog.LevelWarn]: misuse and engine failures (unbalanced restore,
//     engine error status, missing glyphs)
//
// Example:
//
//	quartz.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silentLogger()
	}
	current.Store(l)
	raster.SetLogger(l)
}

// Logger returns the logger set by SetLogger. Package font logs through it.
func Logger() *slog.Logger {
	return current.Load()
}
