// Package logging holds the *slog.Logger used by fontpref packages for debug
// output. Nothing is logged unless a logger is installed with SetLogger.
package logging

import (
	"log/slog"
	"sync/atomic"
)

var logger atomic.Pointer[slog.Logger]

func discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// SetLogger installs sl as the package logger. Passing nil restores the
// discard logger. SetLogger is safe for concurrent use.
//
// Example sending debug output to stderr:
//
//	logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(sl *slog.Logger) {
	if sl == nil {
		sl = discard()
	}
	logger.Store(sl)
}

// Logger returns the installed logger, or a logger that discards everything
// when none was set. Logger is safe for concurrent use.
func Logger() *slog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	l := discard()
	logger.CompareAndSwap(nil, l)
	return logger.Load()
}
