// Package log holds the *slog.Logger used by the iarray packages. The library logs configuration
// events, such as a change of freeze policy, and at Debug level the writes a frozen array rejected.
// Replace the logger with Set(), for example with one of the adapters in the adapters/ sub-package.
package log

import (
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/gostdlib/iarray/internal/envvar"
)

// LogLevel is the log level for the package loggers. It is Info by default and can be set with
// the IArrayLogLevel environment variable. Loggers built by the adapters package use it as well.
var LogLevel = new(slog.LevelVar)

var defaultLog atomic.Pointer[slog.Logger]

func init() {
	if v, ok := os.LookupEnv(envvar.LogLevel); ok {
		var l slog.Level
		if err := l.UnmarshalText([]byte(v)); err == nil {
			LogLevel.Set(l)
		}
	}
	defaultLog.Store(newJSON())
}

func newJSON() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{AddSource: false, Level: LogLevel}))
}

// Default returns the logger used by the iarray packages.
func Default() *slog.Logger {
	l := defaultLog.Load()
	if l == nil {
		return slog.Default()
	}
	return l
}

// Set sets the logger returned by Default(). Passing nil restores the JSON logger writing to stdout.
// This does not change slog.Default(); the library never takes over the program wide logger.
func Set(l *slog.Logger) {
	if l == nil {
		l = newJSON()
	}
	defaultLog.Store(l)
}
