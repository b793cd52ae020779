// Package adapters provides adapters for converting logging instances to the *slog.Logger type.
// This allows a program that already uses zap or zerolog to receive the iarray log output:
//
//	log.Set(adapters.Zap(zapLogger))
package adapters

import (
	"log/slog"

	"github.com/gostdlib/iarray/telemetry/log"

	"github.com/rs/zerolog"
	slogzap "github.com/samber/slog-zap/v2"
	slogzerolog "github.com/samber/slog-zerolog/v2"
	"go.uber.org/zap"
)

type options struct {
	addSource bool
	level     slog.Leveler
}

// Option is an optional argument for Zap() and ZeroLog().
type Option func(options) options

// WithSource adds the source file and line of the log call to each record. Defaults to true.
func WithSource(b bool) Option {
	return func(o options) options {
		o.addSource = b
		return o
	}
}

// WithLevel sets the minimum level of the returned logger. Defaults to log.LogLevel.
func WithLevel(l slog.Leveler) Option {
	return func(o options) options {
		o.level = l
		return o
	}
}

func newOptions(opts []Option) options {
	o := options{addSource: true, level: log.LogLevel}
	for _, opt := range opts {
		o = opt(o)
	}
	return o
}

// Zap creates a new slog.Logger that writes to a Zap logger.
func Zap(l *zap.Logger, opts ...Option) *slog.Logger {
	o := newOptions(opts)
	return slog.New(
		slogzap.Option{
			AddSource: o.addSource,
			Level:     o.level,
			Logger:    l,
		}.NewZapHandler(),
	)
}

// ZeroLog creates a new slog.Logger that writes to a Zerolog logger.
func ZeroLog(l zerolog.Logger, opts ...Option) *slog.Logger {
	o := newOptions(opts)
	return slog.New(
		slogzerolog.Option{
			AddSource: o.addSource,
			Level:     o.level,
			Logger:    &l,
		}.NewZerologHandler(),
	)
}
