// Package errors exists to avoid some import cycles.
package errors

import "log/slog"

// EOpts is the options for E(). Defaults are set by errors.E().
type EOpts struct {
	// CallNum is the number of calls to skip when looking up the file and line of the error.
	CallNum int
	// StackTrace is an option to include the stack trace.
	StackTrace bool
	// Attrs are additional attributes to include when the error is logged.
	Attrs []slog.Attr
}

// EOption is an optional argument for E().
type EOption func(EOpts) EOpts
