/*
Package errors provides the error type returned by the iarray packages. Every error carries a
Category and a Type so callers can branch on what went wrong without matching strings:

	b, err := a.Set(-1, 10)
	if errors.Is(err, iarray.ErrRange) {
		// The index was negative or too large.
	}

An Error records the file and line it was created on and the time it was created. It can be
logged with all of its attributes with Error.Log() and it counts itself in the meter provider
from telemetry/otel/metrics as a <Category>.<Type> counter when it is created.

Errors in this package are created with E(). Functions and methods should always return the
error interface and never the concrete Error type.
*/
package errors

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"runtime/debug"
	"time"
	"unsafe"

	ierr "github.com/gostdlib/iarray/internal/errors"
	"github.com/gostdlib/iarray/telemetry/log"
	"github.com/gostdlib/iarray/telemetry/otel/metrics"

	"github.com/go-json-experiment/json"
)

// LogAttrer is an interface that can be implemented by an error to return a list of attributes
// used in logging.
type LogAttrer interface {
	// LogAttrs returns a []slog.Attr that will be used in logging.
	LogAttrs(ctx context.Context) []slog.Attr
}

// Category is the category of the error.
type Category interface {
	Category() string
}

// Type is the type of the error.
type Type interface {
	Type() string
}

type errImplements interface {
	error
	LogAttrer

	Is(target error) bool
	Unwrap() error
}

// Validate we implement the correct interfaces.
var _ errImplements = Error{}

// Error represents an error that has a category and a type. Created with E().
type Error struct {
	// Category is the category of the error. Should always be provided.
	Category Category
	// Type is the type of the error. This is a subcategory of the Category.
	Type Type
	// Msg is the message of the error.
	Msg error

	// File is the file that the error was created in. This is automatically
	// filled in by E().
	File string
	// Line is the line that the error was created on. This is automatically
	// filled in by E().
	Line int
	// ErrTime is the time that the error was created. This is automatically filled
	// in by E(). This is in UTC.
	ErrTime time.Time
	// StackTrace is the stack trace of the error. This is automatically filled
	// in by E() if WithStackTrace() is used.
	StackTrace string

	attrs []slog.Attr
}

// EOption is an optional argument for E().
type EOption = ierr.EOption

// WithCallNum is used if you need to set the runtime.CallNum() in order to get the correct filename and line.
// This can happen if you create a call wrapper around E(), because you would then need to look up one more stack frame
// for every wrapper. This defaults to 1 which sets to the frame of the caller of E().
func WithCallNum(i int) EOption {
	return func(e ierr.EOpts) ierr.EOpts {
		e.CallNum = i
		return e
	}
}

// WithStackTrace will add a stack trace to the error. This is useful for debugging in certain rare
// cases. This is not recommended for general use as it can cause performance issues when errors
// are created frequently.
func WithStackTrace() EOption {
	return func(e ierr.EOpts) ierr.EOpts {
		e.StackTrace = true
		return e
	}
}

// WithAttrs adds attributes that are included when the error is logged.
func WithAttrs(attrs ...slog.Attr) EOption {
	return func(e ierr.EOpts) ierr.EOpts {
		e.Attrs = append(e.Attrs, attrs...)
		return e
	}
}

var now = time.Now

// E creates a new Error with the given parameters. If the message is already an Error, it will be returned instead.
func E(ctx context.Context, c Category, t Type, msg error, options ...EOption) Error {
	if e, ok := msg.(Error); ok {
		return e
	}
	if ctx == nil {
		ctx = context.Background()
	}

	opts := ierr.EOpts{CallNum: 1}

	for _, o := range options {
		opts = o(opts)
	}

	_, filename, line, ok := runtime.Caller(opts.CallNum)
	if !ok {
		filename = "unknown"
	}

	if msg == nil {
		msg = errors.New("bug: nil error")
	}

	var st string
	if opts.StackTrace {
		st = bytesToStr(debug.Stack())
	}

	e := Error{
		Category:   c,
		Type:       t,
		File:       filename,
		Line:       line,
		Msg:        msg,
		ErrTime:    now().UTC(),
		StackTrace: st,
		attrs:      opts.Attrs,
	}

	e.metrics(ctx)
	return e
}

// Error implements the error interface.
func (e Error) Error() string {
	if e.Msg == nil {
		return "error message not provided"
	}
	return e.Msg.Error()
}

// Is implements the errors.Is() interface. An Error is equal to another Error if the category and type are the same.
func (e Error) Is(target error) bool {
	if target == nil {
		return false
	}
	if targetE, ok := target.(Error); ok {
		return e.Category == targetE.Category && e.Type == targetE.Type
	}

	we := e.Msg
	for {
		if we == nil {
			return false
		}
		if errors.Is(we, target) {
			return true
		}
		we = errors.Unwrap(we)
	}
}

// Unwrap unwraps the error.
func (e Error) Unwrap() error {
	return e.Msg
}

// LogAttrs implements the LogAttrer.LogAttrs() interface.
func (e Error) LogAttrs(ctx context.Context) []slog.Attr {
	cat, typ := e.names()

	attrs := []slog.Attr{
		slog.String("Category", cat),
		slog.String("Type", typ),
		slog.String("ErrSrc", e.File),
		slog.Int("ErrLine", e.Line),
		slog.Time("ErrTime", e.ErrTime.UTC()),
	}
	if e.StackTrace != "" {
		attrs = append(attrs, slog.String("StackTrace", e.StackTrace))
	}
	attrs = append(attrs, e.attrs...)

	return attrs
}

func (e Error) names() (cat, typ string) {
	cat, typ = "Unknown", "Unknown"
	if e.Category != nil {
		cat = e.Category.Category()
	}
	if e.Type != nil {
		typ = e.Type.Type()
	}
	return cat, typ
}

const meterName = "github.com/gostdlib/iarray/errors"

// metrics records the error in the metrics system using the Category() and Type() as the metric name
// in the format: <Category>.<Type>.
func (e Error) metrics(ctx context.Context) {
	m := metrics.Default().Meter(meterName)
	if m == nil {
		return // No meter, nothing to do.
	}

	cat, typ := e.names()
	c, err := m.Int64Counter(fmt.Sprintf("%s.%s", cat, typ))
	if err != nil {
		return
	}
	c.Add(ctx, 1)
}

// Log logs the error at Error level with the name of the operation that failed and its arguments.
// The arguments are expected to be JSON serializable. If they are not, the marshal error is logged
// in their place.
func (e Error) Log(ctx context.Context, op string, args any) {
	e.LogAt(ctx, slog.LevelError, op, args)
}

// LogAt is Log() at level lvl. Nothing is marshaled if the logger discards lvl.
func (e Error) LogAt(ctx context.Context, lvl slog.Level, op string, args any) {
	l := log.Default()
	if !l.Enabled(ctx, lvl) {
		return
	}

	var argBytes []byte

	// Ignore serialization errors, it just means we log less information.
	if args != nil {
		var err error
		argBytes, err = json.Marshal(args)
		if err != nil {
			argBytes = fmt.Appendf(nil, "unable to marshal args %T object due to error: %s", args, err.Error())
		}
	}

	logAttrs := e.LogAttrs(ctx)
	attrs := make([]slog.Attr, 0, 2+len(logAttrs))
	if op != "" {
		attrs = append(attrs, slog.String("Op", op))
	}
	if len(argBytes) > 0 {
		attrs = append(attrs, slog.String("Args", bytesToStr(argBytes)))
	}
	attrs = append(attrs, logAttrs...)

	// Look at the message and any wrapped errors and see if they implement LogAttrer.
	for err := e.Msg; err != nil; err = errors.Unwrap(err) {
		if f, ok := err.(LogAttrer); ok {
			attrs = append(attrs, f.LogAttrs(ctx)...)
		}
	}

	l.LogAttrs(ctx, lvl, e.Error(), attrs...)
}

// bytesToStr converts a byte slice to a string without copying the data.
func bytesToStr(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}
