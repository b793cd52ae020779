package array

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"

	"github.com/gostdlib/iarray/errors"
	"github.com/gostdlib/iarray/telemetry/log"
)

// Sentinel errors for use with errors.Is(). Matching is on the Category and Type of the error.
var (
	// ErrFrozen matches errors from an in-place write to an Array that was frozen by its policy.
	ErrFrozen = errors.Error{Category: errors.CatRequest, Type: errors.TypeFrozen, Msg: stderrors.New("array is frozen")}
	// ErrArgument matches errors caused by an argument of the wrong type or value.
	ErrArgument = errors.Error{Category: errors.CatRequest, Type: errors.TypeArgument, Msg: stderrors.New("bad argument")}
	// ErrRange matches errors caused by an index or length outside of [0, MaxLen].
	ErrRange = errors.Error{Category: errors.CatRequest, Type: errors.TypeRange, Msg: stderrors.New("out of range")}
)

// errorf creates a request error of type t for the caller of errorf.
func errorf(t errors.ErrType, format string, args ...any) error {
	return errors.E(context.Background(), errors.CatRequest, t, fmt.Errorf(format, args...), errors.WithCallNum(2))
}

// rejected returns the error for write op on a frozen Array of length n, counts it and logs it at
// Debug level with args. At Debug level the error also carries a stack trace that finds the write.
func rejected(op string, n int, args map[string]any) error {
	recordViolation()

	ctx := context.Background()
	opts := []errors.EOption{errors.WithCallNum(2), errors.WithAttrs(slog.Int("Len", n))}
	if log.Default().Enabled(ctx, slog.LevelDebug) {
		opts = append(opts, errors.WithStackTrace())
	}

	e := errors.E(ctx, errors.CatRequest, errors.TypeFrozen, fmt.Errorf("%s: the array is frozen", op), opts...)
	e.LogAt(ctx, slog.LevelDebug, op, args)
	return e
}
