package errors

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/gostdlib/iarray/telemetry/log"
	"github.com/gostdlib/iarray/telemetry/otel/metrics"

	"github.com/go-json-experiment/json"
	"github.com/kylelemons/godebug/pretty"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

var _ LogAttrer = indexErr{}

// indexErr is a custom error that carries the index an operation failed on.
type indexErr struct {
	Index int
	Msg   error
}

func (i indexErr) Error() string {
	return i.Msg.Error()
}

func (i indexErr) Unwrap() error {
	return i.Msg
}

func (i indexErr) LogAttrs(context.Context) []slog.Attr {
	return []slog.Attr{slog.Group("iarray.indexErr", "Index", i.Index)}
}

func TestE(t *testing.T) {
	// Do not t.Parallel()

	ti := time.Now()
	t.Cleanup(func() { now = time.Now })
	now = func() time.Time {
		return ti
	}

	tests := []struct {
		name string
		msg  error
		want Error
	}{
		{
			name: "msg is nil",
			want: Error{
				Category: CatRequest,
				Type:     TypeFrozen,
				ErrTime:  ti.UTC(),
				Msg:      errors.New("bug: nil error"),
			},
		},
		{
			name: "msg is an Error(our error type)",
			msg: Error{
				Msg: errors.New("whatever"),
			},
			want: Error{
				Msg: errors.New("whatever"),
			},
		},
		{
			name: "msg is just some error(normal error type)",
			msg:  errors.New("error"),
			want: Error{
				Category: CatRequest,
				Type:     TypeFrozen,
				ErrTime:  ti.UTC(),
				Msg:      errors.New("error"),
			},
		},
	}

	for _, test := range tests {
		got := E(context.Background(), CatRequest, TypeFrozen, test.msg)
		_, fn, line, _ := runtime.Caller(0)
		if _, ok := test.msg.(Error); !ok {
			test.want.Line = line - 1
			test.want.File = fn
		}

		if diff := pretty.Compare(test.want, got); diff != "" {
			t.Errorf("TestE(%s): -want/+got: %s\n", test.name, diff)
		}
	}
}

func TestEOptions(t *testing.T) {
	t.Parallel()

	e := E(context.Background(), CatRequest, TypeRange, errors.New("index -1 out of range"), WithStackTrace(), WithAttrs(slog.Int("Len", 2)))
	if e.StackTrace == "" {
		t.Errorf("TestEOptions: WithStackTrace() was not applied")
	}
	if len(e.attrs) != 1 || !e.attrs[0].Equal(slog.Int("Len", 2)) {
		t.Errorf("TestEOptions: WithAttrs() gave attrs %v", e.attrs)
	}

	e = E(context.Background(), CatRequest, TypeRange, errors.New("index -1 out of range"))
	if e.StackTrace != "" {
		t.Errorf("TestEOptions: stack trace recorded without the option")
	}
}

func TestError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  Error
		want string
	}{
		{
			name: "Get the error string from Msg",
			err:  Error{Msg: errors.New("error")},
			want: "error",
		},
		{
			name: "No Msg",
			err:  Error{},
			want: "error message not provided",
		},
	}

	for _, test := range tests {
		if test.want != test.err.Error() {
			t.Errorf("TestError(%s): got %q, want %q", test.name, test.err.Error(), test.want)
		}
	}
}

func TestIs(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("sentinel")

	tests := []struct {
		name   string
		err    Error
		target error
		want   bool
	}{
		{
			name:   "Empty errors",
			err:    Error{},
			target: Error{},
			want:   true,
		},
		{
			name: "Error and nil",
			err:  Error{},
		},
		{
			name:   "Error and not an Error",
			err:    Error{},
			target: errors.New("error"),
		},
		{
			name:   "Errors don't match category",
			err:    Error{},
			target: Error{Category: CatRequest},
		},
		{
			name:   "Errors don't match type",
			err:    Error{Category: CatRequest},
			target: Error{Category: CatRequest, Type: TypeFrozen},
		},
		{
			name:   "Errors cat and type match",
			err:    Error{Category: CatRequest, Type: TypeFrozen},
			target: Error{Category: CatRequest, Type: TypeFrozen},
			want:   true,
		},
		{
			name:   "Errors dont' have same Msg (still should match)",
			err:    Error{Category: CatRequest, Type: TypeRange, Msg: errors.New("error")},
			target: Error{Category: CatRequest, Type: TypeRange, Msg: errors.New("another error")},
			want:   true,
		},
		{
			name:   "Wrapped message matches",
			err:    Error{Category: CatRequest, Type: TypeArgument, Msg: fmt.Errorf("concat: %w", sentinel)},
			target: sentinel,
			want:   true,
		},
	}

	for _, test := range tests {
		got := errors.Is(test.err, test.target)
		if got != test.want {
			t.Errorf("TestIs(%s): got %v, want %v", test.name, got, test.want)
		}
	}
}

func TestUnwrap(t *testing.T) {
	t.Parallel()

	e := Error{}

	if errors.Unwrap(e) != nil {
		t.Fatal("TestUnwrap: Unwrap() should return nil if .Msg is nil")
	}
	e.Msg = fmt.Errorf("error")

	if errors.Unwrap(e).Error() != "error" {
		t.Fatal("TestUnwrap: Unwrap does not unwrap the error")
	}
}

func TestKinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"CatRequest", CatRequest.Category(), "Request"},
		{"CatInternal", CatInternal.Category(), "Internal"},
		{"unknown category", ErrCategory(42).Category(), "ErrCategory(42)"},
		{"TypeFrozen", TypeFrozen.Type(), "Frozen"},
		{"TypeArgument", TypeArgument.Type(), "Argument"},
		{"TypeRange", TypeRange.Type(), "Range"},
		{"unknown type", ErrType(9).Type(), "ErrType(9)"},
	}

	for _, test := range tests {
		if test.got != test.want {
			t.Errorf("TestKinds(%s): got %q, want %q", test.name, test.got, test.want)
		}
	}
}

func TestMetrics(t *testing.T) {
	// Do not do t.Parallel(), this replaces the default meter provider.

	reader := sdkmetric.NewManualReader()
	metrics.Set(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)))
	t.Cleanup(func() { metrics.Set(nil) })
	ctx := context.Background()

	E(ctx, CatRequest, TypeFrozen, errors.New("frozen"))
	E(ctx, CatRequest, TypeFrozen, errors.New("frozen"))
	E(ctx, CatRequest, TypeRange, errors.New("range"))

	rm := metricdata.ResourceMetrics{}
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("TestMetrics: Collect(): %s", err)
	}

	got := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		if sm.Scope.Name != meterName {
			continue
		}
		for _, m := range sm.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			for _, dp := range sum.DataPoints {
				got[m.Name] += dp.Value
			}
		}
	}
	want := map[string]int64{"Request.Frozen": 2, "Request.Range": 1}
	if diff := pretty.Compare(want, got); diff != "" {
		t.Errorf("TestMetrics: -want/+got:\n%s", diff)
	}
}

func TestLog(t *testing.T) {
	// Do not do t.Parallel().

	ti := time.Now()

	buff := &bytes.Buffer{}
	log.Set(slog.New(slog.NewJSONHandler(buff, nil)))
	t.Cleanup(func() { log.Set(nil) })

	tests := []struct {
		name string
		e    Error
		op   string
		args any
		want map[string]any
	}{
		{
			name: "Empty error with no args",
			want: map[string]any{
				"Category": "Unknown",
				"ErrSrc":   "",
				"ErrLine":  0,
				"Type":     "Unknown",
				"level":    "ERROR",
				"msg":      "error message not provided",
			},
		},
		{
			name: "Error with op and args",
			e: Error{
				Category: CatRequest,
				File:     "filename",
				Line:     123,
				Type:     TypeRange,
				ErrTime:  ti,
				Msg:      fmt.Errorf("index -1 out of range"),
			},
			op:   "Set",
			args: map[string]any{"index": -1},
			want: map[string]any{
				"Args":     `{"index":-1}`,
				"Category": "Request",
				"ErrSrc":   "filename",
				"ErrLine":  123,
				"Op":       "Set",
				"Type":     "Range",
				"level":    "ERROR",
				"msg":      "index -1 out of range",
			},
		},
		{
			name: "Error has Msg that has sub-attributes",
			e: Error{
				Category: CatRequest,
				File:     "filename",
				Line:     123,
				Type:     TypeFrozen,
				ErrTime:  ti,
				Msg:      indexErr{Index: 3, Msg: errors.New("array is frozen")},
			},
			op: "Put",
			want: map[string]any{
				"Category": "Request",
				"ErrSrc":   "filename",
				"ErrLine":  123,
				"Op":       "Put",
				"Type":     "Frozen",
				"level":    "ERROR",
				"msg":      "array is frozen",
				"iarray.indexErr": map[string]any{
					"Index": 3,
				},
			},
		},
	}

	for _, test := range tests {
		buff.Reset()

		test.e.Log(context.Background(), test.op, test.args)

		got := map[string]any{}
		if err := json.Unmarshal(buff.Bytes(), &got); err != nil {
			t.Logf("got: %s", buff.Bytes())
			t.Fatalf("TestLog(%s): got error on json.Unmarshal: %s", test.name, err)
		}
		// Times are written by the logging library and by Error, we don't compare them.
		delete(got, "time")
		delete(got, "ErrTime")

		if diff := pretty.Compare(test.want, got); diff != "" {
			t.Errorf("TestLog(%s): -want/+got:\n%s", test.name, diff)
		}
	}
}

func TestLogUnmarshalableArgs(t *testing.T) {
	// Do not do t.Parallel().

	buff := &bytes.Buffer{}
	log.Set(slog.New(slog.NewJSONHandler(buff, nil)))
	t.Cleanup(func() { log.Set(nil) })

	e := Error{Category: CatRequest, Type: TypeArgument, Msg: errors.New("bad argument")}
	e.Log(context.Background(), "Concat", func() {})

	if !strings.Contains(buff.String(), "unable to marshal args") {
		t.Errorf("TestLogUnmarshalableArgs: got %s, want marshal error in output", buff.String())
	}
}

func TestLogAt(t *testing.T) {
	// Do not do t.Parallel().

	buff := &bytes.Buffer{}
	log.Set(slog.New(slog.NewJSONHandler(buff, nil)))
	t.Cleanup(func() { log.Set(nil) })

	e := Error{Category: CatRequest, Type: TypeFrozen, Msg: errors.New("Put: the array is frozen")}

	e.LogAt(context.Background(), slog.LevelDebug, "Put", map[string]any{"index": 3})
	if buff.Len() != 0 {
		t.Errorf("TestLogAt: logged below the logger level: %s", buff.String())
	}

	e.LogAt(context.Background(), slog.LevelWarn, "Put", map[string]any{"index": 3})
	got := map[string]any{}
	if err := json.Unmarshal(buff.Bytes(), &got); err != nil {
		t.Fatalf("TestLogAt: got error on json.Unmarshal: %s", err)
	}
	if got["level"] != "WARN" || got["Op"] != "Put" || got["Args"] != `{"index":3}` {
		t.Errorf("TestLogAt: got %v", got)
	}
}
