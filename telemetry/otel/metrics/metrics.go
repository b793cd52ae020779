// Package metrics holds the OpenTelemetry meter provider used by the iarray packages. Nothing is
// exported until a provider is installed with Set(). Until then Default() returns a noop provider,
// so recording a metric costs a few function calls and nothing else.
package metrics

import (
	"context"
	"runtime"
	"strings"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

var (
	mu              sync.RWMutex
	defaultProvider metric.MeterProvider
)

// Default returns the default meter provider. If no provider has been set with Set(), this
// will return a noop provider.
func Default() metric.MeterProvider {
	mu.RLock()
	defer mu.RUnlock()

	if defaultProvider == nil {
		return noop.NewMeterProvider()
	}
	return defaultProvider
}

// Set sets the default meter provider and the otel global provider. Passing nil restores the
// noop provider. This should be done in main() before creating arrays.
func Set(p metric.MeterProvider) {
	mu.Lock()
	defer mu.Unlock()

	defaultProvider = p
	if p == nil {
		otel.SetMeterProvider(noop.NewMeterProvider())
		return
	}
	otel.SetMeterProvider(p)
}

// Close shuts down the default provider if it is an SDK provider, flushing any readers.
func Close(ctx context.Context) error {
	if v, ok := Default().(*sdkmetric.MeterProvider); ok {
		return v.Shutdown(ctx)
	}
	return nil
}

// MeterName returns the import path of the package containing the function stackFrame levels
// above the caller of MeterName(). If this can't be determined "unknown" will be returned.
// Use 0 for the package that calls MeterName().
//
// For example, called with 0 from a method in github.com/gostdlib/iarray/internal/array
// this returns "github.com/gostdlib/iarray/internal/array".
func MeterName(stackFrame int) string {
	pc, _, _, ok := runtime.Caller(stackFrame + 1)
	if !ok {
		return "unknown"
	}

	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknown"
	}
	return pkgPath(fn.Name())
}

// pkgPath extracts the package path from a fully qualified function name such as
// "github.com/user/project/pkg.(*Type).Method".
func pkgPath(fullName string) string {
	lastSlash := strings.LastIndex(fullName, "/")
	if lastSlash == -1 {
		// Happens in the playground, where there is no real path.
		if i := strings.Index(fullName, "."); i > 0 {
			return fullName[:i]
		}
		return fullName
	}

	dot := strings.Index(fullName[lastSlash:], ".")
	if dot == -1 {
		return fullName
	}
	return fullName[:lastSlash+dot]
}
