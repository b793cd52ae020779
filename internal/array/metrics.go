package array

import (
	"context"
	"reflect"
	"sync/atomic"

	"github.com/gostdlib/iarray/telemetry/otel/metrics"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const meterName = "github.com/gostdlib/iarray"

// group is the kind of operation that created an Array.
type group uint8

const (
	groupConstruct group = iota
	groupDerive
	groupMutate
	groupCustom
)

var groupAttrs = [...]metric.AddOption{
	groupConstruct: metric.WithAttributeSet(attribute.NewSet(attribute.String("group", "construct"))),
	groupDerive:    metric.WithAttributeSet(attribute.NewSet(attribute.String("group", "derive"))),
	groupMutate:    metric.WithAttributeSet(attribute.NewSet(attribute.String("group", "mutate"))),
	groupCustom:    metric.WithAttributeSet(attribute.NewSet(attribute.String("group", "custom"))),
}

var policyAttrs = [...]metric.AddOption{
	Shallow: metric.WithAttributeSet(attribute.NewSet(attribute.String("policy", Shallow.String()))),
	Deep:    metric.WithAttributeSet(attribute.NewSet(attribute.String("policy", Deep.String()))),
}

// arrayMetrics are the instruments created from one meter provider.
type arrayMetrics struct {
	provider     metric.MeterProvider
	instances    metric.Int64Counter
	enforcements metric.Int64Counter
	violations   metric.Int64Counter
}

var cached atomic.Pointer[arrayMetrics]

// meters returns the instruments for the current default meter provider, creating them if the
// provider changed since the last call.
func meters() *arrayMetrics {
	mp := metrics.Default()
	if m := cached.Load(); m != nil && sameProvider(m.provider, mp) {
		return m
	}

	meter := mp.Meter(meterName)
	m := &arrayMetrics{provider: mp}

	m.instances = counter(meter, "iarray.instances", "Number of arrays created, by the group of the operation that created them.")
	m.enforcements = counter(meter, "iarray.enforcements", "Number of arrays frozen on creation, by policy.")
	m.violations = counter(meter, "iarray.violations", "Number of in-place writes rejected because the array was frozen.")
	cached.Store(m)
	return m
}

func counter(meter metric.Meter, name, desc string) metric.Int64Counter {
	c, err := meter.Int64Counter(name, metric.WithDescription(desc))
	if err != nil || c == nil {
		return noop.Int64Counter{}
	}
	return c
}

// sameProvider compares providers without panicking on providers that are not comparable.
func sameProvider(a, b metric.MeterProvider) bool {
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	if !reflect.TypeOf(a).Comparable() {
		return false
	}
	return a == b
}

func recordInstance(g group) {
	meters().instances.Add(context.Background(), 1, groupAttrs[g])
}

func recordEnforcement(p Policy) {
	meters().enforcements.Add(context.Background(), 1, policyAttrs[p])
}

func recordViolation() {
	meters().violations.Add(context.Background(), 1)
}
