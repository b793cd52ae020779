package seq

import (
	"math"
	"reflect"
)

// StrictEqual reports if a and b are the same value. Comparable values use ==, so NaN is never
// equal to itself. Values that are not comparable (slices, maps, funcs and types holding them)
// are equal only if they refer to the same underlying object.
func StrictEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	if va.Comparable() && vb.Comparable() {
		return a == b
	}
	return sameObject(va, vb)
}

// SameValueZero is StrictEqual except that NaN is equal to NaN. This is the equality used
// to test for membership.
func SameValueZero(a, b any) bool {
	if isNaN(a) && isNaN(b) {
		return true
	}
	return StrictEqual(a, b)
}

func isNaN(v any) bool {
	switch x := v.(type) {
	case float64:
		return math.IsNaN(x)
	case float32:
		return math.IsNaN(float64(x))
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return math.IsNaN(rv.Float())
	}
	return false
}

// sameObject reports if two values of the same non-comparable type share their identity.
// Values without identity (such as structs containing slices) are never the same object.
func sameObject(a, b reflect.Value) bool {
	switch a.Kind() {
	case reflect.Slice:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() && b.IsNil()
		}
		return a.UnsafePointer() == b.UnsafePointer() && a.Len() == b.Len()
	case reflect.Map, reflect.Func:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() && b.IsNil()
		}
		return a.UnsafePointer() == b.UnsafePointer()
	}
	return false
}
