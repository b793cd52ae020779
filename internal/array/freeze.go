package array

import (
	"reflect"
	"unsafe"

	"github.com/gostdlib/iarray/internal/sets"
)

// enforce applies policy p to a.
func enforce[T any](a *Array[T], p Policy) {
	switch p {
	case Shallow:
		a.Freeze()
	case Deep:
		a.Freeze()
		freezeNested(a)
	default:
		return
	}
	recordEnforcement(p)
}

// identity is the identity of a reference value. len separates slices that share a backing
// array but have different lengths.
type identity struct {
	p   unsafe.Pointer
	t   reflect.Type
	len int
}

var freezableType = reflect.TypeFor[Freezable]()

// freezeNested freezes every Freezable reachable from the elements of root that is not already
// frozen. Frozen values are not walked again, which with the visited set for pointers, slices and
// maps makes the walk finish on cyclic values.
func freezeNested(root holder) {
	var (
		visited sets.Set[identity]
		stack   []reflect.Value
	)
	push := func(v any) bool {
		if v != nil {
			stack = append(stack, reflect.ValueOf(v))
		}
		return true
	}
	root.eachAny(push)

	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !v.IsValid() || isNil(v) {
			continue
		}

		if v.Type().Implements(freezableType) && v.CanInterface() {
			f := v.Interface().(Freezable)
			if f.Frozen() {
				continue
			}
			f.Freeze()
			if h, ok := f.(holder); ok {
				h.eachAny(push)
				continue
			}
		}

		switch v.Kind() {
		case reflect.Pointer:
			if visited.Insert(identity{p: v.UnsafePointer(), t: v.Type()}) {
				stack = append(stack, v.Elem())
			}
		case reflect.Interface:
			stack = append(stack, v.Elem())
		case reflect.Slice:
			if !mayHoldFreezable(v.Type().Elem()) {
				continue
			}
			if visited.Insert(identity{p: v.UnsafePointer(), t: v.Type(), len: v.Len()}) {
				for i := range v.Len() {
					stack = append(stack, v.Index(i))
				}
			}
		case reflect.Array:
			if mayHoldFreezable(v.Type().Elem()) {
				for i := range v.Len() {
					stack = append(stack, v.Index(i))
				}
			}
		case reflect.Map:
			t := v.Type()
			if !mayHoldFreezable(t.Key()) && !mayHoldFreezable(t.Elem()) {
				continue
			}
			if visited.Insert(identity{p: v.UnsafePointer(), t: t}) {
				iter := v.MapRange()
				for iter.Next() {
					stack = append(stack, iter.Key(), iter.Value())
				}
			}
		case reflect.Struct:
			t := v.Type()
			for i := range v.NumField() {
				if t.Field(i).IsExported() {
					stack = append(stack, v.Field(i))
				}
			}
		}
	}
}

// isNil reports if v is a nil reference. Freezable methods are never called on nil values.
func isNil(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}

// mayHoldFreezable reports if a value of type t can be or contain a Freezable. It returns false
// only for types that certainly can't, such as []int, so that large scalar slices are not walked.
func mayHoldFreezable(t reflect.Type) bool {
	if t.Implements(freezableType) {
		return true
	}
	switch t.Kind() {
	case reflect.Bool, reflect.String, reflect.Uintptr, reflect.UnsafePointer, reflect.Chan, reflect.Func,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Slice, reflect.Array:
		return mayHoldFreezable(t.Elem())
	}
	return true
}
