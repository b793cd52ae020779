package array

import (
	"reflect"
	"slices"

	"github.com/gostdlib/iarray/errors"
	"github.com/gostdlib/iarray/internal/seq"
)

// Concat returns a new Array holding the elements of the receiver followed by args. An arg that is
// an Array of any element type, a slice or a Go array adds its elements. Any other arg is added as
// a single element. nil is added as the zero value when T is an interface, pointer, slice, map,
// func or chan type.
//
// Every element added must be assignable to T, otherwise an error is returned and no Array is made.
// An arg of type T is always added as one element, so Concat on an Array[[]int] appends a []int arg
// and spreads a [][]int arg.
func (a *Array[T]) Concat(args ...any) (*Array[T], error) {
	n := clone(a.elems)

	for i, arg := range args {
		var err error
		n, err = concatArg(n, i, arg)
		if err != nil {
			return nil, err
		}
	}

	return a.derive(n, groupCustom), nil
}

// concatArg appends the element or elements of arg to n.
func concatArg[T any](n []T, argNum int, arg any) ([]T, error) {
	switch x := arg.(type) {
	case []T:
		return append(n, x...), nil
	case *Array[T]:
		if x != nil {
			return append(n, x.elems...), nil
		}
	}

	if h, ok := arg.(holder); ok && !noValue(arg) {
		return appendAll(n, h, argNum)
	}
	if arg != nil {
		rv := reflect.ValueOf(arg)
		switch rv.Kind() {
		case reflect.Slice, reflect.Array:
			if rv.Type() != reflect.TypeFor[T]() {
				return appendAll(n, reflectHolder{rv}, argNum)
			}
		}
	}

	v, ok := convert[T](arg)
	if !ok {
		return nil, errorf(errors.TypeArgument, "Concat: argument %d of type %T can not be stored in an Array[%s]", argNum, arg, typeName[T]())
	}
	return append(n, v), nil
}

func appendAll[T any](n []T, h holder, argNum int) ([]T, error) {
	n = slices.Grow(n, h.length())

	var err error
	h.eachAny(func(e any) bool {
		v, ok := convert[T](e)
		if !ok {
			err = errorf(errors.TypeArgument, "Concat: argument %d holds a %T, which can not be stored in an Array[%s]", argNum, e, typeName[T]())
			return false
		}
		n = append(n, v)
		return true
	})
	return n, err
}

// convert returns v as a T. A nil v converts to the zero value of nillable types.
func convert[T any](v any) (T, bool) {
	if t, ok := v.(T); ok {
		return t, true
	}
	var zero T
	if v != nil {
		return zero, false
	}
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return zero, true
	}
	return zero, false
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}

// Set returns a new Array with v at index i. If i is past the end, the new Array is extended and
// the elements between the old end and i are the zero value of T, so the cost is O(i). i must be
// in [0, MaxLen).
func (a *Array[T]) Set(i int, v T) (*Array[T], error) {
	if i < 0 || i >= MaxLen {
		return nil, errorf(errors.TypeRange, "Set: index %d is outside [0, %d)", i, MaxLen)
	}

	n := clone(a.elems)
	n = extend(n, i+1)
	n[i] = v
	return a.derive(n, groupCustom), nil
}

// Rm returns a new Array without the first element equal to v. Equality is the same as for
// Includes(). Ret is the removed element and has no value if v was not found, in which case the
// new Array holds the same elements as the receiver.
func (a *Array[T]) Rm(v T) Result[T, T] {
	return a.RmAt(seq.IndexFunc(a.elems, 0, sameValueZero(v)))
}

// RmAt returns a new Array without the element at index i. Ret is the removed element and has
// no value if i is out of range, in which case the new Array holds the same elements as the receiver.
func (a *Array[T]) RmAt(i int) Result[T, T] {
	n := clone(a.elems)
	v, ok := seq.RemoveAt(&n, i)
	return Result[T, T]{arr: a.derive(n, groupCustom), ret: v, ok: ok}
}

// extend grows s to length n with zero values. s is returned unchanged if it is already long enough.
func extend[T any](s []T, n int) []T {
	if n <= len(s) {
		return s
	}
	return append(s, make([]T, n-len(s))...)
}
