package array

import (
	"iter"
	"reflect"
	"slices"
	"unsafe"

	"github.com/gostdlib/iarray/errors"
	"github.com/gostdlib/iarray/internal/seq"
	"github.com/gostdlib/iarray/internal/sets"
)

// Len returns the number of elements.
func (a *Array[T]) Len() int {
	return len(a.elems)
}

// Get returns the element at index i. It panics if i is out of range, like indexing a slice.
func (a *Array[T]) Get(i int) T {
	return a.elems[i]
}

// At returns the element at index i. A negative i counts back from the end, so -1 is the last
// element. ok is false if i is out of range.
func (a *Array[T]) At(i int) (v T, ok bool) {
	if i < 0 {
		i += len(a.elems)
	}
	if i < 0 || i >= len(a.elems) {
		return v, false
	}
	return a.elems[i], true
}

// Every reports if fn returns true for every element. It stops at the first false.
// An empty Array returns true.
func (a *Array[T]) Every(fn func(i int, v T) bool) bool {
	for i, v := range a.elems {
		if !fn(i, v) {
			return false
		}
	}
	return true
}

// Some reports if fn returns true for any element. It stops at the first true.
func (a *Array[T]) Some(fn func(i int, v T) bool) bool {
	for i, v := range a.elems {
		if fn(i, v) {
			return true
		}
	}
	return false
}

// Find returns the first element fn returns true for. ok is false if there is none.
func (a *Array[T]) Find(fn func(i int, v T) bool) (v T, ok bool) {
	if i := a.FindIndex(fn); i != -1 {
		return a.elems[i], true
	}
	return v, false
}

// FindIndex returns the index of the first element fn returns true for, or -1.
func (a *Array[T]) FindIndex(fn func(i int, v T) bool) int {
	for i, v := range a.elems {
		if fn(i, v) {
			return i
		}
	}
	return -1
}

// ForEach calls fn for every element in order.
func (a *Array[T]) ForEach(fn func(i int, v T)) {
	for i, v := range a.elems {
		fn(i, v)
	}
}

// Includes reports if the Array holds v. NaN is found by Includes, unlike IndexOf.
// Values that are not comparable, such as slices and maps, are only found if they are the same
// slice or map.
func (a *Array[T]) Includes(v T) bool {
	return seq.IndexFunc(a.elems, 0, sameValueZero(v)) != -1
}

// IndexOf returns the first index of v, or -1.
func (a *Array[T]) IndexOf(v T) int {
	return a.IndexFrom(v, 0)
}

// IndexFrom returns the first index of v at or after from, or -1. A negative from counts back
// from the end.
func (a *Array[T]) IndexFrom(v T, from int) int {
	return seq.IndexFunc(a.elems, from, strictEqual(v))
}

// LastIndexOf returns the last index of v, or -1.
func (a *Array[T]) LastIndexOf(v T) int {
	return a.LastIndexFrom(v, End)
}

// LastIndexFrom returns the last index of v at or before from, or -1. A negative from counts back
// from the end.
func (a *Array[T]) LastIndexFrom(v T, from int) int {
	return seq.LastIndexFunc(a.elems, from, strictEqual(v))
}

// Join returns the elements as strings separated by sep. nil elements render as "" and nested
// Arrays and slices render as their elements separated by ",".
func (a *Array[T]) Join(sep string) string {
	var seen sets.Set[identity]
	seen.Add(identity{p: unsafe.Pointer(a), t: reflect.TypeOf(a)})
	return join(a, sep, &seen)
}

// String implements fmt.Stringer. It is Join(",").
func (a *Array[T]) String() string {
	return a.Join(",")
}

// Keys returns an iterator over the indexes.
func (a *Array[T]) Keys() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := range a.elems {
			if !yield(i) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements.
func (a *Array[T]) Values() iter.Seq[T] {
	return slices.Values(a.elems)
}

// All returns an iterator over the indexes and elements.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return slices.All(a.elems)
}

// Reduce calls fn for every element from the start, passing the result of the previous call as acc.
// The first element is the initial acc and fn is called from the second element. An empty Array
// returns an error. Use Fold() to start from a value or reduce to a different type.
func (a *Array[T]) Reduce(fn func(acc T, i int, v T) T) (T, error) {
	if len(a.elems) == 0 {
		var zero T
		return zero, errorf(errors.TypeArgument, "Reduce of empty array with no initial value")
	}
	acc := a.elems[0]
	for i := 1; i < len(a.elems); i++ {
		acc = fn(acc, i, a.elems[i])
	}
	return acc, nil
}

// ReduceRight is Reduce() from the end to the start.
func (a *Array[T]) ReduceRight(fn func(acc T, i int, v T) T) (T, error) {
	if len(a.elems) == 0 {
		var zero T
		return zero, errorf(errors.TypeArgument, "ReduceRight of empty array with no initial value")
	}
	last := len(a.elems) - 1
	acc := a.elems[last]
	for i := last - 1; i >= 0; i-- {
		acc = fn(acc, i, a.elems[i])
	}
	return acc, nil
}

// ToArray returns a copy of the elements as a new slice. The slice is never nil and changing it
// does not change the Array.
func (a *Array[T]) ToArray() []T {
	return clone(a.elems)
}

func strictEqual[T any](x T) func(T) bool {
	return func(v T) bool { return seq.StrictEqual(any(v), any(x)) }
}

func sameValueZero[T any](x T) func(T) bool {
	return func(v T) bool { return seq.SameValueZero(any(v), any(x)) }
}
