package array

import "github.com/gostdlib/iarray/internal/seq"

// Filter returns a new Array holding the elements fn returns true for.
func (a *Array[T]) Filter(fn func(i int, v T) bool) *Array[T] {
	n := make([]T, 0, len(a.elems))
	for i, v := range a.elems {
		if fn(i, v) {
			n = append(n, v)
		}
	}
	return a.derive(n, groupDerive)
}

// Map returns a new Array holding the result of fn for every element. Use MapTo() to map to a
// different element type.
func (a *Array[T]) Map(fn func(i int, v T) T) *Array[T] {
	return MapTo(a, fn)
}

// Slice returns a new Array holding the elements in [start, end). Negative values count back
// from the end and both are clamped to the length. Pass End as end for the rest of the Array.
func (a *Array[T]) Slice(start, end int) *Array[T] {
	s, e := seq.Range(start, end, len(a.elems))
	return a.derive(clone(a.elems[s:e]), groupDerive)
}

// MapTo returns a new Array holding the result of fn for every element of a. The new Array
// keeps a policy pinned on a.
func MapTo[T, U any](a *Array[T], fn func(i int, v T) U) *Array[U] {
	n := make([]U, len(a.elems))
	for i, v := range a.elems {
		n[i] = fn(i, v)
	}
	return newArray(n, a.lin, groupDerive)
}

// Fold calls fn for every element of a from the start, passing initial as acc to the first call and
// the result of the previous call after that. It returns the last result, or initial if a is empty.
func Fold[T, A any](a *Array[T], initial A, fn func(acc A, i int, v T) A) A {
	acc := initial
	for i, v := range a.elems {
		acc = fn(acc, i, v)
	}
	return acc
}

// FoldRight is Fold() from the end to the start.
func FoldRight[T, A any](a *Array[T], initial A, fn func(acc A, i int, v T) A) A {
	acc := initial
	for i := len(a.elems) - 1; i >= 0; i-- {
		acc = fn(acc, i, a.elems[i])
	}
	return acc
}
