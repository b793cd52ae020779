// Package array holds the implementation of iarray.Array. The public package aliases the types
// defined here so that the unsafe package can reach the backing slice without it being part of
// the public type.
package array

import (
	"sync/atomic"

	"github.com/gostdlib/iarray/internal/seq"
)

const (
	// MaxLen is the largest length an Array can be extended to by Set(), Put() or SetLen().
	// Extension is dense: every element up to the new length is allocated.
	MaxLen = 1 << 24
	// End can be passed as an end index or a delete count to mean the end of the Array.
	End = seq.End
)

// Freezable is implemented by values that deep enforcement can freeze. *Array[T] implements it.
type Freezable interface {
	// Frozen reports if the value has been frozen.
	Frozen() bool
	// Freeze freezes the value. It must be safe to call more than once.
	Freeze()
}

// holder is implemented by every *Array[T] regardless of T. It lets code that does not know T
// read the elements.
type holder interface {
	eachAny(yield func(v any) bool)
	length() int
}

// Array is an ordered sequence that is never changed by its own methods. Methods that would change
// a slice return a new Array that holds the change and leave the receiver as it was.
type Array[T any] struct {
	elems  []T
	frozen atomic.Bool
	lin    lineage
}

type options struct {
	lin lineage
}

// Option is an optional argument to New() and From().
type Option func(options) options

// WithPolicy pins the freeze policy of the new Array and of every Array derived from it,
// ignoring the process wide policy. It panics if p is not None, Shallow or Deep.
func WithPolicy(p Policy) Option {
	if !p.valid() {
		panic("iarray: WithPolicy called with invalid policy " + p.String())
	}
	return func(o options) options {
		o.lin = lineage{pinned: true, policy: p}
		return o
	}
}

// New creates an Array holding a shallow copy of s. A nil or empty s gives an empty Array.
func New[T any](s []T, opts ...Option) *Array[T] {
	var o options
	for _, opt := range opts {
		o = opt(o)
	}
	return newArray(clone(s), o.lin, groupConstruct)
}

// Of creates an Array holding vals.
func Of[T any](vals ...T) *Array[T] {
	return New(vals)
}

// From creates an Array holding the elements of a. A nil a gives an empty Array. The new Array
// does not inherit a policy pinned on a, pass WithPolicy() for that.
func From[T any](a *Array[T], opts ...Option) *Array[T] {
	if a == nil {
		return New[T](nil, opts...)
	}
	return New(a.elems, opts...)
}

// IsWrapper reports if v is an Array of any element type.
func IsWrapper(v any) bool {
	w, ok := v.(interface{ IsWrapper() bool })
	return ok && w.IsWrapper()
}

// newArray wraps elems, which must not be shared with any other Array, and enforces the policy.
func newArray[T any](elems []T, lin lineage, g group) *Array[T] {
	a := &Array[T]{elems: elems, lin: lin}
	recordInstance(g)
	enforce(a, lin.current())
	return a
}

// derive wraps elems in a new Array of the receiver's lineage.
func (a *Array[T]) derive(elems []T, g group) *Array[T] {
	return newArray(elems, a.lin, g)
}

// mutate runs fn on a copy of the elements and returns the copy as a new Array.
func (a *Array[T]) mutate(fn func(s *[]T)) *Array[T] {
	s := clone(a.elems)
	fn(&s)
	return a.derive(s, groupMutate)
}

// IsWrapper always returns true. It identifies an Array among values of unknown type.
func (a *Array[T]) IsWrapper() bool {
	return true
}

// Frozen reports if the Array was frozen by its freeze policy or Freeze().
func (a *Array[T]) Frozen() bool {
	return a.frozen.Load()
}

// Freeze freezes the Array, after which Put() and SetLen() return an error. This only affects
// the Array, not the values it holds.
func (a *Array[T]) Freeze() {
	a.frozen.Store(true)
}

func (a *Array[T]) eachAny(yield func(v any) bool) {
	for _, v := range a.elems {
		if !yield(v) {
			return
		}
	}
}

func (a *Array[T]) length() int {
	return len(a.elems)
}

// UnsafeSlice returns the slice backing a. Changes to it change a, whatever the policy.
func UnsafeSlice[T any](a *Array[T]) []T {
	return a.elems
}

// clone returns a copy of s that is never nil.
func clone[T any](s []T) []T {
	n := make([]T, len(s))
	copy(n, s)
	return n
}
