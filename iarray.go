/*
Package iarray provides Array, an ordered sequence whose methods never change it. Every method
that would change a slice in place returns a new Array holding the change, and the receiver and
every Array made before it stay as they were.

	a := iarray.Of(1, 4, 9)
	r := a.Pop()
	b := r.Array()  // [1 4]
	v, _ := r.Ret() // 9
	// a is still [1 4 9]

Methods fall into four groups:

  - Queries such as Len(), Get(), IndexOf() and Join() read the Array and return plain values.
  - Filter(), Map() and Slice() read the Array and return a new Array with the result.
  - CopyWithin(), Fill(), Push(), Pop(), Reverse(), Shift(), Unshift(), Sort() and Splice() copy
    the Array, change the copy and return it. When the change has a second result, such as the
    element Pop() removed, it is returned in a Result.
  - Concat(), Set(), Rm() and RmAt() are not methods of a slice. They also return a new Array.

Index arguments follow the rules of the classic array methods: negative values count back from
the end and values past the end are clamped to it. Pass End for an end index or delete count to
mean "through the end".

# Freeze policy

New arrays are frozen according to a freeze Policy:

  - None does nothing. Put() and SetLen() change the Array in place.
  - Shallow freezes the Array, Put() and SetLen() return an error that matches ErrFrozen.
  - Deep freezes the Array and every Freezable value reachable from it, such as nested Arrays,
    that is not already frozen.

The process wide policy is None unless the IArrayFreezePolicy environment variable is set to
NONE, SHALLOW or DEEP. SetPolicy() changes it for arrays created afterwards and should be called
once in main(). An Array created with WithPolicy() ignores the process policy, and so does every
Array derived from it.

	a := iarray.New([]int{5, 6, 7}, iarray.WithPolicy(iarray.Shallow))
	err := a.Put(0, 100)  // errors.Is(err, iarray.ErrFrozen) == true, a.Get(0) == 5
	b, _ := a.Set(0, 200) // b.Get(0) == 200, a.Get(0) == 5

Freezing an Array never freezes the values it holds unless the policy is Deep and they implement
Freezable. Storing pointers or maps in an Array shares them with every Array derived from it.
*/
package iarray

import (
	"github.com/gostdlib/iarray/internal/array"
)

// Array is an ordered sequence that is never changed by its own methods. Create one with New(),
// Of() or From().
type Array[T any] = array.Array[T]

// Result is a new Array and the second result of the operation that created it.
type Result[T, R any] = array.Result[T, R]

// Option is an optional argument to New() and From().
type Option = array.Option

// Policy is the freeze policy applied to an Array when it is created.
type Policy = array.Policy

// Freezable is implemented by values that can be frozen by the Deep policy.
type Freezable = array.Freezable

// Querier is the set of Array methods that return plain values.
type Querier[T any] = array.Querier[T]

// Deriver is the set of Array methods that return a new Array built from a read of the receiver.
type Deriver[T any] = array.Deriver[T]

// Mutator is the set of Array methods that return a changed copy of the receiver.
type Mutator[T any] = array.Mutator[T]

// Editor is the set of Array methods that have no slice equivalent.
type Editor[T any] = array.Editor[T]

// Sequence is every method of an Array.
type Sequence[T any] = array.Sequence[T]

const (
	// None does not freeze arrays.
	None = array.None
	// Shallow freezes arrays but not what they hold.
	Shallow = array.Shallow
	// Deep freezes arrays and every Freezable reachable from them.
	Deep = array.Deep
)

const (
	// End can be passed as an end index or a delete count to mean the end of the Array.
	End = array.End
	// MaxLen is the largest length an Array can be extended to.
	MaxLen = array.MaxLen
)

var (
	// ErrFrozen matches the error returned by Put() or SetLen() on a frozen Array.
	ErrFrozen = array.ErrFrozen
	// ErrArgument matches errors caused by an argument of the wrong type or value.
	ErrArgument = array.ErrArgument
	// ErrRange matches errors caused by an index or length outside of [0, MaxLen].
	ErrRange = array.ErrRange
)

// New creates an Array holding a shallow copy of s. A nil or empty s gives an empty Array.
func New[T any](s []T, opts ...Option) *Array[T] {
	return array.New(s, opts...)
}

// Of creates an Array holding vals.
func Of[T any](vals ...T) *Array[T] {
	return array.Of(vals...)
}

// From creates an Array holding the elements of a. It does not keep a policy pinned on a.
func From[T any](a *Array[T], opts ...Option) *Array[T] {
	return array.From(a, opts...)
}

// WithPolicy pins the freeze policy of the new Array and of every Array derived from it.
func WithPolicy(p Policy) Option {
	return array.WithPolicy(p)
}

// IsWrapper reports if v is an *Array of any element type.
func IsWrapper(v any) bool {
	return array.IsWrapper(v)
}

// MapTo returns a new Array holding the result of fn for every element of a.
func MapTo[T, U any](a *Array[T], fn func(i int, v T) U) *Array[U] {
	return array.MapTo(a, fn)
}

// Fold reduces a to a single value, starting from initial.
func Fold[T, A any](a *Array[T], initial A, fn func(acc A, i int, v T) A) A {
	return array.Fold(a, initial, fn)
}

// FoldRight is Fold() from the end to the start.
func FoldRight[T, A any](a *Array[T], initial A, fn func(acc A, i int, v T) A) A {
	return array.FoldRight(a, initial, fn)
}

// SetPolicy sets the process wide freeze policy for arrays created after the call.
func SetPolicy(p Policy) error {
	return array.SetPolicy(p)
}

// CurrentPolicy returns the process wide freeze policy.
func CurrentPolicy() Policy {
	return array.CurrentPolicy()
}

// ParsePolicy converts NONE, SHALLOW or DEEP, in any case, to a Policy.
func ParsePolicy(s string) (Policy, error) {
	return array.ParsePolicy(s)
}
