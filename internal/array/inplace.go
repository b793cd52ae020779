package array

import "github.com/gostdlib/iarray/errors"

// Put sets the element at index i of the receiver, extending it with zero values if i is past
// the end. It returns an error if the Array is frozen and leaves it unchanged. The rejected write
// is logged at Debug level.
//
// Put exists to change an Array built under the None policy that nobody else has seen yet. Other
// holders of the Array see the change, so prefer Set().
func (a *Array[T]) Put(i int, v T) error {
	if a.Frozen() {
		return rejected("Put", len(a.elems), map[string]any{"index": i, "value": v})
	}
	if i < 0 || i >= MaxLen {
		return errorf(errors.TypeRange, "Put: index %d is outside [0, %d)", i, MaxLen)
	}
	a.elems = extend(a.elems, i+1)
	a.elems[i] = v
	return nil
}

// SetLen changes the length of the receiver, truncating it or extending it with zero values. n
// must be in [0, MaxLen].
// It returns an error if the Array is frozen and leaves it unchanged.
func (a *Array[T]) SetLen(n int) error {
	if a.Frozen() {
		return rejected("SetLen", len(a.elems), map[string]any{"len": n})
	}
	if n < 0 || n > MaxLen {
		return errorf(errors.TypeRange, "SetLen: length %d is outside [0, %d]", n, MaxLen)
	}
	if n <= len(a.elems) {
		clear(a.elems[n:])
		a.elems = a.elems[:n]
		return nil
	}
	a.elems = extend(a.elems, n)
	return nil
}
