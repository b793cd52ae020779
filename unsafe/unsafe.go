// Package unsafe provides functions that bypass the immutability of iarray.Array. These functions
// are unsafe and should be used with caution: a change made through them is seen by every holder
// of the Array, whatever its freeze policy.
package unsafe

import (
	"github.com/gostdlib/iarray/internal/array"
)

// Slice returns the slice backing a. Changing its elements changes a.
func Slice[T any](a *array.Array[T]) []T {
	return array.UnsafeSlice(a)
}
