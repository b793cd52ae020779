// Package seq implements the base behaviour of an ordered, integer indexed sequence on Go slices.
// Argument handling follows the classic array methods: negative indexes count from the end,
// indexes are clamped to the length and delete counts are clamped to what is available.
//
// Functions that mutate take a *[]T and may change the length of the slice. None of them
// allocate a new backing array unless the slice has to grow.
package seq

import (
	"cmp"
	"math"
	"slices"
)

// End can be passed as an end index or a delete count to mean "through the end of the sequence".
const End = math.MaxInt

// Relative converts a relative index into an absolute index clamped to [0, n].
// Negative values count back from n.
func Relative(i, n int) int {
	if i < 0 {
		i += n
		if i < 0 {
			return 0
		}
		return i
	}
	if i > n {
		return n
	}
	return i
}

// Range returns the absolute [start, end) for relative start and end values. end is never less than start.
func Range(start, end, n int) (int, int) {
	s, e := Relative(start, n), Relative(end, n)
	if e < s {
		e = s
	}
	return s, e
}

// CopyWithin copies the elements in [start, end) to target, all relative. Overlapping ranges
// are handled as if the source was copied to a temporary first. The length never changes.
func CopyWithin[T any](s []T, target, start, end int) {
	n := len(s)
	to := Relative(target, n)
	from, final := Range(start, end, n)

	count := min(final-from, n-to)
	if count <= 0 {
		return
	}
	copy(s[to:to+count], s[from:from+count])
}

// Fill sets every element in the relative range [start, end) to v.
func Fill[T any](s []T, v T, start, end int) {
	from, final := Range(start, end, len(s))
	for i := from; i < final; i++ {
		s[i] = v
	}
}

// Push appends items and returns the new length.
func Push[T any](s *[]T, items ...T) int {
	*s = append(*s, items...)
	return len(*s)
}

// Pop removes the last element. ok is false if the sequence was empty.
func Pop[T any](s *[]T) (v T, ok bool) {
	n := len(*s)
	if n == 0 {
		return v, false
	}
	v = (*s)[n-1]
	*s = slices.Delete(*s, n-1, n)
	return v, true
}

// Shift removes the first element. ok is false if the sequence was empty.
func Shift[T any](s *[]T) (v T, ok bool) {
	if len(*s) == 0 {
		return v, false
	}
	v = (*s)[0]
	*s = slices.Delete(*s, 0, 1)
	return v, true
}

// Unshift inserts items at the front and returns the new length.
func Unshift[T any](s *[]T, items ...T) int {
	if len(items) == 0 {
		return len(*s)
	}
	*s = slices.Insert(*s, 0, items...)
	return len(*s)
}

// Reverse reverses the sequence in place.
func Reverse[T any](s []T) {
	slices.Reverse(s)
}

// Splice removes deleteCount elements starting at the relative index start and inserts items
// in their place. deleteCount is clamped to [0, remaining]. The removed elements are returned
// in a new, never nil, slice.
func Splice[T any](s *[]T, start, deleteCount int, items ...T) []T {
	n := len(*s)
	from := Relative(start, n)
	dc := max(min(deleteCount, n-from), 0)

	removed := make([]T, dc)
	copy(removed, (*s)[from:from+dc])
	*s = slices.Replace(*s, from, from+dc, items...)
	return removed
}

// RemoveAt removes the element at the absolute index i. ok is false if i is out of range.
func RemoveAt[T any](s *[]T, i int) (v T, ok bool) {
	if i < 0 || i >= len(*s) {
		return v, false
	}
	v = (*s)[i]
	*s = slices.Delete(*s, i, i+1)
	return v, true
}

// SortFunc sorts the sequence with cmp. The sort is stable.
func SortFunc[T any](s []T, cmp func(a, b T) int) {
	slices.SortStableFunc(s, cmp)
}

// SortByKey sorts the sequence by the string key of each element, which is the default order of an
// array sort. Elements for which key reports none == true have no value and are moved to the end,
// keeping their relative order. The sort is stable.
func SortByKey[T any](s []T, key func(v T) (k string, none bool)) {
	type keyed struct {
		v    T
		k    string
		none bool
	}

	ks := make([]keyed, len(s))
	for i, v := range s {
		k, none := key(v)
		ks[i] = keyed{v: v, k: k, none: none}
	}

	slices.SortStableFunc(
		ks,
		func(a, b keyed) int {
			switch {
			case a.none && b.none:
				return 0
			case a.none:
				return 1
			case b.none:
				return -1
			}
			return cmp.Compare(a.k, b.k)
		},
	)

	for i, k := range ks {
		s[i] = k.v
	}
}

// IndexFunc returns the first index at or after the relative index from where eq reports true, or -1.
func IndexFunc[T any](s []T, from int, eq func(v T) bool) int {
	for i := Relative(from, len(s)); i < len(s); i++ {
		if eq(s[i]) {
			return i
		}
	}
	return -1
}

// LastIndexFunc returns the last index at or before from where eq reports true, or -1. A negative
// from counts back from the end. A from at or past the end searches the whole sequence.
func LastIndexFunc[T any](s []T, from int, eq func(v T) bool) int {
	n := len(s)
	if n == 0 {
		return -1
	}
	i := from
	if i < 0 {
		i += n
	} else if i > n-1 {
		i = n - 1
	}
	for ; i >= 0; i-- {
		if eq(s[i]) {
			return i
		}
	}
	return -1
}
