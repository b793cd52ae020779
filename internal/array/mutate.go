package array

import "github.com/gostdlib/iarray/internal/seq"

// Result is returned by operations that produce a new Array and a second value, such as the
// element removed by Pop().
type Result[T, R any] struct {
	arr *Array[T]
	ret R
	ok  bool
}

// Array returns the new Array.
func (r Result[T, R]) Array() *Array[T] {
	return r.arr
}

// Ret returns the second value of the operation. ok is false if the operation had no value to
// return, for example Pop() on an empty Array.
func (r Result[T, R]) Ret() (ret R, ok bool) {
	return r.ret, r.ok
}

// CopyWithin returns a new Array with the elements in [start, end) copied to target. All three
// are relative indexes and the length does not change.
func (a *Array[T]) CopyWithin(target, start, end int) *Array[T] {
	return a.mutate(func(s *[]T) { seq.CopyWithin(*s, target, start, end) })
}

// Fill returns a new Array with every element in [start, end) set to v.
func (a *Array[T]) Fill(v T, start, end int) *Array[T] {
	return a.mutate(func(s *[]T) { seq.Fill(*s, v, start, end) })
}

// Push returns a new Array with items appended. Ret is the new length.
func (a *Array[T]) Push(items ...T) Result[T, int] {
	var n int
	arr := a.mutate(func(s *[]T) { n = seq.Push(s, items...) })
	return Result[T, int]{arr: arr, ret: n, ok: true}
}

// Pop returns a new Array without the last element. Ret is the removed element and has no value
// if the Array was empty.
func (a *Array[T]) Pop() Result[T, T] {
	var (
		v  T
		ok bool
	)
	arr := a.mutate(func(s *[]T) { v, ok = seq.Pop(s) })
	return Result[T, T]{arr: arr, ret: v, ok: ok}
}

// Reverse returns a new Array with the elements in reverse order.
func (a *Array[T]) Reverse() *Array[T] {
	return a.mutate(func(s *[]T) { seq.Reverse(*s) })
}

// Shift returns a new Array without the first element. Ret is the removed element and has no
// value if the Array was empty.
func (a *Array[T]) Shift() Result[T, T] {
	var (
		v  T
		ok bool
	)
	arr := a.mutate(func(s *[]T) { v, ok = seq.Shift(s) })
	return Result[T, T]{arr: arr, ret: v, ok: ok}
}

// Unshift returns a new Array with items inserted at the start. Ret is the new length.
func (a *Array[T]) Unshift(items ...T) Result[T, int] {
	var n int
	arr := a.mutate(func(s *[]T) { n = seq.Unshift(s, items...) })
	return Result[T, int]{arr: arr, ret: n, ok: true}
}

// Sort returns a new Array with the elements sorted by cmp, which returns a negative number
// when x < y, a positive number when x > y and 0 when they are equal. The sort is stable.
//
// With a nil cmp, elements are sorted by their string form as rendered by Join(), so 10 sorts
// before 9. nil elements sort last.
func (a *Array[T]) Sort(cmp func(x, y T) int) *Array[T] {
	if cmp == nil {
		return a.mutate(func(s *[]T) { seq.SortByKey(*s, sortKey[T]) })
	}
	return a.mutate(func(s *[]T) { seq.SortFunc(*s, cmp) })
}

// Splice returns a new Array with deleteCount elements removed from start and items inserted in
// their place. start is relative and deleteCount is clamped to the elements after start, pass End
// to remove them all. Ret is an Array holding the removed elements.
func (a *Array[T]) Splice(start, deleteCount int, items ...T) Result[T, *Array[T]] {
	var removed []T
	arr := a.mutate(func(s *[]T) { removed = seq.Splice(s, start, deleteCount, items...) })
	return Result[T, *Array[T]]{arr: arr, ret: a.derive(removed, groupMutate), ok: true}
}
