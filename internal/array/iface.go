package array

import "iter"

// Querier is the set of methods that read an Array and return plain values.
type Querier[T any] interface {
	Len() int
	Get(i int) T
	At(i int) (T, bool)
	Every(fn func(i int, v T) bool) bool
	Some(fn func(i int, v T) bool) bool
	Find(fn func(i int, v T) bool) (T, bool)
	FindIndex(fn func(i int, v T) bool) int
	ForEach(fn func(i int, v T))
	Includes(v T) bool
	IndexOf(v T) int
	IndexFrom(v T, from int) int
	LastIndexOf(v T) int
	LastIndexFrom(v T, from int) int
	Join(sep string) string
	String() string
	Keys() iter.Seq[int]
	Values() iter.Seq[T]
	All() iter.Seq2[int, T]
	Reduce(fn func(acc T, i int, v T) T) (T, error)
	ReduceRight(fn func(acc T, i int, v T) T) (T, error)
	ToArray() []T
}

// Deriver is the set of methods that build a new Array from a read of the receiver.
type Deriver[T any] interface {
	Filter(fn func(i int, v T) bool) *Array[T]
	Map(fn func(i int, v T) T) *Array[T]
	Slice(start, end int) *Array[T]
}

// Mutator is the set of methods that would change a slice in place. They return a new Array
// holding the change instead.
type Mutator[T any] interface {
	CopyWithin(target, start, end int) *Array[T]
	Fill(v T, start, end int) *Array[T]
	Push(items ...T) Result[T, int]
	Pop() Result[T, T]
	Reverse() *Array[T]
	Shift() Result[T, T]
	Unshift(items ...T) Result[T, int]
	Sort(cmp func(x, y T) int) *Array[T]
	Splice(start, deleteCount int, items ...T) Result[T, *Array[T]]
}

// Editor is the set of methods an Array has that a slice does not.
type Editor[T any] interface {
	Concat(args ...any) (*Array[T], error)
	Set(i int, v T) (*Array[T], error)
	Rm(v T) Result[T, T]
	RmAt(i int) Result[T, T]
}

// Sequence is everything an Array can do.
type Sequence[T any] interface {
	Querier[T]
	Deriver[T]
	Mutator[T]
	Editor[T]
	Freezable

	IsWrapper() bool
}

var _ Sequence[any] = (*Array[any])(nil)
