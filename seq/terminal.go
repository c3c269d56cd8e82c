// SPDX-License-Identifier: Apache-2.0

package seq

import (
	"cmp"

	"github.com/sam-fredrickson/fold"
	"github.com/sam-fredrickson/fold/collectors"
)

// Collect runs c over the sequence. The traversal stops as soon as c
// escapes.
//
// Example:
//
//	words := seq.Of("This", "is", "a", "test")
//	seq.Collect(words, collectors.Count[string]()) // 4
func Collect[T, R any](it Iter[T], c fold.Collector[T, R]) R {
	return fold.Collect(it.All(), c)
}

// Scan emits the intermediate results of c, one after every element. It ends
// after the result of the element that made c escape.
//
// Example:
//
//	seq.Scan(seq.Of(1, 2, 3), collectors.Sum[int]()).ToSlice() // [1 3 6]
func Scan[T, R any](it Iter[T], c fold.Collector[T, R]) Iter[R] {
	if it.IsEmpty() {
		return Iter[R]{}
	}
	return derive(func() Iterator[R] {
		return &scanIterator[T, R]{src: it.Iterator(), pass: c.Start()}
	})
}

type scanIterator[T, R any] struct {
	src   Iterator[T]
	pass  fold.Pass[T, R]
	index int
	done  bool
}

func (s *scanIterator[T, R]) Next() (R, bool) {
	var zero R
	if s.done {
		return zero, false
	}
	v, ok := s.src.Next()
	if !ok {
		s.done = true
		return zero, false
	}
	s.pass.Next(v, s.index)
	s.index++
	if s.pass.Escape(s.index) {
		s.done = true
		stop(s.src)
	}
	return s.pass.Result(s.index), true
}

func (s *scanIterator[T, R]) Stop() { stop(s.src) }

// Fold reduces the sequence from the left, starting with init.
func Fold[T, S any](it Iter[T], init S, f func(acc S, elem T, index int) S) S {
	return Collect[T, S](it, fold.Create(func() S { return init }, f))
}

// Contains reports whether the sequence holds v.
func Contains[T comparable](it Iter[T], v T) bool {
	return Collect(it, collectors.Contains(v))
}

// Min returns the smallest element, or [fold.ErrEmptyInput].
func Min[T cmp.Ordered](it Iter[T]) (T, error) {
	return Collect(it, collectors.Min[T]()).Require()
}

// Max returns the largest element, or [fold.ErrEmptyInput].
func Max[T cmp.Ordered](it Iter[T]) (T, error) {
	return Collect(it, collectors.Max[T]()).Require()
}

// Join concatenates the strings of the sequence, separated by sep.
func Join(it Iter[string], sep string) string {
	return Collect(it, collectors.Join(sep))
}

// ToSet collects the distinct elements.
func ToSet[T comparable](it Iter[T]) map[T]struct{} {
	return Collect(it, collectors.ToSet[T]())
}

// ToSlice collects the elements.
func (it Iter[T]) ToSlice() []T {
	return Collect(it, collectors.ToSlice[T]())
}

// Count counts the elements.
func (it Iter[T]) Count() int {
	return Collect(it, collectors.Count[T]())
}

// ForEach calls f on every element.
func (it Iter[T]) ForEach(f func(elem T, index int)) {
	for i, v := range it.Enumerate() {
		f(v, i)
	}
}

// First returns the first element, or [fold.ErrEmptyInput].
func (it Iter[T]) First() (T, error) {
	return Collect(it, collectors.First[T]()).Require()
}

// FirstOr returns the first element, or fallback.
func (it Iter[T]) FirstOr(fallback T) T {
	return Collect(it, collectors.First[T]()).Or(fallback)
}

// FirstOrElse returns the first element, or the result of fallback.
func (it Iter[T]) FirstOrElse(fallback func() T) T {
	return Collect(it, collectors.First[T]()).OrElse(fallback)
}

// Last returns the last element, or [fold.ErrEmptyInput].
func (it Iter[T]) Last() (T, error) {
	return Collect(it, collectors.Last[T]()).Require()
}

// LastOr returns the last element, or fallback.
func (it Iter[T]) LastOr(fallback T) T {
	return Collect(it, collectors.Last[T]()).Or(fallback)
}

// ElemAt returns the element at index i, or [fold.ErrEmptyInput] if there is
// none.
func (it Iter[T]) ElemAt(i int) (T, error) {
	return Collect(it, collectors.ElemAt[T](i)).Require()
}

// ElemAtOr returns the element at index i, or fallback.
func (it Iter[T]) ElemAtOr(i int, fallback T) T {
	return Collect(it, collectors.ElemAt[T](i)).Or(fallback)
}

// Reduce combines the elements pairwise from the left. It fails with
// [fold.ErrEmptyInput] on an empty sequence.
func (it Iter[T]) Reduce(f func(acc, elem T) T) (T, error) {
	return Collect(it, collectors.Reduce(f)).Require()
}

// ReduceOr is like [Iter.Reduce], but returns fallback on an empty sequence.
func (it Iter[T]) ReduceOr(f func(acc, elem T) T, fallback T) T {
	return Collect(it, collectors.Reduce(f)).Or(fallback)
}

// Some reports whether any element matches pred.
func (it Iter[T]) Some(pred fold.Pred[T]) bool {
	return Collect(it, collectors.Some(pred))
}

// Every reports whether all elements match pred.
func (it Iter[T]) Every(pred fold.Pred[T]) bool {
	return Collect(it, collectors.Every(pred))
}
