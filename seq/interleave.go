// SPDX-License-Identifier: Apache-2.0

package seq

import "github.com/sam-fredrickson/fold"

// Interleave alternates between the elements of first and of others. It
// ends as soon as any source is exhausted at the start of a round.
//
// Example:
//
//	seq.Interleave(seq.Of(1, 2, 3), seq.Of(10, 20)).ToSlice() // [1 10 2 20]
func Interleave[T any](first Iter[T], others ...Iterable[T]) Iter[T] {
	return Flatten(Zip(first, others...))
}

// InterleaveAll alternates between the elements of first and of others,
// skipping exhausted sources, until all are exhausted.
//
// Example:
//
//	seq.InterleaveAll(seq.Of(1, 2, 3), seq.Of(10)).ToSlice() // [1 10 2 3]
func InterleaveAll[T any](first Iter[T], others ...Iterable[T]) Iter[T] {
	return FlatMap(ZipAll(first, others...), func(group []fold.Maybe[T]) Iterable[T] {
		present := make([]T, 0, len(group))
		for _, m := range group {
			if v, ok := m.Get(); ok {
				present = append(present, v)
			}
		}
		return FromSlice(present)
	})
}

// InterleaveRound alternates between the sources, restarting each source
// whenever it is exhausted. The result is infinite unless a source is empty.
//
// Example:
//
//	seq.InterleaveRound(seq.Of(1, 2, 3), seq.Of(10)).Take(6).ToSlice()
//	// [1 10 2 10 3 10]
func InterleaveRound[T any](first Iter[T], others ...Iterable[T]) Iter[T] {
	repeated := make([]Iterable[T], len(others))
	for i, other := range others {
		repeated[i] = asIter(other).Repeat(0)
	}
	return Interleave(first.Repeat(0), repeated...)
}
