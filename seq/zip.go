// SPDX-License-Identifier: Apache-2.0

package seq

import "github.com/sam-fredrickson/fold"

// Zip groups the i-th elements of first and of others into one slice. It
// ends as soon as any source is exhausted.
//
// Example:
//
//	seq.Zip(seq.Of(1, 2, 3), seq.Of(10, 20)).ToSlice() // [[1 10] [2 20]]
func Zip[T any](first Iter[T], others ...Iterable[T]) Iter[[]T] {
	srcs := append([]Iterable[T]{first}, others...)
	for _, src := range srcs {
		if asIter(src).IsEmpty() {
			return Iter[[]T]{}
		}
	}
	return derive(func() Iterator[[]T] {
		return &zipIterator[T]{srcs: startAll(srcs)}
	})
}

// ZipWith zips sources and combines every group with f.
func ZipWith[T, R any](f func([]T) R, first Iter[T], others ...Iterable[T]) Iter[R] {
	return Map(Zip(first, others...), f)
}

// Zip2 pairs the elements of two sequences of different types. It ends as
// soon as either is exhausted.
func Zip2[A, B any](a Iter[A], b Iterable[B]) Iter[fold.Pair[A, B]] {
	if a.IsEmpty() || asIter(b).IsEmpty() {
		return Iter[fold.Pair[A, B]]{}
	}
	return derive(func() Iterator[fold.Pair[A, B]] {
		return &zip2Iterator[A, B]{a: a.Iterator(), b: b.Iterator()}
	})
}

func startAll[T any](srcs []Iterable[T]) []Iterator[T] {
	iterators := make([]Iterator[T], len(srcs))
	for i, src := range srcs {
		iterators[i] = asIter(src).Iterator()
	}
	return iterators
}

func stopAll[T any](iterators []Iterator[T]) {
	for _, iterator := range iterators {
		if iterator != nil {
			stop(iterator)
		}
	}
}

type zipIterator[T any] struct {
	srcs []Iterator[T]
	done bool
}

func (z *zipIterator[T]) Next() ([]T, bool) {
	if z.done {
		return nil, false
	}
	values := make([]T, len(z.srcs))
	for i, src := range z.srcs {
		v, ok := src.Next()
		if !ok {
			z.done = true
			return nil, false
		}
		values[i] = v
	}
	return values, true
}

func (z *zipIterator[T]) Stop() { stopAll(z.srcs) }

type zip2Iterator[A, B any] struct {
	a    Iterator[A]
	b    Iterator[B]
	done bool
}

func (z *zip2Iterator[A, B]) Next() (fold.Pair[A, B], bool) {
	var p fold.Pair[A, B]
	if z.done {
		return p, false
	}
	var ok bool
	if p.First, ok = z.a.Next(); !ok {
		z.done = true
		return fold.Pair[A, B]{}, false
	}
	if p.Second, ok = z.b.Next(); !ok {
		z.done = true
		return fold.Pair[A, B]{}, false
	}
	return p, true
}

func (z *zip2Iterator[A, B]) Stop() {
	stop(z.a)
	stop(z.b)
}

// ZipAll groups the i-th elements of first and of others. An exhausted
// source contributes an absent value, and the sequence ends when every
// source is exhausted.
//
// Example:
//
//	seq.ZipAll(seq.Of(1, 2), seq.Of(10)).ToSlice() // [[1 10] [2 None]]
func ZipAll[T any](first Iter[T], others ...Iterable[T]) Iter[[]fold.Maybe[T]] {
	srcs := append([]Iterable[T]{first}, others...)
	return derive(func() Iterator[[]fold.Maybe[T]] {
		return &zipAllIterator[T]{srcs: startAll(srcs)}
	})
}

// ZipAll2 pairs the elements of two sequences of different types until both
// are exhausted.
func ZipAll2[A, B any](a Iter[A], b Iterable[B]) Iter[fold.Pair[fold.Maybe[A], fold.Maybe[B]]] {
	return derive(func() Iterator[fold.Pair[fold.Maybe[A], fold.Maybe[B]]] {
		return &zipAll2Iterator[A, B]{a: a.Iterator(), b: asIter(b).Iterator()}
	})
}

type zipAllIterator[T any] struct {
	srcs []Iterator[T]
}

func (z *zipAllIterator[T]) Next() ([]fold.Maybe[T], bool) {
	values := make([]fold.Maybe[T], len(z.srcs))
	alive := false
	for i, src := range z.srcs {
		if src == nil {
			continue
		}
		v, ok := src.Next()
		if !ok {
			stop(src)
			z.srcs[i] = nil
			continue
		}
		values[i] = fold.Some(v)
		alive = true
	}
	if !alive {
		return nil, false
	}
	return values, true
}

func (z *zipAllIterator[T]) Stop() { stopAll(z.srcs) }

type zipAll2Iterator[A, B any] struct {
	a Iterator[A]
	b Iterator[B]
}

func (z *zipAll2Iterator[A, B]) Next() (fold.Pair[fold.Maybe[A], fold.Maybe[B]], bool) {
	var p fold.Pair[fold.Maybe[A], fold.Maybe[B]]
	p.First = pullMaybe(&z.a)
	p.Second = pullMaybe(&z.b)
	return p, p.First.IsSome() || p.Second.IsSome()
}

func (z *zipAll2Iterator[A, B]) Stop() {
	if z.a != nil {
		stop(z.a)
	}
	if z.b != nil {
		stop(z.b)
	}
}

// pullMaybe pulls from *src, and releases it once exhausted.
func pullMaybe[T any](src *Iterator[T]) fold.Maybe[T] {
	if *src == nil {
		return fold.None[T]()
	}
	v, ok := (*src).Next()
	if !ok {
		stop(*src)
		*src = nil
		return fold.None[T]()
	}
	return fold.Some(v)
}
