// SPDX-License-Identifier: Apache-2.0

package seq

import (
	"context"

	"github.com/sam-fredrickson/fold"
	"github.com/sam-fredrickson/fold/collectors"
)

// CollectAsync runs c over the sequence. The traversal stops as soon as c
// escapes.
//
// If pulling an element fails, CollectAsync returns no result and an
// [*fold.IndexedError] holding the index of the element that failed.
func CollectAsync[T, R any](ctx context.Context, it AsyncIter[T], c fold.Collector[T, R]) (R, error) {
	iterator := it.AsyncIterator()
	defer stop(iterator)

	pass := c.Start()
	index := 0
	for {
		v, ok, err := iterator.Next(ctx)
		if err != nil {
			var zero R
			return zero, &fold.IndexedError{Index: index, Err: err}
		}
		if !ok {
			break
		}
		pass.Next(v, index)
		index++
		if pass.Escape(index) {
			break
		}
	}
	return pass.Result(index), nil
}

// ScanAsync emits the intermediate results of c, one after every element.
// It ends after the result of the element that made c escape.
func ScanAsync[T, R any](it AsyncIter[T], c fold.Collector[T, R]) AsyncIter[R] {
	if it.IsEmpty() {
		return AsyncIter[R]{}
	}
	return deriveAsync(func() AsyncIterator[R] {
		return &asyncScanIterator[T, R]{src: it.AsyncIterator(), pass: c.Start()}
	})
}

type asyncScanIterator[T, R any] struct {
	src   AsyncIterator[T]
	pass  fold.Pass[T, R]
	index int
	done  bool
}

func (s *asyncScanIterator[T, R]) Next(ctx context.Context) (R, bool, error) {
	var zero R
	if s.done {
		return zero, false, nil
	}
	v, ok, err := s.src.Next(ctx)
	if err != nil || !ok {
		s.done = true
		return zero, false, err
	}
	s.pass.Next(v, s.index)
	s.index++
	if s.pass.Escape(s.index) {
		s.done = true
		stop(s.src)
	}
	return s.pass.Result(s.index), true, nil
}

func (s *asyncScanIterator[T, R]) Stop() { stop(s.src) }

// ToSlice collects the elements.
func (it AsyncIter[T]) ToSlice(ctx context.Context) ([]T, error) {
	return CollectAsync(ctx, it, collectors.ToSlice[T]())
}

// Count counts the elements.
func (it AsyncIter[T]) Count(ctx context.Context) (int, error) {
	return CollectAsync(ctx, it, collectors.Count[T]())
}

// First returns the first element. It fails with [fold.ErrEmptyInput] on an
// empty sequence.
func (it AsyncIter[T]) First(ctx context.Context) (T, error) {
	m, err := CollectAsync(ctx, it, collectors.First[T]())
	if err != nil {
		var zero T
		return zero, err
	}
	return m.Require()
}

// ForEach calls f on every element. An error from f stops the traversal and
// is returned as an [*fold.IndexedError].
func (it AsyncIter[T]) ForEach(ctx context.Context, f func(ctx context.Context, elem T, index int) error) error {
	iterator := it.AsyncIterator()
	defer stop(iterator)

	for index := 0; ; index++ {
		v, ok, err := iterator.Next(ctx)
		if err != nil {
			return &fold.IndexedError{Index: index, Err: err}
		}
		if !ok {
			return nil
		}
		if err := f(ctx, v, index); err != nil {
			return &fold.IndexedError{Index: index, Err: err}
		}
	}
}
