// SPDX-License-Identifier: Apache-2.0

package seq

import (
	"context"
	"slices"
)

// An AsyncIterator produces the elements of one asynchronous traversal.
//
// Next blocks until the next element is available, the traversal is over,
// or pulling fails. Once Next has reported the end or an error, the
// traversal must not be continued.
type AsyncIterator[T any] interface {
	Next(ctx context.Context) (T, bool, error)
}

// An AsyncIterable creates independent asynchronous iterators.
type AsyncIterable[T any] interface {
	AsyncIterator() AsyncIterator[T]
}

// An AsyncMonitorFunc is a side effect run for every element pulled from an
// asynchronous sequence.
type AsyncMonitorFunc[T any] = func(ctx context.Context, tag string, elem T, index int)

type asyncMonitor[T any] struct {
	tag    string
	effect AsyncMonitorFunc[T]
}

// AsyncIter is a lazy, re-iterable asynchronous sequence. Operators build
// new sequences without pulling anything. The zero AsyncIter is the empty
// sequence.
//
// Elements are pulled one at a time. Only [ZipAsync] and its variants pull
// several sources concurrently.
type AsyncIter[T any] struct {
	src      AsyncIterable[T]
	monitors []asyncMonitor[T]
}

// WrapAsync turns a [Source] into an asynchronous sequence. Synchronous
// sources are lifted.
//
// It fails with [ErrNotIterable] for the zero Source, and with
// [ErrAlreadyWrapped] if the source is already an [AsyncIter].
func WrapAsync[T any](src Source[T]) (AsyncIter[T], error) {
	switch {
	case src.async != nil:
		switch src.async.(type) {
		case AsyncIter[T], *AsyncIter[T]:
			return AsyncIter[T]{}, ErrAlreadyWrapped
		}
		return AsyncIter[T]{src: src.async}, nil
	case src.sync != nil:
		return FromIter(asIter(src.sync)), nil
	}
	return AsyncIter[T]{}, ErrNotIterable
}

// deriveAsync builds an asynchronous sequence from an iterator factory.
func deriveAsync[T any](f func() AsyncIterator[T]) AsyncIter[T] {
	return AsyncIter[T]{src: asyncIterableFunc[T](f)}
}

type asyncIterableFunc[T any] func() AsyncIterator[T]

func (f asyncIterableFunc[T]) AsyncIterator() AsyncIterator[T] { return f() }

// FromIter lifts a synchronous sequence. Every pull checks ctx first.
func FromIter[T any](it Iter[T]) AsyncIter[T] {
	if it.IsEmpty() {
		return AsyncIter[T]{}
	}
	return deriveAsync(func() AsyncIterator[T] {
		return &liftIterator[T]{src: it.Iterator()}
	})
}

// AsyncOf returns an asynchronous sequence of the given values.
func AsyncOf[T any](values ...T) AsyncIter[T] {
	return FromIter(FromSlice(values))
}

// FromChan returns an asynchronous sequence receiving from ch until it is
// closed. All traversals share the channel, so every element is seen by one
// traversal only.
func FromChan[T any](ch <-chan T) AsyncIter[T] {
	return deriveAsync(func() AsyncIterator[T] {
		return chanIterator[T]{ch: ch}
	})
}

// AsyncFunc is one asynchronous traversal produced by [FromAsyncFunc].
type AsyncFunc[T any] = func(ctx context.Context) (T, bool, error)

// FromAsyncFunc returns an asynchronous sequence whose traversals are
// produced by factory.
//
// Example:
//
//	pages := seq.FromAsyncFunc(func() seq.AsyncFunc[Page] {
//	    token := ""
//	    done := false
//	    return func(ctx context.Context) (Page, bool, error) {
//	        if done {
//	            return Page{}, false, nil
//	        }
//	        page, err := client.List(ctx, token)
//	        if err != nil {
//	            return Page{}, false, err
//	        }
//	        token, done = page.Next, page.Next == ""
//	        return page, true, nil
//	    }
//	})
func FromAsyncFunc[T any](factory func() AsyncFunc[T]) AsyncIter[T] {
	return deriveAsync(func() AsyncIterator[T] {
		return &asyncFuncIterator[T]{next: factory()}
	})
}

// AsyncIterator starts a traversal. It implements [AsyncIterable].
func (it AsyncIter[T]) AsyncIterator() AsyncIterator[T] {
	if it.src == nil {
		return emptyAsyncIterator[T]{}
	}
	inner := it.src.AsyncIterator()
	if len(it.monitors) == 0 {
		return inner
	}
	return &asyncMonitorIterator[T]{src: inner, monitors: it.monitors}
}

// IsEmpty reports whether the sequence is known to be empty.
func (it AsyncIter[T]) IsEmpty() bool {
	return it.src == nil
}

// Monitor runs effect on every element as it is pulled. Monitors fire in the
// order they were attached.
func (it AsyncIter[T]) Monitor(tag string, effect AsyncMonitorFunc[T]) AsyncIter[T] {
	monitors := append(slices.Clip(it.monitors), asyncMonitor[T]{tag: tag, effect: effect})
	return AsyncIter[T]{src: it.src, monitors: monitors}
}

type emptyAsyncIterator[T any] struct{}

func (emptyAsyncIterator[T]) Next(context.Context) (T, bool, error) {
	var zero T
	return zero, false, nil
}

type liftIterator[T any] struct {
	src Iterator[T]
}

func (l *liftIterator[T]) Next(ctx context.Context) (T, bool, error) {
	if err := ctx.Err(); err != nil {
		var zero T
		return zero, false, err
	}
	v, ok := l.src.Next()
	return v, ok, nil
}

func (l *liftIterator[T]) Stop() { stop(l.src) }

type chanIterator[T any] struct {
	ch <-chan T
}

func (c chanIterator[T]) Next(ctx context.Context) (T, bool, error) {
	select {
	case v, ok := <-c.ch:
		return v, ok, nil
	case <-ctx.Done():
		var zero T
		return zero, false, ctx.Err()
	}
}

type asyncFuncIterator[T any] struct {
	next AsyncFunc[T]
	done bool
}

func (f *asyncFuncIterator[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T
	if f.done {
		return zero, false, nil
	}
	v, ok, err := f.next(ctx)
	if err != nil || !ok {
		f.done = true
		return zero, false, err
	}
	return v, true, nil
}

type asyncMonitorIterator[T any] struct {
	src      AsyncIterator[T]
	monitors []asyncMonitor[T]
	index    int
}

func (m *asyncMonitorIterator[T]) Next(ctx context.Context) (T, bool, error) {
	v, ok, err := m.src.Next(ctx)
	if err != nil || !ok {
		return v, ok, err
	}
	for _, mon := range m.monitors {
		mon.effect(ctx, mon.tag, v, m.index)
	}
	m.index++
	return v, true, nil
}

func (m *asyncMonitorIterator[T]) Stop() { stop(m.src) }
