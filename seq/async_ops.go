// SPDX-License-Identifier: Apache-2.0

package seq

import (
	"context"
	"time"

	"github.com/sam-fredrickson/fold"
)

// PatchWhere is the asynchronous form of [Iter.PatchWhere]. Inserted
// elements come from synchronous iterables.
func (it AsyncIter[T]) PatchWhere(
	pred fold.Pred[T],
	removeCount int,
	insert func(elem T, index int) Iterable[T],
	maxApplications int,
) AsyncIter[T] {
	if it.IsEmpty() {
		return it
	}
	return deriveAsync(func() AsyncIterator[T] {
		return newAsyncPatchIterator(it.AsyncIterator(), pred, removeCount, insert, maxApplications)
	})
}

func newAsyncPatchIterator[T any](
	src AsyncIterator[T],
	pred fold.Pred[T],
	removeCount int,
	insert func(T, int) Iterable[T],
	maxApplications int,
) *asyncPatchIterator[T] {
	return &asyncPatchIterator[T]{
		src:     src,
		patcher: newPatcher(pred, removeCount, insert, maxApplications),
	}
}

type asyncPatchIterator[T any] struct {
	patcher[T]
	src  AsyncIterator[T]
	done bool
}

func (p *asyncPatchIterator[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T
	for {
		if v, ok := p.drain(); ok {
			return v, true, nil
		}
		if p.done {
			return zero, false, nil
		}
		v, ok, err := p.src.Next(ctx)
		if err != nil {
			p.done = true
			p.release()
			return zero, false, err
		}
		if !ok {
			p.done = true
			continue
		}
		if p.accept(v) {
			return v, true, nil
		}
	}
}

func (p *asyncPatchIterator[T]) Stop() {
	p.release()
	stop(p.src)
}

// FilterNot removes the elements matching pred.
func (it AsyncIter[T]) FilterNot(pred fold.Pred[T]) AsyncIter[T] {
	return it.PatchWhere(pred, 1, nil, 0)
}

// Filter keeps the elements matching pred.
func (it AsyncIter[T]) Filter(pred fold.Pred[T]) AsyncIter[T] {
	return it.FilterNot(fold.Not(pred))
}

// Drop skips the first n elements.
func (it AsyncIter[T]) Drop(n int) AsyncIter[T] {
	if n <= 0 {
		return it
	}
	return it.FilterNot(func(_ T, index int) bool { return index < n })
}

// DropWhile skips elements until the first one not matching pred.
func (it AsyncIter[T]) DropWhile(pred fold.Pred[T]) AsyncIter[T] {
	if it.IsEmpty() {
		return it
	}
	return deriveAsync(func() AsyncIterator[T] {
		dropping := true
		return newAsyncPatchIterator(it.AsyncIterator(), func(v T, index int) bool {
			dropping = dropping && pred(v, index)
			return dropping
		}, 1, nil, 0)
	})
}

// Take keeps the first n elements. The source is never pulled past its n-th
// element.
func (it AsyncIter[T]) Take(n int) AsyncIter[T] {
	if n <= 0 || it.IsEmpty() {
		return AsyncIter[T]{}
	}
	return deriveAsync(func() AsyncIterator[T] {
		return &asyncTakeIterator[T]{src: it.AsyncIterator(), n: n}
	})
}

type asyncTakeIterator[T any] struct {
	src   AsyncIterator[T]
	n     int
	count int
}

func (t *asyncTakeIterator[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T
	if t.count >= t.n {
		return zero, false, nil
	}
	v, ok, err := t.src.Next(ctx)
	if err != nil || !ok {
		t.count = t.n
		return zero, false, err
	}
	t.count++
	return v, true, nil
}

func (t *asyncTakeIterator[T]) Stop() { stop(t.src) }

// TakeWhile keeps elements until the first one not matching pred.
func (it AsyncIter[T]) TakeWhile(pred fold.Pred[T]) AsyncIter[T] {
	if it.IsEmpty() {
		return it
	}
	return deriveAsync(func() AsyncIterator[T] {
		return &asyncTakeWhileIterator[T]{src: it.AsyncIterator(), pred: pred}
	})
}

type asyncTakeWhileIterator[T any] struct {
	src   AsyncIterator[T]
	pred  fold.Pred[T]
	index int
	done  bool
}

func (t *asyncTakeWhileIterator[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T
	if t.done {
		return zero, false, nil
	}
	v, ok, err := t.src.Next(ctx)
	if err != nil || !ok {
		t.done = true
		return zero, false, err
	}
	if !t.pred(v, t.index) {
		t.done = true
		return zero, false, nil
	}
	t.index++
	return v, true, nil
}

func (t *asyncTakeWhileIterator[T]) Stop() { stop(t.src) }

// Concat emits the elements of the sequence followed by those of others.
func (it AsyncIter[T]) Concat(others ...AsyncIterable[T]) AsyncIter[T] {
	srcs := make([]AsyncIterable[T], 0, len(others)+1)
	for _, src := range append([]AsyncIterable[T]{it}, others...) {
		if src == nil {
			continue
		}
		if s, ok := src.(AsyncIter[T]); ok && s.IsEmpty() {
			continue
		}
		srcs = append(srcs, src)
	}
	if len(srcs) == 0 {
		return AsyncIter[T]{}
	}
	return deriveAsync(func() AsyncIterator[T] {
		return &asyncConcatIterator[T]{srcs: srcs}
	})
}

type asyncConcatIterator[T any] struct {
	srcs []AsyncIterable[T]
	cur  AsyncIterator[T]
}

func (c *asyncConcatIterator[T]) Next(ctx context.Context) (T, bool, error) {
	for {
		if c.cur == nil {
			if len(c.srcs) == 0 {
				var zero T
				return zero, false, nil
			}
			c.cur = c.srcs[0].AsyncIterator()
			c.srcs = c.srcs[1:]
		}
		v, ok, err := c.cur.Next(ctx)
		if err != nil {
			c.srcs = nil
			return v, false, err
		}
		if ok {
			return v, true, nil
		}
		stop(c.cur)
		c.cur = nil
	}
}

func (c *asyncConcatIterator[T]) Stop() {
	if c.cur != nil {
		stop(c.cur)
		c.cur = nil
	}
	c.srcs = nil
}

// Delay pauses for d before yielding each element. The pause ends early with
// the context's error if ctx is done.
func (it AsyncIter[T]) Delay(d time.Duration) AsyncIter[T] {
	if it.IsEmpty() || d <= 0 {
		return it
	}
	return deriveAsync(func() AsyncIterator[T] {
		return &delayIterator[T]{src: it.AsyncIterator(), d: d}
	})
}

type delayIterator[T any] struct {
	src AsyncIterator[T]
	d   time.Duration
}

func (p *delayIterator[T]) Next(ctx context.Context) (T, bool, error) {
	v, ok, err := p.src.Next(ctx)
	if err != nil || !ok {
		return v, ok, err
	}
	if err := Sleep(ctx, p.d); err != nil {
		var zero T
		return zero, false, err
	}
	return v, true, nil
}

func (p *delayIterator[T]) Stop() { stop(p.src) }

// MapAsync applies f to every element. An error from f ends the traversal.
func MapAsync[T, U any](it AsyncIter[T], f func(ctx context.Context, elem T) (U, error)) AsyncIter[U] {
	if it.IsEmpty() {
		return AsyncIter[U]{}
	}
	return deriveAsync(func() AsyncIterator[U] {
		return &asyncMapIterator[T, U]{src: it.AsyncIterator(), f: f}
	})
}

type asyncMapIterator[T, U any] struct {
	src AsyncIterator[T]
	f   func(context.Context, T) (U, error)
}

func (m *asyncMapIterator[T, U]) Next(ctx context.Context) (U, bool, error) {
	var zero U
	v, ok, err := m.src.Next(ctx)
	if err != nil || !ok {
		return zero, false, err
	}
	u, err := m.f(ctx, v)
	if err != nil {
		return zero, false, err
	}
	return u, true, nil
}

func (m *asyncMapIterator[T, U]) Stop() { stop(m.src) }
