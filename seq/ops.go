// SPDX-License-Identifier: Apache-2.0

package seq

import (
	"github.com/sam-fredrickson/fold"
	"github.com/sam-fredrickson/fold/internal/ring"
)

// Map applies f to every element.
func Map[T, U any](it Iter[T], f func(T) U) Iter[U] {
	if it.IsEmpty() {
		return Iter[U]{}
	}
	return derive(func() Iterator[U] {
		return &mapIterator[T, U]{src: it.Iterator(), f: f}
	})
}

type mapIterator[T, U any] struct {
	src Iterator[T]
	f   func(T) U
}

func (m *mapIterator[T, U]) Next() (U, bool) {
	v, ok := m.src.Next()
	if !ok {
		var zero U
		return zero, false
	}
	return m.f(v), true
}

func (m *mapIterator[T, U]) Stop() { stop(m.src) }

// FlatMap replaces every element by the elements of f applied to it.
func FlatMap[T, U any](it Iter[T], f func(T) Iterable[U]) Iter[U] {
	if it.IsEmpty() {
		return Iter[U]{}
	}
	return derive(func() Iterator[U] {
		return &flatMapIterator[T, U]{src: it.Iterator(), f: f}
	})
}

type flatMapIterator[T, U any] struct {
	src  Iterator[T]
	f    func(T) Iterable[U]
	cur  Iterator[U]
	done bool
}

func (m *flatMapIterator[T, U]) Next() (U, bool) {
	var zero U
	for !m.done {
		if m.cur != nil {
			if v, ok := m.cur.Next(); ok {
				return v, true
			}
			stop(m.cur)
			m.cur = nil
		}
		v, ok := m.src.Next()
		if !ok {
			m.done = true
			break
		}
		if inner := m.f(v); inner != nil {
			m.cur = inner.Iterator()
		}
	}
	return zero, false
}

func (m *flatMapIterator[T, U]) Stop() {
	if m.cur != nil {
		stop(m.cur)
		m.cur = nil
	}
	stop(m.src)
}

// Flatten concatenates the slices of a sequence.
func Flatten[T any](it Iter[[]T]) Iter[T] {
	return FlatMap(it, func(s []T) Iterable[T] { return FromSlice(s) })
}

// Indexed pairs every element with its index.
func Indexed[T any](it Iter[T]) Iter[fold.Pair[int, T]] {
	return Zip2(Iterate(0, func(i int) int { return i + 1 }), Iterable[T](it))
}

// Take keeps the first n elements. The source is never pulled past its n-th
// element.
func (it Iter[T]) Take(n int) Iter[T] {
	if n <= 0 || it.IsEmpty() {
		return Iter[T]{}
	}
	return derive(func() Iterator[T] {
		return &takeIterator[T]{src: it.Iterator(), n: n}
	})
}

type takeIterator[T any] struct {
	src   Iterator[T]
	n     int
	count int
}

func (t *takeIterator[T]) Next() (T, bool) {
	if t.count >= t.n {
		var zero T
		return zero, false
	}
	v, ok := t.src.Next()
	if !ok {
		t.count = t.n
		return v, false
	}
	t.count++
	return v, true
}

func (t *takeIterator[T]) Stop() { stop(t.src) }

// Drop skips the first n elements.
func (it Iter[T]) Drop(n int) Iter[T] {
	if n <= 0 {
		return it
	}
	return it.FilterNot(func(_ T, index int) bool { return index < n })
}

// TakeWhile keeps elements until the first one not matching pred.
func (it Iter[T]) TakeWhile(pred fold.Pred[T]) Iter[T] {
	if it.IsEmpty() {
		return it
	}
	return derive(func() Iterator[T] {
		return &takeWhileIterator[T]{src: it.Iterator(), pred: pred}
	})
}

type takeWhileIterator[T any] struct {
	src   Iterator[T]
	pred  fold.Pred[T]
	index int
	done  bool
}

func (t *takeWhileIterator[T]) Next() (T, bool) {
	var zero T
	if t.done {
		return zero, false
	}
	v, ok := t.src.Next()
	if !ok || !t.pred(v, t.index) {
		t.done = true
		return zero, false
	}
	t.index++
	return v, true
}

func (t *takeWhileIterator[T]) Stop() { stop(t.src) }

// DropWhile skips elements until the first one not matching pred.
func (it Iter[T]) DropWhile(pred fold.Pred[T]) Iter[T] {
	if it.IsEmpty() {
		return it
	}
	return derive(func() Iterator[T] {
		dropping := true
		return newPatchIterator(it.Iterator(), func(v T, index int) bool {
			dropping = dropping && pred(v, index)
			return dropping
		}, 1, nil, 0)
	})
}

// TakeLast keeps the last n elements. The whole source is consumed before the
// first element is produced.
func (it Iter[T]) TakeLast(n int) Iter[T] {
	if n <= 0 || it.IsEmpty() {
		return Iter[T]{}
	}
	return derive(func() Iterator[T] {
		return &takeLastIterator[T]{src: it.Iterator(), buf: ring.New[T](n)}
	})
}

type takeLastIterator[T any] struct {
	src    Iterator[T]
	buf    *ring.Buffer[T]
	filled bool
}

func (t *takeLastIterator[T]) Next() (T, bool) {
	if !t.filled {
		t.filled = true
		for {
			v, ok := t.src.Next()
			if !ok {
				break
			}
			t.buf.Push(v)
		}
	}
	return t.buf.Pop()
}

func (t *takeLastIterator[T]) Stop() { stop(t.src) }

// DropLast skips the last n elements. An element is produced once n more
// elements follow it.
func (it Iter[T]) DropLast(n int) Iter[T] {
	if n <= 0 || it.IsEmpty() {
		return it
	}
	return derive(func() Iterator[T] {
		return &dropLastIterator[T]{src: it.Iterator(), buf: ring.New[T](n)}
	})
}

type dropLastIterator[T any] struct {
	src Iterator[T]
	buf *ring.Buffer[T]
}

func (d *dropLastIterator[T]) Next() (T, bool) {
	for {
		v, ok := d.src.Next()
		if !ok {
			var zero T
			return zero, false
		}
		if evicted, ok := d.buf.Push(v); ok {
			return evicted, true
		}
	}
}

func (d *dropLastIterator[T]) Stop() { stop(d.src) }

// Sample keeps every n-th element, starting with the first. It panics if n is
// not positive.
func (it Iter[T]) Sample(n int) Iter[T] {
	if n <= 0 {
		panic("seq: Sample requires a positive step")
	}
	return it.Filter(func(_ T, index int) bool { return index%n == 0 })
}

// Concat emits the elements of the sequence followed by those of others.
func (it Iter[T]) Concat(others ...Iterable[T]) Iter[T] {
	srcs := make([]Iterable[T], 0, len(others)+1)
	for _, src := range append([]Iterable[T]{it}, others...) {
		if src == nil {
			continue
		}
		if s, ok := src.(Iter[T]); ok && s.IsEmpty() {
			continue
		}
		srcs = append(srcs, src)
	}
	switch len(srcs) {
	case 0:
		return Iter[T]{}
	case 1:
		return asIter(srcs[0])
	}
	return derive(func() Iterator[T] {
		return &concatIterator[T]{srcs: srcs}
	})
}

type concatIterator[T any] struct {
	srcs []Iterable[T]
	cur  Iterator[T]
}

func (c *concatIterator[T]) Next() (T, bool) {
	for {
		if c.cur == nil {
			if len(c.srcs) == 0 {
				var zero T
				return zero, false
			}
			c.cur = c.srcs[0].Iterator()
			c.srcs = c.srcs[1:]
		}
		if v, ok := c.cur.Next(); ok {
			return v, true
		}
		stop(c.cur)
		c.cur = nil
	}
}

func (c *concatIterator[T]) Stop() {
	if c.cur != nil {
		stop(c.cur)
		c.cur = nil
	}
	c.srcs = nil
}

// Prepend emits values before the elements of the sequence.
func (it Iter[T]) Prepend(values ...T) Iter[T] {
	return FromSlice(values).Concat(it)
}

// Append emits values after the elements of the sequence.
func (it Iter[T]) Append(values ...T) Iter[T] {
	return it.Concat(FromSlice(values))
}

// Distinct keeps the first occurrence of every element.
func Distinct[T comparable](it Iter[T]) Iter[T] {
	return DistinctBy(it, func(v T) T { return v })
}

// DistinctBy keeps the first element of every key.
func DistinctBy[T any, K comparable](it Iter[T], key func(T) K) Iter[T] {
	if it.IsEmpty() {
		return it
	}
	return derive(func() Iterator[T] {
		seen := make(map[K]struct{})
		return newPatchIterator(it.Iterator(), func(v T, _ int) bool {
			k := key(v)
			if _, dup := seen[k]; dup {
				return true
			}
			seen[k] = struct{}{}
			return false
		}, 1, nil, 0)
	})
}

// FilterChanged drops every element equal to the one before it.
func FilterChanged[T comparable](it Iter[T]) Iter[T] {
	if it.IsEmpty() {
		return it
	}
	return derive(func() Iterator[T] {
		var prev T
		return newPatchIterator(it.Iterator(), func(v T, index int) bool {
			same := index > 0 && v == prev
			prev = v
			return same
		}, 1, nil, 0)
	})
}
