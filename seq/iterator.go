// SPDX-License-Identifier: Apache-2.0

package seq

import (
	"iter"
	"unicode/utf8"

	"github.com/sam-fredrickson/fold"
)

// An Iterator produces the elements of one traversal.
//
// Next returns the next element and true, or the zero value and false when
// the traversal is over. Once Next has returned false, it keeps returning
// false.
type Iterator[T any] interface {
	Next() (T, bool)
}

// An Iterable creates independent iterators. Each call to Iterator starts a
// new traversal.
type Iterable[T any] interface {
	Iterator() Iterator[T]
}

// A Stopper is an iterator holding resources that must be released when a
// traversal is abandoned before its end.
//
// Every consumer in this package stops the iterators it creates, and every
// iterator in this package forwards Stop to its sources.
type Stopper interface {
	Stop()
}

// stop stops v if it is a [Stopper].
func stop(v any) {
	if s, ok := v.(Stopper); ok {
		s.Stop()
	}
}

// iterableFunc adapts an iterator factory to an [Iterable].
type iterableFunc[T any] func() Iterator[T]

func (f iterableFunc[T]) Iterator() Iterator[T] { return f() }

type emptyIterator[T any] struct{}

func (emptyIterator[T]) Next() (T, bool) {
	var zero T
	return zero, false
}

type sliceIterable[T any] []T

func (s sliceIterable[T]) Iterator() Iterator[T] {
	return &sliceIterator[T]{values: s}
}

type sliceIterator[T any] struct {
	values []T
	pos    int
}

func (it *sliceIterator[T]) Next() (T, bool) {
	if it.pos >= len(it.values) {
		var zero T
		return zero, false
	}
	v := it.values[it.pos]
	it.pos++
	return v, true
}

type stringIterable string

func (s stringIterable) Iterator() Iterator[rune] {
	return &stringIterator{s: string(s)}
}

type stringIterator struct {
	s   string
	pos int
}

func (it *stringIterator) Next() (rune, bool) {
	if it.pos >= len(it.s) {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(it.s[it.pos:])
	it.pos += size
	return r, true
}

type funcIterator[T any] struct {
	next func() (T, bool)
	done bool
}

func (it *funcIterator[T]) Next() (T, bool) {
	if !it.done {
		if v, ok := it.next(); ok {
			return v, true
		}
		it.done = true
	}
	var zero T
	return zero, false
}

type seqIterable[T any] iter.Seq[T]

func (s seqIterable[T]) Iterator() Iterator[T] {
	return &pullIterator[T]{seq: iter.Seq[T](s)}
}

// pullIterator pulls from an [iter.Seq]. The pull coroutine starts on the
// first call to Next and is released on exhaustion or Stop.
type pullIterator[T any] struct {
	seq     iter.Seq[T]
	next    func() (T, bool)
	release func()
	done    bool
}

func (it *pullIterator[T]) Next() (T, bool) {
	var zero T
	if it.done {
		return zero, false
	}
	if it.next == nil {
		it.next, it.release = iter.Pull(it.seq)
	}
	v, ok := it.next()
	if !ok {
		it.Stop()
		return zero, false
	}
	return v, true
}

func (it *pullIterator[T]) Stop() {
	it.done = true
	if it.release != nil {
		it.release()
		it.release = nil
	}
}

type monitorIterator[T any] struct {
	src      Iterator[T]
	monitors fold.Monitors[T]
	index    int
}

func (it *monitorIterator[T]) Next() (T, bool) {
	v, ok := it.src.Next()
	if ok {
		it.monitors.Fire(v, it.index)
		it.index++
	}
	return v, ok
}

func (it *monitorIterator[T]) Stop() { stop(it.src) }
