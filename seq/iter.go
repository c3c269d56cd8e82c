// SPDX-License-Identifier: Apache-2.0

package seq

import (
	"errors"
	"iter"

	"github.com/sam-fredrickson/fold"
	"golang.org/x/exp/constraints"
)

var (
	// ErrNotIterable is returned when wrapping a value that cannot be
	// iterated.
	ErrNotIterable = errors.New("value is not iterable")
	// ErrAlreadyWrapped is returned when wrapping a sequence that is already
	// wrapped.
	ErrAlreadyWrapped = errors.New("sequence is already wrapped")
)

// Iter is a lazy, re-iterable sequence.
//
// Every call to Iterator starts an independent traversal of the underlying
// source, and operators build new sequences without evaluating anything.
// The zero Iter is the empty sequence.
type Iter[T any] struct {
	src      Iterable[T]
	monitors fold.Monitors[T]
}

// Wrap turns an [Iterable] into a sequence.
//
// It fails with [ErrNotIterable] if src is nil, and with [ErrAlreadyWrapped]
// if src is already an [Iter].
func Wrap[T any](src Iterable[T]) (Iter[T], error) {
	switch src.(type) {
	case nil:
		return Iter[T]{}, ErrNotIterable
	case Iter[T], *Iter[T]:
		return Iter[T]{}, ErrAlreadyWrapped
	}
	return Iter[T]{src: src}, nil
}

// FromSource turns a synchronous [Source] into a sequence. Asynchronous
// sources fail with [ErrNotIterable], and a source holding an [Iter] fails
// with [ErrAlreadyWrapped], as with [Wrap].
func FromSource[T any](src Source[T]) (Iter[T], error) {
	if src.sync == nil {
		return Iter[T]{}, ErrNotIterable
	}
	return Wrap(src.sync)
}

// derive builds a sequence from an iterator factory.
func derive[T any](f func() Iterator[T]) Iter[T] {
	return Iter[T]{src: iterableFunc[T](f)}
}

// asIter views any [Iterable] as a sequence.
func asIter[T any](src Iterable[T]) Iter[T] {
	switch v := src.(type) {
	case nil:
		return Iter[T]{}
	case Iter[T]:
		return v
	case *Iter[T]:
		return *v
	}
	return Iter[T]{src: src}
}

// Empty returns the empty sequence.
func Empty[T any]() Iter[T] {
	return Iter[T]{}
}

// Of returns a sequence of the given values.
func Of[T any](values ...T) Iter[T] {
	return FromSlice(values)
}

// FromSlice returns a sequence of the elements of s. The slice is not copied.
func FromSlice[T any](s []T) Iter[T] {
	if len(s) == 0 {
		return Iter[T]{}
	}
	return Iter[T]{src: sliceIterable[T](s)}
}

// FromSeq returns a sequence pulling from s. Every traversal ranges over s
// again.
func FromSeq[T any](s iter.Seq[T]) Iter[T] {
	if s == nil {
		return Iter[T]{}
	}
	return Iter[T]{src: seqIterable[T](s)}
}

// FromString returns the runes of s.
func FromString(s string) Iter[rune] {
	if s == "" {
		return Iter[rune]{}
	}
	return Iter[rune]{src: stringIterable(s)}
}

// FromFunc returns a sequence whose traversals are produced by factory. Each
// traversal calls factory once and then its result until it reports false.
//
// Example:
//
//	countdown := seq.FromFunc(func() func() (int, bool) {
//	    n := 3
//	    return func() (int, bool) {
//	        n--
//	        return n + 1, n >= 0
//	    }
//	})
//	countdown.ToSlice() // [3 2 1]
func FromFunc[T any](factory func() func() (T, bool)) Iter[T] {
	return derive(func() Iterator[T] {
		return &funcIterator[T]{next: factory()}
	})
}

// Range returns the numbers from start towards end, excluding end, spaced by
// step. A negative step counts down. A zero step, or a step pointing away
// from end, yields nothing. The sequence ends instead of wrapping around
// when the next number would overflow T.
func Range[T constraints.Integer](start, end, step T) Iter[T] {
	if step == 0 || (step > 0 && start >= end) || (step < 0 && start <= end) {
		return Iter[T]{}
	}
	return FromFunc(func() func() (T, bool) {
		current, done := start, false
		return func() (T, bool) {
			if done {
				var zero T
				return zero, false
			}
			v, next := current, current+step
			if step > 0 {
				done = next <= v || next >= end
			} else {
				done = next >= v || next <= end
			}
			current = next
			return v, true
		}
	})
}

// Iterate returns the infinite sequence seed, f(seed), f(f(seed)), and so on.
func Iterate[T any](seed T, f func(T) T) Iter[T] {
	return FromFunc(func() func() (T, bool) {
		current, started := seed, false
		return func() (T, bool) {
			if started {
				current = f(current)
			}
			started = true
			return current, true
		}
	})
}

// Unfold builds a sequence from a state. Each step calls f with the current
// state, which returns an element, the next state, and whether the sequence
// continues.
//
// Example:
//
//	fib := seq.Unfold([2]int{0, 1}, func(s [2]int) (int, [2]int, bool) {
//	    return s[0], [2]int{s[1], s[0] + s[1]}, true
//	})
//	fib.Take(6).ToSlice() // [0 1 1 2 3 5]
func Unfold[S, T any](seed S, f func(S) (T, S, bool)) Iter[T] {
	return FromFunc(func() func() (T, bool) {
		state := seed
		return func() (T, bool) {
			v, next, ok := f(state)
			if ok {
				state = next
			}
			return v, ok
		}
	})
}

// Always returns the infinite sequence repeating v.
func Always[T any](v T) Iter[T] {
	return FromFunc(func() func() (T, bool) {
		return func() (T, bool) { return v, true }
	})
}

// Iterator starts a traversal. It implements [Iterable].
func (it Iter[T]) Iterator() Iterator[T] {
	if it.src == nil {
		return emptyIterator[T]{}
	}
	inner := it.src.Iterator()
	if len(it.monitors) == 0 {
		return inner
	}
	return &monitorIterator[T]{src: inner, monitors: it.monitors}
}

// IsEmpty reports whether the sequence is known to be empty without
// traversing it. A sequence whose traversal turns out empty may still
// report false.
func (it Iter[T]) IsEmpty() bool {
	return it.src == nil
}

// All returns the sequence as an [iter.Seq]. Breaking out of a range loop
// stops the underlying traversal.
func (it Iter[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		iterator := it.Iterator()
		defer stop(iterator)
		for {
			v, ok := iterator.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Enumerate returns the sequence with indices as an [iter.Seq2].
func (it Iter[T]) Enumerate() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for v := range it.All() {
			if !yield(i, v) {
				return
			}
			i++
		}
	}
}

// Monitor runs effect on every element as it is pulled from the sequence.
//
// Monitors compose: they fire in the order they were attached, and never
// replace each other.
//
// Example:
//
//	words := seq.Of("This", "is", "a", "test").
//	    Monitor("words", fold.SlogMonitor[string](nil, slog.LevelDebug))
func (it Iter[T]) Monitor(tag string, effect fold.MonitorFunc[T]) Iter[T] {
	return Iter[T]{src: it.src, monitors: it.monitors.With(tag, effect)}
}
