// SPDX-License-Identifier: Apache-2.0

// Package ring provides a fixed-capacity FIFO buffer.
package ring

import "iter"

// Buffer is a FIFO queue holding at most Cap elements. Pushing onto a full
// buffer evicts the oldest element.
//
// The zero value has capacity 0 and evicts every pushed element immediately.
type Buffer[T any] struct {
	items []T
	head  int
	size  int
}

// New creates a buffer with the given capacity. A negative capacity is
// treated as 0.
func New[T any](capacity int) *Buffer[T] {
	return &Buffer[T]{items: make([]T, max(capacity, 0))}
}

// Len returns the number of buffered elements.
func (b *Buffer[T]) Len() int { return b.size }

// Cap returns the capacity.
func (b *Buffer[T]) Cap() int { return len(b.items) }

// Full reports whether the next Push evicts an element.
func (b *Buffer[T]) Full() bool { return b.size == len(b.items) }

// Push appends v. If the buffer was full, the oldest element is removed and
// returned with ok set to true.
func (b *Buffer[T]) Push(v T) (evicted T, ok bool) {
	if len(b.items) == 0 {
		return v, true
	}
	if b.Full() {
		evicted = b.items[b.head]
		b.items[b.head] = v
		b.head = (b.head + 1) % len(b.items)
		return evicted, true
	}
	b.items[(b.head+b.size)%len(b.items)] = v
	b.size++
	return evicted, false
}

// Pop removes and returns the oldest element.
func (b *Buffer[T]) Pop() (T, bool) {
	var zero T
	if b.size == 0 {
		return zero, false
	}
	v := b.items[b.head]
	b.items[b.head] = zero
	b.head = (b.head + 1) % len(b.items)
	b.size--
	return v, true
}

// All yields the buffered elements from oldest to newest without removing
// them.
func (b *Buffer[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range b.size {
			if !yield(b.items[(b.head+i)%len(b.items)]) {
				return
			}
		}
	}
}
