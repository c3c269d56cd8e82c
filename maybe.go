// SPDX-License-Identifier: Apache-2.0

package fold

import "fmt"

// Maybe holds either a value or nothing. The zero value holds nothing.
//
// Maybe is the "no value" marker used wherever a result can be absent: a
// minimum of an empty input, or a position of an exhausted source in a
// zip-all step.
type Maybe[T any] struct {
	value T
	ok    bool
}

// Some returns a Maybe holding v.
func Some[T any](v T) Maybe[T] {
	return Maybe[T]{value: v, ok: true}
}

// None returns an empty Maybe.
func None[T any]() Maybe[T] {
	return Maybe[T]{}
}

// Get returns the value and whether it is present.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.ok
}

// IsSome reports whether a value is present.
func (m Maybe[T]) IsSome() bool { return m.ok }

// IsNone reports whether no value is present.
func (m Maybe[T]) IsNone() bool { return !m.ok }

// Or returns the value if present, otherwise fallback.
func (m Maybe[T]) Or(fallback T) T {
	if m.ok {
		return m.value
	}
	return fallback
}

// OrElse returns the value if present, otherwise the result of fallback.
// fallback is only called when no value is present.
func (m Maybe[T]) OrElse(fallback func() T) T {
	if m.ok {
		return m.value
	}
	return fallback()
}

// Require returns the value, or [ErrEmptyInput] if there is none.
func (m Maybe[T]) Require() (T, error) {
	if m.ok {
		return m.value, nil
	}
	return m.value, ErrEmptyInput
}

// String implements [fmt.Stringer].
func (m Maybe[T]) String() string {
	if m.ok {
		return fmt.Sprintf("Some(%v)", m.value)
	}
	return "None"
}

// Pair holds two related values.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Triple holds three related values.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}
