// SPDX-License-Identifier: Apache-2.0

package seq

// Source is either a synchronous or an asynchronous iteration source. The
// zero Source is neither, and is rejected by every constructor taking one.
//
// Use [Sync] or [Async] to build one. The kind is fixed at construction, so
// constructors decide how to pull from it exactly once.
type Source[T any] struct {
	sync  Iterable[T]
	async AsyncIterable[T]
}

// Sync tags a synchronous iterable.
func Sync[T any](it Iterable[T]) Source[T] {
	return Source[T]{sync: it}
}

// Async tags an asynchronous iterable.
func Async[T any](it AsyncIterable[T]) Source[T] {
	return Source[T]{async: it}
}

// IsAsync reports whether the source is asynchronous.
func (s Source[T]) IsAsync() bool {
	return s.async != nil
}

// IsZero reports whether the source is unset.
func (s Source[T]) IsZero() bool {
	return s.sync == nil && s.async == nil
}
