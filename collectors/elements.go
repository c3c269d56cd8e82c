// SPDX-License-Identifier: Apache-2.0

package collectors

import (
	"slices"
	"strings"

	"github.com/sam-fredrickson/fold"
)

// ToSlice collects the elements in order. The result has no spare
// capacity, so appending to an intermediate result never touches the
// slice still being collected.
func ToSlice[T any]() fold.Collector[T, []T] {
	return fold.CreateState(
		func() []T { return nil },
		func(s []T, v T, _ int) []T { return append(s, v) },
		func(s []T, _ int) []T {
			if s == nil {
				return []T{}
			}
			return slices.Clip(s)
		},
	)
}

// Join concatenates the elements, separated by sep.
func Join(sep string) fold.Collector[string, string] {
	return fold.CreateState(
		func() []string { return nil },
		func(s []string, v string, _ int) []string { return append(s, v) },
		func(s []string, _ int) string { return strings.Join(s, sep) },
	)
}

// First returns the first element, and escapes as soon as it is seen.
func First[T any]() fold.Collector[T, fold.Maybe[T]] {
	return ElemAt[T](0)
}

// Last returns the last element.
func Last[T any]() fold.Collector[T, fold.Maybe[T]] {
	return fold.Create(
		fold.None[T],
		func(_ fold.Maybe[T], v T, _ int) fold.Maybe[T] { return fold.Some(v) },
	)
}

// ElemAt returns the element at index i, and escapes as soon as it is seen.
func ElemAt[T any](i int) fold.Collector[T, fold.Maybe[T]] {
	return fold.Create(
		fold.None[T],
		func(acc fold.Maybe[T], v T, index int) fold.Maybe[T] {
			if index == i {
				return fold.Some(v)
			}
			return acc
		},
	).WithEscape(func(acc fold.Maybe[T], index int) bool {
		return acc.IsSome() || index > i
	})
}

// Or replaces an absent result of c by fallback.
//
// Example:
//
//	firstOrZero := collectors.Or(collectors.First[int](), 0)
func Or[E, T any](c fold.Collector[E, fold.Maybe[T]], fallback T) fold.Collector[E, T] {
	return fold.MapResult(c, func(m fold.Maybe[T]) T { return m.Or(fallback) })
}

// Reduce combines the elements pairwise from the left with f. The result is
// absent if there are no elements.
func Reduce[T any](f func(acc, elem T) T) fold.Collector[T, fold.Maybe[T]] {
	return fold.Create(
		fold.None[T],
		func(acc fold.Maybe[T], v T, _ int) fold.Maybe[T] {
			current, ok := acc.Get()
			if !ok {
				return fold.Some(v)
			}
			return fold.Some(f(current, v))
		},
	)
}

// Some reports whether any element satisfies pred. It escapes on the first
// match.
func Some[T any](pred fold.Pred[T]) fold.Collector[T, bool] {
	return fold.Create(
		func() bool { return false },
		func(found bool, v T, index int) bool { return found || pred(v, index) },
	).WithEscape(func(found bool, _ int) bool { return found })
}

// Every reports whether all elements satisfy pred. It escapes on the first
// element that does not.
func Every[T any](pred fold.Pred[T]) fold.Collector[T, bool] {
	return fold.Create(
		func() bool { return true },
		func(all bool, v T, index int) bool { return all && pred(v, index) },
	).WithEscape(func(all bool, _ int) bool { return !all })
}

// Contains reports whether an element equal to v is present.
func Contains[T comparable](v T) fold.Collector[T, bool] {
	return Some(fold.Equals(v))
}

// IndexOf returns the index of the first element equal to v, or -1.
func IndexOf[T comparable](v T) fold.Collector[T, int] {
	return fold.Create(
		func() int { return -1 },
		func(found int, elem T, index int) int {
			if found < 0 && elem == v {
				return index
			}
			return found
		},
	).WithEscape(func(found int, _ int) bool { return found >= 0 })
}
