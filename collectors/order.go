// SPDX-License-Identifier: Apache-2.0

package collectors

import (
	"cmp"

	"github.com/sam-fredrickson/fold"
)

// Min finds the smallest element. Of several equal smallest elements, the
// first wins.
func Min[T cmp.Ordered]() fold.Collector[T, fold.Maybe[T]] {
	return MinBy(cmp.Compare[T])
}

// Max finds the largest element. Of several equal largest elements, the
// first wins.
func Max[T cmp.Ordered]() fold.Collector[T, fold.Maybe[T]] {
	return MaxBy(cmp.Compare[T])
}

// MinBy finds the smallest element according to compare.
func MinBy[T any](compare func(a, b T) int) fold.Collector[T, fold.Maybe[T]] {
	return best(func(candidate, current T) bool {
		return compare(candidate, current) < 0
	})
}

// MaxBy finds the largest element according to compare.
func MaxBy[T any](compare func(a, b T) int) fold.Collector[T, fold.Maybe[T]] {
	return best(func(candidate, current T) bool {
		return compare(candidate, current) > 0
	})
}

func best[T any](better func(candidate, current T) bool) fold.Collector[T, fold.Maybe[T]] {
	return fold.Create(
		fold.None[T],
		func(acc fold.Maybe[T], v T, _ int) fold.Maybe[T] {
			current, ok := acc.Get()
			if !ok || better(v, current) {
				return fold.Some(v)
			}
			return acc
		},
	)
}

// Range finds the smallest and the largest element, in that order.
func Range[T cmp.Ordered]() fold.Collector[T, fold.Maybe[fold.Pair[T, T]]] {
	return RangeBy(func(v T) T { return v })
}

type rangeState[T any, K cmp.Ordered] struct {
	min, max       T
	minKey, maxKey K
	ok             bool
}

// RangeBy finds the elements with the smallest and the largest key, in that
// order. Ties keep the first element seen.
//
// Example:
//
//	byLength := collectors.RangeBy(func(s string) int { return len(s) })
//	fold.CollectSlice([]string{"aa", "a", "aaa"}, byLength) // Some({a aaa})
func RangeBy[T any, K cmp.Ordered](key func(T) K) fold.Collector[T, fold.Maybe[fold.Pair[T, T]]] {
	return fold.CreateState(
		func() rangeState[T, K] { return rangeState[T, K]{} },
		func(s rangeState[T, K], v T, _ int) rangeState[T, K] {
			k := key(v)
			if !s.ok {
				return rangeState[T, K]{min: v, max: v, minKey: k, maxKey: k, ok: true}
			}
			if k < s.minKey {
				s.min, s.minKey = v, k
			}
			if k > s.maxKey {
				s.max, s.maxKey = v, k
			}
			return s
		},
		func(s rangeState[T, K], _ int) fold.Maybe[fold.Pair[T, T]] {
			if !s.ok {
				return fold.None[fold.Pair[T, T]]()
			}
			return fold.Some(fold.Pair[T, T]{First: s.min, Second: s.max})
		},
	)
}
