// SPDX-License-Identifier: Apache-2.0

package collectors

import (
	"maps"
	"slices"

	"github.com/sam-fredrickson/fold"
)

// Order selects how [Histogram] sorts its buckets.
type Order int

const (
	// Unsorted keeps buckets in the order their values were first seen.
	Unsorted Order = iota
	// Top puts the most frequent values first.
	Top
	// Bottom puts the least frequent values first.
	Bottom
)

// Bucket is one histogram entry.
type Bucket[T any] struct {
	Value T
	Count int
}

type histogramState[T comparable] struct {
	counts map[T]int
	seen   []T
}

// Histogram counts the occurrences of each distinct element.
//
// Buckets are sorted according to order; ties keep first-seen order. If
// amount is positive, only the first amount buckets are returned.
//
// Example:
//
//	top := collectors.Histogram[rune](collectors.Top, 2)
//	fold.CollectSlice([]rune("abcbcc"), top) // [{c 3} {b 2}]
func Histogram[T comparable](order Order, amount int) fold.Collector[T, []Bucket[T]] {
	return fold.CreateState(
		func() *histogramState[T] {
			return &histogramState[T]{counts: make(map[T]int)}
		},
		func(s *histogramState[T], v T, _ int) *histogramState[T] {
			if _, ok := s.counts[v]; !ok {
				s.seen = append(s.seen, v)
			}
			s.counts[v]++
			return s
		},
		func(s *histogramState[T], _ int) []Bucket[T] {
			buckets := make([]Bucket[T], len(s.seen))
			for i, v := range s.seen {
				buckets[i] = Bucket[T]{Value: v, Count: s.counts[v]}
			}
			switch order {
			case Top:
				slices.SortStableFunc(buckets, func(a, b Bucket[T]) int { return b.Count - a.Count })
			case Bottom:
				slices.SortStableFunc(buckets, func(a, b Bucket[T]) int { return a.Count - b.Count })
			}
			if amount > 0 && len(buckets) > amount {
				buckets = buckets[:amount]
			}
			return buckets
		},
	)
}

// GroupBy groups the elements by key, keeping their order within each group.
func GroupBy[T any, K comparable](key func(T) K) fold.Collector[T, map[K][]T] {
	return GroupByWith(key, ToSlice[T]())
}

type group[T, R any] struct {
	pass  fold.Pass[T, R]
	count int
}

// GroupByWith groups the elements by key and reduces each group with its own
// pass of c.
//
// Each group's pass sees indices counted within the group. Once a group's
// pass escapes, further elements of that group are dropped.
//
// Example:
//
//	// number of words per first letter
//	perLetter := collectors.GroupByWith(
//	    func(w string) byte { return w[0] },
//	    collectors.Count[string](),
//	)
func GroupByWith[T any, K comparable, R any](key func(T) K, c fold.Collector[T, R]) fold.Collector[T, map[K]R] {
	return fold.CreateState(
		func() map[K]*group[T, R] { return make(map[K]*group[T, R]) },
		func(groups map[K]*group[T, R], v T, _ int) map[K]*group[T, R] {
			k := key(v)
			g, ok := groups[k]
			if !ok {
				g = &group[T, R]{pass: c.Start()}
				groups[k] = g
			}
			if g.pass.Escape(g.count) && g.count > 0 {
				return groups
			}
			g.pass.Next(v, g.count)
			g.count++
			return groups
		},
		func(groups map[K]*group[T, R], _ int) map[K]R {
			out := make(map[K]R, len(groups))
			for k, g := range groups {
				out[k] = g.pass.Result(g.count)
			}
			return out
		},
	)
}

// Partition splits the elements into those satisfying pred and the rest.
func Partition[T any](pred fold.Pred[T]) fold.Collector[T, fold.Pair[[]T, []T]] {
	return fold.Create(
		func() fold.Pair[[]T, []T] { return fold.Pair[[]T, []T]{} },
		func(p fold.Pair[[]T, []T], v T, index int) fold.Pair[[]T, []T] {
			if pred(v, index) {
				p.First = append(p.First, v)
			} else {
				p.Second = append(p.Second, v)
			}
			return p
		},
	)
}

// ToMap builds a map from the elements. Later elements overwrite earlier ones
// with the same key.
func ToMap[T any, K comparable, V any](key func(T) K, value func(T) V) fold.Collector[T, map[K]V] {
	return fold.CreateState(
		func() map[K]V { return make(map[K]V) },
		func(m map[K]V, v T, _ int) map[K]V {
			m[key(v)] = value(v)
			return m
		},
		func(m map[K]V, _ int) map[K]V { return maps.Clone(m) },
	)
}

// ToSet collects the distinct elements.
func ToSet[T comparable]() fold.Collector[T, map[T]struct{}] {
	return ToMap(func(v T) T { return v }, func(T) struct{} { return struct{}{} })
}
