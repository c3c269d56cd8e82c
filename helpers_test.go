// SPDX-License-Identifier: Apache-2.0

package fold_test

import (
	"iter"

	"github.com/sam-fredrickson/fold"
)

// ==== Test Helpers: Sources ====

// countingSeq yields 0, 1, 2... up to n-1 (forever if n < 0) and counts how
// many elements were pulled.
type countingSeq struct {
	n      int
	pulled int
}

func (s *countingSeq) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; s.n < 0 || i < s.n; i++ {
			s.pulled++
			if !yield(i) {
				return
			}
		}
	}
}

// ==== Test Helpers: Collectors ====

// indices records the index of every element it receives.
func indices[E any]() fold.Collector[E, []int] {
	return fold.Create(
		func() []int { return []int{} },
		func(acc []int, _ E, index int) []int { return append(acc, index) },
	)
}

// monotone reports whether flags never go from true back to false.
func monotone(flags []bool) bool {
	seen := false
	for _, f := range flags {
		if seen && !f {
			return false
		}
		seen = seen || f
	}
	return true
}

// feedAll feeds every value to a fresh pass of c, ignoring escape. It returns
// the escape flag after each element, the result at the first escape, and
// the result after the last element.
func feedAll[E, R any](c fold.Collector[E, R], values []E) (flags []bool, atEscape, final R) {
	pass := c.Start()
	escaped := false
	for i, v := range values {
		pass.Next(v, i)
		flag := pass.Escape(i + 1)
		flags = append(flags, flag)
		if flag && !escaped {
			escaped = true
			atEscape = pass.Result(i + 1)
		}
	}
	return flags, atEscape, pass.Result(len(values))
}
