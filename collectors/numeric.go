// SPDX-License-Identifier: Apache-2.0

package collectors

import (
	"github.com/sam-fredrickson/fold"
	"golang.org/x/exp/constraints"
)

// Number is the set of types the arithmetic collectors accept.
type Number interface {
	constraints.Integer | constraints.Float
}

// Count counts the elements.
func Count[T any]() fold.Collector[T, int] {
	return fold.CreateState(
		func() struct{} { return struct{}{} },
		func(s struct{}, _ T, _ int) struct{} { return s },
		func(_ struct{}, index int) int { return index },
	)
}

// Sum adds up the elements. The sum of no elements is 0.
func Sum[T Number]() fold.Collector[T, T] {
	return fold.Create(
		func() T { return 0 },
		func(acc T, v T, _ int) T { return acc + v },
	)
}

// Product multiplies the elements. The product of no elements is 1.
func Product[T Number]() fold.Collector[T, T] {
	return fold.Create(
		func() T { return 1 },
		func(acc T, v T, _ int) T { return acc * v },
	)
}

// Average computes the arithmetic mean of the elements. The average of no
// elements is 0.
//
// Example:
//
//	// average word length
//	avg := fold.MapInput(collectors.Average[int](), func(w string) int { return len(w) })
//	fold.CollectSlice([]string{"This", "is", "a", "test"}, avg) // 2.75
func Average[T Number]() fold.Collector[T, float64] {
	return fold.CreateState(
		func() float64 { return 0 },
		func(acc float64, v T, _ int) float64 { return acc + float64(v) },
		func(acc float64, n int) float64 {
			if n == 0 {
				return 0
			}
			return acc / float64(n)
		},
	)
}
