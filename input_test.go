// SPDX-License-Identifier: Apache-2.0

package fold_test

import (
	"testing"

	"github.com/sam-fredrickson/fold"
	"github.com/sam-fredrickson/fold/collectors"
	"github.com/stretchr/testify/require"
)

func TestInputCombinators(t *testing.T) {
	t.Parallel()

	input := []int{5, 1, 1, 2, 8, 8, 8, 3, 5, 0}
	even := fold.Where(func(v int) bool { return v%2 == 0 })
	toSlice := collectors.ToSlice[int]()

	testCases := []struct {
		name      string
		collector fold.Collector[int, []int]
		expected  []int
	}{
		{"Filter", fold.FilterInput(toSlice, even), []int{2, 8, 8, 8, 0}},
		{"FilterByIndex", fold.FilterInput(toSlice, fold.AtIndex[int](3)), []int{2}},
		{"Take", fold.TakeInput(toSlice, 3), []int{5, 1, 1}},
		{"TakeZero", fold.TakeInput(toSlice, 0), []int{}},
		{"TakeMoreThanAvailable", fold.TakeInput(toSlice, 100), input},
		{"Drop", fold.DropInput(toSlice, 7), []int{3, 5, 0}},
		{"DropAll", fold.DropInput(toSlice, 100), []int{}},
		{"TakeLast", fold.TakeLastInput(toSlice, 3), []int{3, 5, 0}},
		{"TakeLastZero", fold.TakeLastInput(toSlice, 0), []int{}},
		{"DropLast", fold.DropLastInput(toSlice, 8), []int{5, 1}},
		{"DropLastZero", fold.DropLastInput(toSlice, 0), input},
		{"TakeWhile", fold.TakeWhileInput(toSlice, fold.Where(func(v int) bool { return v != 2 })), []int{5, 1, 1}},
		{"DropWhile", fold.DropWhileInput(toSlice, fold.Where(func(v int) bool { return v != 2 })), []int{2, 8, 8, 8, 3, 5, 0}},
		{"Distinct", fold.DistinctInput(toSlice), []int{5, 1, 2, 8, 3, 0}},
		{"DistinctBy", fold.DistinctByInput(toSlice, func(v int) bool { return v%2 == 0 }), []int{5, 2}},
		{"FilterChanged", fold.FilterChangedInput(toSlice), []int{5, 1, 2, 8, 3, 5, 0}},
		{"Sample", fold.SampleInput(toSlice, 3), []int{5, 2, 8, 0}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.expected, fold.CollectSlice(input, tc.collector))
		})
	}
}

func TestVirtualIndices(t *testing.T) {
	t.Parallel()

	input := []string{"a", "b", "c", "d", "e", "f"}

	testCases := []struct {
		name      string
		collector fold.Collector[string, []int]
		expected  []int
	}{
		{"Plain", indices[string](), []int{0, 1, 2, 3, 4, 5}},
		{"Drop", fold.DropInput(indices[string](), 4), []int{0, 1}},
		{"Filter", fold.FilterInput(indices[string](), fold.Where(func(s string) bool { return s > "c" })), []int{0, 1, 2}},
		{"TakeLast", fold.TakeLastInput(indices[string](), 2), []int{0, 1}},
		{"Prepend", fold.PrependInput(indices[string](), "x"), []int{0, 1, 2, 3, 4, 5, 6}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.expected, fold.CollectSlice(input, tc.collector))
		})
	}
}

func TestFilterChangedByComparesWithPreviousInput(t *testing.T) {
	t.Parallel()

	always := fold.FilterChangedByInput(collectors.ToSlice[int](), func(int, int) bool { return true })
	require.Equal(t, []int{1}, fold.CollectSlice([]int{1, 2, 3}, always))

	consecutive := fold.FilterChangedByInput(collectors.ToSlice[int](), func(prev, v int) bool { return v-prev == 1 })
	require.Equal(t, []int{1, 5, 9}, fold.CollectSlice([]int{1, 2, 3, 5, 6, 9}, consecutive))
}

func TestTakeWhileIsSticky(t *testing.T) {
	t.Parallel()

	small := fold.Where(func(v int) bool { return v < 3 })
	pass := fold.TakeWhileInput(collectors.ToSlice[int](), small).Start()
	for i, v := range []int{1, 2, 5, 1, 2} {
		pass.Next(v, i)
	}
	require.Equal(t, []int{1, 2}, pass.Result(5))
	require.True(t, pass.Escape(5))
}

func TestTakeLastReplaysIntoFreshPass(t *testing.T) {
	t.Parallel()

	last := fold.TakeLastInput(collectors.Sum[int](), 2)
	pass := last.Start()
	for i, v := range []int{1, 2, 3, 4} {
		pass.Next(v, i)
	}
	require.Equal(t, 7, pass.Result(4))
	require.Equal(t, 7, pass.Result(4), "result must be repeatable")
}

func TestSamplePanicsOnNonPositiveStep(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { fold.SampleInput(collectors.Count[int](), 0) })
}
