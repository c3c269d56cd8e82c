// SPDX-License-Identifier: Apache-2.0

package fold_test

import (
	"slices"
	"testing"

	"github.com/sam-fredrickson/fold"
	"github.com/sam-fredrickson/fold/collectors"
	"github.com/stretchr/testify/require"
)

func TestCombine(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    []int
		expected []int
	}{
		{"Values", []int{1, 2, 3}, []int{6, 6}},
		{"Empty", nil, []int{0, 1}},
	}

	both := fold.Combine(collectors.Sum[int](), collectors.Product[int]())
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.expected, fold.CollectSlice(tc.input, both))
		})
	}
}

func TestCombineNeutralElement(t *testing.T) {
	t.Parallel()

	// Fixed escapes at once and never changes, so it does not hold the
	// combination back.
	c := fold.Combine(fold.Fixed[int](42), collectors.Sum[int]())
	require.Equal(t, []int{42, 10}, fold.CollectSlice([]int{1, 2, 3, 4}, c))
}

func TestCombineMatchesSeparateCollection(t *testing.T) {
	t.Parallel()

	input := []int{1, 2, 3, 4}
	// escapes after the first element, while its second stage never escapes
	firstOnly := fold.Pipe(fold.TakeInput(collectors.Sum[int](), 1), collectors.Count[int]())
	sum := collectors.Sum[int]()
	count := collectors.Count[int]()

	require.Equal(t, 1, fold.CollectSlice(input, firstOnly))
	require.Equal(t, []int{1, 10, 4}, fold.CollectSlice(input, fold.Combine(firstOnly, sum, count)))

	pair := fold.CollectSlice(input, fold.Combine2(firstOnly, sum))
	require.Equal(t, fold.Pair[int, int]{First: 1, Second: 10}, pair)

	triple := fold.CollectSlice(input, fold.Combine3(sum, firstOnly, count))
	require.Equal(t, fold.Triple[int, int, int]{First: 10, Second: 1, Third: 4}, triple)

	scanned := slices.Collect(fold.Scan(slices.Values(input), fold.Combine2(firstOnly, sum)))
	require.Equal(t, []fold.Pair[int, int]{
		{First: 1, Second: 1},
		{First: 1, Second: 3},
		{First: 1, Second: 6},
		{First: 1, Second: 10},
	}, scanned)
}

func TestCombineEscapesWhenAllComponentsEscape(t *testing.T) {
	t.Parallel()

	src := &countingSeq{n: -1}
	c := fold.Combine2(
		collectors.First[int](),
		collectors.Some(fold.Where(func(v int) bool { return v == 4 })),
	)
	got := fold.Collect(src.All(), c)

	require.Equal(t, fold.Some(0), got.First)
	require.True(t, got.Second)
	require.Equal(t, 5, src.pulled)
}

func TestCombineHistogramAndRange(t *testing.T) {
	t.Parallel()

	stats := fold.Combine2(
		collectors.Histogram[string](collectors.Top, 5),
		collectors.RangeBy(func(s string) int { return len(s) }),
	)
	got := fold.CollectSlice([]string{"aa", "a", "aaa"}, stats)

	require.Equal(t, []collectors.Bucket[string]{
		{Value: "aa", Count: 1},
		{Value: "a", Count: 1},
		{Value: "aaa", Count: 1},
	}, got.First)
	require.Equal(t, fold.Some(fold.Pair[string, string]{First: "a", Second: "aaa"}), got.Second)
}

func TestCombine3(t *testing.T) {
	t.Parallel()

	c := fold.Combine3(collectors.Count[float64](), collectors.Sum[float64](), collectors.Average[float64]())
	got := fold.CollectSlice([]float64{1, 2, 6}, c)

	require.Equal(t, 3, got.First)
	require.InDelta(t, 9.0, got.Second, 1e-9)
	require.InDelta(t, 3.0, got.Third, 1e-9)
}

func TestCombineWith(t *testing.T) {
	t.Parallel()

	spread := fold.CombineWith(
		func(rs []fold.Maybe[int]) int { return rs[1].Or(0) - rs[0].Or(0) },
		collectors.Min[int](),
		collectors.Max[int](),
	)
	require.Equal(t, 7, fold.CollectSlice([]int{3, 9, 2, 5}, spread))
	require.Equal(t, 0, fold.CollectSlice(nil, spread))
}

func TestPipe(t *testing.T) {
	t.Parallel()

	// running sums 3 1 4 -> 3 4 8; the largest is 8
	maxSum := fold.Pipe(collectors.Sum[int](), collectors.Max[int]())
	require.Equal(t, fold.Some(8), fold.CollectSlice([]int{3, 1, 4}, maxSum))

	// running sums 1 -1 2: the second one is -1
	second := fold.Pipe(collectors.Sum[int](), collectors.ElemAt[int](1))
	require.Equal(t, fold.Some(-1), fold.CollectSlice([]int{1, -2, 3}, second))
}

func TestPipeEscapesWhenEitherEscapes(t *testing.T) {
	t.Parallel()

	src := &countingSeq{n: -1}
	firstSum := fold.Pipe(collectors.Sum[int](), collectors.First[int]())
	require.Equal(t, fold.Some(0), fold.Collect(src.All(), firstSum))
	require.Equal(t, 1, src.pulled)

	src = &countingSeq{n: -1}
	limited := fold.Pipe(fold.TakeInput(collectors.Sum[int](), 3), collectors.Last[int]())
	require.Equal(t, fold.Some(3), fold.Collect(src.All(), limited))
	require.Equal(t, 3, src.pulled)
}
