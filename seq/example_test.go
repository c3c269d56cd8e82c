// SPDX-License-Identifier: Apache-2.0

package seq_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/sam-fredrickson/fold"
	"github.com/sam-fredrickson/fold/collectors"
	"github.com/sam-fredrickson/fold/seq"
)

func Example() {
	evens := seq.Range(0, 10, 1).Filter(fold.Where(func(v int) bool {
		return v%2 == 0
	}))
	fmt.Println(evens.ToSlice())
	fmt.Println(evens.Count())
	fmt.Println(seq.Iterate(1, func(v int) int { return v * 2 }).ElemAtOr(10, 0))
	// Output:
	// [0 2 4 6 8]
	// 5
	// 1024
}

func ExampleIter_PatchWhere() {
	s := seq.Of(0, 1, 5, 2)
	even := fold.Where(func(v int) bool { return v%2 == 0 })

	fmt.Println(s.PatchWhere(even, 1, nil, 0).ToSlice())
	fmt.Println(s.PatchWhere(even, 0, func(int, int) seq.Iterable[int] {
		return seq.Of(10, 11)
	}, 0).ToSlice())
	// Output:
	// [1 5]
	// [10 11 0 1 5 10 11 2]
}

func ExampleSliding() {
	fmt.Println(seq.Sliding(seq.Range(0, 9, 1), 3, 1).ToSlice())
	// Output: [[0 1 2] [1 2 3] [2 3 4] [3 4 5] [4 5 6] [5 6 7] [6 7 8]]
}

func ExampleZipAll() {
	fmt.Println(seq.ZipAll(seq.Of(1, 2), seq.Of(10)).ToSlice())
	// Output: [[Some(1) Some(10)] [Some(2) None]]
}

func ExampleCollect() {
	words := seq.FromSlice(strings.Fields("the quick brown fox jumps over the lazy dog"))
	stats := fold.Combine2(
		collectors.Histogram[string](collectors.Top, 1),
		collectors.RangeBy(func(w string) int { return len(w) }),
	)
	got := seq.Collect(words, stats)
	fmt.Println(got.First[0].Value, got.First[0].Count)
	fmt.Println(got.Second)
	// Output:
	// the 2
	// Some({the quick})
}

func ExampleZipAsync() {
	ctx := context.Background()
	rows, err := seq.ZipAsync[string](seq.AsyncOf("a", "b"), seq.AsyncOf("x", "y", "z")).ToSlice(ctx)
	fmt.Println(rows, err)
	// Output: [[a x] [b y]] <nil>
}
