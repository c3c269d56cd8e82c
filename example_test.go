// SPDX-License-Identifier: Apache-2.0

package fold_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/sam-fredrickson/fold"
	"github.com/sam-fredrickson/fold/collectors"
)

func Example() {
	words := strings.Fields("the quick brown fox jumps over the lazy dog")

	stats := fold.Combine3(
		collectors.Count[string](),
		fold.MapInput(collectors.Average[int](), func(w string) int { return len(w) }),
		collectors.Histogram[string](collectors.Top, 1),
	)
	got := fold.CollectSlice(words, stats)

	fmt.Println("words:", got.First)
	fmt.Printf("average length: %.2f\n", got.Second)
	fmt.Println("most frequent:", got.Third[0].Value)
	// Output:
	// words: 9
	// average length: 3.89
	// most frequent: the
}

func ExampleFilterInput() {
	c := fold.FilterInput(
		fold.SampleInput(collectors.ToSlice[int](), 2),
		func(v, _ int) bool { return v > 0 },
	)
	fmt.Println(fold.CollectSlice([]int{-1, 1, 2, -3, 3, 4}, c))
	// Output: [1 3]
}

func ExamplePatchWhereInput() {
	even := fold.Where(func(v int) bool { return v%2 == 0 })
	tens := func(int, int) []int { return []int{10, 11} }

	fmt.Println(fold.CollectSlice([]int{0, 1, 5, 2},
		fold.PatchWhereInput(collectors.ToSlice[int](), even, 1, nil, 0)))
	fmt.Println(fold.CollectSlice([]int{0, 1, 5, 2},
		fold.PatchWhereInput(collectors.ToSlice[int](), even, 0, tens, 0)))
	// Output:
	// [1 5]
	// [10 11 0 1 5 10 11 2]
}

func ExampleCombine() {
	both := fold.Combine(collectors.Sum[int](), collectors.Product[int]())
	fmt.Println(fold.CollectSlice([]int{1, 2, 3}, both))
	fmt.Println(fold.CollectSlice(nil, both))
	// Output:
	// [6 6]
	// [0 1]
}

func ExamplePipe() {
	peak := fold.Pipe(collectors.Sum[int](), collectors.Max[int]())
	fmt.Println(fold.CollectSlice([]int{3, 1, -6, 4}, peak))
	// Output: Some(4)
}

func ExampleTraceMonitor() {
	tr := fold.NewTrace()
	c := fold.MonitorInput(collectors.Join("-"), "words", fold.TraceMonitor[string](tr))
	fmt.Println(fold.CollectSlice([]string{"a", "b"}, c))
	_, _ = tr.WriteText(os.Stdout)
	// Output:
	// a-b
	// words[0] a
	// words[1] b
}
