// SPDX-License-Identifier: Apache-2.0

// Package fold provides composable accumulators ("collectors") that reduce a
// stream of elements to a result in a single pass, with early termination.
//
// # The Problem
//
// Aggregations written as loops do not compose. Computing a sum, a histogram
// and a range over the same input means either three passes over the data or
// one hand-written loop that mixes three unrelated pieces of bookkeeping.
// Adding "only the first 100 distinct values" to one of them makes the loop
// harder still, and the index arithmetic has to be redone by hand.
//
// Fold addresses this by describing each aggregation as a value, a
// [Collector], and providing an algebra to transform and combine collectors
// while keeping indices, state and early termination correct.
//
// # Core Concepts
//
// A [Collector] is a factory for passes. A [Pass] holds the state of one
// reduction:
//
//	type Collector[E, R any] interface { Start() Pass[E, R] }
//
//	type Pass[E, R any] interface {
//	    Next(elem E, index int)
//	    Escape(index int) bool
//	    Result(index int) R
//	}
//
// Because state only exists inside a pass, the same collector can be reused
// for any number of reductions. [StateCollector] is the functional form:
// an Init factory, a Next transition, a Result projection and an optional
// Escape predicate.
//
// [Collect] drives a collector over an [iter.Seq]; [Scan] produces the
// intermediate results lazily.
//
// # Transforming Input
//
// Input combinators wrap a collector so that it sees a transformed stream:
// [MapInput], [FilterInput], [TakeInput], [DropInput], [TakeLastInput],
// [DropLastInput], [TakeWhileInput], [DropWhileInput], [DistinctInput],
// [FilterChangedInput], [SampleInput], [PatchWhereInput], [PrependInput],
// [AppendInput] and [MonitorInput].
//
// Combinators that drop elements keep a virtual index, so the wrapped
// collector sees indices 0, 1, 2... over the elements it actually receives:
//
//	// every second element of the positive numbers
//	c := fold.FilterInput(
//	    fold.SampleInput(collectors.ToSlice[int](), 2),
//	    func(v, _ int) bool { return v > 0 },
//	)
//	fold.CollectSlice([]int{-1, 1, 2, -3, 3, 4}, c) // [1 3]
//
// # Combining Collectors
//
// [Combine], [Combine2], [Combine3] and [CombineWith] run several collectors
// over one pass of the input. [Pipe] feeds the running result of one
// collector into another. [MapResult] post-processes a result.
//
//	stats := fold.Combine2(collectors.Sum[int](), collectors.Product[int]())
//	fold.CollectSlice([]int{1, 2, 3}, stats) // {6 6}
//
// # Early Termination
//
// A pass escapes once its result can no longer change. Drivers stop pulling
// input at that point, so collectors such as "first element" or "take 10"
// work on infinite sequences. Combined collectors escape only when all of
// their components have.
//
// # Observability
//
// [MonitorInput] attaches side effects to a collector's input. [SlogMonitor]
// logs elements with [log/slog], and [TraceMonitor] records them into a
// [Trace] that can be filtered, printed or streamed as JSON Lines.
//
// # Related Packages
//
// Package collectors provides ready-made collectors (sums, averages,
// histograms, grouping...). Package seq provides lazy synchronous and
// asynchronous sequences that are driven by collectors.
package fold
