// SPDX-License-Identifier: Apache-2.0

// Package seq provides lazy, re-iterable sequences built on the collectors of
// package fold.
//
// # Sequences
//
// An [Iter] wraps an [Iterable]. Operators such as [Iter.Filter], [Map],
// [Zip] or [Sliding] return new sequences without evaluating
// anything, and every traversal starts from scratch:
//
//	evens := seq.Range(0, 10, 1).Filter(fold.Where(func(v int) bool {
//	    return v%2 == 0
//	}))
//	evens.ToSlice() // [0 2 4 6 8]
//	evens.Count()   // 5, from a fresh traversal
//
// Terminal operations run a collector with [Collect]. The traversal stops as
// soon as the collector escapes, which makes infinite sequences usable:
//
//	seq.Iterate(1, func(v int) int { return v * 2 }).ElemAtOr(10, 0) // 1024
//
// Sequences interoperate with range loops through [Iter.All] and with
// [iter.Seq] producers through [FromSeq].
//
// # Patching
//
// [Iter.PatchWhere] is the primitive behind filtering and splicing: at every
// match it inserts elements and removes a run of the source. [Iter.Filter],
// [Iter.Drop], [Iter.Intersperse] and [DistinctBy] are all patches.
//
// # Asynchronous Sequences
//
// An [AsyncIter] pulls elements with a [context.Context] and may fail.
// Errors end the traversal at once, and terminal operations report them as
// [*fold.IndexedError]. [ZipAsync] pulls its sources concurrently, one step
// at a time.
//
// A [Source] tags an iterable as synchronous or asynchronous, so that
// [WrapAsync] decides once how to pull from it.
//
// # Logging
//
// Asynchronous monitors receive the pulling context. [WithSlogger] and
// [WithTrace] attach a logger and a trace to it, and [LogElements] and
// [TraceElements] use them.
package seq
