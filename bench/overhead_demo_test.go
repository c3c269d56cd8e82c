// SPDX-License-Identifier: Apache-2.0

package fold_test

import (
	"testing"

	"github.com/sam-fredrickson/fold"
	"github.com/sam-fredrickson/fold/collectors"
	"github.com/sam-fredrickson/fold/seq"
)

// This file demonstrates where the compositional overhead comes from by
// stacking ten increment stages three ways: a hand-written loop, ten input
// combinators around one collector, and ten lazy sequence stages.

const stages = 10

// Made complex enough to prevent inlining.
//
//go:noinline
func incrementDirect(v int) int {
	if v < -1<<40 {
		return 0
	}
	return v + 1
}

func stackedCollector() fold.Collector[int, int] {
	c := collectors.Sum[int]()
	for range stages {
		c = fold.MapInput(c, incrementDirect)
	}
	return c
}

func stackedSeq(src seq.Iter[int]) seq.Iter[int] {
	for range stages {
		src = seq.Map(src, incrementDirect)
	}
	return src
}

// ============================================================================
// Execution (pipeline built once)
// ============================================================================

// Benchmark 1: Direct function calls.
func BenchmarkDirect_10Stages(b *testing.B) {
	values := seq.Range(0, 1_000, 1).ToSlice()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		total := 0
		for _, v := range values {
			for range stages {
				v = incrementDirect(v)
			}
			total += v
		}
		intResult = total
	}
}

// Benchmark 2: Input combinators around one collector.
func BenchmarkCollector_10Stages(b *testing.B) {
	values := seq.Range(0, 1_000, 1).ToSlice()
	c := stackedCollector()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		intResult = fold.CollectSlice(values, c)
	}
}

// Benchmark 3: Lazy sequence stages.
func BenchmarkSeq_10Stages(b *testing.B) {
	s := stackedSeq(seq.Range(0, 1_000, 1))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		intResult = seq.Collect(s, collectors.Sum[int]())
	}
}

// ============================================================================
// Construction + Execution (pipeline built inside the loop)
// ============================================================================

func BenchmarkCollectorCreation_10Stages(b *testing.B) {
	values := seq.Range(0, 1_000, 1).ToSlice()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		intResult = fold.CollectSlice(values, stackedCollector())
	}
}

func BenchmarkSeqCreation_10Stages(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		intResult = seq.Collect(stackedSeq(seq.Range(0, 1_000, 1)), collectors.Sum[int]())
	}
}

func TestStackedPipelinesAgree(t *testing.T) {
	t.Parallel()

	values := seq.Range(0, 100, 1)
	want := 0
	for v := range 100 {
		want += v + stages
	}

	if got := fold.CollectSlice(values.ToSlice(), stackedCollector()); got != want {
		t.Errorf("collector: got %d, want %d", got, want)
	}
	if got := seq.Collect(stackedSeq(values), collectors.Sum[int]()); got != want {
		t.Errorf("seq: got %d, want %d", got, want)
	}
}
