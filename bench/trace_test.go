// SPDX-License-Identifier: Apache-2.0

package fold_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/sam-fredrickson/fold"
	"github.com/sam-fredrickson/fold/collectors"
	"github.com/sam-fredrickson/fold/seq"
)

// =============================================================================
// Monitoring Benchmarks
// =============================================================================

// Benchmark a collector without monitors (baseline).
func BenchmarkMonitorNone(b *testing.B) {
	values := seq.Range(0, 1_000, 1).ToSlice()
	c := collectors.Sum[int]()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		intResult = fold.CollectSlice(values, c)
	}
}

// Benchmark a collector recording every element into a trace.
func BenchmarkMonitorTrace(b *testing.B) {
	values := seq.Range(0, 1_000, 1).ToSlice()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr := fold.NewTrace()
		c := fold.MonitorInput(collectors.Sum[int](), "values", fold.TraceMonitor[int](tr))
		intResult = fold.CollectSlice(values, c)
	}
}

// Benchmark a collector logging every element below the handler's level, so
// only the level check is paid.
func BenchmarkMonitorSlogDisabled(b *testing.B) {
	values := seq.Range(0, 1_000, 1).ToSlice()
	logger := slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelInfo}))
	c := fold.MonitorInput(collectors.Sum[int](), "values", fold.SlogMonitor[int](logger, slog.LevelDebug))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		intResult = fold.CollectSlice(values, c)
	}
}

// Benchmark stacked monitors to measure the cost per monitor.
func BenchmarkMonitorStacked(b *testing.B) {
	depths := []int{1, 5, 10, 20}

	for _, depth := range depths {
		b.Run(fmt.Sprintf("depth_%02d", depth), func(b *testing.B) {
			values := seq.Range(0, 1_000, 1)
			seen := 0
			for i := 0; i < depth; i++ {
				values = values.Monitor(fmt.Sprintf("level%02d", i), func(string, int, int) { seen++ })
			}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				intResult = seq.Collect(values, collectors.Sum[int]())
			}
			b.ReportMetric(float64(seen)/float64(b.N), "monitor_calls/op")
		})
	}
}

// Benchmark concurrent recording into one trace from zipped async sources.
func BenchmarkTraceConcurrentAccess(b *testing.B) {
	sourceCounts := []int{4, 10, 50}

	for _, count := range sourceCounts {
		b.Run(fmt.Sprintf("sources_%03d", count), func(b *testing.B) {
			sources := make([]seq.AsyncIterable[int], count)
			for i := range sources {
				sources[i] = seq.FromIter(seq.Range(0, 100, 1)).
					Monitor(fmt.Sprintf("src%03d", i), seq.TraceElements[int]())
			}
			zipped := seq.ZipAsync(sources...)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				ctx := seq.WithTrace(context.Background(), fold.NewTrace())
				if _, err := zipped.Count(ctx); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// traceOf records n elements under two tags.
func traceOf(n int) *fold.Trace {
	tr := fold.NewTrace()
	words := seq.Map(seq.Range(0, n, 1), func(v int) string { return fmt.Sprintf("word%04d", v) }).
		Monitor("words", fold.TraceMonitor[string](tr))
	lengths := seq.Map(words, func(w string) int { return len(w) }).
		Monitor("lengths", fold.TraceMonitor[int](tr))
	lengths.Count()
	return tr
}

// Benchmark filter operations on large traces.
func BenchmarkTraceFilter(b *testing.B) {
	eventCounts := []int{100, 500, 1000}

	for _, eventCount := range eventCounts {
		b.Run(fmt.Sprintf("events_%04d", eventCount), func(b *testing.B) {
			tr := traceOf(eventCount / 2)

			b.Run("single_filter", func(b *testing.B) {
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					_ = tr.Filter(fold.HasTag("words"))
				}
			})

			b.Run("multiple_filters", func(b *testing.B) {
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					_ = tr.Filter(
						fold.HasTag("words"),
						fold.IndexBetween(10, 200),
					)
				}
			})

			b.Run("pattern_match", func(b *testing.B) {
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					_ = tr.Filter(fold.ValueMatches("word00*"))
				}
			})
		})
	}
}

// Benchmark trace output operations.
func BenchmarkTraceOutput(b *testing.B) {
	tr := traceOf(50)

	b.Run("WriteTo_JSON", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			var buf bytes.Buffer
			if _, err := tr.WriteTo(&buf); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run("WriteText", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			var buf bytes.Buffer
			if _, err := tr.WriteText(&buf); err != nil {
				b.Fatal(err)
			}
		}
	})
}

// BenchmarkStreamingOverhead measures the overhead of streaming events.
func BenchmarkStreamingOverhead(b *testing.B) {
	eventCounts := []int{10, 50, 100}

	for _, count := range eventCounts {
		values := seq.Range(0, count, 1).ToSlice()

		b.Run(fmt.Sprintf("events_%03d/no_streaming", count), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				tr := fold.NewTrace()
				c := fold.MonitorInput(collectors.Count[int](), "n", fold.TraceMonitor[int](tr))
				intResult = fold.CollectSlice(values, c)
			}
		})

		b.Run(fmt.Sprintf("events_%03d/with_streaming", count), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				var buf bytes.Buffer
				tr := fold.NewTrace(fold.WithStreamTo(&buf))
				c := fold.MonitorInput(collectors.Count[int](), "n", fold.TraceMonitor[int](tr))
				intResult = fold.CollectSlice(values, c)
			}
		})
	}
}
