// SPDX-License-Identifier: Apache-2.0

package seq

import (
	"context"

	"github.com/sam-fredrickson/fold"
	"golang.org/x/sync/errgroup"
)

// AsyncOptions configures the concurrent pulls of an asynchronous zip.
type AsyncOptions struct {
	// Limit bounds the number of sources pulled at the same time. Zero or a
	// negative value means no limit.
	Limit int
}

// ZipAsync groups the i-th elements of the sources into one slice.
//
// Every step pulls all sources concurrently and yields once each of them
// has produced its element. The sequence ends as soon as any source is
// exhausted. The first error cancels the other pulls of the step and ends
// the sequence.
//
// Example:
//
//	prices := seq.MapAsync(symbols, fetchPrice)
//	volumes := seq.MapAsync(symbols, fetchVolume)
//	rows := seq.ZipAsync[float64](prices, volumes)
func ZipAsync[T any](sources ...AsyncIterable[T]) AsyncIter[[]T] {
	return ZipAsyncWith(AsyncOptions{}, sources...)
}

// ZipAsyncWith is like [ZipAsync], with options.
func ZipAsyncWith[T any](opts AsyncOptions, sources ...AsyncIterable[T]) AsyncIter[[]T] {
	if len(sources) == 0 {
		return AsyncIter[[]T]{}
	}
	for _, src := range sources {
		if src == nil {
			return AsyncIter[[]T]{}
		}
		if s, ok := src.(AsyncIter[T]); ok && s.IsEmpty() {
			return AsyncIter[[]T]{}
		}
	}
	return deriveAsync(func() AsyncIterator[[]T] {
		return &asyncZipIterator[T]{srcs: startAllAsync(sources), limit: opts.Limit}
	})
}

// ZipAllAsync groups the i-th elements of the sources. An exhausted source
// contributes an absent value, and the sequence ends when every source is
// exhausted. Only sources still running are pulled.
func ZipAllAsync[T any](opts AsyncOptions, sources ...AsyncIterable[T]) AsyncIter[[]fold.Maybe[T]] {
	if len(sources) == 0 {
		return AsyncIter[[]fold.Maybe[T]]{}
	}
	return deriveAsync(func() AsyncIterator[[]fold.Maybe[T]] {
		return &asyncZipAllIterator[T]{srcs: startAllAsync(sources), limit: opts.Limit}
	})
}

func startAllAsync[T any](srcs []AsyncIterable[T]) []AsyncIterator[T] {
	iterators := make([]AsyncIterator[T], len(srcs))
	for i, src := range srcs {
		if src == nil {
			iterators[i] = emptyAsyncIterator[T]{}
			continue
		}
		iterators[i] = src.AsyncIterator()
	}
	return iterators
}

func stopAllAsync[T any](iterators []AsyncIterator[T]) {
	for _, iterator := range iterators {
		if iterator != nil {
			stop(iterator)
		}
	}
}

type pullResult[T any] struct {
	value T
	ok    bool
}

// pullStep pulls once from every non-nil iterator concurrently.
func pullStep[T any](ctx context.Context, iterators []AsyncIterator[T], limit int) ([]pullResult[T], error) {
	results := make([]pullResult[T], len(iterators))
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, iterator := range iterators {
		if iterator == nil {
			continue
		}
		g.Go(func() error {
			v, ok, err := iterator.Next(gctx)
			if err != nil {
				return err
			}
			results[i] = pullResult[T]{value: v, ok: ok}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

type asyncZipIterator[T any] struct {
	srcs  []AsyncIterator[T]
	limit int
	done  bool
}

func (z *asyncZipIterator[T]) Next(ctx context.Context) ([]T, bool, error) {
	if z.done {
		return nil, false, nil
	}
	results, err := pullStep(ctx, z.srcs, z.limit)
	if err != nil {
		z.done = true
		return nil, false, err
	}
	values := make([]T, len(results))
	for i, r := range results {
		if !r.ok {
			z.done = true
			return nil, false, nil
		}
		values[i] = r.value
	}
	return values, true, nil
}

func (z *asyncZipIterator[T]) Stop() { stopAllAsync(z.srcs) }

type asyncZipAllIterator[T any] struct {
	srcs  []AsyncIterator[T]
	limit int
}

func (z *asyncZipAllIterator[T]) Next(ctx context.Context) ([]fold.Maybe[T], bool, error) {
	results, err := pullStep(ctx, z.srcs, z.limit)
	if err != nil {
		stopAllAsync(z.srcs)
		clear(z.srcs)
		return nil, false, err
	}
	values := make([]fold.Maybe[T], len(results))
	alive := false
	for i, r := range results {
		if !r.ok {
			if z.srcs[i] != nil {
				stop(z.srcs[i])
				z.srcs[i] = nil
			}
			continue
		}
		values[i] = fold.Some(r.value)
		alive = true
	}
	if !alive {
		return nil, false, nil
	}
	return values, true, nil
}

func (z *asyncZipAllIterator[T]) Stop() { stopAllAsync(z.srcs) }
