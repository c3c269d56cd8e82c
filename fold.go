// SPDX-License-Identifier: Apache-2.0

package fold

import (
	"iter"
	"slices"
)

// A Collector describes a reduction over a stream of elements of type E that
// produces a result of type R.
//
// A Collector holds no per-pass state. Each call to Start begins an
// independent pass with fresh state, so the same Collector can drive any
// number of reductions without interference.
type Collector[E, R any] interface {
	// Start creates the state of a new pass.
	Start() Pass[E, R]
}

// A Pass is the state of one in-flight reduction.
//
// Next feeds the element at the given index. Within a pass, indices start at
// 0 and increase by exactly one per element.
//
// Result projects the current state to a result. Its index argument is the
// number of elements fed so far. Result may be called any number of times on
// the same state and must not change it.
//
// Escape reports whether the result is final. Once Escape returns true,
// feeding further elements never changes Result, so drivers stop feeding.
type Pass[E, R any] interface {
	Next(elem E, index int)
	Escape(index int) bool
	Result(index int) R
}

// collectorFunc adapts a pass factory to a [Collector].
type collectorFunc[E, R any] func() Pass[E, R]

func (f collectorFunc[E, R]) Start() Pass[E, R] {
	return f()
}

// StateCollector is the functional form of a [Collector].
//
// Init must be a factory: it is called once per pass, and must return an
// independent value whenever S is a reference type such as a map or a
// pointer. Returning the same map from every call shares it between passes.
//
// Next is the state transition, Result projects a state to a result, and the
// optional Escape reports that the result is final.
type StateCollector[E, S, R any] struct {
	Init   func() S
	Next   func(state S, elem E, index int) S
	Result func(state S, index int) R
	Escape func(state S, index int) bool
}

// Start implements [Collector].
func (c StateCollector[E, S, R]) Start() Pass[E, R] {
	return &statePass[E, S, R]{def: c, state: c.Init()}
}

// WithEscape returns a copy of c using the given escape predicate.
func (c StateCollector[E, S, R]) WithEscape(escape func(state S, index int) bool) StateCollector[E, S, R] {
	c.Escape = escape
	return c
}

// statePass ignores elements fed after it escaped, and keeps reporting the
// result at the escape.
type statePass[E, S, R any] struct {
	def   StateCollector[E, S, R]
	state S
	done  bool
	end   int
}

func (p *statePass[E, S, R]) Next(elem E, index int) {
	if p.done {
		return
	}
	if p.Escape(index) {
		p.done, p.end = true, index
		return
	}
	p.state = p.def.Next(p.state, elem, index)
}

func (p *statePass[E, S, R]) Escape(index int) bool {
	return p.done || (p.def.Escape != nil && p.def.Escape(p.state, index))
}

func (p *statePass[E, S, R]) Result(index int) R {
	if p.done {
		index = p.end
	}
	return p.def.Result(p.state, index)
}

// Create builds a collector whose result is its state.
//
// Example:
//
//	sum := fold.Create(
//	    func() int { return 0 },
//	    func(acc, v, _ int) int { return acc + v },
//	)
//	total := fold.CollectSlice([]int{1, 2, 3}, sum) // 6
func Create[E, S any](
	init func() S,
	next func(state S, elem E, index int) S,
) StateCollector[E, S, S] {
	return StateCollector[E, S, S]{
		Init:   init,
		Next:   next,
		Result: func(state S, _ int) S { return state },
	}
}

// CreateState builds a collector with distinct state and result types.
//
// Example:
//
//	average := fold.CreateState(
//	    func() float64 { return 0 },
//	    func(acc float64, v float64, _ int) float64 { return acc + v },
//	    func(acc float64, n int) float64 {
//	        if n == 0 {
//	            return 0
//	        }
//	        return acc / float64(n)
//	    },
//	)
func CreateState[E, S, R any](
	init func() S,
	next func(state S, elem E, index int) S,
	result func(state S, index int) R,
) StateCollector[E, S, R] {
	return StateCollector[E, S, R]{
		Init:   init,
		Next:   next,
		Result: result,
	}
}

// Fixed returns a collector that ignores its input and always produces value.
//
// It escapes immediately, which makes it the neutral element of [Combine].
func Fixed[E, R any](value R) Collector[E, R] {
	return fixed[E, R]{value: value}
}

type fixed[E, R any] struct {
	value R
}

func (f fixed[E, R]) Start() Pass[E, R] { return f }
func (f fixed[E, R]) Next(E, int)        {}
func (f fixed[E, R]) Escape(int) bool    { return true }
func (f fixed[E, R]) Result(int) R       { return f.value }

// Collect runs c over every element of seq and returns the result.
//
// Iteration stops early once the collector escapes.
func Collect[E, R any](seq iter.Seq[E], c Collector[E, R]) R {
	pass := c.Start()
	index := 0
	for elem := range seq {
		pass.Next(elem, index)
		index++
		if pass.Escape(index) {
			break
		}
	}
	return pass.Result(index)
}

// CollectSlice runs c over the given values.
func CollectSlice[E, R any](values []E, c Collector[E, R]) R {
	return Collect(slices.Values(values), c)
}

// Scan returns a sequence of the intermediate results of c over seq.
//
// One result is produced after every element. The sequence ends after the
// result of the element that made c escape.
func Scan[E, R any](seq iter.Seq[E], c Collector[E, R]) iter.Seq[R] {
	return func(yield func(R) bool) {
		pass := c.Start()
		index := 0
		for elem := range seq {
			pass.Next(elem, index)
			index++
			if !yield(pass.Result(index)) {
				return
			}
			if pass.Escape(index) {
				return
			}
		}
	}
}

// MapResult composes f after the result projection of c.
//
// Example:
//
//	count := fold.MapResult(collectors.Count[string](), strconv.Itoa)
func MapResult[E, R, T any](c Collector[E, R], f func(R) T) Collector[E, T] {
	return collectorFunc[E, T](func() Pass[E, T] {
		return &mapResultPass[E, R, T]{inner: c.Start(), f: f}
	})
}

type mapResultPass[E, R, T any] struct {
	inner Pass[E, R]
	f     func(R) T
}

func (p *mapResultPass[E, R, T]) Next(elem E, index int) { p.inner.Next(elem, index) }
func (p *mapResultPass[E, R, T]) Escape(index int) bool  { return p.inner.Escape(index) }
func (p *mapResultPass[E, R, T]) Result(index int) T     { return p.f(p.inner.Result(index)) }

// MapInput converts c into a collector of F by applying f to every element
// before it reaches c.
//
// Example:
//
//	// average word length
//	lengths := fold.MapInput(collectors.Average[int](), func(s string) int {
//	    return len(s)
//	})
func MapInput[F, E, R any](c Collector[E, R], f func(F) E) Collector[F, R] {
	return collectorFunc[F, R](func() Pass[F, R] {
		return &mapInputPass[F, E, R]{inner: c.Start(), f: f}
	})
}

type mapInputPass[F, E, R any] struct {
	inner Pass[E, R]
	f     func(F) E
}

func (p *mapInputPass[F, E, R]) Next(elem F, index int) { p.inner.Next(p.f(elem), index) }
func (p *mapInputPass[F, E, R]) Escape(index int) bool  { return p.inner.Escape(index) }
func (p *mapInputPass[F, E, R]) Result(index int) R     { return p.inner.Result(index) }
