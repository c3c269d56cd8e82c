// SPDX-License-Identifier: Apache-2.0

package fold

import "slices"

// Combine runs several collectors over the same input in a single pass and
// returns their results in order.
//
// Every element and index is fed to every collector until that collector
// escapes, so each result is the one the collector would give on its own.
// The combined collector escapes once all of its components have escaped.
//
// Example:
//
//	both := fold.Combine(collectors.Sum[int](), collectors.Product[int]())
//	fold.CollectSlice([]int{1, 2, 3}, both) // [6 6]
func Combine[E, R any](cs ...Collector[E, R]) Collector[E, []R] {
	return CombineWith(func(rs []R) []R { return rs }, cs...)
}

// CombineWith is like [Combine], but merges the component results with
// combine.
func CombineWith[E, R, T any](combine func([]R) T, cs ...Collector[E, R]) Collector[E, T] {
	cs = slices.Clone(cs)
	return collectorFunc[E, T](func() Pass[E, T] {
		members := make([]member[E, R], len(cs))
		for i, c := range cs {
			members[i] = member[E, R]{pass: c.Start()}
		}
		return &combinePass[E, R, T]{members: members, combine: combine}
	})
}

// member is one component of a combined collector. Once its pass escapes it
// receives no more elements, and its result stays the one at the escape.
type member[E, R any] struct {
	pass Pass[E, R]
	done bool
	end  int
}

func (m *member[E, R]) next(elem E, index int) {
	if m.done {
		return
	}
	if m.pass.Escape(index) {
		m.done, m.end = true, index
		return
	}
	m.pass.Next(elem, index)
}

func (m *member[E, R]) escape(index int) bool {
	return m.done || m.pass.Escape(index)
}

func (m *member[E, R]) result(index int) R {
	if m.done {
		return m.pass.Result(m.end)
	}
	return m.pass.Result(index)
}

type combinePass[E, R, T any] struct {
	members []member[E, R]
	combine func([]R) T
}

func (p *combinePass[E, R, T]) Next(elem E, index int) {
	for i := range p.members {
		p.members[i].next(elem, index)
	}
}

func (p *combinePass[E, R, T]) Escape(index int) bool {
	for i := range p.members {
		if !p.members[i].escape(index) {
			return false
		}
	}
	return true
}

func (p *combinePass[E, R, T]) Result(index int) T {
	results := make([]R, len(p.members))
	for i := range p.members {
		results[i] = p.members[i].result(index)
	}
	return p.combine(results)
}

// Combine2 runs two collectors with different result types over the same
// input in a single pass.
//
// Example:
//
//	stats := fold.Combine2(
//	    collectors.Histogram[string](collectors.Top, 5),
//	    collectors.RangeBy(func(s string) int { return len(s) }),
//	)
func Combine2[E, A, B any](a Collector[E, A], b Collector[E, B]) Collector[E, Pair[A, B]] {
	return collectorFunc[E, Pair[A, B]](func() Pass[E, Pair[A, B]] {
		return &combine2Pass[E, A, B]{a: member[E, A]{pass: a.Start()}, b: member[E, B]{pass: b.Start()}}
	})
}

type combine2Pass[E, A, B any] struct {
	a member[E, A]
	b member[E, B]
}

func (p *combine2Pass[E, A, B]) Next(elem E, index int) {
	p.a.next(elem, index)
	p.b.next(elem, index)
}

func (p *combine2Pass[E, A, B]) Escape(index int) bool {
	return p.a.escape(index) && p.b.escape(index)
}

func (p *combine2Pass[E, A, B]) Result(index int) Pair[A, B] {
	return Pair[A, B]{First: p.a.result(index), Second: p.b.result(index)}
}

// Combine3 runs three collectors with different result types over the same
// input in a single pass.
func Combine3[E, A, B, C any](
	a Collector[E, A],
	b Collector[E, B],
	c Collector[E, C],
) Collector[E, Triple[A, B, C]] {
	return collectorFunc[E, Triple[A, B, C]](func() Pass[E, Triple[A, B, C]] {
		return &combine3Pass[E, A, B, C]{
			a: member[E, A]{pass: a.Start()},
			b: member[E, B]{pass: b.Start()},
			c: member[E, C]{pass: c.Start()},
		}
	})
}

type combine3Pass[E, A, B, C any] struct {
	a member[E, A]
	b member[E, B]
	c member[E, C]
}

func (p *combine3Pass[E, A, B, C]) Next(elem E, index int) {
	p.a.next(elem, index)
	p.b.next(elem, index)
	p.c.next(elem, index)
}

func (p *combine3Pass[E, A, B, C]) Escape(index int) bool {
	return p.a.escape(index) && p.b.escape(index) && p.c.escape(index)
}

func (p *combine3Pass[E, A, B, C]) Result(index int) Triple[A, B, C] {
	return Triple[A, B, C]{
		First:  p.a.result(index),
		Second: p.b.result(index),
		Third:  p.c.result(index),
	}
}

// Pipe chains two collectors: after every input element, the current result
// of first is fed as one element to second.
//
// second therefore sees one element per input element, not one per batch.
// The chain escapes as soon as either collector escapes, and ignores any
// element fed after that.
//
// Example:
//
//	// running maximum of the running sum
//	peak := fold.Pipe(collectors.Sum[int](), collectors.Max[int]())
func Pipe[E, M, R any](first Collector[E, M], second Collector[M, R]) Collector[E, R] {
	return collectorFunc[E, R](func() Pass[E, R] {
		return &pipePass[E, M, R]{first: first.Start(), second: second.Start()}
	})
}

type pipePass[E, M, R any] struct {
	first  Pass[E, M]
	second Pass[M, R]
	done   bool
	end    int
}

func (p *pipePass[E, M, R]) Next(elem E, index int) {
	if p.done {
		return
	}
	if p.Escape(index) {
		p.done, p.end = true, index
		return
	}
	p.first.Next(elem, index)
	p.second.Next(p.first.Result(index+1), index)
}

func (p *pipePass[E, M, R]) Escape(index int) bool {
	return p.done || p.first.Escape(index) || p.second.Escape(index)
}

func (p *pipePass[E, M, R]) Result(index int) R {
	if p.done {
		return p.second.Result(p.end)
	}
	return p.second.Result(index)
}
