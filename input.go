// SPDX-License-Identifier: Apache-2.0

package fold

import "github.com/sam-fredrickson/fold/internal/ring"

// forward feeds accepted elements to an inner pass under a virtual index that
// counts accepted elements only. Nothing is fed once the inner pass escapes.
type forward[E, R any] struct {
	inner   Pass[E, R]
	virtual int
}

func (f *forward[E, R]) push(elem E) {
	if f.inner.Escape(f.virtual) {
		return
	}
	f.inner.Next(elem, f.virtual)
	f.virtual++
}

func (f *forward[E, R]) Escape(int) bool { return f.inner.Escape(f.virtual) }
func (f *forward[E, R]) Result(int) R    { return f.inner.Result(f.virtual) }

// FilterInput passes only the elements satisfying pred on to c.
//
// pred sees the index of the element in the incoming input, before any
// filtering. c sees a virtual index that counts the accepted elements only,
// so index-dependent collectors behave as if the rejected elements never
// existed.
func FilterInput[E, R any](c Collector[E, R], pred Pred[E]) Collector[E, R] {
	return collectorFunc[E, R](func() Pass[E, R] {
		return &filterPass[E, R]{forward: forward[E, R]{inner: c.Start()}, pred: pred}
	})
}

type filterPass[E, R any] struct {
	forward[E, R]
	pred Pred[E]
}

func (p *filterPass[E, R]) Next(elem E, index int) {
	if p.pred(elem, index) {
		p.push(elem)
	}
}

// TakeInput passes at most the first n elements on to c, then escapes.
func TakeInput[E, R any](c Collector[E, R], n int) Collector[E, R] {
	return collectorFunc[E, R](func() Pass[E, R] {
		return &takePass[E, R]{forward: forward[E, R]{inner: c.Start()}, n: n}
	})
}

type takePass[E, R any] struct {
	forward[E, R]
	n int
}

func (p *takePass[E, R]) Next(elem E, _ int) {
	if p.virtual < p.n {
		p.push(elem)
	}
}

func (p *takePass[E, R]) Escape(index int) bool {
	return p.virtual >= p.n || p.forward.Escape(index)
}

// DropInput skips the first n elements and passes the rest on to c.
func DropInput[E, R any](c Collector[E, R], n int) Collector[E, R] {
	return FilterInput(c, func(_ E, index int) bool {
		return index >= n
	})
}

// TakeLastInput passes only the last n elements on to c.
//
// The elements are buffered and replayed into a fresh pass of c whenever the
// result is requested, so c sees nothing until the end of the input.
func TakeLastInput[E, R any](c Collector[E, R], n int) Collector[E, R] {
	return collectorFunc[E, R](func() Pass[E, R] {
		return &takeLastPass[E, R]{c: c, buf: ring.New[E](n)}
	})
}

type takeLastPass[E, R any] struct {
	c   Collector[E, R]
	buf *ring.Buffer[E]
}

func (p *takeLastPass[E, R]) Next(elem E, _ int) { p.buf.Push(elem) }
func (p *takeLastPass[E, R]) Escape(int) bool    { return false }

func (p *takeLastPass[E, R]) Result(int) R {
	inner := p.c.Start()
	index := 0
	for elem := range p.buf.All() {
		inner.Next(elem, index)
		index++
		if inner.Escape(index) {
			break
		}
	}
	return inner.Result(index)
}

// DropLastInput passes all but the last n elements on to c.
//
// Elements are held back in a buffer of size n, and an element reaches c only
// once n newer elements have arrived.
func DropLastInput[E, R any](c Collector[E, R], n int) Collector[E, R] {
	return collectorFunc[E, R](func() Pass[E, R] {
		return &dropLastPass[E, R]{forward: forward[E, R]{inner: c.Start()}, buf: ring.New[E](n)}
	})
}

type dropLastPass[E, R any] struct {
	forward[E, R]
	buf *ring.Buffer[E]
}

func (p *dropLastPass[E, R]) Next(elem E, _ int) {
	if evicted, ok := p.buf.Push(elem); ok {
		p.push(evicted)
	}
}

// TakeWhileInput passes elements on to c as long as pred holds.
//
// The first element failing pred ends the input for good: later elements are
// blocked even if they satisfy pred.
func TakeWhileInput[E, R any](c Collector[E, R], pred Pred[E]) Collector[E, R] {
	return collectorFunc[E, R](func() Pass[E, R] {
		return &takeWhilePass[E, R]{forward: forward[E, R]{inner: c.Start()}, pred: pred}
	})
}

type takeWhilePass[E, R any] struct {
	forward[E, R]
	pred Pred[E]
	done bool
}

func (p *takeWhilePass[E, R]) Next(elem E, index int) {
	if p.done {
		return
	}
	if !p.pred(elem, index) {
		p.done = true
		return
	}
	p.push(elem)
}

func (p *takeWhilePass[E, R]) Escape(index int) bool {
	return p.done || p.forward.Escape(index)
}

// DropWhileInput skips elements as long as pred holds, then passes every
// remaining element on to c, whether or not it satisfies pred.
func DropWhileInput[E, R any](c Collector[E, R], pred Pred[E]) Collector[E, R] {
	return collectorFunc[E, R](func() Pass[E, R] {
		return &dropWhilePass[E, R]{forward: forward[E, R]{inner: c.Start()}, pred: pred}
	})
}

type dropWhilePass[E, R any] struct {
	forward[E, R]
	pred    Pred[E]
	passing bool
}

func (p *dropWhilePass[E, R]) Next(elem E, index int) {
	if !p.passing {
		if p.pred(elem, index) {
			return
		}
		p.passing = true
	}
	p.push(elem)
}

// DistinctInput passes only the first occurrence of each element on to c.
func DistinctInput[E comparable, R any](c Collector[E, R]) Collector[E, R] {
	return DistinctByInput(c, func(e E) E { return e })
}

// DistinctByInput passes on to c only the first element for each key.
func DistinctByInput[E any, K comparable, R any](c Collector[E, R], key func(E) K) Collector[E, R] {
	return collectorFunc[E, R](func() Pass[E, R] {
		return &distinctPass[E, K, R]{
			forward: forward[E, R]{inner: c.Start()},
			key:     key,
			seen:    make(map[K]struct{}),
		}
	})
}

type distinctPass[E any, K comparable, R any] struct {
	forward[E, R]
	key  func(E) K
	seen map[K]struct{}
}

func (p *distinctPass[E, K, R]) Next(elem E, _ int) {
	k := p.key(elem)
	if _, ok := p.seen[k]; ok {
		return
	}
	p.seen[k] = struct{}{}
	p.push(elem)
}

// FilterChangedInput drops elements equal to the element directly before them
// in the input.
func FilterChangedInput[E comparable, R any](c Collector[E, R]) Collector[E, R] {
	return FilterChangedByInput(c, func(a, b E) bool { return a == b })
}

// FilterChangedByInput drops elements that eq considers equal to the element
// directly before them in the input.
//
// The comparison is against the previous input element, not the previous
// element passed on: with an always-true eq, only the first element passes.
func FilterChangedByInput[E, R any](c Collector[E, R], eq func(prev, elem E) bool) Collector[E, R] {
	return collectorFunc[E, R](func() Pass[E, R] {
		return &changedPass[E, R]{forward: forward[E, R]{inner: c.Start()}, eq: eq}
	})
}

type changedPass[E, R any] struct {
	forward[E, R]
	eq      func(prev, elem E) bool
	prev    E
	hasPrev bool
}

func (p *changedPass[E, R]) Next(elem E, _ int) {
	same := p.hasPrev && p.eq(p.prev, elem)
	p.prev, p.hasPrev = elem, true
	if !same {
		p.push(elem)
	}
}

// SampleInput passes every nth element on to c, starting with the first.
//
// SampleInput panics if n is not positive.
func SampleInput[E, R any](c Collector[E, R], n int) Collector[E, R] {
	if n <= 0 {
		panic("fold.SampleInput: n must be positive")
	}
	return FilterInput(c, func(_ E, index int) bool {
		return index%n == 0
	})
}
