// SPDX-License-Identifier: Apache-2.0

package fold

import "slices"

// PatchWhereInput searches the input of c for elements matching pred and
// splices them.
//
// On a match, the elements returned by insert (if insert is not nil) are
// passed on to c, and then removeCount elements starting at the matched one
// are skipped. With a removeCount of 0 the matched element itself is passed
// on after the inserted elements.
//
// Elements being skipped are not tested against pred. At most
// maxApplications matches are patched; zero or less means no limit.
//
// Example:
//
//	// replace every 0 by two 9s
//	patched := fold.PatchWhereInput(collectors.ToSlice[int](),
//	    fold.Equals(0), 1,
//	    func(int, int) []int { return []int{9, 9} },
//	    0,
//	)
func PatchWhereInput[E, R any](
	c Collector[E, R],
	pred Pred[E],
	removeCount int,
	insert func(elem E, index int) []E,
	maxApplications int,
) Collector[E, R] {
	return collectorFunc[E, R](func() Pass[E, R] {
		return &patchPass[E, R]{
			forward: forward[E, R]{inner: c.Start()},
			pred:    pred,
			remove:  removeCount,
			insert:  insert,
			max:     maxApplications,
		}
	})
}

type patchPass[E, R any] struct {
	forward[E, R]
	pred    Pred[E]
	remove  int
	insert  func(E, int) []E
	max     int
	applied int
	skip    int
}

func (p *patchPass[E, R]) Next(elem E, index int) {
	if p.skip > 0 {
		p.skip--
		return
	}
	if (p.max <= 0 || p.applied < p.max) && p.pred(elem, index) {
		p.applied++
		if p.insert != nil {
			for _, ins := range p.insert(elem, index) {
				p.push(ins)
			}
		}
		if p.remove > 0 {
			p.skip = p.remove - 1
			return
		}
	}
	p.push(elem)
}

// PatchElemInput is [PatchWhereInput] matching elements equal to value, with a
// fixed list of elements to insert.
func PatchElemInput[E comparable, R any](
	c Collector[E, R],
	value E,
	removeCount int,
	insert []E,
	maxApplications int,
) Collector[E, R] {
	var insertFn func(E, int) []E
	if len(insert) > 0 {
		insert = slices.Clone(insert)
		insertFn = func(E, int) []E { return insert }
	}
	return PatchWhereInput(c, Equals(value), removeCount, insertFn, maxApplications)
}

// PrependInput feeds values to c before any real input.
func PrependInput[E, R any](c Collector[E, R], values ...E) Collector[E, R] {
	values = slices.Clone(values)
	return collectorFunc[E, R](func() Pass[E, R] {
		p := &prependPass[E, R]{forward: forward[E, R]{inner: c.Start()}}
		for _, v := range values {
			p.push(v)
		}
		return p
	})
}

type prependPass[E, R any] struct {
	forward[E, R]
}

func (p *prependPass[E, R]) Next(elem E, _ int) { p.push(elem) }

// AppendInput feeds values to c after the real input ends.
//
// The values are fed when the result is requested. Because they are fed into
// the live pass, every call to Result feeds them again: requesting the result
// twice, as [Scan] does after every element, gives a different answer each
// time. Use AppendInput with [Collect] only.
func AppendInput[E, R any](c Collector[E, R], values ...E) Collector[E, R] {
	values = slices.Clone(values)
	return collectorFunc[E, R](func() Pass[E, R] {
		return &appendPass[E, R]{forward: forward[E, R]{inner: c.Start()}, values: values}
	})
}

type appendPass[E, R any] struct {
	forward[E, R]
	values []E
}

func (p *appendPass[E, R]) Next(elem E, _ int) { p.push(elem) }

func (p *appendPass[E, R]) Result(int) R {
	for _, v := range p.values {
		p.push(v)
	}
	return p.inner.Result(p.virtual)
}
