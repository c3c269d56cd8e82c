// SPDX-License-Identifier: Apache-2.0

package seq

import "github.com/sam-fredrickson/fold"

// PatchWhere rewrites the sequence around every element matching pred.
//
// At a match, the elements produced by insert for that element are emitted,
// then removeCount elements starting at the match are skipped. Elements
// skipped this way are never tested against pred. With a removeCount of 0,
// the matching element itself is kept after the inserted ones. insert may be
// nil. If maxApplications is positive, only that many matches are patched.
//
// pred sees source indices.
//
// Example:
//
//	s := seq.Of(0, 1, 5, 2)
//	s.PatchWhere(fold.Where(func(v int) bool { return v%2 == 0 }), 1, nil, 0)
//	// [1 5]
//	s.PatchWhere(fold.Where(func(v int) bool { return v%2 == 0 }), 0,
//	    func(int, int) seq.Iterable[int] { return seq.Of(10, 11) }, 0)
//	// [10 11 0 1 5 10 11 2]
func (it Iter[T]) PatchWhere(
	pred fold.Pred[T],
	removeCount int,
	insert func(elem T, index int) Iterable[T],
	maxApplications int,
) Iter[T] {
	if it.IsEmpty() {
		return it
	}
	return derive(func() Iterator[T] {
		return newPatchIterator(it.Iterator(), pred, removeCount, insert, maxApplications)
	})
}

func newPatchIterator[T any](
	src Iterator[T],
	pred fold.Pred[T],
	removeCount int,
	insert func(T, int) Iterable[T],
	maxApplications int,
) *patchIterator[T] {
	return &patchIterator[T]{
		src:     src,
		patcher: newPatcher(pred, removeCount, insert, maxApplications),
	}
}

// patcher is the state machine shared by the synchronous and asynchronous
// patch iterators. Source elements go in through accept, and drain yields
// the elements that are due before the next source element.
type patcher[T any] struct {
	pred    fold.Pred[T]
	remove  int
	insert  func(T, int) Iterable[T]
	max     int
	index   int
	applied int
	skip    int
	pending Iterator[T]
	held    T
	hasHeld bool
}

func newPatcher[T any](pred fold.Pred[T], removeCount int, insert func(T, int) Iterable[T], maxApplications int) patcher[T] {
	return patcher[T]{pred: pred, remove: removeCount, insert: insert, max: maxApplications}
}

// drain returns the next inserted or held element, if any.
func (p *patcher[T]) drain() (T, bool) {
	var zero T
	if p.pending != nil {
		if v, ok := p.pending.Next(); ok {
			return v, true
		}
		stop(p.pending)
		p.pending = nil
	}
	if p.hasHeld {
		v := p.held
		p.held, p.hasHeld = zero, false
		return v, true
	}
	return zero, false
}

// accept takes the next source element and reports whether it passes
// through unchanged.
func (p *patcher[T]) accept(v T) bool {
	i := p.index
	p.index++
	if p.skip > 0 {
		p.skip--
		return false
	}
	if (p.max > 0 && p.applied >= p.max) || !p.pred(v, i) {
		return true
	}
	p.applied++
	if p.remove > 0 {
		p.skip = p.remove - 1
	} else {
		p.held, p.hasHeld = v, true
	}
	if p.insert != nil {
		if ins := p.insert(v, i); ins != nil {
			p.pending = ins.Iterator()
		}
	}
	return false
}

func (p *patcher[T]) release() {
	if p.pending != nil {
		stop(p.pending)
		p.pending = nil
	}
}

type patchIterator[T any] struct {
	patcher[T]
	src  Iterator[T]
	done bool
}

func (p *patchIterator[T]) Next() (T, bool) {
	for {
		if v, ok := p.drain(); ok {
			return v, true
		}
		if p.done {
			var zero T
			return zero, false
		}
		v, ok := p.src.Next()
		if !ok {
			p.done = true
			continue
		}
		if p.accept(v) {
			return v, true
		}
	}
}

func (p *patchIterator[T]) Stop() {
	p.release()
	stop(p.src)
}

// PatchAt removes removeCount elements starting at index and emits the
// elements of insert in their place. A negative index patches before the
// first element, and an index past the end patches after the last one.
func (it Iter[T]) PatchAt(index, removeCount int, insert Iterable[T]) Iter[T] {
	if index < 0 {
		index = 0
	}
	return derive(func() Iterator[T] {
		return &patchAtIterator[T]{
			src:    it.Iterator(),
			at:     index,
			remove: removeCount,
			insert: insert,
		}
	})
}

type patchAtIterator[T any] struct {
	src     Iterator[T]
	at      int
	remove  int
	insert  Iterable[T]
	pos     int
	skip    int
	applied bool
	pending Iterator[T]
	done    bool
}

// apply starts emitting the inserted elements.
func (p *patchAtIterator[T]) apply() {
	p.applied = true
	if p.insert != nil {
		p.pending = p.insert.Iterator()
	}
}

func (p *patchAtIterator[T]) Next() (T, bool) {
	var zero T
	for {
		if p.pending != nil {
			if v, ok := p.pending.Next(); ok {
				return v, true
			}
			stop(p.pending)
			p.pending = nil
		}
		if p.done {
			return zero, false
		}
		if !p.applied && p.pos == p.at {
			p.skip = p.remove
			p.apply()
			continue
		}
		v, ok := p.src.Next()
		if !ok {
			p.done = true
			if !p.applied {
				p.apply()
			}
			continue
		}
		p.pos++
		if p.skip > 0 {
			p.skip--
			continue
		}
		return v, true
	}
}

func (p *patchAtIterator[T]) Stop() {
	if p.pending != nil {
		stop(p.pending)
		p.pending = nil
	}
	stop(p.src)
}

// PatchElem patches around every element equal to value. See
// [Iter.PatchWhere].
func PatchElem[T comparable](it Iter[T], value T, removeCount int, insert Iterable[T], maxApplications int) Iter[T] {
	var ins func(T, int) Iterable[T]
	if insert != nil {
		ins = func(T, int) Iterable[T] { return insert }
	}
	return it.PatchWhere(fold.Equals(value), removeCount, ins, maxApplications)
}

// FilterNot removes the elements matching pred.
func (it Iter[T]) FilterNot(pred fold.Pred[T]) Iter[T] {
	return it.PatchWhere(pred, 1, nil, 0)
}

// Filter keeps the elements matching pred.
func (it Iter[T]) Filter(pred fold.Pred[T]) Iter[T] {
	return it.FilterNot(fold.Not(pred))
}

// Intersperse emits the elements of sep between every two elements.
//
// Example:
//
//	seq.Of("a", "b", "c").Intersperse(seq.Of(",")).ToSlice() // [a , b , c]
func (it Iter[T]) Intersperse(sep Iterable[T]) Iter[T] {
	return it.PatchWhere(
		func(_ T, index int) bool { return index > 0 },
		0,
		func(T, int) Iterable[T] { return sep },
		0,
	)
}
