// SPDX-License-Identifier: Apache-2.0

package seq

import "slices"

// Sliding emits windows of size elements, starting a new window every step
// elements.
//
// When step is smaller than size, consecutive windows overlap. When it is
// larger, the elements in between are skipped. The final partial window is
// emitted only if it holds more than size-step elements, so that it never
// repeats only elements already emitted. Sliding panics unless size and step
// are positive.
//
// Example:
//
//	seq.Sliding(seq.Range(0, 9, 1), 3, 1).ToSlice()
//	// [[0 1 2] [1 2 3] [2 3 4] [3 4 5] [4 5 6] [5 6 7] [6 7 8]]
func Sliding[T any](it Iter[T], size, step int) Iter[[]T] {
	if size <= 0 || step <= 0 {
		panic("seq: Sliding requires a positive size and step")
	}
	if it.IsEmpty() {
		return Iter[[]T]{}
	}
	return derive(func() Iterator[[]T] {
		return &slidingIterator[T]{src: it.Iterator(), size: size, step: step}
	})
}

// Chunk splits the sequence into consecutive slices of n elements. The last
// chunk may be shorter.
func Chunk[T any](it Iter[T], n int) Iter[[]T] {
	return Sliding(it, n, n)
}

type slidingIterator[T any] struct {
	src  Iterator[T]
	size int
	step int
	buf  []T
	skip int
	done bool
}

func (s *slidingIterator[T]) Next() ([]T, bool) {
	for !s.done {
		v, ok := s.src.Next()
		if !ok {
			s.done = true
			if len(s.buf) > 0 && len(s.buf) > s.size-s.step {
				out := s.buf
				s.buf = nil
				return out, true
			}
			break
		}
		if s.skip > 0 {
			s.skip--
			continue
		}
		s.buf = append(s.buf, v)
		if len(s.buf) < s.size {
			continue
		}
		out := slices.Clone(s.buf)
		if s.step < s.size {
			s.buf = s.buf[:copy(s.buf, s.buf[s.step:])]
		} else {
			s.buf = s.buf[:0]
			s.skip = s.step - s.size
		}
		return out, true
	}
	return nil, false
}

func (s *slidingIterator[T]) Stop() { stop(s.src) }

// Repeat emits the sequence times times in a row, or forever if times is not
// positive. A source that yields nothing ends the repetition at once.
func (it Iter[T]) Repeat(times int) Iter[T] {
	if it.IsEmpty() {
		return it
	}
	return derive(func() Iterator[T] {
		return &repeatIterator[T]{src: it, times: times}
	})
}

type repeatIterator[T any] struct {
	src    Iterable[T]
	times  int
	rounds int
	cur    Iterator[T]
	got    bool
	done   bool
}

func (r *repeatIterator[T]) Next() (T, bool) {
	for !r.done {
		if r.cur == nil {
			if r.times > 0 && r.rounds >= r.times {
				r.done = true
				break
			}
			r.cur = r.src.Iterator()
			r.rounds++
			r.got = false
		}
		if v, ok := r.cur.Next(); ok {
			r.got = true
			return v, true
		}
		stop(r.cur)
		r.cur = nil
		if !r.got {
			r.done = true
		}
	}
	var zero T
	return zero, false
}

func (r *repeatIterator[T]) Stop() {
	if r.cur != nil {
		stop(r.cur)
		r.cur = nil
	}
	r.done = true
}
