// SPDX-License-Identifier: Apache-2.0

package seq_test

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/sam-fredrickson/fold/seq"
)

// counter is an iterable over 0, 1, 2, ... up to n (forever if n < 0) that
// counts pulls and stops.
type counter struct {
	n       int
	pulled  atomic.Int64
	stopped atomic.Int64
}

func (p *counter) Iterator() seq.Iterator[int] {
	return &counterIterator{p: p}
}

type counterIterator struct {
	p   *counter
	pos int
}

func (it *counterIterator) Next() (int, bool) {
	if it.p.n >= 0 && it.pos >= it.p.n {
		return 0, false
	}
	it.p.pulled.Add(1)
	v := it.pos
	it.pos++
	return v, true
}

func (it *counterIterator) Stop() { it.p.stopped.Add(1) }

// wrap builds a sequence over p.
func wrap(p *counter) seq.Iter[int] {
	it, err := seq.Wrap[int](p)
	if err != nil {
		panic(err)
	}
	return it
}

// failing is an asynchronous iterable producing 0 .. failAt-1 and then err.
type failing struct {
	failAt int
	err    error
}

func (f failing) AsyncIterator() seq.AsyncIterator[int] {
	return &failingIterator{f: f}
}

type failingIterator struct {
	f   failing
	pos int
}

func (it *failingIterator) Next(context.Context) (int, bool, error) {
	if it.pos >= it.f.failAt {
		return 0, false, it.f.err
	}
	v := it.pos
	it.pos++
	return v, true, nil
}

// slow is an asynchronous iterable of n elements that tracks how many pulls
// are in flight at once.
type slow struct {
	n        int
	wait     time.Duration
	inFlight *atomic.Int64
	peak     *atomic.Int64
}

func (s slow) AsyncIterator() seq.AsyncIterator[int] {
	return &slowIterator{s: s}
}

type slowIterator struct {
	s   slow
	pos int
}

func (it *slowIterator) Next(ctx context.Context) (int, bool, error) {
	if it.pos >= it.s.n {
		return 0, false, nil
	}
	current := it.s.inFlight.Add(1)
	defer it.s.inFlight.Add(-1)
	for {
		peak := it.s.peak.Load()
		if current <= peak || it.s.peak.CompareAndSwap(peak, current) {
			break
		}
	}
	if err := seq.Sleep(ctx, it.s.wait); err != nil {
		return 0, false, err
	}
	v := it.pos
	it.pos++
	return v, true, nil
}
