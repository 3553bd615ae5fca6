// Copyright 2023 The morton (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package zrange

import "github.com/gogama/morton"

// An Iterator produces the decomposition of a rectangle one interval at
// a time, computing each interval only when asked for it. It yields the
// same intervals, in the same order, as Decompose.
//
// An Iterator is single-use: once Next has returned false, create a new
// Iterator to decompose the rectangle again. Stopping before the end is
// always safe and needs no cleanup.
//
//	it := zrange.NewIterator(p1, p2)
//	for it.Next() {
//		iv := it.Interval()
//		// Scan keys iv.Start through iv.End, inclusive.
//	}
type Iterator struct {
	f     frontier
	iv    Interval
	valid bool
}

// NewIterator returns an Iterator over the decomposition of the
// rectangle having p1 and p2 as opposite corners. The corners may be
// given in any order.
func NewIterator(p1, p2 morton.Point) *Iterator {
	return &Iterator{f: seed(p1, p2)}
}

// Next advances the iterator to the next interval, which will then be
// available through Interval. It returns false when there are no more
// intervals.
func (it *Iterator) Next() bool {
	it.iv, it.valid = it.f.next()
	return it.valid
}

// Interval returns the interval found by the most recent call to Next.
// Panics if Next has not been called or if it returned false.
func (it *Iterator) Interval() Interval {
	if !it.valid {
		textPanic("no current interval (Next not called or returned false)")
	}
	return it.iv
}

// Remaining returns the intervals not yet produced by the iterator,
// consuming them.
func (it *Iterator) Remaining() Intervals {
	ivs := make(Intervals, 0, len(it.f))
	for it.Next() {
		ivs = append(ivs, it.iv)
	}
	return ivs
}
