// Copyright 2023 The morton (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package zrange

import (
	"sort"

	"github.com/gogama/morton"
)

// A frontier is the stack of candidate key ranges still to be examined
// during a decomposition. Each candidate is the key range spanned by a
// sub-rectangle of the query rectangle, with Start and End being the
// keys of its minimum and maximum corners.
//
// The depth of the stack never exceeds 2*morton.Bits+1 because each
// split pushes two children in place of one parent, and the keys of
// each child share a longer common prefix than the keys of the parent.
type frontier []Interval

func (f *frontier) push(iv Interval) {
	*f = append(*f, iv)
}

func (f *frontier) pop() Interval {
	old := *f
	n := len(old)
	iv := old[n-1]
	*f = old[0 : n-1]
	return iv
}

// seed returns a frontier containing the key range spanned by the
// rectangle having p1 and p2 as opposite corners.
func seed(p1, p2 morton.Point) frontier {
	r := morton.NewRect(p1, p2)
	lo, hi := r.Keys()
	f := make(frontier, 1, 2*morton.Bits+1)
	f[0] = Interval{Start: lo, End: hi}
	return f
}

// next pops candidates from the frontier, splitting them as needed,
// until it finds one that is a contiguous block of keys. It returns
// false if the frontier is exhausted.
//
// The upper half of a split is pushed before the lower half, so blocks
// are found in ascending key order.
func (f *frontier) next() (Interval, bool) {
	for len(*f) > 0 {
		iv := f.pop()
		if iv.Start == iv.End || contiguous(iv.Start, iv.End) {
			return iv, true
		}
		litMax, bigMin := split(iv.Start, iv.End)
		f.push(Interval{Start: bigMin, End: iv.End})
		f.push(Interval{Start: iv.Start, End: litMax})
	}
	return Interval{}, false
}

// Decompose returns the intervals of Morton keys that together cover
// exactly the points of the rectangle having p1 and p2 as opposite
// corners. The corners may be given in any order.
//
// Each interval is a complete, aligned block of the Z-order curve, no
// two intervals overlap, and the intervals are returned in ascending
// key order. Two consecutive intervals may be adjacent; use Coalesce
// to merge them if the fewest possible intervals are wanted.
//
// To consume the intervals one at a time without materializing the
// whole list, use NewIterator.
func Decompose(p1, p2 morton.Point) Intervals {
	f := seed(p1, p2)
	ivs := make(Intervals, 0, 8)
	for {
		iv, ok := f.next()
		if !ok {
			return ivs
		}
		ivs = append(ivs, iv)
	}
}

// Points returns every point in the rectangle having p1 and p2 as
// opposite corners, in ascending order of Morton key.
//
// Points is intended for small rectangles. The returned slice holds one
// element per point in the rectangle, up to 2^32 elements.
func Points(p1, p2 morton.Point) []morton.Point {
	r := morton.NewRect(p1, p2)
	p := make([]morton.Point, 0, r.Area())
	for _, iv := range Decompose(p1, p2) {
		p = iv.appendPoints(p)
	}
	return p
}

// Coalesce sorts ivs by Interval.Start and merges overlapping or
// adjacent intervals in place, returning the shortened slice. The key
// set covered by the result is the same as that covered by ivs.
func Coalesce(ivs Intervals) Intervals {
	if len(ivs) < 2 {
		return ivs
	}
	sort.Sort(ivs)
	out := ivs[:1]
	for _, iv := range ivs[1:] {
		last := &out[len(out)-1]
		if uint64(iv.Start) <= uint64(last.End)+1 {
			if iv.End > last.End {
				last.End = iv.End
			}
		} else {
			out = append(out, iv)
		}
	}
	return out
}
