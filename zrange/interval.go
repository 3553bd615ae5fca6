// Copyright 2023 The morton (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package zrange

import (
	"strconv"

	"github.com/gogama/morton"
)

// An Interval is a run of consecutive Morton keys. Both Start and End
// are included in the run, which allows an Interval to reach the
// largest key, morton.MaxKey.
type Interval struct {
	// Start is the first key in the interval.
	Start uint32
	// End is the last key in the interval. It is never less than
	// Start.
	End uint32
}

// Len returns the number of keys in the interval.
func (iv Interval) Len() uint64 {
	return uint64(iv.End) - uint64(iv.Start) + 1
}

// Contains reports whether the key k lies within the interval.
func (iv Interval) Contains(k uint32) bool {
	return iv.Start <= k && k <= iv.End
}

// Points returns the points whose keys lie within the interval, in
// ascending key order.
func (iv Interval) Points() []morton.Point {
	return iv.appendPoints(make([]morton.Point, 0, iv.Len()))
}

func (iv Interval) appendPoints(p []morton.Point) []morton.Point {
	for k := iv.Start; ; k++ {
		p = append(p, morton.FromKey(k))
		if k == iv.End {
			return p
		}
	}
}

// String returns the interval formatted as "[Start,End]".
func (iv Interval) String() string {
	b := make([]byte, 0, 23)
	b = append(b, '[')
	b = strconv.AppendUint(b, uint64(iv.Start), 10)
	b = append(b, ',')
	b = strconv.AppendUint(b, uint64(iv.End), 10)
	b = append(b, ']')
	return string(b)
}

// Intervals is a slice of Interval structures which implements
// sort.Interface. The sort.Sort function will sort Intervals in
// ascending order of Interval.Start.
type Intervals []Interval

// Len returns the length of the slice. It implements the corresponding
// method of sort.Interface.
func (ivs Intervals) Len() int {
	return len(ivs)
}

// Less establishes an ordering by ascending Interval.Start. It
// implements the corresponding method of sort.Interface.
func (ivs Intervals) Less(i, j int) bool {
	return ivs[i].Start < ivs[j].Start
}

// Swap swaps two elements of the slice. It implements the
// corresponding method of sort.Interface.
func (ivs Intervals) Swap(i, j int) {
	ivs[i], ivs[j] = ivs[j], ivs[i]
}

// Count returns the total number of keys in all intervals.
func (ivs Intervals) Count() uint64 {
	var n uint64
	for _, iv := range ivs {
		n += iv.Len()
	}
	return n
}

// Contains reports whether the key k lies within any of the
// intervals.
func (ivs Intervals) Contains(k uint32) bool {
	for _, iv := range ivs {
		if iv.Contains(k) {
			return true
		}
	}
	return false
}
