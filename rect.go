// Copyright 2023 The morton (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package morton

// A Rect is an axis-aligned rectangle of points. Both corners are
// included in the rectangle, so a Rect always contains at least one
// point provided Min is less than or equal to Max on both axes.
type Rect struct {
	Min Point
	Max Point
}

// NewRect returns the rectangle having p1 and p2 as opposite corners.
// The corners may be given in any order.
func NewRect(p1, p2 Point) Rect {
	r := Rect{p1, p1}
	r.ExpandXY(p2.X, p2.Y)
	return r
}

// Width returns the number of distinct X-coordinates in the rectangle.
func (r *Rect) Width() uint32 {
	return uint32(r.Max.X) - uint32(r.Min.X) + 1
}

// Height returns the number of distinct Y-coordinates in the rectangle.
func (r *Rect) Height() uint32 {
	return uint32(r.Max.Y) - uint32(r.Min.Y) + 1
}

// Area returns the number of points in the rectangle.
func (r *Rect) Area() uint64 {
	return uint64(r.Width()) * uint64(r.Height())
}

// Keys returns the Morton keys of the rectangle's minimum and maximum
// corners. Every point in the rectangle has a key between the two,
// inclusive, but in general not every key between the two belongs to a
// point in the rectangle.
func (r *Rect) Keys() (min, max uint32) {
	return r.Min.Key(), r.Max.Key()
}

// Contains reports whether the point p lies within the rectangle.
func (r *Rect) Contains(p Point) bool {
	return r.Min.X <= p.X && p.X <= r.Max.X &&
		r.Min.Y <= p.Y && p.Y <= r.Max.Y
}

// ContainsKey reports whether the point with Morton key k lies within
// the rectangle.
func (r *Rect) ContainsKey(k uint32) bool {
	return r.Contains(FromKey(k))
}

// Expand grows the rectangle, if necessary, so that it contains c.
func (r *Rect) Expand(c *Rect) {
	r.ExpandXY(c.Min.X, c.Min.Y)
	r.ExpandXY(c.Max.X, c.Max.Y)
}

// ExpandXY grows the rectangle, if necessary, so that it contains the
// point (x, y).
func (r *Rect) ExpandXY(x, y uint16) {
	if x < r.Min.X {
		r.Min.X = x
	}
	if y < r.Min.Y {
		r.Min.Y = y
	}
	if x > r.Max.X {
		r.Max.X = x
	}
	if y > r.Max.Y {
		r.Max.Y = y
	}
}

// String returns the rectangle formatted as "[(MinX,MinY),(MaxX,MaxY)]".
func (r Rect) String() string {
	return "[" + r.Min.String() + "," + r.Max.String() + "]"
}
