// Copyright 2023 The morton (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package morton

import "strconv"

// A Point is a position in the two-dimensional coordinate space
// addressed by Morton keys.
type Point struct {
	X uint16
	Y uint16
}

// FromKey returns the Point whose Morton key is k.
func FromKey(k uint32) Point {
	x, y := Decode(k)
	return Point{x, y}
}

// Key returns the Morton key of p.
func (p Point) Key() uint32 {
	return Encode(p.X, p.Y)
}

// String returns the point formatted as "(X,Y)".
func (p Point) String() string {
	b := make([]byte, 0, 13)
	b = append(b, '(')
	b = strconv.AppendUint(b, uint64(p.X), 10)
	b = append(b, ',')
	b = strconv.AppendUint(b, uint64(p.Y), 10)
	b = append(b, ')')
	return string(b)
}
