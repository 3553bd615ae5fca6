// Copyright 2023 The morton (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package zrange

import "math/bits"

// oddBits has every odd-numbered bit set, i.e. the bits that hold the
// Y-coordinate in a Morton key. Bit 31 is its most significant set bit,
// so oddBits>>n has the bit at position 31-n set along with every
// second bit below it: exactly the bits belonging to the same axis as
// bit 31-n.
const oddBits uint32 = 0xAAAAAAAA

// contiguous reports whether the key range [lo, hi] is one complete,
// aligned block of the Z-order curve. Where n is the number of low bits
// in which lo and hi may differ, this is the case when the low n bits
// of lo are all zero and the low n bits of hi are all one.
func contiguous(lo, hi uint32) bool {
	low := ^uint32(0) >> bits.LeadingZeros32(lo^hi)
	return lo&low == 0 && hi&low == low
}

// split divides the rectangle whose minimum and maximum corners have
// the Morton keys lo and hi into two smaller rectangles, cutting it
// across the axis owning the most significant bit in which lo and hi
// differ. It returns litMax, the key of the maximum corner of the lower
// rectangle, and bigMin, the key of the minimum corner of the upper
// rectangle. The lower rectangle is thus [lo, litMax] and the upper is
// [bigMin, hi].
//
// Let d be the first differing bit. The cut is at the coordinate whose
// prefix is shared by lo and hi and has bit d set with every lower bit
// of the same axis clear. The other axis is untouched by the cut, so:
//
//   - bigMin is lo with bit d set and the same-axis bits below d
//     cleared;
//   - litMax is hi with bit d cleared and the same-axis bits below d
//     set.
func split(lo, hi uint32) (litMax, bigMin uint32) {
	prefix := bits.LeadingZeros32(lo ^ hi)
	axis := oddBits >> prefix
	d := uint32(1) << (31 - prefix)
	bigMin = lo&^axis | d
	litMax = (hi | axis) &^ d
	return
}
