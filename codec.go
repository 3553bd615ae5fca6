// Copyright 2023 The morton (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package morton

const (
	// Bits is the number of bits in each coordinate of a Point. A Morton
	// key holds 2*Bits bits.
	Bits = 16
	// MaxCoord is the largest X- or Y-coordinate representable.
	MaxCoord = (1 << Bits) - 1
	// MaxKey is the largest Morton key, the key of Point{MaxCoord,
	// MaxCoord}.
	MaxKey = ^uint32(0)
)

// Masks used to spread the bits of a 16-bit coordinate apart so that
// they occupy every other bit of a 32-bit word, and to gather them back
// together again. Each mask is named for the width of the runs of set
// bits it contains. Spreading a coordinate applies them from widest to
// narrowest: after the step using spread8 the coordinate's two bytes
// are 8 bits apart, after spread4 its four nibbles are 4 bits apart,
// and so on until, after spread1, each bit is in an even position.
// Gathering applies the same masks in the opposite order.
const (
	spread16 uint32 = 0x0000FFFF // 0000 0000 0000 0000 1111 1111 1111 1111
	spread8  uint32 = 0x00FF00FF // 0000 0000 1111 1111 0000 0000 1111 1111
	spread4  uint32 = 0x0F0F0F0F // 0000 1111 0000 1111 0000 1111 0000 1111
	spread2  uint32 = 0x33333333 // 0011 0011 0011 0011 0011 0011 0011 0011
	spread1  uint32 = 0x55555555 // 0101 0101 0101 0101 0101 0101 0101 0101
)

// Encode returns the Morton key of the point (x, y). The bits of x are
// placed in the even bit positions of the key and the bits of y in the
// odd bit positions, so bit i of x becomes key bit 2i and bit i of y
// becomes key bit 2i+1.
func Encode(x, y uint16) uint32 {
	return spread(uint32(x)) | spread(uint32(y))<<1
}

// Decode returns the point whose Morton key is k. Decode is the inverse
// of Encode.
func Decode(k uint32) (x, y uint16) {
	return uint16(gather(k)), uint16(gather(k >> 1))
}

// spread moves bit i of the low 16 bits of v to bit 2i.
func spread(v uint32) uint32 {
	v &= spread16
	v = (v | v<<8) & spread8
	v = (v | v<<4) & spread4
	v = (v | v<<2) & spread2
	v = (v | v<<1) & spread1
	return v
}

// gather moves bit 2i of v to bit i, discarding the odd bits.
func gather(v uint32) uint32 {
	v &= spread1
	v = (v ^ v>>1) & spread2
	v = (v ^ v>>2) & spread4
	v = (v ^ v>>4) & spread8
	v = (v ^ v>>8) & spread16
	return v
}
