// Copyright 2023 The morton (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package morton provides a Morton-order (Z-order curve) codec for
// two-dimensional points whose coordinates are 16-bit unsigned
// integers, packing each point into a single 32-bit key.
//
// Subpackage zrange decomposes a rectangular query region into the
// contiguous key intervals needed to scan a key-sorted store, and
// subpackage zset provides a sorted, duplicate-free in-memory index of
// Morton keys addressed by point.
package morton
