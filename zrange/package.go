// Copyright 2023 The morton (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package zrange decomposes axis-aligned rectangles of the Morton
// coordinate space into the contiguous runs of Morton keys that
// exactly cover them.
//
// A rectangle's corner keys bound every key inside it, but a single
// scan from the minimum corner key to the maximum corner key also
// visits many points outside the rectangle, because the Z-order curve
// leaves and re-enters the rectangle repeatedly. The intervals produced
// by this package cover precisely the keys of the points within the
// rectangle, so a store sorted by Morton key can answer a rectangle
// query with one range scan per interval and no filtering.
package zrange
