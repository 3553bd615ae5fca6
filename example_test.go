// Copyright 2023 The morton (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package morton_test

import (
	"fmt"

	"github.com/gogama/morton"
)

func ExampleEncode() {
	k := morton.Encode(3, 5)

	fmt.Printf("%d %#b\n", k, k)
	// Output: 39 0b100111
}

func ExampleDecode() {
	x, y := morton.Decode(39)

	fmt.Println(x, y)
	// Output: 3 5
}

func ExampleNewRect() {
	r := morton.NewRect(morton.Point{X: 7, Y: 1}, morton.Point{X: 2, Y: 4})
	min, max := r.Keys()

	fmt.Println(r, r.Area(), min, max)
	// Output: [(2,1),(7,4)] 24 6 53
}
