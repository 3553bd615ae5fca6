// Copyright 2023 The morton (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package zrange

const packageName = "zrange: "

func textPanic(text string) {
	panic(packageName + text)
}
