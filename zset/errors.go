// Copyright 2023 The morton (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package zset

import "errors"

const packageName = "zset: "

func textErr(text string) error {
	return errors.New(packageName + text)
}

func textPanic(text string) {
	panic(packageName + text)
}
