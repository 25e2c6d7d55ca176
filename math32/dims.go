// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Dims is a list of vector dimension (component) names
type Dims int32

const (
	X Dims = iota
	Y
	Z
)

var dimNames = [...]string{"X", "Y", "Z"}

func (d Dims) String() string {
	if d < 0 || int(d) >= len(dimNames) {
		return "Dims(?)"
	}
	return dimNames[d]
}
