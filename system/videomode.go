// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"fmt"
	"image"

	"cogentcore.org/tumble/base/errors"
)

// DisplayMode is a video mode supported by a monitor.
type DisplayMode struct {
	Width       int
	Height      int
	RefreshRate int
}

// Area returns the number of pixels in the mode.
func (dm DisplayMode) Area() int64 {
	return int64(dm.Width) * int64(dm.Height)
}

// Size returns the mode size as a point.
func (dm DisplayMode) Size() image.Point {
	return image.Pt(dm.Width, dm.Height)
}

func (dm DisplayMode) String() string {
	return fmt.Sprintf("%dx%d@%dHz", dm.Width, dm.Height, dm.RefreshRate)
}

// ClosestVideoMode returns the mode whose area is closest to
// width*height. Among modes equally close, the first one wins.
// An empty list is an [errors.ErrEnvironment] error.
func ClosestVideoMode(modes []DisplayMode, width, height int) (DisplayMode, error) {
	if len(modes) == 0 {
		return DisplayMode{}, errors.Environment(errors.New("system: the monitor reports no video modes"))
	}
	target := int64(width) * int64(height)
	best := 0
	bestDiff := absDiff(modes[0].Area(), target)
	for i := 1; i < len(modes); i++ {
		if d := absDiff(modes[i].Area(), target); d < bestDiff {
			best, bestDiff = i, d
		}
	}
	return modes[best], nil
}

func absDiff(a, b int64) int64 {
	if a > b {
		return a - b
	}
	return b - a
}
