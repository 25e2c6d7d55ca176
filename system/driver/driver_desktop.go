// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !offscreen && ((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd)

package driver

import (
	"cogentcore.org/tumble/system"
	"cogentcore.org/tumble/system/driver/desktop"
	"cogentcore.org/tumble/system/driver/offscreen"
)

// Init returns the glfw desktop platform, or the offscreen platform
// if nogui is set.
func Init(nogui bool) (system.Platform, error) {
	if nogui {
		return offscreen.New(), nil
	}
	p, err := desktop.Init()
	if err != nil {
		return nil, err
	}
	return p, nil
}
