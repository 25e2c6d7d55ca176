// Copyright 2023 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build offscreen || !((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd)

package driver

import (
	"cogentcore.org/tumble/system"
	"cogentcore.org/tumble/system/driver/offscreen"
)

// Init returns the offscreen platform, which draws nothing,
// whether or not nogui is set.
func Init(nogui bool) (system.Platform, error) {
	return offscreen.New(), nil
}
