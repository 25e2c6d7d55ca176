// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "time"

// Timer measures the time between frames.
type Timer struct {
	last time.Time
}

// NewTimer returns a timer whose first tick is measured from now.
func NewTimer(now time.Time) *Timer {
	return &Timer{last: now}
}

// Tick returns the time since the previous tick, or since the timer
// was created, and starts the next interval at now. A clock going
// backwards gives zero.
func (tm *Timer) Tick(now time.Time) time.Duration {
	d := now.Sub(tm.last)
	tm.last = now
	return max(d, 0)
}
