// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"fmt"
	"image"
)

// EventTypes are the kinds of window events.
type EventTypes int32

const (
	// Redraw asks for a new frame to be drawn.
	Redraw EventTypes = iota

	// Resize reports a new client area size.
	Resize

	// Close reports that the user asked to close the window.
	Close
)

func (et EventTypes) String() string {
	switch et {
	case Redraw:
		return "Redraw"
	case Resize:
		return "Resize"
	case Close:
		return "Close"
	}
	return fmt.Sprintf("EventTypes(%d)", int32(et))
}

// Event is a window event.
type Event struct {
	Type EventTypes

	// Size is the new client area size for a [Resize] event.
	Size image.Point
}

func (ev Event) String() string {
	if ev.Type == Resize {
		return fmt.Sprintf("Resize %dx%d", ev.Size.X, ev.Size.Y)
	}
	return ev.Type.String()
}

// EventSource delivers window events one at a time.
type EventSource interface {

	// NextEvent blocks until the next event is available.
	NextEvent() Event
}
