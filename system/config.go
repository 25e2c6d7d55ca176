// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"fmt"
	"image"

	"cogentcore.org/tumble/base/errors"
)

// WindowModes are the ways a window can occupy the screen.
type WindowModes int32

const (
	// NormalMode is a decorated window of a given size.
	NormalMode WindowModes = iota

	// BorderlessMode is an undecorated, transparent window of a given size.
	BorderlessMode

	// FullscreenMode is exclusive fullscreen on the primary monitor,
	// at the video mode closest to the monitor's native size.
	FullscreenMode

	// WindowedFullscreenMode is a borderless window covering the
	// primary monitor, without changing its video mode.
	WindowedFullscreenMode
)

var windowModeNames = map[WindowModes]string{
	NormalMode:             "normal",
	BorderlessMode:         "borderless",
	FullscreenMode:         "fullscreen",
	WindowedFullscreenMode: "windowed-fullscreen",
}

func (m WindowModes) String() string {
	if s, ok := windowModeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("WindowModes(%d)", int32(m))
}

// WindowMode is a [WindowModes] value and, for normal and borderless
// windows, the window size in screen coordinates.
type WindowMode struct {
	Mode WindowModes
	Size image.Point
}

// Normal returns a decorated window mode of the given size.
func Normal(width, height int) WindowMode {
	return WindowMode{Mode: NormalMode, Size: image.Pt(width, height)}
}

// Borderless returns an undecorated window mode of the given size.
func Borderless(width, height int) WindowMode {
	return WindowMode{Mode: BorderlessMode, Size: image.Pt(width, height)}
}

// Fullscreen returns the exclusive fullscreen window mode.
func Fullscreen() WindowMode {
	return WindowMode{Mode: FullscreenMode}
}

// WindowedFullscreen returns the borderless fullscreen window mode.
func WindowedFullscreen() WindowMode {
	return WindowMode{Mode: WindowedFullscreenMode}
}

func (wm WindowMode) String() string {
	switch wm.Mode {
	case NormalMode, BorderlessMode:
		return fmt.Sprintf("%v %dx%d", wm.Mode, wm.Size.X, wm.Size.Y)
	}
	return wm.Mode.String()
}

// Validate returns an [errors.ErrConfiguration] error for an unknown
// mode or a sized mode without a positive size.
func (wm WindowMode) Validate() error {
	switch wm.Mode {
	case NormalMode, BorderlessMode:
		if wm.Size.X <= 0 || wm.Size.Y <= 0 {
			return errors.Configuration(fmt.Errorf("system: %v window size must be positive, not %dx%d", wm.Mode, wm.Size.X, wm.Size.Y))
		}
	case FullscreenMode, WindowedFullscreenMode:
	default:
		return errors.Configuration(fmt.Errorf("system: unknown window mode %v", wm.Mode))
	}
	return nil
}

// Sides are the edges of a window.
type Sides int32

const (
	Left Sides = iota
	Right
	Top
	Bottom
)

func (s Sides) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	}
	return fmt.Sprintf("Sides(%d)", int32(s))
}

// ResizeKinds are the ways a window may be resized by the user.
type ResizeKinds int32

const (
	// ResizeAll allows resizing from every edge.
	ResizeAll ResizeKinds = iota

	// ResizeSpecific allows resizing from the listed edges only.
	ResizeSpecific

	// ResizeVertical allows resizing from the top and bottom edges.
	ResizeVertical

	// ResizeHorizontal allows resizing from the left and right edges.
	ResizeHorizontal

	// ResizeNone makes the window a fixed size.
	ResizeNone
)

// ResizePolicy is how a window may be resized by the user.
// The zero value allows resizing from every edge.
type ResizePolicy struct {
	Kind ResizeKinds

	// Sides are the resizable edges for [ResizeSpecific].
	Sides []Sides
}

// Specific returns a policy allowing resizing from the given sides.
func Specific(sides ...Sides) ResizePolicy {
	return ResizePolicy{Kind: ResizeSpecific, Sides: sides}
}

// Resizable returns whether the window can be resized at all.
func (rp ResizePolicy) Resizable() bool {
	return rp.Kind != ResizeNone && (rp.Kind != ResizeSpecific || len(rp.Sides) > 0)
}

// MoveKinds are the ways a window may be moved by the user.
type MoveKinds int32

const (
	// MoveFull allows moving the window by any point.
	MoveFull MoveKinds = iota

	// MoveOuterMargin allows moving by a margin outside the client area.
	MoveOuterMargin

	// MoveInnerMargin allows moving by a margin inside the client area.
	MoveInnerMargin

	// MoveNone makes the window immovable.
	MoveNone
)

// MovePolicy is how a window may be moved by the user.
type MovePolicy struct {
	Kind MoveKinds

	// Margin is the left, right, top and bottom margin widths in pixels
	// for the margin kinds.
	Margin [4]int
}

// WindowConfig is everything needed to open a window.
// It is not changed once the window is built.
type WindowConfig struct {
	Title   string
	Mode    WindowMode
	Backend BackendVersion
	Resize  ResizePolicy
	Move    MovePolicy
}

// Validate returns an [errors.ErrConfiguration] error describing the
// first invalid field.
func (wc *WindowConfig) Validate() error {
	if err := wc.Mode.Validate(); err != nil {
		return err
	}
	if err := wc.Backend.Validate(); err != nil {
		return err
	}
	for _, m := range wc.Move.Margin {
		if m < 0 {
			return errors.Configuration(fmt.Errorf("system: move margins must not be negative: %v", wc.Move.Margin))
		}
	}
	return nil
}

// NativeConfig returns the platform window attributes for the config.
// Fullscreen modes are built at the given native size.
func (wc *WindowConfig) NativeConfig(native image.Point) NativeConfig {
	nc := NativeConfig{Title: wc.Title, Size: wc.Mode.Size}
	switch wc.Mode.Mode {
	case NormalMode:
		nc.Decorated = true
		nc.Resizable = wc.Resize.Resizable()
	case BorderlessMode:
		nc.Resizable = true
		nc.Transparent = true
	default:
		nc.Size = native
		nc.Decorated = true
		nc.Resizable = wc.Resize.Resizable()
	}
	return nc
}
