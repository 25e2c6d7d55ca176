// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"fmt"
	"image"
	"log/slog"

	"cogentcore.org/tumble/base/errors"
	"cogentcore.org/tumble/gpu"
)

// Window is an open window with its GPU surface.
type Window struct {

	// Config is the config the window was opened with.
	Config WindowConfig

	// Native is the platform window.
	Native NativeWindow

	// Surface is the GPU surface drawing into the window.
	Surface gpu.Surface

	// Mode is the video mode chosen for an exclusive fullscreen window.
	Mode DisplayMode
}

// Open validates the config and opens a window for it on the platform.
// Exclusive fullscreen windows are built at the native size of the
// primary monitor and then switched to its video mode closest to that
// size. After any fullscreen switch the surface is resized to the
// window's client area before Open returns.
func Open(cfg *WindowConfig, p Platform) (*Window, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	var mon Monitor
	var native DisplayMode
	if cfg.Mode.Mode == FullscreenMode || cfg.Mode.Mode == WindowedFullscreenMode {
		var err error
		mon, err = p.PrimaryMonitor()
		if err != nil {
			return nil, errors.Environment(err)
		}
		native, err = mon.CurrentMode()
		if err != nil {
			return nil, errors.Environment(err)
		}
	}

	b, err := NewBuilder(cfg.Backend)
	if err != nil {
		return nil, err
	}
	if err := b.SetConfig(cfg.NativeConfig(native.Size())); err != nil {
		return nil, err
	}
	nw, sf, err := b.Build(p)
	if err != nil {
		return nil, err
	}
	w := &Window{Config: *cfg, Native: nw, Surface: sf}

	switch cfg.Mode.Mode {
	case FullscreenMode:
		modes, err := mon.VideoModes()
		if err == nil {
			w.Mode, err = ClosestVideoMode(modes, native.Width, native.Height)
		}
		if err != nil {
			w.Close()
			return nil, errors.Environment(err)
		}
		slog.Info("switching to fullscreen", "monitor", mon.Name(), "mode", w.Mode)
		if err := nw.SetFullscreen(mon, w.Mode); err != nil {
			w.Close()
			return nil, errors.Environment(err)
		}
	case WindowedFullscreenMode:
		slog.Info("switching to windowed fullscreen", "monitor", mon.Name(), "mode", native)
		if err := nw.SetWindowedFullscreen(mon); err != nil {
			w.Close()
			return nil, errors.Environment(err)
		}
	default:
		return w, nil
	}
	if err := w.Resize(nw.Size()); err != nil {
		w.Close()
		return nil, err
	}
	return w, nil
}

// Size returns the size of the window's surface.
func (w *Window) Size() image.Point {
	return w.Surface.Size()
}

// Resize resizes the surface to the given client area size.
// A failure is an [errors.ErrEnvironment] error.
func (w *Window) Resize(size image.Point) error {
	if err := w.Surface.Resize(size); err != nil {
		return errors.Environment(fmt.Errorf("system: resizing surface to %dx%d: %w", size.X, size.Y, err))
	}
	slog.Debug("resized surface", "width", size.X, "height", size.Y)
	return nil
}

// Close releases the surface and destroys the native window.
func (w *Window) Close() {
	if w.Surface != nil {
		w.Surface.Release()
		w.Surface = nil
	}
	if w.Native != nil {
		w.Native.Destroy()
		w.Native = nil
	}
}
