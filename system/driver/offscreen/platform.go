// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package offscreen provides an in-memory implementation of the system
// platform interfaces for both OpenGL and Vulkan, to allow for testing
// windows and frame loops without a display. Surfaces record every
// resize, upload and draw instead of rendering.
package offscreen

import (
	"fmt"
	"image"

	"cogentcore.org/tumble/base/errors"
	"cogentcore.org/tumble/gpu"
	"cogentcore.org/tumble/system"
)

// Failures are the operations that can be made to fail.
type Failures struct {

	// Window makes NewWindow fail.
	Window error

	// Surface makes NewGLSurface and NewVulkanSurface fail.
	Surface error

	// Fullscreen makes SetFullscreen and SetWindowedFullscreen fail.
	Fullscreen error

	// Resize makes Surface.Resize fail.
	Resize error

	// Upload makes Surface.Upload fail.
	Upload error

	// Draw makes Surface.Draw fail.
	Draw error

	// BeginFrame makes Surface.BeginFrame fail.
	BeginFrame error
}

// Platform is the offscreen [system.Platform].
// Its fields may be changed between calls.
type Platform struct {

	// Monitor is the primary monitor.
	Monitor *Monitor

	// MaxGL is the newest OpenGL version that contexts can be created for.
	MaxGL system.BackendVersion

	// MaxVulkan is the newest Vulkan API version instances support.
	MaxVulkan system.BackendVersion

	// Fail are the operations that currently fail.
	Fail Failures

	// Windows are all the windows created, including destroyed ones.
	Windows []*Window

	events     []system.Event
	terminated bool
}

var (
	_ system.GLPlatform     = &Platform{}
	_ system.VulkanPlatform = &Platform{}
)

// New returns a new platform with a 1920x1080 monitor supporting
// OpenGL 4.6 and Vulkan 1.3.0.
func New() *Platform {
	return &Platform{
		Monitor: &Monitor{
			MonitorName: "offscreen",
			Modes: []system.DisplayMode{
				{Width: 1280, Height: 720, RefreshRate: 60},
				{Width: 1920, Height: 1080, RefreshRate: 60},
				{Width: 2560, Height: 1440, RefreshRate: 60},
			},
			Native: system.DisplayMode{Width: 1920, Height: 1080, RefreshRate: 60},
		},
		MaxGL:     system.OpenGL(4, 6),
		MaxVulkan: system.Vulkan(1, 3, 0),
	}
}

func (p *Platform) Name() string { return "offscreen" }

func (p *Platform) PrimaryMonitor() (system.Monitor, error) {
	if p.Monitor == nil {
		return nil, errors.New("offscreen: no monitor")
	}
	return p.Monitor, nil
}

func (p *Platform) NewWindow(cfg *system.NativeConfig, hints system.ContextHints) (system.NativeWindow, error) {
	if p.terminated {
		return nil, errors.New("offscreen: platform has been terminated")
	}
	if p.Fail.Window != nil {
		return nil, p.Fail.Window
	}
	w := &Window{Platform: p, Config: *cfg, Hints: hints, size: cfg.Size}
	p.Windows = append(p.Windows, w)
	return w, nil
}

func (p *Platform) NewGLSurface(win system.NativeWindow, major, minor int) (gpu.Surface, error) {
	if p.Fail.Surface != nil {
		return nil, p.Fail.Surface
	}
	if !p.MaxGL.AtLeast(system.OpenGL(major, minor)) {
		return nil, fmt.Errorf("offscreen: OpenGL %d.%d is newer than the supported %v", major, minor, p.MaxGL)
	}
	return p.newSurface(win)
}

func (p *Platform) NegotiateVulkan(major, minor, patch int) error {
	if !p.MaxVulkan.AtLeast(system.Vulkan(major, minor, patch)) {
		return fmt.Errorf("offscreen: Vulkan %d.%d.%d is newer than the supported %v", major, minor, patch, p.MaxVulkan)
	}
	return nil
}

func (p *Platform) NewVulkanSurface(win system.NativeWindow) (gpu.Surface, error) {
	if p.Fail.Surface != nil {
		return nil, p.Fail.Surface
	}
	return p.newSurface(win)
}

func (p *Platform) newSurface(win system.NativeWindow) (gpu.Surface, error) {
	w, ok := win.(*Window)
	if !ok {
		return nil, fmt.Errorf("offscreen: %T is not an offscreen window", win)
	}
	w.Surface = &Surface{Platform: p, size: w.Size()}
	return w.Surface, nil
}

// Post adds events to the end of the event queue.
func (p *Platform) Post(evs ...system.Event) {
	p.events = append(p.events, evs...)
}

// NextEvent returns the next queued event. An empty queue returns
// [system.Close], so a loop run on the platform always ends.
func (p *Platform) NextEvent() system.Event {
	if len(p.events) == 0 {
		return system.Event{Type: system.Close}
	}
	ev := p.events[0]
	p.events = p.events[1:]
	return ev
}

func (p *Platform) Terminate() {
	p.terminated = true
}

// Monitor is the offscreen [system.Monitor].
type Monitor struct {
	MonitorName string

	// Modes are the video modes, in enumeration order.
	Modes []system.DisplayMode

	// Native is the mode the monitor is in.
	Native system.DisplayMode
}

func (m *Monitor) Name() string { return m.MonitorName }

func (m *Monitor) VideoModes() ([]system.DisplayMode, error) {
	return m.Modes, nil
}

func (m *Monitor) CurrentMode() (system.DisplayMode, error) {
	return m.Native, nil
}

// Window is the offscreen [system.NativeWindow].
type Window struct {
	Platform *Platform

	// Config is the config the window was created with.
	Config system.NativeConfig

	// Hints are the context hints the window was created with.
	Hints system.ContextHints

	// Surface is the surface created for the window, if any.
	Surface *Surface

	// Fullscreen is the video mode of an exclusive fullscreen window.
	Fullscreen *system.DisplayMode

	// WindowedFullscreen is whether the window is borderless fullscreen.
	WindowedFullscreen bool

	// Destroyed is whether Destroy has been called.
	Destroyed bool

	size image.Point
}

func (w *Window) Size() image.Point { return w.size }

// SetSize sets the client area size, as the user resizing the window would.
func (w *Window) SetSize(size image.Point) {
	w.size = size
}

func (w *Window) SetFullscreen(mon system.Monitor, mode system.DisplayMode) error {
	if w.Platform.Fail.Fullscreen != nil {
		return w.Platform.Fail.Fullscreen
	}
	w.Fullscreen = &mode
	w.size = mode.Size()
	return nil
}

func (w *Window) SetWindowedFullscreen(mon system.Monitor) error {
	if w.Platform.Fail.Fullscreen != nil {
		return w.Platform.Fail.Fullscreen
	}
	cur, err := mon.CurrentMode()
	if err != nil {
		return err
	}
	w.WindowedFullscreen = true
	w.Config.Decorated = false
	w.size = cur.Size()
	return nil
}

func (w *Window) Destroy() {
	w.Destroyed = true
}
