// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"image"

	"cogentcore.org/tumble/gpu"
)

// Platform is the windowing system: monitors, native windows and events.
// All of its methods must be called from the thread that created it.
type Platform interface {
	EventSource

	// Name returns the name of the platform, for logging.
	Name() string

	// PrimaryMonitor returns the main monitor.
	PrimaryMonitor() (Monitor, error)

	// NewWindow creates a native window with the given attributes,
	// prepared for the GPU API given by hints.
	NewWindow(cfg *NativeConfig, hints ContextHints) (NativeWindow, error)

	// Terminate releases the platform. No other method may be called after it.
	Terminate()
}

// GLPlatform is a [Platform] that can create OpenGL contexts.
type GLPlatform interface {
	Platform

	// NewGLSurface makes the OpenGL context of the window current and
	// returns a surface for it. The context must support at least the
	// given version.
	NewGLSurface(win NativeWindow, major, minor int) (gpu.Surface, error)
}

// VulkanPlatform is a [Platform] that can create Vulkan surfaces.
type VulkanPlatform interface {
	Platform

	// NegotiateVulkan returns an error if a Vulkan instance of the given
	// API version cannot be created.
	NegotiateVulkan(major, minor, patch int) error

	// NewVulkanSurface returns a Vulkan surface for the window.
	NewVulkanSurface(win NativeWindow) (gpu.Surface, error)
}

// Monitor is a physical display.
type Monitor interface {
	Name() string

	// VideoModes returns the supported video modes in the order the
	// platform enumerates them.
	VideoModes() ([]DisplayMode, error)

	// CurrentMode returns the mode the monitor is in, which is
	// its native mode unless a fullscreen window changed it.
	CurrentMode() (DisplayMode, error)
}

// NativeWindow is a platform window.
type NativeWindow interface {

	// Size returns the size of the client area in pixels.
	Size() image.Point

	// SetFullscreen makes the window exclusive fullscreen on the
	// monitor in the given video mode.
	SetFullscreen(mon Monitor, mode DisplayMode) error

	// SetWindowedFullscreen makes the window borderless and covering
	// the monitor, without changing its video mode.
	SetWindowedFullscreen(mon Monitor) error

	// Destroy closes the window.
	Destroy()
}

// NativeConfig are the attributes of a new native window.
type NativeConfig struct {
	Title       string
	Size        image.Point
	Decorated   bool
	Transparent bool
	Resizable   bool
}

// ContextHints tell the platform which GPU API a window is for.
// For OpenGL it creates a core profile context of at least the given
// version; for Vulkan the window has no client API.
type ContextHints struct {
	API   APIs
	Major int
	Minor int
	Patch int
}
