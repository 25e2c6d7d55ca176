// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build (darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd

package desktop

import (
	"fmt"
	"image"
	"log/slog"

	"cogentcore.org/tumble/base/errors"
	"cogentcore.org/tumble/system"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window is a glfw window.
type Window struct {
	p   *Platform
	glw *glfw.Window

	// hints are the context hints the window was created with.
	hints system.ContextHints
}

func glfwBool(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

// NewWindow creates a window with an OpenGL core profile context of at
// least the hinted version, or with no client API for Vulkan.
func (p *Platform) NewWindow(cfg *system.NativeConfig, hints system.ContextHints) (system.NativeWindow, error) {
	glfw.DefaultWindowHints()
	switch hints.API {
	case system.OpenGLAPI:
		glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLAPI)
		glfw.WindowHint(glfw.ContextVersionMajor, hints.Major)
		glfw.WindowHint(glfw.ContextVersionMinor, hints.Minor)
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	case system.VulkanAPI:
		glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	default:
		return nil, errors.Configuration(fmt.Errorf("desktop: unknown API %v", hints.API))
	}
	glfw.WindowHint(glfw.Decorated, glfwBool(cfg.Decorated))
	glfw.WindowHint(glfw.Resizable, glfwBool(cfg.Resizable))
	glfw.WindowHint(glfw.TransparentFramebuffer, glfwBool(cfg.Transparent))

	glw, err := glfw.CreateWindow(cfg.Size.X, cfg.Size.Y, cfg.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("desktop: creating window: %w", err)
	}
	w := &Window{p: p, glw: glw, hints: hints}
	glw.SetFramebufferSizeCallback(w.fbResized)
	glw.SetCloseCallback(w.closeRequested)
	glw.SetRefreshCallback(w.refresh)
	p.windows = append(p.windows, w)
	slog.Debug("created window", "title", cfg.Title, "size", cfg.Size, "api", hints.API)
	return w, nil
}

func (w *Window) fbResized(gw *glfw.Window, width, height int) {
	w.p.post(system.Event{Type: system.Resize, Size: image.Pt(width, height)})
}

func (w *Window) closeRequested(gw *glfw.Window) {
	w.p.post(system.Event{Type: system.Close})
}

func (w *Window) refresh(gw *glfw.Window) {
	w.p.post(system.Event{Type: system.Redraw})
}

// Size returns the size of the framebuffer in pixels, which can differ
// from the window size on high DPI displays.
func (w *Window) Size() image.Point {
	if w.glw == nil {
		return image.Point{}
	}
	return image.Pt(w.glw.GetFramebufferSize())
}

func (w *Window) SetFullscreen(mon system.Monitor, mode system.DisplayMode) error {
	m, ok := mon.(*Monitor)
	if !ok {
		return fmt.Errorf("desktop: monitor %T is not a glfw monitor", mon)
	}
	w.glw.SetMonitor(m.mon, 0, 0, mode.Width, mode.Height, mode.RefreshRate)
	return nil
}

// SetWindowedFullscreen removes the window decorations and
// covers the monitor with the window at its current video mode.
func (w *Window) SetWindowedFullscreen(mon system.Monitor) error {
	m, ok := mon.(*Monitor)
	if !ok {
		return fmt.Errorf("desktop: monitor %T is not a glfw monitor", mon)
	}
	cur, err := m.CurrentMode()
	if err != nil {
		return err
	}
	x, y := m.mon.GetPos()
	w.glw.SetAttrib(glfw.Decorated, glfw.False)
	w.glw.SetMonitor(nil, x, y, cur.Width, cur.Height, glfw.DontCare)
	return nil
}

// Destroy destroys the window. It is safe to call more than once.
func (w *Window) Destroy() {
	if w.glw == nil {
		return
	}
	w.glw.Destroy()
	w.glw = nil
	for i, o := range w.p.windows {
		if o == w {
			w.p.windows = append(w.p.windows[:i], w.p.windows[i+1:]...)
			break
		}
	}
}
