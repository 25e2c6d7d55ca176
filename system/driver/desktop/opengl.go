// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build (darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd

package desktop

import (
	"fmt"

	"cogentcore.org/tumble/base/errors"
	"cogentcore.org/tumble/gpu"
	"cogentcore.org/tumble/gpu/glgpu"
	"cogentcore.org/tumble/system"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// NewGLSurface makes the context of the window current, with vsync,
// and returns a surface that swaps its buffers at the end of each frame.
func (p *Platform) NewGLSurface(win system.NativeWindow, major, minor int) (gpu.Surface, error) {
	w, ok := win.(*Window)
	if !ok || w.glw == nil {
		return nil, errors.Configuration(fmt.Errorf("desktop: window %T is not an open glfw window", win))
	}
	if w.hints.API != system.OpenGLAPI {
		return nil, errors.Configuration(fmt.Errorf("desktop: window was created for %v, not OpenGL", w.hints.API))
	}
	w.glw.MakeContextCurrent()
	glfw.SwapInterval(1)
	gotMajor := w.glw.GetAttrib(glfw.ContextVersionMajor)
	gotMinor := w.glw.GetAttrib(glfw.ContextVersionMinor)
	got := system.OpenGL(gotMajor, gotMinor)
	if !got.AtLeast(system.OpenGL(major, minor)) {
		return nil, fmt.Errorf("desktop: got an %v context, need %d.%d", got, major, minor)
	}
	return glgpu.NewSurface(w.Size(), w.glw.SwapBuffers)
}
