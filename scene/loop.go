// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"image/color"
	"log/slog"
	"path/filepath"
	"time"

	"cogentcore.org/tumble/base/errors"
	"cogentcore.org/tumble/gpu"
	"cogentcore.org/tumble/math32"
	"cogentcore.org/tumble/shaders"
	"cogentcore.org/tumble/system"
)

// DefaultAngularVelocity is the default spin rate in radians per microsecond.
const DefaultAngularVelocity = 5e-7

// Object is a shape in the loop and how it spins and is drawn.
type Object struct {
	Shape *Shape

	// Spin scales the frame angle for each axis: a spin of (0, 1, 0)
	// turns the shape about Y by the full frame angle.
	Spin math32.Vector3

	// Pivot is the point the shape spins around.
	Pivot Pivot

	// Uniforms are passed to the shaders when drawing the shape.
	Uniforms gpu.Uniforms

	// Program draws the shape, instead of the loop's program, if non-nil.
	Program gpu.Program
}

// Loop spins a set of objects and draws them every frame.
type Loop struct {

	// AngularVelocity is the spin rate in radians per microsecond.
	AngularVelocity float32

	// Objects are drawn in order.
	Objects []*Object

	// Program is the program used for objects without their own.
	Program gpu.Program

	// ClearColor is the background color.
	ClearColor color.Color

	// Now returns the current time for the frame timer.
	Now func() time.Time

	// resources owned by the loop, from Load
	owned []interface{ Release() }
}

// NewLoop returns a loop for the given objects with the default
// angular velocity and a blue background.
func NewLoop(objs ...*Object) *Loop {
	return &Loop{
		AngularVelocity: DefaultAngularVelocity,
		Objects:         objs,
		ClearColor:      color.RGBA{0, 0, 255, 255},
		Now:             time.Now,
	}
}

// Angle returns the spin angle for a frame that took the given time.
func (l *Loop) Angle(elapsed time.Duration) float32 {
	return l.AngularVelocity * float32(elapsed.Microseconds())
}

// Transform spins every object by the angle for the elapsed time.
// Centroid pivots are computed from the positions before the spin.
func (l *Loop) Transform(elapsed time.Duration) {
	angle := l.Angle(elapsed)
	for _, o := range l.Objects {
		angles := o.Spin.MulScalar(angle)
		o.Shape.RotateAround(angles, o.Pivot.Of(o.Shape))
	}
}

// Frame transforms the objects and draws them on the surface.
// A fresh vertex buffer is uploaded for every object every frame.
// Failures are logged and skip the affected draw, or the whole frame
// if it cannot be started, so that one bad frame does not end the loop.
func (l *Loop) Frame(sf gpu.Surface, elapsed time.Duration) {
	l.Transform(elapsed)
	if err := sf.BeginFrame(l.ClearColor); err != nil {
		slog.Warn("skipping frame", "err", err)
		return
	}
	for _, o := range l.Objects {
		if err := l.draw(sf, o); err != nil {
			slog.Warn("skipping draw", "shape", o.Shape.Name, "err", err)
		}
	}
	if err := sf.EndFrame(); err != nil {
		slog.Warn("ending frame", "err", err)
	}
}

func (l *Loop) draw(sf gpu.Surface, o *Object) error {
	buf, err := sf.Upload(o.Shape.RenderVertices())
	if err != nil {
		return err
	}
	defer buf.Release()
	prog := o.Program
	if prog == nil {
		prog = l.Program
	}
	return sf.Draw(buf, o.Shape.Indices, prog, &o.Uniforms)
}

// Run draws frames on the window for the events from src until a close
// event, which ends the loop at once. Resize events resize the surface
// before the next frame is drawn; a failed resize ends the loop with an
// [errors.ErrEnvironment] error. While the window has a zero size, such
// as when it is minimized, no frames are drawn.
func (l *Loop) Run(win *system.Window, src system.EventSource, timer *Timer) error {
	now := l.Now
	if now == nil {
		now = time.Now
	}
	hidden := false
	for {
		ev := src.NextEvent()
		switch ev.Type {
		case system.Close:
			return nil
		case system.Resize:
			if ev.Size.X <= 0 || ev.Size.Y <= 0 {
				hidden = true
				continue
			}
			hidden = false
			if err := win.Resize(ev.Size); err != nil {
				return err
			}
		case system.Redraw:
			elapsed := timer.Tick(now())
			if hidden {
				continue
			}
			l.Frame(win.Surface, elapsed)
		}
	}
}

// Load creates the GPU resources for the objects on the surface:
// the textures named by their shapes, and programs for shapes that
// name their own shaders, read from the shader cache directory.
// The resources are freed by [Loop.Release].
func (l *Loop) Load(sf gpu.Surface, cacheDir string) error {
	textures := map[string]gpu.Texture{}
	for _, o := range l.Objects {
		sh := o.Shape
		if sh.Texture != "" && o.Uniforms.Texture == nil {
			tx, ok := textures[sh.Texture]
			if !ok {
				img, err := LoadTexture(sh.Texture)
				if err != nil {
					return err
				}
				tx, err = sf.NewTexture(img)
				if err != nil {
					return errors.Environment(fmt.Errorf("scene: uploading texture %q: %w", sh.Texture, err))
				}
				textures[sh.Texture] = tx
				l.owned = append(l.owned, tx)
				slog.Debug("loaded texture", "file", filepath.Base(sh.Texture), "size", tx.Size())
			}
			o.Uniforms.Texture = tx
		}
		if (sh.VertexShader != "" || sh.FragmentShader != "") && o.Program == nil {
			prog, err := LoadProgram(sf, cacheDir, sh.VertexShader, sh.FragmentShader)
			if err != nil {
				return err
			}
			o.Program = prog
			l.owned = append(l.owned, prog)
		}
	}
	return nil
}

// LoadProgram reads the given shaders from the cache directory
// and links them into a program. Empty names are skipped.
func LoadProgram(sf gpu.Surface, cacheDir string, names ...string) (gpu.Program, error) {
	var use []string
	for _, n := range names {
		if n != "" {
			use = append(use, n)
		}
	}
	assets, err := shaders.LoadCache(cacheDir, use...)
	if err != nil {
		return nil, err
	}
	prog, err := sf.NewProgram(assets...)
	if err != nil {
		return nil, errors.Environment(fmt.Errorf("scene: linking %v: %w", use, err))
	}
	return prog, nil
}

// Release frees the resources created by [Loop.Load].
func (l *Loop) Release() {
	for _, r := range l.owned {
		r.Release()
	}
	l.owned = nil
}
