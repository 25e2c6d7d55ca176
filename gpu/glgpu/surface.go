// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glgpu implements [gpu.Surface] on an OpenGL 4.6 core context,
// loading shaders as SPIR-V binaries.
package glgpu

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"cogentcore.org/tumble/base/errors"
	"cogentcore.org/tumble/gpu"
	"github.com/go-gl/gl/v4.6-core/gl"
)

// materialBinding is the uniform block binding of the Material block.
const materialBinding = 0

// Surface is a [gpu.Surface] drawing into the default framebuffer of
// the OpenGL context that is current on the calling thread.
type Surface struct {
	size image.Point

	// swap presents the back buffer
	swap func()

	// material is the uniform buffer for the Material block
	material uint32

	inFrame bool
}

// NewSurface initializes OpenGL on the current context, which must
// be at least version 4.6, and returns a surface of the given size.
// swap is called at the end of each frame to present it.
func NewSurface(size image.Point, swap func()) (*Surface, error) {
	if err := gl.Init(); err != nil {
		return nil, errors.Environment(fmt.Errorf("glgpu: loading OpenGL functions: %w", err))
	}
	version := gl.GoStr(gl.GetString(gl.VERSION))
	slog.Info("OpenGL context", "version", version, "renderer", gl.GoStr(gl.GetString(gl.RENDERER)))

	sf := &Surface{size: size, swap: swap}
	gl.GenBuffers(1, &sf.material)
	gl.BindBuffer(gl.UNIFORM_BUFFER, sf.material)
	gl.BufferData(gl.UNIFORM_BUFFER, 16, nil, gl.DYNAMIC_DRAW)
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Viewport(0, 0, int32(size.X), int32(size.Y))
	if err := glError("initializing"); err != nil {
		sf.Release()
		return nil, err
	}
	return sf, nil
}

func (sf *Surface) Size() image.Point {
	return sf.size
}

// Resize sets the viewport to the new size. The default framebuffer
// itself is resized by the window system.
func (sf *Surface) Resize(size image.Point) error {
	sf.size = size
	gl.Viewport(0, 0, int32(size.X), int32(size.Y))
	return glError("resizing")
}

func (sf *Surface) BeginFrame(clear color.Color) error {
	if sf.inFrame {
		return errors.New("glgpu: BeginFrame called twice without EndFrame")
	}
	r, g, b, a := gpu.ToFloat32(clear)
	gl.ClearColor(r, g, b, a)
	gl.ClearDepth(1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	if err := glError("clearing"); err != nil {
		return err
	}
	sf.inFrame = true
	return nil
}

func (sf *Surface) Draw(buf gpu.Buffer, indices []uint32, prog gpu.Program, uniforms *gpu.Uniforms) error {
	if !sf.inFrame {
		return errors.New("glgpu: Draw called outside of a frame")
	}
	vb, ok := buf.(*Buffer)
	if !ok {
		return fmt.Errorf("glgpu: buffer %T is not an OpenGL buffer", buf)
	}
	pr, ok := prog.(*Program)
	if !ok {
		return fmt.Errorf("glgpu: program %T is not an OpenGL program", prog)
	}
	if len(indices) == 0 {
		return nil
	}
	if err := vb.setIndices(indices); err != nil {
		return err
	}

	gl.UseProgram(pr.handle)
	mat := uniforms.MaterialBytes()
	gl.BindBuffer(gl.UNIFORM_BUFFER, sf.material)
	gl.BufferSubData(gl.UNIFORM_BUFFER, 0, len(mat), gl.Ptr(mat))
	gl.BindBufferBase(gl.UNIFORM_BUFFER, materialBinding, sf.material)

	gl.ActiveTexture(gl.TEXTURE0)
	if tx, ok := uniforms.Texture.(*Texture); ok && tx != nil {
		gl.BindTexture(gl.TEXTURE_2D, tx.handle)
	} else {
		gl.BindTexture(gl.TEXTURE_2D, 0)
	}

	gl.BindVertexArray(vb.vao)
	gl.DrawElements(gl.TRIANGLES, int32(len(indices)), gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
	return glError("drawing")
}

func (sf *Surface) EndFrame() error {
	if !sf.inFrame {
		return errors.New("glgpu: EndFrame called without BeginFrame")
	}
	sf.inFrame = false
	if sf.swap != nil {
		sf.swap()
	}
	return glError("presenting")
}

func (sf *Surface) Release() {
	if sf.material != 0 {
		gl.DeleteBuffers(1, &sf.material)
		sf.material = 0
	}
}

// glError returns the pending OpenGL error, if any, as an
// [errors.ErrEnvironment] error for the given operation.
func glError(op string) error {
	code := gl.GetError()
	if code == gl.NO_ERROR {
		return nil
	}
	// drain any others so they are not reported by the next call
	for gl.GetError() != gl.NO_ERROR {
	}
	return errors.Environment(fmt.Errorf("glgpu: %s: OpenGL error 0x%x", op, code))
}
