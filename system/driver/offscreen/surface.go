// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package offscreen

import (
	"fmt"
	"image"
	"image/color"
	"slices"

	"cogentcore.org/tumble/gpu"
	"cogentcore.org/tumble/shaders"
)

// Surface is the offscreen [gpu.Surface]. It records what is done with it.
type Surface struct {
	Platform *Platform

	// Resizes are the sizes passed to successful Resize calls.
	Resizes []image.Point

	// Uploads are copies of the vertices of every uploaded buffer.
	Uploads [][]gpu.RenderVertex

	// Frames are the frames that have been ended.
	Frames []*Frame

	// Frame is the frame in progress, if any.
	Frame *Frame

	// Released is whether Release has been called.
	Released bool

	size image.Point
}

var _ gpu.Surface = &Surface{}

// Frame is a recorded frame.
type Frame struct {
	Clear color.Color
	Draws []*DrawCall
}

// DrawCall is a recorded draw.
type DrawCall struct {

	// Vertices are the vertices of the drawn buffer.
	Vertices []gpu.RenderVertex
	Indices  []uint32
	Program  *Program
	Uniforms gpu.Uniforms

	// Size is the surface size at the time of the draw.
	Size image.Point
}

func (sf *Surface) Size() image.Point { return sf.size }

func (sf *Surface) Resize(size image.Point) error {
	if sf.Platform.Fail.Resize != nil {
		return sf.Platform.Fail.Resize
	}
	sf.size = size
	sf.Resizes = append(sf.Resizes, size)
	return nil
}

func (sf *Surface) NewProgram(stages ...*shaders.Asset) (gpu.Program, error) {
	if len(stages) == 0 {
		return nil, fmt.Errorf("offscreen: program has no shader stages")
	}
	for _, st := range stages {
		if !shaders.IsSPIRV(st.Code) {
			return nil, fmt.Errorf("offscreen: %s is not SPIR-V", st.Name)
		}
	}
	return &Program{Stages: stages}, nil
}

func (sf *Surface) NewTexture(img image.Image) (gpu.Texture, error) {
	return &Texture{Image: gpu.ImageToRGBA(img)}, nil
}

func (sf *Surface) Upload(verts []gpu.RenderVertex) (gpu.Buffer, error) {
	if sf.Platform.Fail.Upload != nil {
		return nil, sf.Platform.Fail.Upload
	}
	vs := slices.Clone(verts)
	sf.Uploads = append(sf.Uploads, vs)
	return &Buffer{Vertices: vs}, nil
}

func (sf *Surface) BeginFrame(clear color.Color) error {
	if sf.Platform.Fail.BeginFrame != nil {
		return sf.Platform.Fail.BeginFrame
	}
	if sf.Frame != nil {
		return fmt.Errorf("offscreen: BeginFrame called twice")
	}
	sf.Frame = &Frame{Clear: clear}
	return nil
}

func (sf *Surface) Draw(buf gpu.Buffer, indices []uint32, prog gpu.Program, uniforms *gpu.Uniforms) error {
	if sf.Frame == nil {
		return fmt.Errorf("offscreen: Draw called outside of a frame")
	}
	if sf.Platform.Fail.Draw != nil {
		return sf.Platform.Fail.Draw
	}
	b := buf.(*Buffer)
	if b.Released {
		return fmt.Errorf("offscreen: drawing a released buffer")
	}
	for _, i := range indices {
		if int(i) >= len(b.Vertices) {
			return fmt.Errorf("offscreen: index %d out of range for %d vertices", i, len(b.Vertices))
		}
	}
	dc := &DrawCall{Vertices: b.Vertices, Indices: slices.Clone(indices), Size: sf.size}
	if prog != nil {
		dc.Program = prog.(*Program)
	}
	if uniforms != nil {
		dc.Uniforms = *uniforms
	}
	sf.Frame.Draws = append(sf.Frame.Draws, dc)
	return nil
}

func (sf *Surface) EndFrame() error {
	if sf.Frame == nil {
		return fmt.Errorf("offscreen: EndFrame called outside of a frame")
	}
	sf.Frames = append(sf.Frames, sf.Frame)
	sf.Frame = nil
	return nil
}

func (sf *Surface) Release() {
	sf.Released = true
}

// Buffer is the offscreen [gpu.Buffer].
type Buffer struct {
	Vertices []gpu.RenderVertex
	Released bool
}

func (b *Buffer) Len() int { return len(b.Vertices) }

func (b *Buffer) Release() { b.Released = true }

// Program is the offscreen [gpu.Program].
type Program struct {
	Stages   []*shaders.Asset
	Released bool
}

func (p *Program) Release() { p.Released = true }

// Texture is the offscreen [gpu.Texture].
type Texture struct {
	Image    *image.RGBA
	Released bool
}

func (t *Texture) Size() image.Point { return t.Image.Rect.Size() }

func (t *Texture) Release() { t.Released = true }
