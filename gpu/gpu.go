// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpu defines the interface between the frame loop and a GPU API.
// A [Surface] is the drawable area of a window together with the GPU context
// that renders into it. Implementations live in the glgpu (OpenGL) and
// vkgpu (Vulkan through WebGPU) subpackages.
package gpu

import (
	"image"
	"image/color"

	"cogentcore.org/tumble/shaders"
)

// Surface is a window's drawable area and the GPU context bound to it.
// A Surface must only be used from the thread that owns its window.
type Surface interface {

	// Size returns the current size of the drawable area in pixels.
	Size() image.Point

	// Resize reconfigures the surface for a new drawable area size.
	Resize(size image.Point) error

	// NewProgram links the given compiled shader stages into a program.
	NewProgram(stages ...*shaders.Asset) (Program, error)

	// NewTexture uploads the given image as a 2D RGBA texture.
	NewTexture(img image.Image) (Texture, error)

	// Upload copies the given vertices into a new vertex buffer.
	Upload(verts []RenderVertex) (Buffer, error)

	// BeginFrame starts a new frame, clearing the color buffer to
	// the given color and the depth buffer to 1.
	BeginFrame(clear color.Color) error

	// Draw draws the triangles given by indices into buf with the
	// given program and uniforms. It must be called between
	// BeginFrame and EndFrame.
	Draw(buf Buffer, indices []uint32, prog Program, uniforms *Uniforms) error

	// EndFrame finishes the frame and presents it.
	EndFrame() error

	// Release frees all GPU resources held by the surface.
	Release()
}

// Buffer is a vertex buffer on the GPU.
type Buffer interface {

	// Len returns the number of vertices in the buffer.
	Len() int

	// Release frees the buffer.
	Release()
}

// Program is a linked set of shader stages.
type Program interface {
	Release()
}

// Texture is a 2D image on the GPU.
type Texture interface {
	Size() image.Point
	Release()
}

// Uniforms are the per draw values passed to the shaders: the
// Material uniform block at binding 0 and an optional texture.
type Uniforms struct {

	// Texture is sampled by the fragment shader, if non-nil.
	Texture Texture

	// ColorOverride is added to the sampled texture color.
	ColorOverride [3]float32
}

// MaterialBytes returns the Material uniform block contents:
// ColorOverride padded to the 16 byte std140 size of a vec3.
func (u *Uniforms) MaterialBytes() []byte {
	var pad [4]float32
	copy(pad[:], u.ColorOverride[:])
	return float32Bytes(pad[:])
}
