// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"slices"

	"cogentcore.org/tumble/gpu"
	"cogentcore.org/tumble/math32"
)

// QuadIndices are the indices of the two triangles of a quad
// made by [NewQuad].
var QuadIndices = []uint32{0, 1, 2, 0, 3, 2}

// Shape is a mesh: vertices, triangle indices into them and
// references to the texture and shaders it is drawn with.
type Shape struct {
	Name     string
	Vertices []Vertex

	// Indices are triangle list indices into Vertices.
	Indices []uint32

	// Texture is the image file for the texture, if any.
	Texture string

	// VertexShader and FragmentShader are the source names of the
	// shaders to draw with, such as simple.vs, if not the defaults.
	VertexShader   string
	FragmentShader string
}

// NewQuad returns a square in the XY plane with the given center and
// side length, with texture coordinates covering the whole texture.
func NewQuad(name string, center math32.Vector3, size float32) *Shape {
	h := size / 2
	corner := func(dx, dy, u, v float32) Vertex {
		return NewVertex(center.Add(math32.Vec3(dx, dy, 0)), math32.Vec2(u, v))
	}
	return &Shape{
		Name: name,
		Vertices: []Vertex{
			corner(-h, -h, 0, 0),
			corner(-h, h, 0, 1),
			corner(h, h, 1, 1),
			corner(h, -h, 1, 0),
		},
		Indices: slices.Clone(QuadIndices),
	}
}

// Centroid returns the mean of the current vertex positions,
// or the zero vector for a shape with no vertices.
func (sh *Shape) Centroid() math32.Vector3 {
	if len(sh.Vertices) == 0 {
		return math32.Vector3{}
	}
	var sum math32.Vector3
	for i := range sh.Vertices {
		sum.SetAdd(sh.Vertices[i].Position())
	}
	return sum.DivScalar(float32(len(sh.Vertices)))
}

// RotateAround rotates every vertex by the given Euler angles around the pivot.
func (sh *Shape) RotateAround(angles, pivot math32.Vector3) {
	for i := range sh.Vertices {
		sh.Vertices[i].RotateAround(angles, pivot)
	}
}

// Reset moves every vertex back to its default position.
func (sh *Shape) Reset() {
	for i := range sh.Vertices {
		sh.Vertices[i].Reset()
	}
}

// RenderVertices returns a new slice of the vertices as drawn.
func (sh *Shape) RenderVertices() []gpu.RenderVertex {
	rv := make([]gpu.RenderVertex, len(sh.Vertices))
	for i := range sh.Vertices {
		rv[i] = sh.Vertices[i].Render()
	}
	return rv
}
