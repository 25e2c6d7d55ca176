// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"cogentcore.org/tumble/gpu"
	"cogentcore.org/tumble/math32"
)

// PositionStates are the states of a [Vertex] position.
type PositionStates int32

const (
	// Default means the vertex is at its default position.
	Default PositionStates = iota

	// Overridden means the vertex has been moved from its default position.
	Overridden
)

func (ps PositionStates) String() string {
	if ps == Overridden {
		return "Overridden"
	}
	return "Default"
}

// Vertex is a mesh vertex that can be moved away from its
// default position and reset back to it.
type Vertex struct {

	// DefaultPosition is the position the vertex was authored at.
	DefaultPosition math32.Vector3

	// State is whether the vertex is at DefaultPosition or has been moved.
	State PositionStates

	// TexCoords are the texture coordinates.
	TexCoords math32.Vector2

	// position is the current position when State is Overridden.
	position math32.Vector3
}

// NewVertex returns a vertex at the given default position.
func NewVertex(pos math32.Vector3, tex math32.Vector2) Vertex {
	return Vertex{DefaultPosition: pos, TexCoords: tex}
}

// Position returns the current position of the vertex.
func (v *Vertex) Position() math32.Vector3 {
	if v.State == Overridden {
		return v.position
	}
	return v.DefaultPosition
}

// MoveTo moves the vertex to the given position.
func (v *Vertex) MoveTo(pos math32.Vector3) {
	v.position = pos
	v.State = Overridden
}

// RotateAround rotates the current position by the given Euler angles
// around the given pivot.
func (v *Vertex) RotateAround(angles, pivot math32.Vector3) {
	v.MoveTo(math32.RotateAround(v.Position(), angles, pivot))
}

// Reset moves the vertex back to its default position.
func (v *Vertex) Reset() {
	v.position = math32.Vector3{}
	v.State = Default
}

// Render returns the vertex as drawn.
func (v *Vertex) Render() gpu.RenderVertex {
	return gpu.RenderVertex{Position: v.Position().Array(), TexCoords: v.TexCoords.Array()}
}
