// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"path/filepath"

	"cogentcore.org/tumble/gpu"
	"cogentcore.org/tumble/math32"
)

// Demo asset names. Textures are relative to the image directory
// and shaders to the shader cache directory.
const (
	LogoTexture  = "opengl_logo.png"
	EggTexture   = "pngegg.png"
	DemoVertex   = "simple.vs"
	DemoFragment = "simple.fs"
)

// DemoObjects returns the three demo quads with their textures in imgDir:
// one spinning about Y around its own center, a red tinted one offset
// to the right spinning about Y around the origin, and one raised by half
// its size spinning about X around its own center with a dark tint.
func DemoObjects(imgDir string) []*Object {
	logo := filepath.Join(imgDir, LogoTexture)

	q1 := NewQuad("center", math32.Vec3(0, 0, 0), 1)
	q1.Texture = logo

	q2 := NewQuad("orbit", math32.Vec3(1.5, 0, 0), 1)
	q2.Texture = logo

	q3 := NewQuad("flip", math32.Vec3(0, 0.5, 0), 1)
	q3.Texture = filepath.Join(imgDir, EggTexture)

	return []*Object{
		{Shape: q1, Spin: math32.Vec3(0, 1, 0), Pivot: CentroidPivot(), Uniforms: gpu.Uniforms{ColorOverride: [3]float32{1, 1, 1}}},
		{Shape: q2, Spin: math32.Vec3(0, 1, 0), Pivot: FixedPivot(math32.Vector3{}), Uniforms: gpu.Uniforms{ColorOverride: [3]float32{1, 0, 0}}},
		{Shape: q3, Spin: math32.Vec3(1, 0, 0), Pivot: CentroidPivot(), Uniforms: gpu.Uniforms{ColorOverride: [3]float32{-2, 0, 0}}},
	}
}
