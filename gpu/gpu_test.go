// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"encoding/binary"
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVertexLayout(t *testing.T) {
	assert.Equal(t, 20, VertexStride)
	assert.Equal(t, 0, PositionOffset)
	assert.Equal(t, 12, TexCoordsOffset)

	b := VertexBytes([]RenderVertex{
		{Position: [3]float32{1, 2, 3}, TexCoords: [2]float32{4, 5}},
		{Position: [3]float32{-1, 0, 0.5}, TexCoords: [2]float32{0, 1}},
	})
	assert.Len(t, b, 40)
	word := func(i int) float32 {
		return math.Float32frombits(binary.NativeEndian.Uint32(b[4*i:]))
	}
	assert.Equal(t, float32(3), word(2))
	assert.Equal(t, float32(4), word(3))
	assert.Equal(t, float32(-1), word(5))
	assert.Equal(t, float32(1), word(9))
}

func TestIndexBytes(t *testing.T) {
	b := IndexBytes([]uint32{0, 1, 2, 0, 3, 2})
	assert.Len(t, b, 24)
	assert.Equal(t, uint32(3), binary.NativeEndian.Uint32(b[16:]))
}

func TestMaterialBytes(t *testing.T) {
	u := &Uniforms{ColorOverride: [3]float32{-2, 0, 0}}
	b := u.MaterialBytes()
	assert.Len(t, b, 16)
	assert.Equal(t, float32(-2), math.Float32frombits(binary.NativeEndian.Uint32(b)))
	assert.Equal(t, uint32(0), binary.NativeEndian.Uint32(b[12:]))
}

func TestImageHelpers(t *testing.T) {
	img := image.NewNRGBA(image.Rect(2, 3, 4, 6))
	img.Set(2, 3, color.NRGBA{255, 0, 0, 255})
	img.Set(3, 5, color.NRGBA{0, 0, 255, 255})

	rgba := ImageToRGBA(img)
	assert.Equal(t, image.Pt(2, 3), rgba.Rect.Size())
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, rgba.RGBAAt(0, 0))
	assert.Same(t, rgba, ImageToRGBA(rgba))

	flip := FlipY(rgba)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, flip.RGBAAt(0, 2))
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, flip.RGBAAt(1, 0))
	assert.Equal(t, color.RGBA{}, flip.RGBAAt(0, 0))

	r, g, b, a := ToFloat32(color.RGBA{0, 0, 255, 255})
	assert.Equal(t, [4]float32{0, 0, 1, 1}, [4]float32{r, g, b, a})
}
