// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"image"

	"cogentcore.org/tumble/gpu"
	"github.com/go-gl/gl/v4.6-core/gl"
)

// Texture is a 2D RGBA8 OpenGL texture.
type Texture struct {
	handle uint32
	size   image.Point
}

// NewTexture uploads the image flipped vertically, since OpenGL
// texture rows start at the bottom, and generates its mipmaps.
func (sf *Surface) NewTexture(img image.Image) (gpu.Texture, error) {
	rgba := gpu.FlipY(gpu.ImageToRGBA(img))
	tx := &Texture{size: rgba.Rect.Size()}
	gl.GenTextures(1, &tx.handle)
	gl.BindTexture(gl.TEXTURE_2D, tx.handle)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(tx.size.X), int32(tx.size.Y), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	if err := glError("uploading texture"); err != nil {
		tx.Release()
		return nil, err
	}
	return tx, nil
}

func (tx *Texture) Size() image.Point {
	return tx.size
}

func (tx *Texture) Release() {
	if tx.handle != 0 {
		gl.DeleteTextures(1, &tx.handle)
		tx.handle = 0
	}
}
