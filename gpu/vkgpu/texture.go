// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vkgpu

import (
	"fmt"
	"image"

	"cogentcore.org/tumble/base/errors"
	"cogentcore.org/tumble/gpu"
	"github.com/cogentcore/webgpu/wgpu"
)

// Texture is a 2D RGBA8 texture and its view.
type Texture struct {
	texture *wgpu.Texture
	view    *wgpu.TextureView
	size    image.Point
}

func (sf *Surface) NewTexture(img image.Image) (gpu.Texture, error) {
	return sf.newTexture(img)
}

func (sf *Surface) newTexture(img image.Image) (*Texture, error) {
	rgba := gpu.ImageToRGBA(img)
	sz := rgba.Rect.Size()
	extent := wgpu.Extent3D{
		Width:              uint32(sz.X),
		Height:             uint32(sz.Y),
		DepthOrArrayLayers: 1,
	}
	tex, err := sf.device.CreateTexture(&wgpu.TextureDescriptor{
		Usage:         wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst,
		Dimension:     wgpu.TextureDimension2D,
		Size:          extent,
		Format:        wgpu.TextureFormatRGBA8Unorm,
		MipLevelCount: 1,
		SampleCount:   1,
	})
	if err != nil {
		return nil, errors.Environment(fmt.Errorf("vkgpu: creating texture: %w", err))
	}
	sf.queue.WriteTexture(
		&wgpu.ImageCopyTexture{
			Texture:  tex,
			MipLevel: 0,
			Origin:   wgpu.Origin3D{},
			Aspect:   wgpu.TextureAspectAll,
		},
		rgba.Pix,
		&wgpu.TextureDataLayout{
			Offset:       0,
			BytesPerRow:  uint32(rgba.Stride),
			RowsPerImage: uint32(sz.Y),
		},
		&extent,
	)
	view, err := tex.CreateView(nil)
	if err != nil {
		tex.Release()
		return nil, errors.Environment(fmt.Errorf("vkgpu: creating texture view: %w", err))
	}
	return &Texture{texture: tex, view: view, size: sz}, nil
}

func (tx *Texture) Size() image.Point {
	return tx.size
}

func (tx *Texture) Release() {
	if tx.view != nil {
		tx.view.Release()
		tx.view = nil
	}
	if tx.texture != nil {
		tx.texture.Release()
		tx.texture = nil
	}
}
