// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image"
	"image/color"
	"image/draw"
)

// ImageToRGBA returns the image as an *image.RGBA with its bounds
// starting at the origin, converting it if needed.
func ImageToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rectangle{Max: b.Size()})
	draw.Draw(rgba, rgba.Rect, img, b.Min, draw.Src)
	return rgba
}

// FlipY returns a copy of the image upside down, for APIs such as
// OpenGL whose texture rows start at the bottom.
func FlipY(img *image.RGBA) *image.RGBA {
	sz := img.Rect.Size()
	out := image.NewRGBA(image.Rectangle{Max: sz})
	for y := range sz.Y {
		src := img.Pix[y*img.Stride : y*img.Stride+4*sz.X]
		dy := sz.Y - 1 - y
		copy(out.Pix[dy*out.Stride:], src)
	}
	return out
}

// ToFloat32 returns the non-premultiplied color components in [0, 1].
func ToFloat32(c color.Color) (r, g, b, a float32) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return float32(n.R) / 255, float32(n.G) / 255, float32(n.B) / 255, float32(n.A) / 255
}
