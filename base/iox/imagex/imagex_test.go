// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func TestFormatFromName(t *testing.T) {
	for name, want := range map[string]Formats{".png": PNG, "JPG": JPEG, "jpeg": JPEG, ".tif": TIFF, "bmp": BMP, "webp": WebP, "gif": GIF} {
		f, err := formatFromName(name)
		require.NoError(t, err)
		assert.Equal(t, want, f, name)
	}
	_, err := formatFromName("")
	assert.Error(t, err)
	_, err = formatFromName(".svg")
	assert.Error(t, err)
	assert.Equal(t, "tiff", TIFF.String())
	assert.Equal(t, "Formats(9)", Formats(9).String())
}

func TestOpen(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	img.Set(2, 1, color.RGBA{10, 20, 30, 255})
	encoders := map[Formats]func(io.Writer, image.Image) error{
		PNG:  png.Encode,
		BMP:  bmp.Encode,
		TIFF: func(w io.Writer, m image.Image) error { return tiff.Encode(w, m, nil) },
	}
	for f, encode := range encoders {
		// the extension does not match, so the format comes from the contents
		fn := filepath.Join(t.TempDir(), "texture.img")
		file, err := os.Create(fn)
		require.NoError(t, err)
		require.NoError(t, encode(file, img))
		require.NoError(t, file.Close())

		got, gf, err := Open(fn)
		require.NoError(t, err, f)
		assert.Equal(t, f, gf)
		assert.Equal(t, image.Pt(3, 2), got.Bounds().Size())
		r, g, b, _ := got.At(2, 1).RGBA()
		assert.Equal(t, [3]uint32{10 * 0x101, 20 * 0x101, 30 * 0x101}, [3]uint32{r, g, b}, f)
	}

	_, _, err := Open(filepath.Join(t.TempDir(), "missing.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)
	_, _, err = Read(strings.NewReader("not an image"))
	assert.ErrorIs(t, err, image.ErrFormat)
}
