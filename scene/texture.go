// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"image"
	"io/fs"
	"log/slog"

	"cogentcore.org/tumble/base/errors"
	"cogentcore.org/tumble/base/iox/imagex"
)

// LoadTexture opens the image file for a texture. png, jpeg, gif,
// tiff, bmp and webp are supported. A missing or undecodable file is an
// [errors.ErrConfiguration] error.
func LoadTexture(path string) (image.Image, error) {
	img, format, err := imagex.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Configuration(fmt.Errorf("scene: texture %w", err))
	}
	if err != nil {
		return nil, errors.Configuration(fmt.Errorf("scene: texture %q: %w", path, err))
	}
	slog.Debug("decoded texture", "file", path, "format", format, "size", img.Bounds().Size())
	return img, nil
}
