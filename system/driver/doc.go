// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package driver selects the platform for the current build:
// glfw on desktop systems, or the offscreen platform with the
// offscreen build tag.
package driver
