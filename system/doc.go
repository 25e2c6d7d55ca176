// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package system opens windows with a GPU surface for OpenGL or Vulkan.
//
// A [WindowConfig] describes the window: its title, [WindowMode],
// [BackendVersion] and resize and move policies. [Open] builds it on a
// [Platform] with the [Builder] for its backend and switches it to
// fullscreen if needed. Platforms are provided by the drivers in
// system/driver.
package system
