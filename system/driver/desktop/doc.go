// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package desktop implements the system platform interfaces with glfw
// for desktop operating systems. It creates OpenGL core contexts through
// glfw and Vulkan surfaces through WebGPU.
//
// glfw requires that every call is made from the main thread, so the
// program must call runtime.LockOSThread from an init function.
package desktop
