// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package shaders compiles shader source files into SPIR-V ahead of time
and reads the resulting cache.

Every regular file in the source directory is a shader, with its stage
given by its extension: .vs, .fs, .gs, .tcs or .tes. Any other file is an
error. Each file is compiled to a cache file named after the full source
file name plus .spv (simple.vs becomes simple.vs.spv) that holds the
SPIR-V words in native byte order with no header.

Two compilers are provided: [GLSLC], which runs the external glslc program
on GLSL sources, and [Naga], which compiles WGSL sources in process.
*/
package shaders
