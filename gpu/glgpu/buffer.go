// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"

	"cogentcore.org/tumble/base/errors"
	"cogentcore.org/tumble/gpu"
	"github.com/go-gl/gl/v4.6-core/gl"
)

// Buffer is a vertex array object with its vertex and index buffers.
type Buffer struct {
	vao, vbo, ebo uint32
	n             int
}

// Upload creates a vertex array for the vertices, with the position
// at attribute 0 and the texture coordinates at attribute 1.
func (sf *Surface) Upload(verts []gpu.RenderVertex) (gpu.Buffer, error) {
	b := &Buffer{n: len(verts)}
	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	if data := gpu.VertexBytes(verts); len(data) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(data), gl.Ptr(data), gl.STREAM_DRAW)
	}
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, int32(gpu.VertexStride), uintptr(gpu.PositionOffset))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, int32(gpu.VertexStride), uintptr(gpu.TexCoordsOffset))

	gl.GenBuffers(1, &b.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	if err := glError("uploading vertices"); err != nil {
		b.Release()
		return nil, err
	}
	return b, nil
}

func (b *Buffer) Len() int {
	return b.n
}

// setIndices fills the element buffer of the vertex array.
func (b *Buffer) setIndices(indices []uint32) error {
	for _, ix := range indices {
		if int(ix) >= b.n {
			return errors.Configuration(fmt.Errorf("glgpu: index %d out of range for %d vertices", ix, b.n))
		}
	}
	data := gpu.IndexBytes(indices)
	gl.BindVertexArray(b.vao)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(data), gl.Ptr(data), gl.STREAM_DRAW)
	gl.BindVertexArray(0)
	return glError("uploading indices")
}

func (b *Buffer) Release() {
	if b.ebo != 0 {
		gl.DeleteBuffers(1, &b.ebo)
		b.ebo = 0
	}
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
		b.vbo = 0
	}
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
		b.vao = 0
	}
}
