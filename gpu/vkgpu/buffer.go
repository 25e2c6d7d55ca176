// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vkgpu

import (
	"fmt"

	"cogentcore.org/tumble/base/errors"
	"cogentcore.org/tumble/gpu"
	"github.com/cogentcore/webgpu/wgpu"
)

// materialSize is the size of the Material uniform block.
const materialSize = 16

// Buffer is a vertex buffer.
type Buffer struct {
	sf     *Surface
	buffer *wgpu.Buffer
	n      int
}

func (sf *Surface) Upload(verts []gpu.RenderVertex) (gpu.Buffer, error) {
	data := gpu.VertexBytes(verts)
	if len(data) == 0 {
		// zero sized buffers are invalid
		data = make([]byte, gpu.VertexStride)
	}
	buf, err := sf.newBuffer("vertices", data, wgpu.BufferUsageVertex)
	if err != nil {
		return nil, err
	}
	return &Buffer{sf: sf, buffer: buf, n: len(verts)}, nil
}

// newBuffer creates a buffer with the given usage holding data.
func (sf *Surface) newBuffer(label string, data []byte, usage wgpu.BufferUsage) (*wgpu.Buffer, error) {
	buf, err := sf.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: label,
		Size:  uint64(len(data)),
		Usage: usage | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, errors.Environment(fmt.Errorf("vkgpu: creating %s buffer: %w", label, err))
	}
	sf.queue.WriteBuffer(buf, 0, data)
	return buf, nil
}

func (b *Buffer) Len() int {
	return b.n
}

// Release frees the buffer once any frame using it has been submitted.
func (b *Buffer) Release() {
	if b.buffer != nil {
		b.sf.deferRelease(b.buffer)
		b.buffer = nil
	}
}
