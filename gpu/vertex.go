// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// RenderVertex is the vertex layout consumed by the shaders:
// location 0 is the position and location 1 the texture coordinates.
type RenderVertex struct {
	Position  [3]float32
	TexCoords [2]float32
}

const (
	// VertexStride is the size of a [RenderVertex] in bytes.
	VertexStride = int(unsafe.Sizeof(RenderVertex{}))

	// PositionOffset is the byte offset of [RenderVertex.Position].
	PositionOffset = int(unsafe.Offsetof(RenderVertex{}.Position))

	// TexCoordsOffset is the byte offset of [RenderVertex.TexCoords].
	TexCoordsOffset = int(unsafe.Offsetof(RenderVertex{}.TexCoords))
)

// VertexBytes returns the vertices packed in native byte order,
// ready to be copied into a vertex buffer.
func VertexBytes(verts []RenderVertex) []byte {
	fs := make([]float32, 0, 5*len(verts))
	for _, v := range verts {
		fs = append(fs, v.Position[:]...)
		fs = append(fs, v.TexCoords[:]...)
	}
	return float32Bytes(fs)
}

// IndexBytes returns the indices packed in native byte order.
func IndexBytes(indices []uint32) []byte {
	b := make([]byte, 0, 4*len(indices))
	for _, i := range indices {
		b = binary.NativeEndian.AppendUint32(b, i)
	}
	return b
}

func float32Bytes(fs []float32) []byte {
	b := make([]byte, 0, 4*len(fs))
	for _, f := range fs {
		b = binary.NativeEndian.AppendUint32(b, math.Float32bits(f))
	}
	return b
}
