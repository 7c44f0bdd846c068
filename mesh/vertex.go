// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package mesh

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/textrender"
)

// BuildVertexData serializes the renderer's committed glyphs into raw
// vertex bytes matching VertexLayout. Each glyph produces 4 vertices x
// 16 bytes = 64 bytes. Returns nil when nothing is committed.
func BuildVertexData(r *textrender.Renderer) []byte {
	positions := r.VertexPositions()
	texcoords := r.TextureCoordinates()
	if len(positions) == 0 {
		return nil
	}
	data := make([]byte, len(positions)*VertexStride)
	off := 0
	for i, p := range positions {
		uv := texcoords[i]
		writeVertex(data[off:], p.X, p.Y, uv.X, uv.Y)
		off += VertexStride
	}
	return data
}

// BuildVertexDataLayered serializes committed glyphs for a layered
// cache, matching VertexLayoutLayered. Each glyph produces 4 vertices x
// 20 bytes = 80 bytes. Panics for single-layer caches, use
// BuildVertexData for those.
func BuildVertexDataLayered(r *textrender.Renderer) []byte {
	positions := r.VertexPositions()
	texcoords := r.TextureCoordinates()
	layers := r.TextureLayers()
	if len(positions) == 0 {
		return nil
	}
	data := make([]byte, len(positions)*LayeredVertexStride)
	off := 0
	for i, p := range positions {
		uv := texcoords[i]
		writeVertex(data[off:], p.X, p.Y, uv.X, uv.Y)
		binary.LittleEndian.PutUint32(data[off+16:off+20], math.Float32bits(float32(layers[i])))
		off += LayeredVertexStride
	}
	return data
}

// writeVertex writes a single position+texcoord vertex into buf.
func writeVertex(buf []byte, x, y, u, v float32) {
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(x))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(y))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(u))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(v))
}

// BuildIndexData serializes the renderer's indices into raw bytes plus
// the wgpu index format to draw them with. 8-bit indices widen to
// 16-bit, WebGPU has no 8-bit index format. Returns nil and Uint16 when
// nothing is committed.
func BuildIndexData(r *textrender.Renderer) ([]byte, gputypes.IndexFormat) {
	switch r.IndexType() {
	case textrender.MeshIndexTypeUint8:
		indices := r.IndicesUint8()
		if len(indices) == 0 {
			return nil, gputypes.IndexFormatUint16
		}
		data := make([]byte, len(indices)*2)
		for i, idx := range indices {
			binary.LittleEndian.PutUint16(data[i*2:], uint16(idx))
		}
		return data, gputypes.IndexFormatUint16
	case textrender.MeshIndexTypeUint16:
		indices := r.IndicesUint16()
		data := make([]byte, len(indices)*2)
		for i, idx := range indices {
			binary.LittleEndian.PutUint16(data[i*2:], idx)
		}
		return data, gputypes.IndexFormatUint16
	default:
		indices := r.IndicesUint32()
		data := make([]byte, len(indices)*4)
		for i, idx := range indices {
			binary.LittleEndian.PutUint32(data[i*4:], idx)
		}
		return data, gputypes.IndexFormatUint32
	}
}
