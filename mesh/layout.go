// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package mesh

import (
	"github.com/gogpu/gputypes"
)

// VertexStride is the byte stride per vertex for single-layer caches.
// Layout per vertex:
//
//	position  (vec2<f32>) = 8 bytes  (location 0)
//	tex_coord (vec2<f32>) = 8 bytes  (location 1)
//
// Total = 16 bytes per vertex.
const VertexStride = 16

// LayeredVertexStride is the byte stride per vertex for layered caches.
// The layer index is carried as a float so the layout stays all-f32:
//
//	position  (vec2<f32>) = 8 bytes  (location 0)
//	tex_coord (vec2<f32>) = 8 bytes  (location 1)
//	layer     (f32)       = 4 bytes  (location 2)
//
// Total = 20 bytes per vertex.
const LayeredVertexStride = 20

// VertexLayout returns the vertex buffer layout matching BuildVertexData:
//
//	location 0: position (vec2<f32>)
//	location 1: tex_coord (vec2<f32>)
func VertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: VertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0}, // position
				{Format: gputypes.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1}, // tex_coord
			},
		},
	}
}

// VertexLayoutLayered returns the vertex buffer layout matching
// BuildVertexDataLayered, with the cache layer at location 2.
func VertexLayoutLayered() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: LayeredVertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0}, // position
				{Format: gputypes.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1}, // tex_coord
				{Format: gputypes.VertexFormatFloat32, Offset: 16, ShaderLocation: 2},  // layer
			},
		},
	}
}
