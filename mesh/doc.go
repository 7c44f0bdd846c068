// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package mesh turns textrender.Renderer output into GPU buffers.
//
// The renderer produces per-glyph quad data as parallel arrays of vertex
// positions, texture coordinates and optionally texture layers. This
// package interleaves them into the byte layout the vertex shader reads,
// declares the matching gputypes vertex buffer layouts, and uploads both
// vertex and index data through a wgpu HAL device.
//
// The device is received from the host application via a DeviceHandle,
// never created here, so text meshes share GPU resources with whatever
// else the host renders.
package mesh
