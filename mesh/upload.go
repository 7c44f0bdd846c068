// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package mesh

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/textrender"
)

var (
	// ErrNilDevice is returned when creating an uploader without a device.
	ErrNilDevice = errors.New("mesh: device is nil")

	// ErrNilQueue is returned when creating an uploader without a queue.
	ErrNilQueue = errors.New("mesh: queue is nil")

	// ErrEmptyRenderer is returned when uploading a renderer with no
	// committed glyphs.
	ErrEmptyRenderer = errors.New("mesh: renderer has no committed glyphs")
)

// Mesh holds the GPU buffers for one batch of committed glyphs.
type Mesh struct {
	device hal.Device

	vertexBuf hal.Buffer
	indexBuf  hal.Buffer

	indexFormat gputypes.IndexFormat
	indexCount  uint32
	stride      uint64
}

// VertexBuffer returns the interleaved vertex buffer.
func (m *Mesh) VertexBuffer() hal.Buffer { return m.vertexBuf }

// IndexBuffer returns the index buffer.
func (m *Mesh) IndexBuffer() hal.Buffer { return m.indexBuf }

// IndexFormat returns the format of the index buffer.
func (m *Mesh) IndexFormat() gputypes.IndexFormat { return m.indexFormat }

// IndexCount returns the number of indices to draw, six per glyph.
func (m *Mesh) IndexCount() uint32 { return m.indexCount }

// VertexStride returns the byte stride of the vertex buffer, matching
// either VertexLayout or VertexLayoutLayered.
func (m *Mesh) VertexStride() uint64 { return m.stride }

// Draw records the mesh into a render pass. The caller has set the
// pipeline and bind groups already.
func (m *Mesh) Draw(rp hal.RenderPassEncoder) {
	if m.indexCount == 0 {
		return
	}
	rp.SetVertexBuffer(0, m.vertexBuf, 0)
	rp.SetIndexBuffer(m.indexBuf, m.indexFormat, 0)
	rp.DrawIndexed(m.indexCount, 1, 0, 0, 0)
}

// Destroy releases the GPU buffers. Idempotent.
func (m *Mesh) Destroy() {
	if m.indexBuf != nil {
		m.device.DestroyBuffer(m.indexBuf)
		m.indexBuf = nil
	}
	if m.vertexBuf != nil {
		m.device.DestroyBuffer(m.vertexBuf)
		m.vertexBuf = nil
	}
}

// Uploader creates GPU meshes from renderer output on a shared device.
type Uploader struct {
	device hal.Device
	queue  hal.Queue
}

// NewUploader creates an uploader on the given device and queue.
func NewUploader(device hal.Device, queue hal.Queue) (*Uploader, error) {
	if device == nil {
		return nil, ErrNilDevice
	}
	if queue == nil {
		return nil, ErrNilQueue
	}
	return &Uploader{device: device, queue: queue}, nil
}

// NewUploaderFromHandle creates an uploader from a host DeviceHandle.
// The handle or its device must expose HalDevice() any and HalQueue()
// any returning hal.Device and hal.Queue.
func NewUploaderFromHandle(handle DeviceHandle) (*Uploader, error) {
	if handle == nil {
		return nil, ErrNilDevice
	}
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := any(handle).(halProvider)
	if !ok {
		hp, ok = handle.Device().(halProvider)
	}
	if !ok {
		return nil, fmt.Errorf("mesh: device handle does not expose HAL types")
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("mesh: device handle HalDevice is not hal.Device")
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("mesh: device handle HalQueue is not hal.Queue")
	}
	return &Uploader{device: device, queue: queue}, nil
}

// Upload serializes the renderer's committed glyphs and uploads them
// into freshly created vertex and index buffers. The label prefixes the
// buffer debug labels.
func (u *Uploader) Upload(r *textrender.Renderer, label string) (*Mesh, error) {
	_, _, layers := r.Cache().Size()

	var vertexData []byte
	var stride uint64
	if layers > 1 {
		vertexData = BuildVertexDataLayered(r)
		stride = LayeredVertexStride
	} else {
		vertexData = BuildVertexData(r)
		stride = VertexStride
	}
	if len(vertexData) == 0 {
		return nil, ErrEmptyRenderer
	}
	indexData, indexFormat := BuildIndexData(r)

	vertBuf, err := u.createAndUploadBuffer(label+"_verts", vertexData,
		gputypes.BufferUsageVertex|gputypes.BufferUsageCopyDst)
	if err != nil {
		return nil, fmt.Errorf("create vertex buffer: %w", err)
	}
	idxBuf, err := u.createAndUploadBuffer(label+"_indices", indexData,
		gputypes.BufferUsageIndex|gputypes.BufferUsageCopyDst)
	if err != nil {
		u.device.DestroyBuffer(vertBuf)
		return nil, fmt.Errorf("create index buffer: %w", err)
	}

	return &Mesh{
		device:      u.device,
		vertexBuf:   vertBuf,
		indexBuf:    idxBuf,
		indexFormat: indexFormat,
		indexCount:  uint32(r.GlyphCount() * 6),
		stride:      stride,
	}, nil
}

// createAndUploadBuffer creates a GPU buffer and uploads data.
func (u *Uploader) createAndUploadBuffer(label string, data []byte, usage gputypes.BufferUsage) (hal.Buffer, error) {
	buf, err := u.device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  uint64(len(data)),
		Usage: usage,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", label, err)
	}
	u.queue.WriteBuffer(buf, 0, data)
	return buf, nil
}
