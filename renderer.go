package textrender

// MeshIndexType is the integer width of generated quad indices.
type MeshIndexType uint8

const (
	// MeshIndexTypeUint8 indexes up to 64 glyphs (256 vertices).
	MeshIndexTypeUint8 MeshIndexType = iota
	// MeshIndexTypeUint16 indexes up to 16384 glyphs (65536 vertices).
	MeshIndexTypeUint16
	// MeshIndexTypeUint32 indexes every glyph count the renderer can
	// hold.
	MeshIndexTypeUint32
)

// String returns the string representation of the index type.
func (t MeshIndexType) String() string {
	switch t {
	case MeshIndexTypeUint8:
		return "Uint8"
	case MeshIndexTypeUint16:
		return "Uint16"
	case MeshIndexTypeUint32:
		return "Uint32"
	default:
		return unknownStr
	}
}

// Size returns the byte size of one index of this type.
func (t MeshIndexType) Size() int {
	switch t {
	case MeshIndexTypeUint8:
		return 1
	case MeshIndexTypeUint16:
		return 2
	default:
		return 4
	}
}

// meshIndexTypeFor picks the smallest index type that can address the
// vertices of glyphCount quads.
func meshIndexTypeFor(glyphCount int) MeshIndexType {
	switch vertexCount := glyphCount * 4; {
	case vertexCount <= 1<<8:
		return MeshIndexTypeUint8
	case vertexCount <= 1<<16:
		return MeshIndexTypeUint16
	default:
		return MeshIndexTypeUint32
	}
}

// Renderer is a RendererCore that additionally expands committed glyphs
// into GPU-consumable quad data: four vertex positions and texture
// coordinates per glyph plus six indices forming two triangles, with the
// index type widening from 8-bit through 32-bit as the glyph count
// grows.
//
// The mesh subpackage turns this data into interleaved vertex buffers
// and uploads it through a wgpu device.
type Renderer struct {
	RendererCore

	vertexPositions    []Vec2
	textureCoordinates []Vec2
	textureLayers      []int32
	layered            bool

	indexType MeshIndexType
	indices8  []uint8
	indices16 []uint16
	indices32 []uint32
	// Count of glyphs the index storage currently covers.
	indexedGlyphs int
}

// NewRenderer creates a quad-expanding renderer on top of a core created
// the same way NewRendererCore would.
func NewRenderer(cache GlyphCache, flags Flags) *Renderer {
	return NewRendererWithAllocator(cache, nil, flags)
}

// NewRendererWithAllocator is like NewRenderer but with a custom glyph
// and run allocator, see NewRendererCoreWithAllocator.
func NewRendererWithAllocator(cache GlyphCache, alloc Allocator, flags Flags) *Renderer {
	r := &Renderer{RendererCore: *NewRendererCoreWithAllocator(cache, alloc, flags)}
	_, _, layers := cache.Size()
	r.layered = layers > 1
	return r
}

// VertexPositions returns four vertex positions per committed glyph.
func (r *Renderer) VertexPositions() []Vec2 {
	return r.vertexPositions[:4*r.glyphCount]
}

// TextureCoordinates returns four texture coordinates per committed
// glyph, normalized into [0, 1] by the cache bitmap size.
func (r *Renderer) TextureCoordinates() []Vec2 {
	return r.textureCoordinates[:4*r.glyphCount]
}

// TextureLayers returns the cache layer per vertex for layered caches,
// four entries per committed glyph. Panics for single-layer caches,
// whose texture coordinates are complete on their own.
func (r *Renderer) TextureLayers() []int32 {
	if !r.layered {
		panic("textrender: the glyph cache has a single layer, there are no layer indices")
	}
	return r.textureLayers[:4*r.glyphCount]
}

// IndexType returns the current width of generated indices. It only ever
// widens, growing with the committed glyph count.
func (r *Renderer) IndexType() MeshIndexType { return r.indexType }

// IndicesUint8 returns six indices per committed glyph. Panics when the
// index type widened past 8 bits.
func (r *Renderer) IndicesUint8() []uint8 {
	if r.indexType != MeshIndexTypeUint8 {
		panic("textrender: the index type is " + r.indexType.String() + ", not Uint8")
	}
	return r.indices8[:6*r.glyphCount]
}

// IndicesUint16 returns six indices per committed glyph. Panics unless
// the index type is exactly 16 bits.
func (r *Renderer) IndicesUint16() []uint16 {
	if r.indexType != MeshIndexTypeUint16 {
		panic("textrender: the index type is " + r.indexType.String() + ", not Uint16")
	}
	return r.indices16[:6*r.glyphCount]
}

// IndicesUint32 returns six indices per committed glyph. Panics unless
// the index type is exactly 32 bits.
func (r *Renderer) IndicesUint32() []uint32 {
	if r.indexType != MeshIndexTypeUint32 {
		panic("textrender: the index type is " + r.indexType.String() + ", not Uint32")
	}
	return r.indices32[:6*r.glyphCount]
}

// growVertexStorage makes the vertex arrays hold 4*glyphCount entries,
// preserving existing content.
func (r *Renderer) growVertexStorage(glyphCount int) {
	need := 4 * glyphCount
	if len(r.vertexPositions) >= need {
		return
	}

	grown := make([]Vec2, growCap(len(r.vertexPositions), need))
	copy(grown, r.vertexPositions)
	r.vertexPositions = grown

	grownTex := make([]Vec2, len(grown))
	copy(grownTex, r.textureCoordinates)
	r.textureCoordinates = grownTex

	if r.layered {
		grownLayers := make([]int32, len(grown))
		copy(grownLayers, r.textureLayers)
		r.textureLayers = grownLayers
	}
}

// updateIndices makes the index storage cover glyphCount quads in the
// smallest sufficient index type. Widening regenerates everything since
// all stored indices change their representation; otherwise only the
// missing tail is generated.
func (r *Renderer) updateIndices(glyphCount int) {
	indexType := meshIndexTypeFor(glyphCount)
	if indexType < r.indexType {
		// Never narrow: existing data stays addressable and indices
		// only depend on the glyph count.
		indexType = r.indexType
	}

	from := r.indexedGlyphs
	if indexType != r.indexType {
		from = 0
		r.indexType = indexType
	}
	if glyphCount <= from {
		return
	}

	switch indexType {
	case MeshIndexTypeUint8:
		if len(r.indices8) < 6*glyphCount {
			grown := make([]uint8, 6*growCap(len(r.indices8)/6, glyphCount))
			copy(grown, r.indices8)
			r.indices8 = grown
		}
		RenderGlyphQuadIndices(from, r.indices8[6*from:6*glyphCount])
	case MeshIndexTypeUint16:
		if len(r.indices16) < 6*glyphCount {
			grown := make([]uint16, 6*growCap(len(r.indices16)/6, glyphCount))
			copy(grown, r.indices16)
			r.indices16 = grown
		}
		r.indices8 = nil
		RenderGlyphQuadIndices(from, r.indices16[6*from:6*glyphCount])
	default:
		if len(r.indices32) < 6*glyphCount {
			grown := make([]uint32, 6*growCap(len(r.indices32)/6, glyphCount))
			copy(grown, r.indices32)
			r.indices32 = grown
		}
		r.indices8 = nil
		r.indices16 = nil
		RenderGlyphQuadIndices(from, r.indices32[6*from:6*glyphCount])
	}
	r.indexedGlyphs = glyphCount
}

// Render commits the in-progress block like RendererCore.Render and
// expands the newly committed glyphs into quad vertex and index data.
func (r *Renderer) Render() (Rect, RunRange) {
	rect, runs := r.RendererCore.Render()

	glyphCount := r.GlyphCount()
	r.growVertexStorage(glyphCount)
	r.updateIndices(glyphCount)

	positions := r.GlyphPositions()
	ids := r.GlyphIDs()
	ends := r.RunEnds()
	scales := r.RunScales()

	// Quad expansion needs the per-run scale, so the new block is
	// walked run by run.
	for run := runs.Begin; run < runs.End; run++ {
		var g0 uint32
		if run > 0 {
			g0 = ends[run-1]
		}
		g1 := ends[run]

		var layers []int32
		if r.layered {
			layers = r.textureLayers[4*g0 : 4*g1]
		}
		RenderGlyphQuads(r.cache, scales[run],
			positions[g0:g1], ids[g0:g1],
			r.vertexPositions[4*g0:4*g1], r.textureCoordinates[4*g0:4*g1],
			layers)
	}

	return rect, runs
}

// Clear discards glyph, run and quad data, keeping settings and
// capacity.
func (r *Renderer) Clear() {
	r.RendererCore.Clear()
	r.indexedGlyphs = 0
}

// Reset is Clear plus restoring all settings to their defaults. The
// index type stays widened; indices only depend on the glyph count, so a
// wider type than necessary stays valid.
func (r *Renderer) Reset() {
	r.RendererCore.Reset()
	r.indexedGlyphs = 0
}
