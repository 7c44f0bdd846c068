package textrender

// glyphQuad computes the quad rectangle of a single glyph: the glyph
// position plus the cache offset, extended by the cache rectangle size,
// both scaled from the font reference size to the rendering size.
func glyphQuad(cache GlyphCache, scale float32, position Vec2, id uint32) Rect {
	offsets := cache.GlyphOffsets()
	rects := cache.GlyphRectangles()
	r := rects[id]
	size := V2(float32(r.Dx()), float32(r.Dy()))
	return RectFromSize(position.Add(offsets[id].Mul(scale)), size.Mul(scale))
}

// GlyphQuadBounds returns the union of quad rectangles of the given
// glyphs, i.e. the actual ink bounds of the rendered text as opposed to
// the advance-based metrics RenderLineGlyphPositions produces. Used for
// AlignmentGlyphBounds without writing any vertex data.
//
// With zero glyphs the returned rectangle is all zeros.
func GlyphQuadBounds(cache GlyphCache, scale float32, positions []Vec2, ids []uint32) Rect {
	if len(positions) != len(ids) {
		panic("textrender: positions and ids must have the same length")
	}

	var bounds Rect
	for i := range positions {
		bounds = bounds.Join(glyphQuad(cache, scale, positions[i], ids[i]))
	}
	return bounds
}

// RenderGlyphQuads expands glyphs into 4 vertices each. Vertex corners
// are emitted in a fixed (0,0)-(1,0)-(0,1)-(1,1) order interpolated
// between the quad's min and max corners; texture coordinates come from
// the glyph's cache rectangle scaled into [0,1] by the cache bitmap size.
//
// layers receives the per-glyph cache layer repeated for all 4 vertices
// and is required when the cache has more than one layer; pass nil for
// single-layer caches.
//
// vertexPositions and textureCoordinates are 4 times the glyph count.
// The glyph inputs may share backing storage with the vertex outputs:
// glyphs are processed back to front, so slot i is read in full before
// the vertex slots 4i..4i+3, which are always at or past it, get written.
func RenderGlyphQuads(cache GlyphCache, scale float32, glyphPositions []Vec2, glyphIDs []uint32, vertexPositions, textureCoordinates []Vec2, layers []int32) {
	count := len(glyphPositions)
	if len(glyphIDs) != count {
		panic("textrender: glyph positions and ids must have the same length")
	}
	if len(vertexPositions) != 4*count || len(textureCoordinates) != 4*count {
		panic("textrender: vertex output must be 4 times the glyph count")
	}

	cacheW, cacheH, cacheLayers := cache.Size()
	if cacheLayers > 1 && layers == nil {
		panic("textrender: the cache has multiple layers, a layer output is required")
	}
	if layers != nil && len(layers) != 4*count {
		panic("textrender: layer output must be 4 times the glyph count")
	}

	rects := cache.GlyphRectangles()
	glyphLayers := cache.GlyphLayers()
	invCacheSize := V2(1/float32(cacheW), 1/float32(cacheH))

	for i := count - 1; i >= 0; i-- {
		id := glyphIDs[i]
		quad := glyphQuad(cache, scale, glyphPositions[i], id)

		r := rects[id]
		texMin := V2(float32(r.Min.X), float32(r.Min.Y))
		texMax := V2(float32(r.Max.X), float32(r.Max.Y))
		texMin = V2(texMin.X*invCacheSize.X, texMin.Y*invCacheSize.Y)
		texMax = V2(texMax.X*invCacheSize.X, texMax.Y*invCacheSize.Y)

		layer := glyphLayers[id]

		for c := 0; c < 4; c++ {
			x := float32(c & 1)
			y := float32(c >> 1)
			v := 4*i + c
			vertexPositions[v] = V2(
				quad.Min.X+(quad.Max.X-quad.Min.X)*x,
				quad.Min.Y+(quad.Max.Y-quad.Min.Y)*y)
			textureCoordinates[v] = V2(
				texMin.X+(texMax.X-texMin.X)*x,
				texMin.Y+(texMax.Y-texMin.Y)*y)
			if layers != nil {
				layers[v] = layer
			}
		}
	}
}

// IndexType constrains the integer widths quad indices can be emitted
// into.
type IndexType interface {
	~uint8 | ~uint16 | ~uint32
}

// RenderGlyphQuadIndices emits two triangles per glyph using the
// canonical (0,1,2)(2,1,3) corner pattern, with each index shifted by
// glyphOffset quads:
//
//	2---3 2 3---5
//	|   | |\ \  |
//	|   | | \ \ |
//	|   | |  \ \|
//	0---1 0---1 4
//
// indices holds 6 entries per glyph; its length defines the glyph count.
// The largest emitted index is (glyphOffset+count)*4-1, and it has to fit
// the index type; overflow means the caller failed to widen the index
// type in time and is a programming error.
func RenderGlyphQuadIndices[T IndexType](glyphOffset int, indices []T) {
	if len(indices)%6 != 0 {
		panic("textrender: the index count has to be divisible by 6")
	}
	count := len(indices) / 6

	maxIndex := uint64(glyphOffset+count)*4 - 1
	var limit uint64
	switch any(T(0)).(type) {
	case uint8:
		limit = 0xff
	case uint16:
		limit = 0xffff
	default:
		limit = 0xffffffff
	}
	if count > 0 && maxIndex > limit {
		panic("textrender: the largest quad index does not fit the index type")
	}

	for i := 0; i < count; i++ {
		vertex := T(uint32(glyphOffset+i) * 4)
		pos := i * 6
		indices[pos] = vertex
		indices[pos+1] = vertex + 1
		indices[pos+2] = vertex + 2
		indices[pos+3] = vertex + 2
		indices[pos+4] = vertex + 1
		indices[pos+5] = vertex + 3
	}
}

// glyphRangeForBytesAscending resolves a byte range against ascending
// cluster values, snapping outward to cluster boundaries.
func glyphRangeForBytesAscending(clusters []uint32, begin, end uint32) (uint32, uint32) {
	n := uint32(len(clusters))

	// First glyph at or past the range start.
	var i uint32
	for i < n && clusters[i] < begin {
		i++
	}

	if begin == end {
		return i, i
	}

	// The range start may fall into the middle of the preceding cluster,
	// a ligature or a multi-byte sequence. If so the whole cluster is
	// included.
	g0 := i
	if g0 > 0 && (g0 == n || clusters[g0] > begin) {
		prev := clusters[g0-1]
		for g0 > 0 && clusters[g0-1] == prev {
			g0--
		}
	}

	// First glyph whose cluster starts at or past the range end.
	g1 := i
	for g1 < n && clusters[g1] < end {
		g1++
	}

	return g0, g1
}

// GlyphRangeForBytes returns the glyph index range corresponding to the
// byte range [begin, end) in the text the clusters were shaped from. The
// cluster values have to be monotonic: non-decreasing for left-to-right
// runs or non-increasing for right-to-left runs, as filled in by
// Shaper.GlyphClustersInto.
//
// The returned range is the minimal one fully covering the byte range,
// snapped outward to cluster boundaries: a byte range splitting a
// ligature or a multi-byte cluster covers the whole cluster.
//
// Degenerate inputs stay valid: an empty cluster slice returns (0, 0); an
// empty byte range returns an empty glyph range at the matching position;
// begin > end queries the swapped byte range and returns the bounds
// swapped the same way, preserving order for reverse-range queries on
// right-to-left text.
func GlyphRangeForBytes(clusters []uint32, begin, end uint32) (uint32, uint32) {
	if len(clusters) == 0 {
		return 0, 0
	}

	if begin > end {
		g1, g0 := GlyphRangeForBytes(clusters, end, begin)
		return g0, g1
	}

	if clusters[0] <= clusters[len(clusters)-1] {
		return glyphRangeForBytesAscending(clusters, begin, end)
	}
	return glyphRangeForBytesDescending(clusters, begin, end)
}

// glyphRangeForBytesDescending is the mirror image of the ascending
// case: right-to-left runs order glyphs back to front in byte space, so
// the scans run from the slice end and the roles of the two bounds swap.
func glyphRangeForBytesDescending(clusters []uint32, begin, end uint32) (uint32, uint32) {
	n := uint32(len(clusters))

	// Trailing glyphs sit at the lowest byte offsets. Skip those fully
	// below the range start.
	t := n
	for t > 0 && clusters[t-1] < begin {
		t--
	}

	if begin == end {
		return t, t
	}

	// Snap outward when the range start falls inside the cluster at t.
	g1 := t
	if t < n && (t == 0 || clusters[t-1] > begin) {
		v := clusters[t]
		for g1 < n && clusters[g1] == v {
			g1++
		}
	}

	// Continue backward until a cluster starts at or past the range end.
	g0 := t
	for g0 > 0 && clusters[g0-1] < end {
		g0--
	}

	return g0, g1
}
