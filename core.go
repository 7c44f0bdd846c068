package textrender

import "strings"

// RendererCore is the incremental text layout engine. Text is supplied in
// pieces through Add, each piece shaped by a caller-provided Shaper, laid
// out on lines and aligned; Render finalizes everything added so far into
// one aligned block and commits the glyph and run data for reading.
//
// The core deals in glyph positions and cache-global glyph IDs only. The
// Renderer type layers vertex and index generation on top; use the core
// alone when feeding positions into a custom vertex format or doing pure
// measurement.
//
// Glyph and run storage grows on demand through an Allocator; data added
// so far survives every growth. The accessors expose only the committed
// prefix up to GlyphCount and RunCount; of the in-progress suffix just
// the counts are observable, through RenderingGlyphCount and
// RenderingRunCount.
//
// A RendererCore is not safe for concurrent use; use one instance per
// goroutine. The glyph cache and fonts are borrowed, never owned, and
// must outlive the renderer.
type RendererCore struct {
	cache GlyphCache
	alloc Allocator
	flags Flags

	glyphs glyphBuffer
	runs   runBuffer

	// Committed counts, mutated only at the end of Render and in Clear.
	glyphCount uint32
	runCount   uint32

	// In-progress counts, always >= the committed ones.
	renderingGlyphCount uint32
	renderingRunCount   uint32

	// Settings, mutable only while not rendering.
	cursor          Vec2
	alignment       Alignment
	lineAdvance     float32
	layoutDirection LayoutDirection

	// Transient per-block state, reset when a block is committed.
	resolvedAlignment    Alignment
	alignmentResolved    bool
	renderingLineStart   Vec2
	renderingLineCursor  Vec2
	renderingLineAdvance Vec2
	blockRunBegin        uint32
	blockRect            Rect
	lineGlyphBegin       uint32
	lineRect             Rect
}

// NewRendererCore creates a renderer using the given glyph cache for
// glyph ID mapping and quad geometry, with glyph and run storage managed
// by a geometrically growing builtin allocator.
func NewRendererCore(cache GlyphCache, flags Flags) *RendererCore {
	return NewRendererCoreWithAllocator(cache, nil, flags)
}

// NewRendererCoreWithAllocator is like NewRendererCore but places glyph
// and run data through a custom Allocator. A nil allocator falls back to
// the builtin one.
func NewRendererCoreWithAllocator(cache GlyphCache, alloc Allocator, flags Flags) *RendererCore {
	if cache == nil {
		panic("textrender: the glyph cache is nil")
	}
	if alloc == nil {
		alloc = builtinAllocator{}
	}
	return &RendererCore{
		cache:     cache,
		alloc:     alloc,
		flags:     flags,
		alignment: AlignmentMiddleCenter,
	}
}

func (r *RendererCore) hasClusters() bool {
	return r.flags&FlagGlyphClusters != 0
}

// Flags returns the flags the renderer was created with.
func (r *RendererCore) Flags() Flags { return r.flags }

// Cache returns the glyph cache the renderer was created with.
func (r *RendererCore) Cache() GlyphCache { return r.cache }

// GlyphCount returns the count of committed glyphs.
func (r *RendererCore) GlyphCount() int { return int(r.glyphCount) }

// RunCount returns the count of committed runs.
func (r *RendererCore) RunCount() int { return int(r.runCount) }

// RenderingGlyphCount returns the count of glyphs including those of the
// in-progress block.
func (r *RendererCore) RenderingGlyphCount() int { return int(r.renderingGlyphCount) }

// RenderingRunCount returns the count of runs including those of the
// in-progress block.
func (r *RendererCore) RenderingRunCount() int { return int(r.renderingRunCount) }

// GlyphCapacity returns how many glyphs fit the current storage.
func (r *RendererCore) GlyphCapacity() int { return r.glyphs.capacity }

// RunCapacity returns how many runs fit the current storage.
func (r *RendererCore) RunCapacity() int { return r.runs.capacity }

// IsRendering reports whether there is an in-progress block, i.e. glyphs
// or runs that were added but not committed by Render yet. Settings
// cannot change while rendering.
func (r *RendererCore) IsRendering() bool {
	return r.renderingGlyphCount != r.glyphCount || r.renderingRunCount != r.runCount
}

func (r *RendererCore) assertNotRendering(setting string) {
	if r.IsRendering() {
		panic("textrender: " + setting + " cannot be changed while rendering")
	}
}

// Cursor returns the position the next rendered block is placed at.
func (r *RendererCore) Cursor() Vec2 { return r.cursor }

// SetCursor sets the position the next rendered block is placed at.
// Expected to be called before the first Add of a block; calling it while
// rendering is a programming error.
func (r *RendererCore) SetCursor(cursor Vec2) *RendererCore {
	r.assertNotRendering("the cursor")
	r.cursor = cursor
	return r
}

// Alignment returns the alignment of the next rendered block.
func (r *RendererCore) Alignment() Alignment { return r.alignment }

// SetAlignment sets the alignment of the next rendered block. The
// default is AlignmentMiddleCenter. Calling it while rendering is a
// programming error.
func (r *RendererCore) SetAlignment(alignment Alignment) *RendererCore {
	r.assertNotRendering("the alignment")
	r.alignment = alignment
	return r
}

// LineAdvance returns the explicit line advance, 0 when lines advance by
// the line height of the first font used on a block.
func (r *RendererCore) LineAdvance() float32 { return r.lineAdvance }

// SetLineAdvance overrides the distance between adjacent baselines. Set
// to 0 to derive it from the first font used. Calling it while rendering
// is a programming error.
func (r *RendererCore) SetLineAdvance(advance float32) *RendererCore {
	r.assertNotRendering("the line advance")
	r.lineAdvance = advance
	return r
}

// LayoutDirection returns the direction lines advance in.
func (r *RendererCore) LayoutDirection() LayoutDirection { return r.layoutDirection }

// SetLayoutDirection sets the direction lines advance in. Only
// LayoutDirectionHorizontalTopToBottom is implemented; the setter exists
// so the unimplemented values are rejected in a defined place. Calling it
// while rendering is a programming error.
func (r *RendererCore) SetLayoutDirection(direction LayoutDirection) *RendererCore {
	r.assertNotRendering("the layout direction")
	if direction != LayoutDirectionHorizontalTopToBottom {
		panic("textrender: layout direction " + direction.String() + " is not implemented")
	}
	r.layoutDirection = direction
	return r
}

// GlyphPositions returns the positions of all committed glyphs.
func (r *RendererCore) GlyphPositions() []Vec2 {
	return r.glyphs.arrays.Positions[:r.glyphCount]
}

// GlyphIDs returns the cache-global IDs of all committed glyphs.
func (r *RendererCore) GlyphIDs() []uint32 {
	return r.glyphs.arrays.IDs[:r.glyphCount]
}

// GlyphClusters returns the byte-cluster indices of all committed
// glyphs. Only available when the renderer was created with
// FlagGlyphClusters.
func (r *RendererCore) GlyphClusters() []uint32 {
	if !r.hasClusters() {
		panic("textrender: glyph clusters are not tracked, create the renderer with FlagGlyphClusters")
	}
	return r.glyphs.arrays.Clusters[:r.glyphCount]
}

// RunScales returns the scales of all committed runs.
func (r *RendererCore) RunScales() []float32 {
	return r.runs.arrays.Scales[:r.runCount]
}

// RunEnds returns the exclusive glyph end offsets of all committed runs.
// Run i covers glyphs RunEnds()[i-1] (or 0 for the first run) up to
// RunEnds()[i].
func (r *RendererCore) RunEnds() []uint32 {
	return r.runs.arrays.Ends[:r.runCount]
}

// GlyphsForRuns converts a run range, such as the one returned by
// Render, to a glyph index range usable with the glyph accessors and
// with the quad expansion helpers.
func (r *RendererCore) GlyphsForRuns(runs RunRange) (uint32, uint32) {
	if runs.Begin > runs.End || runs.End > r.runCount {
		panic("textrender: run range out of bounds")
	}
	ends := r.runs.arrays.Ends
	var begin, end uint32
	if runs.Begin > 0 {
		begin = ends[runs.Begin-1]
	}
	if runs.End > 0 {
		end = ends[runs.End-1]
	}
	return begin, end
}

// Reserve grows the glyph and run storage upfront so that the given
// totals fit without reallocation during Add.
func (r *RendererCore) Reserve(glyphCapacity, runCapacity int) *RendererCore {
	r.glyphs.ensure(r.alloc, int(r.renderingGlyphCount), glyphCapacity, r.hasClusters())
	r.runs.ensure(r.alloc, int(r.renderingRunCount), runCapacity)
	return r
}

// resolveAlignment fixes the block alignment from the given direction.
// Once resolved it stays until the block is committed.
func (r *RendererCore) resolveAlignment(direction ShapeDirection) {
	r.resolvedAlignment = ResolveAlignment(r.alignment, direction)
	r.alignmentResolved = true
}

// finalizeLine horizontally aligns the open line and folds it into the
// block rectangle. Alignment resolution is forced at this point: a line
// break is the latest moment the line's glyphs can still be shifted as
// one unit.
func (r *RendererCore) finalizeLine() {
	if !r.alignmentResolved {
		r.resolveAlignment(ShapeDirectionUnspecified)
	}
	positions := r.glyphs.arrays.Positions[r.lineGlyphBegin:r.renderingGlyphCount]
	rect := AlignRenderedLine(r.lineRect, r.layoutDirection, r.resolvedAlignment, positions)
	r.blockRect = r.blockRect.Join(rect)
	r.lineRect = Rect{}
	r.lineGlyphBegin = r.renderingGlyphCount
}

// advanceLine moves the line origin down by one line advance and resets
// the line cursor to it.
func (r *RendererCore) advanceLine() {
	r.renderingLineStart = r.renderingLineStart.Sub(r.renderingLineAdvance)
	r.renderingLineCursor = r.renderingLineStart
}

// Add shapes text[begin:end] with the given shaper at the given size and
// lays the result out onto the in-progress block, splitting on newline
// bytes. It can be called repeatedly, with different shapers, fonts and
// sizes, before a single Render call commits the block.
//
// The shaper's font has to be opened and present in the glyph cache.
// Returns the receiver for call chaining.
func (r *RendererCore) Add(shaper Shaper, size float32, text string, begin, end int, features []FeatureRange) *RendererCore {
	font := shaper.Font()
	if !font.IsOpened() {
		panic("textrender: the shaper font is not opened")
	}
	fontID, ok := r.cache.FindFont(font)
	if !ok {
		panic("textrender: the font is not present in the glyph cache")
	}
	if begin < 0 || end > len(text) || begin > end {
		panic("textrender: byte range out of bounds")
	}

	scale := size / font.Size()

	// The first Add of a block decides the line advance for the whole
	// block: the explicit setting when there is one, the first used
	// font's scaled line height otherwise.
	if r.renderingLineAdvance.IsZero() {
		if r.lineAdvance != 0 {
			r.renderingLineAdvance = V2(0, r.lineAdvance)
		} else {
			r.renderingLineAdvance = V2(0, font.LineHeight()*scale)
		}
	}

	glyphsBefore := r.renderingGlyphCount

	for segBegin := begin; ; {
		segEnd := end
		newline := strings.IndexByte(text[segBegin:end], '\n')
		if newline >= 0 {
			segEnd = segBegin + newline
		}

		if segEnd > segBegin {
			r.addLineSegment(shaper, font, fontID, size, scale, text, segBegin, segEnd, features)
		}

		if newline < 0 {
			break
		}
		r.finalizeLine()
		r.advanceLine()
		segBegin = segEnd + 1
	}

	// One run per Add call that produced glyphs. The scale is uniform
	// across the call, which is exactly what makes a run.
	if r.renderingGlyphCount > glyphsBefore {
		r.runs.ensure(r.alloc, int(r.renderingRunCount), int(r.renderingRunCount)+1)
		r.runs.arrays.Scales[r.renderingRunCount] = scale
		r.runs.arrays.Ends[r.renderingRunCount] = r.renderingGlyphCount
		r.renderingRunCount++
	}

	return r
}

// addLineSegment shapes one newline-free segment and appends its glyphs
// to the open line.
func (r *RendererCore) addLineSegment(shaper Shaper, font Font, fontID int, size, scale float32, text string, begin, end int, features []FeatureRange) {
	glyphCount := shaper.Shape(text, begin, end, features)

	direction := shaper.Direction()
	switch direction {
	case ShapeDirectionUnspecified, ShapeDirectionLeftToRight, ShapeDirectionRightToLeft:
	default:
		panic("textrender: shape direction " + direction.String() + " is not supported")
	}

	if glyphCount != 0 {
		total := int(r.renderingGlyphCount) + glyphCount
		r.glyphs.ensure(r.alloc, int(r.renderingGlyphCount), total, r.hasClusters())

		arrays := &r.glyphs.arrays
		positions := arrays.Positions[r.renderingGlyphCount:total]
		advances := arrays.Advances[r.renderingGlyphCount:total]
		ids := arrays.IDs[r.renderingGlyphCount:total]

		// Positions are filled with font-relative offsets first and
		// converted in place; RenderLineGlyphPositions reads each
		// element before overwriting it.
		shaper.GlyphOffsetsAdvancesInto(positions, advances)
		rect := RenderLineGlyphPositions(font, size, positions, advances, positions, &r.renderingLineCursor)

		shaper.GlyphIDsInto(ids)
		r.cache.GlyphIDsInto(fontID, ids, ids)

		if r.hasClusters() {
			shaper.GlyphClustersInto(arrays.Clusters[r.renderingGlyphCount:total])
		}

		if r.alignment.HasGlyphBounds() {
			rect = GlyphQuadBounds(r.cache, scale, positions, ids)
		}
		r.lineRect = r.lineRect.Join(rect)

		r.renderingGlyphCount = uint32(total)
	}

	// Alignment resolves off the first shaped content that knows its
	// direction; until then every chunk gets another chance.
	if !r.alignmentResolved && direction != ShapeDirectionUnspecified {
		r.resolveAlignment(direction)
	}
}

// Render finalizes the in-progress block: the still-open line is aligned,
// the whole block is vertically aligned and translated to the cursor, and
// all glyphs and runs added since the last Render become committed.
//
// Returns the bounding rectangle of the block placed at the cursor and
// the range of runs the block consists of. Rendering nothing is valid and
// returns a degenerate rectangle at the cursor with an empty run range.
func (r *RendererCore) Render() (Rect, RunRange) {
	r.finalizeLine()

	runs := RunRange{Begin: r.blockRunBegin, End: r.renderingRunCount}
	positions := r.glyphs.arrays.Positions[r.glyphCount:r.renderingGlyphCount]

	rect := AlignRenderedBlock(r.blockRect, r.layoutDirection, r.resolvedAlignment, positions)

	// The cursor applies after alignment, keeping alignment relative to
	// the text's own origin no matter where the block ends up.
	rect = rect.Translated(r.cursor)
	for i := range positions {
		positions[i] = positions[i].Add(r.cursor)
	}

	r.glyphCount = r.renderingGlyphCount
	r.runCount = r.renderingRunCount
	r.resetBlockState()

	return rect, runs
}

// resetBlockState clears all transient per-block state, leaving committed
// data and settings alone.
func (r *RendererCore) resetBlockState() {
	r.alignmentResolved = false
	r.resolvedAlignment = 0
	r.renderingLineStart = Vec2{}
	r.renderingLineCursor = Vec2{}
	r.renderingLineAdvance = Vec2{}
	r.blockRunBegin = r.runCount
	r.blockRect = Rect{}
	r.lineGlyphBegin = r.glyphCount
	r.lineRect = Rect{}
}

// Clear discards all committed and in-progress glyphs and runs, keeping
// settings and, with the builtin allocator, storage capacity. Custom
// allocators observe a zero-size allocation so they can reset their own
// bookkeeping.
func (r *RendererCore) Clear() {
	r.glyphCount = 0
	r.runCount = 0
	r.renderingGlyphCount = 0
	r.renderingRunCount = 0
	r.glyphs.clear(r.alloc, r.hasClusters())
	r.runs.clear(r.alloc)
	r.resetBlockState()
}

// Reset is Clear plus restoring the cursor, alignment, line advance and
// layout direction to their defaults.
func (r *RendererCore) Reset() {
	r.Clear()
	r.cursor = Vec2{}
	r.alignment = AlignmentMiddleCenter
	r.lineAdvance = 0
	r.layoutDirection = LayoutDirectionHorizontalTopToBottom
}
