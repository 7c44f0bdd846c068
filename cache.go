package textrender

import "image"

// GlyphCache maps fonts and font-local glyph IDs to cache-global glyphs
// and exposes the per-glyph geometry needed to build textured quads. The
// atlas subpackage provides a shelf-packed implementation; any rasterizer
// that fills the same contract works.
//
// The cache is a read-only collaborator from the renderer's point of
// view: the renderer never inserts glyphs, it only looks them up. Fonts
// must be added to the cache before text using them is rendered; unknown
// fonts or glyphs map to the cache's invalid glyph at index 0.
type GlyphCache interface {
	// FindFont returns the cache-local ID of the font, if present.
	FindFont(font Font) (int, bool)

	// GlyphIDsInto converts font-local glyph IDs to cache-global ones.
	// Unknown glyphs map to 0, the invalid glyph. fontLocal and
	// cacheGlobal have the same length and may be the same slice.
	GlyphIDsInto(fontID int, fontLocal, cacheGlobal []uint32)

	// GlyphOffsets returns, indexed by cache-global glyph ID, the offset
	// of the glyph's quad relative to the glyph position, in font units
	// at the font's reference size.
	GlyphOffsets() []Vec2

	// GlyphLayers returns, indexed by cache-global glyph ID, the atlas
	// layer the glyph is on. All zero for single-layer caches.
	GlyphLayers() []int32

	// GlyphRectangles returns, indexed by cache-global glyph ID, the
	// pixel rectangle of the glyph in the cache bitmap.
	GlyphRectangles() []image.Rectangle

	// Size returns the cache bitmap dimensions. A layer count above one
	// signals an array texture; RenderGlyphQuads then requires a layer
	// output.
	Size() (width, height, layers int)
}
