package atlas

import (
	"fmt"
	"image"

	"github.com/gogpu/textrender"
)

// glyphPadding is the pixel gap kept around packed glyphs so linear
// sampling does not bleed between neighbors.
const glyphPadding = 1

// fontEntry maps a registered font to its contiguous range in the global
// glyph namespace.
type fontEntry struct {
	font  textrender.Font
	base  uint32
	count uint32
}

// shelf is one packing row of a page. Glyphs are placed left to right;
// a new shelf opens below the last one when no existing shelf fits.
type shelf struct {
	y      int
	height int
	x      int
}

// Cache is a glyph atlas implementing textrender.GlyphCache.
//
// Cache is not safe for concurrent use. Mutation and rendering are
// expected to happen on the same goroutine, with page uploads to the GPU
// taking a snapshot in between.
type Cache struct {
	width  int
	height int

	pages   []*image.Alpha
	shelves [][]shelf

	fonts []fontEntry

	// Indexed by global glyph ID. Index 0 is the invalid glyph every
	// unset mapping resolves to.
	offsets []textrender.Vec2
	layers  []int32
	rects   []image.Rectangle
}

// NewCache creates an atlas with the given page size and one initial
// page.
func NewCache(width, height int) *Cache {
	if width <= 0 || height <= 0 {
		panic("atlas: the page size must be positive")
	}
	c := &Cache{
		width:   width,
		height:  height,
		offsets: []textrender.Vec2{{}},
		layers:  []int32{0},
		rects:   []image.Rectangle{{}},
	}
	c.addPage()
	return c
}

func (c *Cache) addPage() {
	c.pages = append(c.pages, image.NewAlpha(image.Rect(0, 0, c.width, c.height)))
	c.shelves = append(c.shelves, nil)
}

// AddFont reserves a contiguous global ID range for glyphCount font-local
// glyphs and returns the font's ID within the cache. Every reserved slot
// starts out as the invalid glyph; fill them with AddGlyph.
//
// Adding the same font twice is a programming error.
func (c *Cache) AddFont(font textrender.Font, glyphCount int) int {
	if font == nil {
		panic("atlas: the font is nil")
	}
	if glyphCount < 0 {
		panic("atlas: negative glyph count")
	}
	if _, ok := c.FindFont(font); ok {
		panic("atlas: the font is already present in the cache")
	}

	base := uint32(len(c.offsets))
	for i := 0; i < glyphCount; i++ {
		c.offsets = append(c.offsets, textrender.Vec2{})
		c.layers = append(c.layers, 0)
		c.rects = append(c.rects, image.Rectangle{})
	}
	c.fonts = append(c.fonts, fontEntry{font: font, base: base, count: uint32(glyphCount)})
	return len(c.fonts) - 1
}

// AddGlyph stores the mask of one font-local glyph into the atlas. The
// offset is the Y-up distance from the glyph origin to the mask's
// bottom-left corner, as produced by gotext.Font.RasterizeGlyph.
//
// A nil or empty mask records a blank glyph, which is valid; spaces have
// no coverage. Returns an error when the mask exceeds the page size.
func (c *Cache) AddGlyph(fontID int, glyphID uint32, offset textrender.Vec2, mask *image.Alpha) error {
	if fontID < 0 || fontID >= len(c.fonts) {
		panic("atlas: font ID out of bounds")
	}
	entry := c.fonts[fontID]
	if glyphID >= entry.count {
		panic("atlas: glyph ID out of the font's range")
	}
	slot := entry.base + glyphID

	c.offsets[slot] = offset
	if mask == nil || mask.Bounds().Empty() {
		c.layers[slot] = 0
		c.rects[slot] = image.Rectangle{}
		return nil
	}

	w := mask.Bounds().Dx()
	h := mask.Bounds().Dy()
	if w+glyphPadding > c.width || h+glyphPadding > c.height {
		return fmt.Errorf("atlas: glyph of %dx%d does not fit a %dx%d page", w, h, c.width, c.height)
	}

	page, x, y := c.place(w, h)
	c.blitFlipped(c.pages[page], x, y, mask)

	c.layers[slot] = int32(page)
	c.rects[slot] = image.Rect(x, y, x+w, y+h)
	return nil
}

// place finds room for a w x h mask, opening shelves and pages as
// needed, and returns the page index and position.
func (c *Cache) place(w, h int) (page, x, y int) {
	need := h + glyphPadding

	for p := range c.pages {
		shelves := c.shelves[p]
		for i := range shelves {
			s := &shelves[i]
			if need <= s.height && s.x+w+glyphPadding <= c.width {
				x = s.x
				s.x += w + glyphPadding
				return p, x, s.y
			}
		}

		nextY := 0
		if len(shelves) > 0 {
			last := shelves[len(shelves)-1]
			nextY = last.y + last.height
		}
		if nextY+need <= c.height {
			c.shelves[p] = append(shelves, shelf{y: nextY, height: need, x: w + glyphPadding})
			return p, 0, nextY
		}
	}

	// Every page is full.
	c.addPage()
	p := len(c.pages) - 1
	c.shelves[p] = []shelf{{y: 0, height: need, x: w + glyphPadding}}
	return p, 0, 0
}

// blitFlipped copies the mask into the page with rows reversed, turning
// the top-down source into the cache's bottom-up storage.
func (c *Cache) blitFlipped(dst *image.Alpha, x, y int, mask *image.Alpha) {
	w := mask.Bounds().Dx()
	h := mask.Bounds().Dy()
	for row := 0; row < h; row++ {
		srcOff := mask.PixOffset(mask.Rect.Min.X, mask.Rect.Min.Y+h-1-row)
		dstOff := dst.PixOffset(x, y+row)
		copy(dst.Pix[dstOff:dstOff+w], mask.Pix[srcOff:srcOff+w])
	}
}

// Rasterizer supplies alpha masks for font-local glyph IDs. gotext.Font
// implements it.
type Rasterizer interface {
	// NumGlyphs returns the number of glyphs in the font.
	NumGlyphs() int

	// RasterizeGlyph renders one glyph to an alpha mask plus the Y-up
	// offset from the glyph origin to the mask's bottom-left corner. A
	// nil mask means the glyph has no coverage.
	RasterizeGlyph(glyphID uint32) (*image.Alpha, textrender.Vec2, error)
}

// AddRasterizedFont registers the font and fills its whole glyph range
// from the rasterizer. Glyphs the rasterizer fails on, such as color
// glyphs, stay blank; running out of atlas space is an error.
func (c *Cache) AddRasterizedFont(font textrender.Font, rast Rasterizer) (int, error) {
	count := rast.NumGlyphs()
	fontID := c.AddFont(font, count)
	for id := 0; id < count; id++ {
		mask, offset, err := rast.RasterizeGlyph(uint32(id))
		if err != nil {
			continue
		}
		if err := c.AddGlyph(fontID, uint32(id), offset, mask); err != nil {
			return fontID, err
		}
	}
	return fontID, nil
}

// FindFont returns the cache-local ID of the font, if present.
func (c *Cache) FindFont(font textrender.Font) (int, bool) {
	for i, entry := range c.fonts {
		if entry.font == font {
			return i, true
		}
	}
	return 0, false
}

// GlyphIDsInto converts font-local glyph IDs to cache-global ones.
// IDs outside the font's registered range map to the invalid glyph 0.
// fontLocal and cacheGlobal may be the same slice.
func (c *Cache) GlyphIDsInto(fontID int, fontLocal, cacheGlobal []uint32) {
	if fontID < 0 || fontID >= len(c.fonts) {
		panic("atlas: font ID out of bounds")
	}
	entry := c.fonts[fontID]
	for i, id := range fontLocal {
		if id < entry.count {
			cacheGlobal[i] = entry.base + id
		} else {
			cacheGlobal[i] = 0
		}
	}
}

// GlyphOffsets returns the per-glyph quad offsets, indexed by global ID.
func (c *Cache) GlyphOffsets() []textrender.Vec2 { return c.offsets }

// GlyphLayers returns the per-glyph page indices, indexed by global ID.
func (c *Cache) GlyphLayers() []int32 { return c.layers }

// GlyphRectangles returns the per-glyph page rectangles, indexed by
// global ID. Blank glyphs have a zero rectangle.
func (c *Cache) GlyphRectangles() []image.Rectangle { return c.rects }

// Size returns the page dimensions and the page count.
func (c *Cache) Size() (width, height, layers int) {
	return c.width, c.height, len(c.pages)
}

// Page returns the pixel data of one page for texture upload. Rows are
// stored bottom-up, see the package documentation.
func (c *Cache) Page(layer int) *image.Alpha {
	return c.pages[layer]
}

// Pages returns all pages, one per layer.
func (c *Cache) Pages() []*image.Alpha { return c.pages }

var _ textrender.GlyphCache = (*Cache)(nil)
