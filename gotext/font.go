package gotext

import (
	"bytes"
	"fmt"
	"image"

	gtfont "github.com/go-text/typesetting/font"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/textrender"
)

// Font is a parsed font at a fixed reference size, implementing
// textrender.Font. It carries two views of the same data: the go-text
// tables used for shaping and the sfnt tables used for metrics and for
// rasterizing glyph masks.
//
// Font is not safe for concurrent use; the sfnt glyph loading buffer is
// shared between calls.
type Font struct {
	shaped *gtfont.Font
	parsed *opentype.Font
	buf    sfnt.Buffer

	size       float32
	ascent     float32
	descent    float32
	lineHeight float32
}

// OpenFont parses TTF or OTF data and fixes the reference size the font
// reports its metrics at. The size is in pixels per em.
func OpenFont(data []byte, size float32) (*Font, error) {
	if size <= 0 {
		return nil, fmt.Errorf("gotext: invalid font size %v", size)
	}

	shaped, err := gtfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("gotext: failed to parse font for shaping: %w", err)
	}

	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("gotext: failed to parse font: %w", err)
	}

	f := &Font{
		shaped: shaped.Font,
		parsed: parsed,
		size:   size,
	}

	metrics, err := parsed.Metrics(&f.buf, fixed.Int26_6(size*64), font.HintingFull)
	if err != nil {
		return nil, fmt.Errorf("gotext: failed to read font metrics: %w", err)
	}
	f.ascent = fixedToFloat(metrics.Ascent)
	// sfnt reports the descent as a positive distance below the baseline;
	// the renderer works in Y-up coordinates where it is negative.
	f.descent = -fixedToFloat(metrics.Descent)
	f.lineHeight = fixedToFloat(metrics.Height)

	return f, nil
}

// Size returns the reference size in pixels per em.
func (f *Font) Size() float32 { return f.size }

// Ascent returns the distance from the baseline to the top of the font.
func (f *Font) Ascent() float32 { return f.ascent }

// Descent returns the distance from the baseline to the bottom of the
// font, negative.
func (f *Font) Descent() float32 { return f.descent }

// LineHeight returns the baseline-to-baseline distance.
func (f *Font) LineHeight() float32 { return f.lineHeight }

// IsOpened reports whether the font holds parsed data.
func (f *Font) IsOpened() bool { return f.shaped != nil && f.parsed != nil }

// NumGlyphs returns the number of glyphs in the font. Glyph IDs produced
// by a Shaper are always below this count.
func (f *Font) NumGlyphs() int { return f.parsed.NumGlyphs() }

// RasterizeGlyph renders the glyph's outline at the reference size into
// an alpha mask and returns it together with the offset from the glyph
// origin to the mask's bottom-left corner, in Y-up coordinates.
//
// Glyphs without an outline, such as spaces, return a nil mask and a
// zero offset; that is not an error.
func (f *Font) RasterizeGlyph(glyphID uint32) (*image.Alpha, textrender.Vec2, error) {
	ppem := fixed.Int26_6(f.size * 64)

	segments, err := f.parsed.LoadGlyph(&f.buf, sfnt.GlyphIndex(glyphID), ppem, nil)
	if err != nil {
		return nil, textrender.Vec2{}, fmt.Errorf("gotext: failed to load glyph %d: %w", glyphID, err)
	}
	if len(segments) == 0 {
		return nil, textrender.Vec2{}, nil
	}

	bounds, _, err := f.parsed.GlyphBounds(&f.buf, sfnt.GlyphIndex(glyphID), ppem, font.HintingFull)
	if err != nil {
		return nil, textrender.Vec2{}, fmt.Errorf("gotext: failed to measure glyph %d: %w", glyphID, err)
	}

	// Outline coordinates are Y-down with the origin on the baseline.
	minX := int(bounds.Min.X) >> 6
	minY := int(bounds.Min.Y) >> 6
	maxX := int(bounds.Max.X+63) >> 6
	maxY := int(bounds.Max.Y+63) >> 6
	width := maxX - minX
	height := maxY - minY
	if width <= 0 || height <= 0 {
		return nil, textrender.Vec2{}, nil
	}

	rast := vector.NewRasterizer(width, height)
	tx := -float32(minX)
	ty := -float32(minY)
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			rast.MoveTo(tx+float32(seg.Args[0].X)/64, ty+float32(seg.Args[0].Y)/64)
		case sfnt.SegmentOpLineTo:
			rast.LineTo(tx+float32(seg.Args[0].X)/64, ty+float32(seg.Args[0].Y)/64)
		case sfnt.SegmentOpQuadTo:
			rast.QuadTo(
				tx+float32(seg.Args[0].X)/64, ty+float32(seg.Args[0].Y)/64,
				tx+float32(seg.Args[1].X)/64, ty+float32(seg.Args[1].Y)/64)
		case sfnt.SegmentOpCubeTo:
			rast.CubeTo(
				tx+float32(seg.Args[0].X)/64, ty+float32(seg.Args[0].Y)/64,
				tx+float32(seg.Args[1].X)/64, ty+float32(seg.Args[1].Y)/64,
				tx+float32(seg.Args[2].X)/64, ty+float32(seg.Args[2].Y)/64)
		}
	}

	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	rast.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	// The mask's bottom row sits at Y-down maxY, which is -maxY in the
	// renderer's Y-up space.
	offset := textrender.V2(float32(minX), float32(-maxY))
	return mask, offset, nil
}

// fixedToFloat converts a fixed.Int26_6 value to float32.
func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
