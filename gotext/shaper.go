package gotext

import (
	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"

	"github.com/gogpu/textrender"
)

// Shaper shapes text with go-text/typesetting's HarfBuzz implementation,
// implementing textrender.Shaper. The shaping direction is detected per
// run with the Unicode bidirectional algorithm and the script from the
// run's first non-space rune.
//
// Shaper is not safe for concurrent use; use one instance per goroutine.
type Shaper struct {
	font *Font
	hb   shaping.HarfbuzzShaper

	glyphs    []shaping.Glyph
	clusters  []uint32
	direction textrender.ShapeDirection
}

// NewShaper creates a shaper for the given font.
func NewShaper(font *Font) *Shaper {
	if font == nil {
		panic("gotext: the font is nil")
	}
	return &Shaper{font: font}
}

// Shape shapes text[begin:end] and returns the glyph count. Features
// apply to the whole shaped run; go-text has no per-byte-range feature
// granularity, so the Begin and End of each range are ignored here.
func (s *Shaper) Shape(text string, begin, end int, features []textrender.FeatureRange) int {
	s.glyphs = s.glyphs[:0]
	s.clusters = s.clusters[:0]
	s.direction = textrender.ShapeDirectionUnspecified

	sub := text[begin:end]
	if sub == "" {
		return 0
	}

	s.direction = detectDirection(sub)
	dir := di.DirectionLTR
	if s.direction == textrender.ShapeDirectionRightToLeft {
		dir = di.DirectionRTL
	}

	runes := []rune(sub)
	input := shaping.Input{
		Text:         runes,
		RunStart:     0,
		RunEnd:       len(runes),
		Direction:    dir,
		Face:         gtfont.NewFace(s.font.shaped),
		Size:         fixed.Int26_6(s.font.size * 64),
		Script:       detectScript(runes),
		Language:     language.NewLanguage("en"),
		FontFeatures: convertFeatures(features),
	}

	output := s.hb.Shape(input)
	s.glyphs = append(s.glyphs, output.Glyphs...)

	// Shaping reports clusters as rune indices into the run; the renderer
	// wants byte offsets into the whole string.
	byteOffsets := make([]int, len(runes)+1)
	offset := 0
	for i, r := range runes {
		byteOffsets[i] = offset
		offset += len(string(r))
	}
	byteOffsets[len(runes)] = len(sub)

	for _, g := range s.glyphs {
		ti := g.TextIndex()
		if ti < 0 {
			ti = 0
		}
		if ti > len(runes) {
			ti = len(runes)
		}
		s.clusters = append(s.clusters, uint32(begin+byteOffsets[ti]))
	}

	return len(s.glyphs)
}

// GlyphOffsetsAdvancesInto fills offsets and advances of the last shaped
// run.
func (s *Shaper) GlyphOffsetsAdvancesInto(offsets, advances []textrender.Vec2) {
	if len(offsets) != len(s.glyphs) || len(advances) != len(s.glyphs) {
		panic("gotext: output length does not match the shaped glyph count")
	}
	for i, g := range s.glyphs {
		offsets[i] = textrender.V2(fixedToFloat(g.XOffset), fixedToFloat(g.YOffset))
		advances[i] = textrender.V2(fixedToFloat(g.Advance), 0)
	}
}

// GlyphIDsInto fills font-local glyph IDs of the last shaped run.
func (s *Shaper) GlyphIDsInto(ids []uint32) {
	if len(ids) != len(s.glyphs) {
		panic("gotext: output length does not match the shaped glyph count")
	}
	for i, g := range s.glyphs {
		ids[i] = uint32(g.GlyphID)
	}
}

// GlyphClustersInto fills byte-cluster indices of the last shaped run.
func (s *Shaper) GlyphClustersInto(clusters []uint32) {
	if len(clusters) != len(s.clusters) {
		panic("gotext: output length does not match the shaped glyph count")
	}
	copy(clusters, s.clusters)
}

// Direction returns the direction detected for the last shaped run.
func (s *Shaper) Direction() textrender.ShapeDirection { return s.direction }

// Font returns the font the shaper shapes with.
func (s *Shaper) Font() textrender.Font { return s.font }

// detectDirection runs the Unicode bidirectional algorithm over the text
// and reports the direction of its first run.
func detectDirection(text string) textrender.ShapeDirection {
	var p bidi.Paragraph
	if _, err := p.SetString(text); err != nil {
		return textrender.ShapeDirectionUnspecified
	}
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return textrender.ShapeDirectionUnspecified
	}
	run := ordering.Run(0)
	if run.Direction() == bidi.RightToLeft {
		return textrender.ShapeDirectionRightToLeft
	}
	return textrender.ShapeDirectionLeftToRight
}

// detectScript returns the script of the first non-space rune, falling
// back to Latin for whitespace-only text.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// convertFeatures maps feature ranges onto go-text font features.
func convertFeatures(features []textrender.FeatureRange) []shaping.FontFeature {
	if len(features) == 0 {
		return nil
	}
	converted := make([]shaping.FontFeature, len(features))
	for i, f := range features {
		converted[i] = shaping.FontFeature{
			Tag:   gtfont.Tag(f.Feature),
			Value: f.Value,
		}
	}
	return converted
}
