package textrender

// Shaper converts a byte range of a string into glyphs. Implementations
// wrap an actual shaping engine; the gotext subpackage provides one backed
// by go-text/typesetting's HarfBuzz port.
//
// A Shaper is stateful: Shape stores the results of the last call and the
// *Into methods read them out. The renderer always calls Shape first,
// immediately followed by the queries for the same run, so implementations
// only ever need to retain one run of shaped data.
//
// Shaper is not safe for concurrent use.
type Shaper interface {
	// Shape shapes text[begin:end] with the given features and returns
	// the number of glyphs produced. Zero is a valid result.
	Shape(text string, begin, end int, features []FeatureRange) int

	// GlyphOffsetsAdvancesInto fills font-relative glyph offsets and
	// advances of the last shaped run. Both slices have the length
	// returned by Shape. The values are in font units scaled to the
	// font's reference size; the renderer rescales them to the requested
	// rendering size.
	GlyphOffsetsAdvancesInto(offsets, advances []Vec2)

	// GlyphIDsInto fills font-local glyph IDs of the last shaped run.
	GlyphIDsInto(ids []uint32)

	// GlyphClustersInto fills byte-cluster indices of the last shaped
	// run. Within one run the values are monotonically non-decreasing
	// for left-to-right shaping and non-increasing for right-to-left.
	GlyphClustersInto(clusters []uint32)

	// Direction returns the direction the shaper detected for the last
	// shaped run, or ShapeDirectionUnspecified when nothing gave the
	// direction away.
	Direction() ShapeDirection

	// Font returns the font the shaper shapes with. The renderer uses it
	// for metrics and to locate the font in the glyph cache.
	Font() Font
}

// Font supplies the metrics the layout engine needs. All values are in
// font units at the reference Size; the renderer scales them by
// renderingSize/Size.
//
// Fonts are read-only collaborators owned by the caller and must outlive
// any renderer borrowing them.
type Font interface {
	// Size is the reference size the remaining metrics are relative to.
	Size() float32

	// Ascent is the distance from the baseline to the top of the font,
	// positive.
	Ascent() float32

	// Descent is the distance from the baseline to the bottom of the
	// font, negative.
	Descent() float32

	// LineHeight is the distance between baselines of adjacent lines.
	LineHeight() float32

	// IsOpened reports whether the font has data loaded. Metrics of an
	// unopened font are meaningless and the renderer will not consult
	// them.
	IsOpened() bool
}
