package textrender

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// ShapeDirection is the direction a shaper laid out glyphs in. It is
// reported by the shaper after shaping, not configured up front, because
// for mixed-script text the direction is only knowable once the actual
// content has been seen.
type ShapeDirection uint8

const (
	// ShapeDirectionUnspecified means the shaper could not detect a
	// direction. Alignment resolution treats it as left-to-right.
	ShapeDirectionUnspecified ShapeDirection = iota
	// ShapeDirectionLeftToRight is horizontal left-to-right shaping.
	ShapeDirectionLeftToRight
	// ShapeDirectionRightToLeft is horizontal right-to-left shaping.
	ShapeDirectionRightToLeft
	// ShapeDirectionTopToBottom is vertical shaping. Unsupported by the
	// renderer, accepted here only so shapers can report it and the
	// renderer can reject it explicitly.
	ShapeDirectionTopToBottom
	// ShapeDirectionBottomToTop is vertical shaping, unsupported.
	ShapeDirectionBottomToTop
)

// String returns the string representation of the direction.
func (d ShapeDirection) String() string {
	switch d {
	case ShapeDirectionUnspecified:
		return "Unspecified"
	case ShapeDirectionLeftToRight:
		return "LeftToRight"
	case ShapeDirectionRightToLeft:
		return "RightToLeft"
	case ShapeDirectionTopToBottom:
		return "TopToBottom"
	case ShapeDirectionBottomToTop:
		return "BottomToTop"
	default:
		return unknownStr
	}
}

// LayoutDirection is the direction lines advance in.
type LayoutDirection uint8

const (
	// LayoutDirectionHorizontalTopToBottom lays out horizontal lines from
	// top to bottom. This is the only direction the renderer implements.
	LayoutDirectionHorizontalTopToBottom LayoutDirection = iota
	// LayoutDirectionVerticalLeftToRight is unimplemented.
	LayoutDirectionVerticalLeftToRight
	// LayoutDirectionVerticalRightToLeft is unimplemented.
	LayoutDirectionVerticalRightToLeft
)

// String returns the string representation of the direction.
func (d LayoutDirection) String() string {
	switch d {
	case LayoutDirectionHorizontalTopToBottom:
		return "HorizontalTopToBottom"
	case LayoutDirectionVerticalLeftToRight:
		return "VerticalLeftToRight"
	case LayoutDirectionVerticalRightToLeft:
		return "VerticalRightToLeft"
	default:
		return unknownStr
	}
}

// FeatureTag packs a four-character OpenType feature tag such as "liga"
// or "smcp" into its numeric form.
func FeatureTag(tag string) uint32 {
	if len(tag) != 4 {
		panic("textrender: feature tag must be exactly four characters")
	}
	return uint32(tag[0])<<24 | uint32(tag[1])<<16 | uint32(tag[2])<<8 | uint32(tag[3])
}

// FeatureRange enables or parameterizes an OpenType feature over a byte
// range of the shaped text. The renderer passes features through to the
// shaper untouched.
type FeatureRange struct {
	// Feature is the packed tag, see FeatureTag.
	Feature uint32

	// Begin and End bound the affected bytes. Use 0 and the text length
	// to affect the whole run.
	Begin, End uint32

	// Value is the feature value; for boolean features 1 enables and 0
	// disables.
	Value uint32
}

// Flags alter what per-glyph data the renderer records.
type Flags uint8

const (
	// FlagGlyphClusters makes the renderer store the byte-cluster index
	// of every glyph, enabling GlyphClusters and GlyphRangeForBytes based
	// hit testing at the cost of one extra per-glyph array.
	FlagGlyphClusters Flags = 1 << iota
)

// RunRange identifies a half-open range of runs committed by one Render
// call, usable with GlyphsForRuns to recover the glyph range.
type RunRange struct {
	Begin, End uint32
}
