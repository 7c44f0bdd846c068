package textrender

import "strings"

// Alignment describes where the rendered text is placed relative to the
// cursor. It combines a horizontal component, a vertical component and
// optional modifier flags into a single value, for example
// AlignmentTop|AlignmentLeft or AlignmentMiddleCenter|AlignmentIntegral.
//
// The Begin and End horizontal components are relative to the shape
// direction of the text and are resolved to Left or Right once the first
// shaped content reports a direction; see ResolveAlignment. Alignment
// application routines accept only resolved values.
type Alignment uint8

const (
	// AlignmentLeft aligns the left edge of each line to the cursor.
	AlignmentLeft Alignment = 1
	// AlignmentCenterH centers each line horizontally on the cursor.
	AlignmentCenterH Alignment = 2
	// AlignmentRight aligns the right edge of each line to the cursor.
	AlignmentRight Alignment = 3
	// AlignmentBegin aligns to where the text flows from: left for
	// left-to-right text, right for right-to-left text.
	AlignmentBegin Alignment = 4
	// AlignmentEnd aligns to where the text flows to: right for
	// left-to-right text, left for right-to-left text.
	AlignmentEnd Alignment = 5

	// AlignmentLine keeps the first line's baseline on the cursor.
	AlignmentLine Alignment = 1 << 3
	// AlignmentBottom aligns the bottom block edge to the cursor.
	AlignmentBottom Alignment = 2 << 3
	// AlignmentMiddle centers the block vertically on the cursor.
	AlignmentMiddle Alignment = 3 << 3
	// AlignmentTop aligns the top block edge to the cursor.
	AlignmentTop Alignment = 4 << 3

	// AlignmentIntegral rounds alignment offsets to whole units, keeping
	// glyphs on pixel boundaries for crisp rasterization.
	AlignmentIntegral Alignment = 1 << 6
	// AlignmentGlyphBounds aligns to the actual ink rectangles of the
	// glyphs instead of advance-based line metrics.
	AlignmentGlyphBounds Alignment = 1 << 7

	alignmentHorizontalMask Alignment = 0x07
	alignmentVerticalMask   Alignment = 0x38
)

// Common combined values.
const (
	AlignmentLineLeft     = AlignmentLine | AlignmentLeft
	AlignmentLineCenter   = AlignmentLine | AlignmentCenterH
	AlignmentLineRight    = AlignmentLine | AlignmentRight
	AlignmentLineBegin    = AlignmentLine | AlignmentBegin
	AlignmentLineEnd      = AlignmentLine | AlignmentEnd
	AlignmentBottomLeft   = AlignmentBottom | AlignmentLeft
	AlignmentBottomRight  = AlignmentBottom | AlignmentRight
	AlignmentMiddleLeft   = AlignmentMiddle | AlignmentLeft
	AlignmentMiddleCenter = AlignmentMiddle | AlignmentCenterH
	AlignmentMiddleRight  = AlignmentMiddle | AlignmentRight
	AlignmentTopLeft      = AlignmentTop | AlignmentLeft
	AlignmentTopCenter    = AlignmentTop | AlignmentCenterH
	AlignmentTopRight     = AlignmentTop | AlignmentRight
	AlignmentTopBegin     = AlignmentTop | AlignmentBegin
	AlignmentTopEnd       = AlignmentTop | AlignmentEnd
)

// Horizontal returns just the horizontal component.
func (a Alignment) Horizontal() Alignment {
	return a & alignmentHorizontalMask
}

// Vertical returns just the vertical component.
func (a Alignment) Vertical() Alignment {
	return a & alignmentVerticalMask
}

// IsIntegral reports whether offsets are rounded to whole units.
func (a Alignment) IsIntegral() bool {
	return a&AlignmentIntegral != 0
}

// HasGlyphBounds reports whether alignment uses glyph ink rectangles.
func (a Alignment) HasGlyphBounds() bool {
	return a&AlignmentGlyphBounds != 0
}

// IsResolved reports whether the horizontal component is an absolute
// Left, Center or Right rather than a direction-relative Begin or End.
func (a Alignment) IsResolved() bool {
	h := a.Horizontal()
	return h != AlignmentBegin && h != AlignmentEnd
}

// String returns the string representation of the alignment.
func (a Alignment) String() string {
	var b strings.Builder
	switch a.Vertical() {
	case AlignmentLine:
		b.WriteString("Line")
	case AlignmentBottom:
		b.WriteString("Bottom")
	case AlignmentMiddle:
		b.WriteString("Middle")
	case AlignmentTop:
		b.WriteString("Top")
	default:
		b.WriteString(unknownStr)
	}
	switch a.Horizontal() {
	case AlignmentLeft:
		b.WriteString("Left")
	case AlignmentCenterH:
		b.WriteString("Center")
	case AlignmentRight:
		b.WriteString("Right")
	case AlignmentBegin:
		b.WriteString("Begin")
	case AlignmentEnd:
		b.WriteString("End")
	default:
		b.WriteString(unknownStr)
	}
	if a.IsIntegral() {
		b.WriteString("|Integral")
	}
	if a.HasGlyphBounds() {
		b.WriteString("|GlyphBounds")
	}
	return b.String()
}

// ResolveAlignment converts a direction-relative Begin or End horizontal
// component into an absolute Left or Right one for the given shape
// direction. ShapeDirectionUnspecified resolves like left-to-right text.
// All other alignment bits pass through unchanged; an already-resolved
// alignment is returned as is.
func ResolveAlignment(a Alignment, direction ShapeDirection) Alignment {
	rtl := direction == ShapeDirectionRightToLeft
	rest := a &^ alignmentHorizontalMask
	switch a.Horizontal() {
	case AlignmentBegin:
		if rtl {
			return rest | AlignmentRight
		}
		return rest | AlignmentLeft
	case AlignmentEnd:
		if rtl {
			return rest | AlignmentLeft
		}
		return rest | AlignmentRight
	}
	return a
}
