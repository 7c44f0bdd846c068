package textrender

// RenderLineGlyphPositions converts font-relative glyph offsets of one
// shaped run into absolute positions, advancing cursor as it goes, and
// returns the bounding rectangle of the run on the line.
//
// The rectangle vertically spans the scaled descent to ascent of the font
// and horizontally the cursor travel; with zero glyphs it degenerates to
// a zero-width rectangle at the cursor, which is a valid result.
//
// positions may be the same slice as offsets: each element is fully read
// before its slot is written. The cursor is updated in place so that a
// following run, shaped separately but belonging to the same line,
// continues where this one ended.
func RenderLineGlyphPositions(font Font, size float32, offsets, advances []Vec2, positions []Vec2, cursor *Vec2) Rect {
	if len(offsets) != len(positions) || len(offsets) != len(advances) {
		panic("textrender: offsets, advances and positions must have the same length")
	}

	scale := size / font.Size()

	rect := Rect{
		Min: cursor.Add(V2(0, font.Descent()*scale)),
		Max: cursor.Add(V2(0, font.Ascent()*scale)),
	}

	for i := range offsets {
		// Read the offset before writing the position, the slices may
		// alias.
		positions[i] = cursor.Add(offsets[i].Mul(scale))
		*cursor = cursor.Add(advances[i].Mul(scale))
		rect.Max = maxVec(rect.Max, *cursor)
	}

	return rect
}

// lineAlignmentOffset computes the horizontal shift that aligns a line
// rectangle to X = 0.
func lineAlignmentOffset(rect Rect, alignment Alignment) float32 {
	var offset float32
	switch alignment.Horizontal() {
	case AlignmentLeft:
		offset = -rect.Left()
	case AlignmentCenterH:
		offset = -rect.CenterX()
		if alignment.IsIntegral() {
			offset = roundf(offset)
		}
	case AlignmentRight:
		offset = -rect.Right()
	default:
		panic("textrender: alignment " + alignment.String() + " has to be resolved before line alignment")
	}
	return offset
}

// AlignRenderedLine shifts the X component of all positions of one line
// so the line rectangle satisfies the horizontal alignment, and returns
// the translated rectangle.
//
// The alignment has to be resolved, passing Begin or End is a programming
// error. Only horizontal top-to-bottom layout is implemented; other
// directions panic.
func AlignRenderedLine(rect Rect, direction LayoutDirection, alignment Alignment, positions []Vec2) Rect {
	if direction != LayoutDirectionHorizontalTopToBottom {
		panic("textrender: layout direction " + direction.String() + " is not implemented")
	}

	offset := lineAlignmentOffset(rect, alignment)
	for i := range positions {
		positions[i].X += offset
	}
	return rect.Translated(V2(offset, 0))
}

// AlignRenderedBlock shifts the Y component of all positions of a block
// so the block rectangle satisfies the vertical alignment, and returns
// the translated rectangle. It runs once per block, after every line was
// already horizontally aligned by AlignRenderedLine.
//
// The same resolution and layout-direction preconditions as for
// AlignRenderedLine apply.
func AlignRenderedBlock(rect Rect, direction LayoutDirection, alignment Alignment, positions []Vec2) Rect {
	if direction != LayoutDirectionHorizontalTopToBottom {
		panic("textrender: layout direction " + direction.String() + " is not implemented")
	}
	if !alignment.IsResolved() {
		panic("textrender: alignment " + alignment.String() + " has to be resolved before block alignment")
	}

	var offset float32
	switch alignment.Vertical() {
	case AlignmentLine:
		offset = 0
	case AlignmentBottom:
		offset = -rect.Bottom()
	case AlignmentMiddle:
		offset = -rect.CenterY()
		if alignment.IsIntegral() {
			offset = roundf(offset)
		}
	case AlignmentTop:
		offset = -rect.Top()
	default:
		panic("textrender: alignment " + alignment.String() + " has no vertical component")
	}

	for i := range positions {
		positions[i].Y += offset
	}
	return rect.Translated(V2(0, offset))
}
