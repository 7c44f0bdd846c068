package textrender

import "testing"

// TestResolveAlignment maps Begin and End through each shape direction.
func TestResolveAlignment(t *testing.T) {
	tests := []struct {
		name      string
		alignment Alignment
		direction ShapeDirection
		want      Alignment
	}{
		{"begin LTR", AlignmentLineBegin, ShapeDirectionLeftToRight, AlignmentLineLeft},
		{"begin RTL", AlignmentLineBegin, ShapeDirectionRightToLeft, AlignmentLineRight},
		{"begin unspecified", AlignmentLineBegin, ShapeDirectionUnspecified, AlignmentLineLeft},
		{"end LTR", AlignmentLineEnd, ShapeDirectionLeftToRight, AlignmentLineRight},
		{"end RTL", AlignmentLineEnd, ShapeDirectionRightToLeft, AlignmentLineLeft},
		{"end unspecified", AlignmentLineEnd, ShapeDirectionUnspecified, AlignmentLineRight},
		{"resolved passes through", AlignmentMiddleCenter, ShapeDirectionRightToLeft, AlignmentMiddleCenter},
		{"flags preserved", AlignmentTopBegin | AlignmentIntegral, ShapeDirectionRightToLeft, AlignmentTopRight | AlignmentIntegral},
		{"glyph bounds preserved", AlignmentTopEnd | AlignmentGlyphBounds, ShapeDirectionLeftToRight, AlignmentTopRight | AlignmentGlyphBounds},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveAlignment(tt.alignment, tt.direction); got != tt.want {
				t.Errorf("ResolveAlignment(%v, %v) = %v, want %v",
					tt.alignment, tt.direction, got, tt.want)
			}
		})
	}
}

// TestAlignment_Components exercises the accessors.
func TestAlignment_Components(t *testing.T) {
	a := AlignmentTopRight | AlignmentIntegral | AlignmentGlyphBounds

	if got := a.Horizontal(); got != AlignmentRight {
		t.Errorf("Horizontal: got %v, want Right", got)
	}
	if got := a.Vertical(); got != AlignmentTop {
		t.Errorf("Vertical: got %v, want Top", got)
	}
	if !a.IsIntegral() {
		t.Error("IsIntegral: got false")
	}
	if !a.HasGlyphBounds() {
		t.Error("HasGlyphBounds: got false")
	}
	if !a.IsResolved() {
		t.Error("IsResolved: got false for Right")
	}
	if AlignmentLineBegin.IsResolved() {
		t.Error("IsResolved: got true for Begin")
	}
	if AlignmentTopEnd.IsResolved() {
		t.Error("IsResolved: got true for End")
	}
}

// TestAlignment_String checks a few representative values.
func TestAlignment_String(t *testing.T) {
	tests := []struct {
		alignment Alignment
		want      string
	}{
		{AlignmentMiddleCenter, "MiddleCenter"},
		{AlignmentTopLeft, "TopLeft"},
		{AlignmentLineEnd, "LineEnd"},
		{AlignmentBottomRight | AlignmentIntegral, "BottomRight|Integral"},
		{AlignmentMiddleCenter | AlignmentGlyphBounds, "MiddleCenter|GlyphBounds"},
		{AlignmentTopBegin | AlignmentIntegral | AlignmentGlyphBounds, "TopBegin|Integral|GlyphBounds"},
	}
	for _, tt := range tests {
		if got := tt.alignment.String(); got != tt.want {
			t.Errorf("String: got %q, want %q", got, tt.want)
		}
	}
}
