package gotext

import (
	"testing"

	"github.com/gogpu/textrender"
)

func TestShaper_Basic(t *testing.T) {
	font := mustOpenFont(t, 16)
	shaper := NewShaper(font)

	count := shaper.Shape("Hello", 0, 5, nil)
	if count == 0 {
		t.Fatal("Shape: got 0 glyphs")
	}

	if got := shaper.Direction(); got != textrender.ShapeDirectionLeftToRight {
		t.Errorf("Direction: got %v, want LeftToRight", got)
	}

	ids := make([]uint32, count)
	shaper.GlyphIDsInto(ids)
	for i, id := range ids {
		if id == 0 {
			t.Errorf("glyph %d: got the missing-glyph ID for an ASCII letter", i)
		}
	}

	offsets := make([]textrender.Vec2, count)
	advances := make([]textrender.Vec2, count)
	shaper.GlyphOffsetsAdvancesInto(offsets, advances)
	for i, a := range advances {
		if a.X <= 0 {
			t.Errorf("glyph %d: X advance %v, want > 0", i, a.X)
		}
		if a.Y != 0 {
			t.Errorf("glyph %d: Y advance %v, want 0 for horizontal text", i, a.Y)
		}
	}
}

func TestShaper_Clusters(t *testing.T) {
	font := mustOpenFont(t, 16)
	shaper := NewShaper(font)

	// Shape a subrange; clusters have to be byte offsets into the whole
	// string, not into the subrange.
	text := "Hello world"
	count := shaper.Shape(text, 6, 11, nil)
	if count == 0 {
		t.Fatal("Shape: got 0 glyphs")
	}

	clusters := make([]uint32, count)
	shaper.GlyphClustersInto(clusters)
	for i, c := range clusters {
		if c < 6 || c >= 11 {
			t.Errorf("cluster %d: got %d, want within [6, 11)", i, c)
		}
		if i > 0 && c < clusters[i-1] {
			t.Errorf("clusters not monotonic for LTR text: %v", clusters)
		}
	}

	g0, g1 := textrender.GlyphRangeForBytes(clusters, 6, 11)
	if g0 != 0 || int(g1) != count {
		t.Errorf("GlyphRangeForBytes over the full run: got (%d, %d), want (0, %d)", g0, g1, count)
	}
}

func TestShaper_MultiByteClusters(t *testing.T) {
	font := mustOpenFont(t, 16)
	shaper := NewShaper(font)

	// Two-byte runes; clusters have to advance in byte steps of 2.
	text := "éé"
	count := shaper.Shape(text, 0, len(text), nil)
	if count == 0 {
		t.Fatal("Shape: got 0 glyphs")
	}

	clusters := make([]uint32, count)
	shaper.GlyphClustersInto(clusters)
	if clusters[0] != 0 {
		t.Errorf("first cluster: got %d, want 0", clusters[0])
	}
	if count == 2 && clusters[1] != 2 {
		t.Errorf("second cluster: got %d, want byte offset 2", clusters[1])
	}
}

func TestShaper_RightToLeftDirection(t *testing.T) {
	font := mustOpenFont(t, 16)
	shaper := NewShaper(font)

	// Hebrew text; the bidi algorithm must flag the run right-to-left
	// even when the font has no coverage for it.
	text := "שלום"
	if got := shaper.Shape(text, 0, len(text), nil); got == 0 {
		t.Fatal("Shape: got 0 glyphs")
	}
	if got := shaper.Direction(); got != textrender.ShapeDirectionRightToLeft {
		t.Errorf("Direction: got %v, want RightToLeft", got)
	}
}

func TestShaper_Empty(t *testing.T) {
	font := mustOpenFont(t, 16)
	shaper := NewShaper(font)

	if got := shaper.Shape("abc", 1, 1, nil); got != 0 {
		t.Errorf("empty range: got %d glyphs, want 0", got)
	}
	if got := shaper.Direction(); got != textrender.ShapeDirectionUnspecified {
		t.Errorf("Direction after empty shape: got %v, want Unspecified", got)
	}
}

func TestShaper_Kerning(t *testing.T) {
	font := mustOpenFont(t, 64)
	shaper := NewShaper(font)

	measure := func(text string) float32 {
		t.Helper()
		count := shaper.Shape(text, 0, len(text), nil)
		if count == 0 {
			t.Fatalf("Shape(%q): got 0 glyphs", text)
		}
		offsets := make([]textrender.Vec2, count)
		advances := make([]textrender.Vec2, count)
		shaper.GlyphOffsetsAdvancesInto(offsets, advances)
		var width float32
		for _, a := range advances {
			width += a.X
		}
		return width
	}

	// Kerning pulls AV together; the pair must not be wider than the
	// letters measured alone.
	av := measure("AV")
	a := measure("A")
	v := measure("V")
	if av > a+v {
		t.Errorf("kerned width %v exceeds individual widths %v", av, a+v)
	}
}

func TestShaper_ImplementsInterface(t *testing.T) {
	font := mustOpenFont(t, 16)
	var _ textrender.Shaper = NewShaper(font)
	var _ textrender.Font = font
}
