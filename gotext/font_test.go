package gotext

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func mustOpenFont(t *testing.T, size float32) *Font {
	t.Helper()
	font, err := OpenFont(goregular.TTF, size)
	if err != nil {
		t.Fatalf("OpenFont: %v", err)
	}
	return font
}

func TestOpenFont_Metrics(t *testing.T) {
	font := mustOpenFont(t, 16)

	if !font.IsOpened() {
		t.Fatal("IsOpened: got false")
	}
	if got := font.Size(); got != 16 {
		t.Errorf("Size: got %v, want 16", got)
	}
	if font.Ascent() <= 0 {
		t.Errorf("Ascent: got %v, want > 0", font.Ascent())
	}
	if font.Descent() >= 0 {
		t.Errorf("Descent: got %v, want < 0", font.Descent())
	}
	// Hinted metrics may round the height below the ascent-descent span,
	// so only the sign is a safe assertion.
	if font.LineHeight() <= 0 {
		t.Errorf("LineHeight: got %v, want > 0", font.LineHeight())
	}
	if font.NumGlyphs() <= 0 {
		t.Errorf("NumGlyphs: got %d, want > 0", font.NumGlyphs())
	}
}

func TestOpenFont_Invalid(t *testing.T) {
	if _, err := OpenFont([]byte("not a font"), 16); err == nil {
		t.Error("OpenFont with garbage data: expected an error")
	}
	if _, err := OpenFont(goregular.TTF, 0); err == nil {
		t.Error("OpenFont with zero size: expected an error")
	}
	if _, err := OpenFont(goregular.TTF, -4); err == nil {
		t.Error("OpenFont with negative size: expected an error")
	}
}

func TestRasterizeGlyph(t *testing.T) {
	font := mustOpenFont(t, 32)

	shaper := NewShaper(font)
	if got := shaper.Shape("H", 0, 1, nil); got != 1 {
		t.Fatalf("Shape: got %d glyphs, want 1", got)
	}
	ids := make([]uint32, 1)
	shaper.GlyphIDsInto(ids)

	mask, offset, err := font.RasterizeGlyph(ids[0])
	if err != nil {
		t.Fatalf("RasterizeGlyph: %v", err)
	}
	if mask == nil {
		t.Fatal("RasterizeGlyph: got nil mask for a visible glyph")
	}
	if mask.Bounds().Dx() <= 0 || mask.Bounds().Dy() <= 0 {
		t.Fatalf("mask bounds: got %v", mask.Bounds())
	}

	// An uppercase H sits on the baseline and extends upward, so the
	// bottom-left bearing has a small magnitude X and negative-or-zero Y
	// only if the glyph dips below the baseline; for H it must not.
	if offset.Y < 0 {
		t.Errorf("offset: got %+v, H should not extend below the baseline", offset)
	}

	// The mask has to contain actual coverage.
	var filled bool
	for _, a := range mask.Pix {
		if a != 0 {
			filled = true
			break
		}
	}
	if !filled {
		t.Error("mask is fully transparent")
	}
}

func TestRasterizeGlyph_Space(t *testing.T) {
	font := mustOpenFont(t, 16)

	shaper := NewShaper(font)
	if got := shaper.Shape(" ", 0, 1, nil); got != 1 {
		t.Fatalf("Shape: got %d glyphs, want 1", got)
	}
	ids := make([]uint32, 1)
	shaper.GlyphIDsInto(ids)

	mask, offset, err := font.RasterizeGlyph(ids[0])
	if err != nil {
		t.Fatalf("RasterizeGlyph: %v", err)
	}
	if mask != nil {
		t.Errorf("space glyph: got a mask with bounds %v, want nil", mask.Bounds())
	}
	if offset.X != 0 || offset.Y != 0 {
		t.Errorf("space glyph offset: got %+v, want zero", offset)
	}
}
