package atlas

import (
	"image"
	"testing"

	"github.com/gogpu/textrender"
)

// stubFont is a minimal textrender.Font for cache tests.
type stubFont struct {
	size float32
}

func (f *stubFont) Size() float32       { return f.size }
func (f *stubFont) Ascent() float32     { return f.size * 0.8 }
func (f *stubFont) Descent() float32    { return f.size * -0.2 }
func (f *stubFont) LineHeight() float32 { return f.size * 1.2 }
func (f *stubFont) IsOpened() bool      { return true }

func TestCache_FontRegistration(t *testing.T) {
	cache := NewCache(64, 64)
	fontA := &stubFont{size: 16}
	fontB := &stubFont{size: 32}

	idA := cache.AddFont(fontA, 4)
	idB := cache.AddFont(fontB, 2)

	if got, ok := cache.FindFont(fontA); !ok || got != idA {
		t.Errorf("FindFont(A): got (%d, %v), want (%d, true)", got, ok, idA)
	}
	if got, ok := cache.FindFont(fontB); !ok || got != idB {
		t.Errorf("FindFont(B): got (%d, %v), want (%d, true)", got, ok, idB)
	}
	if _, ok := cache.FindFont(&stubFont{size: 8}); ok {
		t.Error("FindFont: found a font that was never added")
	}

	// Global ID 0 is reserved for the invalid glyph, so font ranges
	// start at 1 and are contiguous.
	local := []uint32{0, 1, 2, 3}
	global := make([]uint32, 4)
	cache.GlyphIDsInto(idA, local, global)
	for i, g := range global {
		if g != uint32(1+i) {
			t.Errorf("font A glyph %d: got global %d, want %d", i, g, 1+i)
		}
	}
	cache.GlyphIDsInto(idB, []uint32{0, 1}, global[:2])
	if global[0] != 5 || global[1] != 6 {
		t.Errorf("font B globals: got %v, want [5 6]", global[:2])
	}

	// Out-of-range locals map to the invalid glyph.
	cache.GlyphIDsInto(idB, []uint32{9}, global[:1])
	if global[0] != 0 {
		t.Errorf("out-of-range local: got %d, want 0", global[0])
	}
}

func TestCache_GlyphIDsIntoAliased(t *testing.T) {
	cache := NewCache(64, 64)
	font := &stubFont{size: 16}
	fontID := cache.AddFont(font, 3)

	ids := []uint32{0, 2, 1}
	cache.GlyphIDsInto(fontID, ids, ids)
	want := []uint32{1, 3, 2}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("in-place mapping: got %v, want %v", ids, want)
		}
	}
}

func TestCache_AddGlyph(t *testing.T) {
	cache := NewCache(64, 64)
	font := &stubFont{size: 16}
	fontID := cache.AddFont(font, 2)

	mask := image.NewAlpha(image.Rect(0, 0, 8, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 8; x++ {
			mask.Pix[mask.PixOffset(x, y)] = uint8(y + 1)
		}
	}

	if err := cache.AddGlyph(fontID, 0, textrender.V2(1, -2), mask); err != nil {
		t.Fatalf("AddGlyph: %v", err)
	}

	slot := 1 // global ID of font-local 0
	rect := cache.GlyphRectangles()[slot]
	if rect.Dx() != 8 || rect.Dy() != 10 {
		t.Fatalf("rectangle: got %v, want 8x10", rect)
	}
	if got := cache.GlyphOffsets()[slot]; got.X != 1 || got.Y != -2 {
		t.Errorf("offset: got %+v, want (1, -2)", got)
	}
	if got := cache.GlyphLayers()[slot]; got != 0 {
		t.Errorf("layer: got %d, want 0", got)
	}

	// Rows are stored bottom-up: the source's last row (value 10) lands
	// on the rectangle's first row.
	page := cache.Page(0)
	if got := page.Pix[page.PixOffset(rect.Min.X, rect.Min.Y)]; got != 10 {
		t.Errorf("first stored row: got %d, want 10", got)
	}
	if got := page.Pix[page.PixOffset(rect.Min.X, rect.Max.Y-1)]; got != 1 {
		t.Errorf("last stored row: got %d, want 1", got)
	}
}

func TestCache_BlankGlyph(t *testing.T) {
	cache := NewCache(64, 64)
	font := &stubFont{size: 16}
	fontID := cache.AddFont(font, 1)

	if err := cache.AddGlyph(fontID, 0, textrender.Vec2{}, nil); err != nil {
		t.Fatalf("AddGlyph with nil mask: %v", err)
	}
	if rect := cache.GlyphRectangles()[1]; !rect.Empty() {
		t.Errorf("blank glyph rectangle: got %v, want empty", rect)
	}
}

func TestCache_PackingDoesNotOverlap(t *testing.T) {
	cache := NewCache(64, 64)
	font := &stubFont{size: 16}
	fontID := cache.AddFont(font, 16)

	for i := 0; i < 16; i++ {
		mask := image.NewAlpha(image.Rect(0, 0, 10+i%3, 12))
		if err := cache.AddGlyph(fontID, uint32(i), textrender.Vec2{}, mask); err != nil {
			t.Fatalf("AddGlyph %d: %v", i, err)
		}
	}

	rects := cache.GlyphRectangles()
	layers := cache.GlyphLayers()
	for i := 1; i < len(rects); i++ {
		for j := i + 1; j < len(rects); j++ {
			if layers[i] != layers[j] {
				continue
			}
			if rects[i].Overlaps(rects[j]) {
				t.Fatalf("glyphs %d and %d overlap: %v and %v", i, j, rects[i], rects[j])
			}
		}
	}
}

func TestCache_GrowsLayers(t *testing.T) {
	cache := NewCache(32, 32)
	font := &stubFont{size: 16}
	fontID := cache.AddFont(font, 8)

	// 16x16 masks with padding: 4 per 32x32 page.
	for i := 0; i < 8; i++ {
		mask := image.NewAlpha(image.Rect(0, 0, 15, 15))
		if err := cache.AddGlyph(fontID, uint32(i), textrender.Vec2{}, mask); err != nil {
			t.Fatalf("AddGlyph %d: %v", i, err)
		}
	}

	_, _, layers := cache.Size()
	if layers < 2 {
		t.Errorf("layer count: got %d, want >= 2", layers)
	}
	if got := len(cache.Pages()); got != layers {
		t.Errorf("Pages: got %d, want %d", got, layers)
	}

	// Later glyphs must actually sit on the later layers.
	if cache.GlyphLayers()[8] == 0 {
		t.Error("last glyph still on layer 0 after overflow")
	}
}

func TestCache_GlyphTooLarge(t *testing.T) {
	cache := NewCache(16, 16)
	font := &stubFont{size: 16}
	fontID := cache.AddFont(font, 1)

	mask := image.NewAlpha(image.Rect(0, 0, 20, 20))
	if err := cache.AddGlyph(fontID, 0, textrender.Vec2{}, mask); err == nil {
		t.Error("oversized glyph: expected an error")
	}
}
