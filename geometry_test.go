package textrender

import "testing"

func TestVec2(t *testing.T) {
	v := V2(3, -4)

	if got := v.Add(V2(1, 2)); !vecEq(got, V2(4, -2)) {
		t.Errorf("Add: got %+v", got)
	}
	if got := v.Sub(V2(1, 2)); !vecEq(got, V2(2, -6)) {
		t.Errorf("Sub: got %+v", got)
	}
	if got := v.Mul(0.5); !vecEq(got, V2(1.5, -2)) {
		t.Errorf("Mul: got %+v", got)
	}
	if got := v.Neg(); !vecEq(got, V2(-3, 4)) {
		t.Errorf("Neg: got %+v", got)
	}
	if v.IsZero() || !(Vec2{}).IsZero() {
		t.Error("IsZero misreported")
	}
}

func TestRect(t *testing.T) {
	r := RectFromSize(V2(1, 2), V2(10, 20))

	if r.Left() != 1 || r.Right() != 11 || r.Bottom() != 2 || r.Top() != 22 {
		t.Errorf("edges: got %+v", r)
	}
	if r.CenterX() != 6 || r.CenterY() != 12 {
		t.Errorf("center: got (%v, %v)", r.CenterX(), r.CenterY())
	}
	if got := r.Size(); !vecEq(got, V2(10, 20)) {
		t.Errorf("Size: got %+v", got)
	}
	if got := r.Translated(V2(-1, -2)); !rectEq(got, Rect{Min: V2(0, 0), Max: V2(10, 20)}) {
		t.Errorf("Translated: got %+v", got)
	}
}

func TestRect_Join(t *testing.T) {
	a := Rect{Min: V2(0, 0), Max: V2(10, 10)}
	b := Rect{Min: V2(5, -5), Max: V2(20, 5)}

	if got := a.Join(b); !rectEq(got, Rect{Min: V2(0, -5), Max: V2(20, 10)}) {
		t.Errorf("Join: got %+v", got)
	}

	// Zero-size rectangles act as identity so accumulators do not anchor
	// at the origin.
	var zero Rect
	if got := zero.Join(b); !rectEq(got, b) {
		t.Errorf("zero.Join: got %+v, want %+v", got, b)
	}
	if got := b.Join(zero); !rectEq(got, b) {
		t.Errorf("Join(zero): got %+v, want %+v", got, b)
	}

	degenerate := Rect{Min: V2(100, 100), Max: V2(100, 100)}
	if got := degenerate.Join(b); !rectEq(got, b) {
		t.Errorf("degenerate.Join: got %+v, want %+v", got, b)
	}
}
