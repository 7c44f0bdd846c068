package textrender

import "math"

// Vec2 is a 2D vector with float32 components, matching the precision of
// GPU vertex data the engine ultimately produces. Y grows upwards: line
// layout follows font conventions where the ascent is above the baseline
// at positive Y and the descent below it at negative Y.
type Vec2 struct {
	X, Y float32
}

// V2 is a convenience function to create a Vec2.
func V2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Neg returns the negation of the vector.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// IsZero reports whether both components are exactly zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// minVec returns the component-wise minimum of two vectors.
func minVec(v, w Vec2) Vec2 {
	return Vec2{X: min(v.X, w.X), Y: min(v.Y, w.Y)}
}

// maxVec returns the component-wise maximum of two vectors.
func maxVec(v, w Vec2) Vec2 {
	return Vec2{X: max(v.X, w.X), Y: max(v.Y, w.Y)}
}

// Rect is an axis-aligned rectangle described by its min and max corners.
// With Y growing upwards, Min.Y is the bottom edge and Max.Y the top edge.
// A rectangle with Min == Max is degenerate but valid; empty lines and
// empty blocks produce such rectangles.
type Rect struct {
	Min, Max Vec2
}

// RectFromSize creates a rectangle from a min corner and a size.
func RectFromSize(pos, size Vec2) Rect {
	return Rect{Min: pos, Max: pos.Add(size)}
}

// Left returns the X coordinate of the left edge.
func (r Rect) Left() float32 { return r.Min.X }

// Right returns the X coordinate of the right edge.
func (r Rect) Right() float32 { return r.Max.X }

// Bottom returns the Y coordinate of the bottom edge.
func (r Rect) Bottom() float32 { return r.Min.Y }

// Top returns the Y coordinate of the top edge.
func (r Rect) Top() float32 { return r.Max.Y }

// CenterX returns the X coordinate of the rectangle center.
func (r Rect) CenterX() float32 { return (r.Min.X + r.Max.X) / 2 }

// CenterY returns the Y coordinate of the rectangle center.
func (r Rect) CenterY() float32 { return (r.Min.Y + r.Max.Y) / 2 }

// Size returns the rectangle dimensions.
func (r Rect) Size() Vec2 {
	return r.Max.Sub(r.Min)
}

// Translated returns the rectangle shifted by the given vector.
func (r Rect) Translated(v Vec2) Rect {
	return Rect{Min: r.Min.Add(v), Max: r.Max.Add(v)}
}

// Join returns the union of two rectangles. A rectangle with zero size is
// treated as absent so that folding a sequence of line rectangles into a
// block rectangle does not anchor the result at the origin.
func (r Rect) Join(o Rect) Rect {
	if r.Size().IsZero() {
		return o
	}
	if o.Size().IsZero() {
		return r
	}
	return Rect{Min: minVec(r.Min, o.Min), Max: maxVec(r.Max, o.Max)}
}

// roundf rounds to the nearest integer, halves away from zero.
func roundf(v float32) float32 {
	return float32(math.Round(float64(v)))
}
