// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widget

import "github.com/chewxy/math32"

// Vec2 is a 2D vector or point with float32 components.
type Vec2 struct {
	X float32
	Y float32
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// MulScalar returns v scaled by s.
func (v Vec2) MulScalar(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Length returns the euclidean length of the vector.
func (v Vec2) Length() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Lerp returns the linear interpolation between v and o by factor f.
func (v Vec2) Lerp(o Vec2, f float32) Vec2 {
	return Vec2{Lerp(v.X, o.X, f), Lerp(v.Y, o.Y, f)}
}

// Lerp returns the linear interpolation between a and b by factor f,
// with f clamped to [0, 1].
func Lerp(a, b, f float32) float32 {
	f = math32.Min(math32.Max(f, 0), 1)
	return a + (b-a)*f
}

// Rect is an edge-offset rectangle, used for margins, anchors,
// and layout geometry.
type Rect struct {
	Left   float32
	Right  float32
	Top    float32
	Bottom float32
}

// Width returns Right - Left.
func (r Rect) Width() float32 {
	return r.Right - r.Left
}

// Height returns Bottom - Top.
func (r Rect) Height() float32 {
	return r.Bottom - r.Top
}

// Lerp returns the per-edge linear interpolation between r and o
// by factor f.
func (r Rect) Lerp(o Rect, f float32) Rect {
	return Rect{
		Left:   Lerp(r.Left, o.Left, f),
		Right:  Lerp(r.Right, o.Right, f),
		Top:    Lerp(r.Top, o.Top, f),
		Bottom: Lerp(r.Bottom, o.Bottom, f),
	}
}

// IntRect is an edge-offset rectangle with integer components,
// used for grid cell spans.
type IntRect struct {
	Left   int
	Right  int
	Top    int
	Bottom int
}

// Color is an RGBA color with float32 components in [0, 1].
type Color struct {
	R float32
	G float32
	B float32
	A float32
}

// Lerp returns the per-component linear interpolation between
// c and o by factor f.
func (c Color) Lerp(o Color, f float32) Color {
	return Color{
		R: Lerp(c.R, o.R, f),
		G: Lerp(c.G, o.G, f),
		B: Lerp(c.B, o.B, f),
		A: Lerp(c.A, o.A, f),
	}
}

// Transform is the local visual transform of a box.
type Transform struct {

	// Pivot is the normalized origin of rotation and scale.
	Pivot Vec2

	// Align is the normalized alignment of the box in its slot.
	Align Vec2

	// Translation is the translation in local units.
	Translation Vec2

	// Rotation is the rotation in radians.
	Rotation float32

	// Scale is the scale factor; use [NewTransform] to get the
	// identity scale of (1, 1).
	Scale Vec2

	// Skew is the skew in radians per axis.
	Skew Vec2
}

// NewTransform returns the identity [Transform].
func NewTransform() Transform {
	return Transform{Scale: Vec2{1, 1}}
}
