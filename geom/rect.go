// SPDX-License-Identifier: MIT

package geom

import (
	"fmt"

	"github.com/katalvlaran/spatial/scalar"
)

// Rect is an axis-aligned rectangle with its origin at the bottom-left corner.
// The zero value is the empty rectangle. Width and Height are assumed
// non-negative by the containment and intersection tests.
type Rect struct {
	X, Y          float32
	Width, Height float32
}

// NewRect returns the rectangle at (x, y) with the given size.
func NewRect(x, y, width, height float32) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// RectFromVectors builds a rectangle from a position and a size.
func RectFromVectors(position, size Vector2) Rect {
	return Rect{X: position.X, Y: position.Y, Width: size.X, Height: size.Y}
}

// EmptyRect returns the all-zero rectangle.
func EmptyRect() Rect { return Rect{} }

func (r Rect) Left() float32 { return r.X }
func (r Rect) Right() float32 { return r.X + r.Width }
func (r Rect) Bottom() float32 { return r.Y }
func (r Rect) Top() float32 { return r.Y + r.Height }

func (r Rect) Position() Vector2 { return Vector2{r.X, r.Y} }
func (r Rect) Size() Vector2 { return Vector2{r.Width, r.Height} }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vector2 {
	return Vector2{r.X + r.Width*0.5, r.Y + r.Height*0.5}
}

// IsEmpty reports whether r is exactly the empty rectangle.
func (r Rect) IsEmpty() bool { return r == Rect{} }

// Contains reports whether p lies inside r; edges count as inside.
func (r Rect) Contains(p Vector2) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Top()
}

// ContainsRect reports whether o lies entirely inside r.
func (r Rect) ContainsRect(o Rect) bool {
	return o.X >= r.X && o.Right() <= r.Right() && o.Y >= r.Y && o.Top() <= r.Top()
}

// Intersects reports whether r and o overlap with positive area.
// Rectangles that only share an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return !(r.X >= o.Right() || r.Right() <= o.X || r.Y >= o.Top() || r.Top() <= o.Y)
}

// Offset moves r by d.
func (r Rect) Offset(d Vector2) Rect {
	return Rect{r.X + d.X, r.Y + d.Y, r.Width, r.Height}
}

// Inflate grows r by h horizontally and v vertically on every side.
func (r Rect) Inflate(h, v float32) Rect {
	return Rect{r.X - h, r.Y - v, r.Width + 2*h, r.Height + 2*v}
}

// Intersect returns the overlap of r and o, or the empty rectangle.
func (r Rect) Intersect(o Rect) Rect {
	if !r.Intersects(o) {
		return Rect{}
	}
	left := scalar.Max(r.X, o.X)
	bottom := scalar.Max(r.Y, o.Y)
	right := scalar.Min(r.Right(), o.Right())
	top := scalar.Min(r.Top(), o.Top())
	return Rect{left, bottom, right - left, top - bottom}
}

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	left := scalar.Min(r.X, o.X)
	bottom := scalar.Min(r.Y, o.Y)
	right := scalar.Max(r.Right(), o.Right())
	top := scalar.Max(r.Top(), o.Top())
	return Rect{left, bottom, right - left, top - bottom}
}

func (r Rect) Equal(o Rect) bool { return r == o }

func (r Rect) NearlyEqual(o Rect) bool {
	return scalar.NearlyEqual(r.X, o.X) && scalar.NearlyEqual(r.Y, o.Y) &&
		scalar.NearlyEqual(r.Width, o.Width) && scalar.NearlyEqual(r.Height, o.Height)
}

func (r Rect) NearlyZero() bool {
	return scalar.NearlyZero(r.X) && scalar.NearlyZero(r.Y) &&
		scalar.NearlyZero(r.Width) && scalar.NearlyZero(r.Height)
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect{x: %g, y: %g, w: %g, h: %g}", r.X, r.Y, r.Width, r.Height)
}
