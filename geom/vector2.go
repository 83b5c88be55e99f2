// SPDX-License-Identifier: MIT

package geom

import (
	"fmt"

	"github.com/katalvlaran/spatial/scalar"
)

// Vector2 is a two-component single-precision vector.
type Vector2 struct {
	X, Y float32
}

// NewVector2 returns (x, y).
func NewVector2(x, y float32) Vector2 { return Vector2{X: x, Y: y} }

// Zero2 returns (0, 0).
func Zero2() Vector2 { return Vector2{} }

// One2 returns (1, 1).
func One2() Vector2 { return Vector2{X: 1, Y: 1} }

// UnitX2 returns (1, 0).
func UnitX2() Vector2 { return Vector2{X: 1} }

// UnitY2 returns (0, 1).
func UnitY2() Vector2 { return Vector2{Y: 1} }

func (v Vector2) Add(o Vector2) Vector2 { return Vector2{v.X + o.X, v.Y + o.Y} }
func (v Vector2) AddScalar(f float32) Vector2 { return Vector2{v.X + f, v.Y + f} }
func (v Vector2) Subtract(o Vector2) Vector2 { return Vector2{v.X - o.X, v.Y - o.Y} }
func (v Vector2) SubtractScalar(f float32) Vector2 { return Vector2{v.X - f, v.Y - f} }
func (v Vector2) Multiply(o Vector2) Vector2 { return Vector2{v.X * o.X, v.Y * o.Y} }
func (v Vector2) Scale(f float32) Vector2 { return Vector2{v.X * f, v.Y * f} }
func (v Vector2) Negate() Vector2 { return Vector2{-v.X, -v.Y} }
func (v Vector2) Dot(o Vector2) float32 { return v.X*o.X + v.Y*o.Y }
func (v Vector2) LengthSquared() float32 { return v.Dot(v) }
func (v Vector2) Length() float32 { return scalar.Sqrt(v.LengthSquared()) }
func (v Vector2) DistanceSquared(o Vector2) float32 { return v.Subtract(o).LengthSquared() }
func (v Vector2) Distance(o Vector2) float32 { return v.Subtract(o).Length() }

// Divide returns the component-wise quotient, or ErrDivideByZero.
func (v Vector2) Divide(o Vector2) (Vector2, error) {
	if scalar.NearlyZero(o.X) || scalar.NearlyZero(o.Y) {
		return Vector2{}, geomErrorf(opDivide, ErrDivideByZero)
	}
	return Vector2{v.X / o.X, v.Y / o.Y}, nil
}

// DivideScalar returns v / f, or ErrDivideByZero.
func (v Vector2) DivideScalar(f float32) (Vector2, error) {
	if scalar.NearlyZero(f) {
		return Vector2{}, geomErrorf(opDivide, ErrDivideByZero)
	}
	inv := 1 / f
	return Vector2{v.X * inv, v.Y * inv}, nil
}

// Normalize returns v at unit length, or ErrZeroLength.
func (v Vector2) Normalize() (Vector2, error) {
	l := v.Length()
	if scalar.NearlyZero(l) {
		return Vector2{}, geomErrorf(opNormalize, ErrZeroLength)
	}
	inv := 1 / l
	return Vector2{v.X * inv, v.Y * inv}, nil
}

// IsNormalized reports whether |v|² is nearly 1.
func (v Vector2) IsNormalized() bool { return scalar.NearlyEqual(v.LengthSquared(), 1) }

// Lerp blends v toward o by t.
func (v Vector2) Lerp(o Vector2, t float32) Vector2 {
	return Vector2{scalar.Lerp(v.X, o.X, t), scalar.Lerp(v.Y, o.Y, t)}
}

// Hermite evaluates the Hermite spline from v (tangent t1) to v2 (tangent t2).
func (v Vector2) Hermite(t1, v2, t2 Vector2, weight float32) Vector2 {
	return Vector2{
		X: scalar.Hermite(v.X, t1.X, v2.X, t2.X, weight),
		Y: scalar.Hermite(v.Y, t1.Y, v2.Y, t2.Y, weight),
	}
}

// SmoothStep blends v toward o with a clamped cubic ease.
func (v Vector2) SmoothStep(o Vector2, t float32) Vector2 {
	return Vector2{scalar.SmoothStep(v.X, o.X, t), scalar.SmoothStep(v.Y, o.Y, t)}
}

// Clamp limits each component to [lo, hi].
func (v Vector2) Clamp(lo, hi Vector2) Vector2 {
	return Vector2{scalar.Clamp(v.X, lo.X, hi.X), scalar.Clamp(v.Y, lo.Y, hi.Y)}
}

// Clamp01 limits each component to [0, 1].
func (v Vector2) Clamp01() Vector2 { return Vector2{scalar.Clamp01(v.X), scalar.Clamp01(v.Y)} }

// Min returns the component-wise minimum.
func (v Vector2) Min(o Vector2) Vector2 { return Vector2{scalar.Min(v.X, o.X), scalar.Min(v.Y, o.Y)} }

// Max returns the component-wise maximum.
func (v Vector2) Max(o Vector2) Vector2 { return Vector2{scalar.Max(v.X, o.X), scalar.Max(v.Y, o.Y)} }

// Transform treats v as the point (x, y, 0, 1) and multiplies it by m.
func (v Vector2) Transform(m Matrix4x4) Vector2 {
	return Vector2{
		X: v.X*m.M11 + v.Y*m.M21 + m.M41,
		Y: v.X*m.M12 + v.Y*m.M22 + m.M42,
	}
}

// Rotate rotates (x, y, 0) by the unit quaternion q and drops Z.
func (v Vector2) Rotate(q Quaternion) (Vector2, error) {
	if !q.IsNormalized() {
		return Vector2{}, geomErrorf(opRotate, ErrNotNormalized)
	}
	r := Vector3{X: v.X, Y: v.Y}.rotate(q)
	return Vector2{r.X, r.Y}, nil
}

func (v Vector2) Equal(o Vector2) bool { return v == o }

func (v Vector2) NearlyEqual(o Vector2) bool {
	return scalar.NearlyEqual(v.X, o.X) && scalar.NearlyEqual(v.Y, o.Y)
}

func (v Vector2) IsZero() bool { return v == Vector2{} }
func (v Vector2) NearlyZero() bool { return scalar.NearlyZero(v.X) && scalar.NearlyZero(v.Y) }

func (v Vector2) AllLess(o Vector2) bool { return v.X < o.X && v.Y < o.Y }
func (v Vector2) AllLessEqual(o Vector2) bool { return v.X <= o.X && v.Y <= o.Y }
func (v Vector2) AllGreater(o Vector2) bool { return v.X > o.X && v.Y > o.Y }
func (v Vector2) AllGreaterEqual(o Vector2) bool { return v.X >= o.X && v.Y >= o.Y }

// At returns component i (0 = X, 1 = Y).
func (v Vector2) At(i int) (float32, error) {
	switch i {
	case 0:
		return v.X, nil
	case 1:
		return v.Y, nil
	}
	return 0, geomErrorf(opAt, ErrOutOfRange)
}

func (v Vector2) Array() [2]float32 { return [2]float32{v.X, v.Y} }

func (v Vector2) String() string { return fmt.Sprintf("(%g, %g)", v.X, v.Y) }
