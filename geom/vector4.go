// SPDX-License-Identifier: MIT

package geom

import (
	"fmt"

	"github.com/katalvlaran/spatial/scalar"
)

// Vector4 is a four-component single-precision vector, typically a homogeneous
// point (W = 1) or a matrix row.
type Vector4 struct {
	X, Y, Z, W float32
}

// NewVector4 returns (x, y, z, w).
func NewVector4(x, y, z, w float32) Vector4 { return Vector4{X: x, Y: y, Z: z, W: w} }

// Vector4FromVector3 extends v with w.
func Vector4FromVector3(v Vector3, w float32) Vector4 { return Vector4{v.X, v.Y, v.Z, w} }

// Zero4 returns (0, 0, 0, 0).
func Zero4() Vector4 { return Vector4{} }

// One4 returns (1, 1, 1, 1).
func One4() Vector4 { return Vector4{1, 1, 1, 1} }

// UnitX4, UnitY4, UnitZ4 and UnitW4 return the basis vectors.
func UnitX4() Vector4 { return Vector4{X: 1} }
func UnitY4() Vector4 { return Vector4{Y: 1} }
func UnitZ4() Vector4 { return Vector4{Z: 1} }
func UnitW4() Vector4 { return Vector4{W: 1} }

// XYZ drops W.
func (v Vector4) XYZ() Vector3 { return Vector3{v.X, v.Y, v.Z} }

func (v Vector4) Add(o Vector4) Vector4 {
	return Vector4{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W}
}

func (v Vector4) AddScalar(f float32) Vector4 { return Vector4{v.X + f, v.Y + f, v.Z + f, v.W + f} }

func (v Vector4) Subtract(o Vector4) Vector4 {
	return Vector4{v.X - o.X, v.Y - o.Y, v.Z - o.Z, v.W - o.W}
}

func (v Vector4) SubtractScalar(f float32) Vector4 {
	return Vector4{v.X - f, v.Y - f, v.Z - f, v.W - f}
}

func (v Vector4) Multiply(o Vector4) Vector4 {
	return Vector4{v.X * o.X, v.Y * o.Y, v.Z * o.Z, v.W * o.W}
}

func (v Vector4) Scale(f float32) Vector4 { return Vector4{v.X * f, v.Y * f, v.Z * f, v.W * f} }
func (v Vector4) Negate() Vector4 { return Vector4{-v.X, -v.Y, -v.Z, -v.W} }

func (v Vector4) Dot(o Vector4) float32 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z + v.W*o.W }

func (v Vector4) LengthSquared() float32 { return v.Dot(v) }
func (v Vector4) Length() float32 { return scalar.Sqrt(v.LengthSquared()) }
func (v Vector4) DistanceSquared(o Vector4) float32 { return v.Subtract(o).LengthSquared() }
func (v Vector4) Distance(o Vector4) float32 { return v.Subtract(o).Length() }

// Divide returns the component-wise quotient, or ErrDivideByZero.
func (v Vector4) Divide(o Vector4) (Vector4, error) {
	if scalar.NearlyZero(o.X) || scalar.NearlyZero(o.Y) || scalar.NearlyZero(o.Z) || scalar.NearlyZero(o.W) {
		return Vector4{}, geomErrorf(opDivide, ErrDivideByZero)
	}
	return Vector4{v.X / o.X, v.Y / o.Y, v.Z / o.Z, v.W / o.W}, nil
}

// DivideScalar returns v / f, or ErrDivideByZero.
func (v Vector4) DivideScalar(f float32) (Vector4, error) {
	if scalar.NearlyZero(f) {
		return Vector4{}, geomErrorf(opDivide, ErrDivideByZero)
	}
	return v.Scale(1 / f), nil
}

// Normalize returns v at unit length, or ErrZeroLength.
func (v Vector4) Normalize() (Vector4, error) {
	l := v.Length()
	if scalar.NearlyZero(l) {
		return Vector4{}, geomErrorf(opNormalize, ErrZeroLength)
	}
	return v.Scale(1 / l), nil
}

func (v Vector4) IsNormalized() bool { return scalar.NearlyEqual(v.LengthSquared(), 1) }

// Lerp blends v toward o by t.
func (v Vector4) Lerp(o Vector4, t float32) Vector4 {
	return Vector4{
		X: scalar.Lerp(v.X, o.X, t),
		Y: scalar.Lerp(v.Y, o.Y, t),
		Z: scalar.Lerp(v.Z, o.Z, t),
		W: scalar.Lerp(v.W, o.W, t),
	}
}

// Hermite evaluates the Hermite spline from v (tangent t1) to v2 (tangent t2).
func (v Vector4) Hermite(t1, v2, t2 Vector4, weight float32) Vector4 {
	return Vector4{
		X: scalar.Hermite(v.X, t1.X, v2.X, t2.X, weight),
		Y: scalar.Hermite(v.Y, t1.Y, v2.Y, t2.Y, weight),
		Z: scalar.Hermite(v.Z, t1.Z, v2.Z, t2.Z, weight),
		W: scalar.Hermite(v.W, t1.W, v2.W, t2.W, weight),
	}
}

// SmoothStep blends v toward o with a clamped cubic ease.
func (v Vector4) SmoothStep(o Vector4, t float32) Vector4 {
	return Vector4{
		X: scalar.SmoothStep(v.X, o.X, t),
		Y: scalar.SmoothStep(v.Y, o.Y, t),
		Z: scalar.SmoothStep(v.Z, o.Z, t),
		W: scalar.SmoothStep(v.W, o.W, t),
	}
}

// Clamp limits each component to [lo, hi].
func (v Vector4) Clamp(lo, hi Vector4) Vector4 {
	return Vector4{
		X: scalar.Clamp(v.X, lo.X, hi.X),
		Y: scalar.Clamp(v.Y, lo.Y, hi.Y),
		Z: scalar.Clamp(v.Z, lo.Z, hi.Z),
		W: scalar.Clamp(v.W, lo.W, hi.W),
	}
}

func (v Vector4) Clamp01() Vector4 {
	return Vector4{scalar.Clamp01(v.X), scalar.Clamp01(v.Y), scalar.Clamp01(v.Z), scalar.Clamp01(v.W)}
}

func (v Vector4) Min(o Vector4) Vector4 {
	return Vector4{scalar.Min(v.X, o.X), scalar.Min(v.Y, o.Y), scalar.Min(v.Z, o.Z), scalar.Min(v.W, o.W)}
}

func (v Vector4) Max(o Vector4) Vector4 {
	return Vector4{scalar.Max(v.X, o.X), scalar.Max(v.Y, o.Y), scalar.Max(v.Z, o.Z), scalar.Max(v.W, o.W)}
}

// Transform multiplies the homogeneous row vector v by m.
func (v Vector4) Transform(m Matrix4x4) Vector4 {
	return Vector4{
		X: v.X*m.M11 + v.Y*m.M21 + v.Z*m.M31 + v.W*m.M41,
		Y: v.X*m.M12 + v.Y*m.M22 + v.Z*m.M32 + v.W*m.M42,
		Z: v.X*m.M13 + v.Y*m.M23 + v.Z*m.M33 + v.W*m.M43,
		W: v.X*m.M14 + v.Y*m.M24 + v.Z*m.M34 + v.W*m.M44,
	}
}

func (v Vector4) Equal(o Vector4) bool { return v == o }

func (v Vector4) NearlyEqual(o Vector4) bool {
	return scalar.NearlyEqual(v.X, o.X) && scalar.NearlyEqual(v.Y, o.Y) &&
		scalar.NearlyEqual(v.Z, o.Z) && scalar.NearlyEqual(v.W, o.W)
}

func (v Vector4) IsZero() bool { return v == Vector4{} }

func (v Vector4) NearlyZero() bool {
	return scalar.NearlyZero(v.X) && scalar.NearlyZero(v.Y) && scalar.NearlyZero(v.Z) && scalar.NearlyZero(v.W)
}

func (v Vector4) AllLess(o Vector4) bool {
	return v.X < o.X && v.Y < o.Y && v.Z < o.Z && v.W < o.W
}

func (v Vector4) AllLessEqual(o Vector4) bool {
	return v.X <= o.X && v.Y <= o.Y && v.Z <= o.Z && v.W <= o.W
}

func (v Vector4) AllGreater(o Vector4) bool {
	return v.X > o.X && v.Y > o.Y && v.Z > o.Z && v.W > o.W
}

func (v Vector4) AllGreaterEqual(o Vector4) bool {
	return v.X >= o.X && v.Y >= o.Y && v.Z >= o.Z && v.W >= o.W
}

// At returns component i (0..3 = X, Y, Z, W).
func (v Vector4) At(i int) (float32, error) {
	switch i {
	case 0:
		return v.X, nil
	case 1:
		return v.Y, nil
	case 2:
		return v.Z, nil
	case 3:
		return v.W, nil
	}
	return 0, geomErrorf(opAt, ErrOutOfRange)
}

func (v Vector4) Array() [4]float32 { return [4]float32{v.X, v.Y, v.Z, v.W} }

func (v Vector4) String() string { return fmt.Sprintf("(%g, %g, %g, %g)", v.X, v.Y, v.Z, v.W) }
