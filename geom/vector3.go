// SPDX-License-Identifier: MIT

package geom

import (
	"fmt"

	"github.com/katalvlaran/spatial/scalar"
)

// Vector3 is a three-component single-precision vector.
// Used both as a point (Transform applies translation) and as a direction.
type Vector3 struct {
	X, Y, Z float32
}

// NewVector3 returns (x, y, z).
func NewVector3(x, y, z float32) Vector3 { return Vector3{X: x, Y: y, Z: z} }

// Splat3 returns (f, f, f).
func Splat3(f float32) Vector3 { return Vector3{X: f, Y: f, Z: f} }

// Zero3 returns (0, 0, 0).
func Zero3() Vector3 { return Vector3{} }

// One3 returns (1, 1, 1).
func One3() Vector3 { return Vector3{X: 1, Y: 1, Z: 1} }

// UnitX3 returns (1, 0, 0).
func UnitX3() Vector3 { return Vector3{X: 1} }

// UnitY3 returns (0, 1, 0).
func UnitY3() Vector3 { return Vector3{Y: 1} }

// UnitZ3 returns (0, 0, 1).
func UnitZ3() Vector3 { return Vector3{Z: 1} }

// Up returns +Y.
func Up() Vector3 { return Vector3{Y: 1} }

// Down returns -Y.
func Down() Vector3 { return Vector3{Y: -1} }

// Right returns +X.
func Right() Vector3 { return Vector3{X: 1} }

// Left returns -X.
func Left() Vector3 { return Vector3{X: -1} }

// Forward returns -Z, the forward direction of a right-handed frame.
func Forward() Vector3 { return Vector3{Z: -1} }

// Backward returns +Z.
func Backward() Vector3 { return Vector3{Z: 1} }

// Add returns v + o.
func (v Vector3) Add(o Vector3) Vector3 { return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// AddScalar adds f to every component.
func (v Vector3) AddScalar(f float32) Vector3 { return Vector3{v.X + f, v.Y + f, v.Z + f} }

// Subtract returns v - o.
func (v Vector3) Subtract(o Vector3) Vector3 { return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// SubtractScalar subtracts f from every component.
func (v Vector3) SubtractScalar(f float32) Vector3 { return Vector3{v.X - f, v.Y - f, v.Z - f} }

// Multiply returns the component-wise product.
func (v Vector3) Multiply(o Vector3) Vector3 { return Vector3{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }

// Scale returns v * f.
func (v Vector3) Scale(f float32) Vector3 { return Vector3{v.X * f, v.Y * f, v.Z * f} }

// Divide returns the component-wise quotient.
// Returns ErrDivideByZero if any component of o is nearly zero.
func (v Vector3) Divide(o Vector3) (Vector3, error) {
	if scalar.NearlyZero(o.X) || scalar.NearlyZero(o.Y) || scalar.NearlyZero(o.Z) {
		return Vector3{}, geomErrorf(opDivide, ErrDivideByZero)
	}
	return Vector3{v.X / o.X, v.Y / o.Y, v.Z / o.Z}, nil
}

// DivideScalar returns v / f.
// Returns ErrDivideByZero if f is nearly zero.
func (v Vector3) DivideScalar(f float32) (Vector3, error) {
	if scalar.NearlyZero(f) {
		return Vector3{}, geomErrorf(opDivide, ErrDivideByZero)
	}
	inv := 1 / f
	return Vector3{v.X * inv, v.Y * inv, v.Z * inv}, nil
}

// Negate returns -v.
func (v Vector3) Negate() Vector3 { return Vector3{-v.X, -v.Y, -v.Z} }

// Dot returns the dot product.
func (v Vector3) Dot(o Vector3) float32 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns v × o (right-handed).
func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// LengthSquared returns |v|².
func (v Vector3) LengthSquared() float32 { return v.Dot(v) }

// Length returns |v|.
func (v Vector3) Length() float32 { return scalar.Sqrt(v.LengthSquared()) }

// DistanceSquared returns |v - o|².
func (v Vector3) DistanceSquared(o Vector3) float32 { return v.Subtract(o).LengthSquared() }

// Distance returns |v - o|.
func (v Vector3) Distance(o Vector3) float32 { return v.Subtract(o).Length() }

// Normalize returns v scaled to unit length.
// Returns ErrZeroLength if |v| is nearly zero.
func (v Vector3) Normalize() (Vector3, error) {
	n, err := v.normalize()
	if err != nil {
		return Vector3{}, geomErrorf(opNormalize, err)
	}
	return n, nil
}

// normalize returns the bare sentinel so callers can wrap with their own tag.
func (v Vector3) normalize() (Vector3, error) {
	l := v.Length()
	if scalar.NearlyZero(l) {
		return Vector3{}, ErrZeroLength
	}
	inv := 1 / l
	return Vector3{v.X * inv, v.Y * inv, v.Z * inv}, nil
}

// IsNormalized reports whether |v|² is nearly 1.
func (v Vector3) IsNormalized() bool { return scalar.NearlyEqual(v.LengthSquared(), 1) }

// Lerp blends v toward o by t; t is not clamped.
func (v Vector3) Lerp(o Vector3, t float32) Vector3 {
	return Vector3{
		X: scalar.Lerp(v.X, o.X, t),
		Y: scalar.Lerp(v.Y, o.Y, t),
		Z: scalar.Lerp(v.Z, o.Z, t),
	}
}

// Hermite evaluates the Hermite spline from v (tangent t1) to v2 (tangent t2).
func (v Vector3) Hermite(t1, v2, t2 Vector3, weight float32) Vector3 {
	return Vector3{
		X: scalar.Hermite(v.X, t1.X, v2.X, t2.X, weight),
		Y: scalar.Hermite(v.Y, t1.Y, v2.Y, t2.Y, weight),
		Z: scalar.Hermite(v.Z, t1.Z, v2.Z, t2.Z, weight),
	}
}

// SmoothStep blends v toward o with a clamped cubic ease.
func (v Vector3) SmoothStep(o Vector3, t float32) Vector3 {
	return Vector3{
		X: scalar.SmoothStep(v.X, o.X, t),
		Y: scalar.SmoothStep(v.Y, o.Y, t),
		Z: scalar.SmoothStep(v.Z, o.Z, t),
	}
}

// Clamp limits each component to [lo, hi]. Panics if lo exceeds hi on any axis.
func (v Vector3) Clamp(lo, hi Vector3) Vector3 {
	return Vector3{
		X: scalar.Clamp(v.X, lo.X, hi.X),
		Y: scalar.Clamp(v.Y, lo.Y, hi.Y),
		Z: scalar.Clamp(v.Z, lo.Z, hi.Z),
	}
}

// Clamp01 limits each component to [0, 1].
func (v Vector3) Clamp01() Vector3 {
	return Vector3{scalar.Clamp01(v.X), scalar.Clamp01(v.Y), scalar.Clamp01(v.Z)}
}

// Min returns the component-wise minimum.
func (v Vector3) Min(o Vector3) Vector3 {
	return Vector3{scalar.Min(v.X, o.X), scalar.Min(v.Y, o.Y), scalar.Min(v.Z, o.Z)}
}

// Max returns the component-wise maximum.
func (v Vector3) Max(o Vector3) Vector3 {
	return Vector3{scalar.Max(v.X, o.X), scalar.Max(v.Y, o.Y), scalar.Max(v.Z, o.Z)}
}

// Transform treats v as a point (w = 1) and multiplies it by m.
func (v Vector3) Transform(m Matrix4x4) Vector3 {
	return Vector3{
		X: v.X*m.M11 + v.Y*m.M21 + v.Z*m.M31 + m.M41,
		Y: v.X*m.M12 + v.Y*m.M22 + v.Z*m.M32 + m.M42,
		Z: v.X*m.M13 + v.Y*m.M23 + v.Z*m.M33 + m.M43,
	}
}

// TransformNormal treats v as a direction (w = 0) and multiplies it by m.
func (v Vector3) TransformNormal(m Matrix4x4) Vector3 {
	return Vector3{
		X: v.X*m.M11 + v.Y*m.M21 + v.Z*m.M31,
		Y: v.X*m.M12 + v.Y*m.M22 + v.Z*m.M32,
		Z: v.X*m.M13 + v.Y*m.M23 + v.Z*m.M33,
	}
}

// Rotate rotates v by the unit quaternion q.
// Returns ErrNotNormalized if q is not unit length.
func (v Vector3) Rotate(q Quaternion) (Vector3, error) {
	if !q.IsNormalized() {
		return Vector3{}, geomErrorf(opRotate, ErrNotNormalized)
	}
	return v.rotate(q), nil
}

// rotate expands q*v*q⁻¹ as v + 2w(u×v) + 2u×(u×v) without a quaternion product.
func (v Vector3) rotate(q Quaternion) Vector3 {
	cx := 2 * (q.Y*v.Z - q.Z*v.Y)
	cy := 2 * (q.Z*v.X - q.X*v.Z)
	cz := 2 * (q.X*v.Y - q.Y*v.X)

	return Vector3{
		X: v.X + q.W*cx + q.Y*cz - q.Z*cy,
		Y: v.Y + q.W*cy + q.Z*cx - q.X*cz,
		Z: v.Z + q.W*cz + q.X*cy - q.Y*cx,
	}
}

// Equal reports exact component equality.
func (v Vector3) Equal(o Vector3) bool { return v == o }

// NearlyEqual reports component equality within the shared tolerance.
func (v Vector3) NearlyEqual(o Vector3) bool {
	return scalar.NearlyEqual(v.X, o.X) && scalar.NearlyEqual(v.Y, o.Y) && scalar.NearlyEqual(v.Z, o.Z)
}

// IsZero reports whether every component is exactly zero.
func (v Vector3) IsZero() bool { return v == Vector3{} }

// NearlyZero reports whether every component is nearly zero.
func (v Vector3) NearlyZero() bool {
	return scalar.NearlyZero(v.X) && scalar.NearlyZero(v.Y) && scalar.NearlyZero(v.Z)
}

// AllLess reports v.i < o.i on every axis.
func (v Vector3) AllLess(o Vector3) bool { return v.X < o.X && v.Y < o.Y && v.Z < o.Z }

// AllLessEqual reports v.i <= o.i on every axis.
func (v Vector3) AllLessEqual(o Vector3) bool { return v.X <= o.X && v.Y <= o.Y && v.Z <= o.Z }

// AllGreater reports v.i > o.i on every axis.
func (v Vector3) AllGreater(o Vector3) bool { return v.X > o.X && v.Y > o.Y && v.Z > o.Z }

// AllGreaterEqual reports v.i >= o.i on every axis.
func (v Vector3) AllGreaterEqual(o Vector3) bool { return v.X >= o.X && v.Y >= o.Y && v.Z >= o.Z }

// At returns component i (0 = X, 1 = Y, 2 = Z).
func (v Vector3) At(i int) (float32, error) {
	switch i {
	case 0:
		return v.X, nil
	case 1:
		return v.Y, nil
	case 2:
		return v.Z, nil
	}
	return 0, geomErrorf(opAt, ErrOutOfRange)
}

// Array returns the components as [X, Y, Z].
func (v Vector3) Array() [3]float32 { return [3]float32{v.X, v.Y, v.Z} }

// String implements fmt.Stringer.
func (v Vector3) String() string { return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z) }
