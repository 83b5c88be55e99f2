// SPDX-License-Identifier: MIT

package geom

import (
	"fmt"

	"github.com/katalvlaran/spatial/scalar"
)

// Quaternion is X i + Y j + Z k + W. Unit quaternions represent rotations.
//
// Composition is post-multiplication: q1.Multiply(q2) is q2 rotated by q1,
// so q2 is applied first.
type Quaternion struct {
	X, Y, Z, W float32
}

// NewQuaternion returns (x, y, z, w).
func NewQuaternion(x, y, z, w float32) Quaternion { return Quaternion{X: x, Y: y, Z: z, W: w} }

// IdentityQuaternion returns (0, 0, 0, 1).
func IdentityQuaternion() Quaternion { return Quaternion{W: 1} }

// ZeroQuaternion returns (0, 0, 0, 0).
func ZeroQuaternion() Quaternion { return Quaternion{} }

// Add returns the component-wise sum.
func (q Quaternion) Add(o Quaternion) Quaternion {
	return Quaternion{q.X + o.X, q.Y + o.Y, q.Z + o.Z, q.W + o.W}
}

// Subtract returns the component-wise difference.
func (q Quaternion) Subtract(o Quaternion) Quaternion {
	return Quaternion{q.X - o.X, q.Y - o.Y, q.Z - o.Z, q.W - o.W}
}

// MultiplyScalar scales every component by f.
func (q Quaternion) MultiplyScalar(f float32) Quaternion {
	return Quaternion{q.X * f, q.Y * f, q.Z * f, q.W * f}
}

// DivideScalar divides every component by f, or returns ErrDivideByZero.
func (q Quaternion) DivideScalar(f float32) (Quaternion, error) {
	if scalar.NearlyZero(f) {
		return Quaternion{}, geomErrorf(opDivide, ErrDivideByZero)
	}
	return q.MultiplyScalar(1 / f), nil
}

// Negate returns -q, which represents the same rotation.
func (q Quaternion) Negate() Quaternion { return Quaternion{-q.X, -q.Y, -q.Z, -q.W} }

// SetNegate stores -src in q.
func (q *Quaternion) SetNegate(src *Quaternion) { *q = src.Negate() }

// Dot returns the four-component dot product.
func (q Quaternion) Dot(o Quaternion) float32 {
	return q.X*o.X + q.Y*o.Y + q.Z*o.Z + q.W*o.W
}

// LengthSquared returns |q|².
func (q Quaternion) LengthSquared() float32 { return q.Dot(q) }

// Length returns |q|.
func (q Quaternion) Length() float32 { return scalar.Sqrt(q.LengthSquared()) }

// IsNormalized reports whether |q|² is nearly 1.
func (q Quaternion) IsNormalized() bool { return scalar.NearlyEqual(q.LengthSquared(), 1) }

// Equal reports exact component equality.
func (q Quaternion) Equal(o Quaternion) bool { return q == o }

// NearlyEqual reports component equality within the shared tolerance.
// q and -q are not considered equal.
func (q Quaternion) NearlyEqual(o Quaternion) bool {
	return scalar.NearlyEqual(q.X, o.X) && scalar.NearlyEqual(q.Y, o.Y) &&
		scalar.NearlyEqual(q.Z, o.Z) && scalar.NearlyEqual(q.W, o.W)
}

// SameRotation reports whether q and o are nearly equal up to sign.
func (q Quaternion) SameRotation(o Quaternion) bool {
	return q.NearlyEqual(o) || q.NearlyEqual(o.Negate())
}

func (q Quaternion) IsZero() bool { return q == Quaternion{} }

func (q Quaternion) NearlyZero() bool {
	return scalar.NearlyZero(q.X) && scalar.NearlyZero(q.Y) && scalar.NearlyZero(q.Z) && scalar.NearlyZero(q.W)
}

func (q Quaternion) AllLess(o Quaternion) bool {
	return q.X < o.X && q.Y < o.Y && q.Z < o.Z && q.W < o.W
}

func (q Quaternion) AllLessEqual(o Quaternion) bool {
	return q.X <= o.X && q.Y <= o.Y && q.Z <= o.Z && q.W <= o.W
}

func (q Quaternion) AllGreater(o Quaternion) bool {
	return q.X > o.X && q.Y > o.Y && q.Z > o.Z && q.W > o.W
}

func (q Quaternion) AllGreaterEqual(o Quaternion) bool {
	return q.X >= o.X && q.Y >= o.Y && q.Z >= o.Z && q.W >= o.W
}

// At returns component i (0..3 = X, Y, Z, W).
func (q Quaternion) At(i int) (float32, error) {
	return Vector4(q).At(i)
}

// Array returns [X, Y, Z, W].
func (q Quaternion) Array() [4]float32 { return [4]float32{q.X, q.Y, q.Z, q.W} }

func (q Quaternion) String() string {
	return fmt.Sprintf("(%gi + %gj + %gk + %g)", q.X, q.Y, q.Z, q.W)
}
