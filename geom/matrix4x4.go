// SPDX-License-Identifier: MIT

package geom

import (
	"fmt"

	"github.com/katalvlaran/spatial/scalar"
)

// Matrix4x4 is a row-major 4x4 matrix for row vectors.
//
// Mrc is the element at row r, column c (both 1-based). Points are transformed
// as v' = v * M, so A.Multiply(B) applies A first, then B. The translation of
// an affine transform lives in row 4.
//
// The zero value is the Zero matrix. Value methods return new matrices;
// pointer methods named Set* write the receiver and accept the receiver itself
// as any of their inputs.
type Matrix4x4 struct {
	M11, M12, M13, M14 float32
	M21, M22, M23, M24 float32
	M31, M32, M33, M34 float32
	M41, M42, M43, M44 float32
}

// matrixDim is the row and column count of Matrix4x4.
const matrixDim = 4

// Identity returns the identity matrix.
func Identity() Matrix4x4 {
	return Matrix4x4{M11: 1, M22: 1, M33: 1, M44: 1}
}

// ZeroMatrix returns the all-zero matrix.
func ZeroMatrix() Matrix4x4 { return Matrix4x4{} }

// NewMatrix4x4 builds a matrix from its sixteen elements in row order.
func NewMatrix4x4(
	m11, m12, m13, m14,
	m21, m22, m23, m24,
	m31, m32, m33, m34,
	m41, m42, m43, m44 float32,
) Matrix4x4 {
	return Matrix4x4{
		m11, m12, m13, m14,
		m21, m22, m23, m24,
		m31, m32, m33, m34,
		m41, m42, m43, m44,
	}
}

// MatrixFromRows builds a matrix from four row vectors.
func MatrixFromRows(r1, r2, r3, r4 Vector4) Matrix4x4 {
	return Matrix4x4{
		r1.X, r1.Y, r1.Z, r1.W,
		r2.X, r2.Y, r2.Z, r2.W,
		r3.X, r3.Y, r3.Z, r3.W,
		r4.X, r4.Y, r4.Z, r4.W,
	}
}

// MatrixFromArray builds a matrix from a flat row-major array: a[4*r+c].
func MatrixFromArray(a [16]float32) Matrix4x4 {
	return Matrix4x4{
		a[0], a[1], a[2], a[3],
		a[4], a[5], a[6], a[7],
		a[8], a[9], a[10], a[11],
		a[12], a[13], a[14], a[15],
	}
}

// Array returns the elements as a flat row-major array.
func (m Matrix4x4) Array() [16]float32 {
	return [16]float32{
		m.M11, m.M12, m.M13, m.M14,
		m.M21, m.M22, m.M23, m.M24,
		m.M31, m.M32, m.M33, m.M34,
		m.M41, m.M42, m.M43, m.M44,
	}
}

// At returns the element at zero-based (row, col).
// Returns ErrOutOfRange when either index is outside [0, 4).
func (m Matrix4x4) At(row, col int) (float32, error) {
	if !inMatrix(row, col) {
		return 0, geomErrorf(opAt, ErrOutOfRange)
	}
	a := m.Array()
	return a[row*matrixDim+col], nil
}

// SetAt writes the element at zero-based (row, col).
func (m *Matrix4x4) SetAt(row, col int, f float32) error {
	if !inMatrix(row, col) {
		return geomErrorf(opSetAt, ErrOutOfRange)
	}
	a := m.Array()
	a[row*matrixDim+col] = f
	*m = MatrixFromArray(a)
	return nil
}

// Row returns zero-based row i as a Vector4.
func (m Matrix4x4) Row(i int) (Vector4, error) {
	switch i {
	case 0:
		return Vector4{m.M11, m.M12, m.M13, m.M14}, nil
	case 1:
		return Vector4{m.M21, m.M22, m.M23, m.M24}, nil
	case 2:
		return Vector4{m.M31, m.M32, m.M33, m.M34}, nil
	case 3:
		return Vector4{m.M41, m.M42, m.M43, m.M44}, nil
	}
	return Vector4{}, geomErrorf(opRow, ErrOutOfRange)
}

// SetRow replaces zero-based row i.
func (m *Matrix4x4) SetRow(i int, r Vector4) error {
	switch i {
	case 0:
		m.M11, m.M12, m.M13, m.M14 = r.X, r.Y, r.Z, r.W
	case 1:
		m.M21, m.M22, m.M23, m.M24 = r.X, r.Y, r.Z, r.W
	case 2:
		m.M31, m.M32, m.M33, m.M34 = r.X, r.Y, r.Z, r.W
	case 3:
		m.M41, m.M42, m.M43, m.M44 = r.X, r.Y, r.Z, r.W
	default:
		return geomErrorf(opRow, ErrOutOfRange)
	}
	return nil
}

func inMatrix(row, col int) bool {
	return row >= 0 && row < matrixDim && col >= 0 && col < matrixDim
}

// Basis getters. The object's forward axis is -Z, so Forward is the negated
// third row.

func (m Matrix4x4) Right() Vector3 { return Vector3{m.M11, m.M12, m.M13} }
func (m Matrix4x4) Left() Vector3 { return Vector3{-m.M11, -m.M12, -m.M13} }
func (m Matrix4x4) Up() Vector3 { return Vector3{m.M21, m.M22, m.M23} }
func (m Matrix4x4) Down() Vector3 { return Vector3{-m.M21, -m.M22, -m.M23} }
func (m Matrix4x4) Backward() Vector3 { return Vector3{m.M31, m.M32, m.M33} }
func (m Matrix4x4) Forward() Vector3 { return Vector3{-m.M31, -m.M32, -m.M33} }
func (m Matrix4x4) Translation() Vector3 { return Vector3{m.M41, m.M42, m.M43} }

// Equal reports exact element equality.
func (m Matrix4x4) Equal(o Matrix4x4) bool { return m == o }

// NearlyEqual reports element-wise equality within the shared tolerance.
func (m Matrix4x4) NearlyEqual(o Matrix4x4) bool {
	a, b := m.Array(), o.Array()
	for i := range a {
		if !scalar.NearlyEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

// IsZero reports whether every element is exactly zero.
func (m Matrix4x4) IsZero() bool { return m == Matrix4x4{} }

// NearlyZero reports whether every element is nearly zero.
func (m Matrix4x4) NearlyZero() bool {
	for _, f := range m.Array() {
		if !scalar.NearlyZero(f) {
			return false
		}
	}
	return true
}

// String formats the matrix as four bracketed rows.
func (m Matrix4x4) String() string {
	return fmt.Sprintf("[%g %g %g %g] [%g %g %g %g] [%g %g %g %g] [%g %g %g %g]",
		m.M11, m.M12, m.M13, m.M14,
		m.M21, m.M22, m.M23, m.M24,
		m.M31, m.M32, m.M33, m.M34,
		m.M41, m.M42, m.M43, m.M44)
}
