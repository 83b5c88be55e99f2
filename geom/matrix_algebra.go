// SPDX-License-Identifier: MIT
// Matrix4x4 algebra: products, element-wise arithmetic, determinant, inverse,
// transpose, orthonormalization, Euler extraction and decomposition.
//
// Set* forms read every input into locals before the receiver is written, so
// m.SetInverse(&m) or m.SetMultiply(&m, &m) are safe.

package geom

import "github.com/katalvlaran/spatial/scalar"

// Multiply returns m * o: a point transformed by the result is transformed by
// m first and then by o.
func (m Matrix4x4) Multiply(o Matrix4x4) Matrix4x4 {
	var out Matrix4x4
	out.SetMultiply(&m, &o)
	return out
}

// SetMultiply stores l * r in m.
func (m *Matrix4x4) SetMultiply(l, r *Matrix4x4) {
	n := Matrix4x4{
		M11: l.M11*r.M11 + l.M12*r.M21 + l.M13*r.M31 + l.M14*r.M41,
		M12: l.M11*r.M12 + l.M12*r.M22 + l.M13*r.M32 + l.M14*r.M42,
		M13: l.M11*r.M13 + l.M12*r.M23 + l.M13*r.M33 + l.M14*r.M43,
		M14: l.M11*r.M14 + l.M12*r.M24 + l.M13*r.M34 + l.M14*r.M44,

		M21: l.M21*r.M11 + l.M22*r.M21 + l.M23*r.M31 + l.M24*r.M41,
		M22: l.M21*r.M12 + l.M22*r.M22 + l.M23*r.M32 + l.M24*r.M42,
		M23: l.M21*r.M13 + l.M22*r.M23 + l.M23*r.M33 + l.M24*r.M43,
		M24: l.M21*r.M14 + l.M22*r.M24 + l.M23*r.M34 + l.M24*r.M44,

		M31: l.M31*r.M11 + l.M32*r.M21 + l.M33*r.M31 + l.M34*r.M41,
		M32: l.M31*r.M12 + l.M32*r.M22 + l.M33*r.M32 + l.M34*r.M42,
		M33: l.M31*r.M13 + l.M32*r.M23 + l.M33*r.M33 + l.M34*r.M43,
		M34: l.M31*r.M14 + l.M32*r.M24 + l.M33*r.M34 + l.M34*r.M44,

		M41: l.M41*r.M11 + l.M42*r.M21 + l.M43*r.M31 + l.M44*r.M41,
		M42: l.M41*r.M12 + l.M42*r.M22 + l.M43*r.M32 + l.M44*r.M42,
		M43: l.M41*r.M13 + l.M42*r.M23 + l.M43*r.M33 + l.M44*r.M43,
		M44: l.M41*r.M14 + l.M42*r.M24 + l.M43*r.M34 + l.M44*r.M44,
	}
	*m = n
}

// MultiplyScalar scales every element by f.
func (m Matrix4x4) MultiplyScalar(f float32) Matrix4x4 {
	return m.mapElements(func(e float32) float32 { return e * f })
}

// Add returns the element-wise sum.
func (m Matrix4x4) Add(o Matrix4x4) Matrix4x4 {
	return m.zipElements(o, func(a, b float32) float32 { return a + b })
}

// AddScalar adds f to every element.
func (m Matrix4x4) AddScalar(f float32) Matrix4x4 {
	return m.mapElements(func(e float32) float32 { return e + f })
}

// Subtract returns the element-wise difference.
func (m Matrix4x4) Subtract(o Matrix4x4) Matrix4x4 {
	return m.zipElements(o, func(a, b float32) float32 { return a - b })
}

// SubtractScalar subtracts f from every element.
func (m Matrix4x4) SubtractScalar(f float32) Matrix4x4 {
	return m.mapElements(func(e float32) float32 { return e - f })
}

// Negate returns -m.
func (m Matrix4x4) Negate() Matrix4x4 {
	return m.mapElements(func(e float32) float32 { return -e })
}

// SetNegate stores -src in m.
func (m *Matrix4x4) SetNegate(src *Matrix4x4) { *m = src.Negate() }

func (m Matrix4x4) mapElements(fn func(float32) float32) Matrix4x4 {
	a := m.Array()
	for i := range a {
		a[i] = fn(a[i])
	}
	return MatrixFromArray(a)
}

func (m Matrix4x4) zipElements(o Matrix4x4, fn func(a, b float32) float32) Matrix4x4 {
	a, b := m.Array(), o.Array()
	for i := range a {
		a[i] = fn(a[i], b[i])
	}
	return MatrixFromArray(a)
}

// Transform returns m followed by the rotation q, i.e. m * rotation(q).
// Returns ErrNotNormalized if q is not unit length.
func (m Matrix4x4) Transform(q Quaternion) (Matrix4x4, error) {
	var out Matrix4x4
	if err := out.SetTransform(&m, q); err != nil {
		return Matrix4x4{}, err
	}
	return out, nil
}

// SetTransform stores src * rotation(q) in m.
func (m *Matrix4x4) SetTransform(src *Matrix4x4, q Quaternion) error {
	if !q.IsNormalized() {
		return geomErrorf(opTransform, ErrNotNormalized)
	}
	var r Matrix4x4
	r.setFromQuaternion(q)
	m.SetMultiply(src, &r)
	return nil
}

// Determinant expands along row 1, sharing six 2x2 minors of rows 3 and 4.
func (m Matrix4x4) Determinant() float32 {
	var (
		a = m.M33*m.M44 - m.M34*m.M43
		b = m.M32*m.M44 - m.M34*m.M42
		c = m.M32*m.M43 - m.M33*m.M42
		d = m.M31*m.M44 - m.M34*m.M41
		e = m.M31*m.M43 - m.M33*m.M41
		f = m.M31*m.M42 - m.M32*m.M41
	)

	return m.M11*(m.M22*a-m.M23*b+m.M24*c) -
		m.M12*(m.M21*a-m.M23*d+m.M24*e) +
		m.M13*(m.M21*b-m.M22*d+m.M24*f) -
		m.M14*(m.M21*c-m.M22*e+m.M23*f)
}

// Inverse returns m⁻¹.
//
// Implementation:
//   - Stage 1: twelve 2x2 determinants, s0..s5 from rows 1-2 and c0..c5 from rows 3-4.
//   - Stage 2: det = s0c5 - s1c4 + s2c3 + s3c2 - s4c1 + s5c0.
//   - Stage 3: each adjugate entry is a three-term combination of one row's
//     elements and the opposite pair's minors, scaled by 1/det.
//
// Errors:
//   - ErrNonInvertible if det is nearly zero; the result is then the Zero matrix.
//
// Complexity:
//   - Fixed arithmetic, no pivoting.
func (m Matrix4x4) Inverse() (Matrix4x4, error) {
	var out Matrix4x4
	err := out.SetInverse(&m)
	return out, err
}

// SetInverse stores src⁻¹ in m, or Zero with ErrNonInvertible.
func (m *Matrix4x4) SetInverse(src *Matrix4x4) error {
	s := *src

	var (
		s0 = s.M11*s.M22 - s.M12*s.M21
		s1 = s.M11*s.M23 - s.M13*s.M21
		s2 = s.M11*s.M24 - s.M14*s.M21
		s3 = s.M12*s.M23 - s.M13*s.M22
		s4 = s.M12*s.M24 - s.M14*s.M22
		s5 = s.M13*s.M24 - s.M14*s.M23

		c0 = s.M31*s.M42 - s.M32*s.M41
		c1 = s.M31*s.M43 - s.M33*s.M41
		c2 = s.M31*s.M44 - s.M34*s.M41
		c3 = s.M32*s.M43 - s.M33*s.M42
		c4 = s.M32*s.M44 - s.M34*s.M42
		c5 = s.M33*s.M44 - s.M34*s.M43
	)

	det := s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0
	if scalar.NearlyZero(det) {
		*m = Matrix4x4{}
		return geomErrorf(opInverse, ErrNonInvertible)
	}
	inv := 1 / det

	*m = Matrix4x4{
		M11: (s.M22*c5 - s.M23*c4 + s.M24*c3) * inv,
		M12: (-s.M12*c5 + s.M13*c4 - s.M14*c3) * inv,
		M13: (s.M42*s5 - s.M43*s4 + s.M44*s3) * inv,
		M14: (-s.M32*s5 + s.M33*s4 - s.M34*s3) * inv,

		M21: (-s.M21*c5 + s.M23*c2 - s.M24*c1) * inv,
		M22: (s.M11*c5 - s.M13*c2 + s.M14*c1) * inv,
		M23: (-s.M41*s5 + s.M43*s2 - s.M44*s1) * inv,
		M24: (s.M31*s5 - s.M33*s2 + s.M34*s1) * inv,

		M31: (s.M21*c4 - s.M22*c2 + s.M24*c0) * inv,
		M32: (-s.M11*c4 + s.M12*c2 - s.M14*c0) * inv,
		M33: (s.M41*s4 - s.M42*s2 + s.M44*s0) * inv,
		M34: (-s.M31*s4 + s.M32*s2 - s.M34*s0) * inv,

		M41: (-s.M21*c3 + s.M22*c1 - s.M23*c0) * inv,
		M42: (s.M11*c3 - s.M12*c1 + s.M13*c0) * inv,
		M43: (-s.M41*s3 + s.M42*s1 - s.M43*s0) * inv,
		M44: (s.M31*s3 - s.M32*s1 + s.M33*s0) * inv,
	}
	return nil
}

// Transpose returns mᵀ.
func (m Matrix4x4) Transpose() Matrix4x4 {
	var out Matrix4x4
	out.SetTranspose(&m)
	return out
}

// SetTranspose stores srcᵀ in m.
func (m *Matrix4x4) SetTranspose(src *Matrix4x4) {
	s := *src
	s.M12, s.M21 = s.M21, s.M12
	s.M13, s.M31 = s.M31, s.M13
	s.M14, s.M41 = s.M41, s.M14
	s.M23, s.M32 = s.M32, s.M23
	s.M24, s.M42 = s.M42, s.M24
	s.M34, s.M43 = s.M43, s.M34
	*m = s
}

// Orthonormalize re-orthogonalizes the three basis rows with modified
// Gram-Schmidt in row order, keeping the handedness of the input:
//
//	b1 = normalize(b1)
//	b2 = normalize(b2 - (b2·b1) b1)
//	b3 = b3 - (b3·b1) b1
//	b3 = normalize(b3 - (b3·b2) b2)
//
// The W column is cleared and row 4 becomes (0, 0, 0, 1).
//
// Errors:
//   - ErrZeroBasis if any basis row is nearly zero before or after projection.
func (m Matrix4x4) Orthonormalize() (Matrix4x4, error) {
	var out Matrix4x4
	if err := out.SetOrthonormalize(&m); err != nil {
		return Matrix4x4{}, err
	}
	return out, nil
}

// SetOrthonormalize stores the orthonormalized basis of src in m.
// On error m is left unchanged.
func (m *Matrix4x4) SetOrthonormalize(src *Matrix4x4) error {
	b1 := Vector3{src.M11, src.M12, src.M13}
	b2 := Vector3{src.M21, src.M22, src.M23}
	b3 := Vector3{src.M31, src.M32, src.M33}

	if scalar.NearlyZero(b1.Length()) || scalar.NearlyZero(b2.Length()) || scalar.NearlyZero(b3.Length()) {
		return geomErrorf(opOrthonormalize, ErrZeroBasis)
	}

	var err error
	if b1, err = b1.normalize(); err != nil {
		return geomErrorf(opOrthonormalize, ErrZeroBasis)
	}
	if b2, err = b2.Subtract(b1.Scale(b2.Dot(b1))).normalize(); err != nil {
		return geomErrorf(opOrthonormalize, ErrZeroBasis)
	}
	b3 = b3.Subtract(b1.Scale(b3.Dot(b1)))
	if b3, err = b3.Subtract(b2.Scale(b3.Dot(b2))).normalize(); err != nil {
		return geomErrorf(opOrthonormalize, ErrZeroBasis)
	}

	*m = MatrixFromRows(
		Vector4FromVector3(b1, 0),
		Vector4FromVector3(b2, 0),
		Vector4FromVector3(b3, 0),
		UnitW4(),
	)
	return nil
}

// EulerAngles extracts yaw-pitch-roll from a pure rotation matrix as
// Vector3{X: pitch, Y: yaw, Z: roll}, the inverse of MatrixFromYawPitchRoll.
//
// When M23 (sin pitch) is nearly ±1 the matrix is in gimbal lock: pitch is
// fixed at ±π/2, yaw absorbs the combined yaw/roll angle and roll is 0.
func (m Matrix4x4) EulerAngles() Vector3 {
	return eulerFromElements(m.M11, m.M12, m.M13, m.M21, m.M22, m.M23, m.M33)
}

// eulerFromElements is shared by the matrix and quaternion extractions.
func eulerFromElements(m11, m12, m13, m21, m22, m23, m33 float32) Vector3 {
	switch {
	case scalar.NearlyEqual(m23, 1):
		return Vector3{X: scalar.PiOverTwo, Y: scalar.Atan2(m12, m11)}
	case scalar.NearlyEqual(m23, -1):
		return Vector3{X: -scalar.PiOverTwo, Y: -scalar.Atan2(m12, m11)}
	}
	return Vector3{
		X: scalar.Asin(m23),
		Y: scalar.Atan2(-m13, m33),
		Z: scalar.Atan2(-m21, m22),
	}
}

// Decompose splits an affine SRT matrix into scale, orientation and translation.
//
// Translation is row 4. Scale is the length of each basis row; the rows are
// divided by their scale and the resulting rotation converted to a quaternion.
// Shear, negative scale and matrices composed from several hierarchical SRTs
// are not recovered faithfully.
//
// Errors:
//   - ErrNotDecomposable if any basis row has nearly zero length. Scale is then
//     One, orientation Identity and translation still row 4.
func (m Matrix4x4) Decompose() (scale Vector3, orientation Quaternion, translation Vector3, err error) {
	err = m.DecomposeInto(&scale, &orientation, &translation)
	return scale, orientation, translation, err
}

// DecomposeInto is the output form of Decompose.
func (m *Matrix4x4) DecomposeInto(scale *Vector3, orientation *Quaternion, translation *Vector3) error {
	src := *m
	*translation = src.Translation()

	xs := Vector3{src.M11, src.M12, src.M13}.LengthSquared()
	ys := Vector3{src.M21, src.M22, src.M23}.LengthSquared()
	zs := Vector3{src.M31, src.M32, src.M33}.LengthSquared()

	if scalar.NearlyZero(xs) || scalar.NearlyZero(ys) || scalar.NearlyZero(zs) {
		*scale = One3()
		*orientation = IdentityQuaternion()
		return geomErrorf(opDecompose, ErrNotDecomposable)
	}

	s := Vector3{scalar.Sqrt(xs), scalar.Sqrt(ys), scalar.Sqrt(zs)}
	ix, iy, iz := 1/s.X, 1/s.Y, 1/s.Z

	rot := Matrix4x4{
		M11: src.M11 * ix, M12: src.M12 * ix, M13: src.M13 * ix,
		M21: src.M21 * iy, M22: src.M22 * iy, M23: src.M23 * iy,
		M31: src.M31 * iz, M32: src.M32 * iz, M33: src.M33 * iz,
		M44: 1,
	}

	*scale = s
	orientation.SetFromMatrix(&rot)
	return nil
}
