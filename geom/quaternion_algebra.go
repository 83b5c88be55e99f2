// SPDX-License-Identifier: MIT

package geom

import "github.com/katalvlaran/spatial/scalar"

// Multiply returns q * o, the rotation o followed by q.
func (q Quaternion) Multiply(o Quaternion) Quaternion {
	var out Quaternion
	out.SetMultiply(&q, &o)
	return out
}

// SetMultiply stores the Hamilton product l * r in q.
func (q *Quaternion) SetMultiply(l, r *Quaternion) {
	lx, ly, lz, lw := l.X, l.Y, l.Z, l.W
	rx, ry, rz, rw := r.X, r.Y, r.Z, r.W

	*q = Quaternion{
		X: rw*lx + lw*rx + ly*rz - lz*ry,
		Y: rw*ly + lw*ry + lz*rx - lx*rz,
		Z: rw*lz + lw*rz + lx*ry - ly*rx,
		W: rw*lw - lx*rx - ly*ry - lz*rz,
	}
}

// Normalize returns q at unit length, or ErrZeroLength.
func (q Quaternion) Normalize() (Quaternion, error) {
	var out Quaternion
	if err := out.SetNormalize(&q); err != nil {
		return Quaternion{}, err
	}
	return out, nil
}

// SetNormalize stores src at unit length in q. On error q is unchanged.
func (q *Quaternion) SetNormalize(src *Quaternion) error {
	n, err := src.normalize()
	if err != nil {
		return geomErrorf(opNormalize, err)
	}
	*q = n
	return nil
}

func (q Quaternion) normalize() (Quaternion, error) {
	l := q.Length()
	if scalar.NearlyZero(l) {
		return Quaternion{}, ErrZeroLength
	}
	return q.MultiplyScalar(1 / l), nil
}

// Inverse returns the conjugate of a unit quaternion.
// It is not a general inverse: non-unit input yields ErrNotNormalized.
func (q Quaternion) Inverse() (Quaternion, error) {
	var out Quaternion
	if err := out.SetInverse(&q); err != nil {
		return Quaternion{}, err
	}
	return out, nil
}

// SetInverse stores the conjugate of src in q.
func (q *Quaternion) SetInverse(src *Quaternion) error {
	if !src.IsNormalized() {
		return geomErrorf(opInverse, ErrNotNormalized)
	}
	*q = Quaternion{-src.X, -src.Y, -src.Z, src.W}
	return nil
}

// Transform returns q followed by the rotation in m: rotation(m) * q.
func (q Quaternion) Transform(m Matrix4x4) Quaternion {
	var out Quaternion
	out.SetTransform(&q, &m)
	return out
}

// SetTransform stores rotation(m) * src in q.
func (q *Quaternion) SetTransform(src *Quaternion, m *Matrix4x4) {
	var r Quaternion
	r.SetFromMatrix(m)
	q.SetMultiply(&r, src)
}

// Rotate rotates v by q; shorthand for v.Rotate(q).
func (q Quaternion) Rotate(v Vector3) (Vector3, error) {
	return v.Rotate(q)
}

// EulerAngles returns Vector3{X: pitch, Y: yaw, Z: roll}, evaluated from the
// matrix elements the extraction needs without building the full matrix.
// Gimbal lock follows Matrix4x4.EulerAngles.
//
// Returns ErrNotNormalized if q is not unit length.
func (q Quaternion) EulerAngles() (Vector3, error) {
	if !q.IsNormalized() {
		return Vector3{}, geomErrorf(opEulerAngles, ErrNotNormalized)
	}

	x, y, z := 2*q.X, 2*q.Y, 2*q.Z
	xx, yy, zz := x*q.X, y*q.Y, z*q.Z

	return eulerFromElements(
		1-yy-zz,     // M11
		x*q.Y+z*q.W, // M12
		x*q.Z-y*q.W, // M13
		x*q.Y-z*q.W, // M21
		1-xx-zz,     // M22
		y*q.Z+x*q.W, // M23
		1-xx-yy,     // M33
	), nil
}
