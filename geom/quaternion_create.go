// SPDX-License-Identifier: MIT

package geom

import "github.com/katalvlaran/spatial/scalar"

// QuaternionFromMatrix converts the rotation in the upper 3x3 block of m.
//
// Implementation (Shepperd):
//   - trace >= 0: W is the dominant component, W = sqrt(trace+1)/2.
//   - otherwise the largest of M11, M22, M33 selects X, Y or Z as dominant,
//     so the divisor 4·dominant is never close to zero.
//   - the remaining three components come from sums or differences of the
//     symmetric off-diagonal pairs divided by that divisor.
func QuaternionFromMatrix(m Matrix4x4) Quaternion {
	var q Quaternion
	q.SetFromMatrix(&m)
	return q
}

// SetFromMatrix is the output form of QuaternionFromMatrix.
func (q *Quaternion) SetFromMatrix(m *Matrix4x4) {
	var out Quaternion
	trace := m.M11 + m.M22 + m.M33

	switch {
	case trace >= 0:
		s := scalar.Sqrt(trace + 1)
		out.W = s * 0.5
		s = 0.5 / s
		out.X = (m.M23 - m.M32) * s
		out.Y = (m.M31 - m.M13) * s
		out.Z = (m.M12 - m.M21) * s
	case m.M11 > m.M22 && m.M11 > m.M33:
		s := scalar.Sqrt(1 + m.M11 - m.M22 - m.M33)
		out.X = s * 0.5
		s = 0.5 / s
		out.Y = (m.M12 + m.M21) * s
		out.Z = (m.M13 + m.M31) * s
		out.W = (m.M23 - m.M32) * s
	case m.M22 > m.M33:
		s := scalar.Sqrt(1 + m.M22 - m.M11 - m.M33)
		out.Y = s * 0.5
		s = 0.5 / s
		out.X = (m.M12 + m.M21) * s
		out.Z = (m.M23 + m.M32) * s
		out.W = (m.M31 - m.M13) * s
	default:
		s := scalar.Sqrt(1 + m.M33 - m.M11 - m.M22)
		out.Z = s * 0.5
		s = 0.5 / s
		out.X = (m.M13 + m.M31) * s
		out.Y = (m.M23 + m.M32) * s
		out.W = (m.M12 - m.M21) * s
	}

	*q = out
}

// QuaternionFromAxisAngle rotates radians about a unit axis.
// Returns ErrNotNormalized if axis is not unit length.
func QuaternionFromAxisAngle(axis Vector3, radians float32) (Quaternion, error) {
	var q Quaternion
	err := q.SetFromAxisAngle(axis, radians)
	return q, err
}

// SetFromAxisAngle is the output form of QuaternionFromAxisAngle.
func (q *Quaternion) SetFromAxisAngle(axis Vector3, radians float32) error {
	if !axis.IsNormalized() {
		return geomErrorf(opFromAxisAngle, ErrNotNormalized)
	}
	s, c := scalar.SinCos(radians * 0.5)
	*q = Quaternion{axis.X * s, axis.Y * s, axis.Z * s, c}
	return nil
}

// RotationXQuaternion rotates radians about +X.
func RotationXQuaternion(radians float32) Quaternion {
	s, c := scalar.SinCos(radians * 0.5)
	return Quaternion{X: s, W: c}
}

// RotationYQuaternion rotates radians about +Y.
func RotationYQuaternion(radians float32) Quaternion {
	s, c := scalar.SinCos(radians * 0.5)
	return Quaternion{Y: s, W: c}
}

// RotationZQuaternion rotates radians about +Z.
func RotationZQuaternion(radians float32) Quaternion {
	s, c := scalar.SinCos(radians * 0.5)
	return Quaternion{Z: s, W: c}
}

// QuaternionFromYawPitchRoll is the quaternion of MatrixFromYawPitchRoll,
// computed directly from the half angles.
func QuaternionFromYawPitchRoll(yaw, pitch, roll float32) Quaternion {
	var q Quaternion
	q.SetFromYawPitchRoll(yaw, pitch, roll)
	return q
}

func (q *Quaternion) SetFromYawPitchRoll(yaw, pitch, roll float32) {
	sx, cx := scalar.SinCos(pitch * 0.5)
	sy, cy := scalar.SinCos(yaw * 0.5)
	sz, cz := scalar.SinCos(roll * 0.5)

	*q = Quaternion{
		X: cz*sx*cy - sz*cx*sy,
		Y: sz*sx*cy + cz*cx*sy,
		Z: cz*sx*sy + sz*cx*cy,
		W: cz*cx*cy - sz*sx*sy,
	}
}

// OrientationQuaternion is the rotation of OrientationMatrix(forward, up).
func OrientationQuaternion(forward, up Vector3) (Quaternion, error) {
	var q Quaternion
	err := q.SetOrientation(forward, up)
	return q, err
}

// SetOrientation is the output form of OrientationQuaternion.
func (q *Quaternion) SetOrientation(forward, up Vector3) error {
	var m Matrix4x4
	if err := m.setWorld(Vector3{}, forward, up); err != nil {
		return geomErrorf(opOrientation, err)
	}
	q.SetFromMatrix(&m)
	return nil
}
