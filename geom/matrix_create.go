// SPDX-License-Identifier: MIT
// Matrix4x4 construction: camera, projection, rotation, scale, translation and
// the composite scale-rotate-translate matrix.
//
// Every constructor exists twice: a package function returning a new matrix
// (and an error where the input can be invalid) and a Set* method writing the
// receiver. On error a Set* method leaves the receiver untouched and the
// value form returns the Zero matrix.

package geom

import "github.com/katalvlaran/spatial/scalar"

// ViewMatrix builds a right-handed look-at matrix for a camera at position
// looking toward target.
//
// Implementation:
//   - Stage 1: zAxis = normalize(position - target), the camera's backward axis.
//   - Stage 2: xAxis = normalize(up × zAxis), yAxis = normalize(zAxis × xAxis).
//   - Stage 3: the basis goes into the columns of the upper 3x3 block and row 4
//     holds -dot(axis, position) for each axis.
//
// Errors:
//   - ErrCoincidentPoints if position and target are nearly equal.
//   - ErrZeroLength if up is zero or parallel to the view direction.
func ViewMatrix(position, target, up Vector3) (Matrix4x4, error) {
	var m Matrix4x4
	err := m.SetView(position, target, up)
	return m, err
}

// SetView is the output form of ViewMatrix.
func (m *Matrix4x4) SetView(position, target, up Vector3) error {
	if position.NearlyEqual(target) {
		return geomErrorf(opView, ErrCoincidentPoints)
	}

	var (
		xAxis, yAxis, zAxis Vector3 // camera basis
		err                 error
	)
	if zAxis, err = position.Subtract(target).normalize(); err != nil {
		return geomErrorf(opView, err)
	}
	if xAxis, err = up.Cross(zAxis).normalize(); err != nil {
		return geomErrorf(opView, err)
	}
	if yAxis, err = zAxis.Cross(xAxis).normalize(); err != nil {
		return geomErrorf(opView, err)
	}

	*m = Matrix4x4{
		M11: xAxis.X, M12: yAxis.X, M13: zAxis.X, M14: 0,
		M21: xAxis.Y, M22: yAxis.Y, M23: zAxis.Y, M24: 0,
		M31: xAxis.Z, M32: yAxis.Z, M33: zAxis.Z, M34: 0,
		M41: -xAxis.Dot(position), M42: -yAxis.Dot(position), M43: -zAxis.Dot(position), M44: 1,
	}
	return nil
}

// OrthographicMatrix builds a right-handed orthographic projection of the box
// [left, right] x [bottom, top] x [-near, -far] onto x, y in [-1, 1] and
// z in [0, 1].
//
// Errors:
//   - ErrInvalidProjection if left ≈ right, bottom ≈ top, near < 0 or far <= near.
func OrthographicMatrix(left, right, bottom, top, near, far float32) (Matrix4x4, error) {
	var m Matrix4x4
	err := m.SetOrthographic(left, right, bottom, top, near, far)
	return m, err
}

// SetOrthographic is the output form of OrthographicMatrix.
func (m *Matrix4x4) SetOrthographic(left, right, bottom, top, near, far float32) error {
	if scalar.NearlyEqual(left, right) || scalar.NearlyEqual(bottom, top) || !validDepth(near, far) {
		return geomErrorf(opOrthographic, ErrInvalidProjection)
	}

	*m = Matrix4x4{
		M11: 2 / (right - left),
		M22: 2 / (top - bottom),
		M33: 1 / (near - far),
		M41: (left + right) / (left - right),
		M42: (top + bottom) / (bottom - top),
		M43: near / (near - far),
		M44: 1,
	}
	return nil
}

// OrthographicSizeMatrix builds a centred orthographic projection of a
// width x height view volume.
func OrthographicSizeMatrix(width, height, near, far float32) (Matrix4x4, error) {
	var m Matrix4x4
	err := m.SetOrthographicSize(width, height, near, far)
	return m, err
}

// SetOrthographicSize is the output form of OrthographicSizeMatrix.
func (m *Matrix4x4) SetOrthographicSize(width, height, near, far float32) error {
	if scalar.NearlyZero(width) || scalar.NearlyZero(height) || !validDepth(near, far) {
		return geomErrorf(opOrthographic, ErrInvalidProjection)
	}

	*m = Matrix4x4{
		M11: 2 / width,
		M22: 2 / height,
		M33: 1 / (near - far),
		M43: near / (near - far),
		M44: 1,
	}
	return nil
}

// PerspectiveMatrix builds a right-handed perspective projection with a
// vertical field of view fov (radians) and z mapped to [0, 1].
//
// yScale = cot(fov/2) and xScale = yScale/aspect.
//
// Errors:
//   - ErrInvalidProjection unless 0 < fov < π, aspect is non-zero, near >= 0
//     and far > near.
func PerspectiveMatrix(fov, aspect, near, far float32) (Matrix4x4, error) {
	var m Matrix4x4
	err := m.SetPerspective(fov, aspect, near, far)
	return m, err
}

// SetPerspective is the output form of PerspectiveMatrix.
func (m *Matrix4x4) SetPerspective(fov, aspect, near, far float32) error {
	if fov <= 0 || fov >= scalar.Pi || scalar.NearlyZero(aspect) || !validDepth(near, far) {
		return geomErrorf(opPerspective, ErrInvalidProjection)
	}

	yScale := 1 / scalar.Tan(fov*0.5)
	xScale := yScale / aspect

	*m = Matrix4x4{
		M11: xScale,
		M22: yScale,
		M33: far / (near - far),
		M34: -1,
		M43: near * far / (near - far),
	}
	return nil
}

func validDepth(near, far float32) bool {
	return near >= 0 && far > near
}

// MatrixFromQuaternion converts a unit quaternion to a rotation matrix.
// Returns ErrNotNormalized if q is not unit length.
func MatrixFromQuaternion(q Quaternion) (Matrix4x4, error) {
	var m Matrix4x4
	err := m.SetFromQuaternion(q)
	return m, err
}

// SetFromQuaternion is the output form of MatrixFromQuaternion.
func (m *Matrix4x4) SetFromQuaternion(q Quaternion) error {
	if !q.IsNormalized() {
		return geomErrorf(opFromQuaternion, ErrNotNormalized)
	}
	m.setFromQuaternion(q)
	return nil
}

// setFromQuaternion writes the rotation of q without checking its length.
func (m *Matrix4x4) setFromQuaternion(q Quaternion) {
	x, y, z := 2*q.X, 2*q.Y, 2*q.Z
	xx, yy, zz := x*q.X, y*q.Y, z*q.Z
	xy, xz, yz := x*q.Y, x*q.Z, y*q.Z
	wx, wy, wz := x*q.W, y*q.W, z*q.W

	*m = Matrix4x4{
		M11: 1 - yy - zz, M12: xy + wz, M13: xz - wy,
		M21: xy - wz, M22: 1 - xx - zz, M23: yz + wx,
		M31: xz + wy, M32: yz - wx, M33: 1 - xx - yy,
		M44: 1,
	}
}

// MatrixFromAxisAngle builds a rotation of radians about a unit axis
// (Rodrigues' formula). Returns ErrNotNormalized if axis is not unit length.
func MatrixFromAxisAngle(axis Vector3, radians float32) (Matrix4x4, error) {
	var m Matrix4x4
	err := m.SetFromAxisAngle(axis, radians)
	return m, err
}

// SetFromAxisAngle is the output form of MatrixFromAxisAngle.
func (m *Matrix4x4) SetFromAxisAngle(axis Vector3, radians float32) error {
	if !axis.IsNormalized() {
		return geomErrorf(opFromAxisAngle, ErrNotNormalized)
	}

	s, c := scalar.SinCos(radians)
	t := 1 - c
	x, y, z := axis.X, axis.Y, axis.Z

	*m = Matrix4x4{
		M11: t*x*x + c, M12: t*x*y + s*z, M13: t*x*z - s*y,
		M21: t*x*y - s*z, M22: t*y*y + c, M23: t*y*z + s*x,
		M31: t*x*z + s*y, M32: t*y*z - s*x, M33: t*z*z + c,
		M44: 1,
	}
	return nil
}

// RotationXMatrix rotates counter-clockwise about +X when viewed from +X.
func RotationXMatrix(radians float32) Matrix4x4 {
	var m Matrix4x4
	m.SetRotationX(radians)
	return m
}

func (m *Matrix4x4) SetRotationX(radians float32) {
	s, c := scalar.SinCos(radians)
	*m = Matrix4x4{
		M11: 1,
		M22: c, M23: s,
		M32: -s, M33: c,
		M44: 1,
	}
}

// RotationYMatrix rotates counter-clockwise about +Y when viewed from +Y.
func RotationYMatrix(radians float32) Matrix4x4 {
	var m Matrix4x4
	m.SetRotationY(radians)
	return m
}

func (m *Matrix4x4) SetRotationY(radians float32) {
	s, c := scalar.SinCos(radians)
	*m = Matrix4x4{
		M11: c, M13: -s,
		M22: 1,
		M31: s, M33: c,
		M44: 1,
	}
}

// RotationZMatrix rotates counter-clockwise about +Z when viewed from +Z.
func RotationZMatrix(radians float32) Matrix4x4 {
	var m Matrix4x4
	m.SetRotationZ(radians)
	return m
}

func (m *Matrix4x4) SetRotationZ(radians float32) {
	s, c := scalar.SinCos(radians)
	*m = Matrix4x4{
		M11: c, M12: s,
		M21: -s, M22: c,
		M33: 1,
		M44: 1,
	}
}

// MatrixFromYawPitchRoll builds RotationY(yaw) * RotationX(pitch) * RotationZ(roll)
// in closed form.
func MatrixFromYawPitchRoll(yaw, pitch, roll float32) Matrix4x4 {
	var m Matrix4x4
	m.SetFromYawPitchRoll(yaw, pitch, roll)
	return m
}

func (m *Matrix4x4) SetFromYawPitchRoll(yaw, pitch, roll float32) {
	sx, cx := scalar.SinCos(pitch)
	sy, cy := scalar.SinCos(yaw)
	sz, cz := scalar.SinCos(roll)

	*m = Matrix4x4{
		M11: cy*cz - sy*sx*sz, M12: cy*sz + sy*sx*cz, M13: -sy * cx,
		M21: -cx * sz, M22: cx * cz, M23: sx,
		M31: sy*cz + cy*sx*sz, M32: sy*sz - cy*sx*cz, M33: cy * cx,
		M44: 1,
	}
}

// OrientationMatrix is WorldMatrix at the origin.
func OrientationMatrix(forward, up Vector3) (Matrix4x4, error) {
	var m Matrix4x4
	err := m.SetOrientation(forward, up)
	return m, err
}

// SetOrientation is the output form of OrientationMatrix.
func (m *Matrix4x4) SetOrientation(forward, up Vector3) error {
	if err := m.setWorld(Vector3{}, forward, up); err != nil {
		return geomErrorf(opOrientation, err)
	}
	return nil
}

// WorldMatrix places an object at position facing forward.
//
// Forward is kept exactly (it becomes -Z of the object) and up is
// re-derived so the basis is orthonormal:
//
//	z = -normalize(forward)
//	x = normalize(up × z)
//	y = normalize(z × x)
//
// Errors:
//   - ErrZeroLength if forward or up is nearly zero, or up is parallel to forward.
func WorldMatrix(position, forward, up Vector3) (Matrix4x4, error) {
	var m Matrix4x4
	err := m.SetWorld(position, forward, up)
	return m, err
}

// SetWorld is the output form of WorldMatrix.
func (m *Matrix4x4) SetWorld(position, forward, up Vector3) error {
	if err := m.setWorld(position, forward, up); err != nil {
		return geomErrorf(opWorld, err)
	}
	return nil
}

func (m *Matrix4x4) setWorld(position, forward, up Vector3) error {
	if forward.NearlyZero() || up.NearlyZero() {
		return ErrZeroLength
	}

	var (
		xAxis, yAxis, zAxis Vector3
		err                 error
	)
	if zAxis, err = forward.Negate().normalize(); err != nil {
		return err
	}
	if xAxis, err = up.Cross(zAxis).normalize(); err != nil {
		return err
	}
	if yAxis, err = zAxis.Cross(xAxis).normalize(); err != nil {
		return err
	}

	*m = Matrix4x4{
		M11: xAxis.X, M12: xAxis.Y, M13: xAxis.Z,
		M21: yAxis.X, M22: yAxis.Y, M23: yAxis.Z,
		M31: zAxis.X, M32: zAxis.Y, M33: zAxis.Z,
		M41: position.X, M42: position.Y, M43: position.Z, M44: 1,
	}
	return nil
}

// ScaleMatrix scales by x, y and z along the axes.
func ScaleMatrix(x, y, z float32) Matrix4x4 {
	var m Matrix4x4
	m.SetScale(x, y, z)
	return m
}

// UniformScaleMatrix scales by s on every axis.
func UniformScaleMatrix(s float32) Matrix4x4 { return ScaleMatrix(s, s, s) }

// ScaleMatrixV scales by the components of v.
func ScaleMatrixV(v Vector3) Matrix4x4 { return ScaleMatrix(v.X, v.Y, v.Z) }

func (m *Matrix4x4) SetScale(x, y, z float32) {
	*m = Matrix4x4{M11: x, M22: y, M33: z, M44: 1}
}

// TranslationMatrix translates by (x, y, z).
func TranslationMatrix(x, y, z float32) Matrix4x4 {
	var m Matrix4x4
	m.SetTranslation(x, y, z)
	return m
}

// TranslationMatrixV translates by v.
func TranslationMatrixV(v Vector3) Matrix4x4 { return TranslationMatrix(v.X, v.Y, v.Z) }

func (m *Matrix4x4) SetTranslation(x, y, z float32) {
	*m = Matrix4x4{M11: 1, M22: 1, M33: 1, M41: x, M42: y, M43: z, M44: 1}
}

// SRTMatrix composes Scale(scale) * Rotation(rotation) * Translation(translation).
//
// The scale-rotate block is formed first and row 4 is then written directly;
// this equals the full product because the scale-rotate block has no
// translation of its own.
//
// Errors:
//   - ErrNotNormalized if rotation is not unit length.
func SRTMatrix(translation Vector3, rotation Quaternion, scale Vector3) (Matrix4x4, error) {
	var m Matrix4x4
	err := m.SetSRT(translation, rotation, scale)
	return m, err
}

// SetSRT is the output form of SRTMatrix.
func (m *Matrix4x4) SetSRT(translation Vector3, rotation Quaternion, scale Vector3) error {
	if !rotation.IsNormalized() {
		return geomErrorf(opSRT, ErrNotNormalized)
	}

	var r Matrix4x4
	r.setFromQuaternion(rotation)
	s := ScaleMatrixV(scale)
	m.SetMultiply(&s, &r)
	m.M41, m.M42, m.M43 = translation.X, translation.Y, translation.Z
	return nil
}
