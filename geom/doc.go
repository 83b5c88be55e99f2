// Package geom provides single-precision value types for real-time 3D math:
// Vector2, Vector3, Vector4, Matrix4x4, Quaternion and Rect.
//
// 🚀 What is in the box?
//
//	• Camera & projection – ViewMatrix, PerspectiveMatrix, OrthographicMatrix
//	• Rotations          – axis-angle, yaw/pitch/roll, orientation frames
//	• Conversions        – matrix ↔ quaternion, Euler extraction from both
//	• Algebra            – Determinant, Inverse, Transpose, Orthonormalize
//	• Decomposition      – Decompose an SRT matrix back into its parts
//	• Animation          – Quaternion Lerp, Nlerp, Slerp
//
// ⚙️ Conventions:
//
//   - Matrices are row-major and multiply row vectors: v' = v * M.
//     A.Multiply(B) applies A first, then B. Translation sits in row 4.
//   - Quaternions post-multiply: q1.Multiply(q2) applies q2 first, then q1.
//   - Right-handed coordinates, -Z is forward, +Y is up.
//   - Projection maps depth to z ∈ [0, 1] (Direct3D style, not OpenGL's [-1, 1]).
//   - All "nearly" checks use the shared tolerance in package scalar.
//
// Call forms:
//
//	m, err := geom.PerspectiveMatrix(fov, aspect, near, far) // returns a new value
//	err = m.SetPerspective(fov, aspect, near, far)          // writes the receiver
//
//	inv, err := m.Inverse()
//	err = m.SetInverse(&m) // in-place is allowed
//
// Both forms behave identically. Set* methods read all inputs before writing,
// so the receiver may also be an input.
//
// Errors:
//
//	Precondition failures (non-unit quaternion, zero-length vector, degenerate
//	basis, aligned or opposite rotations for Nlerp/Slerp) are returned as
//	wrapped sentinels from errors.go; match them with errors.Is. Inverse on a
//	singular matrix also writes Zero, and Decompose on a collapsed basis also
//	writes scale One and orientation Identity. Gimbal lock is not an error.
//
// Concurrency:
//
//	All types are plain values; there is no shared mutable state apart from
//	the scalar tolerance, which is read atomically.
package geom
