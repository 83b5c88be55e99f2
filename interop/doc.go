// SPDX-License-Identifier: MIT
// Package interop converts geom values to and from the math types of other
// Go graphics and numeric libraries.
//
// 🚀 Supported libraries:
//
//   - github.com/go-gl/mathgl/mgl32: Mat4, Quat, Vec3, Vec4
//   - golang.org/x/image/math/f32:   Mat4, Vec2, Vec3, Vec4
//   - gonum.org/v1/gonum/mat:        4x4 *mat.Dense in float64
//
// ⚙️ Layout notes:
//
//	geom.Matrix4x4 is row-major with row vectors (v' = v*M). mgl32.Mat4 is
//	column-major with column vectors (v' = M*v). The two transposes cancel,
//	so the sixteen floats are copied in order and the same transform
//	results. Composition order flips accordingly:
//
//	  ToMgl(a.Multiply(b)) == ToMgl(b).Mul4(ToMgl(a))
//
//	f32.Mat4 is row-major storage of the same numbers, so it is a flat copy
//	as well. gonum's Dense is indexed (row, col) and receives the matrix as
//	written.
//
// Quaternion component order and product convention match mgl32.Quat.
package interop
