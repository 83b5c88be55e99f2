// Package spatial is single-precision 3D math for real-time graphics:
// vectors, a 4x4 transform matrix, quaternions and rectangles, with the
// matrix/quaternion algebra a renderer or animation system leans on.
//
// 🚀 What is in the box?
//
//	• scalar — tolerance-aware comparisons, clamping, trig and curves
//	• geom   — Vector2/3/4, Matrix4x4, Quaternion, Rect
//	           view/projection builders, inverse, determinant,
//	           orthonormalization, decomposition, Euler extraction,
//	           Lerp/Nlerp/Slerp
//	• interop — conversions to mathgl, x/image/math/f32 and gonum
//
// ✨ Conventions:
//
//   - Row-major storage, row vectors: v' = v*M, so A.Multiply(B) applies A first
//   - Quaternions post-multiply: q1.Multiply(q2) applies q2 first
//   - Right-handed, -Z forward, Direct3D clip space (depth in [0, 1])
//   - One shared tolerance (scalar.Tolerance) decides "nearly" everywhere
//
// Every operation that can fail on caller data returns an error wrapping a
// geom sentinel (geom.ErrNonInvertible, geom.ErrNotNormalized, ...); nothing
// panics on input.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/spatial/geom"
//
//	world, err := geom.SRTMatrix(position, rotation, geom.One3())
//	view, err := geom.ViewMatrix(eye, target, geom.Up())
//	proj, err := geom.PerspectiveMatrix(fov, aspect, 0.1, 100)
//	wvp := world.Multiply(view).Multiply(proj)
//
// cmd/spatialdemo wires the packages together with zap logging and
// envconfig settings.
package spatial
