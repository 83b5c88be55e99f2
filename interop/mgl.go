// SPDX-License-Identifier: MIT
package interop

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/katalvlaran/spatial/geom"
)

// ToMgl returns m as an mgl32.Mat4 that applies the same transform.
func ToMgl(m geom.Matrix4x4) mgl32.Mat4 {
	return mgl32.Mat4(m.Array())
}

// FromMgl is the inverse of ToMgl.
func FromMgl(m mgl32.Mat4) geom.Matrix4x4 {
	return geom.MatrixFromArray([16]float32(m))
}

func QuaternionToMgl(q geom.Quaternion) mgl32.Quat {
	return mgl32.Quat{W: q.W, V: mgl32.Vec3{q.X, q.Y, q.Z}}
}

func QuaternionFromMgl(q mgl32.Quat) geom.Quaternion {
	return geom.NewQuaternion(q.V[0], q.V[1], q.V[2], q.W)
}

func Vector3ToMgl(v geom.Vector3) mgl32.Vec3 { return mgl32.Vec3(v.Array()) }

func Vector3FromMgl(v mgl32.Vec3) geom.Vector3 { return geom.NewVector3(v[0], v[1], v[2]) }

func Vector4ToMgl(v geom.Vector4) mgl32.Vec4 { return mgl32.Vec4(v.Array()) }

func Vector4FromMgl(v mgl32.Vec4) geom.Vector4 { return geom.NewVector4(v[0], v[1], v[2], v[3]) }
