// SPDX-License-Identifier: MIT
package interop

import (
	"golang.org/x/image/math/f32"

	"github.com/katalvlaran/spatial/geom"
)

// ToF32 copies m into an f32.Mat4, element (r, c) at index 4*r+c.
func ToF32(m geom.Matrix4x4) f32.Mat4 { return f32.Mat4(m.Array()) }

// FromF32 is the inverse of ToF32.
func FromF32(m f32.Mat4) geom.Matrix4x4 { return geom.MatrixFromArray([16]float32(m)) }

func Vector2ToF32(v geom.Vector2) f32.Vec2 { return f32.Vec2(v.Array()) }
func Vector3ToF32(v geom.Vector3) f32.Vec3 { return f32.Vec3(v.Array()) }
func Vector4ToF32(v geom.Vector4) f32.Vec4 { return f32.Vec4(v.Array()) }

func Vector2FromF32(v f32.Vec2) geom.Vector2 { return geom.NewVector2(v[0], v[1]) }
func Vector3FromF32(v f32.Vec3) geom.Vector3 { return geom.NewVector3(v[0], v[1], v[2]) }
func Vector4FromF32(v f32.Vec4) geom.Vector4 { return geom.NewVector4(v[0], v[1], v[2], v[3]) }
