// SPDX-License-Identifier: MIT
package scene

import (
	"github.com/katalvlaran/spatial/geom"
	"github.com/katalvlaran/spatial/scalar"
)

// Camera is a perspective camera that orbits the origin at a fixed height.
type Camera struct {
	FOV    float32 // vertical, radians
	Aspect float32
	Near   float32
	Far    float32
	Height float32
	Radius float32
}

// Position returns the eye position after turning angle radians around +Y.
// Angle 0 places the eye on +Z looking down -Z.
func (c Camera) Position(angle float32) geom.Vector3 {
	s, co := scalar.SinCos(angle)
	return geom.NewVector3(c.Radius*s, c.Height, c.Radius*co)
}

// ViewProjection returns view*projection for the eye at angle, looking at the origin.
func (c Camera) ViewProjection(angle float32) (geom.Matrix4x4, error) {
	view, err := geom.ViewMatrix(c.Position(angle), geom.Zero3(), geom.Up())
	if err != nil {
		return geom.Matrix4x4{}, err
	}
	proj, err := geom.PerspectiveMatrix(c.FOV, c.Aspect, c.Near, c.Far)
	if err != nil {
		return geom.Matrix4x4{}, err
	}
	return view.Multiply(proj), nil
}

// Project maps a world point through viewProj to normalized device
// coordinates. ok is false when the point is behind the eye.
func Project(viewProj geom.Matrix4x4, p geom.Vector3) (ndc geom.Vector3, ok bool) {
	clip := geom.Vector4FromVector3(p, 1).Transform(viewProj)
	if clip.W <= 0 || scalar.NearlyZero(clip.W) {
		return geom.Vector3{}, false
	}
	return clip.XYZ().Scale(1 / clip.W), true
}

// Visible reports whether ndc lies inside the Direct3D clip volume.
func Visible(ndc geom.Vector3) bool {
	return ndc.AllGreaterEqual(geom.NewVector3(-1, -1, 0)) && ndc.AllLessEqual(geom.One3())
}
