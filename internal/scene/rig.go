// SPDX-License-Identifier: MIT
package scene

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/spatial/geom"
)

// ErrParentOrder is returned when a joint does not come after its parent.
var ErrParentOrder = errors.New("scene: joint parent must precede the joint")

// Pose is a local scale-rotation-translation transform.
type Pose struct {
	Translation geom.Vector3
	Rotation    geom.Quaternion
	Scale       geom.Vector3
}

// Matrix returns the SRT matrix of p.
func (p Pose) Matrix() (geom.Matrix4x4, error) {
	return geom.SRTMatrix(p.Translation, p.Rotation, p.Scale)
}

// Joint is one node in a hierarchy. Parent is -1 for a root.
type Joint struct {
	Name   string
	Parent int
	From   Pose
	To     Pose
}

// Blend interpolates a toward b. Rotations use Slerp; when the pair is too
// degenerate for Slerp it tries Nlerp and finally keeps a's rotation.
// The returned flag reports that a fallback was taken.
func Blend(a, b Pose, t float32) (Pose, bool, error) {
	out := Pose{
		Translation: a.Translation.Lerp(b.Translation, t),
		Scale:       a.Scale.Lerp(b.Scale, t),
	}

	q, err := a.Rotation.Slerp(b.Rotation, t)
	if err == nil {
		out.Rotation = q
		return out, false, nil
	}
	if !errors.Is(err, geom.ErrDegenerateInterpolation) {
		return Pose{}, false, err
	}

	q, err = a.Rotation.Nlerp(b.Rotation, t)
	switch {
	case err == nil:
		out.Rotation = q
	case errors.Is(err, geom.ErrDegenerateInterpolation):
		out.Rotation = a.Rotation
	default:
		return Pose{}, false, err
	}
	return out, true, nil
}

// Sample blends every joint at t and returns the local poses.
func Sample(joints []Joint, t float32) ([]Pose, int, error) {
	poses := make([]Pose, len(joints))
	fallbacks := 0
	for i, j := range joints {
		p, fell, err := Blend(j.From, j.To, t)
		if err != nil {
			return nil, 0, fmt.Errorf("joint %q: %w", j.Name, err)
		}
		if fell {
			fallbacks++
		}
		poses[i] = p
	}
	return poses, fallbacks, nil
}

// WorldMatrices chains local poses into world matrices, parents first.
// With row vectors a child's world matrix is local * parentWorld.
func WorldMatrices(joints []Joint, poses []Pose) ([]geom.Matrix4x4, error) {
	if len(poses) != len(joints) {
		return nil, fmt.Errorf("scene: %d poses for %d joints", len(poses), len(joints))
	}

	worlds := make([]geom.Matrix4x4, len(joints))
	for i, j := range joints {
		local, err := poses[i].Matrix()
		if err != nil {
			return nil, fmt.Errorf("joint %q: %w", j.Name, err)
		}
		switch {
		case j.Parent < 0:
			worlds[i] = local
		case j.Parent < i:
			worlds[i].SetMultiply(&local, &worlds[j.Parent])
		default:
			return nil, fmt.Errorf("joint %q: %w", j.Name, ErrParentOrder)
		}
	}
	return worlds, nil
}

// Arm returns a three-joint chain that swings from rest to a bent pose.
func Arm() []Joint {
	rest := func(tr geom.Vector3) Pose {
		return Pose{Translation: tr, Rotation: geom.IdentityQuaternion(), Scale: geom.One3()}
	}
	bent := func(tr geom.Vector3, q geom.Quaternion) Pose {
		return Pose{Translation: tr, Rotation: q, Scale: geom.One3()}
	}

	return []Joint{
		{
			Name: "shoulder", Parent: -1,
			From: rest(geom.NewVector3(0, 1.5, 0)),
			To:   bent(geom.NewVector3(0, 1.5, 0), geom.RotationYQuaternion(1.2)),
		},
		{
			Name: "elbow", Parent: 0,
			From: rest(geom.NewVector3(1, 0, 0)),
			To:   bent(geom.NewVector3(1, 0, 0), geom.RotationZQuaternion(1.4)),
		},
		{
			Name: "wrist", Parent: 1,
			From: rest(geom.NewVector3(0.8, 0, 0)),
			To:   bent(geom.NewVector3(0.8, 0, 0), geom.RotationXQuaternion(0.6)),
		},
	}
}
