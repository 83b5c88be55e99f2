// SPDX-License-Identifier: MIT
// Package geom_test covers Matrix4x4 construction.
package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spatial/geom"
	"github.com/katalvlaran/spatial/scalar"
)

func TestOrthographic_MapsBoxToUnitDepth(t *testing.T) {
	m, err := geom.OrthographicMatrix(-1, 1, -1, 1, 0, 1)
	require.NoError(t, err)

	requireVec3Near(t, geom.Zero3(), geom.Zero3().Transform(m), delta, "origin stays at NDC origin")
	// -Z is forward: the far corner of the box sits at z = -far.
	requireVec3Near(t, geom.One3(), geom.NewVector3(1, 1, -1).Transform(m), delta, "far corner maps to (1,1,1)")
	requireVec3Near(t, geom.NewVector3(-1, -1, 0), geom.NewVector3(-1, -1, 0).Transform(m), delta)
	requireVec3Near(t, geom.NewVector3(1, 1, -1), geom.One3().Transform(m), delta, "a point behind the camera gets negative depth")
}

func TestOrthographic_OffCentre(t *testing.T) {
	m, err := geom.OrthographicMatrix(0, 800, 0, 600, 1, 11)
	require.NoError(t, err)

	requireVec3Near(t, geom.NewVector3(-1, -1, 0), geom.NewVector3(0, 0, -1).Transform(m), delta)
	requireVec3Near(t, geom.NewVector3(1, 1, 1), geom.NewVector3(800, 600, -11).Transform(m), delta)
}

func TestOrthographicSize_MatchesCentredBox(t *testing.T) {
	want, err := geom.OrthographicMatrix(-2, 2, -1, 1, 0.5, 50)
	require.NoError(t, err)
	got, err := geom.OrthographicSizeMatrix(4, 2, 0.5, 50)
	require.NoError(t, err)
	requireMatrixNear(t, want, got, delta)
}

func TestOrthographic_InvalidParameters(t *testing.T) {
	cases := []struct {
		name                                string
		left, right, bottom, top, near, far float32
	}{
		{"left equals right", 1, 1, -1, 1, 0, 1},
		{"bottom equals top", -1, 1, 2, 2, 0, 1},
		{"negative near", -1, 1, -1, 1, -0.1, 1},
		{"far equals near", -1, 1, -1, 1, 1, 1},
		{"far before near", -1, 1, -1, 1, 2, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := geom.OrthographicMatrix(tc.left, tc.right, tc.bottom, tc.top, tc.near, tc.far)
			assert.ErrorIs(t, err, geom.ErrInvalidProjection)
		})
	}

	_, err := geom.OrthographicSizeMatrix(0, 1, 0, 1)
	assert.ErrorIs(t, err, geom.ErrInvalidProjection, "zero width")
	_, err = geom.OrthographicSizeMatrix(1, 1, 1, 0.5)
	assert.ErrorIs(t, err, geom.ErrInvalidProjection, "far before near")
}

func TestPerspective_RightAngleUnitAspect(t *testing.T) {
	m, err := geom.PerspectiveMatrix(scalar.PiOverTwo, 1, 1, 100)
	require.NoError(t, err)

	assert.InDelta(t, 1, m.M11, delta)
	assert.InDelta(t, 1, m.M22, delta)
	assert.InDelta(t, 100.0/(1-100), m.M33, delta)
	assert.Equal(t, float32(-1), m.M34)
	assert.InDelta(t, 100.0/(1-100), m.M43, delta)
	assert.Equal(t, float32(0), m.M44)
}

func TestPerspective_DepthRange(t *testing.T) {
	const near, far = 0.5, 200
	m, err := geom.PerspectiveMatrix(scalar.ToRadians(60), 16.0/9.0, near, far)
	require.NoError(t, err)

	ndcZ := func(z float32) float32 {
		clip := geom.NewVector4(0, 0, z, 1).Transform(m)
		return clip.Z / clip.W
	}
	assert.InDelta(t, 0, ndcZ(-near), delta, "near plane maps to 0")
	assert.InDelta(t, 1, ndcZ(-far), delta, "far plane maps to 1")
	mid := ndcZ(-10)
	assert.True(t, mid > 0 && mid < 1, "points between the planes map inside (0,1), got %v", mid)

	assert.InDelta(t, m.M22/(16.0/9.0), m.M11, delta, "xScale = yScale/aspect")
}

func TestPerspective_InvalidParameters(t *testing.T) {
	cases := []struct {
		name                   string
		fov, aspect, near, far float32
	}{
		{"zero fov", 0, 1, 1, 10},
		{"fov of pi", scalar.Pi, 1, 1, 10},
		{"zero aspect", 1, 0, 1, 10},
		{"negative near", 1, 1, -1, 10},
		{"far equals near", 1, 1, 10, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := geom.Identity()
			err := m.SetPerspective(tc.fov, tc.aspect, tc.near, tc.far)
			assert.ErrorIs(t, err, geom.ErrInvalidProjection)
			assert.Equal(t, geom.Identity(), m, "receiver must be untouched on error")
		})
	}
}

func TestView_LooksDownNegativeZ(t *testing.T) {
	pos := geom.NewVector3(0, 0, 5)
	m, err := geom.ViewMatrix(pos, geom.Zero3(), geom.Up())
	require.NoError(t, err)

	requireMatrixNear(t, geom.TranslationMatrix(0, 0, -5), m, delta)
	requireVec3Near(t, geom.NewVector3(0, 0, -5), geom.Zero3().Transform(m), delta, "target is straight ahead")
}

func TestView_IsInverseOfCameraWorld(t *testing.T) {
	pos := geom.NewVector3(3, 4, -2)
	target := geom.NewVector3(-1, 0.5, 6)
	up := geom.Up()

	view, err := geom.ViewMatrix(pos, target, up)
	require.NoError(t, err)
	world, err := geom.WorldMatrix(pos, target.Subtract(pos), up)
	require.NoError(t, err)
	inv, err := world.Inverse()
	require.NoError(t, err)

	requireMatrixNear(t, inv, view, delta)
	requireMatrixNear(t, geom.Identity(), world.Multiply(view), delta)
}

func TestView_Degenerate(t *testing.T) {
	_, err := geom.ViewMatrix(geom.One3(), geom.NewVector3(1, 1, 1.0001), geom.Up())
	assert.ErrorIs(t, err, geom.ErrCoincidentPoints)

	_, err = geom.ViewMatrix(geom.NewVector3(0, 5, 0), geom.Zero3(), geom.Up())
	assert.ErrorIs(t, err, geom.ErrZeroLength, "up parallel to the view direction")
}

func TestRotationMatrices_AreCounterClockwise(t *testing.T) {
	quarter := scalar.PiOverTwo
	requireVec3Near(t, geom.UnitZ3(), geom.UnitY3().Transform(geom.RotationXMatrix(quarter)), delta, "X rotation: Y -> Z")
	requireVec3Near(t, geom.UnitX3(), geom.UnitZ3().Transform(geom.RotationYMatrix(quarter)), delta, "Y rotation: Z -> X")
	requireVec3Near(t, geom.UnitY3(), geom.UnitX3().Transform(geom.RotationZMatrix(quarter)), delta, "Z rotation: X -> Y")
}

func TestAxisAngle_LeavesOwnAxisFixed(t *testing.T) {
	axes := []struct {
		name  string
		axis  geom.Vector3
		elem  func(float32) geom.Matrix4x4
		qelem func(float32) geom.Quaternion
	}{
		{"x", geom.UnitX3(), geom.RotationXMatrix, geom.RotationXQuaternion},
		{"y", geom.UnitY3(), geom.RotationYMatrix, geom.RotationYQuaternion},
		{"z", geom.UnitZ3(), geom.RotationZMatrix, geom.RotationZQuaternion},
	}
	for _, a := range axes {
		for _, theta := range []float32{-2.5, -0.3, 0, 0.7, 1.9, 3} {
			q, err := geom.QuaternionFromAxisAngle(a.axis, theta)
			require.NoError(t, err)
			requireQuatNear(t, a.qelem(theta), q, delta, "%s axis-angle quaternion", a.name)

			mq, err := geom.MatrixFromQuaternion(q)
			require.NoError(t, err)
			requireVec3Near(t, a.axis, a.axis.Transform(mq), delta, "%s axis is invariant", a.name)
			requireMatrixNear(t, a.elem(theta), mq, delta, "%s quaternion matrix equals elementary rotation", a.name)

			ma, err := geom.MatrixFromAxisAngle(a.axis, theta)
			require.NoError(t, err)
			requireMatrixNear(t, a.elem(theta), ma, delta, "%s axis-angle matrix equals elementary rotation", a.name)
		}
	}
}

func TestAxisAngle_RequiresUnitAxis(t *testing.T) {
	_, err := geom.MatrixFromAxisAngle(geom.NewVector3(0, 2, 0), 1)
	assert.ErrorIs(t, err, geom.ErrNotNormalized)
	_, err = geom.QuaternionFromAxisAngle(geom.Zero3(), 1)
	assert.ErrorIs(t, err, geom.ErrNotNormalized)
	_, err = geom.MatrixFromQuaternion(geom.NewQuaternion(0, 0, 0, 2))
	assert.ErrorIs(t, err, geom.ErrNotNormalized)
}

func TestYawPitchRoll_EqualsElementaryProduct(t *testing.T) {
	for _, ypr := range [][3]float32{
		{0.3, 0.2, 0.1},
		{-1.2, 0.9, 2.4},
		{3, -1.4, -0.5},
	} {
		yaw, pitch, roll := ypr[0], ypr[1], ypr[2]
		want := geom.RotationYMatrix(yaw).Multiply(geom.RotationXMatrix(pitch)).Multiply(geom.RotationZMatrix(roll))
		got := geom.MatrixFromYawPitchRoll(yaw, pitch, roll)
		requireMatrixNear(t, want, got, delta)

		fromQ, err := geom.MatrixFromQuaternion(geom.QuaternionFromYawPitchRoll(yaw, pitch, roll))
		require.NoError(t, err)
		requireMatrixNear(t, got, fromQ, delta, "quaternion form agrees with matrix form")
	}
}

func TestWorld_BasisAndTranslation(t *testing.T) {
	pos := geom.NewVector3(1, 2, 3)
	m, err := geom.WorldMatrix(pos, geom.Forward(), geom.Up())
	require.NoError(t, err)

	want := geom.TranslationMatrixV(pos)
	requireMatrixNear(t, want, m, delta)

	fwd := geom.NewVector3(1, 0, -1)
	m, err = geom.WorldMatrix(pos, fwd, geom.NewVector3(0.2, 1, 0))
	require.NoError(t, err)

	n, _ := fwd.Normalize()
	requireVec3Near(t, n, m.Forward(), delta, "forward direction is kept exactly")
	assert.InDelta(t, 0, m.Up().Dot(m.Forward()), delta, "up is re-derived orthogonal to forward")
	assert.InDelta(t, 1, m.Determinant(), delta, "right-handed orthonormal basis")
	requireVec3Near(t, pos, m.Translation(), delta)
}

func TestWorld_Degenerate(t *testing.T) {
	_, err := geom.WorldMatrix(geom.Zero3(), geom.Zero3(), geom.Up())
	assert.ErrorIs(t, err, geom.ErrZeroLength)
	_, err = geom.OrientationMatrix(geom.Forward(), geom.Zero3())
	assert.ErrorIs(t, err, geom.ErrZeroLength)
	_, err = geom.OrientationMatrix(geom.Up(), geom.Up())
	assert.ErrorIs(t, err, geom.ErrZeroLength, "up parallel to forward")
}

func TestOrientation_IsWorldAtOrigin(t *testing.T) {
	fwd, up := geom.NewVector3(-0.3, 0.4, -1), geom.Up()
	o, err := geom.OrientationMatrix(fwd, up)
	require.NoError(t, err)
	w, err := geom.WorldMatrix(geom.Zero3(), fwd, up)
	require.NoError(t, err)
	assert.Equal(t, w, o)
}

func TestScaleAndTranslation(t *testing.T) {
	p := geom.NewVector3(1, -2, 3)

	requireVec3Near(t, geom.NewVector3(2, -6, 12), p.Transform(geom.ScaleMatrix(2, 3, 4)), delta)
	requireVec3Near(t, geom.NewVector3(2, -4, 6), p.Transform(geom.UniformScaleMatrix(2)), delta)
	assert.Equal(t, geom.ScaleMatrix(2, 3, 4), geom.ScaleMatrixV(geom.NewVector3(2, 3, 4)))

	requireVec3Near(t, geom.NewVector3(11, 18, 33), p.Transform(geom.TranslationMatrix(10, 20, 30)), delta)
	assert.Equal(t, geom.TranslationMatrix(1, 2, 3), geom.TranslationMatrixV(geom.NewVector3(1, 2, 3)))
	requireVec3Near(t, p, p.TransformNormal(geom.TranslationMatrix(10, 20, 30)), delta, "directions ignore translation")
}

func TestSRT_EqualsFullProduct(t *testing.T) {
	rng := newRand()
	for i := 0; i < 20; i++ {
		tr := randVec3(rng, -5, 5)
		rot := randUnitQuaternion(t, rng)
		sc := randVec3(rng, 0.5, 2)

		r, err := geom.MatrixFromQuaternion(rot)
		require.NoError(t, err)
		want := geom.ScaleMatrixV(sc).Multiply(r).Multiply(geom.TranslationMatrixV(tr))

		got, err := geom.SRTMatrix(tr, rot, sc)
		require.NoError(t, err)
		requireMatrixNear(t, want, got, delta)
	}

	_, err := geom.SRTMatrix(geom.Zero3(), geom.ZeroQuaternion(), geom.One3())
	assert.ErrorIs(t, err, geom.ErrNotNormalized)
}
