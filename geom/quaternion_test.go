// SPDX-License-Identifier: MIT
// Package geom_test covers Quaternion construction, composition and conversion.
package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spatial/geom"
	"github.com/katalvlaran/spatial/scalar"
)

func TestQuaternion_MultiplyAppliesRightOperandFirst(t *testing.T) {
	qx := geom.RotationXQuaternion(scalar.PiOverTwo)
	qz := geom.RotationZQuaternion(scalar.PiOverTwo)
	v := geom.NewVector3(0, 1, 0)

	step1, err := v.Rotate(qx)
	require.NoError(t, err)
	step2, err := step1.Rotate(qz)
	require.NoError(t, err)

	combined, err := v.Rotate(qz.Multiply(qx))
	require.NoError(t, err)
	requireVec3Near(t, step2, combined, delta, "qz*qx rotates by qx, then qz")
}

func TestQuaternion_MultiplyMatchesMatrixOrder(t *testing.T) {
	rng := newRand()
	for i := 0; i < 50; i++ {
		q1 := randUnitQuaternion(t, rng)
		q2 := randUnitQuaternion(t, rng)

		m1, err := geom.MatrixFromQuaternion(q1)
		require.NoError(t, err)
		m2, err := geom.MatrixFromQuaternion(q2)
		require.NoError(t, err)
		m12, err := geom.MatrixFromQuaternion(q1.Multiply(q2))
		require.NoError(t, err)

		requireMatrixNear(t, m2.Multiply(m1), m12, delta, "post- vs pre-multiplication (case %d)", i)
	}
}

func TestQuaternion_MultiplyAliasing(t *testing.T) {
	rng := newRand()
	q := randUnitQuaternion(t, rng)
	r := randUnitQuaternion(t, rng)

	want := q.Multiply(r)
	q.SetMultiply(&q, &r)
	assert.Equal(t, want, q)

	want = r.Multiply(r)
	r.SetMultiply(&r, &r)
	assert.Equal(t, want, r)
}

func TestQuaternion_InverseProperties(t *testing.T) {
	rng := newRand()
	for i := 0; i < trials; i++ {
		q := randUnitQuaternion(t, rng)

		inv, err := q.Inverse()
		require.NoError(t, err)
		back, err := inv.Inverse()
		require.NoError(t, err)

		requireQuatNear(t, q, back, delta, "inverse of inverse (case %d)", i)
		requireQuatNear(t, geom.IdentityQuaternion(), q.Multiply(inv), delta, "q*q⁻¹ (case %d)", i)
		requireQuatNear(t, geom.IdentityQuaternion(), inv.Multiply(q), delta, "q⁻¹*q (case %d)", i)
	}

	_, err := geom.NewQuaternion(0, 0, 0, 3).Inverse()
	assert.ErrorIs(t, err, geom.ErrNotNormalized)

	q := geom.NewQuaternion(0, 0, 0, 3)
	assert.Error(t, q.SetInverse(&q))
	assert.Equal(t, geom.NewQuaternion(0, 0, 0, 3), q, "receiver untouched on error")
}

func TestQuaternion_FromMatrixRoundTrip(t *testing.T) {
	rng := newRand()
	for i := 0; i < trials; i++ {
		q := randUnitQuaternion(t, rng)
		m, err := geom.MatrixFromQuaternion(q)
		require.NoError(t, err)
		requireSameRotation(t, q, geom.QuaternionFromMatrix(m), delta, "case %d", i)
	}
}

func TestQuaternion_FromMatrixAllBranches(t *testing.T) {
	cases := map[string]geom.Matrix4x4{
		"w dominant": geom.RotationYMatrix(0.3),
		"x dominant": geom.RotationXMatrix(scalar.Pi),
		"y dominant": geom.RotationYMatrix(scalar.Pi),
		"z dominant": geom.RotationZMatrix(scalar.Pi),
		"x near pi":  geom.RotationXMatrix(3),
	}
	for name, m := range cases {
		t.Run(name, func(t *testing.T) {
			q := geom.QuaternionFromMatrix(m)
			assert.True(t, q.IsNormalized(), "result is unit length: %v", q)

			back, err := geom.MatrixFromQuaternion(q)
			require.NoError(t, err)
			requireMatrixNear(t, m, back, delta)
		})
	}
}

func TestQuaternion_YawPitchRollMatchesMatrix(t *testing.T) {
	rng := newRand()
	for i := 0; i < 50; i++ {
		yaw, pitch, roll := randRange(rng, -3, 3), randRange(rng, -1.5, 1.5), randRange(rng, -3, 3)
		want := geom.QuaternionFromMatrix(geom.MatrixFromYawPitchRoll(yaw, pitch, roll))
		got := geom.QuaternionFromYawPitchRoll(yaw, pitch, roll)
		requireSameRotation(t, want, got, delta, "case %d", i)
	}
}

func TestQuaternion_Orientation(t *testing.T) {
	fwd, up := geom.NewVector3(1, -0.5, -2), geom.Up()

	m, err := geom.OrientationMatrix(fwd, up)
	require.NoError(t, err)
	q, err := geom.OrientationQuaternion(fwd, up)
	require.NoError(t, err)
	requireSameRotation(t, geom.QuaternionFromMatrix(m), q, delta)

	n, _ := fwd.Normalize()
	got, err := geom.Forward().Rotate(q)
	require.NoError(t, err)
	requireVec3Near(t, n, got, delta, "object forward (-Z) rotates onto the requested forward")

	_, err = geom.OrientationQuaternion(geom.Zero3(), up)
	assert.ErrorIs(t, err, geom.ErrZeroLength)
}

func TestQuaternion_EulerAnglesMatchMatrix(t *testing.T) {
	rng := newRand()
	for i := 0; i < trials; i++ {
		yaw, pitch, roll := randRange(rng, -3, 3), randRange(rng, -1.4, 1.4), randRange(rng, -3, 3)
		q := geom.QuaternionFromYawPitchRoll(yaw, pitch, roll)

		e, err := q.EulerAngles()
		require.NoError(t, err)
		requireVec3Near(t, geom.NewVector3(pitch, yaw, roll), e, loose, "case %d", i)
	}

	locked := geom.QuaternionFromYawPitchRoll(0.4, scalar.PiOverTwo, 0.3)
	e, err := locked.EulerAngles()
	require.NoError(t, err)
	requireVec3Near(t, geom.MatrixFromYawPitchRoll(0.4, scalar.PiOverTwo, 0.3).EulerAngles(), e, loose)

	_, err = geom.ZeroQuaternion().EulerAngles()
	assert.ErrorIs(t, err, geom.ErrNotNormalized)
}

func TestQuaternion_Normalize(t *testing.T) {
	q, err := geom.NewQuaternion(0, 0, 0, 2).Normalize()
	require.NoError(t, err)
	assert.Equal(t, geom.IdentityQuaternion(), q)

	_, err = geom.NewQuaternion(0.0001, 0, 0, 0).Normalize()
	assert.ErrorIs(t, err, geom.ErrZeroLength)

	q = geom.NewQuaternion(1, 2, 3, 4)
	require.NoError(t, q.SetNormalize(&q))
	assert.True(t, q.IsNormalized())
}

func TestQuaternion_Transform(t *testing.T) {
	rng := newRand()
	q := randUnitQuaternion(t, rng)
	m := geom.MatrixFromYawPitchRoll(0.2, -0.7, 1.1)

	got := q.Transform(m)
	want := geom.QuaternionFromMatrix(m).Multiply(q)
	requireQuatNear(t, want, got, delta)

	mq, err := geom.MatrixFromQuaternion(got)
	require.NoError(t, err)
	mq0, err := geom.MatrixFromQuaternion(q)
	require.NoError(t, err)
	requireMatrixNear(t, mq0.Multiply(m), mq, delta, "q then m")
}

func TestQuaternion_RotateMatchesMatrix(t *testing.T) {
	rng := newRand()
	for i := 0; i < 50; i++ {
		q := randUnitQuaternion(t, rng)
		v := randVec3(rng, -5, 5)
		m, err := geom.MatrixFromQuaternion(q)
		require.NoError(t, err)

		got, err := q.Rotate(v)
		require.NoError(t, err)
		requireVec3Near(t, v.Transform(m), got, loose, "case %d", i)
	}

	_, err := geom.One3().Rotate(geom.NewQuaternion(1, 1, 1, 1))
	assert.ErrorIs(t, err, geom.ErrNotNormalized)
}

func TestQuaternion_NegateIsSameRotation(t *testing.T) {
	q := geom.QuaternionFromYawPitchRoll(1, 0.5, -0.25)
	n := q.Negate()

	mq, err := geom.MatrixFromQuaternion(q)
	require.NoError(t, err)
	mn, err := geom.MatrixFromQuaternion(n)
	require.NoError(t, err)
	requireMatrixNear(t, mq, mn, delta)
	assert.True(t, q.SameRotation(n))
	assert.False(t, q.NearlyEqual(n))

	var out geom.Quaternion
	out.SetNegate(&q)
	assert.Equal(t, n, out)
}

func TestQuaternion_Arithmetic(t *testing.T) {
	a := geom.NewQuaternion(1, 2, 3, 4)
	b := geom.NewQuaternion(4, 3, 2, 1)

	assert.Equal(t, geom.NewQuaternion(5, 5, 5, 5), a.Add(b))
	assert.Equal(t, geom.NewQuaternion(-3, -1, 1, 3), a.Subtract(b))
	assert.Equal(t, geom.NewQuaternion(2, 4, 6, 8), a.MultiplyScalar(2))
	assert.Equal(t, float32(20), a.Dot(b))
	assert.Equal(t, float32(30), a.LengthSquared())

	half, err := a.DivideScalar(2)
	require.NoError(t, err)
	assert.Equal(t, geom.NewQuaternion(0.5, 1, 1.5, 2), half)
	_, err = a.DivideScalar(0)
	assert.ErrorIs(t, err, geom.ErrDivideByZero)

	assert.True(t, a.AllLess(geom.NewQuaternion(2, 3, 4, 5)))
	assert.True(t, a.AllLessEqual(a))
	assert.True(t, a.AllGreater(geom.ZeroQuaternion()))
	assert.True(t, a.AllGreaterEqual(a))
	assert.True(t, geom.ZeroQuaternion().IsZero())
	assert.True(t, geom.NewQuaternion(0.0001, 0, 0, 0).NearlyZero())

	w, err := a.At(3)
	require.NoError(t, err)
	assert.Equal(t, float32(4), w)
	_, err = a.At(4)
	assert.ErrorIs(t, err, geom.ErrOutOfRange)
}
