// SPDX-License-Identifier: MIT
// Package geom_test contains shared fixtures and comparison helpers.
//
// Purpose:
//   - Compare float32 aggregates element-wise with an explicit delta so
//     failures report the offending component.
//   - Produce deterministic pseudo-random rotations and transforms for
//     property-style tests.

package geom_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spatial/geom"
)

const (
	// delta is the per-component tolerance for single operations.
	delta = 1e-4
	// loose is used after chains of several float32 operations.
	loose = 1e-3
	// seed keeps random fixtures reproducible.
	seed = 20240601
	// trials is the number of random cases per property.
	trials = 200
)

func requireVec3Near(t testing.TB, want, got geom.Vector3, d float64, msgAndArgs ...interface{}) {
	t.Helper()
	w, g := want.Array(), got.Array()
	require.InDeltaSlice(t, w[:], g[:], d, msgAndArgs...)
}

func requireVec4Near(t testing.TB, want, got geom.Vector4, d float64, msgAndArgs ...interface{}) {
	t.Helper()
	w, g := want.Array(), got.Array()
	require.InDeltaSlice(t, w[:], g[:], d, msgAndArgs...)
}

func requireQuatNear(t testing.TB, want, got geom.Quaternion, d float64, msgAndArgs ...interface{}) {
	t.Helper()
	w, g := want.Array(), got.Array()
	require.InDeltaSlice(t, w[:], g[:], d, msgAndArgs...)
}

// requireSameRotation accepts got ≈ want or got ≈ -want.
func requireSameRotation(t testing.TB, want, got geom.Quaternion, d float64, msgAndArgs ...interface{}) {
	t.Helper()
	if want.Dot(got) < 0 {
		got = got.Negate()
	}
	requireQuatNear(t, want, got, d, msgAndArgs...)
}

func requireMatrixNear(t testing.TB, want, got geom.Matrix4x4, d float64, msgAndArgs ...interface{}) {
	t.Helper()
	w, g := want.Array(), got.Array()
	require.InDeltaSlice(t, w[:], g[:], d, msgAndArgs...)
}

func newRand() *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// randRange returns a float32 in [lo, hi).
func randRange(rng *rand.Rand, lo, hi float32) float32 {
	return lo + rng.Float32()*(hi-lo)
}

func randVec3(rng *rand.Rand, lo, hi float32) geom.Vector3 {
	return geom.NewVector3(randRange(rng, lo, hi), randRange(rng, lo, hi), randRange(rng, lo, hi))
}

// randUnitQuaternion draws components in [-1, 1) and normalizes, retrying on
// the rare near-zero draw.
func randUnitQuaternion(t testing.TB, rng *rand.Rand) geom.Quaternion {
	t.Helper()
	for {
		q := geom.NewQuaternion(
			randRange(rng, -1, 1), randRange(rng, -1, 1),
			randRange(rng, -1, 1), randRange(rng, -1, 1),
		)
		if q.LengthSquared() < 0.01 {
			continue
		}
		n, err := q.Normalize()
		require.NoError(t, err)
		return n
	}
}

// randSRT returns a well-conditioned scale-rotate-translate matrix and its parts.
func randSRT(t testing.TB, rng *rand.Rand) (geom.Matrix4x4, geom.Vector3, geom.Quaternion, geom.Vector3) {
	t.Helper()
	tr := randVec3(rng, -10, 10)
	rot := randUnitQuaternion(t, rng)
	sc := randVec3(rng, 0.5, 3)
	m, err := geom.SRTMatrix(tr, rot, sc)
	require.NoError(t, err)
	return m, tr, rot, sc
}
