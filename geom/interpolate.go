// SPDX-License-Identifier: MIT
// Rotation interpolation.
//
//	Lerp  – component-wise blend, then normalize. Cheap; only reasonable for
//	        small angles (under ~30°) and may pass through zero for opposite inputs.
//	Nlerp – Lerp with a cubic re-parametrization of t approximating constant
//	        angular velocity; reasonable up to ~90°.
//	Slerp – exact constant angular velocity along the great arc.
//
// No shortest-path sign flip is applied: callers wanting the short arc
// negate one input when Dot < 0.

package geom

import "github.com/katalvlaran/spatial/scalar"

// Nlerp correction coefficients.
const (
	nlerpAttenuation = 0.7878088
	nlerpScale       = 0.5069269
)

// Lerp blends q toward o by t and normalizes the result.
// Returns ErrZeroLength when the blend passes through the zero quaternion.
func (q Quaternion) Lerp(o Quaternion, t float32) (Quaternion, error) {
	var out Quaternion
	if err := out.SetLerp(&q, &o, t); err != nil {
		return Quaternion{}, err
	}
	return out, nil
}

// SetLerp stores Lerp(a, b, t) in q. On error q is unchanged.
func (q *Quaternion) SetLerp(a, b *Quaternion, t float32) error {
	n, err := lerp(*a, *b, t).normalize()
	if err != nil {
		return geomErrorf(opLerp, err)
	}
	*q = n
	return nil
}

func lerp(a, b Quaternion, t float32) Quaternion {
	return Quaternion{
		X: scalar.Lerp(a.X, b.X, t),
		Y: scalar.Lerp(a.Y, b.Y, t),
		Z: scalar.Lerp(a.Z, b.Z, t),
		W: scalar.Lerp(a.W, b.W, t),
	}
}

// Nlerp blends two unit quaternions with the corrected parameter
//
//	k  = 0.5069269 · (1 − 0.7878088·cosθ)²
//	t' = 2k·t³ − 3k·t² + (1 + k)·t
//
// and normalizes.
//
// Errors:
//   - ErrNotNormalized if either input is not unit length.
//   - ErrDegenerateInterpolation if |cosθ| is nearly 1 (aligned or opposite).
func (q Quaternion) Nlerp(o Quaternion, t float32) (Quaternion, error) {
	var out Quaternion
	if err := out.SetNlerp(&q, &o, t); err != nil {
		return Quaternion{}, err
	}
	return out, nil
}

// SetNlerp stores Nlerp(a, b, t) in q. On error q is unchanged.
func (q *Quaternion) SetNlerp(a, b *Quaternion, t float32) error {
	if !a.IsNormalized() || !b.IsNormalized() {
		return geomErrorf(opNlerp, ErrNotNormalized)
	}

	cos := a.Dot(*b)
	if scalar.NearlyEqual(scalar.Abs(cos), 1) {
		return geomErrorf(opNlerp, ErrDegenerateInterpolation)
	}

	f := 1 - nlerpAttenuation*cos
	k := nlerpScale * f * f
	tt := t * t
	t = 2*k*tt*t - 3*k*tt + (1+k)*t

	n, err := lerp(*a, *b, t).normalize()
	if err != nil {
		return geomErrorf(opNlerp, err)
	}
	*q = n
	return nil
}

// Slerp interpolates two unit quaternions at constant angular velocity:
//
//	θ = acos(a·b)
//	r = a·sin((1−t)θ)/sinθ + b·sin(tθ)/sinθ
//
// When θ is nearly zero a is returned unchanged, so Slerp(q, q, t) = q.
//
// Errors:
//   - ErrNotNormalized if either input is not unit length.
//   - ErrDegenerateInterpolation if cosθ is nearly -1: the inputs are
//     antipodal and the great arc is undefined.
func (q Quaternion) Slerp(o Quaternion, t float32) (Quaternion, error) {
	var out Quaternion
	if err := out.SetSlerp(&q, &o, t); err != nil {
		return Quaternion{}, err
	}
	return out, nil
}

// SetSlerp stores Slerp(a, b, t) in q. On error q is unchanged.
func (q *Quaternion) SetSlerp(a, b *Quaternion, t float32) error {
	if !a.IsNormalized() || !b.IsNormalized() {
		return geomErrorf(opSlerp, ErrNotNormalized)
	}

	cos := a.Dot(*b)
	if scalar.NearlyEqual(cos, -1) {
		return geomErrorf(opSlerp, ErrDegenerateInterpolation)
	}

	theta := scalar.Acos(cos)
	if scalar.NearlyZero(theta) {
		*q = *a
		return nil
	}

	invSin := 1 / scalar.Sin(theta)
	wa := scalar.Sin((1-t)*theta) * invSin
	wb := scalar.Sin(t*theta) * invSin

	*q = Quaternion{
		X: a.X*wa + b.X*wb,
		Y: a.Y*wa + b.Y*wb,
		Z: a.Z*wa + b.Z*wb,
		W: a.W*wa + b.W*wb,
	}
	return nil
}
