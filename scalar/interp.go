// SPDX-License-Identifier: MIT

package scalar

// Lerp blends a and b linearly; t is not clamped.
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// Hermite evaluates the cubic Hermite spline between value v1 with tangent t1
// and value v2 with tangent t2 at weight s.
func Hermite(v1, t1, v2, t2, s float32) float32 {
	s2 := s * s
	s3 := s2 * s

	return s3*(2*v1-2*v2+t1+t2) +
		s2*(-3*v1+3*v2-2*t1-t2) +
		s*t1 +
		v1
}

// SmoothStep is Hermite with zero tangents and the weight clamped to [0, 1].
func SmoothStep(a, b, t float32) float32 {
	s := Clamp01(t)
	s2 := s * s
	s3 := s2 * s

	return s3*(2*a-2*b) + s2*(-3*a+3*b) + a
}
