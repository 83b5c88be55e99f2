// SPDX-License-Identifier: MIT
// Package scalar provides the single-precision building blocks used by the
// geometry types in package geom: tolerance-based comparisons, clamping,
// interpolation curves and thin trigonometric wrappers over chewxy/math32.
//
// 🚀 What lives here?
//
//	• Tolerance    – one shared, overridable threshold for every "nearly" check
//	• Comparisons  – NearlyZero, NearlyEqual, ExactlyZero, ExactlyEqual
//	• Clamping     – Clamp, Clamp01, Remap, WrapRadians, WrapDegrees
//	• Curves       – Lerp, Hermite, SmoothStep
//	• Trigonometry – Sin, Cos, Tan, SinCos, Asin, Acos, Atan, Atan2
//
// Tolerance policy:
//
//	NearlyZero(f) ⇔ f*f < Tolerance()
//
// The default tolerance is 1e-6, so a value is "nearly zero" when |f| < 1e-3.
// The threshold is process-wide and may be replaced with SetTolerance at
// start-up. Reads and writes are atomic; the value is never cached by callers
// inside this module, so a change is observed by the next comparison.
//
// Domain policy:
//
//   - Asin/Acos clamp out-of-domain input to the nearest valid endpoint instead
//     of returning NaN.
//   - Atan2(0, 0) is defined as 0.
//   - Sqrt of a negative value returns NaN (as math32 does); use Abs first when
//     the sign is not meaningful.
//
// Panics are reserved for programmer errors: SetTolerance with a negative or
// non-finite value, Clamp with min > max.
package scalar
