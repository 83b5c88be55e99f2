// SPDX-License-Identifier: MIT

package scalar

import "github.com/chewxy/math32"

// Sin returns the sine of radians.
func Sin(radians float32) float32 { return math32.Sin(radians) }

// Cos returns the cosine of radians.
func Cos(radians float32) float32 { return math32.Cos(radians) }

// Tan returns the tangent of radians.
func Tan(radians float32) float32 { return math32.Tan(radians) }

// SinCos returns sin and cos of radians in one call.
func SinCos(radians float32) (sin, cos float32) { return math32.Sincos(radians) }

// Asin returns the arc sine of f; f outside [-1, 1] yields ±π/2.
func Asin(f float32) float32 {
	if f >= 1 {
		return PiOverTwo
	}
	if f <= -1 {
		return -PiOverTwo
	}
	return math32.Asin(f)
}

// Acos returns the arc cosine of f; f >= 1 yields 0 and f <= -1 yields π.
func Acos(f float32) float32 {
	if f >= 1 {
		return 0
	}
	if f <= -1 {
		return Pi
	}
	return math32.Acos(f)
}

// Atan returns the arc tangent of f.
func Atan(f float32) float32 { return math32.Atan(f) }

// Atan2 returns the angle of (x, y); Atan2(0, 0) is 0.
func Atan2(y, x float32) float32 {
	if x == 0 && y == 0 {
		return 0
	}
	return math32.Atan2(y, x)
}
