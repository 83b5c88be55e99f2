// SPDX-License-Identifier: MIT

package scalar

import (
	"math"

	"github.com/chewxy/math32"
)

// Angle constants, single precision.
const (
	Pi               float32 = math32.Pi
	PiOverTwo        float32 = math32.Pi / 2
	PiOverFour       float32 = math32.Pi / 4
	TwoPi            float32 = math32.Pi * 2
	DegreesToRadians float32 = math32.Pi / 180
	RadiansToDegrees float32 = 180 / math32.Pi
)

// Range constants.
const (
	MaxFloat float32 = math.MaxFloat32
	MinFloat float32 = -math.MaxFloat32
	// Epsilon is the difference between 1 and the next representable float32.
	Epsilon float32 = 1.1920929e-07
)

// Abs returns |f|.
func Abs(f float32) float32 { return math32.Abs(f) }

// Sign returns -1 for negative f and 1 otherwise (zero counts as positive).
func Sign(f float32) float32 {
	if f < 0 {
		return -1
	}
	return 1
}

// Sqrt returns the square root of f.
func Sqrt(f float32) float32 { return math32.Sqrt(f) }

// InvSqrt returns 1/sqrt(f).
func InvSqrt(f float32) float32 { return 1 / math32.Sqrt(f) }

// Min returns the smaller of a and b.
func Min(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// Min3 returns the smallest of three values.
func Min3(a, b, c float32) float32 { return Min(Min(a, b), c) }

// Max3 returns the largest of three values.
func Max3(a, b, c float32) float32 { return Max(Max(a, b), c) }

// Floor rounds toward negative infinity.
func Floor(f float32) float32 { return math32.Floor(f) }

// Ceil rounds toward positive infinity.
func Ceil(f float32) float32 { return math32.Ceil(f) }

// Round rounds half away from zero.
func Round(f float32) float32 { return math32.Round(f) }

// Clamp limits f to [lo, hi].
// Panics if lo > hi.
func Clamp(f, lo, hi float32) float32 {
	if lo > hi {
		panic("scalar: Clamp called with lo > hi")
	}
	if f < lo {
		return lo
	}
	if f > hi {
		return hi
	}
	return f
}

// Clamp01 limits f to [0, 1].
func Clamp01(f float32) float32 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// Remap maps in from [inMin, inMax] onto [outMin, outMax]; input outside the
// source range is clamped to the matching end of the target range.
func Remap(in, inMin, inMax, outMin, outMax float32) float32 {
	if in <= inMin {
		return outMin
	}
	if in >= inMax {
		return outMax
	}
	return outMin + ((in-inMin)/(inMax-inMin))*(outMax-outMin)
}

// WrapRadians wraps an angle into [0, 2π).
func WrapRadians(radians float32) float32 {
	return wrap(radians, TwoPi)
}

// WrapDegrees wraps an angle into [0, 360).
func WrapDegrees(degrees float32) float32 {
	return wrap(degrees, 360)
}

func wrap(v, period float32) float32 {
	w := v - period*math32.Floor(v/period)
	// v slightly below zero can round up to exactly one period
	if w >= period {
		w -= period
	}
	return w
}

// ToRadians converts degrees to radians.
func ToRadians(degrees float32) float32 { return degrees * DegreesToRadians }

// ToDegrees converts radians to degrees.
func ToDegrees(radians float32) float32 { return radians * RadiansToDegrees }

// Swap exchanges *a and *b.
func Swap(a, b *float32) { *a, *b = *b, *a }
