// SPDX-License-Identifier: MIT

package scalar

import (
	"math"
	"sync/atomic"

	"github.com/chewxy/math32"
)

// DefaultTolerance is the squared threshold used by NearlyZero until
// SetTolerance installs another value.
const DefaultTolerance float32 = 1e-6

// tolerance holds the IEEE-754 bits of the active threshold.
var tolerance atomic.Uint32

func init() {
	tolerance.Store(math.Float32bits(DefaultTolerance))
}

// Tolerance returns the active squared tolerance.
func Tolerance() float32 {
	return math.Float32frombits(tolerance.Load())
}

// SetTolerance replaces the process-wide tolerance and returns the previous
// value, so tests can restore it with a deferred call.
//
// Panics if tol is negative, NaN or ±Inf.
func SetTolerance(tol float32) float32 {
	if tol < 0 || math32.IsNaN(tol) || math32.IsInf(tol, 0) {
		panic("scalar: tolerance must be finite and non-negative")
	}

	return math.Float32frombits(tolerance.Swap(math.Float32bits(tol)))
}

// NearlyZero reports whether f*f is below the active tolerance.
func NearlyZero(f float32) bool {
	return f*f < Tolerance()
}

// NearlyEqual reports whether a and b differ by a nearly-zero amount.
func NearlyEqual(a, b float32) bool {
	return NearlyZero(a - b)
}

// ExactlyZero reports f == 0.
func ExactlyZero(f float32) bool {
	return f == 0
}

// ExactlyEqual reports a == b.
func ExactlyEqual(a, b float32) bool {
	return a == b
}
