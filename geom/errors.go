// SPDX-License-Identifier: MIT
// Package geom: sentinel error set.
// Every precondition that a caller can violate with data is reported through
// one of these sentinels, wrapped with the failing operation's name. Tests and
// callers match them with errors.Is. Nothing in this package panics on input.

package geom

import (
	"errors"
	"fmt"
)

var (
	// ErrNonInvertible is returned by Inverse when |det| is nearly zero.
	// The output matrix is set to Zero.
	ErrNonInvertible = errors.New("geom: matrix is not invertible")

	// ErrNotDecomposable is returned by Decompose when one of the three basis
	// rows has nearly zero length. Scale falls back to One and orientation to
	// Identity; translation is still extracted.
	ErrNotDecomposable = errors.New("geom: matrix is not decomposable")

	// ErrZeroBasis is returned by Orthonormalize when a basis row collapses to
	// nearly zero length, either on input or after projection.
	ErrZeroBasis = errors.New("geom: basis vector has zero length")

	// ErrNotNormalized signals that a unit quaternion or unit axis was required.
	ErrNotNormalized = errors.New("geom: value is not normalized")

	// ErrZeroLength signals an attempt to normalize a nearly zero vector or quaternion.
	ErrZeroLength = errors.New("geom: zero length")

	// ErrDegenerateInterpolation signals rotations too close to aligned or
	// antipodal for the requested interpolation to pick a direction.
	ErrDegenerateInterpolation = errors.New("geom: degenerate interpolation")

	// ErrCoincidentPoints signals a view matrix whose position equals its target.
	ErrCoincidentPoints = errors.New("geom: position and target coincide")

	// ErrInvalidProjection signals projection parameters outside their domain
	// (empty volume, near < 0, far <= near, fov outside (0, π)).
	ErrInvalidProjection = errors.New("geom: invalid projection parameters")

	// ErrDivideByZero signals division by a nearly zero scalar or component.
	ErrDivideByZero = errors.New("geom: division by zero")

	// ErrOutOfRange indicates a component, row or column index outside bounds.
	ErrOutOfRange = errors.New("geom: index out of range")
)

// Operation names used to tag wrapped errors.
const (
	opAt             = "At"
	opSetAt          = "SetAt"
	opRow            = "Row"
	opDivide         = "Divide"
	opNormalize      = "Normalize"
	opRotate         = "Rotate"
	opView           = "ViewMatrix"
	opOrthographic   = "OrthographicMatrix"
	opPerspective    = "PerspectiveMatrix"
	opFromQuaternion = "MatrixFromQuaternion"
	opFromAxisAngle  = "FromAxisAngle"
	opOrientation    = "Orientation"
	opWorld          = "WorldMatrix"
	opSRT            = "SRTMatrix"
	opTransform      = "Transform"
	opInverse        = "Inverse"
	opOrthonormalize = "Orthonormalize"
	opDecompose      = "Decompose"
	opEulerAngles    = "EulerAngles"
	opLerp           = "Lerp"
	opNlerp          = "Nlerp"
	opSlerp          = "Slerp"
)

// geomErrorf wraps err with an operation tag; errors.Is still matches the sentinel.
// Call only with a non-nil err.
func geomErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
