// SPDX-License-Identifier: MIT
package interop

import (
	"errors"
	"fmt"
)

// ErrDimensionMismatch is returned when a foreign matrix is not 4x4.
var ErrDimensionMismatch = errors.New("interop: matrix must be 4x4")

const opFromDense = "FromDense"

// interopErrorf wraps err with an operation tag. Call only with a non-nil err.
func interopErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
