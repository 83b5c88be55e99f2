// SPDX-License-Identifier: MIT
package interop

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/spatial/geom"
)

const dim = 4

// ToDense widens m to a 4x4 float64 gonum matrix.
func ToDense(m geom.Matrix4x4) *mat.Dense {
	a := m.Array()
	data := make([]float64, len(a))
	for i, f := range a {
		data[i] = float64(f)
	}
	return mat.NewDense(dim, dim, data)
}

// FromDense narrows a 4x4 gonum matrix to float32.
//
// Errors:
//   - ErrDimensionMismatch if d is not 4x4.
func FromDense(d mat.Matrix) (geom.Matrix4x4, error) {
	if r, c := d.Dims(); r != dim || c != dim {
		return geom.Matrix4x4{}, interopErrorf(opFromDense, ErrDimensionMismatch)
	}
	var a [dim * dim]float32
	for r := 0; r < dim; r++ {
		for c := 0; c < dim; c++ {
			a[r*dim+c] = float32(d.At(r, c))
		}
	}
	return geom.MatrixFromArray(a), nil
}
