// Copyright (c) 2026, The Chroma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Mat3 is a row-major 3x3 matrix of conversion coefficients.
type Mat3 [3][3]float64

// MulVec applies the matrix to the vector (v0, v1, v2).
func (m *Mat3) MulVec(v0, v1, v2 float64) (r0, r1, r2 float64) {
	r0 = m[0][0]*v0 + m[0][1]*v1 + m[0][2]*v2
	r1 = m[1][0]*v0 + m[1][1]*v1 + m[1][2]*v2
	r2 = m[2][0]*v0 + m[2][1]*v1 + m[2][2]*v2
	return
}

// Inverse returns the inverse of the matrix, or an error if the matrix
// is singular.
func (m *Mat3) Inverse() (Mat3, error) {
	d := mat.NewDense(3, 3, []float64{
		m[0][0], m[0][1], m[0][2],
		m[1][0], m[1][1], m[1][2],
		m[2][0], m[2][1], m[2][2],
	})
	var inv mat.Dense
	if err := inv.Inverse(d); err != nil {
		return Mat3{}, fmt.Errorf("cie: inverting matrix: %w", err)
	}
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = inv.At(i, j)
		}
	}
	return out, nil
}

// mustInverse is used for the package-level coefficient matrices, all
// of which are known to be invertible.
func mustInverse(m Mat3) Mat3 {
	inv, err := m.Inverse()
	if err != nil {
		panic(err)
	}
	return inv
}

// RowSum returns the sum of the coefficients in row i.
func (m *Mat3) RowSum(i int) float64 {
	return m[i][0] + m[i][1] + m[i][2]
}

// ColSum returns the sum of the coefficients in column j.
func (m *Mat3) ColSum(j int) float64 {
	return m[0][j] + m[1][j] + m[2][j]
}

// Sum returns the sum of all nine coefficients.
func (m *Mat3) Sum() float64 {
	return m.RowSum(0) + m.RowSum(1) + m.RowSum(2)
}
