// Copyright (c) 2026, The Chroma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"testing"

	"github.com/kyle-c-mcdermott/visualizing-color-space/tolassert"
	"github.com/stretchr/testify/assert"
)

func TestMat3Inverse(t *testing.T) {
	for _, m := range []Mat3{srgbToXYZ, crtToXYZ, interiorToXYZ, exteriorToXYZ, rgbToLMS10, lmsToXYZ10, xyzToLMS2} {
		inv, err := m.Inverse()
		assert.NoError(t, err)
		for _, v := range [][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {0.2, 0.5, 0.3}} {
			a, b, c := m.MulVec(v[0], v[1], v[2])
			r0, r1, r2 := inv.MulVec(a, b, c)
			tolassert.Equal(t, v[0], r0)
			tolassert.Equal(t, v[1], r1)
			tolassert.Equal(t, v[2], r2)
		}
	}
}

func TestMat3Singular(t *testing.T) {
	m := Mat3{{1, 2, 3}, {2, 4, 6}, {0, 0, 1}}
	_, err := m.Inverse()
	assert.Error(t, err)
}

func TestMat3Sums(t *testing.T) {
	m := Mat3{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	tolassert.Equal(t, 6, m.RowSum(0))
	tolassert.Equal(t, 12, m.ColSum(0))
	tolassert.Equal(t, 45, m.Sum())
}
