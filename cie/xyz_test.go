// Copyright (c) 2026, The Chroma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"testing"

	"github.com/kyle-c-mcdermott/visualizing-color-space/tolassert"
)

func TestXYZToXYY(t *testing.T) {
	cx, cy, lum := XYZToXYY(0.9505, 1.0, 1.089, SRGB)
	tolassert.EqualTol(t, 0.3127, cx, 1.0e-4)
	tolassert.EqualTol(t, 0.3290, cy, 1.0e-4)
	tolassert.Equal(t, 1, lum)

	// black gets the display white chromaticity
	cx, cy, lum = XYZToXYY(0, 0, 0, SRGB)
	wx, wy := SRGB.WhitePoint()
	tolassert.Equal(t, wx, cx)
	tolassert.Equal(t, wy, cy)
	tolassert.Equal(t, 0, lum)
}

func TestXYYRoundTrip(t *testing.T) {
	for _, c := range [][3]float64{
		{0.3127, 0.3290, 1.0},
		{0.64, 0.33, 0.2126},
		{0.15, 0.06, 0.0722},
	} {
		x, y, z := XYYToXYZ(c[0], c[1], c[2])
		cx, cy, lum := XYZToXYY(x, y, z, SRGB)
		tolassert.Equal(t, c[0], cx)
		tolassert.Equal(t, c[1], cy)
		tolassert.Equal(t, c[2], lum)
	}
}

func TestXYToUV(t *testing.T) {
	// D65 in the CIE 1960 diagram
	u, v := XYToUV(0.31271, 0.32902)
	tolassert.EqualTol(t, 0.19783, u, 1.0e-4)
	tolassert.EqualTol(t, 0.31222, v, 1.0e-4)

	x, y := UVToXY(u, v)
	tolassert.Equal(t, 0.31271, x)
	tolassert.Equal(t, 0.32902, y)
}

func TestUVRoundTrip(t *testing.T) {
	for _, c := range [][2]float64{{0.7, 0.3}, {0.1, 0.8}, {0.2, 0.05}} {
		u, v := XYToUV(c[0], c[1])
		x, y := UVToXY(u, v)
		tolassert.Equal(t, c[0], x)
		tolassert.Equal(t, c[1], y)
	}
}
