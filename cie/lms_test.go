// Copyright (c) 2026, The Chroma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"testing"

	"github.com/kyle-c-mcdermott/visualizing-color-space/tolassert"
	"github.com/stretchr/testify/assert"
)

func TestRGBToLMSRoundTrip(t *testing.T) {
	settings := [][3]float64{
		{1, 0, 0}, {0, 1, 0}, {0, 0, 1},
		{0.31, -0.02, 0.004}, {-0.1, 0.5, 0.02},
	}
	for _, c := range settings {
		l, m, s := RGBToLMS(c[0], c[1], c[2])
		r, g, b := LMSToRGB(l, m, s)
		tolassert.Equal(t, c[0], r)
		tolassert.Equal(t, c[1], g)
		tolassert.Equal(t, c[2], b)

		l, m, s = RGBToLMSUnscaled(c[0], c[1], c[2])
		r, g, b = LMSToRGBUnscaled(l, m, s)
		tolassert.Equal(t, c[0], r)
		tolassert.Equal(t, c[1], g)
		tolassert.Equal(t, c[2], b)
	}
}

func TestUnscaledRatios(t *testing.T) {
	// the scaled and unscaled fundamentals differ only by a per-cone
	// normalization constant
	l0, m0, s0 := RGBToLMSUnscaled(0.2, 0.5, 0.3)
	l1, m1, s1 := RGBToLMS(0.2, 0.5, 0.3)
	l2, m2, s2 := RGBToLMSUnscaled(0.7, 0.1, 0.2)
	l3, m3, s3 := RGBToLMS(0.7, 0.1, 0.2)
	tolassert.Equal(t, l0/l1, l2/l3)
	tolassert.Equal(t, m0/m1, m2/m3)
	tolassert.Equal(t, s0/s1, s2/s3)
}

func TestLMSXYZRoundTrip(t *testing.T) {
	for _, obs := range []Observer{TwoDegree, TenDegree} {
		for _, c := range [][3]float64{{1, 1, 1}, {0.4, 0.7, 0.1}, {0.05, -0.01, 0.3}} {
			x, y, z := LMSToXYZ(c[0], c[1], c[2], obs)
			l, m, s := XYZToLMS(x, y, z, obs)
			tolassert.Equal(t, c[0], l)
			tolassert.Equal(t, c[1], m)
			tolassert.Equal(t, c[2], s)
		}
	}
}

func TestSmithPokornyLuminance(t *testing.T) {
	// Smith & Pokorny fundamentals are defined so that L+M is the
	// luminous efficiency function: L+M depends only on Y
	l0, m0, _ := XYZToLMS(0.3, 1.0, 0.2, TwoDegree)
	l1, m1, _ := XYZToLMS(0.9, 1.0, 0.05, TwoDegree)
	tolassert.Equal(t, l0+m0, l1+m1)
	tolassert.EqualTol(t, 1.0, l0+m0, 1.0e-4)
}

func TestObserverStrings(t *testing.T) {
	assert.Equal(t, "2-degree", TwoDegree.String())
	assert.Equal(t, "10-degree", TenDegree.String())
	assert.Equal(t, "srgb", SRGB.String())
	assert.Equal(t, "crt", CRT.String())
	assert.Equal(t, "interior", Interior.String())
	assert.Equal(t, "exterior", Exterior.String())
}
