// Copyright (c) 2026, The Chroma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "math"

// RGBToXYZ converts display colors in 0-1 to tristimulus values for
// the given display space.  Gamma correction only applies to sRGB;
// display colors in the other spaces are already linear.
func RGBToXYZ(r, g, b float64, space RGBSpace, gammaCorrect bool) (x, y, z float64) {
	if space == SRGB && gammaCorrect {
		r, g, b = SRGBToLinear(r, g, b)
	}
	return space.toXYZ().MulVec(r, g, b)
}

// XYZToRGB converts tristimulus values to display colors for the given
// display space.  The result is not clamped: chromaticities outside the
// gamut triangle, or luminances too high for the chromaticity, produce
// components outside 0-1 (use [RGBSpace.WithinGamut] to check first
// when that matters).  Values are rounded to eight decimal places, with
// negative zero normalized to zero, so that saturated conversions
// round-trip cleanly.
func XYZToRGB(x, y, z float64, space RGBSpace, gammaCorrect bool) (r, g, b float64) {
	r, g, b = space.fromXYZ().MulVec(x, y, z)
	if space == SRGB && gammaCorrect {
		r, g, b = SRGBFromLinear(r, g, b)
	}
	return round8(r), round8(g), round8(b)
}

// round8 rounds to eight decimal places; math.Abs avoids returning
// -0.0 for saturated values.
func round8(v float64) float64 {
	r := math.Round(v*1.0e8) / 1.0e8
	if r == 0 {
		return math.Abs(r)
	}
	return r
}

// RGBToXYY converts display colors directly to chromoluminance.
func RGBToXYY(r, g, b float64, space RGBSpace, gammaCorrect bool) (cx, cy, lum float64) {
	x, y, z := RGBToXYZ(r, g, b, space, gammaCorrect)
	return XYZToXYY(x, y, z, space)
}

// XYYToRGB converts chromoluminance directly to display colors.
func XYYToRGB(cx, cy, lum float64, space RGBSpace, gammaCorrect bool) (r, g, b float64) {
	x, y, z := XYYToXYZ(cx, cy, lum)
	return XYZToRGB(x, y, z, space, gammaCorrect)
}
