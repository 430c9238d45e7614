// Copyright (c) 2026, The Chroma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

// XYZToXYY converts tristimulus values to chromoluminance (x, y, Y).
// Black has no defined chromaticity; for convenience it maps to the
// white chromaticity of the given display space, matching the behavior
// used when coloring figures.
func XYZToXYY(x, y, z float64, space RGBSpace) (cx, cy, lum float64) {
	sum := x + y + z
	if sum <= 0 {
		wx, wy := space.WhitePoint()
		return wx, wy, 0
	}
	return x / sum, y / sum, y
}

// XYYToXYZ converts chromoluminance back to tristimulus values.
// y must be nonzero.
func XYYToXYZ(cx, cy, lum float64) (x, y, z float64) {
	return lum * (cx / cy), lum, lum * ((1.0 - cx - cy) / cy)
}

// XYToUV converts CIE 1931 (x, y) chromaticity to CIE 1960 (u, v)
// using MacAdam's simplified expressions; see
// https://en.wikipedia.org/wiki/CIE_1960_color_space
func XYToUV(x, y float64) (u, v float64) {
	d := 12.0*y - 2.0*x + 3.0
	return (4.0 * x) / d, (6.0 * y) / d
}

// UVToXY converts CIE 1960 (u, v) chromaticity back to CIE 1931 (x, y).
func UVToXY(u, v float64) (x, y float64) {
	d := 2.0*u - 8.0*v + 4.0
	return (3.0 * u) / d, (2.0 * v) / d
}
