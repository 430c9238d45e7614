// Copyright (c) 2026, The Chroma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "math"

// The sRGB gamma correction piecewise functions; see
// https://en.wikipedia.org/wiki/SRGB

// SRGBToLinearComp converts a gamma-corrected sRGB component in 0-1 to
// its linear value.
func SRGBToLinearComp(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// SRGBFromLinearComp converts a linear sRGB component in 0-1 to its
// gamma-corrected value.
func SRGBFromLinearComp(v float64) float64 {
	if v <= 0.04045/12.92 {
		return 12.92 * v
	}
	return 1.055*math.Pow(v, 1.0/2.4) - 0.055
}

// SRGBToLinear converts gamma-corrected sRGB values to linear values.
func SRGBToLinear(r, g, b float64) (rl, gl, bl float64) {
	return SRGBToLinearComp(r), SRGBToLinearComp(g), SRGBToLinearComp(b)
}

// SRGBFromLinear converts linear sRGB values to gamma-corrected values.
func SRGBFromLinear(rl, gl, bl float64) (r, g, b float64) {
	return SRGBFromLinearComp(rl), SRGBFromLinearComp(gl), SRGBFromLinearComp(bl)
}
