// Copyright (c) 2026, The Chroma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

// RGBToLMS converts experimental observer settings (Stiles & Burch
// 1959 10-degree primaries) to cone fundamentals normalized to unit
// peak.
func RGBToLMS(r, g, b float64) (l, m, s float64) {
	return rgbToLMS10.MulVec(r, g, b)
}

// RGBToLMSUnscaled converts experimental observer settings to cone
// fundamentals that are arbitrarily scaled relative to one another
// (the raw coefficient ratios, before normalization).
func RGBToLMSUnscaled(r, g, b float64) (l, m, s float64) {
	return rgbToUnscaledLMS10.MulVec(r, g, b)
}

// LMSToRGB converts unit-peak cone fundamentals back to experimental
// observer settings.  Included for completeness but not likely to see
// use.
func LMSToRGB(l, m, s float64) (r, g, b float64) {
	return lms10ToRGB.MulVec(l, m, s)
}

// LMSToRGBUnscaled converts unscaled cone fundamentals back to
// experimental observer settings.
func LMSToRGBUnscaled(l, m, s float64) (r, g, b float64) {
	return unscaledLMS10ToRGB.MulVec(l, m, s)
}

// LMSToXYZ converts cone fundamentals to color matching functions for
// the given observer: Smith & Pokorny (1975) for two degrees, CIE
// 170-2 / 2012 for ten degrees.
func LMSToXYZ(l, m, s float64, obs Observer) (x, y, z float64) {
	if obs == TenDegree {
		return lmsToXYZ10.MulVec(l, m, s)
	}
	return lmsToXYZ2.MulVec(l, m, s)
}

// XYZToLMS converts color matching functions to cone fundamentals for
// the given observer.  Negative inputs are deliberately allowed:
// confusion lines extend outside the spectrum locus, where tristimulus
// values are not physical.
func XYZToLMS(x, y, z float64, obs Observer) (l, m, s float64) {
	if obs == TenDegree {
		return xyzToLMS10.MulVec(x, y, z)
	}
	return xyzToLMS2.MulVec(x, y, z)
}
