// Copyright (c) 2026, The Chroma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package blind models dichromatic color blindness.  A dichromat is
// missing one cone class, so all colors along a confusion line through
// that cone's copunctal point look alike; the Simulate filter
// collapses an image onto a single arc about the copunctal point to
// show what remains.
package blind

import (
	"github.com/kyle-c-mcdermott/visualizing-color-space/cie"
	"github.com/kyle-c-mcdermott/visualizing-color-space/locus"
)

// Cone is a cone class that a dichromat may be missing.
type Cone int32

const (
	// LongCone is the L cone; its absence is protanopia.
	LongCone Cone = iota

	// MediumCone is the M cone; its absence is deuteranopia.
	MediumCone

	// ShortCone is the S cone; its absence is tritanopia.
	ShortCone
)

func (c Cone) String() string {
	switch c {
	case LongCone:
		return "long"
	case MediumCone:
		return "medium"
	case ShortCone:
		return "short"
	}
	return "invalid"
}

// Copunctal returns the copunctal point of the cone class: the
// chromaticity where all of its confusion lines converge.
func (c Cone) Copunctal() (x, y float64) {
	switch c {
	case LongCone:
		return locus.Long.Chromaticity()
	case MediumCone:
		return locus.Medium.Chromaticity()
	case ShortCone:
		return locus.Short.Chromaticity()
	}
	return locus.D65.Chromaticity()
}

// SRGBToLMS converts gamma-corrected sRGB values to Smith-Pokorny cone
// activations via the 2-degree observer.
func SRGBToLMS(r, g, b float64) (l, m, s float64) {
	x, y, z := cie.RGBToXYZ(r, g, b, cie.SRGB, true)
	return cie.XYZToLMS(x, y, z, cie.TwoDegree)
}

// LMSToSRGB converts Smith-Pokorny cone activations back to
// gamma-corrected sRGB values.  The result is not clamped; activations
// describing colors outside the sRGB gamut produce components outside
// 0-1.
func LMSToSRGB(l, m, s float64) (r, g, b float64) {
	x, y, z := cie.LMSToXYZ(l, m, s, cie.TwoDegree)
	return cie.XYZToRGB(x, y, z, cie.SRGB, true)
}
