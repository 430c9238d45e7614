// Copyright (c) 2026, The Chroma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

// Observer selects between the two standard stimulus sizes used by the
// conversion functions.
type Observer int32

const (
	// TwoDegree is the 2-degree foveal stimulus (Smith & Pokorny cone
	// fundamentals, CIE 1931 or 170-2 2-degree color matching
	// functions).  Generally used when working with display colors and
	// images.
	TwoDegree Observer = iota

	// TenDegree is the 10-degree stimulus (Stiles & Burch primaries,
	// CIE 2006 fundamentals, CIE 1964 or 170-2 10-degree color
	// matching functions).  Generally used in derivations from
	// experimental data.
	TenDegree
)

func (o Observer) String() string {
	switch o {
	case TwoDegree:
		return "2-degree"
	case TenDegree:
		return "10-degree"
	}
	return "invalid"
}

// RGBSpace selects the display primaries used when converting between
// tristimulus values and display colors.
type RGBSpace int32

const (
	// SRGB is the standard sRGB display space (the default almost
	// everywhere in this project).
	SRGB RGBSpace = iota

	// CRT uses primaries derived from measured CRT phosphor spectra.
	CRT

	// Interior uses custom primaries maximizing the gamut triangle
	// area inside the CIE 1931 spectrum locus.
	Interior

	// Exterior uses custom primaries tightly enclosing the CIE 1931
	// spectrum locus; colors inside the locus may have negative
	// exterior RGB coordinates in no more than rounding amounts.
	Exterior
)

func (s RGBSpace) String() string {
	switch s {
	case SRGB:
		return "srgb"
	case CRT:
		return "crt"
	case Interior:
		return "interior"
	case Exterior:
		return "exterior"
	}
	return "invalid"
}

// toXYZ returns the RGB-to-XYZ matrix for the space.
func (s RGBSpace) toXYZ() *Mat3 {
	switch s {
	case CRT:
		return &crtToXYZ
	case Interior:
		return &interiorToXYZ
	case Exterior:
		return &exteriorToXYZ
	}
	return &srgbToXYZ
}

// fromXYZ returns the XYZ-to-RGB matrix for the space.
func (s RGBSpace) fromXYZ() *Mat3 {
	switch s {
	case CRT:
		return &xyzToCRT
	case Interior:
		return &xyzToInterior
	case Exterior:
		return &xyzToExterior
	}
	return &xyzToSRGB
}

// XYZMatrix returns a copy of the RGB-to-XYZ matrix for the space.
func (s RGBSpace) XYZMatrix() Mat3 { return *s.toXYZ() }

// RGBMatrix returns a copy of the XYZ-to-RGB matrix for the space.
func (s RGBSpace) RGBMatrix() Mat3 { return *s.fromXYZ() }

// WhitePoint returns the chromaticity of the space's white (equal
// maximal primaries).  All four spaces were designed around D65, so the
// result is near (0.3127, 0.3290) in every case.
func (s RGBSpace) WhitePoint() (x, y float64) {
	m := s.toXYZ()
	sum := m.Sum()
	return m.RowSum(0) / sum, m.RowSum(1) / sum
}

// MaxLuminance returns the luminance Y of the space's white.
func (s RGBSpace) MaxLuminance() float64 {
	return s.toXYZ().RowSum(1)
}

// PrimaryChromaticities returns the (x, y) chromaticities of the red,
// green, and blue primaries of the space, in that order.
func (s RGBSpace) PrimaryChromaticities() [3][2]float64 {
	m := s.toXYZ()
	var out [3][2]float64
	for j := 0; j < 3; j++ {
		sum := m.ColSum(j)
		out[j] = [2]float64{m[0][j] / sum, m[1][j] / sum}
	}
	return out
}

// WithinGamut reports whether the chromaticity (x, y) lies inside the
// gamut triangle of the space, using the triangle-area containment
// test rounded to six decimal places (points on an edge count as
// inside).
func (s RGBSpace) WithinGamut(x, y float64) bool {
	p := s.PrimaryChromaticities()
	area := func(x1, y1, x2, y2, x3, y3 float64) float64 {
		a := (x1*(y2-y3) + x2*(y3-y1) + x3*(y1-y2)) / 2.0
		if a < 0 {
			a = -a
		}
		return a
	}
	a := area(p[0][0], p[0][1], p[1][0], p[1][1], p[2][0], p[2][1])
	a1 := area(x, y, p[1][0], p[1][1], p[2][0], p[2][1])
	a2 := area(p[0][0], p[0][1], x, y, p[2][0], p[2][1])
	a3 := area(p[0][0], p[0][1], p[1][0], p[1][1], x, y)
	return round6(a) == round6(a1+a2+a3)
}

func round6(v float64) float64 {
	const s = 1.0e6
	if v < 0 {
		return float64(int64(v*s-0.5)) / s
	}
	return float64(int64(v*s+0.5)) / s
}
