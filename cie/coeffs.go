// Copyright (c) 2026, The Chroma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

// Coefficients for the linear transformations between color spaces.
// Matrices are named source-to-destination; inverses are computed at
// package initialization.  A _10 or _2 suffix in the literature
// indicates a 10- or 2-degree stimulus; here the observer is carried by
// the Observer argument of the conversion functions instead.

// Stiles & Burch (1959) experimental primary settings to 10-degree cone
// fundamentals.  Coefficient ratios from Stockman, Sharpe & Fach (1999)
// and Stockman & Sharpe (2000); see
// http://www.cvrl.org/database/text/cones/ss10.htm
// The unscaled variant produces cone sensitivities arbitrarily scaled
// relative to one another; the scaled variant includes the
// normalization constants that give each fundamental a peak of one.
var (
	rgbToUnscaledLMS10 = Mat3{
		{2.846201, 11.092490, 1.000000},
		{0.168926, 8.265895, 1.000000},
		{0.000000, 0.010600, 1.000000},
	}
	unscaledLMS10ToRGB = mustInverse(rgbToUnscaledLMS10)

	rgbToLMS10 = Mat3{
		{0.191888, 0.747846, 0.067419},
		{0.019219, 0.940413, 0.113770},
		{0.000000, 0.010590, 0.999052},
	}
	lms10ToRGB = mustInverse(rgbToLMS10)
)

// Cone fundamentals to color matching functions.
//
// The 10-degree matrix is the CIE 170-2 / 2012 transformation from the
// unit-peak 2006 10-degree fundamentals; Y coefficients from Sharpe et
// al (2011), Z from Stockman, Sharpe & Fach (1999); see
// http://www.cvrl.org/database/text/cienewxyz/cie2012xyz10.htm
//
// The 2-degree matrix is Smith & Pokorny (1975) for the Judd-Vos
// corrected CIE 1931 observer; see
// http://www.cvrl.org/database/text/cones/sp.htm
var (
	lmsToXYZ10 = Mat3{
		{1.93986443, -1.34664359, 0.43044935},
		{0.69283932, 0.34967567, 0.00000000},
		{0.00000000, 0.00000000, 2.14687945},
	}
	xyzToLMS10 = mustInverse(lmsToXYZ10)

	xyzToLMS2 = Mat3{
		{0.15514, 0.54312, -0.03286},
		{-0.15514, 0.45684, 0.03286},
		{0.00000, 0.00000, 0.00801},
	}
	lmsToXYZ2 = mustInverse(xyzToLMS2)
)

// LMSToXYZ2006TwoDegree is the CIE 170-2 / 2012 transformation from the
// unit-peak 2006 2-degree cone fundamentals to color matching
// functions; see http://www.cvrl.org/database/text/cienewxyz/cie2012xyz2.htm
// It is exported for the tabulated-data package, which constructs the
// 170-2 color matching function tables from the fundamentals.
var LMSToXYZ2006TwoDegree = Mat3{
	{1.94735469, -1.41445123, 0.36476327},
	{0.68990272, 0.34832189, 0.00000000},
	{0.00000000, 0.00000000, 1.93485343},
}

// LMSToXYZ2006TenDegree is the 10-degree counterpart of
// [LMSToXYZ2006TwoDegree] (the same matrix used by XYZToLMS and
// LMSToXYZ for the ten-degree observer).
var LMSToXYZ2006TenDegree = lmsToXYZ10

// Display RGB to tristimulus values.
//
// The sRGB matrix is the standard 2-degree transformation; see
// https://en.wikipedia.org/wiki/SRGB#From_sRGB_to_CIE_XYZ
//
// The CRT matrix was derived from phosphor emission spectra measured
// with a Photo Research spectroradiometer, using the CIE 1964
// 10-degree observer and scaled so that equal primaries produce D65.
//
// The interior and exterior primaries are not a CIE standard: they are
// custom gamut triangles, one maximizing area inside the CIE 1931
// spectrum locus and one tightly enclosing it, both maintaining D65
// white and the hue angles of red, yellow, cyan, and blue.
var (
	srgbToXYZ = Mat3{
		{0.4124, 0.3576, 0.1805},
		{0.2126, 0.7152, 0.0722},
		{0.0193, 0.1192, 0.9505},
	}
	xyzToSRGB = mustInverse(srgbToXYZ)

	crtToXYZ = Mat3{
		{0.29836288, 0.45362766, 0.19612534},
		{0.15661315, 0.78580168, 0.05758517},
		{0.00000000, 0.00705743, 1.06616995},
	}
	xyzToCRT = mustInverse(crtToXYZ)

	interiorToXYZ = Mat3{
		{0.7365, 0.0435, 0.1705},
		{0.3654, 0.5821, 0.0525},
		{0.0058, 0.0801, 1.0032},
	}
	xyzToInterior = mustInverse(interiorToXYZ)

	exteriorToXYZ = Mat3{
		{0.8812, -0.0405, 0.1097},
		{0.3247, 0.7334, -0.0581},
		{-0.2237, 0.0807, 1.2320},
	}
	xyzToExterior = mustInverse(exteriorToXYZ)
)
