// Copyright (c) 2026, The Chroma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package derive reproduces the tabulated colorimetric standards from
// their experimental roots: mean Stiles & Burch observer settings,
// cone fundamental normalization constants, and color matching
// functions from cone fundamentals.
package derive

import (
	"github.com/kyle-c-mcdermott/visualizing-color-space/cie"
	"github.com/kyle-c-mcdermott/visualizing-color-space/cvrl"
)

// SettingPoint is one wavelength sample of mean color matching
// experiment primary settings.
type SettingPoint struct {
	Wavelength float64 // nm
	R, G, B    float64
}

// MeanObserverSettings reconstructs the mean Stiles & Burch (1959)
// experimental settings from the tabulated 10-degree cone
// fundamentals, by inverting the settings-to-fundamentals
// transformation.
func MeanObserverSettings() []SettingPoint {
	cones := cvrl.ConeFundamentals(cie.TenDegree)
	out := make([]SettingPoint, len(cones))
	for i, c := range cones {
		r, g, b := cie.LMSToRGB(c.L, c.M, c.S)
		out[i] = SettingPoint{Wavelength: c.Wavelength, R: r, G: g, B: b}
	}
	return out
}

// Constant is a cone fundamental normalization constant: the peak of
// the unscaled sensitivity, which dividing by gives the fundamental a
// maximum of one.
type Constant struct {
	Value          float64
	PeakWavelength float64 // nm
}

// NormalizationConstants derives the normalization constants of the
// three 10-degree cone fundamentals by transforming the mean observer
// settings with the unscaled coefficients and locating each peak.
func NormalizationConstants() (l, m, s Constant) {
	for _, p := range MeanObserverSettings() {
		ul, um, us := cie.RGBToLMSUnscaled(p.R, p.G, p.B)
		if ul > l.Value {
			l = Constant{Value: ul, PeakWavelength: p.Wavelength}
		}
		if um > m.Value {
			m = Constant{Value: um, PeakWavelength: p.Wavelength}
		}
		if us > s.Value {
			s = Constant{Value: us, PeakWavelength: p.Wavelength}
		}
	}
	return l, m, s
}

// CMFFromConeFundamentals derives color matching functions from cone
// fundamental samples with the given fundamentals-to-XYZ matrix.
// With the tabulated 2006 fundamentals and the 170-2 matrices this
// reproduces the CIE 170-2 / 2012 standard observers.
func CMFFromConeFundamentals(cones []cvrl.ConePoint, m *cie.Mat3) []cvrl.CMFPoint {
	out := make([]cvrl.CMFPoint, len(cones))
	for i, c := range cones {
		x, y, z := m.MulVec(c.L, c.M, c.S)
		out[i] = cvrl.CMFPoint{Wavelength: c.Wavelength, X: x, Y: y, Z: z}
	}
	return out
}
