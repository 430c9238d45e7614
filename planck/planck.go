// Copyright (c) 2026, The Chroma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package planck models blackbody radiators: spectral radiant
// emittance, the Planckian locus in chromaticity space, correlated
// color temperature, and isotherm construction.
package planck

import (
	"fmt"
	"math"
	"sync"

	"gonum.org/v1/gonum/interp"

	"github.com/kyle-c-mcdermott/visualizing-color-space/cie"
	"github.com/kyle-c-mcdermott/visualizing-color-space/cvrl"
	"github.com/kyle-c-mcdermott/visualizing-color-space/spect"
)

// 2019 SI exact values.
const (
	planckConstant    = 6.62607015e-34 // J s
	lightSpeed        = 2.99792458e8   // m/s
	boltzmannConstant = 1.380649e-23   // J/K
)

// Radiation constants of Planck's law.
const (
	c1 = 2 * math.Pi * planckConstant * lightSpeed * lightSpeed
	c2 = planckConstant * lightSpeed / boltzmannConstant
)

// MinTemperature and MaxTemperature bound the tabulated Planckian
// locus; temperatures outside clamp to these.
const (
	MinTemperature = 100.0
	MaxTemperature = 1.0e6
)

// RadiantEmittance returns the spectral radiant emittance of a
// blackbody at the given temperature in kelvin, per Planck's law, at
// the given wavelength in nm.  Units are W/m^2 per meter of
// wavelength; for chromaticity work only the relative shape matters.
func RadiantEmittance(wavelength, temperature float64) float64 {
	wl := wavelength * 1.0e-9
	return c1 / (math.Pow(wl, 5) * (math.Exp(c2/(wl*temperature)) - 1.0))
}

// SpectrumForTemperature returns the blackbody emission spectrum at
// the tabulated wavelengths, 380-780 nm in 5 nm steps.
func SpectrumForTemperature(temperature float64) *spect.Spectrum {
	s := spect.Uniform(0)
	for i, wl := range s.Wavelengths {
		s.Energies[i] = RadiantEmittance(wl, temperature)
	}
	return s
}

// LocusUV returns the CIE 1960 (u, v) chromaticity of a blackbody at
// the given temperature in kelvin, interpolated along the tabulated
// Planckian locus.  Temperatures clamp to
// [MinTemperature, MaxTemperature].
func LocusUV(temperature float64) (u, v float64) {
	l := locus()
	t := math.Min(math.Max(temperature, MinTemperature), MaxTemperature)
	return l.u.Predict(t), l.v.Predict(t)
}

// LocusXY returns the CIE 1931 (x, y) chromaticity of a blackbody at
// the given temperature in kelvin.
func LocusXY(temperature float64) (x, y float64) {
	return cie.UVToXY(LocusUV(temperature))
}

type planckianLocus struct {
	u, v interp.AkimaSpline
}

// locusGrid is the fixed temperature grid the locus splines are fitted
// over: dense through the incandescent range, sparser toward the blue
// asymptote where chromaticity barely moves.
func locusGrid() []float64 {
	var grid []float64
	for _, seg := range []struct {
		lo, hi float64
		n      int
	}{
		{100, 1990, 16},
		{2000, 3900, 16},
		{4000, 7900, 16},
		{8000, 99000, 8},
		{100000, 1000000, 8},
	} {
		step := (seg.hi - seg.lo) / float64(seg.n-1)
		for i := 0; i < seg.n; i++ {
			grid = append(grid, seg.lo+float64(i)*step)
		}
	}
	return grid
}

var locus = sync.OnceValue(func() *planckianLocus {
	grid := locusGrid()
	us := make([]float64, len(grid))
	vs := make([]float64, len(grid))
	for i, t := range grid {
		x, y := SpectrumForTemperature(t).Chromaticity(cvrl.CIE1931TwoDegree)
		us[i], vs[i] = cie.XYToUV(x, y)
	}
	l := &planckianLocus{}
	if err := l.u.Fit(grid, us); err != nil {
		panic(fmt.Errorf("planck: fitting locus u: %w", err))
	}
	if err := l.v.Fit(grid, vs); err != nil {
		panic(fmt.Errorf("planck: fitting locus v: %w", err))
	}
	return l
})
