// Copyright (c) 2026, The Chroma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyle-c-mcdermott/visualizing-color-space/cvrl"
	"github.com/kyle-c-mcdermott/visualizing-color-space/tolassert"
)

func TestNewSorts(t *testing.T) {
	s, err := New([]float64{600, 400, 500}, []float64{3, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, []float64{400, 500, 600}, s.Wavelengths)
	assert.Equal(t, []float64{1, 2, 3}, s.Energies)
}

func TestNewErrors(t *testing.T) {
	_, err := New([]float64{400, 500}, []float64{1})
	assert.Error(t, err)
	_, err = New([]float64{400}, []float64{1})
	assert.Error(t, err)
	_, err = New([]float64{400, 400}, []float64{1, 2})
	assert.Error(t, err)
}

func TestFromWaveNumbers(t *testing.T) {
	// 20000 /cm = 500 nm, 25000 /cm = 400 nm
	s, err := FromWaveNumbers([]float64{20000, 25000}, []float64{2, 1})
	require.NoError(t, err)
	tolassert.Equal(t, 400, s.Wavelengths[0])
	tolassert.Equal(t, 500, s.Wavelengths[1])
	assert.Equal(t, []float64{1, 2}, s.Energies)

	_, err = FromWaveNumbers([]float64{20000, 0}, []float64{1, 2})
	assert.Error(t, err)
}

func TestEqualEnergyChromaticity(t *testing.T) {
	// the equal-energy illuminant E sits at (1/3, 1/3)
	x, y := Uniform(1).Chromaticity(cvrl.CIE1931TwoDegree)
	tolassert.EqualTol(t, 1.0/3.0, x, 2.0e-3)
	tolassert.EqualTol(t, 1.0/3.0, y, 2.0e-3)
}

func TestD65Chromaticity(t *testing.T) {
	d65 := cvrl.D65()
	wl := make([]float64, len(d65))
	en := make([]float64, len(d65))
	for i, p := range d65 {
		wl[i] = p.Wavelength
		en[i] = p.Energy
	}
	s, err := New(wl, en)
	require.NoError(t, err)
	x, y := s.Chromaticity(cvrl.CIE1931TwoDegree)
	tolassert.EqualTol(t, 0.3127, x, 2.0e-3)
	tolassert.EqualTol(t, 0.3290, y, 2.0e-3)
}

func TestOffGridInterpolation(t *testing.T) {
	// resampling a smooth spectrum off the table grid should barely
	// move its chromaticity
	coarse := Uniform(1)
	var wl, en []float64
	for w := 382.5; w <= 777.5; w += 2.5 {
		wl = append(wl, w)
		en = append(en, 1)
	}
	fine, err := New(wl, en)
	require.NoError(t, err)
	x0, y0 := coarse.Chromaticity(cvrl.CIE1931TwoDegree)
	x1, y1 := fine.Chromaticity(cvrl.CIE1931TwoDegree)
	tolassert.EqualTol(t, x0, x1, 1.0e-3)
	tolassert.EqualTol(t, y0, y1, 1.0e-3)
}

func TestOutOfSupportDropped(t *testing.T) {
	s, err := New([]float64{200, 300, 800, 900}, []float64{5, 5, 5, 5})
	require.NoError(t, err)
	x, y, z := s.Tristimulus(cvrl.CIE1931TwoDegree)
	tolassert.Equal(t, 0, x)
	tolassert.Equal(t, 0, y)
	tolassert.Equal(t, 0, z)
	cx, cy := s.Chromaticity(cvrl.CIE1931TwoDegree)
	tolassert.Equal(t, 0, cx)
	tolassert.Equal(t, 0, cy)
}

func TestTristimulusScalesLinearly(t *testing.T) {
	x1, y1, z1 := Uniform(1).Tristimulus(cvrl.CIE1964TenDegree)
	x2, y2, z2 := Uniform(2).Tristimulus(cvrl.CIE1964TenDegree)
	tolassert.Equal(t, 2*x1, x2)
	tolassert.Equal(t, 2*y1, y2)
	tolassert.Equal(t, 2*z1, z2)
}
