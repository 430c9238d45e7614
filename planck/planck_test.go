// Copyright (c) 2026, The Chroma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package planck

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kyle-c-mcdermott/visualizing-color-space/cvrl"
	"github.com/kyle-c-mcdermott/visualizing-color-space/tolassert"
)

func TestRadiantEmittance(t *testing.T) {
	// Wien's displacement: at 5000 K the peak is near 580 nm, so
	// emittance rises through the visible range up to it
	assert.Greater(t, RadiantEmittance(550, 5000), RadiantEmittance(450, 5000))
	// hotter bodies emit more at every wavelength
	for _, wl := range []float64{400, 550, 700} {
		assert.Greater(t, RadiantEmittance(wl, 6000), RadiantEmittance(wl, 3000))
	}
	assert.Greater(t, RadiantEmittance(550, 100), 0.0)
}

func TestSpectrumForTemperature(t *testing.T) {
	s := SpectrumForTemperature(6500)
	assert.Equal(t, cvrl.MinWavelength, s.Wavelengths[0])
	assert.Equal(t, cvrl.MaxWavelength, s.Wavelengths[len(s.Wavelengths)-1])
	for i, wl := range s.Wavelengths {
		tolassert.EqualTol(t, RadiantEmittance(wl, 6500), s.Energies[i], 1.0e-6*s.Energies[i])
	}
}

func TestLocusChromaticities(t *testing.T) {
	// low temperatures sit in the reds, high in the blues
	x, y := LocusXY(1000)
	assert.Greater(t, x, 0.6)
	assert.Less(t, y, 0.45)
	x, _ = LocusXY(20000)
	assert.Less(t, x, 0.27)
	// 6500 K is near (but not exactly at) D65
	x, y = LocusXY(6500)
	tolassert.EqualTol(t, 0.3135, x, 5.0e-3)
	tolassert.EqualTol(t, 0.3237, y, 5.0e-3)
}

func TestLocusClamps(t *testing.T) {
	u0, v0 := LocusUV(MinTemperature)
	u1, v1 := LocusUV(10)
	tolassert.Equal(t, u0, u1)
	tolassert.Equal(t, v0, v1)
	u0, v0 = LocusUV(MaxTemperature)
	u1, v1 = LocusUV(1.0e9)
	tolassert.Equal(t, u0, u1)
	tolassert.Equal(t, v0, v1)
}

func TestCCTOnLocus(t *testing.T) {
	for _, temp := range []float64{2000, 3500, 5000, 6500, 10000} {
		u, v := LocusUV(temp)
		c := CorrelatedColorTemperature(u, v)
		assert.True(t, c.Valid, "%g K", temp)
		tolassert.EqualTol(t, temp, c.Temperature, temp*0.01)
		assert.Less(t, c.Distance, 1.0e-4)
	}
}

func TestCCTOffLocus(t *testing.T) {
	// D65 is slightly off the locus with a CCT near 6500 K
	c := CorrelatedColorTemperatureXY(0.3127, 0.3290)
	assert.True(t, c.Valid)
	tolassert.EqualTol(t, 6500, c.Temperature, 150)
	assert.Greater(t, c.Distance, 0.0)
	assert.Less(t, c.Distance, 0.01)
}

func TestCCTInvalidFarFromLocus(t *testing.T) {
	// saturated violet is much farther than 0.05 from the locus
	c := CorrelatedColorTemperatureXY(0.17, 0.01)
	assert.False(t, c.Valid)
}

func TestIsothermEndpoints(t *testing.T) {
	iso := IsothermEndpoints(5000)
	u, v := LocusUV(5000)
	for i := 0; i < 2; i++ {
		d := math.Hypot(iso.UV[i][0]-u, iso.UV[i][1]-v)
		tolassert.Equal(t, MaxCCTDistance, d)
	}
	// endpoints are on opposite sides: the locus point is their
	// midpoint
	tolassert.Equal(t, u, (iso.UV[0][0]+iso.UV[1][0])/2)
	tolassert.Equal(t, v, (iso.UV[0][1]+iso.UV[1][1])/2)
	// both endpoints recover the generating temperature
	for i := 0; i < 2; i++ {
		c := CorrelatedColorTemperature(iso.UV[i][0], iso.UV[i][1])
		assert.True(t, c.Valid)
		tolassert.EqualTol(t, 5000, c.Temperature, 100)
	}
}

func TestTemperatureSeries(t *testing.T) {
	temps := TemperatureSeries(0, 0)
	assert.Equal(t, DefaultSeriesMin, temps[0])
	assert.Greater(t, len(temps), 20)
	prev := temps[0]
	prevInc := 0.0
	for _, temp := range temps[1:] {
		inc := temp - prev
		assert.Greater(t, inc, 0.0)
		assert.GreaterOrEqual(t, inc, prevInc-1.0e-6)
		prev, prevInc = temp, inc
	}
	assert.LessOrEqual(t, prev, DefaultSeriesMax)

	// consecutive chromaticity steps stay near the target spacing in
	// the unclamped range
	for i := 1; i < len(temps) && temps[i] < MaxTemperature; i++ {
		x0, y0 := LocusXY(temps[i-1])
		x1, y1 := LocusXY(temps[i])
		assert.Less(t, math.Hypot(x1-x0, y1-y0), 0.05)
	}
}

func TestTemperatureSeriesBounds(t *testing.T) {
	temps := TemperatureSeries(1000, 20000)
	assert.Equal(t, 1000.0, temps[0])
	for _, temp := range temps {
		assert.LessOrEqual(t, temp, 20000.0)
	}
}
