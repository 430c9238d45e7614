// Copyright (c) 2026, The Chroma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package spect computes tristimulus values and chromaticities of
// sampled spectra by integrating them against tabulated color matching
// functions.
package spect

import (
	"fmt"
	"sort"
	"sync"

	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/interp"

	"github.com/kyle-c-mcdermott/visualizing-color-space/cvrl"
)

// Spectrum is a sampled spectral power distribution.  Wavelengths are
// in nm, ascending, with no duplicates; Energies is parallel to
// Wavelengths.  Use [New] or [FromWaveNumbers] to construct one from
// unordered samples.
type Spectrum struct {
	Wavelengths []float64
	Energies    []float64
}

// New builds a Spectrum from parallel wavelength (nm) and energy
// samples, sorting them by wavelength.  At least two samples are
// required.
func New(wavelengths, energies []float64) (*Spectrum, error) {
	if len(wavelengths) != len(energies) {
		return nil, fmt.Errorf("spect: %d wavelengths but %d energies", len(wavelengths), len(energies))
	}
	if len(wavelengths) < 2 {
		return nil, fmt.Errorf("spect: need at least 2 samples, got %d", len(wavelengths))
	}
	s := &Spectrum{
		Wavelengths: append([]float64(nil), wavelengths...),
		Energies:    append([]float64(nil), energies...),
	}
	sort.Sort(byWavelength{s})
	for i := 1; i < len(s.Wavelengths); i++ {
		if s.Wavelengths[i] == s.Wavelengths[i-1] {
			return nil, fmt.Errorf("spect: duplicate wavelength %g", s.Wavelengths[i])
		}
	}
	return s, nil
}

// FromWaveNumbers builds a Spectrum from samples given in wave numbers
// (cycles per cm), as spectroradiometer output often is.  Wave numbers
// convert to nm as 1e7/wn, which reverses the sample order.
func FromWaveNumbers(waveNumbers, energies []float64) (*Spectrum, error) {
	wl := make([]float64, len(waveNumbers))
	for i, wn := range waveNumbers {
		if wn <= 0 {
			return nil, fmt.Errorf("spect: non-positive wave number %g", wn)
		}
		wl[i] = 1.0e7 / wn
	}
	return New(wl, energies)
}

// Uniform returns a flat spectrum with the given energy at every
// tabulated wavelength (the equal-energy illuminant E when energy is
// constant).
func Uniform(energy float64) *Spectrum {
	n := int((cvrl.MaxWavelength-cvrl.MinWavelength)/cvrl.Step) + 1
	s := &Spectrum{
		Wavelengths: make([]float64, n),
		Energies:    make([]float64, n),
	}
	for i := 0; i < n; i++ {
		s.Wavelengths[i] = cvrl.MinWavelength + float64(i)*cvrl.Step
		s.Energies[i] = energy
	}
	return s
}

type byWavelength struct{ s *Spectrum }

func (b byWavelength) Len() int { return len(b.s.Wavelengths) }
func (b byWavelength) Less(i, j int) bool {
	return b.s.Wavelengths[i] < b.s.Wavelengths[j]
}
func (b byWavelength) Swap(i, j int) {
	b.s.Wavelengths[i], b.s.Wavelengths[j] = b.s.Wavelengths[j], b.s.Wavelengths[i]
	b.s.Energies[i], b.s.Energies[j] = b.s.Energies[j], b.s.Energies[i]
}

// Tristimulus integrates the spectrum against the color matching
// functions of the given standard observer, using trapezoidal
// integration over the spectrum's own sample grid.  Samples outside
// the tabulated 380-780 nm support contribute nothing and are
// dropped; if fewer than two samples remain the result is zero.
func (s *Spectrum) Tristimulus(std cvrl.Standard) (x, y, z float64) {
	lo, hi := 0, len(s.Wavelengths)
	for lo < hi && s.Wavelengths[lo] < cvrl.MinWavelength {
		lo++
	}
	for hi > lo && s.Wavelengths[hi-1] > cvrl.MaxWavelength {
		hi--
	}
	if hi-lo < 2 {
		return 0, 0, 0
	}
	wl := s.Wavelengths[lo:hi]
	en := s.Energies[lo:hi]

	p := cmfPredictors(std)
	xs := make([]float64, len(wl))
	ys := make([]float64, len(wl))
	zs := make([]float64, len(wl))
	for i, w := range wl {
		xs[i] = en[i] * p[0].Predict(w)
		ys[i] = en[i] * p[1].Predict(w)
		zs[i] = en[i] * p[2].Predict(w)
	}
	return integrate.Trapezoidal(wl, xs),
		integrate.Trapezoidal(wl, ys),
		integrate.Trapezoidal(wl, zs)
}

// Chromaticity integrates the spectrum and projects the tristimulus
// values to CIE 1931 (x, y).  A zero spectrum has no chromaticity and
// returns (0, 0).
func (s *Spectrum) Chromaticity(std cvrl.Standard) (cx, cy float64) {
	x, y, z := s.Tristimulus(std)
	sum := x + y + z
	if sum <= 0 {
		return 0, 0
	}
	return x / sum, y / sum
}

// cmfPredictors returns piecewise-linear interpolators for the X, Y,
// and Z color matching functions of the standard, built once per
// standard.  At tabulated wavelengths they reproduce the table
// exactly, so on-grid spectra need no special casing.
var cmfPredictors = func() func(cvrl.Standard) *[3]interp.PiecewiseLinear {
	var cache [4]*[3]interp.PiecewiseLinear
	var once [4]sync.Once
	return func(std cvrl.Standard) *[3]interp.PiecewiseLinear {
		once[std].Do(func() {
			cmf := cvrl.CMF(std)
			wl := make([]float64, len(cmf))
			var xyz [3][]float64
			for j := range xyz {
				xyz[j] = make([]float64, len(cmf))
			}
			for i, pt := range cmf {
				wl[i] = pt.Wavelength
				xyz[0][i] = pt.X
				xyz[1][i] = pt.Y
				xyz[2][i] = pt.Z
			}
			var p [3]interp.PiecewiseLinear
			for j := range p {
				if err := p[j].Fit(wl, xyz[j]); err != nil {
					panic(fmt.Errorf("spect: fitting %v interpolator: %w", std, err))
				}
			}
			cache[std] = &p
		})
		return cache[std]
	}
}()
