// Copyright (c) 2026, The Chroma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package derive

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kyle-c-mcdermott/visualizing-color-space/cie"
	"github.com/kyle-c-mcdermott/visualizing-color-space/cvrl"
	"github.com/kyle-c-mcdermott/visualizing-color-space/tolassert"
)

func TestMeanObserverSettingsRoundTrip(t *testing.T) {
	cones := cvrl.ConeFundamentals(cie.TenDegree)
	settings := MeanObserverSettings()
	assert.Len(t, settings, len(cones))
	for i, p := range settings {
		l, m, s := cie.RGBToLMS(p.R, p.G, p.B)
		tolassert.Equal(t, cones[i].L, l)
		tolassert.Equal(t, cones[i].M, m)
		tolassert.Equal(t, cones[i].S, s)
	}
}

func TestNormalizationConstants(t *testing.T) {
	// the constants are the row ratios between the unscaled and
	// unit-peak Stiles & Burch coefficient matrices
	l, m, s := NormalizationConstants()
	tolassert.EqualTol(t, 14.83, l.Value, 0.05)
	tolassert.EqualTol(t, 8.79, m.Value, 0.05)
	tolassert.EqualTol(t, 1.001, s.Value, 0.01)
	// peaks in the expected spectral neighborhoods
	assert.InDelta(t, 570, l.PeakWavelength, 15)
	assert.InDelta(t, 545, m.PeakWavelength, 15)
	assert.InDelta(t, 445, s.PeakWavelength, 15)
}

func TestCMFFromConeFundamentals(t *testing.T) {
	// with the 170-2 matrix this reproduces the tabulated standard
	cones := cvrl.ConeFundamentals(cie.TenDegree)
	derived := CMFFromConeFundamentals(cones, &cie.LMSToXYZ2006TenDegree)
	table := cvrl.CMF(cvrl.CIE170TenDegree)
	assert.Len(t, derived, len(table))
	for i := range derived {
		tolassert.Equal(t, table[i].X, derived[i].X)
		tolassert.Equal(t, table[i].Y, derived[i].Y)
		tolassert.Equal(t, table[i].Z, derived[i].Z)
	}
}
