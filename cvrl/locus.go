// Copyright (c) 2026, The Chroma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cvrl

// LocusPoint is the chromaticity of a monochromatic light.
type LocusPoint struct {
	Wavelength float64 // nm
	X, Y       float64 // CIE 1931 chromaticity
}

// SpectrumLocus returns the chromaticities of monochromatic lights for
// the given standard observer, from 380 through 700 nm.  Above 700 nm
// the tabulated chromaticities converge on the long-wavelength limit
// while hue stops changing, which breaks the one-to-one relationship
// between wavelength and chromaticity that interpolation depends on,
// so the series ends there.
func SpectrumLocus(s Standard) []LocusPoint {
	cmf := CMF(s)
	out := make([]LocusPoint, 0, len(cmf))
	for _, p := range cmf {
		if p.Wavelength > 700 {
			break
		}
		sum := p.X + p.Y + p.Z
		out = append(out, LocusPoint{
			Wavelength: p.Wavelength,
			X:          p.X / sum,
			Y:          p.Y / sum,
		})
	}
	return out
}
