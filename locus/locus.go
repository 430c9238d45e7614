// Copyright (c) 2026, The Chroma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package locus interpolates smoothly along the spectrum locus,
// converting between wavelength, chromaticity, and hue angle about the
// D65 white point or a cone copunctal point.
package locus

import (
	"fmt"
	"math"
	"sync"

	"gonum.org/v1/gonum/interp"

	"github.com/kyle-c-mcdermott/visualizing-color-space/cie"
	"github.com/kyle-c-mcdermott/visualizing-color-space/cvrl"
)

// Center is the point that polar chromaticity coordinates are taken
// about: the D65 white point for hue angles, or the copunctal point of
// a missing cone class, where that cone's confusion lines converge.
type Center int32

const (
	// D65 is the shared white point of the display spaces.
	D65 Center = iota

	// Long is the copunctal point for protanopia.
	Long

	// Medium is the copunctal point for deuteranopia.
	Medium

	// Short is the copunctal point for tritanopia.
	Short
)

func (c Center) String() string {
	switch c {
	case D65:
		return "D65"
	case Long:
		return "long"
	case Medium:
		return "medium"
	case Short:
		return "short"
	}
	return "invalid"
}

// Chromaticity returns the (x, y) coordinates of the center.  The
// copunctal points are from Wyszecki & Stiles (1982); the white point
// is computed from the sRGB primaries.
func (c Center) Chromaticity() (x, y float64) {
	switch c {
	case Long:
		return 0.746, 0.254
	case Medium:
		return 1.400, -0.400
	case Short:
		return 0.175, 0.000
	}
	return cie.SRGB.WhitePoint()
}

// RectangularToPolar converts a chromaticity to polar coordinates
// about the center: angle in radians from atan2, radius in
// chromaticity units.
func RectangularToPolar(c Center, x, y float64) (angle, radius float64) {
	cx, cy := c.Chromaticity()
	dx, dy := x-cx, y-cy
	return math.Atan2(dy, dx), math.Hypot(dx, dy)
}

// PolarToRectangular converts polar coordinates about the center back
// to a chromaticity.
func PolarToRectangular(c Center, angle, radius float64) (x, y float64) {
	cx, cy := c.Chromaticity()
	return cx + radius*math.Cos(angle), cy + radius*math.Sin(angle)
}

// WavelengthToChromaticity returns the chromaticity of a monochromatic
// light of the given wavelength in nm, interpolated along the spectrum
// locus of the standard with Akima splines.  Wavelengths outside
// 380-700 nm clamp to the locus endpoints.
func WavelengthToChromaticity(wl float64, std cvrl.Standard) (x, y float64) {
	in := interpolators(std)
	wl = clamp(wl, in.minWL, in.maxWL)
	return in.x.Predict(wl), in.y.Predict(wl)
}

// WavelengthToHueAngle returns the hue angle about the D65 white point
// of a monochromatic light of the given wavelength in nm.  Hue angles
// are unwrapped so that they decrease monotonically with wavelength,
// covering roughly -0.63pi at 380 nm down to -2.05pi at 700 nm.
func WavelengthToHueAngle(wl float64, std cvrl.Standard) float64 {
	in := interpolators(std)
	return in.hue.Predict(clamp(wl, in.minWL, in.maxWL))
}

// HueAngleToWavelength returns the wavelength in nm of the
// monochromatic light with the given hue angle about the D65 white
// point.  Angles are first wrapped by multiples of 2pi into
// [-5pi/2, -pi/2); angles that then fall outside the span of the locus
// (in the gap occupied by the line of purples) clamp to the nearest
// locus end.
func HueAngleToWavelength(angle float64, std cvrl.Standard) float64 {
	in := interpolators(std)
	return in.wl.Predict(clamp(WrapHueAngle(angle), in.minHue, in.maxHue))
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// HueAngleBounds returns the unwrapped hue angles of the ends of the
// spectrum locus, low (at 700 nm) first.  Hue angles outside these
// bounds point into the line of purples.
func HueAngleBounds(std cvrl.Standard) (lo, hi float64) {
	in := interpolators(std)
	return in.minHue, in.maxHue
}

// WavelengthBounds returns the wavelength range in nm covered by the
// locus interpolators.
func WavelengthBounds(std cvrl.Standard) (lo, hi float64) {
	in := interpolators(std)
	return in.minWL, in.maxWL
}

// WrapHueAngle wraps an angle in radians by multiples of 2pi into the
// unwrapped hue range [-5pi/2, -pi/2).
func WrapHueAngle(angle float64) float64 {
	for angle >= -math.Pi/2 {
		angle -= 2 * math.Pi
	}
	for angle < -5*math.Pi/2 {
		angle += 2 * math.Pi
	}
	return angle
}

// lociInterp holds the fitted splines for one standard observer.
type lociInterp struct {
	x, y           interp.AkimaSpline // wavelength to chromaticity
	hue            interp.AkimaSpline // wavelength to unwrapped hue angle
	wl             interp.AkimaSpline // unwrapped hue angle to wavelength
	minWL, maxWL   float64
	minHue, maxHue float64
}

var interpolators = func() func(cvrl.Standard) *lociInterp {
	var cache [4]*lociInterp
	var once [4]sync.Once
	return func(std cvrl.Standard) *lociInterp {
		once[std].Do(func() {
			cache[std] = fit(std)
		})
		return cache[std]
	}
}()

func fit(std cvrl.Standard) *lociInterp {
	pts := cvrl.SpectrumLocus(std)
	n := len(pts)
	wls := make([]float64, n)
	xs := make([]float64, n)
	ys := make([]float64, n)
	hues := make([]float64, n)
	wx, wy := D65.Chromaticity()
	for i, p := range pts {
		wls[i] = p.Wavelength
		xs[i] = p.X
		ys[i] = p.Y
		a := math.Atan2(p.Y-wy, p.X-wx)
		// unwrap: hue angle decreases with wavelength, crossing the
		// -pi/+pi discontinuity of atan2 in the greens
		if a >= -math.Pi/2 {
			a -= 2 * math.Pi
		}
		hues[i] = a
	}
	// the inverse fit needs ascending xs; hue angles descend with
	// wavelength
	huesUp := make([]float64, n)
	wlsDown := make([]float64, n)
	for i := 0; i < n; i++ {
		huesUp[i] = hues[n-1-i]
		wlsDown[i] = wls[n-1-i]
	}
	in := &lociInterp{
		minWL:  wls[0],
		maxWL:  wls[n-1],
		minHue: huesUp[0],
		maxHue: huesUp[n-1],
	}
	for _, f := range []struct {
		s      *interp.AkimaSpline
		xs, ys []float64
	}{
		{&in.x, wls, xs},
		{&in.y, wls, ys},
		{&in.hue, wls, hues},
		{&in.wl, huesUp, wlsDown},
	} {
		if err := f.s.Fit(f.xs, f.ys); err != nil {
			panic(fmt.Errorf("locus: fitting %v splines: %w", std, err))
		}
	}
	return in
}
