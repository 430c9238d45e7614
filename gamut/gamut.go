// Copyright (c) 2026, The Chroma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gamut builds the filled-polygon series that color the
// chromaticity diagrams: saturated fills of the display gamut
// triangle, fills of the whole spectrum locus interior, and visible
// spectrum bands.
package gamut

import (
	"math"

	"github.com/kyle-c-mcdermott/visualizing-color-space/cie"
	"github.com/kyle-c-mcdermott/visualizing-color-space/cvrl"
	"github.com/kyle-c-mcdermott/visualizing-color-space/geom"
	"github.com/kyle-c-mcdermott/visualizing-color-space/locus"
)

// Polygon is one filled region of a diagram: its vertices (in
// chromaticity or plot coordinates, depending on the series) and the
// display color to fill it with.
type Polygon struct {
	XY    [][2]float64
	Color [3]float64 // display RGB in 0-1
}

// InsideGamut fills the gamut triangle of the display space with
// saturated colors: every fill color has at least one of red, green,
// and blue equal to one.  The triangle is covered by
// 3*(resolution-1)^2 quads, one grid per maximal channel, each quad's
// vertices mapped through RGB-to-chromaticity conversion.
func InsideGamut(resolution int, space cie.RGBSpace, gammaCorrect bool) []Polygon {
	if resolution < 2 {
		resolution = 2
	}
	values := linspace(0, 1, resolution)
	var polys []Polygon
	for fixed := 0; fixed < 3; fixed++ {
		for i := 1; i < resolution; i++ {
			for j := 1; j < resolution; j++ {
				corners := [4][2]float64{
					{values[i], values[j]},
					{values[i-1], values[j]},
					{values[i-1], values[j-1]},
					{values[i], values[j-1]},
				}
				poly := Polygon{XY: make([][2]float64, 4)}
				for k, c := range corners {
					r, g, b := withFixed(fixed, c[0], c[1])
					x, y, _ := cie.RGBToXYY(r, g, b, space, gammaCorrect)
					poly.XY[k] = [2]float64{x, y}
				}
				mi := (values[i] + values[i-1]) / 2
				mj := (values[j] + values[j-1]) / 2
				r, g, b := withFixed(fixed, mi, mj)
				poly.Color = [3]float64{r, g, b}
				polys = append(polys, poly)
			}
		}
	}
	return polys
}

// withFixed places 1 in the fixed channel and the two free values in
// the remaining channels, in RGB order.
func withFixed(fixed int, a, b float64) (r, g, b_ float64) {
	switch fixed {
	case 0:
		return 1, a, b
	case 1:
		return a, 1, b
	}
	return a, b, 1
}

// OutsideGamut fills the full interior of the spectrum locus with the
// most saturated displayable color for each hue angle around white:
// resolution wedges from the white point out to the locus (or to the
// line of purples where no wavelength matches the angle).  The display
// space must reach the locus from inside, so Exterior is not
// meaningful here.
func OutsideGamut(resolution int, space cie.RGBSpace, std cvrl.Standard) []Polygon {
	if resolution < 8 {
		resolution = 8
	}
	wx, wy := space.WhitePoint()
	loHue, hiHue := locus.HueAngleBounds(std)

	angles := make([]float64, resolution)
	for i := 0; i < resolution; i++ {
		angles[i] = -5*math.Pi/2 + 2*math.Pi*float64(i)/float64(resolution)
	}

	// wedge borders sit half a step counterclockwise of the color
	// sample angles
	pts := cvrl.SpectrumLocus(std)
	purple0 := geom.Point{X: pts[0].X, Y: pts[0].Y}
	purple1 := geom.Point{X: pts[len(pts)-1].X, Y: pts[len(pts)-1].Y}
	endpoints := make([][2]float64, resolution)
	for i, a := range angles {
		a -= math.Pi / float64(resolution)
		if loHue <= a && a <= hiHue {
			x, y := locus.WavelengthToChromaticity(locus.HueAngleToWavelength(a, std), std)
			endpoints[i] = [2]float64{x, y}
		} else {
			p := geom.SegmentIntersection(
				geom.Point{X: wx, Y: wy},
				geom.Point{X: wx + math.Cos(a), Y: wy + math.Sin(a)},
				purple0, purple1,
			)
			endpoints[i] = [2]float64{p.X, p.Y}
		}
	}

	polys := make([]Polygon, resolution)
	for i := 0; i < resolution; i++ {
		j := (i + 1) % resolution
		polys[i] = Polygon{
			XY: [][2]float64{
				{wx, wy},
				endpoints[i],
				endpoints[j],
			},
			Color: SaturatedColor(angles[i], space),
		}
	}
	return polys
}

// SaturatedColor returns the most saturated displayable color in the
// hue direction of the given angle about white.  The color is sampled
// a safe distance out (three quarters of the white-to-cyan distance,
// cyan being the intermediate saturated color nearest white) at the
// luminance of the blue primary (the dimmest primary), then the
// channels are normalized to span 0-1.
func SaturatedColor(angle float64, space cie.RGBSpace) [3]float64 {
	wx, wy := space.WhitePoint()
	cx, cy, _ := cie.RGBToXYY(0, 1, 1, space, false)
	safeDistance := 0.75 * math.Hypot(wx-cx, wy-cy)
	_, _, safeLuminance := cie.RGBToXYY(0, 0, 1, space, false)

	r, g, b := cie.XYYToRGB(
		wx+safeDistance*math.Cos(angle),
		wy+safeDistance*math.Sin(angle),
		safeLuminance,
		space, false,
	)
	lo := math.Min(r, math.Min(g, b))
	hi := math.Max(r, math.Max(g, b))
	span := hi - lo
	if span == 0 {
		return [3]float64{1, 1, 1}
	}
	return [3]float64{(r - lo) / span, (g - lo) / span, (b - lo) / span}
}

// VisibleSpectrum fills a band in plot coordinates with the saturated
// hues of the wavelengths from minWL to maxWL.  The band occupies the
// rectangle at (left, bottom) of the given width and height and is
// split into resolution cells along its length, horizontal unless
// vertical is set.  Swap the wavelengths, or negate the spanning
// dimension, to reverse direction.
func VisibleSpectrum(resolution int, left, bottom, width, height, minWL, maxWL float64, vertical bool, space cie.RGBSpace, std cvrl.Standard) []Polygon {
	if resolution < 8 {
		resolution = 8
	}
	polys := make([]Polygon, resolution)
	for i := 0; i < resolution; i++ {
		t0 := float64(i) / float64(resolution)
		t1 := float64(i+1) / float64(resolution)
		var xy [][2]float64
		if vertical {
			xy = [][2]float64{
				{left, bottom + t0*height},
				{left, bottom + t1*height},
				{left + width, bottom + t1*height},
				{left + width, bottom + t0*height},
			}
		} else {
			xy = [][2]float64{
				{left + t0*width, bottom},
				{left + t0*width, bottom + height},
				{left + t1*width, bottom + height},
				{left + t1*width, bottom},
			}
		}
		wl := minWL + (float64(i)/float64(resolution))*(maxWL-minWL)
		polys[i] = Polygon{
			XY:    xy,
			Color: SaturatedColor(locus.WavelengthToHueAngle(wl, std), space),
		}
	}
	return polys
}

func linspace(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := 0; i < n; i++ {
		out[i] = lo + float64(i)*step
	}
	return out
}
