// Copyright (c) 2026, The Chroma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package planck

import (
	"math"

	"gonum.org/v1/gonum/optimize"

	"github.com/kyle-c-mcdermott/visualizing-color-space/cie"
)

// MaxCCTDistance is the largest uv distance from the Planckian locus
// at which a correlated color temperature is considered meaningful
// (Wyszecki & Stiles put the conventional limit at 0.05).
const MaxCCTDistance = 0.05

// CCT is the result of a correlated color temperature estimate.
type CCT struct {
	// Temperature is the temperature in kelvin of the nearest point on
	// the Planckian locus.
	Temperature float64

	// Distance is the CIE 1960 (u, v) distance to that point.
	Distance float64

	// Valid reports whether the estimate is meaningful: the distance
	// is within MaxCCTDistance and the temperature did not run into
	// the tabulated locus bounds.
	Valid bool
}

// CorrelatedColorTemperature finds the temperature whose Planckian
// locus chromaticity is nearest the given CIE 1960 (u, v) coordinates,
// by Nelder-Mead minimization of the uv distance seeded at 6000 K.
func CorrelatedColorTemperature(u, v float64) CCT {
	problem := optimize.Problem{
		Func: func(t []float64) float64 {
			lu, lv := LocusUV(t[0])
			return math.Hypot(u-lu, v-lv)
		},
	}
	result, err := optimize.Minimize(problem, []float64{6000}, nil, &optimize.NelderMead{})
	if err != nil || result == nil {
		return CCT{Valid: false}
	}
	c := CCT{Temperature: result.X[0], Distance: result.F}
	c.Valid = c.Distance <= MaxCCTDistance &&
		c.Temperature > MinTemperature && c.Temperature < MaxTemperature
	return c
}

// CorrelatedColorTemperatureXY is CorrelatedColorTemperature for CIE
// 1931 (x, y) input.
func CorrelatedColorTemperatureXY(x, y float64) CCT {
	u, v := cie.XYToUV(x, y)
	return CorrelatedColorTemperature(u, v)
}

// Isotherm is a line segment of constant correlated color temperature,
// crossing the Planckian locus perpendicularly and extending
// MaxCCTDistance to either side.
type Isotherm struct {
	// UV holds the two endpoints in CIE 1960 (u, v), below-locus end
	// first.
	UV [2][2]float64

	// XY holds the same endpoints in CIE 1931 (x, y).
	XY [2][2]float64
}

// IsothermEndpoints constructs the isotherm for the given temperature
// in kelvin.  The local direction of the locus is estimated from the
// chromaticities 100 K to either side.
func IsothermEndpoints(temperature float64) Isotherm {
	u0, v0 := LocusUV(temperature - 100)
	u1, v1 := LocusUV(temperature + 100)
	angle := math.Atan2(v1-v0, u1-u0)
	u, v := LocusUV(temperature)

	var iso Isotherm
	for i, a := range []float64{angle - math.Pi/2, angle + math.Pi/2} {
		eu := u + MaxCCTDistance*math.Cos(a)
		ev := v + MaxCCTDistance*math.Sin(a)
		iso.UV[i] = [2]float64{eu, ev}
		x, y := cie.UVToXY(eu, ev)
		iso.XY[i] = [2]float64{x, y}
	}
	return iso
}
