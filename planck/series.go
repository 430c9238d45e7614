// Copyright (c) 2026, The Chroma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package planck

import "math"

// Default bounds for TemperatureSeries.  The upper default is far past
// MaxTemperature: the locus clamps there, so the increments grow by
// decades almost immediately and the series terminates quickly.
const (
	DefaultSeriesMin = 100.0
	DefaultSeriesMax = 1.0e10
)

// seriesStep is the largest CIE 1931 chromaticity distance allowed
// between consecutive series temperatures.
const seriesStep = 0.0025

// TemperatureSeries returns temperatures from minTemp to at most
// maxTemp, spaced so that consecutive chromaticities along the
// Planckian locus are roughly evenly separated.  The increment starts
// at minTemp's decade and is multiplied by ten whenever a tenfold
// larger step would still move the chromaticity less than the target
// spacing, which keeps the series short in the blue asymptote where
// the locus barely moves.  Pass zeros for the default bounds.
func TemperatureSeries(minTemp, maxTemp float64) []float64 {
	if minTemp <= 0 {
		minTemp = DefaultSeriesMin
	}
	if maxTemp <= 0 {
		maxTemp = DefaultSeriesMax
	}
	inc := math.Pow(10, math.Floor(math.Log10(minTemp)))
	temps := []float64{minTemp}
	t := minTemp
	for t < maxTemp {
		x0, y0 := LocusXY(t)
		for t+10*inc <= maxTemp {
			x1, y1 := LocusXY(t + 10*inc)
			if math.Hypot(x1-x0, y1-y0) > seriesStep {
				break
			}
			inc *= 10
		}
		t += inc
		if t > maxTemp {
			break
		}
		temps = append(temps, t)
	}
	return temps
}
