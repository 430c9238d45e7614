// Copyright (c) 2026, The Chroma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cvrl

import (
	"embed"
	"encoding/csv"
	"fmt"
	"strconv"
	"sync"

	"github.com/kyle-c-mcdermott/visualizing-color-space/cie"
)

//go:embed data/*.csv
var data embed.FS

// MinWavelength and MaxWavelength bound the tabulated data, which is
// sampled in [Step] nm increments.
const (
	MinWavelength = 380.0
	MaxWavelength = 780.0
	Step          = 5.0
)

// Standard selects one of the four standard observer color matching
// function tables.
type Standard int32

const (
	// CIE1931TwoDegree is the original CIE 1931 2-degree observer.
	CIE1931TwoDegree Standard = iota

	// CIE1964TenDegree is the CIE 1964 10-degree supplementary observer.
	CIE1964TenDegree

	// CIE170TwoDegree is the CIE 170-2 / 2012 2-degree observer,
	// constructed from the 2006 cone fundamentals.
	CIE170TwoDegree

	// CIE170TenDegree is the CIE 170-2 / 2012 10-degree observer.
	CIE170TenDegree
)

func (s Standard) String() string {
	switch s {
	case CIE1931TwoDegree:
		return "CIE 1931 2-degree"
	case CIE1964TenDegree:
		return "CIE 1964 10-degree"
	case CIE170TwoDegree:
		return "CIE 170-2 2-degree"
	case CIE170TenDegree:
		return "CIE 170-2 10-degree"
	}
	return "invalid"
}

// Observer returns the stimulus size of the standard.
func (s Standard) Observer() cie.Observer {
	if s == CIE1964TenDegree || s == CIE170TenDegree {
		return cie.TenDegree
	}
	return cie.TwoDegree
}

// CMFPoint is one wavelength sample of a set of color matching
// functions.
type CMFPoint struct {
	Wavelength float64 // nm
	X, Y, Z    float64
}

// ConePoint is one wavelength sample of a set of cone fundamentals.
type ConePoint struct {
	Wavelength float64 // nm
	L, M, S    float64
}

// SPDPoint is one wavelength sample of a spectral power distribution.
type SPDPoint struct {
	Wavelength float64 // nm
	Energy     float64
}

// PhosphorPoint is one wavelength sample of the three CRT phosphor
// emission spectra.
type PhosphorPoint struct {
	Wavelength float64 // nm
	R, G, B    float64
}

// CMF returns the color matching function table for the given
// standard observer.  The returned slice is shared; treat it as
// read-only.
func CMF(s Standard) []CMFPoint {
	switch s {
	case CIE1964TenDegree:
		return cie1964()
	case CIE170TwoDegree:
		return cie170Two()
	case CIE170TenDegree:
		return cie170Ten()
	}
	return cie1931()
}

// ConeFundamentals returns the 2006 cone fundamental table (unit peak,
// linear energy) for the given observer.  The returned slice is
// shared; treat it as read-only.
func ConeFundamentals(obs cie.Observer) []ConePoint {
	if obs == cie.TenDegree {
		return conesTen()
	}
	return conesTwo()
}

// D65 returns the relative spectral power distribution of CIE standard
// illuminant D65, normalized to 100 at 560 nm.  The returned slice is
// shared; treat it as read-only.
func D65() []SPDPoint {
	return d65()
}

// CRTPhosphors returns the measured red, green, and blue phosphor
// emission spectra of a CRT display, in watts per steradian per square
// meter per nm.  The returned slice is shared; treat it as read-only.
func CRTPhosphors() []PhosphorPoint {
	return phosphors()
}

var (
	cie1931 = sync.OnceValue(func() []CMFPoint { return loadCMF("data/ciexyz31.csv") })
	cie1964 = sync.OnceValue(func() []CMFPoint { return loadCMF("data/ciexyz64.csv") })

	conesTwo = sync.OnceValue(func() []ConePoint { return loadCones("data/linss2e.csv") })
	conesTen = sync.OnceValue(func() []ConePoint { return loadCones("data/linss10e.csv") })

	cie170Two = sync.OnceValue(func() []CMFPoint {
		return cmfFromCones(conesTwo(), &cie.LMSToXYZ2006TwoDegree)
	})
	cie170Ten = sync.OnceValue(func() []CMFPoint {
		return cmfFromCones(conesTen(), &cie.LMSToXYZ2006TenDegree)
	})

	d65 = sync.OnceValue(func() []SPDPoint {
		recs := loadCSV("data/illuminantd65.csv", 2)
		out := make([]SPDPoint, len(recs))
		for i, r := range recs {
			out[i] = SPDPoint{Wavelength: r[0], Energy: r[1]}
		}
		return out
	})

	phosphors = sync.OnceValue(func() []PhosphorPoint {
		recs := loadCSV("data/crtphosphors.csv", 4)
		out := make([]PhosphorPoint, len(recs))
		for i, r := range recs {
			out[i] = PhosphorPoint{Wavelength: r[0], R: r[1], G: r[2], B: r[3]}
		}
		return out
	})
)

func loadCMF(name string) []CMFPoint {
	recs := loadCSV(name, 4)
	out := make([]CMFPoint, len(recs))
	for i, r := range recs {
		out[i] = CMFPoint{Wavelength: r[0], X: r[1], Y: r[2], Z: r[3]}
	}
	return out
}

func loadCones(name string) []ConePoint {
	recs := loadCSV(name, 4)
	out := make([]ConePoint, len(recs))
	for i, r := range recs {
		out[i] = ConePoint{Wavelength: r[0], L: r[1], M: r[2], S: r[3]}
	}
	return out
}

// cmfFromCones applies the fundamentals-to-CMF transformation at every
// tabulated wavelength.
func cmfFromCones(cones []ConePoint, m *cie.Mat3) []CMFPoint {
	out := make([]CMFPoint, len(cones))
	for i, c := range cones {
		x, y, z := m.MulVec(c.L, c.M, c.S)
		out[i] = CMFPoint{Wavelength: c.Wavelength, X: x, Y: y, Z: z}
	}
	return out
}

// loadCSV reads an embedded table with a one-line header and the given
// number of numeric columns.  The embedded files are fixed at build
// time, so failures panic.
func loadCSV(name string, cols int) [][]float64 {
	f, err := data.Open(name)
	if err != nil {
		panic(fmt.Errorf("cvrl: opening %s: %w", name, err))
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.FieldsPerRecord = cols
	recs, err := r.ReadAll()
	if err != nil {
		panic(fmt.Errorf("cvrl: reading %s: %w", name, err))
	}
	out := make([][]float64, 0, len(recs)-1)
	for _, rec := range recs[1:] { // skip header
		row := make([]float64, cols)
		for j, field := range rec {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				panic(fmt.Errorf("cvrl: parsing %s: %w", name, err))
			}
			row[j] = v
		}
		out = append(out, row)
	}
	return out
}
