// Copyright (c) 2026, The Chroma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/kyle-c-mcdermott/visualizing-color-space/cie"
	"github.com/kyle-c-mcdermott/visualizing-color-space/cvrl"
	"github.com/kyle-c-mcdermott/visualizing-color-space/figure"
	"github.com/kyle-c-mcdermott/visualizing-color-space/gamut"
	"github.com/kyle-c-mcdermott/visualizing-color-space/planck"
)

func figuresCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "figures",
		Short: "render the standard figure set",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
				return fmt.Errorf("creating output directory: %w", err)
			}
			builders := []func() (*figure.Figure, error){
				chromaticityDiagram,
				visibleSpectrumBand,
				colorTemperatureDiagram,
				coneFundamentalCurves,
			}
			for _, build := range builders {
				fig, err := build()
				if err != nil {
					return err
				}
				if err := save(fig, cfg); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func save(fig *figure.Figure, cfg *Config) error {
	for _, format := range cfg.Formats {
		path := filepath.Join(cfg.OutDir, fig.Name+"."+format)
		var err error
		switch format {
		case "svg":
			err = fig.SaveSVG(path)
		default:
			err = fig.SavePNG(path, cfg.DPI)
		}
		if err != nil {
			return err
		}
		slog.Info("rendered figure", "name", fig.Name, "path", path)
	}
	return nil
}

func fillColor(c [3]float64) colorful.Color {
	return colorful.Color{R: c[0], G: c[1], B: c[2]}
}

// chromaticityDiagram is the CIE 1931 diagram colored inside and
// outside the sRGB gamut, with the spectrum locus outlined.
func chromaticityDiagram() (*figure.Figure, error) {
	fig := figure.New("chromaticity-diagram", 9, 9, true)
	p := fig.AddPanel("main", "CIE 1931 Chromaticity", figure.Rect{Left: 0, Bottom: 0, Width: 1, Height: 1})
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.X.Min, p.X.Max = -0.065, 0.865
	p.Y.Min, p.Y.Max = -0.065, 0.865

	for _, poly := range gamut.OutsideGamut(128, cie.SRGB, cvrl.CIE1931TwoDegree) {
		if err := p.Fill(poly.XY, fillColor(poly.Color)); err != nil {
			return nil, err
		}
	}
	for _, poly := range gamut.InsideGamut(16, cie.SRGB, false) {
		if err := p.Fill(poly.XY, fillColor(poly.Color)); err != nil {
			return nil, err
		}
	}

	var outline [][2]float64
	for _, pt := range cvrl.SpectrumLocus(cvrl.CIE1931TwoDegree) {
		outline = append(outline, [2]float64{pt.X, pt.Y})
	}
	outline = append(outline, outline[0]) // close with the line of purples
	if err := p.Line(outline, fig.GreyLevel(0.25), 1); err != nil {
		return nil, err
	}
	return fig, nil
}

// visibleSpectrumBand is a horizontal spectrum from 380 to 700 nm.
func visibleSpectrumBand() (*figure.Figure, error) {
	fig := figure.New("visible-spectrum", 12, 3, true)
	p := fig.AddPanel("main", "Visible Spectrum", figure.Rect{Left: 0, Bottom: 0, Width: 1, Height: 1})
	p.X.Label.Text = "Wavelength (nm)"
	p.X.Min, p.X.Max = 380, 700
	p.Y.Min, p.Y.Max = 0, 1

	polys := gamut.VisibleSpectrum(256, 380, 0, 320, 1, 380, 700, false,
		cie.SRGB, cvrl.CIE1931TwoDegree)
	for _, poly := range polys {
		if err := p.Fill(poly.XY, fillColor(poly.Color)); err != nil {
			return nil, err
		}
	}
	return fig, nil
}

// colorTemperatureDiagram plots the Planckian locus in (u, v) with
// isotherms at round temperatures.
func colorTemperatureDiagram() (*figure.Figure, error) {
	fig := figure.New("color-temperature", 9, 6, true)
	p := fig.AddPanel("main", "Planckian Locus (CIE 1960)", figure.Rect{Left: 0, Bottom: 0, Width: 1, Height: 1})
	p.X.Label.Text = "u"
	p.Y.Label.Text = "v"
	p.X.Min, p.X.Max = 0.15, 0.5
	p.Y.Min, p.Y.Max = 0.25, 0.4

	var locusLine [][2]float64
	for _, t := range planck.TemperatureSeries(800, 1.0e7) {
		u, v := planck.LocusUV(t)
		locusLine = append(locusLine, [2]float64{u, v})
	}
	if err := p.Line(locusLine, fig.GreyLevel(0), 1.5); err != nil {
		return nil, err
	}

	for _, t := range []float64{2000, 3000, 4000, 6000, 10000} {
		iso := planck.IsothermEndpoints(t)
		seg := [][2]float64{
			{iso.UV[0][0], iso.UV[0][1]},
			{iso.UV[1][0], iso.UV[1][1]},
		}
		if err := p.Line(seg, fig.GreyLevel(0.4), 1); err != nil {
			return nil, err
		}
		if err := p.Annotate(iso.UV[1][0], iso.UV[1][1], fmt.Sprintf("%.0f K", t), fig.GreyLevel(0.2)); err != nil {
			return nil, err
		}
	}
	return fig, nil
}

// coneFundamentalCurves plots the 2-degree cone fundamentals.
func coneFundamentalCurves() (*figure.Figure, error) {
	fig := figure.New("cone-fundamentals", 12, 6, true)
	p := fig.AddPanel("main", "CIE 2006 Cone Fundamentals (2-degree)", figure.Rect{Left: 0, Bottom: 0, Width: 1, Height: 1})
	p.X.Label.Text = "Wavelength (nm)"
	p.Y.Label.Text = "Sensitivity"
	p.X.Min, p.X.Max = cvrl.MinWavelength, cvrl.MaxWavelength
	p.Y.Min, p.Y.Max = 0, 1.05

	cones := cvrl.ConeFundamentals(cie.TwoDegree)
	var ls, ms, ss [][2]float64
	for _, c := range cones {
		ls = append(ls, [2]float64{c.Wavelength, c.L})
		ms = append(ms, [2]float64{c.Wavelength, c.M})
		ss = append(ss, [2]float64{c.Wavelength, c.S})
	}
	const width = vg.Length(1.5)
	if err := p.Line(ls, colorful.Color{R: 0.9, G: 0.3, B: 0.3}, width); err != nil {
		return nil, err
	}
	if err := p.Line(ms, colorful.Color{R: 0.3, G: 0.8, B: 0.3}, width); err != nil {
		return nil, err
	}
	if err := p.Line(ss, colorful.Color{R: 0.4, G: 0.4, B: 0.95}, width); err != nil {
		return nil, err
	}
	return fig, nil
}
