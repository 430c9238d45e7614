// Copyright (c) 2026, The Chroma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kyle-c-mcdermott/visualizing-color-space/cvrl"
	"github.com/kyle-c-mcdermott/visualizing-color-space/derive"
	"github.com/kyle-c-mcdermott/visualizing-color-space/planck"
	"github.com/kyle-c-mcdermott/visualizing-color-space/spect"
)

func deriveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "derive",
		Short: "print tabulated derivations",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "d65",
			Short: "estimate the D65 white chromaticity from its spectrum",
			RunE: func(cmd *cobra.Command, args []string) error {
				d65 := cvrl.D65()
				wl := make([]float64, len(d65))
				en := make([]float64, len(d65))
				for i, p := range d65 {
					wl[i] = p.Wavelength
					en[i] = p.Energy
				}
				s, err := spect.New(wl, en)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				for _, std := range []cvrl.Standard{
					cvrl.CIE1931TwoDegree, cvrl.CIE1964TenDegree,
					cvrl.CIE170TwoDegree, cvrl.CIE170TenDegree,
				} {
					x, y := s.Chromaticity(std)
					fmt.Fprintf(out, "%-20s (x, y) = (%.5f, %.5f)\n", std, x, y)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "cct",
			Short: "correlated color temperature of the D65 white point",
			RunE: func(cmd *cobra.Command, args []string) error {
				c := planck.CorrelatedColorTemperatureXY(0.3127, 0.3290)
				if !c.Valid {
					return fmt.Errorf("no meaningful color temperature (distance %.4f)", c.Distance)
				}
				fmt.Fprintf(cmd.OutOrStdout(),
					"CCT = %.0f K at uv distance %.6f from the Planckian locus\n",
					c.Temperature, c.Distance)
				return nil
			},
		},
		&cobra.Command{
			Use:   "temperatures",
			Short: "the evenly-spaced temperature series along the Planckian locus",
			RunE: func(cmd *cobra.Command, args []string) error {
				out := cmd.OutOrStdout()
				temps := planck.TemperatureSeries(0, 0)
				for _, t := range temps {
					x, y := planck.LocusXY(t)
					fmt.Fprintf(out, "%12.0f K  (x, y) = (%.5f, %.5f)\n", t, x, y)
				}
				fmt.Fprintf(out, "%d temperatures\n", len(temps))
				return nil
			},
		},
		&cobra.Command{
			Use:   "constants",
			Short: "cone fundamental normalization constants",
			RunE: func(cmd *cobra.Command, args []string) error {
				l, m, s := derive.NormalizationConstants()
				out := cmd.OutOrStdout()
				for _, row := range []struct {
					name string
					c    derive.Constant
				}{
					{"Long", l}, {"Medium", m}, {"Short", s},
				} {
					fmt.Fprintf(out, "k(%-6s) = %.6f (peak at %.0f nm)\n",
						row.name, row.c.Value, row.c.PeakWavelength)
				}
				return nil
			},
		},
	)
	return cmd
}
