// Copyright (c) 2026, The Chroma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cie implements conversions between the color representations
// used throughout this project: experimental primary settings (RGB),
// cone fundamentals (LMS), tristimulus values (XYZ), chromoluminance
// (x, y, Y), CIE 1960 chromaticity (u, v), and display colors for a
// handful of RGB spaces.
//
// All conversions are linear transformations (plus optional sRGB gamma
// companding) using published coefficient matrices; the inverse
// matrices are computed, not transcribed, so that round trips are exact
// to floating point precision.
package cie
