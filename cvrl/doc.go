// Copyright (c) 2026, The Chroma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cvrl provides tabulated colorimetric data in the form
// published by the Colour & Vision Research Laboratory
// (http://www.cvrl.org): color matching functions for the four
// standard observers, cone fundamentals, the D65 illuminant spectrum,
// and measured CRT phosphor emission spectra.  All tables cover 380 to
// 780 nm in 5 nm steps.
//
// The CIE 1931, CIE 1964, and cone fundamental tables are embedded
// directly; the CIE 170-2 color matching functions are constructed at
// load time from the cone fundamentals and the 2006/2012
// transformation matrices, which is how they are defined.
package cvrl
