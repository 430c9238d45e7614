// Copyright (c) 2026, The Chroma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blind

import (
	"image"
	"math"

	"github.com/anthonynsimon/bild/parallel"
	"github.com/chewxy/math32"
	"github.com/disintegration/imaging"

	"github.com/kyle-c-mcdermott/visualizing-color-space/cie"
	"github.com/kyle-c-mcdermott/visualizing-color-space/geom"
)

// Simulate renders an sRGB image as a dichromat missing the given cone
// class would see it.  Every pixel chromaticity is moved along its
// confusion line onto the arc about the copunctal point whose radius
// is the image's mean distance from that point, preserving each
// pixel's luminance (dimmed where the gamut cannot reach it).  Alpha
// is carried through unchanged.
func Simulate(src image.Image, cone Cone) *image.NRGBA {
	img := imaging.Clone(src)
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return img
	}

	px, py := cone.Copunctal()

	// first pass: unique colors and the mean distance from the
	// copunctal point
	uniques := map[[3]uint8]struct{}{}
	var distSum float64
	for yy := 0; yy < h; yy++ {
		row := img.Pix[yy*img.Stride : yy*img.Stride+w*4]
		for xx := 0; xx < w; xx++ {
			r, g, b := row[xx*4], row[xx*4+1], row[xx*4+2]
			uniques[[3]uint8{r, g, b}] = struct{}{}
			cx, cy, _ := pixelChromaticity(r, g, b)
			distSum += math.Hypot(float64(cx)-px, float64(cy)-py)
		}
	}
	radius := distSum / float64(w*h)

	aw := math.Atan2(whiteY-py, whiteX-px)
	loAngle, hiAngle := arcAngleBounds(cone, radius)

	// second pass: transform each unique color once
	mapped := make(map[[3]uint8][3]uint8, len(uniques))
	for c := range uniques {
		cx, cy, lum := pixelChromaticity(c[0], c[1], c[2])
		a := wrapNear(math.Atan2(float64(cy)-py, float64(cx)-px), aw)
		a = math.Min(math.Max(a, loAngle), hiAngle)
		nx := float32(px + radius*math.Cos(a))
		ny := float32(py + radius*math.Sin(a))
		mapped[c] = displayable(nx, ny, lum)
	}

	// third pass: apply the mapping row-parallel
	parallel.Line(h, func(start, end int) {
		for yy := start; yy < end; yy++ {
			row := img.Pix[yy*img.Stride : yy*img.Stride+w*4]
			for xx := 0; xx < w; xx++ {
				c := mapped[[3]uint8{row[xx*4], row[xx*4+1], row[xx*4+2]}]
				row[xx*4], row[xx*4+1], row[xx*4+2] = c[0], c[1], c[2]
			}
		}
	})
	return img
}

// arcAngleBounds finds the angle interval about the copunctal point
// over which the arc of the given radius stays inside the sRGB gamut
// triangle, pulled in by a two-degree buffer.  Each crossing is found
// by golden-section minimization of the arc point's distance to the
// gamut boundary, bracketed a quarter turn to either side of the
// direction of the white point.
func arcAngleBounds(cone Cone, radius float64) (lo, hi float64) {
	px, py := cone.Copunctal()
	aw := math.Atan2(whiteY-py, whiteX-px)
	f := func(a float64) float64 {
		x := px + radius*math.Cos(a)
		y := py + radius*math.Sin(a)
		return distToGamutBoundary(x, y)
	}
	lo = goldenMin(f, aw-math.Pi/2, aw)
	hi = goldenMin(f, aw, aw+math.Pi/2)
	const buffer = math.Pi / 90
	lo += buffer
	hi -= buffer
	if lo > hi {
		lo, hi = aw, aw
	}
	return lo, hi
}

// distToGamutBoundary is the distance from (x, y) to the nearest edge
// of the sRGB gamut triangle (zero only on the boundary itself).
func distToGamutBoundary(x, y float64) float64 {
	p := cie.SRGB.PrimaryChromaticities()
	d := math.Inf(1)
	for i := 0; i < 3; i++ {
		a := geom.Point{X: p[i][0], Y: p[i][1]}
		b := geom.Point{X: p[(i+1)%3][0], Y: p[(i+1)%3][1]}
		d = math.Min(d, distToSegment(geom.Point{X: x, Y: y}, a, b))
	}
	return d
}

func distToSegment(p, a, b geom.Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / (dx*dx + dy*dy)
	t = math.Min(math.Max(t, 0), 1)
	return math.Hypot(p.X-(a.X+t*dx), p.Y-(a.Y+t*dy))
}

// goldenMin is golden-section search for the minimum of f on [lo, hi].
func goldenMin(f func(float64) float64, lo, hi float64) float64 {
	const invPhi = 0.6180339887498949
	a, b := lo, hi
	c := b - (b-a)*invPhi
	d := a + (b-a)*invPhi
	fc, fd := f(c), f(d)
	for b-a > 1.0e-10 {
		if fc < fd {
			b, d, fd = d, c, fc
			c = b - (b-a)*invPhi
			fc = f(c)
		} else {
			a, c, fc = c, d, fd
			d = a + (b-a)*invPhi
			fd = f(d)
		}
	}
	return (a + b) / 2
}

// wrapNear shifts a by multiples of 2pi into [center-pi, center+pi) so
// that atan2 output can be clamped against an interval that may
// straddle the branch cut.
func wrapNear(a, center float64) float64 {
	for a < center-math.Pi {
		a += 2 * math.Pi
	}
	for a >= center+math.Pi {
		a -= 2 * math.Pi
	}
	return a
}

// Float32 pixel path.  Eight-bit channels do not need float64, and an
// image has a lot of pixels; these mirror the cie conversions in
// float32.

var (
	whiteX, whiteY = cie.SRGB.WhitePoint()

	srgbToXYZ32, xyzToSRGB32 = func() (to, from [3][3]float32) {
		t := cie.SRGB.XYZMatrix()
		f := cie.SRGB.RGBMatrix()
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				to[i][j] = float32(t[i][j])
				from[i][j] = float32(f[i][j])
			}
		}
		return to, from
	}()
)

// pixelChromaticity converts an 8-bit sRGB pixel to chromaticity and
// luminance.
func pixelChromaticity(r, g, b uint8) (cx, cy, lum float32) {
	rl := srgbLin(float32(r) / 255)
	gl := srgbLin(float32(g) / 255)
	bl := srgbLin(float32(b) / 255)
	x := srgbToXYZ32[0][0]*rl + srgbToXYZ32[0][1]*gl + srgbToXYZ32[0][2]*bl
	y := srgbToXYZ32[1][0]*rl + srgbToXYZ32[1][1]*gl + srgbToXYZ32[1][2]*bl
	z := srgbToXYZ32[2][0]*rl + srgbToXYZ32[2][1]*gl + srgbToXYZ32[2][2]*bl
	sum := x + y + z
	if sum <= 0 {
		return float32(whiteX), float32(whiteY), 0
	}
	return x / sum, y / sum, y
}

// displayable converts chromaticity and luminance back to an 8-bit
// sRGB pixel, dimming the luminance by 5% steps until the color fits
// in the gamut.
func displayable(cx, cy, lum float32) [3]uint8 {
	if cy <= 0 {
		return [3]uint8{}
	}
	for n := 0; n < 200; n++ {
		x := lum * (cx / cy)
		y := lum
		z := lum * ((1 - cx - cy) / cy)
		rl := xyzToSRGB32[0][0]*x + xyzToSRGB32[0][1]*y + xyzToSRGB32[0][2]*z
		gl := xyzToSRGB32[1][0]*x + xyzToSRGB32[1][1]*y + xyzToSRGB32[1][2]*z
		bl := xyzToSRGB32[2][0]*x + xyzToSRGB32[2][1]*y + xyzToSRGB32[2][2]*z
		const eps = 1.0e-6
		if rl <= 1+eps && gl <= 1+eps && bl <= 1+eps {
			return [3]uint8{quantize(rl), quantize(gl), quantize(bl)}
		}
		lum *= 0.95
	}
	return [3]uint8{}
}

func quantize(linear float32) uint8 {
	v := srgbComp(math32.Max(linear, 0))
	return uint8(math32.Round(math32.Min(v, 1) * 255))
}

func srgbLin(v float32) float32 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math32.Pow((v+0.055)/1.055, 2.4)
}

func srgbComp(v float32) float32 {
	if v <= 0.04045/12.92 {
		return 12.92 * v
	}
	return 1.055*math32.Pow(v, 1.0/2.4) - 0.055
}
