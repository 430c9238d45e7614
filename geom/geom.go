// Copyright (c) 2026, The Chroma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom has the small amount of plane geometry the chromaticity
// diagrams need.
package geom

import "math"

// Point is a point in the chromaticity plane.
type Point struct {
	X, Y float64
}

// LineIntersection returns the intersection of the infinite lines
// through segments a and b, computed with homogeneous-coordinate cross
// products.  Parallel (and coincident) lines return (+Inf, +Inf).
func LineIntersection(a0, a1, b0, b1 Point) Point {
	// lines as cross products of the homogeneous endpoints
	la := cross3(a0.X, a0.Y, 1, a1.X, a1.Y, 1)
	lb := cross3(b0.X, b0.Y, 1, b1.X, b1.Y, 1)
	p := cross3(la[0], la[1], la[2], lb[0], lb[1], lb[2])
	if p[2] == 0 {
		return Point{math.Inf(1), math.Inf(1)}
	}
	return Point{p[0] / p[2], p[1] / p[2]}
}

// SegmentIntersection returns the intersection of segments a and b, or
// (+Inf, +Inf) if the segments are parallel or do not cross within
// both spans.
func SegmentIntersection(a0, a1, b0, b1 Point) Point {
	p := LineIntersection(a0, a1, b0, b1)
	if math.IsInf(p.X, 1) {
		return p
	}
	if within(p.X, a0.X, a1.X) && within(p.Y, a0.Y, a1.Y) &&
		within(p.X, b0.X, b1.X) && within(p.Y, b0.Y, b1.Y) {
		return p
	}
	return Point{math.Inf(1), math.Inf(1)}
}

func cross3(a0, a1, a2, b0, b1, b2 float64) [3]float64 {
	return [3]float64{
		a1*b2 - a2*b1,
		a2*b0 - a0*b2,
		a0*b1 - a1*b0,
	}
}

// within reports whether v lies between bounds a and b, inclusive,
// with a small tolerance for endpoint intersections.
func within(v, a, b float64) bool {
	const tol = 1.0e-12
	lo, hi := math.Min(a, b), math.Max(a, b)
	return v >= lo-tol && v <= hi+tol
}
