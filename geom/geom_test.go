// Copyright (c) 2026, The Chroma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kyle-c-mcdermott/visualizing-color-space/tolassert"
)

func TestSegmentIntersection(t *testing.T) {
	// diagonals of the unit square cross at its center
	p := SegmentIntersection(Point{0, 0}, Point{1, 1}, Point{0, 1}, Point{1, 0})
	tolassert.Equal(t, 0.5, p.X)
	tolassert.Equal(t, 0.5, p.Y)

	// crossing at a shared endpoint counts
	p = SegmentIntersection(Point{0, 0}, Point{1, 1}, Point{1, 1}, Point{2, 0})
	tolassert.Equal(t, 1, p.X)
	tolassert.Equal(t, 1, p.Y)
}

func TestSegmentIntersectionParallel(t *testing.T) {
	p := SegmentIntersection(Point{0, 0}, Point{1, 0}, Point{0, 1}, Point{1, 1})
	assert.True(t, math.IsInf(p.X, 1))
	assert.True(t, math.IsInf(p.Y, 1))
}

func TestSegmentIntersectionOutsideSpan(t *testing.T) {
	// lines cross at (0.5, 0.5) but the second segment ends before it
	p := SegmentIntersection(Point{0, 0}, Point{1, 1}, Point{0, 1}, Point{0.25, 0.75})
	assert.True(t, math.IsInf(p.X, 1))
}

func TestLineIntersectionIgnoresSpan(t *testing.T) {
	p := LineIntersection(Point{0, 0}, Point{1, 1}, Point{0, 1}, Point{0.25, 0.75})
	tolassert.Equal(t, 0.5, p.X)
	tolassert.Equal(t, 0.5, p.Y)
}

func TestVerticalSegments(t *testing.T) {
	p := SegmentIntersection(Point{0.5, -1}, Point{0.5, 1}, Point{0, 0}, Point{1, 0})
	tolassert.Equal(t, 0.5, p.X)
	tolassert.Equal(t, 0, p.Y)
}
