// Copyright (c) 2026, The Chroma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestFigure(t *testing.T, inverted bool) *Figure {
	t.Helper()
	f := New("test", 8, 4.5, inverted)
	left := f.AddPanel("left", "Left", Rect{0, 0, 0.5, 1})
	left.X.Label.Text = "x"
	left.Y.Label.Text = "y"
	left.X.Min, left.X.Max = 0, 1
	left.Y.Min, left.Y.Max = 0, 1
	require.NoError(t, left.Line([][2]float64{{0, 0}, {0.5, 0.8}, {1, 0.2}}, color.Black, 1))
	require.NoError(t, left.Scatter([][2]float64{{0.2, 0.4}, {0.6, 0.1}}, color.Black, 2))
	require.NoError(t, left.Annotate(0.5, 0.5, "note", f.GreyLevel(0)))

	right := f.AddPanel("right", "Right", Rect{0.5, 0, 0.5, 1})
	require.NoError(t, right.Fill([][2]float64{{0.1, 0.1}, {0.9, 0.1}, {0.5, 0.9}},
		color.RGBA{R: 200, G: 60, B: 60, A: 255}))
	return f
}

func TestSavePNG(t *testing.T) {
	f := buildTestFigure(t, false)
	path := filepath.Join(t.TempDir(), "test.png")
	require.NoError(t, f.SavePNG(path, 96))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestSaveSVG(t *testing.T) {
	f := buildTestFigure(t, true)
	path := filepath.Join(t.TempDir(), "test.svg")
	require.NoError(t, f.SaveSVG(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}

func TestPanelLookup(t *testing.T) {
	f := buildTestFigure(t, false)
	assert.NotNil(t, f.Panel("left"))
	assert.NotNil(t, f.Panel("right"))
	assert.Nil(t, f.Panel("missing"))
}

func TestGreyLevel(t *testing.T) {
	f := New("grey", 1, 1, false)
	r, g, b, _ := f.GreyLevel(0).RGBA()
	assert.Zero(t, r)
	assert.Zero(t, g)
	assert.Zero(t, b)

	inv := New("grey-inv", 1, 1, true)
	r, _, _, _ = inv.GreyLevel(0).RGBA()
	assert.Equal(t, uint32(0xffff), r)
}
