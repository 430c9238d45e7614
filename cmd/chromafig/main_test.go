// Copyright (c) 2026, The Chroma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyle-c-mcdermott/visualizing-color-space/figure"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml"), false)
	require.NoError(t, err)
	assert.Equal(t, "images", cfg.OutDir)
	assert.Equal(t, 300, cfg.DPI)
	assert.Equal(t, []string{"png"}, cfg.Formats)
}

func TestLoadConfigExplicitMissing(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml"), true)
	assert.Error(t, err)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chromafig.toml")
	require.NoError(t, os.WriteFile(path, []byte(
		"out_dir = \"out\"\ndpi = 150\nformats = [\"png\", \"svg\"]\n"), 0o644))
	cfg, err := loadConfig(path, true)
	require.NoError(t, err)
	assert.Equal(t, "out", cfg.OutDir)
	assert.Equal(t, 150, cfg.DPI)
	assert.Equal(t, []string{"png", "svg"}, cfg.Formats)
}

func TestLoadConfigBadFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chromafig.toml")
	require.NoError(t, os.WriteFile(path, []byte("formats = [\"pdf\"]\n"), 0o644))
	_, err := loadConfig(path, true)
	assert.ErrorContains(t, err, "unsupported format")
}

func TestFigureBuilders(t *testing.T) {
	dir := t.TempDir()
	for _, build := range []func() (*figure.Figure, error){
		chromaticityDiagram,
		visibleSpectrumBand,
		colorTemperatureDiagram,
		coneFundamentalCurves,
	} {
		fig, err := build()
		require.NoError(t, err)
		path := filepath.Join(dir, fig.Name+".svg")
		require.NoError(t, fig.SaveSVG(path))
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}
}
