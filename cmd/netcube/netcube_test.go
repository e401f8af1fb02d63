// Copyright (c) 2025, The NetCube Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"cogentcore.org/core/cli"
	"github.com/polycube/netcube/data"
	"github.com/polycube/netcube/netcube"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *Config {
	c := &Config{}
	require.NoError(t, cli.SetFromDefaults(c))
	c.Dataset = "../../data/testdata/small.json"
	return c
}

func TestSummary(t *testing.T) {
	c := testConfig(t)
	cube, err := build(c)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, summarize(&buf, cube))
	out := buf.String()
	assert.Contains(t, out, "layout STC, colors categorical, time aggregated\n")
	assert.Contains(t, out, "2019\ty=-250.0\t1 points\ta\n")
	assert.Contains(t, out, "2020\ty=-83.3\t1 points\tb\n")
	assert.Contains(t, out, "2 of 2 links shown\n")
	assert.Contains(t, out, "letter\t#")
	assert.Contains(t, out, "photo\t#")
}

func TestSummaryFiltered(t *testing.T) {
	c := testConfig(t)
	c.Start = "2020"
	c.Links = true
	c.Color = "monochrome"
	cube, err := build(c)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, summarize(&buf, cube))
	out := buf.String()
	assert.Contains(t, out, "2019\ty=-250.0\t0 points\t\n")
	assert.Contains(t, out, "0 of 2 links shown\n")
	assert.NotContains(t, out, "letter\t#")

	c.Start = "soon"
	_, err = build(c)
	assert.ErrorContains(t, err, "start")

	c.Start = "2020"
	c.Category = "letter"
	_, err = build(c)
	assert.ErrorContains(t, err, "category")
}

func TestHighlightUnknown(t *testing.T) {
	c := testConfig(t)
	c.Highlight = "d"
	_, err := build(c)
	assert.ErrorIs(t, err, netcube.ErrNotFound)
}

func TestAnimate(t *testing.T) {
	c := testConfig(t)
	c.Layout = "si"
	c.FPS = 10
	require.NoError(t, Animate(c))

	c.Layout = "sideways"
	assert.Error(t, Animate(c))
}

func TestLayout(t *testing.T) {
	c := testConfig(t)
	assert.Error(t, Layout(c))

	c.Dataset = "../../data/testdata/small.yaml"
	c.Output = filepath.Join(t.TempDir(), "layout.yaml")
	require.NoError(t, Layout(c))
	ds, err := data.Open(c.Output)
	require.NoError(t, err)
	assert.Len(t, ds.Positions, 2)
}
