// Copyright (c) 2025, The NetCube Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package netcube

import (
	"testing"
	"time"

	"github.com/polycube/netcube/colorscale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenConfig(t *testing.T) {
	c, err := OpenConfig("testdata/narrow.toml")
	require.NoError(t, err)
	assert.Equal(t, float32(200), c.Width)
	assert.Equal(t, float32(500), c.Height)
	assert.Equal(t, 3, c.LinksPerNode)
	assert.Equal(t, float32(0), c.Offset())
	assert.Equal(t, time.Second, c.TransitionDuration())
	assert.Equal(t, "#00ff00", colorscale.Hex(c.highlightColor()))

	_, err = OpenConfig("testdata/missing.toml")
	assert.Error(t, err)
}

func TestConfigBadColor(t *testing.T) {
	var c Config
	c.Defaults()
	c.Gray = "not a color"
	assert.Equal(t, colorscale.Gray, c.grayColor())
	assert.Equal(t, 250*time.Millisecond, c.SizeDuration())
	assert.Equal(t, float32(1100), c.Offset())
}
