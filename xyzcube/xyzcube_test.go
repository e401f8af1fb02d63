// Copyright (c) 2025, The NetCube Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyzcube

import (
	"testing"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/xyz"
	"github.com/polycube/netcube/data"
	"github.com/polycube/netcube/netcube"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCube(t *testing.T) (*netcube.Cube, *Renderer) {
	ds, err := data.Open("../data/testdata/small.json")
	require.NoError(t, err)
	var opts data.StoreOptions
	opts.Defaults()
	st, err := data.NewStore(ds, opts)
	require.NoError(t, err)
	r := New(xyz.NewScene())
	c := netcube.New(nil, st, nil, r, r)
	return c, r
}

func TestAttach(t *testing.T) {
	c, r := testCube(t)
	assert.Same(t, c, r.Cube())
	require.NotNil(t, r.Group(netcube.LayerGL))
	require.NotNil(t, r.Group(netcube.LayerCSS))
	assert.Equal(t, "NET_CUBE", r.Group(netcube.LayerGL).Name)
	assert.Equal(t, "NET_CUBE_CSS", r.Group(netcube.LayerCSS).Name)
	assert.Equal(t, 2, r.Scene.NumChildren())

	c.UpdateView(netcube.ViewNetCube)
	assert.Equal(t, 2, r.Scene.NumChildren())
}

func TestUpdate(t *testing.T) {
	c, r := testCube(t)
	require.True(t, r.Update())
	assert.False(t, r.Update())

	gl := r.Group(netcube.LayerGL)
	assert.Equal(t, c.GL.Pos, gl.Pose.Pos)

	require.Len(t, c.Points(), 3)
	for _, p := range c.Points() {
		sld := r.Solid(p)
		require.NotNil(t, sld, p.Name)
		assert.Equal(t, p.Pos, sld.Pose.Pos)
		assert.Equal(t, math32.Vec3(2, 2, 2), sld.Pose.Scale)
		assert.Equal(t, p.Color, sld.Material.Color)
	}
	for _, s := range c.Slices() {
		assert.NotNil(t, r.Solid(s))
	}
	for _, l := range c.Links().Links {
		assert.NotNil(t, r.Solid(l))
	}
	for _, lb := range c.Labels() {
		assert.NotNil(t, r.Solid(lb))
	}
	assert.NotNil(t, r.Solid(c.Box()))

	p := c.Points()[0]
	p.SetScale(2, 2, 2)
	assert.False(t, r.Update())
	assert.Equal(t, math32.Vec3(4, 4, 4), r.Solid(p).Pose.Scale)
}

func TestUpdateVisibility(t *testing.T) {
	c, r := testCube(t)
	r.Update()

	c.TransitionJP()
	assert.True(t, r.Update())
	for _, l := range c.Links().Links {
		assert.Nil(t, r.Solid(l))
	}
	assert.Nil(t, r.Solid(c.Box()))

	c.FilterData("photo", c.Manager().MinDate(), c.Manager().MaxDate())
	assert.True(t, r.Update())
	for _, p := range c.Points() {
		if p.Visible {
			assert.NotNil(t, r.Solid(p))
		} else {
			assert.Nil(t, r.Solid(p))
		}
	}
}

func TestBoxEdges(t *testing.T) {
	pts := boxEdges(math32.Vec3(2, 2, 2))
	assert.Len(t, pts, 16)
	for _, p := range pts {
		assert.Equal(t, float32(1), math32.Abs(p.X))
		assert.Equal(t, float32(1), math32.Abs(p.Y))
		assert.Equal(t, float32(1), math32.Abs(p.Z))
	}
}

func TestCamera(t *testing.T) {
	sc := xyz.NewScene()
	sc.Camera.Pose.Pos = math32.Vec3(0, 0, 10)
	sc.Camera.LookAt(math32.Vec3(0, 0, 0), math32.Vec3(0, 1, 0))
	sc.Camera.Aspect = 0
	cam := Camera{Scene: sc}
	pc := cam.Perspective()
	assert.Equal(t, float32(1), pc.Aspect)
	assert.Equal(t, math32.Vec3(0, 1, 0), pc.Up)

	ray := cam.Ray(math32.Vec2(0, 0))
	assert.Equal(t, sc.Camera.Pose.Pos, ray.Origin)
	assert.InDelta(t, -1, ray.Dir.Z, 1e-5)
}
