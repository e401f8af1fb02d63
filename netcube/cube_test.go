// Copyright (c) 2025, The NetCube Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package netcube

import (
	"testing"
	"time"

	"cogentcore.org/core/math32"
	"github.com/polycube/netcube/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// testContainer records attachments.
type testContainer struct {
	attached map[Layer]int
}

func (tc *testContainer) AttachCube(c *Cube, layer Layer) {
	if tc.attached == nil {
		tc.attached = map[Layer]int{}
	}
	tc.attached[layer]++
}

func testDataset() *data.Dataset {
	return &data.Dataset{
		Records: []*data.Record{
			{ID: "a", Category: "x", DateTime: day(2020, 6, 15), TargetNodes: []string{"b", "c"}},
			{ID: "b", Category: "y", DateTime: day(2019, 3, 1), TargetNodes: []string{"a"}},
			{ID: "c", Category: "x", DateTime: day(2021, 12, 31), TargetNodes: []string{"nopos"}},
			{ID: "nopos", Category: "y", DateTime: day(2020, 1, 1), TargetNodes: []string{"a"}},
			{ID: "under_score", Category: "x", DateTime: day(2020, 2, 2), TargetNodes: []string{"c"}},
		},
		Positions: map[string]data.Position{
			"a":           {X: 10, Y: 10},
			"b":           {X: -10, Y: -10},
			"c":           {X: 0, Y: 5},
			"under_score": {X: 5, Y: -5},
		},
	}
}

func testStore(t *testing.T) *data.Store {
	var opts data.StoreOptions
	opts.Defaults()
	st, err := data.NewStore(testDataset(), opts)
	require.NoError(t, err)
	return st
}

func testCube(t *testing.T) (*Cube, *data.Store, *testContainer, *testContainer) {
	st := testStore(t)
	gl, css := &testContainer{}, &testContainer{}
	cam := NewPerspectiveCamera(math32.Vec3(0, 0, 1000), math32.Vec3(0, 0, 0), 30, 1)
	c := New(nil, st, cam, gl, css)
	return c, st, gl, css
}

func mustPoint(t *testing.T, c *Cube, id string) *Point {
	p, err := c.PointByID(id)
	require.NoError(t, err)
	return p
}

func visibleIDs(c *Cube) []string {
	var ids []string
	for _, p := range c.Points() {
		if p.Visible {
			ids = append(ids, p.Record.ID)
		}
	}
	return ids
}

func TestBuild(t *testing.T) {
	c, st, gl, css := testCube(t)

	require.Len(t, c.Slices(), len(st.TimeRange()))
	names := []string{}
	for i, s := range c.Slices() {
		names = append(names, s.Name)
		assert.Equal(t, i, s.Index)
		assert.InDelta(t, float32(i)*(500.0/3)-250, s.Pos.Y, 1e-3)
		assert.Equal(t, float32(250), s.Pos.X)
		assert.Equal(t, float32(250), s.Pos.Z)
		assert.Equal(t, float32(500), s.Outline.Width)
		assert.InDelta(t, math32.Pi/2, s.Outline.Rot.X, 1e-6)
		require.NotNil(t, s.Label)
		assert.Equal(t, s.Name, s.Label.Text)
		assert.Equal(t, s, s.Label.Slice())
		assert.Equal(t, float32(-20), s.Label.Pos.X)
		assert.InDelta(t, s.Pos.Y, s.Label.Pos.Y, 1e-6)
	}
	assert.Equal(t, []string{"2019", "2020", "2021"}, names)
	assert.Len(t, c.Labels(), 3)

	// nopos has no layout position
	assert.Len(t, c.Points(), 4)
	_, err := c.PointByID("nopos")
	assert.ErrorIs(t, err, ErrNotFound)

	for _, p := range c.Points() {
		s, err := c.FindTimeSlice(p.Record.DateTime)
		require.NoError(t, err)
		assert.Equal(t, s, p.Slice())
		assert.Contains(t, s.Points(), p)
	}
	a := mustPoint(t, c, "a")
	assert.Equal(t, "2020", a.Slice().Name)
	assert.Equal(t, math32.Vec3(250, 0, 250), a.Pos)
	assert.Equal(t, math32.Vec3(1, 1, 1), a.Scale)
	assert.Equal(t, st.CategoryColor("x"), a.Color)

	assert.Equal(t, math32.Vec3(1100, 0, 0), c.GetCubePosition())
	assert.Equal(t, c.GL.Pos, c.CSS.Pos)
	assert.Equal(t, math32.Vec3(250, 0, 250), c.Box().Pos)
	assert.Equal(t, 1, gl.attached[LayerGL])
	assert.Equal(t, 1, css.attached[LayerCSS])
	assert.Equal(t, map[string]bool{"x": true, "y": true}, c.Categories())
}

func TestBuildWithoutOverlay(t *testing.T) {
	st := testStore(t)
	gl := &testContainer{}
	c := New(nil, st, nil, gl, nil)
	assert.Len(t, c.Labels(), 3)
	assert.Equal(t, 1, gl.attached[LayerGL])
	rec, ok := c.OnClick(PointerEvent{}, Viewport{Width: 10, Height: 10})
	assert.Nil(t, rec)
	assert.False(t, ok)
}

func TestLinks(t *testing.T) {
	c, _, _, _ := testCube(t)
	var names []string
	for _, l := range c.Links().Links {
		names = append(names, l.Name)
	}
	// c -> nopos has no target position; nopos has no point
	assert.Equal(t, []string{"b_a", "under_score_c", "a_b"}, names)

	ab := c.Links().Links[2]
	a := mustPoint(t, c, "a")
	b := mustPoint(t, c, "b")
	assert.Equal(t, a, ab.SourcePoint)
	assert.Equal(t, b, ab.TargetPoint)
	assert.Equal(t, math32.Vec3(500, a.Slice().Pos.Y, 500), ab.Start)
	assert.Equal(t, math32.Vec3(0, b.Slice().Pos.Y, 0), ab.End)
	assert.Equal(t, float32(0.75), ab.Opacity)
}

func TestLinksPerNode(t *testing.T) {
	st := testStore(t)
	cfg := &Config{}
	cfg.Defaults()
	cfg.LinksPerNode = 2
	c := New(cfg, st, nil, nil, nil)
	var names []string
	for _, l := range c.Links().Links {
		names = append(names, l.Name)
	}
	assert.Contains(t, names, "a_b")
	assert.Contains(t, names, "a_c")
	assert.Len(t, names, 4)
}

func TestNormalizedPositionFlat(t *testing.T) {
	ds := &data.Dataset{
		Records:   []*data.Record{{ID: "a", DateTime: day(2020, 1, 1)}, {ID: "b", DateTime: day(2020, 1, 1)}},
		Positions: map[string]data.Position{"a": {X: 3, Y: 4}, "b": {X: 3, Y: 4}},
	}
	var opts data.StoreOptions
	opts.Defaults()
	st, err := data.NewStore(ds, opts)
	require.NoError(t, err)
	c := New(nil, st, nil, nil, nil)
	pos, ok := c.NormalizedPosition("a")
	assert.True(t, ok)
	assert.Equal(t, math32.Vector3{}, pos)
	assert.Len(t, c.Points(), 2)
	assert.Len(t, c.Slices(), 1)
}

func TestWalk(t *testing.T) {
	c, _, _, _ := testCube(t)
	counts := map[Kind]int{}
	c.Walk(func(n Node) bool {
		counts[n.Kind()]++
		return true
	})
	assert.Equal(t, map[Kind]int{KindSlice: 3, KindPoint: 4, KindLink: 3, KindBox: 1, KindLabel: 3}, counts)

	n := 0
	c.Walk(func(Node) bool {
		n++
		return n < 2
	})
	assert.Equal(t, 2, n)
}

func TestUpdateView(t *testing.T) {
	c, _, gl, css := testCube(t)
	c.UpdateView(ViewGeoCube)
	assert.Equal(t, 1, gl.attached[LayerGL])
	c.UpdateView(ViewNetCube)
	c.UpdateView(ViewPolyCube)
	assert.Equal(t, 3, gl.attached[LayerGL])
	assert.Equal(t, 3, css.attached[LayerCSS])
}

func TestUpdateTime(t *testing.T) {
	c, st, _, _ := testCube(t)
	a := mustPoint(t, c, "a")
	c.UpdateTime("absolute")
	assert.Equal(t, TimeAbsolute, c.State().TimeMode)
	want := st.TimeLinearScale().Map(a.Record.DateTime) - a.Slice().Pos.Y
	assert.InDelta(t, want, a.Pos.Y, 1e-3)
	assert.Equal(t, float32(250), a.Pos.X)

	c.UpdateTime("aggregated")
	assert.Equal(t, float32(0), a.Pos.Y)
}

func TestUpdateNumSlices(t *testing.T) {
	c, st, _, _ := testCube(t)
	a := mustPoint(t, c, "a")
	old := c.Slices()

	st.SetNumSlices(2)
	c.UpdateNumSlices()

	require.Len(t, c.Slices(), len(st.TimeRange()))
	assert.Len(t, c.Labels(), 2)
	assert.Nil(t, old[0].Label)
	assert.Len(t, c.Points(), 4)
	assert.Same(t, a, mustPoint(t, c, "a"))
	assert.Equal(t, "2019", a.Slice().Name)
	_, err := c.SliceByName("2020")
	assert.ErrorIs(t, err, ErrNotFound)

	total := 0
	for _, s := range c.Slices() {
		total += len(s.Points())
		assert.Equal(t, s, s.Label.Slice())
	}
	assert.Equal(t, 4, total)

	for _, l := range c.Links().Links {
		assert.Equal(t, l.SourcePoint.Slice().Pos.Y, l.Start.Y)
		assert.Equal(t, l.TargetPoint.Slice().Pos.Y, l.End.Y)
	}

	st.SetNumSlices(0)
	c.UpdateNumSlices()
	assert.Len(t, c.Slices(), 3)
	assert.Equal(t, "2020", a.Slice().Name)
}
