// Copyright (c) 2025, The NetCube Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package netcube provides a network cube: time-stamped, categorized
// records shown as points inside horizontal time slices stacked along
// the vertical axis, connected by links, and animated between stacked,
// juxtaposed and single-plane layouts.
//
// A [Cube] keeps an explicit scene model (slices, points, links, labels
// and a bounding box) derived from its [State]. A renderer such as
// package xyzcube mirrors that model; the host drives animations by
// calling [Cube.Step] on every frame.
package netcube

import (
	"image/color"
	"log/slog"
	"time"

	"cogentcore.org/core/base/ordmap"
	"cogentcore.org/core/math32"
	"github.com/polycube/netcube/anim"
	"github.com/polycube/netcube/colorscale"
	"github.com/polycube/netcube/data"
	"github.com/polycube/netcube/timescale"
)

// Manager supplies the data shown by a cube.
type Manager interface {

	// Records returns all records.
	Records() []*data.Record

	// RecordByID returns the record with the given id.
	RecordByID(id string) (*data.Record, bool)

	// TimeRange returns the bucket starts, one per slice, ascending.
	TimeRange() []time.Time

	// TimeQuantile returns the name of the bucket containing t, which is
	// the name of the slice holding records dated t.
	TimeQuantile(t time.Time) (string, bool)

	// TimeLinearScale maps dates onto the vertical axis.
	TimeLinearScale() timescale.Linear

	// MinDate and MaxDate bound the dates of all records.
	MinDate() time.Time
	MaxDate() time.Time

	// CategoryColor returns the categorical color of a category.
	CategoryColor(cat string) color.RGBA

	// LayoutPosition returns the planar layout position of a record.
	LayoutPosition(id string) (math32.Vector2, bool)

	// LayoutBounds returns the extent of all layout positions.
	LayoutBounds() data.Bounds
}

// Layer selects one of the cube's root groups.
type Layer int32

const (
	// LayerGL is the 3D group: slices, points, links and box.
	LayerGL Layer = iota

	// LayerCSS is the overlay group holding the slice labels.
	LayerCSS
)

// Container is a host scene the cube's root groups attach to.
// Attaching an already attached cube must be a no-op.
type Container interface {
	AttachCube(c *Cube, layer Layer)
}

// Cube is a network cube. It is not safe for concurrent use.
type Cube struct {

	// Config is the geometry and timing of the cube.
	Config Config

	// GL is the root of the 3D objects.
	GL *Group

	// CSS is the root of the overlay labels.
	CSS *Group

	dm        Manager
	camera    Camera
	glScene   Container
	cssScene  Container
	animator  *anim.Animator
	timeScale timescale.Linear
	temporal  *colorscale.SequentialScale
	gray      color.RGBA
	highlight color.RGBA

	slices     []*Slice
	sliceIndex *ordmap.Map[string, *Slice]
	labels     []*Label
	points     []*Point
	pointIndex map[string]*Point
	links      *LinkGroup
	box        *Box
	categories map[string]bool

	state State
}

// New returns a cube for the records of dm, built and attached to the
// given containers. cfg may be nil for the default configuration, and
// css may be nil, in which case the labels are built but not attached.
func New(cfg *Config, dm Manager, cam Camera, gl, css Container) *Cube {
	c := &Cube{dm: dm, camera: cam, glScene: gl, cssScene: css}
	if cfg != nil {
		c.Config = *cfg
	} else {
		c.Config.Defaults()
	}
	c.animator = anim.NewAnimator()
	c.state.Defaults()
	c.createObjects()
	c.assembleData()
	c.render()
	return c
}

// SetAnimator makes the cube start its tweens on an, typically one
// shared with the host. It must be called before any animation starts.
func (c *Cube) SetAnimator(an *anim.Animator) {
	c.animator = an
}

// Animator returns the animator running the cube's tweens.
func (c *Cube) Animator() *anim.Animator {
	return c.animator
}

// Step advances the cube's animations by delta.
func (c *Cube) Step(delta time.Duration) {
	c.animator.Step(delta)
}

// Manager returns the data manager of the cube.
func (c *Cube) Manager() Manager {
	return c.dm
}

// State returns a copy of the view state.
func (c *Cube) State() State {
	return c.state
}

func (c *Cube) createObjects() {
	c.gray = c.Config.grayColor()
	c.highlight = c.Config.highlightColor()
	c.GL = &Group{}
	c.GL.init("NET_CUBE")
	c.CSS = &Group{}
	c.CSS.init("NET_CUBE_CSS")
	c.createSlices()
	c.createBoundingBox()
}

func (c *Cube) assembleData() {
	c.categories = map[string]bool{}
	for _, r := range c.dm.Records() {
		c.categories[r.Category] = true
	}
	c.timeScale = c.dm.TimeLinearScale()
	c.createNodes()
	c.createLinks()
}

func (c *Cube) render() {
	off := c.Config.Offset()
	c.GL.SetPos(off, 0, 0)
	c.CSS.SetPos(off, 0, 0)
	c.attach()
}

func (c *Cube) attach() {
	if c.glScene != nil {
		c.glScene.AttachCube(c, LayerGL)
	}
	if c.cssScene != nil {
		c.cssScene.AttachCube(c, LayerCSS)
	}
}

func (c *Cube) createBoundingBox() {
	w := c.Config.Width
	c.box = &Box{Size: math32.Vec3(w, w, w), Color: c.gray}
	c.box.init("BOX_HELPER")
	c.box.SetPos(w/2, 0, w/2)
}

// Categories returns the set of categories of the records.
func (c *Cube) Categories() map[string]bool {
	return c.categories
}

// Slices returns the time slices, bottom first.
func (c *Cube) Slices() []*Slice {
	return c.slices
}

// Labels returns the slice labels in slice order.
func (c *Cube) Labels() []*Label {
	return c.labels
}

// Points returns every point, including points whose bucket currently
// has no slice.
func (c *Cube) Points() []*Point {
	return c.points
}

// Links returns the link group.
func (c *Cube) Links() *LinkGroup {
	return c.links
}

// Box returns the bounding box.
func (c *Cube) Box() *Box {
	return c.box
}

// GetCubePosition returns the world position of the cube.
func (c *Cube) GetCubePosition() math32.Vector3 {
	return c.GL.Pos
}

// Walk calls fn for every node: each slice followed by its points, then
// the links, the box and the labels. Returning false stops the walk.
func (c *Cube) Walk(fn func(n Node) bool) {
	for _, s := range c.slices {
		if !fn(s) {
			return
		}
		for _, p := range s.points {
			if !fn(p) {
				return
			}
		}
	}
	if c.links != nil {
		for _, l := range c.links.Links {
			if !fn(l) {
				return
			}
		}
	}
	if !fn(c.box) {
		return
	}
	for _, l := range c.labels {
		if !fn(l) {
			return
		}
	}
}

// OnDblClick does nothing; it exists for hosts dispatching every pointer
// event to every view.
func (c *Cube) OnDblClick(ev PointerEvent) {}

func logSkip(msg string, args ...any) {
	slog.Debug("netcube: "+msg, args...)
}
