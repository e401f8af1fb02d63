// Copyright (c) 2025, The NetCube Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package netcube

import (
	"fmt"
	"log/slog"

	"cogentcore.org/core/base/ordmap"
	"cogentcore.org/core/math32"
	"github.com/polycube/netcube/timescale"
)

// stackPos returns the stacked-layout position of slice i of n.
func (c *Cube) stackPos(i, n int) math32.Vector3 {
	w := c.Config.Width
	return math32.Vec3(w/2, float32(i)*(w/float32(n))-w/2, w/2)
}

// stackY returns the Y of s in the stacked layout, whatever layout the
// slice is in now.
func (c *Cube) stackY(s *Slice) float32 {
	return c.stackPos(s.Index, len(c.slices)).Y
}

// createSlices makes one slice and one label per time bucket.
func (c *Cube) createSlices() {
	buckets := c.dm.TimeRange()
	n := len(buckets)
	c.slices = make([]*Slice, 0, n)
	c.labels = make([]*Label, 0, n)
	c.sliceIndex = ordmap.New[string, *Slice]()
	w := c.Config.Width
	for i, b := range buckets {
		s := &Slice{Index: i, Bucket: b}
		s.init(timescale.Name(b))
		s.Pos = c.stackPos(i, n)
		s.Outline = Rect{Width: w, Height: c.Config.Height, Rot: math32.Vec3(math32.Pi/2, 0, 0), Color: c.gray}

		lb := &Label{Text: s.Name, Class: "time-slice-label", Opacity: 1, slice: s}
		lb.init(fmt.Sprintf("LABEL_%d", i))
		lb.SetPos(-c.Config.LabelOffset, s.Pos.Y, w/2)
		s.Label = lb

		c.slices = append(c.slices, s)
		c.labels = append(c.labels, lb)
		c.sliceIndex.Add(s.Name, s)
	}
}

// clearLabels removes every label from the overlay group.
func (c *Cube) clearLabels() {
	for _, lb := range c.labels {
		lb.slice = nil
	}
	c.labels = nil
}

// clearSlices removes every slice, stopping its tween and releasing
// its points.
func (c *Cube) clearSlices() {
	for _, s := range c.slices {
		c.animator.Cancel(s)
		for _, p := range s.points {
			p.slice = nil
		}
		s.points = nil
		s.Label = nil
	}
	c.slices = nil
	c.sliceIndex = nil
}

// UpdateNumSlices rebuilds every slice and label from the manager's
// current time range, moves each point into the slice of its date, and
// recomputes point and link positions. Slices are placed directly in the
// current layout. Points whose date has no slice stay out of the scene
// until a later rebuild provides one.
func (c *Cube) UpdateNumSlices() {
	c.timeScale = c.dm.TimeLinearScale()
	c.clearLabels()
	c.clearSlices()
	c.createSlices()
	c.placeLayout(c.state.Layout)
	c.updateDataPoints()
	c.updateLinkPositions()
	slog.Debug("netcube: rebuilt slices", "slices", len(c.slices), "points", len(c.points))
}
