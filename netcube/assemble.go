// Copyright (c) 2025, The NetCube Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package netcube

import "cogentcore.org/core/math32"

// NormalizedPosition returns the layout position of the record with the
// given id scaled into cube units: X from the layout x and Z from the
// layout y, both scaled by Width over the extent of the layout. Y is 0.
func (c *Cube) NormalizedPosition(id string) (math32.Vector3, bool) {
	p, ok := c.dm.LayoutPosition(id)
	if !ok {
		return math32.Vector3{}, false
	}
	b := c.dm.LayoutBounds()
	w := c.Config.Width
	var x, z float32
	if sx := math32.Abs(b.MaxX - b.MinX); sx > 0 {
		x = p.X * w / sx
	}
	if sy := math32.Abs(b.MaxY - b.MinY); sy > 0 {
		z = p.Y * w / sy
	}
	return math32.Vec3(x, 0, z), true
}

// createNodes makes a point for every record with a layout position and
// a slice, and skips the others.
func (c *Cube) createNodes() {
	recs := c.dm.Records()
	c.points = make([]*Point, 0, len(recs))
	c.pointIndex = make(map[string]*Point, len(recs))
	for _, r := range recs {
		pos, ok := c.NormalizedPosition(r.ID)
		if !ok {
			logSkip("no layout position, skipping point", "id", r.ID)
			continue
		}
		s, err := c.FindTimeSlice(r.DateTime)
		if err != nil {
			logSkip("no slice, skipping point", "id", r.ID, "err", err)
			continue
		}
		p := &Point{Record: r, Radius: c.Config.NodeSize}
		p.init(r.ID)
		p.Pos = pos
		c.addToSlice(p, s)
		p.Color = c.colorFor(p)
		c.points = append(c.points, p)
		c.pointIndex[r.ID] = p
	}
}

func (c *Cube) addToSlice(p *Point, s *Slice) {
	p.slice = s
	s.points = append(s.points, p)
	p.Pos.Y = c.pointY(p)
}

// updateDataPoints moves every existing point into the slice of its date.
func (c *Cube) updateDataPoints() {
	for _, p := range c.points {
		s, err := c.FindTimeSlice(p.Record.DateTime)
		if err != nil {
			logSkip("no slice, detaching point", "id", p.Record.ID, "err", err)
			p.slice = nil
			continue
		}
		c.addToSlice(p, s)
	}
}

// pointY returns the vertical offset of p within its slice for the
// current time mode, relative to the stacked position of the slice.
func (c *Cube) pointY(p *Point) float32 {
	if c.state.TimeMode == TimeAggregated || p.slice == nil {
		return 0
	}
	return c.timeScale.Map(p.Record.DateTime) - c.stackY(p.slice)
}

// UpdateTime sets the time mode: "aggregated" puts every point on its
// slice plane, anything else offsets it by its date on the time scale.
func (c *Cube) UpdateTime(mode string) {
	c.state.TimeMode = ParseTimeMode(mode)
	for _, s := range c.slices {
		for _, p := range s.points {
			p.Pos.Y = c.pointY(p)
		}
	}
}

// createLinks makes up to LinksPerNode links from every record to its
// first targets. Links whose endpoints have no layout position or slice
// are skipped.
func (c *Cube) createLinks() {
	c.links = &LinkGroup{}
	c.links.init("LINKS")
	per := c.Config.LinksPerNode
	for _, r := range c.dm.Records() {
		sp, ok := c.pointIndex[r.ID]
		if !ok {
			continue
		}
		for a := 0; a < per && a < len(r.TargetNodes); a++ {
			tid := r.TargetNodes[a]
			tp, ok := c.pointIndex[tid]
			if !ok {
				logSkip("link target has no point, skipping link", "source", r.ID, "target", tid)
				continue
			}
			l := &Link{Source: r, Target: tp.Record, SourcePoint: sp, TargetPoint: tp, Color: c.gray, Opacity: c.Config.LinkOpacity}
			l.init(r.ID + "_" + tid)
			c.links.Links = append(c.links.Links, l)
		}
	}
	c.updateLinkPositions()
}

// linkEnd returns the root-group position of a link endpoint at p, at
// the height of its slice in the stacked layout.
func (c *Cube) linkEnd(p *Point) (math32.Vector3, bool) {
	if p.slice == nil {
		return math32.Vector3{}, false
	}
	half := c.Config.Width / 2
	return math32.Vec3(p.Pos.X+half, c.stackY(p.slice), p.Pos.Z+half), true
}

// updateLinkPositions recomputes link endpoints from the current slices.
// Links with an endpoint outside every slice are hidden.
func (c *Cube) updateLinkPositions() {
	for _, l := range c.links.Links {
		st, sok := c.linkEnd(l.SourcePoint)
		en, eok := c.linkEnd(l.TargetPoint)
		l.Start, l.End = st, en
		l.Visible = sok && eok && c.state.LinkFilter.Match(l.Source.DateTime, l.Target.DateTime)
	}
}
