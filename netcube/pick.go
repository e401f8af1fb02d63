// Copyright (c) 2025, The NetCube Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package netcube

import (
	"sort"

	"cogentcore.org/core/math32"
	"github.com/polycube/netcube/data"
)

// PointerEvent is a pointer position in client coordinates.
type PointerEvent struct {
	ClientX, ClientY float32
}

// Viewport is the client-space rectangle of the host container.
type Viewport struct {
	Left, Top, Width, Height float32
}

// NDC returns the normalized device coordinate of ev within the viewport.
func (vp Viewport) NDC(ev PointerEvent) math32.Vector2 {
	var x, y float32
	if vp.Width > 0 {
		x = (ev.ClientX-vp.Left)/vp.Width*2 - 1
	}
	if vp.Height > 0 {
		y = -(ev.ClientY-vp.Top)/vp.Height*2 + 1
	}
	return math32.Vec2(x, y)
}

// Hit is a node intersected by a ray.
type Hit struct {
	Node Node

	// Point is where the ray enters the node's bounds.
	Point math32.Vector3

	// Dist is the distance from the ray origin to Point.
	Dist float32
}

// worldPos returns the world position of a point, false when it is not
// in any slice.
func (c *Cube) worldPos(p *Point) (math32.Vector3, bool) {
	if p.slice == nil {
		return math32.Vector3{}, false
	}
	return c.GL.Pos.Add(p.slice.Pos).Add(p.Pos), true
}

// WorldBBox returns the world bounding box of a slice, point or box.
// Links and labels have no pickable volume and return false, as do
// points outside every slice.
func (c *Cube) WorldBBox(n Node) (math32.Box3, bool) {
	var bb math32.Box3
	switch nd := n.(type) {
	case *Slice:
		sz := math32.Vec3(nd.Outline.Width, 0, nd.Outline.Height)
		bb.SetFromCenterAndSize(c.GL.Pos.Add(nd.Pos), sz)
	case *Point:
		pos, ok := c.worldPos(nd)
		if !ok {
			return bb, false
		}
		r := nd.Radius * max(nd.Scale.X, nd.Scale.Y, nd.Scale.Z)
		bb.SetFromCenterAndSize(pos, math32.Vec3(2*r, 2*r, 2*r))
	case *Box:
		bb.SetFromCenterAndSize(c.GL.Pos.Add(nd.Pos), nd.Size)
	case *Link, *Label:
		return bb, false
	}
	return bb, true
}

// visible reports whether n is drawn.
func (c *Cube) visible(n Node) bool {
	switch nd := n.(type) {
	case *Slice:
		return nd.Visible
	case *Point:
		return nd.Visible && nd.slice != nil && nd.slice.Visible
	case *Link:
		return nd.Visible && c.links.Visible
	case *Label:
		return nd.Visible && nd.Opacity > 0
	case *Box:
		return nd.Visible
	}
	return false
}

// Intersect returns the visible nodes whose bounds the ray crosses,
// nearest first.
func (c *Cube) Intersect(ray math32.Ray) []Hit {
	var hits []Hit
	c.Walk(func(n Node) bool {
		if !c.visible(n) {
			return true
		}
		bb, ok := c.WorldBBox(n)
		if !ok {
			return true
		}
		pt, has := ray.IntersectBox(bb)
		if !has {
			return true
		}
		hits = append(hits, Hit{Node: n, Point: pt, Dist: pt.DistanceTo(ray.Origin)})
		return true
	})
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Dist < hits[j].Dist
	})
	return hits
}

// Pick returns the record of the nearest visible point along the ray.
func (c *Cube) Pick(ray math32.Ray) (*data.Record, bool) {
	for _, h := range c.Intersect(ray) {
		if p, ok := h.Node.(*Point); ok {
			return p.Record, true
		}
	}
	return nil, false
}

// OnClick returns the record of the point under the pointer. When no
// point is hit it calls ResetSelection(false) and returns false.
func (c *Cube) OnClick(ev PointerEvent, vp Viewport) (*data.Record, bool) {
	if c.camera == nil {
		return nil, false
	}
	ray := c.camera.Ray(vp.NDC(ev))
	if rec, ok := c.Pick(ray); ok {
		return rec, true
	}
	c.ResetSelection(false)
	return nil, false
}
