// Copyright (c) 2025, The NetCube Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xyzcube renders a [netcube.Cube] into an [xyz.Scene].
//
// A [Renderer] is the [netcube.Container] of both cube layers. It keeps
// one xyz group per slice, a sphere solid per visible point, line solids
// for the slice outlines, the links and the bounding box, and a Text2D
// per visible label. [Renderer.Update] copies the poses and colors of the
// cube model onto those nodes, and rebuilds them when the set of drawn
// nodes changes.
package xyzcube

import (
	"image/color"
	"log/slog"
	"slices"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/xyz"
	"github.com/polycube/netcube/netcube"
)

// mesh names
const (
	pointMesh = "netcube-point"
	boxMesh   = "netcube-box"
)

// Renderer mirrors a cube into an xyz scene.
type Renderer struct {

	// Scene is the scene the cube is drawn in.
	Scene *xyz.Scene

	// LineWidth is the width of slice outlines, links and the box.
	LineWidth float32

	// LabelScale is the scale of the slice label text.
	LabelScale float32

	cube   *netcube.Cube
	layers map[netcube.Layer]*xyz.Group
	groups map[*netcube.Slice]*xyz.Group
	solids map[netcube.Node]*xyz.Solid
	labels map[*netcube.Label]*xyz.Text2D
	drawn  []drawnNode
}

// drawnNode records one node considered by the last rebuild.
type drawnNode struct {
	node    netcube.Node
	visible bool
}

// New returns a renderer drawing into sc.
func New(sc *xyz.Scene) *Renderer {
	return &Renderer{
		Scene:      sc,
		LineWidth:  1,
		LabelScale: 10,
		layers:     map[netcube.Layer]*xyz.Group{},
	}
}

// AttachCube adds the root group of the given layer to the scene.
// Attaching a layer that is already attached does nothing.
func (r *Renderer) AttachCube(c *netcube.Cube, layer netcube.Layer) {
	if r.cube != c {
		r.reset()
		r.cube = c
	}
	if _, ok := r.layers[layer]; ok {
		return
	}
	gp := xyz.NewGroup(r.Scene)
	switch layer {
	case netcube.LayerGL:
		gp.SetName(c.GL.Name)
	case netcube.LayerCSS:
		gp.SetName(c.CSS.Name)
	}
	r.layers[layer] = gp
	r.drawn = nil
	slog.Debug("xyzcube: attached layer", "layer", layer)
}

// reset removes every group of a previously attached cube.
func (r *Renderer) reset() {
	for _, gp := range r.layers {
		gp.Delete()
	}
	r.layers = map[netcube.Layer]*xyz.Group{}
	r.drawn = nil
}

// Cube returns the attached cube, or nil.
func (r *Renderer) Cube() *netcube.Cube {
	return r.cube
}

// Group returns the root group of a layer, or nil when it is not attached.
func (r *Renderer) Group(layer netcube.Layer) *xyz.Group {
	return r.layers[layer]
}

// Solid returns the solid drawing n, which is nil when n is not drawn.
func (r *Renderer) Solid(n netcube.Node) *xyz.Solid {
	if lb, ok := n.(*netcube.Label); ok {
		if txt := r.labels[lb]; txt != nil {
			return &txt.Solid
		}
		return nil
	}
	return r.solids[n]
}

// Update brings the scene in line with the cube. It reports whether the
// scene nodes were rebuilt, in which case the scene needs a full update
// rather than a render.
func (r *Renderer) Update() bool {
	if r.cube == nil {
		return false
	}
	cur := r.snapshot()
	rebuilt := false
	if !slices.Equal(cur, r.drawn) {
		r.rebuild()
		r.drawn = cur
		rebuilt = true
	}
	r.sync()
	if rebuilt {
		r.Scene.SetNeedsUpdate()
	} else {
		r.Scene.SetNeedsRender()
	}
	return rebuilt
}

// snapshot lists every node of the cube with whether it is drawn.
func (r *Renderer) snapshot() []drawnNode {
	c := r.cube
	var ds []drawnNode
	c.Walk(func(n netcube.Node) bool {
		ds = append(ds, drawnNode{n, drawn(c, n)})
		return true
	})
	ds = append(ds, drawnNode{nil, c.Links().Visible})
	return ds
}

func drawn(c *netcube.Cube, n netcube.Node) bool {
	switch nd := n.(type) {
	case *netcube.Point:
		return nd.Visible && nd.Slice() != nil
	case *netcube.Link:
		return nd.Visible && c.Links().Visible
	case *netcube.Label:
		return nd.Visible && nd.Opacity > 0
	}
	return n.AsBase().Visible
}

// rebuild recreates every scene node below the layer groups.
func (r *Renderer) rebuild() {
	c := r.cube
	r.groups = map[*netcube.Slice]*xyz.Group{}
	r.solids = map[netcube.Node]*xyz.Solid{}
	r.labels = map[*netcube.Label]*xyz.Text2D{}
	if gl := r.layers[netcube.LayerGL]; gl != nil {
		gl.DeleteChildren()
		r.buildGL(c, gl)
	}
	if css := r.layers[netcube.LayerCSS]; css != nil {
		css.DeleteChildren()
		r.buildCSS(c, css)
	}
	slog.Debug("xyzcube: rebuilt scene", "solids", len(r.solids), "labels", len(r.labels))
}

func (r *Renderer) buildGL(c *netcube.Cube, gl *xyz.Group) {
	sphere := xyz.NewSphere(r.Scene, pointMesh, 1, 16)
	for _, s := range c.Slices() {
		sg := xyz.NewGroup(gl)
		sg.SetName(s.Name)
		r.groups[s] = sg
		if !s.Visible {
			continue
		}
		r.solids[s] = r.newOutline(sg, s)
		for _, p := range s.Points() {
			if !drawn(c, p) {
				continue
			}
			sld := xyz.NewSolid(sg).SetMesh(sphere)
			sld.SetName(p.Name)
			r.solids[p] = sld
		}
	}
	lg := xyz.NewGroup(gl)
	lg.SetName(c.Links().Name)
	for _, l := range c.Links().Links {
		if !drawn(c, l) {
			continue
		}
		ms := xyz.NewLines(r.Scene, "netcube-link-"+l.Name, []math32.Vector3{l.Start, l.End}, math32.Vec2(r.LineWidth, r.LineWidth), xyz.OpenLines)
		sld := xyz.NewSolid(lg).SetMesh(ms)
		sld.SetName(l.Name)
		r.solids[l] = sld
	}
	if b := c.Box(); b.Visible {
		ms := xyz.NewLines(r.Scene, boxMesh, boxEdges(b.Size), math32.Vec2(r.LineWidth, r.LineWidth), xyz.OpenLines)
		sld := xyz.NewSolid(gl).SetMesh(ms)
		sld.SetName(b.Name)
		r.solids[b] = sld
	}
}

// newOutline adds the outline of s to its group. The outline is drawn
// in the XY plane and turned by the slice's outline rotation.
func (r *Renderer) newOutline(sg *xyz.Group, s *netcube.Slice) *xyz.Solid {
	w, h := s.Outline.Width/2, s.Outline.Height/2
	pts := []math32.Vector3{
		math32.Vec3(-w, -h, 0), math32.Vec3(w, -h, 0),
		math32.Vec3(w, h, 0), math32.Vec3(-w, h, 0),
	}
	ms := xyz.NewLines(r.Scene, "netcube-slice-"+s.Name, pts, math32.Vec2(r.LineWidth, r.LineWidth), xyz.CloseLines)
	sld := xyz.NewSolid(sg).SetMesh(ms).SetColor(s.Outline.Color)
	sld.SetName("outline")
	rot := s.Outline.Rot
	sld.SetEulerRotation(math32.RadToDeg(rot.X), math32.RadToDeg(rot.Y), math32.RadToDeg(rot.Z))
	return sld
}

// boxEdges returns a path along all twelve edges of a box of the given
// size centered on the origin.
func boxEdges(size math32.Vector3) []math32.Vector3 {
	x, y, z := size.X/2, size.Y/2, size.Z/2
	b := [4]math32.Vector3{{-x, -y, -z}, {x, -y, -z}, {x, -y, z}, {-x, -y, z}}
	t := [4]math32.Vector3{{-x, y, -z}, {x, y, -z}, {x, y, z}, {-x, y, z}}
	return []math32.Vector3{
		b[0], b[1], b[2], b[3], b[0],
		t[0], t[1], b[1], t[1],
		t[2], b[2], t[2],
		t[3], b[3], t[3], t[0],
	}
}

func (r *Renderer) buildCSS(c *netcube.Cube, css *xyz.Group) {
	for _, lb := range c.Labels() {
		if !drawn(c, lb) {
			continue
		}
		txt := xyz.NewText2D(css).SetText(lb.Text)
		txt.SetName(lb.Name)
		r.labels[lb] = txt
	}
}

// sync copies poses and colors from the cube onto the scene nodes.
func (r *Renderer) sync() {
	c := r.cube
	for l, gp := range r.layers {
		var pos math32.Vector3
		if l == netcube.LayerGL {
			pos = c.GL.Pos
		} else {
			pos = c.CSS.Pos
		}
		gp.SetPos(pos.X, pos.Y, pos.Z)
	}
	for s, sg := range r.groups {
		sg.SetPos(s.Pos.X, s.Pos.Y, s.Pos.Z)
	}
	for n, sld := range r.solids {
		switch nd := n.(type) {
		case *netcube.Point:
			sc := nd.Radius * max(nd.Scale.X, nd.Scale.Y, nd.Scale.Z)
			sld.SetPos(nd.Pos.X, nd.Pos.Y, nd.Pos.Z).SetScale(sc, sc, sc).SetColor(nd.Color)
		case *netcube.Link:
			sld.SetColor(withOpacity(nd.Color, nd.Opacity))
		case *netcube.Box:
			sld.SetPos(nd.Pos.X, nd.Pos.Y, nd.Pos.Z).SetColor(nd.Color)
		}
	}
	for lb, txt := range r.labels {
		txt.SetPos(lb.Pos.X, lb.Pos.Y, lb.Pos.Z)
		txt.SetScale(r.LabelScale, r.LabelScale, r.LabelScale)
		txt.SetEulerRotation(math32.RadToDeg(lb.Rot.X), math32.RadToDeg(lb.Rot.Y), math32.RadToDeg(lb.Rot.Z))
		txt.SetColor(withOpacity(colors.White, lb.Opacity))
	}
}

// withOpacity returns c with its alpha set to opacity in [0, 1].
func withOpacity(c color.RGBA, opacity float32) color.RGBA {
	c.A = uint8(math32.Clamp(opacity, 0, 1)*255 + 0.5)
	return c
}
