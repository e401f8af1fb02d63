// Copyright (c) 2025, The NetCube Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package netcube

import (
	"image/color"

	"cogentcore.org/core/math32"
	"github.com/polycube/netcube/anim"
	"github.com/polycube/netcube/colorscale"
)

// UpdateColorCoding sets the color encoding named by mode: "categorical",
// "temporal" or "monochrome"; anything else is categorical. Points keep
// their colors until [Cube.UpdateNodeColor] or [Cube.ResetSelection].
func (c *Cube) UpdateColorCoding(mode string) colorscale.Encoding {
	enc := colorscale.ParseEncoding(mode)
	c.state.Encoding = enc
	if enc == colorscale.Temporal {
		c.temporal = colorscale.NewViridis(c.dm.MinDate(), c.dm.MaxDate())
	}
	return enc
}

// UpdateNodeColor sets the color encoding and recolors every point.
func (c *Cube) UpdateNodeColor(mode string) {
	c.UpdateColorCoding(mode)
	for _, p := range c.points {
		p.Color = c.colorFor(p)
	}
}

// colorFor returns the color of p under the current encoding.
func (c *Cube) colorFor(p *Point) color.RGBA {
	switch c.state.Encoding {
	case colorscale.Temporal:
		if c.temporal == nil {
			c.temporal = colorscale.NewViridis(c.dm.MinDate(), c.dm.MaxDate())
		}
		return c.temporal.Color(p.Record.DateTime)
	case colorscale.Monochrome:
		return c.gray
	default:
		return c.dm.CategoryColor(p.Record.Category)
	}
}

// GetCurrentColor returns the #rrggbb color of p under the current encoding.
func (c *Cube) GetCurrentColor(p *Point) string {
	return colorscale.Hex(c.colorFor(p))
}

// UpdateNodeSize animates the scale of every point to 1 + radius*0.1.
// A size animation already running on a point is replaced.
func (c *Cube) UpdateNodeSize(radius float32) {
	c.state.NodeRadius = radius
	s := 1 + radius*0.1
	target := math32.Vec3(s, s, s)
	for _, p := range c.points {
		c.animator.Start(p, &anim.Tween{
			From:     p.Scale,
			To:       target,
			Duration: c.Config.SizeDuration(),
			Ease:     anim.CubicInOut,
			OnUpdate: func(v math32.Vector3) { p.Scale = v },
		})
	}
}

// ResetSelection restores every point to scale 1, colored gray when gray
// is true and by the current encoding otherwise. Running size animations
// are stopped.
func (c *Cube) ResetSelection(gray bool) {
	c.state.Highlighted = ""
	for _, p := range c.points {
		c.animator.Cancel(p)
		p.SetScale(1, 1, 1)
		if gray {
			p.Color = c.gray
		} else {
			p.Color = c.colorFor(p)
		}
	}
}

// HighlightObject dims every point, then colors the point of the record
// with the given id with the highlight color at double scale.
// It returns [ErrNotFound] when there is no such point; every point is
// dimmed regardless.
func (c *Cube) HighlightObject(id string) error {
	c.ResetSelection(true)
	p, err := c.PointByID(id)
	if err != nil {
		return err
	}
	p.Color = c.highlight
	p.SetScale(2, 2, 2)
	c.state.Highlighted = id
	return nil
}
