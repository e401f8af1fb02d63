// Copyright (c) 2025, The NetCube Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package netcube

import (
	"time"

	"cogentcore.org/core/math32"
	"github.com/polycube/netcube/anim"
)

// TransitionSTC animates the slices into the stacked space-time cube and
// shows the links and the bounding box.
func (c *Cube) TransitionSTC() {
	c.transition(LayoutSTC)
}

// TransitionJP animates the slices side by side along the depth axis and
// hides the links and the bounding box.
func (c *Cube) TransitionJP() {
	c.transition(LayoutJP)
}

// TransitionSI animates every slice onto one plane and hides the links
// and the bounding box. Each label fades out when its slice arrives.
func (c *Cube) TransitionSI() {
	c.transition(LayoutSI)
}

// TransitionANI is reserved for an animated layout and does nothing.
func (c *Cube) TransitionANI() {}

// layoutTarget returns where slice s goes in layout l.
func (c *Cube) layoutTarget(l Layout, s *Slice) math32.Vector3 {
	w, h := c.Config.Width, c.Config.Height
	switch l {
	case LayoutJP:
		return math32.Vec3(s.Pos.X, -h/2, float32(s.Index)*(h+c.Config.JPGap)-w/2)
	case LayoutSI:
		return math32.Vec3(w/2, -h/2, w/2)
	default:
		return c.stackPos(s.Index, len(c.slices))
	}
}

// setDecorations shows the links and the box only in the stacked layout.
func (c *Cube) setDecorations(l Layout) {
	stc := l == LayoutSTC
	c.links.Visible = stc
	c.box.Visible = stc
}

// placeLabel moves the label of s beside target, for layouts that show
// labels during the transition.
func (c *Cube) placeLabel(l Layout, s *Slice, target math32.Vector3) {
	lb := s.Label
	if lb == nil || l == LayoutSI {
		return
	}
	lb.Opacity = 1
	lb.SetPos(target.X-c.Config.Width/2-c.Config.LabelGap, target.Y, target.Z)
	if l == LayoutJP {
		lb.SetRot(-math32.Pi/2, 0, 0)
	} else {
		lb.SetRot(0, 0, 0)
	}
}

// transition records l as the current layout and starts one tween per
// slice, delayed by its index. A tween still running on a slice from an
// earlier transition is replaced, starting from where the slice is now.
func (c *Cube) transition(l Layout) {
	c.state.Layout = l
	c.setDecorations(l)
	dur := c.Config.TransitionDuration()
	stagger := c.Config.Stagger()
	for _, s := range c.slices {
		target := c.layoutTarget(l, s)
		c.placeLabel(l, s, target)
		tw := &anim.Tween{
			From:     s.Pos,
			To:       target,
			Duration: dur,
			Delay:    time.Duration(s.Index) * stagger,
			Ease:     anim.CubicInOut,
			OnUpdate: func(v math32.Vector3) { s.Pos = v },
		}
		if l == LayoutSI {
			tw.OnComplete = func() {
				if s.Label != nil {
					s.Label.Opacity = 0
				}
			}
		}
		c.animator.Start(s, tw)
	}
}

// placeLayout puts the slices and labels of a freshly built stack
// directly in layout l, without animation.
func (c *Cube) placeLayout(l Layout) {
	c.setDecorations(l)
	for _, s := range c.slices {
		target := c.layoutTarget(l, s)
		s.Pos = target
		if l == LayoutSTC {
			continue
		}
		c.placeLabel(l, s, target)
		if l == LayoutSI && s.Label != nil {
			s.Label.Opacity = 0
		}
	}
}
