// Copyright (c) 2025, The NetCube Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package netcube

import "time"

// FilterData shows exactly the points dated within [start, end] whose
// category is cat, or any category when cat is empty. Links are not
// affected.
func (c *Cube) FilterData(cat string, start, end time.Time) {
	c.state.NodeFilter = NodeFilter{Active: true, Category: cat, Start: start, End: end}
	c.applyNodeFilter()
}

// FilterDataByDatePeriod shows exactly the points dated within
// [start, end], and the links whose two records are both dated within it.
func (c *Cube) FilterDataByDatePeriod(start, end time.Time) {
	c.state.NodeFilter = NodeFilter{Active: true, Start: start, End: end}
	c.state.LinkFilter = LinkFilter{Active: true, Start: start, End: end}
	c.applyNodeFilter()
	c.applyLinkFilter()
}

// ResetCategorySelection clears both filters, showing every point and link.
func (c *Cube) ResetCategorySelection() {
	c.state.NodeFilter = NodeFilter{}
	c.state.LinkFilter = LinkFilter{}
	c.applyNodeFilter()
	c.applyLinkFilter()
}

func (c *Cube) applyNodeFilter() {
	f := c.state.NodeFilter
	for _, p := range c.points {
		p.Visible = f.Match(p.Record.Category, p.Record.DateTime)
	}
}

func (c *Cube) applyLinkFilter() {
	c.updateLinkPositions()
}
