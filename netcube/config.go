// Copyright (c) 2025, The NetCube Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package netcube

import (
	"image/color"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/iox/tomlx"
	"github.com/polycube/netcube/colorscale"
)

// Config holds the geometry and timing of a cube.
type Config struct {

	// Width is the side of the cube along X and Z, and the span of the
	// slice stack along Y.
	Width float32 `default:"500"`

	// Height is the depth of each slice outline, and the reference for
	// the stacked and juxtaposed layouts.
	Height float32 `default:"500"`

	// Gutter is the space between cubes placed side by side.
	Gutter float32 `default:"50"`

	// Column is the side-by-side position of this cube; the root groups
	// sit at X = (Width+Gutter)*Column.
	Column int `default:"2"`

	// NodeSize is the radius of a point at scale 1.
	NodeSize float32 `default:"2"`

	// LinksPerNode is how many of each record's targets get a link.
	LinksPerNode int `default:"1"`

	// LabelOffset is how far left of the cube slice labels start.
	LabelOffset float32 `default:"20"`

	// LabelGap is how far left of a slice its label sits after a transition.
	LabelGap float32 `default:"22"`

	// JPGap is the space between slices in the juxtaposed layout.
	JPGap float32 `default:"20"`

	// TransitionMillis is the duration of each slice's layout tween.
	TransitionMillis int `default:"1000"`

	// StaggerMillis delays the tween of slice i by i*StaggerMillis.
	StaggerMillis int `default:"300"`

	// SizeMillis is the duration of the point size tween.
	SizeMillis int `default:"250"`

	// Gray is the monochrome, dimmed, outline and link color.
	Gray string `default:"#b5b5b5"`

	// Highlight is the color of a highlighted point.
	Highlight string `default:"#ff0000"`

	// LinkOpacity is the opacity of link lines.
	LinkOpacity float32 `default:"0.75"`
}

// Defaults sets the default configuration.
func (c *Config) Defaults() {
	c.Width = 500
	c.Height = 500
	c.Gutter = 50
	c.Column = 2
	c.NodeSize = 2
	c.LinksPerNode = 1
	c.LabelOffset = 20
	c.LabelGap = 22
	c.JPGap = 20
	c.TransitionMillis = 1000
	c.StaggerMillis = 300
	c.SizeMillis = 250
	c.Gray = "#b5b5b5"
	c.Highlight = "#ff0000"
	c.LinkOpacity = 0.75
}

// OpenConfig returns the default configuration with the values set in
// the given TOML file applied on top.
func OpenConfig(filename string) (*Config, error) {
	c := &Config{}
	c.Defaults()
	if err := tomlx.Open(c, filename); err != nil {
		return nil, err
	}
	return c, nil
}

// TransitionDuration returns TransitionMillis as a duration.
func (c *Config) TransitionDuration() time.Duration {
	return time.Duration(c.TransitionMillis) * time.Millisecond
}

// Stagger returns StaggerMillis as a duration.
func (c *Config) Stagger() time.Duration {
	return time.Duration(c.StaggerMillis) * time.Millisecond
}

// SizeDuration returns SizeMillis as a duration.
func (c *Config) SizeDuration() time.Duration {
	return time.Duration(c.SizeMillis) * time.Millisecond
}

// Offset returns the X position of the root groups.
func (c *Config) Offset() float32 {
	return (c.Width + c.Gutter) * float32(c.Column)
}

// grayColor parses Gray, logging and falling back to [colorscale.Gray].
func (c *Config) grayColor() color.RGBA {
	clr, err := colorscale.ParseHex(c.Gray)
	if errors.Log(err) != nil {
		return colorscale.Gray
	}
	return clr
}

// highlightColor parses Highlight, logging and falling back to [colorscale.Highlight].
func (c *Config) highlightColor() color.RGBA {
	clr, err := colorscale.ParseHex(c.Highlight)
	if errors.Log(err) != nil {
		return colorscale.Highlight
	}
	return clr
}
