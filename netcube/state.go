// Copyright (c) 2025, The NetCube Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package netcube

import (
	"time"

	"github.com/polycube/netcube/colorscale"
)

// Layout is an arrangement of the time slices.
type Layout int32

const (
	// LayoutSTC stacks the slices along the vertical axis (space-time cube).
	LayoutSTC Layout = iota

	// LayoutJP lays the slices side by side along the depth axis
	// (juxtaposed planes).
	LayoutJP

	// LayoutSI collapses all slices onto one plane (superimposed).
	LayoutSI

	// LayoutANI is reserved for an animated layout; it has no effect.
	LayoutANI
)

func (l Layout) String() string {
	switch l {
	case LayoutSTC:
		return "STC"
	case LayoutJP:
		return "JP"
	case LayoutSI:
		return "SI"
	case LayoutANI:
		return "ANI"
	}
	return "Unknown"
}

// TimeMode is how points are placed vertically within their slice.
type TimeMode int32

const (
	// TimeAggregated puts every point on its slice plane.
	TimeAggregated TimeMode = iota

	// TimeAbsolute offsets every point by its date on the time scale.
	TimeAbsolute
)

// ParseTimeMode returns [TimeAggregated] for "aggregated" and
// [TimeAbsolute] for anything else.
func ParseTimeMode(s string) TimeMode {
	if s == "aggregated" {
		return TimeAggregated
	}
	return TimeAbsolute
}

func (m TimeMode) String() string {
	if m == TimeAggregated {
		return "aggregated"
	}
	return "absolute"
}

// NodeFilter selects the visible points.
type NodeFilter struct {

	// Active is false when every point is visible.
	Active bool

	// Category restricts points to one category; empty matches all.
	Category string

	// Start and End bound point dates, inclusive.
	Start, End time.Time
}

// Match reports whether a record with the given category and date passes.
func (f NodeFilter) Match(cat string, t time.Time) bool {
	if !f.Active {
		return true
	}
	return InInterval(t, f.Start, f.End) && (f.Category == "" || f.Category == cat)
}

// LinkFilter selects the visible links.
type LinkFilter struct {

	// Active is false when every link is visible.
	Active bool

	// Start and End bound both endpoint dates, inclusive.
	Start, End time.Time
}

// Match reports whether a link between records dated a and b passes.
func (f LinkFilter) Match(a, b time.Time) bool {
	if !f.Active {
		return true
	}
	return InInterval(a, f.Start, f.End) && InInterval(b, f.Start, f.End)
}

// InInterval reports whether start <= t <= end.
func InInterval(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

// State is the view state a cube's visuals are derived from.
type State struct {

	// Layout is the current, or currently animating, slice layout.
	Layout Layout

	// Encoding is the active point color encoding.
	Encoding colorscale.Encoding

	// TimeMode is the vertical placement of points in their slices.
	TimeMode TimeMode

	// NodeRadius is the last radius passed to [Cube.UpdateNodeSize].
	NodeRadius float32

	// NodeFilter selects visible points.
	NodeFilter NodeFilter

	// LinkFilter selects visible links.
	LinkFilter LinkFilter

	// Highlighted is the id of the highlighted point, if any.
	Highlighted string
}

// Defaults sets the initial state: stacked, categorical, aggregated,
// nothing filtered or highlighted.
func (st *State) Defaults() {
	*st = State{Layout: LayoutSTC, Encoding: colorscale.Categorical, TimeMode: TimeAggregated}
}
