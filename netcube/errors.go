// Copyright (c) 2025, The NetCube Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package netcube

import (
	"fmt"
	"time"

	"cogentcore.org/core/base/errors"
)

// ErrNotFound is returned when a point or slice does not exist.
var ErrNotFound = errors.New("not found")

// PointByID returns the point of the record with the given id.
func (c *Cube) PointByID(id string) (*Point, error) {
	p, ok := c.pointIndex[id]
	if !ok {
		return nil, fmt.Errorf("netcube: point %q: %w", id, ErrNotFound)
	}
	return p, nil
}

// SliceByName returns the slice with the given name.
func (c *Cube) SliceByName(name string) (*Slice, error) {
	s, ok := c.sliceIndex.ValueByKeyTry(name)
	if !ok {
		return nil, fmt.Errorf("netcube: slice %q: %w", name, ErrNotFound)
	}
	return s, nil
}

// FindTimeSlice returns the slice holding records dated t.
func (c *Cube) FindTimeSlice(t time.Time) (*Slice, error) {
	name, ok := c.dm.TimeQuantile(t)
	if !ok {
		return nil, fmt.Errorf("netcube: no time bucket for %s: %w", t.Format(time.DateOnly), ErrNotFound)
	}
	return c.SliceByName(name)
}
