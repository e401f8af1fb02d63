// Copyright (c) 2025, The NetCube Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package netcube

// View is a view of the host application.
type View int32

const (
	ViewPolyCube View = iota
	ViewNetCube
	ViewGeoCube
	ViewSetCube
)

func (v View) String() string {
	switch v {
	case ViewPolyCube:
		return "PolyCube"
	case ViewNetCube:
		return "NetCube"
	case ViewGeoCube:
		return "GeoCube"
	case ViewSetCube:
		return "SetCube"
	}
	return "Unknown"
}

// UpdateView re-attaches the cube's groups to the host containers when
// the host switches to a view that shows the network cube.
func (c *Cube) UpdateView(v View) {
	if v == ViewNetCube || v == ViewPolyCube {
		c.attach()
	}
}
