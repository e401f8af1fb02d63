// Copyright (c) 2025, The NetCube Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyzcube

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/core/xyz"
	"github.com/polycube/netcube/netcube"
)

// Camera casts picking rays from the current camera of an xyz scene,
// following it as the user navigates.
type Camera struct {
	Scene *xyz.Scene
}

// Perspective returns the scene camera as a [netcube.PerspectiveCamera].
// An unset field of view or aspect ratio falls back to 30 degrees and 1.
func (c Camera) Perspective() *netcube.PerspectiveCamera {
	cam := &c.Scene.Camera
	pc := netcube.NewPerspectiveCamera(cam.Pose.Pos, cam.Target, cam.FOV, cam.Aspect)
	if cam.UpDir != (math32.Vector3{}) {
		pc.Up = cam.UpDir
	}
	if pc.FOV <= 0 {
		pc.FOV = 30
	}
	if pc.Aspect <= 0 {
		pc.Aspect = 1
	}
	return pc
}

func (c Camera) Ray(ndc math32.Vector2) math32.Ray {
	return c.Perspective().Ray(ndc)
}
