// Copyright (c) 2025, The NetCube Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package netcube

import "cogentcore.org/core/math32"

// Camera casts picking rays into the scene.
type Camera interface {

	// Ray returns the world-space ray through the given normalized device
	// coordinate, where (-1, -1) is the bottom left of the viewport and
	// (1, 1) the top right.
	Ray(ndc math32.Vector2) math32.Ray
}

// PerspectiveCamera is a pinhole camera looking from Pos at Target.
type PerspectiveCamera struct {

	// Pos is the eye position.
	Pos math32.Vector3

	// Target is the point the camera looks at.
	Target math32.Vector3

	// Up is the approximate up direction.
	Up math32.Vector3

	// FOV is the vertical field of view in degrees.
	FOV float32

	// Aspect is the viewport width over its height.
	Aspect float32
}

// NewPerspectiveCamera returns a camera at pos looking at target with
// +Y up.
func NewPerspectiveCamera(pos, target math32.Vector3, fov, aspect float32) *PerspectiveCamera {
	return &PerspectiveCamera{Pos: pos, Target: target, Up: math32.Vec3(0, 1, 0), FOV: fov, Aspect: aspect}
}

func (pc *PerspectiveCamera) Ray(ndc math32.Vector2) math32.Ray {
	fwd := pc.Target.Sub(pc.Pos).Normal()
	right := fwd.Cross(pc.Up)
	if right.Length() == 0 {
		right = math32.Vec3(1, 0, 0)
	}
	right = right.Normal()
	up := right.Cross(fwd)
	th := math32.Tan(math32.DegToRad(pc.FOV) / 2)
	dir := fwd.Add(right.MulScalar(ndc.X * th * pc.Aspect)).Add(up.MulScalar(ndc.Y * th))
	return math32.Ray{Origin: pc.Pos, Dir: dir.Normal()}
}
