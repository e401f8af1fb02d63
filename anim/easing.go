// Copyright (c) 2025, The NetCube Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

// Easing maps linear progress in [0, 1] to eased progress.
type Easing func(t float32) float32

// Linear is the identity easing.
func Linear(t float32) float32 {
	return t
}

// CubicIn accelerates from zero velocity.
func CubicIn(t float32) float32 {
	return t * t * t
}

// CubicOut decelerates to zero velocity.
func CubicOut(t float32) float32 {
	t--
	return t*t*t + 1
}

// CubicInOut accelerates until halfway, then decelerates.
func CubicInOut(t float32) float32 {
	t *= 2
	if t < 1 {
		return 0.5 * t * t * t
	}
	t -= 2
	return 0.5 * (t*t*t + 2)
}
