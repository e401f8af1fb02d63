// Copyright (c) 2025, The NetCube Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package anim provides tick-driven tweens of [math32.Vector3] values.
// An [Animator] holds at most one active [Tween] per target: starting a
// new tween on a target cancels the one already running on it.
package anim

import (
	"time"

	"cogentcore.org/core/math32"
)

// Tween interpolates between From and To over Duration, after waiting Delay.
// It is advanced by [Animator.Step], which is usually called on every paint
// tick of the host.
type Tween struct {

	// From is the start value, typically the current value of the target.
	From math32.Vector3

	// To is the target value.
	To math32.Vector3

	// Duration is the length of the interpolation, not counting Delay.
	Duration time.Duration

	// Delay is the time to wait before the interpolation starts.
	Delay time.Duration

	// Ease maps linear progress in [0, 1] to eased progress. Nil means [Linear].
	Ease Easing

	// OnUpdate receives the interpolated value on every step after Delay.
	OnUpdate func(v math32.Vector3)

	// OnComplete is called once when the tween reaches To.
	// It is not called for a canceled tween.
	OnComplete func()

	// Elapsed is the total time this tween has been stepped, including Delay.
	Elapsed time.Duration

	// Done is set when the tween has finished or was canceled.
	Done bool
}

// Value returns the interpolated value for the current Elapsed time.
func (tw *Tween) Value() math32.Vector3 {
	return tw.From.Lerp(tw.To, tw.progress())
}

func (tw *Tween) progress() float32 {
	if tw.Duration <= 0 {
		if tw.Elapsed >= tw.Delay {
			return 1
		}
		return 0
	}
	if tw.Elapsed <= tw.Delay {
		return 0
	}
	t := math32.Clamp(float32(tw.Elapsed-tw.Delay)/float32(tw.Duration), 0, 1)
	ease := tw.Ease
	if ease == nil {
		ease = Linear
	}
	return ease(t)
}

// step advances the tween by delta and reports whether it finished.
func (tw *Tween) step(delta time.Duration) bool {
	if tw.Done {
		return true
	}
	tw.Elapsed += delta
	if tw.Elapsed < tw.Delay {
		return false
	}
	if tw.OnUpdate != nil {
		tw.OnUpdate(tw.Value())
	}
	if tw.Elapsed-tw.Delay >= tw.Duration {
		tw.Done = true
		if tw.OnComplete != nil {
			tw.OnComplete()
		}
		return true
	}
	return false
}
