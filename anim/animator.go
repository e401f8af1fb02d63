// Copyright (c) 2025, The NetCube Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import "time"

// Animator runs tweens keyed by target. Targets are compared with ==,
// so pointers to the animated objects are the usual keys; a target can
// be any comparable value, for example a struct of a pointer and a
// property name when one object has several animated properties.
//
// An Animator is not safe for concurrent use: it is meant to be stepped
// from the same goroutine that starts tweens.
type Animator struct {
	tweens  map[any]*Tween
	targets []any
}

// NewAnimator returns a new empty [Animator].
func NewAnimator() *Animator {
	return &Animator{tweens: map[any]*Tween{}}
}

// Start registers tw for target, canceling any tween already running on
// that target. The canceled tween is marked Done and its OnComplete is not
// called.
func (an *Animator) Start(target any, tw *Tween) *Tween {
	if an.tweens == nil {
		an.tweens = map[any]*Tween{}
	}
	if old, ok := an.tweens[target]; ok {
		old.Done = true
	} else {
		an.targets = append(an.targets, target)
	}
	an.tweens[target] = tw
	return tw
}

// Cancel stops the tween running on target and reports whether there was one.
func (an *Animator) Cancel(target any) bool {
	tw, ok := an.tweens[target]
	if !ok {
		return false
	}
	tw.Done = true
	delete(an.tweens, target)
	an.removeTarget(target)
	return true
}

// Tween returns the tween currently running on target, if any.
func (an *Animator) Tween(target any) (*Tween, bool) {
	tw, ok := an.tweens[target]
	return tw, ok
}

// Active returns the number of running tweens.
func (an *Animator) Active() int {
	return len(an.tweens)
}

// Step advances every running tween by delta, in the order their targets
// were first started, and removes the tweens that finished. Tweens started
// from an OnUpdate or OnComplete callback are first stepped on the next call.
func (an *Animator) Step(delta time.Duration) {
	targets := make([]any, len(an.targets))
	copy(targets, an.targets)
	for _, target := range targets {
		tw, ok := an.tweens[target]
		if !ok {
			continue
		}
		if !tw.step(delta) {
			continue
		}
		// a callback may have replaced the tween on this target
		if an.tweens[target] == tw {
			delete(an.tweens, target)
			an.removeTarget(target)
		}
	}
}

// Flush steps every running tween to completion, including tweens started
// by completion callbacks.
func (an *Animator) Flush() {
	for an.Active() > 0 {
		var longest time.Duration
		for _, tw := range an.tweens {
			if rem := tw.Delay + tw.Duration - tw.Elapsed; rem > longest {
				longest = rem
			}
		}
		an.Step(longest)
	}
}

func (an *Animator) removeTarget(target any) {
	for i, t := range an.targets {
		if t == target {
			an.targets = append(an.targets[:i], an.targets[i+1:]...)
			return
		}
	}
}
