// Copyright (c) 2025, The NetCube Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package forcelayout computes deterministic force-directed positions
// for the nodes of a graph.
package forcelayout

import (
	"math/rand/v2"

	"cogentcore.org/core/math32"
)

// Config holds the simulation parameters.
type Config struct {

	// Iterations is the number of simulation steps.
	Iterations int `default:"300"`

	// Repulsion scales the inverse-square push between every pair of nodes.
	Repulsion float32 `default:"2000"`

	// Spring scales the pull along each edge.
	Spring float32 `default:"0.005"`

	// Damping is the fraction of velocity kept after each step.
	Damping float32 `default:"0.85"`

	// Center scales the pull of every node toward the origin.
	Center float32 `default:"0.001"`

	// Seed seeds the initial placement, so equal inputs give equal layouts.
	Seed uint64 `default:"1"`
}

// Defaults sets the default parameters.
func (c *Config) Defaults() {
	c.Iterations = 300
	c.Repulsion = 2000
	c.Spring = 0.005
	c.Damping = 0.85
	c.Center = 0.001
	c.Seed = 1
}

// Edge connects two node ids. Edges naming unknown ids are ignored.
type Edge struct {
	Source, Target string
}

// Layout returns a position for every id in ids.
func Layout(ids []string, edges []Edge, cfg Config) map[string]math32.Vector2 {
	n := len(ids)
	idx := make(map[string]int, n)
	for i, id := range ids {
		idx[id] = i
	}
	rnd := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	pos := make([]math32.Vector2, n)
	vel := make([]math32.Vector2, n)
	for i := range pos {
		pos[i] = math32.Vec2(rnd.Float32()*200-100, rnd.Float32()*200-100)
	}
	type pair struct{ a, b int }
	var springs []pair
	for _, e := range edges {
		a, aok := idx[e.Source]
		b, bok := idx[e.Target]
		if !aok || !bok || a == b {
			continue
		}
		springs = append(springs, pair{a, b})
	}

	force := make([]math32.Vector2, n)
	for it := 0; it < cfg.Iterations; it++ {
		for i := range force {
			force[i] = pos[i].MulScalar(-cfg.Center)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				d := pos[i].Sub(pos[j])
				d2 := d.X*d.X + d.Y*d.Y
				if d2 < 0.01 {
					d2 = 0.01
				}
				f := d.MulScalar(cfg.Repulsion / d2)
				force[i] = force[i].Add(f)
				force[j] = force[j].Sub(f)
			}
		}
		for _, s := range springs {
			d := pos[s.b].Sub(pos[s.a]).MulScalar(cfg.Spring)
			force[s.a] = force[s.a].Add(d)
			force[s.b] = force[s.b].Sub(d)
		}
		for i := range pos {
			vel[i] = vel[i].Add(force[i]).MulScalar(cfg.Damping)
			pos[i] = pos[i].Add(vel[i])
		}
	}

	res := make(map[string]math32.Vector2, n)
	for i, id := range ids {
		res[id] = pos[i]
	}
	return res
}
