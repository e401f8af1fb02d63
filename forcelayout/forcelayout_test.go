// Copyright (c) 2025, The NetCube Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package forcelayout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayout(t *testing.T) {
	var cfg Config
	cfg.Defaults()
	ids := []string{"a", "b", "c", "d"}
	edges := []Edge{{"a", "b"}, {"b", "c"}, {"c", "x"}}

	p1 := Layout(ids, edges, cfg)
	p2 := Layout(ids, edges, cfg)
	assert.Len(t, p1, 4)
	assert.Equal(t, p1, p2)

	for _, id := range ids {
		for _, other := range ids {
			if id != other {
				assert.NotEqual(t, p1[id], p1[other])
			}
		}
	}

	cfg.Seed = 2
	assert.NotEqual(t, p1, Layout(ids, edges, cfg))
}

func TestLayoutEmpty(t *testing.T) {
	var cfg Config
	cfg.Defaults()
	assert.Empty(t, Layout(nil, nil, cfg))
}
