// Copyright (c) 2025, The NetCube Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package data

import (
	"image/color"
	"log/slog"
	"sort"
	"time"

	"cogentcore.org/core/math32"
	"github.com/polycube/netcube/colorscale"
	"github.com/polycube/netcube/forcelayout"
	"github.com/polycube/netcube/timescale"
)

// StoreOptions configures a [Store].
type StoreOptions struct {

	// NumSlices is the maximum number of time buckets; buckets are whole
	// years wide. Zero means one bucket per year.
	NumSlices int `default:"0"`

	// ScaleMin is the coordinate the earliest date maps to on the time scale.
	ScaleMin float32 `default:"-250"`

	// ScaleMax is the coordinate the latest date maps to on the time scale.
	ScaleMax float32 `default:"250"`

	// Layout configures the force-directed layout used when the dataset
	// has no positions.
	Layout forcelayout.Config
}

// Defaults sets the default options.
func (o *StoreOptions) Defaults() {
	o.NumSlices = 0
	o.ScaleMin = -250
	o.ScaleMax = 250
	o.Layout.Defaults()
}

// Bounds is the extent of the layout positions.
type Bounds struct {
	MinX, MaxX, MinY, MaxY float32
}

// Store holds the records of a dataset together with the derived state
// a network cube reads: time buckets, the time scale, category colors and
// layout positions.
type Store struct {
	opts      StoreOptions
	records   []*Record
	byID      map[string]*Record
	positions map[string]math32.Vector2
	bounds    Bounds
	min, max  time.Time
	buckets   []time.Time
	colors    *colorscale.CategoricalScale
}

// NewStore returns a [Store] for the dataset. Records are ordered by
// date, then id.
func NewStore(ds *Dataset, opts StoreOptions) (*Store, error) {
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	st := &Store{opts: opts, byID: map[string]*Record{}}
	st.records = append(st.records, ds.Records...)
	sort.SliceStable(st.records, func(i, j int) bool {
		ri, rj := st.records[i], st.records[j]
		if !ri.DateTime.Equal(rj.DateTime) {
			return ri.DateTime.Before(rj.DateTime)
		}
		return ri.ID < rj.ID
	})
	var cats []string
	seen := map[string]bool{}
	for i, r := range st.records {
		st.byID[r.ID] = r
		if i == 0 || r.DateTime.Before(st.min) {
			st.min = r.DateTime
		}
		if i == 0 || r.DateTime.After(st.max) {
			st.max = r.DateTime
		}
		if !seen[r.Category] {
			seen[r.Category] = true
			cats = append(cats, r.Category)
		}
	}
	sort.Strings(cats)
	st.colors = colorscale.NewCategorical(cats...)
	st.setPositions(ds)
	st.SetNumSlices(opts.NumSlices)
	return st, nil
}

func (st *Store) setPositions(ds *Dataset) {
	st.positions = map[string]math32.Vector2{}
	if len(ds.Positions) > 0 {
		for id, p := range ds.Positions {
			st.positions[id] = math32.Vec2(p.X, p.Y)
		}
	} else if len(st.records) > 0 {
		ids := make([]string, len(st.records))
		var edges []forcelayout.Edge
		for i, r := range st.records {
			ids[i] = r.ID
			for _, t := range r.TargetNodes {
				edges = append(edges, forcelayout.Edge{Source: r.ID, Target: t})
			}
		}
		slog.Debug("computing force layout", "nodes", len(ids), "edges", len(edges))
		st.positions = forcelayout.Layout(ids, edges, st.opts.Layout)
	}
	first := true
	for _, p := range st.positions {
		if first {
			st.bounds = Bounds{p.X, p.X, p.Y, p.Y}
			first = false
			continue
		}
		st.bounds.MinX = min(st.bounds.MinX, p.X)
		st.bounds.MaxX = max(st.bounds.MaxX, p.X)
		st.bounds.MinY = min(st.bounds.MinY, p.Y)
		st.bounds.MaxY = max(st.bounds.MaxY, p.Y)
	}
}

// SetNumSlices re-buckets the time span into at most n year-wide buckets;
// n <= 0 means one bucket per year.
func (st *Store) SetNumSlices(n int) {
	st.opts.NumSlices = n
	if len(st.records) == 0 {
		st.buckets = nil
		return
	}
	lo, hi := st.yearSpan()
	step := 1
	if n > 0 {
		step = timescale.StepForSlices(lo, hi, n)
	}
	st.buckets = timescale.YearBuckets(lo, hi, step)
}

// yearSpan returns January 1 of the first and last calendar years named
// by the record dates, which can differ from the years of the earliest
// and latest instants when dates carry different zones.
func (st *Store) yearSpan() (time.Time, time.Time) {
	lo, hi := st.records[0].DateTime.Year(), st.records[0].DateTime.Year()
	for _, r := range st.records[1:] {
		lo = min(lo, r.DateTime.Year())
		hi = max(hi, r.DateTime.Year())
	}
	return time.Date(lo, time.January, 1, 0, 0, 0, 0, time.UTC), time.Date(hi, time.January, 1, 0, 0, 0, 0, time.UTC)
}

// Records returns the records ordered by date.
func (st *Store) Records() []*Record {
	return st.records
}

// RecordByID returns the record with the given id.
func (st *Store) RecordByID(id string) (*Record, bool) {
	r, ok := st.byID[id]
	return r, ok
}

// TimeRange returns the bucket starts, ascending.
func (st *Store) TimeRange() []time.Time {
	return st.buckets
}

// TimeQuantile returns the name of the bucket containing t.
func (st *Store) TimeQuantile(t time.Time) (string, bool) {
	b, ok := timescale.Quantile(st.buckets, t)
	if !ok {
		return "", false
	}
	return timescale.Name(b), true
}

// TimeLinearScale maps [MinDate, MaxDate] onto [ScaleMin, ScaleMax].
func (st *Store) TimeLinearScale() timescale.Linear {
	return timescale.NewLinear(st.min, st.max, st.opts.ScaleMin, st.opts.ScaleMax)
}

// MinDate returns the earliest record date.
func (st *Store) MinDate() time.Time { return st.min }

// MaxDate returns the latest record date.
func (st *Store) MaxDate() time.Time { return st.max }

// Categories returns the category names in color order.
func (st *Store) Categories() []string {
	cats := make([]string, 0, len(st.records))
	seen := map[string]bool{}
	for _, r := range st.records {
		if !seen[r.Category] {
			seen[r.Category] = true
			cats = append(cats, r.Category)
		}
	}
	sort.Strings(cats)
	return cats
}

// CategoryColor returns the categorical color of cat.
func (st *Store) CategoryColor(cat string) color.RGBA {
	return st.colors.Color(cat)
}

// LayoutPosition returns the layout position of the record with the given id.
func (st *Store) LayoutPosition(id string) (math32.Vector2, bool) {
	p, ok := st.positions[id]
	return p, ok
}

// LayoutBounds returns the extent of all layout positions.
func (st *Store) LayoutBounds() Bounds {
	return st.bounds
}

// Dataset returns the records in date order together with the layout
// positions in use, including computed ones.
func (st *Store) Dataset() *Dataset {
	ds := &Dataset{Records: st.records, Positions: make(map[string]Position, len(st.positions))}
	for id, p := range st.positions {
		ds.Positions[id] = Position{X: p.X, Y: p.Y}
	}
	return ds
}
