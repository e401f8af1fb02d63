// Copyright (c) 2025, The NetCube Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package timescale maps times to coordinates and splits a time span
// into calendar-year buckets.
package timescale

import (
	"sort"
	"strconv"
	"time"
)

// Linear is a linear mapping from a time domain to a float32 range.
type Linear struct {

	// Domain is the time interval mapped onto Range.
	Domain [2]time.Time

	// Range is the output interval; Range[0] corresponds to Domain[0].
	Range [2]float32
}

// NewLinear returns a [Linear] scale mapping [d0, d1] onto [r0, r1].
func NewLinear(d0, d1 time.Time, r0, r1 float32) Linear {
	return Linear{Domain: [2]time.Time{d0, d1}, Range: [2]float32{r0, r1}}
}

// Map returns the coordinate for t. Times outside the domain extrapolate.
// A degenerate domain maps everything to the middle of the range.
func (l Linear) Map(t time.Time) float32 {
	span := l.Domain[1].Sub(l.Domain[0])
	if span == 0 {
		return 0.5 * (l.Range[0] + l.Range[1])
	}
	f := float64(t.Sub(l.Domain[0])) / float64(span)
	return l.Range[0] + float32(f)*(l.Range[1]-l.Range[0])
}

// Invert returns the time that maps to v.
func (l Linear) Invert(v float32) time.Time {
	rs := l.Range[1] - l.Range[0]
	if rs == 0 {
		return l.Domain[0]
	}
	f := float64((v - l.Range[0]) / rs)
	span := l.Domain[1].Sub(l.Domain[0])
	return l.Domain[0].Add(time.Duration(f * float64(span)))
}

// YearStart returns midnight on January 1 of the year of t, in t's location.
func YearStart(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
}

// YearBuckets returns the starts of the buckets covering [min, max],
// each step calendar years wide, beginning with the year of min.
// Years are read from the dates as written and the buckets are in UTC.
// step values below 1 are treated as 1.
func YearBuckets(min, max time.Time, step int) []time.Time {
	if step < 1 {
		step = 1
	}
	if max.Before(min) {
		min, max = max, min
	}
	var bs []time.Time
	for y := min.Year(); y <= max.Year(); y += step {
		bs = append(bs, time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC))
	}
	return bs
}

// StepForSlices returns the bucket width in years that splits [min, max]
// into at most n buckets.
func StepForSlices(min, max time.Time, n int) int {
	if n < 1 {
		return 1
	}
	years := max.Year() - min.Year() + 1
	if years < 1 {
		years = 1
	}
	step := (years + n - 1) / n
	if step < 1 {
		step = 1
	}
	return step
}

// Quantile returns the start of the bucket containing t: the last bucket
// start at or before t. t is compared by its own calendar date and clock,
// so a date written in any zone falls in the bucket of the year it names.
// It returns false when t precedes every bucket. buckets must be sorted
// ascending.
func Quantile(buckets []time.Time, t time.Time) (time.Time, bool) {
	if len(buckets) == 0 {
		return time.Time{}, false
	}
	t = wallClock(t, buckets[0].Location())
	i := sort.Search(len(buckets), func(i int) bool { return buckets[i].After(t) })
	if i == 0 {
		return time.Time{}, false
	}
	return buckets[i-1], true
}

// wallClock returns t's date and clock read in loc.
func wallClock(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
}

// Name returns the bucket name for a bucket start: its calendar year.
func Name(bucket time.Time) string {
	return strconv.Itoa(bucket.Year())
}
