// Copyright (c) 2025, The NetCube Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timescale

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestLinear(t *testing.T) {
	l := NewLinear(date(2000, 1, 1), date(2010, 1, 1), -250, 250)
	assert.InDelta(t, -250, l.Map(date(2000, 1, 1)), 1e-3)
	assert.InDelta(t, 250, l.Map(date(2010, 1, 1)), 1e-3)
	mid := l.Domain[0].Add(l.Domain[1].Sub(l.Domain[0]) / 2)
	assert.InDelta(t, 0, l.Map(mid), 1e-3)
	assert.WithinDuration(t, mid, l.Invert(0), time.Second)

	flat := NewLinear(date(2000, 1, 1), date(2000, 1, 1), 0, 10)
	assert.Equal(t, float32(5), flat.Map(date(2005, 1, 1)))
}

func TestYearBuckets(t *testing.T) {
	bs := YearBuckets(date(2019, 6, 3), date(2021, 2, 1), 1)
	assert.Equal(t, []time.Time{date(2019, 1, 1), date(2020, 1, 1), date(2021, 1, 1)}, bs)

	bs = YearBuckets(date(2000, 1, 1), date(2009, 12, 31), 3)
	assert.Len(t, bs, 4)
	assert.Equal(t, "2009", Name(bs[3]))

	assert.Equal(t, 3, StepForSlices(date(2000, 1, 1), date(2009, 1, 1), 4))
	assert.Equal(t, 1, StepForSlices(date(2000, 1, 1), date(2001, 1, 1), 10))
}

func TestQuantile(t *testing.T) {
	bs := YearBuckets(date(2019, 1, 1), date(2021, 1, 1), 1)
	q, ok := Quantile(bs, date(2020, 7, 1))
	assert.True(t, ok)
	assert.Equal(t, "2020", Name(q))

	q, ok = Quantile(bs, date(2020, 1, 1))
	assert.True(t, ok)
	assert.Equal(t, "2020", Name(q))

	q, ok = Quantile(bs, date(2030, 1, 1))
	assert.True(t, ok)
	assert.Equal(t, "2021", Name(q))

	_, ok = Quantile(bs, date(2018, 12, 31))
	assert.False(t, ok)
}

func TestQuantileZones(t *testing.T) {
	east := time.FixedZone("UTC+2", 2*60*60)
	west := time.FixedZone("UTC-5", -5*60*60)
	early := time.Date(2020, 1, 1, 0, 30, 0, 0, east)
	late := time.Date(2019, 12, 31, 23, 0, 0, 0, west)

	bs := YearBuckets(late, early, 1)
	assert.Equal(t, []time.Time{date(2019, 1, 1), date(2020, 1, 1)}, bs)

	q, ok := Quantile(bs, early)
	assert.True(t, ok)
	assert.Equal(t, "2020", Name(q))

	q, ok = Quantile(bs, late)
	assert.True(t, ok)
	assert.Equal(t, "2019", Name(q))

	_, ok = Quantile(nil, early)
	assert.False(t, ok)
}
