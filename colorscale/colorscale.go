// Copyright (c) 2025, The NetCube Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colorscale provides the color encodings of data points:
// categorical, temporal and monochrome.
package colorscale

import (
	"image/color"
	"strings"
	"time"

	"cogentcore.org/core/colors"
	"github.com/lucasb-eyer/go-colorful"
)

// Encoding is a mapping from a record attribute to a display color.
type Encoding int32

const (
	// Categorical colors points by their category.
	Categorical Encoding = iota

	// Temporal colors points by their date on a sequential scale
	// spanning the full date range of the data.
	Temporal

	// Monochrome colors every point [Gray].
	Monochrome
)

func (e Encoding) String() string {
	switch e {
	case Temporal:
		return "temporal"
	case Monochrome:
		return "monochrome"
	default:
		return "categorical"
	}
}

// ParseEncoding returns the encoding named s. Unknown names,
// including the empty string, are [Categorical].
func ParseEncoding(s string) Encoding {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "temporal":
		return Temporal
	case "monochrome":
		return Monochrome
	default:
		return Categorical
	}
}

var (
	// Gray is the monochrome and dimmed point color, #b5b5b5.
	Gray = color.RGBA{0xb5, 0xb5, 0xb5, 0xff}

	// Highlight is the color of a highlighted point, #ff0000.
	Highlight = color.RGBA{0xff, 0x00, 0x00, 0xff}
)

// CategoricalScale assigns colors to category names in order of first use,
// using the widely spaced [colors.Spaced] sequence.
type CategoricalScale struct {
	index map[string]int
}

// NewCategorical returns a scale with the given categories pre-assigned
// in order.
func NewCategorical(cats ...string) *CategoricalScale {
	cs := &CategoricalScale{index: map[string]int{}}
	for _, c := range cats {
		cs.indexOf(c)
	}
	return cs
}

func (cs *CategoricalScale) indexOf(cat string) int {
	if cs.index == nil {
		cs.index = map[string]int{}
	}
	i, ok := cs.index[cat]
	if !ok {
		i = len(cs.index)
		cs.index[cat] = i
	}
	return i
}

// Color returns the color for cat, assigning the next one if cat is new.
func (cs *CategoricalScale) Color(cat string) color.RGBA {
	return colors.Spaced(cs.indexOf(cat))
}

// Len returns the number of categories seen so far.
func (cs *CategoricalScale) Len() int {
	return len(cs.index)
}

// viridis control points, evenly spaced.
var viridis = []string{
	"#440154", "#482878", "#3e4989", "#31688e", "#26828e",
	"#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725",
}

// SequentialScale maps times in [Min, Max] onto a sequential palette.
type SequentialScale struct {
	Min, Max time.Time

	stops []colorful.Color
}

// NewViridis returns a viridis [SequentialScale] over [min, max].
func NewViridis(min, max time.Time) *SequentialScale {
	ss := &SequentialScale{Min: min, Max: max}
	for _, h := range viridis {
		c, err := colorful.Hex(h)
		if err != nil {
			panic(err)
		}
		ss.stops = append(ss.stops, c)
	}
	return ss
}

// At returns the palette color at t in [0, 1]; t is clamped.
func (ss *SequentialScale) At(t float64) color.RGBA {
	n := len(ss.stops)
	switch {
	case n == 0:
		return Gray
	case t <= 0 || n == 1:
		return toRGBA(ss.stops[0])
	case t >= 1:
		return toRGBA(ss.stops[n-1])
	}
	f := t * float64(n-1)
	i := int(f)
	return toRGBA(ss.stops[i].BlendLab(ss.stops[i+1], f-float64(i)))
}

// Color returns the color for d. A degenerate time span maps to the
// middle of the palette.
func (ss *SequentialScale) Color(d time.Time) color.RGBA {
	span := ss.Max.Sub(ss.Min)
	if span <= 0 {
		return ss.At(0.5)
	}
	return ss.At(float64(d.Sub(ss.Min)) / float64(span))
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{r, g, b, 0xff}
}

// Hex returns the lowercase #rrggbb form of c, ignoring alpha.
func Hex(c color.Color) string {
	rgba := colors.AsRGBA(c)
	rgba.A = 0xff
	cf, _ := colorful.MakeColor(rgba)
	return cf.Hex()
}

// ParseHex parses a #rgb, #rrggbb or #rrggbbaa color.
func ParseHex(s string) (color.RGBA, error) {
	return colors.FromHex(s)
}
