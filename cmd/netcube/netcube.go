// Copyright (c) 2025, The NetCube Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command netcube builds a network cube from a dataset without a display,
// prints a summary of its slices, points and links, and runs its layout
// transitions.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/logx"
	"cogentcore.org/core/cli"
	"github.com/muesli/termenv"
	"github.com/polycube/netcube/colorscale"
	"github.com/polycube/netcube/data"
	"github.com/polycube/netcube/netcube"
)

//go:generate core generate -add-types -add-funcs

// Config is the configuration of the netcube command.
type Config struct {

	// Dataset is the JSON or YAML dataset file.
	Dataset string `posarg:"0" required:"+"`

	// Output is the file the layout command writes the dataset and its
	// positions to.
	Output string `cmd:"layout" flag:"o,output"`

	// Category restricts the filter to one category.
	Category string

	// Start is the first date shown, as YYYY[-MM[-DD]]; empty is unbounded.
	Start string

	// End is the last date shown, as YYYY[-MM[-DD]]; empty is unbounded.
	End string

	// Links also filters links by Start and End. It filters by date only,
	// so it cannot be combined with Category.
	Links bool

	// Color is the color encoding: categorical, temporal or monochrome.
	Color string `default:"categorical"`

	// Time is the time mode: aggregated or absolute.
	Time string `default:"aggregated"`

	// Highlight is the id of the record to highlight.
	Highlight string

	// Layout is the layout the animate command transitions to: STC, JP or SI.
	Layout string `cmd:"animate" default:"JP"`

	// FPS is the frame rate the animate command steps the cube at.
	FPS int `cmd:"animate" default:"30"`

	// Cube is the geometry and timing of the cube.
	Cube netcube.Config

	// Store configures time bucketing and the computed layout.
	Store data.StoreOptions
}

func main() { //types:skip
	opts := cli.DefaultOptions("netcube", "Netcube builds a network cube from a dataset and reports its slices, points and links.")
	opts.DefaultFiles = []string{"netcube.toml"}
	cli.Run(opts, &Config{}, Summary, Animate, Layout)
}

// Summary prints the slices of the cube with their visible points,
// the visible links and the category colors.
func Summary(c *Config) error { //cli:cmd -root
	cube, err := build(c)
	if err != nil {
		return err
	}
	return summarize(os.Stdout, cube)
}

// Animate runs the transition to the configured layout frame by frame
// and prints where each slice ends up.
func Animate(c *Config) error {
	cube, err := build(c)
	if err != nil {
		return err
	}
	if err := transition(cube, c.Layout); err != nil {
		return err
	}
	fps := max(c.FPS, 1)
	frame := time.Second / time.Duration(fps)
	frames := 0
	for cube.Animator().Active() > 0 {
		cube.Step(frame)
		frames++
		if frames%fps == 0 {
			slog.Info("animating", "layout", cube.State().Layout, "seconds", frames/fps, "tweens", cube.Animator().Active())
		}
	}
	slog.Info("transition done", "layout", cube.State().Layout, "frames", frames)
	for _, s := range cube.Slices() {
		op := float32(0)
		if s.Label != nil {
			op = s.Label.Opacity
		}
		fmt.Printf("%s\t(%.1f, %.1f, %.1f)\tlabel opacity %.0f\n", s.Name, s.Pos.X, s.Pos.Y, s.Pos.Z, op)
	}
	return nil
}

// Layout writes the dataset together with its layout positions, computing
// a force-directed layout when the dataset has none.
func Layout(c *Config) error {
	if c.Output == "" {
		return errors.New("layout: no output file given")
	}
	st, err := open(c)
	if err != nil {
		return err
	}
	if err := st.Dataset().Save(c.Output); err != nil {
		return err
	}
	slog.Info("wrote layout", "file", c.Output, "records", len(st.Records()))
	return nil
}

func open(c *Config) (*data.Store, error) {
	ds, err := data.Open(c.Dataset)
	if err != nil {
		return nil, err
	}
	return data.NewStore(ds, c.Store)
}

// build makes the cube for the dataset and applies the configured
// encoding, time mode, filter and highlight.
func build(c *Config) (*netcube.Cube, error) {
	if c.Links && c.Category != "" {
		return nil, errors.New("the links filter is by date only and cannot be combined with a category")
	}
	st, err := open(c)
	if err != nil {
		return nil, err
	}
	cube := netcube.New(&c.Cube, st, nil, nil, nil)
	cube.UpdateNodeColor(c.Color)
	cube.UpdateTime(c.Time)
	if c.Category != "" || c.Start != "" || c.End != "" {
		start, end, err := dateRange(c.Start, c.End, st)
		if err != nil {
			return nil, err
		}
		if c.Links {
			cube.FilterDataByDatePeriod(start, end)
		} else {
			cube.FilterData(c.Category, start, end)
		}
	}
	if c.Highlight != "" {
		if err := cube.HighlightObject(c.Highlight); err != nil {
			return nil, err
		}
	}
	slog.Info("built cube", "records", len(st.Records()), "slices", len(cube.Slices()), "points", len(cube.Points()), "links", len(cube.Links().Links))
	return cube, nil
}

// dateRange parses the filter bounds, defaulting to the dataset's dates.
func dateRange(start, end string, dm netcube.Manager) (time.Time, time.Time, error) {
	s, e := dm.MinDate(), dm.MaxDate()
	var err error
	if start != "" {
		if s, err = data.ParseTime(start); err != nil {
			return s, e, fmt.Errorf("start: %w", err)
		}
	}
	if end != "" {
		if e, err = data.ParseTime(end); err != nil {
			return s, e, fmt.Errorf("end: %w", err)
		}
	}
	return s, e, nil
}

func transition(cube *netcube.Cube, layout string) error {
	switch strings.ToUpper(layout) {
	case "STC":
		cube.TransitionSTC()
	case "JP":
		cube.TransitionJP()
	case "SI":
		cube.TransitionSI()
	case "ANI":
		cube.TransitionANI()
	default:
		return fmt.Errorf("unknown layout %q", layout)
	}
	return nil
}

func summarize(w io.Writer, cube *netcube.Cube) error {
	st := cube.State()
	fmt.Fprintf(w, "layout %s, colors %s, time %s\n", st.Layout, st.Encoding, st.TimeMode)
	shown := 0
	for _, s := range cube.Slices() {
		var ids []string
		for _, p := range s.Points() {
			if p.Visible {
				ids = append(ids, p.Record.ID)
			}
		}
		shown += len(ids)
		fmt.Fprintf(w, "%s\ty=%.1f\t%d points\t%s\n", s.Name, s.Pos.Y, len(ids), strings.Join(ids, " "))
	}
	links := 0
	for _, l := range cube.Links().Links {
		if l.Visible {
			links++
		}
	}
	fmt.Fprintf(w, "%d of %d links shown\n", links, len(cube.Links().Links))
	if shown == 0 {
		logx.PrintlnWarn("no points are shown")
	}
	if st.Encoding != colorscale.Categorical {
		return nil
	}
	out := termenv.NewOutput(w)
	seen := map[string]bool{}
	for _, p := range cube.Points() {
		cat := p.Record.Category
		if seen[cat] {
			continue
		}
		seen[cat] = true
		hex := colorscale.Hex(cube.Manager().CategoryColor(cat))
		fmt.Fprintf(w, "%s\t%s\t%s\n", cat, hex, out.String("■").Foreground(out.Color(hex)))
	}
	return nil
}
