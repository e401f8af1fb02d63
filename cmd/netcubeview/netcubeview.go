// Copyright (c) 2025, The NetCube Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command netcubeview shows a network cube in a 3D window, with controls
// for the layout, the color encoding and the time mode. The cube is
// rebuilt when the dataset file changes.
package main

import (
	"log/slog"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/cli"
	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/xyz"
	"cogentcore.org/core/xyz/xyzcore"
	"github.com/polycube/netcube/data"
	"github.com/polycube/netcube/netcube"
	"github.com/polycube/netcube/xyzcube"
)

//go:generate core generate -add-types -add-funcs

// Config is the configuration of the viewer.
type Config struct {

	// Dataset is the JSON or YAML dataset file.
	Dataset string `posarg:"0" required:"+"`

	// Watch rebuilds the cube when the dataset file changes.
	Watch bool `default:"true"`

	// Cube is the geometry and timing of the cube.
	Cube netcube.Config

	// Store configures time bucketing and the computed layout.
	Store data.StoreOptions
}

func main() { //types:skip
	opts := cli.DefaultOptions("netcubeview", "Netcubeview shows a network cube of a dataset in a 3D window.")
	opts.DefaultFiles = []string{"netcube.toml"}
	cli.Run(opts, &Config{}, View)
}

// viewer is the state of a viewer window.
type viewer struct {
	config   *Config
	scene    *xyz.Scene
	renderer *xyzcube.Renderer
	cube     *netcube.Cube
}

// View opens the viewer window for the dataset.
func View(c *Config) error { //cli:cmd -root
	v := &viewer{config: c}
	b := core.NewBody("netcube").SetTitle("NetCube: " + c.Dataset)
	bar := core.NewFrame(b)
	se := xyzcore.NewSceneEditor(b)
	se.UpdateWidget()
	sw := se.SceneWidget()
	v.scene = se.SceneXYZ()

	xyz.NewAmbient(v.scene, "ambient", 0.3, xyz.DirectSun)
	dir := xyz.NewDirectional(v.scene, "dir", 1, xyz.DirectSun)
	dir.Pos.Set(0, 2, 1)

	v.renderer = xyzcube.New(v.scene)
	if err := v.load(); err != nil {
		return err
	}
	v.aimCamera()
	v.makeControls(bar)

	var fw *fileWatcher
	if c.Watch {
		var err error
		fw, err = watchFile(c.Dataset)
		if errors.Log(err) == nil {
			defer fw.Close()
		}
	}

	sw.OnClick(func(e events.Event) {
		bb := sw.Geom.ContentBBox
		pos := e.Pos()
		vp := netcube.Viewport{Left: float32(bb.Min.X), Top: float32(bb.Min.Y), Width: float32(bb.Dx()), Height: float32(bb.Dy())}
		rec, ok := v.cube.OnClick(netcube.PointerEvent{ClientX: float32(pos.X), ClientY: float32(pos.Y)}, vp)
		if !ok {
			return
		}
		slog.Info("picked", "id", rec.ID, "category", rec.Category, "date", rec.DateTime)
		errors.Log(v.cube.HighlightObject(rec.ID))
	})

	sw.Animate(func(a *core.Animation) {
		if fw != nil && fw.Changed() {
			errors.Log(v.load())
		}
		v.cube.Step(a.Delta)
		v.renderer.Update()
		sw.NeedsRender()
	})

	b.RunMainWindow()
	return nil
}

// load reads the dataset and builds a new cube in the renderer. A
// rebuilt cube keeps the layout, encoding and time mode of the old one.
func (v *viewer) load() error {
	ds, err := data.Open(v.config.Dataset)
	if err != nil {
		return err
	}
	st, err := data.NewStore(ds, v.config.Store)
	if err != nil {
		return err
	}
	old := v.cube
	v.cube = netcube.New(&v.config.Cube, st, xyzcube.Camera{Scene: v.scene}, v.renderer, v.renderer)
	if old != nil {
		s := old.State()
		v.cube.UpdateNodeColor(s.Encoding.String())
		v.cube.UpdateTime(s.TimeMode.String())
		v.transition(s.Layout)
	}
	slog.Info("loaded dataset", "file", v.config.Dataset, "records", len(st.Records()), "points", len(v.cube.Points()))
	v.renderer.Update()
	return nil
}

// aimCamera looks at the middle of the cube from above and in front,
// saving the view as the default camera.
func (v *viewer) aimCamera() {
	w := v.config.Cube.Width
	center := v.cube.GetCubePosition().Add(math32.Vec3(w/2, 0, w/2))
	v.scene.Camera.Pose.Pos = center.Add(math32.Vec3(0, w, 2*w))
	v.scene.Camera.LookAt(center, math32.Vec3(0, 1, 0))
	v.scene.SaveCamera("default")
}

func (v *viewer) transition(l netcube.Layout) {
	switch l {
	case netcube.LayoutSTC:
		v.cube.TransitionSTC()
	case netcube.LayoutJP:
		v.cube.TransitionJP()
	case netcube.LayoutSI:
		v.cube.TransitionSI()
	case netcube.LayoutANI:
		v.cube.TransitionANI()
	}
}

// makeControls adds the layout, color and time buttons to bar.
func (v *viewer) makeControls(bar *core.Frame) {
	button := func(text, tip string, fn func()) {
		core.NewButton(bar).SetText(text).SetTooltip(tip).OnClick(func(e events.Event) {
			fn()
		})
	}
	for _, l := range []netcube.Layout{netcube.LayoutSTC, netcube.LayoutJP, netcube.LayoutSI} {
		button(l.String(), "move the slices to the "+l.String()+" layout", func() { v.transition(l) })
	}
	for _, mode := range []string{"categorical", "temporal", "monochrome"} {
		button(mode, "color points by "+mode+" encoding", func() { v.cube.UpdateNodeColor(mode) })
	}
	for _, mode := range []string{"aggregated", "absolute"} {
		button(mode, "place points by "+mode+" time", func() { v.cube.UpdateTime(mode) })
	}
	button("reset", "clear the filter and the selection", func() {
		v.cube.ResetCategorySelection()
		v.cube.ResetSelection(false)
	})
}
