// Copyright (c) 2025, The NetCube Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package netcube

import (
	"image/color"
	"time"

	"cogentcore.org/core/math32"
	"github.com/polycube/netcube/data"
)

// Kind identifies the concrete type of a [Node].
type Kind int32

const (
	// KindSlice is a [*Slice].
	KindSlice Kind = iota

	// KindPoint is a [*Point].
	KindPoint

	// KindLink is a [*Link].
	KindLink

	// KindLabel is a [*Label].
	KindLabel

	// KindBox is a [*Box].
	KindBox
)

func (k Kind) String() string {
	switch k {
	case KindSlice:
		return "Slice"
	case KindPoint:
		return "Point"
	case KindLink:
		return "Link"
	case KindLabel:
		return "Label"
	case KindBox:
		return "Box"
	}
	return "Unknown"
}

// Node is an element of the cube's scene: exactly one of [*Slice],
// [*Point], [*Link], [*Label] or [*Box], as reported by Kind.
type Node interface {
	Kind() Kind

	// AsBase returns the shared transform and visibility of the node.
	AsBase() *NodeBase
}

// NodeBase is the transform and visibility shared by all nodes.
// Pos is relative to the parent: the root group for slices, links and
// the box, the slice for points, and the overlay group for labels.
type NodeBase struct {

	// Name is the display name of the node.
	Name string

	// Pos is the position relative to the parent.
	Pos math32.Vector3

	// Rot is the rotation as Euler angles in radians.
	Rot math32.Vector3

	// Scale is the scale factor.
	Scale math32.Vector3

	// Visible is whether the node is drawn.
	Visible bool
}

func (nb *NodeBase) AsBase() *NodeBase {
	return nb
}

func (nb *NodeBase) init(name string) {
	nb.Name = name
	nb.Scale = math32.Vec3(1, 1, 1)
	nb.Visible = true
}

// SetPos sets the [NodeBase.Pos] position.
func (nb *NodeBase) SetPos(x, y, z float32) {
	nb.Pos.Set(x, y, z)
}

// SetScale sets the [NodeBase.Scale] scale.
func (nb *NodeBase) SetScale(x, y, z float32) {
	nb.Scale.Set(x, y, z)
}

// SetRot sets the [NodeBase.Rot] Euler rotation, in radians.
func (nb *NodeBase) SetRot(x, y, z float32) {
	nb.Rot.Set(x, y, z)
}

// Group is one of the cube's two root groups.
type Group struct {
	NodeBase
}

// Rect is a flat rectangular outline.
type Rect struct {
	Width, Height float32

	// Rot is the Euler rotation of the rectangle relative to its slice.
	Rot math32.Vector3

	Color color.RGBA
}

// Slice is one horizontal frame of the cube holding the points of
// one time bucket.
type Slice struct {
	NodeBase

	// Index is the position of the slice in the stack, from the bottom.
	Index int

	// Bucket is the start of the time bucket.
	Bucket time.Time

	// Outline is the border of the slice.
	Outline Rect

	// Label is the overlay label of the slice.
	Label *Label

	points []*Point
}

func (s *Slice) Kind() Kind { return KindSlice }

// Points returns the points of the slice.
func (s *Slice) Points() []*Point {
	return s.points
}

// Point is the visual of one [data.Record].
type Point struct {
	NodeBase

	// Record is the data item shown by the point.
	Record *data.Record

	// Color is the material color.
	Color color.RGBA

	// Radius is the radius at scale 1.
	Radius float32

	slice *Slice
}

func (p *Point) Kind() Kind { return KindPoint }

// Slice returns the slice the point belongs to, or nil when the point's
// bucket has no slice.
func (p *Point) Slice() *Slice {
	return p.slice
}

// Link is a line between two related records.
type Link struct {
	NodeBase

	// Source and Target are the linked records.
	Source, Target *data.Record

	// SourcePoint and TargetPoint are the points of the linked records.
	SourcePoint, TargetPoint *Point

	// Start and End are the endpoints in root-group coordinates.
	Start, End math32.Vector3

	Color   color.RGBA
	Opacity float32
}

func (l *Link) Kind() Kind { return KindLink }

// LinkGroup holds all links; hiding it hides every link.
type LinkGroup struct {
	NodeBase

	Links []*Link
}

// Label is the overlay text of a slice.
type Label struct {
	NodeBase

	// Text is the displayed text: the slice name.
	Text string

	// Class is the style class of the label.
	Class string

	// Opacity fades the label.
	Opacity float32

	slice *Slice
}

func (l *Label) Kind() Kind { return KindLabel }

// Slice returns the slice that owns the label.
func (l *Label) Slice() *Slice {
	return l.slice
}

// Box is the bounding-box outline of the cube.
type Box struct {
	NodeBase

	// Size is the extent of the box, centered on Pos.
	Size math32.Vector3

	Color color.RGBA
}

func (b *Box) Kind() Kind { return KindBox }
