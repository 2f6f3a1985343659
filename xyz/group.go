// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"sort"

	"cogentcore.org/pointgizmo/math32"
)

// Group collects individual elements in a scene but does not have a Mesh or Material of
// its own. It does have a transform that applies to all nodes under it.
type Group struct {
	NodeBase
}

// NewGroup adds a new [Group] with given name to given parent
// (which can be nil for a top-level group).
func NewGroup(parent Node, name string) *Group {
	gp := &Group{}
	gp.InitName(gp, name)
	if parent != nil {
		parent.AsNodeBase().AddChild(gp)
	}
	return gp
}

// SetPos sets the [Pose.Pos] position of the group
func (gp *Group) SetPos(x, y, z float32) *Group {
	gp.Pose.Pos.Set(x, y, z)
	return gp
}

// SetScale sets the [Pose.Scale] scale of the group
func (gp *Group) SetScale(x, y, z float32) *Group {
	gp.Pose.Scale.Set(x, y, z)
	return gp
}

// SetAxisRotation sets the [Pose.Quat] rotation of the group,
// from local axis and angle in degrees.
func (gp *Group) SetAxisRotation(x, y, z, angle float32) *Group {
	gp.Pose.SetAxisRotation(x, y, z, angle)
	return gp
}

// SolidPoint contains a Solid and a Point on that solid
type SolidPoint struct {
	Solid *Solid
	Point math32.Vector3
}

// RaySolidIntersections returns a list of visible solids whose world
// bounding box, expanded by the given margin, intersects with the given ray,
// with the point of intersection. Results are sorted from closest to furthest.
func (gp *Group) RaySolidIntersections(ray math32.Ray, margin float32) []*SolidPoint {
	var sp []*SolidPoint
	gp.WalkDown(func(n Node) bool {
		nb := n.AsNodeBase()
		if nb.Invisible || nb.WorldBBox.IsEmpty() {
			return Break
		}
		bb := nb.WorldBBox
		bb.ExpandByScalar(margin)
		pt, has := ray.IntersectBox(bb)
		if !has {
			return Break
		}
		if !n.IsSolid() {
			return Continue
		}
		sp = append(sp, &SolidPoint{n.AsSolid(), pt})
		return Break
	})

	sort.SliceStable(sp, func(i, j int) bool {
		di := sp[i].Point.DistanceTo(ray.Origin)
		dj := sp[j].Point.DistanceTo(ray.Origin)
		return di < dj
	})
	return sp
}

// test for impl
var _ Node = &Group{}
