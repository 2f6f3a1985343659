// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/pointgizmo/math32"
)

// Mesh parametrizes the mesh-based shape used for rendering a [Solid].
// Meshes are shared by name through the [Scene] library, so several
// solids can render the same geometry with different poses and materials.
type Mesh interface {
	// AsMeshBase returns the [MeshBase] for this Mesh,
	// which provides the core functionality of a mesh.
	AsMeshBase() *MeshBase
}

// MeshBase provides the core implementation of the [Mesh] interface.
type MeshBase struct {
	// Name is the name of the mesh. [Mesh]es are linked to [Solid]s
	// by name so this matters.
	Name string

	// BBox is the local bounding box of the mesh vertices.
	BBox math32.Box3
}

func (ms *MeshBase) AsMeshBase() *MeshBase {
	return ms
}

// RayPicker is a [Mesh] that can measure how closely a ray passes
// its actual geometry, for picking thin overlay shapes.
type RayPicker interface {
	// PickRay returns how far the ray misses the mesh transformed by the
	// given world matrix (0 for a hit), with the world point on the
	// mesh nearest the ray.
	PickRay(ray *math32.Ray, world *math32.Matrix4) (miss float32, pt math32.Vector3)
}

// Lines is a set of line segments: each consecutive pair of
// Points is one segment.
type Lines struct {
	MeshBase

	// Points are the segment end points, in pairs.
	Points []math32.Vector3
}

// NewLines returns a new [Lines] mesh with the given segment end points.
func NewLines(name string, points ...math32.Vector3) *Lines {
	ln := &Lines{Points: points}
	ln.Name = name
	ln.BBox.SetFromPoints(points)
	return ln
}

// Segments returns the number of line segments.
func (ln *Lines) Segments() int {
	return len(ln.Points) / 2
}

// PickRay returns the distance from the ray to the nearest segment.
func (ln *Lines) PickRay(ray *math32.Ray, world *math32.Matrix4) (float32, math32.Vector3) {
	miss := math32.Infinity
	var pt math32.Vector3
	for i := 0; i+1 < len(ln.Points); i += 2 {
		v0 := ln.Points[i].MulMatrix4AsVector4(world, 1)
		v1 := ln.Points[i+1].MulMatrix4AsVector4(world, 1)
		if d, _, sp := ray.DistanceToSegment(v0, v1); d < miss {
			miss = d
			pt = sp
		}
	}
	return miss, pt
}

// Cone is a cone along the +X axis with its base centered on the
// origin and its apex at (Height, 0, 0).
type Cone struct {
	MeshBase

	// Radius is the radius of the base.
	Radius float32

	// Height is the distance from the base to the apex.
	Height float32

	// Segments is the number of segments around the base circle.
	Segments int
}

// NewCone returns a new [Cone] mesh with the given base radius, height
// and number of segments around the base (minimum 3).
func NewCone(name string, radius, height float32, segments int) *Cone {
	cn := &Cone{Radius: radius, Height: height, Segments: max(segments, 3)}
	cn.Name = name
	cn.BBox = math32.B3(0, -radius, -radius, height, radius, radius)
	return cn
}

// Apex returns the apex of the cone.
func (cn *Cone) Apex() math32.Vector3 {
	return math32.Vec3(cn.Height, 0, 0)
}

// BasePoints returns the points around the base circle.
func (cn *Cone) BasePoints() []math32.Vector3 {
	pts := make([]math32.Vector3, cn.Segments)
	for i := range pts {
		ang := 2 * math32.Pi * float32(i) / float32(cn.Segments)
		pts[i] = math32.Vec3(0, cn.Radius*math32.Cos(ang), cn.Radius*math32.Sin(ang))
	}
	return pts
}

// PickRay measures the ray against the cone axis: it hits where it
// passes within the radius tapered toward the apex.
func (cn *Cone) PickRay(ray *math32.Ray, world *math32.Matrix4) (float32, math32.Vector3) {
	base := math32.Vector3{}.MulMatrix4AsVector4(world, 1)
	apex := cn.Apex().MulMatrix4AsVector4(world, 1)
	radius := math32.Vec3(0, cn.Radius, 0).MulMatrix4AsVector4(world, 0).Length()
	d, rp, sp := ray.DistanceToSegment(base, apex)
	var u float32
	if h := base.DistanceTo(apex); h > 0 {
		u = sp.DistanceTo(base) / h
	}
	miss := math32.Max(0, d-radius*(1-u))
	if miss == 0 {
		return 0, rp
	}
	return miss, sp
}

// Points is a point cloud mesh.
type Points struct {
	MeshBase

	// Points are the point positions.
	Points []math32.Vector3
}

// NewPoints returns a new [Points] mesh with the given positions.
func NewPoints(name string, points []math32.Vector3) *Points {
	pc := &Points{Points: points}
	pc.Name = name
	pc.BBox.SetFromPoints(points)
	return pc
}
