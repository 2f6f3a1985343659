// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Box3 is an axis-aligned 3D bounding box spanning Min to Max.
// The zero-extent box of a single point is valid; a box with
// Max < Min on any axis is empty.
type Box3 struct {
	Min Vector3
	Max Vector3
}

// B3 returns a new [Box3] from the given minimum and maximum x, y, and z coordinates.
func B3(x0, y0, z0, x1, y1, z1 float32) Box3 {
	return Box3{Vec3(x0, y0, z0), Vec3(x1, y1, z1)}
}

// B3Empty returns a new empty [Box3], ready to be expanded.
func B3Empty() Box3 {
	var bx Box3
	bx.SetEmpty()
	return bx
}

// SetEmpty sets the box to empty, with Min at +Infinity and Max at -Infinity.
func (b *Box3) SetEmpty() {
	b.Min.SetScalar(Infinity)
	b.Max.SetScalar(-Infinity)
}

// IsEmpty returns true if Max < Min on any axis.
func (b Box3) IsEmpty() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y || b.Max.Z < b.Min.Z
}

// SetFromPoints sets the box to the bounds of the given points.
// It is empty if there are no points.
func (b *Box3) SetFromPoints(points []Vector3) {
	b.SetEmpty()
	b.ExpandByPoints(points)
}

// ExpandByPoints expands the box to include all the given points.
func (b *Box3) ExpandByPoints(points []Vector3) {
	for _, p := range points {
		b.ExpandByPoint(p)
	}
}

// ExpandByPoint expands the box to include the given point.
func (b *Box3) ExpandByPoint(point Vector3) {
	b.Min.SetMin(point)
	b.Max.SetMax(point)
}

// ExpandByBox expands the box to include the given box.
// Empty boxes leave it unchanged.
func (b *Box3) ExpandByBox(box Box3) {
	if box.IsEmpty() {
		return
	}
	b.ExpandByPoint(box.Min)
	b.ExpandByPoint(box.Max)
}

// ExpandByScalar grows the box by the given margin on every side.
func (b *Box3) ExpandByScalar(margin float32) {
	b.Min.SetSubScalar(margin)
	b.Max.SetAddScalar(margin)
}

// Center returns the center of the box.
func (b Box3) Center() Vector3 {
	return b.Min.Add(b.Max).MulScalar(0.5)
}

// Size returns the extent of the box along each axis.
func (b Box3) Size() Vector3 {
	return b.Max.Sub(b.Min)
}

// ContainsPoint returns true if the point is inside the box or on its boundary.
func (b Box3) ContainsPoint(point Vector3) bool {
	return point.X >= b.Min.X && point.X <= b.Max.X &&
		point.Y >= b.Min.Y && point.Y <= b.Max.Y &&
		point.Z >= b.Min.Z && point.Z <= b.Max.Z
}

// ContainsBox returns true if the other box is entirely inside this one.
func (b Box3) ContainsBox(other Box3) bool {
	return b.ContainsPoint(other.Min) && b.ContainsPoint(other.Max)
}

// Corners returns the eight corners of the box. Bit 0 of the index
// selects Max.X, bit 1 Max.Y and bit 2 Max.Z.
func (b Box3) Corners() [8]Vector3 {
	var cs [8]Vector3
	for i := range cs {
		cs[i] = b.Min
		if i&1 != 0 {
			cs[i].X = b.Max.X
		}
		if i&2 != 0 {
			cs[i].Y = b.Max.Y
		}
		if i&4 != 0 {
			cs[i].Z = b.Max.Z
		}
	}
	return cs
}

// MulMatrix4 returns the axis-aligned box spanning the corners of this box
// transformed by the given affine matrix. An empty box stays empty.
func (b Box3) MulMatrix4(m *Matrix4) Box3 {
	if b.IsEmpty() {
		return B3Empty()
	}
	nb := B3Empty()
	for _, c := range b.Corners() {
		nb.ExpandByPoint(c.MulMatrix4AsVector4(m, 1))
	}
	return nb
}
