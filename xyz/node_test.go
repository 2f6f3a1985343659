// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"testing"

	"cogentcore.org/pointgizmo/base/tolassert"
	"cogentcore.org/pointgizmo/math32"
	"github.com/stretchr/testify/assert"
)

func assertVector(t *testing.T, expected, actual math32.Vector3) {
	t.Helper()
	tolassert.Equal(t, expected.X, actual.X)
	tolassert.Equal(t, expected.Y, actual.Y)
	tolassert.Equal(t, expected.Z, actual.Z)
}

func TestNodeTree(t *testing.T) {
	root := NewGroup(nil, "root")
	a := NewGroup(root, "a")
	b := NewSolid(root, "b", NewPoints("pts", nil))
	assert.Equal(t, 2, root.NumChildren())
	assert.Equal(t, Node(root), a.Parent())
	assert.Equal(t, Node(b), root.ChildByName("b"))
	assert.Nil(t, root.ChildByName("c"))

	a.AddChild(b)
	assert.False(t, root.HasChild(b))
	assert.True(t, a.HasChild(b))
	assert.Equal(t, Node(a), b.Parent())

	var names []string
	root.WalkDown(func(n Node) bool {
		names = append(names, n.AsNodeBase().Name)
		return Continue
	})
	assert.Equal(t, []string{"root", "a", "b"}, names)

	a.SetVisible(false)
	assert.False(t, b.IsVisible())
	assert.True(t, root.IsVisible())

	assert.True(t, a.DeleteChild(b))
	assert.Nil(t, b.Parent())
	assert.False(t, a.DeleteChild(b))
}

func TestWorldBBox(t *testing.T) {
	root := NewGroup(nil, "root")
	gp := NewGroup(root, "gp").SetPos(1, 0, 0).SetScale(2, 2, 2)
	sld := NewSolid(gp, "cloud", NewPoints("pts", []math32.Vector3{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 1}}))
	root.UpdateWorldMatrix(math32.Identity4())

	assertVector(t, math32.Vec3(1, 0, 0), sld.WorldBBox.Min)
	assertVector(t, math32.Vec3(3, 2, 2), sld.WorldBBox.Max)
	assert.Equal(t, sld.WorldBBox, gp.WorldBBox)
	assert.Equal(t, sld.WorldBBox, root.WorldBBox)

	lb, ok := sld.LocalBBox()
	assert.True(t, ok)
	assert.Equal(t, math32.B3(0, 0, 0, 1, 1, 1), lb)

	bb := math32.B3(-1, -1, -1, 0, 0, 0)
	sld.BBox = &bb
	lb, ok = sld.LocalBBox()
	assert.True(t, ok)
	assert.Equal(t, bb, lb)

	_, ok = gp.LocalBBox()
	assert.False(t, ok)
}

func TestMoveWorld(t *testing.T) {
	root := NewGroup(nil, "root")
	gp := NewGroup(root, "gp").SetPos(5, 0, 0).SetScale(2, 2, 2)
	sld := NewSolid(gp, "cloud", nil)
	root.UpdateWorldMatrix(math32.Identity4())
	assertVector(t, math32.Vec3(5, 0, 0), sld.WorldPos())

	sld.MoveWorld(math32.Vec3(2, 0, 0))
	assertVector(t, math32.Vec3(1, 0, 0), sld.Pose.Pos)
	assertVector(t, math32.Vec3(7, 0, 0), sld.WorldPos())

	sld.SetWorldPos(math32.Vec3(5, 4, 0))
	assertVector(t, math32.Vec3(0, 2, 0), sld.Pose.Pos)
	assertVector(t, math32.Vec3(5, 4, 0), sld.WorldPos())

	// a parent flattened to zero scale cannot be inverted: the delta
	// is applied unmapped
	flat := NewGroup(root, "flat").SetScale(0, 1, 1)
	kid := NewSolid(flat, "kid", nil)
	root.UpdateWorldMatrix(math32.Identity4())
	kid.MoveWorld(math32.Vec3(1, 2, 3))
	assertVector(t, math32.Vec3(1, 2, 3), kid.Pose.Pos)
}

func TestRaySolidIntersections(t *testing.T) {
	root := NewGroup(nil, "root")
	near := NewSolid(root, "near", NewPoints("p1", []math32.Vector3{{X: -1, Y: -1, Z: -1}, {X: 1, Y: 1, Z: 1}})).SetPos(0, 0, 2)
	far := NewSolid(root, "far", NewPoints("p2", []math32.Vector3{{X: -1, Y: -1, Z: -1}, {X: 1, Y: 1, Z: 1}})).SetPos(0, 0, -2)
	NewSolid(root, "off", NewPoints("p3", []math32.Vector3{{X: -1, Y: -1, Z: -1}, {X: 1, Y: 1, Z: 1}})).SetPos(5, 0, 0)
	root.UpdateWorldMatrix(math32.Identity4())

	ray := math32.NewRay(math32.Vec3(0, 0, 10), math32.Vec3(0, 0, -1))
	sp := root.RaySolidIntersections(*ray, 0)
	if assert.Len(t, sp, 2) {
		assert.Equal(t, near, sp[0].Solid)
		assert.Equal(t, far, sp[1].Solid)
		assertVector(t, math32.Vec3(0, 0, 3), sp[0].Point)
	}

	near.SetVisible(false)
	sp = root.RaySolidIntersections(*ray, 0)
	if assert.Len(t, sp, 1) {
		assert.Equal(t, far, sp[0].Solid)
	}
}
