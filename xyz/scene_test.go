// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image"
	"testing"

	"cogentcore.org/pointgizmo/events"
	"cogentcore.org/pointgizmo/math32"
	"github.com/stretchr/testify/assert"
)

// newTestOverlay returns a scene with an overlay group holding a single
// line solid along +X from the origin.
func newTestOverlay() (*Scene, *Group, *Solid) {
	sc := NewScene("scene")
	sc.SetSize(image.Pt(800, 600))
	ln := NewLines("shaft", math32.Vec3(0, 0, 0), math32.Vec3(1, 0, 0))
	sc.AddMesh(ln)
	ov := NewGroup(nil, "overlay")
	handle := NewGroup(ov, "handle")
	sld := NewSolid(handle, "shaft", ln)
	sc.AddOverlay(ov)
	sc.UpdateMatrices()
	return sc, handle, sld
}

// pixelOf returns the pixel position of the given world point.
func pixelOf(sc *Scene, pt math32.Vector3) image.Point {
	ndc := sc.Camera.Project(pt)
	return NDCToPixel(math32.Vec2(ndc.X, ndc.Y), sc.Size).ToPoint()
}

func TestMeshLibrary(t *testing.T) {
	sc := NewScene("scene")
	sc.AddMesh(NewCone("head", 0.1, 0.25, 16))
	ms, ok := sc.MeshByName("head")
	assert.True(t, ok)
	assert.Equal(t, "head", ms.AsMeshBase().Name)
	_, ok = sc.MeshByName("none")
	assert.False(t, ok)

	sld := NewSolid(sc, "s", nil)
	assert.NoError(t, sld.SetMeshName(sc, "head"))
	assert.Equal(t, "head", sld.MeshName)
	assert.Error(t, sld.SetMeshName(sc, "none"))

	assert.True(t, sc.RemoveMesh("head"))
	assert.False(t, sc.RemoveMesh("head"))
	_, ok = sc.MeshByName("head")
	assert.False(t, ok)
}

func TestPickOverlay(t *testing.T) {
	sc, _, sld := newTestOverlay()
	pos := pixelOf(sc, math32.Vec3(0.5, 0, 0))
	got, hit, ok := sc.PickOverlay(pos)
	assert.True(t, ok)
	assert.Equal(t, sld, got)
	assert.InDelta(t, 0.5, hit.X, 0.1)

	_, _, ok = sc.PickOverlay(pixelOf(sc, math32.Vec3(0.5, 1, 0)))
	assert.False(t, ok)

	sc.Overlays()[0].SetVisible(false)
	_, _, ok = sc.PickOverlay(pos)
	assert.False(t, ok)
}

func TestPickOverlayGeometry(t *testing.T) {
	sc := NewScene("scene")
	sc.SetSize(image.Pt(800, 600))
	ov := NewGroup(nil, "overlay")
	shaft := NewSolid(ov, "shaft", NewLines("shaft", math32.Vec3(0, 0, 0), math32.Vec3(2, 0, 0)))
	// a cone pointing at the camera whose box is crossed before the shaft
	NewSolid(ov, "head", NewCone("head", 0.35, 2, 16)).SetPos(1.3, 0.3, 0).SetAxisRotation(0, 1, 0, -90)
	sc.AddOverlay(ov)
	sc.UpdateMatrices()

	got, hit, ok := sc.PickOverlay(pixelOf(sc, math32.Vec3(1, 0, 0)))
	assert.True(t, ok)
	assert.Equal(t, shaft, got)
	assert.InDelta(t, 1, hit.X, 0.05)

	// through the cone itself
	got, _, ok = sc.PickOverlay(pixelOf(sc, math32.Vec3(1.3, 0.3, 0.5)))
	assert.True(t, ok)
	assert.Equal(t, "head", got.Name)
}

func TestMeshPickRay(t *testing.T) {
	ray := math32.NewRay(math32.Vec3(0.5, 1, 10), math32.Vec3(0, 0, -1))
	id := math32.Identity4()

	ln := NewLines("ln", math32.Vec3(0, 0, 0), math32.Vec3(1, 0, 0), math32.Vec3(0, 3, 0), math32.Vec3(1, 3, 0))
	miss, pt := ln.PickRay(ray, id)
	assert.InDelta(t, 1, miss, 1e-4)
	assert.InDelta(t, 0.5, pt.X, 1e-4)

	var m math32.Matrix4
	m.SetTransform(math32.Vec3(0, 1, 0), math32.NewQuat(0, 0, 0, 1), math32.Vec3(1, 1, 1))
	miss, _ = ln.PickRay(ray, &m)
	assert.InDelta(t, 0, miss, 1e-4)

	cn := NewCone("cn", 0.5, 1, 16)
	// passes the base inside the radius
	miss, pt = cn.PickRay(math32.NewRay(math32.Vec3(0.1, 0.3, 10), math32.Vec3(0, 0, -1)), id)
	assert.Equal(t, float32(0), miss)
	assert.InDelta(t, 0.1, pt.X, 1e-4)
	// same offset near the apex misses
	miss, _ = cn.PickRay(math32.NewRay(math32.Vec3(0.9, 0.3, 10), math32.Vec3(0, 0, -1)), id)
	assert.InDelta(t, 0.25, miss, 1e-4)
}

func TestHandlePointer(t *testing.T) {
	sc, handle, _ := newTestOverlay()
	var got []events.Types
	var startHit math32.Vector3
	record := func(e events.Event) {
		got = append(got, e.Type())
		if e.Type() == events.SlideStart {
			startHit = e.(*PointerEvent).Hit
		}
	}
	for _, typ := range []events.Types{events.MouseEnter, events.MouseLeave, events.SlideStart, events.SlideMove, events.SlideStop} {
		handle.On(typ, record)
	}
	assert.Equal(t, Node(handle), ListenerFor(handle.Children()[0], events.SlideStart))

	on := pixelOf(sc, math32.Vec3(0.5, 0, 0))
	off := pixelOf(sc, math32.Vec3(0.5, 2, 0))

	assert.False(t, sc.HandlePointer(events.NewMouseMove(events.NoButton, off, off, 0)))
	assert.True(t, sc.HandlePointer(events.NewMouseMove(events.NoButton, on, off, 0)))
	assert.False(t, sc.HandlePointer(events.NewMouse(events.MouseDown, events.Right, on, 0)))
	assert.True(t, sc.HandlePointer(events.NewMouse(events.MouseDown, events.Left, on, 0)))
	assert.True(t, sc.IsSliding())
	assert.True(t, sc.HandlePointer(events.NewMouseDrag(events.Left, off, on, on, 0)))
	assert.True(t, sc.HandlePointer(events.NewMouseMove(events.Left, off, on, 0)))
	assert.True(t, sc.HandlePointer(events.NewMouse(events.MouseUp, events.Left, off, 0)))
	assert.False(t, sc.IsSliding())

	assert.Equal(t, []events.Types{events.MouseEnter, events.SlideStart, events.SlideMove, events.SlideStop, events.MouseLeave}, got)
	assert.InDelta(t, 0.5, startHit.X, 0.1)

	assert.False(t, sc.HandlePointer(events.NewMouse(events.MouseUp, events.Left, off, 0)))
}

func TestRemoveOverlay(t *testing.T) {
	sc, _, _ := newTestOverlay()
	ov := sc.Overlays()[0]
	sc.AddOverlay(ov)
	assert.Len(t, sc.Overlays(), 1)
	sc.RemoveOverlay(ov)
	assert.Empty(t, sc.Overlays())
	_, _, ok := sc.PickOverlay(pixelOf(sc, math32.Vec3(0.5, 0, 0)))
	assert.False(t, ok)
}
