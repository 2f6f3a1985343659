// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gizmo

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

var testCam = math32.Vec3(0, 0, 10)

// rayTo returns the ray from the test camera through the given point.
func rayTo(pt math32.Vector3) math32.Ray {
	return *math32.NewRay(testCam, pt.Sub(testCam))
}

func newXGesture(start math32.Vector3) *Gesture {
	g := NewGesture(start)
	g.Begin(math32.Vector3{}, math32.Vec3(1, 0, 0), testCam, math32.Vec3(0, 0, -1))
	return g
}

func TestGestureBegin(t *testing.T) {
	g := NewGesture(math32.Vec3(1, 0.01, 0))
	assert.Equal(t, DragIdle, g.State)
	_, ok := g.Update(rayTo(math32.Vec3(2, 0, 0)))
	assert.False(t, ok)

	g.Begin(math32.Vector3{}, math32.Vec3(2, 0, 0), testCam, math32.Vec3(0, 0, -1))
	assert.Equal(t, Dragging, g.State)
	assert.Equal(t, "Dragging", g.State.String())
	assert.Equal(t, "DragIdle", DragIdle.String())
	assert.Equal(t, "DragStates(5)", DragStates(5).String())
	assertVector(t, math32.Vec3(1, 0, 0), g.Line.Delta())
	assertVector(t, math32.Vec3(0, 0, 1), g.Plane.Norm)
	tolassert.Equal(t, 0, g.Plane.DistanceToPoint(g.Start))
	assertVector(t, math32.Vec3(1, 0, 0), g.Last)
}

func TestGestureOffAxisStart(t *testing.T) {
	// a hit beside the shaft, within the pick margin, does not jump
	g := newXGesture(math32.Vec3(1, 0.05, 0))
	delta, ok := g.Update(rayTo(math32.Vec3(1, 0.05, 0)))
	assert.True(t, ok)
	assertVector(t, math32.Vector3{}, delta)
	delta, _ = g.Update(rayTo(math32.Vec3(1.5, 0.05, 0)))
	assertVector(t, math32.Vec3(0.5, 0, 0), delta)
}

func TestGestureDegenerateNormal(t *testing.T) {
	g := NewGesture(math32.Vec3(0, 0, 1))
	g.Begin(math32.Vector3{}, math32.Vec3(0, 0, 1), testCam, math32.Vec3(0, 0, -1))
	assert.True(t, g.Plane.IsValid())
	assertVector(t, math32.Vec3(0, 0, 1), g.Plane.Norm)
}

func TestGestureDelta(t *testing.T) {
	g := newXGesture(math32.Vec3(1, 0, 0))
	delta, ok := g.Update(rayTo(math32.Vec3(3, 0, 0)))
	assert.True(t, ok)
	assertVector(t, math32.Vec3(2, 0, 0), delta)
	assertVector(t, math32.Vec3(3, 0, 0), g.Last)

	// off-axis pointer motion is projected onto the line, unclamped
	delta, ok = g.Update(rayTo(math32.Vec3(-4, 2, 0)))
	assert.True(t, ok)
	assertVector(t, math32.Vec3(-7, 0, 0), delta)
}

func TestGestureComposition(t *testing.T) {
	p1 := math32.Vec3(2.5, 0.3, 0)
	p2 := math32.Vec3(4.25, -0.7, 0)

	steps := newXGesture(math32.Vec3(1, 0, 0))
	var total math32.Vector3
	for _, p := range []math32.Vector3{p1, p2} {
		d, ok := steps.Update(rayTo(p))
		assert.True(t, ok)
		total.SetAdd(d)
	}

	direct := newXGesture(math32.Vec3(1, 0, 0))
	d, ok := direct.Update(rayTo(p2))
	assert.True(t, ok)
	assertVector(t, d, total)
	assertVector(t, direct.Last, steps.Last)
}

func TestGestureParallelRay(t *testing.T) {
	g := newXGesture(math32.Vec3(1, 0, 0))
	last := g.Last
	_, ok := g.Update(*math32.NewRay(testCam, math32.Vec3(1, 0, 0)))
	assert.False(t, ok)
	assert.Equal(t, last, g.Last)
	assert.Equal(t, Dragging, g.State)

	// a plane behind the ray origin is also a miss
	_, ok = g.Update(*math32.NewRay(testCam, math32.Vec3(0, 0, 1)))
	assert.False(t, ok)
	assert.Equal(t, last, g.Last)
}
