// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gizmo

import (
	"strconv"

	"cogentcore.org/pointgizmo/math32"
)

// DragStates are the states of a [Gesture].
type DragStates int32

const (
	// DragIdle is a gesture that has started but has not yet set up its
	// constraint line and drag plane.
	DragIdle DragStates = iota

	// Dragging is a gesture with a constraint line and drag plane.
	Dragging
)

const _DragStatesName = "DragIdleDragging"

var _DragStatesIndex = [...]uint8{0, 8, 16}

func (i DragStates) String() string {
	if i < 0 || i >= DragStates(len(_DragStatesIndex)-1) {
		return "DragStates(" + strconv.FormatInt(int64(i), 10) + ")"
	}
	return _DragStatesName[_DragStatesIndex[i]:_DragStatesIndex[i+1]]
}

// Gesture is the state of one drag on an axis handle, from slide start
// to slide stop. It is created when the drag starts and discarded when it
// ends, so nothing carries over from one drag to the next.
type Gesture struct {
	// State is the drag state.
	State DragStates

	// Start is the world point where the pointer first hit the handle.
	Start math32.Vector3

	// StartHandle is the world position of the handle at the start.
	StartHandle math32.Vector3

	// Line is the constraint line through the pivot along the axis.
	// It is treated as unbounded.
	Line math32.Line3

	// Plane is the camera-facing drag plane through Start.
	Plane math32.Plane

	// Last is the point on Line reached by the previous update.
	// Each update moves the selection by the change from Last.
	Last math32.Vector3
}

// NewGesture returns a new idle gesture starting at the given world hit point.
func NewGesture(start math32.Vector3) *Gesture {
	return &Gesture{Start: start}
}

// Begin sets up the constraint line through pivot along the given world
// axis direction, and the drag plane through the start point facing the
// camera at camPos. If the camera lies on the constraint line, the plane
// faces back along viewDir instead. Tracking starts from the start point
// projected onto the line, so all motion stays along the axis.
func (g *Gesture) Begin(pivot, axis, camPos, viewDir math32.Vector3) {
	g.Line = math32.NewLine3(pivot, pivot.Add(axis.Normal()))
	closest := g.Line.ClosestPointToPoint(camPos, false)
	norm := camPos.Sub(closest)
	if norm.LengthSquared() < 1e-12 {
		norm = viewDir.Negate()
	}
	g.Plane.SetFromNormalAndCoplanarPoint(norm, g.Start)
	g.Last = g.Line.ClosestPointToPoint(g.Start, false)
	g.State = Dragging
}

// Update intersects the given pointer ray with the drag plane, projects the
// intersection onto the constraint line, and returns the change since the
// previous update. It returns false, leaving the gesture unchanged, if the
// gesture is idle or the ray does not hit the plane.
func (g *Gesture) Update(ray math32.Ray) (math32.Vector3, bool) {
	if g.State != Dragging {
		return math32.Vector3{}, false
	}
	pt, ok := ray.IntersectPlane(g.Plane)
	if !ok {
		return math32.Vector3{}, false
	}
	delta := g.Line.ClosestPointToPoint(pt, false).Sub(g.Last)
	g.Last.SetAdd(delta)
	return delta, true
}
