// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gizmo

import (
	"image/color"
	"log/slog"

	"cogentcore.org/pointgizmo/events"
	"cogentcore.org/pointgizmo/math32"
	"cogentcore.org/pointgizmo/xyz"
)

// AxisHandle is a translation handle that moves the selection along one axis.
type AxisHandle struct {
	// Axis is the axis the handle moves along.
	Axis math32.Dims

	// Dir is the unit direction of the axis.
	Dir math32.Vector3

	// Color is the base tint, restored when the pointer leaves.
	Color color.RGBA

	// Arrow is the visual of the handle.
	Arrow *Arrow

	// Hovered is true while the pointer is over the handle.
	Hovered bool

	tool    *Tool
	gesture *Gesture
}

// newAxisHandle returns a new handle for the given axis of the tool,
// registered for hover and slide events on its arrow.
func newAxisHandle(tl *Tool, axis math32.Dims, meshes ArrowMeshes) *AxisHandle {
	h := &AxisHandle{Axis: axis, tool: tl}
	h.Dir.SetDim(axis, 1)
	h.Color = tl.Params.AxisColor(axis)
	h.Arrow = NewArrow("gizmo-"+axis.String(), axis, h.Color, meshes, &tl.Params)
	gp := h.Arrow.Group
	gp.On(events.MouseEnter, func(e events.Event) {
		h.HoverEnter()
		e.SetHandled()
	})
	gp.On(events.MouseLeave, func(e events.Event) {
		h.HoverLeave()
		e.SetHandled()
	})
	gp.On(events.SlideStart, func(e events.Event) {
		pe, ok := e.(*xyz.PointerEvent)
		if !ok || !pe.HasHit {
			return
		}
		h.gesture = NewGesture(pe.Hit)
		e.SetHandled()
	})
	gp.On(events.SlideMove, func(e events.Event) {
		if h.gesture == nil {
			return
		}
		h.DragUpdate(math32.FromPoint(e.Pos()), h.gesture)
		e.SetHandled()
	})
	gp.On(events.SlideStop, func(e events.Event) {
		h.gesture = nil
		e.SetHandled()
	})
	return h
}

// HoverEnter highlights the handle.
func (h *AxisHandle) HoverEnter() {
	h.Hovered = true
	h.Arrow.SetColor(color.RGBA(h.tool.Params.Highlight))
}

// HoverLeave restores the base tint of the handle.
func (h *AxisHandle) HoverLeave() {
	h.Hovered = false
	h.Arrow.SetColor(h.Color)
}

// WorldDir returns the current world direction of the axis.
func (h *AxisHandle) WorldDir() math32.Vector3 {
	return h.Arrow.Group.Pose.WorldDir(math32.Vec3(1, 0, 0)).Normal()
}

// Gesture returns the active gesture, nil if the handle is not being dragged.
func (h *AxisHandle) Gesture() *Gesture {
	return h.gesture
}

// Cancel discards any active gesture.
func (h *AxisHandle) Cancel() {
	h.gesture = nil
}

// DragUpdate moves the selection along the axis to follow the pointer at the
// given pixel position. The first update of the gesture sets up its
// constraint line and drag plane.
func (h *AxisHandle) DragUpdate(pointer math32.Vector2, g *Gesture) {
	sc := h.tool.Scene
	if g.State == DragIdle {
		g.StartHandle = h.Arrow.Group.WorldPos()
		g.Begin(h.tool.pivot, h.WorldDir(), sc.Camera.Position(), sc.Camera.ViewDir())
		slog.Debug("gizmo: drag start", "axis", h.Axis, "start", g.Start, "pivot", h.tool.pivot)
	}
	h.dragRay(sc.Camera.RayFromPixel(pointer, sc.Size), g)
}

// dragRay applies one drag update for the given pointer ray.
func (h *AxisHandle) dragRay(ray math32.Ray, g *Gesture) {
	delta, ok := g.Update(ray)
	if !ok {
		return
	}
	h.tool.Translate(delta)
}
