// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image"
	"image/color"
	"log/slog"
	"slices"

	"cogentcore.org/pointgizmo/base/ordmap"
	"cogentcore.org/pointgizmo/events"
	"cogentcore.org/pointgizmo/math32"
	"golang.org/x/image/colornames"
)

// Scene is the overall scenegraph containing nodes as children.
// In addition to the content children, it holds overlay groups
// (such as manipulation handles) that are drawn on top of the content and
// receive pointer events: [Scene.HandlePointer] picks against the overlays
// and dispatches MouseEnter, MouseLeave and Slide events to the nearest
// listening node of the picked solid.
type Scene struct {
	Group

	// camera determines view onto scene
	Camera Camera

	// Size is the viewport size in pixels.
	Size image.Point

	// background color
	BackgroundColor color.RGBA

	// meshes: holds all the mesh data, shared by name across solids
	Meshes ordmap.Map[string, Mesh]

	// PickPixels is the pick tolerance around overlay solids, in pixels.
	PickPixels float32 `default:"6"`

	// Selection is the set of selected content nodes.
	Selection Selection

	// overlays registered for picking, in the order added
	overlays []*Group

	// current hover target, receiving MouseEnter / MouseLeave
	hover Node

	// solid picked when the hover target was set
	hoverSolid *Solid

	// slide target, non-nil while a slide gesture is active
	slide Node
}

// NewScene creates a new Scene to contain a 3D scenegraph.
func NewScene(name string) *Scene {
	sc := &Scene{}
	sc.InitName(sc, name)
	sc.Defaults()
	return sc
}

// Defaults sets default scene params (camera, bg = black)
func (sc *Scene) Defaults() {
	sc.Camera.Defaults()
	sc.BackgroundColor = colornames.Black
	sc.PickPixels = 6
	sc.Meshes.Init()
}

// SetSize sets the viewport size in pixels and updates the camera aspect ratio.
func (sc *Scene) SetSize(sz image.Point) {
	sc.Size = sz
	if sz.Y > 0 {
		sc.Camera.Aspect = float32(sz.X) / float32(sz.Y)
	}
	sc.Camera.UpdateMatrix()
}

// AddMesh adds given mesh to mesh collection, replacing any existing one
// of the same name.
func (sc *Scene) AddMesh(ms Mesh) {
	sc.Meshes.Add(ms.AsMeshBase().Name, ms)
}

// RemoveMesh removes the mesh with the given name from the library,
// returning false if there is none.
func (sc *Scene) RemoveMesh(name string) bool {
	return sc.Meshes.DeleteKey(name)
}

// MeshByName looks for mesh by name, returning false if not found.
func (sc *Scene) MeshByName(nm string) (Mesh, bool) {
	return sc.Meshes.ValueByKeyTry(nm)
}

// AddOverlay registers the given group as an overlay, drawn on top of the
// scene content and picked by [Scene.HandlePointer].
func (sc *Scene) AddOverlay(ov *Group) {
	if slices.Contains(sc.overlays, ov) {
		return
	}
	sc.overlays = append(sc.overlays, ov)
}

// RemoveOverlay unregisters the given overlay group.
func (sc *Scene) RemoveOverlay(ov *Group) {
	sc.overlays = slices.DeleteFunc(sc.overlays, func(g *Group) bool { return g == ov })
}

// Overlays returns the registered overlay groups. The slice must not be modified.
func (sc *Scene) Overlays() []*Group {
	return sc.overlays
}

// UpdateMatrices updates the camera and the world matrices and bounding boxes
// of all content nodes and overlays.
func (sc *Scene) UpdateMatrices() {
	sc.Camera.UpdateMatrix()
	sc.UpdateWorldMatrix(math32.Identity4())
	for _, ov := range sc.overlays {
		ov.UpdateWorldMatrix(math32.Identity4())
	}
}

// PixelRay returns the world-space pick ray through the given pixel position.
func (sc *Scene) PixelRay(pos image.Point) math32.Ray {
	return sc.Camera.RayFromPixel(math32.FromPoint(pos), sc.Size)
}

// PickMargin returns the world-space size of [Scene.PickPixels] at the
// given world point.
func (sc *Scene) PickMargin(pt math32.Vector3) float32 {
	pr := sc.Camera.ProjectedRadius(1, sc.Camera.DistanceTo(pt), sc.Size.Y)
	if pr <= 0 || math32.IsInf(pr, 0) || math32.IsNaN(pr) {
		return 0
	}
	return sc.PickPixels / pr
}

// PickOverlay returns the visible overlay solid under the given pixel
// position, with the world-space hit point. Candidates are found by their
// bounding boxes and ranked by how closely the ray passes their geometry
// (see [RayPicker]), then by depth.
func (sc *Scene) PickOverlay(pos image.Point) (*Solid, math32.Vector3, bool) {
	ray := sc.PixelRay(pos)
	var best *Solid
	var bestPt math32.Vector3
	bestMiss, bestDepth := math32.Infinity, math32.Infinity
	for _, ov := range sc.overlays {
		margin := sc.PickMargin(ov.WorldPos())
		for _, sp := range ov.RaySolidIntersections(ray, margin) {
			var miss float32
			pt := sp.Point
			if rp, ok := sp.Solid.Mesh.(RayPicker); ok {
				miss, pt = rp.PickRay(&ray, &sp.Solid.Pose.WorldMatrix)
				if miss > margin {
					continue
				}
			}
			depth := pt.Sub(ray.Origin).Dot(ray.Dir)
			tol := margin * 0.01
			if miss < bestMiss-tol || (miss <= bestMiss+tol && depth < bestDepth) {
				best, bestPt = sp.Solid, pt
				bestMiss, bestDepth = miss, depth
			}
		}
	}
	if best == nil {
		return nil, math32.Vector3{}, false
	}
	return best, bestPt, true
}

// PickSolids returns the visible content solids under the given pixel
// position, sorted from nearest to furthest.
func (sc *Scene) PickSolids(pos image.Point) []*SolidPoint {
	return sc.RaySolidIntersections(sc.PixelRay(pos), 0)
}

// PointerEvent is a pointer event sent to overlay nodes,
// carrying the world-space point where the pointer hit the picked solid.
type PointerEvent struct {
	events.Event

	// Solid is the picked solid, nil if nothing was under the pointer.
	Solid *Solid

	// Hit is the world-space pick point, valid if HasHit.
	Hit math32.Vector3

	// HasHit is true if Hit is valid.
	HasHit bool
}

// ListenerFor returns the nearest node, starting from n and walking up
// through its parents, that has a listener for the given event type.
// It returns nil if there is none.
func ListenerFor(n Node, typ events.Types) Node {
	for n != nil {
		nb := n.AsNodeBase()
		if nb.Listeners.Has(typ) {
			return n
		}
		n = nb.parent
	}
	return nil
}

// send delivers an event of given type derived from ev to the node.
func (sc *Scene) send(n Node, ev events.Event, typ events.Types, sld *Solid, hit math32.Vector3, hasHit bool) {
	if n == nil {
		return
	}
	if typ.IsSlide() {
		slog.Debug("xyz.Scene: "+typ.String(), "node", n.AsNodeBase().Name, "hit", hit)
	}
	pe := &PointerEvent{Event: ev.Clone(typ), Solid: sld, Hit: hit, HasHit: hasHit}
	n.AsNodeBase().Listeners.Call(pe)
}

// updateHover picks the overlays at the event position and sends
// MouseLeave / MouseEnter when the hover target changes.
func (sc *Scene) updateHover(ev events.Event) (*Solid, math32.Vector3, bool) {
	sld, hit, ok := sc.PickOverlay(ev.Pos())
	var target Node
	if ok {
		target = ListenerFor(sld, events.MouseEnter)
	}
	if target != sc.hover {
		if sc.hover != nil {
			sc.send(ListenerFor(sc.hoverSolid, events.MouseLeave), ev, events.MouseLeave, sc.hoverSolid, math32.Vector3{}, false)
		}
		sc.hover = target
		sc.hoverSolid = sld
		if target != nil {
			sc.send(target, ev, events.MouseEnter, sld, hit, true)
		}
	}
	return sld, hit, ok
}

// HandlePointer processes the given pointer event against the overlays,
// returning true if an overlay consumed it. Hover tracking is frozen while
// a slide is active so the hovered handle stays highlighted during a drag.
func (sc *Scene) HandlePointer(ev events.Event) bool {
	switch ev.Type() {
	case events.MouseMove:
		if sc.slide != nil {
			return true
		}
		sc.updateHover(ev)
		return sc.hover != nil
	case events.MouseDown:
		if sc.slide != nil || ev.MouseButton() != events.Left {
			return false
		}
		sld, hit, ok := sc.updateHover(ev)
		if !ok {
			return false
		}
		target := ListenerFor(sld, events.SlideStart)
		if target == nil {
			return false
		}
		sc.slide = target
		sc.send(target, ev, events.SlideStart, sld, hit, true)
		return true
	case events.MouseDrag:
		if sc.slide == nil {
			return false
		}
		sc.send(sc.slide, ev, events.SlideMove, nil, math32.Vector3{}, false)
		return true
	case events.MouseUp:
		if sc.slide == nil {
			return false
		}
		target := sc.slide
		sc.slide = nil
		sc.send(target, ev, events.SlideStop, nil, math32.Vector3{}, false)
		sc.updateHover(ev)
		return true
	}
	return false
}

// IsSliding returns true while a slide gesture on an overlay node is active.
func (sc *Scene) IsSliding() bool {
	return sc.slide != nil
}

// CancelSlide ends any active slide gesture without sending SlideStop.
func (sc *Scene) CancelSlide() {
	sc.slide = nil
}

// test for impl
var _ Node = &Scene{}
