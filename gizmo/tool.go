// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gizmo provides an interactive transformation tool for the nodes
// selected in an [xyz.Scene]: axis arrows drawn at the center of the
// selection that move it along one axis when dragged, kept at a constant
// apparent size on screen.
package gizmo

import (
	"log/slog"

	"cogentcore.org/pointgizmo/base/errors"
	"cogentcore.org/pointgizmo/math32"
	"cogentcore.org/pointgizmo/xyz"
)

// Tool is the transformation tool. It owns an overlay group registered with
// the scene, holding the handles of the current mode, and follows the
// scene's selection. [Tool.Update] must be called once per frame, after
// [xyz.Scene.UpdateMatrices] and before drawing.
type Tool struct {
	// Params are the display and interaction parameters.
	// Use [Tool.SetParams] to change them.
	Params Params

	// Scene is the scene the tool operates on.
	Scene *xyz.Scene

	overlay      *xyz.Group
	mode         Modes
	sets         [ModesN]HandleSet
	meshes       ArrowMeshes
	selection    []xyz.Node
	pivot        math32.Vector3
	displayScale float32
}

// NewTool returns a new tool for the given scene, in [ModeTranslate].
// Nil or invalid params mean defaults. The overlay is registered with the scene and
// the tool subscribes to the scene's selection.
func NewTool(sc *xyz.Scene, params *Params) *Tool {
	tl := &Tool{Scene: sc}
	tl.Params.Defaults()
	if params != nil && errors.Log(params.Validate()) == nil {
		tl.Params = *params
	}
	tl.displayScale = 1
	tl.overlay = xyz.NewGroup(nil, "gizmo")
	tl.overlay.SetVisible(false)
	tl.setMeshes()
	tl.sets[ModeTranslate] = newTranslateHandles(tl, tl.meshes)
	tl.sets[ModeRotate] = newUnimplementedHandles(ModeRotate)
	tl.sets[ModeScale] = newUnimplementedHandles(ModeScale)
	sc.PickPixels = tl.Params.PickPixels
	sc.AddOverlay(tl.overlay)
	sc.Selection.On(func(ev *xyz.SelectionEvent) {
		tl.SetSelection(ev.Nodes)
	})
	tl.SetSelection(sc.Selection.Nodes())
	tl.SetMode(ModeTranslate)
	return tl
}

// setMeshes makes the arrow geometry for the current params and adds it
// to the scene mesh library.
func (tl *Tool) setMeshes() {
	tl.meshes = NewArrowMeshes(&tl.Params)
	tl.Scene.AddMesh(tl.meshes.Shaft)
	tl.Scene.AddMesh(tl.meshes.Head)
}

// Release removes the overlay and the arrow meshes from the scene,
// ending any drag in progress. The tool must not be used afterwards.
func (tl *Tool) Release() {
	tl.cancel()
	tl.selection = nil
	tl.overlay.SetVisible(false)
	tl.Scene.RemoveOverlay(tl.overlay)
	tl.Scene.RemoveMesh(ShaftMeshName)
	tl.Scene.RemoveMesh(HeadMeshName)
}

// Overlay returns the overlay group holding the active handles.
func (tl *Tool) Overlay() *xyz.Group {
	return tl.overlay
}

// Mode returns the current mode.
func (tl *Tool) Mode() Modes {
	return tl.mode
}

// HandleSet returns the handle set for the given mode, nil for [ModeNone].
func (tl *Tool) HandleSet(mode Modes) HandleSet {
	if !mode.IsValid() {
		return nil
	}
	return tl.sets[mode]
}

// SetMode switches to the given mode: all handle groups are detached from
// the overlay and the group of the new mode, if any, is attached.
// It does nothing if the mode is unchanged.
func (tl *Tool) SetMode(mode Modes) {
	if mode == tl.mode {
		return
	}
	tl.cancel()
	for _, hs := range tl.sets {
		if hs != nil {
			tl.overlay.DeleteChild(hs.Group())
		}
	}
	if hs := tl.HandleSet(mode); hs != nil {
		tl.overlay.AddChild(hs.Group())
	}
	slog.Debug("gizmo: set mode", "from", tl.mode, "to", mode)
	tl.mode = mode
}

// Selection returns the current selection snapshot. It must not be modified.
func (tl *Tool) Selection() []xyz.Node {
	return tl.selection
}

// SetSelection replaces the selection with a snapshot of the given nodes,
// dropping nil entries. An empty selection cancels any active drag.
func (tl *Tool) SetSelection(nodes []xyz.Node) {
	tl.selection = xyz.CompactNodes(nodes)
	if len(tl.selection) == 0 {
		tl.cancel()
	}
}

// cancel ends any drag in progress, including the scene's slide gesture.
func (tl *Tool) cancel() {
	for _, hs := range tl.sets {
		if hs != nil {
			hs.Cancel()
		}
	}
	if tl.Scene != nil {
		tl.Scene.CancelSlide()
	}
}

// Translate moves every selected node by the given world-space delta.
func (tl *Tool) Translate(delta math32.Vector3) {
	for _, n := range tl.selection {
		n.AsNodeBase().MoveWorld(delta)
	}
}

// Update places the overlay for the current frame: it is hidden if the
// selection is empty, and otherwise shown at the center of the selection
// bounding box, scaled to [Params.ScreenSize] pixels.
func (tl *Tool) Update() {
	if len(tl.selection) == 0 {
		tl.overlay.SetVisible(false)
		return
	}
	tl.overlay.SetVisible(true)
	tl.pivot = SelectionBBox(tl.selection).Center()
	tl.overlay.Pose.Pos = tl.pivot
	pr := ProjectedRadius(&tl.Scene.Camera, tl.Scene.Camera.DistanceTo(tl.pivot), tl.Scene.Size.Y)
	if pr > 0 && !math32.IsInf(pr, 0) && !math32.IsNaN(pr) {
		tl.displayScale = tl.Params.ScreenSize / pr
	}
	tl.overlay.Pose.SetUniformScale(tl.displayScale)
	tl.overlay.UpdateWorldMatrix(math32.Identity4())
}

// Pivot returns the pivot computed by the last [Tool.Update].
func (tl *Tool) Pivot() math32.Vector3 {
	return tl.pivot
}

// DisplayScale returns the overlay scale computed by the last [Tool.Update].
func (tl *Tool) DisplayScale() float32 {
	return tl.displayScale
}

// Visible returns whether the overlay should be drawn.
func (tl *Tool) Visible() bool {
	return tl.overlay.IsVisible()
}

// SetParams validates and applies new parameters, updating the handle
// colors and geometry.
func (tl *Tool) SetParams(params *Params) error {
	if err := params.Validate(); err != nil {
		return err
	}
	tl.Params = *params
	tl.Scene.PickPixels = tl.Params.PickPixels
	tl.setMeshes()
	for _, hs := range tl.sets {
		if hs != nil {
			hs.ApplyParams(&tl.Params, tl.meshes)
		}
	}
	return nil
}
