// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gizmo

import (
	"cogentcore.org/pointgizmo/math32"
	"cogentcore.org/pointgizmo/xyz"
)

// HandleSet is the group of handles shown for one [Modes] value.
// The [Tool] attaches the group of the active set to its overlay.
type HandleSet interface {
	// Mode returns the mode this set serves.
	Mode() Modes

	// Group returns the scene group holding the handles.
	Group() *xyz.Group

	// Implemented returns false for sets that have no handles yet.
	Implemented() bool

	// Cancel discards any active drag gesture.
	Cancel()

	// ApplyParams updates the handles for changed parameters.
	ApplyParams(params *Params, meshes ArrowMeshes)
}

// TranslateHandles are the three axis arrows of [ModeTranslate].
type TranslateHandles struct {
	// Axes are the X, Y and Z handles.
	Axes [3]*AxisHandle

	group *xyz.Group
}

func newTranslateHandles(tl *Tool, meshes ArrowMeshes) *TranslateHandles {
	th := &TranslateHandles{group: xyz.NewGroup(nil, "translate")}
	for i, axis := range []math32.Dims{math32.X, math32.Y, math32.Z} {
		h := newAxisHandle(tl, axis, meshes)
		th.Axes[i] = h
		th.group.AddChild(h.Arrow.Group)
	}
	return th
}

func (th *TranslateHandles) Mode() Modes {
	return ModeTranslate
}

func (th *TranslateHandles) Group() *xyz.Group {
	return th.group
}

func (th *TranslateHandles) Implemented() bool {
	return true
}

func (th *TranslateHandles) Cancel() {
	for _, h := range th.Axes {
		h.Cancel()
	}
}

func (th *TranslateHandles) ApplyParams(params *Params, meshes ArrowMeshes) {
	for _, h := range th.Axes {
		h.Color = params.AxisColor(h.Axis)
		h.Arrow.SetMeshes(meshes)
		h.Arrow.Shaft.Material.LineWidth = params.ShaftWidth
		if h.Hovered {
			h.HoverEnter()
		} else {
			h.HoverLeave()
		}
	}
}

// unimplementedHandles is a reserved mode with an empty group.
type unimplementedHandles struct {
	mode  Modes
	group *xyz.Group
}

func newUnimplementedHandles(mode Modes) *unimplementedHandles {
	return &unimplementedHandles{mode: mode, group: xyz.NewGroup(nil, mode.String())}
}

func (uh *unimplementedHandles) Mode() Modes {
	return uh.mode
}

func (uh *unimplementedHandles) Group() *xyz.Group {
	return uh.group
}

func (uh *unimplementedHandles) Implemented() bool {
	return false
}

func (uh *unimplementedHandles) Cancel() {}

func (uh *unimplementedHandles) ApplyParams(params *Params, meshes ArrowMeshes) {}
