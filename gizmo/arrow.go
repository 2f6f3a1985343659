// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gizmo

import (
	"image/color"

	"cogentcore.org/pointgizmo/math32"
	"cogentcore.org/pointgizmo/xyz"
)

// Mesh names of the shared arrow geometry in the scene library.
const (
	ShaftMeshName = "gizmo-shaft"
	HeadMeshName  = "gizmo-head"
)

// ArrowMeshes is the geometry shared by all arrows: a unit line along +X
// and a cone head.
type ArrowMeshes struct {
	Shaft *xyz.Lines
	Head  *xyz.Cone
}

// NewArrowMeshes returns the arrow geometry for the given parameters.
func NewArrowMeshes(params *Params) ArrowMeshes {
	return ArrowMeshes{
		Shaft: xyz.NewLines(ShaftMeshName, math32.Vec3(0, 0, 0), math32.Vec3(1, 0, 0)),
		Head:  xyz.NewCone(HeadMeshName, params.HeadRadius, params.HeadHeight, params.HeadSegments),
	}
}

// Arrow is the visual of one axis handle: a group holding a shaft line
// from the origin to unit distance and a cone head at the end.
type Arrow struct {
	Group *xyz.Group
	Shaft *xyz.Solid
	Head  *xyz.Solid
}

// NewArrow returns a new arrow along the given axis, tinted with the given
// color. The arrow is built along X and rotated into place for Y and Z.
// Both parts ignore depth so they draw on top of the scene.
// The returned arrow is not attached to any parent.
func NewArrow(name string, axis math32.Dims, clr color.RGBA, meshes ArrowMeshes, params *Params) *Arrow {
	ar := &Arrow{}
	ar.Group = xyz.NewGroup(nil, name)
	ar.Shaft = xyz.NewSolid(ar.Group, name+"-shaft", meshes.Shaft)
	ar.Shaft.Material.NoDepth()
	ar.Shaft.Material.LineWidth = params.ShaftWidth
	ar.Head = xyz.NewSolid(ar.Group, name+"-head", meshes.Head).SetPos(1, 0, 0)
	ar.Head.Material.NoDepth()
	ar.SetColor(clr)
	switch axis {
	case math32.Y:
		ar.Group.SetAxisRotation(0, 0, 1, 90)
	case math32.Z:
		ar.Group.SetAxisRotation(0, 1, 0, -90)
	}
	return ar
}

// SetColor sets the tint of both parts of the arrow.
func (ar *Arrow) SetColor(clr color.RGBA) {
	ar.Shaft.SetColor(clr)
	ar.Head.SetColor(clr)
}

// Color returns the current tint of the arrow.
func (ar *Arrow) Color() color.RGBA {
	return ar.Shaft.Material.Color
}

// SetMeshes switches the arrow to the given geometry.
func (ar *Arrow) SetMeshes(meshes ArrowMeshes) {
	ar.Shaft.SetMesh(meshes.Shaft)
	ar.Head.SetMesh(meshes.Head)
}
