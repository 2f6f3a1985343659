// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"
	"image/color"
)

// Solid represents an individual 3D solid element.
// It has its own unique spatial transforms and material properties,
// and points to a mesh structure defining the shape of the solid.
type Solid struct {
	NodeBase

	// MeshName is the name of the mesh shape information used for rendering
	// this solid; shared meshes are collected on the Scene.
	MeshName string

	// Material contains the material properties of the surface (color, depth handling, etc).
	Material Material

	// Mesh is the [Mesh] this solid renders.
	Mesh Mesh
}

// NewSolid adds a new [Solid] with given name and mesh to given parent
// (which can be nil for a top-level solid).
func NewSolid(parent Node, name string, ms Mesh) *Solid {
	sld := &Solid{}
	sld.InitName(sld, name)
	sld.Defaults()
	sld.SetMesh(ms)
	if parent != nil {
		parent.AsNodeBase().AddChild(sld)
	}
	return sld
}

func (sld *Solid) IsSolid() bool {
	return true
}

func (sld *Solid) AsSolid() *Solid {
	return sld
}

// Defaults sets default initial settings for solid params.
func (sld *Solid) Defaults() {
	sld.Pose.Defaults()
	sld.Material.Defaults()
}

// SetMesh sets mesh
func (sld *Solid) SetMesh(ms Mesh) *Solid {
	sld.Mesh = ms
	if sld.Mesh != nil {
		sld.MeshName = sld.Mesh.AsMeshBase().Name
	} else {
		sld.MeshName = ""
	}
	return sld
}

// SetMeshName sets the mesh to the one of given name in the scene library.
func (sld *Solid) SetMeshName(sc *Scene, meshName string) error {
	ms, ok := sc.MeshByName(meshName)
	if !ok {
		return fmt.Errorf("xyz.Solid: %v mesh named: %v not found", sld.Name, meshName)
	}
	sld.SetMesh(ms)
	return nil
}

// SetColor sets the [Material.Color].
func (sld *Solid) SetColor(v color.RGBA) *Solid {
	sld.Material.Color = v
	return sld
}

// SetPos sets the [Pose.Pos] position of the solid
func (sld *Solid) SetPos(x, y, z float32) *Solid {
	sld.Pose.Pos.Set(x, y, z)
	return sld
}

// SetScale sets the [Pose.Scale] scale of the solid
func (sld *Solid) SetScale(x, y, z float32) *Solid {
	sld.Pose.Scale.Set(x, y, z)
	return sld
}

// SetAxisRotation sets the [Pose.Quat] rotation of the solid,
// from local axis and angle in degrees.
func (sld *Solid) SetAxisRotation(x, y, z, angle float32) *Solid {
	sld.Pose.SetAxisRotation(x, y, z, angle)
	return sld
}

// UpdateMeshBBox updates the local bounding box from the mesh.
func (sld *Solid) UpdateMeshBBox() {
	if sld.Mesh == nil {
		sld.MeshBBox.SetEmpty()
		return
	}
	sld.MeshBBox = sld.Mesh.AsMeshBase().BBox
}

// test for impl
var _ Node = &Solid{}
