// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"slices"

	"cogentcore.org/pointgizmo/base/errors"
	"cogentcore.org/pointgizmo/events"
	"cogentcore.org/pointgizmo/math32"
)

// Node is the common interface for all xyz scenegraph nodes
type Node interface {
	// AsNodeBase returns the [NodeBase] for our node, which gives
	// access to all the base-level data structures and methods
	// without requiring interface methods.
	AsNodeBase() *NodeBase

	// IsSolid returns true if this is an [Solid] node (else a [Group]).
	IsSolid() bool

	// AsSolid returns the node as a [Solid] (nil if not).
	AsSolid() *Solid

	// UpdateMeshBBox updates the local mesh-based bounding box.
	// Groups have no mesh and leave it empty.
	UpdateMeshBBox()
}

// Return values for the WalkDown function.
const (
	// Continue = true can be returned from tree iteration functions to continue
	// processing down the tree.
	Continue = true

	// Break = false can be returned from tree iteration functions to stop
	// processing this branch of the tree.
	Break = false
)

// NodeBase is the basic 3D scenegraph node, which has the full transform information
// relative to parent, and computed bounding boxes, etc.
// There are only two different kinds of Nodes: [Group] and [Solid].
type NodeBase struct {
	// Name is the name of the node, unique among siblings by convention.
	Name string

	// Pose is the complete specification of position and orientation.
	Pose Pose

	// BBox is an optional explicit precomputed bounding box, in local
	// coordinates. When set, it takes precedence over [NodeBase.MeshBBox],
	// e.g., for point clouds whose extent is known from their metadata.
	BBox *math32.Box3

	// MeshBBox is the bounding box of the renderable geometry in local
	// coordinates, updated by [Node.UpdateMeshBBox].
	MeshBBox math32.Box3

	// WorldBBox is the world-space bounding box, updated by
	// [Scene.UpdateMatrices].
	WorldBBox math32.Box3

	// Invisible turns off rendering and picking of this node and its children.
	Invisible bool

	// Listeners are the pointer event listeners registered on this node.
	Listeners events.Listeners

	this     Node
	parent   Node
	children []Node
}

// InitName initializes the node with its outer [Node] and name,
// and sets the default pose.
func (nb *NodeBase) InitName(this Node, name string) {
	nb.this = this
	nb.Name = name
	nb.Pose.Defaults()
	nb.Pose.UpdateMatrix()
	nb.Pose.ParMatrix.SetIdentity()
	nb.Pose.WorldMatrix.CopyFrom(&nb.Pose.Matrix)
	nb.MeshBBox.SetEmpty()
	nb.WorldBBox.SetEmpty()
}

func (nb *NodeBase) AsNodeBase() *NodeBase {
	return nb
}

// This returns the outer [Node] that embeds this NodeBase.
func (nb *NodeBase) This() Node {
	return nb.this
}

// Parent returns the parent node, or nil if this is a top-level node.
func (nb *NodeBase) Parent() Node {
	return nb.parent
}

// Children returns the child nodes. The slice must not be modified.
func (nb *NodeBase) Children() []Node {
	return nb.children
}

// NumChildren returns the number of children.
func (nb *NodeBase) NumChildren() int {
	return len(nb.children)
}

// AddChild adds given node as the last child of this node,
// removing it from any prior parent.
func (nb *NodeBase) AddChild(kid Node) {
	kb := kid.AsNodeBase()
	if kb.parent != nil {
		kb.parent.AsNodeBase().DeleteChild(kid)
	}
	kb.parent = nb.this
	nb.children = append(nb.children, kid)
}

// IndexOf returns the index of given child, or -1 if it is not a child.
func (nb *NodeBase) IndexOf(kid Node) int {
	return slices.Index(nb.children, kid)
}

// HasChild returns true if given node is a direct child of this node.
func (nb *NodeBase) HasChild(kid Node) bool {
	return nb.IndexOf(kid) >= 0
}

// DeleteChild removes given child, returning false if it was not found.
// The child itself is not otherwise modified and can be added again.
func (nb *NodeBase) DeleteChild(kid Node) bool {
	idx := nb.IndexOf(kid)
	if idx < 0 {
		return false
	}
	nb.children = slices.Delete(nb.children, idx, idx+1)
	kid.AsNodeBase().parent = nil
	return true
}

// ChildByName returns the first child with given name, or nil.
func (nb *NodeBase) ChildByName(name string) Node {
	for _, kid := range nb.children {
		if kid.AsNodeBase().Name == name {
			return kid
		}
	}
	return nil
}

// WalkDown calls the given function on this node and then all of its
// children, depth first. If the function returns [Break], the
// children of that node are skipped.
func (nb *NodeBase) WalkDown(fun func(n Node) bool) {
	if !fun(nb.this) {
		return
	}
	for _, kid := range nb.children {
		kid.AsNodeBase().WalkDown(fun)
	}
}

// On adds the given event listener function for given event type.
func (nb *NodeBase) On(typ events.Types, fun func(e events.Event)) {
	nb.Listeners.Add(typ, fun)
}

// SetVisible sets the visibility of this node.
func (nb *NodeBase) SetVisible(vis bool) {
	nb.Invisible = !vis
}

// IsVisible returns true if this node and all of its parents are visible.
func (nb *NodeBase) IsVisible() bool {
	if nb.Invisible {
		return false
	}
	if nb.parent == nil {
		return true
	}
	return nb.parent.AsNodeBase().IsVisible()
}

func (nb *NodeBase) IsSolid() bool {
	return false
}

func (nb *NodeBase) AsSolid() *Solid {
	return nil
}

func (nb *NodeBase) UpdateMeshBBox() {
}

// LocalBBox returns the local bounding box of this node:
// the explicit [NodeBase.BBox] if set, otherwise the [NodeBase.MeshBBox].
// It returns false if neither is available (both empty).
func (nb *NodeBase) LocalBBox() (math32.Box3, bool) {
	if nb.BBox != nil && !nb.BBox.IsEmpty() {
		return *nb.BBox, true
	}
	if !nb.MeshBBox.IsEmpty() {
		return nb.MeshBBox, true
	}
	return math32.Box3{}, false
}

// UpdateWorldMatrix updates the local and world matrix of this node
// from its Pose and the given parent world matrix (nil = use the cached one),
// and recursively updates all of its children and the world bounding boxes.
func (nb *NodeBase) UpdateWorldMatrix(parWorld *math32.Matrix4) {
	nb.Pose.UpdateMatrix()
	nb.Pose.UpdateWorldMatrix(parWorld)
	nb.this.UpdateMeshBBox()
	nb.WorldBBox.SetEmpty()
	if lb, ok := nb.LocalBBox(); ok {
		nb.WorldBBox = lb.MulMatrix4(&nb.Pose.WorldMatrix)
	}
	for _, kid := range nb.children {
		kb := kid.AsNodeBase()
		kb.UpdateWorldMatrix(&nb.Pose.WorldMatrix)
		if !kb.WorldBBox.IsEmpty() {
			nb.WorldBBox.ExpandByBox(kb.WorldBBox)
		}
	}
}

// WorldPos returns the current world position, as of the last
// matrix update.
func (nb *NodeBase) WorldPos() math32.Vector3 {
	return nb.Pose.WorldPos()
}

// MoveWorld translates this node by the given world-space delta,
// mapping the delta through the inverse of the parent's world transform,
// and updates the world matrices of this node and its children.
func (nb *NodeBase) MoveWorld(delta math32.Vector3) {
	inv := errors.Log1(nb.Pose.ParMatrix.Inverse()) // undo parent's transform
	nb.Pose.Pos.SetAdd(delta.MulMatrix4AsVector4(inv, 0))
	nb.UpdateWorldMatrix(nil)
}

// SetWorldPos moves this node so its world position is the given point.
func (nb *NodeBase) SetWorldPos(pos math32.Vector3) {
	nb.MoveWorld(pos.Sub(nb.WorldPos()))
}
