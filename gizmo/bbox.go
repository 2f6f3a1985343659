// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gizmo

import (
	"cogentcore.org/pointgizmo/math32"
	"cogentcore.org/pointgizmo/xyz"
)

// SelectionBBox returns the world-space bounding box of the given nodes.
// Each node contributes its explicit bounding box if it has one, else the
// bounding box of its mesh, else its world position as a point. Boxes are
// transformed by the node's world matrix. The result is empty if there
// are no nodes.
func SelectionBBox(nodes []xyz.Node) math32.Box3 {
	bb := math32.B3Empty()
	for _, n := range nodes {
		if n == nil {
			continue
		}
		nb := n.AsNodeBase()
		if lb, ok := nb.LocalBBox(); ok {
			bb.ExpandByBox(lb.MulMatrix4(&nb.Pose.WorldMatrix))
			continue
		}
		bb.ExpandByPoint(nb.WorldPos())
	}
	return bb
}

// ProjectedRadius returns the on-screen radius in pixels of a unit sphere
// at the given distance from the camera, in a viewport of the given pixel
// height.
func ProjectedRadius(cam *xyz.Camera, distance float32, height int) float32 {
	return cam.ProjectedRadius(1, distance, height)
}
