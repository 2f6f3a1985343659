// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit the gizmo geometry.

package math32

// Plane represents a plane in 3D space by its normal vector and a constant offset.
// When the the normal vector is the unit vector the offset is the distance from the origin.
type Plane struct {
	Norm Vector3
	Off  float32
}

// SetFromNormalAndCoplanarPoint sets this plane from a normal vector and a point on the plane.
// The normal is normalized.
func (p *Plane) SetFromNormalAndCoplanarPoint(normal Vector3, point Vector3) {
	p.Norm = normal.Normal()
	p.Off = -point.Dot(p.Norm)
}

// IsValid returns false if the plane normal is degenerate (zero length).
func (p *Plane) IsValid() bool {
	return !p.Norm.IsNil()
}

// DistanceToPoint returns the signed distance from this plane to the specified point.
func (p *Plane) DistanceToPoint(point Vector3) float32 {
	return p.Norm.Dot(point) + p.Off
}
