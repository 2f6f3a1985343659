// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/pointgizmo/math32"
)

// Pose contains the full specification of position and orientation,
// always relevant to the parent element.
type Pose struct {
	// position of center of element (relative to parent)
	Pos math32.Vector3

	// scale (relative to parent)
	Scale math32.Vector3

	// Node rotation specified as a Quat (relative to parent)
	Quat math32.Quat

	// Local matrix. Contains all position/rotation/scale information (relative to parent)
	Matrix math32.Matrix4 `display:"-"`

	// Parent's world matrix -- we cache this so that we can independently update our own matrix
	ParMatrix math32.Matrix4 `display:"-"`

	// World matrix. Contains all absolute position/rotation/scale information (i.e. relative to very top parent, generally the scene)
	WorldMatrix math32.Matrix4 `display:"-"`
}

// Defaults sets defaults only if current values are nil
func (ps *Pose) Defaults() {
	if ps.Scale.IsNil() {
		ps.Scale.Set(1, 1, 1)
	}
	if ps.Quat.IsNil() {
		ps.Quat.SetIdentity()
	}
}

// UpdateMatrix updates the local transform matrix based on its position, quaternion, and scale.
// Also checks for degenerate nil values
func (ps *Pose) UpdateMatrix() {
	ps.Defaults()
	ps.Matrix.SetTransform(ps.Pos, ps.Quat, ps.Scale)
}

// UpdateWorldMatrix updates the world transform matrix based on Matrix and parent's WorldMatrix.
// Does NOT call UpdateMatrix so that can include other factors as needed.
func (ps *Pose) UpdateWorldMatrix(parWorld *math32.Matrix4) {
	if parWorld != nil {
		ps.ParMatrix.CopyFrom(parWorld)
	}
	ps.WorldMatrix.MulMatrices(&ps.ParMatrix, &ps.Matrix)
}

// SetUniformScale sets the scale to the same value on all axes.
func (ps *Pose) SetUniformScale(sc float32) {
	ps.Scale.SetScalar(sc)
}

// SetAxisRotation sets rotation from local axis and angle in degrees.
func (ps *Pose) SetAxisRotation(x, y, z, angle float32) {
	ps.Quat.SetFromAxisAngle(math32.Vec3(x, y, z), math32.DegToRad(angle))
}

// WorldPos returns the current world position.
func (ps *Pose) WorldPos() math32.Vector3 {
	pos := math32.Vector3{}
	pos.SetFromMatrixPos(&ps.WorldMatrix)
	return pos
}

// WorldDir returns the given local direction transformed into world space
// (not normalized).
func (ps *Pose) WorldDir(dir math32.Vector3) math32.Vector3 {
	return dir.MulMatrix4AsVector4(&ps.WorldMatrix, 0)
}

// LookAt points the element at given target location using given up direction.
// The element looks down its local -Z axis, as a camera does.
func (ps *Pose) LookAt(target, upDir math32.Vector3) {
	var view math32.Matrix4
	view.SetLookAt(ps.Pos, target, upDir)
	var q math32.Quat
	q.SetFromRotationMatrix(&view)
	ps.Quat = q.Inverse()
}
