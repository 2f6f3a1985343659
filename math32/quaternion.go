// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit the gizmo geometry.

package math32

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Quat is quaternion with X,Y,Z and W components.
type Quat struct {
	X float32
	Y float32
	Z float32
	W float32
}

// NewQuat returns a new quaternion from the specified components.
func NewQuat(x, y, z, w float32) Quat {
	return Quat{X: x, Y: y, Z: z, W: w}
}

// NewQuatAxisAngle returns a new quaternion from given axis and angle rotation (radians).
func NewQuatAxisAngle(axis Vector3, angle float32) Quat {
	nq := Quat{}
	nq.SetFromAxisAngle(axis, angle)
	return nq
}

// QuatFromMGL returns a new quaternion from an mgl32 quaternion.
func QuatFromMGL(q mgl32.Quat) Quat {
	return Quat{X: q.V[0], Y: q.V[1], Z: q.V[2], W: q.W}
}

// MGL returns the quaternion as an mgl32 quaternion.
func (q Quat) MGL() mgl32.Quat {
	return mgl32.Quat{W: q.W, V: mgl32.Vec3{q.X, q.Y, q.Z}}
}

func (q Quat) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", q.X, q.Y, q.Z, q.W)
}

// Set sets this quaternion's components.
func (q *Quat) Set(x, y, z, w float32) {
	q.X = x
	q.Y = y
	q.Z = z
	q.W = w
}

// SetIdentity sets this quanternion to the identity quaternion.
func (q *Quat) SetIdentity() {
	q.Set(0, 0, 0, 1)
}

// IsIdentity returns if this is an identity quaternion.
func (q Quat) IsIdentity() bool {
	return q.X == 0 && q.Y == 0 && q.Z == 0 && q.W == 1
}

// IsNil returns true if all values are 0 (uninitialized).
func (q Quat) IsNil() bool {
	return q.X == 0 && q.Y == 0 && q.Z == 0 && q.W == 0
}

// SetFromAxisAngle sets this quaternion with the rotation
// specified by the given axis and angle (radians).
func (q *Quat) SetFromAxisAngle(axis Vector3, angle float32) {
	*q = QuatFromMGL(mgl32.QuatRotate(angle, axis.Normal().MGL()))
}

// Mul returns multiplication of this quaternion with other
func (q Quat) Mul(other Quat) Quat {
	return QuatFromMGL(q.MGL().Mul(other.MGL()))
}

// SetMul sets this quaternion to the multiplication of itself by other.
func (q *Quat) SetMul(other Quat) {
	*q = q.Mul(other)
}

// Inverse returns the inverse of this unit quaternion (its conjugate).
func (q Quat) Inverse() Quat {
	return Quat{-q.X, -q.Y, -q.Z, q.W}
}

// SetFromRotationMatrix sets this quaternion from the rotation part
// (upper 3x3, assumed unscaled) of the specified matrix.
func (q *Quat) SetFromRotationMatrix(m *Matrix4) {
	*q = QuatFromMGL(mgl32.Mat4ToQuat(m.MGL()).Normalize())
}
