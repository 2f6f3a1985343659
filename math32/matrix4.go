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
	"errors"

	"github.com/go-gl/mathgl/mgl32"
)

// Matrix4 is 4x4 matrix organized internally as column matrix.
// It has the same memory layout as [mgl32.Mat4], which does the heavy lifting.
type Matrix4 [16]float32

// Identity4 returns a new identity [Matrix4] matrix.
func Identity4() *Matrix4 {
	m := &Matrix4{}
	m.SetIdentity()
	return m
}

// MGL returns the matrix as an mgl32 matrix.
func (m *Matrix4) MGL() mgl32.Mat4 {
	return mgl32.Mat4(*m)
}

// SetIdentity sets this matrix as the identity matrix.
func (m *Matrix4) SetIdentity() {
	*m = Matrix4(mgl32.Ident4())
}

// CopyFrom copies from source matrix into this matrix
// (a regular = assign does not copy data, just the pointer!)
func (m *Matrix4) CopyFrom(src *Matrix4) {
	copy(m[:], src[:])
}

// SetTransform sets this matrix to a transformation matrix for the specified position,
// rotation specified by the quaternion and scale.
func (m *Matrix4) SetTransform(pos Vector3, quat Quat, scale Vector3) {
	t := mgl32.Translate3D(pos.X, pos.Y, pos.Z)
	r := quat.MGL().Normalize().Mat4()
	s := mgl32.Scale3D(scale.X, scale.Y, scale.Z)
	*m = Matrix4(t.Mul4(r).Mul4(s))
}

// MulMatrices sets this matrix as matrix multiplication a by b (i.e., a * b).
func (m *Matrix4) MulMatrices(a, b *Matrix4) {
	*m = Matrix4(a.MGL().Mul4(b.MGL()))
}

// Mul returns this matrix times other matrix (this matrix is unchanged)
func (m *Matrix4) Mul(other *Matrix4) *Matrix4 {
	nm := &Matrix4{}
	nm.MulMatrices(m, other)
	return nm
}

// Determinant calculates and returns the determinant of this matrix.
func (m *Matrix4) Determinant() float32 {
	return m.MGL().Det()
}

// SetInverse sets this matrix to the inverse of the src matrix.
// If the src matrix cannot be inverted returns error and
// sets this matrix to the identity matrix.
func (m *Matrix4) SetInverse(src *Matrix4) error {
	if src.Determinant() == 0 {
		m.SetIdentity()
		return errors.New("math32.Matrix4.SetInverse: cannot invert matrix, determinant is 0")
	}
	*m = Matrix4(src.MGL().Inv())
	return nil
}

// Inverse returns the inverse of this matrix.
// If the matrix cannot be inverted returns error and identity matrix.
func (m *Matrix4) Inverse() (*Matrix4, error) {
	nm := &Matrix4{}
	err := nm.SetInverse(m)
	return nm, err
}

// SetPerspective sets this matrix to a perspective projection matrix
// with the specified vertical field of view in degrees,
// aspect ratio (width/height) and near and far planes.
func (m *Matrix4) SetPerspective(fov, aspect, near, far float32) {
	*m = Matrix4(mgl32.Perspective(DegToRad(fov), aspect, near, far))
}

// SetOrthographic sets this matrix to an orthographic projection matrix
// centered on the view axis with the given width and height.
func (m *Matrix4) SetOrthographic(width, height, near, far float32) {
	hw := width / 2
	hh := height / 2
	*m = Matrix4(mgl32.Ortho(-hw, hw, -hh, hh, near, far))
}

// SetLookAt sets this matrix to the view matrix of an eye at given position
// looking at target with given up direction.
func (m *Matrix4) SetLookAt(eye, target, up Vector3) {
	*m = Matrix4(mgl32.LookAtV(eye.MGL(), target.MGL(), up.MGL()))
}
