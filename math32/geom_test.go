// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"cogentcore.org/pointgizmo/base/tolassert"
	"github.com/stretchr/testify/assert"
)

func TestLine3(t *testing.T) {
	l := NewLine3(Vec3(1, 0, 0), Vec3(2, 0, 0))
	tolAssertEqualVector(t, Vec3(1, 0, 0), l.Delta())
	tolassert.EqualTol(t, 1, l.Length(), standardTol)

	// unclamped projection extends past the segment
	tolAssertEqualVector(t, Vec3(5, 0, 0), l.ClosestPointToPoint(Vec3(5, 3, -2), false))
	tolAssertEqualVector(t, Vec3(-3, 0, 0), l.ClosestPointToPoint(Vec3(-3, 1, 1), false))
	tolassert.EqualTol(t, 4, l.ClosestPointToPointParameter(Vec3(5, 3, -2), false), standardTol)

	// clamped projection stays on it
	tolAssertEqualVector(t, Vec3(2, 0, 0), l.ClosestPointToPoint(Vec3(5, 3, -2), true))

	deg := NewLine3(Vec3(1, 1, 1), Vec3(1, 1, 1))
	tolAssertEqualVector(t, Vec3(1, 1, 1), deg.ClosestPointToPoint(Vec3(4, 0, 0), false))
}

func TestPlane(t *testing.T) {
	var p Plane
	p.SetFromNormalAndCoplanarPoint(Vec3(0, 0, 5), Vec3(3, 4, 2))
	tolAssertEqualVector(t, Vec3(0, 0, 1), p.Norm)
	tolassert.EqualTol(t, -2, p.Off, standardTol)
	tolassert.EqualTol(t, 3, p.DistanceToPoint(Vec3(9, 9, 5)), standardTol)
	assert.True(t, p.IsValid())

	var bad Plane
	bad.SetFromNormalAndCoplanarPoint(Vector3{}, Vec3(1, 1, 1))
	assert.False(t, bad.IsValid())
}

func TestRayIntersectPlane(t *testing.T) {
	ray := NewRay(Vec3(0, 0, 10), Vec3(0, 0, -3))
	tolAssertEqualVector(t, Vec3(0, 0, -1), ray.Dir)

	var p Plane
	p.SetFromNormalAndCoplanarPoint(Vec3(0, 0, 1), Vec3(0, 0, 2))
	pt, ok := ray.IntersectPlane(p)
	assert.True(t, ok)
	tolAssertEqualVector(t, Vec3(0, 0, 2), pt)

	// parallel
	p.SetFromNormalAndCoplanarPoint(Vec3(0, 1, 0), Vector3{})
	_, ok = ray.IntersectPlane(p)
	assert.False(t, ok)

	// lying in the plane is still parallel
	p.SetFromNormalAndCoplanarPoint(Vec3(1, 0, 0), Vector3{})
	_, ok = ray.IntersectPlane(p)
	assert.False(t, ok)

	// behind the origin
	p.SetFromNormalAndCoplanarPoint(Vec3(0, 0, 1), Vec3(0, 0, 20))
	_, ok = ray.IntersectPlane(p)
	assert.False(t, ok)
}

func TestRayIntersectBox(t *testing.T) {
	ray := NewRay(Vec3(0, 0, 10), Vec3(0, 0, -1))
	pt, ok := ray.IntersectBox(B3(-1, -1, -1, 1, 1, 1))
	assert.True(t, ok)
	tolAssertEqualVector(t, Vec3(0, 0, 1), pt)

	_, ok = ray.IntersectBox(B3(2, 2, -1, 3, 3, 1))
	assert.False(t, ok)

	_, ok = ray.IntersectBox(B3(-1, -1, 11, 1, 1, 12))
	assert.False(t, ok)

	inside := NewRay(Vector3{}, Vec3(1, 0, 0))
	pt, ok = inside.IntersectBox(B3(-1, -1, -1, 1, 1, 1))
	assert.True(t, ok)
	tolAssertEqualVector(t, Vec3(1, 0, 0), pt)
}

func TestRayDistanceToSegment(t *testing.T) {
	ray := NewRay(Vec3(0, 0, 10), Vec3(0, 0, -1))

	// crossing segment passing below the ray
	d, rp, sp := ray.DistanceToSegment(Vec3(-1, -2, 0), Vec3(1, -2, 0))
	tolassert.EqualTol(t, 2, d, standardTol)
	tolAssertEqualVector(t, Vec3(0, 0, 0), rp)
	tolAssertEqualVector(t, Vec3(0, -2, 0), sp)

	// the nearest point is a segment end
	d, _, sp = ray.DistanceToSegment(Vec3(1, 0, 0), Vec3(3, 0, 0))
	tolassert.EqualTol(t, 1, d, standardTol)
	tolAssertEqualVector(t, Vec3(1, 0, 0), sp)

	// segment along the ray direction is hit
	d, rp, _ = ray.DistanceToSegment(Vec3(0, 0, 2), Vec3(0, 0, -2))
	tolassert.EqualTol(t, 0, d, standardTol)
	tolassert.EqualTol(t, 2, rp.Z, standardTol)

	// parallel offset segment
	d, _, _ = ray.DistanceToSegment(Vec3(0, 3, 2), Vec3(0, 3, -2))
	tolassert.EqualTol(t, 3, d, standardTol)

	// behind the origin the ray origin is the closest ray point
	d, rp, _ = ray.DistanceToSegment(Vec3(-1, 0, 20), Vec3(1, 0, 20))
	tolassert.EqualTol(t, 10, d, standardTol)
	tolAssertEqualVector(t, Vec3(0, 0, 10), rp)

	// degenerate segment is a point
	d, _, _ = ray.DistanceToSegment(Vec3(4, 0, 3), Vec3(4, 0, 3))
	tolassert.EqualTol(t, 4, d, standardTol)
}

func TestMatrix4(t *testing.T) {
	m := &Matrix4{}
	m.SetTransform(Vec3(1, 2, 3), NewQuat(0, 0, 0, 1), Vec3(2, 2, 2))
	tolAssertEqualVector(t, Vec3(3, 2, 3), Vec3(1, 0, 0).MulMatrix4(m))
	tolAssertEqualVector(t, Vec3(2, 0, 0), Vec3(1, 0, 0).MulMatrix4AsVector4(m, 0))

	inv, err := m.Inverse()
	assert.NoError(t, err)
	tolAssertEqualVector(t, Vec3(1, 0, 0), Vec3(3, 2, 3).MulMatrix4(inv))

	id := m.Mul(inv)
	for i, v := range Identity4() {
		tolassert.EqualTol(t, v, id[i], standardTol)
	}

	var zero Matrix4
	_, err = zero.Inverse()
	assert.Error(t, err)

	m.SetTransform(Vector3{}, NewQuatAxisAngle(Vec3(0, 0, 1), DegToRad(90)), Vec3(1, 1, 1))
	tolAssertEqualVector(t, Vec3(0, 1, 0), Vec3(1, 0, 0).MulMatrix4(m))
	tolAssertEqualVector(t, Vec3(0, 1, 0), Vec3(1, 0, 0).MulQuat(NewQuatAxisAngle(Vec3(0, 0, 1), DegToRad(90))))
}
