// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image"
	"testing"

	"cogentcore.org/pointgizmo/base/tolassert"
	"cogentcore.org/pointgizmo/math32"
	"github.com/stretchr/testify/assert"
)

func TestCameraDefaults(t *testing.T) {
	var cm Camera
	cm.Defaults()
	assertVector(t, math32.Vec3(0, 0, 10), cm.Position())
	assertVector(t, math32.Vec3(0, 0, -1), cm.ViewDir())
	tolassert.Equal(t, 10, cm.DistanceTo(math32.Vector3{}))

	cm.Pose.Pos.Set(10, 0, 0)
	cm.LookAtOrigin()
	assertVector(t, math32.Vec3(-1, 0, 0), cm.ViewDir())
}

func TestPixelToNDC(t *testing.T) {
	sz := image.Pt(800, 600)
	ndc := PixelToNDC(math32.Vec2(0, 0), sz)
	assert.Equal(t, math32.Vec2(-1, 1), ndc)
	ndc = PixelToNDC(math32.Vec2(400, 300), sz)
	assert.Equal(t, math32.Vec2(0, 0), ndc)
	ndc = PixelToNDC(math32.Vec2(800, 600), sz)
	assert.Equal(t, math32.Vec2(1, -1), ndc)
	assert.Equal(t, math32.Vec2(200, 450), NDCToPixel(PixelToNDC(math32.Vec2(200, 450), sz), sz))
}

func TestProjectUnproject(t *testing.T) {
	var cm Camera
	cm.Defaults()
	pt := math32.Vec3(1, 2, -3)
	ndc := cm.Project(pt)
	back := cm.Unproject(ndc)
	tolassert.EqualTol(t, pt.X, back.X, 1e-3)
	tolassert.EqualTol(t, pt.Y, back.Y, 1e-3)
	tolassert.EqualTol(t, pt.Z, back.Z, 1e-3)
}

func TestRayFromPixel(t *testing.T) {
	var cm Camera
	cm.Defaults()
	cm.Aspect = 800.0 / 600.0
	cm.UpdateMatrix()
	ray := cm.RayFromPixel(math32.Vec2(400, 300), image.Pt(800, 600))
	assertVector(t, math32.Vec3(0, 0, 10), ray.Origin)
	assertVector(t, math32.Vec3(0, 0, -1), ray.Dir)

	// a ray through the projection of a point passes through that point
	pt := math32.Vec3(1.5, -0.5, 2)
	pix := NDCToPixel(math32.Vec2(cm.Project(pt).X, cm.Project(pt).Y), image.Pt(800, 600))
	ray = cm.RayFromPixel(pix, image.Pt(800, 600))
	d, _, _ := ray.DistanceToSegment(pt, pt)
	tolassert.EqualTol(t, 0, d, 1e-3)
}

func TestOrthoRay(t *testing.T) {
	var cm Camera
	cm.Defaults()
	cm.Ortho = true
	cm.UpdateMatrix()
	height := 20 * math32.Tan(math32.DegToRad(15))
	tolassert.Equal(t, height, cm.ViewHeight())

	ray := cm.RayFromNDC(math32.Vec2(0, 0))
	assertVector(t, math32.Vec3(0, 0, 10-cm.Near), ray.Origin)
	assertVector(t, math32.Vec3(0, 0, -1), ray.Dir)

	ray = cm.RayFromNDC(math32.Vec2(1, 1))
	assertVector(t, math32.Vec3(cm.Aspect*height/2, height/2, 10-cm.Near), ray.Origin)
	assertVector(t, math32.Vec3(0, 0, -1), ray.Dir)

	tolassert.Equal(t, 600/height, cm.ProjectedRadius(1, 123, 600))
}

func TestProjectedRadius(t *testing.T) {
	var cm Camera
	cm.Defaults()
	cm.FOV = 60
	want := 800 / (2 * math32.Tan(math32.DegToRad(30))) / 10
	tolassert.Equal(t, want, cm.ProjectedRadius(1, 10, 800))
	tolassert.Equal(t, float32(69.282), cm.ProjectedRadius(1, 10, 800))
	tolassert.Equal(t, 2*want, cm.ProjectedRadius(2, 10, 800))
}

func TestCameraOrbitZoom(t *testing.T) {
	var cm Camera
	cm.Defaults()
	cm.Orbit(90, 0)
	tolassert.Equal(t, 10, cm.DistanceTo(cm.Target))
	assertVector(t, cm.Target.Sub(cm.Position()).Normal(), cm.ViewDir())

	cm.Zoom(-0.5)
	tolassert.Equal(t, 5, cm.DistanceTo(cm.Target))
}
