// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image"

	"cogentcore.org/pointgizmo/base/errors"
	"cogentcore.org/pointgizmo/math32"
)

// Camera defines the properties of the camera
type Camera struct {
	// overall orientation and direction of the camera, relative to pointing at negative Z axis with up (positive Y) direction
	Pose Pose

	// target location for the camera, where it is pointing at; defaults to the origin, but moves with panning movements, and is reset by a call to LookAt method
	Target math32.Vector3

	// up direction for camera (which way is up); defaults to positive Y axis, and is reset by call to LookAt method
	UpDir math32.Vector3

	// default is a Perspective camera; set this to make it Orthographic instead, in which case the view height is that of the perspective frustum at the target distance.
	Ortho bool

	// field of view in degrees
	FOV float32 `default:"30"`

	// aspect ratio (width/height)
	Aspect float32 `default:"1.5"`

	// near plane z coordinate
	Near float32 `default:".01"`

	// far plane z coordinate
	Far float32 `default:"1000"`

	// view matrix (inverse of the Pose.Matrix)
	ViewMatrix math32.Matrix4 `display:"-"`

	// projection matrix, defining the camera perspective / ortho transform
	ProjectionMatrix math32.Matrix4 `display:"-"`

	// inverse of ProjectionMatrix * ViewMatrix, mapping NDC back into world space
	InvViewProjMatrix math32.Matrix4 `display:"-"`
}

// Defaults sets the default camera parameters and pose.
func (cm *Camera) Defaults() {
	cm.FOV = 30
	cm.Aspect = 1.5
	cm.Near = .01
	cm.Far = 1000
	cm.DefaultPose()
}

// DefaultPose resets the camera pose to default location and orientation, looking
// at the origin from 0,0,10, with up Y axis
func (cm *Camera) DefaultPose() {
	cm.Pose.Defaults()
	cm.Pose.Pos.Set(0, 0, 10)
	cm.LookAtOrigin()
}

// UpdateMatrix updates the view and projection matrices
func (cm *Camera) UpdateMatrix() {
	cm.Pose.UpdateMatrix()
	errors.Log(cm.ViewMatrix.SetInverse(&cm.Pose.Matrix))
	if cm.Ortho {
		height := cm.ViewHeight()
		cm.ProjectionMatrix.SetOrthographic(cm.Aspect*height, height, cm.Near, cm.Far)
	} else {
		cm.ProjectionMatrix.SetPerspective(cm.FOV, cm.Aspect, cm.Near, cm.Far)
	}
	var vp math32.Matrix4
	vp.MulMatrices(&cm.ProjectionMatrix, &cm.ViewMatrix)
	errors.Log(cm.InvViewProjMatrix.SetInverse(&vp))
}

// LookAt points the camera at given target location, using given up direction,
// and sets the Target, UpDir fields for future camera movements.
func (cm *Camera) LookAt(target, upDir math32.Vector3) {
	cm.Target = target
	if upDir.IsNil() {
		upDir = math32.Vec3(0, 1, 0)
	}
	cm.UpDir = upDir
	cm.Pose.LookAt(target, upDir)
	cm.UpdateMatrix()
}

// LookAtOrigin points the camera at origin with Y axis pointing Up (i.e., standard)
func (cm *Camera) LookAtOrigin() {
	cm.LookAt(math32.Vector3{}, math32.Vec3(0, 1, 0))
}

// LookAtTarget points the camera at current target using current up direction
func (cm *Camera) LookAtTarget() {
	cm.LookAt(cm.Target, cm.UpDir)
}

// Position returns the world position of the camera.
func (cm *Camera) Position() math32.Vector3 {
	return cm.Pose.Pos
}

// ViewVector is the vector between the camera position and target
func (cm *Camera) ViewVector() math32.Vector3 {
	return cm.Pose.Pos.Sub(cm.Target)
}

// ViewDir returns the unit direction the camera is looking along.
func (cm *Camera) ViewDir() math32.Vector3 {
	return math32.Vec3(0, 0, -1).MulQuat(cm.Pose.Quat).Normal()
}

// DistanceTo returns the distance from the camera to the given world point.
func (cm *Camera) DistanceTo(pt math32.Vector3) float32 {
	return cm.Pose.Pos.DistanceTo(pt)
}

// ViewHeight returns the height of the visible region, in world units,
// of an orthographic camera: the height of the perspective frustum
// at the target distance.
func (cm *Camera) ViewHeight() float32 {
	dist := cm.ViewVector().Length()
	return 2 * dist * math32.Tan(math32.DegToRad(cm.FOV*0.5))
}

// Orbit moves the camera along the given 2D axes in degrees
// (delX = left/right, delY = up/down),
// relative to current position and orientation,
// keeping the same distance from the Target, and rotating the camera and
// the Up direction vector to keep looking at the target.
func (cm *Camera) Orbit(delX, delY float32) {
	ctdir := cm.ViewVector()
	if ctdir.IsNil() {
		ctdir.Set(0, 0, 1)
	}
	dir := ctdir.Normal()

	up := cm.UpDir
	right := cm.UpDir.Cross(dir).Normal()

	// delX rotates around the up vector
	dxq := math32.NewQuatAxisAngle(up, math32.DegToRad(delX))
	dx := ctdir.MulQuat(dxq).Sub(ctdir)
	// delY rotates around the right vector
	dyq := math32.NewQuatAxisAngle(right, math32.DegToRad(delY))
	dy := ctdir.MulQuat(dyq).Sub(ctdir)

	cm.Pose.Pos = cm.Pose.Pos.Add(dx).Add(dy)
	cm.UpDir = cm.UpDir.MulQuat(dyq) // this is only one that affects up

	cm.LookAtTarget()
}

// Pan moves the camera along the given 2D axes (left/right, up/down),
// relative to current position and orientation (i.e., in the plane of the
// current window view)
// and it moves the target by the same increment, changing the target position.
func (cm *Camera) Pan(delX, delY float32) {
	dx := math32.Vec3(-delX, 0, 0).MulQuat(cm.Pose.Quat)
	dy := math32.Vec3(0, -delY, 0).MulQuat(cm.Pose.Quat)
	td := dx.Add(dy)
	cm.Pose.Pos.SetAdd(td)
	cm.Target.SetAdd(td)
	cm.UpdateMatrix()
}

// Zoom moves along axis given pct closer or further from the target
// it always moves the target back also if it distance is < 1
func (cm *Camera) Zoom(zoomPct float32) {
	ctaxis := cm.ViewVector()
	if ctaxis.IsNil() {
		ctaxis.Set(0, 0, 1)
	}
	dist := ctaxis.Length()
	del := ctaxis.MulScalar(zoomPct)
	cm.Pose.Pos.SetAdd(del)
	if zoomPct < 0 && dist < 1 {
		cm.Target.SetAdd(del)
	}
	cm.UpdateMatrix()
}

// PixelToNDC converts a pixel position within a viewport of the given size
// into normalized device coordinates, with +Y up.
func PixelToNDC(pos math32.Vector2, size image.Point) math32.Vector2 {
	w := float32(max(size.X, 1))
	h := float32(max(size.Y, 1))
	return math32.Vec2((pos.X/w)*2-1, -(pos.Y/h)*2+1)
}

// NDCToPixel converts normalized device coordinates into a pixel position
// within a viewport of the given size.
func NDCToPixel(ndc math32.Vector2, size image.Point) math32.Vector2 {
	return math32.Vec2((ndc.X+1)*0.5*float32(size.X), (1-ndc.Y)*0.5*float32(size.Y))
}

// Unproject maps the given normalized device coordinates into world space,
// as of the last UpdateMatrix.
func (cm *Camera) Unproject(ndc math32.Vector3) math32.Vector3 {
	return ndc.MulMatrix4(&cm.InvViewProjMatrix)
}

// Project maps the given world point into normalized device coordinates.
func (cm *Camera) Project(pt math32.Vector3) math32.Vector3 {
	var vp math32.Matrix4
	vp.MulMatrices(&cm.ProjectionMatrix, &cm.ViewMatrix)
	return pt.MulMatrix4(&vp)
}

// RayFromNDC returns the world-space pick ray through the given normalized
// device coordinates. For a perspective camera the ray starts at the camera
// position and passes through the unprojected point at depth 0.5; for an
// orthographic camera it starts on the near plane and runs along the view
// direction.
func (cm *Camera) RayFromNDC(ndc math32.Vector2) math32.Ray {
	if cm.Ortho {
		org := cm.Unproject(math32.Vec3(ndc.X, ndc.Y, -1))
		return *math32.NewRay(org, cm.ViewDir())
	}
	tgt := cm.Unproject(math32.Vec3(ndc.X, ndc.Y, 0.5))
	return *math32.NewRay(cm.Pose.Pos, tgt.Sub(cm.Pose.Pos))
}

// RayFromPixel returns the world-space pick ray through the given pixel
// position within a viewport of the given size.
func (cm *Camera) RayFromPixel(pos math32.Vector2, size image.Point) math32.Ray {
	return cm.RayFromNDC(PixelToNDC(pos, size))
}

// ProjectedRadius returns the on-screen radius in pixels of a sphere of the
// given world radius at the given distance from the camera, in a viewport
// of the given pixel height.
func (cm *Camera) ProjectedRadius(radius, distance float32, height int) float32 {
	if cm.Ortho {
		return radius * float32(height) / cm.ViewHeight()
	}
	return radius * float32(height) / (2 * math32.Tan(math32.DegToRad(cm.FOV*0.5))) / distance
}
