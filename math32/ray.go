// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit the gizmo geometry.

package math32

// Ray represents an oriented 3D line segment defined by an origin point and a direction vector.
type Ray struct {
	Origin Vector3
	Dir    Vector3
}

// NewRay creates and returns a pointer to a Ray object with
// the specified origin and direction vectors.
// The direction is normalized.
func NewRay(origin, dir Vector3) *Ray {
	return &Ray{Origin: origin, Dir: dir.Normal()}
}

// At calculates the point in the ray which is at the specified t distance from the origin
// along its direction.
func (ray *Ray) At(t float32) Vector3 {
	return ray.Dir.MulScalar(t).Add(ray.Origin)
}

// DistanceToSegment returns the distance between this ray and the segment
// from v0 to v1, with the closest point on the ray and on the segment.
// Points behind the ray origin are not considered.
func (ray *Ray) DistanceToSegment(v0, v1 Vector3) (dist float32, rayPt, segPt Vector3) {
	// from http://www.geometrictools.com/LibMathematics/Distance/Wm5DistRay3Segment3.cpp
	segCenter := v0.Add(v1).MulScalar(0.5)
	segDir := v1.Sub(v0).Normal()
	segExtent := v0.DistanceTo(v1) * 0.5
	diff := ray.Origin.Sub(segCenter)
	a01 := -ray.Dir.Dot(segDir)
	b0 := diff.Dot(ray.Dir)
	b1 := -diff.Dot(segDir)
	det := Abs(1 - a01*a01)

	var s0, s1 float32
	if det > 0 {
		// the ray and segment are not parallel
		s0 = a01*b1 - b0
		s1 = a01*b0 - b1
		extDet := segExtent * det
		switch {
		case s0 >= 0 && s1 >= -extDet && s1 <= extDet:
			s0 /= det
			s1 /= det
		case s0 >= 0 && s1 > extDet:
			s1 = segExtent
			s0 = Max(0, -(a01*s1 + b0))
		case s0 >= 0:
			s1 = -segExtent
			s0 = Max(0, -(a01*s1 + b0))
		case s1 <= -extDet:
			s0 = Max(0, -(-a01*segExtent + b0))
			if s0 > 0 {
				s1 = -segExtent
			} else {
				s1 = Clamp(-b1, -segExtent, segExtent)
			}
		case s1 <= extDet:
			s0 = 0
			s1 = Clamp(-b1, -segExtent, segExtent)
		default:
			s0 = Max(0, -(a01*segExtent + b0))
			if s0 > 0 {
				s1 = segExtent
			} else {
				s1 = Clamp(-b1, -segExtent, segExtent)
			}
		}
	} else {
		// parallel
		s1 = segExtent
		if a01 > 0 {
			s1 = -segExtent
		}
		s0 = Max(0, -(a01*s1 + b0))
	}
	rayPt = ray.At(s0)
	segPt = segDir.MulScalar(s1).Add(segCenter)
	return rayPt.DistanceTo(segPt), rayPt, segPt
}

// DistanceToPlane returns the distance along the ray to the specified plane.
// It returns false if the ray is parallel to the plane (including lying in it)
// or if the plane is behind the ray origin.
func (ray *Ray) DistanceToPlane(plane Plane) (float32, bool) {
	denom := plane.Norm.Dot(ray.Dir)
	if Abs(denom) < 1e-12 {
		return 0, false
	}
	t := -(ray.Origin.Dot(plane.Norm) + plane.Off) / denom
	if t < 0 {
		return 0, false
	}
	return t, true
}

// IntersectPlane returns the intersection point of this ray with the specified plane.
// It returns false if there is no intersection (see [Ray.DistanceToPlane]).
func (ray *Ray) IntersectPlane(plane Plane) (Vector3, bool) {
	t, ok := ray.DistanceToPlane(plane)
	if !ok {
		return Vector3{}, false
	}
	return ray.At(t), true
}

// IntersectBox calculates the point which is the intersection of this ray with the specified box.
// It returns false if there is no intersection or the box is behind the ray origin.
// If the origin is inside the box, the exit point is returned.
func (ray *Ray) IntersectBox(box Box3) (Vector3, bool) {
	// http://www.scratchapixel.com/lessons/3d-basic-lessons/lesson-7-intersecting-simple-shapes/ray-box-intersection/
	var tmin, tmax, tymin, tymax, tzmin, tzmax float32

	invdirx := 1 / ray.Dir.X
	invdiry := 1 / ray.Dir.Y
	invdirz := 1 / ray.Dir.Z

	origin := ray.Origin

	if invdirx >= 0 {
		tmin = (box.Min.X - origin.X) * invdirx
		tmax = (box.Max.X - origin.X) * invdirx
	} else {
		tmin = (box.Max.X - origin.X) * invdirx
		tmax = (box.Min.X - origin.X) * invdirx
	}

	if invdiry >= 0 {
		tymin = (box.Min.Y - origin.Y) * invdiry
		tymax = (box.Max.Y - origin.Y) * invdiry
	} else {
		tymin = (box.Max.Y - origin.Y) * invdiry
		tymax = (box.Min.Y - origin.Y) * invdiry
	}

	if (tmin > tymax) || (tymin > tmax) {
		return Vector3{}, false
	}

	// These lines also handle the case where tmin or tmax is NaN
	// (result of 0 * Infinity). x !== x returns true if x is NaN
	if tymin > tmin || IsNaN(tmin) {
		tmin = tymin
	}
	if tymax < tmax || IsNaN(tmax) {
		tmax = tymax
	}

	if invdirz >= 0 {
		tzmin = (box.Min.Z - origin.Z) * invdirz
		tzmax = (box.Max.Z - origin.Z) * invdirz
	} else {
		tzmin = (box.Max.Z - origin.Z) * invdirz
		tzmax = (box.Min.Z - origin.Z) * invdirz
	}

	if (tmin > tzmax) || (tzmin > tmax) {
		return Vector3{}, false
	}
	if tzmin > tmin || IsNaN(tmin) {
		tmin = tzmin
	}
	if tzmax < tmax || IsNaN(tmax) {
		tmax = tzmax
	}

	// return point closest to the ray (positive side)
	if tmax < 0 {
		return Vector3{}, false
	}
	if tmin >= 0 {
		return ray.At(tmin), true
	}
	return ray.At(tmax), true
}
