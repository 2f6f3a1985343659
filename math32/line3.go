// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit the gizmo geometry.

package math32

// Line3 represents a 3D line segment defined by a start and an end point.
type Line3 struct {
	Start Vector3
	End   Vector3
}

// NewLine3 creates and returns a new Line3 with the
// specified start and end points.
func NewLine3(start, end Vector3) Line3 {
	return Line3{start, end}
}

// Delta calculates the vector from the start to endpoint of this line.
func (l Line3) Delta() Vector3 {
	return l.End.Sub(l.Start)
}

// Length returns the length from this line start to end.
func (l Line3) Length() float32 {
	return l.Start.DistanceTo(l.End)
}

// At returns the point on the line at parameter t,
// where t = 0 is Start and t = 1 is End.
func (l Line3) At(t float32) Vector3 {
	return l.Delta().MulScalar(t).Add(l.Start)
}

// ClosestPointToPointParameter returns the parameter t of the point
// on this line closest to the given point, so that At(t) is that point.
// If clampToLine is true, t is clamped to [0, 1] (the segment),
// otherwise the line is treated as infinite.
// A degenerate line (Start == End) returns 0.
func (l Line3) ClosestPointToPointParameter(point Vector3, clampToLine bool) float32 {
	startP := point.Sub(l.Start)
	startEnd := l.Delta()
	se2 := startEnd.Dot(startEnd)
	if se2 == 0 {
		return 0
	}
	t := startEnd.Dot(startP) / se2
	if clampToLine {
		t = Clamp(t, 0, 1)
	}
	return t
}

// ClosestPointToPoint returns the point on this line closest to the given point.
// See [Line3.ClosestPointToPointParameter] for clampToLine.
func (l Line3) ClosestPointToPoint(point Vector3, clampToLine bool) Vector3 {
	return l.At(l.ClosestPointToPointParameter(point, clampToLine))
}
