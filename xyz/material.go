// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Material describes the material properties of a surface or line
// as needed by the overlay and point renderers.
// The alpha component of Color is used for opacity.
type Material struct {
	// Color is the main color of the surface, line or points.
	Color color.RGBA

	// DepthTest is whether the renderer compares fragments against the
	// depth buffer. Overlays turn it off so they always draw on top.
	DepthTest bool

	// DepthWrite is whether the renderer writes to the depth buffer.
	DepthWrite bool

	// LineWidth is the width of rendered lines in pixels.
	LineWidth float32

	// PointSize is the size of rendered points in pixels.
	PointSize float32
}

// Defaults sets default surface parameters
func (mt *Material) Defaults() {
	mt.Color = colornames.White
	mt.DepthTest = true
	mt.DepthWrite = true
	mt.LineWidth = 1
	mt.PointSize = 2
}

// SetColor sets the main color and returns the material for chaining.
func (mt *Material) SetColor(clr color.RGBA) *Material {
	mt.Color = clr
	return mt
}

// NoDepth turns off depth testing and writing, so the material
// always renders on top of the rest of the scene.
func (mt *Material) NoDepth() *Material {
	mt.DepthTest = false
	mt.DepthWrite = false
	return mt
}
