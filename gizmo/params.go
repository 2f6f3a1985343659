// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gizmo

import (
	"fmt"
	"image/color"
	"io"
	"os"

	"cogentcore.org/pointgizmo/math32"
	"github.com/mazznoer/csscolorparser"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/image/colornames"
)

// Color is an RGBA color that is read and written as a CSS color string,
// such as "yellow" or "#ff8000".
type Color color.RGBA

// UnmarshalText parses a CSS color string.
func (c *Color) UnmarshalText(text []byte) error {
	cc, err := csscolorparser.Parse(string(text))
	if err != nil {
		return fmt.Errorf("gizmo.Color: %w", err)
	}
	r, g, b, a := cc.RGBA255()
	*c = Color{r, g, b, a}
	return nil
}

// MarshalText returns the color as a hex string.
func (c Color) MarshalText() ([]byte, error) {
	cc := csscolorparser.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255, A: float64(c.A) / 255}
	return []byte(cc.HexString()), nil
}

// Params are the display and interaction parameters of the [Tool].
type Params struct {
	// ScreenSize is the apparent size of the handles in pixels:
	// the overlay scale is ScreenSize divided by the projected radius
	// of a unit sphere at the pivot.
	ScreenSize float32 `default:"150"`

	// Highlight is the color of a handle while the pointer is over it.
	Highlight Color `default:"yellow"`

	// XColor is the base color of the X axis handle.
	XColor Color `default:"red"`

	// YColor is the base color of the Y axis handle.
	YColor Color `default:"lime"`

	// ZColor is the base color of the Z axis handle.
	ZColor Color `default:"blue"`

	// ShaftWidth is the line width of the arrow shafts, in pixels.
	ShaftWidth float32 `default:"2"`

	// HeadRadius is the base radius of the arrow heads, relative to the
	// unit arrow length.
	HeadRadius float32 `default:"0.06"`

	// HeadHeight is the height of the arrow heads, relative to the
	// unit arrow length.
	HeadHeight float32 `default:"0.2"`

	// HeadSegments is the number of segments around the arrow heads.
	HeadSegments int `default:"16"`

	// PickPixels is the pick tolerance around the handles, in pixels.
	PickPixels float32 `default:"6"`
}

// Defaults sets the default parameters.
func (p *Params) Defaults() {
	p.ScreenSize = 150
	p.Highlight = Color(colornames.Yellow)
	p.XColor = Color(colornames.Red)
	p.YColor = Color(colornames.Lime)
	p.ZColor = Color(colornames.Blue)
	p.ShaftWidth = 2
	p.HeadRadius = 0.06
	p.HeadHeight = 0.2
	p.HeadSegments = 16
	p.PickPixels = 6
}

// NewParams returns new default parameters.
func NewParams() *Params {
	p := &Params{}
	p.Defaults()
	return p
}

// AxisColor returns the base color for the given axis.
func (p *Params) AxisColor(axis math32.Dims) color.RGBA {
	switch axis {
	case math32.Y:
		return color.RGBA(p.YColor)
	case math32.Z:
		return color.RGBA(p.ZColor)
	default:
		return color.RGBA(p.XColor)
	}
}

// Validate returns an error if any parameter is out of range.
func (p *Params) Validate() error {
	switch {
	case p.ScreenSize <= 0:
		return fmt.Errorf("gizmo.Params: ScreenSize must be positive, got %g", p.ScreenSize)
	case p.HeadRadius <= 0 || p.HeadHeight <= 0:
		return fmt.Errorf("gizmo.Params: head size must be positive, got radius %g height %g", p.HeadRadius, p.HeadHeight)
	case p.HeadSegments < 3:
		return fmt.Errorf("gizmo.Params: HeadSegments must be at least 3, got %d", p.HeadSegments)
	case p.PickPixels < 0:
		return fmt.Errorf("gizmo.Params: PickPixels must not be negative, got %g", p.PickPixels)
	}
	return nil
}

// Read reads TOML parameters from the given reader on top of the current
// values, so keys missing from the input keep their values.
func (p *Params) Read(r io.Reader) error {
	np := *p
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&np); err != nil {
		return fmt.Errorf("gizmo.Params: %w", err)
	}
	if err := np.Validate(); err != nil {
		return err
	}
	*p = np
	return nil
}

// Open reads TOML parameters from the given file.
func (p *Params) Open(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return p.Read(f)
}

// Write writes the parameters as TOML to the given writer.
func (p *Params) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(p)
}

// Save writes the parameters as TOML to the given file.
func (p *Params) Save(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	return p.writeClose(f)
}

// writeClose writes the parameters to wc and closes it,
// returning the first error.
func (p *Params) writeClose(wc io.WriteCloser) error {
	err := p.Write(wc)
	if cerr := wc.Close(); err == nil {
		err = cerr
	}
	return err
}
