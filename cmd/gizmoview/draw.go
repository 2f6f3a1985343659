// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image/color"

	"cogentcore.org/pointgizmo/base/logx"
	"cogentcore.org/pointgizmo/math32"
	"cogentcore.org/pointgizmo/xyz"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

// segment is a line segment in pixel coordinates.
type segment struct {
	From, To math32.Vector2
}

// project maps a world point into pixel coordinates of the scene viewport.
// It returns false for points outside the depth range of the camera.
func project(sc *xyz.Scene, pt math32.Vector3) (math32.Vector2, bool) {
	ndc := sc.Camera.Project(pt)
	if ndc.Z < -1 || ndc.Z > 1 || math32.IsNaN(ndc.X) || math32.IsNaN(ndc.Y) {
		return math32.Vector2{}, false
	}
	return xyz.NDCToPixel(math32.Vec2(ndc.X, ndc.Y), sc.Size), true
}

// worldSegments returns the world-space segments outlining the mesh of
// the given solid: the lines of a [xyz.Lines], and the base ring and
// sides of a [xyz.Cone].
func worldSegments(sld *xyz.Solid) [][2]math32.Vector3 {
	wm := &sld.Pose.WorldMatrix
	tw := func(p math32.Vector3) math32.Vector3 { return p.MulMatrix4(wm) }
	var segs [][2]math32.Vector3
	switch ms := sld.Mesh.(type) {
	case *xyz.Lines:
		for i := 0; i+1 < len(ms.Points); i += 2 {
			segs = append(segs, [2]math32.Vector3{tw(ms.Points[i]), tw(ms.Points[i+1])})
		}
	case *xyz.Cone:
		apex := tw(ms.Apex())
		base := ms.BasePoints()
		for i, bp := range base {
			p := tw(bp)
			q := tw(base[(i+1)%len(base)])
			segs = append(segs, [2]math32.Vector3{p, apex}, [2]math32.Vector3{p, q})
		}
	}
	return segs
}

// screenSegments projects the outline of the given solid into pixel
// coordinates, dropping segments with an end outside the depth range.
func screenSegments(sc *xyz.Scene, sld *xyz.Solid) []segment {
	var res []segment
	for _, s := range worldSegments(sld) {
		a, aok := project(sc, s[0])
		b, bok := project(sc, s[1])
		if aok && bok {
			res = append(res, segment{a, b})
		}
	}
	return res
}

// boxSegments returns the twelve edges of the box projected into pixel
// coordinates, or nil if any corner is outside the depth range.
func boxSegments(sc *xyz.Scene, bb math32.Box3) []segment {
	var px [8]math32.Vector2
	for i, c := range bb.Corners() {
		p, ok := project(sc, c)
		if !ok {
			return nil
		}
		px[i] = p
	}
	var res []segment
	for i := range 8 {
		for _, bit := range []int{1, 2, 4} {
			if i&bit == 0 {
				res = append(res, segment{px[i], px[i|bit]})
			}
		}
	}
	return res
}

func strokeSegments(dst *ebiten.Image, segs []segment, width float32, clr color.Color) {
	for _, s := range segs {
		vector.StrokeLine(dst, s.From.X, s.From.Y, s.To.X, s.To.Y, width, clr, true)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	sc := g.scene
	screen.Fill(sc.BackgroundColor)

	for _, cl := range g.clouds {
		if cl.Invisible {
			continue
		}
		pc, ok := cl.Mesh.(*xyz.Points)
		if !ok {
			continue
		}
		sz := cl.Material.PointSize
		for _, pt := range pc.Points {
			p, ok := project(sc, pt.MulMatrix4(&cl.Pose.WorldMatrix))
			if !ok {
				continue
			}
			vector.FillRect(screen, p.X-sz/2, p.Y-sz/2, sz, sz, cl.Material.Color, false)
		}
	}

	for _, n := range sc.Selection.Nodes() {
		strokeSegments(screen, boxSegments(sc, n.AsNodeBase().WorldBBox), 1, colornames.Lightgrey)
	}

	if g.tool.Visible() {
		g.tool.Overlay().WalkDown(func(n xyz.Node) bool {
			nb := n.AsNodeBase()
			if nb.Invisible {
				return xyz.Break
			}
			if sld := n.AsSolid(); sld != nil {
				strokeSegments(screen, screenSegments(sc, sld), sld.Material.LineWidth, sld.Material.Color)
			}
			return xyz.Continue
		})
	}

	ebitenutil.DebugPrint(screen, g.statusText())
}

// statusText returns the help text drawn over the view, with the tool
// state when debug logging is on.
func (g *Game) statusText() string {
	s := fmt.Sprintf("mode: %s  selected: %d\n1 translate  2 rotate  3 scale  0 none\nclick select  shift/ctrl-click toggle  esc clear\narrows orbit  shift-arrows pan  +/- zoom  home reset",
		g.tool.Mode(), g.scene.Selection.Len())
	if logx.Debug() && g.tool.Visible() {
		s += fmt.Sprintf("\npivot: %v  scale: %.3g", g.tool.Pivot(), g.tool.DisplayScale())
	}
	return s
}
