// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"image"
	"log/slog"
	"time"

	"cogentcore.org/pointgizmo/base/errors"
	"cogentcore.org/pointgizmo/events"
	"cogentcore.org/pointgizmo/gizmo"
	"cogentcore.org/pointgizmo/internal/sceneio"
	"cogentcore.org/pointgizmo/xyz"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game is the ebiten game running the viewer: all scene and gizmo
// updates happen on the game thread, in Update.
type Game struct {
	scene  *xyz.Scene
	tool   *gizmo.Tool
	clouds []*xyz.Solid

	paramsFile string
	watcher    *fileWatcher

	pos      image.Point
	pressed  bool
	pressPos image.Point
	prevPos  image.Point
}

// NewGame builds the scene from the given description and creates the tool.
// If paramsFile is set, it is watched and reloaded on change.
func NewGame(sd *sceneio.Scene, params *gizmo.Params, paramsFile string) (*Game, error) {
	g := &Game{paramsFile: paramsFile}
	g.scene = xyz.NewScene("gizmoview")
	var err error
	g.clouds, err = sd.Build(g.scene)
	if err != nil {
		return nil, err
	}
	g.tool = gizmo.NewTool(g.scene, params)
	if paramsFile != "" {
		g.watcher, err = newFileWatcher(paramsFile, 100*time.Millisecond)
		if err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Close releases the tool and the params file watcher.
func (g *Game) Close() error {
	g.tool.Release()
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

// reloadParams applies changes from the params file, if any.
func (g *Game) reloadParams() {
	if g.watcher == nil {
		return
	}
	select {
	case fn := <-g.watcher.Changed:
		params := g.tool.Params
		if errors.Log(params.Open(fn)) != nil {
			return
		}
		if errors.Log(g.tool.SetParams(&params)) == nil {
			slog.Info("gizmoview: reloaded params", "file", fn)
		}
	case err := <-g.watcher.Errors:
		errors.Log(err)
	default:
	}
}

func (g *Game) Update() error {
	g.reloadParams()
	g.handleKeys()
	g.handleMouse()
	g.scene.UpdateMatrices()
	g.tool.Update()
	return nil
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	sz := image.Pt(outsideWidth, outsideHeight)
	if sz != g.scene.Size {
		g.scene.SetSize(sz)
	}
	return outsideWidth, outsideHeight
}

func (g *Game) modifiers() events.Modifiers {
	var mods events.Modifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= events.Shift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= events.Control
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= events.Alt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= events.Meta
	}
	return mods
}

func (g *Game) handleKeys() {
	modeKeys := map[ebiten.Key]gizmo.Modes{
		ebiten.Key1: gizmo.ModeTranslate,
		ebiten.Key2: gizmo.ModeRotate,
		ebiten.Key3: gizmo.ModeScale,
		ebiten.Key0: gizmo.ModeNone,
	}
	for key, mode := range modeKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.tool.SetMode(mode)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.scene.Selection.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		g.scene.Camera.DefaultPose()
	}

	cam := &g.scene.Camera
	var dx, dy float32
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyArrowLeft):
		dx = 1
	case ebiten.IsKeyPressed(ebiten.KeyArrowRight):
		dx = -1
	}
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyArrowUp):
		dy = 1
	case ebiten.IsKeyPressed(ebiten.KeyArrowDown):
		dy = -1
	}
	navigate(cam, dx, dy, g.modifiers())
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyEqual), ebiten.IsKeyPressed(ebiten.KeyNumpadAdd):
		cam.Zoom(-0.02)
	case ebiten.IsKeyPressed(ebiten.KeyMinus), ebiten.IsKeyPressed(ebiten.KeyNumpadSubtract):
		cam.Zoom(0.02)
	}
	if _, dy := ebiten.Wheel(); dy != 0 {
		cam.Zoom(-float32(dy) * 0.05)
	}
}

// navigate orbits the camera around its target by the given arrow key
// directions, or pans it with Shift.
func navigate(cam *xyz.Camera, dx, dy float32, mods events.Modifiers) {
	const orbit, pan = 2, 0.05
	switch {
	case dx == 0 && dy == 0:
	case mods&events.Shift != 0:
		cam.Pan(-dx*pan, dy*pan)
	default:
		cam.Orbit(dx*orbit, dy*orbit)
	}
}

// handleMouse turns the ebiten mouse state into pointer events for the
// scene overlays. Clicks that no overlay consumes select clouds.
func (g *Game) handleMouse() {
	x, y := ebiten.CursorPosition()
	g.prevPos = g.pos
	g.pos = image.Pt(x, y)
	mods := g.modifiers()

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.pressed = true
		g.pressPos = g.pos
		ev := events.NewMouse(events.MouseDown, events.Left, g.pos, mods)
		if !g.scene.HandlePointer(ev) {
			g.selectAt(g.pos, mods)
		}
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.pressed = false
		g.scene.HandlePointer(events.NewMouse(events.MouseUp, events.Left, g.pos, mods))
	case g.pos != g.prevPos:
		if g.pressed {
			g.scene.HandlePointer(events.NewMouseDrag(events.Left, g.pos, g.prevPos, g.pressPos, mods))
		} else {
			g.scene.HandlePointer(events.NewMouseMove(events.NoButton, g.pos, g.prevPos, mods))
		}
	}
}

// selectAt selects the nearest cloud under the given pixel position.
// In [events.ExtendOne] mode the cloud is added to or removed from the
// selection, and a click on empty space keeps it.
func (g *Game) selectAt(pos image.Point, mods events.Modifiers) {
	mode := events.SelectModeBits(mods)
	sp := g.scene.PickSolids(pos)
	if len(sp) == 0 {
		if mode == events.SelectOne {
			g.scene.Selection.Clear()
		}
		return
	}
	sld := sp[0].Solid
	slog.Debug("gizmoview: picked", "cloud", sld.Name, "at", sp[0].Point, "mode", mode)
	switch mode {
	case events.ExtendOne:
		g.scene.Selection.Toggle(sld)
	default:
		g.scene.Selection.Set(sld)
	}
}
