// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"
	"image"
)

// Mouse is a basic mouse event for all mouse events.
type Mouse struct {
	Base
}

func NewMouse(typ Types, but Buttons, where image.Point, mods Modifiers) *Mouse {
	ev := &Mouse{}
	ev.Init()
	ev.Typ = typ
	ev.Button = but
	ev.Where = where
	ev.Prev = where
	ev.Mods = mods
	return ev
}

func (ev *Mouse) String() string {
	return fmt.Sprintf("%v{Button: %v, Pos: %v, Mods: %v, Time: %v}", ev.Type(), ev.Button, ev.Where, ev.Mods, ev.Time().Format("04:05"))
}

func NewMouseMove(but Buttons, where, prev image.Point, mods Modifiers) *Mouse {
	ev := NewMouse(MouseMove, but, where, mods)
	ev.Prev = prev
	return ev
}

func NewMouseDrag(but Buttons, where, prev, start image.Point, mods Modifiers) *Mouse {
	ev := NewMouse(MouseDrag, but, where, mods)
	ev.Prev = prev
	ev.Start = start
	return ev
}
