// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the pointer events dispatched to scene nodes
// and the per-node listener registry that receives them.
package events

import (
	"fmt"
	"image"
	"time"
)

// Event is the interface for all pointer events.
// Positions are in viewport pixels, origin at the upper left.
type Event interface {
	fmt.Stringer

	// Type returns the type of event.
	Type() Types

	// Pos returns the current position of the pointer.
	Pos() image.Point

	// StartPos returns the position where a drag or slide started.
	StartPos() image.Point

	// PrevPos returns the position at the previous event of the same type.
	PrevPos() image.Point

	// Modifiers returns the modifier keys held during the event.
	Modifiers() Modifiers

	// MouseButton returns the mouse button for the event, if relevant.
	MouseButton() Buttons

	// Time returns the time at which the event was created.
	Time() time.Time

	// IsHandled returns whether this event has already been processed.
	IsHandled() bool

	// SetHandled marks the event as processed, which stops propagation
	// to further listeners.
	SetHandled()

	// Clone returns a copy of the event with the handled flag cleared,
	// of the given new type.
	Clone(typ Types) Event
}

// Base is the base type for events.
// It is designed to be embedded in other event types.
type Base struct {
	// Typ is the type of event.
	Typ Types

	// Button is the mouse button being pressed or released, for relevant events.
	Button Buttons

	// Where is the event location in viewport pixel coordinates.
	Where image.Point

	// Start is where a drag or slide started.
	Start image.Point

	// Prev is the previous location, for move and drag events.
	Prev image.Point

	// Mods are the modifier keys pressed at the time of the event.
	Mods Modifiers

	// GenTime is the time of creation.
	GenTime time.Time

	handled bool
}

func (ev *Base) Type() Types {
	return ev.Typ
}

func (ev *Base) Pos() image.Point {
	return ev.Where
}

func (ev *Base) StartPos() image.Point {
	return ev.Start
}

func (ev *Base) PrevPos() image.Point {
	return ev.Prev
}

func (ev *Base) Modifiers() Modifiers {
	return ev.Mods
}

func (ev *Base) MouseButton() Buttons {
	return ev.Button
}

func (ev *Base) Time() time.Time {
	return ev.GenTime
}

func (ev *Base) IsHandled() bool {
	return ev.handled
}

func (ev *Base) SetHandled() {
	ev.handled = true
}

func (ev *Base) String() string {
	return fmt.Sprintf("%v{Pos: %v, Mods: %v, Time: %v}", ev.Typ, ev.Where, ev.Mods, ev.GenTime.Format("04:05"))
}

// Init sets the time to now.
func (ev *Base) Init() {
	ev.GenTime = time.Now()
}

// Clone returns a copy of the base event with the given type
// and the handled flag cleared.
func (ev *Base) Clone(typ Types) Event {
	nb := *ev
	nb.Typ = typ
	nb.handled = false
	return &nb
}
