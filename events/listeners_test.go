// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListenersOrder(t *testing.T) {
	var ls Listeners
	assert.False(t, ls.Has(MouseEnter))
	var calls []string
	ls.Add(MouseEnter, func(ev Event) { calls = append(calls, "first") })
	ls.Add(MouseEnter, func(ev Event) { calls = append(calls, "second") })
	assert.True(t, ls.Has(MouseEnter))

	ls.Call(NewMouse(MouseEnter, NoButton, image.Pt(1, 2), 0))
	assert.Equal(t, []string{"second", "first"}, calls)

	calls = nil
	ls.Call(NewMouse(MouseLeave, NoButton, image.Pt(1, 2), 0))
	assert.Empty(t, calls)
}

func TestListenersHandled(t *testing.T) {
	var ls Listeners
	n := 0
	ls.Add(SlideMove, func(ev Event) { n++ })
	ls.Add(SlideMove, func(ev Event) {
		n += 10
		ev.SetHandled()
	})
	ev := NewMouse(SlideMove, Left, image.Pt(3, 4), Shift)
	ls.Call(ev)
	assert.Equal(t, 10, n)
	assert.True(t, ev.IsHandled())

	// already handled events are not delivered again
	ls.Call(ev)
	assert.Equal(t, 10, n)

	cl := ev.Clone(SlideStop)
	assert.False(t, cl.IsHandled())
	assert.Equal(t, SlideStop, cl.Type())
	assert.Equal(t, image.Pt(3, 4), cl.Pos())
	assert.Equal(t, Shift, cl.Modifiers())
}

func TestTypesString(t *testing.T) {
	assert.Equal(t, "SlideMove", SlideMove.String())
	assert.Equal(t, "Types(99)", Types(99).String())
	assert.Equal(t, "UnknownType", UnknownType.String())
	assert.Equal(t, "SelectionChanged", SelectionChanged.String())
	assert.True(t, SlideStart.IsSlide())
	assert.False(t, MouseEnter.IsSlide())
	assert.Equal(t, "Shift|Alt", (Shift | Alt).String())
	assert.Equal(t, ExtendOne, SelectModeBits(Control))
	assert.Equal(t, SelectOne, SelectModeBits(Alt))
	assert.Equal(t, "ExtendOne", ExtendOne.String())
	assert.Equal(t, "SelectModes(2)", SelectModes(2).String())
}
