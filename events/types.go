// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "strconv"

// Types determines the type of pointer event, and also the
// level at which one can select which events to listen to.
// The names follow the standard
// [JavaScript Event](https://developer.mozilla.org/en-US/docs/Web/Events)
// categories where one exists.
type Types int32

const (
	// zero value is an unknown type
	UnknownType Types = iota

	// MouseDown happens when a mouse button is pressed down. See Button() for which.
	MouseDown

	// MouseUp happens when a mouse button is released. See Button() for which.
	MouseUp

	// MouseMove is always sent when the mouse is moving but no button is down,
	// even if there might be other higher-level events too.
	MouseMove

	// MouseDrag is always sent when the mouse is moving and there
	// is a button down, even if there might be other higher-level events too.
	// The start pos indicates where the button first was pressed.
	MouseDrag

	// MouseEnter is when the mouse enters the picked region of a new element.
	// It is used for setting the Hover state.
	MouseEnter

	// MouseLeave is when the mouse leaves the picked region of an element
	// that previously had a MouseEnter event triggered.
	MouseLeave

	// SlideStart is for a Slideable element when a mouse button is
	// pressed down over it. Starts the slide gesture.
	SlideStart

	// SlideMove is for a Slideable element after SlideStart
	// is being dragged via MouseDrag events.
	SlideMove

	// SlideStop is when the mouse button is released on a Slideable
	// element being dragged via MouseDrag events.
	SlideStop

	// SelectionChanged is sent when the set of selected scene nodes
	// has been replaced.
	SelectionChanged

	TypesN
)

const _TypesName = "UnknownTypeMouseDownMouseUpMouseMoveMouseDragMouseEnterMouseLeaveSlideStartSlideMoveSlideStopSelectionChanged"

var _TypesIndex = [...]uint8{0, 11, 20, 27, 36, 45, 55, 65, 75, 84, 93, 109}

func (i Types) String() string {
	if i < 0 || i >= Types(len(_TypesIndex)-1) {
		return "Types(" + strconv.FormatInt(int64(i), 10) + ")"
	}
	return _TypesName[_TypesIndex[i]:_TypesIndex[i+1]]
}

// IsSlide returns true if the type is one of the slide gesture events.
func (i Types) IsSlide() bool {
	return i == SlideStart || i == SlideMove || i == SlideStop
}
