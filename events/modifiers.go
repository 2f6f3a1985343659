// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "strings"

// Modifiers are the modifier keys held during an event, as bit flags.
type Modifiers uint8

const (
	// Shift is the Shift key
	Shift Modifiers = 1 << iota

	// Control is the Control key
	Control

	// Alt is the Alt (Option on macOS) key
	Alt

	// Meta is the Meta (Command on macOS, Windows key on Windows) key
	Meta
)

var modifierNames = [...]string{"Shift", "Control", "Alt", "Meta"}

func (m Modifiers) String() string {
	var names []string
	for i, nm := range modifierNames {
		if m&(1<<i) != 0 {
			names = append(names, nm)
		}
	}
	return strings.Join(names, "|")
}

// Buttons is a mouse button.
type Buttons int32

const (
	NoButton Buttons = iota
	Left
	Middle
	Right
)
