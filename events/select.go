// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "strconv"

// SelectModes interprets the modifier keys to determine what type of selection mode to use.
type SelectModes int32

const (
	// SelectOne selects a single item, and is the default when no modifier key
	// is pressed
	SelectOne SelectModes = iota

	// ExtendOne, activated by Shift, Control or Meta / Command, extends the
	// selection by adding the one additional item just clicked on, or
	// removing it if it was already selected.
	ExtendOne
)

const _SelectModesName = "SelectOneExtendOne"

var _SelectModesIndex = [...]uint8{0, 9, 18}

func (i SelectModes) String() string {
	if i < 0 || i >= SelectModes(len(_SelectModesIndex)-1) {
		return "SelectModes(" + strconv.FormatInt(int64(i), 10) + ")"
	}
	return _SelectModesName[_SelectModesIndex[i]:_SelectModesIndex[i+1]]
}

// SelectModeBits returns the selection mode based on given modifiers bitflags
func SelectModeBits(mods Modifiers) SelectModes {
	if mods&(Shift|Control|Meta) != 0 {
		return ExtendOne
	}
	return SelectOne
}
