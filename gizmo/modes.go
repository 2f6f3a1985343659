// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gizmo

import (
	"fmt"
	"strconv"
	"strings"
)

// Modes are the manipulation modes of the [Tool].
type Modes int32

const (
	// ModeNone shows no handles.
	ModeNone Modes = iota

	// ModeTranslate shows the axis arrows for moving the selection.
	ModeTranslate

	// ModeRotate is reserved for rotation handles.
	ModeRotate

	// ModeScale is reserved for scaling handles.
	ModeScale

	// ModesN is the number of modes.
	ModesN
)

const _ModesName = "NoneTranslateRotateScale"

var _ModesIndex = [...]uint8{0, 4, 13, 19, 24}

func (i Modes) String() string {
	if i < 0 || i >= Modes(len(_ModesIndex)-1) {
		return "Modes(" + strconv.FormatInt(int64(i), 10) + ")"
	}
	return _ModesName[_ModesIndex[i]:_ModesIndex[i+1]]
}

var _ModesNameToValueMap = map[string]Modes{
	"None":      ModeNone,
	"none":      ModeNone,
	"Translate": ModeTranslate,
	"translate": ModeTranslate,
	"Rotate":    ModeRotate,
	"rotate":    ModeRotate,
	"Scale":     ModeScale,
	"scale":     ModeScale,
}

// SetString sets the enum value from its
// string representation, and returns an
// error if the string is invalid.
func (i *Modes) SetString(s string) error {
	if val, ok := _ModesNameToValueMap[s]; ok {
		*i = val
		return nil
	}
	if val, ok := _ModesNameToValueMap[strings.ToLower(s)]; ok {
		*i = val
		return nil
	}
	return fmt.Errorf("%s does not belong to Modes values", s)
}

// IsValid returns whether the value is a
// valid option for its enum type.
func (i Modes) IsValid() bool {
	return i >= 0 && i < ModesN
}
