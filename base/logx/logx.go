// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the shared slog setup for the gizmo
// packages and the viewer.
package logx

import (
	"io"
	"log/slog"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. It should typically
// be set through the viewer's verbose flag. It defaults to
// [slog.LevelInfo], or [slog.LevelDebug] when built with the debug tag.
var UserLevel = defaultUserLevel

// level is the dynamic level shared by all handlers made by [NewHandler].
var level = new(slog.LevelVar)

func init() {
	level.Set(UserLevel)
}

// SetLevel sets [UserLevel] and updates all handlers made by [NewHandler].
func SetLevel(lvl slog.Level) {
	UserLevel = lvl
	level.Set(lvl)
}

// NewHandler returns a text [slog.Handler] writing to w
// at the current [UserLevel].
func NewHandler(w io.Writer) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
}

// SetDefault installs a text handler writing to w as the default slog logger.
func SetDefault(w io.Writer) {
	slog.SetDefault(slog.New(NewHandler(w)))
}

// Debug reports whether debug level messages are currently shown.
func Debug() bool {
	return UserLevel <= slog.LevelDebug
}
