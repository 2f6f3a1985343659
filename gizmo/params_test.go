// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gizmo

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/pointgizmo/base/errors"
	"github.com/stretchr/testify/assert"
	"golang.org/x/image/colornames"
)

func TestParamsDefaults(t *testing.T) {
	p := NewParams()
	assert.Equal(t, float32(150), p.ScreenSize)
	assert.Equal(t, Color(colornames.Yellow), p.Highlight)
	assert.Equal(t, colornames.Red, p.AxisColor(0))
	assert.NoError(t, p.Validate())
}

func TestParamsRead(t *testing.T) {
	p := NewParams()
	err := p.Read(strings.NewReader(`
ScreenSize = 200
Highlight = "#ff8000"
ZColor = "rebeccapurple"
`))
	assert.NoError(t, err)
	assert.Equal(t, float32(200), p.ScreenSize)
	assert.Equal(t, Color{255, 128, 0, 255}, p.Highlight)
	assert.Equal(t, Color{102, 51, 153, 255}, p.ZColor)
	assert.Equal(t, Color(colornames.Red), p.XColor)

	assert.Error(t, p.Read(strings.NewReader(`Highlight = "not a color"`)))
	assert.Error(t, p.Read(strings.NewReader(`Unknown = 1`)))
	assert.Error(t, p.Read(strings.NewReader(`ScreenSize = -1`)))
	assert.Equal(t, float32(200), p.ScreenSize)
}

func TestParamsSave(t *testing.T) {
	p := NewParams()
	p.HeadSegments = 24
	var b bytes.Buffer
	assert.NoError(t, p.Write(&b))
	assert.Contains(t, b.String(), "#ffff00")

	fn := filepath.Join(t.TempDir(), "gizmo.toml")
	assert.NoError(t, p.Save(fn))
	np := NewParams()
	assert.NoError(t, np.Open(fn))
	assert.Equal(t, p, np)
	assert.Error(t, np.Open(filepath.Join(t.TempDir(), "missing.toml")))
}

// closeErrWriter is a writer whose Close fails.
type closeErrWriter struct {
	bytes.Buffer
	closed bool
}

func (w *closeErrWriter) Close() error {
	w.closed = true
	return errors.New("disk full")
}

func TestParamsSaveCloseError(t *testing.T) {
	p := NewParams()
	w := &closeErrWriter{}
	assert.ErrorContains(t, p.writeClose(w), "disk full")
	assert.True(t, w.closed)
	assert.Contains(t, w.String(), "ScreenSize")

	assert.Error(t, p.Save(filepath.Join(t.TempDir(), "none", "gizmo.toml")))
}
