// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"cogentcore.org/pointgizmo/base/tolassert"
)

const standardTol = float32(1.0e-5)

func tolAssertEqualVector(t *testing.T, expected, actual Vector3, tols ...float32) {
	t.Helper()
	tol := standardTol
	if len(tols) == 1 {
		tol = tols[0]
	}
	tolassert.EqualTol(t, expected.X, actual.X, tol)
	tolassert.EqualTol(t, expected.Y, actual.Y, tol)
	tolassert.EqualTol(t, expected.Z, actual.Z, tol)
}

func TestDegToRad(t *testing.T) {
	tolassert.EqualTol(t, Pi/2, DegToRad(90), standardTol)
	tolassert.EqualTol(t, 180, RadToDeg(Pi), standardTol)
}
