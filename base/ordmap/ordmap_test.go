// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ordmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func keys(om *Map[string, int]) []string {
	var kl []string
	for _, kv := range om.Order {
		kl = append(kl, kv.Key)
	}
	return kl
}

func TestMap(t *testing.T) {
	var om Map[string, int]
	om.Init()
	om.Add("shaft", 1)
	om.Add("head", 2)
	om.Add("cloud", 3)
	assert.Equal(t, []string{"shaft", "head", "cloud"}, keys(&om))

	om.Add("head", 20)
	assert.Equal(t, 20, om.Order[1].Value)

	v, ok := om.ValueByKeyTry("head")
	assert.True(t, ok)
	assert.Equal(t, 20, v)
	_, ok = om.ValueByKeyTry("missing")
	assert.False(t, ok)

	assert.True(t, om.DeleteKey("shaft"))
	assert.False(t, om.DeleteKey("shaft"))
	assert.Equal(t, []string{"head", "cloud"}, keys(&om))
	v, ok = om.ValueByKeyTry("cloud")
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	var zero Map[string, int]
	_, ok = zero.ValueByKeyTry("a")
	assert.False(t, ok)
	zero.Add("a", 1)
	assert.Equal(t, []string{"a"}, keys(&zero))
}
