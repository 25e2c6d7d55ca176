// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package driver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitNoGUI(t *testing.T) {
	p, err := Init(true)
	require.NoError(t, err)
	defer p.Terminate()
	assert.Equal(t, "offscreen", p.Name())
}
