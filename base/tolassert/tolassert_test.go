// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tolassert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqualTol(t *testing.T) {
	assert.True(t, EqualTol(t, float32(1), 1.0000001, 1e-6))
	assert.True(t, EqualTolSlice(t, []float64{1, 2}, []float64{1.0001, 1.9999}, 1e-3))

	mt := &recorder{}
	assert.False(t, EqualTol(mt, 1.0, 1.1, 0.01))
	assert.False(t, EqualTolSlice(mt, []float32{1}, []float32{1, 2}, 0.01))
	assert.Equal(t, 2, mt.errors)
}

type recorder struct {
	errors int
}

func (r *recorder) Errorf(format string, args ...any) { r.errors++ }
