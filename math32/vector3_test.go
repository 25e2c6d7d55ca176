// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector3(t *testing.T) {
	assert.Equal(t, Vector3{5, 10, -2}, Vec3(5, 10, -2))
	assert.Equal(t, Vector3{20, 20, 20}, Vector3Scalar(20))
	assert.Equal(t, Vector3{1, 2, 3}, Vector3FromArray([3]float32{1, 2, 3}))
	assert.Equal(t, [3]float32{1, 2, 3}, Vec3(1, 2, 3).Array())
	assert.Equal(t, "(1, 2.5, -3)", Vec3(1, 2.5, -3).String())

	v := Vector3{}
	assert.True(t, v.IsNil())
	v.Set(-1, 7, 2)
	assert.Equal(t, Vector3{-1, 7, 2}, v)
	v.SetDim(Z, 4)
	assert.Equal(t, float32(4), v.Dim(Z))
	assert.Equal(t, "Y", Y.String())
	assert.Panics(t, func() { v.Dim(Dims(5)) })
}

func TestVector3Arithmetic(t *testing.T) {
	a := Vec3(1, 2, 3)
	b := Vec3(4, -2, 0.5)

	assert.Equal(t, Vec3(5, 0, 3.5), a.Add(b))
	assert.Equal(t, Vec3(-3, 4, 2.5), a.Sub(b))
	assert.Equal(t, Vec3(4, -4, 1.5), a.Mul(b))
	assert.Equal(t, Vec3(0.25, -1, 6), a.Div(b))
	assert.Equal(t, Vec3(2, 3, 4), a.AddScalar(1))
	assert.Equal(t, Vec3(0, 1, 2), a.SubScalar(1))
	assert.Equal(t, Vec3(2, 4, 6), a.MulScalar(2))
	assert.Equal(t, Vec3(0.5, 1, 1.5), a.DivScalar(2))
	assert.Equal(t, Vector3{}, a.DivScalar(0))
	assert.Equal(t, Vec3(-1, -2, -3), a.Negate())
	assert.Equal(t, float32(1.5), a.Dot(b))
	assert.Equal(t, float32(5), Vec3(3, 4, 0).Length())
	assert.Equal(t, float32(5), Vec3(3, 4, 0).DistanceTo(Vector3{}))

	c := a
	c.SetAdd(b)
	assert.Equal(t, a.Add(b), c)
	c = a
	c.SetSub(b)
	assert.Equal(t, a.Sub(b), c)
	c = a
	c.SetMul(b)
	assert.Equal(t, a.Mul(b), c)
	c = a
	c.SetDiv(b)
	assert.Equal(t, a.Div(b), c)
	c = a
	c.SetMulScalar(3)
	assert.Equal(t, a.MulScalar(3), c)
	c = a
	c.SetDivScalar(2)
	assert.Equal(t, a.DivScalar(2), c)
	c.SetDivScalar(0)
	assert.Equal(t, Vector3{}, c)
	c = a
	c.SetAddScalar(1)
	c.SetSubScalar(2)
	assert.Equal(t, a.SubScalar(1), c)

	assert.True(t, a.IsEqualTol(Vec3(1.0001, 1.9999, 3), 0.001))
	assert.False(t, a.IsEqualTol(Vec3(1.1, 2, 3), 0.001))
}

func TestVector2(t *testing.T) {
	a := Vec2(0.5, 1)
	assert.Equal(t, [2]float32{0.5, 1}, a.Array())
	assert.Equal(t, Vec2(1, 2), a.MulScalar(2))
	assert.Equal(t, Vec2(1.5, 1), a.Add(Vec2(1, 0)))
	assert.Equal(t, Vec2(0, 1), a.Sub(Vec2(0.5, 0)))
	assert.Equal(t, "(0.5, 1)", a.String())
}
