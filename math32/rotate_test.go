// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"cogentcore.org/tumble/base/tolassert"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

const StandardTol = float32(1.0e-5)

func TolAssertEqualVector(t *testing.T, tol float32, vt, va Vector3) {
	t.Helper()
	tolassert.EqualTol(t, vt.X, va.X, tol)
	tolassert.EqualTol(t, vt.Y, va.Y, tol)
	tolassert.EqualTol(t, vt.Z, va.Z, tol)
}

func TestRotateAxes(t *testing.T) {
	vx := Vec3(1, 0, 0)
	vy := Vec3(0, 1, 0)
	vz := Vec3(0, 0, 1)
	quarter := DegToRad(90)

	// right-handed: X to Y about Z, Y to Z about X, Z to X about Y
	TolAssertEqualVector(t, StandardTol, vy, Rotate(vx, Vec3(0, 0, quarter)))
	TolAssertEqualVector(t, StandardTol, vz, Rotate(vy, Vec3(quarter, 0, 0)))
	TolAssertEqualVector(t, StandardTol, vx, Rotate(vz, Vec3(0, quarter, 0)))

	// order is X, then Y, then Z
	// vy about X by 90 -> vz; about Y by 90 -> vx; about Z by 90 -> vy
	TolAssertEqualVector(t, StandardTol, vy, Rotate(vy, Vec3(quarter, quarter, quarter)))
	TolAssertEqualVector(t, StandardTol, vx.Negate(), vx.RotateZ(2*quarter))
}

func TestRotateIdentity(t *testing.T) {
	points := []Vector3{Vec3(0.5, 0.5, 0), Vec3(-2, 3.25, 7), Vector3{}}
	for _, p := range points {
		assert.Equal(t, p, Rotate(p, Vector3{}))
		pivot := Vec3(1, -1, 2)
		TolAssertEqualVector(t, StandardTol, p, RotateAround(p, Vector3{}, pivot))
		// the pivot is a fixed point
		TolAssertEqualVector(t, StandardTol, p, RotateAround(p, Vec3(0.3, 1.2, -2), p))
	}
}

func TestRotateInverse(t *testing.T) {
	p := Vec3(0.3, -1.5, 2)
	pivot := Vec3(1, 1, 1)
	for _, theta := range []float32{0.1, 1, Pi / 3, -2.5, 7} {
		r := RotateAround(RotateAround(p, Vec3(theta, 0, 0), pivot), Vec3(-theta, 0, 0), pivot)
		TolAssertEqualVector(t, StandardTol, p, r)
		r = Rotate(Rotate(p, Vec3(0, theta, 0)), Vec3(0, -theta, 0))
		TolAssertEqualVector(t, StandardTol, p, r)
		r = Rotate(Rotate(p, Vec3(0, 0, theta)), Vec3(0, 0, -theta))
		TolAssertEqualVector(t, StandardTol, p, r)
	}
}

func TestRotatePreservesDistance(t *testing.T) {
	p := Vec3(0.5, -0.5, 0.25)
	pivot := Vec3(0.25, 0.25, 0)
	r := RotateAround(p, Vec3(0.7, -1.1, 2.3), pivot)
	tolassert.EqualTol(t, p.DistanceTo(pivot), r.DistanceTo(pivot), StandardTol)
}

func TestRotateMatchesMatrices(t *testing.T) {
	angles := []Vector3{
		Vec3(0.2, 0, 0),
		Vec3(0, -0.9, 0),
		Vec3(0, 0, 1.7),
		Vec3(0.4, 1.3, -0.6),
		Vec3(3, -2, 1),
	}
	p := Vec3(0.5, -0.25, 1.5)
	for _, a := range angles {
		m := mgl32.Rotate3DZ(a.Z).Mul3(mgl32.Rotate3DY(a.Y)).Mul3(mgl32.Rotate3DX(a.X))
		want := m.Mul3x1(mgl32.Vec3(p.Array()))
		TolAssertEqualVector(t, StandardTol, Vector3FromArray(want), Rotate(p, a))
	}
}

func TestAngleConversion(t *testing.T) {
	tolassert.EqualTol(t, Pi/2, DegToRad(90), StandardTol)
	tolassert.EqualTol(t, 180, RadToDeg(Pi), 1e-4)
	assert.False(t, IsNaN(Sqrt(4)))
	assert.True(t, IsNaN(Sqrt(-1)))
}
