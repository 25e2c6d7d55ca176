// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// RotateX returns v rotated by angle radians about the X axis,
// counter-clockwise when looking from +X toward the origin.
func (v Vector3) RotateX(angle float32) Vector3 {
	s, c := Sincos(angle)
	return Vec3(v.X, v.Y*c-v.Z*s, v.Y*s+v.Z*c)
}

// RotateY returns v rotated by angle radians about the Y axis,
// counter-clockwise when looking from +Y toward the origin.
func (v Vector3) RotateY(angle float32) Vector3 {
	s, c := Sincos(angle)
	return Vec3(v.X*c+v.Z*s, v.Y, -v.X*s+v.Z*c)
}

// RotateZ returns v rotated by angle radians about the Z axis,
// counter-clockwise when looking from +Z toward the origin.
func (v Vector3) RotateZ(angle float32) Vector3 {
	s, c := Sincos(angle)
	return Vec3(v.X*c-v.Y*s, v.X*s+v.Y*c, v.Z)
}

// Rotate returns position rotated about the origin by the given
// per-axis angles in radians: first about X by angles.X, then about Y
// by angles.Y, then about Z by angles.Z. In matrix form this is
// Rz * Ry * Rx * position. Angles are not normalized.
func Rotate(position, angles Vector3) Vector3 {
	return position.RotateX(angles.X).RotateY(angles.Y).RotateZ(angles.Z)
}

// RotateAround returns point rotated by the given per-axis angles
// about pivot instead of the origin: Rotate(point - pivot, angles) + pivot.
// The pivot itself is a fixed point.
func RotateAround(point, angles, pivot Vector3) Vector3 {
	return Rotate(point.Sub(pivot), angles).Add(pivot)
}
