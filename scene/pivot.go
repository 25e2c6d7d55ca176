// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"

	"cogentcore.org/tumble/math32"
)

// PivotKinds are the ways the pivot of a spinning shape is chosen.
type PivotKinds int32

const (
	// Centroid spins the shape around its own centroid,
	// recomputed every frame.
	Centroid PivotKinds = iota

	// Fixed spins the shape around a fixed point.
	Fixed
)

// Pivot is the point a shape spins around.
type Pivot struct {
	Kind PivotKinds

	// Point is the pivot for [Fixed].
	Point math32.Vector3
}

// CentroidPivot returns a pivot at the centroid of the shape.
func CentroidPivot() Pivot {
	return Pivot{Kind: Centroid}
}

// FixedPivot returns a pivot at the given point.
func FixedPivot(p math32.Vector3) Pivot {
	return Pivot{Kind: Fixed, Point: p}
}

// Of returns the pivot point for the given shape in its current position.
func (pv Pivot) Of(sh *Shape) math32.Vector3 {
	if pv.Kind == Fixed {
		return pv.Point
	}
	return sh.Centroid()
}

func (pv Pivot) String() string {
	if pv.Kind == Fixed {
		return fmt.Sprintf("fixed %v", pv.Point)
	}
	return "centroid"
}
