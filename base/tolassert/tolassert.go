// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tolassert provides functions for asserting the equality of numbers
// with tolerance (in other words, it checks whether numbers are about equal).
package tolassert

import (
	"fmt"
	"math"

	"github.com/stretchr/testify/assert"
)

// Float is the set of floating point types accepted by the assertions.
type Float interface {
	~float32 | ~float64
}

// EqualTol asserts that the given two numbers are equal to each other
// within the given tolerance value.
func EqualTol[T Float](t assert.TestingT, expected, actual, tolerance T, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	if math.Abs(float64(actual-expected)) <= float64(tolerance) {
		return true
	}
	return assert.Fail(t, fmt.Sprintf("Not equal within tolerance %g: \n"+
		"expected: %v\n"+
		"actual  : %v", tolerance, expected, actual), msgAndArgs...)
}

// EqualTolSlice is the same as [EqualTol], but for slices.
func EqualTolSlice[T Float](t assert.TestingT, expected, actual []T, tolerance T, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	if !assert.Len(t, actual, len(expected), msgAndArgs...) {
		return false
	}
	ok := true
	for i := range expected {
		ok = EqualTol(t, expected[i], actual[i], tolerance, msgAndArgs...) && ok
	}
	return ok
}
