// Copyright (c) 2026, The Chroma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tolassert provides simple assertion helpers for comparing
// floating point numbers with tolerance in tests.
package tolassert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Equal checks that the two values are equal within a default
// tolerance of 1e-8.
func Equal(t *testing.T, expected, actual float64, msgAndArgs ...any) bool {
	t.Helper()
	return EqualTol(t, expected, actual, 1.0e-8, msgAndArgs...)
}

// EqualTol checks that the two values are equal within the given
// tolerance.
func EqualTol(t *testing.T, expected, actual, tol float64, msgAndArgs ...any) bool {
	t.Helper()
	return assert.InDelta(t, expected, actual, tol, msgAndArgs...)
}

// EqualSlice checks that two slices of values are equal within the
// given tolerance, element by element.
func EqualSlice(t *testing.T, expected, actual []float64, tol float64) bool {
	t.Helper()
	if !assert.Equal(t, len(expected), len(actual)) {
		return false
	}
	ok := true
	for i := range expected {
		if !assert.InDelta(t, expected[i], actual[i], tol, "index %d", i) {
			ok = false
		}
	}
	return ok
}
