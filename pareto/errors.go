// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pareto

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrDimensionMismatch is returned when the points of one call
	// do not all have the same number of objectives.
	ErrDimensionMismatch = errors.New("pareto: objective vectors differ in dimension")

	// ErrZeroDimension is returned for points with no objectives.
	ErrZeroDimension = errors.New("pareto: objective vector is empty")

	// ErrNaN is returned when a coordinate is NaN.
	ErrNaN = errors.New("pareto: objective is NaN")

	// ErrBadBound is returned for a front ceiling below one.
	ErrBadBound = errors.New("pareto: front ceiling must be at least 1")

	// ErrBadGrid is returned for a hypervolume grid with fewer than
	// two samples per axis or too many samples in total.
	ErrBadGrid = errors.New("pareto: invalid hypervolume grid")

	// ErrTooManyObjectives is returned when no default hypervolume
	// grid fits the number of objectives.
	ErrTooManyObjectives = errors.New("pareto: too many objectives for a hypervolume grid")
)

// validate checks that points is a well-formed set and returns its
// dimension. An empty set has dimension 0.
func validate(points []Point) (int, error) {
	if len(points) == 0 {
		return 0, nil
	}
	d := len(points[0])
	if d == 0 {
		return 0, fmt.Errorf("%w: point 0", ErrZeroDimension)
	}
	for i, p := range points {
		if len(p) != d {
			return 0, fmt.Errorf("%w: point %d has %d objectives, point 0 has %d", ErrDimensionMismatch, i, len(p), d)
		}
		for k, v := range p {
			if math.IsNaN(v) {
				return 0, fmt.Errorf("%w: point %d objective %d", ErrNaN, i, k)
			}
		}
	}
	return d, nil
}
