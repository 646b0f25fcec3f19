// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pareto

// A Point is an objective vector. Larger is better on every axis.
type Point []float64

// Dominates reports whether a Pareto-dominates b: a is at least as
// good as b on every objective and strictly better on at least one.
//
// Equal vectors do not dominate each other. Vectors of different
// length never dominate; callers that accept user input should
// validate dimensions first.
func Dominates(a, b Point) bool {
	if len(a) != len(b) {
		return false
	}
	strict := false
	for i := range a {
		if a[i] < b[i] {
			return false
		}
		if a[i] > b[i] {
			strict = true
		}
	}
	return strict
}

// NonDominated returns a mask over points that is true for each point
// not dominated by any other point in the set.
//
// Duplicated points are both reported as non-dominated when nothing
// else dominates them.
func NonDominated(points []Point) ([]bool, error) {
	if _, err := validate(points); err != nil {
		return nil, err
	}
	return nonDominated(points, nil), nil
}

// nonDominated computes the front mask over the points selected by
// live, or over all points if live is nil. Unselected points are
// reported false.
func nonDominated(points []Point, live []bool) []bool {
	mask := make([]bool, len(points))
	for i, p := range points {
		if live != nil && !live[i] {
			continue
		}
		mask[i] = true
		for j, q := range points {
			if j == i || (live != nil && !live[j]) {
				continue
			}
			if Dominates(q, p) {
				mask[i] = false
				break
			}
		}
	}
	return mask
}

// NonDominated2D is NonDominated for two objectives. It delegates to
// the same dominance test, so both agree on any 2-D input. The only
// possible error is ErrNaN.
func NonDominated2D(points [][2]float64) ([]bool, error) {
	return NonDominated(from2D(points))
}

// Front returns the indexes of the non-dominated points in input
// order.
func Front(points []Point) ([]int, error) {
	mask, err := NonDominated(points)
	if err != nil {
		return nil, err
	}
	idx := []int{}
	for i, ok := range mask {
		if ok {
			idx = append(idx, i)
		}
	}
	return idx, nil
}

func from2D(points [][2]float64) []Point {
	out := make([]Point, len(points))
	for i := range points {
		out[i] = Point{points[i][0], points[i][1]}
	}
	return out
}
