// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pareto

import (
	"fmt"
	"math"
	"sort"

	"github.com/aclements/go-moremath/vec"
)

// maxGridCells bounds the number of grid samples used for
// dimensions without a fixed grid size.
const maxGridCells = 20000

// maxGridSamples bounds the samples of an explicit grid.
const maxGridSamples = 1 << 24

// MaxGridDimension is the largest number of objectives whose default
// grid, at 2 samples per axis, stays within 20000 cells.
const MaxGridDimension = 14

// GridSize returns the default number of samples per axis used to
// estimate the hypervolume of a d-dimensional point set.
//
// Two objectives use 100 samples per axis and three use 26. Higher
// dimensions use the largest size whose grid has at most 20000
// cells. One objective needs no grid, and beyond MaxGridDimension no
// grid of at least 2 samples fits; GridSize returns 0 for both.
func GridSize(d int) int {
	switch {
	case d <= 1 || d > MaxGridDimension:
		return 0
	case d == 2:
		return 100
	case d == 3:
		return 26
	}
	g := int(math.Floor(math.Pow(maxGridCells, 1/float64(d))))
	// Guard against Pow rounding just below an exact root.
	for math.Pow(float64(g+1), float64(d)) <= maxGridCells {
		g++
	}
	return max(g, 2)
}

// Hypervolume returns the fraction of the unit hypercube dominated by
// points, with the reference point at the origin.
//
// Coordinates are clamped to [0, 1] first. An empty set has
// hypervolume 0 and a single point the exact product of its
// coordinates. For a single objective the result is the largest
// coordinate. Otherwise the value is estimated on a grid of
// GridSize(d) samples per axis; sets of more than one point with more
// than MaxGridDimension objectives fail with ErrTooManyObjectives.
func Hypervolume(points []Point) (float64, error) {
	d, err := validate(points)
	if err != nil {
		return 0, err
	}
	if d == 1 && len(points) > 1 {
		best := 0.0
		for _, p := range points {
			best = math.Max(best, clamp01(p[0]))
		}
		return best, nil
	}
	if d > MaxGridDimension && len(points) > 1 {
		return 0, fmt.Errorf("%w: %d objectives, at most %d", ErrTooManyObjectives, d, MaxGridDimension)
	}
	return hypervolume(points, GridSize(d))
}

// HypervolumeGrid is like Hypervolume, but estimates multi-point sets
// on a grid of g samples per axis, including both endpoints. Grids of
// more than 2^24 samples fail with ErrBadGrid.
func HypervolumeGrid(points []Point, g int) (float64, error) {
	if g < 2 {
		return 0, fmt.Errorf("%w: got %d", ErrBadGrid, g)
	}
	d, err := validate(points)
	if err != nil {
		return 0, err
	}
	if len(points) > 1 && math.Pow(float64(g), float64(d)) > maxGridSamples {
		return 0, fmt.Errorf("%w: %d^%d samples exceeds %d", ErrBadGrid, g, d, maxGridSamples)
	}
	return hypervolume(points, g)
}

func hypervolume(points []Point, g int) (float64, error) {
	switch len(points) {
	case 0:
		return 0, nil
	case 1:
		v := 1.0
		for _, x := range points[0] {
			v *= clamp01(x)
		}
		return v, nil
	}

	d := len(points[0])
	pts := make([]Point, len(points))
	for i, p := range points {
		c := make(Point, d)
		for k, x := range p {
			c[k] = clamp01(x)
		}
		pts[i] = c
	}
	// Dominated points cannot cover a sample their dominator misses.
	var front []Point
	for i, ok := range nonDominated(pts, nil) {
		if ok {
			front = append(front, pts[i])
		}
	}

	// Linspace divides i*(hi-lo) by n-1 rather than stepping, so some
	// samples differ from a stepped grid in the last bit.
	axis := vec.Linspace(0, 1, g)
	idx := make([]int, d)
	sample := make(Point, d)
	covered, total := 0, 0
	for {
		for k, i := range idx {
			sample[k] = axis[i]
		}
		total++
		for _, p := range front {
			if weaklyCovers(p, sample) {
				covered++
				break
			}
		}

		// Advance the odometer.
		k := d - 1
		for ; k >= 0; k-- {
			idx[k]++
			if idx[k] < g {
				break
			}
			idx[k] = 0
		}
		if k < 0 {
			break
		}
	}
	return float64(covered) / float64(total), nil
}

// Exact2D returns the exact area of [0, 1]² dominated by points, with
// the reference point at the origin. Coordinates are clamped to
// [0, 1] and NaN coordinates are treated as 0.
func Exact2D(points [][2]float64) float64 {
	pts := make([][2]float64, len(points))
	for i, p := range points {
		pts[i] = [2]float64{clamp01(p[0]), clamp01(p[1])}
	}
	// Sweep x from right to left, tracking the highest y so far.
	sort.Slice(pts, func(i, j int) bool {
		if pts[i][0] != pts[j][0] {
			return pts[i][0] > pts[j][0]
		}
		return pts[i][1] > pts[j][1]
	})
	area, maxY := 0.0, 0.0
	for i, p := range pts {
		if p[1] > maxY {
			maxY = p[1]
		}
		next := 0.0
		if i+1 < len(pts) {
			next = pts[i+1][0]
		}
		area += (p[0] - next) * maxY
	}
	return area
}

func weaklyCovers(p, sample Point) bool {
	for k := range p {
		if p[k] < sample[k] {
			return false
		}
	}
	return true
}

func clamp01(x float64) float64 {
	if !(x > 0) {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
