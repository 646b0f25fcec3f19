// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pareto

import (
	"errors"
	"math"
	"math/rand"
	"testing"
	"testing/quick"
)

func TestHypervolumeSinglePoint(t *testing.T) {
	check := func(p Point, want float64) {
		t.Helper()
		got, err := Hypervolume([]Point{p})
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(got-want) > 1e-12 {
			t.Errorf("Hypervolume(%v) = %v, want %v", p, got, want)
		}
	}
	check(Point{0.5, 0.5, 0.5}, 0.125)
	check(Point{0, 0, 0}, 0)
	check(Point{1, 1, 1}, 1)
	check(Point{0.3, 0.5}, 0.15)
	check(Point{2, -1}, 0)
	check(Point{2, 0.5}, 0.5)
	check(Point{0.7}, 0.7)
}

func TestHypervolumeEmpty(t *testing.T) {
	got, err := Hypervolume(nil)
	if err != nil || got != 0 {
		t.Errorf("Hypervolume(nil) = %v, %v, want 0", got, err)
	}
}

func TestHypervolumeGrid(t *testing.T) {
	check := func(pts []Point, want float64) {
		t.Helper()
		got, err := Hypervolume(pts)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(got-want) > 1e-12 {
			t.Errorf("Hypervolume(%v) = %v, want %v", pts, got, want)
		}
	}
	// On the 100-point axis, 50 samples lie at or below 0.5.
	check([]Point{{0.5, 1}, {1, 0.5}}, 0.75)
	// Each unit vector covers the origin plus its own axis.
	check([]Point{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, (1+3*25)/(26.0*26*26))
	// Clamped coordinates.
	check([]Point{{3, 3}, {0.2, 0.1}}, 1)
	// One objective is exact.
	check([]Point{{0.2}, {0.9}, {-4}}, 0.9)
}

func TestHypervolumeDeterministic(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	pts := make([]Point, 20)
	for i := range pts {
		pts[i] = Point{r.Float64(), r.Float64(), r.Float64()}
	}
	a, _ := Hypervolume(pts)
	b, _ := Hypervolume(pts)
	if a != b {
		t.Errorf("repeated calls differ: %v != %v", a, b)
	}
	if a < 0 || a > 1 {
		t.Errorf("hypervolume %v outside [0, 1]", a)
	}
}

func TestHypervolumeNearExact2D(t *testing.T) {
	prop := func(seed int64) bool {
		r := rand.New(rand.NewSource(seed))
		n := 2 + r.Intn(15)
		pts := make([]Point, n)
		pts2 := make([][2]float64, n)
		for i := range pts {
			pts2[i] = [2]float64{r.Float64(), r.Float64()}
			pts[i] = Point{pts2[i][0], pts2[i][1]}
		}
		est, err := Hypervolume(pts)
		if err != nil {
			return false
		}
		// The grid over-counts by at most one cell per axis.
		return math.Abs(est-Exact2D(pts2)) <= 2.0/99+1e-9
	}
	if err := quick.Check(prop, nil); err != nil {
		t.Error(err)
	}
}

func TestHypervolumeMonotone(t *testing.T) {
	// Adding a point never shrinks the covered grid.
	prop := func(seed int64) bool {
		r := rand.New(rand.NewSource(seed))
		pts := make([]Point, 2+r.Intn(6))
		for i := range pts {
			pts[i] = Point{r.Float64(), r.Float64(), r.Float64()}
		}
		before, _ := HypervolumeGrid(pts, 10)
		after, _ := HypervolumeGrid(append(pts, Point{r.Float64(), r.Float64(), r.Float64()}), 10)
		return after >= before
	}
	if err := quick.Check(prop, nil); err != nil {
		t.Error(err)
	}
}

func TestExact2D(t *testing.T) {
	check := func(pts [][2]float64, want float64) {
		t.Helper()
		if got := Exact2D(pts); math.Abs(got-want) > 1e-12 {
			t.Errorf("Exact2D(%v) = %v, want %v", pts, got, want)
		}
	}
	check(nil, 0)
	check([][2]float64{{0.5, 0.5}}, 0.25)
	check([][2]float64{{0.5, 1}, {1, 0.5}}, 0.75)
	check([][2]float64{{0.5, 1}, {1, 0.5}, {0.25, 0.25}}, 0.75)
	check([][2]float64{{2, 2}}, 1)
	check([][2]float64{{0.5, 0.5}, {0.5, 0.5}}, 0.25)
}

func TestGridSize(t *testing.T) {
	for _, tc := range []struct{ d, want int }{
		{1, 0}, {2, 100}, {3, 26}, {4, 11}, {5, 7}, {14, 2}, {15, 0}, {40, 0},
	} {
		if got := GridSize(tc.d); got != tc.want {
			t.Errorf("GridSize(%d) = %d, want %d", tc.d, got, tc.want)
		}
	}
}

func TestHypervolumeDimensionLimit(t *testing.T) {
	wide := func(d int) []Point {
		a, b := make(Point, d), make(Point, d)
		for k := range a {
			a[k], b[k] = 0.5, 0.25
		}
		a[0], b[0] = 0.25, 0.5
		return []Point{a, b}
	}

	if _, err := Hypervolume(wide(MaxGridDimension)); err != nil {
		t.Errorf("Hypervolume with %d objectives: %v", MaxGridDimension, err)
	}
	_, err := Hypervolume(wide(40))
	if !errors.Is(err, ErrTooManyObjectives) {
		t.Errorf("Hypervolume with 40 objectives: got %v, want %v", err, ErrTooManyObjectives)
	}
	// One point needs no grid.
	got, err := Hypervolume(wide(40)[:1])
	if err != nil || got != math.Pow(0.5, 39)*0.25 {
		t.Errorf("Hypervolume of one 40-objective point = %v, %v", got, err)
	}

	_, err = HypervolumeGrid(wide(40), 2)
	if !errors.Is(err, ErrBadGrid) {
		t.Errorf("HypervolumeGrid(2) with 40 objectives: got %v, want %v", err, ErrBadGrid)
	}
	_, err = HypervolumeGrid(wide(3), 300)
	if !errors.Is(err, ErrBadGrid) {
		t.Errorf("HypervolumeGrid(300) with 3 objectives: got %v, want %v", err, ErrBadGrid)
	}
}

func TestHypervolumeGridSamples(t *testing.T) {
	// Sample i of a g-point axis is exactly i/(g-1), so points lying on
	// a sample cover it.
	const g = 100
	for _, k := range []int{1, 33, 49, 98} {
		x := float64(k) / (g - 1)
		got, err := HypervolumeGrid([]Point{{x, 1}, {1, x}}, g)
		if err != nil {
			t.Fatal(err)
		}
		n := k + 1
		want := float64(2*n*g-n*n) / (g * g)
		if got != want {
			t.Errorf("k=%d: HypervolumeGrid = %v, want %v", k, got, want)
		}
	}
}
