// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pareto implements the multi-objective primitives used to
// summarize candidate clouds: Pareto dominance, non-dominated front
// extraction, front ranking, and the hypervolume indicator.
//
// Every objective is maximized. A Point is a plain []float64 and all
// points passed to a single call must share one dimension. Functions
// in this package never modify their inputs and never retain them.
//
// # Ranking
//
// Two ranking procedures are provided. Ranks uses the counting
// definition (fast non-dominated sort): a point's rank is the index
// of the front it belongs to after repeatedly removing the current
// front. Peel computes the same fronts by repeated extraction, but
// stops after a caller-supplied number of fronts. Points left over
// when the ceiling is reached all receive that ceiling as their rank
// and the result is marked Truncated. Because equal points never
// dominate each other, each extraction round removes at least one
// point and peeling always terminates; the ceiling only bounds work
// on pathological inputs.
//
// # Hypervolume
//
// Hypervolume measures the fraction of the unit hypercube dominated
// by a point set, with the reference point at the origin. Coordinates
// are clamped to [0, 1]. A single point yields the exact product of
// its coordinates. Larger sets are estimated on a deterministic grid
// of GridSize(d) samples per axis, so results are reproducible but
// biased by up to one grid cell per axis. Sets with more than
// MaxGridDimension objectives have no default grid. Exact2D computes
// the exact area for two objectives.
//
// # Complexity
//
// Dominance is O(d). Front extraction and the counting sort are
// O(n²·d). Peeling is O(f·n²·d) for f fronts. The grid estimate is
// O(G^d·n·d).
//
// # Errors
//
// Inputs whose points disagree on dimension fail with
// ErrDimensionMismatch before any computation is done. Zero-length
// points, NaN coordinates, and invalid bounds have their own
// sentinels; all are wrapped with the offending index.
package pareto
