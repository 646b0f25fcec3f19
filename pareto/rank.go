// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pareto

// DefaultMaxFronts is the default ceiling on the number of fronts
// Peel extracts before assigning the remaining points a shared rank.
// It is a sanity bound, not a property of the data.
const DefaultMaxFronts = 50

// Ranks returns the Pareto rank of each point using the counting
// definition: rank 0 is the non-dominated front, rank 1 the front of
// what remains after removing rank 0, and so on.
//
// The result has one entry per point, in input order.
func Ranks(points []Point) ([]int, error) {
	if _, err := validate(points); err != nil {
		return nil, err
	}
	n := len(points)
	ranks := make([]int, n)
	dominates := make([][]int, n)
	count := make([]int, n)
	var front []int
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if Dominates(points[i], points[j]) {
				dominates[i] = append(dominates[i], j)
			} else if Dominates(points[j], points[i]) {
				count[i]++
			}
		}
		if count[i] == 0 {
			front = append(front, i)
		}
	}
	for r := 0; len(front) > 0; r++ {
		var next []int
		for _, i := range front {
			ranks[i] = r
			for _, j := range dominates[i] {
				count[j]--
				if count[j] == 0 {
					next = append(next, j)
				}
			}
		}
		front = next
	}
	return ranks, nil
}

// A Peeling is the result of ranking by repeated front extraction.
type Peeling struct {
	// Ranks has one entry per input point, in input order.
	Ranks []int

	// Truncated is set when the front ceiling was reached before
	// every point was assigned to its own front. Points left over
	// at that time all have rank equal to the ceiling.
	Truncated bool
}

// Peel ranks points by repeatedly extracting the non-dominated front
// of the points not yet ranked. At most maxFronts fronts are
// extracted; see Peeling.Truncated.
//
// On inputs with at most maxFronts fronts, Peel and Ranks agree.
func Peel(points []Point, maxFronts int) (Peeling, error) {
	if maxFronts < 1 {
		return Peeling{}, ErrBadBound
	}
	if _, err := validate(points); err != nil {
		return Peeling{}, err
	}
	n := len(points)
	res := Peeling{Ranks: make([]int, n)}
	live := make([]bool, n)
	for i := range live {
		live[i] = true
	}
	left := n
	for r := 0; left > 0; r++ {
		if r == maxFronts {
			for i, ok := range live {
				if ok {
					res.Ranks[i] = maxFronts
				}
			}
			res.Truncated = true
			break
		}
		for i, ok := range nonDominated(points, live) {
			if ok {
				res.Ranks[i] = r
				live[i] = false
				left--
			}
		}
	}
	return res, nil
}

// FrontCount returns the number of distinct ranks in ranks, which is
// the number of fronts for a complete ranking.
func FrontCount(ranks []int) int {
	max := -1
	for _, r := range ranks {
		if r > max {
			max = r
		}
	}
	return max + 1
}
