// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"sort"

	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"

	"golang.org/x/paperbench/pareto"
	"golang.org/x/paperbench/results"
)

// Rank frame columns. Objective columns are named after their
// objective.
const (
	ColMethod = "method"
	ColRound  = "round"
	ColRank   = "pareto_rank"
	ColScore  = "final_score"
	ColFront0 = "front0"
)

// A RankFrame is the candidate cloud of a Pareto dashboard with every
// candidate ranked against the other candidates of its round.
type RankFrame struct {
	// Table has one row per candidate, in input order.
	Table *table.Table

	// Objectives are the objective column names.
	Objectives []string

	// Rounds are the distinct rounds in increasing order.
	Rounds []int

	// Truncated lists the rounds whose peeling reached the front
	// ceiling.
	Truncated []int
}

// NewRankFrame ranks the candidates of d round by round, peeling at
// most maxFronts fronts per round. Each candidate's score is the mean
// of its objectives.
func NewRankFrame(d *results.ParetoDashboard, maxFronts int) (*RankFrame, error) {
	if len(d.Points) == 0 {
		return nil, fmt.Errorf("%w: pareto dashboard has no points", ErrEmpty)
	}
	if len(d.Objectives) == 0 {
		return nil, fmt.Errorf("%w: pareto dashboard objectives", results.ErrMissingField)
	}
	n := len(d.Points)
	var (
		methods = make([]string, n)
		rounds  = make([]int, n)
		ranks   = make([]int, n)
		scores  = make([]float64, n)
		front0  = make([]int, n)
		points  = make([]pareto.Point, n)
		byRound = make(map[int][]int)
	)
	for i, c := range d.Points {
		p, err := c.Point(d.Objectives)
		if err != nil {
			return nil, err
		}
		methods[i], rounds[i], points[i] = c.Method, c.Round, p
		scores[i] = stats.Mean(p)
		byRound[c.Round] = append(byRound[c.Round], i)
	}

	f := &RankFrame{Objectives: d.Objectives}
	for r := range byRound {
		f.Rounds = append(f.Rounds, r)
	}
	sort.Ints(f.Rounds)
	for _, r := range f.Rounds {
		idx := byRound[r]
		pts := make([]pareto.Point, len(idx))
		for j, i := range idx {
			pts[j] = points[i]
		}
		peel, err := pareto.Peel(pts, maxFronts)
		if err != nil {
			return nil, fmt.Errorf("round %d: %w", r, err)
		}
		if peel.Truncated {
			f.Truncated = append(f.Truncated, r)
		}
		for j, i := range idx {
			ranks[i] = peel.Ranks[j]
			if ranks[i] == 0 {
				front0[i] = 1
			}
		}
	}

	b := table.NewBuilder(nil).
		Add(ColMethod, methods).
		Add(ColRound, rounds).
		Add(ColRank, ranks).
		Add(ColScore, scores).
		Add(ColFront0, front0)
	for k, obj := range d.Objectives {
		col := make([]float64, n)
		for i, p := range points {
			col[i] = p[k]
		}
		b.Add(obj, col)
	}
	f.Table = b.Done()
	return f, nil
}

// Ranks returns the rank column.
func (f *RankFrame) Ranks() []int {
	return f.Table.MustColumn(ColRank).([]int)
}

// A RoundSummary aggregates the candidates of one method in one round.
type RoundSummary struct {
	Method    string
	Round     int
	Count     int
	MeanScore float64
	// Front0 is the number of the method's candidates on the
	// round's non-dominated front.
	Front0 int
	// BestRank is the smallest rank among the method's candidates.
	BestRank int
}

// Summary returns one row per method and round, ordered by method
// then round.
func (f *RankFrame) Summary() []RoundSummary {
	var g table.Grouping = table.SortBy(f.Table, ColMethod, ColRound)
	g = ggstat.Agg(ColMethod, ColRound)(
		ggstat.AggCount("count"),
		ggstat.AggMean(ColScore),
		ggstat.AggSum(ColFront0),
		ggstat.AggMin(ColRank),
	).F(g)
	t := table.Flatten(g)

	methods := t.MustColumn(ColMethod).([]string)
	rounds := t.MustColumn(ColRound).([]int)
	counts := t.MustColumn("count").([]int)
	means := t.MustColumn("mean " + ColScore).([]float64)
	fronts := t.MustColumn("sum " + ColFront0).([]int)
	best := t.MustColumn("min " + ColRank).([]int)
	out := make([]RoundSummary, len(methods))
	for i := range out {
		out[i] = RoundSummary{
			Method:    methods[i],
			Round:     rounds[i],
			Count:     counts[i],
			MeanScore: means[i],
			Front0:    fronts[i],
			BestRank:  best[i],
		}
	}
	return out
}
