// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/paperbench/results"
)

func candidate(method string, round int, potency, structure float64) results.Candidate {
	return results.Candidate{
		Method: method,
		Round:  round,
		Objectives: map[string]float64{
			potencyObjective:   potency,
			structureObjective: structure,
		},
	}
}

func testDashboard() *results.ParetoDashboard {
	return &results.ParetoDashboard{
		Objectives: []string{potencyObjective, structureObjective},
		Points: []results.Candidate{
			candidate("ours", 1, 0.9, 0.9),
			candidate("base", 1, 0.5, 0.5),
			candidate("base", 1, 0.95, 0.1),
			candidate("ours", 2, 0.4, 0.4),
			candidate("base", 2, 0.6, 0.6),
		},
	}
}

func TestRankFrame(t *testing.T) {
	f, err := NewRankFrame(testDashboard(), 10)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, f.Rounds)
	assert.Empty(t, f.Truncated)
	assert.Equal(t, []int{0, 1, 0, 1, 0}, f.Ranks())
	assert.Equal(t, []int{1, 0, 1, 0, 1}, f.Table.MustColumn(ColFront0))
	assert.Equal(t, []float64{0.9, 0.5, 0.95, 0.4, 0.6}, f.Table.MustColumn(potencyObjective))
	assert.InDeltaSlice(t, []float64{0.9, 0.5, 0.525, 0.4, 0.6}, f.Table.MustColumn(ColScore), 1e-12)
}

func TestRankFrameSummary(t *testing.T) {
	f, err := NewRankFrame(testDashboard(), 10)
	require.NoError(t, err)
	want := []RoundSummary{
		{Method: "base", Round: 1, Count: 2, MeanScore: 0.5125, Front0: 1, BestRank: 0},
		{Method: "base", Round: 2, Count: 1, MeanScore: 0.6, Front0: 1, BestRank: 0},
		{Method: "ours", Round: 1, Count: 1, MeanScore: 0.9, Front0: 1, BestRank: 0},
		{Method: "ours", Round: 2, Count: 1, MeanScore: 0.4, Front0: 0, BestRank: 1},
	}
	if diff := cmp.Diff(want, f.Summary(), cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}
}

func TestRankFrameTruncated(t *testing.T) {
	d := &results.ParetoDashboard{
		Objectives: []string{"x"},
		Points: []results.Candidate{
			{Method: "m", Round: 3, Objectives: map[string]float64{"x": 3}},
			{Method: "m", Round: 3, Objectives: map[string]float64{"x": 2}},
			{Method: "m", Round: 3, Objectives: map[string]float64{"x": 1}},
			{Method: "m", Round: 4, Objectives: map[string]float64{"x": 1}},
		},
	}
	f, err := NewRankFrame(d, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, f.Truncated)
	assert.Equal(t, []int{0, 1, 1, 0}, f.Ranks())
}

func TestRankFrameErrors(t *testing.T) {
	_, err := NewRankFrame(&results.ParetoDashboard{Objectives: []string{"x"}}, 10)
	assert.ErrorIs(t, err, ErrEmpty)

	d := testDashboard()
	d.Objectives = nil
	_, err = NewRankFrame(d, 10)
	assert.ErrorIs(t, err, results.ErrMissingField)

	d = testDashboard()
	d.Objectives = append(d.Objectives, "toxicity")
	_, err = NewRankFrame(d, 10)
	assert.ErrorIs(t, err, results.ErrMissingField)
}

func TestDashboardAxes(t *testing.T) {
	x, y, err := dashboardAxes([]string{"a", structureObjective, potencyObjective})
	require.NoError(t, err)
	assert.Equal(t, 2, x)
	assert.Equal(t, 1, y)

	x, y, err = dashboardAxes([]string{"a", "b", "c"})
	require.NoError(t, err)
	assert.Equal(t, 0, x)
	assert.Equal(t, 1, y)

	_, _, err = dashboardAxes([]string{"a"})
	assert.ErrorIs(t, err, results.ErrMissingField)
}

func TestFront2D(t *testing.T) {
	front, err := front2D([][2]float64{{0.5, 0.5}, {0.9, 0.2}, {0.4, 0.4}, {0.1, 0.8}})
	require.NoError(t, err)
	assert.Equal(t, [][2]float64{{0.1, 0.8}, {0.5, 0.5}, {0.9, 0.2}}, front)

	front, err = front2D(nil)
	require.NoError(t, err)
	assert.Empty(t, front)

	hv, err := hypervolume2D(nil, 10)
	require.NoError(t, err)
	assert.Equal(t, 0.0, hv)

	hv, err = hypervolume2D([][2]float64{{0.5, 0.4}}, 10)
	require.NoError(t, err)
	assert.InDelta(t, 0.2, hv, 1e-12)
}
