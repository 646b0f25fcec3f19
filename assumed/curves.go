// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assumed

import (
	"math"

	"golang.org/x/paperbench/results"
)

// jittered returns one around draw per base value.
func jittered(s *sampler, base []float64, spread float64) []float64 {
	out := make([]float64, len(base))
	for i, b := range base {
		out[i] = s.around(b, spread)
	}
	return out
}

func flatSeries(s *sampler, method string, base []float64, spread float64) results.Series {
	return results.Series{Method: method, Y: results.SeriesY{Flat: jittered(s, base, spread)}}
}

func scaling(s *sampler) results.Payload {
	return &results.Curve{
		Dataset: scenarioB,
		Metric:  "final_score",
		X:       results.Axis{Name: "Training data fraction", Values: []float64{0.1, 0.2, 0.4, 0.6, 0.8, 1.0}},
		Series: []results.Series{
			flatSeries(s, "ours", []float64{0.72, 0.78, 0.84, 0.87, 0.89, 0.91}, 0.01),
			flatSeries(s, "rfd_mpnn", []float64{0.65, 0.70, 0.76, 0.80, 0.82, 0.84}, 0.01),
			flatSeries(s, "pepmlm", []float64{0.62, 0.68, 0.74, 0.78, 0.80, 0.82}, 0.01),
		},
	}
}

func robustness(s *sampler) results.Payload {
	return &results.Curve{
		Dataset: scenarioB,
		Metric:  "final_score",
		X:       results.Axis{Name: "Missingness level", Values: []float64{0.0, 0.1, 0.2, 0.3, 0.4}},
		Series: []results.Series{
			flatSeries(s, "ours", []float64{0.91, 0.88, 0.84, 0.79, 0.74}, 0.015),
			flatSeries(s, "rfd_mpnn", []float64{0.84, 0.78, 0.71, 0.62, 0.52}, 0.015),
			flatSeries(s, "pepmlm", []float64{0.82, 0.76, 0.68, 0.58, 0.48}, 0.015),
		},
	}
}

func efficiency(s *sampler) results.Payload {
	pts := []struct {
		method                 string
		x, xSpread, y, ySpread float64
	}{
		{"ours", 120, 10, 0.91, 0.01},
		{"rfd_mpnn", 280, 20, 0.84, 0.01},
		{"pepmlm", 45, 5, 0.82, 0.01},
		{"nsga2", 60, 8, 0.79, 0.01},
		{"qwen3", 12, 2, 0.745, 0.01},
		{"deepseek", 18, 3, 0.751, 0.01},
	}
	e := &results.EfficiencyScatter{Dataset: scenarioB, XMetric: "runtime", YMetric: "final_score"}
	for _, p := range pts {
		x := s.around(p.x, p.xSpread)
		y := s.around(p.y, p.ySpread)
		e.Points = append(e.Points, results.ScatterPoint{Method: p.method, X: x, Y: y})
	}
	return e
}

// perTargetHeatmap returns a builder for the per-target score matrix
// of one scenario.
func perTargetHeatmap(scenario string, targets []string) func(*sampler) results.Payload {
	return func(s *sampler) results.Payload {
		shift := map[string]float64{scenarioA: -0.03, scenarioB: 0, scenarioC: -0.05}[scenario]
		offset := map[string]float64{
			"ours": 0.06, "rfd_mpnn": 0, "pepmlm": -0.01,
			"nsga2": -0.03, "qwen3": -0.075, "deepseek": -0.065,
		}
		h := &results.HeatmapMatrix{
			Dataset: scenario,
			Metric:  "final_score",
			Rows:    targets,
			Cols:    methodIDs(),
			Values:  make(map[string]map[string]float64),
		}
		for _, t := range targets {
			jitter := s.uniform(-0.03, 0.03)
			h.Values[t] = make(map[string]float64)
			for _, m := range h.Cols {
				center := 0.84 + shift + jitter + offset[m]
				h.Values[t][m] = clamp01(s.around(center, 0.02))
			}
		}
		return h
	}
}

const dashboardRounds = 8

func roundAxis(n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i + 1)
	}
	return xs
}

// saturating returns n values rising from start to end with
// exponentially shrinking increments.
func saturating(start, end float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = end
		return out
	}
	const tau = 2.5
	norm := 1 - math.Exp(-float64(n-1)/tau)
	for i := range out {
		out[i] = start + (end-start)*(1-math.Exp(-float64(i)/tau))/norm
	}
	return out
}

// seedMatrix draws a round-major matrix: one row per base value, one
// column per seed.
func seedMatrix(s *sampler, base []float64, spread func(float64) float64) [][]float64 {
	out := make([][]float64, len(base))
	for i, b := range base {
		out[i] = s.seeds(b, spread(b))
	}
	return out
}

func convergence(s *sampler) results.Payload {
	curves := []struct {
		method     string
		start, end float64
	}{
		{"ours", 0.74, 0.91},
		{"nsga2", 0.72, 0.79},
		{"rfd_mpnn", 0.80, 0.84},
		{"pepmlm", 0.77, 0.82},
		{"qwen3", 0.745, 0.745},
		{"deepseek", 0.751, 0.751},
	}
	c := &results.Curve{
		Dataset: scenarioB,
		Metric:  "final_score",
		X:       results.Axis{Name: "Round", Values: roundAxis(dashboardRounds)},
	}
	for _, cv := range curves {
		y := seedMatrix(s, saturating(cv.start, cv.end, dashboardRounds), func(float64) float64 { return 0.01 })
		c.Series = append(c.Series, results.Series{Method: cv.method, Y: results.SeriesY{Seeds: y}})
	}
	return c
}

func sampleEfficiency(s *sampler) results.Payload {
	calls := []struct {
		method string
		base   []float64
	}{
		{"ours", []float64{120, 180, 260, 380}},
		{"nsga2", []float64{200, 320, 520, 900}},
		{"rfd_mpnn", []float64{260, 400, 640, 1100}},
		{"pepmlm", []float64{300, 460, 760, 1300}},
	}
	c := &results.Curve{
		Dataset: scenarioB,
		Metric:  "final_score",
		X:       results.Axis{Name: "Target Score", Values: []float64{0.75, 0.80, 0.85, 0.90}},
	}
	for _, cl := range calls {
		y := seedMatrix(s, cl.base, func(b float64) float64 { return 0.08 * b })
		for _, row := range y {
			for i := range row {
				row[i] = round(row[i], 1)
			}
		}
		c.Series = append(c.Series, results.Series{Method: cl.method, Y: results.SeriesY{Seeds: y}})
	}
	return c
}

func strategyEvolution(s *sampler) results.Payload {
	x := results.Axis{Name: "Round", Values: roundAxis(dashboardRounds)}
	explore := saturating(0.80, 0.30, dashboardRounds)
	validate := saturating(0.35, 0.78, dashboardRounds)
	for i := range explore {
		explore[i] = clamp01(s.around(explore[i], 0.02))
		validate[i] = clamp01(s.around(validate[i], 0.02))
	}
	return &results.StrategyEvolution{Series: []results.StrategySeries{
		{Name: results.ExplorationRatio, X: x, Y: explore},
		{Name: results.HypothesisValidationRate, X: x, Y: validate},
	}}
}
