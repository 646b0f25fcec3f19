// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assumed

import (
	"github.com/aclements/go-moremath/stats"

	"golang.org/x/paperbench/results"
)

// A key addresses a (dataset, method) center.
type key struct{ dataset, method string }

// seedTable draws per-seed values for every method on each dataset.
// Pairs missing from centers use def.
func seedTable(s *sampler, dsIDs []string, centers map[key]float64, def, spread float64) map[string]map[string][]float64 {
	values := make(map[string]map[string][]float64, len(dsIDs))
	for _, ds := range dsIDs {
		values[ds] = make(map[string][]float64)
		for _, m := range methodIDs() {
			c, ok := centers[key{ds, m}]
			if !ok {
				c = def
			}
			values[ds][m] = s.seeds(c, spread)
		}
	}
	return values
}

func mainResults(s *sampler) results.Payload {
	centers := map[key]float64{
		{scenarioA, "ours"}: 0.88, {scenarioA, "rfd_mpnn"}: 0.81, {scenarioA, "pepmlm"}: 0.78,
		{scenarioA, "nsga2"}: 0.76, {scenarioA, "qwen3"}: 0.738, {scenarioA, "deepseek"}: 0.742,
		{scenarioB, "ours"}: 0.91, {scenarioB, "rfd_mpnn"}: 0.84, {scenarioB, "pepmlm"}: 0.82,
		{scenarioB, "nsga2"}: 0.79, {scenarioB, "qwen3"}: 0.745, {scenarioB, "deepseek"}: 0.751,
		{scenarioC, "ours"}: 0.85, {scenarioC, "rfd_mpnn"}: 0.79, {scenarioC, "pepmlm"}: 0.76,
		{scenarioC, "nsga2"}: 0.73, {scenarioC, "qwen3"}: 0.704, {scenarioC, "deepseek"}: 0.718,
	}
	ds := []string{scenarioA, scenarioB, scenarioC}
	return &results.MainTable{
		Datasets: ds,
		Metric:   "final_score",
		Methods:  methodIDs(),
		Values:   seedTable(s, ds, centers, 0.70, 0.012),
	}
}

func sarViolation(s *sampler) results.Payload {
	centers := map[key]float64{
		{scenarioA, "ours"}: 0.05, {scenarioA, "rfd_mpnn"}: 0.28, {scenarioA, "pepmlm"}: 0.22,
		{scenarioA, "nsga2"}: 0.18, {scenarioA, "qwen3"}: 0.312, {scenarioA, "deepseek"}: 0.295,
		{scenarioB, "ours"}: 0.03, {scenarioB, "rfd_mpnn"}: 0.25, {scenarioB, "pepmlm"}: 0.19,
		{scenarioB, "nsga2"}: 0.15, {scenarioB, "qwen3"}: 0.284, {scenarioB, "deepseek"}: 0.267,
	}
	ds := []string{scenarioA, scenarioB}
	return &results.MainTable{
		Datasets: ds,
		Metric:   "sar_violation",
		Methods:  methodIDs(),
		Values:   seedTable(s, ds, centers, 0.20, 0.02),
	}
}

func constraintSatisfaction(s *sampler) results.Payload {
	centers := map[key]float64{
		{scenarioB, "ours"}: 0.92, {scenarioB, "rfd_mpnn"}: 0.68, {scenarioB, "pepmlm"}: 0.55,
		{scenarioB, "nsga2"}: 0.85, {scenarioB, "qwen3"}: 0.492, {scenarioB, "deepseek"}: 0.518,
	}
	ds := []string{scenarioB}
	return &results.MainTable{
		Datasets: ds,
		Metric:   "constraint_satisfaction",
		Methods:  methodIDs(),
		Values:   seedTable(s, ds, centers, 0.60, 0.03),
	}
}

func structureValidity(s *sampler) results.Payload {
	type mkey struct{ method, metric string }
	centers := map[mkey]float64{
		{"ours", "plddt"}: 0.82, {"rfd_mpnn", "plddt"}: 0.88, {"pepmlm", "plddt"}: 0.72,
		{"nsga2", "plddt"}: 0.75, {"qwen3", "plddt"}: 0.612, {"deepseek", "plddt"}: 0.645,
		{"ours", "iptm"}: 0.78, {"rfd_mpnn", "iptm"}: 0.84, {"pepmlm", "iptm"}: 0.65,
		{"nsga2", "iptm"}: 0.68, {"qwen3", "iptm"}: 0.542, {"deepseek", "iptm"}: 0.584,
		{"ours", "delta_g"}: -12.5, {"rfd_mpnn", "delta_g"}: -11.8, {"pepmlm", "delta_g"}: -9.5,
		{"nsga2", "delta_g"}: -10.2, {"qwen3", "delta_g"}: -7.824, {"deepseek", "delta_g"}: -8.156,
	}
	mets := []string{"plddt", "iptm", "delta_g"}
	byMethod := make(map[string]map[string][]float64)
	for _, m := range methodIDs() {
		byMethod[m] = make(map[string][]float64)
		for _, met := range mets {
			c, ok := centers[mkey{m, met}]
			if !ok {
				c = 0.70
			}
			spread := 0.02
			if met == "delta_g" {
				spread = 0.5
			}
			byMethod[m][met] = s.seeds(c, spread)
		}
	}
	return &results.MultiMetricTable{
		Datasets: []string{scenarioB},
		Metrics:  mets,
		Methods:  methodIDs(),
		Values:   map[string]map[string]map[string][]float64{scenarioB: byMethod},
	}
}

func ablation(s *sampler) results.Payload {
	variants := []struct {
		id, name string
		center   float64
	}{
		{"full", "Ours (full)", 0.91},
		{"no_sar_mining", "w/o SAR rule mining", 0.86},
		{"no_pareto", "w/o Pareto parent selection", 0.84},
		{"no_reflection", "w/o reflection", 0.87},
		{"no_structure", "w/o structure/energy oracle", 0.82},
	}
	t := &results.AblationTable{Dataset: scenarioB, Metric: "final_score"}
	for _, v := range variants {
		t.Variants = append(t.Variants, results.AblationVariant{ID: v.id, Name: v.name, Values: s.seeds(v.center, 0.015)})
	}
	return t
}

// ablationAnalysis summarizes an ablation table as mean scores and
// percentage drops relative to its first variant.
func ablationAnalysis(t *results.AblationTable) *results.AblationAnalysis {
	a := &results.AblationAnalysis{Metric: t.Metric}
	if len(t.Variants) == 0 {
		return a
	}
	a.BaselineScore = round(stats.Mean(t.Variants[0].Values), 4)
	for _, v := range t.Variants[1:] {
		score := round(stats.Mean(v.Values), 4)
		deg := 0.0
		if a.BaselineScore != 0 {
			deg = round((a.BaselineScore-score)/a.BaselineScore*100, 2)
		}
		a.Variants = append(a.Variants, results.DegradationVariant{ID: v.ID, Name: v.Name, Score: score, Degradation: deg})
	}
	return a
}

func sarStats(s *sampler) results.Payload {
	type stat struct {
		a, b, spreadA, spreadB float64
		places                 int
	}
	rows := []struct {
		id string
		stat
	}{
		{"total_rules", stat{38, 126, 4, 10, 0}},
		{"compatible_pairs", stat{52, 311, 6, 24, 0}},
		{"max_clique_size", stat{4, 9, 1, 1, 0}},
		{"rule_usage_rate", stat{0.62, 0.81, 0.05, 0.04, 4}},
	}
	t := &results.SARStatsTable{
		Datasets: []string{scenarioA, scenarioB},
		Metrics:  make(map[string]map[string][]float64),
	}
	for _, sp := range rows {
		draw := func(center, spread float64) []float64 {
			vs := make([]float64, len(seeds))
			for i := range vs {
				vs[i] = round(center+s.uniform(-spread, spread), sp.places)
			}
			return vs
		}
		t.Metrics[sp.id] = map[string][]float64{
			scenarioA: draw(sp.a, sp.spreadA),
			scenarioB: draw(sp.b, sp.spreadB),
		}
	}
	return t
}
