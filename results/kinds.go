// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package results

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"golang.org/x/paperbench/pareto"
)

// MainTable holds per-seed values of one metric for every
// (dataset, method) pair: Values[dataset][method][seed].
type MainTable struct {
	Datasets []string                        `json:"datasets"`
	Metric   string                          `json:"metric"`
	Methods  []string                        `json:"methods"`
	Values   map[string]map[string][]float64 `json:"values"`
}

func (*MainTable) Kinds() []string { return []string{KindMainTable} }

// MultiMetricTable holds per-seed values of several metrics:
// Values[dataset][method][metric][seed].
type MultiMetricTable struct {
	Datasets []string                                   `json:"datasets"`
	Metrics  []string                                   `json:"metrics"`
	Methods  []string                                   `json:"methods"`
	Values   map[string]map[string]map[string][]float64 `json:"values"`
}

func (*MultiMetricTable) Kinds() []string {
	return []string{KindMultiMetricTable, KindParetoMetricsTable}
}

// SARStatsTable holds rule mining statistics: Metrics[stat][dataset][seed].
type SARStatsTable struct {
	Datasets []string                        `json:"datasets"`
	Metrics  map[string]map[string][]float64 `json:"metrics"`
}

func (*SARStatsTable) Kinds() []string { return []string{KindSARStatsTable} }

type AblationTable struct {
	Dataset  string            `json:"dataset"`
	Metric   string            `json:"metric"`
	Variants []AblationVariant `json:"variants"`
}

type AblationVariant struct {
	ID     string    `json:"id"`
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

func (*AblationTable) Kinds() []string { return []string{KindAblationTable} }

// An Axis is a named list of x coordinates.
type Axis struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

// A Curve is a set of per-method series over a shared x axis.
type Curve struct {
	Dataset string   `json:"dataset,omitempty"`
	Metric  string   `json:"metric,omitempty"`
	X       Axis     `json:"x"`
	Series  []Series `json:"series"`
}

func (*Curve) Kinds() []string {
	return []string{KindScalingCurve, KindRobustnessCurve, KindConvergenceCurve, KindSampleEfficiency}
}

type Series struct {
	Method string  `json:"method"`
	Y      SeriesY `json:"y"`
}

// SeriesY is either one value per x (Flat) or a matrix of per-seed
// values (Seeds). The layout of Seeds, step-major or seed-major, is a
// property of the asset that plots it.
type SeriesY struct {
	Flat  []float64
	Seeds [][]float64
}

// MultiSeed reports whether y carries per-seed values.
func (y SeriesY) MultiSeed() bool { return y.Seeds != nil }

func (y SeriesY) MarshalJSON() ([]byte, error) {
	if y.Seeds != nil {
		return json.Marshal(y.Seeds)
	}
	if y.Flat == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(y.Flat)
}

func (y *SeriesY) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if bytes.HasPrefix(trimmed, []byte("[")) && bytes.HasPrefix(bytes.TrimLeft(trimmed[1:], " \t\r\n"), []byte("[")) {
		y.Flat = nil
		return json.Unmarshal(data, &y.Seeds)
	}
	y.Seeds = nil
	return json.Unmarshal(data, &y.Flat)
}

// Strategy series names.
const (
	ExplorationRatio         = "exploration_ratio"
	HypothesisValidationRate = "hypothesis_validation_rate"
)

type StrategyEvolution struct {
	Series []StrategySeries `json:"series"`
}

type StrategySeries struct {
	Name string    `json:"name"`
	X    Axis      `json:"x"`
	Y    []float64 `json:"y"`
}

func (*StrategyEvolution) Kinds() []string { return []string{KindStrategyEvolution} }

// Lookup returns the series with the given name.
func (s *StrategyEvolution) Lookup(name string) (StrategySeries, bool) {
	for _, ss := range s.Series {
		if ss.Name == name {
			return ss, true
		}
	}
	return StrategySeries{}, false
}

type OptimizationDashboard struct {
	Metric      string            `json:"metric,omitempty"`
	Convergence Curve             `json:"convergence"`
	Strategy    StrategyEvolution `json:"strategy"`
}

func (*OptimizationDashboard) Kinds() []string { return []string{KindOptimizationDashboard} }

type AblationAnalysis struct {
	Metric        string               `json:"metric"`
	BaselineScore float64              `json:"baseline_score"`
	Variants      []DegradationVariant `json:"variants"`
}

// A DegradationVariant is an ablated variant with its score and its
// percentage drop from the full system.
type DegradationVariant struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Score       float64 `json:"score"`
	Degradation float64 `json:"degradation"`
}

func (*AblationAnalysis) Kinds() []string { return []string{KindAblationAnalysis} }

type EfficiencyScatter struct {
	Dataset string         `json:"dataset,omitempty"`
	XMetric string         `json:"x_metric"`
	YMetric string         `json:"y_metric"`
	Points  []ScatterPoint `json:"points"`
}

type ScatterPoint struct {
	Method string  `json:"method"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

func (*EfficiencyScatter) Kinds() []string { return []string{KindEfficiencyScatter} }

// HeatmapMatrix holds Values[row][col].
type HeatmapMatrix struct {
	Dataset string                        `json:"dataset,omitempty"`
	Metric  string                        `json:"metric,omitempty"`
	Rows    []string                      `json:"rows"`
	Cols    []string                      `json:"cols"`
	Values  map[string]map[string]float64 `json:"values"`
}

func (*HeatmapMatrix) Kinds() []string { return []string{KindHeatmapMatrix} }

// Dense returns the matrix in Rows by Cols order.
func (h *HeatmapMatrix) Dense() ([][]float64, error) {
	out := make([][]float64, len(h.Rows))
	for i, r := range h.Rows {
		row, ok := h.Values[r]
		if !ok {
			return nil, fmt.Errorf("%w: heatmap row %s", ErrMissingField, r)
		}
		out[i] = make([]float64, len(h.Cols))
		for j, c := range h.Cols {
			v, ok := row[c]
			if !ok {
				return nil, fmt.Errorf("%w: heatmap cell %s/%s", ErrMissingField, r, c)
			}
			out[i][j] = v
		}
	}
	return out, nil
}

type ParetoDashboard struct {
	Dataset    string      `json:"dataset,omitempty"`
	Target     string      `json:"target,omitempty"`
	Objectives []string    `json:"objectives"`
	Points     []Candidate `json:"points"`
}

func (*ParetoDashboard) Kinds() []string { return []string{KindParetoDashboard} }

// A Candidate is one generated design, scored on every objective.
// It is encoded as a flat object: method, round, and one field per
// objective.
type Candidate struct {
	Method     string
	Round      int
	Objectives map[string]float64
}

// Point returns c's objective values in the order of names.
func (c Candidate) Point(names []string) (pareto.Point, error) {
	p := make(pareto.Point, len(names))
	for i, n := range names {
		v, ok := c.Objectives[n]
		if !ok {
			return nil, fmt.Errorf("%w: candidate %s/%d objective %s", ErrMissingField, c.Method, c.Round, n)
		}
		p[i] = v
	}
	return p, nil
}

func (c Candidate) MarshalJSON() ([]byte, error) {
	fields := make(map[string]any, len(c.Objectives)+2)
	for k, v := range c.Objectives {
		fields[k] = v
	}
	fields["method"] = c.Method
	fields["round"] = c.Round
	return json.Marshal(fields)
}

func (c *Candidate) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	*c = Candidate{Objectives: make(map[string]float64)}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		var err error
		switch k {
		case "method":
			err = json.Unmarshal(fields[k], &c.Method)
		case "round":
			err = json.Unmarshal(fields[k], &c.Round)
		default:
			var v float64
			if err = json.Unmarshal(fields[k], &v); err == nil {
				c.Objectives[k] = v
			}
		}
		if err != nil {
			return fmt.Errorf("candidate field %s: %w", k, err)
		}
	}
	return nil
}

// ConstraintDistributions holds per-method draws of constraint
// indicators. Methods fixes the display order of ByMethod.
type ConstraintDistributions struct {
	Dataset  string                      `json:"dataset,omitempty"`
	Methods  []string                    `json:"methods,omitempty"`
	ByMethod map[string]ConstraintSample `json:"by_method"`
}

// A ConstraintSample holds parallel draws: total charge counts and
// 0/1 flags.
type ConstraintSample struct {
	TotalCharge     []int `json:"total_charge"`
	AggregationHigh []int `json:"aggregation_high"`
	Violated        []int `json:"violated"`
}

func (*ConstraintDistributions) Kinds() []string { return []string{KindConstraintDistributions} }

// RuntimeBreakdown holds Values[method][component] in seconds.
type RuntimeBreakdown struct {
	Dataset    string                        `json:"dataset,omitempty"`
	Components []string                      `json:"components"`
	Methods    []string                      `json:"methods,omitempty"`
	Values     map[string]map[string]float64 `json:"values"`
}

func (*RuntimeBreakdown) Kinds() []string { return []string{KindRuntimeBreakdown} }

type SARRuleGraph struct {
	Dataset string   `json:"dataset,omitempty"`
	Rules   []Rule   `json:"rules"`
	Cliques []Clique `json:"cliques,omitempty"`
}

// A Rule is a mined substitution rule: replacing From with To at
// Position multiplies potency by Amplification.
type Rule struct {
	ID             string   `json:"id"`
	Position       int      `json:"position"`
	From           string   `json:"from"`
	To             string   `json:"to"`
	Amplification  float64  `json:"amplification"`
	Support        float64  `json:"support"`
	CompatibleWith []string `json:"compatible_with,omitempty"`
}

type Clique struct {
	Rules []string `json:"rules"`
}

func (*SARRuleGraph) Kinds() []string { return []string{KindSARRuleGraph} }

// SystemDiagram has no data; the diagram layout is fixed.
type SystemDiagram struct{}

func (*SystemDiagram) Kinds() []string { return []string{KindSystemDiagram} }
