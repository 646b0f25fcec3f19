// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package results

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
)

// Experiment kinds.
const (
	KindMainTable               = "main_table"
	KindMultiMetricTable        = "multi_metric_table"
	KindParetoMetricsTable      = "pareto_metrics_table"
	KindSARStatsTable           = "sar_stats_table"
	KindAblationTable           = "ablation_table"
	KindScalingCurve            = "scaling_curve"
	KindRobustnessCurve         = "robustness_curve"
	KindConvergenceCurve        = "convergence_curve"
	KindSampleEfficiency        = "sample_efficiency"
	KindStrategyEvolution       = "strategy_evolution"
	KindOptimizationDashboard   = "optimization_dashboard"
	KindAblationAnalysis        = "ablation_analysis"
	KindEfficiencyScatter       = "efficiency_scatter"
	KindHeatmapMatrix           = "heatmap_matrix"
	KindParetoDashboard         = "pareto_dashboard"
	KindConstraintDistributions = "constraint_distributions"
	KindRuntimeBreakdown        = "runtime_breakdown"
	KindSARRuleGraph            = "sar_rule_graph"
	KindSystemDiagram           = "system_diagram"
)

// A Payload is the kind-specific body of an Experiment.
type Payload interface {
	// Kinds returns the experiment kinds this payload type
	// decodes.
	Kinds() []string
}

// An Experiment is one entry of a Document's experiment list.
//
// The header fields are always present. The payload is kept in its
// encoded form and decoded on demand with Decode, so documents with
// kinds unknown to this package still round-trip.
type Experiment struct {
	ID    string
	Kind  string
	Title string
	Notes string

	body json.RawMessage
}

// NewExperiment returns an experiment carrying payload p. p may be nil
// for kinds without a body.
func NewExperiment(id, kind, title, notes string, p Payload) (*Experiment, error) {
	e := &Experiment{ID: id, Kind: kind, Title: title, Notes: notes}
	if p == nil {
		return e, nil
	}
	if !slices.Contains(p.Kinds(), kind) {
		return nil, fmt.Errorf("%w: experiment %s has kind %s, payload is %T", ErrKindMismatch, id, kind, p)
	}
	body, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("experiment %s: %w", id, err)
	}
	e.body = body
	return e, nil
}

// Decode decodes the experiment payload into p.
func (e *Experiment) Decode(p Payload) error {
	if !slices.Contains(p.Kinds(), e.Kind) {
		return fmt.Errorf("%w: experiment %s has kind %s, want %v", ErrKindMismatch, e.ID, e.Kind, p.Kinds())
	}
	if len(e.body) == 0 {
		return nil
	}
	if err := json.Unmarshal(e.body, p); err != nil {
		return fmt.Errorf("experiment %s: %w", e.ID, err)
	}
	return nil
}

// MarshalJSON writes the payload fields and the header fields as one
// flat object with sorted keys.
func (e *Experiment) MarshalJSON() ([]byte, error) {
	fields := make(map[string]json.RawMessage)
	if len(e.body) > 0 && !bytes.Equal(e.body, []byte("null")) {
		if err := json.Unmarshal(e.body, &fields); err != nil {
			return nil, fmt.Errorf("experiment %s: payload is not an object: %w", e.ID, err)
		}
	}
	set := func(key, val string) error {
		b, err := json.Marshal(val)
		if err != nil {
			return err
		}
		fields[key] = b
		return nil
	}
	for _, kv := range [][2]string{{"id", e.ID}, {"kind", e.Kind}, {"title", e.Title}, {"notes", e.Notes}} {
		if kv[0] == "notes" && kv[1] == "" {
			delete(fields, "notes")
			continue
		}
		if err := set(kv[0], kv[1]); err != nil {
			return nil, err
		}
	}
	return json.Marshal(fields)
}

func (e *Experiment) UnmarshalJSON(data []byte) error {
	var hdr struct {
		ID    string `json:"id"`
		Kind  string `json:"kind"`
		Title string `json:"title"`
		Notes string `json:"notes"`
	}
	if err := json.Unmarshal(data, &hdr); err != nil {
		return err
	}
	if hdr.ID == "" {
		return fmt.Errorf("%w: experiment id", ErrMissingField)
	}
	e.ID, e.Kind, e.Title, e.Notes = hdr.ID, hdr.Kind, hdr.Title, hdr.Notes
	e.body = append(json.RawMessage(nil), data...)
	return nil
}
