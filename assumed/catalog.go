// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assumed

import "golang.org/x/paperbench/results"

// Notice is the placeholder warning stored in generated documents.
const Notice = "ALL numbers are ASSUMED placeholders for drafting. Replace with real results later."

const (
	scenarioA = "scenario_a"
	scenarioB = "scenario_b"
	scenarioC = "scenario_c"
)

var ours = results.Method{ID: results.OursID, Name: "Pareto-guided multi-round agentic optimization", Short: "Ours"}

var baselines = []results.Method{
	{ID: "rfd_mpnn", Name: "RFDiffusion + ProteinMPNN", Short: "RFD+MPNN", Family: "Structure"},
	{ID: "pepmlm", Name: "PepMLM (Masked LM mutation sampling)", Short: "PepMLM", Family: "Sequence"},
	{ID: "nsga2", Name: "NSGA-II on unified oracle", Short: "NSGA-II", Family: "Heuristic"},
	{ID: "qwen3", Name: "Direct Qwen3-32B (single-pass)", Short: "Qwen3-32B", Family: "LLM"},
	{ID: "deepseek", Name: "Direct DeepSeek-V3.2 (single-pass)", Short: "DeepSeek-V3.2", Family: "LLM"},
}

// methodIDs lists ours followed by every baseline.
func methodIDs() []string {
	ids := []string{ours.ID}
	for _, b := range baselines {
		ids = append(ids, b.ID)
	}
	return ids
}

var datasets = []results.Dataset{
	{ID: scenarioA, Name: "Scenario A (Sparse)", Task: "optimization", Notes: "Sparse SAR (e.g., 1F47, 3EQS, 3EQY, 3LNZ, 3RF3, 4CPA, 4J2L, 5UML, 5UMM, 5XCO)"},
	{ID: scenarioB, Name: "Scenario B (Rich)", Task: "optimization", Notes: "Rich SAR (e.g., PDZ, Bcl-2, GLP-1, MDM2, PD-L1)"},
	{ID: scenarioC, Name: "Scenario C (Cyclic)", Task: "optimization", Notes: "Cyclic peptide case study (Krpep-2d_WT)"},
}

var metrics = []results.Metric{
	{ID: "final_score", Name: "Final Score", Direction: results.HigherIsBetter, Format: "float3"},
	{ID: "hr_at_k", Name: "HR@K", Direction: results.HigherIsBetter, Format: "float3"},
	{ID: "sar_violation", Name: "SAR Violation Rate (%)", Direction: results.LowerIsBetter, Format: "float3"},
	{ID: "constraint_satisfaction", Name: "Constraint Sat. Rate (%)", Direction: results.HigherIsBetter, Format: "float3"},
	{ID: "hypervolume", Name: "Hypervolume", Direction: results.HigherIsBetter, Format: "float3"},
	{ID: "plddt", Name: "pLDDT", Direction: results.HigherIsBetter, Format: "float3"},
	{ID: "iptm", Name: "iPTM", Direction: results.HigherIsBetter, Format: "float3"},
	{ID: "delta_g", Name: `Interface $\Delta G$`, Direction: results.LowerIsBetter, Format: "float3"},
	{ID: "runtime", Name: "Runtime (s)", Direction: results.LowerIsBetter, Format: "float2"},
}

var seeds = []int{0, 1, 2, 3, 4}

var (
	scenarioATargets = []string{
		"1F47", "1GL0", "1GL1", "1KNE", "1SMF", "3EQS", "3EQY",
		"3LNZ", "3RF3", "4CPA", "4J2L", "5UML", "5UMM", "5XCO",
	}
	scenarioBTargets = []string{"PDZ", "Bcl-2", "GLP-1", "MDM2", "PD-L1"}
	scenarioCTargets = []string{"Krpep-2d"}
)

var protocol = map[string]string{
	"split":            "Project-internal (Assumed)",
	"hardware":         "1xGPU (Assumed)",
	"structure_oracle": "Boltz-2",
	"training_budget":  "Fixed evaluation budget (Assumed)",
}

// Objective names of the candidate-level dashboard.
var objectives = []string{"potency_score", "structural_quality_score", "developability_score"}
