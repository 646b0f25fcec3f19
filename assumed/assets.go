// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assumed

import "golang.org/x/paperbench/results"

func tableAsset(id, src string, out results.Output, st results.Style) results.Asset {
	return results.Asset{ID: id, Type: results.AssetTable, SourceExperiment: src, Output: out, Style: st}
}

func figureAsset(id, plot, src string, st results.Style, extra ...string) results.Asset {
	out := results.Output{
		PDF: "assets/figs/" + id + ".pdf",
		PNG: "assets/figs/" + id + ".png",
	}
	for _, e := range extra {
		if e == "svg" {
			out.SVG = "assets/figs/" + id + ".svg"
		}
	}
	return results.Asset{ID: id, Type: results.AssetFigure, Plot: plot, SourceExperiment: src, Output: out, Style: st}
}

// tableOutput returns LaTeX and PNG paths for a table, plus HTML and
// text when full is set.
func tableOutput(id string, full bool) results.Output {
	out := results.Output{
		LaTeX: "assets/tables/" + id + ".tex",
		PNG:   "assets/tables/" + id + ".png",
	}
	if full {
		out.HTML = "assets/tables/" + id + ".html"
		out.Text = "assets/tables/" + id + ".txt"
	}
	return out
}

func buildAssets() []results.Asset {
	t := results.Bool(true)
	f := results.Bool(false)
	return []results.Asset{
		tableAsset("tab_main_results", "main_results", tableOutput("tab_main_results", true), results.Style{
			Caption:         "Comparison of optimized lead quality across three benchmarking scenarios (Assumed). Scenario A: Sparse SAR (e.g., SKEMPI 2.0); Scenario B: Rich SAR (PD-L1); Scenario C: Cyclic case study (Krpep-2d).",
			Label:           "tab:main_results",
			HighlightBest:   t,
			HighlightSecond: t,
		}),
		tableAsset("tab_sar_violation", "sar_violation", tableOutput("tab_sar_violation", false), results.Style{
			Caption:       "SAR Violation Rate (Assumed). Fraction of generated candidates that mutate known critical conserved residues.",
			Label:         "tab:sar_violation",
			HighlightBest: t,
		}),
		tableAsset("tab_constraint_satisfaction", "constraint_satisfaction", tableOutput("tab_constraint_satisfaction", false), results.Style{
			Caption:       `Multi-objective constraint satisfaction rate (Assumed). Percentage of high-affinity candidates meeting all developability criteria (Net Charge $\in [-2, +2]$ and Low Aggregation Risk).`,
			Label:         "tab:csr",
			HighlightBest: t,
		}),
		tableAsset("tab_structure_validity", "structure_validity", tableOutput("tab_structure_validity", false), results.Style{
			Caption:       "Structural and Energetic Validity (Assumed). All values evaluated by independent Boltz-2 oracle.",
			Label:         "tab:structure_validity",
			HighlightBest: t,
		}),
		tableAsset("tab_ablation", "ablation", tableOutput("tab_ablation", false), results.Style{
			Caption:       "Ablation study on Scenario B (Assumed). Shows the impact of each core architectural component on final optimization performance.",
			Label:         "tab:ablation",
			HighlightBest: t,
		}),
		tableAsset("tab_sar_stats", "sar_stats", tableOutput("tab_sar_stats", true), results.Style{
			Caption: "SAR rule mining statistics (Assumed).",
			Label:   "tab:sar_stats",
		}),
		tableAsset("tab_pareto_metrics", "pareto_metrics", tableOutput("tab_pareto_metrics", true), results.Style{
			Caption:       "Per-round Pareto front quality on Scenario B / PD-L1 (Assumed). Mean and standard deviation over optimization rounds.",
			Label:         "tab:pareto_metrics",
			HighlightBest: t,
		}),

		figureAsset("fig_main_bar", results.PlotGroupedBar, "main_results", results.Style{
			Title: "Optimization Performance across Scenarios (Assumed)", XLabel: "Scenario", YLabel: "Final Score (Composite)", Legend: t,
		}, "svg"),
		figureAsset("fig_scaling", results.PlotLine, "scaling_data", results.Style{
			Title: "Scaling with Data (Assumed)", XLabel: "Training data fraction", YLabel: "Final Score", Legend: t,
		}),
		figureAsset("fig_robustness", results.PlotLine, "robustness_missing", results.Style{
			Title: "Robustness to Missing Feedback (Assumed)", XLabel: "Missingness level", YLabel: "Final Score", Legend: t,
		}),
		figureAsset("fig_efficiency", results.PlotScatter, "efficiency_runtime", results.Style{
			Title: "Accuracy-Runtime Tradeoff (Assumed)", XLabel: "Runtime (s)", YLabel: "Final Score", Legend: f,
		}),
		figureAsset("fig_system_overview", results.PlotSystemDiagram, "system_overview", results.Style{
			Title: "System Overview (Assumed)",
		}, "svg"),
		figureAsset("fig_per_target_heatmap_scenario_a", results.PlotHeatmap, "per_target_heatmap_scenario_a", results.Style{
			Title: "Per-target Results (Scenario A / Sparse) (Assumed)", XLabel: "Method", YLabel: "Target", Cmap: "viridis",
		}),
		figureAsset("fig_per_target_heatmap_scenario_b", results.PlotHeatmap, "per_target_heatmap_scenario_b", results.Style{
			Title: "Per-target Results (Scenario B / Rich) (Assumed)", XLabel: "Method", YLabel: "Target", Cmap: "viridis",
			Normalize: "row_delta_best", Annot: true, AnnotFmt: ".3f", CbarLabel: "Gap to best",
		}),
		figureAsset("fig_per_target_heatmap_scenario_c", results.PlotHeatmap, "per_target_heatmap_scenario_c", results.Style{
			Title: "Per-target Results (Scenario C / Cyclic) (Assumed)", XLabel: "Method", YLabel: "Target", Cmap: "viridis",
			Robust: true,
		}),
		figureAsset("fig_pareto_dashboard", results.PlotParetoDashboard, "pareto_dashboard_scenario_b", results.Style{
			Title: "Pareto Trade-offs and Convergence (Scenario B / PD-L1) (Assumed)",
		}),
		figureAsset("fig_constraint_distributions", results.PlotConstraintDistributions, "constraint_distributions_scenario_b", results.Style{
			Title: "Constraint Governance Distributions (Scenario B) (Assumed)",
		}),
		figureAsset("fig_runtime_breakdown", results.PlotStackedBar, "runtime_breakdown_scenario_b", results.Style{
			Title: "Runtime Breakdown (Scenario B) (Assumed)", XLabel: "Method", YLabel: "Seconds", Legend: t,
		}),
		figureAsset("fig_convergence", results.PlotConvergenceCurves, "convergence_rounds", results.Style{
			Title: "Convergence over Rounds (Assumed)", YOrientation: "round_major",
		}),
		figureAsset("fig_sample_efficiency", results.PlotSampleEfficiency, "sample_efficiency", results.Style{
			Title: "Sample Efficiency (Assumed)", YOrientation: "round_major",
		}),
		figureAsset("fig_strategy_evolution", results.PlotStrategyEvolution, "strategy_evolution", results.Style{
			Title: "Strategy Evolution (Assumed)",
		}),
		figureAsset("fig_optimization_dashboard", results.PlotOptimizationDashboard, "optimization_dashboard", results.Style{
			Title: "Multi-round Optimization Dashboard (Assumed)", YOrientation: "round_major",
		}),
		figureAsset("fig_ablation_analysis", results.PlotAblationAnalysis, "ablation_analysis", results.Style{
			Title: "Ablation Analysis (Assumed)", Legend: t,
		}),
		figureAsset("fig_sar_rule_graph", results.PlotSARRuleGraph, "sar_rules", results.Style{
			Title: "Mined SAR Rules (Assumed)",
		}),
	}
}
