// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package results

// Asset types.
const (
	AssetTable  = "table"
	AssetFigure = "figure"
)

// Figure plots.
const (
	PlotGroupedBar              = "grouped_bar"
	PlotLine                    = "line"
	PlotScatter                 = "scatter"
	PlotSystemDiagram           = "system_diagram"
	PlotHeatmap                 = "heatmap"
	PlotStackedBar              = "stacked_bar"
	PlotConstraintDistributions = "constraint_distributions"
	PlotParetoDashboard         = "pareto_dashboard"
	PlotConvergenceCurves       = "convergence_curves"
	PlotSampleEfficiency        = "sample_efficiency"
	PlotStrategyEvolution       = "strategy_evolution"
	PlotOptimizationDashboard   = "optimization_dashboard"
	PlotAblationAnalysis        = "ablation_analysis"
	PlotSARRuleGraph            = "sar_rule_graph"
)

// An Asset is a table or figure to render from one experiment.
type Asset struct {
	ID               string `json:"id"`
	Type             string `json:"type"`
	Plot             string `json:"plot,omitempty"`
	SourceExperiment string `json:"source_experiment"`
	Output           Output `json:"output"`
	Style            Style  `json:"style"`
}

// Output holds the paths, relative to the output root, of the files
// to write. Empty paths are skipped.
type Output struct {
	LaTeX string `json:"latex,omitempty"`
	PNG   string `json:"png,omitempty"`
	PDF   string `json:"pdf,omitempty"`
	SVG   string `json:"svg,omitempty"`
	HTML  string `json:"html,omitempty"`
	Text  string `json:"txt,omitempty"`
}

// Style carries presentation options. Pointer fields distinguish
// "unset" from the zero value; see the accessor methods for defaults.
type Style struct {
	Caption         string `json:"caption,omitempty"`
	Label           string `json:"label,omitempty"`
	HighlightBest   *bool  `json:"highlight_best,omitempty"`
	HighlightSecond *bool  `json:"highlight_second,omitempty"`

	Title  string `json:"title,omitempty"`
	XLabel string `json:"xlabel,omitempty"`
	YLabel string `json:"ylabel,omitempty"`
	Legend *bool  `json:"legend,omitempty"`

	Cmap      string   `json:"cmap,omitempty"`
	Normalize string   `json:"normalize,omitempty"`
	Robust    bool     `json:"robust,omitempty"`
	QLow      *float64 `json:"q_low,omitempty"`
	QHigh     *float64 `json:"q_high,omitempty"`
	VMin      *float64 `json:"vmin,omitempty"`
	VMax      *float64 `json:"vmax,omitempty"`
	Annot     bool     `json:"annot,omitempty"`
	AnnotFmt  string   `json:"annot_fmt,omitempty"`
	CbarLabel string   `json:"cbar_label,omitempty"`

	YOrientation string `json:"y_orientation,omitempty"`
}

// Best reports whether the best entry is highlighted. Default true.
func (s Style) Best() bool { return boolOr(s.HighlightBest, true) }

// Second reports whether the runner-up is highlighted. Default true.
func (s Style) Second() bool { return boolOr(s.HighlightSecond, true) }

// ShowLegend reports whether a legend is drawn, defaulting to def.
func (s Style) ShowLegend(def bool) bool { return boolOr(s.Legend, def) }

// Quantiles returns the robust color limits, default 0.05 and 0.95.
func (s Style) Quantiles() (lo, hi float64) {
	lo, hi = 0.05, 0.95
	if s.QLow != nil {
		lo = *s.QLow
	}
	if s.QHigh != nil {
		hi = *s.QHigh
	}
	return lo, hi
}

// TitleOr returns the style title, or def when unset.
func (s Style) TitleOr(def string) string { return stringOr(s.Title, def) }

func (s Style) XLabelOr(def string) string { return stringOr(s.XLabel, def) }

func (s Style) YLabelOr(def string) string { return stringOr(s.YLabel, def) }

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}

func stringOr(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// Bool returns a pointer to v, for building Styles.
func Bool(v bool) *bool { return &v }

// Float returns a pointer to v, for building Styles.
func Float(v float64) *float64 { return &v }
