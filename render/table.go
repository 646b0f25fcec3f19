// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"golang.org/x/paperbench/results"
)

// A Mark is the highlight of a table cell.
type Mark int

const (
	Plain Mark = iota
	Bold
	Underline
)

// A Cell is one table entry. Text is LaTeX source without the
// highlight, which each writer renders in its own way.
type Cell struct {
	Text string
	Mark Mark
}

// A Table is the output-independent form of a table asset. Header
// and cell text are LaTeX source.
type Table struct {
	ColSep  string // \tabcolsep
	Header  []string
	Rows    [][]Cell
	Caption string
	Label   string
}

// tableOptions are the resolved style settings of a table asset.
type tableOptions struct {
	caption, label string
	best, second   bool
}

func resolveTableOptions(doc *results.Document, a results.Asset, exp *results.Experiment) tableOptions {
	o := tableOptions{
		caption: a.Style.Caption,
		label:   a.Style.Label,
		best:    a.Style.Best(),
		second:  a.Style.Second(),
	}
	if o.caption == "" {
		o.caption = exp.Title + "."
		if doc.IsAssumed() {
			o.caption = exp.Title + " (Assumed)."
		}
	}
	if o.label == "" {
		o.label = "tab:" + a.SourceExperiment
	}
	return o
}

// buildTable dispatches on the experiment kind.
func buildTable(doc *results.Document, exp *results.Experiment, o tableOptions) (*Table, error) {
	switch exp.Kind {
	case results.KindMainTable:
		return mainTable(doc, exp, o)
	case results.KindMultiMetricTable:
		return multiMetricTable(doc, exp, o)
	case results.KindParetoMetricsTable:
		return paretoMetricsTable(doc, exp, o)
	case results.KindSARStatsTable:
		return sarStatsTable(doc, exp, o)
	case results.KindAblationTable:
		return ablationTable(doc, exp, o)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownTable, exp.Kind)
}

type stat struct{ mean, std float64 }

func (s stat) cell(digits int) string {
	return FormatMeanStd(s.mean, s.std, digits)
}

// rank returns ids ordered best first by their means. Ties keep
// their input order.
func rank(ids []string, mean func(id string) float64, higherIsBetter bool) []string {
	ranked := slices.Clone(ids)
	slices.SortStableFunc(ranked, func(a, b string) int {
		if higherIsBetter {
			return cmp.Compare(mean(b), mean(a))
		}
		return cmp.Compare(mean(a), mean(b))
	})
	return ranked
}

// bestAndSecond returns the best id and the first id whose mean
// differs from the best's by more than 1e-12, or "" for none.
func bestAndSecond(ids []string, mean func(id string) float64, higherIsBetter bool) (best, second string) {
	ranked := rank(ids, mean, higherIsBetter)
	if len(ranked) == 0 {
		return "", ""
	}
	best = ranked[0]
	for _, id := range ranked[1:] {
		if math.Abs(mean(id)-mean(best)) > 1e-12 {
			return best, id
		}
	}
	return best, ""
}

func mainTable(doc *results.Document, exp *results.Experiment, o tableOptions) (*Table, error) {
	var p results.MainTable
	if err := exp.Decode(&p); err != nil {
		return nil, err
	}
	cells := make(map[[2]string]stat)
	for _, ds := range p.Datasets {
		for _, m := range p.Methods {
			xs, ok := p.Values[ds][m]
			if !ok {
				return nil, fmt.Errorf("%w: %s values for %s/%s", results.ErrMissingField, exp.ID, ds, m)
			}
			mu, sd := meanStd(xs)
			cells[[2]string{ds, m}] = stat{mu, sd}
		}
	}

	higher := doc.HigherIsBetter(p.Metric)
	best := make(map[string]string)
	second := make(map[string]string)
	if o.best || o.second {
		for _, ds := range p.Datasets {
			best[ds], second[ds] = bestAndSecond(p.Methods, func(m string) float64 {
				return cells[[2]string{ds, m}].mean
			}, higher)
		}
	}

	t := &Table{
		ColSep:  "6pt",
		Header:  []string{"Method"},
		Caption: fmt.Sprintf("%s Metric: %s.", o.caption, doc.MetricName(p.Metric)),
		Label:   o.label,
	}
	for _, ds := range p.Datasets {
		t.Header = append(t.Header, EscapeLaTeX(doc.DatasetName(ds)))
	}
	for _, m := range p.Methods {
		row := []Cell{{Text: EscapeLaTeX(doc.MethodName(m))}}
		for _, ds := range p.Datasets {
			c := Cell{Text: cells[[2]string{ds, m}].cell(3)}
			switch {
			case o.best && best[ds] == m:
				c.Mark = Bold
			case o.second && second[ds] == m:
				c.Mark = Underline
			}
			row = append(row, c)
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// metricCells computes per-method, per-metric statistics of the
// first dataset of a multi-metric table.
func metricCells(exp *results.Experiment, p *results.MultiMetricTable) (map[[2]string]stat, error) {
	if len(p.Datasets) == 0 {
		return nil, fmt.Errorf("%w: %s datasets", results.ErrMissingField, exp.ID)
	}
	ds := p.Datasets[0]
	cells := make(map[[2]string]stat)
	for _, m := range p.Methods {
		for _, met := range p.Metrics {
			xs, ok := p.Values[ds][m][met]
			if !ok {
				return nil, fmt.Errorf("%w: %s values for %s/%s/%s", results.ErrMissingField, exp.ID, ds, m, met)
			}
			mu, sd := meanStd(xs)
			cells[[2]string{m, met}] = stat{mu, sd}
		}
	}
	return cells, nil
}

// perMetricTable lays out methods by metrics, bolding the best method
// of each metric.
func perMetricTable(doc *results.Document, p *results.MultiMetricTable, cells map[[2]string]stat, header []string, o tableOptions) *Table {
	best := make(map[string]string)
	if o.best {
		for _, met := range p.Metrics {
			best[met], _ = bestAndSecond(p.Methods, func(m string) float64 {
				return cells[[2]string{m, met}].mean
			}, doc.HigherIsBetter(met))
		}
	}
	t := &Table{
		Header:  append([]string{"Method"}, header...),
		Caption: o.caption,
		Label:   o.label,
	}
	for _, m := range p.Methods {
		row := []Cell{{Text: EscapeLaTeX(doc.MethodName(m))}}
		for _, met := range p.Metrics {
			c := Cell{Text: cells[[2]string{m, met}].cell(3)}
			if o.best && best[met] == m {
				c.Mark = Bold
			}
			row = append(row, c)
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

func multiMetricTable(doc *results.Document, exp *results.Experiment, o tableOptions) (*Table, error) {
	var p results.MultiMetricTable
	if err := exp.Decode(&p); err != nil {
		return nil, err
	}
	cells, err := metricCells(exp, &p)
	if err != nil {
		return nil, err
	}
	var header []string
	for _, met := range p.Metrics {
		header = append(header, EscapeLaTeX(doc.MetricName(met)))
	}
	t := perMetricTable(doc, &p, cells, header, o)
	t.ColSep = "8pt"
	return t, nil
}

var paretoMetricHeaders = map[string]string{
	"hypervolume": "Hypervolume",
	"front_size":  "Front Size",
}

func paretoMetricsTable(doc *results.Document, exp *results.Experiment, o tableOptions) (*Table, error) {
	var p results.MultiMetricTable
	if err := exp.Decode(&p); err != nil {
		return nil, err
	}
	cells, err := metricCells(exp, &p)
	if err != nil {
		return nil, err
	}
	var header []string
	for _, met := range p.Metrics {
		h, ok := paretoMetricHeaders[met]
		if !ok {
			h = EscapeLaTeX(doc.MetricName(met))
		}
		header = append(header, h)
	}
	t := perMetricTable(doc, &p, cells, header, o)
	t.ColSep = "6pt"
	return t, nil
}

var sarStatRows = []struct{ id, name string }{
	{"total_rules", "Total rules extracted"},
	{"compatible_pairs", "Compatible rule pairs"},
	{"max_clique_size", "Max clique size"},
	{"rule_usage_rate", "Rules used in generation"},
}

func sarStatsTable(doc *results.Document, exp *results.Experiment, o tableOptions) (*Table, error) {
	var p results.SARStatsTable
	if err := exp.Decode(&p); err != nil {
		return nil, err
	}
	t := &Table{
		ColSep:  "6pt",
		Header:  []string{"Metric"},
		Caption: o.caption,
		Label:   o.label,
	}
	for _, ds := range p.Datasets {
		t.Header = append(t.Header, EscapeLaTeX(doc.DatasetName(ds)))
	}
	for _, r := range sarStatRows {
		byDataset, ok := p.Metrics[r.id]
		if !ok {
			continue
		}
		row := []Cell{{Text: EscapeLaTeX(r.name)}}
		for _, ds := range p.Datasets {
			xs := byDataset[ds]
			if len(xs) == 0 {
				row = append(row, Cell{Text: "N/A"})
				continue
			}
			mu, sd := meanStd(xs)
			if r.id == "rule_usage_rate" {
				row = append(row, Cell{Text: formatPercent(mu, sd)})
			} else {
				row = append(row, Cell{Text: FormatMeanStd(mu, sd, 1)})
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

func ablationTable(doc *results.Document, exp *results.Experiment, o tableOptions) (*Table, error) {
	var p results.AblationTable
	if err := exp.Decode(&p); err != nil {
		return nil, err
	}
	stats := make([]stat, len(p.Variants))
	best := math.Inf(-1)
	for i, v := range p.Variants {
		mu, sd := meanStd(v.Values)
		stats[i] = stat{mu, sd}
		best = math.Max(best, mu)
	}
	t := &Table{
		ColSep:  "6pt",
		Header:  []string{"Variant", doc.MetricName(p.Metric)},
		Caption: o.caption,
		Label:   o.label,
	}
	for i, v := range p.Variants {
		c := Cell{Text: stats[i].cell(3)}
		if o.best && math.Abs(stats[i].mean-best) < 1e-12 {
			c.Mark = Bold
		}
		t.Rows = append(t.Rows, []Cell{{Text: EscapeLaTeX(v.Name)}, c})
	}
	return t, nil
}
