// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"image/color"
	"strings"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"golang.org/x/paperbench/results"
)

// barWidth returns the drawn width of one of n bars sharing a group
// slot, when that many slots span a figure of width w.
func barWidth(w vg.Length, groups, n int) vg.Length {
	return vg.Length(0.8 * 0.85 * float64(w) / float64(groups*n))
}

// errPoints are bar tops with symmetric errors.
type errPoints struct {
	plotter.XYs
	errs []float64
}

func (e errPoints) YError(i int) (float64, float64) { return e.errs[i], e.errs[i] }

func groupedBar(r *Renderer, exp *results.Experiment, st results.Style) (*figure, error) {
	var t results.MainTable
	if err := exp.Decode(&t); err != nil {
		return nil, err
	}
	if len(t.Datasets) == 0 || len(t.Methods) == 0 {
		return nil, fmt.Errorf("%w: experiment %s", ErrEmpty, exp.ID)
	}
	doc := r.Doc
	w, h := 7.2*vg.Inch, 3.6*vg.Inch
	p := newPlot(st.TitleOr(exp.Title), st.XLabelOr("Dataset"), st.YLabelOr(doc.MetricName(t.Metric)))

	n := len(t.Methods)
	bw := barWidth(w, len(t.Datasets), n)
	step := 0.8 / float64(n)
	for j, m := range t.Methods {
		means := make(plotter.Values, len(t.Datasets))
		errs := errPoints{XYs: make(plotter.XYs, len(t.Datasets)), errs: make([]float64, len(t.Datasets))}
		anyErr := false
		for i, ds := range t.Datasets {
			xs, ok := t.Values[ds][m]
			if !ok || len(xs) == 0 {
				return nil, fmt.Errorf("%w: %s/%s", results.ErrMissingField, ds, m)
			}
			mean, std := meanStd(xs)
			means[i] = mean
			off := (float64(j) - float64(n-1)/2) * step
			errs.XYs[i] = plotter.XY{X: float64(i) + off, Y: mean}
			errs.errs[i] = std
			anyErr = anyErr || std > 0
		}
		bars, err := plotter.NewBarChart(means, bw)
		if err != nil {
			return nil, err
		}
		alpha := 0.75
		if m == results.OursID {
			alpha = 1
		}
		bars.XMin = (float64(j) - float64(n-1)/2) * step
		bars.Color = withAlpha(seriesColor(j), alpha)
		bars.LineStyle.Color = color.White
		bars.LineStyle.Width = vg.Points(0.5)
		p.Add(bars)
		if anyErr {
			eb, err := plotter.NewYErrorBars(errs)
			if err != nil {
				return nil, err
			}
			eb.CapWidth = bw / 3
			eb.LineStyle.Width = vg.Points(0.8)
			p.Add(eb)
		}
		if st.ShowLegend(true) {
			p.Legend.Add(doc.MethodName(m), bars)
		}
	}
	p.Legend.Top = true
	names := make([]string, len(t.Datasets))
	for i, ds := range t.Datasets {
		names[i] = doc.DatasetName(ds)
	}
	p.NominalX(names...)
	p.Y.Min = 0
	return single(p, w, h), nil
}

var stackColors = []color.Color{
	hexColor("#2B6CB0"),
	hexColor("#2C7A7B"),
	hexColor("#C05621"),
	hexColor("#718096"),
	hexColor("#805AD5"),
	hexColor("#38A169"),
}

func stackedBar(r *Renderer, exp *results.Experiment, st results.Style) (*figure, error) {
	var rb results.RuntimeBreakdown
	if err := exp.Decode(&rb); err != nil {
		return nil, err
	}
	methods := rb.Methods
	if len(methods) == 0 {
		keys := make([]string, 0, len(rb.Values))
		for m := range rb.Values {
			keys = append(keys, m)
		}
		methods = r.Doc.OrderMethods(keys)
	}
	if len(methods) == 0 || len(rb.Components) == 0 {
		return nil, fmt.Errorf("%w: experiment %s", ErrEmpty, exp.ID)
	}
	w, h := 7.2*vg.Inch, 3.8*vg.Inch
	p := newPlot(st.TitleOr(exp.Title), st.XLabelOr("Method"), st.YLabelOr("Seconds"))
	var prev *plotter.BarChart
	for i, comp := range rb.Components {
		vals := make(plotter.Values, len(methods))
		for j, m := range methods {
			vals[j] = rb.Values[m][comp]
		}
		bars, err := plotter.NewBarChart(vals, barWidth(w, len(methods), 1))
		if err != nil {
			return nil, err
		}
		bars.Color = stackColors[i%len(stackColors)]
		bars.LineStyle.Width = 0
		if prev != nil {
			bars.StackOn(prev)
		}
		prev = bars
		p.Add(bars)
		if st.ShowLegend(true) {
			p.Legend.Add(strings.ReplaceAll(comp, "_", " "), bars)
		}
	}
	p.Legend.Top = true
	names := make([]string, len(methods))
	for i, m := range methods {
		names[i] = r.Doc.MethodName(m)
	}
	slantX(p, names...)
	p.Y.Min = 0
	return single(p, w, h), nil
}

func ablationAnalysis(r *Renderer, exp *results.Experiment, st results.Style) (*figure, error) {
	var a results.AblationAnalysis
	if err := exp.Decode(&a); err != nil {
		return nil, err
	}
	if len(a.Variants) == 0 {
		return nil, fmt.Errorf("%w: experiment %s", ErrEmpty, exp.ID)
	}
	metric := a.Metric
	if metric == "" {
		metric = "final_score"
	}
	w, h := 7.2*vg.Inch, 4*vg.Inch
	p := newPlot(st.TitleOr(exp.Title), st.XLabelOr(""), st.YLabelOr(r.Doc.MetricName(metric)))

	n := len(a.Variants)
	scores := make(plotter.Values, n)
	names := make([]string, n)
	labels := plotter.XYLabels{XYs: make(plotter.XYs, n), Labels: make([]string, n)}
	top := a.BaselineScore * 1.1
	for i, v := range a.Variants {
		scores[i] = v.Score
		names[i] = v.Name
		labels.XYs[i] = plotter.XY{X: float64(i), Y: v.Score}
		labels.Labels[i] = fmt.Sprintf("-%.1f%%", v.Degradation)
		top = max(top, v.Score*1.15)
	}
	bars, err := plotter.NewBarChart(scores, barWidth(w, n, 1))
	if err != nil {
		return nil, err
	}
	bars.Color = withAlpha(hexColor("#C05621"), 0.85)
	bars.LineStyle.Width = 0
	p.Add(bars)

	base, err := plotter.NewLine(plotter.XYs{{X: -0.5, Y: a.BaselineScore}, {X: float64(n) - 0.5, Y: a.BaselineScore}})
	if err != nil {
		return nil, err
	}
	base.LineStyle.Color = hexColor("#2B6CB0")
	base.LineStyle.Width = vg.Points(1.5)
	base.LineStyle.Dashes = dashed
	p.Add(base)

	lbl, err := plotter.NewLabels(labels)
	if err != nil {
		return nil, err
	}
	for i := range lbl.TextStyle {
		lbl.TextStyle[i].XAlign = draw.XCenter
		lbl.TextStyle[i].Font.Size = 8
	}
	lbl.Offset = vg.Point{Y: vg.Points(2)}
	p.Add(lbl)

	if st.ShowLegend(true) {
		p.Legend.Add("Full System", base)
		p.Legend.Top = true
	}
	slantX(p, names...)
	p.Y.Min, p.Y.Max = 0, top
	return single(p, w, h), nil
}
