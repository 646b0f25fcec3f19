// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"golang.org/x/paperbench/results"
)

// chargeBins are the total charges plotted against violation rate.
const chargeBins = 11

// intMean returns the mean of xs, NaN when empty.
func intMean(xs []int) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	sum := 0
	for _, x := range xs {
		sum += x
	}
	return float64(sum) / float64(len(xs))
}

// violationByCharge returns, for each total charge 0..chargeBins-1,
// the fraction of draws with that charge that violated a constraint.
// Charges with no draws are NaN.
func violationByCharge(s results.ConstraintSample) []float64 {
	n := min(len(s.TotalCharge), len(s.Violated))
	rates := make([]float64, chargeBins)
	for b := range rates {
		var hits []int
		for i := 0; i < n; i++ {
			if s.TotalCharge[i] == b {
				hits = append(hits, s.Violated[i])
			}
		}
		rates[b] = intMean(hits)
	}
	return rates
}

// rateBars plots one bar per method.
func rateBars(title string, clr color.Color, names []string, rates []float64) (*plot.Plot, error) {
	p := newPlot(title, "", "Fraction")
	bars, err := plotter.NewBarChart(plotter.Values(rates), vg.Points(18))
	if err != nil {
		return nil, err
	}
	bars.Color = withAlpha(clr, 0.85)
	bars.LineStyle.Color = color.White
	bars.LineStyle.Width = vg.Points(0.4)
	p.Add(bars)
	slantX(p, names...)
	p.Y.Min = 0
	return p, nil
}

func constraintDistributions(r *Renderer, exp *results.Experiment, st results.Style) (*figure, error) {
	var cd results.ConstraintDistributions
	if err := exp.Decode(&cd); err != nil {
		return nil, err
	}
	methods := cd.Methods
	if len(methods) == 0 {
		keys := make([]string, 0, len(cd.ByMethod))
		for m := range cd.ByMethod {
			keys = append(keys, m)
		}
		methods = r.Doc.OrderMethods(keys)
	}
	if len(methods) == 0 {
		return nil, fmt.Errorf("%w: experiment %s", ErrEmpty, exp.ID)
	}
	names := make([]string, len(methods))
	samples := make([]results.ConstraintSample, len(methods))
	for i, m := range methods {
		s, ok := cd.ByMethod[m]
		if !ok {
			return nil, fmt.Errorf("%w: constraint sample for %s", results.ErrMissingField, m)
		}
		names[i], samples[i] = r.Doc.MethodName(m), s
	}

	charge := newPlot("Total charge distribution", "", "Total charge")
	for i, s := range samples {
		if len(s.TotalCharge) == 0 {
			continue
		}
		vals := make(plotter.Values, len(s.TotalCharge))
		for j, v := range s.TotalCharge {
			vals[j] = float64(v)
		}
		box, err := plotter.NewBoxPlot(vg.Points(16), float64(i), vals)
		if err != nil {
			return nil, fmt.Errorf("method %s: %w", methods[i], err)
		}
		box.FillColor = withAlpha(seriesColor(i), 0.6)
		charge.Add(box)
	}
	slantX(charge, names...)

	aggRates := make([]float64, len(samples))
	violRates := make([]float64, len(samples))
	for i, s := range samples {
		aggRates[i] = zeroNaN(intMean(s.AggregationHigh))
		violRates[i] = zeroNaN(intMean(s.Violated))
	}
	agg, err := rateBars("Aggregation-high rate", hexColor("#C05621"), names, aggRates)
	if err != nil {
		return nil, err
	}
	viol, err := rateBars("Overall violation rate", hexColor("#C53030"), names, violRates)
	if err != nil {
		return nil, err
	}

	byCharge := newPlot("Violation rate vs total charge", "Total charge (binned)", "Violation rate")
	for i, s := range samples {
		rates := violationByCharge(s)
		cs := curveStyle{color: seriesColor(i), label: names[i]}
		for _, run := range finiteRuns(rates) {
			x := make([]float64, len(run.ys))
			for j := range x {
				x[j] = float64(run.start + j)
			}
			if err := addCurve(byCharge, x, run.ys, nil, cs); err != nil {
				return nil, err
			}
			cs.label = ""
		}
	}
	byCharge.Y.Min, byCharge.Y.Max = -0.02, 1.02
	byCharge.Legend.Top = true
	byCharge.Legend.TextStyle.Font.Size = 8

	return panels(st.TitleOr(exp.Title), 8.2*vg.Inch, 5.6*vg.Inch,
		[]*plot.Plot{charge, agg},
		[]*plot.Plot{viol, byCharge}), nil
}

func zeroNaN(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return v
}

// A run is a maximal stretch of finite values starting at index start.
type run struct {
	start int
	ys    []float64
}

// finiteRuns splits ys at NaNs, so lines break over missing values.
func finiteRuns(ys []float64) []run {
	var out []run
	for i := 0; i < len(ys); {
		if math.IsNaN(ys[i]) {
			i++
			continue
		}
		j := i
		for j < len(ys) && !math.IsNaN(ys[j]) {
			j++
		}
		out = append(out, run{start: i, ys: ys[i:j]})
		i = j
	}
	return out
}
