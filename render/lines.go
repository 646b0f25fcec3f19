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
	"gonum.org/v1/plot/vg/draw"

	"golang.org/x/paperbench/results"
)

// A curveStyle describes how one series is drawn.
type curveStyle struct {
	color  color.Color
	shape  draw.GlyphDrawer
	dashes []vg.Length
	label  string
}

// addCurve adds a series to p: a line with markers and, when stds is
// non-nil, a shaded band of one standard deviation. x and the values
// are truncated to the shorter of the two.
func addCurve(p *plot.Plot, x, means, stds []float64, cs curveStyle) error {
	n := min(len(x), len(means))
	if n == 0 {
		return nil
	}
	if stds != nil {
		n = min(n, len(stds))
		band := make(plotter.XYs, 0, 2*n)
		for i := 0; i < n; i++ {
			band = append(band, plotter.XY{X: x[i], Y: means[i] + stds[i]})
		}
		for i := n - 1; i >= 0; i-- {
			band = append(band, plotter.XY{X: x[i], Y: means[i] - stds[i]})
		}
		poly, err := plotter.NewPolygon(band)
		if err != nil {
			return err
		}
		poly.Color = withAlpha(cs.color, 0.18)
		poly.LineStyle.Width = 0
		p.Add(poly)
	}
	xys := make(plotter.XYs, n)
	for i := range xys {
		xys[i] = plotter.XY{X: x[i], Y: means[i]}
	}
	line, points, err := plotter.NewLinePoints(xys)
	if err != nil {
		return err
	}
	line.LineStyle.Color = cs.color
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Dashes = cs.dashes
	points.GlyphStyle.Color = cs.color
	points.GlyphStyle.Radius = vg.Points(2.5)
	if cs.shape != nil {
		points.GlyphStyle.Shape = cs.shape
	}
	p.Add(line, points)
	if cs.label != "" {
		p.Legend.Add(cs.label, line, points)
	}
	return nil
}

// xValues returns the coordinates of a, or 0..n-1 when a is empty.
func xValues(a results.Axis, n int) []float64 {
	if len(a.Values) > 0 {
		return a.Values
	}
	x := make([]float64, n)
	for i := range x {
		x[i] = float64(i)
	}
	return x
}

// seriesBands returns the means and deviations of y. Flat series have
// no deviations.
func seriesBands(y results.SeriesY, orientation string) (means, stds []float64, err error) {
	if !y.MultiSeed() {
		return y.Flat, nil, nil
	}
	return Bands(y.Seeds, orientation)
}

// curveLabels are the axis label and layout defaults of a curve
// figure.
type curveLabels struct {
	xlabel, ylabel, orientation string
}

// curveFigure draws every series of a Curve experiment on one axes.
func curveFigure(r *Renderer, exp *results.Experiment, st results.Style, defaults func(*results.Curve) curveLabels) (*figure, error) {
	var c results.Curve
	if err := exp.Decode(&c); err != nil {
		return nil, err
	}
	if len(c.Series) == 0 {
		return nil, fmt.Errorf("%w: experiment %s", ErrEmpty, exp.ID)
	}
	d := defaults(&c)
	orientation := d.orientation
	if st.YOrientation != "" {
		orientation = st.YOrientation
	}
	p := newPlot(st.TitleOr(exp.Title), st.XLabelOr(d.xlabel), st.YLabelOr(d.ylabel))
	legend := st.ShowLegend(true)
	for i, s := range c.Series {
		means, stds, err := seriesBands(s.Y, orientation)
		if err != nil {
			return nil, fmt.Errorf("series %s: %w", s.Method, err)
		}
		cs := curveStyle{
			color: seriesColor(i),
			shape: glyphShapes[i%len(glyphShapes)],
		}
		if legend {
			cs.label = r.Doc.MethodName(s.Method)
		}
		if err := addCurve(p, xValues(c.X, len(means)), means, stds, cs); err != nil {
			return nil, fmt.Errorf("series %s: %w", s.Method, err)
		}
	}
	p.Legend.Top = true
	return single(p, 6.4*vg.Inch, 3.8*vg.Inch), nil
}

func linePlot(r *Renderer, exp *results.Experiment, st results.Style) (*figure, error) {
	return curveFigure(r, exp, st, func(c *results.Curve) curveLabels {
		ylabel := ""
		if c.Metric != "" {
			ylabel = r.Doc.MetricName(c.Metric)
		}
		return curveLabels{xlabel: c.X.Name, ylabel: ylabel, orientation: SeedMajor}
	})
}

func convergenceCurves(r *Renderer, exp *results.Experiment, st results.Style) (*figure, error) {
	return curveFigure(r, exp, st, func(c *results.Curve) curveLabels {
		return curveLabels{xlabel: "Round", ylabel: r.Doc.MetricName(metricOr(c.Metric)), orientation: RoundMajor}
	})
}

func sampleEfficiency(r *Renderer, exp *results.Experiment, st results.Style) (*figure, error) {
	return curveFigure(r, exp, st, func(c *results.Curve) curveLabels {
		x := c.X.Name
		if x == "" {
			x = "Target Score"
		}
		return curveLabels{xlabel: x, ylabel: "Average Oracle Calls", orientation: RoundMajor}
	})
}

// metricOr returns id, or the composite score when id is empty.
func metricOr(id string) string {
	if id == "" {
		return "final_score"
	}
	return id
}

var (
	explorationColor = hexColor("#2B6CB0")
	validationColor  = hexColor("#2C7A7B")
)

// strategySeries returns a strategy series by name.
func strategySeries(s *results.StrategyEvolution, name string) (results.StrategySeries, error) {
	ss, ok := s.Lookup(name)
	if !ok {
		return ss, fmt.Errorf("%w: strategy series %s", results.ErrMissingField, name)
	}
	return ss, nil
}

func strategyEvolution(r *Renderer, exp *results.Experiment, st results.Style) (*figure, error) {
	var s results.StrategyEvolution
	if err := exp.Decode(&s); err != nil {
		return nil, err
	}
	expl, err := strategySeries(&s, results.ExplorationRatio)
	if err != nil {
		return nil, err
	}
	valid, err := strategySeries(&s, results.HypothesisValidationRate)
	if err != nil {
		return nil, err
	}

	a := newPlot("(A) Exploration Ratio vs Round", "Round", "Exploration Ratio")
	if err := addCurve(a, xValues(expl.X, len(expl.Y)), expl.Y, nil, curveStyle{color: explorationColor}); err != nil {
		return nil, err
	}
	b := newPlot("(B) Hypothesis Validation Rate", "Round", "Validation Rate")
	if err := addCurve(b, xValues(valid.X, len(valid.Y)), valid.Y, nil, curveStyle{color: validationColor, shape: draw.BoxGlyph{}}); err != nil {
		return nil, err
	}
	for _, p := range []*plot.Plot{a, b} {
		p.Y.Min, p.Y.Max = 0, 1
	}
	return panels(st.TitleOr(exp.Title), 9*vg.Inch, 3.4*vg.Inch, []*plot.Plot{a, b}), nil
}

func optimizationDashboard(r *Renderer, exp *results.Experiment, st results.Style) (*figure, error) {
	var d results.OptimizationDashboard
	if err := exp.Decode(&d); err != nil {
		return nil, err
	}
	conv := d.Convergence
	if len(conv.Series) == 0 {
		return nil, fmt.Errorf("%w: experiment %s", ErrEmpty, exp.ID)
	}
	orientation := st.YOrientation
	metric := metricOr(d.Metric)
	if d.Metric == "" {
		metric = metricOr(conv.Metric)
	}

	curves := newPlot("Convergence: Multi-round vs Single-pass Methods", "Round", r.Doc.MetricName(metric))
	var lo, hi float64 = math.Inf(1), math.Inf(-1)
	var flat []results.Series
	for _, s := range conv.Series {
		if s.Method != results.OursID {
			flat = append(flat, s)
			continue
		}
		means, stds, err := seriesBands(s.Y, orientation)
		if err != nil {
			return nil, fmt.Errorf("series %s: %w", s.Method, err)
		}
		x := xValues(conv.X, len(means))
		cs := curveStyle{color: explorationColor, label: r.Doc.MethodName(s.Method)}
		if err := addCurve(curves, x, means, stds, cs); err != nil {
			return nil, err
		}
		for _, v := range x[:min(len(x), len(means))] {
			lo, hi = min(lo, v), max(hi, v)
		}
	}
	if math.IsInf(lo, 0) {
		x := xValues(conv.X, 1)
		lo, hi = x[0], x[len(x)-1]
	}
	for i, s := range flat {
		level := seriesMean(s.Y)
		if math.IsNaN(level) {
			continue
		}
		l, err := plotter.NewLine(plotter.XYs{{X: lo, Y: level}, {X: hi, Y: level}})
		if err != nil {
			return nil, err
		}
		l.LineStyle.Color = seriesColor(i + 1)
		l.LineStyle.Width = vg.Points(1.2)
		l.LineStyle.Dashes = dashed
		curves.Add(l)
		curves.Legend.Add(r.Doc.MethodName(s.Method), l)
	}
	curves.X.Min, curves.X.Max = lo-0.2, hi+0.2
	curves.Legend.Top = true

	strat := newPlot("Strategy Evolution (Ours)", "Round", "Rate")
	for _, sv := range []struct {
		name, label string
		clr         color.Color
		shape       draw.GlyphDrawer
	}{
		{results.ExplorationRatio, "Exploration ratio", explorationColor, draw.CircleGlyph{}},
		{results.HypothesisValidationRate, "Hypothesis validation rate", validationColor, draw.BoxGlyph{}},
	} {
		ss, err := strategySeries(&d.Strategy, sv.name)
		if err != nil {
			return nil, err
		}
		cs := curveStyle{color: sv.clr, shape: sv.shape, label: sv.label}
		if err := addCurve(strat, xValues(ss.X, len(ss.Y)), ss.Y, nil, cs); err != nil {
			return nil, err
		}
	}
	strat.Y.Min, strat.Y.Max = 0, 1
	strat.Legend.Top = true

	return panels(st.TitleOr(exp.Title), 10*vg.Inch, 4*vg.Inch, []*plot.Plot{curves, strat}), nil
}

// seriesMean returns the mean of every value in y.
func seriesMean(y results.SeriesY) float64 {
	if !y.MultiSeed() {
		return meanOf(y.Flat)
	}
	var all []float64
	for _, row := range y.Seeds {
		all = append(all, row...)
	}
	return meanOf(all)
}

func meanOf(xs []float64) float64 {
	m, _ := meanStd(xs)
	return m
}
