// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"golang.org/x/paperbench/results"
)

func scatterPlot(r *Renderer, exp *results.Experiment, st results.Style) (*figure, error) {
	var s results.EfficiencyScatter
	if err := exp.Decode(&s); err != nil {
		return nil, err
	}
	if len(s.Points) == 0 {
		return nil, fmt.Errorf("%w: experiment %s", ErrEmpty, exp.ID)
	}
	doc := r.Doc
	p := newPlot(st.TitleOr(exp.Title), st.XLabelOr(doc.MetricName(s.XMetric)), st.YLabelOr(doc.MetricName(s.YMetric)))
	legend := st.ShowLegend(false)

	labels := plotter.XYLabels{XYs: make(plotter.XYs, len(s.Points)), Labels: make([]string, len(s.Points))}
	for i, pt := range s.Points {
		xy := plotter.XY{X: pt.X, Y: pt.Y}
		sc, err := plotter.NewScatter(plotter.XYs{xy})
		if err != nil {
			return nil, fmt.Errorf("point %s: %w", pt.Method, err)
		}
		sc.GlyphStyle.Color = seriesColor(i)
		sc.GlyphStyle.Radius = vg.Points(4)
		sc.GlyphStyle.Shape = glyphShapes[0]
		p.Add(sc)
		if legend {
			p.Legend.Add(doc.MethodName(pt.Method), sc)
		}
		labels.XYs[i] = xy
		labels.Labels[i] = doc.MethodName(pt.Method)
	}
	lbl, err := plotter.NewLabels(labels)
	if err != nil {
		return nil, err
	}
	for i := range lbl.TextStyle {
		lbl.TextStyle[i].Font.Size = 8
	}
	lbl.Offset = vg.Point{X: vg.Points(5), Y: vg.Points(3)}
	p.Add(lbl)
	p.Legend.Top = true
	return single(p, 6*vg.Inch, 4*vg.Inch), nil
}
