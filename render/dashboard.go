// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"image/color"
	"slices"
	"sort"

	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"golang.org/x/paperbench/pareto"
	"golang.org/x/paperbench/results"
)

// Objectives drawn on the 2-D dashboard panels, when present.
const (
	potencyObjective   = "potency_score"
	structureObjective = "structural_quality_score"
)

// methodLook is the fixed appearance of a known method.
type methodLook struct {
	color  color.Color
	shape  draw.GlyphDrawer
	dashes []vg.Length
}

var methodLooks = map[string]methodLook{
	"ours":     {hexColor("#2B6CB0"), draw.CircleGlyph{}, dashPatterns[0]},
	"nsga2":    {hexColor("#C05621"), draw.BoxGlyph{}, dashPatterns[1]},
	"rfd_mpnn": {hexColor("#38A169"), draw.TriangleGlyph{}, dashPatterns[2]},
	"pepmlm":   {hexColor("#805AD5"), draw.RingGlyph{}, dashPatterns[3]},
	"gpt4o":    {hexColor("#E53E3E"), draw.PyramidGlyph{}, dashPatterns[1]},
}

var defaultLook = methodLook{hexColor("#718096"), draw.CircleGlyph{}, dashPatterns[0]}

func lookOf(method string) methodLook {
	if l, ok := methodLooks[method]; ok {
		return l
	}
	return defaultLook
}

// dashboardAxes picks the two objectives plotted by the dashboard.
func dashboardAxes(objectives []string) (x, y int, err error) {
	x, y = slices.Index(objectives, potencyObjective), slices.Index(objectives, structureObjective)
	if x >= 0 && y >= 0 {
		return x, y, nil
	}
	if len(objectives) < 2 {
		return 0, 0, fmt.Errorf("%w: need two objectives, have %d", results.ErrMissingField, len(objectives))
	}
	return 0, 1, nil
}

// front2D returns the non-dominated subset of pts, sorted by x.
func front2D(pts [][2]float64) ([][2]float64, error) {
	mask, err := pareto.NonDominated2D(pts)
	if err != nil {
		return nil, err
	}
	var front [][2]float64
	for i, ok := range mask {
		if ok {
			front = append(front, pts[i])
		}
	}
	sort.Slice(front, func(i, j int) bool {
		if front[i][0] != front[j][0] {
			return front[i][0] < front[j][0]
		}
		return front[i][1] < front[j][1]
	})
	return front, nil
}

// hypervolume2D returns the grid hypervolume of a 2-D front.
func hypervolume2D(front [][2]float64, g int) (float64, error) {
	pts := make([]pareto.Point, len(front))
	for i, p := range front {
		pts[i] = pareto.Point{p[0], p[1]}
	}
	return pareto.HypervolumeGrid(pts, g)
}

func (r *Renderer) paretoDashboard(exp *results.Experiment, st results.Style) (*figure, error) {
	var d results.ParetoDashboard
	if err := exp.Decode(&d); err != nil {
		return nil, err
	}
	opts := r.opts()
	frame, err := NewRankFrame(&d, opts.MaxFronts)
	if err != nil {
		return nil, fmt.Errorf("experiment %s: %w", exp.ID, err)
	}
	for _, round := range frame.Truncated {
		r.logger().Warn("pareto peeling truncated",
			zap.String("experiment", exp.ID),
			zap.Int("round", round),
			zap.Int("max_fronts", opts.MaxFronts))
		r.Metrics.truncatedPeeling()
	}
	xi, yi, err := dashboardAxes(d.Objectives)
	if err != nil {
		return nil, err
	}

	var methods []string
	type key struct {
		method string
		round  int
	}
	all := make(map[string][][2]float64)
	perRound := make(map[key][][2]float64)
	ranks := frame.Ranks()
	lead := make(map[string]plotter.XYs)
	rest := make(map[string]plotter.XYs)
	for i, c := range d.Points {
		xy := [2]float64{c.Objectives[d.Objectives[xi]], c.Objectives[d.Objectives[yi]]}
		if _, ok := all[c.Method]; !ok {
			methods = append(methods, c.Method)
		}
		all[c.Method] = append(all[c.Method], xy)
		k := key{c.Method, c.Round}
		perRound[k] = append(perRound[k], xy)
		pt := plotter.XY{X: xy[0], Y: xy[1]}
		if ranks[i] == 0 {
			lead[c.Method] = append(lead[c.Method], pt)
		} else {
			rest[c.Method] = append(rest[c.Method], pt)
		}
	}
	sort.Strings(methods)

	cloud := newPlot("Candidate cloud", "Potency score", "Structural quality score")
	front := newPlot("Pareto front", "Potency score", "Structural quality score")
	hv := newPlot("Hypervolume vs round", "Round", "Hypervolume fraction")
	rounds := make([]float64, len(frame.Rounds))
	for i, rd := range frame.Rounds {
		rounds[i] = float64(rd)
	}

	for _, m := range methods {
		look := lookOf(m)
		name := r.Doc.MethodName(m)

		// Candidates on their round's front are drawn solid.
		var thumb plot.Thumbnailer
		for _, layer := range []struct {
			xys   plotter.XYs
			alpha float64
		}{{rest[m], 0.35}, {lead[m], 0.8}} {
			if len(layer.xys) == 0 {
				continue
			}
			sc, err := plotter.NewScatter(layer.xys)
			if err != nil {
				return nil, fmt.Errorf("method %s: %w", m, err)
			}
			sc.GlyphStyle.Color = withAlpha(look.color, layer.alpha)
			sc.GlyphStyle.Radius = vg.Points(2)
			sc.GlyphStyle.Shape = draw.CircleGlyph{}
			cloud.Add(sc)
			thumb = sc
		}
		if thumb != nil {
			cloud.Legend.Add(name, thumb)
		}

		f, err := front2D(all[m])
		if err != nil {
			return nil, fmt.Errorf("method %s: %w", m, err)
		}
		fx, fy := make([]float64, len(f)), make([]float64, len(f))
		for i, p := range f {
			fx[i], fy[i] = p[0], p[1]
		}
		cs := curveStyle{color: look.color, shape: look.shape, dashes: look.dashes, label: name + " (Front-0)"}
		if err := addCurve(front, fx, fy, nil, cs); err != nil {
			return nil, err
		}

		ys := make([]float64, len(frame.Rounds))
		for i, rd := range frame.Rounds {
			f, err := front2D(perRound[key{m, rd}])
			if err != nil {
				return nil, fmt.Errorf("method %s round %d: %w", m, rd, err)
			}
			if ys[i], err = hypervolume2D(f, opts.Grid2D); err != nil {
				return nil, fmt.Errorf("method %s round %d: %w", m, rd, err)
			}
		}
		cs.label = name
		if err := addCurve(hv, rounds, ys, nil, cs); err != nil {
			return nil, err
		}
	}
	for _, p := range []*plot.Plot{cloud, front} {
		p.X.Min, p.X.Max = 0, 1
		p.Y.Min, p.Y.Max = 0, 1
		p.Legend.Left = true
		p.Legend.TextStyle.Font.Size = 7
	}
	hv.Y.Min, hv.Y.Max = 0, 1
	hv.Legend.Left = true
	hv.Legend.TextStyle.Font.Size = 7

	return panels(st.TitleOr(exp.Title), 12*vg.Inch, 3.8*vg.Inch, []*plot.Plot{cloud, front, hv}), nil
}
