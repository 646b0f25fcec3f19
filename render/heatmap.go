// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"golang.org/x/paperbench/results"
)

// heatGrid presents a matrix as unit cells with row 0 at the top.
type heatGrid struct {
	m *mat.Dense
}

func (g heatGrid) Dims() (c, r int) {
	r, c = g.m.Dims()
	return c, r
}

func (g heatGrid) Z(c, r int) float64 {
	rows, _ := g.m.Dims()
	return g.m.At(rows-1-r, c)
}

func (g heatGrid) X(c int) float64 { return float64(c) }
func (g heatGrid) Y(r int) float64 { return float64(r) }

// colorMap returns the color map named by a style. Names follow the
// usual plotting vocabulary; a "_r" suffix reverses the map. Unknown
// names use the default sequential map.
func colorMap(name string) palette.ColorMap {
	name = strings.ToLower(strings.TrimSpace(name))
	rev := strings.HasSuffix(name, "_r")
	name = strings.TrimSuffix(name, "_r")
	var cm palette.ColorMap
	switch name {
	case "magma", "inferno", "hot", "afmhot":
		cm = moreland.BlackBody()
	case "plasma", "cividis":
		cm = moreland.ExtendedBlackBody()
	case "coolwarm", "rdbu", "bwr", "seismic":
		cm = moreland.SmoothBlueRed()
	case "piyg", "prgn":
		cm = moreland.SmoothGreenPurple()
	case "puor":
		cm = moreland.SmoothPurpleOrange()
	case "rainbow", "turbo", "jet":
		cm = moreland.ExtendedKindlmann()
	default:
		cm = moreland.Kindlmann()
	}
	if rev {
		cm = palette.Reverse(cm)
	}
	return cm
}

// pyFormat converts a format such as ".2f" into a fmt verb.
func pyFormat(f string) string {
	if f == "" {
		f = ".2f"
	}
	if strings.HasPrefix(f, "%") {
		return f
	}
	return "%" + f
}

func heatmapPlot(r *Renderer, exp *results.Experiment, st results.Style) (*figure, error) {
	var hm results.HeatmapMatrix
	if err := exp.Decode(&hm); err != nil {
		return nil, err
	}
	values, err := hm.Dense()
	if err != nil {
		return nil, err
	}
	qlo, qhi := st.Quantiles()
	prep, err := PrepareHeatmap(values, HeatmapOptions{
		Normalize: st.Normalize,
		VMin:      st.VMin,
		VMax:      st.VMax,
		Robust:    st.Robust,
		QLow:      qlo,
		QHigh:     qhi,
	})
	if err != nil {
		return nil, fmt.Errorf("experiment %s: %w", exp.ID, err)
	}
	rows, cols := prep.Data.Dims()

	cm := colorMap(st.Cmap)
	cm.SetMin(prep.VMin)
	cm.SetMax(prep.VMax)
	pal := cm.Palette(255)
	colors := pal.Colors()

	grid := heatGrid{m: prep.Data}
	h := plotter.NewHeatMap(grid, pal)
	h.Min, h.Max = prep.VMin, prep.VMax
	h.Underflow = colors[0]
	h.Overflow = colors[len(colors)-1]
	h.NaN = color.Gray{Y: 0xe0}

	p := newPlot(st.TitleOr(exp.Title), st.XLabelOr("Method"), st.YLabelOr("Target"))
	p.Add(h)
	p.X.Padding, p.Y.Padding = 0, 0

	xticks := make(plot.ConstantTicks, cols)
	for j, c := range hm.Cols {
		xticks[j] = plot.Tick{Value: float64(j), Label: r.Doc.MethodName(c)}
	}
	p.X.Tick.Marker = xticks
	p.X.Tick.Label.Rotation = -0.35
	p.X.Tick.Label.XAlign = draw.XLeft
	p.X.Tick.Label.YAlign = draw.YTop
	yticks := make(plot.ConstantTicks, rows)
	for i, row := range hm.Rows {
		yticks[rows-1-i] = plot.Tick{Value: float64(rows - 1 - i), Label: row}
	}
	p.Y.Tick.Marker = yticks

	if st.Annot {
		verb := pyFormat(st.AnnotFmt)
		var labels plotter.XYLabels
		var light []bool
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				v := prep.Data.At(i, j)
				if math.IsNaN(v) {
					continue
				}
				labels.XYs = append(labels.XYs, plotter.XY{X: float64(j), Y: float64(rows - 1 - i)})
				labels.Labels = append(labels.Labels, fmt.Sprintf(verb, v))
				light = append(light, (v-prep.VMin)/(prep.VMax-prep.VMin) < 0.5)
			}
		}
		if len(labels.Labels) > 0 {
			lbl, err := plotter.NewLabels(labels)
			if err != nil {
				return nil, err
			}
			for i := range lbl.TextStyle {
				lbl.TextStyle[i].Font.Size = 7
				lbl.TextStyle[i].XAlign = draw.XCenter
				lbl.TextStyle[i].YAlign = draw.YCenter
				if light[i] {
					lbl.TextStyle[i].Color = color.White
				}
			}
			p.Add(lbl)
		}
	}

	w := vg.Length(max(5.8, 0.75*float64(cols))) * vg.Inch
	ht := vg.Length(max(2.6, 0.22*float64(rows))) * vg.Inch
	return withColorBar(p, cm, st.CbarLabel, w, ht), nil
}

// withColorBar returns a figure drawing p at size w by h with a
// vertical color bar for cm to its right.
func withColorBar(p *plot.Plot, cm palette.ColorMap, label string, w, h vg.Length) *figure {
	bar := plot.New()
	bar.HideX()
	bar.Y.Label.Text = label
	bar.Y.Label.TextStyle.Font.Size = 9
	bar.Y.Tick.Label.Font.Size = 8
	bar.Add(colorStrip{cm: cm, n: 128})
	bar.X.Padding, bar.Y.Padding = 0, 0

	barW := vg.Inch
	return &figure{width: w + barW, height: h, draw: func(c draw.Canvas) {
		fillBackground(c, color.White)
		p.Draw(draw.Crop(c, 0, -barW, 0, 0))
		top := -(p.Title.TextStyle.Height(p.Title.Text) + p.Title.Padding)
		c.Min.X = c.Max.X - barW
		bar.Draw(draw.Crop(c, vg.Millimeter*2, -vg.Millimeter*2, vg.Inch/2, top))
	}}
}

// colorStrip draws a vertical color bar for cm as n filled bands.
// plotter.ColorBar rasterizes to a 16-bit image, which PDF output
// cannot embed.
type colorStrip struct {
	cm palette.ColorMap
	n  int
}

func (s colorStrip) Plot(c draw.Canvas, p *plot.Plot) {
	trX, trY := p.Transforms(&c)
	lo, hi := s.cm.Min(), s.cm.Max()
	step := (hi - lo) / float64(s.n)
	x0, x1 := trX(0), trX(1)
	for i := 0; i < s.n; i++ {
		v0 := lo + float64(i)*step
		clr, err := s.cm.At(v0 + step/2)
		if err != nil {
			continue
		}
		// Bands overlap their successor to hide antialiasing seams.
		v1 := min(v0+2*step, hi)
		y0, y1 := trY(v0), trY(v1)
		c.FillPolygon(clr, c.ClipPolygonXY([]vg.Point{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}))
	}
}

func (s colorStrip) DataRange() (xmin, xmax, ymin, ymax float64) {
	return 0, 1, s.cm.Min(), s.cm.Max()
}
