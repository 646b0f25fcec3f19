// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"golang.org/x/paperbench/results"
)

// A diagramBox is a labeled box in unit coordinates.
type diagramBox struct {
	title, body string
	x, y, w, h  float64
	fill, edge  color.Color
}

var systemBoxes = []diagramBox{
	{
		title: "Insight",
		body:  "Mine SAR rules\nHotspots / trends\nEvidence chains",
		x:     0.05, y: 0.55, w: 0.27, h: 0.35,
		fill: hexColor("#E8F1FF"), edge: hexColor("#2B6CB0"),
	},
	{
		title: "Design",
		body:  "Generate candidates\nConstraints + reflection\nPareto parent selection",
		x:     0.365, y: 0.55, w: 0.27, h: 0.35,
		fill: hexColor("#E6FFFA"), edge: hexColor("#2C7A7B"),
	},
	{
		title: "Evaluation",
		body:  "Unified oracle\nScore breakdown\nBudget accounting",
		x:     0.68, y: 0.55, w: 0.27, h: 0.35,
		fill: hexColor("#FFF5F5"), edge: hexColor("#C53030"),
	},
	{
		title: "Tools / Oracles",
		body:  "Tabular potency model • Boltz-2 structure • Energy scoring • Developability heuristics",
		x:     0.12, y: 0.08, w: 0.76, h: 0.33,
		fill: hexColor("#F7FAFC"), edge: hexColor("#4A5568"),
	},
}

// systemArrows are from/to pairs in unit coordinates.
var systemArrows = [][4]float64{
	{0.32, 0.725, 0.365, 0.725},
	{0.635, 0.725, 0.68, 0.725},
	{0.815, 0.55, 0.50, 0.43},
	{0.50, 0.43, 0.50, 0.55},
	{0.50, 0.55, 0.50, 0.41},
}

func systemDiagram(r *Renderer, exp *results.Experiment, st results.Style) (*figure, error) {
	var d results.SystemDiagram
	if err := exp.Decode(&d); err != nil {
		return nil, err
	}
	title := st.TitleOr(exp.Title)
	return &figure{width: 7.6 * vg.Inch, height: 3.6 * vg.Inch, draw: func(c draw.Canvas) {
		fillBackground(c, color.White)
		c = drawTitle(c, title)
		at := func(x, y float64) vg.Point {
			return vg.Point{
				X: c.Min.X + vg.Length(x)*(c.Max.X-c.Min.X),
				Y: c.Min.Y + vg.Length(y)*(c.Max.Y-c.Min.Y),
			}
		}
		edge := draw.LineStyle{Width: vg.Points(1.5)}
		for _, b := range systemBoxes {
			lo, hi := at(b.x, b.y), at(b.x+b.w, b.y+b.h)
			c.FillPolygon(b.fill, rect(lo, hi))
			edge.Color = b.edge
			pts := rect(lo, hi)
			c.StrokeLines(edge, append(pts, pts[0]))

			head := textStyle(11)
			head.Color = b.edge
			head.XAlign = draw.XCenter
			head.YAlign = draw.YTop
			mid := (lo.X + hi.X) / 2
			pad := vg.Millimeter * 2
			c.FillText(head, vg.Point{X: mid, Y: hi.Y - pad}, b.title)

			body := textStyle(9)
			body.XAlign = draw.XCenter
			body.YAlign = draw.YCenter
			c.FillText(body, vg.Point{X: mid, Y: (lo.Y + hi.Y - head.Height(b.title) - pad) / 2}, b.body)
		}
		arrow := draw.LineStyle{Color: color.Gray{Y: 0x40}, Width: vg.Points(1.2)}
		for _, a := range systemArrows {
			drawArrow(c, arrow, at(a[0], a[1]), at(a[2], a[3]))
		}
	}}, nil
}

// drawArrow strokes a line from p to q with a filled head at q.
func drawArrow(c draw.Canvas, sty draw.LineStyle, p, q vg.Point) {
	dx, dy := float64(q.X-p.X), float64(q.Y-p.Y)
	n := math.Hypot(dx, dy)
	if n == 0 {
		return
	}
	ux, uy := dx/n, dy/n
	size := float64(vg.Points(6))
	base := vg.Point{X: q.X - vg.Length(ux*size), Y: q.Y - vg.Length(uy*size)}
	c.StrokeLine2(sty, p.X, p.Y, base.X, base.Y)
	half := size / 2.5
	c.FillPolygon(sty.Color, []vg.Point{
		q,
		{X: base.X - vg.Length(uy*half), Y: base.Y + vg.Length(ux*half)},
		{X: base.X + vg.Length(uy*half), Y: base.Y - vg.Length(ux*half)},
	})
}
