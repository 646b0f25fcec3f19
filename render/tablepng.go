// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image/color"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var bestFill = color.NRGBA{R: 0xdb, G: 0xe9, B: 0xfb, A: 0xff}

// tableFigure draws t as a booktabs-style grid: rules above and below
// the header and at the bottom. Best cells are shaded and runner-up
// cells underlined.
func tableFigure(t *Table) *figure {
	sty := textStyle(9)
	sty.XAlign = draw.XCenter
	sty.YAlign = draw.YCenter

	rows := make([][]string, 0, len(t.Rows)+1)
	var head []string
	for _, s := range t.Header {
		head = append(head, StripLaTeX(s))
	}
	rows = append(rows, head)
	for _, r := range t.Rows {
		var cells []string
		for _, c := range r {
			cells = append(cells, StripLaTeX(c.Text))
		}
		rows = append(rows, cells)
	}

	pad := vg.Points(8)
	margin := vg.Points(12)
	widths := make([]vg.Length, len(head))
	for _, r := range rows {
		for j, s := range r {
			if j < len(widths) {
				widths[j] = max(widths[j], sty.Width(s)+2*pad)
			}
		}
	}
	var tableW vg.Length
	for _, w := range widths {
		tableW += w
	}
	rowH := sty.Height("Mg") * 1.8
	width := max(tableW+2*margin, 6*vg.Inch)
	height := max(rowH*vg.Length(len(rows))+2*margin, 1.8*vg.Inch)

	return &figure{width: width, height: height, draw: func(c draw.Canvas) {
		fillBackground(c, color.White)
		left := (c.Min.X + c.Max.X - tableW) / 2
		top := (c.Min.Y+c.Max.Y)/2 + rowH*vg.Length(len(rows))/2
		rule := func(y vg.Length, w vg.Length) {
			c.StrokeLine2(draw.LineStyle{Color: color.Black, Width: w}, left, y, left+tableW, y)
		}
		for i, r := range rows {
			y0 := top - rowH*vg.Length(i)
			x := left
			for j, s := range r {
				if j >= len(widths) {
					break
				}
				mark := Plain
				if i > 0 {
					mark = t.Rows[i-1][j].Mark
				}
				cx, cy := x+widths[j]/2, y0-rowH/2
				if mark == Bold {
					c.FillPolygon(bestFill, rect(vg.Point{X: x, Y: y0 - rowH}, vg.Point{X: x + widths[j], Y: y0}))
				}
				c.FillText(sty, vg.Point{X: cx, Y: cy}, s)
				if mark == Underline {
					hw := sty.Width(s) / 2
					uy := cy - sty.Height(s)/2
					c.StrokeLine2(draw.LineStyle{Color: color.Black, Width: vg.Points(0.5)}, cx-hw, uy, cx+hw, uy)
				}
				x += widths[j]
			}
		}
		rule(top, vg.Points(1))
		rule(top-rowH, vg.Points(0.5))
		rule(top-rowH*vg.Length(len(rows)), vg.Points(1))
	}}
}
