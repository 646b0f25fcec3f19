// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"image/color"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A figure is a drawing of known size.
type figure struct {
	width, height vg.Length
	draw          func(c draw.Canvas)
}

// single returns a figure drawing p.
func single(p *plot.Plot, w, h vg.Length) *figure {
	return &figure{width: w, height: h, draw: p.Draw}
}

// panels returns a figure laying out plots on a grid under a title.
// Nil entries leave their tile empty.
func panels(title string, w, h vg.Length, rows ...[]*plot.Plot) *figure {
	return &figure{width: w, height: h, draw: func(c draw.Canvas) {
		fillBackground(c, color.White)
		c = drawTitle(c, title)
		tiles := draw.Tiles{
			Rows:      len(rows),
			Cols:      len(rows[0]),
			PadX:      vg.Millimeter * 6,
			PadY:      vg.Millimeter * 6,
			PadTop:    vg.Millimeter * 2,
			PadBottom: vg.Millimeter * 2,
			PadLeft:   vg.Millimeter * 2,
			PadRight:  vg.Millimeter * 2,
		}
		canvases := plot.Align(rows, tiles, c)
		for i, row := range rows {
			for j, p := range row {
				if p != nil {
					p.Draw(canvases[i][j])
				}
			}
		}
	}}
}

func fillBackground(c draw.Canvas, clr color.Color) {
	c.FillPolygon(clr, rect(c.Min, c.Max))
}

func rect(min, max vg.Point) []vg.Point {
	return []vg.Point{min, {X: max.X, Y: min.Y}, max, {X: min.X, Y: max.Y}}
}

// drawTitle writes title centered along the top of c and returns the
// rest of c.
func drawTitle(c draw.Canvas, title string) draw.Canvas {
	if title == "" {
		return c
	}
	sty := textStyle(13)
	sty.XAlign = draw.XCenter
	sty.YAlign = draw.YTop
	pad := vg.Millimeter * 2
	c.FillText(sty, vg.Point{X: (c.Min.X + c.Max.X) / 2, Y: c.Max.Y - pad}, title)
	return draw.Crop(c, 0, 0, 0, -(sty.Height(title) + 2*pad))
}

func textStyle(size vg.Length) draw.TextStyle {
	return draw.TextStyle{
		Color:   color.Black,
		Font:    font.From(plot.DefaultFont, size),
		Handler: plot.DefaultTextHandler,
	}
}

// newPlot returns a plot with the house style: labels set, a light
// dotted grid and the legend outside the data when shown.
func newPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = 12
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.X.Label.TextStyle.Font.Size = 10
	p.Y.Label.TextStyle.Font.Size = 10
	p.X.Tick.Label.Font.Size = 9
	p.Y.Tick.Label.Font.Size = 9
	p.Legend.TextStyle.Font.Size = 9

	g := plotter.NewGrid()
	g.Vertical.Color = gridColor
	g.Horizontal.Color = gridColor
	g.Vertical.Dashes = []vg.Length{vg.Points(1), vg.Points(2)}
	g.Horizontal.Dashes = []vg.Length{vg.Points(1), vg.Points(2)}
	g.Vertical.Width = vg.Points(0.5)
	g.Horizontal.Width = vg.Points(0.5)
	p.Add(g)
	return p
}

var gridColor = color.Gray{Y: 0xd0}

// A nominal axis with labels slanted as matplotlib's rotation=20.
func slantX(p *plot.Plot, names ...string) {
	p.NominalX(names...)
	p.X.Tick.Label.Rotation = -0.35
	p.X.Tick.Label.XAlign = draw.XLeft
	p.X.Tick.Label.YAlign = draw.YTop
}

// hexColor parses "#RRGGBB".
func hexColor(s string) color.Color {
	if len(s) != 7 || s[0] != '#' {
		panic(fmt.Sprintf("bad color %q", s))
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		panic(fmt.Sprintf("bad color %q", s))
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}

// withAlpha returns clr with opacity a in [0, 1].
func withAlpha(clr color.Color, a float64) color.Color {
	n := color.NRGBAModel.Convert(clr).(color.NRGBA)
	n.A = uint8(a*255 + 0.5)
	return n
}

// seriesColors is the colorblind-safe series palette.
var seriesColors = []color.Color{
	hexColor("#0173B2"),
	hexColor("#DE8F05"),
	hexColor("#029E73"),
	hexColor("#D55E00"),
	hexColor("#CC78BC"),
	hexColor("#CA9161"),
	hexColor("#FBAFE4"),
	hexColor("#949494"),
	hexColor("#ECE133"),
	hexColor("#56B4E9"),
}

func seriesColor(i int) color.Color {
	return seriesColors[i%len(seriesColors)]
}

var glyphShapes = []draw.GlyphDrawer{
	draw.CircleGlyph{},
	draw.BoxGlyph{},
	draw.TriangleGlyph{},
	draw.PyramidGlyph{},
	draw.RingGlyph{},
	draw.CrossGlyph{},
}

var dashPatterns = [][]vg.Length{
	nil,
	{vg.Points(6), vg.Points(3)},
	{vg.Points(6), vg.Points(2), vg.Points(1), vg.Points(2)},
	{vg.Points(1), vg.Points(2)},
}

var dashed = []vg.Length{vg.Points(6), vg.Points(3)}
