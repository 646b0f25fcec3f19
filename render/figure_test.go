// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"bytes"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/recorder"
	"gonum.org/v1/plot/vg/vgpdf"

	"golang.org/x/paperbench/results"
)

func TestHexColor(t *testing.T) {
	assert.Equal(t, color.NRGBA{R: 0x2b, G: 0x6c, B: 0xb0, A: 0xff}, color.NRGBAModel.Convert(hexColor("#2B6CB0")))
}

func TestHeatGrid(t *testing.T) {
	g := heatGrid{m: mat.NewDense(2, 3, []float64{
		1, 2, 3,
		4, 5, 6,
	})}
	c, r := g.Dims()
	assert.Equal(t, 3, c)
	assert.Equal(t, 2, r)
	// Grid row 0 is the bottom, matrix row 0 the top.
	assert.Equal(t, 4.0, g.Z(0, 0))
	assert.Equal(t, 3.0, g.Z(2, 1))
}

func TestColorMap(t *testing.T) {
	for _, name := range []string{"", "viridis", "magma", "RdBu_r", "coolwarm"} {
		cm := colorMap(name)
		cm.SetMin(0)
		cm.SetMax(1)
		_, err := cm.At(0.5)
		assert.NoError(t, err, name)
	}

	fwd, rev := colorMap("magma"), colorMap("magma_r")
	for _, cm := range []palette.ColorMap{fwd, rev} {
		cm.SetMin(0)
		cm.SetMax(1)
	}
	lo, err := fwd.At(0)
	require.NoError(t, err)
	hi, err := rev.At(1)
	require.NoError(t, err)
	assert.Equal(t, lo, hi)
}

func TestPyFormat(t *testing.T) {
	assert.Equal(t, "%.2f", pyFormat(""))
	assert.Equal(t, "%.3f", pyFormat(".3f"))
	assert.Equal(t, "%d", pyFormat("%d"))
}

func TestViolationByCharge(t *testing.T) {
	rates := violationByCharge(results.ConstraintSample{
		TotalCharge: []int{0, 0, 2, 10, 12},
		Violated:    []int{1, 0, 1, 0, 1},
	})
	require.Len(t, rates, chargeBins)
	assert.Equal(t, 0.5, rates[0])
	assert.True(t, math.IsNaN(rates[1]))
	assert.Equal(t, 1.0, rates[2])
	assert.Equal(t, 0.0, rates[10])
}

func TestFiniteRuns(t *testing.T) {
	nan := math.NaN()
	runs := finiteRuns([]float64{1, nan, 2, 3, nan})
	require.Len(t, runs, 2)
	assert.Equal(t, run{start: 0, ys: []float64{1}}, runs[0])
	assert.Equal(t, run{start: 2, ys: []float64{2, 3}}, runs[1])

	assert.Empty(t, finiteRuns([]float64{nan, nan}))
	assert.Empty(t, finiteRuns(nil))
}

func TestIntMean(t *testing.T) {
	assert.True(t, math.IsNaN(intMean(nil)))
	assert.Equal(t, 0.25, intMean([]int{0, 1, 0, 0}))
	assert.Equal(t, 0.0, zeroNaN(math.NaN()))
}

func TestSeriesMean(t *testing.T) {
	assert.InDelta(t, 2.5, seriesMean(results.SeriesY{Seeds: [][]float64{{1, 2}, {3, 4}}}), 1e-12)
	assert.InDelta(t, 2.0, seriesMean(results.SeriesY{Flat: []float64{1, 3}}), 1e-12)
}

func TestColorStrip(t *testing.T) {
	cm := colorMap("viridis")
	cm.SetMin(-1)
	cm.SetMax(3)
	s := colorStrip{cm: cm, n: 8}

	xmin, xmax, ymin, ymax := s.DataRange()
	assert.Equal(t, []float64{0, 1, -1, 3}, []float64{xmin, xmax, ymin, ymax})

	p := plot.New()
	p.Add(s)
	rec := new(recorder.Canvas)
	s.Plot(draw.NewCanvas(rec, vg.Inch, 3*vg.Inch), p)
	var fills int
	for _, a := range rec.Actions {
		switch a.(type) {
		case *recorder.Fill:
			fills++
		case *recorder.DrawImage:
			t.Fatalf("color strip drew an image")
		}
	}
	assert.Equal(t, 8, fills)
}

func TestColorBarPDF(t *testing.T) {
	cm := colorMap("magma_r")
	cm.SetMin(0)
	cm.SetMax(1)
	fig := withColorBar(newPlot("t", "x", "y"), cm, "level", 4*vg.Inch, 3*vg.Inch)
	can := vgpdf.New(fig.width, fig.height)
	fig.draw(draw.New(can))
	var buf bytes.Buffer
	_, err := can.WriteTo(&buf)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}
