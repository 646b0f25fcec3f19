// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	"golang.org/x/paperbench/assumed"
	"golang.org/x/paperbench/results"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func assumedDoc(t *testing.T) *results.Document {
	t.Helper()
	doc, err := assumed.Build(assumed.DefaultSeed)
	require.NoError(t, err)
	return doc
}

// outputs lists the files an asset would produce in formats.
func outputs(out results.Output, formats ...string) []string {
	var paths []string
	for _, f := range []struct{ format, path string }{
		{OutLaTeX, out.LaTeX},
		{OutPNG, out.PNG},
		{OutPDF, out.PDF},
		{OutSVG, out.SVG},
		{OutHTML, out.HTML},
		{OutText, out.Text},
	} {
		if f.path == "" {
			continue
		}
		for _, want := range formats {
			if f.format == want {
				paths = append(paths, f.path)
			}
		}
	}
	return paths
}

func TestRenderAssumed(t *testing.T) {
	if testing.Short() {
		t.Skip("renders every figure")
	}
	doc := assumedDoc(t)
	dir := t.TempDir()
	metrics := NewMetrics()
	r := &Renderer{
		Doc:     doc,
		OutDir:  dir,
		Logger:  zaptest.NewLogger(t),
		Metrics: metrics,
		Options: Options{PNGDPI: 30},
	}
	require.NoError(t, r.Render())

	all := []string{OutLaTeX, OutPNG, OutPDF, OutSVG, OutHTML, OutText}
	var want int
	for _, a := range doc.Assets {
		for _, rel := range outputs(a.Output, all...) {
			want++
			info, err := os.Stat(filepath.Join(dir, filepath.FromSlash(rel)))
			if assert.NoError(t, err, "asset %s", a.ID) {
				assert.NotZero(t, info.Size(), "%s is empty", rel)
			}
		}
	}
	assert.Equal(t, want, r.written)

	tex, err := os.ReadFile(filepath.Join(dir, "assets", "tables", "tab_main_results.tex"))
	require.NoError(t, err)
	assert.Contains(t, string(tex), `\textbf{`)
	assert.Contains(t, string(tex), "(Assumed)")

	figures := 0
	for _, a := range doc.Assets {
		if a.Type == results.AssetFigure {
			figures++
		}
	}
	assert.Equal(t, float64(figures), testutil.ToFloat64(metrics.assets.WithLabelValues(results.AssetFigure, "ok")))
	assert.Equal(t, float64(len(doc.Assets)-figures), testutil.ToFloat64(metrics.assets.WithLabelValues(results.AssetTable, "ok")))
	assert.Zero(t, testutil.ToFloat64(metrics.truncated))
}

func TestRenderFigureFormats(t *testing.T) {
	doc := assumedDoc(t)
	kinds := make(map[string]bool)
	for _, a := range doc.Assets {
		if a.Type != results.AssetFigure {
			continue
		}
		kinds[a.Plot] = true
		t.Run(a.ID, func(t *testing.T) {
			a.Output.SVG = "assets/figs/" + a.ID + ".svg"
			dir := t.TempDir()
			r := &Renderer{
				Doc:     doc,
				OutDir:  dir,
				Options: Options{PNGDPI: 30, Formats: []string{OutPDF, OutPNG, OutSVG}},
			}
			require.NoError(t, r.RenderAsset(a))
			assert.Equal(t, 3, r.written)
			for _, rel := range []string{a.Output.PDF, a.Output.PNG, a.Output.SVG} {
				info, err := os.Stat(filepath.Join(dir, filepath.FromSlash(rel)))
				if assert.NoError(t, err) {
					assert.NotZero(t, info.Size(), "%s is empty", rel)
				}
			}
		})
	}
	for plot := range figures {
		assert.True(t, kinds[plot], "no assumed asset draws %s", plot)
	}
}

func TestRenderFormats(t *testing.T) {
	doc := assumedDoc(t)
	dir := t.TempDir()
	metrics := NewMetrics()
	r := &Renderer{
		Doc:     doc,
		OutDir:  dir,
		Metrics: metrics,
		Options: Options{Formats: []string{OutLaTeX, OutText}},
	}
	var tables []results.Asset
	for _, a := range doc.Assets {
		if a.Type == results.AssetTable {
			tables = append(tables, a)
			require.NoError(t, r.RenderAsset(a))
		}
	}
	require.NotEmpty(t, tables)

	var files []string
	require.NoError(t, filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err == nil && !d.IsDir() {
			files = append(files, filepath.Ext(path))
		}
		return err
	}))
	for _, ext := range files {
		assert.Contains(t, []string{".tex", ".txt"}, ext)
	}
	var want int
	for _, a := range tables {
		want += len(outputs(a.Output, OutLaTeX, OutText))
	}
	assert.Len(t, files, want)
	assert.Equal(t, float64(len(tables)), testutil.ToFloat64(metrics.files.WithLabelValues(OutLaTeX)))
}

func TestRenderErrors(t *testing.T) {
	doc := assumedDoc(t)
	metrics := NewMetrics()
	r := &Renderer{Doc: doc, OutDir: t.TempDir(), Metrics: metrics}
	src := doc.Assets[0].SourceExperiment

	err := r.RenderAsset(results.Asset{ID: "x", Type: "movie", SourceExperiment: src})
	assert.ErrorIs(t, err, ErrUnknownAssetType)

	err = r.RenderAsset(results.Asset{ID: "x", Type: results.AssetFigure, Plot: "pie", SourceExperiment: src})
	assert.ErrorIs(t, err, ErrUnknownPlot)

	err = r.RenderAsset(results.Asset{ID: "x", Type: results.AssetTable, SourceExperiment: "nope"})
	assert.ErrorIs(t, err, results.ErrUnknownExperiment)

	// A figure plot fed an experiment of the wrong kind.
	err = r.RenderAsset(results.Asset{ID: "x", Type: results.AssetFigure, Plot: results.PlotHeatmap, SourceExperiment: src})
	assert.ErrorIs(t, err, results.ErrKindMismatch)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.assets.WithLabelValues("movie", "error")))
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.assets.WithLabelValues(results.AssetFigure, "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.assets.WithLabelValues(results.AssetTable, "error")))
	assert.Zero(t, r.written)
}

func TestRenderStopsAtFirstError(t *testing.T) {
	doc := assumedDoc(t)
	doc.Assets = append([]results.Asset{{ID: "bad", Type: results.AssetFigure, Plot: "pie", SourceExperiment: doc.Assets[0].SourceExperiment}}, doc.Assets...)
	r := &Renderer{Doc: doc, OutDir: t.TempDir()}
	err := r.Render()
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "render asset bad:"), err.Error())
	assert.Zero(t, r.written)
}

func TestMetricsTextfile(t *testing.T) {
	m := NewMetrics()
	m.file(OutSVG)
	m.truncatedPeeling()
	path := filepath.Join(t.TempDir(), "paperbench.prom")
	require.NoError(t, m.WriteTextfile(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `paperbench_render_files_total{format="svg"} 1`)
	assert.Contains(t, string(data), "paperbench_pareto_truncated_peelings_total 1")

	// A nil Metrics records nothing.
	var none *Metrics
	none.file(OutSVG)
	none.asset(results.AssetTable, nil, 0)
	none.truncatedPeeling()
}

func TestOptionDefaults(t *testing.T) {
	o := (&Renderer{Options: Options{PNGDPI: -1, Grid2D: 1}}).opts()
	assert.Equal(t, DefaultOptions(), o)

	o = (&Renderer{Options: Options{PNGDPI: 72, MaxFronts: 3, Grid2D: 11}}).opts()
	assert.Equal(t, 72, o.PNGDPI)
	assert.Equal(t, 3, o.MaxFronts)
	assert.Equal(t, 11, o.Grid2D)
}
