// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"slices"
	"time"

	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"

	"golang.org/x/paperbench/pareto"
	"golang.org/x/paperbench/results"
)

// Output formats.
const (
	OutLaTeX = "latex"
	OutPNG   = "png"
	OutPDF   = "pdf"
	OutSVG   = "svg"
	OutHTML  = "html"
	OutText  = "txt"
)

// Options tune rendering.
type Options struct {
	// PNGDPI is the raster resolution.
	PNGDPI int
	// Formats limits the formats written. Empty means all.
	Formats []string
	// MaxFronts bounds rank peeling in the Pareto dashboard.
	MaxFronts int
	// Grid2D is the hypervolume grid size for 2-D fronts.
	Grid2D int
}

// DefaultOptions returns the options used for zero fields.
func DefaultOptions() Options {
	return Options{
		PNGDPI:    300,
		MaxFronts: pareto.DefaultMaxFronts,
		Grid2D:    pareto.GridSize(2),
	}
}

// A Renderer writes the assets of Doc under OutDir.
type Renderer struct {
	Doc     *results.Document
	OutDir  string
	Logger  *zap.Logger
	Metrics *Metrics
	Options Options

	written int
}

func (r *Renderer) logger() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}
	return r.Logger
}

func (r *Renderer) opts() Options {
	o, def := r.Options, DefaultOptions()
	if o.PNGDPI <= 0 {
		o.PNGDPI = def.PNGDPI
	}
	if o.MaxFronts <= 0 {
		o.MaxFronts = def.MaxFronts
	}
	if o.Grid2D < 2 {
		o.Grid2D = def.Grid2D
	}
	return o
}

// Render renders every asset in document order, stopping at the first
// error.
func (r *Renderer) Render() error {
	for _, a := range r.Doc.Assets {
		if err := r.RenderAsset(a); err != nil {
			return fmt.Errorf("render asset %s: %w", a.ID, err)
		}
	}
	r.logger().Info("render complete",
		zap.Int("assets", len(r.Doc.Assets)),
		zap.Int("files", r.written),
		zap.String("outdir", r.OutDir))
	return nil
}

// RenderAsset renders a single asset.
func (r *Renderer) RenderAsset(a results.Asset) (err error) {
	start := time.Now()
	before := r.written
	defer func() {
		r.Metrics.asset(a.Type, err, time.Since(start))
		if err == nil {
			r.logger().Debug("rendered asset",
				zap.String("id", a.ID),
				zap.String("type", a.Type),
				zap.Int("files", r.written-before),
				zap.Duration("elapsed", time.Since(start)))
		}
	}()

	exp, err := r.Doc.Experiment(a.SourceExperiment)
	if err != nil {
		return err
	}
	switch a.Type {
	case results.AssetTable:
		return r.renderTable(a, exp)
	case results.AssetFigure:
		return r.renderFigure(a, exp)
	}
	return fmt.Errorf("%w: %q", ErrUnknownAssetType, a.Type)
}

func (r *Renderer) renderTable(a results.Asset, exp *results.Experiment) error {
	t, err := buildTable(r.Doc, exp, resolveTableOptions(r.Doc, a, exp))
	if err != nil {
		return err
	}
	out := a.Output
	if err := r.write(OutLaTeX, out.LaTeX, func(w io.Writer) error { return FormatLaTeX(w, t) }); err != nil {
		return err
	}
	if err := r.write(OutHTML, out.HTML, func(w io.Writer) error { return FormatHTML(w, t) }); err != nil {
		return err
	}
	if err := r.write(OutText, out.Text, func(w io.Writer) error { return FormatText(w, t) }); err != nil {
		return err
	}
	if out.PNG != "" && r.wants(OutPNG) {
		return r.writeFigure(results.Output{PNG: out.PNG}, tableFigure(t))
	}
	return nil
}

func (r *Renderer) renderFigure(a results.Asset, exp *results.Experiment) error {
	build, ok := figures[a.Plot]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPlot, a.Plot)
	}
	fig, err := build(r, exp, a.Style)
	if err != nil {
		return err
	}
	return r.writeFigure(a.Output, fig)
}

type figureFunc func(r *Renderer, exp *results.Experiment, st results.Style) (*figure, error)

var figures map[string]figureFunc

func init() {
	figures = map[string]figureFunc{
		results.PlotGroupedBar:              groupedBar,
		results.PlotLine:                    linePlot,
		results.PlotScatter:                 scatterPlot,
		results.PlotSystemDiagram:           systemDiagram,
		results.PlotHeatmap:                 heatmapPlot,
		results.PlotStackedBar:              stackedBar,
		results.PlotConstraintDistributions: constraintDistributions,
		results.PlotParetoDashboard:         (*Renderer).paretoDashboard,
		results.PlotConvergenceCurves:       convergenceCurves,
		results.PlotSampleEfficiency:        sampleEfficiency,
		results.PlotStrategyEvolution:       strategyEvolution,
		results.PlotOptimizationDashboard:   optimizationDashboard,
		results.PlotAblationAnalysis:        ablationAnalysis,
		results.PlotSARRuleGraph:            sarRuleGraph,
	}
}

func (r *Renderer) wants(format string) bool {
	f := r.Options.Formats
	return len(f) == 0 || slices.Contains(f, format)
}

// write creates OutDir/rel and fills it with fn. Empty paths and
// unwanted formats are skipped.
func (r *Renderer) write(format, rel string, fn func(w io.Writer) error) error {
	if rel == "" || !r.wants(format) {
		return nil
	}
	path := filepath.Join(r.OutDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o777); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", rel, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	r.written++
	r.Metrics.file(format)
	return nil
}

// writeFigure draws fig once per requested format.
func (r *Renderer) writeFigure(out results.Output, fig *figure) error {
	do := func(format, rel string, can vg.CanvasWriterTo) error {
		return r.write(format, rel, func(w io.Writer) error {
			fig.draw(draw.New(can))
			_, err := can.WriteTo(w)
			return err
		})
	}
	if out.PDF != "" && r.wants(OutPDF) {
		if err := do(OutPDF, out.PDF, vgpdf.New(fig.width, fig.height)); err != nil {
			return err
		}
	}
	if out.PNG != "" && r.wants(OutPNG) {
		can := vgimg.PngCanvas{Canvas: vgimg.NewWith(
			vgimg.UseWH(fig.width, fig.height),
			vgimg.UseDPI(r.opts().PNGDPI),
			vgimg.UseBackgroundColor(color.White))}
		if err := do(OutPNG, out.PNG, can); err != nil {
			return err
		}
	}
	if out.SVG != "" && r.wants(OutSVG) {
		if err := do(OutSVG, out.SVG, vgsvg.New(fig.width, fig.height)); err != nil {
			return err
		}
	}
	return nil
}
