// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"golang.org/x/paperbench/assumed"
	"golang.org/x/paperbench/internal/config"
	"golang.org/x/paperbench/results"
)

// run executes the root command with args and returns its standard
// output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("PAPERBENCH_LOG_LEVEL", "error")
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestGenerateStdout(t *testing.T) {
	out, err := run(t, "generate", "--seed", "7", "--out", "-")
	require.NoError(t, err)
	doc, err := results.Read(strings.NewReader(out))
	require.NoError(t, err)
	require.NotNil(t, doc.Generator)
	assert.Equal(t, int64(7), doc.Generator.Seed)
	assert.True(t, doc.IsAssumed())
}

func TestGenerateDeterministic(t *testing.T) {
	dir := t.TempDir()
	a, b := filepath.Join(dir, "a.json"), filepath.Join(dir, "sub", "b.json")
	_, err := run(t, "generate", "-o", a)
	require.NoError(t, err)
	_, err = run(t, "generate", "-o", b)
	require.NoError(t, err)

	da, err := os.ReadFile(a)
	require.NoError(t, err)
	db, err := os.ReadFile(b)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(da, db), "same seed produced different files")
}

func TestGenerateSeedFromConfig(t *testing.T) {
	t.Setenv("PAPERBENCH_SEED", "9")
	out, err := run(t, "generate", "--out", "-")
	require.NoError(t, err)
	doc, err := results.Read(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, int64(9), doc.Generator.Seed)
}

func TestRenderTables(t *testing.T) {
	dir := t.TempDir()
	resultsPath := filepath.Join(dir, "results.json")
	_, err := run(t, "generate", "-o", resultsPath)
	require.NoError(t, err)

	prom := filepath.Join(dir, "render.prom")
	cfgPath := filepath.Join(dir, "paperbench.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("metrics:\n  textfile: "+prom+"\n"), 0o666))

	outDir := filepath.Join(dir, "paper")
	_, err = run(t, "render", "--config", cfgPath, "--results", resultsPath, "--outdir", outDir, "--format", "latex,txt")
	require.NoError(t, err)

	tex, err := os.ReadFile(filepath.Join(outDir, "assets", "tables", "tab_main_results.tex"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(tex), `\begin{table}[t]`))
	_, err = os.Stat(filepath.Join(outDir, "assets", "tables", "tab_main_results.txt"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(outDir, "assets", "tables", "tab_main_results.png"))
	assert.True(t, os.IsNotExist(err), "png written despite --format")

	metrics, err := os.ReadFile(prom)
	require.NoError(t, err)
	assert.Contains(t, string(metrics), `paperbench_render_files_total{format="latex"}`)
	assert.Contains(t, string(metrics), `paperbench_render_assets_total{status="ok",type="table"}`)
}

func TestRenderDefaultFormats(t *testing.T) {
	t.Setenv("PAPERBENCH_PNG_DPI", "30")
	outDir := t.TempDir()
	_, err := run(t, "render", "--outdir", outDir)
	require.NoError(t, err)

	doc, err := assumed.Build(assumed.DefaultSeed)
	require.NoError(t, err)
	for _, a := range doc.Assets {
		for _, rel := range []string{a.Output.LaTeX, a.Output.PNG, a.Output.PDF, a.Output.SVG, a.Output.HTML, a.Output.Text} {
			if rel == "" {
				continue
			}
			_, err := os.Stat(filepath.Join(outDir, filepath.FromSlash(rel)))
			assert.NoError(t, err, "asset %s", a.ID)
		}
	}
}

func TestRenderBadFormat(t *testing.T) {
	_, err := run(t, "render", "--outdir", t.TempDir(), "--format", "bmp")
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestRenderMissingResults(t *testing.T) {
	_, err := run(t, "render", "--results", filepath.Join(t.TempDir(), "none.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestPareto(t *testing.T) {
	out, err := run(t, "pareto")
	require.NoError(t, err)
	assert.Contains(t, out, "candidates, 3 objectives")
	assert.Contains(t, out, "hypervolume")
	assert.Contains(t, out, "truncated")
	lines := strings.Split(out, "\n")
	var ours int
	for _, l := range lines {
		if strings.HasPrefix(l, "ours ") {
			ours++
		}
	}
	assert.Equal(t, 6, ours, "want one row per round for ours:\n%s", out)
}

func TestParetoWrongKind(t *testing.T) {
	_, err := run(t, "pareto", "--experiment", "main_results")
	assert.ErrorIs(t, err, results.ErrKindMismatch)

	_, err = run(t, "pareto", "--experiment", "nope")
	assert.ErrorIs(t, err, results.ErrUnknownExperiment)
}

func TestSummarizePareto(t *testing.T) {
	cand := func(method string, round int, x, y float64) results.Candidate {
		return results.Candidate{Method: method, Round: round, Objectives: map[string]float64{"x": x, "y": y}}
	}
	d := &results.ParetoDashboard{
		Objectives: []string{"x", "y"},
		Points: []results.Candidate{
			cand("a", 1, 0.5, 0.4),
			cand("b", 1, 0.2, 0.2),
			cand("b", 1, 0.1, 0.1),
		},
	}
	s, err := summarizePareto(d, config.Default().Pareto)
	require.NoError(t, err)
	assert.Equal(t, map[int]int{1: 3}, s.fronts)
	assert.Equal(t, map[int]int{0: 1, 1: 1, 2: 1}, s.rankHist)
	require.Len(t, s.hv, 2)
	assert.InDelta(t, 0.2, s.hv[0], 1e-12)

	var buf bytes.Buffer
	require.NoError(t, s.format(&buf, "Cloud"))
	assert.True(t, strings.HasPrefix(buf.String(), "Cloud: 3 candidates, 2 objectives\n\n"))
}

func TestGridFor(t *testing.T) {
	c := config.ParetoConfig{Grid2D: 100, Grid3D: 26}
	assert.Equal(t, 100, gridFor(c, 2))
	assert.Equal(t, 26, gridFor(c, 3))
	assert.Greater(t, gridFor(c, 4), 1)
}

func TestNewLogger(t *testing.T) {
	_, err := newLogger(config.LoggingConfig{Level: "loud", Format: "json"}, false)
	assert.Error(t, err)

	l, err := newLogger(config.LoggingConfig{Level: "warn", Format: "console"}, true)
	require.NoError(t, err)
	assert.NotNil(t, l.Check(zapcore.DebugLevel, "debug"))
}
