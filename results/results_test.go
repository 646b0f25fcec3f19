// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package results

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDoc(t *testing.T) *Document {
	t.Helper()
	mainExp, err := NewExperiment("main_results", KindMainTable, "Main results", "n", &MainTable{
		Datasets: []string{"a"},
		Metric:   "final_score",
		Methods:  []string{"ours", "base"},
		Values: map[string]map[string][]float64{
			"a": {"ours": {0.9, 0.91}, "base": {0.8, 0.81}},
		},
	})
	require.NoError(t, err)
	curve, err := NewExperiment("conv", KindConvergenceCurve, "Convergence", "", &Curve{
		Metric: "final_score",
		X:      Axis{Name: "Round", Values: []float64{1, 2}},
		Series: []Series{
			{Method: "ours", Y: SeriesY{Seeds: [][]float64{{1, 2}, {3, 4}}}},
			{Method: "base", Y: SeriesY{Flat: []float64{0.5, 0.6}}},
		},
	})
	require.NoError(t, err)
	diagram, err := NewExperiment("sys", KindSystemDiagram, "System", "", nil)
	require.NoError(t, err)
	return &Document{
		SchemaVersion: SchemaVersion,
		AssumedNotice: "assumed",
		Paper:         Paper{Method: Method{ID: OursID, Name: "Our method", Short: "Ours*"}},
		Baselines:     []Method{{ID: "base", Name: "Baseline method", Short: "Base"}, {ID: "noshort", Name: "No Short"}},
		Datasets:      []Dataset{{ID: "a", Name: "Scenario A"}},
		Metrics: []Metric{
			{ID: "final_score", Name: "Final Score", Direction: HigherIsBetter},
			{ID: "runtime", Name: "Runtime (s)", Direction: LowerIsBetter},
		},
		Assumptions: Assumptions{Seeds: []int{0, 1}, Protocol: map[string]string{"hardware": "1xGPU"}},
		Experiments: []*Experiment{mainExp, curve, diagram},
		Assets: []Asset{
			{ID: "tab", Type: AssetTable, SourceExperiment: "main_results", Output: Output{LaTeX: "t.tex"}},
			{ID: "fig", Type: AssetFigure, Plot: PlotConvergenceCurves, SourceExperiment: "conv", Output: Output{PNG: "c.png"}},
		},
	}
}

func TestRoundTrip(t *testing.T) {
	d := testDoc(t)
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, d))
	first := buf.String()

	d2, err := Read(&buf)
	require.NoError(t, err)

	var buf2 bytes.Buffer
	require.NoError(t, Write(&buf2, d2))
	if diff := cmp.Diff(first, buf2.String()); diff != "" {
		t.Errorf("re-encoded document differs (-first +second):\n%s", diff)
	}

	e, err := d2.Experiment("main_results")
	require.NoError(t, err)
	assert.Equal(t, "Main results", e.Title)
	assert.Equal(t, "n", e.Notes)
	var mt MainTable
	require.NoError(t, e.Decode(&mt))
	assert.Equal(t, []float64{0.8, 0.81}, mt.Values["a"]["base"])

	e, err = d2.Experiment("conv")
	require.NoError(t, err)
	var c Curve
	require.NoError(t, e.Decode(&c))
	require.Len(t, c.Series, 2)
	assert.True(t, c.Series[0].Y.MultiSeed())
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, c.Series[0].Y.Seeds)
	assert.False(t, c.Series[1].Y.MultiSeed())
	assert.Equal(t, []float64{0.5, 0.6}, c.Series[1].Y.Flat)

	e, err = d2.Experiment("sys")
	require.NoError(t, err)
	require.NoError(t, e.Decode(&SystemDiagram{}))
}

func TestSaveLoad(t *testing.T) {
	d := testDoc(t)
	path := filepath.Join(t.TempDir(), "sub", "results.json")
	require.NoError(t, Save(path, d))
	d2, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, d.Paper, d2.Paper)
	assert.Len(t, d2.Experiments, 3)
}

func TestKindMismatch(t *testing.T) {
	d := testDoc(t)
	e, err := d.Experiment("main_results")
	require.NoError(t, err)
	err = e.Decode(&Curve{})
	assert.True(t, errors.Is(err, ErrKindMismatch), "got %v", err)

	_, err = NewExperiment("x", KindHeatmapMatrix, "", "", &MainTable{})
	assert.True(t, errors.Is(err, ErrKindMismatch), "got %v", err)

	_, err = d.Experiment("missing")
	assert.True(t, errors.Is(err, ErrUnknownExperiment), "got %v", err)
}

func TestExperimentFlat(t *testing.T) {
	e, err := NewExperiment("h", KindHeatmapMatrix, "Heat", "", &HeatmapMatrix{
		Rows:   []string{"r"},
		Cols:   []string{"c"},
		Values: map[string]map[string]float64{"r": {"c": 0.5}},
	})
	require.NoError(t, err)
	b, err := json.Marshal(e)
	require.NoError(t, err)
	want := `{"cols":["c"],"id":"h","kind":"heatmap_matrix","rows":["r"],"title":"Heat","values":{"r":{"c":0.5}}}`
	assert.Equal(t, want, string(b))
}

func TestCandidateJSON(t *testing.T) {
	c := Candidate{Method: "ours", Round: 2, Objectives: map[string]float64{"potency_score": 0.5, "dev": 1}}
	b, err := json.Marshal(c)
	require.NoError(t, err)
	assert.Equal(t, `{"dev":1,"method":"ours","potency_score":0.5,"round":2}`, string(b))

	var got Candidate
	require.NoError(t, json.Unmarshal(b, &got))
	if diff := cmp.Diff(c, got); diff != "" {
		t.Errorf("candidate mismatch (-want +got):\n%s", diff)
	}

	p, err := got.Point([]string{"potency_score", "dev"})
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 1}, []float64(p))

	_, err = got.Point([]string{"missing"})
	assert.True(t, errors.Is(err, ErrMissingField))

	err = json.Unmarshal([]byte(`{"method":"ours","round":1,"potency_score":"high"}`), &got)
	assert.Error(t, err)
}

func TestLookups(t *testing.T) {
	d := testDoc(t)
	assert.Equal(t, "Ours*", d.MethodName(OursID))
	assert.Equal(t, "Base", d.MethodName("base"))
	assert.Equal(t, "No Short", d.MethodName("noshort"))
	assert.Equal(t, "unknown", d.MethodName("unknown"))
	assert.Equal(t, "Scenario A", d.DatasetName("a"))
	assert.Equal(t, "zz", d.DatasetName("zz"))
	assert.Equal(t, "Runtime (s)", d.MetricName("runtime"))
	assert.True(t, d.HigherIsBetter("final_score"))
	assert.False(t, d.HigherIsBetter("runtime"))
	assert.True(t, d.HigherIsBetter("unlisted"))
	assert.True(t, d.IsAssumed())

	d.Paper.Method.Short = ""
	assert.Equal(t, "Ours", d.MethodName(OursID))

	got := d.OrderMethods([]string{"zeta", "noshort", "alpha", "ours", "base"})
	assert.Equal(t, []string{"ours", "base", "noshort", "alpha", "zeta"}, got)
}

func TestValidate(t *testing.T) {
	d := testDoc(t)
	require.NoError(t, d.Validate())

	d.Assets = append(d.Assets, Asset{ID: "tab", SourceExperiment: "conv"})
	assert.True(t, errors.Is(d.Validate(), ErrDuplicateID))

	d = testDoc(t)
	d.Assets[0].SourceExperiment = "gone"
	assert.True(t, errors.Is(d.Validate(), ErrUnknownExperiment))

	d = testDoc(t)
	d.SchemaVersion = ""
	assert.True(t, errors.Is(d.Validate(), ErrMissingField))

	_, err := Read(bytes.NewReader([]byte(`{"__schema_version__":"1.1","experiments":[{"kind":"main_table"}]}`)))
	assert.True(t, errors.Is(err, ErrMissingField), "got %v", err)
}

func TestStyleDefaults(t *testing.T) {
	var s Style
	assert.True(t, s.Best())
	assert.True(t, s.Second())
	assert.True(t, s.ShowLegend(true))
	assert.False(t, s.ShowLegend(false))
	lo, hi := s.Quantiles()
	assert.Equal(t, 0.05, lo)
	assert.Equal(t, 0.95, hi)
	assert.Equal(t, "def", s.TitleOr("def"))

	s = Style{HighlightSecond: Bool(false), Legend: Bool(true), QLow: Float(0), Title: "T"}
	assert.False(t, s.Second())
	assert.True(t, s.ShowLegend(false))
	lo, _ = s.Quantiles()
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, "T", s.TitleOr("def"))
}

func TestDense(t *testing.T) {
	h := &HeatmapMatrix{
		Rows:   []string{"t1", "t2"},
		Cols:   []string{"m1", "m2"},
		Values: map[string]map[string]float64{"t1": {"m1": 1, "m2": 2}, "t2": {"m1": 3, "m2": 4}},
	}
	got, err := h.Dense()
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, got)

	delete(h.Values["t2"], "m2")
	_, err = h.Dense()
	assert.True(t, errors.Is(err, ErrMissingField))
}
