// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/paperbench/results"
)

func tableDoc() *results.Document {
	return &results.Document{
		SchemaVersion: results.SchemaVersion,
		Paper:         results.Paper{Method: results.Method{ID: results.OursID, Name: "Our Method", Short: "Ours"}},
		Baselines: []results.Method{
			{ID: "base", Name: "Base"},
			{ID: "other", Name: "Other Method", Short: "Oth"},
		},
		Datasets: []results.Dataset{{ID: "a", Name: "Set_A"}},
		Metrics: []results.Metric{
			{ID: "final_score", Name: "Final Score", Direction: results.HigherIsBetter},
			{ID: "violation", Name: "Violation", Direction: results.LowerIsBetter},
		},
	}
}

func mainExperiment(t *testing.T) *results.Experiment {
	t.Helper()
	exp, err := results.NewExperiment("main", results.KindMainTable, "Main results", "", &results.MainTable{
		Datasets: []string{"a", "b"},
		Metric:   "final_score",
		Methods:  []string{"ours", "base", "other"},
		Values: map[string]map[string][]float64{
			"a": {"ours": {0.9, 0.92}, "base": {0.8, 0.8}, "other": {0.85}},
			"b": {"ours": {0.5}, "base": {0.7}, "other": {0.7}},
		},
	})
	require.NoError(t, err)
	return exp
}

func buildMain(t *testing.T, st results.Style) *Table {
	t.Helper()
	doc := tableDoc()
	exp := mainExperiment(t)
	a := results.Asset{ID: "tab", Type: results.AssetTable, SourceExperiment: exp.ID, Style: st}
	tab, err := buildTable(doc, exp, resolveTableOptions(doc, a, exp))
	require.NoError(t, err)
	return tab
}

func TestMainTableLaTeX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatLaTeX(&buf, buildMain(t, results.Style{})))
	want := strings.Join([]string{
		`\begin{table}[t]`,
		`\centering`,
		`\small`,
		`\setlength{\tabcolsep}{6pt}`,
		`\begin{tabular}{lcc}`,
		`\toprule`,
		`Method & Set\_A & b \\`,
		`\midrule`,
		`Ours & \textbf{0.910 {\scriptsize $\pm$ 0.014}} & \underline{0.500} \\`,
		`Base & 0.800 & \textbf{0.700} \\`,
		`Oth & \underline{0.850} & 0.700 \\`,
		`\bottomrule`,
		`\end{tabular}`,
		`\caption{Main results. Metric: Final Score.}`,
		`\label{tab:main}`,
		`\end{table}`,
		``,
	}, "\n")
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("LaTeX mismatch (-want +got):\n%s", diff)
	}
}

func TestMainTableHighlightOff(t *testing.T) {
	tab := buildMain(t, results.Style{
		HighlightBest:   results.Bool(false),
		HighlightSecond: results.Bool(false),
		Caption:         "Custom.",
		Label:           "tab:custom",
	})
	for _, row := range tab.Rows {
		for _, c := range row {
			assert.Equal(t, Plain, c.Mark)
		}
	}
	assert.Equal(t, "Custom. Metric: Final Score.", tab.Caption)
	assert.Equal(t, "tab:custom", tab.Label)
}

func TestAssumedCaption(t *testing.T) {
	doc := tableDoc()
	doc.AssumedNotice = "placeholder"
	exp := mainExperiment(t)
	o := resolveTableOptions(doc, results.Asset{SourceExperiment: exp.ID}, exp)
	assert.Equal(t, "Main results (Assumed).", o.caption)
	assert.Equal(t, "tab:main", o.label)
}

func TestMainTableMissingValues(t *testing.T) {
	exp, err := results.NewExperiment("main", results.KindMainTable, "Main", "", &results.MainTable{
		Datasets: []string{"a"},
		Metric:   "final_score",
		Methods:  []string{"ours"},
		Values:   map[string]map[string][]float64{"a": {}},
	})
	require.NoError(t, err)
	_, err = buildTable(tableDoc(), exp, tableOptions{})
	assert.ErrorIs(t, err, results.ErrMissingField)
}

func TestMainTableHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatHTML(&buf, buildMain(t, results.Style{})))
	out := buf.String()
	assert.Contains(t, out, "<table class='paperbench'>")
	assert.Contains(t, out, "<caption>Main results. Metric: Final Score.</caption>")
	assert.Contains(t, out, "<th>Set_A")
	assert.Contains(t, out, "<b>0.910 ± 0.014</b>")
	assert.Contains(t, out, "<u>0.850</u>")
	assert.NotContains(t, out, `\scriptsize`)
}

func TestMainTableText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatText(&buf, buildMain(t, results.Style{})))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Main results. Metric: Final Score.\n\n"), "got %q", out)
	assert.Contains(t, out, "*0.910 ± 0.014*")
	assert.Contains(t, out, "_0.850_")
	assert.Contains(t, out, "Set_A")
}

func TestMultiMetricTableLowerIsBetter(t *testing.T) {
	exp, err := results.NewExperiment("mm", results.KindMultiMetricTable, "Metrics", "", &results.MultiMetricTable{
		Datasets: []string{"a"},
		Metrics:  []string{"final_score", "violation"},
		Methods:  []string{"ours", "base"},
		Values: map[string]map[string]map[string][]float64{
			"a": {
				"ours": {"final_score": {0.9}, "violation": {0.3}},
				"base": {"final_score": {0.7}, "violation": {0.1}},
			},
		},
	})
	require.NoError(t, err)
	tab, err := buildTable(tableDoc(), exp, tableOptions{best: true})
	require.NoError(t, err)
	assert.Equal(t, "8pt", tab.ColSep)
	assert.Equal(t, []string{"Method", "Final Score", "Violation"}, tab.Header)
	assert.Equal(t, Bold, tab.Rows[0][1].Mark)
	assert.Equal(t, Plain, tab.Rows[0][2].Mark)
	assert.Equal(t, Bold, tab.Rows[1][2].Mark)
}

func TestSARStatsTable(t *testing.T) {
	exp, err := results.NewExperiment("sar", results.KindSARStatsTable, "SAR", "", &results.SARStatsTable{
		Datasets: []string{"a", "b"},
		Metrics: map[string]map[string][]float64{
			"total_rules":     {"a": {10, 12}},
			"rule_usage_rate": {"a": {0.5, 0.7}, "b": {0.4, 0.4}},
		},
	})
	require.NoError(t, err)
	tab, err := buildTable(tableDoc(), exp, tableOptions{})
	require.NoError(t, err)
	require.Len(t, tab.Rows, 2)
	assert.Equal(t, []Cell{
		{Text: "Total rules extracted"},
		{Text: `11.0 {\scriptsize $\pm$ 1.4}`},
		{Text: "N/A"},
	}, tab.Rows[0])
	assert.Equal(t, `60 {\scriptsize $\pm$ 14}\%`, tab.Rows[1][1].Text)
	assert.Equal(t, `40 {\scriptsize $\pm$ 0}\%`, tab.Rows[1][2].Text)
}

func TestAblationTable(t *testing.T) {
	exp, err := results.NewExperiment("abl", results.KindAblationTable, "Ablation", "", &results.AblationTable{
		Dataset: "a",
		Metric:  "final_score",
		Variants: []results.AblationVariant{
			{ID: "full", Name: "Full system", Values: []float64{0.9, 0.9}},
			{ID: "no_sar", Name: "w/o SAR", Values: []float64{0.8, 0.82}},
		},
	})
	require.NoError(t, err)
	tab, err := buildTable(tableDoc(), exp, tableOptions{best: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"Variant", "Final Score"}, tab.Header)
	assert.Equal(t, Cell{Text: "0.900", Mark: Bold}, tab.Rows[0][1])
	assert.Equal(t, Plain, tab.Rows[1][1].Mark)
}

func TestUnsupportedTableKind(t *testing.T) {
	exp, err := results.NewExperiment("sys", results.KindSystemDiagram, "System", "", nil)
	require.NoError(t, err)
	_, err = buildTable(tableDoc(), exp, tableOptions{})
	assert.ErrorIs(t, err, ErrUnknownTable)
}
