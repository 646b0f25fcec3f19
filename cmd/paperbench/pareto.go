// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"golang.org/x/paperbench/internal/config"
	"golang.org/x/paperbench/internal/texttab"
	"golang.org/x/paperbench/pareto"
	"golang.org/x/paperbench/render"
	"golang.org/x/paperbench/results"
)

const defaultParetoExperiment = "pareto_dashboard_scenario_b"

func (a *app) paretoCmd() *cobra.Command {
	var resultsPath, expID string
	cmd := &cobra.Command{
		Use:   "pareto",
		Short: "Summarize the Pareto ranks of a candidate cloud",
		Long: `Ranks the candidates of a pareto_dashboard experiment round by round
and prints, per method and round, the candidate count, the number of
candidates on the round's first front, the best rank, the mean score,
and the hypervolume of the method's candidates. The number of fronts
per round and a histogram of ranks follow.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.loadDocument(resultsPath)
			if err != nil {
				return err
			}
			exp, err := doc.Experiment(expID)
			if err != nil {
				return err
			}
			var d results.ParetoDashboard
			if err := exp.Decode(&d); err != nil {
				return err
			}
			s, err := summarizePareto(&d, a.cfg.Pareto)
			if err != nil {
				return fmt.Errorf("experiment %s: %w", exp.ID, err)
			}
			for _, round := range s.frame.Truncated {
				a.logger.Warn("pareto peeling truncated",
					zap.String("experiment", exp.ID),
					zap.Int("round", round),
					zap.Int("max_fronts", a.cfg.Pareto.MaxFronts))
			}
			return s.format(cmd.OutOrStdout(), exp.Title)
		},
	}
	cmd.Flags().StringVarP(&resultsPath, "results", "r", "", "Results document (default: assumed results)")
	cmd.Flags().StringVarP(&expID, "experiment", "e", defaultParetoExperiment, "pareto_dashboard experiment ID")
	return cmd
}

// gridFor returns the hypervolume grid size for d objectives.
func gridFor(c config.ParetoConfig, d int) int {
	switch d {
	case 2:
		return c.Grid2D
	case 3:
		return c.Grid3D
	}
	return pareto.GridSize(d)
}

type paretoSummary struct {
	frame    *render.RankFrame
	points   int
	rows     []render.RoundSummary
	hv       []float64 // per row
	fronts   map[int]int
	rankHist map[int]int
	maxRank  int
}

func summarizePareto(d *results.ParetoDashboard, c config.ParetoConfig) (*paretoSummary, error) {
	frame, err := render.NewRankFrame(d, c.MaxFronts)
	if err != nil {
		return nil, err
	}
	s := &paretoSummary{
		frame:    frame,
		points:   len(d.Points),
		rows:     frame.Summary(),
		fronts:   make(map[int]int),
		rankHist: make(map[int]int),
	}

	type key struct {
		method string
		round  int
	}
	groups := make(map[key][]pareto.Point)
	roundRanks := make(map[int][]int)
	ranks := frame.Ranks()
	for i, cand := range d.Points {
		p, err := cand.Point(d.Objectives)
		if err != nil {
			return nil, err
		}
		k := key{cand.Method, cand.Round}
		groups[k] = append(groups[k], p)
		roundRanks[cand.Round] = append(roundRanks[cand.Round], ranks[i])
		s.rankHist[ranks[i]]++
		s.maxRank = max(s.maxRank, ranks[i])
	}
	for round, rr := range roundRanks {
		s.fronts[round] = pareto.FrontCount(rr)
	}
	g := gridFor(c, len(d.Objectives))
	s.hv = make([]float64, len(s.rows))
	for i, row := range s.rows {
		hv, err := pareto.HypervolumeGrid(groups[key{row.Method, row.Round}], g)
		if err != nil {
			return nil, fmt.Errorf("method %s round %d: %w", row.Method, row.Round, err)
		}
		s.hv[i] = hv
	}
	return s, nil
}

func (s *paretoSummary) format(w io.Writer, title string) error {
	var tab texttab.Table
	tab.Row().Cell("method").Cell("round", texttab.Right).Cell("candidates", texttab.Right).
		Cell("front-0", texttab.Right).Cell("best rank", texttab.Right).
		Cell("mean score", texttab.Right).Cell("hypervolume", texttab.Right)
	tab.Rule('-')
	for i, row := range s.rows {
		tab.Row().Cell(row.Method).
			Cell(strconv.Itoa(row.Round), texttab.Right).
			Cell(strconv.Itoa(row.Count), texttab.Right).
			Cell(strconv.Itoa(row.Front0), texttab.Right).
			Cell(strconv.Itoa(row.BestRank), texttab.Right).
			Cell(fmt.Sprintf("%.4f", row.MeanScore), texttab.Right).
			Cell(fmt.Sprintf("%.4f", s.hv[i]), texttab.Right)
	}

	var rounds texttab.Table
	rounds.Row().Cell("round").Cell("fronts", texttab.Right).Cell("truncated", texttab.Right)
	rounds.Rule('-')
	truncated := make(map[int]bool)
	for _, r := range s.frame.Truncated {
		truncated[r] = true
	}
	for _, r := range s.frame.Rounds {
		rounds.Row().Cell(strconv.Itoa(r)).
			Cell(strconv.Itoa(s.fronts[r]), texttab.Right).
			Cell(strconv.FormatBool(truncated[r]), texttab.Right)
	}

	var hist texttab.Table
	hist.Row().Cell("rank").Cell("candidates", texttab.Right)
	hist.Rule('-')
	for r := 0; r <= s.maxRank; r++ {
		hist.Row().Cell(strconv.Itoa(r)).Cell(strconv.Itoa(s.rankHist[r]), texttab.Right)
	}

	if _, err := fmt.Fprintf(w, "%s: %d candidates, %d objectives\n\n", title, s.points, len(s.frame.Objectives)); err != nil {
		return err
	}
	for i, t := range []*texttab.Table{&tab, &rounds, &hist} {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if err := t.Format(w); err != nil {
			return err
		}
	}
	return nil
}
