// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"golang.org/x/paperbench/render"
)

func (a *app) renderCmd() *cobra.Command {
	var (
		resultsPath string
		outDir      string
		formats     []string
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the tables and figures of a results document",
		Long: `Renders every asset declared by a results document under the output
directory, at the paths the assets name. --format may be repeated to
limit the kinds of files written (latex, png, pdf, svg, html, txt).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.loadDocument(resultsPath)
			if err != nil {
				return err
			}
			if outDir == "" {
				outDir = a.cfg.Render.OutDir
			}
			if len(formats) > 0 {
				a.cfg.Render.Formats = formats
				if err := a.cfg.Validate(); err != nil {
					return err
				}
			}

			metrics := render.NewMetrics()
			r := &render.Renderer{
				Doc:     doc,
				OutDir:  outDir,
				Logger:  a.logger,
				Metrics: metrics,
				Options: render.Options{
					PNGDPI:    a.cfg.Render.PNGDPI,
					Formats:   a.cfg.Render.Formats,
					MaxFronts: a.cfg.Pareto.MaxFronts,
					Grid2D:    a.cfg.Pareto.Grid2D,
				},
			}
			renderErr := r.Render()
			if path := a.cfg.Metrics.Textfile; path != "" {
				if err := metrics.WriteTextfile(path); err != nil {
					a.logger.Error("writing metrics", zap.String("path", path), zap.Error(err))
				}
			}
			return renderErr
		},
	}
	cmd.Flags().StringVarP(&resultsPath, "results", "r", "", "Results document (default: assumed results)")
	cmd.Flags().StringVarP(&outDir, "outdir", "o", "", "Output root (default from config)")
	cmd.Flags().StringSliceVarP(&formats, "format", "f", nil, "Output kinds to write (default all)")
	return cmd
}
