// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"golang.org/x/paperbench/assumed"
	"golang.org/x/paperbench/results"
)

func (a *app) generateCmd() *cobra.Command {
	var (
		seed int64
		out  string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the assumed results document",
		Long: `Builds the assumed results document for a seed and writes it as
JSON. The same seed always produces the same bytes. Use --out - to
write to standard output.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("seed") {
				seed = a.cfg.Generator.Seed
			}
			doc, err := assumed.Build(seed)
			if err != nil {
				return err
			}
			if out == "-" {
				return results.Write(cmd.OutOrStdout(), doc)
			}
			if err := results.Save(out, doc); err != nil {
				return err
			}
			a.logger.Info("generated results",
				zap.String("path", out),
				zap.Int64("seed", seed),
				zap.String("run_id", doc.Generator.RunID),
				zap.Int("experiments", len(doc.Experiments)),
				zap.Int("assets", len(doc.Assets)))
			return nil
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", assumed.DefaultSeed, "Random seed (default from config)")
	cmd.Flags().StringVarP(&out, "out", "o", "results.json", "Output path, or - for stdout")
	return cmd
}
