// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Paperbench generates placeholder benchmark results for a paper and
// renders them into LaTeX tables and figures.
//
// Usage:
//
//	paperbench generate [--seed n] [--out results.json]
//	paperbench render [--results results.json] [--outdir dir] [--format f]...
//	paperbench pareto [--results results.json] [--experiment id]
//
// Without --results, render and pareto work on the assumed document
// for the configured seed.
//
// Settings come from the YAML file named by --config, then from
// PAPERBENCH_* environment variables, then from flags.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"golang.org/x/paperbench/assumed"
	"golang.org/x/paperbench/internal/config"
	"golang.org/x/paperbench/results"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app is the state shared by the subcommands of one invocation.
type app struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := new(app)
	root := &cobra.Command{
		Use:   "paperbench",
		Short: "Generate and render paper benchmark results",
		Long: `paperbench produces a deterministic results document of assumed
benchmark numbers and renders it into LaTeX, HTML, and text tables
and PDF, PNG, and SVG figures.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger, err = newLogger(cfg.Logging, a.verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(a.generateCmd(), a.renderCmd(), a.paretoCmd())
	return root
}

// newLogger builds a JSON (production) or console (development) logger.
func newLogger(c config.LoggingConfig, verbose bool) (*zap.Logger, error) {
	var zc zap.Config
	if c.Format == "json" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}
	level := zapcore.InfoLevel
	if c.Level != "" {
		l, err := zapcore.ParseLevel(c.Level)
		if err != nil {
			return nil, err
		}
		level = l
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}

// loadDocument reads the results document at path, or builds the
// assumed document for the configured seed when path is empty.
func (a *app) loadDocument(path string) (*results.Document, error) {
	if path == "" {
		a.logger.Debug("using assumed results", zap.Int64("seed", a.cfg.Generator.Seed))
		return assumed.Build(a.cfg.Generator.Seed)
	}
	return results.Load(path)
}
