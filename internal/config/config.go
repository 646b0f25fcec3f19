// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads paperbench settings from YAML with
// PAPERBENCH_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned by Validate for out-of-range settings.
var ErrInvalid = errors.New("config: invalid setting")

type Config struct {
	Generator GeneratorConfig `yaml:"generator"`
	Render    RenderConfig    `yaml:"render"`
	Pareto    ParetoConfig    `yaml:"pareto"`
	Logging   LoggingConfig   `yaml:"logging"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

type GeneratorConfig struct {
	Seed int64 `yaml:"seed"`
}

type RenderConfig struct {
	OutDir string `yaml:"outdir"`
	PNGDPI int    `yaml:"png_dpi"`
	// Formats restricts the output kinds written (latex, png, pdf,
	// svg, html, txt). Empty means all.
	Formats []string `yaml:"formats"`
}

type ParetoConfig struct {
	MaxFronts int `yaml:"max_fronts"`
	Grid2D    int `yaml:"grid_2d"`
	Grid3D    int `yaml:"grid_3d"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type MetricsConfig struct {
	// Textfile is where render metrics are written in the
	// Prometheus text format. Empty disables them.
	Textfile string `yaml:"textfile"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Generator: GeneratorConfig{Seed: 42},
		Render: RenderConfig{
			OutDir: "paper",
			PNGDPI: 300,
		},
		Pareto: ParetoConfig{
			MaxFronts: 50,
			Grid2D:    100,
			Grid3D:    26,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load returns the defaults overlaid with the YAML file at path (if
// path is not empty) and then with the environment.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}
	applyEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PAPERBENCH_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Generator.Seed = n
		}
	}
	if v := os.Getenv("PAPERBENCH_OUTDIR"); v != "" {
		cfg.Render.OutDir = v
	}
	if v := os.Getenv("PAPERBENCH_PNG_DPI"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Render.PNGDPI = n
		}
	}
	if v := os.Getenv("PAPERBENCH_FORMATS"); v != "" {
		cfg.Render.Formats = nil
		for _, f := range strings.Split(v, ",") {
			if f = strings.TrimSpace(f); f != "" {
				cfg.Render.Formats = append(cfg.Render.Formats, strings.ToLower(f))
			}
		}
	}
	if v := os.Getenv("PAPERBENCH_MAX_FRONTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Pareto.MaxFronts = n
		}
	}
	if v := os.Getenv("PAPERBENCH_GRID_2D"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Pareto.Grid2D = n
		}
	}
	if v := os.Getenv("PAPERBENCH_GRID_3D"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Pareto.Grid3D = n
		}
	}
	if v := os.Getenv("PAPERBENCH_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("PAPERBENCH_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("PAPERBENCH_METRICS_TEXTFILE"); v != "" {
		cfg.Metrics.Textfile = v
	}
}

var formats = []string{"latex", "png", "pdf", "svg", "html", "txt"}

// Validate reports the first out-of-range setting.
func (c *Config) Validate() error {
	switch {
	case c.Render.PNGDPI <= 0:
		return fmt.Errorf("%w: render.png_dpi %d", ErrInvalid, c.Render.PNGDPI)
	case c.Pareto.MaxFronts < 1:
		return fmt.Errorf("%w: pareto.max_fronts %d", ErrInvalid, c.Pareto.MaxFronts)
	case c.Pareto.Grid2D < 2:
		return fmt.Errorf("%w: pareto.grid_2d %d", ErrInvalid, c.Pareto.Grid2D)
	case c.Pareto.Grid3D < 2:
		return fmt.Errorf("%w: pareto.grid_3d %d", ErrInvalid, c.Pareto.Grid3D)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("%w: logging.format %q", ErrInvalid, c.Logging.Format)
	}
	for _, f := range c.Render.Formats {
		ok := false
		for _, known := range formats {
			if f == known {
				ok = true
			}
		}
		if !ok {
			return fmt.Errorf("%w: render.formats entry %q", ErrInvalid, f)
		}
	}
	return nil
}

// Wants reports whether output kind f is enabled.
func (c *RenderConfig) Wants(f string) bool {
	if len(c.Formats) == 0 {
		return true
	}
	for _, x := range c.Formats {
		if x == f {
			return true
		}
	}
	return false
}
