// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/aclements/go-moremath/stats"
	"gonum.org/v1/gonum/mat"
)

// meanStd returns the mean and sample standard deviation of xs. A
// single value has deviation 0. An empty xs yields NaN for both.
func meanStd(xs []float64) (mean, std float64) {
	switch len(xs) {
	case 0:
		return math.NaN(), math.NaN()
	case 1:
		return xs[0], 0
	}
	return stats.Mean(xs), stats.StdDev(xs)
}

// Layouts of multi-seed series.
const (
	// RoundMajor matrices have one row per step, holding that
	// step's value for every seed.
	RoundMajor = "round_major"
	// SeedMajor matrices have one row per seed, holding that
	// seed's whole curve.
	SeedMajor = "seed_major"
)

// Bands returns the per-step mean and sample standard deviation of a
// multi-seed series y laid out as orientation. An empty orientation
// means RoundMajor. Seed-major rows of unequal length are truncated
// to the shortest.
func Bands(y [][]float64, orientation string) (means, stds []float64, err error) {
	if len(y) == 0 {
		return nil, nil, nil
	}
	var steps [][]float64
	switch o := strings.ToLower(strings.TrimSpace(orientation)); o {
	case "", RoundMajor:
		steps = y
	case SeedMajor:
		steps = transpose(y)
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrOrientation, orientation)
	}
	means = make([]float64, len(steps))
	stds = make([]float64, len(steps))
	for i, vals := range steps {
		means[i], stds[i] = meanStd(vals)
	}
	return means, stds, nil
}

func transpose(y [][]float64) [][]float64 {
	n := len(y[0])
	for _, row := range y[1:] {
		n = min(n, len(row))
	}
	out := make([][]float64, n)
	for t := range out {
		out[t] = make([]float64, len(y))
		for s, row := range y {
			out[t][s] = row[t]
		}
	}
	return out
}

// Heatmap normalizations.
const (
	NormalizeNone = "none"
	// NormalizeRowDeltaBest subtracts each row's maximum, so the
	// best cell of every row is 0 and the others are negative gaps.
	NormalizeRowDeltaBest = "row_delta_best"
)

// HeatmapOptions controls PrepareHeatmap.
type HeatmapOptions struct {
	Normalize string
	// VMin and VMax fix the color limits. Unset limits come from
	// the data.
	VMin, VMax *float64
	// Robust takes unset limits from the QLow and QHigh quantiles
	// of the finite values instead of their extremes.
	Robust      bool
	QLow, QHigh float64
}

// A Heatmap is a prepared matrix with its color limits. VMin is
// always strictly less than VMax.
type Heatmap struct {
	Data       *mat.Dense
	VMin, VMax float64
}

// PrepareHeatmap normalizes values (rows of equal length) and chooses
// color limits. A zero-width range is widened by 1e-6 relative to
// VMin, or absolutely when VMin is 0.
func PrepareHeatmap(values [][]float64, opts HeatmapOptions) (*Heatmap, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, fmt.Errorf("%w: empty heatmap", ErrEmpty)
	}
	r, c := len(values), len(values[0])
	data := mat.NewDense(r, c, nil)
	for i, row := range values {
		if len(row) != c {
			return nil, fmt.Errorf("heatmap row %d has %d cells, want %d", i, len(row), c)
		}
		data.SetRow(i, row)
	}

	vmin, vmax := opts.VMin, opts.VMax
	switch n := strings.ToLower(strings.TrimSpace(opts.Normalize)); n {
	case "", NormalizeNone:
	case NormalizeRowDeltaBest:
		for i := 0; i < r; i++ {
			best := math.Inf(-1)
			for j := 0; j < c; j++ {
				if v := data.At(i, j); v > best {
					best = v
				}
			}
			for j := 0; j < c; j++ {
				data.Set(i, j, data.At(i, j)-best)
			}
		}
		if vmax == nil {
			zero := 0.0
			vmax = &zero
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrNormalize, opts.Normalize)
	}

	var finite []float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v := data.At(i, j); !math.IsNaN(v) && !math.IsInf(v, 0) {
				finite = append(finite, v)
			}
		}
	}

	h := &Heatmap{Data: data, VMin: 0, VMax: 1}
	if len(finite) > 0 {
		var lo, hi float64
		if opts.Robust {
			s := stats.Sample{Xs: finite}
			s.Sort()
			lo, hi = s.Quantile(opts.QLow), s.Quantile(opts.QHigh)
		} else {
			lo, hi = stats.Bounds(finite)
		}
		h.VMin, h.VMax = lo, hi
		if vmin != nil {
			h.VMin = *vmin
		}
		if vmax != nil {
			h.VMax = *vmax
		}
	}
	if !(h.VMin < h.VMax) {
		eps := 1e-6
		if h.VMin != 0 {
			eps = math.Abs(h.VMin) * 1e-6
		}
		h.VMin, h.VMax = h.VMin-eps, h.VMax+eps
	}
	return h, nil
}
