// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assumed

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// A sampler draws every number of a document from one seeded source,
// so the draw order fixes the output.
type sampler struct {
	src rand.Source
}

func newSampler(seed int64) *sampler {
	return &sampler{src: rand.NewSource(uint64(seed))}
}

func (s *sampler) uniform(lo, hi float64) float64 {
	return distuv.Uniform{Min: lo, Max: hi, Src: s.src}.Rand()
}

func (s *sampler) gauss(mu, sigma float64) float64 {
	return distuv.Normal{Mu: mu, Sigma: sigma, Src: s.src}.Rand()
}

func (s *sampler) bernoulli(p float64) bool {
	return distuv.Bernoulli{P: p, Src: s.src}.Rand() == 1
}

// around returns center jittered by up to ±spread, rounded to 4 places.
func (s *sampler) around(center, spread float64) float64 {
	return round(center+s.uniform(-spread, spread), 4)
}

// seeds returns one around draw per seed.
func (s *sampler) seeds(center, spread float64) []float64 {
	vs := make([]float64, len(seeds))
	for i := range vs {
		vs[i] = s.around(center, spread)
	}
	return vs
}

func round(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(x*p) / p
}

func clamp01(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}
