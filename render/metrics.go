// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts rendering work. A nil *Metrics records nothing.
type Metrics struct {
	reg *prometheus.Registry

	assets    *prometheus.CounterVec
	files     *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	truncated prometheus.Counter
}

// NewMetrics returns Metrics registered on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		assets: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "paperbench",
			Subsystem: "render",
			Name:      "assets_total",
			Help:      "Assets rendered, by asset type and outcome.",
		}, []string{"type", "status"}),
		files: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "paperbench",
			Subsystem: "render",
			Name:      "files_total",
			Help:      "Files written, by format.",
		}, []string{"format"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "paperbench",
			Subsystem: "render",
			Name:      "asset_duration_seconds",
			Help:      "Time to render one asset.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 12),
		}, []string{"type"}),
		truncated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "paperbench",
			Subsystem: "pareto",
			Name:      "truncated_peelings_total",
			Help:      "Rank peelings that hit the front limit.",
		}),
	}
	m.reg.MustRegister(m.assets, m.files, m.duration, m.truncated)
	return m
}

// Registry returns the registry holding m's collectors.
func (m *Metrics) Registry() *prometheus.Registry { return m.reg }

// WriteTextfile writes the current values in the Prometheus text
// format, for the node exporter's textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.reg)
}

func (m *Metrics) asset(typ string, err error, d time.Duration) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.assets.WithLabelValues(typ, status).Inc()
	m.duration.WithLabelValues(typ).Observe(d.Seconds())
}

func (m *Metrics) file(format string) {
	if m == nil {
		return
	}
	m.files.WithLabelValues(format).Inc()
}

func (m *Metrics) truncatedPeeling() {
	if m == nil {
		return
	}
	m.truncated.Inc()
}
