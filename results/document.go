// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package results

import (
	"fmt"
	"sort"
	"strings"
)

// SchemaVersion is the document schema version written by this
// package.
const SchemaVersion = "1.1"

// OursID is the method ID of the paper's own method.
const OursID = "ours"

// A Document is a complete results document.
type Document struct {
	SchemaVersion string `json:"__schema_version__"`

	// AssumedNotice is set for documents holding placeholder
	// numbers. Renderers mark default captions as assumed when it
	// is non-empty.
	AssumedNotice string `json:"__assumed_notice__,omitempty"`

	Generator   *Generator    `json:"generator,omitempty"`
	Paper       Paper         `json:"paper"`
	Baselines   []Method      `json:"baselines"`
	Datasets    []Dataset     `json:"datasets"`
	Metrics     []Metric      `json:"metrics"`
	Assumptions Assumptions   `json:"assumptions"`
	Experiments []*Experiment `json:"experiments"`
	Assets      []Asset       `json:"assets"`
}

// Generator records how a document was produced.
type Generator struct {
	Seed  int64  `json:"seed"`
	RunID string `json:"run_id"`
}

type Paper struct {
	TitleWorking string `json:"title_working"`
	PaperType    string `json:"paper_type"`
	Method       Method `json:"method"`
}

// A Method is a compared method. Short is used for display when set.
type Method struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Short  string `json:"short,omitempty"`
	Family string `json:"family,omitempty"`
}

type Dataset struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Task  string `json:"task,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// Metric directions.
const (
	HigherIsBetter = "higher_is_better"
	LowerIsBetter  = "lower_is_better"
)

type Metric struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Direction string `json:"direction"`
	Format    string `json:"format,omitempty"`
}

type Assumptions struct {
	Seeds    []int             `json:"seeds"`
	Protocol map[string]string `json:"protocol"`
}

// IsAssumed reports whether d holds placeholder numbers.
func (d *Document) IsAssumed() bool {
	return d.AssumedNotice != ""
}

// Experiment returns the experiment with the given ID.
func (d *Document) Experiment(id string) (*Experiment, error) {
	for _, e := range d.Experiments {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownExperiment, id)
}

// MethodName returns the display name of a method: the paper method's
// short name for OursID, a baseline's short name or name, or the ID
// itself if the method is unknown.
func (d *Document) MethodName(id string) string {
	if id == OursID {
		if d.Paper.Method.Short != "" {
			return d.Paper.Method.Short
		}
		return "Ours"
	}
	for _, b := range d.Baselines {
		if b.ID == id {
			switch {
			case b.Short != "":
				return b.Short
			case b.Name != "":
				return b.Name
			}
			return id
		}
	}
	return id
}

// DatasetName returns the display name of a dataset, or id.
func (d *Document) DatasetName(id string) string {
	for _, ds := range d.Datasets {
		if ds.ID == id && ds.Name != "" {
			return ds.Name
		}
	}
	return id
}

// MetricName returns the display name of a metric, or id.
func (d *Document) MetricName(id string) string {
	for _, m := range d.Metrics {
		if m.ID == id && m.Name != "" {
			return m.Name
		}
	}
	return id
}

// HigherIsBetter reports whether larger values of metric id are
// better. Unknown metrics and metrics without a direction are treated
// as higher-is-better.
func (d *Document) HigherIsBetter(id string) bool {
	for _, m := range d.Metrics {
		if m.ID == id {
			return strings.ToLower(m.Direction) != LowerIsBetter
		}
	}
	return true
}

// KnownMetric reports whether metric id is in the catalog.
func (d *Document) KnownMetric(id string) bool {
	for _, m := range d.Metrics {
		if m.ID == id {
			return true
		}
	}
	return false
}

// OrderMethods returns the keys of a per-method map in catalog order:
// the paper method, then baselines in declaration order, then any
// remaining IDs sorted.
func (d *Document) OrderMethods(ids []string) []string {
	have := make(map[string]bool, len(ids))
	for _, id := range ids {
		have[id] = true
	}
	var out []string
	take := func(id string) {
		if have[id] {
			out = append(out, id)
			delete(have, id)
		}
	}
	take(OursID)
	for _, b := range d.Baselines {
		take(b.ID)
	}
	var rest []string
	for id := range have {
		rest = append(rest, id)
	}
	sort.Strings(rest)
	return append(out, rest...)
}
