// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package results

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ErrDuplicateID is returned by Validate when two experiments or two
// assets share an ID.
var ErrDuplicateID = errors.New("results: duplicate id")

// Read decodes a Document from r and validates it.
func Read(r io.Reader) (*Document, error) {
	var d Document
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("decode results: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// Load reads the Document stored at path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	d, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Write encodes d to w as indented JSON followed by a newline.
func Write(w io.Writer, d *Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(d)
}

// Save writes d to path, creating parent directories.
func Save(path string, d *Document) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o777); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, d); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}

// Validate checks the structural invariants of d: a schema version,
// unique experiment and asset IDs, and asset references to existing
// experiments.
func (d *Document) Validate() error {
	if d.SchemaVersion == "" {
		return fmt.Errorf("%w: __schema_version__", ErrMissingField)
	}
	exps := make(map[string]bool, len(d.Experiments))
	for _, e := range d.Experiments {
		if e == nil {
			return fmt.Errorf("%w: experiment entry", ErrMissingField)
		}
		if exps[e.ID] {
			return fmt.Errorf("%w: experiment %s", ErrDuplicateID, e.ID)
		}
		exps[e.ID] = true
	}
	assets := make(map[string]bool, len(d.Assets))
	for _, a := range d.Assets {
		if a.ID == "" {
			return fmt.Errorf("%w: asset id", ErrMissingField)
		}
		if assets[a.ID] {
			return fmt.Errorf("%w: asset %s", ErrDuplicateID, a.ID)
		}
		assets[a.ID] = true
		if !exps[a.SourceExperiment] {
			return fmt.Errorf("asset %s: %w: %s", a.ID, ErrUnknownExperiment, a.SourceExperiment)
		}
	}
	return nil
}
