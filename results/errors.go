// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package results

import "errors"

var (
	// ErrUnknownExperiment is returned when an experiment ID is
	// not present in a Document.
	ErrUnknownExperiment = errors.New("results: unknown experiment")

	// ErrKindMismatch is returned when an experiment's payload is
	// decoded as a type that does not match its kind.
	ErrKindMismatch = errors.New("results: payload does not match experiment kind")

	// ErrMissingField is returned when a required field is absent.
	ErrMissingField = errors.New("results: missing required field")
)
