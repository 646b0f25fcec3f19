// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package results defines the results document shared by the
// generator and the renderer.
//
// A Document carries the method, dataset, and metric catalogs, a list
// of Experiments, and a list of Assets. An Experiment is a tagged
// payload: its Kind selects one of the payload types in this package
// (MainTable, Curve, ParetoDashboard, ...). An Asset names a source
// experiment and the files a renderer should produce from it.
//
// The JSON encoding is stable: struct fields are written in a fixed
// order and maps are written with sorted keys, so encoding the same
// Document twice yields identical bytes.
package results
