// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import "errors"

var (
	ErrUnknownAssetType = errors.New("render: unknown asset type")
	ErrUnknownPlot      = errors.New("render: unknown plot")
	ErrUnknownTable     = errors.New("render: unsupported table kind")
	ErrOrientation      = errors.New("render: unknown y orientation")
	ErrNormalize        = errors.New("render: unknown heatmap normalization")
	ErrEmpty            = errors.New("render: no data")
)
