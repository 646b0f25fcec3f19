// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package render turns a results document into publication assets.

A Renderer walks the document's assets in order. Table assets are
built into a Table model and written as LaTeX (booktabs), HTML, plain
text, and PNG. Figure assets are drawn with gonum/plot and written as
PDF, PNG, and SVG. Only the outputs named by an asset are written, and
Options.Formats can restrict them further.

Best and runner-up highlighting respects each metric's direction. The
runner-up is the first method, in ranked order, whose mean differs
from the best by more than 1e-12.
*/
package render
