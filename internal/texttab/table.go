// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package texttab lays out column-aligned plain-text tables.
package texttab

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode/utf8"
)

// Table does layout of text-based tables.
//
// Many of its methods return the Table so callers can chain them to
// build up a row at once.
type Table struct {
	cells []cell
	rules map[int]rune // row -> rule character
	cols  int

	shrink []bool

	curRow, curCol int
	started        bool
}

type cell struct {
	row, col, span int
	value          string
	leftMargin     string
	alignment      align
}

type CellOption func(c *cell)

// LeftMargin sets the text printed before a cell.
func LeftMargin(x string) CellOption {
	return func(c *cell) {
		c.leftMargin = x
	}
}

var (
	Left   CellOption = func(c *cell) { c.alignment = alignLeft }
	Center CellOption = func(c *cell) { c.alignment = alignCenter }
	Right  CellOption = func(c *cell) { c.alignment = alignRight }
)

type align int

const (
	alignLeft align = iota
	alignCenter
	alignRight
)

func (a align) lpad(s string, w int) string {
	switch a {
	default:
		return s
	case alignCenter:
		l := (w - utf8.RuneCountInString(s)) / 2
		return fmt.Sprintf("%*s%s", l, "", s)
	case alignRight:
		return fmt.Sprintf("%*s", w, s)
	}
}

// Row starts a new row in table t.
func (t *Table) Row() *Table {
	if t.started {
		t.curRow++
	}
	t.started = true
	t.curCol = 0
	return t
}

// Rule adds a row drawn as ch repeated across the full table width.
func (t *Table) Rule(ch rune) *Table {
	t.Row()
	if t.rules == nil {
		t.rules = make(map[int]rune)
	}
	t.rules[t.curRow] = ch
	return t
}

// Col skips to column col in table t. Columns are numbered from 0.
func (t *Table) Col(col int) *Table {
	if col < t.curCol {
		panic(fmt.Sprintf("cannot move from column %d to earlier column %d", t.curCol, col))
	}
	t.curCol = col
	return t
}

// Cell adds a single-column cell at the current row and column.
func (t *Table) Cell(value string, opts ...CellOption) *Table {
	return t.Span(1, value, opts...)
}

// Span adds a multi-column cell at the current row and column.
func (t *Table) Span(cols int, value string, opts ...CellOption) *Table {
	if _, ok := t.rules[t.curRow]; ok || !t.started {
		t.Row()
	}
	lMargin := " "
	if t.curCol == 0 || len(value) == 0 {
		// The left-most column and empty cells get no margin.
		lMargin = ""
	}
	c := cell{t.curRow, t.curCol, cols, value, lMargin, alignLeft}
	for _, o := range opts {
		o(&c)
	}
	t.cells = append(t.cells, c)

	t.curCol += cols
	t.cols = max(t.cols, t.curCol)
	return t
}

// SetShrink marks a column as a "shrink" column, which will have
// minimum width.
func (t *Table) SetShrink(col int, shrink bool) {
	for len(t.shrink) < col+1 {
		t.shrink = append(t.shrink, false)
	}
	t.shrink[col] = shrink
}

func (t *Table) isShrink(col int) bool {
	return col < len(t.shrink) && t.shrink[col]
}

// widths returns the left margin and total width of every column.
func (t *Table) widths() (lmargin, ws []int) {
	lmargin = make([]int, t.cols)
	for _, c := range t.cells {
		lmargin[c.col] = max(utf8.RuneCountInString(c.leftMargin), lmargin[c.col])
	}

	// Narrow spans first, so wide spans only grow columns that
	// are still too small.
	cells := slices.Clone(t.cells)
	slices.SortStableFunc(cells, func(a, b cell) int { return cmp.Compare(a.span, b.span) })

	ws = make([]int, t.cols)
	var spanCols []int
	for _, c := range cells {
		w := utf8.RuneCountInString(c.value) + lmargin[c.col]
		if c.span == 1 {
			ws[c.col] = max(ws[c.col], w)
			continue
		}
		tw := 0
		for col := c.col; col < c.col+c.span; col++ {
			tw += ws[col]
		}
		if tw >= w {
			continue
		}
		// Grow the non-shrink columns toward the average
		// needed width, widest first, so columns already
		// above the average donate their excess.
		spanCols = spanCols[:0]
		for col := c.col; col < c.col+c.span; col++ {
			if t.isShrink(col) {
				w -= ws[col]
			} else {
				spanCols = append(spanCols, col)
			}
		}
		slices.SortStableFunc(spanCols, func(a, b int) int { return cmp.Compare(ws[b], ws[a]) })
		span := len(spanCols)
		for _, col := range spanCols {
			avg := (w + span - 1) / span
			ws[col] = max(ws[col], avg)
			w -= ws[col]
			span--
		}
	}
	return lmargin, ws
}

// Format lays out table t and writes it to w.
func (t *Table) Format(w io.Writer) error {
	lmargin, ws := t.widths()

	// offs[i] is where column i's left margin begins; the final
	// entry is the table width.
	offs := make([]int, t.cols+1)
	for i, cw := range ws {
		offs[i+1] = offs[i] + cw
	}

	cells := slices.Clone(t.cells)
	slices.SortStableFunc(cells, func(a, b cell) int {
		if c := cmp.Compare(a.row, b.row); c != 0 {
			return c
		}
		return cmp.Compare(a.col, b.col)
	})

	last := -1
	for r := range t.rules {
		last = max(last, r)
	}

	var buf strings.Builder
	row, off := 0, 0
	advance := func(to int) {
		for ; row < to; row++ {
			if ch, ok := t.rules[row]; ok {
				buf.WriteString(strings.Repeat(string(ch), offs[t.cols]))
			}
			buf.WriteByte('\n')
			off = 0
		}
	}
	for _, c := range cells {
		if strings.TrimSpace(c.value) == "" && strings.TrimSpace(c.leftMargin) == "" {
			// Skip empty cells so rows carry no trailing
			// spaces.
			continue
		}
		advance(c.row)
		last = max(last, c.row)

		spaces := offs[c.col] - off
		fmt.Fprintf(&buf, "%*s%*s", spaces, "", lmargin[c.col], c.leftMargin)
		off += spaces + lmargin[c.col]

		tw := offs[c.col+c.span] - offs[c.col] - lmargin[c.col]
		s := c.alignment.lpad(c.value, tw)
		buf.WriteString(s)
		off += utf8.RuneCountInString(s)
	}
	advance(last + 1)
	_, err := io.WriteString(w, buf.String())
	return err
}

// String returns the formatted table.
func (t *Table) String() string {
	var b strings.Builder
	t.Format(&b)
	return b.String()
}
