// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"bytes"
	"io"
	"strings"

	"github.com/google/safehtml/template"

	"golang.org/x/paperbench/internal/texttab"
)

// marked wraps LaTeX text in its highlight.
func (c Cell) marked() string {
	switch c.Mark {
	case Bold:
		return `\textbf{` + c.Text + `}`
	case Underline:
		return `\underline{` + c.Text + `}`
	}
	return c.Text
}

// FormatLaTeX writes t as a booktabs table environment.
func FormatLaTeX(w io.Writer, t *Table) error {
	var b strings.Builder
	line := func(s string) {
		b.WriteString(s)
		b.WriteByte('\n')
	}
	line(`\begin{table}[t]`)
	line(`\centering`)
	line(`\small`)
	line(`\setlength{\tabcolsep}{` + t.ColSep + `}`)
	line(`\begin{tabular}{l` + strings.Repeat("c", len(t.Header)-1) + `}`)
	line(`\toprule`)
	line(strings.Join(t.Header, " & ") + ` \\`)
	line(`\midrule`)
	for _, row := range t.Rows {
		cells := make([]string, len(row))
		for i, c := range row {
			cells[i] = c.marked()
		}
		line(strings.Join(cells, " & ") + ` \\`)
	}
	line(`\bottomrule`)
	line(`\end{tabular}`)
	line(`\caption{` + t.Caption + `}`)
	line(`\label{` + t.Label + `}`)
	line(`\end{table}`)
	_, err := io.WriteString(w, b.String())
	return err
}

var htmlTemplate = template.Must(template.New("").Parse(`
<table class='paperbench'>
<caption>{{.Caption}}</caption>
<thead>
<tr>{{range .Header}}<th>{{.}}{{end}}
</thead>
<tbody>
{{range .Rows -}}
<tr>{{range .}}<td>{{if .Bold}}<b>{{.Text}}</b>{{else if .Underline}}<u>{{.Text}}</u>{{else}}{{.Text}}{{end}}{{end}}
{{end -}}
</tbody>
</table>
`))

type htmlCell struct {
	Text            string
	Bold, Underline bool
}

type htmlTable struct {
	Caption string
	Header  []string
	Rows    [][]htmlCell
}

// FormatHTML writes t as an HTML table with markup stripped from the
// text and highlights as <b> and <u>.
func FormatHTML(w io.Writer, t *Table) error {
	h := htmlTable{Caption: StripLaTeX(t.Caption)}
	for _, s := range t.Header {
		h.Header = append(h.Header, StripLaTeX(s))
	}
	for _, row := range t.Rows {
		var hr []htmlCell
		for _, c := range row {
			hr = append(hr, htmlCell{
				Text:      StripLaTeX(c.Text),
				Bold:      c.Mark == Bold,
				Underline: c.Mark == Underline,
			})
		}
		h.Rows = append(h.Rows, hr)
	}
	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, h); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// FormatText writes t as an aligned plain-text table. Best entries
// are wrapped in "*" and runners-up in "_".
func FormatText(w io.Writer, t *Table) error {
	var tab texttab.Table
	tab.Row()
	for i, s := range t.Header {
		if i == 0 {
			tab.Cell(StripLaTeX(s))
		} else {
			tab.Cell(StripLaTeX(s), texttab.Center)
		}
	}
	tab.Rule('-')
	for _, row := range t.Rows {
		tab.Row()
		for i, c := range row {
			s := StripLaTeX(c.Text)
			switch c.Mark {
			case Bold:
				s = "*" + s + "*"
			case Underline:
				s = "_" + s + "_"
			}
			if i == 0 {
				tab.Cell(s)
			} else {
				tab.Cell(s, texttab.Right)
			}
		}
	}
	if _, err := io.WriteString(w, StripLaTeX(t.Caption)+"\n\n"); err != nil {
		return err
	}
	return tab.Format(w)
}
