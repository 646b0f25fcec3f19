// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

var latexEscaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	"&", `\&`,
	"%", `\%`,
	"_", `\_`,
	"#", `\#`,
)

// EscapeLaTeX escapes the characters that break a tabular cell.
func EscapeLaTeX(s string) string {
	return latexEscaper.Replace(s)
}

// FormatMeanStd formats a table cell as mean with a small-print
// standard deviation. A std that is not positive is omitted, and a
// std below 0.0005 is shown as "<0.001".
func FormatMeanStd(mean, std float64, digits int) string {
	if !(std > 0) {
		return fmt.Sprintf("%.*f", digits, mean)
	}
	if std < 0.0005 {
		return fmt.Sprintf(`%.*f {\scriptsize $\pm$ $<$0.001}`, digits, mean)
	}
	return fmt.Sprintf(`%.*f {\scriptsize $\pm$ %.*f}`, digits, mean, digits, std)
}

// formatPercent formats a fraction as a whole percentage with a
// small-print deviation.
func formatPercent(mean, std float64) string {
	if math.IsNaN(std) {
		std = 0
	}
	return fmt.Sprintf(`%.0f {\scriptsize $\pm$ %.0f}\%%`, mean*100, std*100)
}

var stripRules = []struct {
	re   *regexp.Regexp
	repl string
}{
	{regexp.MustCompile(`\\textbf\{([^}]*)\}`), "$1"},
	{regexp.MustCompile(`\\underline\{([^}]*)\}`), "$1"},
	{regexp.MustCompile(`\{\\scriptsize\s+([^}]*)\}`), "$1"},
	{regexp.MustCompile(`\$`), ""},
	{regexp.MustCompile(`\\pm`), "±"},
	{regexp.MustCompile(`\\Delta\s*`), "Δ"},
	{regexp.MustCompile(`\\in\b`), "∈"},
	{regexp.MustCompile(`\\([&%_#])`), "$1"},
	{regexp.MustCompile(`\\textbackslash\{\}`), `\`},
}

// StripLaTeX reduces LaTeX cell markup to plain text.
func StripLaTeX(s string) string {
	for _, r := range stripRules {
		s = r.re.ReplaceAllString(s, r.repl)
	}
	return s
}
