// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/elementary-assertions/pkg/types"
)

// writer accumulates rendered text and knows the heading and table syntax
// of the output format.
type writer struct {
	b      strings.Builder
	format types.OutputFormat
}

func newWriter(format types.OutputFormat) *writer {
	return &writer{format: format}
}

func (w *writer) markdown() bool {
	return w.format == types.FormatMarkdown
}

// gap makes sure the next block starts after exactly one blank line.
func (w *writer) gap() {
	s := w.b.String()
	switch {
	case s == "":
	case strings.HasSuffix(s, "\n\n"):
	case strings.HasSuffix(s, "\n"):
		w.b.WriteByte('\n')
	default:
		w.b.WriteString("\n\n")
	}
}

func (w *writer) title(text string) {
	if w.markdown() {
		w.b.WriteString("# " + text + "\n")
		return
	}
	w.b.WriteString(text + "\n")
	w.b.WriteString(strings.Repeat("=", utf8.RuneCountInString(text)) + "\n")
}

func (w *writer) section(name string) {
	w.gap()
	if w.markdown() {
		w.b.WriteString("## " + name + "\n\n")
		return
	}
	w.b.WriteString(name + ":\n")
}

func (w *writer) subsection(name string) {
	w.gap()
	if w.markdown() {
		w.b.WriteString("### " + name + "\n\n")
		return
	}
	w.b.WriteString(name + ":\n")
}

// item writes one list entry. The text is written as is, so verbatim text
// carrying its own newlines keeps them.
func (w *writer) item(text string) {
	w.b.WriteString("- " + text + "\n")
}

func (w *writer) itemf(format string, args ...any) {
	w.item(fmt.Sprintf(format, args...))
}

func (w *writer) line(text string) {
	w.b.WriteString(text + "\n")
}

// table writes a header row and data rows. Markdown gets a pipe table with
// escaped cell pipes; txt gets " | " separated rows under a dashed rule.
func (w *writer) table(header []string, rows [][]string) {
	if w.markdown() {
		w.b.WriteString(mdRow(header))
		rule := make([]string, len(header))
		for i := range rule {
			rule[i] = "---"
		}
		w.b.WriteString(mdRow(rule))
		for _, r := range rows {
			w.b.WriteString(mdRow(escapeCells(r)))
		}
		return
	}
	head := strings.Join(header, " | ")
	w.b.WriteString(head + "\n")
	w.b.WriteString(strings.Repeat("-", utf8.RuneCountInString(head)) + "\n")
	for _, r := range rows {
		w.b.WriteString(strings.TrimRight(strings.Join(r, " | "), " ") + "\n")
	}
}

func (w *writer) String() string {
	s := strings.TrimRight(w.b.String(), "\n")
	return s + "\n"
}

func mdRow(cells []string) string {
	return "| " + strings.Join(cells, " | ") + " |\n"
}

// escapeCells makes cells safe inside a Markdown pipe table. Every pipe is
// escaped, including the one inside a wiki marker, since an unescaped pipe
// ends the cell; a Markdown viewer displays ⟦cart\|wiki:exact⟧ as
// ⟦cart|wiki:exact⟧.
func escapeCells(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		c = strings.ReplaceAll(c, "|", `\|`)
		out[i] = strings.ReplaceAll(c, "\n", " ")
	}
	return out
}
