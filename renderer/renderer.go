// Package renderer turns watchdesk reports into markdown suitable for the
// terminal. Reports stay plain data; everything presentational lives here.
package renderer

import (
	"fmt"
	"io"
	"strings"
)

// table is a small helper to emit aligned markdown tables.
type table struct {
	w    io.Writer
	cols int
}

func newTable(w io.Writer, headers ...string) *table {
	t := &table{w: w, cols: len(headers)}
	fmt.Fprint(w, "|")
	for _, h := range headers {
		fmt.Fprintf(w, " %s |", h)
	}
	fmt.Fprintln(w)
	fmt.Fprint(w, "|:---|")
	for range headers[1:] {
		fmt.Fprint(w, "---:|")
	}
	fmt.Fprintln(w)
	return t
}

func (t *table) row(cells ...string) {
	fmt.Fprint(t.w, "|")
	for _, c := range cells {
		fmt.Fprintf(t.w, " %s |", c)
	}
	for i := len(cells); i < t.cols; i++ {
		fmt.Fprint(t.w, " |")
	}
	fmt.Fprintln(t.w)
}

func bold(s string) string {
	if s == "" {
		return s
	}
	return "**" + s + "**"
}

func checkmark(b bool) string {
	if b {
		return "✅"
	}
	return "⚠️"
}

func nonEmpty(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
