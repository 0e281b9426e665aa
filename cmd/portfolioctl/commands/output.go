package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// OutputWriter handles formatted output for commands.
type OutputWriter struct {
	w      io.Writer
	isJSON bool
}

func NewOutputWriter(w io.Writer, isJSON bool) *OutputWriter {
	return &OutputWriter{w: w, isJSON: isJSON}
}

func (o *OutputWriter) IsJSON() bool {
	return o.isJSON
}

// WriteJSON writes data as formatted JSON.
func (o *OutputWriter) WriteJSON(data interface{}) error {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// WriteTable writes data as a formatted table.
func (o *OutputWriter) WriteTable(headers []string, rows [][]string) {
	if len(rows) == 0 {
		fmt.Fprintln(o.w, "(none)")
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	for i, h := range headers {
		fmt.Fprintf(o.w, "%-*s  ", widths[i], strings.ToUpper(h))
	}
	fmt.Fprintln(o.w)

	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				fmt.Fprintf(o.w, "%-*s  ", widths[i], cell)
			}
		}
		fmt.Fprintln(o.w)
	}
}

// Truncate shortens s to max runes, appending "..." when cut.
func Truncate(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
