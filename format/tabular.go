package format

import (
	"io"
	"strings"

	"github.com/poiesic/ledger/table"
	"golang.org/x/text/width"
)

const (
	absentCell  = "NaN"
	ellipsis    = "..."
	columnGap   = "  "
	defaultSpan = 50
)

// runeWidth is the number of terminal cells r occupies.
func runeWidth(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	return 1
}

// displayWidth is the number of terminal cells s occupies.
func displayWidth(s string) int {
	n := 0
	for _, r := range s {
		n += runeWidth(r)
	}
	return n
}

// truncate shortens s to at most limit cells, marking the cut with "...".
// A limit of zero or less disables truncation.
func truncate(s string, limit int) string {
	if limit <= 0 || displayWidth(s) <= limit {
		return s
	}
	budget := limit - len(ellipsis)
	var b strings.Builder
	used := 0
	for _, r := range s {
		w := runeWidth(r)
		if used+w > budget {
			break
		}
		b.WriteRune(r)
		used += w
	}
	b.WriteString(ellipsis)
	return b.String()
}

// cell prepares a raw value for a single table line.
func cell(v string, limit int) string {
	if v == "" {
		return absentCell
	}
	v = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(v)
	return truncate(v, limit)
}

// writeTable renders the listed columns of t, skipping columns the schema
// lacks. Columns are left-aligned and padded by display width.
func writeTable(w io.Writer, t *table.Table, columns []string, limit int) {
	names := t.Schema.Project(columns...)
	if len(names) == 0 {
		return
	}
	positions := t.Schema.Resolve(names...)

	lines := make([][]string, 0, t.Len()+1)
	header := make([]string, len(names))
	for i, name := range names {
		header[i] = truncate(name, limit)
	}
	lines = append(lines, header)
	for _, row := range t.Rows {
		line := make([]string, len(positions))
		for i, pos := range positions {
			line[i] = cell(row.Value(pos), limit)
		}
		lines = append(lines, line)
	}

	widths := make([]int, len(names))
	for _, line := range lines {
		for i, c := range line {
			widths[i] = max(widths[i], displayWidth(c))
		}
	}

	var b strings.Builder
	for _, line := range lines {
		b.Reset()
		for i, c := range line {
			if i > 0 {
				b.WriteString(columnGap)
			}
			b.WriteString(c)
			if i < len(line)-1 {
				b.WriteString(strings.Repeat(" ", widths[i]-displayWidth(c)))
			}
		}
		b.WriteByte('\n')
		io.WriteString(w, b.String())
	}
}
