package mddoc

import (
	"strings"

	"github.com/tsawler/editorblocks/model"
	"github.com/tsawler/editorblocks/text"
)

// isTableSeparator reports whether line is a header separator such as
// |---|:--:|. Non-empty cells may only hold '-', ':' and spaces and must
// contain at least one '-'.
func isTableSeparator(line string) bool {
	parts := strings.Split(line, "|")
	if len(parts) < 2 {
		return false
	}
	cells := 0
	for _, p := range parts {
		c := strings.TrimSpace(p)
		if c == "" {
			continue
		}
		if strings.Trim(c, "-: ") != "" || !strings.Contains(c, "-") {
			return false
		}
		cells++
	}
	return cells > 0
}

func isTableRow(line string) bool {
	return strings.Contains(line, "|") && !isTableSeparator(line)
}

// splitRow splits a row on '|' keeping the trimmed, non-empty cells.
func splitRow(line string) []string {
	var cells []string
	for _, p := range strings.Split(line, "|") {
		if c := strings.TrimSpace(p); c != "" {
			cells = append(cells, text.Inline(c))
		}
	}
	return cells
}

// table parses a header line at i, skips the separator after it and
// collects the following rows. Rows without cells are dropped.
func (s *scanner) table(i int) (*model.Table, int) {
	t := &model.Table{Content: make([][]string, 0)}
	if header := splitRow(s.lines[i]); len(header) > 0 {
		t.AddRow(header...)
	}
	i += 2
	for ; i < len(s.lines) && isTableRow(s.lines[i]); i++ {
		if row := splitRow(s.lines[i]); len(row) > 0 {
			t.AddRow(row...)
		}
	}
	tracer().Debugf("table with %d rows", t.RowCount())
	return t, i
}
