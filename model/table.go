package model

import (
	"encoding/json"
	"strings"
)

// Table represents a table as rows of cell text. Rows may differ in length.
type Table struct {
	Content [][]string `json:"content"`
}

func (*Table) Kind() Kind { return KindTable }
func (*Table) isBlock()   {}

// GetText returns the cells tab separated, one row per line.
func (t *Table) GetText() string {
	var sb strings.Builder
	for _, row := range t.Content {
		sb.WriteString(strings.Join(row, "\t"))
		sb.WriteString("\n")
	}
	return sb.String()
}

// AddRow appends a row of cells
func (t *Table) AddRow(cells ...string) {
	t.Content = append(t.Content, cells)
}

// RowCount returns the number of rows
func (t *Table) RowCount() int {
	return len(t.Content)
}

// ColCount returns the length of the longest row
func (t *Table) ColCount() int {
	cols := 0
	for _, row := range t.Content {
		if len(row) > cols {
			cols = len(row)
		}
	}
	return cols
}

// GetCell returns the cell text at the given row and column (0-indexed)
func (t *Table) GetCell(row, col int) (string, bool) {
	if row < 0 || row >= len(t.Content) {
		return "", false
	}
	if col < 0 || col >= len(t.Content[row]) {
		return "", false
	}
	return t.Content[row][col], true
}

// MarshalJSON writes an empty table as an empty array rather than null.
func (t Table) MarshalJSON() ([]byte, error) {
	type plain Table
	if t.Content == nil {
		t.Content = [][]string{}
	}
	return json.Marshal(plain(t))
}
