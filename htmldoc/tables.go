package htmldoc

import (
	"regexp"

	"github.com/tsawler/editorblocks/model"
	"github.com/tsawler/editorblocks/text"
)

var (
	rowPattern  = regexp.MustCompile(`(?is)<tr(?:\s[^>]*)?>(.*?)</tr>`)
	cellPattern = regexp.MustCompile(`(?is)<t[dh](?:\s[^>]*)?>(.*?)</t[dh]>`)
)

// parseTable converts the content of a table element. Rows without cells are
// dropped; header and data cells are treated alike. A table without rows is
// still returned.
func parseTable(content string) *model.Table {
	table := &model.Table{Content: make([][]string, 0)}
	for _, row := range rowPattern.FindAllStringSubmatch(content, -1) {
		cells := cellPattern.FindAllStringSubmatch(row[1], -1)
		if len(cells) == 0 {
			continue
		}
		r := make([]string, 0, len(cells))
		for _, c := range cells {
			r = append(r, text.Clean(c[1]))
		}
		table.AddRow(r...)
	}
	tracer().Debugf("table with %d rows", table.RowCount())
	return table
}
