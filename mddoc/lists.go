package mddoc

import (
	"strings"

	"github.com/tsawler/editorblocks/model"
	"github.com/tsawler/editorblocks/text"
)

// marker is a parsed list item line.
type marker struct {
	indent  int // leading whitespace width, a tab counting as 4
	ordered bool
	number  int
	rest    string // content after the marker
}

// parseMarker recognizes "- ", "+ ", "* " and "N. " item lines.
func parseMarker(line string) (marker, bool) {
	t := trimIndent(line)
	m := marker{indent: indentWidth(line[:len(line)-len(t)])}
	for _, p := range []string{"- ", "+ ", "* "} {
		if strings.HasPrefix(t, p) {
			m.rest = t[len(p):]
			return m, true
		}
	}
	n := 0
	for n < len(t) && t[n] >= '0' && t[n] <= '9' {
		m.number = m.number*10 + int(t[n]-'0')
		n++
		if n > 9 {
			return marker{}, false
		}
	}
	if n == 0 || !strings.HasPrefix(t[n:], ". ") {
		return marker{}, false
	}
	m.ordered = true
	m.rest = t[n+2:]
	return m, true
}

func indentWidth(ws string) int {
	w := 0
	for _, c := range ws {
		if c == '\t' {
			w += 4
		} else {
			w++
		}
	}
	return w
}

// checkbox strips a leading [ ], [x] or [X] from item content.
func checkbox(s string) (checked bool, rest string, ok bool) {
	s = strings.TrimLeft(s, " \t")
	if len(s) < 3 || s[0] != '[' || s[2] != ']' {
		return false, s, false
	}
	switch s[1] {
	case ' ':
		return false, s[3:], true
	case 'x', 'X':
		return true, s[3:], true
	}
	return false, s, false
}

// list parses a list starting at line i and returns it together with the
// index of the first line after it.
func (s *scanner) list(i int) (*model.List, int) {
	first, _ := parseMarker(s.lines[i])
	style := listStyle(first)
	items, next := s.listItems(i, first.indent, style)

	l := &model.List{Style: style, Items: items}
	if style == model.ListOrdered {
		l.Meta = model.NewOrderedMeta(first.number)
	}
	return l, next
}

func listStyle(m marker) model.ListStyle {
	if _, _, ok := checkbox(m.rest); ok {
		return model.ListChecklist
	}
	if m.ordered {
		return model.ListOrdered
	}
	return model.ListUnordered
}

// listItems collects sibling items at indent base. Deeper lines become the
// children of the preceding item, with their own style taken from the first
// deeper line; a shallower line or any line that is not a list item ends the
// list. Checklist items always carry a checked state, other items never do.
func (s *scanner) listItems(i, base int, style model.ListStyle) ([]model.ListItem, int) {
	items := make([]model.ListItem, 0)
	for i < len(s.lines) {
		m, ok := parseMarker(s.lines[i])
		if !ok || m.indent < base {
			break
		}
		if m.indent > base && len(items) > 0 {
			var children []model.ListItem
			children, i = s.listItems(i, m.indent, listStyle(m))
			last := &items[len(items)-1]
			last.Items = append(last.Items, children...)
			continue
		}
		items = append(items, newItem(m, style))
		i++
	}
	return items, i
}

func newItem(m marker, style model.ListStyle) model.ListItem {
	if style != model.ListChecklist {
		return model.NewListItem(text.Inline(strings.TrimSpace(m.rest)))
	}
	checked, rest, _ := checkbox(m.rest)
	return model.NewChecklistItem(text.Inline(strings.TrimSpace(rest)), checked)
}
