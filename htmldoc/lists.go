package htmldoc

import (
	"strconv"
	"strings"

	"github.com/tsawler/editorblocks/model"
	"github.com/tsawler/editorblocks/text"
)

// counterTypes maps the type attribute of an ol to a counter style.
var counterTypes = map[string]string{
	"1": "numeric",
	"a": "lower-alpha",
	"A": "upper-alpha",
	"i": "lower-roman",
	"I": "upper-roman",
}

// list converts the content of a ul or ol. Items holding a checkbox keep
// its state whatever the list style.
func (s *scanner) list(tag text.Tag, content string, ordered bool) *model.List {
	l := &model.List{Style: model.ListUnordered, Items: s.listItems(content)}
	if ordered {
		l.Style = model.ListOrdered
		l.Meta = orderedMeta(tag)
	}
	return l
}

func orderedMeta(tag text.Tag) *model.ListMeta {
	meta := model.NewOrderedMeta(1)
	if v, err := strconv.Atoi(strings.TrimSpace(tag.Attr("start"))); err == nil {
		meta.Start = v
	}
	meta.CounterType = counterTypes[strings.TrimSpace(tag.Attr("type"))]
	return meta
}

// listItems collects the li elements of a list body in order. Each call
// advances past at least one character, so it always terminates.
func (s *scanner) listItems(content string) []model.ListItem {
	items := make([]model.ListItem, 0)
	pos := 0
	for pos < len(content) {
		at := indexOpenTag(content[pos:], "li")
		if at < 0 {
			break
		}
		start := pos + at
		gt := strings.IndexByte(content[start:], '>')
		if gt < 0 {
			break
		}
		bodyStart := start + gt + 1
		bodyEnd, next := itemEnd(content, bodyStart)
		items = append(items, s.listItem(content[bodyStart:bodyEnd]))
		if next <= start {
			next = start + 1
		}
		pos = next
	}
	return items
}

// itemEnd finds where the li whose body starts at from ends. It returns the
// end of the body and the position to continue from. An item also ends at the
// next li on the same level, or at the end of its list.
func itemEnd(content string, from int) (int, int) {
	depth := 0
	for i := from; i < len(content); {
		lt := strings.IndexByte(content[i:], '<')
		if lt < 0 {
			break
		}
		at := i + lt
		rest := content[at:]
		switch {
		case hasPrefixFold(rest, "</li>"):
			if depth == 0 {
				return at, at + len("</li>")
			}
		case hasPrefixFold(rest, "</ul>"), hasPrefixFold(rest, "</ol>"):
			depth--
			if depth < 0 {
				return at, at
			}
		case isOpenTag(rest, "ul"), isOpenTag(rest, "ol"):
			depth++
		case isOpenTag(rest, "li"):
			if depth == 0 {
				return at, at
			}
		}
		i = at + 1
	}
	return len(content), len(content)
}

// listItem converts the body of one li. Nested lists become children and are
// removed from the item's own content. Past maxNesting nested lists are kept
// as item text.
func (s *scanner) listItem(body string) model.ListItem {
	var children []model.ListItem
	own := body
	if s.depth < maxNesting {
		var sb strings.Builder
		closers := newCloseIndex(body)
		pos := 0
		for {
			at, name := indexOpenList(body, pos)
			if at < 0 {
				break
			}
			gt := strings.IndexByte(body[at:], '>')
			if gt < 0 {
				break
			}
			from := at + gt + 1
			closeAt, after := closers.find(at, name, from, len(body))
			if closeAt < 0 {
				closeAt, after = len(body), len(body)
			}
			sb.WriteString(body[pos:at])
			s.depth++
			children = append(children, s.listItems(body[from:closeAt])...)
			s.depth--
			pos = after
		}
		sb.WriteString(body[pos:])
		own = sb.String()
	}

	var item model.ListItem
	if checked, ok := checkbox(own); ok {
		item = model.NewChecklistItem(text.Clean(own), checked)
	} else {
		item = model.NewListItem(text.Clean(own))
	}
	if children != nil {
		item.Items = children
	}
	return item
}

// indexOpenList returns the offset and name of the first ul or ol start tag
// in s at or after pos, or -1.
func indexOpenList(s string, pos int) (int, string) {
	for pos < len(s) {
		lt := strings.IndexByte(s[pos:], '<')
		if lt < 0 {
			break
		}
		at := pos + lt
		switch {
		case isOpenTag(s[at:], "ul"):
			return at, "ul"
		case isOpenTag(s[at:], "ol"):
			return at, "ol"
		}
		pos = at + 1
	}
	return -1, ""
}

// checkbox reports the state of a checkbox input in s, if there is one.
func checkbox(s string) (checked bool, ok bool) {
	for i := 0; i < len(s); {
		at := indexOpenTag(s[i:], "input")
		if at < 0 {
			return false, false
		}
		start := i + at
		gt := strings.IndexByte(s[start:], '>')
		if gt < 0 {
			return false, false
		}
		tag := text.ParseTag(s[start+1 : start+gt])
		if strings.EqualFold(tag.Attr("type"), "checkbox") {
			return tag.Has("checked"), true
		}
		i = start + gt + 1
	}
	return false, false
}
