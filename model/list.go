package model

import (
	"encoding/json"
	"strings"
)

// ListStyle represents the style of a list
type ListStyle string

const (
	ListUnordered ListStyle = "unordered"
	ListOrdered   ListStyle = "ordered"
	ListChecklist ListStyle = "checklist"
)

// List represents a list with a tree of items
type List struct {
	Style ListStyle  `json:"style"`
	Items []ListItem `json:"items"`
	Meta  *ListMeta  `json:"meta,omitempty"`
}

func (*List) Kind() Kind { return KindList }
func (*List) isBlock()   {}

// GetText returns the item contents one per line, nested items indented.
func (l *List) GetText() string {
	var sb strings.Builder
	writeItems(&sb, l.Items, 0)
	return sb.String()
}

func writeItems(sb *strings.Builder, items []ListItem, level int) {
	for _, item := range items {
		sb.WriteString(indent(level))
		sb.WriteString(item.Content)
		sb.WriteString("\n")
		writeItems(sb, item.Items, level+1)
	}
}

// Count returns the number of items in the list, nested items included.
func (l *List) Count() int {
	return countItems(l.Items)
}

func countItems(items []ListItem) int {
	n := len(items)
	for _, item := range items {
		n += countItems(item.Items)
	}
	return n
}

// ListMeta holds optional list metadata
type ListMeta struct {
	Start       int    `json:"start,omitempty"`
	CounterType string `json:"counterType,omitempty"`
}

// NewOrderedMeta returns list metadata starting at start.
func NewOrderedMeta(start int) *ListMeta {
	return &ListMeta{Start: start}
}

// ListItem represents a single list item. An item owns its nested items.
type ListItem struct {
	Content string       `json:"content"`
	Meta    ListItemMeta `json:"meta"`
	Items   []ListItem   `json:"items"`
}

// ListItemMeta holds per-item metadata. Checked is only set for items that
// carry a checkbox.
type ListItemMeta struct {
	Checked *bool `json:"checked,omitempty"`
}

// NewListItem creates an item without a checked state and without children.
func NewListItem(content string) ListItem {
	return ListItem{Content: content, Items: []ListItem{}}
}

// NewChecklistItem creates an item carrying a checked state.
func NewChecklistItem(content string, checked bool) ListItem {
	item := NewListItem(content)
	item.Meta.Checked = &checked
	return item
}

// IsChecklist reports whether the item carries a checked state.
func (li ListItem) IsChecklist() bool {
	return li.Meta.Checked != nil
}

// IsChecked reports whether the item is a checked checklist entry.
func (li ListItem) IsChecked() bool {
	return li.Meta.Checked != nil && *li.Meta.Checked
}

// MarshalJSON writes nested items as an empty array rather than null.
func (li ListItem) MarshalJSON() ([]byte, error) {
	type plain ListItem
	if li.Items == nil {
		li.Items = []ListItem{}
	}
	return json.Marshal(plain(li))
}

// MarshalJSON writes items as an empty array rather than null.
func (l List) MarshalJSON() ([]byte, error) {
	type plain List
	if l.Items == nil {
		l.Items = []ListItem{}
	}
	return json.Marshal(plain(l))
}
