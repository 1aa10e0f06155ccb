// Package render writes blocks back out as Markdown or plain text.
//
// Markdown output is readable by package mddoc, so converting Markdown to
// blocks and rendering them again preserves the block structure.
package render

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/tsawler/editorblocks/model"
	"github.com/tsawler/editorblocks/text"
)

var (
	boldTag   = regexp.MustCompile(`(?s)<b>(.*?)</b>`)
	italicTag = regexp.MustCompile(`(?s)<i>(.*?)</i>`)
	strikeTag = regexp.MustCompile(`(?s)<s>(.*?)</s>`)
	anchorTag = regexp.MustCompile(`(?s)<a href="([^"]*)"[^>]*>(.*?)</a>`)
)

// Markdown renders blocks as Markdown, separated by blank lines. Inline
// formatting tags produced by the scanners are turned back into Markdown
// markers; raw blocks are written verbatim.
func Markdown(blocks []model.Block) string {
	result := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if md := blockMarkdown(b); md != "" {
			result = append(result, md)
		}
	}
	return strings.Join(result, "\n\n")
}

func blockMarkdown(b model.Block) string {
	switch v := b.(type) {
	case *model.Paragraph:
		return inline(v.Text)
	case *model.Heading:
		level := v.Level
		if level < 1 {
			level = 1
		} else if level > 6 {
			level = 6
		}
		return strings.Repeat("#", level) + " " + inline(v.Text)
	case *model.List:
		return listMarkdown(v)
	case *model.Image:
		return fmt.Sprintf("![%s](%s)", v.Caption, v.URL)
	case *model.Code:
		fence := "```"
		if strings.Contains(v.Code, fence) {
			fence = "~~~"
		}
		return fence + v.Language + "\n" + v.Code + "\n" + fence
	case *model.Quote:
		return "> " + inline(v.Text)
	case *model.Raw:
		return v.HTML
	case *model.Table:
		return tableMarkdown(v)
	case *model.Delimiter:
		return "---"
	case *model.Embed:
		if v.Caption == "" {
			return v.Source
		}
		return fmt.Sprintf("[%s](%s)", v.Caption, v.Source)
	}
	return ""
}

// inline turns the scanners' inline tags back into Markdown markers.
func inline(s string) string {
	s = anchorTag.ReplaceAllString(s, "[${2}](${1})")
	s = strikeTag.ReplaceAllString(s, "~~${1}~~")
	s = boldTag.ReplaceAllString(s, "**${1}**")
	return italicTag.ReplaceAllString(s, "_${1}_")
}

func listMarkdown(l *model.List) string {
	start := 1
	if l.Meta != nil && l.Meta.Start > 0 {
		start = l.Meta.Start
	}
	var sb strings.Builder
	var writeItems func(items []model.ListItem, indent string)
	writeItems = func(items []model.ListItem, indent string) {
		for i, item := range items {
			sb.WriteString(indent)
			switch {
			case item.IsChecked():
				sb.WriteString("- [x] ")
			case item.IsChecklist():
				sb.WriteString("- [ ] ")
			case l.Style == model.ListOrdered:
				n := i + 1
				if indent == "" {
					n = start + i
				}
				sb.WriteString(strconv.Itoa(n) + ". ")
			default:
				sb.WriteString("- ")
			}
			sb.WriteString(inline(item.Content))
			sb.WriteString("\n")
			writeItems(item.Items, indent+"    ")
		}
	}
	writeItems(l.Items, "")
	return strings.TrimSuffix(sb.String(), "\n")
}

// tableMarkdown writes the first row as header. Short rows are padded to
// the widest row.
func tableMarkdown(t *model.Table) string {
	cols := t.ColCount()
	if cols == 0 {
		return ""
	}
	var sb strings.Builder
	for rowIdx, row := range t.Content {
		sb.WriteString("|")
		for col := 0; col < cols; col++ {
			cell := ""
			if col < len(row) {
				cell = strings.ReplaceAll(inline(row[col]), "\n", " ")
				cell = strings.TrimSpace(strings.ReplaceAll(cell, "|", "\\|"))
			}
			sb.WriteString(" " + cell + " |")
		}
		sb.WriteString("\n")

		if rowIdx == 0 {
			sb.WriteString("|")
			for i := 0; i < cols; i++ {
				sb.WriteString(" --- |")
			}
			sb.WriteString("\n")
		}
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// Text renders blocks as plain text, separated by blank lines. Markup is
// stripped from everything but code.
func Text(blocks []model.Block) string {
	result := make([]string, 0, len(blocks))
	for _, b := range blocks {
		var s string
		switch v := b.(type) {
		case *model.Code:
			s = v.Code
		case *model.Delimiter:
			s = "---"
		default:
			s = text.Clean(model.PlainText(b))
		}
		if s != "" {
			result = append(result, s)
		}
	}
	return strings.Join(result, "\n\n")
}
