package htmldoc

import "strings"

// closeRef records the closing tags available to one start tag.
type closeRef struct {
	name string

	// The balanced closer, counting nested start tags of the same name
	match, matchEnd int

	// The first closer of the same name after the start tag
	first, firstEnd int
}

// closeIndex maps the offset of every start tag in a source to its closing
// tag. It is built in one pass, so looking up a closer does not rescan the
// source.
type closeIndex map[int]closeRef

type tagEvent struct {
	pos, end int // '<' and one past '>' (closers only)
	name     string
	open     bool
}

// newCloseIndex pairs start and end tags of src by name. An end tag closes
// the innermost open start tag of its name; start tags left open fall back to
// the first end tag of their name that follows them.
func newCloseIndex(src string) closeIndex {
	var events []tagEvent
	for i := 0; i < len(src); {
		lt := strings.IndexByte(src[i:], '<')
		if lt < 0 {
			break
		}
		at := i + lt
		if at+1 < len(src) && src[at+1] == '/' {
			n := nameEnd(src, at+2)
			if n > at+2 && n < len(src) && src[n] == '>' {
				events = append(events, tagEvent{pos: at, end: n + 1, name: strings.ToLower(src[at+2 : n])})
			}
		} else if n := nameEnd(src, at+1); n > at+1 && (n == len(src) || src[n] != '<') {
			events = append(events, tagEvent{pos: at, name: strings.ToLower(src[at+1 : n]), open: true})
		}
		i = at + 1
	}

	idx := make(closeIndex)
	stacks := make(map[string][]int)
	for _, e := range events {
		if e.open {
			stacks[e.name] = append(stacks[e.name], e.pos)
			continue
		}
		st := stacks[e.name]
		if len(st) == 0 {
			continue
		}
		idx[st[len(st)-1]] = closeRef{name: e.name, match: e.pos, matchEnd: e.end}
		stacks[e.name] = st[:len(st)-1]
	}

	next := make(map[string]tagEvent)
	for k := len(events) - 1; k >= 0; k-- {
		e := events[k]
		if !e.open {
			next[e.name] = e
			continue
		}
		ref, ok := idx[e.pos]
		if !ok {
			ref = closeRef{name: e.name, match: -1, matchEnd: -1}
		}
		ref.first, ref.firstEnd = -1, -1
		if c, ok := next[e.name]; ok {
			ref.first, ref.firstEnd = c.pos, c.end
		}
		idx[e.pos] = ref
	}
	return idx
}

// nameEnd returns the offset just past the tag name starting at from.
func nameEnd(src string, from int) int {
	for from < len(src) {
		switch src[from] {
		case ' ', '\t', '\n', '\r', '\f', '/', '>', '<':
			return from
		}
		from++
	}
	return from
}

// find returns the closer for the start tag named name at open, restricted
// to [from, to). The balanced closer is preferred; when it lies outside the
// range the first closer is tried. It returns the start of the closing tag
// and the offset just past it, or -1, -1.
func (idx closeIndex) find(open int, name string, from, to int) (int, int) {
	ref, ok := idx[open]
	if !ok || ref.name != name {
		return -1, -1
	}
	if ref.match >= from && ref.matchEnd <= to {
		return ref.match, ref.matchEnd
	}
	if ref.first >= from && ref.firstEnd <= to {
		return ref.first, ref.firstEnd
	}
	return -1, -1
}
