package htmldoc

import (
	"strings"
	"testing"
)

func TestCloseIndex_Find(t *testing.T) {
	tests := []struct {
		name      string
		src       string
		open      int
		tag       string
		to        int // 0 means len(src)
		wantClose int
	}{
		{"simple", "<p>x</p>", 0, "p", 0, 4},
		{"nested same name", "<div><div>a</div>b</div>", 0, "div", 0, 18},
		{"inner of nested", "<div><div>a</div>b</div>", 5, "div", 0, 11},
		{"never balanced uses first closer", "<b><b>x</b>", 0, "b", 0, 7},
		{"no closer", "<div>text", 0, "div", 0, -1},
		{"upper case", "<UL><li>a</UL>", 0, "ul", 0, 9},
		{"closer outside range", "<a><i>x</a></i>", 3, "i", 11, -1},
		{"balanced closer outside range falls back", "<i><i>x</i>y</i>", 0, "i", 12, 7},
		{"name mismatch", "<p>x</p>", 0, "div", 0, -1},
		{"not a start tag", "<p>x</p>", 4, "p", 0, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx := newCloseIndex(tt.src)
			to := tt.to
			if to == 0 {
				to = len(tt.src)
			}
			from := strings.IndexByte(tt.src[tt.open:], '>') + tt.open + 1
			got, after := idx.find(tt.open, tt.tag, from, to)
			if got != tt.wantClose {
				t.Errorf("find(%d, %q) = %d, want %d", tt.open, tt.tag, got, tt.wantClose)
			}
			if got >= 0 && !strings.HasPrefix(strings.ToLower(tt.src[got:after]), "</"+tt.tag+">") {
				t.Errorf("find(%d, %q) spans %q", tt.open, tt.tag, tt.src[got:after])
			}
		})
	}
}

func TestCloseIndex_MatchesFindClose(t *testing.T) {
	inputs := []string{
		"<div><p>a</p><div>b</div></div><div>c",
		"<ul><li>a<ul><li>b</li></ul></li></ul>",
		"<b><b><b>x</b></b>",
		"<span>1</span><span>2<span>3</span>",
	}
	for _, src := range inputs {
		idx := newCloseIndex(src)
		for at := strings.IndexByte(src, '<'); at >= 0; {
			name := tagNameAt(src[at+1:])
			if name != "" {
				from := strings.IndexByte(src[at:], '>') + at + 1
				wantClose, wantAfter := findClose(src, from, name)
				gotClose, gotAfter := idx.find(at, name, from, len(src))
				if gotClose != wantClose || gotAfter != wantAfter {
					t.Errorf("%q at %d: find = (%d, %d), findClose = (%d, %d)",
						src, at, gotClose, gotAfter, wantClose, wantAfter)
				}
			}
			next := strings.IndexByte(src[at+1:], '<')
			if next < 0 {
				break
			}
			at += next + 1
		}
	}
}
