package history

import (
	"strings"
	"unicode/utf8"

	"github.com/tidwall/match"
	"golang.org/x/text/cases"
)

// Direction of a history search. Backward runs toward older lines.
const (
	Backward = -1
	Forward  = 1
)

// SubstringSearch looks for needle starting at the current position and
// walking in direction dir (negative is backward). When anchored, the
// needle must start the line. When fold is set, comparison is
// case-insensitive.
//
// On success the cursor moves to the matching line and the byte offset of
// the match within that line is returned. Backward searches report the
// rightmost occurrence in a line, forward searches the leftmost.
func (l *List) SubstringSearch(needle string, dir int, anchored, fold bool) (int, bool) {
	offset, _, ok := l.SubstringMatch(needle, dir, anchored, fold)
	return offset, ok
}

// SubstringMatch is SubstringSearch that also reports how many bytes of
// the line matched. Folding can make that differ from len(needle).
func (l *List) SubstringMatch(needle string, dir int, anchored, fold bool) (offset, length int, ok bool) {
	if needle == "" {
		return 0, 0, false
	}
	if !fold {
		return l.search(dir, func(line string) (int, int, bool) {
			if anchored {
				return 0, len(needle), strings.HasPrefix(line, needle)
			}
			var i int
			if dir < 0 {
				i = strings.LastIndex(line, needle)
			} else {
				i = strings.Index(line, needle)
			}
			return i, len(needle), i >= 0
		})
	}

	folder := cases.Fold()
	needle = foldLine(needle, &folder).text
	return l.search(dir, func(line string) (int, int, bool) {
		f := foldLine(line, &folder)
		var i int
		switch {
		case anchored && strings.HasPrefix(f.text, needle):
			i = 0
		case anchored:
			i = -1
		case dir < 0:
			i = strings.LastIndex(f.text, needle)
		default:
			i = strings.Index(f.text, needle)
		}
		if i < 0 {
			return 0, 0, false
		}
		start, end := f.span(i, len(needle))
		return start, end - start, true
	})
}

// PatternSearch matches the glob pattern against each line starting at the
// current position. Unanchored patterns may match anywhere in the line.
// The reported offset is always 0.
func (l *List) PatternSearch(pattern string, dir int, anchored bool) (int, bool) {
	if pattern == "" {
		return 0, false
	}
	if !anchored && !strings.HasPrefix(pattern, "*") {
		pattern = "*" + pattern
	}
	if !strings.HasSuffix(pattern, "*") {
		pattern += "*"
	}
	offset, _, ok := l.search(dir, func(line string) (int, int, bool) {
		return 0, len(line), match.Match(line, pattern)
	})
	return offset, ok
}

func (l *List) search(dir int, matchLine func(string) (int, int, bool)) (int, int, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := len(l.lines)
	if n == 0 {
		return 0, 0, false
	}

	step := 1
	if dir < 0 {
		step = -1
	}

	i := l.pos
	if i >= n {
		if step > 0 {
			return 0, 0, false
		}
		i = n - 1
	}

	for ; i >= 0 && i < n; i += step {
		if off, length, ok := matchLine(l.lines[i]); ok {
			l.pos = i
			return off, length, true
		}
	}
	return 0, 0, false
}

// foldedLine is a case-folded line. from and to give, for each folded
// byte, the source bytes of the rune it was folded from.
type foldedLine struct {
	text     string
	from, to []int
}

// foldLine folds line one rune at a time so folded offsets map back to
// the source.
func foldLine(line string, folder *cases.Caser) foldedLine {
	var b strings.Builder
	b.Grow(len(line))
	f := foldedLine{
		from: make([]int, 0, len(line)),
		to:   make([]int, 0, len(line)),
	}

	for i := 0; i < len(line); {
		r, size := utf8.DecodeRuneInString(line[i:])
		n := b.Len()
		switch {
		case r < utf8.RuneSelf:
			c := line[i]
			if 'A' <= c && c <= 'Z' {
				c += 'a' - 'A'
			}
			b.WriteByte(c)
		case r == utf8.RuneError && size == 1:
			b.WriteByte(line[i])
		default:
			b.WriteString(folder.String(line[i : i+size]))
		}
		for range b.Len() - n {
			f.from = append(f.from, i)
			f.to = append(f.to, i+size)
		}
		i += size
	}
	f.text = b.String()
	return f
}

// span maps n > 0 folded bytes at i back to a source byte range. A match
// that starts or ends inside a rune's folding covers the whole rune.
func (f foldedLine) span(i, n int) (start, end int) {
	return f.from[i], f.to[i+n-1]
}
