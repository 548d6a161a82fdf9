package buffer

import (
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"github.com/dshills/keyline/internal/engine/undo"
)

// InsertText inserts text at point and advances point past it.
func (l *Line) InsertText(text string) {
	if text == "" {
		return
	}
	l.record(undo.NewInsertOperation(l.point, text))
	l.text = l.text[:l.point] + text + l.text[l.point:]
	if l.mark > l.point {
		l.mark += len(text)
	}
	l.point += len(text)
}

// InsertRune inserts a single rune at point.
func (l *Line) InsertRune(r rune) {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	l.InsertText(string(buf[:n]))
}

// DeleteBack removes the grapheme cluster before point.
// It returns false at the start of the line.
func (l *Line) DeleteBack() bool {
	if l.point == 0 {
		return false
	}
	start := l.prevBoundary(l.point)
	l.deleteRange(start, l.point)
	return true
}

// DeleteForward removes the grapheme cluster at point.
// It returns false at the end of the line.
func (l *Line) DeleteForward() bool {
	if l.point >= len(l.text) {
		return false
	}
	end := l.nextBoundary(l.point)
	l.deleteRange(l.point, end)
	return true
}

// UnixWordRubout deletes the whitespace-delimited word before point.
func (l *Line) UnixWordRubout() {
	if l.point == 0 {
		return
	}
	start := l.point
	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(l.text[:start])
		if !unicode.IsSpace(r) {
			break
		}
		start -= size
	}
	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(l.text[:start])
		if unicode.IsSpace(r) {
			break
		}
		start -= size
	}
	l.deleteRange(start, l.point)
}

// UnixLineDiscard deletes from the start of the line to point.
func (l *Line) UnixLineDiscard() {
	if l.point == 0 {
		return
	}
	l.deleteRange(0, l.point)
}

// ForwardChar moves point one grapheme cluster right.
func (l *Line) ForwardChar() bool {
	if l.point >= len(l.text) {
		return false
	}
	l.point = l.nextBoundary(l.point)
	return true
}

// BackwardChar moves point one grapheme cluster left.
func (l *Line) BackwardChar() bool {
	if l.point == 0 {
		return false
	}
	l.point = l.prevBoundary(l.point)
	return true
}

// LastUnit returns the grapheme cluster immediately before point.
func (l *Line) LastUnit() string {
	if l.point == 0 {
		return ""
	}
	return l.text[l.prevBoundary(l.point):l.point]
}

func (l *Line) deleteRange(start, end int) {
	if start >= end {
		return
	}
	deleted := l.text[start:end]
	l.record(undo.NewDeleteOperation(start, deleted))
	l.text = l.text[:start] + l.text[end:]

	n := end - start
	switch {
	case l.mark >= end:
		l.mark -= n
	case l.mark > start:
		l.mark = start
	}
	l.point = start
}

// nextBoundary returns the offset of the grapheme boundary after off.
func (l *Line) nextBoundary(off int) int {
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(l.text[off:], -1)
	if cluster == "" {
		return len(l.text)
	}
	return off + len(cluster)
}

// prevBoundary returns the offset of the grapheme boundary before off.
func (l *Line) prevBoundary(off int) int {
	pos, state := 0, -1
	rest := l.text[:off]
	for rest != "" {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if pos+len(cluster) >= off {
			return pos
		}
		pos += len(cluster)
	}
	return pos
}
