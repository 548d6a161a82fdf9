package stream

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"

	"github.com/dshills/keyline/internal/input/key"
)

// Bracketed-paste markers.
const (
	PasteStart = "\x1b[200~"
	PasteEnd   = "\x1b[201~"
)

// ErrNotTerminal indicates raw mode was requested on a non-terminal.
var ErrNotTerminal = errors.New("input is not a terminal")

// csiKeys maps escape sequences (without the leading ESC) to keys.
var csiKeys = map[string]key.Key{
	"[A":  key.KeyUp,
	"[B":  key.KeyDown,
	"[C":  key.KeyRight,
	"[D":  key.KeyLeft,
	"[H":  key.KeyHome,
	"[F":  key.KeyEnd,
	"OA":  key.KeyUp,
	"OB":  key.KeyDown,
	"OC":  key.KeyRight,
	"OD":  key.KeyLeft,
	"OH":  key.KeyHome,
	"OF":  key.KeyEnd,
	"[1~": key.KeyHome,
	"[2~": key.KeyInsert,
	"[3~": key.KeyDelete,
	"[4~": key.KeyEnd,
	"[5~": key.KeyPageUp,
	"[6~": key.KeyPageDown,
	"[7~": key.KeyHome,
	"[8~": key.KeyEnd,
}

const maxCSILen = 3

// Reader decodes key events from a byte stream.
type Reader struct {
	src    io.Reader
	r      *bufio.Reader
	pushed []key.Event
}

// NewReader wraps src.
func NewReader(src io.Reader) *Reader {
	return &Reader{src: src, r: bufio.NewReader(src)}
}

// IsTerminal reports whether the source is a terminal.
func (r *Reader) IsTerminal() bool {
	f, ok := r.src.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// MakeRaw puts a terminal source into raw mode and returns the function
// that restores it.
func (r *Reader) MakeRaw() (func() error, error) {
	f, ok := r.src.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return nil, ErrNotTerminal
	}
	fd := int(f.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return func() error { return term.Restore(fd, state) }, nil
}

// ReadKey returns the next key. It returns io.EOF when the stream ends.
func (r *Reader) ReadKey() (key.Event, error) {
	if ev, ok := r.popPushed(); ok {
		return ev, nil
	}

	b, err := r.r.ReadByte()
	if err != nil {
		return key.Event{}, err
	}
	if b == 0x1b {
		return r.decodeEscape(), nil
	}
	return r.decode(b)
}

// ReadRaw returns the next key without decoding escape sequences.
func (r *Reader) ReadRaw() (key.Event, error) {
	if ev, ok := r.popPushed(); ok {
		return ev, nil
	}
	b, err := r.r.ReadByte()
	if err != nil {
		return key.Event{}, err
	}
	return r.decode(b)
}

// Unread pushes ev back so the next read returns it.
func (r *Reader) Unread(ev key.Event) {
	r.pushed = append(r.pushed, ev)
}

// Pending returns the number of bytes and pushed-back keys available
// without blocking.
func (r *Reader) Pending() int {
	return len(r.pushed) + r.r.Buffered()
}

// ReadPastePrefix consumes the rest of a paste start marker after an
// Escape. Otherwise the Escape is pushed back.
func (r *Reader) ReadPastePrefix() bool {
	rest := PasteStart[1:]
	if b, err := r.r.Peek(len(rest)); err == nil && string(b) == rest {
		_, _ = r.r.Discard(len(rest))
		return true
	}
	r.Unread(key.NewSpecialEvent(key.KeyEscape, key.ModNone))
	return false
}

// ReadPaste reads pasted text up to the paste end marker. Carriage
// returns become newlines. If the stream ends first, the text read so far
// is returned with io.ErrUnexpectedEOF.
func (r *Reader) ReadPaste() (string, error) {
	var b strings.Builder
	for {
		c, err := r.r.ReadByte()
		if err != nil {
			return normalizePaste(b.String()), io.ErrUnexpectedEOF
		}
		b.WriteByte(c)
		if c == '~' && strings.HasSuffix(b.String(), PasteEnd) {
			s := b.String()
			return normalizePaste(s[:len(s)-len(PasteEnd)]), nil
		}
	}
}

func normalizePaste(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

func (r *Reader) popPushed() (key.Event, bool) {
	if len(r.pushed) == 0 {
		return key.Event{}, false
	}
	ev := r.pushed[len(r.pushed)-1]
	r.pushed = r.pushed[:len(r.pushed)-1]
	return ev, true
}

// decode turns the byte b, plus any continuation bytes, into an event.
func (r *Reader) decode(b byte) (key.Event, error) {
	if b < 0x20 || b == 0x7f {
		return key.FromControl(b), nil
	}
	if b < utf8.RuneSelf {
		return key.Rune(rune(b)), nil
	}
	if err := r.r.UnreadByte(); err != nil {
		return key.Event{}, err
	}
	ch, _, err := r.r.ReadRune()
	if err != nil {
		return key.Event{}, err
	}
	return key.Rune(ch), nil
}

// decodeEscape recognizes a buffered key sequence after ESC. A paste
// marker or anything unknown yields a bare Escape.
func (r *Reader) decodeEscape() key.Event {
	esc := key.NewSpecialEvent(key.KeyEscape, key.ModNone)

	n := r.r.Buffered()
	if n == 0 {
		return esc
	}
	if n > maxCSILen {
		n = maxCSILen
	}
	peek, _ := r.r.Peek(n)
	if len(peek) == 0 || (peek[0] != '[' && peek[0] != 'O') {
		return esc
	}
	for l := 2; l <= len(peek); l++ {
		if k, ok := csiKeys[string(peek[:l])]; ok {
			_, _ = r.r.Discard(l)
			return key.NewSpecialEvent(k, key.ModNone)
		}
	}
	return esc
}
