package editor

import (
	"io"
	"strings"
	"testing"

	"github.com/dshills/keyline/internal/engine"
	"github.com/dshills/keyline/internal/engine/buffer"
	"github.com/dshills/keyline/internal/history"
	"github.com/dshills/keyline/internal/input/key"
)

const (
	pasteStart = "\x1b[200~"
	pasteEnd   = "\x1b[201~"
)

// fakeInput replays a fixed list of key events.
type fakeInput struct {
	in     []key.Event
	pushed []key.Event
}

// runes converts s to key events. Control characters become their
// control key events.
func runes(s string) []key.Event {
	var out []key.Event
	for _, r := range s {
		if r < 0x20 || r == 0x7f {
			out = append(out, key.FromControl(byte(r)))
			continue
		}
		out = append(out, key.Rune(r))
	}
	return out
}

func special(k key.Key) key.Event {
	return key.NewSpecialEvent(k, key.ModNone)
}

func (f *fakeInput) next() (key.Event, error) {
	if n := len(f.pushed); n > 0 {
		ev := f.pushed[n-1]
		f.pushed = f.pushed[:n-1]
		return ev, nil
	}
	if len(f.in) == 0 {
		return key.Event{}, io.EOF
	}
	ev := f.in[0]
	f.in = f.in[1:]
	return ev, nil
}

func (f *fakeInput) ReadKey() (key.Event, error) { return f.next() }
func (f *fakeInput) ReadRaw() (key.Event, error) { return f.next() }
func (f *fakeInput) Pending() int                { return len(f.in) + len(f.pushed) }

func (f *fakeInput) ReadPastePrefix() bool {
	rest := pasteStart[1:]
	if len(f.in) >= len(rest) {
		var b strings.Builder
		for _, ev := range f.in[:len(rest)] {
			b.WriteString(ev.Literal())
		}
		if b.String() == rest {
			f.in = f.in[len(rest):]
			return true
		}
	}
	f.pushed = append(f.pushed, special(key.KeyEscape))
	return false
}

func (f *fakeInput) ReadPaste() (string, error) {
	var b strings.Builder
	for len(f.in) > 0 {
		ev := f.in[0]
		f.in = f.in[1:]
		if ev.IsEnter() {
			b.WriteByte('\n')
		} else {
			b.WriteString(ev.Literal())
		}
		if s := b.String(); strings.HasSuffix(s, pasteEnd) {
			return strings.TrimSuffix(s, pasteEnd), nil
		}
	}
	return b.String(), io.ErrUnexpectedEOF
}

// fakeDisplay records what the editor asked it to draw.
type fakeDisplay struct {
	prompt   string
	saved    []string
	dings    int
	newlines int
	shown    string
	message  string
}

func (d *fakeDisplay) Redisplay(line *buffer.Line) { d.shown = d.prompt + line.Text() }
func (d *fakeDisplay) Ding()                       { d.dings++ }
func (d *fakeDisplay) Message(msg string)          { d.message = msg }
func (d *fakeDisplay) ClearMessage()               { d.message = "" }
func (d *fakeDisplay) SetPrompt(p string)          { d.prompt = p }
func (d *fakeDisplay) Prompt() string              { return d.prompt }
func (d *fakeDisplay) SavePrompt()                 { d.saved = append(d.saved, d.prompt) }
func (d *fakeDisplay) Newline()                    { d.newlines++ }

func (d *fakeDisplay) RestorePrompt() {
	if len(d.saved) == 0 {
		return
	}
	d.prompt = d.saved[len(d.saved)-1]
	d.saved = d.saved[:len(d.saved)-1]
}

type harness struct {
	hist *history.List
	in   *fakeInput
	disp *fakeDisplay
	ed   *Editor
}

func newHarness(t *testing.T, mode engine.Mode, lines []string, opts ...Option) *harness {
	t.Helper()
	h := &harness{
		hist: history.NewList(),
		in:   &fakeInput{},
		disp: &fakeDisplay{},
	}
	h.hist.Replace(lines)

	ed, err := New(h.hist, h.in, h.disp, append([]Option{WithEditingMode(mode)}, opts...)...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	h.ed = ed
	return h
}

// feed queues events after any keys already pending.
func (h *harness) feed(evs ...[]key.Event) {
	for _, e := range evs {
		h.in.in = append(h.in.in, e...)
	}
}

func (h *harness) readLine(t *testing.T, evs ...[]key.Event) (string, error) {
	t.Helper()
	h.feed(evs...)
	return h.ed.ReadLine("$ ")
}
