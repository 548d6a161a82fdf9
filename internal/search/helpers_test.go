package search

import (
	"errors"
	"io"
	"strings"

	"github.com/dshills/keyline/internal/engine"
	"github.com/dshills/keyline/internal/engine/buffer"
	"github.com/dshills/keyline/internal/history"
	"github.com/dshills/keyline/internal/input/key"
)

var errRaw = errors.New("raw read failed")

// fakeInput feeds runes as key events. Control characters become their
// control key events.
type fakeInput struct {
	in     []rune
	pushed bool
	rawErr error
}

func keys(s string) *fakeInput {
	return &fakeInput{in: []rune(s)}
}

func (f *fakeInput) next() (key.Event, error) {
	if f.pushed {
		f.pushed = false
		return key.NewSpecialEvent(key.KeyEscape, key.ModNone), nil
	}
	if len(f.in) == 0 {
		return key.Event{}, io.EOF
	}
	r := f.in[0]
	f.in = f.in[1:]
	if r < 0x20 || r == 0x7f {
		return key.FromControl(byte(r)), nil
	}
	return key.Rune(r), nil
}

func (f *fakeInput) ReadKey() (key.Event, error) {
	return f.next()
}

func (f *fakeInput) ReadRaw() (key.Event, error) {
	if f.rawErr != nil {
		return key.Event{}, f.rawErr
	}
	return f.next()
}

func (f *fakeInput) Pending() int {
	n := len(f.in)
	if f.pushed {
		n++
	}
	return n
}

func (f *fakeInput) ReadPastePrefix() bool {
	if strings.HasPrefix(string(f.in), "[200~") {
		f.in = f.in[5:]
		return true
	}
	f.pushed = true
	return false
}

func (f *fakeInput) ReadPaste() (string, error) {
	s := string(f.in)
	i := strings.Index(s, "\x1b[201~")
	if i < 0 {
		f.in = nil
		return s, io.ErrUnexpectedEOF
	}
	f.in = []rune(s[i+len("\x1b[201~"):])
	return s[:i], nil
}

// fakeDisplay records what the engine asked it to do.
type fakeDisplay struct {
	prompt  string
	saved   []string
	dings   int
	redraws int
	shown   string
	message string
}

func (d *fakeDisplay) Redisplay(line *buffer.Line) {
	d.redraws++
	d.shown = d.prompt + line.Text()
}

func (d *fakeDisplay) Ding()              { d.dings++ }
func (d *fakeDisplay) Message(msg string) { d.message = msg }
func (d *fakeDisplay) ClearMessage()      { d.message = "" }
func (d *fakeDisplay) SetPrompt(p string) { d.prompt = p }
func (d *fakeDisplay) Prompt() string     { return d.prompt }

func (d *fakeDisplay) SavePrompt() {
	d.saved = append(d.saved, d.prompt)
}

func (d *fakeDisplay) RestorePrompt() {
	if len(d.saved) == 0 {
		return
	}
	d.prompt = d.saved[len(d.saved)-1]
	d.saved = d.saved[:len(d.saved)-1]
}

type harness struct {
	line *buffer.Line
	hist *history.List
	nav  *engine.Engine
	in   *fakeInput
	disp *fakeDisplay
	eng  *Engine
}

func newHarness(mode engine.Mode, lines []string, opts ...Option) *harness {
	h := &harness{
		line: buffer.NewLine(),
		hist: history.NewList(),
		in:   keys(""),
		disp: &fakeDisplay{prompt: "$ "},
	}
	h.hist.Replace(lines)
	h.nav = engine.New(h.line, h.hist, engine.WithMode(mode))
	h.eng = New(h.line, h.hist, h.nav, h.in, h.disp, opts...)
	return h
}

// feed replaces the pending input.
func (h *harness) feed(s string) {
	h.in.in = []rune(s)
	h.in.pushed = false
}

func (h *harness) setLine(text string, point, mark int) {
	h.line.Reset()
	h.line.InsertText(text)
	h.line.SetPoint(point)
	h.line.SetMark(mark)
}
