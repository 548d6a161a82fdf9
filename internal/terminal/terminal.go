package terminal

import (
	"errors"
	"io"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/dshills/keyline/internal/display"
	"github.com/dshills/keyline/internal/engine/buffer"
	"github.com/dshills/keyline/internal/input/key"
)

// pasteMarkerLen is the number of units a paste start marker occupies
// after its Escape.
const pasteMarkerLen = len("[200~")

// ErrUnexpectedEvent is returned when a paste ends without its end event.
var ErrUnexpectedEvent = errors.New("paste interrupted")

// Terminal is a tcell-backed key source and display.
type Terminal struct {
	mu sync.Mutex

	screen tcell.Screen
	prompt *display.PromptStack
	bell   display.BellStyle

	message    string
	flash      bool
	transcript []string
	line       *buffer.Line

	pushed       []key.Event
	pasteStarted bool
}

// Option configures a Terminal.
type Option func(*Terminal)

// WithBell sets the bell style.
func WithBell(b display.BellStyle) Option {
	return func(t *Terminal) {
		t.bell = b
	}
}

// WithScreen uses screen instead of the default terminal screen.
func WithScreen(screen tcell.Screen) Option {
	return func(t *Terminal) {
		t.screen = screen
	}
}

// New creates a terminal. The screen is not initialized until Init.
func New(opts ...Option) (*Terminal, error) {
	t := &Terminal{prompt: display.NewPromptStack("")}
	for _, opt := range opts {
		opt(t)
	}
	if t.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return nil, err
		}
		t.screen = screen
	}
	return t, nil
}

// Init initializes the screen and enables bracketed paste.
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.EnablePaste()
	return nil
}

// Shutdown restores the terminal.
func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Fini()
}

// ReadKey blocks for the next key. It returns io.EOF once the screen
// has been shut down.
func (t *Terminal) ReadKey() (key.Event, error) {
	t.mu.Lock()
	if ev, ok := t.popPushed(); ok {
		t.mu.Unlock()
		return ev, nil
	}
	t.mu.Unlock()

	for {
		switch ev := t.screen.PollEvent().(type) {
		case nil:
			return key.Event{}, io.EOF
		case *tcell.EventKey:
			return convertKey(ev), nil
		case *tcell.EventPaste:
			if ev.Start() {
				t.mu.Lock()
				t.pasteStarted = true
				t.mu.Unlock()
				return key.NewSpecialEvent(key.KeyEscape, key.ModNone), nil
			}
		case *tcell.EventResize:
			t.screen.Sync()
			t.mu.Lock()
			t.draw()
			t.mu.Unlock()
		}
	}
}

// ReadRaw returns the next key. tcell has already decoded sequences, so
// this differs from ReadKey only in taking the pushed-back key first.
func (t *Terminal) ReadRaw() (key.Event, error) {
	return t.ReadKey()
}

// Pending reports whether input is queued. A started paste counts as
// its whole start marker.
func (t *Terminal) Pending() int {
	t.mu.Lock()
	n := len(t.pushed)
	if t.pasteStarted {
		n += pasteMarkerLen
	}
	t.mu.Unlock()

	if t.screen.HasPendingEvent() {
		n++
	}
	return n
}

// ReadPastePrefix reports whether the last Escape began a paste.
func (t *Terminal) ReadPastePrefix() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.pasteStarted {
		t.pasteStarted = false
		return true
	}
	t.pushed = append(t.pushed, key.NewSpecialEvent(key.KeyEscape, key.ModNone))
	return false
}

// ReadPaste collects pasted keys up to the paste end event.
func (t *Terminal) ReadPaste() (string, error) {
	var b strings.Builder
	for {
		switch ev := t.screen.PollEvent().(type) {
		case nil:
			return b.String(), ErrUnexpectedEvent
		case *tcell.EventKey:
			k := convertKey(ev)
			if k.IsEnter() {
				b.WriteByte('\n')
			} else {
				b.WriteString(k.Literal())
			}
		case *tcell.EventPaste:
			if !ev.Start() {
				return b.String(), nil
			}
		}
	}
}

func (t *Terminal) popPushed() (key.Event, bool) {
	if len(t.pushed) == 0 {
		return key.Event{}, false
	}
	ev := t.pushed[len(t.pushed)-1]
	t.pushed = t.pushed[:len(t.pushed)-1]
	return ev, true
}

// Redisplay draws line after the current prompt.
func (t *Terminal) Redisplay(line *buffer.Line) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.line = line
	t.flash = false
	t.draw()
}

// Ding rings the bell according to the bell style.
func (t *Terminal) Ding() {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch t.bell {
	case display.BellAudible:
		_ = t.screen.Beep()
	case display.BellVisible:
		t.flash = true
		t.draw()
	}
}

// Message shows msg on the message row.
func (t *Terminal) Message(msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.message = msg
	t.draw()
}

// ClearMessage blanks the message row.
func (t *Terminal) ClearMessage() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.message = ""
	t.draw()
}

// SavePrompt pushes the current prompt.
func (t *Terminal) SavePrompt() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.prompt.Save()
}

// RestorePrompt pops the saved prompt.
func (t *Terminal) RestorePrompt() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.prompt.Restore()
}

// SetPrompt replaces the prompt.
func (t *Terminal) SetPrompt(prompt string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.prompt.SetPrompt(prompt)
}

// Prompt returns the current prompt.
func (t *Terminal) Prompt() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.prompt.Prompt()
}

// Println appends s to the transcript.
func (t *Terminal) Println(s string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.transcript = append(t.transcript, strings.Split(s, "\n")...)
	if _, h := t.screen.Size(); h > 2 && len(t.transcript) > h-2 {
		t.transcript = t.transcript[len(t.transcript)-(h-2):]
	}
	t.draw()
}

// Newline ends the edit row. The accepted line stays out of the
// transcript unless printed.
func (t *Terminal) Newline() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.line = nil
	t.draw()
}

// draw repaints the whole screen. Callers hold t.mu.
func (t *Terminal) draw() {
	w, h := t.screen.Size()
	if w <= 0 || h <= 0 {
		return
	}
	t.screen.Clear()

	inputRow, messageRow := h-2, h-1
	if h == 1 {
		inputRow, messageRow = 0, -1
	}

	first := inputRow - len(t.transcript)
	for i, s := range t.transcript {
		if y := first + i; y >= 0 {
			t.drawText(0, y, w, display.Visible(s), tcell.StyleDefault)
		}
	}

	if messageRow >= 0 {
		style := tcell.StyleDefault
		if t.flash {
			style = style.Reverse(true)
			for x := 0; x < w; x++ {
				t.screen.SetContent(x, messageRow, ' ', nil, style)
			}
		}
		t.drawText(0, messageRow, w, display.Visible(t.message), style)
	}

	x := t.drawText(0, inputRow, w, display.Visible(t.prompt.Prompt()), tcell.StyleDefault)
	if t.line == nil {
		t.screen.ShowCursor(x, inputRow)
		t.screen.Show()
		return
	}

	text := t.line.Text()
	start, end := len(text), len(text)
	if t.line.SelectionActive() {
		start, end = t.line.Region()
	}
	cursor := x + display.Width(text[:t.line.Point()])

	x = t.drawText(x, inputRow, w, display.Visible(text[:start]), tcell.StyleDefault)
	x = t.drawText(x, inputRow, w, display.Visible(text[start:end]), tcell.StyleDefault.Reverse(true))
	t.drawText(x, inputRow, w, display.Visible(text[end:]), tcell.StyleDefault)

	if cursor >= w {
		cursor = w - 1
	}
	t.screen.ShowCursor(cursor, inputRow)
	t.screen.Show()
}

// drawText writes s from column x and returns the column after it.
func (t *Terminal) drawText(x, y, w int, s string, style tcell.Style) int {
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if x+rw > w {
			break
		}
		t.screen.SetContent(x, y, r, nil, style)
		x += rw
	}
	return x
}
