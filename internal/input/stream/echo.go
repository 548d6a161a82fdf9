package stream

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/dshills/keyline/internal/display"
	"github.com/dshills/keyline/internal/engine/buffer"
)

// Echo draws the prompt and edit line on an ANSI terminal or any writer.
// Each Redisplay rewrites the current row.
type Echo struct {
	mu      sync.Mutex
	w       io.Writer
	prompt  *display.PromptStack
	bell    display.BellStyle
	message string
	err     error
}

// EchoOption configures an Echo.
type EchoOption func(*Echo)

// WithBell sets the bell style.
func WithBell(b display.BellStyle) EchoOption {
	return func(e *Echo) {
		e.bell = b
	}
}

// NewEcho creates an echo display writing to w.
func NewEcho(w io.Writer, opts ...EchoOption) *Echo {
	e := &Echo{w: w, prompt: display.NewPromptStack("")}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Err returns the first write error, if any.
func (e *Echo) Err() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.err
}

func (e *Echo) write(s string) {
	if e.err != nil {
		return
	}
	_, e.err = io.WriteString(e.w, s)
}

// Redisplay redraws the row and puts the cursor at point.
func (e *Echo) Redisplay(line *buffer.Line) {
	e.mu.Lock()
	defer e.mu.Unlock()

	text := line.Text()
	var b strings.Builder
	b.WriteString("\r\x1b[K")
	b.WriteString(display.Visible(e.prompt.Prompt()))

	if line.SelectionActive() {
		start, end := line.Region()
		b.WriteString(display.Visible(text[:start]))
		b.WriteString("\x1b[7m")
		b.WriteString(display.Visible(text[start:end]))
		b.WriteString("\x1b[27m")
		b.WriteString(display.Visible(text[end:]))
	} else {
		b.WriteString(display.Visible(text))
	}

	if back := display.Width(text[line.Point():]); back > 0 {
		fmt.Fprintf(&b, "\x1b[%dD", back)
	}
	e.write(b.String())
}

// Ding rings the bell according to the bell style.
func (e *Echo) Ding() {
	e.mu.Lock()
	defer e.mu.Unlock()
	switch e.bell {
	case display.BellAudible:
		e.write("\a")
	case display.BellVisible:
		e.write("\x1b[?5h\x1b[?5l")
	}
}

// Message shows msg on its own line.
func (e *Echo) Message(msg string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.message = msg
	e.write("\r\x1b[K" + display.Visible(msg) + "\r\n")
}

// ClearMessage forgets the last message.
func (e *Echo) ClearMessage() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.message = ""
}

// LastMessage returns the message shown most recently.
func (e *Echo) LastMessage() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.message
}

// SavePrompt pushes the current prompt.
func (e *Echo) SavePrompt() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.prompt.Save()
}

// RestorePrompt pops the saved prompt.
func (e *Echo) RestorePrompt() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.prompt.Restore()
}

// SetPrompt replaces the prompt.
func (e *Echo) SetPrompt(prompt string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.prompt.SetPrompt(prompt)
}

// Prompt returns the current prompt.
func (e *Echo) Prompt() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.prompt.Prompt()
}

// Println ends the edit row and writes s on a line of its own.
func (e *Echo) Println(s string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.write("\r\n" + s + "\r\n")
}

// Newline ends the edit row.
func (e *Echo) Newline() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.write("\r\n")
}
