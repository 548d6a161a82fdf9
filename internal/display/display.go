// Package display holds the pieces shared by the terminal backends: the
// prompt stack used while a search prompt is shown, bell styles, and
// column math for placing the cursor.
package display

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// BellStyle selects how Ding is rendered.
type BellStyle uint8

const (
	BellAudible BellStyle = iota
	BellVisible
	BellNone
)

// String returns the bell style name.
func (b BellStyle) String() string {
	switch b {
	case BellVisible:
		return "visible"
	case BellNone:
		return "none"
	default:
		return "audible"
	}
}

// ParseBell converts a bell style name.
func ParseBell(s string) (BellStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "audible":
		return BellAudible, nil
	case "visible":
		return BellVisible, nil
	case "none", "off":
		return BellNone, nil
	default:
		return BellAudible, fmt.Errorf("unknown bell style %q", s)
	}
}

// PromptStack is the current prompt plus prompts saved beneath it.
type PromptStack struct {
	current string
	saved   []string
}

// NewPromptStack starts with the given prompt.
func NewPromptStack(prompt string) *PromptStack {
	return &PromptStack{current: prompt}
}

// Prompt returns the prompt being shown.
func (p *PromptStack) Prompt() string {
	return p.current
}

// SetPrompt replaces the current prompt.
func (p *PromptStack) SetPrompt(prompt string) {
	p.current = prompt
}

// Save pushes the current prompt.
func (p *PromptStack) Save() {
	p.saved = append(p.saved, p.current)
}

// Restore pops the last saved prompt. Without one it does nothing.
func (p *PromptStack) Restore() {
	if len(p.saved) == 0 {
		return
	}
	p.current = p.saved[len(p.saved)-1]
	p.saved = p.saved[:len(p.saved)-1]
}

// Depth returns the number of saved prompts.
func (p *PromptStack) Depth() int {
	return len(p.saved)
}

// Width returns the number of terminal columns s occupies. Control
// characters are shown in caret notation and take two columns.
func Width(s string) int {
	w := 0
	for _, r := range s {
		w += RuneWidth(r)
	}
	return w
}

// RuneWidth returns the columns one rune occupies on screen.
func RuneWidth(r rune) int {
	if r < 0x20 || r == 0x7f {
		return 2
	}
	return runewidth.RuneWidth(r)
}

// Visible renders control characters in caret notation, as readline
// shows them.
func Visible(s string) string {
	if !strings.ContainsFunc(s, isControl) {
		return s
	}
	var b strings.Builder
	for _, r := range s {
		switch {
		case r == 0x7f:
			b.WriteString("^?")
		case r < 0x20:
			b.WriteByte('^')
			b.WriteRune(r + '@')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isControl(r rune) bool {
	return r < 0x20 || r == 0x7f
}
