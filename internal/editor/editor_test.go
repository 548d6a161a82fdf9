package editor

import (
	"errors"
	"io"
	"testing"

	"github.com/dshills/keyline/internal/engine"
	"github.com/dshills/keyline/internal/input/key"
	"github.com/dshills/keyline/internal/input/keymap"
	"github.com/dshills/keyline/internal/search"
)

func TestReadLineEditing(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "hello\r", "hello"},
		{"backward char insert", "helo\x02l\r", "hello"},
		{"rubout", "helloo\x7f\r", "hello"},
		{"c-h rubout", "hellx\x08o\r", "hello"},
		{"delete char", "xhello\x01\x04\r", "hello"},
		{"word rubout", "echo hello\x17world\r", "echo world"},
		{"line discard", "junk\x15ok\r", "ok"},
		{"end of line", "ello\x01h\x05!\r", "hello!"},
		{"forward char", "hlo\x01\x06el\r", "hello"},
		{"undo", "abc\x17\x1f\r", "abc"},
		{"c-j accepts", "done\x0a", "done"},
		{"quoted insert", "a\x11\x07\r", "a\x07"},
		{"multibyte rubout", "café\x7fe\r", "cafe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, engine.ModeEmacs, nil)
			got, err := h.readLine(t, runes(tt.input))
			if err != nil {
				t.Fatalf("ReadLine() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ReadLine() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReadLineAddsHistory(t *testing.T) {
	var accepted []string
	h := newHarness(t, engine.ModeEmacs, []string{"old"}, WithOnAccept(func(line string) {
		accepted = append(accepted, line)
	}))

	if _, err := h.readLine(t, runes("new\r")); err != nil {
		t.Fatal(err)
	}
	if h.hist.Len() != 2 {
		t.Fatalf("history length = %d, want 2", h.hist.Len())
	}
	if last, _ := h.hist.At(1); last != "new" {
		t.Errorf("last history line = %q", last)
	}
	if len(accepted) != 1 || accepted[0] != "new" {
		t.Errorf("onAccept saw %v", accepted)
	}
	if h.disp.newlines != 1 {
		t.Errorf("Newline called %d times", h.disp.newlines)
	}
	if h.ed.Metrics().Snapshot().LinesAccepted != 1 {
		t.Error("accepted lines should be counted")
	}
}

func TestReadLineEndings(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"c-d on empty line", "\x04", io.EOF},
		{"end of input", "partial", io.EOF},
		{"interrupt", "abc\x03", ErrInterrupted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, engine.ModeEmacs, nil)
			_, err := h.readLine(t, runes(tt.input))
			if !errors.Is(err, tt.want) {
				t.Errorf("ReadLine() error = %v, want %v", err, tt.want)
			}
			if h.hist.Len() != 0 {
				t.Error("an unfinished line must not reach history")
			}
			if h.ed.Reading() {
				t.Error("the editor should stop reading")
			}
		})
	}
}

func TestHistoryBrowsingKeepsDraft(t *testing.T) {
	h := newHarness(t, engine.ModeEmacs, []string{"one", "two"})

	got, err := h.readLine(t, runes("draft\x10\x10"), []key.Event{special(key.KeyDown), special(key.KeyDown)}, runes("\r"))
	if err != nil {
		t.Fatal(err)
	}
	if got != "draft" {
		t.Errorf("ReadLine() = %q, want the restored draft", got)
	}
}

func TestHistoryBrowsingEdges(t *testing.T) {
	h := newHarness(t, engine.ModeEmacs, []string{"one"})

	got, err := h.readLine(t, runes("\x10\x10\r"))
	if err != nil {
		t.Fatal(err)
	}
	if got != "one" {
		t.Errorf("ReadLine() = %q", got)
	}
	if h.disp.dings != 1 {
		t.Errorf("dings = %d, want 1 for moving past the oldest line", h.disp.dings)
	}
}

func TestNonIncrementalSearch(t *testing.T) {
	hist := []string{"make build", "go test", "make lint"}

	tests := []struct {
		name  string
		input string
		want  string
		dings int
	}{
		{"reverse search", "\x1bpbuild\r\r", "make build", 0},
		{"most recent match first", "\x1bpmake\r\r", "make lint", 0},
		{"search again", "\x1bpmake\r\x1bP\r", "make build", 0},
		{"miss keeps draft", "draft\x1bpnope\r\r", "draft", 1},
		{"abort keeps draft", "draft\x1bpgo\x07\r", "draft", 1},
		{"forward search finds nothing past the end", "\x1bnmake\r\r", "", 1},
		{"again without a string", "\x1bP\r", "", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, engine.ModeEmacs, hist)
			got, err := h.readLine(t, runes(tt.input))
			if err != nil {
				t.Fatalf("ReadLine() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ReadLine() = %q, want %q", got, tt.want)
			}
			if h.disp.dings != tt.dings {
				t.Errorf("dings = %d, want %d", h.disp.dings, tt.dings)
			}
			if h.disp.prompt != "$ " {
				t.Errorf("prompt = %q, want it restored", h.disp.prompt)
			}
		})
	}
}

func TestSearchStringPersistsAcrossLines(t *testing.T) {
	tests := []struct {
		name  string
		hist  []string
		first string
		want  string
		dings int
	}{
		{"older match", []string{"make a", "x", "make b"}, "make b", "make a", 0},
		{"nothing older", []string{"make a", "x"}, "make a", "", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, engine.ModeEmacs, tt.hist)

			got, err := h.readLine(t, runes("\x1bpmake\r\r"))
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.first {
				t.Fatalf("first search = %q, want %q", got, tt.first)
			}

			// An empty string reuses "make" from the last match.
			got, err = h.readLine(t, runes("\x1bp\r\r"))
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("repeated search = %q, want %q", got, tt.want)
			}
			if h.disp.dings != tt.dings {
				t.Errorf("dings = %d, want %d", h.disp.dings, tt.dings)
			}
		})
	}
}

func TestSearchActiveRegion(t *testing.T) {
	h := newHarness(t, engine.ModeEmacs, []string{"go test ./..."})

	h.ed.Begin("$ ")
	h.feed(runes("\x1bptest\r"))
	for h.in.Pending() > 0 {
		if done, _, err := h.ed.Feed(); done {
			t.Fatalf("Feed() finished early: %v", err)
		}
	}

	line := h.ed.Line()
	if !line.SelectionActive() {
		t.Fatal("a substring match should activate the region")
	}
	if start, end := line.Region(); start != 3 || end != 7 {
		t.Errorf("Region() = %d, %d, want 3, 7", start, end)
	}

	h.feed(runes("\x05"))
	h.ed.Feed()
	if line.SelectionActive() {
		t.Error("the next command should deactivate the region")
	}
}

func TestCallbackModeSearch(t *testing.T) {
	h := newHarness(t, engine.ModeEmacs, []string{"alpha", "beta"})

	h.ed.Begin("$ ")
	h.feed(runes("\x1bp"))
	if done, _, _ := h.ed.Feed(); done {
		t.Fatal("Feed() should not finish the line")
	}
	if !h.ed.Search().Active() {
		t.Fatal("M-p should leave a search active in callback mode")
	}
	if h.disp.prompt != ":" {
		t.Errorf("prompt = %q, want the search prompt", h.disp.prompt)
	}

	h.feed(runes("b\r"))
	h.ed.Feed()
	h.ed.Feed()
	if h.ed.Search().Active() {
		t.Fatal("RET should finish the search")
	}
	if h.ed.Line().Text() != "beta" {
		t.Errorf("line = %q, want beta", h.ed.Line().Text())
	}

	h.feed(runes("\r"))
	done, line, err := h.ed.Feed()
	if !done || line != "beta" || err != nil {
		t.Errorf("Feed() = %v, %q, %v", done, line, err)
	}

	if done, _, err := h.ed.Feed(); !done || !errors.Is(err, ErrNotReading) {
		t.Errorf("Feed() after the line = %v, %v, want ErrNotReading", done, err)
	}
}

func TestPrefixSearch(t *testing.T) {
	hist := []string{"git status", "go build", "git commit"}
	pageUp := []key.Event{special(key.KeyPageUp)}

	t.Run("repeated keys keep the prefix", func(t *testing.T) {
		h := newHarness(t, engine.ModeEmacs, hist)
		got, err := h.readLine(t, runes("git"), pageUp, pageUp, runes("\r"))
		if err != nil {
			t.Fatal(err)
		}
		if got != "git status" {
			t.Errorf("ReadLine() = %q, want git status", got)
		}
	})

	t.Run("another command resets the prefix", func(t *testing.T) {
		h := newHarness(t, engine.ModeEmacs, hist)
		got, err := h.readLine(t, runes("git"), pageUp, runes("\x05"), pageUp, runes("\r"))
		if err != nil {
			t.Fatal(err)
		}
		if got != "git commit" {
			t.Errorf("ReadLine() = %q, want git commit", got)
		}
		if h.disp.dings != 1 {
			t.Errorf("dings = %d, want 1", h.disp.dings)
		}
	})

	t.Run("substring search", func(t *testing.T) {
		h := newHarness(t, engine.ModeEmacs, hist)
		altUp := []key.Event{key.NewSpecialEvent(key.KeyUp, key.ModMeta)}
		got, err := h.readLine(t, runes("build"), altUp, runes("\r"))
		if err != nil {
			t.Fatal(err)
		}
		if got != "go build" {
			t.Errorf("ReadLine() = %q, want go build", got)
		}
	})

	t.Run("last command tracking", func(t *testing.T) {
		h := newHarness(t, engine.ModeEmacs, hist)
		h.ed.Begin("$ ")
		h.feed(runes("git"), pageUp)
		for i := 0; i < 4; i++ {
			h.ed.Feed()
		}
		if h.ed.LastCommand() != search.CmdHistorySearchBackward {
			t.Errorf("LastCommand() = %v", h.ed.LastCommand())
		}
		h.feed(runes("\x01"))
		h.ed.Feed()
		if h.ed.LastCommand() != search.CmdNone {
			t.Errorf("LastCommand() = %v after C-a", h.ed.LastCommand())
		}
	})
}

func TestNumericArgument(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"repeat insert", "\x1b3x\r", "xxx"},
		{"two digits", "\x1b1\x1b2-\r", "------------"},
		{"repeat rubout", "abcdef\x1b3\x7f\r", "abc"},
		{"negative motion", "abcd\x01\x1b-\x02X\r", "aXbcd"},
		{"zero inserts nothing", "\x1b0x\r", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, engine.ModeEmacs, nil)
			got, err := h.readLine(t, runes(tt.input))
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("ReadLine() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNumericArgumentMessage(t *testing.T) {
	h := newHarness(t, engine.ModeEmacs, nil)
	h.ed.Begin("$ ")
	h.feed(runes("\x1b4"))
	h.ed.Feed()
	if h.disp.message != "(arg: 4)" {
		t.Errorf("message = %q", h.disp.message)
	}
	h.feed(runes("z"))
	h.ed.Feed()
	if h.disp.message != "" {
		t.Errorf("message = %q after the command", h.disp.message)
	}
	if h.ed.Line().Text() != "zzzz" {
		t.Errorf("line = %q", h.ed.Line().Text())
	}
}

func TestBracketedPaste(t *testing.T) {
	h := newHarness(t, engine.ModeEmacs, nil)

	got, err := h.readLine(t, runes("> "+pasteStart+"one\rtwo"+pasteEnd+"\r"))
	if err != nil {
		t.Fatal(err)
	}
	if got != "> one\ntwo" {
		t.Errorf("ReadLine() = %q", got)
	}
}

func TestBracketedPasteUndoesAsOne(t *testing.T) {
	h := newHarness(t, engine.ModeEmacs, nil)

	got, err := h.readLine(t, runes("x"+pasteStart+"pasted"+pasteEnd+"\x1f\r"))
	if err != nil {
		t.Fatal(err)
	}
	if got != "x" {
		t.Errorf("ReadLine() = %q, want the paste undone", got)
	}
}

func TestUnboundKeyDings(t *testing.T) {
	h := newHarness(t, engine.ModeEmacs, nil)

	got, err := h.readLine(t, runes("ab\t\r"))
	if err != nil {
		t.Fatal(err)
	}
	if got != "ab" || h.disp.dings != 1 {
		t.Errorf("ReadLine() = %q dings = %d", got, h.disp.dings)
	}
	if h.ed.Metrics().Snapshot().UnboundKeys != 1 {
		t.Error("unbound key should be counted")
	}
}

func TestBindAndRun(t *testing.T) {
	h := newHarness(t, engine.ModeEmacs, []string{"make lint"})

	if err := h.ed.Bind("C-r", keymap.ActionNonincReverseSearch); err != nil {
		t.Fatalf("Bind() error = %v", err)
	}
	got, err := h.readLine(t, runes("\x12lint\r\r"))
	if err != nil {
		t.Fatal(err)
	}
	if got != "make lint" {
		t.Errorf("ReadLine() = %q", got)
	}

	if err := h.ed.Run("no-such-command", 1); !errors.Is(err, ErrUnknownAction) {
		t.Errorf("Run() error = %v, want ErrUnknownAction", err)
	}

	h.ed.Begin("$ ")
	h.ed.Line().InsertText("abc")
	if err := h.ed.Run(keymap.ActionBeginningOfLine, 1); err != nil {
		t.Fatal(err)
	}
	if err := h.ed.Run(keymap.ActionForwardChar, 2); err != nil {
		t.Fatal(err)
	}
	if h.ed.Line().Point() != 2 {
		t.Errorf("Point() = %d, want 2", h.ed.Line().Point())
	}
}
