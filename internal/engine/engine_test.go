package engine

import (
	"errors"
	"testing"

	"github.com/dshills/keyline/internal/engine/buffer"
	"github.com/dshills/keyline/internal/history"
)

func newTestEngine(mode Mode, lines ...string) *Engine {
	hist := history.NewList()
	hist.Replace(lines)
	return New(buffer.NewLine(), hist, WithMode(mode))
}

func TestEnginePreviousNext(t *testing.T) {
	e := newTestEngine(ModeEmacs, "one", "two", "three")
	e.Line().InsertText("draft")

	if !e.Previous(1) || e.Line().Text() != "three" {
		t.Fatalf("Previous(1): %q", e.Line().Text())
	}
	if e.Line().Point() != len("three") || e.Line().Mark() != 0 {
		t.Errorf("loaded line point=%d mark=%d", e.Line().Point(), e.Line().Mark())
	}

	if !e.Previous(5) || e.Line().Text() != "one" {
		t.Errorf("Previous(5) should stop at the oldest line, got %q", e.Line().Text())
	}
	if e.Previous(1) {
		t.Error("Previous at the oldest line should report false")
	}

	if !e.Next(1) || e.Line().Text() != "two" {
		t.Errorf("Next(1): %q", e.Line().Text())
	}
	if !e.Next(10) || e.Line().Text() != "draft" {
		t.Errorf("returning to the edit slot should restore the draft, got %q", e.Line().Text())
	}
	if e.History().Position() != 3 {
		t.Errorf("Position() = %d, want 3", e.History().Position())
	}
	if e.Next(1) {
		t.Error("Next at the edit slot should report false")
	}
}

func TestEngineNegativeCount(t *testing.T) {
	e := newTestEngine(ModeEmacs, "one", "two")
	if !e.Next(-2) || e.Line().Text() != "one" {
		t.Errorf("Next(-2) = %q, want one", e.Line().Text())
	}
	if !e.Previous(-1) || e.Line().Text() != "two" {
		t.Errorf("Previous(-1) = %q, want two", e.Line().Text())
	}
	if !e.Previous(0) {
		t.Error("zero count is a no-op success")
	}
}

func TestEngineMakeCurrent(t *testing.T) {
	tests := []struct {
		name    string
		mode    Mode
		curpos  int
		newpos  int
		undoLen int
	}{
		{"emacs backward", ModeEmacs, 3, 0, 1},
		{"vi backward", ModeVi, 3, 0, 0},
		{"emacs forward", ModeEmacs, 0, 2, 1},
		{"vi same position", ModeVi, 1, 1, 0},
	}

	lines := []string{"foo bar", "baz", "foo qux"}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(tt.mode, lines...)
			e.History().SetPosition(tt.curpos)
			e.Line().InsertText("typed")
			e.Line().DiscardUndo()

			e.MakeCurrent(tt.curpos, tt.newpos)

			want, _ := e.History().At(tt.newpos)
			if e.Line().Text() != want {
				t.Errorf("line = %q, want %q", e.Line().Text(), want)
			}
			if e.History().Position() != tt.newpos {
				t.Errorf("Position() = %d, want %d", e.History().Position(), tt.newpos)
			}
			if e.Line().UndoLen() != tt.undoLen {
				t.Errorf("UndoLen() = %d, want %d", e.Line().UndoLen(), tt.undoLen)
			}
		})
	}
}

func TestEngineUndoHistoryLoad(t *testing.T) {
	e := newTestEngine(ModeEmacs, "ls -l")
	e.Line().InsertText("pw")
	e.Previous(1)
	if err := e.Line().Undo(); err != nil {
		t.Fatal(err)
	}
	if e.Line().Text() != "pw" {
		t.Errorf("undoing the history load should bring back %q, got %q", "pw", e.Line().Text())
	}
}

func TestEngineReset(t *testing.T) {
	e := newTestEngine(ModeEmacs, "a")
	e.Previous(1)
	e.Reset()
	if e.Line().Len() != 0 || e.History().Position() != 1 || e.Saved() != nil {
		t.Error("Reset should clear the line, move past the end and drop the saved line")
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
		err  bool
	}{
		{"emacs", ModeEmacs, false},
		{"VI", ModeVi, false},
		{"", ModeEmacs, false},
		{"ed", ModeEmacs, true},
	}

	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.err {
			t.Errorf("ParseMode(%q) error = %v", tt.in, err)
			continue
		}
		if err != nil && !errors.Is(err, ErrUnknownMode) {
			t.Errorf("ParseMode(%q) error should wrap ErrUnknownMode", tt.in)
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
