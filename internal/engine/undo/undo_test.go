package undo

import (
	"errors"
	"testing"
)

func TestOperationKinds(t *testing.T) {
	tests := []struct {
		name     string
		op       Operation
		insert   bool
		delete   bool
		expected int
	}{
		{"insert", NewInsertOperation(0, "hello"), true, false, 5},
		{"delete", NewDeleteOperation(0, "hello"), false, true, -5},
		{"replace", NewReplaceOperation(0, "abc", "hello"), false, false, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.op.IsInsert() != tt.insert || tt.op.IsDelete() != tt.delete {
				t.Errorf("kind mismatch for %+v", tt.op)
			}
			if got := tt.op.BytesDelta(); got != tt.expected {
				t.Errorf("BytesDelta() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestOperationRevert(t *testing.T) {
	op := NewReplaceOperation(4, "bar", "quux")
	got, ok := op.Revert("foo quux baz")
	if !ok || got != "foo bar baz" {
		t.Errorf("Revert() = %q, %v", got, ok)
	}

	if _, ok := op.Revert("short"); ok {
		t.Error("Revert should fail when the new text is not present")
	}
}

func TestLogPushPop(t *testing.T) {
	l := NewLog(0)
	if _, err := l.Pop(); !errors.Is(err, ErrNothingToUndo) {
		t.Fatalf("Pop on empty log = %v, want ErrNothingToUndo", err)
	}

	l.Push(NewInsertOperation(0, "a"))
	l.Push(NewInsertOperation(1, "b"))
	if l.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", l.Len())
	}

	ops, err := l.Pop()
	if err != nil {
		t.Fatal(err)
	}
	if len(ops) != 1 || ops[0].New != "b" {
		t.Errorf("Pop() = %+v, want the last insert", ops)
	}
}

func TestLogGroup(t *testing.T) {
	l := NewLog(10)
	l.BeginGroup()
	l.BeginGroup() // nested calls are ignored
	l.Push(NewDeleteOperation(0, "old"))
	l.Push(NewInsertOperation(0, "new"))
	l.EndGroup()

	if l.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 grouped unit", l.Len())
	}
	ops, _ := l.Pop()
	if len(ops) != 2 || ops[0].New != "new" || ops[1].Old != "old" {
		t.Errorf("group should pop newest first, got %+v", ops)
	}

	l.BeginGroup()
	l.EndGroup()
	if l.Len() != 0 {
		t.Error("empty group should not create an entry")
	}
}

func TestLogMaxEntries(t *testing.T) {
	l := NewLog(2)
	for _, s := range []string{"a", "b", "c"} {
		l.Push(NewInsertOperation(0, s))
	}
	if l.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", l.Len())
	}
	ops, _ := l.Pop()
	ops2, _ := l.Pop()
	if ops[0].New != "c" || ops2[0].New != "b" {
		t.Error("oldest entry should have been dropped")
	}
}

func TestLogClearAndClone(t *testing.T) {
	l := NewLog(10)
	l.Push(NewInsertOperation(0, "a"))
	c := l.Clone()

	l.Clear()
	if l.Len() != 0 {
		t.Error("Clear should empty the log")
	}
	if c.Len() != 1 {
		t.Error("clone should be independent of the original")
	}
}
