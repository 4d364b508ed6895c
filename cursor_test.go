package pkombi

import "testing"

func TestCursorPeekAndAdvance(t *testing.T) {
	c := NewCursor("ab")

	b, ok := c.Peek()
	if !ok || b != 'a' {
		t.Fatalf("Peek() = %q, %v, want 'a', true", b, ok)
	}

	next := c.Advance()
	if next.Pos() != 1 {
		t.Errorf("advanced Pos() = %d, want 1", next.Pos())
	}
	if c.Pos() != 0 {
		t.Errorf("original cursor moved to %d, want 0", c.Pos())
	}

	b, ok = next.Peek()
	if !ok || b != 'b' {
		t.Fatalf("Peek() after advance = %q, %v, want 'b', true", b, ok)
	}
}

func TestCursorAtEnd(t *testing.T) {
	c := NewCursor("x").Advance()

	if !c.AtEnd() {
		t.Error("expected AtEnd after consuming the input")
	}
	if _, ok := c.Peek(); ok {
		t.Error("Peek at end reported a byte")
	}
	if c.Advance().Pos() != 1 {
		t.Errorf("Advance past end moved to %d, want 1", c.Advance().Pos())
	}
}

func TestCursorEmptyInput(t *testing.T) {
	c := NewCursor("")
	if !c.AtEnd() {
		t.Error("expected AtEnd on empty input")
	}
	if c.Len() != 0 || c.Rest() != "" {
		t.Errorf("Len() = %d, Rest() = %q, want 0 and empty", c.Len(), c.Rest())
	}
}

func TestCursorRest(t *testing.T) {
	c := NewCursor("abc").Advance()
	if c.Rest() != "bc" {
		t.Errorf("Rest() = %q, want %q", c.Rest(), "bc")
	}
}
