package pkombi

// Cursor is an immutable offset into a source string, marking what remains
// to be parsed. Advancing returns a new cursor; the receiver is never
// touched, so an earlier cursor can always be reused to backtrack.
//
// The engine is byte oriented: one cursor step is one byte of ASCII input.
type Cursor struct {
	src string
	off int
}

// NewCursor returns a cursor over src positioned at offset 0.
func NewCursor(src string) Cursor {
	return Cursor{src: src}
}

// Peek returns the byte at the current offset. The second result is false
// when the cursor is at the end of the input.
func (c Cursor) Peek() (byte, bool) {
	if c.off >= len(c.src) {
		return 0, false
	}
	return c.src[c.off], true
}

// Advance returns a cursor one byte past the receiver, clamped at the end
// of the input.
func (c Cursor) Advance() Cursor {
	if c.off >= len(c.src) {
		return c
	}
	return Cursor{src: c.src, off: c.off + 1}
}

// Pos returns the byte offset into the input.
func (c Cursor) Pos() int {
	return c.off
}

// AtEnd reports whether the whole input has been consumed.
func (c Cursor) AtEnd() bool {
	return c.off >= len(c.src)
}

// Rest returns the unconsumed remainder of the input.
func (c Cursor) Rest() string {
	return c.src[c.off:]
}

// Len returns the total length of the underlying input.
func (c Cursor) Len() int {
	return len(c.src)
}
