package pkombi

// Primitive parsers. Each consumes exactly one byte on success (End
// consumes zero but only matches at the end of input) and never advances
// the cursor on failure.

type satisfyParser struct {
	want   string
	reason Reason
	pred   func(byte) bool
}

func (p satisfyParser) Parse(in Cursor) Result[byte] {
	b, ok := in.Peek()
	if !ok {
		return Fail[byte](in, EndOfInput, p.want)
	}
	if !p.pred(b) {
		return Fail[byte](in, p.reason, p.want)
	}
	return Match(b, in.Advance())
}

// Satisfy matches any single byte for which pred returns true. want names
// what the predicate accepts and appears in failure messages.
func Satisfy(want string, pred func(byte) bool) Parser[byte] {
	return satisfyParser{want: want, reason: Expected, pred: pred}
}

// Char matches exactly the byte c.
func Char(c byte) Parser[byte] {
	return satisfyParser{
		want:   string(c),
		reason: UnexpectedChar,
		pred:   func(b byte) bool { return b == c },
	}
}

// AnyChar matches any single byte. It fails only at the end of input.
func AnyChar() Parser[byte] {
	return satisfyParser{
		want: "any character",
		pred: func(byte) bool { return true },
	}
}

type digitParser struct{}

func (digitParser) Parse(in Cursor) Result[int] {
	b, ok := in.Peek()
	if !ok {
		return Fail[int](in, EndOfInput, "digit")
	}
	if b < '0' || b > '9' {
		return Fail[int](in, ExpectedDigit, "digit")
	}
	return Match(int(b-'0'), in.Advance())
}

// Digit matches a single ASCII digit '0'..'9' and yields its numeric
// value 0..9.
func Digit() Parser[int] {
	return digitParser{}
}

type endParser struct{}

func (endParser) Parse(in Cursor) Result[Unit] {
	if !in.AtEnd() {
		return Fail[Unit](in, Expected, "end of input")
	}
	return Match(Unit{}, in)
}

// End matches only at the end of input, consuming nothing. Sequence a
// grammar with End to require full consumption of the input.
func End() Parser[Unit] {
	return endParser{}
}
