package pkombi

import "fmt"

// Reason classifies why a parser failed to match.
type Reason int

const (
	// EndOfInput means the parser needed a byte but the input was exhausted.
	EndOfInput Reason = iota
	// UnexpectedChar means the byte at the cursor was not the one required.
	UnexpectedChar
	// ExpectedDigit means the byte at the cursor was not in '0'..'9'.
	ExpectedDigit
	// Expected is the user-extensible reason; Failure.Want names what was
	// expected.
	Expected
)

var reasonNames = map[Reason]string{
	EndOfInput:     "end of input",
	UnexpectedChar: "unexpected character",
	ExpectedDigit:  "expected digit",
	Expected:       "expected",
}

func (r Reason) String() string {
	if name, ok := reasonNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Reason(%d)", int(r))
}

// Failure records where and why a parse attempt failed. It implements
// error so callers can surface it directly.
type Failure struct {
	At     Cursor
	Reason Reason
	Want   string
}

func (f *Failure) Error() string {
	what := f.Reason.String()
	if f.Reason == Expected && f.Want != "" {
		what = "expected " + f.Want
	}
	if b, ok := f.At.Peek(); ok {
		return fmt.Sprintf("offset %d: %s, got %q", f.At.Pos(), what, b)
	}
	return fmt.Sprintf("offset %d: %s", f.At.Pos(), what)
}

// Result is the outcome of one parse attempt: either a matched value and
// the cursor past it, or a failure. Exactly one variant holds.
type Result[T any] struct {
	value   T
	next    Cursor
	failure *Failure
}

// Match returns a successful result carrying v, with next marking the
// first unconsumed byte.
func Match[T any](v T, next Cursor) Result[T] {
	return Result[T]{value: v, next: next}
}

// Fail returns a failed result at the given cursor. want is only
// meaningful for the Expected reason and may be empty otherwise.
func Fail[T any](at Cursor, reason Reason, want string) Result[T] {
	return Result[T]{failure: &Failure{At: at, Reason: reason, Want: want}}
}

// FailWith propagates an existing failure verbatim under a new value type.
// Combinators use it so the failure's cursor and reason survive sequencing
// unchanged.
func FailWith[T any](f *Failure) Result[T] {
	return Result[T]{failure: f}
}

// Matched reports whether the attempt succeeded.
func (r Result[T]) Matched() bool {
	return r.failure == nil
}

// Value returns the matched value. Only meaningful when Matched is true.
func (r Result[T]) Value() T {
	return r.value
}

// Next returns the cursor past the matched input. Only meaningful when
// Matched is true; a failed result's position lives in Failure().At.
func (r Result[T]) Next() Cursor {
	return r.next
}

// Failure returns the failure record, or nil on a match.
func (r Result[T]) Failure() *Failure {
	return r.failure
}

// Unit is the value carried by parsers whose match has no useful value,
// such as Skip and End.
type Unit struct{}

// Option carries the outcome of Maybe: Valid is false when the inner
// parser did not match.
type Option[T any] struct {
	Value T
	Valid bool
}

// Some returns a present Option.
func Some[T any](v T) Option[T] {
	return Option[T]{Value: v, Valid: true}
}

// Pair carries the two values matched by And, in match order.
type Pair[A, B any] struct {
	First  A
	Second B
}
