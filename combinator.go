package pkombi

import "fmt"

// Combinators. Each takes one or more parsers and returns a new one; the
// arguments are never mutated. Backtracking is uniform: an alternative is
// always retried from the cursor the combinator itself received, never
// from the cursor inside a failed attempt.

type skipParser[T any] struct {
	p Parser[T]
}

func (s skipParser[T]) Parse(in Cursor) Result[Unit] {
	r := s.p.Parse(in)
	if !r.Matched() {
		return FailWith[Unit](r.Failure())
	}
	return Match(Unit{}, r.Next())
}

// Skip runs p and discards its value. Failure propagates verbatim.
func Skip[T any](p Parser[T]) Parser[Unit] {
	return skipParser[T]{p: p}
}

type maybeParser[T any] struct {
	p Parser[T]
}

func (m maybeParser[T]) Parse(in Cursor) Result[Option[T]] {
	r := m.p.Parse(in)
	if r.Matched() {
		return Match(Some(r.Value()), r.Next())
	}
	return Match(Option[T]{}, in)
}

// Maybe absorbs failure of p: a non-match yields an empty Option at the
// original cursor, so Maybe itself never fails and never consumes input
// on a non-match.
func Maybe[T any](p Parser[T]) Parser[Option[T]] {
	return maybeParser[T]{p: p}
}

type orParser[T any] struct {
	p, q Parser[T]
}

func (o orParser[T]) Parse(in Cursor) Result[T] {
	r := o.p.Parse(in)
	if r.Matched() {
		return r
	}
	return o.q.Parse(in)
}

// Or tries p and, if it fails, tries q from the same original cursor.
// p always wins when it matches; q's outcome, match or failure, is
// returned verbatim otherwise.
func Or[T any](p, q Parser[T]) Parser[T] {
	return orParser[T]{p: p, q: q}
}

type andParser[A, B any] struct {
	p Parser[A]
	q Parser[B]
}

func (a andParser[A, B]) Parse(in Cursor) Result[Pair[A, B]] {
	rp := a.p.Parse(in)
	if !rp.Matched() {
		return FailWith[Pair[A, B]](rp.Failure())
	}
	rq := a.q.Parse(rp.Next())
	if !rq.Matched() {
		// The failure position reflects where q failed, past p's
		// consumption.
		return FailWith[Pair[A, B]](rq.Failure())
	}
	return Match(Pair[A, B]{First: rp.Value(), Second: rq.Value()}, rq.Next())
}

// And sequences p then q, yielding both values as a Pair. If p fails, q
// is never attempted.
func And[A, B any](p Parser[A], q Parser[B]) Parser[Pair[A, B]] {
	return andParser[A, B]{p: p, q: q}
}

// ThenMaybe sequences p with an optional q: p must match, q's absence is
// not a failure. Equivalent to And(p, Maybe(q)).
func ThenMaybe[A, B any](p Parser[A], q Parser[B]) Parser[Pair[A, Option[B]]] {
	return And(p, Maybe(q))
}

type manyParser[T any] struct {
	p          Parser[T]
	atLeastOne bool
}

func (m manyParser[T]) Parse(in Cursor) Result[[]T] {
	var values []T
	cur := in
	for {
		r := m.p.Parse(cur)
		if !r.Matched() {
			if m.atLeastOne && len(values) == 0 {
				return FailWith[[]T](r.Failure())
			}
			return Match(values, cur)
		}
		if r.Next().Pos() == cur.Pos() {
			panic(fmt.Sprintf("pkombi: repetition over a parser that matched without consuming input at offset %d", cur.Pos()))
		}
		values = append(values, r.Value())
		cur = r.Next()
	}
}

// Many runs p zero or more times, accumulating values in encounter order
// until p fails; the failing attempt consumes nothing. Many never fails.
// It panics if an iteration matches without consuming input, since such a
// parser would repeat forever.
func Many[T any](p Parser[T]) Parser[[]T] {
	return manyParser[T]{p: p}
}

// Many1 is Many requiring at least one match; the first attempt's failure
// propagates verbatim.
func Many1[T any](p Parser[T]) Parser[[]T] {
	return manyParser[T]{p: p, atLeastOne: true}
}

type choiceParser[T any] struct {
	ps []Parser[T]
}

func (c choiceParser[T]) Parse(in Cursor) Result[T] {
	var r Result[T]
	for _, p := range c.ps {
		r = p.Parse(in)
		if r.Matched() {
			return r
		}
	}
	return r
}

// Choice tries the alternatives in order, each from the original cursor,
// returning the first match. When all fail, the last alternative's
// failure is returned. Choice panics at construction when given no
// alternatives.
func Choice[T any](ps ...Parser[T]) Parser[T] {
	if len(ps) == 0 {
		panic("pkombi: Choice requires at least one alternative")
	}
	return choiceParser[T]{ps: append([]Parser[T](nil), ps...)}
}

type mapParser[A, B any] struct {
	p Parser[A]
	f func(A) B
}

func (m mapParser[A, B]) Parse(in Cursor) Result[B] {
	r := m.p.Parse(in)
	if !r.Matched() {
		return FailWith[B](r.Failure())
	}
	return Match(m.f(r.Value()), r.Next())
}

// Map transforms the value of a match with f; failure propagates
// verbatim. f must be pure.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return mapParser[A, B]{p: p, f: f}
}

type labelParser[T any] struct {
	p    Parser[T]
	want string
}

func (l labelParser[T]) Parse(in Cursor) Result[T] {
	r := l.p.Parse(in)
	if r.Matched() {
		return r
	}
	return Fail[T](r.Failure().At, Expected, l.want)
}

// Label rewrites a failure of p to "expected want" while keeping the
// failure position. Matches pass through untouched.
func Label[T any](p Parser[T], want string) Parser[T] {
	return labelParser[T]{p: p, want: want}
}
