// Package pkombi is a parser-combinator engine: a small algebra of
// composable parsing units for building recursive-descent parsers over
// ASCII text.
//
// # Overview
//
// A grammar is built by composing primitive parsers (Char, Digit, Satisfy)
// with combinators (Skip, Maybe, Or, And, ThenMaybe, Many, Many1, Choice,
// Map, Label). Composition is pure: no parsing happens until the composed
// parser is run against an input.
//
//	digits := pkombi.Many1(pkombi.Digit())
//	res := pkombi.Run(digits, "123x")
//	// res.Matched() == true, res.Value() == []int{1, 2, 3}, res.Next().Pos() == 3
//
// # Model
//
//	┌─────────────┐     ┌─────────────┐     ┌─────────────┐
//	│   Cursor    │────▶│  Parser[T]  │────▶│  Result[T]  │
//	│ (src+offset)│     │ Parse(Cursor)│    │ match | fail │
//	└─────────────┘     └─────────────┘     └─────────────┘
//
// Cursors are immutable value snapshots, so backtracking is simply
// re-running an alternative from an earlier cursor; no undo machinery
// exists anywhere in the engine. Parsers are immutable once constructed
// and may be reused concurrently across unrelated inputs.
//
// # Contract for custom parsers
//
// Clients extend the algebra with ParserFunc. A custom parser must be
// deterministic (same cursor in, same outcome out), must not retain or
// mutate shared state, and must never advance the cursor on failure.
// A custom parser that succeeds without consuming input must not be
// placed under Many or Many1; the repetition combinators detect this
// and panic rather than loop forever.
//
// # Failure
//
// Grammar mismatches are never panics: every attempt returns a Result
// whose Failure carries the offset and reason of the mismatch. Panics
// are reserved for API misuse (Choice with no alternatives, zero-width
// repetition).
package pkombi
