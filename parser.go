package pkombi

// Parser is the single polymorphic capability of the engine: attempt to
// consume from a cursor, producing a Result. Implementations must be
// deterministic and free of shared mutable state; see the package comment
// for the full contract.
type Parser[T any] interface {
	Parse(in Cursor) Result[T]
}

// ParserFunc adapts a plain function to the Parser interface, the way
// http.HandlerFunc adapts handlers. It is the extension point for custom
// grammars.
type ParserFunc[T any] func(Cursor) Result[T]

func (f ParserFunc[T]) Parse(in Cursor) Result[T] {
	return f(in)
}

// Run builds a cursor at offset 0 over input and invokes p once. It does
// not require the whole input to be consumed; compose with End for that.
func Run[T any](p Parser[T], input string) Result[T] {
	return p.Parse(NewCursor(input))
}
