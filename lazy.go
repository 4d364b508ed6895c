package pkombi

import "sync"

type lazyParser[T any] struct {
	once  sync.Once
	build func() Parser[T]
	inner Parser[T]
}

func (l *lazyParser[T]) Parse(in Cursor) Result[T] {
	l.once.Do(func() {
		l.inner = l.build()
		l.build = nil
	})
	return l.inner.Parse(in)
}

// Lazy defers building a parser until its first invocation, breaking the
// construction-time cycle of recursive grammars:
//
//	var expr pkombi.Parser[int]
//	group := pkombi.And(pkombi.Char('('), pkombi.And(
//		pkombi.Lazy(func() pkombi.Parser[int] { return expr }),
//		pkombi.Char(')')))
//	expr = ...
//
// build runs exactly once; afterwards the wrapper delegates to the built
// parser, so the determinism contract holds at invocation time.
func Lazy[T any](build func() Parser[T]) Parser[T] {
	return &lazyParser[T]{build: build}
}
