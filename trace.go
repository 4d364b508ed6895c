package pkombi

import "github.com/tliron/commonlog"

var log = commonlog.GetLogger("pkombi")

type traceParser[T any] struct {
	name string
	p    Parser[T]
}

func (t traceParser[T]) Parse(in Cursor) Result[T] {
	r := t.p.Parse(in)
	if r.Matched() {
		log.Debugf("%s: matched at offset %d, consumed %d", t.name, in.Pos(), r.Next().Pos()-in.Pos())
	} else {
		log.Debugf("%s: %s", t.name, r.Failure().Error())
	}
	return r
}

// Trace wraps p so every attempt logs its outcome at debug level under
// the "pkombi" logger. The parse itself is unchanged; the binary decides
// whether a logging backend is installed and how verbose it is.
func Trace[T any](name string, p Parser[T]) Parser[T] {
	return traceParser[T]{name: name, p: p}
}
