// Package calc is an integer arithmetic grammar built entirely on the
// public pkombi surface. It exists as a worked client of the engine:
//
//	expr   = term (('+' | '-') term)*
//	term   = factor (('*' | '/') factor)*
//	factor = '-'? (number | '(' expr ')')
//	number = digit+
//
// Spaces are allowed between tokens. Division is integer division.
package calc

import (
	"errors"
	"fmt"

	"github.com/prodbysky/pkombi"
)

// ErrDivisionByZero is reported by Eval when the expression divides by
// zero. The division happens while folding matched operator chains, so it
// surfaces as an evaluation error rather than a parse failure.
var ErrDivisionByZero = errors.New("division by zero")

type divisionByZero struct{}

var spaces = pkombi.Skip(pkombi.Many(pkombi.Satisfy("space", func(b byte) bool {
	return b == ' ' || b == '\t'
})))

// lexeme skips trailing spaces after p.
func lexeme[T any](p pkombi.Parser[T]) pkombi.Parser[T] {
	return pkombi.Map(
		pkombi.And(p, spaces),
		func(v pkombi.Pair[T, pkombi.Unit]) T { return v.First },
	)
}

func symbol(c byte) pkombi.Parser[byte] {
	return lexeme(pkombi.Char(c))
}

// chain parses operand (operator operand)* and left-folds the chain, so
// 8-3-2 is (8-3)-2 and 8/2/2 is (8/2)/2.
func chain(operand pkombi.Parser[int], operator pkombi.Parser[byte]) pkombi.Parser[int] {
	tail := pkombi.Many(pkombi.And(operator, operand))
	return pkombi.Map(
		pkombi.And(operand, tail),
		func(v pkombi.Pair[int, []pkombi.Pair[byte, int]]) int {
			n := v.First
			for _, step := range v.Second {
				switch step.First {
				case '+':
					n += step.Second
				case '-':
					n -= step.Second
				case '*':
					n *= step.Second
				case '/':
					if step.Second == 0 {
						panic(divisionByZero{})
					}
					n /= step.Second
				}
			}
			return n
		},
	)
}

var expr = newExpr()

func newExpr() pkombi.Parser[int] {
	var full pkombi.Parser[int]

	number := pkombi.Label(
		pkombi.Map(pkombi.Many1(pkombi.Digit()), func(digits []int) int {
			n := 0
			for _, d := range digits {
				n = n*10 + d
			}
			return n
		}),
		"number",
	)

	group := pkombi.Map(
		pkombi.And(symbol('('), pkombi.And(
			pkombi.Lazy(func() pkombi.Parser[int] { return full }),
			symbol(')'),
		)),
		func(v pkombi.Pair[byte, pkombi.Pair[int, byte]]) int { return v.Second.First },
	)

	atom := pkombi.Choice(lexeme(number), group)

	factor := pkombi.Map(
		pkombi.And(pkombi.Maybe(symbol('-')), atom),
		func(v pkombi.Pair[pkombi.Option[byte], int]) int {
			if v.First.Valid {
				return -v.Second
			}
			return v.Second
		},
	)

	term := chain(factor, pkombi.Or(symbol('*'), symbol('/')))
	full = chain(term, pkombi.Or(symbol('+'), symbol('-')))
	return full
}

// Expr returns the expression parser. The returned value is immutable and
// reusable; it matches a leading expression without requiring the whole
// input to be consumed.
func Expr() pkombi.Parser[int] {
	return expr
}

// Eval parses and evaluates input as a complete arithmetic expression.
// Trailing unparsed input is an error.
func Eval(input string) (n int, err error) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(divisionByZero); !ok {
				panic(r)
			}
			n, err = 0, ErrDivisionByZero
		}
	}()

	full := pkombi.Map(
		pkombi.And(spaces, pkombi.And(Expr(), pkombi.End())),
		func(v pkombi.Pair[pkombi.Unit, pkombi.Pair[int, pkombi.Unit]]) int {
			return v.Second.First
		},
	)

	res := pkombi.Run(full, input)
	if !res.Matched() {
		return 0, fmt.Errorf("evaluate expression: %w", res.Failure())
	}
	return res.Value(), nil
}
