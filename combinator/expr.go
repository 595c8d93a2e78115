// Separator folds and the operator-precedence engine.
//
// Binary-operator grammars in IMP are not written one rule per precedence
// level. Instead, [ChainLeft] folds "item (separator item)*" left-
// associatively, and [Precedence] chains one such fold per precedence level
// over a base term parser. Both the arithmetic and the boolean expression
// grammars are instances of the same engine.

package combinator

import "github.com/imptools/imp/ast"

// ChainLeft parses one or more occurrences of item separated by sep, where
// sep's value is the binary function that combines the accumulated result
// with the next item. The fold is strictly left-associative: items a, b, c
// joined by f become f(f(a, b), c). With no separator pairs the result is
// just the first item.
//
// A trailing separator with no item after it is not consumed: the fold stops
// at the last complete (separator, item) pair.
func ChainLeft[T any](item Parser[T], sep Parser[func(T, T) T]) Parser[T] {
	return func(toks []ast.Token, pos int) (Result[T], bool) {
		r, ok := item(toks, pos)
		if !ok {
			return Result[T]{}, false
		}
		acc, next := r.Value, r.Pos
		for {
			rs, ok := sep(toks, next)
			if !ok {
				break
			}
			ri, ok := item(toks, rs.Pos)
			if !ok {
				break
			}
			acc = rs.Value(acc, ri.Value)
			next = ri.Pos
		}
		return Result[T]{Value: acc, Pos: next}, true
	}
}

// Precedence builds a full binary-expression parser from a base term parser
// and an ordered list of precedence levels. Each level is the set of operator
// keywords sharing one binding strength; combine maps an operator's text to
// the function that joins its two operands.
//
// Levels listed earlier bind tighter: the first level's fold runs over base
// directly, and its result becomes the "term" that the next level's fold
// operates over. Levels [["*", "/"], ["+", "-"]] therefore give
// multiplication and division precedence over addition and subtraction.
// The list order is part of the grammar's meaning, not a detail.
func Precedence[T any](base Parser[T], levels [][]string, combine func(op string) func(T, T) T) Parser[T] {
	p := base
	for _, level := range levels {
		p = ChainLeft(p, anyOperator(level, combine))
	}
	return p
}

// anyOperator builds the separator parser for one precedence level: an
// ordered choice over the level's operator keywords, each mapped through
// combine into its combining function.
func anyOperator[T any](ops []string, combine func(op string) func(T, T) T) Parser[func(T, T) T] {
	p := Map(Reserved(ops[0]), combine)
	for _, op := range ops[1:] {
		p = Alt(p, Map(Reserved(op), combine))
	}
	return p
}
