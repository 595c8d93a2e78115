// Package combinator implements a small parser-combinator library over IMP
// token sequences, plus the separator-fold and operator-precedence engines
// built on top of it.
//
// A [Parser] is a pure function from (token slice, start position) to either
// a matched value with the next position, or failure. Parsers never consume
// input on failure and share no mutable state, which makes ordered
// alternation ([Alt]) safe without any backtracking bookkeeping: the losing
// branch simply left the position untouched. Because parsers are stateless,
// one constructed grammar may be invoked repeatedly and from concurrent
// goroutines without interference.
//
// Larger parsers are built from the primitives ([Literal], [TagValue]) with
// the combinators in this package. [Lazy] breaks construction-time cycles in
// self- or mutually-recursive grammar rules; [Phrase] turns a parser into one
// that must consume the entire input.
package combinator

import (
	"sync"

	"github.com/imptools/imp/ast"
)

// Result is a successful match: the parsed value and the position of the
// first token after it. Pos is always ≥ the position the parser started at;
// a parser that matched zero tokens returns Pos equal to its start position.
type Result[T any] struct {
	Value T
	Pos   int
}

// Parser attempts a match against toks starting at pos. It reports success
// through the boolean; on failure the Result is the zero value and no input
// has been consumed. A Parser must be referentially transparent: calling it
// any number of times, at any position, from any goroutine, yields the same
// outcome with no side effects.
type Parser[T any] func(toks []ast.Token, pos int) (Result[T], bool)

// Pair is the value produced by [Seq]: both sub-results in order.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Maybe is the value produced by [Opt]. Present distinguishes a matched
// value from the explicit "absent" outcome.
type Maybe[T any] struct {
	Value   T
	Present bool
}

// ── Primitives ────────────────────────────────────────────────────────────────

// Literal matches exactly one token whose literal text and tag both equal the
// given values, producing its text.
func Literal(text string, tag ast.Tag) Parser[string] {
	return func(toks []ast.Token, pos int) (Result[string], bool) {
		if pos < len(toks) && toks[pos].Tag == tag && toks[pos].Literal == text {
			return Result[string]{Value: text, Pos: pos + 1}, true
		}
		return Result[string]{}, false
	}
}

// Reserved matches one keyword or symbol token by its exact text.
func Reserved(text string) Parser[string] {
	return Literal(text, ast.RESERVED)
}

// TagValue matches exactly one token with the given tag, regardless of its
// text, producing the token's literal.
func TagValue(tag ast.Tag) Parser[string] {
	return func(toks []ast.Token, pos int) (Result[string], bool) {
		if pos < len(toks) && toks[pos].Tag == tag {
			return Result[string]{Value: toks[pos].Literal, Pos: pos + 1}, true
		}
		return Result[string]{}, false
	}
}

// ── Combinators ───────────────────────────────────────────────────────────────

// Seq matches a then b in order, producing both values. If either side fails
// the whole sequence fails and nothing is consumed.
func Seq[A, B any](a Parser[A], b Parser[B]) Parser[Pair[A, B]] {
	return func(toks []ast.Token, pos int) (Result[Pair[A, B]], bool) {
		ra, ok := a(toks, pos)
		if !ok {
			return Result[Pair[A, B]]{}, false
		}
		rb, ok := b(toks, ra.Pos)
		if !ok {
			return Result[Pair[A, B]]{}, false
		}
		return Result[Pair[A, B]]{
			Value: Pair[A, B]{First: ra.Value, Second: rb.Value},
			Pos:   rb.Pos,
		}, true
	}
}

// Left matches a then b, keeping only a's value.
func Left[A, B any](a Parser[A], b Parser[B]) Parser[A] {
	return Map(Seq(a, b), func(p Pair[A, B]) A { return p.First })
}

// Right matches a then b, keeping only b's value.
func Right[A, B any](a Parser[A], b Parser[B]) Parser[B] {
	return Map(Seq(a, b), func(p Pair[A, B]) B { return p.Second })
}

// Alt tries a; if it fails, tries b at the same position. Ordered choice:
// the first branch to succeed wins, even when the second would have matched
// more input.
func Alt[T any](a, b Parser[T]) Parser[T] {
	return func(toks []ast.Token, pos int) (Result[T], bool) {
		if r, ok := a(toks, pos); ok {
			return r, true
		}
		return b(toks, pos)
	}
}

// Choice folds [Alt] over any number of alternatives, tried in order.
// It panics if given no parsers: an empty choice has no meaning.
func Choice[T any](ps ...Parser[T]) Parser[T] {
	if len(ps) == 0 {
		panic("combinator: Choice requires at least one parser")
	}
	p := ps[0]
	for _, q := range ps[1:] {
		p = Alt(p, q)
	}
	return p
}

// Map transforms p's value through f. Position and success are untouched.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return func(toks []ast.Token, pos int) (Result[B], bool) {
		r, ok := p(toks, pos)
		if !ok {
			return Result[B]{}, false
		}
		return Result[B]{Value: f(r.Value), Pos: r.Pos}, true
	}
}

// Repeat applies p repeatedly until it fails, collecting the matched values
// in order. Repeat itself never fails: zero matches yield an empty slice at
// the original position.
func Repeat[T any](p Parser[T]) Parser[[]T] {
	return func(toks []ast.Token, pos int) (Result[[]T], bool) {
		var values []T
		for {
			r, ok := p(toks, pos)
			if !ok {
				return Result[[]T]{Value: values, Pos: pos}, true
			}
			values = append(values, r.Value)
			pos = r.Pos
		}
	}
}

// Opt makes p optional. It always succeeds: if p matches, the value is
// present; otherwise the result is the explicit absent marker at the
// original position.
func Opt[T any](p Parser[T]) Parser[Maybe[T]] {
	return func(toks []ast.Token, pos int) (Result[Maybe[T]], bool) {
		if r, ok := p(toks, pos); ok {
			return Result[Maybe[T]]{Value: Maybe[T]{Value: r.Value, Present: true}, Pos: r.Pos}, true
		}
		return Result[Maybe[T]]{Value: Maybe[T]{}, Pos: pos}, true
	}
}

// Lazy defers evaluation of build() until the parser's first invocation and
// reuses the built parser ever after. Grammar rules that refer to themselves,
// directly or through other rules, must wrap the recursive reference in Lazy;
// without the deferral, constructing the grammar would recurse forever before
// any parsing happens. The thunk is resolved at most once even when the first
// invocations race.
func Lazy[T any](build func() Parser[T]) Parser[T] {
	var once sync.Once
	var p Parser[T]
	return func(toks []ast.Token, pos int) (Result[T], bool) {
		once.Do(func() { p = build() })
		return p(toks, pos)
	}
}

// Phrase requires p to consume the entire input: it succeeds only when p
// succeeds with its resulting position at the end of the token slice. A valid
// prefix followed by trailing tokens is a failure.
func Phrase[T any](p Parser[T]) Parser[T] {
	return func(toks []ast.Token, pos int) (Result[T], bool) {
		r, ok := p(toks, pos)
		if !ok || r.Pos != len(toks) {
			return Result[T]{}, false
		}
		return r, true
	}
}
