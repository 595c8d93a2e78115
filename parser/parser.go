// Package parser composes the IMP grammar out of the combinator library and
// produces an [ast.Stmt] tree from a token sequence.
//
// The grammar:
//
//	program   = stmtList, consuming the entire input
//	stmtList  = stmt (';' stmt)*            (folds left into ast.Compound)
//	stmt      = assign | ifStmt | whileStmt
//	assign    = IDENT ':=' aexp
//	ifStmt    = 'if' bexp 'then' stmtList ['else' stmtList] 'end'
//	whileStmt = 'while' bexp 'do' stmtList 'end'
//	aexp      = aexpTerm folded over [['*' '/'] ['+' '-']]
//	aexpTerm  = INT | IDENT | '(' aexp ')'
//	bexp      = bexpTerm folded over [['and'] ['or']]
//	bexpTerm  = 'not' bexpTerm | aexp relop aexp | '(' bexp ')'
//	relop     = '<' | '<=' | '>' | '>=' | '=' | '!='
//
// Statement bodies refer back to stmtList and grouped expressions refer back
// to their own expression rule, so those references go through
// [combinator.Lazy]; eager construction would otherwise recurse forever
// before the first token is ever examined.
//
// Usage:
//
//	toks, err := lexer.Lex(src)
//	...
//	root, err := parser.Parse(toks)
//
// There is no error recovery and no position reporting: a parse either
// yields the root statement or the opaque [ErrNoParse].
package parser

import (
	"errors"
	"strconv"

	"github.com/imptools/imp/ast"
	"github.com/imptools/imp/combinator"
)

// ErrNoParse is returned when the token sequence is not a complete IMP
// program. The failure carries no position or expected-token detail.
var ErrNoParse = errors.New("parser: could not parse program")

// Precedence tables. Earlier levels bind tighter (see combinator.Precedence);
// this ordering is part of the language definition.
var (
	aexpLevels = [][]string{
		{"*", "/"},
		{"+", "-"},
	}
	bexpLevels = [][]string{
		{"and"},
		{"or"},
	}
)

// relops are the comparison operators. Exactly one may appear per
// comparison; IMP has no chained relations.
var relops = []string{"<", "<=", ">", ">=", "=", "!="}

// program is the grammar, built once. Parsers are stateless, so one grammar
// value serves every Parse call, concurrent ones included.
var program = combinator.Phrase(stmtList())

// Parse parses a complete token sequence into its root statement. Any
// failure, whether a malformed construct or a valid program followed by
// trailing tokens, yields ErrNoParse.
func Parse(toks []ast.Token) (ast.Stmt, error) {
	r, ok := program(toks, 0)
	if !ok {
		return nil, ErrNoParse
	}
	return r.Value, nil
}

// ── Statements ────────────────────────────────────────────────────────────────

// stmtList parses one or more statements separated by ';', folding them
// left-associatively into nested Compound nodes: a; b; c becomes
// Compound{Compound{a, b}, c}.
func stmtList() combinator.Parser[ast.Stmt] {
	sep := combinator.Map(combinator.Reserved(";"), func(string) func(ast.Stmt, ast.Stmt) ast.Stmt {
		return func(first, second ast.Stmt) ast.Stmt {
			return &ast.Compound{First: first, Second: second}
		}
	})
	return combinator.ChainLeft(stmt(), sep)
}

// stmt parses a single statement. The alternatives are syntactically
// disjoint (an assignment starts with an identifier, the others with a
// keyword), so the order carries no disambiguation weight.
func stmt() combinator.Parser[ast.Stmt] {
	return combinator.Choice(assignStmt(), ifStmt(), whileStmt())
}

// assignStmt parses IDENT ':=' aexp.
func assignStmt() combinator.Parser[ast.Stmt] {
	p := combinator.Seq(
		combinator.Left(combinator.TagValue(ast.IDENT), combinator.Reserved(":=")),
		aexp(),
	)
	return combinator.Map(p, func(r combinator.Pair[string, ast.Aexp]) ast.Stmt {
		return &ast.Assign{Name: r.First, Value: r.Second}
	})
}

// ifStmt parses 'if' bexp 'then' stmtList ['else' stmtList] 'end'.
// An absent else branch becomes a nil Else field, never an empty statement.
func ifStmt() combinator.Parser[ast.Stmt] {
	p := combinator.Left(
		combinator.Seq(
			combinator.Seq(
				combinator.Right(combinator.Reserved("if"), bexp()),
				combinator.Right(combinator.Reserved("then"), combinator.Lazy(stmtList)),
			),
			combinator.Opt(combinator.Right(combinator.Reserved("else"), combinator.Lazy(stmtList))),
		),
		combinator.Reserved("end"),
	)
	return combinator.Map(p, func(r combinator.Pair[combinator.Pair[ast.Bexp, ast.Stmt], combinator.Maybe[ast.Stmt]]) ast.Stmt {
		node := &ast.If{Condition: r.First.First, Then: r.First.Second}
		if r.Second.Present {
			node.Else = r.Second.Value
		}
		return node
	})
}

// whileStmt parses 'while' bexp 'do' stmtList 'end'.
func whileStmt() combinator.Parser[ast.Stmt] {
	p := combinator.Left(
		combinator.Seq(
			combinator.Right(combinator.Reserved("while"), bexp()),
			combinator.Right(combinator.Reserved("do"), combinator.Lazy(stmtList)),
		),
		combinator.Reserved("end"),
	)
	return combinator.Map(p, func(r combinator.Pair[ast.Bexp, ast.Stmt]) ast.Stmt {
		return &ast.While{Condition: r.First, Body: r.Second}
	})
}

// ── Arithmetic expressions ────────────────────────────────────────────────────

// aexp parses a full arithmetic expression by folding aexpTerm over the
// arithmetic precedence table.
func aexp() combinator.Parser[ast.Aexp] {
	return combinator.Precedence(aexpTerm(), aexpLevels, makeBinaryOp)
}

// aexpTerm parses an atomic arithmetic term: a literal, a variable, or a
// parenthesised sub-expression.
func aexpTerm() combinator.Parser[ast.Aexp] {
	return combinator.Alt(aexpValue(), aexpGroup())
}

// aexpValue parses an integer literal or a variable reference. The literal's
// text is converted to its numeric value here, at parse time.
func aexpValue() combinator.Parser[ast.Aexp] {
	num := combinator.Map(combinator.TagValue(ast.INT), func(text string) ast.Aexp {
		v, _ := strconv.ParseInt(text, 10, 64)
		return &ast.IntLiteral{Value: v}
	})
	variable := combinator.Map(combinator.TagValue(ast.IDENT), func(name string) ast.Aexp {
		return &ast.Variable{Name: name}
	})
	return combinator.Alt(num, variable)
}

// aexpGroup parses '(' aexp ')'. The inner reference is lazy because aexp is
// defined in terms of this rule.
func aexpGroup() combinator.Parser[ast.Aexp] {
	return combinator.Right(
		combinator.Reserved("("),
		combinator.Left(combinator.Lazy(aexp), combinator.Reserved(")")),
	)
}

func makeBinaryOp(op string) func(ast.Aexp, ast.Aexp) ast.Aexp {
	return func(l, r ast.Aexp) ast.Aexp {
		return &ast.BinaryOp{Op: op, Left: l, Right: r}
	}
}

// ── Boolean expressions ───────────────────────────────────────────────────────

// bexp parses a full boolean expression by folding bexpTerm over the logical
// precedence table: 'and' binds tighter than 'or'.
func bexp() combinator.Parser[ast.Bexp] {
	return combinator.Precedence(bexpTerm(), bexpLevels, makeLogicOp)
}

// bexpTerm parses a negation, a relational comparison, or a parenthesised
// boolean expression, tried in that order.
func bexpTerm() combinator.Parser[ast.Bexp] {
	return combinator.Choice(bexpNot(), bexpRelop(), bexpGroup())
}

// bexpNot parses 'not' bexpTerm. The operand reference is lazy and
// right-recursive, so 'not not x' nests naturally.
func bexpNot() combinator.Parser[ast.Bexp] {
	p := combinator.Right(combinator.Reserved("not"), combinator.Lazy(bexpTerm))
	return combinator.Map(p, func(operand ast.Bexp) ast.Bexp {
		return &ast.Not{Operand: operand}
	})
}

// bexpRelop parses aexp relop aexp: exactly one comparison operator, no
// chaining.
func bexpRelop() combinator.Parser[ast.Bexp] {
	ops := combinator.Reserved(relops[0])
	for _, op := range relops[1:] {
		ops = combinator.Alt(ops, combinator.Reserved(op))
	}
	p := combinator.Seq(combinator.Seq(aexp(), ops), aexp())
	return combinator.Map(p, func(r combinator.Pair[combinator.Pair[ast.Aexp, string], ast.Aexp]) ast.Bexp {
		return &ast.RelOp{Op: r.First.Second, Left: r.First.First, Right: r.Second}
	})
}

// bexpGroup parses '(' bexp ')', lazily for the same self-reference reason
// as aexpGroup.
func bexpGroup() combinator.Parser[ast.Bexp] {
	return combinator.Right(
		combinator.Reserved("("),
		combinator.Left(combinator.Lazy(bexp), combinator.Reserved(")")),
	)
}

func makeLogicOp(op string) func(ast.Bexp, ast.Bexp) ast.Bexp {
	if op == "and" {
		return func(l, r ast.Bexp) ast.Bexp { return &ast.And{Left: l, Right: r} }
	}
	return func(l, r ast.Bexp) ast.Bexp { return &ast.Or{Left: l, Right: r} }
}
