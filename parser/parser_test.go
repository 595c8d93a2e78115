// Tests for the IMP grammar. Each test lexes a snippet, parses it, and
// inspects the resulting tree via type assertions.
package parser_test

import (
	"testing"

	"github.com/imptools/imp/ast"
	"github.com/imptools/imp/lexer"
	"github.com/imptools/imp/parser"
)

// ── Helpers ───────────────────────────────────────────────────────────────────

// parse lexes and parses input, failing the test on any error.
func parse(t *testing.T, input string) ast.Stmt {
	t.Helper()
	toks, err := lexer.Lex(input)
	if err != nil {
		t.Fatalf("lex error: %v", err)
	}
	root, err := parser.Parse(toks)
	if err != nil {
		t.Fatalf("parse error for %q: %v", input, err)
	}
	return root
}

// expectNoParse asserts that input lexes but does not parse.
func expectNoParse(t *testing.T, input string) {
	t.Helper()
	toks, err := lexer.Lex(input)
	if err != nil {
		t.Fatalf("lex error: %v", err)
	}
	if root, err := parser.Parse(toks); err == nil {
		t.Fatalf("expected parse failure for %q, got %s", input, root)
	} else if err != parser.ErrNoParse {
		t.Fatalf("expected ErrNoParse, got %v", err)
	}
}

// assertAssign checks that s is an assignment to the given name and returns
// its value expression.
func assertAssign(t *testing.T, s ast.Stmt, name string) ast.Aexp {
	t.Helper()
	a, ok := s.(*ast.Assign)
	if !ok {
		t.Fatalf("expected *ast.Assign, got %T (%s)", s, s)
	}
	if a.Name != name {
		t.Fatalf("assignment target: got %q, want %q", a.Name, name)
	}
	return a.Value
}

// assertBinaryOp checks that e is a binary arithmetic node with the given
// operator.
func assertBinaryOp(t *testing.T, e ast.Aexp, op string) *ast.BinaryOp {
	t.Helper()
	b, ok := e.(*ast.BinaryOp)
	if !ok {
		t.Fatalf("expected *ast.BinaryOp, got %T (%s)", e, e)
	}
	if b.Op != op {
		t.Fatalf("binary operator: got %q, want %q", b.Op, op)
	}
	return b
}

// assertIntLit checks that e is an integer literal with the given value.
func assertIntLit(t *testing.T, e ast.Aexp, val int64) {
	t.Helper()
	lit, ok := e.(*ast.IntLiteral)
	if !ok {
		t.Fatalf("expected *ast.IntLiteral, got %T (%s)", e, e)
	}
	if lit.Value != val {
		t.Fatalf("IntLiteral value: got %d, want %d", lit.Value, val)
	}
}

// assertRelOp checks that e is a comparison with the given operator.
func assertRelOp(t *testing.T, e ast.Bexp, op string) *ast.RelOp {
	t.Helper()
	r, ok := e.(*ast.RelOp)
	if !ok {
		t.Fatalf("expected *ast.RelOp, got %T (%s)", e, e)
	}
	if r.Op != op {
		t.Fatalf("relational operator: got %q, want %q", r.Op, op)
	}
	return r
}

// condOf parses input as a single if statement and returns its condition.
func condOf(t *testing.T, condition string) ast.Bexp {
	t.Helper()
	s := parse(t, "if "+condition+" then x := 1 end")
	return s.(*ast.If).Condition
}

// ── Statements ────────────────────────────────────────────────────────────────

func TestAssignment(t *testing.T) {
	v := assertAssign(t, parse(t, "x := 42"), "x")
	assertIntLit(t, v, 42)
}

func TestAssignmentFromVariable(t *testing.T) {
	v := assertAssign(t, parse(t, "y := x"), "y")
	if vr, ok := v.(*ast.Variable); !ok || vr.Name != "x" {
		t.Fatalf("expected variable reference x, got %T (%s)", v, v)
	}
}

func TestStatementListFoldsLeftAssociatively(t *testing.T) {
	root := parse(t, "x := 1; y := 2; z := 3")

	outer, ok := root.(*ast.Compound)
	if !ok {
		t.Fatalf("expected *ast.Compound, got %T", root)
	}
	inner, ok := outer.First.(*ast.Compound)
	if !ok {
		t.Fatalf("expected left-nested *ast.Compound, got %T", outer.First)
	}
	assertAssign(t, inner.First, "x")
	assertAssign(t, inner.Second, "y")
	assertAssign(t, outer.Second, "z")
}

func TestIfWithElse(t *testing.T) {
	root := parse(t, "if x < 10 then y := 1 else y := 2 end")

	s, ok := root.(*ast.If)
	if !ok {
		t.Fatalf("expected *ast.If, got %T", root)
	}
	assertRelOp(t, s.Condition, "<")
	assertAssign(t, s.Then, "y")
	if s.Else == nil {
		t.Fatal("else branch missing")
	}
	assertAssign(t, s.Else, "y")
}

func TestIfWithoutElseHasExplicitAbsentBranch(t *testing.T) {
	root := parse(t, "if 1 < 2 then x := 1 end")

	s, ok := root.(*ast.If)
	if !ok {
		t.Fatalf("expected *ast.If, got %T", root)
	}
	if s.Else != nil {
		t.Fatalf("expected absent else branch, got %T (%s)", s.Else, s.Else)
	}
}

func TestWhile(t *testing.T) {
	root := parse(t, "while n > 0 do n := n - 1 end")

	s, ok := root.(*ast.While)
	if !ok {
		t.Fatalf("expected *ast.While, got %T", root)
	}
	assertRelOp(t, s.Condition, ">")
	assertAssign(t, s.Body, "n")
}

func TestNestedStatementBodies(t *testing.T) {
	root := parse(t, "while a < b do if a < 0 then a := 0 else a := a + 1 end; b := b - 1 end")

	w, ok := root.(*ast.While)
	if !ok {
		t.Fatalf("expected *ast.While, got %T", root)
	}
	body, ok := w.Body.(*ast.Compound)
	if !ok {
		t.Fatalf("expected compound body, got %T", w.Body)
	}
	if _, ok := body.First.(*ast.If); !ok {
		t.Fatalf("expected *ast.If first in body, got %T", body.First)
	}
	assertAssign(t, body.Second, "b")
}

// ── Arithmetic precedence ─────────────────────────────────────────────────────

func TestMultiplicationBindsTighterThanAddition(t *testing.T) {
	// 2*3+4 → (2*3)+4
	v := assertAssign(t, parse(t, "x := 2 * 3 + 4"), "x")
	sum := assertBinaryOp(t, v, "+")
	prod := assertBinaryOp(t, sum.Left, "*")
	assertIntLit(t, prod.Left, 2)
	assertIntLit(t, prod.Right, 3)
	assertIntLit(t, sum.Right, 4)

	// 2+3*4 → 2+(3*4)
	v = assertAssign(t, parse(t, "x := 2 + 3 * 4"), "x")
	sum = assertBinaryOp(t, v, "+")
	assertIntLit(t, sum.Left, 2)
	prod = assertBinaryOp(t, sum.Right, "*")
	assertIntLit(t, prod.Left, 3)
	assertIntLit(t, prod.Right, 4)
}

func TestGroupingOverridesPrecedence(t *testing.T) {
	// 2*(3+4) → 2*(3+4)
	v := assertAssign(t, parse(t, "x := 2 * (3 + 4)"), "x")
	prod := assertBinaryOp(t, v, "*")
	assertIntLit(t, prod.Left, 2)
	sum := assertBinaryOp(t, prod.Right, "+")
	assertIntLit(t, sum.Left, 3)
	assertIntLit(t, sum.Right, 4)
}

func TestSameLevelOperatorsFoldLeft(t *testing.T) {
	// 10-3-2 → (10-3)-2
	v := assertAssign(t, parse(t, "x := 10 - 3 - 2"), "x")
	outer := assertBinaryOp(t, v, "-")
	inner := assertBinaryOp(t, outer.Left, "-")
	assertIntLit(t, inner.Left, 10)
	assertIntLit(t, inner.Right, 3)
	assertIntLit(t, outer.Right, 2)
}

// ── Boolean expressions ───────────────────────────────────────────────────────

func TestAndBindsTighterThanOr(t *testing.T) {
	// 1<2 and 2<3 or 3<4 → (1<2 and 2<3) or 3<4
	cond := condOf(t, "1 < 2 and 2 < 3 or 3 < 4")

	or, ok := cond.(*ast.Or)
	if !ok {
		t.Fatalf("expected *ast.Or, got %T (%s)", cond, cond)
	}
	and, ok := or.Left.(*ast.And)
	if !ok {
		t.Fatalf("expected *ast.And on the left, got %T (%s)", or.Left, or.Left)
	}
	assertRelOp(t, and.Left, "<")
	assertRelOp(t, and.Right, "<")
	assertRelOp(t, or.Right, "<")
}

func TestNotIsRightRecursive(t *testing.T) {
	cond := condOf(t, "not not x = 1")

	outer, ok := cond.(*ast.Not)
	if !ok {
		t.Fatalf("expected *ast.Not, got %T (%s)", cond, cond)
	}
	inner, ok := outer.Operand.(*ast.Not)
	if !ok {
		t.Fatalf("expected nested *ast.Not, got %T (%s)", outer.Operand, outer.Operand)
	}
	assertRelOp(t, inner.Operand, "=")
}

func TestBooleanGrouping(t *testing.T) {
	// (1<2 or 2<3) and 3<4: grouping forces or under and.
	cond := condOf(t, "(1 < 2 or 2 < 3) and 3 < 4")

	and, ok := cond.(*ast.And)
	if !ok {
		t.Fatalf("expected *ast.And, got %T (%s)", cond, cond)
	}
	if _, ok := and.Left.(*ast.Or); !ok {
		t.Fatalf("expected grouped *ast.Or on the left, got %T", and.Left)
	}
}

func TestAllRelationalOperators(t *testing.T) {
	for _, op := range []string{"<", "<=", ">", ">=", "=", "!="} {
		cond := condOf(t, "x "+op+" 1")
		assertRelOp(t, cond, op)
	}
}

// ── Failure cases ─────────────────────────────────────────────────────────────

func TestTrailingTokensFailTheParse(t *testing.T) {
	// A valid statement followed by an unconsumable token must fail even
	// though a strict prefix matched.
	expectNoParse(t, "x := 1 end")
	expectNoParse(t, "x := 1; y := 2 then")
}

func TestRelationsDoNotChain(t *testing.T) {
	expectNoParse(t, "if 1 < 2 < 3 then x := 1 end")
}

func TestMalformedInputFails(t *testing.T) {
	expectNoParse(t, "")
	expectNoParse(t, "x :=")
	expectNoParse(t, "if x < 1 then y := 2") // missing end
	expectNoParse(t, "while do x := 1 end")  // missing condition
	expectNoParse(t, "x := (1 + 2")          // unbalanced group
	expectNoParse(t, "x := 1;")              // dangling separator
	expectNoParse(t, "if x then y := 1 end") // condition must be boolean
}

// ── Determinism ───────────────────────────────────────────────────────────────

func TestRepeatedParsesAreIdentical(t *testing.T) {
	const input = "p := 1; n := 5; while n > 0 do p := p * n; n := n - 1 end"

	toks, err := lexer.Lex(input)
	if err != nil {
		t.Fatalf("lex error: %v", err)
	}
	first, err := parser.Parse(toks)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := parser.Parse(toks)
		if err != nil {
			t.Fatalf("re-parse %d error: %v", i, err)
		}
		if again.String() != first.String() {
			t.Fatalf("re-parse %d differs:\n%s\n%s", i, again, first)
		}
	}
}
