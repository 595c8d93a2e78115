// AST node types for IMP.
//
// Every source construct has a corresponding node type. The hierarchy is:
//
//	Node (interface)
//	  Stmt (interface)
//	    Assign, Compound, If, While
//	  Aexp (interface) — arithmetic expressions
//	    IntLiteral, Variable, BinaryOp
//	  Bexp (interface) — boolean expressions
//	    RelOp, Not, And, Or
//
// All nodes are immutable once constructed and carry exactly the children the
// grammar gives them; there is no shared mutable state anywhere in the tree,
// so a node may be read from any number of goroutines.

package ast

import "fmt"

// ── Interfaces ────────────────────────────────────────────────────────────────

// Node is the root interface for every element of the IMP AST.
type Node interface {
	// String returns a compact, fully parenthesised representation of the
	// node. It is intended for debugging and test output.
	String() string
}

// Stmt is a Node executed for its effect on the variable environment.
type Stmt interface {
	Node
	stmtNode()
}

// Aexp is a Node that evaluates to an integer.
type Aexp interface {
	Node
	aexpNode()
}

// Bexp is a Node that evaluates to a boolean. IMP keeps boolean and
// arithmetic expressions in separate syntactic categories: a Bexp may contain
// Aexps (inside a comparison) but never the other way around.
type Bexp interface {
	Node
	bexpNode()
}

// ── Arithmetic expressions ────────────────────────────────────────────────────

// IntLiteral is a decimal integer literal value.
type IntLiteral struct {
	Value int64
}

func (e *IntLiteral) aexpNode()      {}
func (e *IntLiteral) String() string { return fmt.Sprintf("%d", e.Value) }

// Variable is a reference to a named binding.
type Variable struct {
	Name string
}

func (e *Variable) aexpNode()      {}
func (e *Variable) String() string { return e.Name }

// BinaryOp is a binary arithmetic expression: left op right.
// Op is one of "+", "-", "*", "/".
type BinaryOp struct {
	Op    string
	Left  Aexp
	Right Aexp
}

func (e *BinaryOp) aexpNode() {}
func (e *BinaryOp) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Left, e.Op, e.Right)
}

// ── Boolean expressions ───────────────────────────────────────────────────────

// RelOp is a relational comparison between two arithmetic expressions.
// Op is one of "<", "<=", ">", ">=", "=", "!=". Comparisons do not chain:
// each RelOp holds exactly one operator.
type RelOp struct {
	Op    string
	Left  Aexp
	Right Aexp
}

func (e *RelOp) bexpNode() {}
func (e *RelOp) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Left, e.Op, e.Right)
}

// Not is the boolean negation of its operand.
type Not struct {
	Operand Bexp
}

func (e *Not) bexpNode()      {}
func (e *Not) String() string { return fmt.Sprintf("(not %s)", e.Operand) }

// And is the logical conjunction of two boolean expressions.
type And struct {
	Left  Bexp
	Right Bexp
}

func (e *And) bexpNode() {}
func (e *And) String() string {
	return fmt.Sprintf("(%s and %s)", e.Left, e.Right)
}

// Or is the logical disjunction of two boolean expressions.
type Or struct {
	Left  Bexp
	Right Bexp
}

func (e *Or) bexpNode() {}
func (e *Or) String() string {
	return fmt.Sprintf("(%s or %s)", e.Left, e.Right)
}

// ── Statements ────────────────────────────────────────────────────────────────

// Assign binds the value of an arithmetic expression to a name.
//
//	x := n * 2
type Assign struct {
	Name  string
	Value Aexp
}

func (s *Assign) stmtNode() {}
func (s *Assign) String() string {
	return fmt.Sprintf("%s := %s", s.Name, s.Value)
}

// Compound is a sequence of two statements: First runs, then Second.
// A chain a; b; c folds left-associatively into
// Compound{Compound{a, b}, c}.
type Compound struct {
	First  Stmt
	Second Stmt
}

func (s *Compound) stmtNode() {}
func (s *Compound) String() string {
	return fmt.Sprintf("%s; %s", s.First, s.Second)
}

// If is a conditional statement. Else is nil when the program has no else
// branch; nil here is the explicit "no false branch" marker, distinct from
// any empty statement.
//
//	if x < 10 then x := x + 1 else x := 0 end
type If struct {
	Condition Bexp
	Then      Stmt
	Else      Stmt
}

func (s *If) stmtNode() {}
func (s *If) String() string {
	if s.Else == nil {
		return fmt.Sprintf("if %s then %s end", s.Condition, s.Then)
	}
	return fmt.Sprintf("if %s then %s else %s end", s.Condition, s.Then, s.Else)
}

// While is a conditional loop: the condition is re-evaluated before every
// iteration and the body runs while it holds.
//
//	while n > 0 do n := n - 1 end
type While struct {
	Condition Bexp
	Body      Stmt
}

func (s *While) stmtNode() {}
func (s *While) String() string {
	return fmt.Sprintf("while %s do %s end", s.Condition, s.Body)
}
