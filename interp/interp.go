// Package interp executes IMP programs by walking their AST.
//
// The interpreter is a straightforward tree walk: arithmetic expressions
// evaluate to int64, boolean expressions to bool, and statements mutate a
// variable environment. Runtime failures (an unbound variable, division by
// zero) surface as errors and stop execution.
package interp

import (
	"fmt"

	"github.com/imptools/imp/ast"
	"github.com/imptools/imp/lexer"
	"github.com/imptools/imp/parser"
)

// Env is the variable environment of a running program. IMP variables are
// integers; reading a name that was never assigned is a runtime error.
type Env map[string]int64

// Run lexes, parses and executes an IMP source string against a fresh
// environment and returns the final variable bindings.
func Run(src string) (Env, error) {
	toks, err := lexer.Lex(src)
	if err != nil {
		return nil, err
	}
	root, err := parser.Parse(toks)
	if err != nil {
		return nil, err
	}
	env := Env{}
	if err := ExecStmt(root, env); err != nil {
		return nil, err
	}
	return env, nil
}

// ExecStmt executes one statement against env, mutating it in place.
func ExecStmt(s ast.Stmt, env Env) error {
	switch s := s.(type) {
	case *ast.Assign:
		v, err := EvalAexp(s.Value, env)
		if err != nil {
			return err
		}
		env[s.Name] = v
		return nil
	case *ast.Compound:
		if err := ExecStmt(s.First, env); err != nil {
			return err
		}
		return ExecStmt(s.Second, env)
	case *ast.If:
		cond, err := EvalBexp(s.Condition, env)
		if err != nil {
			return err
		}
		if cond {
			return ExecStmt(s.Then, env)
		}
		if s.Else != nil {
			return ExecStmt(s.Else, env)
		}
		return nil
	case *ast.While:
		for {
			cond, err := EvalBexp(s.Condition, env)
			if err != nil {
				return err
			}
			if !cond {
				return nil
			}
			if err := ExecStmt(s.Body, env); err != nil {
				return err
			}
		}
	}
	return fmt.Errorf("interp: unknown statement %T", s)
}

// EvalAexp evaluates an arithmetic expression against env.
func EvalAexp(e ast.Aexp, env Env) (int64, error) {
	switch e := e.(type) {
	case *ast.IntLiteral:
		return e.Value, nil
	case *ast.Variable:
		v, ok := env[e.Name]
		if !ok {
			return 0, fmt.Errorf("interp: undefined variable %q", e.Name)
		}
		return v, nil
	case *ast.BinaryOp:
		l, err := EvalAexp(e.Left, env)
		if err != nil {
			return 0, err
		}
		r, err := EvalAexp(e.Right, env)
		if err != nil {
			return 0, err
		}
		switch e.Op {
		case "+":
			return l + r, nil
		case "-":
			return l - r, nil
		case "*":
			return l * r, nil
		case "/":
			if r == 0 {
				return 0, fmt.Errorf("interp: division by zero")
			}
			return l / r, nil
		}
		return 0, fmt.Errorf("interp: unknown arithmetic operator %q", e.Op)
	}
	return 0, fmt.Errorf("interp: unknown arithmetic expression %T", e)
}

// EvalBexp evaluates a boolean expression against env.
func EvalBexp(e ast.Bexp, env Env) (bool, error) {
	switch e := e.(type) {
	case *ast.RelOp:
		l, err := EvalAexp(e.Left, env)
		if err != nil {
			return false, err
		}
		r, err := EvalAexp(e.Right, env)
		if err != nil {
			return false, err
		}
		switch e.Op {
		case "<":
			return l < r, nil
		case "<=":
			return l <= r, nil
		case ">":
			return l > r, nil
		case ">=":
			return l >= r, nil
		case "=":
			return l == r, nil
		case "!=":
			return l != r, nil
		}
		return false, fmt.Errorf("interp: unknown relational operator %q", e.Op)
	case *ast.Not:
		v, err := EvalBexp(e.Operand, env)
		if err != nil {
			return false, err
		}
		return !v, nil
	case *ast.And:
		l, err := EvalBexp(e.Left, env)
		if err != nil {
			return false, err
		}
		if !l {
			return false, nil
		}
		return EvalBexp(e.Right, env)
	case *ast.Or:
		l, err := EvalBexp(e.Left, env)
		if err != nil {
			return false, err
		}
		if l {
			return true, nil
		}
		return EvalBexp(e.Right, env)
	}
	return false, fmt.Errorf("interp: unknown boolean expression %T", e)
}
