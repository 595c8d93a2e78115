// Package lexer implements the IMP tokeniser.
//
// The lexer converts an IMP source string into a flat sequence of [ast.Token]
// values. [Lex] is the usual entry point and returns the whole sequence at
// once, which is the shape the parser consumes; the underlying scanner is also
// exported for callers that want one token at a time.
//
// Design notes:
//   - Single-pass, character-by-character scanning using a read position cursor.
//   - No global state; every [Lexer] is independent.
//   - Line and column numbers are tracked for every token (1-based).
//   - Comments (# …) are consumed silently; no token is emitted.
//   - Identifiers are scanned first and then re-classified as RESERVED when
//     they match a keyword; this keeps the main switch statement small.
//   - Multi-character operators (:=, <=, >=, !=) require one character of
//     look-ahead and are handled by peekChar.
//   - An unrecognised character is reported as an error carrying its position;
//     the lexer never emits an ILLEGAL token.
package lexer

import (
	"fmt"

	"github.com/imptools/imp/ast"
)

// Lex tokenises an entire IMP source string. The returned slice never
// contains an EOF sentinel; end of input is simply the end of the slice.
func Lex(input string) ([]ast.Token, error) {
	l := New(input)
	var toks []ast.Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		if tok.Tag == ast.EOF {
			return toks, nil
		}
		toks = append(toks, tok)
	}
}

// Lexer holds all state required to tokenise a single IMP source string.
// Create one with [New]; never copy a Lexer after first use.
type Lexer struct {
	input   string // the full source text
	pos     int    // current read position (index of ch)
	readPos int    // next read position (pos + 1)
	ch      byte   // current character under examination

	line int // current 1-based line number
	col  int // 1-based column of ch
}

// New creates a [Lexer] that tokenises the given input string.
// The lexer is positioned at the first character; call [Lexer.NextToken]
// immediately to begin scanning.
func New(input string) *Lexer {
	l := &Lexer{
		input: input,
		line:  1,
		col:   0,
	}
	l.readChar() // prime: set l.ch = input[0]
	return l
}

// NextToken returns the next token from the input.
//
// Whitespace (spaces, tabs, carriage returns, newlines) is skipped before
// each token, as are comments (# …). When the input is exhausted, NextToken
// returns a token with Tag == [ast.EOF] on every subsequent call. When it
// encounters a character that cannot begin any IMP token it returns an error
// naming the character and its position.
func (l *Lexer) NextToken() (ast.Token, error) {
	l.skipWhitespaceAndComments()

	line, col := l.line, l.col

	switch {
	case l.ch == 0:
		return l.makeToken(ast.EOF, "", line, col), nil

	// ── Single-character symbols ────────────────────────────────────────────
	case l.ch == ';':
		return l.makeToken(ast.RESERVED, ";", line, col), nil
	case l.ch == '(':
		return l.makeToken(ast.RESERVED, "(", line, col), nil
	case l.ch == ')':
		return l.makeToken(ast.RESERVED, ")", line, col), nil
	case l.ch == '+':
		return l.makeToken(ast.RESERVED, "+", line, col), nil
	case l.ch == '-':
		return l.makeToken(ast.RESERVED, "-", line, col), nil
	case l.ch == '*':
		return l.makeToken(ast.RESERVED, "*", line, col), nil
	case l.ch == '/':
		return l.makeToken(ast.RESERVED, "/", line, col), nil
	case l.ch == '=':
		// A lone '=' is the equality comparison; assignment is ':='.
		return l.makeToken(ast.RESERVED, "=", line, col), nil

	// ── Symbols that may be one or two characters ───────────────────────────
	case l.ch == '<':
		if l.peekChar() == '=' {
			l.readChar()
			return l.makeToken(ast.RESERVED, "<=", line, col), nil
		}
		return l.makeToken(ast.RESERVED, "<", line, col), nil
	case l.ch == '>':
		if l.peekChar() == '=' {
			l.readChar()
			return l.makeToken(ast.RESERVED, ">=", line, col), nil
		}
		return l.makeToken(ast.RESERVED, ">", line, col), nil

	// ── Symbols that must be two characters ─────────────────────────────────
	case l.ch == ':':
		if l.peekChar() == '=' {
			l.readChar()
			return l.makeToken(ast.RESERVED, ":=", line, col), nil
		}
		return ast.Token{}, fmt.Errorf("lexer: unexpected character ':' at line %d col %d (did you mean ':='?)", line, col)
	case l.ch == '!':
		if l.peekChar() == '=' {
			l.readChar()
			return l.makeToken(ast.RESERVED, "!=", line, col), nil
		}
		return ast.Token{}, fmt.Errorf("lexer: unexpected character '!' at line %d col %d (did you mean '!='?)", line, col)

	// ── Literals and identifiers ────────────────────────────────────────────
	case isDigit(l.ch):
		lit := l.readWhile(isDigit)
		return ast.Token{Tag: ast.INT, Literal: lit, Line: line, Col: col}, nil
	case isLetter(l.ch):
		lit := l.readWhile(isIdentChar)
		tag := ast.IDENT
		if ast.IsKeyword(lit) {
			tag = ast.RESERVED
		}
		return ast.Token{Tag: tag, Literal: lit, Line: line, Col: col}, nil
	}

	return ast.Token{}, fmt.Errorf("lexer: unexpected character %q at line %d col %d", l.ch, line, col)
}

// ── Internal scanning helpers ─────────────────────────────────────────────────

// makeToken builds a token whose literal is fully scanned and advances past
// its final character.
func (l *Lexer) makeToken(tag ast.Tag, literal string, line, col int) ast.Token {
	l.readChar()
	return ast.Token{Tag: tag, Literal: literal, Line: line, Col: col}
}

// readChar advances the cursor by one character. At end of input, ch becomes
// 0 and stays there.
func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.col = 0
	}
	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++
	l.col++
}

// peekChar returns the next character without consuming it.
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// readWhile consumes characters as long as pred holds and returns the scanned
// text. On return, ch is the first character for which pred is false.
func (l *Lexer) readWhile(pred func(byte) bool) string {
	start := l.pos
	for pred(l.ch) {
		l.readChar()
	}
	return l.input[start:l.pos]
}

// skipWhitespaceAndComments consumes whitespace and # line comments until the
// next significant character.
func (l *Lexer) skipWhitespaceAndComments() {
	for {
		switch {
		case l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n':
			l.readChar()
		case l.ch == '#':
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
		default:
			return
		}
	}
}

func isDigit(ch byte) bool { return '0' <= ch && ch <= '9' }

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isIdentChar(ch byte) bool { return isLetter(ch) || isDigit(ch) }
