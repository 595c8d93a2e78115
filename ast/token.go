// Package ast defines the token model and the AST node types shared by the
// IMP lexer, parser and interpreter.
//
// Tokens are the smallest meaningful units of an IMP source file. Every token
// carries its tag (lexical category), the exact literal text it was scanned
// from, and its source position (line + column). Position is 1-based: the
// first character of a file is Line 1, Col 1.
package ast

// Tag identifies the lexical category of a scanned token.
// The zero value (ILLEGAL) is reserved and never appears in a lexed stream.
type Tag int

const (
	// ILLEGAL represents a character the lexer could not recognise. The lexer
	// reports such input as an error instead of emitting a token, so ILLEGAL
	// exists only as the reserved zero value.
	ILLEGAL Tag = iota
	// EOF marks the end of the input stream. It is a sentinel of the scanning
	// API ([lexer.Lexer.NextToken] returns it forever once the input is
	// exhausted) and is never included in a lexed token slice.
	EOF
	// RESERVED covers every keyword and symbol operator of IMP. Reserved
	// tokens are matched by exact literal text; the tag alone does not
	// distinguish ':=' from 'while'.
	RESERVED
	// INT is a decimal integer literal: [0-9]+
	INT
	// IDENT is a variable name: [a-zA-Z_][a-zA-Z0-9_]*
	// Identifiers that match a keyword are re-classified as RESERVED by the
	// lexer before the token is returned.
	IDENT
)

// String returns the tag name, useful in debug output.
func (t Tag) String() string {
	switch t {
	case EOF:
		return "EOF"
	case RESERVED:
		return "RESERVED"
	case INT:
		return "INT"
	case IDENT:
		return "IDENT"
	}
	return "ILLEGAL"
}

// keywords holds every alphabetic reserved word of IMP.
// The lexer consults this set when it finishes scanning an identifier.
var keywords = map[string]bool{
	"and":   true,
	"or":    true,
	"not":   true,
	"if":    true,
	"then":  true,
	"else":  true,
	"while": true,
	"do":    true,
	"end":   true,
}

// IsKeyword reports whether ident is a reserved word of the language.
func IsKeyword(ident string) bool {
	return keywords[ident]
}

// Token is a single lexical unit produced by the IMP lexer.
//
// Fields:
//   - Tag     — the category of this token (see Tag constants)
//   - Literal — the exact source text that was scanned
//   - Line    — 1-based source line number
//   - Col     — 1-based column of the first character of this token
type Token struct {
	Tag     Tag
	Literal string
	Line    int
	Col     int
}

// String returns the token's literal text.
func (t Token) String() string {
	return t.Literal
}
