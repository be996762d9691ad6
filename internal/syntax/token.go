package syntax

import "fmt"

// Token represents an operator or keyword of the source language.
type Token uint

const (
	// Special tokens
	_Invalid Token = iota // zero value; also "no operator" in AssignStmt.Op

	// Logical operators
	OrOr   // ||
	AndAnd // &&

	// Comparison operators
	Eql // ==
	Neq // !=
	Lss // <
	Leq // <=
	Gtr // >
	Geq // >=

	// Arithmetic operators (additive)
	Add // +
	Sub // -
	Or  // |
	Xor // ^

	// Arithmetic operators (multiplicative)
	Mul // *
	Div // /
	Rem // %
	And // &
	Shl // <<
	Shr // >>

	// Unary operators
	Not // !

	// Keywords
	Break
	Continue

	tokenCount
)

// tokenNames maps tokens to their string representation.
var tokenNames = [...]string{
	_Invalid: "INVALID",

	OrOr:   "||",
	AndAnd: "&&",

	Eql: "==",
	Neq: "!=",
	Lss: "<",
	Leq: "<=",
	Gtr: ">",
	Geq: ">=",

	Add: "+",
	Sub: "-",
	Or:  "|",
	Xor: "^",

	Mul: "*",
	Div: "/",
	Rem: "%",
	And: "&",
	Shl: "<<",
	Shr: ">>",

	Not: "!",

	Break:    "break",
	Continue: "continue",
}

// String returns the string representation of the token.
func (t Token) String() string {
	if t < tokenCount {
		return tokenNames[t]
	}
	return fmt.Sprintf("token(%d)", t)
}

// Precedence returns the operator precedence for binary operators.
// Returns 0 for non-operators.
// Precedence levels (higher = binds tighter):
//
//	1: ||
//	2: &&
//	3: == != < <= > >=
//	4: + - | ^
//	5: * / % & << >>
func (t Token) Precedence() int {
	switch t {
	case OrOr:
		return 1
	case AndAnd:
		return 2
	case Eql, Neq, Lss, Leq, Gtr, Geq:
		return 3
	case Add, Sub, Or, Xor:
		return 4
	case Mul, Div, Rem, And, Shl, Shr:
		return 5
	}
	return 0
}

// IsOperator reports whether t is an operator token.
func (t Token) IsOperator() bool {
	return t >= OrOr && t <= Not
}

// IsKeyword reports whether t is a keyword token.
func (t Token) IsKeyword() bool {
	return t >= Break && t < tokenCount
}

// LitKind represents the kind of a literal.
type LitKind uint8

const (
	IntLit    LitKind = iota // 123, 0x1F, 1_000u32 (source spelling)
	FloatLit                 // 3.14, 1e10
	StringLit                // "hello"
	BoolLit                  // true, false
	CharLit                  // 'a'
	ByteLit                  // b'a'
)

// litKindNames maps literal kinds to their string representation.
var litKindNames = [...]string{
	IntLit:    "int",
	FloatLit:  "float",
	StringLit: "string",
	BoolLit:   "bool",
	CharLit:   "char",
	ByteLit:   "byte",
}

// String returns the string representation of the literal kind.
func (k LitKind) String() string {
	if k <= ByteLit {
		return litKindNames[k]
	}
	return fmt.Sprintf("LitKind(%d)", k)
}

// tokens maps source spellings to their token.
var tokens = func() map[string]Token {
	m := make(map[string]Token, tokenCount)
	for t := OrOr; t < tokenCount; t++ {
		m[tokenNames[t]] = t
	}
	return m
}()

// LookupOp returns the token spelled s.
// The boolean result reports whether s names a known token.
func LookupOp(s string) (Token, bool) {
	t, ok := tokens[s]
	return t, ok
}

// LookupLitKind returns the literal kind named s ("int", "string", ...).
func LookupLitKind(s string) (LitKind, bool) {
	for k, name := range litKindNames {
		if name == s {
			return LitKind(k), true
		}
	}
	return 0, false
}
