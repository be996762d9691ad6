// Package syntax defines the abstract syntax tree consumed by the Luau code
// generator, together with its JSON encoding.
//
// Trees are produced by an external parser for the Rust-like source language
// and handed over as JSON documents (see ReadJSON). The generator treats a
// tree as immutable input.
package syntax

// ----------------------------------------------------------------------------
// Interfaces
//
// There are 4 main classes of nodes: Expressions, Statements, Declarations
// and Patterns. All nodes implement the Node interface. Each class further
// implements its own marker interface.

// Node is the interface implemented by all AST nodes.
type Node interface {
	Pos() Pos // position of first character belonging to the node
	aNode()   // marker method to restrict implementations to this package
}

// Expr is the interface for all expression nodes.
type Expr interface {
	Node
	aExpr()
}

// Stmt is the interface for all statement nodes.
type Stmt interface {
	Node
	aStmt()
}

// Decl is the interface for all declaration nodes.
type Decl interface {
	Node
	aDecl()
}

// Pattern is the interface for all pattern nodes (match arms, let and
// for-loop bindings).
type Pattern interface {
	Node
	aPattern()
}

// ----------------------------------------------------------------------------
// Base node types

// node is the base struct embedded in all AST nodes.
type node struct {
	pos Pos
}

func (n *node) Pos() Pos { return n.pos }
func (n *node) aNode()   {}

// SetPos sets the position of n. It is used by decoders and tests that build
// trees by hand.
func (n *node) SetPos(pos Pos) { n.pos = pos }

// expr is embedded in all expression nodes.
type expr struct{ node }

func (*expr) aExpr() {}

// stmt is embedded in all statement nodes.
type stmt struct{ node }

func (*stmt) aStmt() {}

// decl is embedded in all declaration nodes.
type decl struct{ node }

func (*decl) aDecl() {}

// pattern is embedded in all pattern nodes.
type pattern struct{ node }

func (*pattern) aPattern() {}

// ----------------------------------------------------------------------------
// Files and Declarations

// File represents one translation unit.
type File struct {
	node
	Decls []Decl // top-level items in source order
}

// FuncDecl represents a function item.
// fn Name(Params) -> Result { Body }
type FuncDecl struct {
	decl
	Name   *Name      // function name
	Params []*Field   // parameter list
	Result Expr       // return type (nil for unit)
	Body   *BlockStmt // function body
}

// Field represents a typed function parameter: Name: Type.
type Field struct {
	node
	Name *Name // parameter name (nil when the parameter binds a non-identifier pattern)
	Type Expr  // parameter type
}

// StmtDecl wraps a statement that appears at file scope.
// Script-style inputs use it for statements outside any function.
type StmtDecl struct {
	decl
	Stmt Stmt
}

// ----------------------------------------------------------------------------
// Expressions

// Name represents an identifier or a path (a::b::c) in expression or type
// position.
type Name struct {
	expr
	Value string
}

// BasicLit represents a literal value.
type BasicLit struct {
	expr
	Value string  // literal text for numbers, decoded text for strings, "true"/"false" for bools
	Kind  LitKind // IntLit, FloatLit, StringLit, BoolLit, CharLit, ByteLit
}

// Operation represents a unary or binary operation.
// For unary operations, Y is nil.
// For binary operations, both X and Y are set.
type Operation struct {
	expr
	Op Token // operator token
	X  Expr  // left operand (or only operand for unary)
	Y  Expr  // right operand (nil for unary)
}

// ParenExpr represents a parenthesized expression: (X)
type ParenExpr struct {
	expr
	X Expr
}

// CallExpr represents a function call: Fun(Args...)
type CallExpr struct {
	expr
	Fun  Expr
	Args []Expr
}

// MatchExpr represents a multi-way branch: match X { Arms... }
type MatchExpr struct {
	expr
	X    Expr   // scrutinee
	Arms []*Arm // arms in source order
}

// Arm represents one match arm: Pattern [if Guard] => Body
type Arm struct {
	node
	Pattern Pattern
	Guard   Expr // extra boolean condition (nil if none)
	Body    Expr // arm result; a *BlockStmt for braced bodies
}

// RangeExpr represents a range: Start..End or Start..=End.
// Either bound may be nil.
type RangeExpr struct {
	expr
	Start     Expr
	End       Expr
	Inclusive bool
}

// RefType represents a reference type: &Base or &mut Base.
type RefType struct {
	expr
	Base Expr
	Mut  bool
}

// BadExpr stands for an expression the parser recognized but that has no
// node of its own here (closures, method calls, struct literals, ...).
type BadExpr struct {
	expr
	Kind string // parser's name for the construct
}

// ----------------------------------------------------------------------------
// Patterns

// LitPat matches a literal value. Value is a *BasicLit, or a negated one.
type LitPat struct {
	pattern
	Value Expr
}

// IdentPat binds the matched value to a name.
type IdentPat struct {
	pattern
	Name *Name
	Mut  bool
}

// RangePat matches a value within Lo..Hi or Lo..=Hi.
type RangePat struct {
	pattern
	Lo        Expr
	Hi        Expr
	Inclusive bool
}

// WildPat is the wildcard pattern: _
type WildPat struct {
	pattern
}

// OrPat matches if any alternative matches: A | B | C
type OrPat struct {
	pattern
	Alts []Pattern
}

// BadPat stands for a pattern form without a node of its own (struct,
// tuple, slice patterns, ...).
type BadPat struct {
	pattern
	Kind string
}

// ----------------------------------------------------------------------------
// Statements

// EmptyStmt represents an empty statement (a stray semicolon).
type EmptyStmt struct {
	stmt
}

// ExprStmt represents an expression used as a statement.
type ExprStmt struct {
	stmt
	X Expr
}

// LetStmt represents a local binding: let Pattern[: Type] [= Value]
type LetStmt struct {
	stmt
	Pattern Pattern // binding pattern (an *IdentPat for supported forms)
	Type    Expr    // explicit type (nil if inferred)
	Value   Expr    // initializer (nil if none)
}

// AssignStmt represents an assignment: LHS = RHS or LHS op= RHS.
// Op is 0 for plain assignment and the binary operator for compound forms.
type AssignStmt struct {
	stmt
	Op  Token
	LHS Expr
	RHS Expr
}

// BlockStmt represents a block: { Stmts... Tail }
// A block is also an expression; its value is Tail.
type BlockStmt struct {
	stmt
	Stmts  []Stmt // statements
	Tail   Expr   // trailing expression without semicolon (nil if none)
	Rbrace Pos    // position of closing brace
}

func (*BlockStmt) aExpr() {}

// IfStmt represents a conditional: if Cond Then [else Else]
type IfStmt struct {
	stmt
	Cond Expr       // condition expression
	Then *BlockStmt // then branch
	Else Stmt       // else branch (nil, *IfStmt, or *BlockStmt)
}

// ForStmt represents a range loop: for Var in Iter { Body }
type ForStmt struct {
	stmt
	Var  Pattern    // loop binding
	Iter Expr       // iterable (a *RangeExpr for supported forms)
	Body *BlockStmt // loop body
}

// WhileStmt represents a conditional loop: while Cond { Body }
type WhileStmt struct {
	stmt
	Cond Expr
	Body *BlockStmt
}

// LoopStmt represents an infinite loop: loop { Body }
type LoopStmt struct {
	stmt
	Body *BlockStmt
}

// ReturnStmt represents a return statement: return [Result]
type ReturnStmt struct {
	stmt
	Result Expr // return value (nil for bare return)
}

// BranchStmt represents a break or continue statement.
type BranchStmt struct {
	stmt
	Tok Token // Break or Continue
}

// DeclStmt wraps a declaration as a statement.
// Used for function items nested inside function bodies.
type DeclStmt struct {
	stmt
	Decl Decl
}

// BadStmt stands for a statement form without a node of its own.
type BadStmt struct {
	stmt
	Kind string
}
