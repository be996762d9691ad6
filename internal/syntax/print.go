package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes a textual representation of the AST to w.
func Fprint(w io.Writer, node Node) {
	p := &printer{w: w}
	p.print(node)
}

type printer struct {
	w      io.Writer
	indent int
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s%s", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

// child prints label followed by node one level deeper.
func (p *printer) child(label string, node Node) {
	p.printf("%s:\n", label)
	p.indent++
	p.print(node)
	p.indent--
}

func (p *printer) print(node Node) {
	if isNil(node) {
		return
	}

	switch n := node.(type) {
	case *File:
		p.printf("File %s\n", n.pos)
		p.indent++
		for _, d := range n.Decls {
			p.print(d)
		}
		p.indent--

	case *FuncDecl:
		p.printf("FuncDecl %s\n", n.pos)
		p.indent++
		p.printf("Name: %s\n", n.Name.Value)
		if len(n.Params) > 0 {
			p.printf("Params:\n")
			p.indent++
			for _, f := range n.Params {
				p.printf("%s %s\n", fieldName(f), typeString(f.Type))
			}
			p.indent--
		}
		if n.Result != nil {
			p.printf("Result: %s\n", typeString(n.Result))
		}
		if n.Body != nil {
			p.child("Body", n.Body)
		}
		p.indent--

	case *Field:
		p.printf("Field %s\n", n.pos)
		p.indent++
		p.printf("Name: %s\n", fieldName(n))
		p.printf("Type: %s\n", typeString(n.Type))
		p.indent--

	case *StmtDecl:
		p.printf("StmtDecl %s\n", n.pos)
		p.indent++
		p.print(n.Stmt)
		p.indent--

	case *BlockStmt:
		p.printf("BlockStmt %s\n", n.pos)
		p.indent++
		for _, s := range n.Stmts {
			p.print(s)
		}
		if n.Tail != nil {
			p.child("Tail", n.Tail)
		}
		p.indent--

	case *LetStmt:
		p.printf("LetStmt %s\n", n.pos)
		p.indent++
		p.child("Pattern", n.Pattern)
		if n.Type != nil {
			p.printf("Type: %s\n", typeString(n.Type))
		}
		if n.Value != nil {
			p.child("Value", n.Value)
		}
		p.indent--

	case *AssignStmt:
		if n.Op == 0 {
			p.printf("AssignStmt %s =\n", n.pos)
		} else {
			p.printf("AssignStmt %s %s=\n", n.pos, n.Op)
		}
		p.indent++
		p.child("LHS", n.LHS)
		p.child("RHS", n.RHS)
		p.indent--

	case *IfStmt:
		p.printf("IfStmt %s\n", n.pos)
		p.indent++
		p.child("Cond", n.Cond)
		p.child("Then", n.Then)
		if n.Else != nil {
			p.child("Else", n.Else)
		}
		p.indent--

	case *ForStmt:
		p.printf("ForStmt %s\n", n.pos)
		p.indent++
		p.child("Var", n.Var)
		p.child("Iter", n.Iter)
		p.child("Body", n.Body)
		p.indent--

	case *WhileStmt:
		p.printf("WhileStmt %s\n", n.pos)
		p.indent++
		p.child("Cond", n.Cond)
		p.child("Body", n.Body)
		p.indent--

	case *LoopStmt:
		p.printf("LoopStmt %s\n", n.pos)
		p.indent++
		p.child("Body", n.Body)
		p.indent--

	case *ReturnStmt:
		p.printf("ReturnStmt %s\n", n.pos)
		if n.Result != nil {
			p.indent++
			p.print(n.Result)
			p.indent--
		}

	case *BranchStmt:
		p.printf("BranchStmt %s %s\n", n.pos, n.Tok)

	case *ExprStmt:
		p.printf("ExprStmt %s\n", n.pos)
		p.indent++
		p.print(n.X)
		p.indent--

	case *DeclStmt:
		p.printf("DeclStmt %s\n", n.pos)
		p.indent++
		p.print(n.Decl)
		p.indent--

	case *EmptyStmt:
		p.printf("EmptyStmt %s\n", n.pos)

	case *BadStmt:
		p.printf("BadStmt %s %q\n", n.pos, n.Kind)

	case *Name:
		p.printf("Name %s %q\n", n.pos, n.Value)

	case *BasicLit:
		p.printf("BasicLit %s %s %q\n", n.pos, n.Kind, n.Value)

	case *Operation:
		if n.Y == nil {
			p.printf("UnaryOp %s %s\n", n.pos, n.Op)
			p.indent++
			p.print(n.X)
			p.indent--
		} else {
			p.printf("BinaryOp %s %s\n", n.pos, n.Op)
			p.indent++
			p.child("X", n.X)
			p.child("Y", n.Y)
			p.indent--
		}

	case *ParenExpr:
		p.printf("ParenExpr %s\n", n.pos)
		p.indent++
		p.print(n.X)
		p.indent--

	case *CallExpr:
		p.printf("CallExpr %s\n", n.pos)
		p.indent++
		p.child("Fun", n.Fun)
		if len(n.Args) > 0 {
			p.printf("Args:\n")
			p.indent++
			for _, a := range n.Args {
				p.print(a)
			}
			p.indent--
		}
		p.indent--

	case *MatchExpr:
		p.printf("MatchExpr %s\n", n.pos)
		p.indent++
		p.child("X", n.X)
		for _, a := range n.Arms {
			p.print(a)
		}
		p.indent--

	case *Arm:
		p.printf("Arm %s\n", n.pos)
		p.indent++
		p.child("Pattern", n.Pattern)
		if n.Guard != nil {
			p.child("Guard", n.Guard)
		}
		p.child("Body", n.Body)
		p.indent--

	case *RangeExpr:
		p.printf("RangeExpr %s %s\n", n.pos, rangeOp(n.Inclusive))
		p.indent++
		if n.Start != nil {
			p.child("Start", n.Start)
		}
		if n.End != nil {
			p.child("End", n.End)
		}
		p.indent--

	case *RefType:
		p.printf("RefType %s %s\n", n.pos, typeString(n))

	case *BadExpr:
		p.printf("BadExpr %s %q\n", n.pos, n.Kind)

	case *LitPat:
		p.printf("LitPat %s\n", n.pos)
		p.indent++
		p.print(n.Value)
		p.indent--

	case *IdentPat:
		if n.Mut {
			p.printf("IdentPat %s mut %q\n", n.pos, n.Name.Value)
		} else {
			p.printf("IdentPat %s %q\n", n.pos, n.Name.Value)
		}

	case *RangePat:
		p.printf("RangePat %s %s\n", n.pos, rangeOp(n.Inclusive))
		p.indent++
		if n.Lo != nil {
			p.child("Lo", n.Lo)
		}
		if n.Hi != nil {
			p.child("Hi", n.Hi)
		}
		p.indent--

	case *WildPat:
		p.printf("WildPat %s\n", n.pos)

	case *OrPat:
		p.printf("OrPat %s\n", n.pos)
		p.indent++
		for _, a := range n.Alts {
			p.print(a)
		}
		p.indent--

	case *BadPat:
		p.printf("BadPat %s %q\n", n.pos, n.Kind)

	default:
		p.printf("<%T>\n", node)
	}
}

func fieldName(f *Field) string {
	if f.Name == nil {
		return "<pattern>"
	}
	return f.Name.Value
}

func rangeOp(inclusive bool) string {
	if inclusive {
		return "..="
	}
	return ".."
}

// typeString returns a string representation of a type expression.
func typeString(e Expr) string {
	if e == nil {
		return "<nil>"
	}
	switch t := e.(type) {
	case *Name:
		return t.Value
	case *RefType:
		if t.Mut {
			return "&mut " + typeString(t.Base)
		}
		return "&" + typeString(t.Base)
	case *BadExpr:
		return "<" + t.Kind + ">"
	default:
		return fmt.Sprintf("<%T>", e)
	}
}
