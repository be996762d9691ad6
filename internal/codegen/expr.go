package codegen

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/you-not-fish/luaugen/internal/syntax"
)

// binaryOps maps source binary operators to their Luau spelling.
// Operators missing from the table cannot be translated.
var binaryOps = map[syntax.Token]string{
	syntax.Add:    "+",
	syntax.Sub:    "-",
	syntax.Mul:    "*",
	syntax.Div:    "/",
	syntax.Eql:    "==",
	syntax.Neq:    "~=",
	syntax.Lss:    "<",
	syntax.Leq:    "<=",
	syntax.Gtr:    ">",
	syntax.Geq:    ">=",
	syntax.AndAnd: "and",
	syntax.OrOr:   "or",
}

// expr translates e to a Luau expression.
// A match expression is lowered into preceding statements and its
// value is read from a temporary.
func (g *generator) expr(e syntax.Expr) (string, error) {
	switch e := e.(type) {
	case *syntax.Name:
		return e.Value, nil

	case *syntax.BasicLit:
		return g.literal(e), nil

	case *syntax.Operation:
		if e.Y == nil {
			return g.unary(e)
		}
		return g.binary(e)

	case *syntax.ParenExpr:
		x, err := g.expr(e.X)
		if err != nil {
			return "", err
		}
		return "(" + x + ")", nil

	case *syntax.CallExpr:
		fun, err := g.expr(e.Fun)
		if err != nil {
			return "", err
		}
		args := make([]string, len(e.Args))
		for i, a := range e.Args {
			if args[i], err = g.expr(a); err != nil {
				return "", err
			}
		}
		return fun + "(" + strings.Join(args, ", ") + ")", nil

	case *syntax.MatchExpr:
		return g.hoistMatch(e)

	case nil:
		return "nil", nil
	}

	g.warnf(e.Pos(), "cannot translate %s; using nil", exprKind(e))
	return "nil", nil
}

func (g *generator) unary(x *syntax.Operation) (string, error) {
	var op string
	switch x.Op {
	case syntax.Sub:
		op = "-"
	case syntax.Not:
		op = "not "
	case syntax.And, syntax.Mul:
		// Borrow and dereference have no runtime form.
	default:
		return "", g.errorf(x.Pos(), ErrUnsupportedOperator, "unsupported operator %s", x.Op)
	}

	s, err := g.expr(x.X)
	if err != nil {
		return "", err
	}
	if op == "" {
		return s, nil
	}
	if isBinary(x.X) || (op == "-" && strings.HasPrefix(s, "-")) {
		s = "(" + s + ")"
	}
	return op + s, nil
}

func (g *generator) binary(x *syntax.Operation) (string, error) {
	op, ok := binaryOps[x.Op]
	if !ok {
		return "", g.errorf(x.Pos(), ErrUnsupportedOperator, "unsupported operator %s", x.Op)
	}
	prec := x.Op.Precedence()
	l, err := g.operand(x.X, prec, false)
	if err != nil {
		return "", err
	}
	if (x.Op == syntax.AndAnd || x.Op == syntax.OrOr) && hasMatch(x.Y) {
		return g.shortCircuit(x, l)
	}
	r, err := g.operand(x.Y, prec, true)
	if err != nil {
		return "", err
	}
	return l + " " + op + " " + r, nil
}

// shortCircuit lowers a logical operator whose right operand contains a
// match. The match statements run only when the left value l does not
// already decide the result, and the result is left in a temporary.
func (g *generator) shortCircuit(x *syntax.Operation, l string) (string, error) {
	tmp := g.scope.temp("cond")
	g.e.emit("local %s = %s", tmp, l)
	if x.Op == syntax.AndAnd {
		g.e.open("if %s then", tmp)
	} else {
		g.e.open("if not %s then", tmp)
	}
	r, err := g.expr(x.Y)
	if err != nil {
		return "", err
	}
	g.e.emit("%s = %s", tmp, r)
	g.e.close("end")
	return tmp, nil
}

// operand translates an operand of a binary operator with precedence prec,
// parenthesizing it when the tree shape would otherwise be lost.
func (g *generator) operand(e syntax.Expr, prec int, right bool) (string, error) {
	s, err := g.expr(e)
	if err != nil {
		return "", err
	}
	if op, ok := e.(*syntax.Operation); ok && op.Y != nil {
		if p := op.Op.Precedence(); p < prec || (right && p == prec) {
			s = "(" + s + ")"
		}
	}
	return s, nil
}

func isBinary(e syntax.Expr) bool {
	op, ok := e.(*syntax.Operation)
	return ok && op.Y != nil
}

// literal translates a literal. Literals with no Luau counterpart
// become nil.
func (g *generator) literal(lit *syntax.BasicLit) string {
	switch lit.Kind {
	case syntax.IntLit:
		if n, ok := parseInt(lit.Value); ok {
			return n.String()
		}
	case syntax.FloatLit:
		if f, ok := parseFloat(lit.Value); ok {
			return f
		}
	case syntax.StringLit:
		return quote(lit.Value)
	case syntax.BoolLit:
		if lit.Value == "true" || lit.Value == "false" {
			return lit.Value
		}
	}
	g.warnf(lit.Pos(), "cannot translate %s literal %s; using nil", lit.Kind, lit.Value)
	return "nil"
}

var intSuffixes = []string{
	"i128", "u128", "isize", "usize",
	"i16", "i32", "i64", "u16", "u32", "u64",
	"i8", "u8",
}

// parseInt parses an integer literal, including digit separators,
// a type suffix and a 0x, 0o or 0b prefix.
func parseInt(s string) (*big.Int, bool) {
	s = strings.ReplaceAll(s, "_", "")
	for _, suffix := range intSuffixes {
		if len(s) > len(suffix) && strings.HasSuffix(s, suffix) {
			s = s[:len(s)-len(suffix)]
			break
		}
	}
	base := 10
	if len(s) > 2 && s[0] == '0' && strings.ContainsRune("xob", rune(s[1])) {
		base = 0
	}
	return new(big.Int).SetString(s, base)
}

// parseFloat validates a float literal and returns it without digit
// separators or type suffix.
func parseFloat(s string) (string, bool) {
	s = strings.ReplaceAll(s, "_", "")
	s = strings.TrimSuffix(strings.TrimSuffix(s, "f32"), "f64")
	if s == "" || s[0] < '0' || s[0] > '9' {
		return "", false
	}
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return "", false
	}
	return s, true
}

// quote returns s as a double-quoted Luau string literal.
func quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if c < 0x20 || c == 0x7f {
				fmt.Fprintf(&b, `\%03d`, c)
			} else {
				b.WriteByte(c)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}

// exprKind describes an expression for diagnostics.
func exprKind(e syntax.Expr) string {
	switch e := e.(type) {
	case *syntax.Name:
		return "name " + e.Value
	case *syntax.CallExpr:
		return "call expression"
	case *syntax.MatchExpr:
		return "match expression"
	case *syntax.Operation:
		if e.Y == nil {
			return "unary " + e.Op.String() + " expression"
		}
		return "binary " + e.Op.String() + " expression"
	case *syntax.RangeExpr:
		return "range expression"
	case *syntax.BlockStmt:
		return "block expression"
	case *syntax.RefType:
		return "type expression"
	case *syntax.BadExpr:
		return e.Kind + " expression"
	}
	return fmt.Sprintf("%T", e)
}
