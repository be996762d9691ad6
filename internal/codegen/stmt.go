package codegen

import (
	"math/big"

	"github.com/you-not-fish/luaugen/internal/syntax"
)

// stmtList emits a statement sequence. If final is set, the last
// statement ends its Luau block; a return or branch that does not is
// wrapped in do ... end, since Luau only allows them last in a block.
func (g *generator) stmtList(list []syntax.Stmt, final bool) error {
	last := len(list) - 1
	for last >= 0 && isEmpty(list[last]) {
		last--
	}
	for i, s := range list {
		if isJump(s) && !(final && i == last) {
			g.e.open("do")
			if err := g.stmt(s); err != nil {
				return err
			}
			g.e.close("end")
			continue
		}
		if err := g.stmt(s); err != nil {
			return err
		}
	}
	return nil
}

func isEmpty(s syntax.Stmt) bool {
	_, ok := s.(*syntax.EmptyStmt)
	return ok
}

func isJump(s syntax.Stmt) bool {
	switch s.(type) {
	case *syntax.ReturnStmt, *syntax.BranchStmt:
		return true
	}
	return false
}

// block emits the statements of b and evaluates its tail for effect.
func (g *generator) block(b *syntax.BlockStmt) error {
	if b == nil {
		return nil
	}
	if err := g.stmtList(b.Stmts, b.Tail == nil); err != nil {
		return err
	}
	if b.Tail != nil {
		return g.exprStmt(b.Tail)
	}
	return nil
}

func (g *generator) stmt(s syntax.Stmt) error {
	switch s := s.(type) {
	case *syntax.EmptyStmt:
		return nil

	case *syntax.LetStmt:
		return g.letStmt(s)

	case *syntax.AssignStmt:
		return g.assignStmt(s)

	case *syntax.IfStmt:
		return g.ifStmt(s)

	case *syntax.ForStmt:
		return g.forStmt(s)

	case *syntax.WhileStmt:
		return g.whileStmt(s)

	case *syntax.LoopStmt:
		g.e.open("while true do")
		if err := g.block(s.Body); err != nil {
			return err
		}
		g.e.close("end")
		return nil

	case *syntax.ReturnStmt:
		if s.Result == nil {
			g.e.emit("return")
			return nil
		}
		v, err := g.expr(s.Result)
		if err != nil {
			return err
		}
		g.e.emit("return %s", v)
		return nil

	case *syntax.BranchStmt:
		switch s.Tok {
		case syntax.Break:
			g.e.emit("break")
		case syntax.Continue:
			g.e.emit("continue")
		default:
			return g.errorf(s.Pos(), ErrUnsupportedStatement, "unsupported branch %s", s.Tok)
		}
		return nil

	case *syntax.ExprStmt:
		return g.exprStmt(s.X)

	case *syntax.BlockStmt:
		g.e.open("do")
		if err := g.block(s); err != nil {
			return err
		}
		g.e.close("end")
		return nil

	case *syntax.DeclStmt:
		if fn, ok := s.Decl.(*syntax.FuncDecl); ok {
			return g.funcDecl(fn, true)
		}
		return g.errorf(s.Pos(), ErrUnsupportedStatement, "unsupported declaration %T", s.Decl)

	case *syntax.BadStmt:
		return g.errorf(s.Pos(), ErrUnsupportedStatement, "unsupported %s statement", s.Kind)
	}
	return g.errorf(s.Pos(), ErrUnsupportedStatement, "unsupported statement %T", s)
}

// exprStmt evaluates x for its effects.
func (g *generator) exprStmt(x syntax.Expr) error {
	switch x := x.(type) {
	case *syntax.CallExpr:
		call, err := g.expr(x)
		if err != nil {
			return err
		}
		g.e.emit("%s", call)
		return nil
	case *syntax.MatchExpr:
		return g.matchInto("", x)
	case *syntax.BlockStmt:
		return g.stmt(x)
	case *syntax.BadExpr:
		g.warnf(x.Pos(), "skipping %s expression statement", x.Kind)
		return nil
	}
	v, err := g.expr(x)
	if err != nil {
		return err
	}
	g.e.emit("local _ = %s", v)
	return nil
}

func (g *generator) letStmt(s *syntax.LetStmt) error {
	var name string
	switch p := s.Pattern.(type) {
	case *syntax.IdentPat:
		name = p.Name.Value
	case *syntax.WildPat:
		if s.Value == nil {
			return nil
		}
		return g.exprStmt(s.Value)
	default:
		return g.errorf(s.Pattern.Pos(), ErrUnsupportedPattern, "unsupported binding pattern %T", p)
	}

	// A name is declared once per function; later bindings reuse it.
	if g.scope.isDeclared(name) {
		if s.Value == nil {
			return nil
		}
		return g.assignValue(name, s.Value)
	}

	annot := ""
	if s.Type != nil {
		annot = ": " + g.luauType(s.Type)
	}
	switch v := s.Value.(type) {
	case nil:
		g.e.emit("local %s%s", name, annot)
	case *syntax.MatchExpr:
		return g.declareMatch(name, annot, v)
	default:
		val, err := g.expr(v)
		if err != nil {
			return err
		}
		g.e.emit("local %s%s = %s", name, annot, val)
	}
	g.scope.declare(name)
	return nil
}

// declareMatch declares the local name with the value of m. When m reads
// an outer variable of the same name, the match is lowered into a
// temporary first, since the new local would shadow that variable.
func (g *generator) declareMatch(name, annot string, m *syntax.MatchExpr) error {
	if mentions(m, name) {
		tmp, err := g.hoistMatch(m)
		if err != nil {
			return err
		}
		g.e.emit("local %s%s = %s", name, annot, tmp)
		g.scope.declare(name)
		return nil
	}
	g.e.emit("local %s%s = nil", name, annot)
	g.scope.declare(name)
	return g.matchInto(name, m)
}

// compoundOps are the operators with a Luau compound assignment form.
var compoundOps = map[syntax.Token]string{
	syntax.Add: "+=",
	syntax.Sub: "-=",
	syntax.Mul: "*=",
	syntax.Div: "/=",
}

func (g *generator) assignStmt(s *syntax.AssignStmt) error {
	lhs, ok := s.LHS.(*syntax.Name)
	if !ok {
		return g.errorf(s.LHS.Pos(), ErrUnsupportedStatement, "unsupported assignment target %s", exprKind(s.LHS))
	}
	name := lhs.Value

	if s.Op != 0 {
		op, ok := compoundOps[s.Op]
		if !ok {
			return g.errorf(s.Pos(), ErrUnsupportedOperator, "unsupported operator %s=", s.Op)
		}
		v, err := g.expr(s.RHS)
		if err != nil {
			return err
		}
		g.e.emit("%s %s %s", name, op, v)
		return nil
	}

	// Inside a function the first assignment to a name declares it.
	if g.scope.inFunc && !g.scope.isDeclared(name) {
		if m, ok := s.RHS.(*syntax.MatchExpr); ok {
			return g.declareMatch(name, "", m)
		}
		v, err := g.expr(s.RHS)
		if err != nil {
			return err
		}
		g.e.emit("local %s = %s", name, v)
		g.scope.declare(name)
		return nil
	}
	return g.assignValue(name, s.RHS)
}

// assignValue emits target = value. A match value assigns target in
// each arm.
func (g *generator) assignValue(target string, value syntax.Expr) error {
	if m, ok := value.(*syntax.MatchExpr); ok {
		return g.matchInto(target, m)
	}
	v, err := g.expr(value)
	if err != nil {
		return err
	}
	g.e.emit("%s = %s", target, v)
	return nil
}

func (g *generator) ifStmt(s *syntax.IfStmt) error {
	cond, err := g.expr(s.Cond)
	if err != nil {
		return err
	}
	g.e.open("if %s then", cond)
	if err := g.ifRest(s); err != nil {
		return err
	}
	g.e.close("end")
	return nil
}

// ifRest emits the then block of s and its else chain, leaving the
// closing end to the caller.
func (g *generator) ifRest(s *syntax.IfStmt) error {
	if err := g.block(s.Then); err != nil {
		return err
	}
	switch els := s.Else.(type) {
	case nil:
		return nil

	case *syntax.IfStmt:
		if hasMatch(els.Cond) {
			// The condition needs statements of its own.
			g.e.reopen("else")
			return g.ifStmt(els)
		}
		cond, err := g.expr(els.Cond)
		if err != nil {
			return err
		}
		g.e.reopen("elseif %s then", cond)
		return g.ifRest(els)

	case *syntax.BlockStmt:
		g.e.reopen("else")
		return g.block(els)
	}
	return g.errorf(s.Else.Pos(), ErrUnsupportedStatement, "unsupported else branch %T", s.Else)
}

func (g *generator) forStmt(s *syntax.ForStmt) error {
	v, ok := s.Var.(*syntax.IdentPat)
	if !ok {
		return g.errorf(s.Var.Pos(), ErrUnsupportedLoopVariable, "loop variable is not a simple name")
	}
	r, ok := s.Iter.(*syntax.RangeExpr)
	if !ok {
		return g.errorf(s.Iter.Pos(), ErrUnsupportedIterator, "cannot iterate over %s", exprKind(s.Iter))
	}

	start := "0"
	if r.Start != nil {
		n, err := g.rangeLimit(r.Start)
		if err != nil {
			return err
		}
		start = n.String()
	}
	end := "math.huge"
	if r.End != nil {
		n, err := g.rangeLimit(r.End)
		if err != nil {
			return err
		}
		if !r.Inclusive {
			n.Sub(n, big.NewInt(1))
		}
		end = n.String()
	}

	// The loop variable is local to the loop body.
	name := v.Name.Value
	wasDeclared := g.scope.isDeclared(name)
	g.scope.declare(name)
	defer func() {
		if !wasDeclared {
			delete(g.scope.declared, name)
		}
	}()

	g.e.open("for %s = %s, %s do", name, start, end)
	if err := g.block(s.Body); err != nil {
		return err
	}
	g.e.close("end")
	return nil
}

// rangeLimit evaluates a for loop bound, which must be an integer
// literal, optionally negated.
func (g *generator) rangeLimit(e syntax.Expr) (*big.Int, error) {
	neg := false
	x := e
	if op, ok := x.(*syntax.Operation); ok && op.Op == syntax.Sub && op.Y == nil {
		neg, x = true, op.X
	}
	if lit, ok := x.(*syntax.BasicLit); ok && lit.Kind == syntax.IntLit {
		if n, ok := parseInt(lit.Value); ok {
			if neg {
				n.Neg(n)
			}
			return n, nil
		}
	}
	return nil, g.errorf(e.Pos(), ErrUnsupportedIterator, "range bound is not an integer literal")
}

func (g *generator) whileStmt(s *syntax.WhileStmt) error {
	if !hasMatch(s.Cond) {
		cond, err := g.expr(s.Cond)
		if err != nil {
			return err
		}
		g.e.open("while %s do", cond)
	} else {
		// Evaluate the condition at the top of every iteration.
		g.e.open("while true do")
		cond, err := g.expr(s.Cond)
		if err != nil {
			return err
		}
		g.e.open("if not (%s) then", cond)
		g.e.emit("break")
		g.e.close("end")
	}
	if err := g.block(s.Body); err != nil {
		return err
	}
	g.e.close("end")
	return nil
}
