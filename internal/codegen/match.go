package codegen

import (
	"github.com/you-not-fish/luaugen/internal/syntax"
)

// armGuard is a translated match arm condition.
type armGuard struct {
	cond string
	wild bool
}

// matchInto lowers m to an if/elseif/else chain. Each arm assigns its
// value to target; with an empty target arm values are evaluated as
// statements. Arms keep their source order, so the first matching arm wins.
func (g *generator) matchInto(target string, m *syntax.MatchExpr) error {
	scrut, err := g.scrutinee(m.X)
	if err != nil {
		return err
	}

	// Validate every arm before emitting any of them.
	guards := make([]armGuard, len(m.Arms))
	for i, arm := range m.Arms {
		if arm.Guard != nil {
			return g.errorf(arm.Guard.Pos(), ErrUnsupportedGuardClause, "match arm with if guard")
		}
		cond, wild, err := g.pattern(arm.Pattern, scrut)
		if err != nil {
			return err
		}
		guards[i] = armGuard{cond, wild}
	}

	if len(m.Arms) == 0 {
		return nil
	}

	for i, arm := range m.Arms {
		switch {
		case i == 0 && guards[i].wild:
			g.e.open("if true then")
		case i == 0:
			g.e.open("if %s then", guards[i].cond)
		case guards[i].wild:
			g.e.reopen("else")
		default:
			g.e.reopen("elseif %s then", guards[i].cond)
		}
		if err := g.armBody(target, arm.Body); err != nil {
			return err
		}
		if guards[i].wild {
			for _, rest := range m.Arms[i+1:] {
				g.warnf(rest.Pos(), "unreachable match arm after wildcard")
			}
			break
		}
	}
	g.e.close("end")
	return nil
}

// scrutinee returns the Luau expression to test arm patterns against.
// Anything but a name or literal is evaluated once into a temporary.
func (g *generator) scrutinee(x syntax.Expr) (string, error) {
	switch x.(type) {
	case *syntax.Name, *syntax.BasicLit:
		return g.expr(x)
	}
	v, err := g.expr(x)
	if err != nil {
		return "", err
	}
	tmp := g.scope.temp("scrutinee")
	g.e.emit("local %s = %s", tmp, v)
	return tmp, nil
}

// armBody emits the body of one match arm.
func (g *generator) armBody(target string, body syntax.Expr) error {
	if b, ok := body.(*syntax.BlockStmt); ok {
		if err := g.stmtList(b.Stmts, b.Tail == nil && target == ""); err != nil {
			return err
		}
		switch {
		case target == "" && b.Tail != nil:
			return g.exprStmt(b.Tail)
		case target == "":
			return nil
		case b.Tail != nil:
			return g.assignValue(target, b.Tail)
		}
		g.e.emit("%s = nil", target)
		return nil
	}
	if target == "" {
		return g.exprStmt(body)
	}
	return g.assignValue(target, body)
}

// hoistMatch lowers a match used as an operand into a temporary and
// returns the temporary's name.
func (g *generator) hoistMatch(m *syntax.MatchExpr) (string, error) {
	tmp := g.scope.temp("match")
	g.e.emit("local %s = nil", tmp)
	if err := g.matchInto(tmp, m); err != nil {
		return "", err
	}
	return tmp, nil
}

// hasMatch reports whether e contains a match expression.
func hasMatch(e syntax.Expr) bool {
	found := false
	syntax.Inspect(e, func(n syntax.Node) bool {
		if _, ok := n.(*syntax.MatchExpr); ok {
			found = true
		}
		return !found
	})
	return found
}

// mentions reports whether e refers to the variable name.
func mentions(e syntax.Expr, name string) bool {
	found := false
	syntax.Inspect(e, func(n syntax.Node) bool {
		if x, ok := n.(*syntax.Name); ok && x.Value == name {
			found = true
		}
		return !found
	})
	return found
}
