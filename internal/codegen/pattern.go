package codegen

import (
	"strings"

	"github.com/you-not-fish/luaugen/internal/syntax"
)

// pattern translates p into a Luau condition that holds when scrut
// matches it. A pattern that matches anything reports wild instead.
func (g *generator) pattern(p syntax.Pattern, scrut string) (guard string, wild bool, err error) {
	switch p := p.(type) {
	case *syntax.WildPat:
		return "", true, nil

	case *syntax.LitPat:
		v, err := g.patternValue(p.Value)
		if err != nil {
			return "", false, err
		}
		return scrut + " == " + v, false, nil

	case *syntax.IdentPat:
		return scrut + " == " + p.Name.Value, false, nil

	case *syntax.RangePat:
		lo, err := g.rangeBound(p, p.Lo, "lower")
		if err != nil {
			return "", false, err
		}
		hi, err := g.rangeBound(p, p.Hi, "upper")
		if err != nil {
			return "", false, err
		}
		cmp := " < "
		if p.Inclusive {
			cmp = " <= "
		}
		return lo + " <= " + scrut + " and " + scrut + cmp + hi, false, nil

	case *syntax.OrPat:
		guards := make([]string, 0, len(p.Alts))
		for _, alt := range p.Alts {
			guard, w, err := g.pattern(alt, scrut)
			if err != nil {
				return "", false, err
			}
			if w {
				wild = true
			}
			guards = append(guards, guard)
		}
		if wild {
			return "", true, nil
		}
		return strings.Join(guards, " or "), false, nil

	case *syntax.BadPat:
		return "", false, g.errorf(p.Pos(), ErrUnsupportedPattern, "unsupported %s pattern", p.Kind)
	}
	return "", false, g.errorf(p.Pos(), ErrUnsupportedPattern, "unsupported pattern %T", p)
}

// patternValue translates the value of a literal pattern: a number,
// string or bool literal, optionally negated, or a named constant.
func (g *generator) patternValue(e syntax.Expr) (string, error) {
	switch v := e.(type) {
	case *syntax.Name:
		return v.Value, nil
	case *syntax.BasicLit:
		if v.Kind == syntax.CharLit || v.Kind == syntax.ByteLit {
			return "", g.errorf(v.Pos(), ErrUnsupportedPattern, "unsupported %s literal pattern %s", v.Kind, v.Value)
		}
		return g.literal(v), nil
	}
	if s, ok := g.numericLiteral(e); ok {
		return s, nil
	}
	return "", g.errorf(e.Pos(), ErrUnsupportedPattern, "unsupported literal pattern")
}

// rangeBound translates one bound of a range pattern, which must be a
// numeric literal.
func (g *generator) rangeBound(p *syntax.RangePat, e syntax.Expr, which string) (string, error) {
	if e == nil {
		return "", g.errorf(p.Pos(), ErrUnsupportedPatternBound, "range pattern without %s bound", which)
	}
	if s, ok := g.numericLiteral(e); ok {
		return s, nil
	}
	return "", g.errorf(e.Pos(), ErrUnsupportedPatternBound, "%s bound of range pattern is not a numeric literal", which)
}

// numericLiteral translates an integer or float literal, optionally
// negated. It reports false for any other expression.
func (g *generator) numericLiteral(e syntax.Expr) (string, bool) {
	neg := false
	if op, ok := e.(*syntax.Operation); ok && op.Op == syntax.Sub && op.Y == nil {
		neg, e = true, op.X
	}
	lit, ok := e.(*syntax.BasicLit)
	if !ok || (lit.Kind != syntax.IntLit && lit.Kind != syntax.FloatLit) {
		return "", false
	}
	s := g.literal(lit)
	if neg {
		s = "-" + s
	}
	return s, true
}
