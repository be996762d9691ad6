package codegen

import (
	"github.com/you-not-fish/luaugen/internal/syntax"
	"github.com/you-not-fish/luaugen/internal/types"
)

// luauType maps a source type expression to a Luau type annotation.
// Anything that is not a known primitive becomes "any"; a char type is
// reported, since its values are degraded as well.
func (g *generator) luauType(e syntax.Expr) string {
	t := resolveType(e)
	if types.Info(t)&types.IsRune != 0 {
		g.warnf(e.Pos(), "type %s has no Luau counterpart; using any", t)
	}
	return luauTypeOf(t)
}

// resolveType returns the type denoted by a type expression, or nil.
func resolveType(e syntax.Expr) types.Type {
	switch t := e.(type) {
	case *syntax.Name:
		return types.Resolve(t.Value)
	case *syntax.RefType:
		return types.NewRef(resolveType(t.Base), t.Mut)
	case *syntax.ParenExpr:
		return resolveType(t.X)
	}
	return nil
}

func luauTypeOf(t types.Type) string {
	info := types.Info(t)
	switch {
	case info&types.IsNumeric != 0:
		return "number"
	case info&types.IsBoolean != 0:
		return "boolean"
	case info&types.IsString != 0:
		return "string"
	}
	return "any"
}
