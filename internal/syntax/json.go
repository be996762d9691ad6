package syntax

import (
	"encoding/json"
	"io"
)

// FprintJSON writes a JSON representation of the AST to w.
// The encoding is the one ReadJSON accepts.
func FprintJSON(w io.Writer, node Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toJSON(node))
}

func toJSON(node Node) interface{} {
	if isNil(node) {
		return nil
	}

	switch n := node.(type) {
	case *File:
		return map[string]interface{}{
			"type":  "File",
			"pos":   n.pos.String(),
			"decls": mapSlice(n.Decls, func(d Decl) interface{} { return toJSON(d) }),
		}

	case *FuncDecl:
		m := map[string]interface{}{
			"type":   "FuncDecl",
			"pos":    n.pos.String(),
			"name":   n.Name.Value,
			"params": mapSlice(n.Params, func(f *Field) interface{} { return toJSON(f) }),
		}
		if n.Result != nil {
			m["result"] = toJSON(n.Result)
		}
		if n.Body != nil {
			m["body"] = toJSON(n.Body)
		}
		return m

	case *Field:
		m := map[string]interface{}{
			"type":      "Field",
			"pos":       n.pos.String(),
			"paramtype": toJSON(n.Type),
		}
		if n.Name != nil {
			m["name"] = n.Name.Value
		}
		return m

	case *StmtDecl:
		return map[string]interface{}{
			"type": "StmtDecl",
			"pos":  n.pos.String(),
			"stmt": toJSON(n.Stmt),
		}

	case *BlockStmt:
		m := map[string]interface{}{
			"type":  "BlockStmt",
			"pos":   n.pos.String(),
			"stmts": mapSlice(n.Stmts, func(s Stmt) interface{} { return toJSON(s) }),
		}
		if n.Tail != nil {
			m["tail"] = toJSON(n.Tail)
		}
		if n.Rbrace.IsValid() {
			m["rbrace"] = n.Rbrace.String()
		}
		return m

	case *LetStmt:
		m := map[string]interface{}{
			"type":    "LetStmt",
			"pos":     n.pos.String(),
			"pattern": toJSON(n.Pattern),
		}
		if n.Type != nil {
			m["vartype"] = toJSON(n.Type)
		}
		if n.Value != nil {
			m["value"] = toJSON(n.Value)
		}
		return m

	case *AssignStmt:
		op := "="
		if n.Op != 0 {
			op = n.Op.String() + "="
		}
		return map[string]interface{}{
			"type": "AssignStmt",
			"pos":  n.pos.String(),
			"op":   op,
			"lhs":  toJSON(n.LHS),
			"rhs":  toJSON(n.RHS),
		}

	case *IfStmt:
		m := map[string]interface{}{
			"type": "IfStmt",
			"pos":  n.pos.String(),
			"cond": toJSON(n.Cond),
			"then": toJSON(n.Then),
		}
		if n.Else != nil {
			m["else"] = toJSON(n.Else)
		}
		return m

	case *ForStmt:
		return map[string]interface{}{
			"type": "ForStmt",
			"pos":  n.pos.String(),
			"var":  toJSON(n.Var),
			"iter": toJSON(n.Iter),
			"body": toJSON(n.Body),
		}

	case *WhileStmt:
		return map[string]interface{}{
			"type": "WhileStmt",
			"pos":  n.pos.String(),
			"cond": toJSON(n.Cond),
			"body": toJSON(n.Body),
		}

	case *LoopStmt:
		return map[string]interface{}{
			"type": "LoopStmt",
			"pos":  n.pos.String(),
			"body": toJSON(n.Body),
		}

	case *ReturnStmt:
		m := map[string]interface{}{
			"type": "ReturnStmt",
			"pos":  n.pos.String(),
		}
		if n.Result != nil {
			m["result"] = toJSON(n.Result)
		}
		return m

	case *BranchStmt:
		return map[string]interface{}{
			"type":  "BranchStmt",
			"pos":   n.pos.String(),
			"token": n.Tok.String(),
		}

	case *ExprStmt:
		return map[string]interface{}{
			"type": "ExprStmt",
			"pos":  n.pos.String(),
			"x":    toJSON(n.X),
		}

	case *DeclStmt:
		return map[string]interface{}{
			"type": "DeclStmt",
			"pos":  n.pos.String(),
			"decl": toJSON(n.Decl),
		}

	case *EmptyStmt:
		return map[string]interface{}{
			"type": "EmptyStmt",
			"pos":  n.pos.String(),
		}

	case *BadStmt:
		return map[string]interface{}{
			"type": "BadStmt",
			"pos":  n.pos.String(),
			"kind": n.Kind,
		}

	case *Name:
		return map[string]interface{}{
			"type":  "Name",
			"pos":   n.pos.String(),
			"value": n.Value,
		}

	case *BasicLit:
		return map[string]interface{}{
			"type":  "BasicLit",
			"pos":   n.pos.String(),
			"kind":  n.Kind.String(),
			"value": n.Value,
		}

	case *Operation:
		m := map[string]interface{}{
			"type": "Operation",
			"pos":  n.pos.String(),
			"op":   n.Op.String(),
			"x":    toJSON(n.X),
		}
		if n.Y != nil {
			m["y"] = toJSON(n.Y)
		}
		return m

	case *ParenExpr:
		return map[string]interface{}{
			"type": "ParenExpr",
			"pos":  n.pos.String(),
			"x":    toJSON(n.X),
		}

	case *CallExpr:
		return map[string]interface{}{
			"type": "CallExpr",
			"pos":  n.pos.String(),
			"fun":  toJSON(n.Fun),
			"args": mapSlice(n.Args, func(e Expr) interface{} { return toJSON(e) }),
		}

	case *MatchExpr:
		return map[string]interface{}{
			"type": "MatchExpr",
			"pos":  n.pos.String(),
			"x":    toJSON(n.X),
			"arms": mapSlice(n.Arms, func(a *Arm) interface{} { return toJSON(a) }),
		}

	case *Arm:
		m := map[string]interface{}{
			"type":    "Arm",
			"pos":     n.pos.String(),
			"pattern": toJSON(n.Pattern),
			"body":    toJSON(n.Body),
		}
		if n.Guard != nil {
			m["guard"] = toJSON(n.Guard)
		}
		return m

	case *RangeExpr:
		m := map[string]interface{}{
			"type":      "RangeExpr",
			"pos":       n.pos.String(),
			"inclusive": n.Inclusive,
		}
		if n.Start != nil {
			m["start"] = toJSON(n.Start)
		}
		if n.End != nil {
			m["end"] = toJSON(n.End)
		}
		return m

	case *RefType:
		return map[string]interface{}{
			"type": "RefType",
			"pos":  n.pos.String(),
			"base": toJSON(n.Base),
			"mut":  n.Mut,
		}

	case *BadExpr:
		return map[string]interface{}{
			"type": "BadExpr",
			"pos":  n.pos.String(),
			"kind": n.Kind,
		}

	case *LitPat:
		return map[string]interface{}{
			"type":  "LitPat",
			"pos":   n.pos.String(),
			"value": toJSON(n.Value),
		}

	case *IdentPat:
		return map[string]interface{}{
			"type": "IdentPat",
			"pos":  n.pos.String(),
			"name": n.Name.Value,
			"mut":  n.Mut,
		}

	case *RangePat:
		m := map[string]interface{}{
			"type":      "RangePat",
			"pos":       n.pos.String(),
			"inclusive": n.Inclusive,
		}
		if n.Lo != nil {
			m["lo"] = toJSON(n.Lo)
		}
		if n.Hi != nil {
			m["hi"] = toJSON(n.Hi)
		}
		return m

	case *WildPat:
		return map[string]interface{}{
			"type": "WildPat",
			"pos":  n.pos.String(),
		}

	case *OrPat:
		return map[string]interface{}{
			"type": "OrPat",
			"pos":  n.pos.String(),
			"alts": mapSlice(n.Alts, func(p Pattern) interface{} { return toJSON(p) }),
		}

	case *BadPat:
		return map[string]interface{}{
			"type": "BadPat",
			"pos":  n.pos.String(),
			"kind": n.Kind,
		}

	default:
		return map[string]interface{}{
			"type": "Unknown",
		}
	}
}

// Helper functions to map slices

func mapSlice[T any](s []T, f func(T) interface{}) []interface{} {
	result := make([]interface{}, len(s))
	for i, v := range s {
		result[i] = f(v)
	}
	return result
}
