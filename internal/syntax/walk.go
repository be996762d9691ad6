package syntax

// Visitor is called for each node during Walk.
// If it returns false, the children of the node are not visited.
type Visitor func(node Node) bool

// Walk traverses an AST in depth-first order.
// If visitor returns false, children are not visited.
func Walk(node Node, v Visitor) {
	if isNil(node) || !v(node) {
		return
	}

	switch n := node.(type) {
	case *File:
		for _, d := range n.Decls {
			Walk(d, v)
		}

	case *FuncDecl:
		Walk(n.Name, v)
		for _, p := range n.Params {
			Walk(p, v)
		}
		if n.Result != nil {
			Walk(n.Result, v)
		}
		if n.Body != nil {
			Walk(n.Body, v)
		}

	case *Field:
		if n.Name != nil {
			Walk(n.Name, v)
		}
		Walk(n.Type, v)

	case *StmtDecl:
		Walk(n.Stmt, v)

	case *BlockStmt:
		for _, s := range n.Stmts {
			Walk(s, v)
		}
		if n.Tail != nil {
			Walk(n.Tail, v)
		}

	case *LetStmt:
		Walk(n.Pattern, v)
		if n.Type != nil {
			Walk(n.Type, v)
		}
		if n.Value != nil {
			Walk(n.Value, v)
		}

	case *AssignStmt:
		Walk(n.LHS, v)
		Walk(n.RHS, v)

	case *IfStmt:
		Walk(n.Cond, v)
		Walk(n.Then, v)
		if n.Else != nil {
			Walk(n.Else, v)
		}

	case *ForStmt:
		Walk(n.Var, v)
		Walk(n.Iter, v)
		Walk(n.Body, v)

	case *WhileStmt:
		Walk(n.Cond, v)
		Walk(n.Body, v)

	case *LoopStmt:
		Walk(n.Body, v)

	case *ReturnStmt:
		if n.Result != nil {
			Walk(n.Result, v)
		}

	case *ExprStmt:
		Walk(n.X, v)

	case *DeclStmt:
		Walk(n.Decl, v)

	case *Operation:
		Walk(n.X, v)
		if n.Y != nil {
			Walk(n.Y, v)
		}

	case *ParenExpr:
		Walk(n.X, v)

	case *CallExpr:
		Walk(n.Fun, v)
		for _, a := range n.Args {
			Walk(a, v)
		}

	case *MatchExpr:
		Walk(n.X, v)
		for _, a := range n.Arms {
			Walk(a, v)
		}

	case *Arm:
		Walk(n.Pattern, v)
		if n.Guard != nil {
			Walk(n.Guard, v)
		}
		Walk(n.Body, v)

	case *RangeExpr:
		if n.Start != nil {
			Walk(n.Start, v)
		}
		if n.End != nil {
			Walk(n.End, v)
		}

	case *RefType:
		Walk(n.Base, v)

	case *LitPat:
		Walk(n.Value, v)

	case *IdentPat:
		Walk(n.Name, v)

	case *RangePat:
		if n.Lo != nil {
			Walk(n.Lo, v)
		}
		if n.Hi != nil {
			Walk(n.Hi, v)
		}

	case *OrPat:
		for _, p := range n.Alts {
			Walk(p, v)
		}

	// Leaf nodes: Name, BasicLit, BadExpr, WildPat, BadPat,
	// EmptyStmt, BranchStmt, BadStmt
	// No children to visit
	}
}

// Inspect traverses an AST and calls f for each node.
// Convenience wrapper around Walk.
func Inspect(node Node, f func(Node) bool) {
	Walk(node, Visitor(f))
}

// isNil reports whether n is nil or a typed nil pointer stored in an
// interface, as happens with optional fields such as Field.Name.
func isNil(n Node) bool {
	if n == nil {
		return true
	}
	switch n := n.(type) {
	case *Name:
		return n == nil
	case *BlockStmt:
		return n == nil
	case *FuncDecl:
		return n == nil
	case *Field:
		return n == nil
	case *Arm:
		return n == nil
	}
	return false
}
