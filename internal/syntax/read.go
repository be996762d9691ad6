package syntax

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// DecodeError reports a malformed AST document.
type DecodeError struct {
	Path string // JSON path of the offending value, e.g. $.decls[0].body
	Pos  Pos    // position of the innermost enclosing node, if known
	Msg  string
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: %s: %s", e.Pos, e.Path, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Msg)
}

// ReadJSON decodes a JSON AST document, as written by FprintJSON or by an
// external parser, into a File. Positions without a filename are attributed
// to filename.
func ReadJSON(filename string, r io.Reader) (*File, error) {
	var v interface{}
	if err := json.NewDecoder(r).Decode(&v); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	d := &decoder{filename: filename}
	f := d.file(v, "$")
	if d.err != nil {
		return nil, d.err
	}
	return f, nil
}

// decoder converts generic JSON values into nodes.
// Only the first error is kept; later calls become no-ops.
type decoder struct {
	filename string
	pos      Pos // position of the node being decoded
	err      error
}

func (d *decoder) errorf(path, format string, args ...interface{}) {
	if d.err != nil {
		return
	}
	d.err = &DecodeError{Path: path, Pos: d.pos, Msg: fmt.Sprintf(format, args...)}
}

// object returns v as a JSON object with the expected node type, or nil.
// It records the object's position as the current one.
func (d *decoder) object(v interface{}, path string) (map[string]interface{}, string) {
	if d.err != nil {
		return nil, ""
	}
	m, ok := v.(map[string]interface{})
	if !ok {
		d.errorf(path, "expected node object, found %s", jsonKind(v))
		return nil, ""
	}
	typ, ok := m["type"].(string)
	if !ok {
		d.errorf(path, "node has no \"type\"")
		return nil, ""
	}
	d.pos = d.position(m, "pos", path)
	return m, typ
}

func (d *decoder) position(m map[string]interface{}, key, path string) Pos {
	s, _ := m[key].(string)
	pos, err := ParsePos(s)
	if err != nil {
		d.errorf(path+"."+key, "%v", err)
		return Pos{}
	}
	if pos.IsValid() && pos.Filename() == "" {
		pos = NewPos(d.filename, pos.Line(), pos.Col())
	}
	return pos
}

func (d *decoder) str(m map[string]interface{}, key, path string) string {
	v, ok := m[key]
	if !ok {
		d.errorf(path, "missing %q", key)
		return ""
	}
	s, ok := v.(string)
	if !ok {
		d.errorf(path+"."+key, "expected string, found %s", jsonKind(v))
	}
	return s
}

func (d *decoder) boolean(m map[string]interface{}, key, path string) bool {
	v, ok := m[key]
	if !ok || v == nil {
		return false
	}
	b, ok := v.(bool)
	if !ok {
		d.errorf(path+"."+key, "expected bool, found %s", jsonKind(v))
	}
	return b
}

func (d *decoder) list(m map[string]interface{}, key, path string) []interface{} {
	v, ok := m[key]
	if !ok || v == nil {
		return nil
	}
	l, ok := v.([]interface{})
	if !ok {
		d.errorf(path+"."+key, "expected array, found %s", jsonKind(v))
	}
	return l
}

func (d *decoder) name(m map[string]interface{}, key, path string) *Name {
	n := &Name{Value: d.str(m, key, path)}
	n.pos = d.pos
	return n
}

// ----------------------------------------------------------------------------
// Declarations

func (d *decoder) file(v interface{}, path string) *File {
	m, typ := d.object(v, path)
	if m == nil {
		return nil
	}
	if typ != "File" {
		d.errorf(path, "expected File, found %s", typ)
		return nil
	}
	f := &File{}
	f.pos = d.pos
	for i, dv := range d.list(m, "decls", path) {
		f.Decls = append(f.Decls, d.decl(dv, fmt.Sprintf("%s.decls[%d]", path, i)))
	}
	return f
}

func (d *decoder) decl(v interface{}, path string) Decl {
	m, typ := d.object(v, path)
	if m == nil {
		return nil
	}
	pos := d.pos
	switch typ {
	case "FuncDecl":
		n := &FuncDecl{Name: d.name(m, "name", path)}
		n.pos = pos
		for i, pv := range d.list(m, "params", path) {
			n.Params = append(n.Params, d.field(pv, fmt.Sprintf("%s.params[%d]", path, i)))
		}
		n.Result = d.optExpr(m, "result", path)
		n.Body = d.block(m["body"], path+".body")
		return n

	case "StmtDecl":
		n := &StmtDecl{Stmt: d.stmt(m["stmt"], path+".stmt")}
		n.pos = pos
		return n
	}
	d.errorf(path, "unknown declaration %q", typ)
	return nil
}

func (d *decoder) field(v interface{}, path string) *Field {
	m, typ := d.object(v, path)
	if m == nil {
		return nil
	}
	if typ != "Field" {
		d.errorf(path, "expected Field, found %s", typ)
		return nil
	}
	f := &Field{}
	f.pos = d.pos
	if _, ok := m["name"]; ok {
		f.Name = d.name(m, "name", path)
	}
	f.Type = d.expr(m["paramtype"], path+".paramtype")
	return f
}

// ----------------------------------------------------------------------------
// Statements

func (d *decoder) block(v interface{}, path string) *BlockStmt {
	m, typ := d.object(v, path)
	if m == nil {
		return nil
	}
	if typ != "BlockStmt" {
		d.errorf(path, "expected BlockStmt, found %s", typ)
		return nil
	}
	return d.blockFields(m, path)
}

func (d *decoder) blockFields(m map[string]interface{}, path string) *BlockStmt {
	b := &BlockStmt{}
	b.pos = d.pos
	b.Rbrace = d.position(m, "rbrace", path)
	for i, sv := range d.list(m, "stmts", path) {
		b.Stmts = append(b.Stmts, d.stmt(sv, fmt.Sprintf("%s.stmts[%d]", path, i)))
	}
	b.Tail = d.optExpr(m, "tail", path)
	return b
}

func (d *decoder) stmt(v interface{}, path string) Stmt {
	m, typ := d.object(v, path)
	if m == nil {
		return nil
	}
	pos := d.pos

	var s Stmt
	switch typ {
	case "BlockStmt":
		return d.blockFields(m, path)

	case "LetStmt":
		n := &LetStmt{Pattern: d.pattern(m["pattern"], path+".pattern")}
		n.Type = d.optExpr(m, "vartype", path)
		n.Value = d.optExpr(m, "value", path)
		n.pos = pos
		s = n

	case "AssignStmt":
		n := &AssignStmt{Op: d.assignOp(d.str(m, "op", path), path+".op")}
		n.LHS = d.expr(m["lhs"], path+".lhs")
		n.RHS = d.expr(m["rhs"], path+".rhs")
		n.pos = pos
		s = n

	case "ExprStmt":
		n := &ExprStmt{X: d.expr(m["x"], path+".x")}
		n.pos = pos
		s = n

	case "IfStmt":
		n := &IfStmt{Cond: d.expr(m["cond"], path+".cond")}
		n.Then = d.block(m["then"], path+".then")
		if ev, ok := m["else"]; ok && ev != nil {
			n.Else = d.stmt(ev, path+".else")
			switch n.Else.(type) {
			case *IfStmt, *BlockStmt, nil:
			default:
				d.errorf(path+".else", "else branch must be IfStmt or BlockStmt")
			}
		}
		n.pos = pos
		s = n

	case "ForStmt":
		n := &ForStmt{Var: d.pattern(m["var"], path+".var")}
		n.Iter = d.expr(m["iter"], path+".iter")
		n.Body = d.block(m["body"], path+".body")
		n.pos = pos
		s = n

	case "WhileStmt":
		n := &WhileStmt{Cond: d.expr(m["cond"], path+".cond")}
		n.Body = d.block(m["body"], path+".body")
		n.pos = pos
		s = n

	case "LoopStmt":
		n := &LoopStmt{Body: d.block(m["body"], path+".body")}
		n.pos = pos
		s = n

	case "ReturnStmt":
		n := &ReturnStmt{Result: d.optExpr(m, "result", path)}
		n.pos = pos
		s = n

	case "BranchStmt":
		tok, ok := LookupOp(d.str(m, "token", path))
		if !ok || !tok.IsKeyword() {
			d.errorf(path+".token", "expected break or continue")
		}
		n := &BranchStmt{Tok: tok}
		n.pos = pos
		s = n

	case "DeclStmt":
		n := &DeclStmt{Decl: d.decl(m["decl"], path+".decl")}
		n.pos = pos
		s = n

	case "EmptyStmt":
		n := &EmptyStmt{}
		n.pos = pos
		s = n

	case "BadStmt":
		n := &BadStmt{Kind: d.str(m, "kind", path)}
		n.pos = pos
		s = n

	default:
		d.errorf(path, "unknown statement %q", typ)
	}
	return s
}

// assignOp decodes "=" or a compound operator such as "+=".
func (d *decoder) assignOp(s, path string) Token {
	if s == "=" {
		return 0
	}
	// Compound forms exist for the additive and multiplicative operators only.
	if tok, ok := LookupOp(strings.TrimSuffix(s, "=")); ok && strings.HasSuffix(s, "=") && tok.Precedence() >= 4 {
		return tok
	}
	d.errorf(path, "invalid assignment operator %q", s)
	return 0
}

// ----------------------------------------------------------------------------
// Expressions

func (d *decoder) optExpr(m map[string]interface{}, key, path string) Expr {
	v, ok := m[key]
	if !ok || v == nil {
		return nil
	}
	return d.expr(v, path+"."+key)
}

func (d *decoder) expr(v interface{}, path string) Expr {
	m, typ := d.object(v, path)
	if m == nil {
		return nil
	}
	pos := d.pos

	var x Expr
	switch typ {
	case "Name":
		n := &Name{Value: d.str(m, "value", path)}
		n.pos = pos
		x = n

	case "BasicLit":
		kind, ok := LookupLitKind(d.str(m, "kind", path))
		if !ok {
			d.errorf(path+".kind", "unknown literal kind")
		}
		n := &BasicLit{Value: d.str(m, "value", path), Kind: kind}
		n.pos = pos
		x = n

	case "Operation":
		op, ok := LookupOp(d.str(m, "op", path))
		if !ok || !op.IsOperator() {
			d.errorf(path+".op", "unknown operator %q", m["op"])
		}
		n := &Operation{Op: op, X: d.expr(m["x"], path+".x")}
		n.Y = d.optExpr(m, "y", path)
		n.pos = pos
		x = n

	case "ParenExpr":
		n := &ParenExpr{X: d.expr(m["x"], path+".x")}
		n.pos = pos
		x = n

	case "CallExpr":
		n := &CallExpr{Fun: d.expr(m["fun"], path+".fun")}
		for i, av := range d.list(m, "args", path) {
			n.Args = append(n.Args, d.expr(av, fmt.Sprintf("%s.args[%d]", path, i)))
		}
		n.pos = pos
		x = n

	case "MatchExpr":
		n := &MatchExpr{X: d.expr(m["x"], path+".x")}
		for i, av := range d.list(m, "arms", path) {
			n.Arms = append(n.Arms, d.arm(av, fmt.Sprintf("%s.arms[%d]", path, i)))
		}
		n.pos = pos
		x = n

	case "RangeExpr":
		n := &RangeExpr{Inclusive: d.boolean(m, "inclusive", path)}
		n.Start = d.optExpr(m, "start", path)
		n.End = d.optExpr(m, "end", path)
		n.pos = pos
		x = n

	case "RefType":
		n := &RefType{Mut: d.boolean(m, "mut", path)}
		n.Base = d.expr(m["base"], path+".base")
		n.pos = pos
		x = n

	case "BlockStmt":
		return d.blockFields(m, path)

	case "BadExpr":
		n := &BadExpr{Kind: d.str(m, "kind", path)}
		n.pos = pos
		x = n

	default:
		d.errorf(path, "unknown expression %q", typ)
	}
	return x
}

func (d *decoder) arm(v interface{}, path string) *Arm {
	m, typ := d.object(v, path)
	if m == nil {
		return nil
	}
	if typ != "Arm" {
		d.errorf(path, "expected Arm, found %s", typ)
		return nil
	}
	a := &Arm{}
	a.pos = d.pos
	a.Pattern = d.pattern(m["pattern"], path+".pattern")
	a.Guard = d.optExpr(m, "guard", path)
	a.Body = d.expr(m["body"], path+".body")
	return a
}

// ----------------------------------------------------------------------------
// Patterns

func (d *decoder) pattern(v interface{}, path string) Pattern {
	m, typ := d.object(v, path)
	if m == nil {
		return nil
	}
	pos := d.pos

	var p Pattern
	switch typ {
	case "LitPat":
		n := &LitPat{Value: d.expr(m["value"], path+".value")}
		n.pos = pos
		p = n

	case "IdentPat":
		n := &IdentPat{Name: d.name(m, "name", path), Mut: d.boolean(m, "mut", path)}
		n.pos = pos
		p = n

	case "RangePat":
		n := &RangePat{Inclusive: d.boolean(m, "inclusive", path)}
		n.Lo = d.optExpr(m, "lo", path)
		n.Hi = d.optExpr(m, "hi", path)
		n.pos = pos
		p = n

	case "WildPat":
		n := &WildPat{}
		n.pos = pos
		p = n

	case "OrPat":
		n := &OrPat{}
		for i, av := range d.list(m, "alts", path) {
			n.Alts = append(n.Alts, d.pattern(av, fmt.Sprintf("%s.alts[%d]", path, i)))
		}
		n.pos = pos
		p = n

	case "BadPat":
		n := &BadPat{Kind: d.str(m, "kind", path)}
		n.pos = pos
		p = n

	default:
		d.errorf(path, "unknown pattern %q", typ)
	}
	return p
}

// jsonKind names the JSON type of v for error messages.
func jsonKind(v interface{}) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "bool"
	case float64, json.Number:
		return "number"
	case string:
		return "string"
	case []interface{}:
		return "array"
	case map[string]interface{}:
		return "object"
	}
	return fmt.Sprintf("%T", v)
}
