// Package codegen translates a source syntax tree into Luau source text.
//
// Translation is a single depth-first walk. Lines are collected in
// memory and written out only when the whole file translated, so a
// failed translation produces no output.
package codegen

import (
	"fmt"
	"io"
	"strings"

	"github.com/you-not-fish/luaugen/internal/syntax"
)

// Config specifies the configuration for code generation.
type Config struct {
	// Indent is the indentation unit for one nesting level.
	// If empty, four spaces are used.
	Indent string

	// Warn is called for each construct that was replaced by a
	// placeholder or skipped. If nil, warnings are silently ignored.
	Warn WarnHandler
}

// Generate translates f and writes the Luau program to w.
// If translation fails, nothing is written and the error is an *Error.
func Generate(w io.Writer, f *syntax.File, conf *Config) error {
	if conf == nil {
		conf = &Config{}
	}
	unit := conf.Indent
	if unit == "" {
		unit = defaultIndent
	}
	g := &generator{
		conf:  conf,
		e:     newEmitter(unit),
		scope: newScope(false),
	}
	if err := g.file(f); err != nil {
		return err
	}
	return g.e.flush(w)
}

// GenerateString is like Generate but returns the program as a string.
func GenerateString(f *syntax.File, conf *Config) (string, error) {
	var b strings.Builder
	if err := Generate(&b, f, conf); err != nil {
		return "", err
	}
	return b.String(), nil
}

// generator holds the state of one translation.
type generator struct {
	conf  *Config
	e     *emitter
	scope *scope // innermost function, or the file
}

// scope records the locals declared so far in one function body.
// Nested blocks share their function's scope.
type scope struct {
	declared map[string]bool
	inFunc   bool
	tmp      int // counter for generated temporaries
}

func newScope(inFunc bool) *scope {
	return &scope{declared: make(map[string]bool), inFunc: inFunc}
}

func (s *scope) declare(name string) {
	s.declared[name] = true
}

func (s *scope) isDeclared(name string) bool {
	return s.declared[name]
}

// temp declares and returns a fresh temporary name.
func (s *scope) temp(kind string) string {
	for {
		name := fmt.Sprintf("__%s%d", kind, s.tmp)
		s.tmp++
		if !s.declared[name] {
			s.declared[name] = true
			return name
		}
	}
}

func (g *generator) file(f *syntax.File) error {
	var prev syntax.Decl
	for _, d := range f.Decls {
		if prev != nil && (isFunc(prev) || isFunc(d)) {
			g.e.emitLine()
		}
		prev = d

		switch d := d.(type) {
		case *syntax.FuncDecl:
			if err := g.funcDecl(d, false); err != nil {
				return err
			}
		case *syntax.StmtDecl:
			if err := g.stmt(d.Stmt); err != nil {
				return err
			}
		default:
			return g.errorf(d.Pos(), ErrUnsupportedStatement, "unsupported declaration %T", d)
		}
	}
	return nil
}

func isFunc(d syntax.Decl) bool {
	_, ok := d.(*syntax.FuncDecl)
	return ok
}

// funcDecl emits a function definition. A local function is declared in
// the enclosing function, whose state is restored afterwards.
func (g *generator) funcDecl(fn *syntax.FuncDecl, local bool) error {
	params := make([]string, len(fn.Params))
	for i, p := range fn.Params {
		if p.Name == nil {
			return g.errorf(p.Pos(), ErrUnsupportedPattern, "parameter of %s is not a simple name", fn.Name.Value)
		}
		params[i] = p.Name.Value + ": " + g.luauType(p.Type)
	}

	header := fmt.Sprintf("function %s(%s)", fn.Name.Value, strings.Join(params, ", "))
	if fn.Result != nil {
		header += ": " + g.luauType(fn.Result)
	}
	if local {
		header = "local " + header
		g.scope.declare(fn.Name.Value)
	}

	outer := g.scope
	g.scope = newScope(true)
	defer func() { g.scope = outer }()
	for _, p := range fn.Params {
		g.scope.declare(p.Name.Value)
	}

	g.e.open("%s", header)
	if err := g.funcBody(fn.Body, fn.Result != nil); err != nil {
		return err
	}
	g.e.close("end")
	return nil
}

// funcBody emits a function body. The tail value is returned when the
// function declares a result type.
func (g *generator) funcBody(body *syntax.BlockStmt, returns bool) error {
	if body == nil {
		return nil
	}
	if err := g.stmtList(body.Stmts, body.Tail == nil); err != nil {
		return err
	}
	if body.Tail == nil {
		return nil
	}
	if !returns {
		return g.exprStmt(body.Tail)
	}
	v, err := g.expr(body.Tail)
	if err != nil {
		return err
	}
	g.e.emit("return %s", v)
	return nil
}
