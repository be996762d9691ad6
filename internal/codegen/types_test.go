package codegen

import (
	"strings"
	"testing"

	"github.com/you-not-fish/luaugen/internal/syntax"
)

func TestLuauType(t *testing.T) {
	tests := []struct {
		typ  syntax.Expr
		want string
	}{
		{name("i8"), "number"},
		{name("i32"), "number"},
		{name("i128"), "number"},
		{name("isize"), "number"},
		{name("u8"), "number"},
		{name("u64"), "number"},
		{name("usize"), "number"},
		{name("f32"), "number"},
		{name("f64"), "number"},
		{name("bool"), "boolean"},
		{name("str"), "string"},
		{name("String"), "string"},
		{name("std::string::String"), "string"},
		{name("char"), "any"},
		{name("Vec"), "any"},
		{name("Option<i32>"), "any"},
		{name("string"), "any"},
		{&syntax.RefType{Base: name("str")}, "string"},
		{&syntax.RefType{Base: name("i64"), Mut: true}, "number"},
		{&syntax.RefType{Base: &syntax.RefType{Base: name("bool")}}, "boolean"},
		{&syntax.RefType{Base: name("HashMap")}, "any"},
		{paren(name("u16")), "number"},
		{&syntax.BadExpr{Kind: "tuple"}, "any"},
		{nil, "any"},
	}

	for _, tt := range tests {
		t.Run(typeName(tt.typ), func(t *testing.T) {
			if got := testGenerator(nil).luauType(tt.typ); got != tt.want {
				t.Errorf("luauType = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLuauTypeCharWarning(t *testing.T) {
	tests := []struct {
		typ  syntax.Expr
		want string
		warn string
	}{
		{name("char"), "any", "type char has no Luau counterpart; using any"},
		{&syntax.RefType{Base: name("char"), Mut: true}, "any", "type &mut char has no Luau counterpart; using any"},
		{name("Vec"), "any", ""},
		{name("u8"), "number", ""},
	}

	for _, tt := range tests {
		t.Run(typeName(tt.typ), func(t *testing.T) {
			var warnings []string
			if got := testGenerator(&warnings).luauType(tt.typ); got != tt.want {
				t.Errorf("luauType = %q, want %q", got, tt.want)
			}
			switch {
			case tt.warn == "" && len(warnings) > 0:
				t.Errorf("unexpected warnings %q", warnings)
			case tt.warn != "" && (len(warnings) != 1 || warnings[0] != tt.warn):
				t.Errorf("warnings = %q, want [%q]", warnings, tt.warn)
			}
		})
	}
}

func TestCharParameterWarns(t *testing.T) {
	f := file(fn("first", []*syntax.Field{param("c", name("char"))}, nil, block()))
	out, warnings := generateWarn(t, f)
	if want := "function first(c: any)\nend\n"; out != want {
		t.Errorf("got:\n%s\nwant:\n%s", out, want)
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0], "type char") {
		t.Errorf("warnings = %q, want one char type warning", warnings)
	}
}

func typeName(e syntax.Expr) string {
	switch e := e.(type) {
	case *syntax.Name:
		return e.Value
	case *syntax.RefType:
		return "&" + typeName(e.Base)
	case *syntax.ParenExpr:
		return "(" + typeName(e.X) + ")"
	case nil:
		return "nil"
	}
	return "other"
}
