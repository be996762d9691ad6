package types

import "testing"

func TestBasicTypes(t *testing.T) {
	tests := []struct {
		kind BasicKind
		name string
		info BasicInfo
	}{
		{Bool, "bool", IsBoolean},
		{I8, "i8", IsInteger},
		{I32, "i32", IsInteger},
		{I128, "i128", IsInteger},
		{Isize, "isize", IsInteger},
		{U8, "u8", IsInteger | IsUnsigned},
		{U64, "u64", IsInteger | IsUnsigned},
		{Usize, "usize", IsInteger | IsUnsigned},
		{F32, "f32", IsFloat},
		{F64, "f64", IsFloat},
		{Char, "char", IsRune},
		{Str, "str", IsString},
		{String, "String", IsString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			typ := Typ[tt.kind]
			if typ == nil {
				t.Fatalf("Typ[%d] is nil", tt.kind)
			}
			if Info(typ) != tt.info {
				t.Errorf("Info() = %v, want %v", Info(typ), tt.info)
			}
			if typ.String() != tt.name {
				t.Errorf("String() = %q, want %q", typ.String(), tt.name)
			}
			// Basic type's underlying is itself
			if typ.Underlying() != typ {
				t.Errorf("Underlying() != self")
			}
		})
	}
}

func TestTypTable(t *testing.T) {
	for kind, typ := range Typ {
		if kind == int(Invalid) {
			if typ != nil {
				t.Errorf("Typ[Invalid] = %v, want nil", typ)
			}
			continue
		}
		if typ == nil {
			t.Errorf("Typ[%d] is nil", kind)
			continue
		}
		if Lookup(typ.String()) != typ {
			t.Errorf("Lookup(%q) != Typ[%d]", typ.String(), kind)
		}
	}
}

func TestRefType(t *testing.T) {
	base := Typ[Str]
	ref := NewRef(base, false)

	if ref.String() != "&str" {
		t.Errorf("String() = %q, want %q", ref.String(), "&str")
	}
	if ref.Underlying() != base {
		t.Errorf("Underlying() = %v, want %v", ref.Underlying(), base)
	}

	mut := NewRef(Typ[I32], true)
	if mut.String() != "&mut i32" {
		t.Errorf("String() = %q, want %q", mut.String(), "&mut i32")
	}
}

func TestNestedRef(t *testing.T) {
	// &&mut f64
	ref := NewRef(NewRef(Typ[F64], true), false)

	if ref.String() != "&&mut f64" {
		t.Errorf("String() = %q, want %q", ref.String(), "&&mut f64")
	}
	if ref.Underlying() != Typ[F64] {
		t.Errorf("Underlying() = %v, want f64", ref.Underlying())
	}
}

func TestNamedType(t *testing.T) {
	named := NewNamed("Vec")

	if named.String() != "Vec" {
		t.Errorf("String() = %q, want %q", named.String(), "Vec")
	}
	if named.Underlying() != named {
		t.Errorf("Underlying() != self")
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		want *Basic
	}{
		{"i32", Typ[I32]},
		{"u128", Typ[U128]},
		{"f64", Typ[F64]},
		{"bool", Typ[Bool]},
		{"str", Typ[Str]},
		{"String", Typ[String]},
		{"std::string::String", Typ[String]},
		{"core::primitive::u8", Typ[U8]},
		{"char", Typ[Char]},
		{"Vec", nil},
		{"string", nil},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lookup(tt.name); got != tt.want {
				t.Errorf("Lookup(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	if got := Resolve("usize"); got != Typ[Usize] {
		t.Errorf("Resolve(usize) = %v, want usize", got)
	}
	got := Resolve("HashMap")
	named, ok := got.(*Named)
	if !ok {
		t.Fatalf("Resolve(HashMap) = %T, want *Named", got)
	}
	if named.String() != "HashMap" {
		t.Errorf("String() = %q, want HashMap", named.String())
	}
}
