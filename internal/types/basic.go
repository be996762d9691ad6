package types

// BasicKind describes the kind of basic type.
type BasicKind int

const (
	Invalid BasicKind = iota // invalid type

	Bool

	// Signed integers
	I8
	I16
	I32
	I64
	I128
	Isize

	// Unsigned integers
	U8
	U16
	U32
	U64
	U128
	Usize

	// Floating point
	F32
	F64

	Char

	// String slice and owned string
	Str
	String
)

// BasicInfo describes properties of a basic type.
type BasicInfo int

const (
	IsBoolean BasicInfo = 1 << iota
	IsInteger
	IsUnsigned
	IsFloat
	IsString
	IsRune
	IsNumeric = IsInteger | IsFloat
)

// Basic represents a primitive type such as i32, f64, bool or str.
type Basic struct {
	typ
	info BasicInfo
	name string
}

// Underlying implements Type.
func (b *Basic) Underlying() Type {
	return b
}

// String implements Type.
func (b *Basic) String() string {
	return b.name
}

// Typ holds the predeclared basic types, indexed by BasicKind.
// Typ[Invalid] is nil, representing an invalid type.
var Typ = []*Basic{
	Invalid: nil,
	Bool:    {info: IsBoolean, name: "bool"},
	I8:      {info: IsInteger, name: "i8"},
	I16:     {info: IsInteger, name: "i16"},
	I32:     {info: IsInteger, name: "i32"},
	I64:     {info: IsInteger, name: "i64"},
	I128:    {info: IsInteger, name: "i128"},
	Isize:   {info: IsInteger, name: "isize"},
	U8:      {info: IsInteger | IsUnsigned, name: "u8"},
	U16:     {info: IsInteger | IsUnsigned, name: "u16"},
	U32:     {info: IsInteger | IsUnsigned, name: "u32"},
	U64:     {info: IsInteger | IsUnsigned, name: "u64"},
	U128:    {info: IsInteger | IsUnsigned, name: "u128"},
	Usize:   {info: IsInteger | IsUnsigned, name: "usize"},
	F32:     {info: IsFloat, name: "f32"},
	F64:     {info: IsFloat, name: "f64"},
	Char:    {info: IsRune, name: "char"},
	Str:     {info: IsString, name: "str"},
	String:  {info: IsString, name: "String"},
}
