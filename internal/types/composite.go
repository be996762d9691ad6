package types

// Ref represents a reference type &T or &mut T.
type Ref struct {
	typ
	base Type
	mut  bool
}

// NewRef creates a new reference type with the given base type.
func NewRef(base Type, mut bool) *Ref {
	return &Ref{base: base, mut: mut}
}

// Underlying implements Type.
// References are transparent: the underlying type is that of the base.
func (r *Ref) Underlying() Type {
	if r.base == nil {
		return r
	}
	return r.base.Underlying()
}

// String implements Type.
func (r *Ref) String() string {
	if r.mut {
		return "&mut " + typeString(r.base)
	}
	return "&" + typeString(r.base)
}

// Named represents a type name that is not predeclared, such as a
// user-defined struct, enum or a generic container. Its structure is unknown.
type Named struct {
	typ
	name string
}

// NewNamed creates a new opaque named type.
func NewNamed(name string) *Named {
	return &Named{name: name}
}

// Underlying implements Type.
func (n *Named) Underlying() Type {
	return n
}

// String implements Type.
func (n *Named) String() string {
	return n.name
}

func typeString(t Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
