package types

import "strings"

// universe maps predeclared type names to their types.
var universe map[string]*Basic

func init() {
	universe = make(map[string]*Basic, len(Typ))
	for _, b := range Typ {
		if b != nil {
			universe[b.name] = b
		}
	}
}

// Lookup returns the predeclared basic type with the given name, or nil.
// Path-qualified names such as std::string::String are looked up by
// their last segment.
func Lookup(name string) *Basic {
	if i := strings.LastIndex(name, "::"); i >= 0 {
		name = name[i+2:]
	}
	return universe[name]
}

// Resolve returns the type named by name: a predeclared basic type if one
// exists, otherwise an opaque Named type.
func Resolve(name string) Type {
	if b := Lookup(name); b != nil {
		return b
	}
	return NewNamed(name)
}
