// Package types describes the primitive source types that can appear in
// type annotations, and classifies them for target type mapping.
// This package provides type representations without AST dependencies.
package types

// Type is the interface implemented by all types.
type Type interface {
	// Underlying returns the underlying type.
	// For Ref types, returns the referenced type's underlying type.
	// For all other types, returns the receiver.
	Underlying() Type

	// String returns a human-readable representation of the type.
	String() string

	// aType is a marker method to restrict implementations to this package.
	aType()
}

// typ is a base struct for all type implementations.
type typ struct{}

func (typ) aType() {}
