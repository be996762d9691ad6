package types

// Info returns the info flags of t's underlying basic type.
// It returns 0 for nil and for types that are not basic.
func Info(t Type) BasicInfo {
	if t == nil {
		return 0
	}
	if b, ok := t.Underlying().(*Basic); ok {
		return b.info
	}
	return 0
}
