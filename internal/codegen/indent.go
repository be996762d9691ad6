package codegen

import "strings"

// defaultIndent is the indentation unit used when Config.Indent is empty.
const defaultIndent = "    "

// indent tracks the block nesting depth of emitted lines.
type indent struct {
	unit string
	n    int
}

func (in *indent) increase() {
	in.n++
}

// decrease never takes the depth below zero.
func (in *indent) decrease() {
	if in.n > 0 {
		in.n--
	}
}

// prefix returns the unit repeated depth times.
func (in *indent) prefix() string {
	return strings.Repeat(in.unit, in.n)
}

func (in *indent) depth() int {
	return in.n
}
