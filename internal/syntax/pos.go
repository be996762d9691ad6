package syntax

import (
	"fmt"
	"strconv"
	"strings"
)

// Pos represents a position in a source file.
// The zero value is an invalid position.
type Pos struct {
	filename string // source file name
	line     uint32 // 1-based line number
	col      uint32 // 1-based column number (byte offset in line)
}

// NewPos creates a new Pos with the given filename, line, and column.
// Line and column numbers are 1-based.
func NewPos(filename string, line, col uint32) Pos {
	return Pos{filename: filename, line: line, col: col}
}

// String returns a string representation of the position in the format
// "filename:line:col" or "line:col" if filename is empty.
func (p Pos) String() string {
	if p.filename != "" {
		return fmt.Sprintf("%s:%d:%d", p.filename, p.line, p.col)
	}
	return fmt.Sprintf("%d:%d", p.line, p.col)
}

// IsValid reports whether the position is valid.
// A position is valid if line > 0.
func (p Pos) IsValid() bool {
	return p.line > 0
}

// Line returns the 1-based line number.
func (p Pos) Line() uint32 {
	return p.line
}

// Col returns the 1-based column number (byte offset in line).
func (p Pos) Col() uint32 {
	return p.col
}

// Filename returns the source file name.
func (p Pos) Filename() string {
	return p.filename
}

// ParsePos parses a position in the form produced by String:
// "filename:line:col" or "line:col". The empty string yields the zero Pos.
func ParsePos(s string) (Pos, error) {
	if s == "" {
		return Pos{}, nil
	}
	i := strings.LastIndexByte(s, ':')
	if i < 0 {
		return Pos{}, fmt.Errorf("invalid position %q", s)
	}
	col, err := strconv.ParseUint(s[i+1:], 10, 32)
	if err != nil {
		return Pos{}, fmt.Errorf("invalid column in position %q", s)
	}
	rest := s[:i]
	filename := ""
	if j := strings.LastIndexByte(rest, ':'); j >= 0 {
		filename, rest = rest[:j], rest[j+1:]
	}
	line, err := strconv.ParseUint(rest, 10, 32)
	if err != nil {
		return Pos{}, fmt.Errorf("invalid line in position %q", s)
	}
	return NewPos(filename, uint32(line), uint32(col)), nil
}
