package codegen

import (
	"errors"
	"fmt"

	"github.com/you-not-fish/luaugen/internal/syntax"
)

// Translation failures. Each one aborts generation; errors.Is on the
// returned *Error reports which construct was rejected.
var (
	ErrUnsupportedOperator     = errors.New("unsupported operator")
	ErrUnsupportedPattern      = errors.New("unsupported pattern")
	ErrUnsupportedPatternBound = errors.New("unsupported pattern bound")
	ErrUnsupportedGuardClause  = errors.New("unsupported guard clause")
	ErrUnsupportedLoopVariable = errors.New("unsupported loop variable")
	ErrUnsupportedIterator     = errors.New("unsupported iterator")
	ErrUnsupportedStatement    = errors.New("unsupported statement")
)

// Error is a fatal translation error.
type Error struct {
	Pos syntax.Pos
	Err error  // one of the ErrUnsupported values
	Msg string // description of the offending construct
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

// Unwrap returns the failure class.
func (e *Error) Unwrap() error {
	return e.Err
}

// WarnHandler is called for each construct that was translated to a
// placeholder or skipped.
type WarnHandler func(pos syntax.Pos, msg string)

// errorf returns an *Error of the given class at pos.
func (g *generator) errorf(pos syntax.Pos, class error, format string, args ...interface{}) error {
	return &Error{Pos: pos, Err: class, Msg: fmt.Sprintf(format, args...)}
}

// warnf reports a non-fatal problem at pos.
func (g *generator) warnf(pos syntax.Pos, format string, args ...interface{}) {
	if g.conf.Warn != nil {
		g.conf.Warn(pos, fmt.Sprintf(format, args...))
	}
}
