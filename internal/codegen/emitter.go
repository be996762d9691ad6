package codegen

import (
	"bufio"
	"fmt"
	"io"
)

// emitter accumulates indented Luau source lines.
// Nothing reaches the output writer until flush.
type emitter struct {
	lines []string
	ind   indent
}

func newEmitter(unit string) *emitter {
	return &emitter{ind: indent{unit: unit}}
}

// emit appends a formatted line at the current indentation.
func (e *emitter) emit(format string, args ...interface{}) {
	e.lines = append(e.lines, e.ind.prefix()+fmt.Sprintf(format, args...))
}

// emitLine appends a blank line.
func (e *emitter) emitLine() {
	e.lines = append(e.lines, "")
}

// open emits a block header and indents the lines that follow.
func (e *emitter) open(format string, args ...interface{}) {
	e.emit(format, args...)
	e.ind.increase()
}

// reopen emits a clause that continues the enclosing block, such as
// else or elseif, at the block header's indentation.
func (e *emitter) reopen(format string, args ...interface{}) {
	e.ind.decrease()
	e.open(format, args...)
}

// close dedents and emits the block terminator.
func (e *emitter) close(line string) {
	e.ind.decrease()
	e.emit("%s", line)
}

// flush writes all lines to w, each terminated by a newline.
func (e *emitter) flush(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, line := range e.lines {
		// bufio.Writer keeps the first error; Flush reports it.
		bw.WriteString(line)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
