package sink

import (
	"github.com/colvin/schemer/pkg/schemer"
)

// Buffer accumulates processed lines in memory. It is the embeddable
// sink variant, not reachable from the command line. Lines are stored
// with their trailing newline and can be read at any point during a
// run, including after a mid-run failure, where the buffer holds
// everything dispatched before the failing line.
type Buffer struct {
	lines []string
}

// NewBuffer creates an empty buffer sink.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Write appends one line, newline included, to the buffer.
func (s *Buffer) Write(line string) error {
	s.lines = append(s.lines, line+"\n")
	return nil
}

// Finish is a no-op.
func (s *Buffer) Finish() error {
	return nil
}

// Lines returns a copy of the accumulated lines, each with its trailing
// newline.
func (s *Buffer) Lines() []string {
	result := make([]string, len(s.lines))
	copy(result, s.lines)
	return result
}

// Verify Buffer implements the interface at compile time
var _ schemer.Sink = (*Buffer)(nil)
