package sink

import (
	"fmt"
	"io"
	"os"

	"github.com/colvin/schemer/pkg/schemer"
)

// Console writes each processed line to a stream, one per line. The
// default destination is stdout; diagnostics stay on stderr so composed
// SQL can be piped cleanly.
type Console struct {
	out io.Writer
}

// NewConsole creates a console sink writing to stdout.
func NewConsole() *Console {
	return &Console{out: os.Stdout}
}

// NewConsoleTo creates a console sink writing to the given writer.
// Used in tests to capture output.
func NewConsoleTo(out io.Writer) *Console {
	return &Console{out: out}
}

// Write dispatches one line with a trailing newline.
func (s *Console) Write(line string) error {
	if _, err := fmt.Fprintln(s.out, line); err != nil {
		return fmt.Errorf("failed to write line: %w", err)
	}
	return nil
}

// Finish is a no-op; the console stream is not owned by the sink.
func (s *Console) Finish() error {
	return nil
}

// Verify Console implements the interface at compile time
var _ schemer.Sink = (*Console)(nil)
