package sink

import (
	"errors"
	"fmt"
	"os"

	"github.com/colvin/schemer/pkg/schemer"
)

// File writes processed lines to a single file opened once at
// construction and closed once by Finish. Ownership of the handle is
// exclusive to the running pass; callers defer Finish so the handle is
// released even when a run fails partway. Whatever was written before a
// failure stays in the file.
type File struct {
	path string
	f    *os.File
}

// NewFile creates a file sink, truncating or creating the file at path.
func NewFile(path string) (*File, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open output file %s: %w", path, err)
	}
	return &File{path: path, f: f}, nil
}

// Write dispatches one line with a trailing newline.
func (s *File) Write(line string) error {
	if s.f == nil {
		return errors.New("file sink already finished")
	}
	if _, err := s.f.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("failed to write to %s: %w", s.path, err)
	}
	return nil
}

// Finish closes the output file. Safe to call more than once.
func (s *File) Finish() error {
	if s.f == nil {
		return nil
	}
	f := s.f
	s.f = nil
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", s.path, err)
	}
	return nil
}

// Path returns the output file path.
func (s *File) Path() string {
	return s.path
}

// Verify File implements the interface at compile time
var _ schemer.Sink = (*File)(nil)
