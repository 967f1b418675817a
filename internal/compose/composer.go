package compose

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"

	"github.com/google/uuid"

	"github.com/colvin/schemer/internal/files/filesystem"
	"github.com/colvin/schemer/internal/macro"
	"github.com/colvin/schemer/pkg/schemer"
)

// maxLineBytes bounds a single input line. Schema fragments are
// hand-written SQL; a megabyte line means something else is being fed
// through the pipeline.
const maxLineBytes = 1024 * 1024

// Composer streams a resolved order through macro substitution to a
// sink. Each processed line is dispatched before the next is read, so
// output delivered ahead of a failure stays delivered: there is no
// rollback or transactional buffering anywhere in the pipeline.
type Composer struct {
	fsProvider filesystem.FileSystem
	mapping    *macro.Mapping
	sink       schemer.Sink
	logger     schemer.Logger
}

// New creates a composer. Panics if any argument is nil.
func New(fsProvider filesystem.FileSystem, mapping *macro.Mapping, s schemer.Sink, logger schemer.Logger) *Composer {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if mapping == nil {
		panic("mapping cannot be nil")
	}
	if s == nil {
		panic("sink cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Composer{
		fsProvider: fsProvider,
		mapping:    mapping,
		sink:       s,
		logger:     logger,
	}
}

// Run processes every file in order. The first failure aborts the run;
// nothing already dispatched to the sink is withdrawn. The sink is not
// finished here; the caller owns its lifecycle.
func (c *Composer) Run(order []string) error {
	runID := uuid.New()
	c.logger.Verbose("composition run %s over %d files", runID, len(order))

	for _, path := range order {
		if err := c.processFile(path); err != nil {
			return err
		}
	}

	c.logger.Verbose("composition run %s complete", runID)
	return nil
}

// processFile streams one file's lines through substitution to the sink.
func (c *Composer) processFile(path string) error {
	rc, err := c.fsProvider.OpenFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s: %w", path, schemer.ErrFileNotFound)
		}
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer rc.Close()

	c.logger.Verbose("composing %s", path)

	scanner := bufio.NewScanner(rc)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lineNum := 0
	for scanner.Scan() {
		lineNum++

		processed, err := c.mapping.ProcessLine(scanner.Text())
		if err != nil {
			return fmt.Errorf("%s:%d: %w", path, lineNum, err)
		}
		if err := c.sink.Write(processed); err != nil {
			return fmt.Errorf("%s:%d: %w", path, lineNum, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	return nil
}

// Verify Composer implements the interface at compile time
var _ schemer.Composer = (*Composer)(nil)
