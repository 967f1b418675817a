package order

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/colvin/schemer/internal/files/filesystem"
	"github.com/colvin/schemer/pkg/schemer"
)

// Resolver computes the composition order for a schema root from its
// ORDER metadata files. The result always begins with the root prologue
// path and ends with the root epilogue path; neither is checked for
// existence here, so an absent one surfaces later as an open failure
// when the order is composed. Schema-directory prologues and epilogues,
// by contrast, are included only when present on disk. The asymmetry is
// long-standing behavior that downstream pipelines depend on.
type Resolver struct {
	fsProvider filesystem.FileSystem
	logger     schemer.Logger
}

// NewResolver creates a resolver over the given filesystem.
// Panics if fsProvider or logger is nil.
func NewResolver(fsProvider filesystem.FileSystem, logger schemer.Logger) *Resolver {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Resolver{
		fsProvider: fsProvider,
		logger:     logger,
	}
}

// Resolve reads rootPath/ORDER and each listed schema directory's ORDER
// file, expands their patterns, and returns the full deduplicated
// sequence of file paths to compose. A directory listed in the root
// ORDER that does not exist is not validated eagerly; it fails here
// when its ORDER file is read.
func (r *Resolver) Resolve(rootPath string) ([]string, error) {
	dirNames, err := r.readOrderFile(rootPath)
	if err != nil {
		return nil, err
	}

	var resolved []string
	seen := make(map[string]bool)

	for _, name := range dirNames {
		dirPath := filepath.Join(rootPath, name)

		patterns, err := r.readOrderFile(dirPath)
		if err != nil {
			return nil, err
		}

		files, err := r.resolveDirectory(dirPath, patterns)
		if err != nil {
			return nil, err
		}

		// Cross-directory duplicates drop silently, keeping the
		// earliest appearance.
		for _, f := range files {
			if !seen[f] {
				seen[f] = true
				resolved = append(resolved, f)
			}
		}

		r.logger.Verbose("resolved %d files for %s", len(files), dirPath)
	}

	final := make([]string, 0, len(resolved)+2)
	final = append(final, filepath.Join(rootPath, schemer.PrologueFileName))
	final = append(final, resolved...)
	final = append(final, filepath.Join(rootPath, schemer.EpilogueFileName))
	return final, nil
}

// resolveDirectory expands a schema directory's patterns into its file
// list: matches are sorted lexicographically within each pattern,
// duplicates keep their earliest position, and an existing PROLOGUE.sql
// or EPILOGUE.sql is forced to the first or last slot.
func (r *Resolver) resolveDirectory(dirPath string, patterns []string) ([]string, error) {
	var files []string
	present := make(map[string]bool)

	for _, pattern := range patterns {
		matches, err := expandPattern(r.fsProvider, dirPath, pattern)
		if err != nil {
			return nil, err
		}
		sort.Strings(matches)

		for _, m := range matches {
			if !present[m] {
				present[m] = true
				files = append(files, m)
			}
		}
	}

	prologue := filepath.Join(dirPath, schemer.PrologueFileName)
	if r.isRegularFile(prologue) {
		files = append([]string{prologue}, removePath(files, prologue)...)
	}

	epilogue := filepath.Join(dirPath, schemer.EpilogueFileName)
	if r.isRegularFile(epilogue) {
		files = append(removePath(files, epilogue), epilogue)
	}

	return files, nil
}

// readOrderFile reads the ORDER file in dirPath and returns its
// trimmed, non-blank lines in file order.
func (r *Resolver) readOrderFile(dirPath string) ([]string, error) {
	orderPath := filepath.Join(dirPath, schemer.OrderFileName)

	content, err := r.fsProvider.ReadFile(orderPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", orderPath, schemer.ErrMissingOrderFile)
		}
		return nil, fmt.Errorf("failed to read %s: %w", orderPath, err)
	}

	var lines []string
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

func (r *Resolver) isRegularFile(path string) bool {
	info, err := r.fsProvider.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// removePath returns files with every occurrence of target dropped,
// preserving the order of the remaining entries.
func removePath(files []string, target string) []string {
	result := make([]string, 0, len(files))
	for _, f := range files {
		if f != target {
			result = append(result, f)
		}
	}
	return result
}

// Verify Resolver implements the interface at compile time
var _ schemer.Resolver = (*Resolver)(nil)
