package order

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/colvin/schemer/internal/files/filesystem"
)

// hasMeta reports whether a pattern segment contains glob metacharacters.
func hasMeta(segment string) bool {
	return strings.ContainsAny(segment, "*?[")
}

// expandPattern expands a single ORDER pattern against the filesystem
// rooted at dir. Patterns use conventional glob syntax (*, ?, [...]; no
// **) and may span subdirectories with /. A metacharacter never matches
// a leading dot unless the segment itself starts with one. A pattern
// with no metacharacters matches itself exactly when the path exists.
//
// Matches are returned unordered; callers sort per pattern.
func expandPattern(fsys filesystem.FileSystem, dir, pattern string) ([]string, error) {
	segments := strings.Split(filepath.ToSlash(pattern), "/")
	current := []string{dir}

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		var next []string
		if !hasMeta(segment) {
			for _, base := range current {
				p := filepath.Join(base, segment)
				if _, err := fsys.Stat(p); err == nil {
					next = append(next, p)
				}
			}
			current = next
			continue
		}

		for _, base := range current {
			entries, err := fsys.ReadDir(base)
			if err != nil {
				// base is a file or vanished mid-expansion; it simply
				// contributes no matches.
				continue
			}
			for _, entry := range entries {
				name := entry.Name()
				if strings.HasPrefix(name, ".") && !strings.HasPrefix(segment, ".") {
					continue
				}
				ok, err := path.Match(segment, name)
				if err != nil {
					return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
				}
				if ok {
					next = append(next, filepath.Join(base, name))
				}
			}
		}
		current = next
	}

	return current, nil
}
