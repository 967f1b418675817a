package filesystem

import (
	"io"
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// FileSystem is the narrow filesystem surface the resolver and composer
// need: directory listing for glob expansion, stat for prologue and
// epilogue existence checks, and whole-file or streaming reads.
//
// Implementations report missing paths with errors satisfying
// errors.Is(err, fs.ErrNotExist) so callers can classify them.
type FileSystem interface {
	// ReadFile reads the entire file at the given path.
	ReadFile(path string) ([]byte, error)

	// OpenFile opens the file at the given path for streaming reads.
	// The caller owns the returned reader and must close it.
	OpenFile(path string) (io.ReadCloser, error)

	// ReadDir lists the entries of the directory at the given path.
	ReadDir(path string) ([]FileInfo, error)

	// Stat returns file information for the given path.
	Stat(path string) (FileInfo, error)
}
