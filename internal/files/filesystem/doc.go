// Package filesystem abstracts file access for order resolution and
// composition.
//
// Two implementations are provided:
//   - OSFileSystem: production use against the real filesystem
//   - MemoryFileSystem: in-memory trees for tests
//
// Both report missing paths with errors that satisfy
// errors.Is(err, fs.ErrNotExist), which the resolver and composer rely
// on to distinguish structural failures from I/O errors.
package filesystem
