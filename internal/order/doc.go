// Package order resolves the composition order for a schema tree.
//
// A schema root contains an ORDER file naming its schema directories,
// one per line, order-significant. Each schema directory contains its
// own ORDER file listing file patterns (literal names or globs rooted
// at that directory). Resolution expands every pattern, sorts matches
// lexicographically within each pattern, deduplicates keeping first
// occurrence, forces an existing PROLOGUE.sql/EPILOGUE.sql to the
// first/last slot of its directory, and brackets the whole sequence
// with the root-level prologue and epilogue paths.
//
// The root-level prologue and epilogue are inserted without an
// existence check; composition reports their absence as an open
// failure. Resolution is a pure function of the directory tree and is
// idempotent for an unchanged tree.
package order
