// Package macro implements the macro mapping used during composition.
//
// A mapping is assembled by merging, in increasing precedence: macro
// files in the order supplied (later files overwrite earlier keys),
// then inline JSON definitions. Lookup at substitution time falls back
// to an injected environment provider for keys absent from the mapping.
//
// A macro reference in SQL text is the literal prefix MACRO{ followed
// by the shortest run of characters up to the next }, used verbatim as
// the lookup key.
package macro
