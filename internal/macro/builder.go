package macro

import (
	"os"

	"github.com/colvin/schemer/pkg/schemer"
)

// Builder accumulates macro definitions and produces an immutable
// Mapping. Merge calls overwrite earlier values for the same key, so
// supply sources in increasing precedence: macro files in the order
// given, then inline definitions.
type Builder struct {
	values map[string]string
	env    EnvLookup
	logger schemer.Logger
}

// NewBuilder creates a Builder with os.LookupEnv as the environment
// fallback. Panics if logger is nil.
func NewBuilder(logger schemer.Logger) *Builder {
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Builder{
		values: make(map[string]string),
		env:    os.LookupEnv,
		logger: logger,
	}
}

// WithEnvLookup replaces the environment fallback provider. Passing nil
// disables environment fallback entirely.
func (b *Builder) WithEnvLookup(env EnvLookup) *Builder {
	b.env = env
	return b
}

// MergeFile parses macro-file content (see ParseMacroFile) and merges
// its definitions, overwriting existing keys. name labels diagnostics
// for skipped lines.
func (b *Builder) MergeFile(name string, content []byte) *Builder {
	b.Merge(ParseMacroFile(name, content, b.logger))
	return b
}

// Merge overwrites the builder's values with the given definitions.
func (b *Builder) Merge(values map[string]string) *Builder {
	for key, value := range values {
		b.values[key] = value
	}
	return b
}

// Build returns an immutable Mapping holding a copy of the accumulated
// definitions. The Builder may continue to be used afterwards without
// affecting mappings already built.
func (b *Builder) Build() *Mapping {
	values := make(map[string]string, len(b.values))
	for key, value := range b.values {
		values[key] = value
	}
	return &Mapping{
		values: values,
		env:    b.env,
	}
}
