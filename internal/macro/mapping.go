package macro

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/colvin/schemer/pkg/schemer"
)

// EnvLookup is the last-resort key/value provider consulted when a key
// is absent from the mapping. Production code injects os.LookupEnv;
// tests inject a fixture.
type EnvLookup func(key string) (string, bool)

// macroRefPattern matches a macro reference: the literal prefix MACRO{
// followed by the shortest run of characters up to the next }. The
// captured key is used verbatim, case-sensitive, with no escaping or
// nested-brace support.
var macroRefPattern = regexp.MustCompile(`MACRO\{([^}]*)\}`)

// Mapping is an immutable macro key/value mapping with environment
// fallback. Build one with a Builder; once composition starts nothing
// mutates it.
type Mapping struct {
	values map[string]string
	env    EnvLookup
}

// Resolve returns the substitution value for key: the mapping first,
// then the environment provider. Absence from both is an error wrapping
// schemer.ErrUndefinedMacro.
func (m *Mapping) Resolve(key string) (string, error) {
	if value, ok := m.values[key]; ok {
		return value, nil
	}
	if m.env != nil {
		if value, ok := m.env(key); ok {
			return value, nil
		}
	}
	return "", fmt.Errorf("%w: %s", schemer.ErrUndefinedMacro, key)
}

// Value returns the mapping entry for key without environment fallback.
func (m *Mapping) Value(key string) (string, bool) {
	value, ok := m.values[key]
	return value, ok
}

// Len returns the number of keys defined in the mapping itself,
// excluding anything only reachable through the environment.
func (m *Mapping) Len() int {
	return len(m.values)
}

// ProcessLine substitutes every macro reference in line. Each distinct
// key is resolved exactly once, in first-appearance order, and all of
// its occurrences are replaced with the same value. Lines without any
// reference pass through untouched. Resolution order is observable when
// a substituted value itself contains a token equal to a later key's
// reference, so first-occurrence processing is a compatibility
// requirement, not an optimization.
func (m *Mapping) ProcessLine(line string) (string, error) {
	refs := macroRefPattern.FindAllStringSubmatch(line, -1)
	if len(refs) == 0 {
		return line, nil
	}

	processed := make(map[string]bool, len(refs))
	for _, ref := range refs {
		key := ref[1]
		if processed[key] {
			continue
		}
		processed[key] = true

		value, err := m.Resolve(key)
		if err != nil {
			return "", err
		}
		line = strings.ReplaceAll(line, ref[0], value)
	}

	return line, nil
}
