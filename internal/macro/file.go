package macro

import (
	"regexp"
	"strings"

	"github.com/colvin/schemer/pkg/schemer"
)

// macroLinePattern matches one macro-file definition: a key, optional
// whitespace, =, optional whitespace, then the value as the remainder
// of the line verbatim. No quote stripping, no escaping.
var macroLinePattern = regexp.MustCompile(`^\s*([^\s=]+)\s*=\s*(.*)$`)

// ParseMacroFile parses macro definitions from plain-text content, one
// per line. Malformed lines are never fatal: each is skipped with a
// diagnostic naming the file and line number. Blank lines are ignored
// silently. A key repeated within the file keeps its last value.
func ParseMacroFile(name string, content []byte, logger schemer.Logger) map[string]string {
	result := make(map[string]string)

	for i, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		m := macroLinePattern.FindStringSubmatch(line)
		if m == nil {
			logger.Info("%s:%d: skipping malformed macro line", name, i+1)
			continue
		}

		result[m[1]] = m[2]
	}

	return result
}
