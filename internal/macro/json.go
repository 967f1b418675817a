package macro

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/colvin/schemer/pkg/schemer"
)

// ParseJSON parses an inline macro argument: a JSON object mapping
// string keys to scalar values. Numbers keep their natural decimal
// text form ({"FOO": 1} substitutes as "1", not "1.000000"). Parse
// failures and non-scalar values are errors wrapping
// schemer.ErrMalformedMacroJSON, surfaced before any processing begins.
func ParseJSON(blob string) (map[string]string, error) {
	dec := json.NewDecoder(strings.NewReader(blob))
	dec.UseNumber()

	var raw map[string]interface{}
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", schemer.ErrMalformedMacroJSON, err)
	}

	result := make(map[string]string, len(raw))
	for key, value := range raw {
		switch v := value.(type) {
		case string:
			result[key] = v
		case json.Number:
			result[key] = v.String()
		case bool:
			result[key] = strconv.FormatBool(v)
		default:
			return nil, fmt.Errorf("%w: key %q has a non-scalar value", schemer.ErrMalformedMacroJSON, key)
		}
	}

	return result, nil
}
