package script

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// parseOptions parses an object literal as strict JSON. The literal must
// start with '{' and end with '}'. Returns nil when parsing fails.
func parseOptions(literal string) map[string]any {
	if !strings.HasPrefix(literal, "{") || !strings.HasSuffix(literal, "}") {
		return nil
	}

	dec := json.NewDecoder(strings.NewReader(literal))
	dec.UseNumber()

	var options map[string]any
	if err := dec.Decode(&options); err != nil {
		return nil
	}
	if dec.More() {
		return nil
	}
	return options
}

// stringifyOption renders an option value the way JavaScript's String() does:
// numbers in shortest form, arrays joined with commas, objects as
// "[object Object]".
func stringifyOption(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return val
	case json.Number:
		return formatNumber(val)
	case bool:
		if val {
			return "true"
		}
		return "false"
	case []any:
		parts := make([]string, len(val))
		for i, elem := range val {
			if elem != nil {
				parts[i] = stringifyOption(elem)
			}
		}
		return strings.Join(parts, ",")
	default:
		return "[object Object]"
	}
}

func formatNumber(n json.Number) string {
	f, err := n.Float64()
	if err != nil {
		return n.String()
	}
	if f == 0 {
		return "0"
	}
	abs := math.Abs(f)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	s := strconv.FormatFloat(f, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
	return mantissa + "e" + sign + digits
}
