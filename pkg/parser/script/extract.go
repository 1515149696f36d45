// Package script scans component logic for translation-function calls.
//
// Scanning is lexical: calls are located by name and their arguments end at
// the first ')'. Keys built at runtime are not resolved.
package script

import (
	"regexp"
	"strings"

	"github.com/specvital/i18next-vue/pkg/domain"
)

var contextPattern = regexp.MustCompile(`context\s*:\s*['"]([^'"]+)['"]`)

// callMatch is one translation call with its decoded arguments.
type callMatch struct {
	Function     string
	Key          string
	DefaultValue string
	Options      map[string]any
	Start        int
	End          int
}

// ExtractKeys returns one record per translation call in code, in source
// order. Duplicates are kept. Calls whose first argument is not a quoted
// literal are skipped; malformed options degrade to a record with no default.
func ExtractKeys(code string, functions []string) []domain.KeyRecord {
	calls := extractCalls(code, functions)
	if len(calls) == 0 {
		return nil
	}

	records := make([]domain.KeyRecord, 0, len(calls))
	for _, call := range calls {
		records = append(records, toRecord(call))
	}
	return records
}

func extractCalls(code string, functions []string) []callMatch {
	var calls []callMatch

	pos := 0
	for {
		site, ok := findCall(code, pos, functions)
		if !ok {
			return calls
		}
		pos = site.end

		call, ok := parseArgs(code[site.argsStart:site.argsEnd])
		if !ok {
			continue
		}
		call.Function = site.function
		call.Start = site.start
		call.End = site.end
		calls = append(calls, call)
	}
}

// parseArgs decodes "'key'", "'key', 'default'" and "'key', { ... }".
func parseArgs(args string) (callMatch, bool) {
	trimmed := strings.TrimSpace(args)

	key, n, ok := readQuoted(trimmed)
	if !ok {
		return callMatch{}, false
	}
	call := callMatch{Key: key}

	rest := strings.TrimSpace(trimmed[n:])
	if !strings.HasPrefix(rest, ",") {
		return call, true
	}
	rest = strings.TrimSpace(rest[1:])

	if strings.HasPrefix(rest, "{") {
		end := findMatchingBrace(rest)
		if end == -1 {
			return call, true
		}
		options := parseOptions(rest[:end+1])
		if options == nil {
			return call, true
		}
		call.Options = options
		if dv, ok := options["defaultValue"]; ok {
			call.DefaultValue = stringifyOption(dv)
		}
		return call, true
	}

	if dv, _, ok := readQuoted(rest); ok {
		call.DefaultValue = dv
	}
	return call, true
}

func toRecord(call callMatch) domain.KeyRecord {
	key, namespace := SplitNamespace(call.Key)
	return domain.KeyRecord{
		Key:          key,
		DefaultValue: call.DefaultValue,
		Namespace:    namespace,
		Options:      call.Options,
	}
}

// SplitNamespace splits "ns:key" on the first ':'. Keys without a prefix, or
// with an empty one, are returned unchanged.
func SplitNamespace(raw string) (key, namespace string) {
	ns, rest, found := strings.Cut(raw, ":")
	if !found || ns == "" {
		return raw, ""
	}
	return rest, ns
}

// ExtractKeysFromExpression returns the first quoted argument of every call
// to one of functions, in order. Namespace prefixes are kept.
func ExtractKeysFromExpression(expr string, functions []string) []string {
	keys := []string{}

	for pos := 0; pos < len(expr); pos++ {
		_, argsStart, ok := matchCallName(expr, pos, functions)
		if !ok {
			continue
		}
		i := skipSpace(expr, argsStart)
		key, n, ok := readQuoted(expr[i:])
		if !ok || key == "" {
			continue
		}
		keys = append(keys, key)
		pos = i + n - 1
	}

	return keys
}

// ExtractContextFromExpression returns the value of every context: '...'
// pair in expr, in order, regardless of the enclosing call.
func ExtractContextFromExpression(expr string) []string {
	contexts := []string{}
	for _, match := range contextPattern.FindAllStringSubmatch(expr, -1) {
		contexts = append(contexts, match[1])
	}
	return contexts
}
