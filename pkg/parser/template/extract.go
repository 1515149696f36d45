// Package template scans component markup for translation keys.
//
// The scanner is a single pass over '<' ... '>' units, not a DOM parser:
// a '>' inside an attribute value ends the tag early, and attributes are
// matched lexically.
package template

import (
	"strings"
)

// Binding and event attribute prefixes whose values are passed through when
// they are translation calls.
var bindPrefixes = []string{"v-bind:", ":", "v-on:", "@"}

// Options configures markup scanning.
type Options struct {
	// Attr is the attribute holding ';'-separated inline keys.
	Attr string
	// BindAttr enables pass-through of binding and event expressions.
	BindAttr bool
	// Functions are the translation function names. The first one is used
	// for statements synthesized from inline keys.
	Functions []string
}

// ExtractKeys scans markup and returns newline-joined translation-call
// statements: one per inline key and one per bound translation expression.
// Returns an empty string when markup is empty or nothing matched.
func ExtractKeys(markup string, opts Options) string {
	if markup == "" {
		return ""
	}

	var lines []string
	pos := 0

	for pos < len(markup) {
		tagOpen := strings.IndexByte(markup[pos:], '<')
		if tagOpen == -1 {
			break
		}
		contentStart := pos + tagOpen + 1

		tagClose := strings.IndexByte(markup[contentStart:], '>')
		if tagClose == -1 {
			break
		}
		contentEnd := contentStart + tagClose

		lines = appendTagStatements(lines, markup[contentStart:contentEnd], opts)
		pos = contentEnd + 1
	}

	return strings.Join(lines, "\n")
}

func appendTagStatements(lines []string, content string, opts Options) []string {
	if strings.HasPrefix(strings.TrimSpace(content), "/") {
		return lines
	}

	name := tagName(content)
	if name == "" || name == "template" || name == "script" {
		return lines
	}

	attrs := newAttrScanner(content)
	for {
		attrName, value, ok := attrs.next()
		if !ok {
			break
		}

		if attrName == opts.Attr && value != "" {
			for _, key := range SplitKeys(value) {
				lines = append(lines, callStatement(opts.Functions, key))
			}
		}

		if opts.BindAttr && hasBindPrefix(attrName) && IsTranslationExpression(value, opts.Functions) {
			lines = append(lines, value)
		}
	}

	return lines
}

// tagName returns the leading [a-zA-Z][a-zA-Z0-9-]* token of a tag body.
func tagName(content string) string {
	if content == "" || !isLetter(content[0]) {
		return ""
	}
	end := 1
	for end < len(content) && (isLetter(content[end]) || isDigit(content[end]) || content[end] == '-') {
		end++
	}
	return content[:end]
}

// SplitKeys splits an inline key list on ';', trimming and dropping empty entries.
func SplitKeys(value string) []string {
	parts := strings.Split(value, ";")
	keys := make([]string, 0, len(parts))
	for _, part := range parts {
		if key := strings.TrimSpace(part); key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}

// IsTranslationExpression reports whether the trimmed expression starts with
// a call to one of the functions.
func IsTranslationExpression(expr string, functions []string) bool {
	trimmed := strings.TrimSpace(expr)
	for _, fn := range functions {
		if strings.HasPrefix(trimmed, fn+"(") {
			return true
		}
	}
	return false
}

func callStatement(functions []string, key string) string {
	fn := "t"
	if len(functions) > 0 {
		fn = functions[0]
	}
	return fn + "('" + key + "')"
}

func hasBindPrefix(name string) bool {
	for _, prefix := range bindPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
