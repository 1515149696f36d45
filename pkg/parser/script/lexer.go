package script

import "strings"

// callSite is a located "<name>(<args>)" occurrence.
type callSite struct {
	function  string
	start     int
	argsStart int
	argsEnd   int
	end       int
}

// matchCallName tries each function name at pos, in the given order, and
// returns the first one that starts at a word boundary and is followed by
// optional whitespace and '('. It returns the index just past the '('.
func matchCallName(src string, pos int, functions []string) (string, int, bool) {
	for _, fn := range functions {
		if fn == "" || !strings.HasPrefix(src[pos:], fn) || !atBoundary(src, pos, fn) {
			continue
		}
		i := skipSpace(src, pos+len(fn))
		if i < len(src) && src[i] == '(' {
			return fn, i + 1, true
		}
	}
	return "", 0, false
}

// findCall locates the next call at or after pos whose argument text is
// non-empty and runs up to the first ')'. Nested parentheses are not
// balanced: "t('a', f(x))" yields the arguments "'a', f(x".
func findCall(src string, pos int, functions []string) (callSite, bool) {
	for ; pos < len(src); pos++ {
		fn, argsStart, ok := matchCallName(src, pos, functions)
		if !ok {
			continue
		}
		closeParen := strings.IndexByte(src[argsStart:], ')')
		if closeParen <= 0 {
			continue
		}
		argsEnd := argsStart + closeParen
		return callSite{
			function:  fn,
			start:     pos,
			argsStart: argsStart,
			argsEnd:   argsEnd,
			end:       argsEnd + 1,
		}, true
	}
	return callSite{}, false
}

// atBoundary reports whether a name may start at pos. Names starting with a
// word character need a non-word character before them; names starting with
// another character (such as '$') also reject a preceding '$'.
func atBoundary(src string, pos int, name string) bool {
	if pos == 0 {
		return true
	}
	prev := src[pos-1]
	if isWordByte(name[0]) {
		return !isWordByte(prev)
	}
	return !isWordByte(prev) && prev != '$'
}

// readQuoted reads a leading quoted literal of the form ['"][^'"]*['"].
// The closing quote may differ from the opening one. It returns the literal
// body and the number of bytes consumed.
func readQuoted(s string) (string, int, bool) {
	if s == "" || !isQuote(s[0]) {
		return "", 0, false
	}
	for i := 1; i < len(s); i++ {
		if isQuote(s[i]) {
			return s[1:i], i + 1, true
		}
	}
	return "", 0, false
}

// findMatchingBrace returns the index of the '}' closing the '{' at s[0], or
// -1. Braces inside single- or double-quoted strings are ignored; a quote
// preceded by a backslash does not end the string.
func findMatchingBrace(s string) int {
	depth := 0
	var quote byte

	for i := 0; i < len(s); i++ {
		c := s[i]

		if quote != 0 {
			if c == quote && s[i-1] != '\\' {
				quote = 0
			}
			continue
		}

		switch c {
		case '"', '\'':
			quote = c
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func skipSpace(s string, i int) int {
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return i
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}

func isQuote(c byte) bool {
	return c == '"' || c == '\''
}

func isWordByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_'
}
