package template

// attrScanner walks name="value" and name='value' pairs in a tag body.
// A value runs to the nearest occurrence of its own delimiter and may contain
// the other quote character. Text that does not form a complete pair is skipped.
type attrScanner struct {
	src string
	pos int
}

func newAttrScanner(src string) *attrScanner {
	return &attrScanner{src: src}
}

// next returns the next attribute pair, or ok=false when none remain.
func (s *attrScanner) next() (name, value string, ok bool) {
	for s.pos < len(s.src) {
		if !isAttrNameByte(s.src[s.pos]) {
			s.pos++
			continue
		}

		nameStart := s.pos
		for s.pos < len(s.src) && isAttrNameByte(s.src[s.pos]) {
			s.pos++
		}
		nameEnd := s.pos

		if s.pos+1 >= len(s.src) || s.src[s.pos] != '=' {
			continue
		}
		quote := s.src[s.pos+1]
		if quote != '"' && quote != '\'' {
			continue
		}

		valueStart := s.pos + 2
		valueEnd := indexByteFrom(s.src, quote, valueStart)
		if valueEnd == -1 {
			continue
		}

		s.pos = valueEnd + 1
		return s.src[nameStart:nameEnd], s.src[valueStart:valueEnd], true
	}
	return "", "", false
}

// isAttrNameByte accepts plain attribute names plus the ':', '@', '.' and '#'
// used by binding, event, modifier and slot shorthands.
func isAttrNameByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '_', c == '-', c == ':', c == '@', c == '.', c == '#':
		return true
	default:
		return false
	}
}

func indexByteFrom(s string, c byte, from int) int {
	for i := from; i < len(s); i++ {
		if s[i] == c {
			return i
		}
	}
	return -1
}
