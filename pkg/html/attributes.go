package html

import (
	"strings"
	"unicode"
)

// parseAttributes splits a raw attribute string into name/value pairs.
// Names are lower-cased. Values may be double-quoted, single-quoted or
// bare; a name without "=" maps to "". Anything that does not scan as an
// attribute is skipped, and an unterminated quote runs to the end of input.
func parseAttributes(raw string) map[string]string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	attrs := make(map[string]string)
	s := &attrScanner{input: raw}
	for {
		s.skipWhitespace()
		if s.pos >= len(s.input) {
			return attrs
		}
		name := s.readName()
		if name == "" {
			s.pos++
			continue
		}
		s.skipWhitespace()
		if s.pos >= len(s.input) || s.input[s.pos] != '=' {
			attrs[name] = ""
			continue
		}
		s.pos++
		s.skipWhitespace()
		attrs[name] = s.readValue()
	}
}

type attrScanner struct {
	input string
	pos   int
}

func (s *attrScanner) readName() string {
	start := s.pos
	for s.pos < len(s.input) && isAttributeNameChar(s.input[s.pos]) {
		s.pos++
	}
	return strings.ToLower(s.input[start:s.pos])
}

func (s *attrScanner) readValue() string {
	if s.pos >= len(s.input) {
		return ""
	}
	quote := s.input[s.pos]
	if quote == '"' || quote == '\'' {
		s.pos++
		start := s.pos
		for s.pos < len(s.input) && s.input[s.pos] != quote {
			s.pos++
		}
		value := s.input[start:s.pos]
		if s.pos < len(s.input) {
			s.pos++
		}
		return value
	}
	start := s.pos
	for s.pos < len(s.input) && !unicode.IsSpace(rune(s.input[s.pos])) {
		s.pos++
	}
	return s.input[start:s.pos]
}

func (s *attrScanner) skipWhitespace() {
	for s.pos < len(s.input) && unicode.IsSpace(rune(s.input[s.pos])) {
		s.pos++
	}
}

func isAttributeNameChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '-' || c == '_' || c == ':' || c == '.'
}
