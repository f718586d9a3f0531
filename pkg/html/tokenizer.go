package html

import (
	"iter"
	"strings"
)

type TokenType int

const (
	TokenStartTag TokenType = iota
	TokenEndTag
	TokenComment
	TokenText
	TokenEOF
)

func (t TokenType) String() string {
	switch t {
	case TokenStartTag:
		return "start"
	case TokenEndTag:
		return "end"
	case TokenComment:
		return "comment"
	case TokenText:
		return "text"
	case TokenEOF:
		return "eof"
	}
	return "unknown"
}

type Token struct {
	Type        TokenType
	TagName     string // start and end tags
	Style       string // raw attribute/style string of a start tag
	Text        string // text runs and comment bodies
	SelfClosing bool   // start tag written as <name ... />
	Offset      int    // byte offset of the token in the input
}

// Tokenizer splits markup on '<' and '>' boundaries. It never fails: input
// that does not scan cleanly still produces tokens and leaves judgement to
// the parser. A Tokenizer makes a single pass and cannot be restarted.
type Tokenizer struct {
	input string
	pos   int
}

func NewTokenizer(markup string) *Tokenizer {
	return &Tokenizer{input: markup, pos: 0}
}

func (t *Tokenizer) NextToken() Token {
	for t.pos < len(t.input) {
		if t.input[t.pos] == '<' {
			return t.readTag()
		}
		if tok, ok := t.readText(); ok {
			return tok
		}
	}
	return Token{Type: TokenEOF, Offset: len(t.input)}
}

// Tokens returns the remaining tokens of t as a sequence, excluding EOF.
func (t *Tokenizer) Tokens() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for {
			tok := t.NextToken()
			if tok.Type == TokenEOF || !yield(tok) {
				return
			}
		}
	}
}

func (t *Tokenizer) readTag() Token {
	start := t.pos
	t.pos++

	// <!-- comments --> may contain '>' and run to the terminating "-->".
	if strings.HasPrefix(t.input[t.pos:], "!--") {
		body := t.input[t.pos+3:]
		end := strings.Index(body, "-->")
		if end < 0 {
			t.pos = len(t.input)
			return Token{Type: TokenComment, Text: body, Offset: start}
		}
		t.pos += 3 + end + 3
		return Token{Type: TokenComment, Text: body[:end], Offset: start}
	}

	body := t.readTagBody()
	if body != "" && (body[0] == '!' || body[0] == '?') {
		return Token{Type: TokenComment, Text: body[1:], Offset: start}
	}
	if body != "" && body[0] == '/' {
		name, _ := splitTagBody(body[1:])
		return Token{Type: TokenEndTag, TagName: name, Offset: start}
	}

	selfClosing := false
	if trimmed := strings.TrimRightFunc(body, isSpace); strings.HasSuffix(trimmed, "/") {
		selfClosing = true
		body = trimmed[:len(trimmed)-1]
	}
	name, rest := splitTagBody(body)
	return Token{Type: TokenStartTag, TagName: name, Style: rest, SelfClosing: selfClosing, Offset: start}
}

// readTagBody consumes up to and including the next '>' and returns what
// lies between. An unterminated tag body runs to the end of input.
func (t *Tokenizer) readTagBody() string {
	start := t.pos
	end := strings.IndexByte(t.input[start:], '>')
	if end < 0 {
		t.pos = len(t.input)
		return t.input[start:]
	}
	t.pos = start + end + 1
	return t.input[start : start+end]
}

// readText consumes a text run. Runs made only of whitespace, such as
// indentation between tags, are dropped and ok is false.
func (t *Tokenizer) readText() (Token, bool) {
	start := t.pos
	end := strings.IndexByte(t.input[start:], '<')
	if end < 0 {
		t.pos = len(t.input)
	} else {
		t.pos = start + end
	}
	raw := t.input[start:t.pos]
	if strings.TrimSpace(raw) == "" {
		return Token{}, false
	}
	return Token{Type: TokenText, Text: raw, Offset: start}, true
}

// splitTagBody separates the tag name from the attribute/style string. Only
// two fields are significant: the name and everything after it, trimmed.
func splitTagBody(body string) (name, rest string) {
	body = strings.TrimLeftFunc(body, isSpace)
	i := strings.IndexFunc(body, isSpace)
	if i < 0 {
		return body, ""
	}
	return body[:i], strings.TrimSpace(body[i:])
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
