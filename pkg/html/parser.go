package html

import (
	"log/slog"
	"strings"

	"uhtml/internal/logging"
	"uhtml/pkg/style"
)

type openElement struct {
	node   *Node
	offset int
}

// Parser builds a Document from a token stream, keeping the elements whose
// closing tag has not been seen yet on an explicit stack.
type Parser struct {
	tokenizer *Tokenizer
	doc       *Document
	stack     []openElement
	logger    *slog.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger routes the parser's debug output (ignored input) to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

func NewParser(markup string, opts ...Option) *Parser {
	p := &Parser{
		tokenizer: NewTokenizer(markup),
		doc:       newDocument(),
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse consumes the whole input. On a structural error the partially
// built tree is released and only the error is returned.
func (p *Parser) Parse() (doc *Document, err error) {
	defer func() {
		if err != nil {
			p.doc.Release()
			p.doc, p.stack = nil, nil
		}
	}()

	for {
		token := p.tokenizer.NextToken()
		switch token.Type {
		case TokenEOF:
			if len(p.stack) > 0 {
				open := p.stack[len(p.stack)-1]
				return nil, &ParseError{Kind: ErrUnclosedTag, Tag: open.node.tag, Offset: open.offset}
			}
			return p.doc, nil

		case TokenStartTag:
			if err := p.openTag(token); err != nil {
				return nil, err
			}

		case TokenEndTag:
			if err := p.closeTag(token); err != nil {
				return nil, err
			}

		case TokenText:
			if len(p.stack) == 0 {
				p.logger.Debug("ignoring text outside any element",
					"offset", token.Offset, "text", strings.TrimSpace(token.Text))
				continue
			}
			p.currentParent().appendText(token.Text)

		case TokenComment:
			p.logger.Debug("skipping comment", "offset", token.Offset)
		}
	}
}

func (p *Parser) openTag(token Token) error {
	if token.TagName == "" {
		return &ParseError{Kind: ErrMalformedTag, Offset: token.Offset}
	}
	node := &Node{
		tag:   token.TagName,
		style: token.Style,
		pos:   style.ParsePosition(token.Style),
		attrs: parseAttributes(token.Style),
	}
	p.currentParent().link(node)
	p.doc.count++
	if !token.SelfClosing {
		p.push(node, token.Offset)
	}
	return nil
}

// closeTag pops the innermost open element, which must carry the same name
// as the closing tag (ASCII case-insensitive).
func (p *Parser) closeTag(token Token) error {
	if token.TagName == "" {
		return &ParseError{Kind: ErrMalformedTag, Offset: token.Offset}
	}
	top := p.pop()
	if top == nil {
		return &ParseError{Kind: ErrMismatchedCloseTag, Tag: token.TagName, Offset: token.Offset}
	}
	if !strings.EqualFold(top.tag, token.TagName) {
		return &ParseError{Kind: ErrMismatchedCloseTag, Tag: token.TagName, Want: top.tag, Offset: token.Offset}
	}
	return nil
}

// currentParent returns the innermost open element, or the document's
// top-level container when nothing is open.
func (p *Parser) currentParent() *Node {
	if len(p.stack) == 0 {
		return p.doc.top
	}
	return p.stack[len(p.stack)-1].node
}

func (p *Parser) push(node *Node, offset int) {
	p.stack = append(p.stack, openElement{node: node, offset: offset})
}

func (p *Parser) pop() *Node {
	if len(p.stack) == 0 {
		return nil
	}
	open := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	return open.node
}

// Parse builds a Document from markup. Empty markup yields a document with
// a nil root and no error.
func Parse(markup string, opts ...Option) (*Document, error) {
	parser := NewParser(markup, opts...)
	return parser.Parse()
}
