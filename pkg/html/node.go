package html

import (
	"strings"

	"uhtml/pkg/style"
)

// Node is one markup element. A node owns its tag, text and raw style
// strings and its children. Nodes are only mutated while the parser builds
// them; afterwards the tree is read-only.
type Node struct {
	tag      string
	text     string
	style    string
	pos      style.Position
	attrs    map[string]string
	children []*Node
	parent   *Node
	index    int  // position within the parent's (or document's) child slice
	top      bool // sentinel holding the document's top-level nodes
}

// NewNode creates a detached node. The position is read from the raw style
// string. An empty tag is rejected with ErrMalformedTag.
func NewNode(tag, text, rawStyle string) (*Node, error) {
	if tag == "" {
		return nil, &ParseError{Kind: ErrMalformedTag, Offset: -1}
	}
	return &Node{
		tag:   tag,
		text:  text,
		style: rawStyle,
		pos:   style.ParsePosition(rawStyle),
		attrs: parseAttributes(rawStyle),
	}, nil
}

// AppendChild links child as the last child of n and reports whether it
// did. The tree stays strict: a child that already has a parent, or that
// is n or one of n's ancestors, is left untouched. Trees owned by a
// Document are read-only, so appending below one of their nodes fails too.
func (n *Node) AppendChild(child *Node) bool {
	if n == nil || child == nil || child.top || child.parent != nil {
		return false
	}
	if child.Contains(n) || n.inDocument() {
		return false
	}
	n.link(child)
	return true
}

func (n *Node) link(child *Node) {
	child.parent = n
	child.index = len(n.children)
	n.children = append(n.children, child)
}

// inDocument reports whether n hangs below a document's top-level
// container.
func (n *Node) inDocument() bool {
	for ; n != nil; n = n.parent {
		if n.top {
			return true
		}
	}
	return false
}

func (n *Node) appendText(s string) {
	if n.text == "" {
		n.text = s
		return
	}
	n.text += s
}

// Tag returns the element name.
func (n *Node) Tag() string {
	if n == nil {
		return ""
	}
	return n.tag
}

// Text returns the text content of the element, "" if it has none.
func (n *Node) Text() string {
	if n == nil {
		return ""
	}
	return n.text
}

// Style returns the raw attribute/style string of the opening tag.
func (n *Node) Style() string {
	if n == nil {
		return ""
	}
	return n.style
}

// Position returns the node's explicit coordinates.
func (n *Node) Position() style.Position {
	if n == nil {
		return style.Position{}
	}
	return n.pos
}

// Parent returns the enclosing element, nil for top-level nodes.
func (n *Node) Parent() *Node {
	if n == nil || n.parent == nil || n.parent.top {
		return nil
	}
	return n.parent
}

// Children returns the child elements in document order. The slice must
// not be modified.
func (n *Node) Children() []*Node {
	if n == nil {
		return nil
	}
	return n.children
}

// FirstChild returns the head of n's child sequence.
func (n *Node) FirstChild() *Node {
	if n == nil || len(n.children) == 0 {
		return nil
	}
	return n.children[0]
}

// Next returns the following sibling, nil for the last child.
func (n *Node) Next() *Node {
	if n == nil || n.parent == nil {
		return nil
	}
	siblings := n.parent.children
	if n.index+1 >= len(siblings) {
		return nil
	}
	return siblings[n.index+1]
}

// IndexInParent returns the index of this node among its siblings,
// or -1 if it is detached.
func (n *Node) IndexInParent() int {
	if n == nil || n.parent == nil {
		return -1
	}
	return n.index
}

// Contains returns true if other is a descendant of n (or n itself).
func (n *Node) Contains(other *Node) bool {
	for ; other != nil; other = other.parent {
		if other == n {
			return true
		}
	}
	return false
}

// Attribute looks up a named attribute in the raw style string. The style
// string stays authoritative; this is a convenience view over it.
func (n *Node) Attribute(name string) (string, bool) {
	if n == nil {
		return "", false
	}
	val, ok := n.attrs[strings.ToLower(name)]
	return val, ok
}

// release drops the strings and links owned by n. Children must have been
// released before.
func (n *Node) release() {
	n.tag, n.text, n.style = "", "", ""
	n.pos = style.Position{}
	n.attrs = nil
	n.children = nil
	n.parent = nil
	n.index = 0
}
