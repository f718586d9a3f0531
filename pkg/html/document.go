package html

// Document owns a parsed tree. The first top-level element is the root;
// further top-level elements follow it as siblings.
type Document struct {
	top   *Node // unnamed container for the top-level elements
	count int
}

func newDocument() *Document {
	return &Document{top: &Node{top: true}}
}

// NewDocument wraps already linked top-level nodes in a Document, so trees
// assembled with NewNode/AppendChild can be rendered and released like
// parsed ones. Nodes that already have a parent are skipped.
func NewDocument(roots ...*Node) *Document {
	d := newDocument()
	for _, n := range roots {
		if n != nil && !n.top && n.parent == nil {
			d.top.link(n)
			_ = WalkPreOrder(n.FirstChild(), func(*Node) error {
				d.count++
				return nil
			})
			d.count++
		}
	}
	return d
}

// Root returns the first top-level element, nil for an empty or released
// document.
func (d *Document) Root() *Node {
	if d == nil || d.top == nil {
		return nil
	}
	return d.top.FirstChild()
}

// Len returns the number of elements in the document.
func (d *Document) Len() int {
	if d == nil {
		return 0
	}
	return d.count
}

// Release frees every node in post-order, children before their parent.
// Releasing a released or nil document is a no-op.
func (d *Document) Release() {
	if d == nil || d.top == nil {
		return
	}
	_ = WalkPostOrder(d.top.FirstChild(), func(n *Node) error {
		n.release()
		return nil
	})
	d.top.release()
	d.top = nil
	d.count = 0
}
