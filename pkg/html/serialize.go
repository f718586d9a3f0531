package html

import "strings"

// Serialize returns markup for every top-level element of the document.
// An element's text is written before its children, so re-parsing the
// output yields the same tree even where text and child elements were
// interleaved.
func (d *Document) Serialize() string {
	var sb strings.Builder
	for n := d.Root(); n != nil; n = n.Next() {
		serializeNode(&sb, n)
	}
	return sb.String()
}

func serializeNode(sb *strings.Builder, n *Node) {
	if n == nil || n.tag == "" {
		return
	}
	sb.WriteByte('<')
	sb.WriteString(n.tag)
	if n.style != "" {
		sb.WriteByte(' ')
		sb.WriteString(n.style)
	}
	sb.WriteByte('>')
	sb.WriteString(n.text)
	for _, child := range n.children {
		serializeNode(sb, child)
	}
	sb.WriteString("</")
	sb.WriteString(n.tag)
	sb.WriteByte('>')
}
