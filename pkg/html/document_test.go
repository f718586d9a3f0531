package html

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentRelease(t *testing.T) {
	doc, err := Parse("<a><b>hi</b><c x: 3></c></a>")
	require.NoError(t, err)
	b := doc.Root().FirstChild()

	doc.Release()
	assert.Nil(t, doc.Root())
	assert.Equal(t, 0, doc.Len())
	assert.Empty(t, b.Tag())
	assert.Empty(t, b.Text())
	assert.Nil(t, b.Parent())

	// A second release and a release through a nil reference are no-ops.
	assert.NotPanics(t, doc.Release)
	var none *Document
	assert.NotPanics(t, none.Release)
}

func TestDocumentReleaseVisitsChildrenFirst(t *testing.T) {
	doc, err := Parse("<a><b><c></c></b><d></d></a>")
	require.NoError(t, err)
	var order []string
	require.NoError(t, WalkPostOrder(doc.Root(), func(n *Node) error {
		order = append(order, n.Tag())
		return nil
	}))
	assert.Equal(t, []string{"c", "b", "d", "a"}, order)
	doc.Release()
}

func TestNewDocument(t *testing.T) {
	a, err := NewNode("a", "", "x: 1; y: 2")
	require.NoError(t, err)
	b, err := NewNode("b", "text", "")
	require.NoError(t, err)
	require.True(t, a.AppendChild(b))
	c, err := NewNode("c", "", "")
	require.NoError(t, err)

	doc := NewDocument(a, c, b)
	assert.Equal(t, 3, doc.Len(), "b already has a parent and is skipped")
	assert.Equal(t, a, doc.Root())
	assert.Equal(t, c, a.Next())
	assert.Nil(t, a.Parent())
	assert.Equal(t, 1, a.Position().X)
	assert.Equal(t, 2, a.Position().Y)
}

func TestDocumentSerialize(t *testing.T) {
	markup := `<html><body><h1 style="x: 50; y: 50;">Hello</h1><p>a<br></br>b</p></body></html><footer></footer>`
	doc, err := Parse(markup)
	require.NoError(t, err)
	out := doc.Serialize()
	assert.Equal(t, `<html><body><h1 style="x: 50; y: 50;">Hello</h1><p>ab<br></br></p></body></html><footer></footer>`, out)

	again, err := Parse(out)
	require.NoError(t, err)
	assert.Equal(t, out, again.Serialize())
	assert.Equal(t, doc.Len(), again.Len())
}
