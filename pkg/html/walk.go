package html

import "errors"

// VisitFunc is called once per node during a walk. Returning an error stops
// the walk and the error is passed up to the caller.
type VisitFunc func(n *Node) error

// SkipChildren can be returned from a pre-order VisitFunc to leave out the
// node's descendants. The walk continues with the next sibling.
var SkipChildren = errors.New("skip children")

// WalkPreOrder visits n, then n's children in order, then n's next sibling
// and its subtree, and so on along the sibling chain.
func WalkPreOrder(n *Node, fn VisitFunc) error {
	for ; n != nil; n = n.Next() {
		err := fn(n)
		if err == SkipChildren {
			continue
		}
		if err != nil {
			return err
		}
		if err := WalkPreOrder(n.FirstChild(), fn); err != nil {
			return err
		}
	}
	return nil
}

// WalkPostOrder visits n's children before n, then continues with n's next
// sibling. The sibling is looked up before n is visited, so fn may tear n
// down.
func WalkPostOrder(n *Node, fn VisitFunc) error {
	for n != nil {
		next := n.Next()
		if err := WalkPostOrder(n.FirstChild(), fn); err != nil {
			return err
		}
		if err := fn(n); err != nil {
			return err
		}
		n = next
	}
	return nil
}

// Walk visits every element of the document in pre-order.
func (d *Document) Walk(fn VisitFunc) error {
	return WalkPreOrder(d.Root(), fn)
}
