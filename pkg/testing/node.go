package testing

import "github.com/go-drift/headless/pkg/dom"

// Node is an in-memory dom.Element.
//
// Focusability knobs default to a focusable element: tab order zero, not
// disabled, not hidden. Tests flip the exported fields directly.
type Node struct {
	// Label identifies the node in test failures.
	Label string

	// TabOrder is the node's tab index.
	TabOrder int

	// IsDisabled marks the node disabled.
	IsDisabled bool

	// IsHidden hides the node and its subtree.
	IsHidden bool

	doc      *Document
	parent   *Node
	owner    *Node // logical parent for portaled nodes
	children []*Node
}

// NewNode creates a detached node owned by this document. Attach it with
// Node.Append.
func (d *Document) NewNode(label string) *Node {
	return &Node{doc: d, Label: label}
}

// Append attaches child under n and returns the child for chaining.
func (n *Node) Append(child *Node) *Node {
	child.parent = n
	n.children = append(n.children, child)
	return child
}

// Remove detaches n from its parent, disconnecting its whole subtree.
func (n *Node) Remove() {
	if n.parent == nil {
		return
	}
	siblings := n.parent.children
	for i, existing := range siblings {
		if existing == n {
			n.parent.children = append(siblings[:i], siblings[i+1:]...)
			break
		}
	}
	n.parent = nil
}

// SetLogicalOwner marks owner as n's logical parent for containment checks,
// even when n is rendered (portaled) elsewhere in the tree.
func (n *Node) SetLogicalOwner(owner *Node) { n.owner = owner }

// Focus implements dom.Element.
func (n *Node) Focus() {
	if n.doc != nil {
		n.doc.setFocus(n)
	}
}

// Connected implements dom.Element: a node is connected when walking its
// parent chain reaches the document root.
func (n *Node) Connected() bool {
	if n.doc == nil {
		return false
	}
	cur := n
	for cur.parent != nil {
		cur = cur.parent
	}
	return cur == n.doc.root
}

// Contains implements dom.Element. Containment follows logical ownership:
// the walk up from other prefers a node's logical owner over its rendered
// parent, so portaled subtrees stay inside their logical boundary.
func (n *Node) Contains(other dom.Element) bool {
	o, ok := other.(*Node)
	if !ok {
		return false
	}
	for cur := o; cur != nil; {
		if cur == n {
			return true
		}
		if cur.owner != nil {
			cur = cur.owner
			continue
		}
		cur = cur.parent
	}
	return false
}

// TabIndex implements dom.Element.
func (n *Node) TabIndex() int { return n.TabOrder }

// Disabled implements dom.Element.
func (n *Node) Disabled() bool { return n.IsDisabled }

// Hidden implements dom.Element.
func (n *Node) Hidden() bool { return n.IsHidden }

// Children implements dom.Element.
func (n *Node) Children() []dom.Element {
	out := make([]dom.Element, len(n.children))
	for i, child := range n.children {
		out[i] = child
	}
	return out
}
