// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inline

// Kind identifies the concrete shape of a [Node].
//
// Generated by hand in the style of `stringer -type=Kind`; see kind_string.go.
type Kind uint8

const (
	// Document is the root a caller hands to [Parse]; it is never produced
	// by this package, only consumed. Its Literal field holds the block's
	// raw string content.
	Document Kind = 1 + iota
	Text
	Code
	Emph
	Strong
	Link
	Image
	Autolink
	HTMLInline
	Softbreak
	Linebreak
)

// Node is the generic tree element this package consumes (as a block) and
// produces (as inline children): a single struct type covers every node
// kind, following the design common to CommonMark implementations (see
// DESIGN.md for the grounding). Nodes form a doubly linked sibling list
// under a parent, plus a first/last child pair.
type Node struct {
	Kind Kind

	// Literal holds the node's text: for Document, the raw block content to
	// be parsed; for Text/Code/HTMLInline, the literal text; unused
	// otherwise. Mutable during parsing (see processEmphasis in emphasis.go).
	Literal string

	// Destination and Title are set on Link and Image nodes.
	Destination string
	Title       string

	Parent, Prev, Next, FirstChild, LastChild *Node
}

// NewNode returns a detached node of the given kind.
func NewNode(kind Kind) *Node {
	return &Node{Kind: kind}
}

// NewText returns a detached Text node with the given literal.
func NewText(s string) *Node {
	return &Node{Kind: Text, Literal: s}
}

// AppendChild appends child as n's last child, detaching it from any
// previous tree first.
func (n *Node) AppendChild(child *Node) {
	child.Unlink()
	child.Parent = n
	if n.LastChild != nil {
		n.LastChild.Next = child
		child.Prev = n.LastChild
		n.LastChild = child
	} else {
		n.FirstChild = child
		n.LastChild = child
	}
}

// InsertAfter inserts sibling immediately after n in n's parent's child
// list, detaching sibling from any previous tree first.
func (n *Node) InsertAfter(sibling *Node) {
	sibling.Unlink()
	sibling.Parent = n.Parent
	sibling.Prev = n
	sibling.Next = n.Next
	if n.Next != nil {
		n.Next.Prev = sibling
	} else if n.Parent != nil {
		n.Parent.LastChild = sibling
	}
	n.Next = sibling
}

// Unlink removes n from its parent's child list, leaving n a detached node
// with no parent or siblings. n's own children are untouched.
func (n *Node) Unlink() {
	if n.Prev != nil {
		n.Prev.Next = n.Next
	} else if n.Parent != nil {
		n.Parent.FirstChild = n.Next
	}
	if n.Next != nil {
		n.Next.Prev = n.Prev
	} else if n.Parent != nil {
		n.Parent.LastChild = n.Prev
	}
	n.Parent = nil
	n.Prev = nil
	n.Next = nil
}

// ChildCount returns the number of direct children of n.
func (n *Node) ChildCount() int {
	count := 0
	for c := n.FirstChild; c != nil; c = c.Next {
		count++
	}
	return count
}
