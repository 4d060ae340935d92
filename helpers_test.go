// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inline

// tree is a parent/sibling-pointer-free projection of a [Node] subtree,
// shaped for comparison with google/go-cmp without teaching it about the
// doubly linked structure (which would otherwise need cycle-breaking
// options of its own).
type tree struct {
	Kind        Kind
	Literal     string
	Destination string
	Title       string
	Children    []tree `cmp:",omitempty"`
}

func simplify(n *Node) tree {
	t := tree{Kind: n.Kind, Literal: n.Literal, Destination: n.Destination, Title: n.Title}
	for c := n.FirstChild; c != nil; c = c.Next {
		t.Children = append(t.Children, simplify(c))
	}
	return t
}

func simplifyChildren(n *Node) []tree {
	var ts []tree
	for c := n.FirstChild; c != nil; c = c.Next {
		ts = append(ts, simplify(c))
	}
	return ts
}

// parse runs Parse over s with the given options and a fresh (or supplied)
// reference map, returning the Document node.
func parse(s string, opts Options, refs *ReferenceMap) *Node {
	block := &Node{Kind: Document, Literal: s}
	Parse(block, refs, opts)
	return block
}

func text(s string) tree { return tree{Kind: Text, Literal: s} }
