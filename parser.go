// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inline

import "strings"

// state holds the per-call parsing session described in spec §3: the
// immutable subject, the current position, the active reference map, the
// delimiter and bracket stack heads, and the active options. A state is
// owned exclusively by the [Parse] call that created it (spec §5); nothing
// here is shared across concurrent calls.
type state struct {
	subject string
	pos     int
	block   *Node // current parent node children are appended to
	refs    *ReferenceMap
	opts    Options

	delimiters *delimiter
	brackets   *bracket
}

// appendChild appends child to the node currently receiving output (either
// the top-level block or, while inside emph/strong/link construction, a
// nested node — this package never nests mid-dispatch, so it is always
// st.block).
func (st *state) appendChild(n *Node) {
	st.block.AppendChild(n)
}

// emit appends a Text node for subject[st.pos:end] if non-empty and moves
// pos to end, mirroring the teacher's inlineParser.emit (inline.go). No
// sub-parser in this package currently calls it.
func (st *state) emit(end int) *Node {
	if end <= st.pos {
		return nil
	}
	n := NewText(st.subject[st.pos:end])
	st.appendChild(n)
	st.pos = end
	return n
}

// lastChild returns st.block's current last child, or nil.
func (st *state) lastChild() *Node {
	return st.block.LastChild
}

// Parse implements spec §4.1's parseInlines: it parses block.Literal as a
// run of inline content and appends the results as children of block. block
// must start with no children; refs may be nil (treated as empty). Parse
// leaves both the delimiter and bracket stacks empty (spec §3 invariant).
func Parse(block *Node, refs *ReferenceMap, opts Options) {
	st := &state{
		subject: strings.Trim(block.Literal, " \t"),
		block:   block,
		refs:    refs,
		opts:    opts,
	}
	for st.parseInline() {
	}
	st.processEmphasis(nil)
}

// parseInline implements the dispatch table of spec §4.1. It returns false
// once the subject is exhausted.
func (st *state) parseInline() bool {
	s := st.subject
	if st.pos >= len(s) {
		return false
	}
	c := s[st.pos]

	var ok bool
	switch {
	case c == '\n':
		ok = parseNewline(st)
	case c == '\\':
		ok = parseEscape(st)
	case c == '`':
		ok = parseCodeSpan(st)
	case c == '*' || c == '_':
		ok = parseDelimRun(st)
	case (c == '\'' || c == '"') && st.opts.Smart:
		ok = parseDelimRun(st)
	case c == '[':
		ok = parseOpenBracket(st)
	case c == '!':
		ok = parseBang(st)
	case c == ']':
		ok = parseCloseBracket(st)
	case c == '<':
		ok = parseAutolink(st) || parseRawHTML(st)
	case c == '&':
		ok = parseEntity(st)
	default:
		ok = parseText(st)
	}

	if !ok {
		st.appendChild(NewText(s[st.pos : st.pos+1]))
		st.pos++
	}
	return true
}
