// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inline

// ParseReference implements spec §4.10: it attempts to consume one link
// reference definition at the start of text. It returns the number of
// characters consumed; 0 means text does not start with a definition and
// the caller should not advance. refs may be nil, in which case a matched
// definition is simply discarded (still reported as consumed).
func ParseReference(text string, refs *ReferenceMap) int {
	label, i, ok := scanLinkLabel(text, 0, 1000)
	if !ok || i >= len(text) || text[i] != ':' {
		return 0
	}
	i++
	i = spnl(text, i)

	dest, j, ok := scanLinkDestination(text, i)
	if !ok {
		return 0
	}
	i = j

	beforeTitle := i
	var title string
	titled := false
	if k := spnl(text, i); k > i {
		if t, j2, ok := scanLinkTitle(text, k); ok {
			if end, ok := restOfLineEnd(text, j2); ok {
				title = t
				i = end
				titled = true
			} else {
				i = beforeTitle
			}
		} else {
			i = beforeTitle
		}
	}
	if !titled {
		if end, ok := restOfLineEnd(text, i); ok {
			i = end
		} else {
			return 0
		}
	}

	norm := NormalizeLabel(label)
	if norm == "" {
		return 0
	}
	if refs != nil {
		refs.define(norm, Reference{
			Destination: NormalizeURI(UnescapeString(dest)),
			Title:       UnescapeString(title),
		})
	}
	return i
}

// restOfLineEnd requires only spaces/tabs then a newline or end-of-input
// starting at i, returning the position just past the newline (or end of
// text).
func restOfLineEnd(s string, i int) (int, bool) {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	if i >= len(s) {
		return i, true
	}
	if s[i] == '\n' {
		return i + 1, true
	}
	return 0, false
}
