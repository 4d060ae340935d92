// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inline

// parseCloseBracket implements the "Close ]" rule of spec §4.9. The caller
// has checked s[st.pos] is ']'.
func parseCloseBracket(st *state) bool {
	if st.brackets == nil {
		return false
	}
	opener := st.brackets
	if !opener.active {
		st.popBracket()
		return false
	}

	s := st.subject
	closePos := st.pos + 1

	var dest, title string
	var consumed int
	matched := false

	switch {
	case closePos < len(s) && s[closePos] == '(':
		if d, t, end, ok := scanInlineLinkTail(s, closePos, st.opts); ok {
			dest, title, consumed, matched = d, t, end, true
		}

	case closePos < len(s) && s[closePos] == '[':
		if label, end, ok := scanLinkLabel(s, closePos, st.opts.maxLabelLen()); ok {
			if len(label) > 0 {
				if ref, found := st.refs.Lookup(label); found {
					dest, title, consumed, matched = ref.Destination, ref.Title, end, true
				}
			} else if !opener.bracketAfter {
				label = s[opener.index:st.pos]
				if ref, found := st.refs.Lookup(label); found {
					dest, title, consumed, matched = ref.Destination, ref.Title, end, true
				}
			}
		}

	default:
		if !opener.bracketAfter {
			label := s[opener.index:st.pos]
			if ref, found := st.refs.Lookup(label); found {
				dest, title, consumed, matched = ref.Destination, ref.Title, closePos, true
			}
		}
	}

	if !matched {
		st.popBracket()
		st.appendChild(NewText("]"))
		st.pos = closePos
		return true
	}

	kind := Link
	if opener.isImage {
		kind = Image
	}
	wrap := &Node{Kind: kind, Destination: dest, Title: title}
	for c := opener.node.Next; c != nil; {
		next := c.Next
		wrap.AppendChild(c)
		c = next
	}
	opener.node.InsertAfter(wrap)
	opener.node.Unlink()

	st.popBracket()
	st.processEmphasis(opener.prevDelimTop)
	if !opener.isImage {
		st.deactivateLinkOpeners()
	}

	st.pos = consumed
	return true
}

// scanInlineLinkTail matches the "(dest title)" tail of an inline
// link/image, starting at the '(' itself, per spec §4.9 step 1.
func scanInlineLinkTail(s string, i int, opts Options) (dest, title string, end int, ok bool) {
	if i >= len(s) || s[i] != '(' {
		return "", "", 0, false
	}
	j := spnl(s, i+1)

	rawDest, j2, ok := scanLinkDestination(s, j)
	if !ok {
		return "", "", 0, false
	}
	j = j2
	dest = NormalizeURI(UnescapeString(rawDest))

	k := spnl(s, j)
	if k > j {
		if rawTitle, j3, ok := scanLinkTitle(s, k); ok {
			title = UnescapeString(rawTitle)
			j = spnl(s, j3)
		} else {
			j = spnl(s, j)
		}
	} else {
		j = k
	}

	if j >= len(s) || s[j] != ')' {
		return "", "", 0, false
	}
	return dest, title, j + 1, true
}

// spnl skips spaces/tabs, at most one newline, then more spaces/tabs.
func spnl(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	if i < len(s) && s[i] == '\n' {
		i++
		for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
			i++
		}
	}
	return i
}

// scanLinkDestination matches either a <...> destination or a balanced,
// whitespace-free run, per spec §4.9. The returned text is raw (still
// escaped/unnormalized).
func scanLinkDestination(s string, i int) (string, int, bool) {
	if i < len(s) && s[i] == '<' {
		j := i + 1
		for j < len(s) {
			switch s[j] {
			case '>':
				return s[i+1 : j], j + 1, true
			case '\\':
				if j+1 < len(s) && isASCIIPunct(s[j+1]) {
					j += 2
					continue
				}
			case '<', '\n':
				return "", 0, false
			}
			j++
		}
		return "", 0, false
	}

	j := i
	depth := 0
	for j < len(s) {
		c := s[j]
		switch {
		case c == '\\' && j+1 < len(s) && isASCIIPunct(s[j+1]):
			j += 2
			continue
		case c == '(':
			depth++
		case c == ')':
			if depth == 0 {
				goto done
			}
			depth--
		case c <= ' ':
			goto done
		}
		j++
	}
done:
	if j == i || depth != 0 {
		return "", 0, false
	}
	return s[i:j], j, true
}

// scanLinkTitle matches a "title", 'title', or (title) form, per spec §4.9.
func scanLinkTitle(s string, i int) (string, int, bool) {
	if i >= len(s) {
		return "", 0, false
	}
	var closer byte
	switch s[i] {
	case '"':
		closer = '"'
	case '\'':
		closer = '\''
	case '(':
		closer = ')'
	default:
		return "", 0, false
	}
	j := i + 1
	for j < len(s) {
		switch {
		case s[j] == '\\' && j+1 < len(s) && isASCIIPunct(s[j+1]):
			j += 2
			continue
		case s[j] == closer:
			return s[i+1 : j], j + 1, true
		case closer == ')' && s[j] == '(':
			return "", 0, false
		}
		j++
	}
	return "", 0, false
}

// scanLinkLabel matches a "[...]" link label starting at the '[' itself,
// rejecting runs whose content exceeds maxLen characters, per spec §4.9/4.10.
// The returned label excludes the surrounding brackets and is still raw;
// ReferenceMap.Lookup normalizes it before comparing.
func scanLinkLabel(s string, i int, maxLen int) (string, int, bool) {
	if i >= len(s) || s[i] != '[' {
		return "", 0, false
	}
	j := i + 1
	for j < len(s) && j-(i+1) <= maxLen {
		switch s[j] {
		case ']':
			return s[i+1 : j], j + 1, true
		case '[':
			return "", 0, false
		case '\\':
			if j+1 < len(s) {
				j += 2
				continue
			}
		}
		j++
	}
	return "", 0, false
}
