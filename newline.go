// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inline

// parseNewline implements spec §4.11. The caller has checked s[st.pos] is
// a newline.
func parseNewline(st *state) bool {
	if last := st.lastChild(); last != nil && last.Kind == Text {
		trailing := trailingSpaces(last.Literal)
		switch {
		case trailing >= 2:
			last.Literal = last.Literal[:len(last.Literal)-trailing]
			st.appendChild(&Node{Kind: Linebreak})
		case trailing == 1:
			last.Literal = last.Literal[:len(last.Literal)-1]
			st.appendChild(&Node{Kind: Softbreak})
		default:
			st.appendChild(&Node{Kind: Softbreak})
		}
	} else {
		st.appendChild(&Node{Kind: Softbreak})
	}

	i := st.pos + 1
	for i < len(st.subject) && st.subject[i] == ' ' {
		i++
	}
	st.pos = i
	return true
}

func trailingSpaces(s string) int {
	n := 0
	for n < len(s) && s[len(s)-1-n] == ' ' {
		n++
	}
	return n
}
