// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inline

import "strings"

// parseCodeSpan implements spec §4.3. The caller has checked s[st.pos] is
// a backtick.
func parseCodeSpan(st *state) bool {
	s := st.subject
	start := st.pos
	n := 1
	for start+n < len(s) && s[start+n] == '`' {
		n++
	}

	for end := start + n; end < len(s); {
		if s[end] != '`' {
			end++
			continue
		}
		closeStart := end
		for end < len(s) && s[end] == '`' {
			end++
		}
		if end-closeStart != n {
			continue
		}
		text := s[start+n : closeStart]
		text = strings.ReplaceAll(text, "\n", " ")
		if len(text) >= 2 && text[0] == ' ' && text[len(text)-1] == ' ' && strings.Trim(text, " ") != "" {
			text = text[1 : len(text)-1]
		}
		st.appendChild(&Node{Kind: Code, Literal: text})
		st.pos = end
		return true
	}

	// No matching closer: none of these backticks count as a code span.
	st.appendChild(NewText(s[start : start+n]))
	st.pos = start + n
	return true
}
