// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inline

import (
	"strings"

	"golang.org/x/net/html/atom"
)

// parseRawHTML implements the raw-HTML half of spec §4.5: an open tag,
// closing tag, comment, processing instruction, declaration, or CDATA
// section, emitted as a single HTMLInline node holding the matched text
// verbatim. The caller has checked s[st.pos] is '<'.
func parseRawHTML(st *state) bool {
	s := st.subject
	i := st.pos
	if i+2 >= len(s) {
		return false
	}
	var text string
	var end int
	var ok bool
	switch s[i+1] {
	case '/':
		text, end, ok = scanHTMLClosingTag(s, i)
	case '!':
		switch s[i+2] {
		case '-':
			text, end, ok = scanHTMLComment(s, i)
		case '[':
			text, end, ok = scanHTMLMarker(s, i, "<![CDATA[", "]]>")
		default:
			text, end, ok = scanHTMLDecl(s, i)
		}
	case '?':
		text, end, ok = scanHTMLMarker(s, i, "<?", "?>")
	default:
		text, end, ok = scanHTMLOpenTag(s, i)
	}
	if !ok {
		return false
	}
	logUnknownTag(st, text)
	st.appendChild(&Node{Kind: HTMLInline, Literal: text})
	st.pos = end
	return true
}

// logUnknownTag emits an optional diagnostic line (spec §2 ambient
// logging) when a matched tag's name is not a recognized HTML5 element,
// using golang.org/x/net/html/atom's table the way
// zombiezen-go-commonmark's html.go and parse_html.go use it to classify
// tag names. This never affects parsing: any tag name, known or not,
// matches the grammar.
func logUnknownTag(st *state, text string) {
	if st.opts.Logger == nil || len(text) < 2 || text[0] != '<' {
		return
	}
	name := text[1:]
	if len(name) > 0 && name[0] == '/' {
		name = name[1:]
	}
	j := 0
	for j < len(name) && isLDH(name[j]) {
		j++
	}
	name = name[:j]
	if name == "" {
		return
	}
	if atom.Lookup([]byte(strings.ToLower(name))) == 0 {
		st.opts.logf("inline: raw HTML tag %q is not a recognized HTML5 element", name)
	}
}

func scanHTMLOpenTag(s string, i int) (string, int, bool) {
	_, j, ok := scanTagName(s, i+1)
	if !ok {
		return "", 0, false
	}
	for {
		if j >= len(s) || (s[j] != ' ' && s[j] != '\t' && s[j] != '\n' && s[j] != '/' && s[j] != '>') {
			return "", 0, false
		}
		_, k, ok := scanAttr(s, j)
		if !ok {
			break
		}
		j = k
	}
	j = skipSpaceTabNL(s, j)
	if j < len(s) && s[j] == '/' {
		j++
	}
	if j < len(s) && s[j] == '>' {
		return s[i : j+1], j + 1, true
	}
	return "", 0, false
}

func scanHTMLClosingTag(s string, i int) (string, int, bool) {
	_, j, ok := scanTagName(s, i+2)
	if !ok {
		return "", 0, false
	}
	j = skipSpaceTabNL(s, j)
	if j < len(s) && s[j] == '>' {
		return s[i : j+1], j + 1, true
	}
	return "", 0, false
}

func scanTagName(s string, i int) (string, int, bool) {
	if i < len(s) && isLetter(s[i]) {
		j := i + 1
		for j < len(s) && isLDH(s[j]) {
			j++
		}
		return s[i:j], j, true
	}
	return "", 0, false
}

func scanAttr(s string, i int) (string, int, bool) {
	i = skipSpaceTabNL(s, i)
	_, j, ok := scanAttrName(s, i)
	if !ok {
		return "", 0, false
	}
	if _, k, ok := scanAttrValueSpec(s, j); ok {
		j = k
	}
	return s[i:j], j, true
}

func scanAttrName(s string, i int) (string, int, bool) {
	if i < len(s) && (isLetter(s[i]) || s[i] == '_' || s[i] == ':') {
		j := i + 1
		for j < len(s) && (isLDH(s[j]) || s[j] == '_' || s[j] == '.' || s[j] == ':') {
			j++
		}
		return s[i:j], j, true
	}
	return "", 0, false
}

func scanAttrValueSpec(s string, i int) (string, int, bool) {
	i = skipSpaceTabNL(s, i)
	if i >= len(s) || s[i] != '=' {
		return "", 0, false
	}
	i = skipSpaceTabNL(s, i+1)
	return scanAttrValue(s, i)
}

func scanAttrValue(s string, i int) (string, int, bool) {
	if i < len(s) && (s[i] == '\'' || s[i] == '"') {
		if j := strings.IndexByte(s[i+1:], s[i]); j >= 0 {
			end := i + 1 + j + 1
			return s[i:end], end, true
		}
		return "", 0, false
	}
	j := i
	for j < len(s) && strings.IndexByte(" \t\n\"'=<>`", s[j]) < 0 {
		j++
	}
	if j > i {
		return s[i:j], j, true
	}
	return "", 0, false
}

func scanHTMLComment(s string, i int) (string, int, bool) {
	if strings.HasPrefix(s[i:], "<!-->") || strings.HasPrefix(s[i:], "<!--->") {
		return "", 0, false
	}
	text, end, ok := scanHTMLMarker(s, i, "<!--", "-->")
	if !ok {
		return "", 0, false
	}
	inner := text[len("<!--") : len(text)-len("-->")]
	if strings.Contains(inner, "--") {
		return "", 0, false
	}
	return text, end, true
}

func scanHTMLDecl(s string, i int) (string, int, bool) {
	if i+2 < len(s) && isLetter(s[i+2]) {
		return scanHTMLMarker(s, i, "<", ">")
	}
	return "", 0, false
}

func scanHTMLMarker(s string, i int, prefix, suffix string) (string, int, bool) {
	if !strings.HasPrefix(s[i:], prefix) {
		return "", 0, false
	}
	if j := strings.Index(s[i+len(prefix):], suffix); j >= 0 {
		end := i + len(prefix) + j + len(suffix)
		return s[i:end], end, true
	}
	return "", 0, false
}

func skipSpaceTabNL(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n') {
		i++
	}
	return i
}
