// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inline

import "strings"

// RenderHTML walks an inline tree produced by [Parse] and writes its HTML
// representation to b. It covers exactly the node kinds this package
// produces; block-level wrapping (paragraph tags, list items, and so on) is
// the caller's responsibility, consistent with §1's scope boundary.
func RenderHTML(b *strings.Builder, n *Node) {
	for c := n.FirstChild; c != nil; c = c.Next {
		renderNode(b, c)
	}
}

func renderNode(b *strings.Builder, n *Node) {
	switch n.Kind {
	case Text:
		escapeHTML(b, n.Literal, false)
	case Softbreak:
		b.WriteByte('\n')
	case Linebreak:
		b.WriteString("<br />\n")
	case Code:
		b.WriteString("<code>")
		escapeHTML(b, n.Literal, false)
		b.WriteString("</code>")
	case HTMLInline:
		b.WriteString(n.Literal)
	case Autolink:
		b.WriteString(`<a href="`)
		escapeHTML(b, n.Destination, true)
		b.WriteString(`">`)
		RenderHTML(b, n)
		b.WriteString("</a>")
	case Emph:
		b.WriteString("<em>")
		RenderHTML(b, n)
		b.WriteString("</em>")
	case Strong:
		b.WriteString("<strong>")
		RenderHTML(b, n)
		b.WriteString("</strong>")
	case Link:
		b.WriteString(`<a href="`)
		escapeHTML(b, n.Destination, true)
		if n.Title != "" {
			b.WriteString(`" title="`)
			escapeHTML(b, n.Title, true)
		}
		b.WriteString(`">`)
		RenderHTML(b, n)
		b.WriteString("</a>")
	case Image:
		b.WriteString(`<img src="`)
		escapeHTML(b, n.Destination, true)
		b.WriteString(`" alt="`)
		escapeHTML(b, plainText(n), true)
		if n.Title != "" {
			b.WriteString(`" title="`)
			escapeHTML(b, n.Title, true)
		}
		b.WriteString(`" />`)
	default:
		RenderHTML(b, n)
	}
}

// plainText concatenates the literal text of n's descendants, used for an
// image's alt attribute, which may not itself contain markup.
func plainText(n *Node) string {
	var b strings.Builder
	var walk func(*Node)
	walk = func(n *Node) {
		for c := n.FirstChild; c != nil; c = c.Next {
			switch c.Kind {
			case Text, Code, HTMLInline:
				b.WriteString(c.Literal)
			case Softbreak:
				b.WriteByte(' ')
			default:
				walk(c)
			}
		}
	}
	walk(n)
	return b.String()
}

// escapeHTML writes s to b with '&', '<', '>' escaped, plus '"' when quote
// is true (attribute-value context).
func escapeHTML(b *strings.Builder, s string, quote bool) {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			if quote {
				b.WriteString("&quot;")
			} else {
				b.WriteByte('"')
			}
		default:
			b.WriteByte(s[i])
		}
	}
}
