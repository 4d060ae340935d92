// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inline

import (
	"bytes"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"
)

// TestAgainstGoldmark differentially checks this package's inline rendering
// against goldmark (for testing only, per go.mod) acting as a CommonMark
// conformance oracle, the way the teacher's big_test.go checks its own
// output against a reference corpus. Each input is a single paragraph with
// no block-level structure, so goldmark's rendered <p>...</p> body should
// match this package's inline-only HTML rendering exactly. goldmark is set
// to XHTML output so that void elements such as <img> end in " />", as
// RenderHTML writes them.
func TestAgainstGoldmark(t *testing.T) {
	inputs := []string{
		"plain text",
		"*emphasis*",
		"**strong**",
		"*a **b** c*",
		"`code span`",
		"[a link](/u)",
		"![an image](/i.png)",
		"<http://example.com>",
		"line one\nline two",
		`\*escaped\*`,
		"&amp;",
	}

	md := goldmark.New(goldmark.WithRendererOptions(html.WithXHTML()))
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			var buf bytes.Buffer
			if err := md.Convert([]byte(in), &buf); err != nil {
				t.Fatalf("goldmark.Convert: %v", err)
			}
			want := extractParagraphBody(t, buf.String())

			block := parse(in, Options{}, nil)
			var b strings.Builder
			RenderHTML(&b, block)

			if got := b.String(); got != want {
				t.Errorf("input %q:\n got      %q\n goldmark %q", in, got, want)
			}
		})
	}
}

// extractParagraphBody pulls the text between the first "<p>" and the last
// "</p>" out of a full goldmark HTML document, which wraps single
// paragraphs in exactly one <p>...</p> with a trailing newline.
func extractParagraphBody(t *testing.T, html string) string {
	t.Helper()
	const open, close = "<p>", "</p>"
	i := strings.Index(html, open)
	j := strings.LastIndex(html, close)
	if i < 0 || j < 0 || j < i {
		t.Fatalf("unexpected goldmark output: %q", html)
	}
	return html[i+len(open) : j]
}
