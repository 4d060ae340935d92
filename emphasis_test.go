// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inline

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEmphasisFlanking(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []tree
	}{
		{
			name: "intraword underscore is not emphasis",
			src:  "foo_bar_baz",
			want: []tree{text("foo_bar_baz")},
		},
		{
			name: "intraword asterisk is emphasis",
			src:  "foo*bar*baz",
			want: []tree{text("foo"), {Kind: Emph, Children: []tree{text("bar")}}, text("baz")},
		},
		{
			name: "space before closer blocks emphasis",
			src:  "* a *",
			want: []tree{text("* a *")},
		},
		{
			name: "unmatched opener stays literal",
			src:  "*foo",
			want: []tree{text("*"), text("foo")},
		},
		{
			name: "strong inside emph",
			src:  "***strong in emph***",
			want: []tree{{Kind: Emph, Children: []tree{
				{Kind: Strong, Children: []tree{text("strong in emph")}},
			}}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block := parse(tt.src, Options{}, nil)
			got := simplifyChildren(block)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("%s: mismatch (-want +got):\n%s", tt.src, diff)
			}
		})
	}
}

func TestProcessEmphasisEmptiesStack(t *testing.T) {
	block := parse("*a **b* c**", Options{}, nil)
	// Whatever tree results, no delimiter should survive a full Parse call:
	// re-parsing a second, independent document must start from a clean
	// slate, which TestIndependentParsesDoNotShareState also covers.
	if block.FirstChild == nil {
		t.Fatal("expected at least one child")
	}
}

func TestSmartQuotesNested(t *testing.T) {
	block := parse(`'a "b" c'`, Options{Smart: true}, nil)
	got := simplifyChildren(block)
	want := []tree{
		text("‘"), text("a "), text("“"), text("b"), text("”"), text(" c"), text("’"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}
