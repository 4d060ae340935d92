// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inline

import "testing"

func TestParseReference(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		wantN    int
		wantDest string
		wantTit  string
	}{
		{
			name:     "bare destination",
			src:      "[foo]: /url\n",
			wantN:    len("[foo]: /url\n"),
			wantDest: "/url",
		},
		{
			name:     "destination and title",
			src:      "[foo]: /url \"title\"\n",
			wantN:    len("[foo]: /url \"title\"\n"),
			wantDest: "/url",
			wantTit:  "title",
		},
		{
			name:     "angle-bracket destination",
			src:      "[foo]: <my url>\n",
			wantN:    len("[foo]: <my url>\n"),
			wantDest: "my%20url",
		},
		{
			name:     "title on next line",
			src:      "[foo]: /url\n'title'\n",
			wantN:    len("[foo]: /url\n'title'\n"),
			wantDest: "/url",
			wantTit:  "title",
		},
		{
			name:  "not a definition",
			src:   "just text",
			wantN: 0,
		},
		{
			name:  "missing destination",
			src:   "[foo]:\n",
			wantN: 0,
		},
		{
			name:  "trailing junk after title is not a definition",
			src:   "[foo]: /url \"title\" junk\n",
			wantN: 0,
		},
		{
			name:     "title followed by junk on the next line retries without it",
			src:      "[foo]: /url\n\"not a title\" extra\n",
			wantN:    len("[foo]: /url\n"),
			wantDest: "/url",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			refs := NewReferenceMap()
			n := ParseReference(tt.src, refs)
			if n != tt.wantN {
				t.Fatalf("ParseReference(%q) consumed %d, want %d", tt.src, n, tt.wantN)
			}
			if n == 0 {
				return
			}
			ref, ok := refs.Lookup("foo")
			if !ok {
				t.Fatalf("ParseReference(%q): label %q not recorded", tt.src, "foo")
			}
			if ref.Destination != tt.wantDest || ref.Title != tt.wantTit {
				t.Errorf("ParseReference(%q) = {%q, %q}, want {%q, %q}",
					tt.src, ref.Destination, ref.Title, tt.wantDest, tt.wantTit)
			}
		})
	}
}

func TestParseReferenceFirstWins(t *testing.T) {
	refs := NewReferenceMap()
	n := ParseReference("[foo]: /first\n", refs)
	if n == 0 {
		t.Fatal("expected first definition to parse")
	}
	ParseReference("[foo]: /second\n", refs)
	ref, ok := refs.Lookup("foo")
	if !ok || ref.Destination != "/first" {
		t.Errorf("got %+v, want destination /first (first definition wins)", ref)
	}
}

func TestNormalizeLabel(t *testing.T) {
	tests := []struct{ a, b string }{
		{"Foo", "foo"},
		{"  foo  bar  ", "foo bar"},
		{"foo\tbar", "foo bar"},
	}
	for _, tt := range tests {
		if got := NormalizeLabel(tt.a); got != NormalizeLabel(tt.b) {
			t.Errorf("NormalizeLabel(%q)=%q, NormalizeLabel(%q)=%q, want equal", tt.a, got, tt.b, NormalizeLabel(tt.b))
		}
	}
}
