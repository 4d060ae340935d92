// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inline

import (
	"strings"

	"golang.org/x/text/cases"
)

// Reference is the destination and title recorded for a normalized label in
// a [ReferenceMap].
type Reference struct {
	Destination string
	Title       string
}

// ReferenceMap holds link reference definitions collected while a block
// parser walks a document, keyed by [NormalizeLabel]. By the time [Parse]
// runs over any block, the map is logically frozen: [Parse] only reads it.
type ReferenceMap struct {
	m map[string]Reference
}

// NewReferenceMap returns an empty reference map.
func NewReferenceMap() *ReferenceMap {
	return &ReferenceMap{m: make(map[string]Reference)}
}

// Lookup returns the reference stored for the normalized form of label and
// whether one was found.
func (r *ReferenceMap) Lookup(label string) (Reference, bool) {
	if r == nil {
		return Reference{}, false
	}
	ref, ok := r.m[NormalizeLabel(label)]
	return ref, ok
}

// define inserts ref under the normalized label, unless one is already
// present (first definition wins). Reports whether it inserted.
func (r *ReferenceMap) define(label string, ref Reference) bool {
	label = NormalizeLabel(label)
	if label == "" {
		return false
	}
	if _, ok := r.m[label]; ok {
		return false
	}
	if r.m == nil {
		r.m = make(map[string]Reference)
	}
	r.m[label] = ref
	return true
}

// Len reports the number of distinct normalized labels stored.
func (r *ReferenceMap) Len() int {
	if r == nil {
		return 0
	}
	return len(r.m)
}

// NormalizeLabel implements the reference-label normalization of spec §6:
// trim, collapse internal whitespace runs to a single space, Unicode
// case-fold. Whitespace here is space, tab, line feed, carriage return,
// vertical tab, or form feed, matching the Reference map definition in §3.
func NormalizeLabel(s string) string {
	s = strings.TrimFunc(s, isRefSpace)
	var b strings.Builder
	b.Grow(len(s))
	space := false
	hasHi := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isRefSpace(rune(c)) {
			space = true
			continue
		}
		if space {
			b.WriteByte(' ')
			space = false
		}
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c >= 0x80 {
			hasHi = true
		}
		b.WriteByte(c)
	}
	out := b.String()
	if hasHi {
		out = cases.Fold().String(out)
	}
	return out
}

func isRefSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
