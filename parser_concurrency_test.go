// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inline

import (
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestIndependentParsesDoNotShareState runs many concurrent [Parse] calls,
// each with its own block, options, and reference map, verifying spec §5's
// claim that independent sessions are safely parallelizable. Run with
// -race to catch any accidental sharing through package-level state.
func TestIndependentParsesDoNotShareState(t *testing.T) {
	refs := NewReferenceMap()
	refs.define("shared", Reference{Destination: "/shared"})

	const n = 200
	var wg sync.WaitGroup
	results := make([]tree, n)
	wg.Add(n)
	for i := 0; i < n; i++ {
		i := i
		go func() {
			defer wg.Done()
			src := fmt.Sprintf("*item %d* and [ref][shared]", i)
			block := parse(src, Options{}, refs)
			results[i] = simplify(block)
		}()
	}
	wg.Wait()

	for i := 0; i < n; i++ {
		want := tree{Kind: Document, Literal: fmt.Sprintf("*item %d* and [ref][shared]", i), Children: []tree{
			{Kind: Emph, Children: []tree{text(fmt.Sprintf("item %d", i))}},
			text(" and "),
			{Kind: Link, Destination: "/shared", Children: []tree{text("ref")}},
		}}
		if diff := cmp.Diff(want, results[i]); diff != "" {
			t.Errorf("goroutine %d mismatch (-want +got):\n%s", i, diff)
		}
	}
}

// TestConcurrentReferenceMapReadsAreSafe verifies that Lookup on an
// already-populated ReferenceMap is safe to call from many goroutines at
// once, matching spec §5's claim that the reference map is read-only by
// the time Parse runs.
func TestConcurrentReferenceMapReadsAreSafe(t *testing.T) {
	refs := NewReferenceMap()
	for i := 0; i < 10; i++ {
		refs.define(fmt.Sprintf("label%d", i), Reference{Destination: fmt.Sprintf("/d%d", i)})
	}

	var wg sync.WaitGroup
	for g := 0; g < 50; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 10; i++ {
				if _, ok := refs.Lookup(fmt.Sprintf("label%d", i)); !ok {
					t.Errorf("label%d not found", i)
				}
			}
		}()
	}
	wg.Wait()
}
