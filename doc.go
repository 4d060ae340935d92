// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package inline implements the inline-parsing subsystem of a CommonMark-family
// lightweight-markup processor: the subsystem that turns the raw text content
// of an already-segmented block into a tree of inline nodes (text, code
// spans, emphasis, strong emphasis, links, images, autolinks, raw HTML,
// line breaks, entities, and optional "smart" typography).
//
// Block-level segmentation — paragraphs, lists, headings, fenced code,
// block-quote continuation — is explicitly out of scope. Callers own that
// layer and hand this package a finished block's string content through the
// minimal [Node] contract; see [Parse] and [ParseReference].
package inline
