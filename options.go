// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inline

import "log"

// Options configures a call to [Parse].
type Options struct {
	// Smart enables '\'' and '"' delimiter handling plus ellipsis and dash
	// replacement in ordinary text. Default off.
	Smart bool

	// MaxLinkLabelLength bounds the number of characters the label of a
	// full or collapsed reference link (the second pair of brackets) may
	// contain during [Parse]. Zero means 1000. [ParseReference] takes no
	// Options and always uses 1000.
	MaxLinkLabelLength int

	// Logger, if non-nil, receives diagnostic-only messages (for example,
	// a raw HTML tag whose name isn't a recognized HTML5 element). Parsing
	// behavior never depends on whether Logger is set.
	Logger *log.Logger
}

func (o Options) maxLabelLen() int {
	if o.MaxLinkLabelLength > 0 {
		return o.MaxLinkLabelLength
	}
	return 1000
}

func (o Options) logf(format string, args ...any) {
	if o.Logger != nil {
		o.Logger.Printf(format, args...)
	}
}
