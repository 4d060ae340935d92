// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inline

import "unicode"

// isASCIIPunct reports whether c is one of the ASCII punctuation characters
// CommonMark treats as escapable (spec §4.4) and as punctuation for
// flanking purposes (spec §4.7).
func isASCIIPunct(c byte) bool {
	return '!' <= c && c <= '/' || ':' <= c && c <= '@' || '[' <= c && c <= '`' || '{' <= c && c <= '~'
}

// isUnicodeSpace reports whether r is Unicode whitespace or NBSP, per the
// flanking-rule inputs of spec §4.7.
func isUnicodeSpace(r rune) bool {
	if r < 0x80 {
		return r == ' ' || r == '\t' || r == '\n' || r == '\v' || r == '\f' || r == '\r'
	}
	return r == 0xA0 || unicode.In(r, unicode.Zs)
}

// isUnicodePunct reports whether r is ASCII or Unicode punctuation, per the
// flanking-rule inputs of spec §4.7. CommonMark defines a Unicode
// punctuation character as one in the Unicode P (punctuation) or S (symbol)
// general categories.
func isUnicodePunct(r rune) bool {
	if r < 0x80 {
		return isASCIIPunct(byte(r))
	}
	return unicode.In(r, unicode.Punct, unicode.Symbol)
}

func isLetter(c byte) bool {
	return 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z'
}

func isLetterDigit(c byte) bool {
	return isLetter(c) || isDigit(c)
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func isLDH(c byte) bool {
	return isLetterDigit(c) || c == '-'
}

func isSpaceOrTab(c byte) bool {
	return c == ' ' || c == '\t'
}
