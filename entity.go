// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inline

import (
	"strconv"
	"unicode"
)

// htmlEntity maps named HTML5 entities (including the trailing ';') to
// their expansions. This is a representative subset of the full WHATWG
// entities.json table. The teacher generates its complete table with its
// entity2go.go generator from https://html.spec.whatwg.org/entities.json;
// this module includes no such generator.
var htmlEntity = map[string]string{
	"&amp;":    "&",
	"&AMP;":    "&",
	"&lt;":     "<",
	"&LT;":     "<",
	"&gt;":     ">",
	"&GT;":     ">",
	"&quot;":   "\"",
	"&QUOT;":   "\"",
	"&apos;":   "'",
	"&nbsp;":   " ",
	"&copy;":   "©",
	"&COPY;":   "©",
	"&reg;":    "®",
	"&REG;":    "®",
	"&trade;":  "™",
	"&hellip;": "…",
	"&mdash;":  "—",
	"&ndash;":  "–",
	"&lsquo;":  "‘",
	"&rsquo;":  "’",
	"&ldquo;":  "“",
	"&rdquo;":  "”",
	"&bull;":   "•",
	"&middot;": "·",
	"&deg;":    "°",
	"&plusmn;": "±",
	"&times;":  "×",
	"&divide;": "÷",
	"&frac12;": "½",
	"&frac14;": "¼",
	"&frac34;": "¾",
	"&sup2;":   "²",
	"&sup3;":   "³",
	"&micro;":  "µ",
	"&para;":   "¶",
	"&sect;":   "§",
	"&laquo;":  "«",
	"&raquo;":  "»",
	"&euro;":   "€",
	"&pound;":  "£",
	"&yen;":    "¥",
	"&cent;":   "¢",
	"&alpha;":  "α",
	"&beta;":   "β",
	"&gamma;":  "γ",
	"&delta;":  "δ",
	"&pi;":     "π",
	"&omega;":  "ω",
	"&larr;":   "←",
	"&uarr;":   "↑",
	"&rarr;":   "→",
	"&darr;":   "↓",
	"&harr;":   "↔",
	"&infin;":  "∞",
	"&ne;":     "≠",
	"&le;":     "≤",
	"&ge;":     "≥",
	"&spades;": "♠",
	"&clubs;":  "♣",
	"&hearts;": "♥",
	"&diams;":  "♦",
}

// maxEntityNameLen bounds the scan in parseEntity: the longest name in the
// full WHATWG table is under 32 bytes; scanning up to 64 guards against
// pathological "&&&&&&&…" input (see parseEntity) without a regexp.
const maxEntityNameLen = 64

// UnescapeEntity resolves a single HTML5 named or numeric character
// reference, spec §6's entity_unescape. s must be exactly one entity
// (leading '&', trailing ';'); unrecognized input is returned unchanged.
func UnescapeEntity(s string) string {
	if v, _, ok := scanEntity(s, 0); ok {
		return v
	}
	return s
}

// scanEntity attempts to match a decimal numeric (&#NNN;), hex numeric
// (&#xHHH;), or named (&name;) entity starting at s[i], per spec §4.6.
// It returns the unescaped text, the index just past the match, and
// whether a match was found.
func scanEntity(s string, i int) (string, int, bool) {
	if i >= len(s) || s[i] != '&' {
		return "", 0, false
	}
	start := i

	if i+1 < len(s) && s[i+1] == '#' {
		j := i + 2
		var r int64
		var err error
		if j < len(s) && (s[j] == 'x' || s[j] == 'X') {
			j++
			k := j
			for k < len(s) && isHexDigit(s[k]) {
				k++
			}
			if k-j < 1 || k-j > 6 || k >= len(s) || s[k] != ';' {
				return "", 0, false
			}
			r, err = strconv.ParseInt(s[j:k], 16, 32)
			j = k
		} else {
			k := j
			for k < len(s) && isDigit(s[k]) {
				k++
			}
			if k-j < 1 || k-j > 7 || k >= len(s) || s[k] != ';' {
				return "", 0, false
			}
			r, err = strconv.ParseInt(s[j:k], 10, 32)
			j = k
		}
		if err != nil {
			return "", 0, false
		}
		cp := rune(r)
		if cp == 0 || cp > unicode.MaxRune || (cp >= 0xD800 && cp <= 0xDFFF) {
			cp = unicode.ReplacementChar
		}
		return string(cp), j + 1, true
	}

	for j := i + 1; j < len(s) && j-i < maxEntityNameLen; j++ {
		if s[j] == '&' {
			break // avoid quadratic rescans on "&&&&&&&…"
		}
		if s[j] == ';' {
			if v, ok := htmlEntity[s[start:j+1]]; ok {
				return v, j + 1, true
			}
			break
		}
	}
	return "", 0, false
}

// parseEntity is the dispatcher sub-parser for '&' (spec §4.6).
func parseEntity(st *state) bool {
	if v, end, ok := scanEntity(st.subject, st.pos); ok {
		st.appendChild(NewText(v))
		st.pos = end
		return true
	}
	return false
}
