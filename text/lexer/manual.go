// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexer

import (
	"strings"
	"unicode"
)

// the manual functions provide "manual" lexing support for single
// words, where a token must be processed further.

// IsLetter returns true if the rune is a letter, or an underscore.
func IsLetter(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

// IsDigit returns true if the rune is a decimal digit.
func IsDigit(r rune) bool {
	return '0' <= r && r <= '9' || unicode.IsDigit(r)
}

// IsLetterOrDigit returns true if the rune is a letter or a digit.
func IsLetterOrDigit(r rune) bool {
	return IsLetter(r) || IsDigit(r)
}

// MatchCase uses the source string case (upper / lower) to set corresponding
// case in target string, returning that string. A source that is entirely
// upper case makes the whole target upper case.
func MatchCase(src, trg string) string {
	rsc := []rune(src)
	rtg := []rune(trg)
	if len(rsc) > 1 && strings.ToUpper(src) == src && strings.ToLower(src) != src {
		return strings.ToUpper(trg)
	}
	mx := min(len(rsc), len(rtg))
	for i := 0; i < mx; i++ {
		t := rtg[i]
		if unicode.IsUpper(rsc[i]) {
			if !unicode.IsUpper(t) {
				rtg[i] = unicode.ToUpper(t)
			}
		} else {
			if !unicode.IsLower(t) {
				rtg[i] = unicode.ToLower(t)
			}
		}
	}
	return string(rtg)
}
