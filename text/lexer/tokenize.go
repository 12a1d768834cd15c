// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lexer splits free text into the word and punctuation tokens
// that are spell checked one at a time, and provides helpers for
// working with single words.
package lexer

import (
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// isConnector returns true for the runes that may join two word
// parts into one token: apostrophes and hyphens.
func isConnector(r rune) bool {
	return r == '\'' || r == '’' || r == '-'
}

// isWordRune returns true for runes that can appear in a word token.
// Combining marks are included so that decomposed input that has no
// composed form stays in one word.
func isWordRune(r rune) bool {
	return IsLetterOrDigit(r) || unicode.IsMark(r)
}

// Tokenize splits the given text into word and punctuation tokens in order.
// The text is first normalized to NFC. Whitespace separates tokens and is
// dropped. A word token is a run of letters and digits, which may contain
// apostrophes and hyphens between word runes ("don't", "well-known"), dots
// between word runes ("3.50", "example.com") and commas between digits
// ("1,000"). Abbreviations of single letters keep their final dot ("e.g.",
// "U.S."). Every other rune starts a punctuation token that extends over a
// run of the same rune, so "..." and "!!" are single tokens.
func Tokenize(text string) []string {
	rs := []rune(norm.NFC.String(text))
	n := len(rs)
	var toks []string
	for i := 0; i < n; {
		r := rs[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case isWordRune(r):
			j := i + 1
			for j < n {
				if isWordRune(rs[j]) {
					j++
				} else if joinsWord(rs, j) {
					j += 2
				} else {
					break
				}
			}
			if j < n && rs[j] == '.' && isAbbreviation(rs[i:j]) {
				j++
			}
			toks = append(toks, string(rs[i:j]))
			i = j
		default:
			j := i + 1
			for j < n && rs[j] == r {
				j++
			}
			toks = append(toks, string(rs[i:j]))
			i = j
		}
	}
	return toks
}

// joinsWord returns true if rs[j], which follows a word rune,
// continues the word up to the word rune at rs[j+1].
func joinsWord(rs []rune, j int) bool {
	if j+1 >= len(rs) || !isWordRune(rs[j+1]) {
		return false
	}
	switch r := rs[j]; {
	case isConnector(r), r == '.':
		return true
	case r == ',':
		return IsDigit(rs[j-1]) && IsDigit(rs[j+1])
	}
	return false
}

// isAbbreviation returns true for dotted runs of single letters like "e.g".
func isAbbreviation(word []rune) bool {
	if len(word) < 3 {
		return false
	}
	for i, r := range word {
		if i%2 == 1 {
			if r != '.' {
				return false
			}
		} else if !unicode.IsLetter(r) {
			return false
		}
	}
	return len(word)%2 == 1
}

// WordTokenizer is the default tokenizer, using [Tokenize].
type WordTokenizer struct{}

// Tokenize implements the tokenizer interface of the corrector.
func (WordTokenizer) Tokenize(text string) []string {
	return Tokenize(text)
}
