// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package clean strips text down to an allowed set of characters.
package clean

import "strings"

const (
	// Letters are the ASCII letters.
	Letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// Digits are the ASCII decimal digits.
	Digits = "0123456789"

	// Whitelist is the default allowed set: ASCII letters, digits and space.
	Whitelist = Letters + Digits + " "

	// SpanishWhitelist extends [Whitelist] with the Spanish letters.
	SpanishWhitelist = Whitelist + "ñáéíóúüÑÁÉÍÓÚÜ"
)

// Symbols returns text with every character not in [Whitelist] removed.
func Symbols(text string) string {
	return Filter(text, Whitelist)
}

// Filter returns text with every character not in allowed removed,
// keeping the order of the remaining characters. An empty allowed
// set removes everything.
func Filter(text, allowed string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(allowed, r) {
			return r
		}
		return -1
	}, text)
}
