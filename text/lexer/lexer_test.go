// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"   \t\n", nil},
		{"hello , world !", []string{"hello", ",", "world", "!"}},
		{"hello, world!", []string{"hello", ",", "world", "!"}},
		{"Wait... what?!", []string{"Wait", "...", "what", "?", "!"}},
		{"don't stop", []string{"don't", "stop"}},
		{"rock 'n' roll", []string{"rock", "'", "n", "'", "roll"}},
		{"a well-known fact", []string{"a", "well-known", "fact"}},
		{"- dash", []string{"-", "dash"}},
		{"it costs 42€", []string{"it", "costs", "42", "€"}},
		{"ni\u00f1o", []string{"ni\u00f1o"}},
		{"nin\u0303o", []string{"ni\u00f1o"}},
		{"(hola)", []string{"(", "hola", ")"}},
		{"it costs 3.50 dollars", []string{"it", "costs", "3.50", "dollars"}},
		{"1,000 cats", []string{"1,000", "cats"}},
		{"cats,dogs", []string{"cats", ",", "dogs"}},
		{"e.g. this", []string{"e.g.", "this"}},
		{"the U.S. team", []string{"the", "U.S.", "team"}},
		{"see example.com now", []string{"see", "example.com", "now"}},
		{"plan a.", []string{"plan", "a", "."}},
		{"end. Then 3.", []string{"end", ".", "Then", "3", "."}},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, Tokenize(test.in), test.in)
	}
	assert.Equal(t, Tokenize("hi there."), WordTokenizer{}.Tokenize("hi there."))
}

func TestMatchCase(t *testing.T) {
	assert.Equal(t, "Hello", MatchCase("Helo", "hello"))
	assert.Equal(t, "hello", MatchCase("helo", "hello"))
	assert.Equal(t, "HELLO", MatchCase("HELO", "hello"))
	assert.Equal(t, "I", MatchCase("I", "i"))
	assert.Equal(t, "hello", MatchCase("", "hello"))
}
