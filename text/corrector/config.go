// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package corrector

import (
	"regexp"
	"strings"
)

// Config contains the configuration of a [Corrector].
type Config struct {

	// Punctuation is the set of characters treated as punctuation marks.
	// Tokens starting with one of them are never corrected, and the space
	// before them is removed when a phrase is put back together.
	// This is a plain list of characters, not the body of a regular
	// expression character class: each character stands for itself, so
	// "a-z" is the three characters 'a', '-' and 'z', not a range, and
	// '^', ']' and '\' need no escaping.
	Punctuation string `default:".,;:!?"`

	// DictionaryPath is the directory containing the dictionary index.
	// A leading ~ is expanded to the home directory.
	DictionaryPath string

	// DictionaryName is the base name of the hunspell .aff and .dic
	// files of the dictionary in DictionaryPath.
	DictionaryName string `default:"index"`

	// PersonalDict is an optional file of additional accepted words,
	// one per line, read on every reload and written by [Corrector.AddWords].
	// A missing file is the same as an empty one.
	PersonalDict string

	// Metric is the name of the string distance used to rank suggestions.
	Metric string `default:"levenshtein"`
}

// setDefaults fills in the zero fields that have defaults.
// Punctuation may deliberately be empty, so it is left alone.
func (cfg *Config) setDefaults() {
	if cfg.DictionaryName == "" {
		cfg.DictionaryName = "index"
	}
	if cfg.Metric == "" {
		cfg.Metric = "levenshtein"
	}
}

// punctuationClass returns the regexp character class body matching
// exactly the characters of set.
func punctuationClass(set string) string {
	var sb strings.Builder
	for _, r := range set {
		if r == '-' {
			sb.WriteString(`\-`)
			continue
		}
		sb.WriteString(regexp.QuoteMeta(string(r)))
	}
	return sb.String()
}
