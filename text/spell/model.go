// Copyright (c) 2020, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// this code is adapted from: https://github.com/sajari/fuzzy
// https://www.sajari.com/
// Most of which seems to have been written by Hamish @sajari
// it does not have a copyright notice in the code itself but does have
// an MIT license file.
//
// key change is to ignore counts and just use a flat Dict dictionary
// list of words.

package spell

import (
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/exp/maps"
)

// Model is the suggestion model for one dictionary: every word is indexed
// under the terms reached by deleting up to Depth of its characters, so
// that a misspelling can be matched by deleting characters from it too.
type Model struct {
	// list of all words, combining Base and User dictionaries
	Dict Dict

	// user dictionary of additional words
	UserDict Dict

	// map of misspelled word to potential correct spellings
	Suggest map[string][]string

	// depth of edits to include in Suggest map (2 is only sensible value)
	Depth int

	sync.RWMutex
}

// NewModel creates and initialises a new model.
func NewModel() *Model {
	md := new(Model)
	return md.Init()
}

func (md *Model) Init() *Model {
	md.Suggest = make(map[string][]string)
	md.Dict = make(Dict)
	md.UserDict = make(Dict)
	md.Depth = 2
	return md
}

// SetDicts sets the base and user dictionaries and indexes all of their
// words. Unlike incremental learning, indexing happens before SetDicts
// returns, so the model is complete as soon as it is handed out.
func (md *Model) SetDicts(base, user Dict) {
	md.Lock()
	defer md.Unlock()
	md.Dict = make(Dict, len(base)+len(user))
	maps.Copy(md.Dict, base)
	maps.Copy(md.Dict, user)
	md.UserDict = user
	md.Suggest = make(map[string][]string)
	for _, term := range md.Dict.List() {
		md.createSuggestKeys(term)
	}
}

// For a given term, create the partially deleted lookup keys
func (md *Model) createSuggestKeys(term string) {
	edits := md.EditsMulti(term, md.Depth)
	for _, edit := range edits {
		skip := false
		for _, hit := range md.Suggest[edit] {
			if hit == term {
				// Already know about this one
				skip = true
				break
			}
		}
		if !skip && utf8.RuneCountInString(edit) > 1 {
			md.Suggest[edit] = append(md.Suggest[edit], term)
		}
	}
}

// EditsMulti returns the edits of term at any depth up to the given one.
func (md *Model) EditsMulti(term string, depth int) []string {
	edits := Edits1(term)
	for {
		depth--
		if depth <= 0 {
			break
		}
		for _, edit := range edits {
			edits = append(edits, Edits1(edit)...)
		}
	}
	return edits
}

// Edits1 creates a set of terms that are 1 char delete from the input term.
// Characters are runes, so accented letters are deleted whole.
func Edits1(word string) []string {
	rs := []rune(word)
	total := make([]string, 0, len(rs)+2)
	for i := range rs {
		total = append(total, string(rs[:i])+string(rs[i+1:]))
	}
	total = append(total, word)

	// Special case ending in "ies" or "ys"
	if strings.HasSuffix(word, "ies") {
		total = append(total, word[:len(word)-3]+"ys")
	}
	if strings.HasSuffix(word, "ys") {
		total = append(total, word[:len(word)-2]+"ies")
	}
	return total
}

// For a given input term, suggest some alternatives.
// if the input is in the dictionary, it will be the only item
// returned.
func (md *Model) suggestPotential(input string) []string {
	input = strings.ToLower(input)

	// 0 - If this is a dictionary term we're all good, no need to go further
	if md.Dict.Exists(input) {
		return []string{input}
	}

	ss := make(Dict)
	var sord []string
	add := func(pot string) {
		if !ss.Exists(pot) {
			sord = append(sord, pot)
			ss.Add(pot)
		}
	}

	// 1 - See if the input matches a "suggest" key
	for _, pot := range md.Suggest[input] {
		add(pot)
	}

	// 2 - See if edit1 matches input
	edits := md.EditsMulti(input, md.Depth)
	got := false
	for _, edit := range edits {
		if utf8.RuneCountInString(edit) > 2 && md.Dict.Exists(edit) {
			got = true
			add(edit)
		}
	}
	if got {
		// substitutions at distance 1, such as "catz" to "cats", share
		// a delete key with the input but are not deletes of it
		for _, edit := range Edits1(input) {
			for _, pot := range md.Suggest[edit] {
				if Levenshtein(input, pot) <= 1 {
					add(pot)
				}
			}
		}
		return sord
	}

	// 3 - No hits on edit1 distance, look for transposes and replaces
	// Note: these are more complex, we need to check the guesses
	// more thoroughly, e.g. levals=[valves] in a raw sense, which
	// is incorrect
	for _, edit := range edits {
		for _, pot := range md.Suggest[edit] {
			// The +1 doesn't seem to impact speed, but has greater coverage
			// when the depth is not sufficient to make suggestions
			if Levenshtein(input, pot) <= md.Depth+1 {
				add(pot)
			}
		}
	}
	return sord
}

// Suggestions returns up to n likely corrections of input in the order
// they were found, or all of them if n <= 0.
func (md *Model) Suggestions(input string, n int) []string {
	md.RLock()
	suggestions := md.suggestPotential(input)
	md.RUnlock()
	if n > 0 && len(suggestions) > n {
		suggestions = suggestions[:n]
	}
	return suggestions
}

// Levenshtein calculates the Levenshtein distance between two strings,
// counted in runes.
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	la := len(ra)
	lb := len(rb)
	d := make([]int, la+1)
	var lastdiag, olddiag, temp int

	for i := 1; i <= la; i++ {
		d[i] = i
	}
	for i := 1; i <= lb; i++ {
		d[0] = i
		lastdiag = i - 1
		for j := 1; j <= la; j++ {
			olddiag = d[j]
			mn := d[j] + 1
			if (d[j-1] + 1) < mn {
				mn = d[j-1] + 1
			}
			if ra[j-1] == rb[i-1] {
				temp = 0
			} else {
				temp = 1
			}
			if (lastdiag + temp) < mn {
				mn = lastdiag + temp
			}
			d[j] = mn
			lastdiag = olddiag
		}
	}
	return d[la]
}
