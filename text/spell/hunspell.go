// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package spell provides the dictionary engine used for spell checking:
// hunspell .aff / .dic dictionaries are read with gospell for affix aware
// checking, and the affix expanded words feed a [Model] that generates
// suggestions.
package spell

import (
	"bytes"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"cogentcore.org/spellfix/base/errors"
	"cogentcore.org/spellfix/base/fsx"
	"cogentcore.org/spellfix/text/lexer"
	"github.com/client9/gospell"
)

// ErrMissingIndex is returned by [Open] when the .aff or .dic
// file of the named dictionary is not present.
var ErrMissingIndex = errors.New("dictionary index not found")

// MaxSuggestions is the maximum number of suggestions returned by
// [Hunspell.Suggest] for one word.
const MaxSuggestions = 10

// Engine is a loaded dictionary that checks and corrects single words.
type Engine interface {
	// Spell returns true if the word is correctly spelled.
	Spell(word string) bool

	// Suggest returns candidate corrections for the word,
	// best first by the engine's own judgement, possibly none.
	Suggest(word string) []string
}

// Hunspell is an [Engine] over a hunspell dictionary plus personal words.
// It is immutable once opened.
type Hunspell struct {
	// Name is the base name of the dictionary files.
	Name string

	checker  *gospell.GoSpell
	model    *Model
	personal Dict
}

// Open reads name.aff and name.dic from fsys and returns the engine for
// them, with the given personal words (which may be nil) accepted
// and suggested in addition to the dictionary words.
func Open(fsys fs.FS, name string, personal Dict) (*Hunspell, error) {
	st := time.Now()
	aff, err := readIndexFile(fsys, name+".aff")
	if err != nil {
		return nil, err
	}
	dic, err := readIndexFile(fsys, name+".dic")
	if err != nil {
		return nil, err
	}
	stems, err := ReadStems(bytes.NewReader(dic))
	if err != nil {
		return nil, fmt.Errorf("%s.dic: %w", name, err)
	}
	checker, err := gospell.NewGoSpellReader(bytes.NewReader(aff), bytes.NewReader(dic))
	if err != nil {
		return nil, fmt.Errorf("%s.aff/%s.dic: %w", name, name, err)
	}
	if personal == nil {
		personal = make(Dict)
	}
	if len(personal) > 0 {
		dups, err := checker.AddWordList(strings.NewReader(strings.Join(personal.List(), "\n")))
		if err != nil {
			return nil, fmt.Errorf("personal words: %w", err)
		}
		for _, word := range dups {
			slog.Debug("personal word already in dictionary", "dict", name, "word", word)
		}
	}
	// checker.Dict holds every affixed form, so that "cats" can be
	// suggested from "cat/S" and not only the stem.
	words := make(Dict, len(checker.Dict))
	for w := range checker.Dict {
		words.Add(strings.ToLower(w))
	}
	user := make(Dict, len(personal))
	for w := range personal {
		user.Add(strings.ToLower(w))
	}
	md := NewModel()
	md.SetDicts(words, user)
	slog.Debug("opened dictionary", "dict", name, "stems", len(stems), "words", len(words), "personal", len(personal), "took", time.Since(st))
	return &Hunspell{Name: name, checker: checker, model: md, personal: personal}, nil
}

// OpenDir opens the named dictionary from the given directory, see [Open].
func OpenDir(dir, name string, personal Dict) (*Hunspell, error) {
	fsys, err := fsx.DirFS(dir)
	if err != nil {
		return nil, err
	}
	return Open(fsys, name, personal)
}

func readIndexFile(fsys fs.FS, fname string) ([]byte, error) {
	b, err := fs.ReadFile(fsys, fname)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrMissingIndex, fname)
	}
	return b, err
}

// Spell returns true if the word is accepted by the hunspell dictionary
// or is a personal word. Words with capitals are also accepted when
// their lower case form is, so sentence-initial words are not flagged.
// Tokens without any letter, like "3.50" or "(", cannot be misspelled.
func (h *Hunspell) Spell(word string) bool {
	if strings.IndexFunc(word, unicode.IsLetter) < 0 {
		return true
	}
	if h.checker.Spell(word) || h.personal.Exists(word) {
		return true
	}
	if strings.IndexFunc(word, unicode.IsUpper) < 0 {
		return false
	}
	lw := strings.ToLower(word)
	return h.checker.Spell(lw) || h.personal.Exists(lw)
}

// Suggest returns up to [MaxSuggestions] corrections for the word from
// the suggestion model, with the case pattern of the word applied to them.
func (h *Hunspell) Suggest(word string) []string {
	suggests := h.model.Suggestions(word, MaxSuggestions)
	for i, s := range suggests {
		suggests[i] = lexer.MatchCase(word, s)
	}
	return suggests
}
