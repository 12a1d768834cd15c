// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package corrector provides spell correction of single words and whole
// phrases on top of a dictionary [spell.Engine], a [Tokenizer] and a
// [metric.Metric] used to rank suggestions.
//
// Each [Corrector] owns exactly one dictionary, so several correctors
// with different dictionaries or personal word lists can be used side
// by side.
package corrector

import (
	"cmp"
	"fmt"
	"io/fs"
	"log/slog"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"
	"unicode"

	"cogentcore.org/spellfix/base/errors"
	"cogentcore.org/spellfix/base/fsx"
	"cogentcore.org/spellfix/text/lexer"
	"cogentcore.org/spellfix/text/metric"
	"cogentcore.org/spellfix/text/spell"
)

// Tokenizer splits a phrase into word and punctuation tokens.
type Tokenizer interface {
	Tokenize(text string) []string
}

// Loader loads the dictionary engine named name from the directory dir,
// also accepting the given personal words, which may be nil.
type Loader func(dir, name string, personal spell.Dict) (spell.Engine, error)

// OpenHunspell is the default [Loader], using [spell.OpenDir].
func OpenHunspell(dir, name string, personal spell.Dict) (spell.Engine, error) {
	return spell.OpenDir(dir, name, personal)
}

// Option customizes a [Corrector] in [New].
type Option func(c *Corrector)

// WithLoader sets the function used to load the dictionary.
func WithLoader(l Loader) Option {
	return func(c *Corrector) { c.loader = l }
}

// WithTokenizer sets the tokenizer used by [Corrector.FixText].
func WithTokenizer(t Tokenizer) Option {
	return func(c *Corrector) { c.tokenizer = t }
}

// WithMetric sets the metric used to rank suggestions,
// overriding [Config.Metric].
func WithMetric(m metric.Metric) Option {
	return func(c *Corrector) { c.metric = m }
}

// Corrector corrects the spelling of words and phrases against one
// dictionary. It is safe for concurrent use: [Corrector.Reload] swaps
// the dictionary while other operations keep using the one they started with.
type Corrector struct {
	cfg       Config
	loader    Loader
	tokenizer Tokenizer
	metric    metric.Metric

	// leading matches a punctuation character at the start of a token.
	leading *regexp.Regexp

	// spaced matches a space followed by a punctuation character.
	spaced *regexp.Regexp

	mu     sync.RWMutex
	engine spell.Engine

	// wordsMu serializes writes to the personal word list.
	wordsMu sync.Mutex
}

// New returns a new corrector for the given configuration, with the
// dictionary already loaded. Empty DictionaryName and Metric fields take
// their defaults. The error is a [*DictionaryLoadError] if the dictionary
// cannot be loaded.
func New(cfg Config, opts ...Option) (*Corrector, error) {
	cfg.setDefaults()
	c := &Corrector{cfg: cfg}
	for _, opt := range opts {
		opt(c)
	}
	if c.loader == nil {
		c.loader = OpenHunspell
	}
	if c.tokenizer == nil {
		c.tokenizer = lexer.WordTokenizer{}
	}
	if c.metric == nil {
		m, err := metric.ByName(cfg.Metric)
		if err != nil {
			return nil, err
		}
		c.metric = m
	}
	if cfg.Punctuation != "" {
		class := punctuationClass(cfg.Punctuation)
		c.leading = regexp.MustCompile(`^[` + class + `]`)
		c.spaced = regexp.MustCompile(` ([` + class + `])`)
	}
	if err := c.Reload(); err != nil {
		return nil, err
	}
	return c, nil
}

// Config returns a copy of the configuration of the corrector.
func (c *Corrector) Config() Config {
	return c.cfg
}

// Reload creates a new dictionary from the configured directory and
// replaces the current one with it. Operations already running keep
// the dictionary they started with. On failure the error is a
// [*DictionaryLoadError], and the corrector has no dictionary until
// the next successful reload.
func (c *Corrector) Reload() error {
	st := time.Now()
	eng, err := c.load()
	c.mu.Lock()
	c.engine = eng
	c.mu.Unlock()
	if err != nil {
		return &DictionaryLoadError{Path: c.cfg.DictionaryPath, Name: c.cfg.DictionaryName, Err: err}
	}
	slog.Info("loaded dictionary", "path", c.cfg.DictionaryPath, "name", c.cfg.DictionaryName, "took", time.Since(st))
	return nil
}

func (c *Corrector) load() (spell.Engine, error) {
	var personal spell.Dict
	if c.cfg.PersonalDict != "" {
		fn, err := fsx.Expand(c.cfg.PersonalDict)
		if err != nil {
			return nil, err
		}
		personal, err = spell.OpenDict(fn)
		if errors.Is(err, fs.ErrNotExist) {
			slog.Debug("personal word list not found", "file", fn)
		} else if err != nil {
			return nil, err
		}
	}
	dir, err := fsx.Expand(c.cfg.DictionaryPath)
	if err != nil {
		return nil, err
	}
	return c.loader(dir, c.cfg.DictionaryName, personal)
}

// AddWords adds the words to the personal word list file, creating it
// if needed, and then reloads the dictionary so that they are accepted
// and suggested. The file is rewritten in sorted order without comments.
// It returns [ErrNoPersonalDict] if [Config.PersonalDict] is empty.
func (c *Corrector) AddWords(words ...string) error {
	if c.cfg.PersonalDict == "" {
		return ErrNoPersonalDict
	}
	for _, w := range words {
		if w == "" || strings.IndexFunc(w, unicode.IsSpace) >= 0 {
			return fmt.Errorf("invalid word %q", w)
		}
	}
	fn, err := fsx.Expand(c.cfg.PersonalDict)
	if err != nil {
		return err
	}
	c.wordsMu.Lock()
	defer c.wordsMu.Unlock()
	d, err := spell.OpenDict(fn)
	if errors.Is(err, fs.ErrNotExist) {
		d = make(spell.Dict)
	} else if err != nil {
		return err
	}
	for _, w := range words {
		d.Add(w)
	}
	if err := d.Save(fn); err != nil {
		return err
	}
	slog.Info("added personal words", "file", fn, "words", words)
	return c.Reload()
}

// current returns the dictionary in use.
func (c *Corrector) current() (spell.Engine, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.engine == nil {
		return nil, ErrNotLoaded
	}
	return c.engine, nil
}

// IsPunctuation returns true if the first character of the token is one
// of the configured punctuation characters. Only the first character is
// considered, so with '!' configured both "!!" and "!x" are punctuation.
func (c *Corrector) IsPunctuation(token string) bool {
	return c.leading != nil && c.leading.MatchString(token)
}

// IsCorrect returns whether the dictionary accepts the word as
// correctly spelled.
func (c *Corrector) IsCorrect(word string) (bool, error) {
	eng, err := c.current()
	if err != nil {
		return false, err
	}
	return eng.Spell(word), nil
}

// Suggest returns the dictionary's suggestions for the word sorted by
// increasing distance to it, with suggestions at equal distance kept in
// the dictionary's order. The result is empty if there are none.
func (c *Corrector) Suggest(word string) ([]string, error) {
	eng, err := c.current()
	if err != nil {
		return nil, err
	}
	return c.suggest(eng, word), nil
}

func (c *Corrector) suggest(eng spell.Engine, word string) []string {
	type ranked struct {
		word string
		dist float64
	}
	sugs := eng.Suggest(word)
	rs := make([]ranked, len(sugs))
	for i, s := range sugs {
		rs[i] = ranked{s, c.metric.Distance(word, s)}
	}
	slices.SortStableFunc(rs, func(a, b ranked) int {
		return cmp.Compare(a.dist, b.dist)
	})
	res := make([]string, len(rs))
	for i, r := range rs {
		res[i] = r.word
	}
	return res
}

// Fix returns the word itself if it is punctuation or correctly spelled,
// and otherwise its best suggestion. A misspelled word without any
// suggestion is an error matching [ErrNoSuggestion]; the caller decides
// what to do with it.
func (c *Corrector) Fix(word string) (string, error) {
	eng, err := c.current()
	if err != nil {
		return "", err
	}
	return c.fix(eng, word)
}

func (c *Corrector) fix(eng spell.Engine, word string) (string, error) {
	if c.IsPunctuation(word) || eng.Spell(word) {
		return word, nil
	}
	sugs := c.suggest(eng, word)
	if len(sugs) == 0 {
		return "", &NoSuggestionError{Word: word}
	}
	slog.Debug("corrected word", "word", word, "fix", sugs[0])
	return sugs[0], nil
}

// FixText corrects every token of the text on its own, without regard to
// the surrounding words, and joins the results with single spaces, except
// that the space before a punctuation character is removed, so that
// "hello , world !" becomes "hello, world!". The whole text is fixed
// against the same dictionary even if it is reloaded meanwhile. The first
// token that cannot be fixed aborts with the error from [Corrector.Fix].
func (c *Corrector) FixText(text string) (string, error) {
	eng, err := c.current()
	if err != nil {
		return "", err
	}
	toks := c.tokenizer.Tokenize(text)
	fixed := make([]string, len(toks))
	for i, tok := range toks {
		fixed[i], err = c.fix(eng, tok)
		if err != nil {
			return "", err
		}
	}
	res := strings.Join(fixed, " ")
	if c.spaced != nil {
		res = c.spaced.ReplaceAllString(res, "$1")
	}
	return res, nil
}
