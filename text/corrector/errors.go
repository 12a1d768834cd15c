// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package corrector

import (
	"fmt"

	"cogentcore.org/spellfix/base/errors"
)

var (
	// ErrDictionaryLoad matches every [DictionaryLoadError].
	ErrDictionaryLoad = errors.New("dictionary load failed")

	// ErrNoSuggestion matches every [NoSuggestionError].
	ErrNoSuggestion = errors.New("no suggestion available")

	// ErrNoPersonalDict is returned by [Corrector.AddWords] when no
	// personal word list is configured.
	ErrNoPersonalDict = errors.New("no personal word list configured")

	// ErrNotLoaded is returned by lookups after a failed [Corrector.Reload],
	// until a later reload succeeds.
	ErrNotLoaded = errors.New("no dictionary loaded")
)

// DictionaryLoadError is returned when the dictionary cannot be
// (re)loaded from its directory.
type DictionaryLoadError struct {
	// Path is the dictionary directory.
	Path string

	// Name is the base name of the dictionary files.
	Name string

	// Err is the underlying error.
	Err error
}

func (e *DictionaryLoadError) Error() string {
	return fmt.Sprintf("loading dictionary %q from %q: %v", e.Name, e.Path, e.Err)
}

func (e *DictionaryLoadError) Unwrap() error { return e.Err }

func (e *DictionaryLoadError) Is(target error) bool { return target == ErrDictionaryLoad }

// NoSuggestionError is returned by [Corrector.Fix] for a misspelled
// word the dictionary has no suggestion for.
type NoSuggestionError struct {
	Word string
}

func (e *NoSuggestionError) Error() string {
	return fmt.Sprintf("no suggestion available for misspelled word %q", e.Word)
}

func (e *NoSuggestionError) Is(target error) bool { return target == ErrNoSuggestion }
