// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package corrector

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// copyDict copies the named test dictionary into a new temporary directory.
func copyDict(t *testing.T, src string) string {
	dir := t.TempDir()
	writeDict(t, dir, src)
	return dir
}

func writeDict(t *testing.T, dir, src string) {
	for _, ext := range []string{".aff", ".dic"} {
		b, err := os.ReadFile(filepath.Join("../spell/testdata", src, "index"+ext))
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "index"+ext), b, 0o644))
	}
}

func TestHunspellFixText(t *testing.T) {
	c, err := New(Config{Punctuation: ".,;:!?", DictionaryPath: "../spell/testdata/en"})
	require.NoError(t, err)

	got, err := c.FixText("hello , world !")
	require.NoError(t, err)
	assert.Equal(t, "hello, world!", got)

	got, err = c.FixText("helo , wrold !")
	require.NoError(t, err)
	assert.Equal(t, "hello, world!", got)

	got, err = c.FixText("Helo cats")
	require.NoError(t, err)
	assert.Equal(t, "Hello cats", got)

	again, err := c.FixText(got)
	require.NoError(t, err)
	assert.Equal(t, got, again)

	_, err = c.FixText("zzzzzzzz")
	assert.ErrorIs(t, err, ErrNoSuggestion)

	got, err = c.FixText("it costs 3.50 dollars")
	require.NoError(t, err)
	assert.Equal(t, "it costs 3.50 dollars", got)

	got, err = c.FixText("1,000 dollrs")
	require.NoError(t, err)
	assert.Equal(t, "1,000 dollars", got)

	got, err = c.FixText("")
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestHunspellReload(t *testing.T) {
	dir := copyDict(t, "en")
	c, err := New(Config{Punctuation: ".", DictionaryPath: dir})
	require.NoError(t, err)

	ok, err := c.IsCorrect("hallo")
	require.NoError(t, err)
	assert.False(t, ok)

	writeDict(t, dir, "alt")
	require.NoError(t, c.Reload())
	ok, err = c.IsCorrect("hallo")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = c.IsCorrect("hello")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, os.Remove(filepath.Join(dir, "index.aff")))
	assert.ErrorIs(t, c.Reload(), ErrDictionaryLoad)

	_, err = New(Config{DictionaryPath: filepath.Join(dir, "missing")})
	assert.ErrorIs(t, err, ErrDictionaryLoad)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestHunspellAddWords(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "personal.txt")
	require.NoError(t, os.WriteFile(fn, nil, 0o644))
	c, err := New(Config{DictionaryPath: "../spell/testdata/en", PersonalDict: fn})
	require.NoError(t, err)

	ok, err := c.IsCorrect("spellfix")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.AddWords("spellfix"))
	ok, err = c.IsCorrect("spellfix")
	require.NoError(t, err)
	assert.True(t, ok)
	got, err := c.Fix("spellfx")
	require.NoError(t, err)
	assert.Equal(t, "spellfix", got)
}
