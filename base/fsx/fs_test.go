// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fsx

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirFS(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "words.txt"), []byte("hello\n"), 0o644))

	fsys, err := DirFS(dir)
	require.NoError(t, err)
	b, err := fs.ReadFile(fsys, "words.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(b))

	_, err = DirFS(filepath.Join(dir, "missing"))
	assert.ErrorIs(t, err, fs.ErrNotExist)

	_, err = DirFS(filepath.Join(dir, "words.txt"))
	assert.Error(t, err)
}

func TestExpand(t *testing.T) {
	home, err := homedir.Dir()
	require.NoError(t, err)
	p, err := Expand("~/dicts")
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "dicts"), p)

	p, err = Expand("")
	assert.NoError(t, err)
	assert.Equal(t, "", p)
}

func TestFindFileOnPaths(t *testing.T) {
	a, b, c := t.TempDir(), t.TempDir(), t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(b, "spellfix.toml"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(c, "spellfix.toml"), nil, 0o644))
	assert.Equal(t, filepath.Join(b, "spellfix.toml"), FindFileOnPaths([]string{a, b, c}, "spellfix.toml"))
	assert.Equal(t, filepath.Join(c, "spellfix.toml"), FindFileOnPaths([]string{c, b}, "spellfix.toml"))
	assert.Equal(t, "", FindFileOnPaths([]string{a}, "spellfix.toml"))

	abs := filepath.Join(c, "spellfix.toml")
	assert.Equal(t, abs, FindFileOnPaths(nil, abs))
	assert.Equal(t, "", FindFileOnPaths(nil, filepath.Join(a, "spellfix.toml")))
}
