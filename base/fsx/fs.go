// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fsx provides various utility functions for dealing with filesystems.
package fsx

import (
	"io/fs"
	"os"
	"path/filepath"

	"cogentcore.org/spellfix/base/errors"
	"github.com/mitchellh/go-homedir"
)

// Expand returns the given path with a leading ~ replaced by the
// user's home directory. Empty paths are returned unchanged.
func Expand(path string) (string, error) {
	if path == "" {
		return path, nil
	}
	return homedir.Expand(path)
}

// DirFS returns an [os.DirFS] rooted at the given directory after
// expanding a leading ~. It returns an [fs.ErrNotExist] based error
// if the directory does not exist, and an error if it is a file,
// since os.DirFS itself defers those checks until the first open.
func DirFS(dir string) (fs.FS, error) {
	dir, err := Expand(dir)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, &fs.PathError{Op: "open", Path: dir, Err: errors.New("not a directory")}
	}
	return os.DirFS(dir), nil
}

// FileExists checks whether the given file exists on the os filesystem.
func FileExists(filePath string) (bool, error) {
	fileInfo, err := os.Stat(filePath)
	if err == nil {
		return !fileInfo.IsDir(), nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// FindFileOnPaths returns the full path of the given file in the first
// of the given paths that contains it, or "" if none does. Paths are
// ~ expanded; those that fail to expand are skipped. An absolute file
// is returned if it exists.
func FindFileOnPaths(paths []string, file string) string {
	if filepath.IsAbs(file) {
		if ok, _ := FileExists(file); ok {
			return file
		}
		return ""
	}
	for _, path := range paths {
		path, err := Expand(path)
		if err != nil {
			continue
		}
		fn := filepath.Join(path, file)
		if ok, _ := FileExists(fn); ok {
			return fn
		}
	}
	return ""
}
