// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spell

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
)

// Dict is a dictionary of words, with no counts or other data.
type Dict map[string]struct{}

// Exists returns true if the word is in the dictionary.
func (d Dict) Exists(word string) bool {
	_, ok := d[word]
	return ok
}

// Add adds the given word to the dictionary.
func (d Dict) Add(word string) {
	d[word] = struct{}{}
}

// List returns the words in the dictionary in sorted order.
func (d Dict) List() []string {
	wl := maps.Keys(d)
	slices.Sort(wl)
	return wl
}

// Save saves the dictionary to the given file, one word per line in sorted order.
func (d Dict) Save(fname string) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer f.Close()
	return d.Write(f)
}

// Write writes the dictionary to w, one word per line in sorted order.
func (d Dict) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, wd := range d.List() {
		bw.WriteString(wd)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// ReadDict reads a plain word list: one word per line, with blank lines
// and lines starting with # ignored. Words are stored as written.
func ReadDict(r io.Reader) (Dict, error) {
	d := make(Dict)
	scan := bufio.NewScanner(r)
	for scan.Scan() {
		w := strings.TrimSpace(scan.Text())
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		d.Add(w)
	}
	return d, scan.Err()
}

// OpenDict opens a plain word list file, see [ReadDict].
func OpenDict(fname string) (Dict, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadDict(f)
}

// ReadStems reads the stems of a hunspell .dic file: the first line is
// the approximate word count, and every following line holds a word
// optionally followed by /FLAGS and morphological fields, which are dropped.
// Stems are lower cased, as that is how the suggestion [Model] looks them up.
func ReadStems(r io.Reader) (Dict, error) {
	scan := bufio.NewScanner(r)
	if !scan.Scan() {
		if err := scan.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("empty dictionary")
	}
	first := strings.TrimPrefix(strings.TrimSpace(scan.Text()), "\ufeff")
	n, err := strconv.Atoi(first)
	if err != nil {
		return nil, fmt.Errorf("line 1: expected word count, got %q", first)
	}
	d := make(Dict, n)
	for scan.Scan() {
		line := scan.Text()
		if i := strings.IndexAny(line, "/\t "); i >= 0 {
			line = line[:i]
		}
		if line == "" {
			continue
		}
		d.Add(strings.ToLower(line))
	}
	return d, scan.Err()
}
