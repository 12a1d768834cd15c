// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tomlx provides functions for reading and writing
// TOML files into and out of Go values.
package tomlx

import (
	"bufio"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Read reads the given object from the given reader.
func Read(v any, reader io.Reader) error {
	return toml.NewDecoder(reader).Decode(v)
}

// Open reads the given object from the given filename.
func Open(v any, filename string) error {
	fp, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	return Read(v, bufio.NewReader(fp))
}

// Write writes the given object to the given writer.
func Write(v any, writer io.Writer) error {
	return toml.NewEncoder(writer).Encode(v)
}
