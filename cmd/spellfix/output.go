// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"

	"cogentcore.org/spellfix/base/iox/tomlx"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"
)

// wordResult is the result of checking one word.
type wordResult struct {
	Word        string   `yaml:"word"`
	Correct     bool     `yaml:"correct"`
	Suggestions []string `yaml:"suggestions,omitempty"`
}

// textResult is the result of transforming a text.
type textResult struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}

// output writes command results in the configured format.
type output struct {
	w      io.Writer
	format string
	term   *termenv.Output
}

func newOutput(w io.Writer, format string) *output {
	return &output{w: w, format: strings.ToLower(format), term: termenv.NewOutput(w)}
}

func (o *output) validate() error {
	switch o.format {
	case "text", "yaml":
		return nil
	}
	return fmt.Errorf("unknown output format %q (must be text or yaml)", o.format)
}

func (o *output) yaml(v any) error {
	enc := yaml.NewEncoder(o.w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// text writes the result of transforming the input text.
func (o *output) text(input, result string) error {
	if o.format == "yaml" {
		return o.yaml(textResult{Input: input, Output: result})
	}
	_, err := fmt.Fprintln(o.w, result)
	return err
}

// words writes one line per checked word: the word, colored by
// whether it is correct, then its suggestions if it has any.
func (o *output) words(results []wordResult) error {
	if o.format == "yaml" {
		return o.yaml(results)
	}
	for _, r := range results {
		clr := "2"
		if !r.Correct {
			clr = "1"
		}
		word := o.term.String(r.Word).Foreground(o.term.Color(clr)).String()
		var line string
		switch {
		case len(r.Suggestions) > 0:
			line = strings.Join(r.Suggestions, ", ")
		case r.Correct:
			line = "correct"
		default:
			line = "no suggestions"
		}
		if _, err := fmt.Fprintf(o.w, "%s: %s\n", word, line); err != nil {
			return err
		}
	}
	return nil
}

// config writes the given configuration as TOML, or as YAML.
func (o *output) config(cfg any) error {
	if o.format == "yaml" {
		return o.yaml(cfg)
	}
	return tomlx.Write(cfg, o.w)
}
