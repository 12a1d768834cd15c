// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command spellfix corrects the spelling of text against a hunspell
// dictionary, and strips text down to letters, digits and spaces.
package main

import (
	"context"
	"flag"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"cogentcore.org/spellfix/base/errors"
	"cogentcore.org/spellfix/base/logx"
	"cogentcore.org/spellfix/cli"
	"cogentcore.org/spellfix/text/corrector"
)

// Config is the configuration of the spellfix command.
type Config struct {

	// Includes are other config files to read before this one.
	Includes []string

	// Dict is the directory containing the dictionary index.
	Dict string `flag:"dict" env:"SPELLFIX_DICT" desc:"the directory containing the dictionary index"`

	// Name is the base name of the dictionary .aff and .dic files.
	Name string `flag:"name" default:"index" desc:"the base name of the dictionary .aff and .dic files"`

	// Punct is the set of punctuation characters.
	Punct string `flag:"punct" env:"SPELLFIX_PUNCT" default:".,;:!?" desc:"the characters treated as punctuation marks"`

	// Personal is a file of additional accepted words.
	Personal string `flag:"personal" env:"SPELLFIX_PERSONAL" desc:"a file of additional accepted words, one per line"`

	// Metric is the string distance used to rank suggestions.
	Metric string `flag:"metric" env:"SPELLFIX_METRIC" default:"levenshtein" desc:"the string distance used to rank suggestions"`

	// Whitelist is the set of characters kept by the clean command.
	Whitelist string `flag:"whitelist" desc:"the characters kept by the clean command (default letters, digits and space)"`

	// Spanish adds the Spanish letters to the default clean whitelist.
	Spanish bool `flag:"spanish" desc:"also keep the Spanish letters in the clean command"`

	// Format is the output format, text or yaml.
	Format string `flag:"format" default:"text" desc:"the output format: text or yaml"`

	// In is a file to read the text from instead of the arguments.
	In string `flag:"in" desc:"read the text from this file instead of the arguments or stdin"`

	// Watch reloads the dictionary when it changes, in the shell.
	Watch bool `flag:"watch" desc:"reload the dictionary when its files change (shell only)"`

	// Verbose turns on debug logging.
	Verbose bool `flag:"v,verbose" desc:"log debug messages"`

	// Quiet only logs errors.
	Quiet bool `flag:"q,quiet" desc:"only log errors"`
}

func (c *Config) IncludesPtr() *[]string { return &c.Includes }

// Corrector returns the corrector configuration.
func (c *Config) Corrector() corrector.Config {
	return corrector.Config{
		Punctuation:    c.Punct,
		DictionaryPath: c.Dict,
		DictionaryName: c.Name,
		PersonalDict:   c.Personal,
		Metric:         c.Metric,
	}
}

func main() {
	logx.SetDefaultLogger()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stdin, os.Stdout)
	stop()
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

// run runs the spellfix command with the given arguments,
// without the program name.
func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	opts := cli.DefaultOptions("spellfix", "spellfix corrects the spelling of text.\n\n"+
		"Commands:\n"+
		"  fix [text...]      print the text with misspelled words replaced\n"+
		"  check word...      report whether words are correctly spelled\n"+
		"  suggest word...    list ranked suggestions for words\n"+
		"  clean [text...]    remove all but the allowed characters\n"+
		"  add word...        add words to the personal word list\n"+
		"  config             print the configuration in effect\n"+
		"  shell              run commands read line by line from stdin\n\n"+
		"Text is read from -in, the arguments, or stdin, in that order.")
	cfg := &Config{}
	rest, err := cli.Parse(opts, cfg, args)
	if err != nil {
		return err
	}
	logx.UserLevel = logx.LevelFromFlags(cfg.Verbose, cfg.Quiet)
	a := &app{cfg: cfg, stdin: stdin, out: newOutput(stdout, cfg.Format)}
	if err := a.out.validate(); err != nil {
		return err
	}
	if len(rest) == 0 {
		rest = []string{"fix"}
	}
	return a.command(ctx, rest[0], rest[1:])
}
