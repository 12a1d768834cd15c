// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"cogentcore.org/spellfix/base/errors"
	"cogentcore.org/spellfix/base/fsx"
	"cogentcore.org/spellfix/text/clean"
	"cogentcore.org/spellfix/text/corrector"
	"github.com/h2non/filetype"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-shellwords"
)

// app holds the state of one run of the command.
type app struct {
	cfg   *Config
	stdin io.Reader
	out   *output

	// corr is created on first use, as clean does not need a dictionary.
	corr *corrector.Corrector

	// inShell is set while running commands from the shell,
	// where text only comes from the command arguments.
	inShell bool
}

func (a *app) corrector() (*corrector.Corrector, error) {
	if a.corr != nil {
		return a.corr, nil
	}
	c, err := corrector.New(a.cfg.Corrector())
	if err != nil {
		return nil, err
	}
	a.corr = c
	return c, nil
}

// command runs the named command with the given arguments.
func (a *app) command(ctx context.Context, name string, args []string) error {
	switch name {
	case "fix":
		return a.fix(args)
	case "check":
		return a.check(args, false)
	case "suggest":
		return a.check(args, true)
	case "clean":
		return a.clean(args)
	case "shell":
		if a.inShell {
			return fmt.Errorf("already in the shell")
		}
		return a.shell(ctx)
	case "reload":
		c, err := a.corrector()
		if err != nil {
			return err
		}
		return c.Reload()
	case "add":
		if len(args) == 0 {
			return fmt.Errorf("no words given")
		}
		c, err := a.corrector()
		if err != nil {
			return err
		}
		return c.AddWords(args...)
	case "config":
		return a.out.config(a.cfg)
	default:
		return fmt.Errorf("unknown command %q", name)
	}
}

// input returns the text to work on: the -in file, the arguments
// joined by spaces, or all of stdin, in that order of preference.
func (a *app) input(args []string) (string, error) {
	if a.cfg.In != "" && !a.inShell {
		return readTextFile(a.cfg.In)
	}
	if len(args) > 0 || a.inShell {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(a.stdin)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(b), "\r\n"), nil
}

// readTextFile reads the given file, refusing files whose content
// is recognized as a binary format.
func readTextFile(fname string) (string, error) {
	fname, err := fsx.Expand(fname)
	if err != nil {
		return "", err
	}
	b, err := os.ReadFile(fname)
	if err != nil {
		return "", err
	}
	kind, err := filetype.Match(b[:min(len(b), 262)])
	if err == nil && kind != filetype.Unknown {
		return "", fmt.Errorf("%s: not a text file (%s)", fname, kind.MIME.Value)
	}
	return strings.TrimRight(string(b), "\r\n"), nil
}

// mapLines applies fun to every line of text, so that line
// structure survives tokenization.
func mapLines(text string, fun func(line string) (string, error)) (string, error) {
	lines := strings.Split(text, "\n")
	for i, ln := range lines {
		res, err := fun(strings.TrimSuffix(ln, "\r"))
		if err != nil {
			return "", fmt.Errorf("line %d: %w", i+1, err)
		}
		lines[i] = res
	}
	return strings.Join(lines, "\n"), nil
}

func (a *app) fix(args []string) error {
	c, err := a.corrector()
	if err != nil {
		return err
	}
	text, err := a.input(args)
	if err != nil {
		return err
	}
	res, err := mapLines(text, c.FixText)
	if err != nil {
		return err
	}
	return a.out.text(text, res)
}

func (a *app) check(words []string, suggestAll bool) error {
	if len(words) == 0 {
		return fmt.Errorf("no words given")
	}
	c, err := a.corrector()
	if err != nil {
		return err
	}
	results := make([]wordResult, len(words))
	for i, w := range words {
		ok, err := c.IsCorrect(w)
		if err != nil {
			return err
		}
		results[i] = wordResult{Word: w, Correct: ok}
		if ok && !suggestAll {
			continue
		}
		results[i].Suggestions, err = c.Suggest(w)
		if err != nil {
			return err
		}
	}
	return a.out.words(results)
}

func (a *app) clean(args []string) error {
	text, err := a.input(args)
	if err != nil {
		return err
	}
	filter := clean.Symbols
	switch {
	case a.cfg.Whitelist != "":
		filter = func(line string) string { return clean.Filter(line, a.cfg.Whitelist) }
	case a.cfg.Spanish:
		filter = func(line string) string { return clean.Filter(line, clean.SpanishWhitelist) }
	}
	res, _ := mapLines(text, func(line string) (string, error) {
		return filter(line), nil
	})
	return a.out.text(text, res)
}

// shell runs commands read one per line from stdin until it ends or
// a quit command, with arguments split like a shell does. Command
// errors are logged and do not stop the shell.
func (a *app) shell(ctx context.Context) error {
	c, err := a.corrector()
	if err != nil {
		return err
	}
	if a.cfg.Watch {
		wctx, cancel := context.WithCancel(ctx)
		defer cancel()
		go func() {
			errors.Log(c.Watch(wctx))
		}()
	}
	a.inShell = true
	defer func() { a.inShell = false }()

	prompt := func() {}
	if f, ok := a.stdin.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		prompt = func() { fmt.Fprint(os.Stderr, "spellfix> ") }
	}
	scan := bufio.NewScanner(a.stdin)
	for prompt(); scan.Scan(); prompt() {
		if ctx.Err() != nil {
			return nil
		}
		args, err := shellwords.Parse(scan.Text())
		if err != nil {
			slog.Error("parsing command", "err", err)
			continue
		}
		if len(args) == 0 {
			continue
		}
		if args[0] == "quit" || args[0] == "exit" {
			return nil
		}
		if err := a.command(ctx, args[0], args[1:]); err != nil {
			slog.Error(err.Error())
		}
	}
	return scan.Err()
}
