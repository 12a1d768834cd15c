// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli fills a config struct from, in increasing order of
// precedence, `default:` struct tags, a TOML config file with includes,
// environment variables named by `env:` tags (also read from .env files)
// and command line flags named by `flag:` tags.
package cli

import (
	"flag"
	"fmt"
	"io"
	"reflect"
	"strings"

	"cogentcore.org/spellfix/base/fsx"
	"cogentcore.org/spellfix/base/reflectx"
)

// Options are the options for [Parse].
type Options struct {

	// AppName is the name of the command, used in the usage message.
	AppName string

	// AppAbout is a description of the command, printed before the flags.
	AppAbout string

	// DefaultFiles are the config files opened when none is given
	// with the -config flag. Missing default files are not an error.
	DefaultFiles []string

	// IncludePaths are the directories searched for config files and
	// the files they include, in order.
	IncludePaths []string

	// DotEnvFiles are the .env files loaded before reading the environment.
	DotEnvFiles []string

	// Output is where usage messages are written.
	Output io.Writer
}

// DefaultOptions returns the default options for the given app,
// which looks for appName.toml in the current directory and in
// ~/.config/appName, and loads .env from the current directory.
func DefaultOptions(appName, appAbout string) *Options {
	return &Options{
		AppName:      appName,
		AppAbout:     appAbout,
		DefaultFiles: []string{appName + ".toml"},
		IncludePaths: []string{".", "~/.config/" + appName},
		DotEnvFiles:  []string{".env"},
	}
}

// fieldFlag is a [flag.Value] that records the string given for a
// config field, so that it can be applied after the config file.
type fieldFlag struct {
	value  reflect.Value
	isBool bool
	str    string
	set    bool
}

func (f *fieldFlag) String() string {
	if f == nil || !f.value.IsValid() {
		return ""
	}
	return fmt.Sprint(f.value.Interface())
}

func (f *fieldFlag) Set(s string) error {
	// validate now so that errors are reported by the flag package
	tmp := reflect.New(f.value.Type()).Elem()
	if err := reflectx.SetFromString(tmp, s); err != nil {
		return err
	}
	f.str = s
	f.set = true
	return nil
}

func (f *fieldFlag) IsBoolFlag() bool { return f.isBool }

// Parse sets the fields of cfg, which must be a pointer to a struct,
// from defaults, the config file, the environment and the given command
// line arguments (without the program name), and returns the remaining
// positional arguments. The config file is the one given by the -config
// flag, or else the first of [Options.DefaultFiles] found. Each file is
// read from the first of [Options.IncludePaths] that has it, so a project
// file in "." wins over one in the user config directory.
// It returns [flag.ErrHelp] if -h or -help was given.
func Parse(opts *Options, cfg any, args []string) ([]string, error) {
	if err := SetFromDefaults(cfg); err != nil {
		return nil, err
	}

	fs := flag.NewFlagSet(opts.AppName, flag.ContinueOnError)
	if opts.Output != nil {
		fs.SetOutput(opts.Output)
	}
	configFile := fs.String("config", "", "the TOML config file to open")
	var flags []*fieldFlag
	err := reflectx.WalkFields(cfg, func(path string, field reflect.StructField, value reflect.Value) error {
		tag, ok := field.Tag.Lookup("flag")
		if !ok {
			return nil
		}
		ff := &fieldFlag{value: value, isBool: value.Kind() == reflect.Bool}
		usage := field.Tag.Get("desc")
		if env := field.Tag.Get("env"); env != "" {
			usage += " (env " + env + ")"
		}
		for _, name := range strings.Split(tag, ",") {
			fs.Var(ff, strings.TrimSpace(name), usage)
		}
		flags = append(flags, ff)
		return nil
	})
	if err != nil {
		return nil, err
	}
	fs.Usage = func() {
		w := fs.Output()
		fmt.Fprintf(w, "%s\n\nUsage:\n  %s [flags] <command> [args]\n\nFlags:\n", opts.AppAbout, opts.AppName)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *configFile != "" {
		if err := openWithIncludes(opts, cfg, *configFile); err != nil {
			return nil, err
		}
	} else {
		for _, df := range opts.DefaultFiles {
			if fsx.FindFileOnPaths(opts.IncludePaths, df) == "" {
				continue
			}
			if err := openWithIncludes(opts, cfg, df); err != nil {
				return nil, err
			}
			break
		}
	}

	if err := LoadDotEnv(opts.DotEnvFiles...); err != nil {
		return nil, err
	}
	if err := SetFromEnv(cfg); err != nil {
		return nil, err
	}
	for _, ff := range flags {
		if ff.set {
			if err := reflectx.SetFromString(ff.value, ff.str); err != nil {
				return nil, err
			}
		}
	}
	return fs.Args(), nil
}
