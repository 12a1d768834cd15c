// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"reflect"

	"cogentcore.org/spellfix/base/errors"
	"cogentcore.org/spellfix/base/fsx"
	"cogentcore.org/spellfix/base/iox/tomlx"
)

// includer is implemented by config structs that can include other
// config files, listed in their Includes field.
type includer interface {
	IncludesPtr() *[]string
}

// openWithIncludes reads the config struct from the given config file
// using the given options, looking on [Options.IncludePaths] for the file.
// Only the first match on the paths is read, for includes too, so that
// earlier paths take precedence over later ones.
// It opens any Includes specified in the given config file in the natural
// include order so that includers overwrite included settings.
// Is equivalent to Open if there are no Includes. It returns an error if
// any of the include files cannot be found on [Options.IncludePaths].
func openWithIncludes(opts *Options, cfg any, file string) error {
	fn := fsx.FindFileOnPaths(opts.IncludePaths, file)
	if fn == "" {
		return fmt.Errorf("OpenWithIncludes: no files found for %q", file)
	}
	err := tomlx.Open(cfg, fn)
	if err != nil {
		return err
	}
	incfg, ok := cfg.(includer)
	if !ok {
		return err
	}
	incs, incErr := includeStack(opts, incfg)
	ni := len(incs)
	if ni == 0 {
		return incErr
	}
	for i := ni - 1; i >= 0; i-- {
		if incfn := fsx.FindFileOnPaths(opts.IncludePaths, incs[i]); incfn != "" {
			errors.Log(tomlx.Open(cfg, incfn))
		}
	}
	// reopen original
	err = tomlx.Open(cfg, fn)
	if err != nil {
		return err
	}
	*incfg.IncludesPtr() = incs
	return incErr
}

// includeStack returns the stack of include files in the natural
// order in which they are encountered (nil if none).
// Files should then be read in reverse order of the slice.
// Returns an error if any of the include files cannot be found on
// [Options.IncludePaths]. Does not alter cfg.
func includeStack(opts *Options, cfg includer) ([]string, error) {
	clone := reflect.New(reflect.TypeOf(cfg).Elem()).Interface().(includer)
	*clone.IncludesPtr() = *cfg.IncludesPtr()
	return includeStackImpl(opts, clone, nil, map[string]bool{})
}

func includeStackImpl(opts *Options, clone includer, includes []string, seen map[string]bool) ([]string, error) {
	incs := *clone.IncludesPtr()
	var errs []error
	for _, inc := range incs {
		if seen[inc] {
			errs = append(errs, fmt.Errorf("include cycle at %q", inc))
			continue
		}
		seen[inc] = true
		includes = append(includes, inc)
		incfn := fsx.FindFileOnPaths(opts.IncludePaths, inc)
		if incfn == "" {
			errs = append(errs, fmt.Errorf("include file %q not found", inc))
			continue
		}
		*clone.IncludesPtr() = nil
		if err := tomlx.Open(clone, incfn); err != nil {
			errs = append(errs, err)
			continue
		}
		var err error
		includes, err = includeStackImpl(opts, clone, includes, seen)
		errs = append(errs, err)
	}
	return includes, errors.Join(errs...)
}
