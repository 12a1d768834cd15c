// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"io/fs"
	"os"
	"reflect"

	"cogentcore.org/spellfix/base/errors"
	"cogentcore.org/spellfix/base/reflectx"
	"github.com/joho/godotenv"
)

// SetFromDefaults sets the values of the given config object
// from `default:` struct field tag values. Errors are automatically
// logged in addition to being returned.
func SetFromDefaults(cfg any) error {
	return errors.Log(reflectx.SetFromDefaultTags(cfg))
}

// SetFromEnv sets the fields of the given config object that have an
// `env:` struct field tag from the environment variable it names, when
// that variable is set.
func SetFromEnv(cfg any) error {
	return reflectx.WalkFields(cfg, func(path string, field reflect.StructField, value reflect.Value) error {
		name, ok := field.Tag.Lookup("env")
		if !ok {
			return nil
		}
		s, ok := os.LookupEnv(name)
		if !ok {
			return nil
		}
		if err := reflectx.SetFromString(value, s); err != nil {
			return fmt.Errorf("environment variable %s: %w", name, err)
		}
		return nil
	})
}

// LoadDotEnv loads environment variables from the given .env files,
// skipping files that do not exist. Variables that are already set
// in the environment are not overridden.
func LoadDotEnv(files ...string) error {
	var errs []error
	for _, f := range files {
		err := godotenv.Load(f)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
