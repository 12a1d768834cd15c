// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reflectx provides a collection of helpers for the reflect
// package, used to drive configuration structs from struct tags.
package reflectx

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"cogentcore.org/spellfix/base/errors"
)

// WalkFields calls fun on every exported field of the given struct
// value, recursing into embedded and nested struct fields first.
// The path is the dot-joined field names down to the field.
func WalkFields(obj any, fun func(path string, field reflect.StructField, value reflect.Value) error) error {
	v := NonPointerValue(reflect.ValueOf(obj))
	if v.Kind() != reflect.Struct {
		return fmt.Errorf("reflectx.WalkFields: expected a struct, not %v", v.Kind())
	}
	return walkFields(v, "", fun)
}

func walkFields(v reflect.Value, prefix string, fun func(path string, field reflect.StructField, value reflect.Value) error) error {
	typ := v.Type()
	var errs []error
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := v.Field(i)
		path := f.Name
		if prefix != "" {
			path = prefix + "." + f.Name
		}
		if f.Type.Kind() == reflect.Struct {
			np := path
			if f.Anonymous {
				np = prefix
			}
			errs = append(errs, walkFields(fv, np, fun))
			continue
		}
		errs = append(errs, fun(path, f, fv))
	}
	return errors.Join(errs...)
}

// SetFromDefaultTags sets the values of fields in the given struct based on
// `default:` default value struct field tags.
func SetFromDefaultTags(obj any) error {
	if rv := reflect.ValueOf(obj); !rv.IsValid() || (rv.Kind() == reflect.Pointer && rv.IsNil()) {
		return nil
	}
	return WalkFields(obj, func(path string, field reflect.StructField, value reflect.Value) error {
		def, ok := field.Tag.Lookup("default")
		if !ok {
			return nil
		}
		if err := SetFromString(value, def); err != nil {
			return fmt.Errorf("reflectx.SetFromDefaultTags: error setting field %q to default value %q: %w", path, def, err)
		}
		return nil
	})
}

// SetFromString sets the given settable value from the given string,
// for the string, bool, integer, float and string slice kinds.
// Slices are given as comma separated lists.
func SetFromString(v reflect.Value, s string) error {
	if !v.CanSet() {
		return fmt.Errorf("value of type %v cannot be set", v.Type())
	}
	switch v.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(f)
	case reflect.Slice:
		if v.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("unsupported slice type %v", v.Type())
		}
		var items []string
		if s != "" {
			items = strings.Split(s, ",")
			for i := range items {
				items[i] = strings.TrimSpace(items[i])
			}
		}
		v.Set(reflect.ValueOf(items).Convert(v.Type()))
	default:
		return fmt.Errorf("unsupported kind %v", v.Kind())
	}
	return nil
}
