// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads settings structs from TOML and YAML files,
// after first applying the `default:` values in their struct tags.
package config

import (
	"fmt"
	"reflect"
	"strconv"
	"time"

	"cogentcore.org/tumble/base/errors"
)

// SetFromDefaults sets the values of the given config object
// from `default:` struct field tag values. Embedded and nested
// structs are processed recursively. Errors are automatically
// logged in addition to being returned.
func SetFromDefaults(cfg any) error {
	val := reflect.ValueOf(cfg)
	if val.Kind() != reflect.Pointer || val.Elem().Kind() != reflect.Struct {
		return errors.Log(fmt.Errorf("config.SetFromDefaults: expected a pointer to a struct, not %T", cfg))
	}
	return errors.Log(setFromDefaultTags(val.Elem()))
}

func setFromDefaultTags(val reflect.Value) error {
	typ := val.Type()
	var errs []error
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := val.Field(i)
		if f.Type.Kind() == reflect.Struct {
			errs = append(errs, setFromDefaultTags(fv))
			continue
		}
		def, ok := f.Tag.Lookup("default")
		if !ok || def == "" {
			continue
		}
		if err := setString(fv, def); err != nil {
			errs = append(errs, fmt.Errorf("config.SetFromDefaults: field %s.%s from %q: %w", typ.Name(), f.Name, def, err))
		}
	}
	return errors.Join(errs...)
}

// setString sets the given settable value from its string representation.
func setString(fv reflect.Value, str string) error {
	if fv.Type() == reflect.TypeFor[time.Duration]() {
		d, err := time.ParseDuration(str)
		if err != nil {
			return err
		}
		fv.SetInt(int64(d))
		return nil
	}
	switch fv.Kind() {
	case reflect.String:
		fv.SetString(str)
	case reflect.Bool:
		b, err := strconv.ParseBool(str)
		if err != nil {
			return err
		}
		fv.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(str, 0, fv.Type().Bits())
		if err != nil {
			return err
		}
		fv.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(str, 0, fv.Type().Bits())
		if err != nil {
			return err
		}
		fv.SetUint(n)
	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(str, fv.Type().Bits())
		if err != nil {
			return err
		}
		fv.SetFloat(n)
	default:
		return fmt.Errorf("unsupported field kind %v", fv.Kind())
	}
	return nil
}
