// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"fmt"
	"reflect"
	"strconv"

	"cogentcore.org/spintri/base/errors"
)

// SetFromDefaultTags sets the values of fields in the given struct based on
// `default:` default value struct field tags. Nested structs are handled
// recursively; fields without a tag are left alone.
func SetFromDefaultTags(obj any) error {
	if obj == nil {
		return nil
	}
	ov := NonPointerValue(reflect.ValueOf(obj))
	if ov.Kind() == reflect.Pointer {
		return fmt.Errorf("reflectx.SetFromDefaultTags: got nil %T", obj)
	}
	if ov.Kind() != reflect.Struct {
		return fmt.Errorf("reflectx.SetFromDefaultTags: expected a struct, not %T", obj)
	}
	if !ov.CanSet() {
		return fmt.Errorf("reflectx.SetFromDefaultTags: %T is not settable; pass a pointer", obj)
	}
	return setFromDefaultTags(ov)
}

func setFromDefaultTags(ov reflect.Value) error {
	typ := ov.Type()
	var errs []error
	for i := range typ.NumField() {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := ov.Field(i)
		if f.Type.Kind() == reflect.Struct {
			if err := setFromDefaultTags(fv); err != nil {
				errs = append(errs, err)
			}
			continue
		}
		def, ok := f.Tag.Lookup("default")
		if !ok {
			continue
		}
		if err := SetRobust(fv, def); err != nil {
			errs = append(errs, fmt.Errorf("field %s: %w", f.Name, err))
		}
	}
	return errors.Join(errs...)
}

// SetRobust sets the given settable value from the given string
// representation, converting to the value's underlying kind.
func SetRobust(v reflect.Value, s string) error {
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
		n, err := strconv.ParseInt(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetUint(n)
	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(s, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(n)
	default:
		return fmt.Errorf("unsupported kind %v", v.Kind())
	}
	return nil
}
