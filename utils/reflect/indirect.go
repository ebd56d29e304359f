/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package reflect

import (
	"errors"
	"reflect"
	"unsafe"

	"dirpx.dev/pry/config"
)

var (
	// ErrReflectNilValue is returned when the value is invalid or a nil pointer/interface.
	ErrReflectNilValue = errors.New("reflect: nil value provided")
	// ErrReflectTooDeep indicates that MaxUnwrap was reached while the value
	// was still a pointer or interface.
	ErrReflectTooDeep = errors.New("reflect: unwrap depth exceeded")
)

// Indirect unwraps pointers and interfaces up to maxUnwrap levels and
// returns the first concrete value.
//
// If maxUnwrap <= 0, DefaultMaxUnwrap is used.
func Indirect(v reflect.Value, maxUnwrap int) (reflect.Value, error) {
	if maxUnwrap <= 0 {
		maxUnwrap = config.DefaultMaxUnwrap
	}
	for i := 0; ; i++ {
		if !v.IsValid() {
			return reflect.Value{}, ErrReflectNilValue
		}
		switch v.Kind() {
		case reflect.Ptr, reflect.Interface:
			if v.IsNil() {
				return reflect.Value{}, ErrReflectNilValue
			}
			if i >= maxUnwrap {
				return reflect.Value{}, ErrReflectTooDeep
			}
			v = v.Elem()
		default:
			return v, nil
		}
	}
}

// Addressable returns v itself when it is addressable, otherwise a private
// addressable copy. The copy is a snapshot: later writes to the original do
// not show through it.
func Addressable(v reflect.Value) reflect.Value {
	if v.CanAddr() {
		return v
	}
	c := reflect.New(v.Type()).Elem()
	c.Set(v)
	return c
}

// Interface returns f as an any, including unexported fields.
// f must be addressable (see Addressable). The result is a copy of the field
// value; the field itself is never written.
func Interface(f reflect.Value) any {
	if f.CanInterface() {
		return f.Interface()
	}
	if !f.CanAddr() {
		return nil
	}
	return reflect.NewAt(f.Type(), unsafe.Pointer(f.UnsafeAddr())).Elem().Interface()
}
