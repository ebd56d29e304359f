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

// Package walker enumerates the stored attributes of arbitrary Go values.
package walker

import (
	"reflect"
	"sort"

	"dirpx.dev/pry/apis"
	uref "dirpx.dev/pry/utils/reflect"
)

// New returns the default apis.Walker.
//
// Subjects implementing apis.AttributeLister are asked directly. Everything
// else goes through reflect: structs yield their fields in declaration order
// (unexported included when cfg.IncludeUnexported is set). With
// cfg.FlattenEmbedded, embedded structs, pointers to structs and interfaces
// holding either are followed by their own fields. Maps with
// string keys yield their entries sorted by key. Other kinds yield nothing.
func New() apis.Walker {
	return walker{}
}

type walker struct{}

// Ensure walker implements apis.Walker.
var _ apis.Walker = walker{}

// Walk returns a fresh snapshot of subject's attributes.
func (walker) Walk(subject any, cfg apis.Config) []apis.Attribute {
	if subject == nil {
		return nil
	}
	rv := reflect.ValueOf(subject)
	if rv.Kind() == reflect.Ptr && rv.IsNil() {
		return nil
	}
	if l, ok := subject.(apis.AttributeLister); ok {
		attrs := l.Attributes()
		if len(attrs) == 0 {
			return nil
		}
		return append(make([]apis.Attribute, 0, len(attrs)), attrs...)
	}

	v, err := uref.Indirect(rv, cfg.MaxUnwrap)
	if err != nil {
		return nil
	}
	switch v.Kind() {
	case reflect.Struct:
		return walkStruct(uref.Addressable(v), cfg, nil)
	case reflect.Map:
		return walkMap(v)
	default:
		return nil
	}
}

// walkStruct appends the fields of the addressable struct v to out.
func walkStruct(v reflect.Value, cfg apis.Config, out []apis.Attribute) []apis.Attribute {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		fv := v.Field(i)
		if sf.IsExported() || cfg.IncludeUnexported {
			out = append(out, apis.Attribute{Name: sf.Name, Value: uref.Interface(fv)})
		}
		if !sf.Anonymous || !cfg.FlattenEmbedded {
			continue
		}
		ev := fv
		if fv.Kind() == reflect.Interface {
			// The dynamic value of an unexported interface is read-only
			// and not addressable; walk a copy of it instead.
			ev = reflect.ValueOf(uref.Interface(fv))
		}
		ev, err := uref.Indirect(ev, cfg.MaxUnwrap)
		if err != nil || ev.Kind() != reflect.Struct {
			continue
		}
		out = walkStruct(uref.Addressable(ev), cfg, out)
	}
	return out
}

// walkMap returns one record per entry of a string-keyed map, sorted by key.
func walkMap(v reflect.Value) []apis.Attribute {
	if v.Type().Key().Kind() != reflect.String || v.Len() == 0 {
		return nil
	}
	keys := v.MapKeys()
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })

	out := make([]apis.Attribute, 0, len(keys))
	for _, k := range keys {
		out = append(out, apis.Attribute{Name: k.String(), Value: uref.Interface(v.MapIndex(k))})
	}
	return out
}
