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

// Package registration reads callback registration records out of a subject.
//
// Records are opaque. They are fetched through a key/value probe under a
// key that is a convention of the subject's event wiring, so the whole
// mechanism is fragile by nature. Subjects that can be changed should
// implement apis.Binder instead and be read with Bindings.
package registration

import (
	"reflect"

	"dirpx.dev/pry/apis"
	"dirpx.dev/pry/lookup"
	uref "dirpx.dev/pry/utils/reflect"
)

// Probe fetches the raw value stored under key.
//
// apis.Prober subjects answer for themselves. Other subjects fall back to
// key/value coding over the walker: an attribute named key, then "_"+key.
func Probe(subject any, key string, w apis.Walker, cfg apis.Config) (any, bool) {
	if subject == nil || key == "" {
		return nil, false
	}
	if p, ok := subject.(apis.Prober); ok {
		return p.ValueForKey(key)
	}
	if v, ok := lookup.Value(w, subject, key, apis.MatchExact, cfg); ok {
		return v, true
	}
	return lookup.Value(w, subject, "_"+key, apis.MatchExact, cfg)
}

// Extract returns the registration records stored under key, in order.
// An unsupported key, a nil value or an empty collection all yield an
// empty slice.
func Extract(subject any, key string, w apis.Walker, cfg apis.Config) []any {
	v, ok := Probe(subject, key, w, cfg)
	if !ok {
		return nil
	}
	return Flatten(v)
}

// Flatten turns a probed value into a sequence: slices and arrays yield
// their elements, nil yields nothing, anything else yields itself.
func Flatten(v any) []any {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		rv = uref.Addressable(rv)
		out := make([]any, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out = append(out, uref.Interface(rv.Index(i)))
		}
		return out
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Func, reflect.Chan:
		if rv.IsNil() {
			return nil
		}
	}
	return []any{v}
}

// SelectFirst returns the first record satisfying pred. A nil pred selects
// the first record.
func SelectFirst(records []any, pred func(any) bool) (any, bool) {
	for _, r := range records {
		if pred == nil || pred(r) {
			return r, true
		}
	}
	return nil, false
}

// OfKind is a predicate matching records whose dynamic type is K, or
// implements K when K is an interface.
func OfKind[K any]() func(any) bool {
	return func(r any) bool {
		_, ok := r.(K)
		return ok
	}
}

// Bindings returns the structured bindings of an apis.Binder subject.
// ok is false when the subject does not expose bindings.
func Bindings(subject any) ([]apis.Binding, bool) {
	b, ok := subject.(apis.Binder)
	if !ok || subject == nil {
		return nil, false
	}
	bs := b.Bindings()
	return append([]apis.Binding(nil), bs...), true
}

// BindingFor returns the first binding for trigger.
func BindingFor(subject any, trigger string) (apis.Binding, bool) {
	bs, _ := Bindings(subject)
	for _, b := range bs {
		if b.Trigger == trigger {
			return b, true
		}
	}
	return apis.Binding{}, false
}
